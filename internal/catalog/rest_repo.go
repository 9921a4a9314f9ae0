package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/time/rate"

	"github.com/Murugavl/RO-Catalog/internal/models"
)

// AuthEngine attaches the admin credential to outbound requests.
type AuthEngine interface {
	SetAuth(request *http.Request)
}

type BearerAuth struct {
	token string
}

func NewBearerAuth(token string) *BearerAuth {
	return &BearerAuth{token: token}
}

func (b *BearerAuth) SetAuth(request *http.Request) {
	if b.token != "" {
		request.Header.Set("Authorization", "Bearer "+b.token)
	}
}

// RESTRepository proxies a remote catalog API. Reads hit the public
// listing route; every mutating call goes through the authenticated
// admin routes with the bearer credential attached.
type RESTRepository struct {
	baseURL string
	auth    AuthEngine
	client  *http.Client
	limiter *rate.Limiter
}

func NewRESTRepository(baseURL string, auth AuthEngine) *RESTRepository {
	return &RESTRepository{
		baseURL: strings.TrimRight(baseURL, "/"),
		auth:    auth,
		client:  &http.Client{Timeout: 10 * time.Second},
		// The upstream throttles aggressive clients; stay under it.
		limiter: rate.NewLimiter(rate.Every(time.Second/10), 10),
	}
}

// restModel is the upstream wire shape (name/brand/imageUrl/...).
// It never leaks out of this file.
type restModel struct {
	ID                 string            `json:"id"`
	Name               string            `json:"name"`
	Brand              string            `json:"brand"`
	Price              float64           `json:"price"`
	ImageURL           string            `json:"imageUrl"`
	TechnologyType     string            `json:"technologyType"`
	Capacity           string            `json:"capacity"`
	Warranty           string            `json:"warranty"`
	PurificationStages string            `json:"purificationStages"`
	EnergyConsumption  string            `json:"energyConsumption"`
	ColorVariant       string            `json:"colorVariant"`
	Dimensions         string            `json:"dimensions"`
	Weight             string            `json:"weight"`
	Description        string            `json:"description"`
	Tags               models.StringList `json:"tags"`
	CreatedAt          string            `json:"createdAt"`
}

type modelsResponse struct {
	Models []restModel `json:"models"`
}

type modelResponse struct {
	Model restModel `json:"model"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (m restModel) toProduct(origin string) models.Product {
	product := models.Product{
		Name:               m.Name,
		Brand:              m.Brand,
		Price:              m.Price,
		TechnologyType:     m.TechnologyType,
		Capacity:           m.Capacity,
		Warranty:           m.Warranty,
		PurificationStages: m.PurificationStages,
		EnergyConsumption:  m.EnergyConsumption,
		ColorVariant:       m.ColorVariant,
		Dimensions:         m.Dimensions,
		Weight:             m.Weight,
		Description:        m.Description,
		ImageURL:           models.ResolveImageURL(m.ImageURL, origin),
		Tags:               m.Tags,
		IsActive:           true,
	}
	if id, err := primitive.ObjectIDFromHex(m.ID); err == nil {
		product.ID = id
	}
	if m.CreatedAt != "" {
		if parsed, err := time.Parse(time.RFC3339, m.CreatedAt); err == nil {
			product.CreatedAt = parsed
		}
	}
	return product
}

func (r *RESTRepository) List(ctx context.Context) ([]models.Product, error) {
	return r.fetchModels(ctx, "/api/models", false)
}

// ListAll hits the authenticated admin route, which also returns models
// the public listing would hide.
func (r *RESTRepository) ListAll(ctx context.Context) ([]models.Product, error) {
	return r.fetchModels(ctx, "/api/admin/models", true)
}

func (r *RESTRepository) fetchModels(ctx context.Context, path string, authed bool) ([]models.Product, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.baseURL+path, nil)
	if err != nil {
		return nil, err
	}
	if authed {
		r.auth.SetAuth(req)
	}

	var payload modelsResponse
	if err := r.do(req, &payload); err != nil {
		return nil, err
	}

	products := make([]models.Product, 0, len(payload.Models))
	for _, m := range payload.Models {
		products = append(products, m.toProduct(r.baseURL))
	}
	return products, nil
}

// Get degrades to list-and-filter: the upstream API has no single-item
// route. Fine at catalog sizes; revisit if the API ever grows one.
func (r *RESTRepository) Get(ctx context.Context, id string) (*models.Product, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.baseURL+"/api/models", nil)
	if err != nil {
		return nil, err
	}

	var payload modelsResponse
	if err := r.do(req, &payload); err != nil {
		return nil, err
	}

	for _, m := range payload.Models {
		if m.ID == id {
			product := m.toProduct(r.baseURL)
			return &product, nil
		}
	}
	return nil, ErrNotFound
}

func (r *RESTRepository) Create(ctx context.Context, input ProductInput, image *multipart.FileHeader) (*models.Product, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, Invalid("name required")
	}
	if !input.PriceSet || input.Price < 0 {
		return nil, Invalid("price must be a non-negative number")
	}
	if image == nil {
		return nil, Invalid("image required")
	}

	body, contentType, err := encodeProductForm(input, image)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.baseURL+"/api/admin/models", body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", contentType)
	r.auth.SetAuth(req)

	var payload modelResponse
	if err := r.do(req, &payload); err != nil {
		return nil, err
	}
	product := payload.Model.toProduct(r.baseURL)
	return &product, nil
}

func (r *RESTRepository) Update(ctx context.Context, id string, input ProductInput, image *multipart.FileHeader) (*models.Product, error) {
	body, contentType, err := encodeProductForm(input, image)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, r.baseURL+"/api/admin/models/"+id, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", contentType)
	r.auth.SetAuth(req)

	var payload modelResponse
	if err := r.do(req, &payload); err != nil {
		return nil, err
	}
	product := payload.Model.toProduct(r.baseURL)
	return &product, nil
}

func (r *RESTRepository) Delete(ctx context.Context, id string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, r.baseURL+"/api/admin/models/"+id, nil)
	if err != nil {
		return err
	}
	r.auth.SetAuth(req)
	return r.do(req, nil)
}

// SetActive has no upstream route; the REST API variant has no
// activation flag at all.
func (r *RESTRepository) SetActive(ctx context.Context, id string, active bool) (*models.Product, error) {
	return nil, ErrNotSupported
}

func (r *RESTRepository) do(req *http.Request, out interface{}) error {
	if err := r.limiter.Wait(req.Context()); err != nil {
		return err
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeAPIError(resp)
	}
	if out == nil {
		io.Copy(io.Discard, resp.Body)
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func decodeAPIError(resp *http.Response) error {
	switch resp.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return ErrUnauthorized
	case http.StatusNotFound:
		return ErrNotFound
	}

	var payload errorResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err == nil && payload.Error != "" {
		if resp.StatusCode == http.StatusBadRequest {
			return Invalid(payload.Error)
		}
		return fmt.Errorf("catalog api: %s", payload.Error)
	}
	return fmt.Errorf("catalog api: unexpected status %s", resp.Status)
}

// encodeProductForm marshals the form into the multipart body the admin
// routes expect. Only submitted fields are written, so updates never
// blank out an upstream field that was left untouched, and the image
// part is written only when a file was actually supplied.
func encodeProductForm(input ProductInput, image *multipart.FileHeader) (*bytes.Buffer, string, error) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	fields := []struct {
		key   string
		value string
		set   bool
	}{
		{"name", input.Name, input.NameSet},
		{"brand", input.Brand, input.BrandSet},
		{"price", strconv.FormatFloat(input.Price, 'f', -1, 64), input.PriceSet},
		{"technologyType", input.TechnologyType, input.TechnologyTypeSet},
		{"capacity", input.Capacity, input.CapacitySet},
		{"warranty", input.Warranty, input.WarrantySet},
		{"purificationStages", input.PurificationStages, input.PurificationStagesSet},
		{"energyConsumption", input.EnergyConsumption, input.EnergyConsumptionSet},
		{"colorVariant", input.ColorVariant, input.ColorVariantSet},
		{"dimensions", input.Dimensions, input.DimensionsSet},
		{"weight", input.Weight, input.WeightSet},
		{"description", input.Description, input.DescriptionSet},
		{"tags", strings.Join(input.Tags, ","), input.TagsSet},
	}
	for _, field := range fields {
		if !field.set {
			continue
		}
		if err := writer.WriteField(field.key, field.value); err != nil {
			return nil, "", err
		}
	}

	if image != nil {
		part, err := writer.CreateFormFile("image", image.Filename)
		if err != nil {
			return nil, "", err
		}
		file, err := image.Open()
		if err != nil {
			return nil, "", err
		}
		defer file.Close()
		if _, err := io.Copy(part, file); err != nil {
			return nil, "", err
		}
	}

	if err := writer.Close(); err != nil {
		return nil, "", err
	}
	return body, writer.FormDataContentType(), nil
}
