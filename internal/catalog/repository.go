package catalog

import (
	"context"
	"errors"
	"log"
	"mime/multipart"

	"github.com/Murugavl/RO-Catalog/internal/models"
)

var (
	ErrNotFound     = errors.New("product not found")
	ErrUnauthorized = errors.New("unauthorized")
	ErrNotSupported = errors.New("operation not supported by this backend")
)

// ValidationError marks input rejections so handlers can answer 400
// instead of 500 without string-matching messages.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func Invalid(msg string) error { return &ValidationError{Message: msg} }

func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}

// ProductInput carries form fields into create and update operations.
// Set flags distinguish "field absent" from "field cleared" so updates
// only touch what the form actually submitted.
type ProductInput struct {
	Name    string
	NameSet bool

	Brand    string
	BrandSet bool

	Price    float64
	PriceSet bool

	TechnologyType    string
	TechnologyTypeSet bool

	Capacity    string
	CapacitySet bool

	Warranty    string
	WarrantySet bool

	PurificationStages    string
	PurificationStagesSet bool

	EnergyConsumption    string
	EnergyConsumptionSet bool

	ColorVariant    string
	ColorVariantSet bool

	Dimensions    string
	DimensionsSet bool

	Weight    string
	WeightSet bool

	Description    string
	DescriptionSet bool

	// URL-only image reference, the table-backed alternative to a file upload.
	ImageURL    string
	ImageURLSet bool

	GalleryImages []string
	GallerySet    bool

	Specifications map[string]string
	SpecsSet       bool

	Tags    []string
	TagsSet bool

	IsActive    bool
	IsActiveSet bool
}

// Repository is the product data-access contract. Two implementations
// exist: the Mongo table backend and the outbound REST client backend.
type Repository interface {
	// List returns active products only, newest first.
	List(ctx context.Context) ([]models.Product, error)
	// ListAll returns every product, inactive included, newest first.
	ListAll(ctx context.Context) ([]models.Product, error)
	Get(ctx context.Context, id string) (*models.Product, error)
	Create(ctx context.Context, input ProductInput, image *multipart.FileHeader) (*models.Product, error)
	Update(ctx context.Context, id string, input ProductInput, image *multipart.FileHeader) (*models.Product, error)
	Delete(ctx context.Context, id string) error
	SetActive(ctx context.Context, id string, active bool) (*models.Product, error)
}

// Source tells the caller where a catalog listing came from.
type Source string

const (
	SourceLive     Source = "live"
	SourceEmpty    Source = "empty"
	SourceFallback Source = "fallback"
)

// ListResult separates a live listing, a legitimately empty catalog and a
// failed read. The public site substitutes samples for the last two, but
// callers can tell the cases apart.
type ListResult struct {
	Products []models.Product
	Source   Source
}

// ListWithFallback reads the public catalog and degrades to the sample
// set when the read fails or comes back empty. Read failures are logged
// and never propagated to the caller.
func ListWithFallback(ctx context.Context, repo Repository) ListResult {
	products, err := repo.List(ctx)
	if err != nil {
		log.Printf("[catalog] list failed, serving samples: %v", err)
		return ListResult{Products: FallbackProducts(), Source: SourceFallback}
	}
	if len(products) == 0 {
		return ListResult{Products: FallbackProducts(), Source: SourceEmpty}
	}
	return ListResult{Products: products, Source: SourceLive}
}
