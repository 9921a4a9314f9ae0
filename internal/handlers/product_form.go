package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Murugavl/RO-Catalog/internal/catalog"
)

// parseProductForm reads the multipart product form into a ProductInput,
// recording which fields were actually submitted so updates leave the
// rest untouched. The bound image file, when present, is returned
// separately and handed to the repository as-is.
func parseProductForm(c *gin.Context) (catalog.ProductInput, *multipart.FileHeader, error) {
	if err := c.Request.ParseMultipartForm(32 << 20); err != nil {
		return catalog.ProductInput{}, nil, catalog.Invalid("invalid multipart form")
	}

	input := catalog.ProductInput{}

	// ---- string fields ----

	if value, ok := c.GetPostForm("name"); ok {
		input.Name = strings.TrimSpace(value)
		input.NameSet = true
	}
	if value, ok := c.GetPostForm("brand"); ok {
		input.Brand = strings.TrimSpace(value)
		input.BrandSet = true
	}
	if value, ok := c.GetPostForm("technologyType"); ok {
		input.TechnologyType = strings.TrimSpace(value)
		input.TechnologyTypeSet = true
	}
	if value, ok := c.GetPostForm("capacity"); ok {
		input.Capacity = strings.TrimSpace(value)
		input.CapacitySet = true
	}
	if value, ok := c.GetPostForm("warranty"); ok {
		input.Warranty = strings.TrimSpace(value)
		input.WarrantySet = true
	}
	if value, ok := c.GetPostForm("purificationStages"); ok {
		input.PurificationStages = strings.TrimSpace(value)
		input.PurificationStagesSet = true
	}
	if value, ok := c.GetPostForm("energyConsumption"); ok {
		input.EnergyConsumption = strings.TrimSpace(value)
		input.EnergyConsumptionSet = true
	}
	if value, ok := c.GetPostForm("colorVariant"); ok {
		input.ColorVariant = strings.TrimSpace(value)
		input.ColorVariantSet = true
	}
	if value, ok := c.GetPostForm("dimensions"); ok {
		input.Dimensions = strings.TrimSpace(value)
		input.DimensionsSet = true
	}
	if value, ok := c.GetPostForm("weight"); ok {
		input.Weight = strings.TrimSpace(value)
		input.WeightSet = true
	}
	if value, ok := c.GetPostForm("description"); ok {
		input.Description = strings.TrimSpace(value)
		input.DescriptionSet = true
	}
	if value, ok := c.GetPostForm("imageUrl"); ok {
		input.ImageURL = strings.TrimSpace(value)
		input.ImageURLSet = true
	}

	// ---- price ----

	if value, ok := c.GetPostForm("price"); ok {
		parsed, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil {
			return catalog.ProductInput{}, nil, catalog.Invalid("price must be a valid number")
		}
		input.Price = parsed
		input.PriceSet = true
	}

	// ---- tags: comma separated ----

	if value, ok := c.GetPostForm("tags"); ok {
		input.Tags = splitList(value, ",")
		input.TagsSet = true
	}

	// ---- gallery: one URL per line ----

	if value, ok := c.GetPostForm("galleryImages"); ok {
		input.GalleryImages = splitList(value, "\n")
		input.GallerySet = true
	}

	// ---- specifications: raw JSON object text ----

	if value, ok := c.GetPostForm("specifications"); ok {
		specs, err := parseSpecifications(value)
		if err != nil {
			return catalog.ProductInput{}, nil, err
		}
		input.Specifications = specs
		input.SpecsSet = true
	}

	// ---- activation flag ----

	if value, ok := c.GetPostForm("isActive"); ok {
		parsed, err := parseBoolValue(value)
		if err != nil {
			return catalog.ProductInput{}, nil, catalog.Invalid("isActive must be boolean")
		}
		input.IsActive = parsed
		input.IsActiveSet = true
	}

	// ---- image file ----

	file, err := c.FormFile("image")
	if err != nil {
		if !errors.Is(err, http.ErrMissingFile) && !strings.Contains(err.Error(), "no such file") {
			return catalog.ProductInput{}, nil, catalog.Invalid("invalid image upload")
		}
		file = nil
	}

	return input, file, nil
}

func splitList(value, sep string) []string {
	out := make([]string, 0)
	for _, part := range strings.Split(value, sep) {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// parseSpecifications accepts the free-form specification blob as JSON
// object text. Unparseable text is a validation error; no storage call
// is made with a half-understood blob.
func parseSpecifications(value string) (map[string]string, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return map[string]string{}, nil
	}

	var raw map[string]interface{}
	if err := json.Unmarshal([]byte(trimmed), &raw); err != nil {
		return nil, catalog.Invalid("specifications must be a valid JSON object")
	}

	specs := make(map[string]string, len(raw))
	for key, val := range raw {
		switch typed := val.(type) {
		case string:
			specs[key] = typed
		case float64:
			specs[key] = strconv.FormatFloat(typed, 'f', -1, 64)
		case bool:
			specs[key] = strconv.FormatBool(typed)
		case nil:
			specs[key] = ""
		default:
			specs[key] = fmt.Sprintf("%v", typed)
		}
	}
	return specs, nil
}

func parseBoolValue(value string) (bool, error) {
	value = strings.TrimSpace(strings.ToLower(value))
	if value == "on" {
		return true, nil
	}
	return strconv.ParseBool(value)
}
