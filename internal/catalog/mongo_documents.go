package catalog

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Murugavl/RO-Catalog/internal/models"
)

// Older client generations wrote snake_case documents (model_name,
// image_url, is_active, ...). Reads alias those keys to the canonical
// camelCase names before decoding so both shapes come out as one Product.
var legacyFieldAliases = map[string]string{
	"model_name":          "name",
	"image_url":           "imageUrl",
	"gallery_images":      "galleryImages",
	"technology_type":     "technologyType",
	"purification_stages": "purificationStages",
	"energy_consumption":  "energyConsumption",
	"color_variant":       "colorVariant",
	"is_active":           "isActive",
	"created_at":          "createdAt",
	"updated_at":          "updatedAt",
}

func normalizeProductDocument(raw bson.M) (models.Product, error) {
	for legacy, canonical := range legacyFieldAliases {
		value, ok := raw[legacy]
		if !ok {
			continue
		}
		if _, exists := raw[canonical]; !exists {
			raw[canonical] = value
		}
		delete(raw, legacy)
	}

	if val, ok := raw["price"]; ok {
		switch typed := val.(type) {
		case int32:
			raw["price"] = float64(typed)
		case int64:
			raw["price"] = float64(typed)
		case float64:
			// already canonical
		default:
			raw["price"] = 0.0
		}
	}

	// Documents written before the activation flag existed count as active.
	if _, ok := raw["isActive"]; !ok {
		raw["isActive"] = true
	}

	for _, key := range []string{"createdAt", "updatedAt"} {
		if str, ok := raw[key].(string); ok {
			if parsed, err := time.Parse(time.RFC3339, str); err == nil {
				raw[key] = primitive.NewDateTimeFromTime(parsed)
			} else {
				delete(raw, key)
			}
		}
	}

	data, err := bson.Marshal(raw)
	if err != nil {
		return models.Product{}, err
	}

	var p models.Product
	if err := bson.Unmarshal(data, &p); err != nil {
		return models.Product{}, err
	}
	return p, nil
}

func decodeProducts(ctx context.Context, cursor *mongo.Cursor) ([]models.Product, error) {
	products := make([]models.Product, 0)

	for cursor.Next(ctx) {
		var raw bson.M
		if err := cursor.Decode(&raw); err != nil {
			return nil, err
		}

		product, err := normalizeProductDocument(raw)
		if err != nil {
			return nil, err
		}
		products = append(products, product)
	}

	if err := cursor.Err(); err != nil {
		return nil, err
	}
	return products, nil
}
