package catalog

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Murugavl/RO-Catalog/internal/models"
)

var fallbackIDs = [3]primitive.ObjectID{
	mustObjectID("000000000000000000000001"),
	mustObjectID("000000000000000000000002"),
	mustObjectID("000000000000000000000003"),
}

func mustObjectID(hex string) primitive.ObjectID {
	id, err := primitive.ObjectIDFromHex(hex)
	if err != nil {
		panic(err)
	}
	return id
}

// FallbackProducts returns the fixed sample catalog shown while the live
// data source is down or still empty. Each call returns fresh copies.
func FallbackProducts() []models.Product {
	now := time.Now()
	return []models.Product{
		{
			ID:                 fallbackIDs[0],
			Name:               "Ponsri Aqua Grand+",
			Price:              12500,
			TechnologyType:     "RO + UV + UF + TDS Control",
			Capacity:           "12L",
			Warranty:           "1 Year Comprehensive",
			PurificationStages: "7 Stages",
			EnergyConsumption:  "60W",
			Description:        "Advanced multi-stage purification system ensuring 100% pure and safe drinking water for your family.",
			Specifications: models.SpecMap{
				"Purification Capacity": "15 L/hr",
				"Storage Capacity":      "12 Liters",
				"Filter Changes":        "Every 12 Months",
				"Power Consumption":     "60W",
			},
			ImageURL:  "https://images.unsplash.com/photo-1629854496460-a29241b77f98?auto=format&fit=crop&q=80&w=800",
			IsActive:  true,
			CreatedAt: now,
			UpdatedAt: now,
		},
		{
			ID:                 fallbackIDs[1],
			Name:               "Ponsri Pearl Purifier",
			Price:              9800,
			TechnologyType:     "RO + UV",
			Capacity:           "10L",
			Warranty:           "1 Year Warranty",
			PurificationStages: "6 Stages",
			EnergyConsumption:  "45W",
			Description:        "Compact and elegant RO water purifier suitable for modern kitchens.",
			Specifications: models.SpecMap{
				"Purification Capacity": "12 L/hr",
				"Storage Capacity":      "10 Liters",
				"Filter Changes":        "Every 12 Months",
				"Power Consumption":     "45W",
			},
			ImageURL:  "https://images.unsplash.com/photo-1544551763-46a013bb70d5?auto=format&fit=crop&q=80&w=800",
			IsActive:  true,
			CreatedAt: now,
			UpdatedAt: now,
		},
		{
			ID:                 fallbackIDs[2],
			Name:               "Ponsri Copper Elite",
			Price:              14500,
			TechnologyType:     "RO + UV + UF + Active Copper",
			Capacity:           "15L",
			Warranty:           "2 Years Comprehensive",
			PurificationStages: "8 Stages",
			EnergyConsumption:  "60W",
			Description:        "Premium water purifier with active copper technology for enhanced health benefits.",
			Specifications: models.SpecMap{
				"Purification Capacity": "20 L/hr",
				"Storage Capacity":      "15 Liters",
				"Filter Changes":        "Every 15 Months",
				"Power Consumption":     "60W",
			},
			ImageURL:  "https://images.unsplash.com/photo-1582046808791-f9babaaacff6?auto=format&fit=crop&q=80&w=800",
			IsActive:  true,
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
}
