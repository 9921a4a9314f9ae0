package models

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Product is the canonical catalog entity. The stored documents and the
// upstream API each use their own field names; repositories map both into
// this one shape so nothing past the repository boundary sees two schemas.
type Product struct {
	ID                 primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name               string             `bson:"name" json:"name"`
	Brand              string             `bson:"brand,omitempty" json:"brand,omitempty"`
	Price              float64            `bson:"price" json:"price"`
	TechnologyType     string             `bson:"technologyType,omitempty" json:"technologyType,omitempty"`
	Capacity           string             `bson:"capacity,omitempty" json:"capacity,omitempty"`
	Warranty           string             `bson:"warranty,omitempty" json:"warranty,omitempty"`
	PurificationStages string             `bson:"purificationStages,omitempty" json:"purificationStages,omitempty"`
	EnergyConsumption  string             `bson:"energyConsumption,omitempty" json:"energyConsumption,omitempty"`
	ColorVariant       string             `bson:"colorVariant,omitempty" json:"colorVariant,omitempty"`
	Dimensions         string             `bson:"dimensions,omitempty" json:"dimensions,omitempty"`
	Weight             string             `bson:"weight,omitempty" json:"weight,omitempty"`
	Description        string             `bson:"description,omitempty" json:"description,omitempty"`
	ImageURL           string             `bson:"imageUrl,omitempty" json:"imageUrl,omitempty"`
	GalleryImages      StringList         `bson:"galleryImages,omitempty" json:"galleryImages,omitempty"`
	Specifications     SpecMap            `bson:"specifications,omitempty" json:"specifications,omitempty"`
	Tags               StringList         `bson:"tags,omitempty" json:"tags,omitempty"`
	IsActive           bool               `bson:"isActive" json:"isActive"`
	CreatedAt          time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt          time.Time          `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

// ResolveImageURL turns a server-relative image path into an absolute URL
// against the given origin. Absolute references pass through unchanged.
func ResolveImageURL(ref, origin string) string {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return ""
	}
	if strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
		return ref
	}
	return strings.TrimRight(origin, "/") + "/" + strings.TrimLeft(ref, "/")
}
