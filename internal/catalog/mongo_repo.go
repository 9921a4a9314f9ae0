package catalog

import (
	"context"
	"mime/multipart"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Murugavl/RO-Catalog/internal/models"
)

// MongoRepository is the table-backed product store. Documents live in the
// "products" collection; legacy snake_case documents are normalized on read.
type MongoRepository struct {
	db     *mongo.Database
	images *ImageStore
}

func NewMongoRepository(db *mongo.Database, images *ImageStore) *MongoRepository {
	return &MongoRepository{db: db, images: images}
}

func (r *MongoRepository) products() *mongo.Collection {
	return r.db.Collection("products")
}

func (r *MongoRepository) List(ctx context.Context) ([]models.Product, error) {
	return r.find(ctx, bson.M{"isActive": bson.M{"$ne": false}})
}

func (r *MongoRepository) ListAll(ctx context.Context) ([]models.Product, error) {
	return r.find(ctx, bson.M{})
}

func (r *MongoRepository) find(ctx context.Context, filter bson.M) ([]models.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.products().Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	return decodeProducts(ctx, cursor)
}

func (r *MongoRepository) Get(ctx context.Context, id string) (*models.Product, error) {
	objectID, err := parseID(id)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var raw bson.M
	err = r.products().FindOne(ctx, bson.M{
		"_id":      objectID,
		"isActive": bson.M{"$ne": false},
	}).Decode(&raw)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	product, err := normalizeProductDocument(raw)
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *MongoRepository) Create(ctx context.Context, input ProductInput, image *multipart.FileHeader) (*models.Product, error) {
	name := strings.TrimSpace(input.Name)
	if !input.NameSet || name == "" {
		return nil, Invalid("name required")
	}
	if !input.PriceSet || input.Price < 0 {
		return nil, Invalid("price must be a non-negative number")
	}

	imageURL := strings.TrimSpace(input.ImageURL)
	if image != nil {
		saved, err := r.images.Save(image)
		if err != nil {
			return nil, err
		}
		imageURL = saved
	}

	isActive := true
	if input.IsActiveSet {
		isActive = input.IsActive
	}

	now := time.Now()
	product := models.Product{
		Name:               name,
		Brand:              strings.TrimSpace(input.Brand),
		Price:              input.Price,
		TechnologyType:     strings.TrimSpace(input.TechnologyType),
		Capacity:           strings.TrimSpace(input.Capacity),
		Warranty:           strings.TrimSpace(input.Warranty),
		PurificationStages: strings.TrimSpace(input.PurificationStages),
		EnergyConsumption:  strings.TrimSpace(input.EnergyConsumption),
		ColorVariant:       strings.TrimSpace(input.ColorVariant),
		Dimensions:         strings.TrimSpace(input.Dimensions),
		Weight:             strings.TrimSpace(input.Weight),
		Description:        strings.TrimSpace(input.Description),
		ImageURL:           imageURL,
		GalleryImages:      models.StringList(input.GalleryImages),
		Specifications:     models.SpecMap(input.Specifications),
		Tags:               models.StringList(input.Tags),
		IsActive:           isActive,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.products().InsertOne(ctx, product)
	if err != nil {
		return nil, err
	}
	product.ID = res.InsertedID.(primitive.ObjectID)
	return &product, nil
}

func (r *MongoRepository) Update(ctx context.Context, id string, input ProductInput, image *multipart.FileHeader) (*models.Product, error) {
	objectID, err := parseID(id)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	var existing models.Product
	err = r.products().FindOne(ctx, bson.M{"_id": objectID}).Decode(&existing)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	updateSet := bson.M{}
	updateUnset := bson.M{}

	if input.NameSet {
		name := strings.TrimSpace(input.Name)
		if name == "" {
			return nil, Invalid("name required")
		}
		updateSet["name"] = name
	}
	if input.PriceSet {
		if input.Price < 0 {
			return nil, Invalid("price must be a non-negative number")
		}
		updateSet["price"] = input.Price
	}
	setOrUnsetString(updateSet, updateUnset, "brand", input.Brand, input.BrandSet)
	setOrUnsetString(updateSet, updateUnset, "technologyType", input.TechnologyType, input.TechnologyTypeSet)
	setOrUnsetString(updateSet, updateUnset, "capacity", input.Capacity, input.CapacitySet)
	setOrUnsetString(updateSet, updateUnset, "warranty", input.Warranty, input.WarrantySet)
	setOrUnsetString(updateSet, updateUnset, "purificationStages", input.PurificationStages, input.PurificationStagesSet)
	setOrUnsetString(updateSet, updateUnset, "energyConsumption", input.EnergyConsumption, input.EnergyConsumptionSet)
	setOrUnsetString(updateSet, updateUnset, "colorVariant", input.ColorVariant, input.ColorVariantSet)
	setOrUnsetString(updateSet, updateUnset, "dimensions", input.Dimensions, input.DimensionsSet)
	setOrUnsetString(updateSet, updateUnset, "weight", input.Weight, input.WeightSet)
	setOrUnsetString(updateSet, updateUnset, "description", input.Description, input.DescriptionSet)
	if input.GallerySet {
		updateSet["galleryImages"] = models.StringList(input.GalleryImages)
	}
	if input.SpecsSet {
		updateSet["specifications"] = models.SpecMap(input.Specifications)
	}
	if input.TagsSet {
		updateSet["tags"] = models.StringList(input.Tags)
	}
	if input.IsActiveSet {
		updateSet["isActive"] = input.IsActive
	}

	newImageURL := ""
	if image != nil {
		saved, err := r.images.Save(image)
		if err != nil {
			return nil, err
		}
		newImageURL = saved
		updateSet["imageUrl"] = saved
	} else if input.ImageURLSet {
		setOrUnsetString(updateSet, updateUnset, "imageUrl", input.ImageURL, true)
	}

	if len(updateSet) == 0 && len(updateUnset) == 0 {
		return nil, Invalid("no fields to update")
	}
	updateSet["updatedAt"] = time.Now()

	update := bson.M{"$set": updateSet}
	if len(updateUnset) > 0 {
		update["$unset"] = updateUnset
	}

	result, err := r.products().UpdateOne(ctx, bson.M{"_id": objectID}, update)
	if err != nil {
		return nil, err
	}
	if result.MatchedCount == 0 {
		return nil, ErrNotFound
	}

	if newImageURL != "" && existing.ImageURL != "" && existing.ImageURL != newImageURL {
		r.images.removeQuietly(existing.ImageURL)
	}

	var raw bson.M
	if err := r.products().FindOne(ctx, bson.M{"_id": objectID}).Decode(&raw); err != nil {
		return nil, err
	}
	updated, err := normalizeProductDocument(raw)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (r *MongoRepository) Delete(ctx context.Context, id string) error {
	objectID, err := parseID(id)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var existing models.Product
	err = r.products().FindOne(ctx, bson.M{"_id": objectID}).Decode(&existing)
	if err == mongo.ErrNoDocuments {
		return ErrNotFound
	}
	if err != nil {
		return err
	}

	res, err := r.products().DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}

	r.images.removeQuietly(existing.ImageURL)
	return nil
}

func (r *MongoRepository) SetActive(ctx context.Context, id string, active bool) (*models.Product, error) {
	objectID, err := parseID(id)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	result, err := r.products().UpdateOne(
		ctx,
		bson.M{"_id": objectID},
		bson.M{"$set": bson.M{"isActive": active, "updatedAt": time.Now()}},
	)
	if err != nil {
		return nil, err
	}
	if result.MatchedCount == 0 {
		return nil, ErrNotFound
	}

	var raw bson.M
	if err := r.products().FindOne(ctx, bson.M{"_id": objectID}).Decode(&raw); err != nil {
		return nil, err
	}
	updated, err := normalizeProductDocument(raw)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func parseID(id string) (primitive.ObjectID, error) {
	objectID, err := primitive.ObjectIDFromHex(strings.TrimSpace(id))
	if err != nil {
		return primitive.NilObjectID, Invalid("invalid id")
	}
	return objectID, nil
}

func setOrUnsetString(set, unset bson.M, key, value string, present bool) {
	if !present {
		return
	}
	if trimmed := strings.TrimSpace(value); trimmed != "" {
		set[key] = trimmed
	} else {
		unset[key] = ""
	}
}
