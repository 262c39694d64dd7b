package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/agrifarm/farm-management-api/internal/core/domain"
)

const cropCollection = "crops"

type CropRepository struct {
	coll *mongo.Collection
}

func NewCropRepository(db *mongo.Database) *CropRepository {
	return &CropRepository{coll: db.Collection(cropCollection)}
}

func (r *CropRepository) Create(ctx context.Context, crop *domain.Crop) (*domain.Crop, error) {
	crop.ID = primitive.NewObjectID().Hex()
	if _, err := r.coll.InsertOne(ctx, crop); err != nil {
		return nil, fmt.Errorf("insert crop: %w", err)
	}
	return crop, nil
}

func (r *CropRepository) FindByID(ctx context.Context, id string) (*domain.Crop, error) {
	var c domain.Crop
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&c); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrCropNotFound
		}
		return nil, fmt.Errorf("find crop: %w", err)
	}
	return &c, nil
}

func (r *CropRepository) FindAll(ctx context.Context) ([]domain.Crop, error) {
	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list crops: %w", err)
	}
	defer cur.Close(ctx)

	var crops []domain.Crop
	if err := cur.All(ctx, &crops); err != nil {
		return nil, fmt.Errorf("decode crops: %w", err)
	}
	return crops, nil
}

func (r *CropRepository) Update(ctx context.Context, crop *domain.Crop) error {
	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": crop.ID}, crop)
	if err != nil {
		return fmt.Errorf("update crop: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrCropNotFound
	}
	return nil
}

func (r *CropRepository) Delete(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete crop: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrCropNotFound
	}
	return nil
}
