package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/agrifarm/farm-management-api/internal/core/domain"
)

const plantingCollection = "plantings"

type PlantingRepository struct {
	coll *mongo.Collection
}

func NewPlantingRepository(db *mongo.Database) *PlantingRepository {
	return &PlantingRepository{coll: db.Collection(plantingCollection)}
}

func (r *PlantingRepository) Create(ctx context.Context, planting *domain.Planting) (*domain.Planting, error) {
	planting.ID = primitive.NewObjectID().Hex()
	if _, err := r.coll.InsertOne(ctx, planting); err != nil {
		return nil, fmt.Errorf("insert planting: %w", err)
	}
	return planting, nil
}

func (r *PlantingRepository) FindByID(ctx context.Context, id string) (*domain.Planting, error) {
	var p domain.Planting
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&p); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrPlantingNotFound
		}
		return nil, fmt.Errorf("find planting: %w", err)
	}
	return &p, nil
}

func (r *PlantingRepository) FindAll(ctx context.Context) ([]domain.Planting, error) {
	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list plantings: %w", err)
	}
	defer cur.Close(ctx)

	var plantings []domain.Planting
	if err := cur.All(ctx, &plantings); err != nil {
		return nil, fmt.Errorf("decode plantings: %w", err)
	}
	return plantings, nil
}

func (r *PlantingRepository) Update(ctx context.Context, planting *domain.Planting) error {
	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": planting.ID}, planting)
	if err != nil {
		return fmt.Errorf("update planting: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrPlantingNotFound
	}
	return nil
}

func (r *PlantingRepository) Delete(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete planting: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrPlantingNotFound
	}
	return nil
}
