package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/agrifarm/farm-management-api/internal/core/domain"
)

const harvestCollection = "harvests"

type HarvestRepository struct {
	coll *mongo.Collection
}

func NewHarvestRepository(db *mongo.Database) *HarvestRepository {
	return &HarvestRepository{coll: db.Collection(harvestCollection)}
}

func (r *HarvestRepository) Create(ctx context.Context, harvest *domain.Harvest) (*domain.Harvest, error) {
	harvest.ID = primitive.NewObjectID().Hex()
	if _, err := r.coll.InsertOne(ctx, harvest); err != nil {
		return nil, fmt.Errorf("insert harvest: %w", err)
	}
	return harvest, nil
}

func (r *HarvestRepository) FindByID(ctx context.Context, id string) (*domain.Harvest, error) {
	var h domain.Harvest
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&h); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrHarvestNotFound
		}
		return nil, fmt.Errorf("find harvest: %w", err)
	}
	return &h, nil
}

func (r *HarvestRepository) FindAll(ctx context.Context) ([]domain.Harvest, error) {
	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list harvests: %w", err)
	}
	defer cur.Close(ctx)

	var harvests []domain.Harvest
	if err := cur.All(ctx, &harvests); err != nil {
		return nil, fmt.Errorf("decode harvests: %w", err)
	}
	return harvests, nil
}

func (r *HarvestRepository) Update(ctx context.Context, harvest *domain.Harvest) error {
	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": harvest.ID}, harvest)
	if err != nil {
		return fmt.Errorf("update harvest: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrHarvestNotFound
	}
	return nil
}

func (r *HarvestRepository) Delete(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete harvest: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrHarvestNotFound
	}
	return nil
}
