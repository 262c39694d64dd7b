package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/agrifarm/farm-management-api/internal/core/domain"
)

const purchaseCollection = "purchases"

type PurchaseRepository struct {
	coll *mongo.Collection
}

func NewPurchaseRepository(db *mongo.Database) *PurchaseRepository {
	return &PurchaseRepository{coll: db.Collection(purchaseCollection)}
}

func (r *PurchaseRepository) Create(ctx context.Context, purchase *domain.Purchase) (*domain.Purchase, error) {
	purchase.ID = primitive.NewObjectID().Hex()
	if _, err := r.coll.InsertOne(ctx, purchase); err != nil {
		return nil, fmt.Errorf("insert purchase: %w", err)
	}
	return purchase, nil
}

func (r *PurchaseRepository) FindByID(ctx context.Context, id string) (*domain.Purchase, error) {
	var p domain.Purchase
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&p); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrPurchaseNotFound
		}
		return nil, fmt.Errorf("find purchase: %w", err)
	}
	return &p, nil
}

func (r *PurchaseRepository) FindAll(ctx context.Context) ([]domain.Purchase, error) {
	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list purchases: %w", err)
	}
	defer cur.Close(ctx)

	var purchases []domain.Purchase
	if err := cur.All(ctx, &purchases); err != nil {
		return nil, fmt.Errorf("decode purchases: %w", err)
	}
	return purchases, nil
}

func (r *PurchaseRepository) Update(ctx context.Context, purchase *domain.Purchase) error {
	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": purchase.ID}, purchase)
	if err != nil {
		return fmt.Errorf("update purchase: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrPurchaseNotFound
	}
	return nil
}

func (r *PurchaseRepository) Delete(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete purchase: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrPurchaseNotFound
	}
	return nil
}
