package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/agrifarm/farm-management-api/internal/core/domain"
)

const fieldCollection = "fields"

// FieldRepository persists plots of land. Entity documents carry their
// ObjectID hex as a plain string _id, assigned at insert time.
type FieldRepository struct {
	coll *mongo.Collection
}

func NewFieldRepository(db *mongo.Database) *FieldRepository {
	return &FieldRepository{coll: db.Collection(fieldCollection)}
}

func (r *FieldRepository) Create(ctx context.Context, field *domain.Field) (*domain.Field, error) {
	field.ID = primitive.NewObjectID().Hex()
	if _, err := r.coll.InsertOne(ctx, field); err != nil {
		return nil, fmt.Errorf("insert field: %w", err)
	}
	return field, nil
}

func (r *FieldRepository) FindByID(ctx context.Context, id string) (*domain.Field, error) {
	var f domain.Field
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&f); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrFieldNotFound
		}
		return nil, fmt.Errorf("find field: %w", err)
	}
	return &f, nil
}

func (r *FieldRepository) FindAll(ctx context.Context) ([]domain.Field, error) {
	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list fields: %w", err)
	}
	defer cur.Close(ctx)

	var fields []domain.Field
	if err := cur.All(ctx, &fields); err != nil {
		return nil, fmt.Errorf("decode fields: %w", err)
	}
	return fields, nil
}

func (r *FieldRepository) Update(ctx context.Context, field *domain.Field) error {
	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": field.ID}, field)
	if err != nil {
		return fmt.Errorf("update field: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrFieldNotFound
	}
	return nil
}

func (r *FieldRepository) Delete(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete field: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrFieldNotFound
	}
	return nil
}
