package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/agrifarm/farm-management-api/internal/core/domain"
)

const readingCollection = "readings"

type ReadingRepository struct {
	coll *mongo.Collection
}

func NewReadingRepository(db *mongo.Database) *ReadingRepository {
	return &ReadingRepository{coll: db.Collection(readingCollection)}
}

func (r *ReadingRepository) Create(ctx context.Context, reading *domain.Reading) (*domain.Reading, error) {
	reading.ID = primitive.NewObjectID().Hex()
	if _, err := r.coll.InsertOne(ctx, reading); err != nil {
		return nil, fmt.Errorf("insert reading: %w", err)
	}
	return reading, nil
}

func (r *ReadingRepository) FindByID(ctx context.Context, id string) (*domain.Reading, error) {
	var m domain.Reading
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&m); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrReadingNotFound
		}
		return nil, fmt.Errorf("find reading: %w", err)
	}
	return &m, nil
}

func (r *ReadingRepository) FindAll(ctx context.Context) ([]domain.Reading, error) {
	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list readings: %w", err)
	}
	defer cur.Close(ctx)

	var readings []domain.Reading
	if err := cur.All(ctx, &readings); err != nil {
		return nil, fmt.Errorf("decode readings: %w", err)
	}
	return readings, nil
}

func (r *ReadingRepository) Update(ctx context.Context, reading *domain.Reading) error {
	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": reading.ID}, reading)
	if err != nil {
		return fmt.Errorf("update reading: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrReadingNotFound
	}
	return nil
}

func (r *ReadingRepository) Delete(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete reading: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrReadingNotFound
	}
	return nil
}
