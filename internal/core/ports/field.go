package ports

import (
	"context"

	"github.com/agrifarm/farm-management-api/internal/core/domain"
)

type FieldRepository interface {
	Create(ctx context.Context, field *domain.Field) (*domain.Field, error)
	FindByID(ctx context.Context, id string) (*domain.Field, error)
	FindAll(ctx context.Context) ([]domain.Field, error)
	Update(ctx context.Context, field *domain.Field) error
	Delete(ctx context.Context, id string) error
}

type FieldService interface {
	Create(ctx context.Context, field *domain.Field) (*domain.Field, error)
	Get(ctx context.Context, id string) (*domain.Field, error)
	List(ctx context.Context) ([]domain.Field, error)
	Update(ctx context.Context, field *domain.Field) error
	Delete(ctx context.Context, id string) error
}
