package ports

import (
	"context"

	"github.com/agrifarm/farm-management-api/internal/core/domain"
)

type HarvestRepository interface {
	Create(ctx context.Context, harvest *domain.Harvest) (*domain.Harvest, error)
	FindByID(ctx context.Context, id string) (*domain.Harvest, error)
	FindAll(ctx context.Context) ([]domain.Harvest, error)
	Update(ctx context.Context, harvest *domain.Harvest) error
	Delete(ctx context.Context, id string) error
}

type HarvestService interface {
	Create(ctx context.Context, harvest *domain.Harvest) (*domain.Harvest, error)
	Get(ctx context.Context, id string) (*domain.Harvest, error)
	List(ctx context.Context) ([]domain.Harvest, error)
	Update(ctx context.Context, harvest *domain.Harvest) error
	Delete(ctx context.Context, id string) error
}
