package ports

import (
	"context"

	"github.com/agrifarm/farm-management-api/internal/core/domain"
)

type PurchaseRepository interface {
	Create(ctx context.Context, purchase *domain.Purchase) (*domain.Purchase, error)
	FindByID(ctx context.Context, id string) (*domain.Purchase, error)
	FindAll(ctx context.Context) ([]domain.Purchase, error)
	Update(ctx context.Context, purchase *domain.Purchase) error
	Delete(ctx context.Context, id string) error
}

type PurchaseService interface {
	Create(ctx context.Context, purchase *domain.Purchase) (*domain.Purchase, error)
	Get(ctx context.Context, id string) (*domain.Purchase, error)
	List(ctx context.Context) ([]domain.Purchase, error)
	Update(ctx context.Context, purchase *domain.Purchase) error
	Delete(ctx context.Context, id string) error
}
