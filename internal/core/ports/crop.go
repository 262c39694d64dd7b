package ports

import (
	"context"

	"github.com/agrifarm/farm-management-api/internal/core/domain"
)

type CropRepository interface {
	Create(ctx context.Context, crop *domain.Crop) (*domain.Crop, error)
	FindByID(ctx context.Context, id string) (*domain.Crop, error)
	FindAll(ctx context.Context) ([]domain.Crop, error)
	Update(ctx context.Context, crop *domain.Crop) error
	Delete(ctx context.Context, id string) error
}

type CropService interface {
	Create(ctx context.Context, crop *domain.Crop) (*domain.Crop, error)
	Get(ctx context.Context, id string) (*domain.Crop, error)
	List(ctx context.Context) ([]domain.Crop, error)
	Update(ctx context.Context, crop *domain.Crop) error
	Delete(ctx context.Context, id string) error
}

type PlantingRepository interface {
	Create(ctx context.Context, planting *domain.Planting) (*domain.Planting, error)
	FindByID(ctx context.Context, id string) (*domain.Planting, error)
	FindAll(ctx context.Context) ([]domain.Planting, error)
	Update(ctx context.Context, planting *domain.Planting) error
	Delete(ctx context.Context, id string) error
}

type PlantingService interface {
	Create(ctx context.Context, planting *domain.Planting) (*domain.Planting, error)
	Get(ctx context.Context, id string) (*domain.Planting, error)
	List(ctx context.Context) ([]domain.Planting, error)
	Update(ctx context.Context, planting *domain.Planting) error
	Delete(ctx context.Context, id string) error
}
