package service

import (
	"context"

	"github.com/agrifarm/farm-management-api/internal/core/domain"
	"github.com/agrifarm/farm-management-api/internal/core/ports"
)

type cropService struct {
	repo ports.CropRepository
}

// NewCropService returns the crop catalogue CRUD service.
func NewCropService(repo ports.CropRepository) ports.CropService {
	return &cropService{repo: repo}
}

func validateCrop(c *domain.Crop) error {
	if c.Name == "" {
		return domain.Invalid("crop name must not be empty")
	}
	if c.Quantity < 0 {
		return domain.Invalid("crop quantity must not be negative")
	}
	return nil
}

func (s *cropService) Create(ctx context.Context, crop *domain.Crop) (*domain.Crop, error) {
	if err := validateCrop(crop); err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, crop)
}

func (s *cropService) Get(ctx context.Context, id string) (*domain.Crop, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *cropService) List(ctx context.Context) ([]domain.Crop, error) {
	return s.repo.FindAll(ctx)
}

func (s *cropService) Update(ctx context.Context, crop *domain.Crop) error {
	if err := validateCrop(crop); err != nil {
		return err
	}
	return s.repo.Update(ctx, crop)
}

func (s *cropService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
