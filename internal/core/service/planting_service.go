package service

import (
	"context"

	"github.com/agrifarm/farm-management-api/internal/core/domain"
	"github.com/agrifarm/farm-management-api/internal/core/ports"
)

type plantingService struct {
	repo ports.PlantingRepository
}

// NewPlantingService returns the crop-on-field assignment CRUD service.
func NewPlantingService(repo ports.PlantingRepository) ports.PlantingService {
	return &plantingService{repo: repo}
}

func validatePlanting(p *domain.Planting) error {
	if p.FieldID == "" {
		return domain.Invalid("field id must not be empty")
	}
	if p.CropID == "" {
		return domain.Invalid("crop id must not be empty")
	}
	if p.Status != "" && !p.Status.Valid() {
		return domain.Invalid("status must be growing, harvest, or finished")
	}
	return nil
}

func (s *plantingService) Create(ctx context.Context, planting *domain.Planting) (*domain.Planting, error) {
	if err := validatePlanting(planting); err != nil {
		return nil, err
	}
	if planting.Status == "" {
		planting.Status = domain.PlantingGrowing
	}
	return s.repo.Create(ctx, planting)
}

func (s *plantingService) Get(ctx context.Context, id string) (*domain.Planting, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *plantingService) List(ctx context.Context) ([]domain.Planting, error) {
	return s.repo.FindAll(ctx)
}

func (s *plantingService) Update(ctx context.Context, planting *domain.Planting) error {
	if err := validatePlanting(planting); err != nil {
		return err
	}
	return s.repo.Update(ctx, planting)
}

func (s *plantingService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
