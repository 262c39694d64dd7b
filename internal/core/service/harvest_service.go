package service

import (
	"context"

	"github.com/agrifarm/farm-management-api/internal/core/domain"
	"github.com/agrifarm/farm-management-api/internal/core/ports"
)

type harvestService struct {
	repo ports.HarvestRepository
}

// NewHarvestService returns the harvest lot CRUD service.
func NewHarvestService(repo ports.HarvestRepository) ports.HarvestService {
	return &harvestService{repo: repo}
}

func validateHarvest(h *domain.Harvest) error {
	if h.CropID == "" {
		return domain.Invalid("crop id must not be empty")
	}
	if h.FieldID == "" {
		return domain.Invalid("field id must not be empty")
	}
	if h.SupervisorID == "" {
		return domain.Invalid("supervisor id must not be empty")
	}
	if h.Quantity <= 0 {
		return domain.Invalid("quantity must be greater than zero")
	}
	if h.UnitPrice <= 0 {
		return domain.Invalid("unit price must be greater than zero")
	}
	if h.Quality == "" {
		return domain.Invalid("quality must not be empty")
	}
	if h.Status != "" && !h.Status.Valid() {
		return domain.Invalid("status must be pending_validation, ready_for_sale, or sold")
	}
	return nil
}

func (s *harvestService) Create(ctx context.Context, harvest *domain.Harvest) (*domain.Harvest, error) {
	if err := validateHarvest(harvest); err != nil {
		return nil, err
	}
	if harvest.Status == "" {
		harvest.Status = domain.HarvestPendingValidation
	}
	return s.repo.Create(ctx, harvest)
}

func (s *harvestService) Get(ctx context.Context, id string) (*domain.Harvest, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *harvestService) List(ctx context.Context) ([]domain.Harvest, error) {
	return s.repo.FindAll(ctx)
}

func (s *harvestService) Update(ctx context.Context, harvest *domain.Harvest) error {
	if harvest.Quantity <= 0 || harvest.UnitPrice <= 0 {
		return domain.Invalid("quantity and unit price must be greater than zero")
	}
	if harvest.Status != "" && !harvest.Status.Valid() {
		return domain.Invalid("status must be pending_validation, ready_for_sale, or sold")
	}
	return s.repo.Update(ctx, harvest)
}

func (s *harvestService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
