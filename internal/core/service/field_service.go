package service

import (
	"context"

	"github.com/agrifarm/farm-management-api/internal/core/domain"
	"github.com/agrifarm/farm-management-api/internal/core/ports"
)

type fieldService struct {
	repo ports.FieldRepository
}

// NewFieldService returns the plot-of-land CRUD service.
func NewFieldService(repo ports.FieldRepository) ports.FieldService {
	return &fieldService{repo: repo}
}

func validateField(f *domain.Field) error {
	if f.Name == "" {
		return domain.Invalid("field name must not be empty")
	}
	if f.AreaHectares <= 0 {
		return domain.Invalid("field area must be greater than zero")
	}
	return nil
}

func (s *fieldService) Create(ctx context.Context, field *domain.Field) (*domain.Field, error) {
	if err := validateField(field); err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, field)
}

func (s *fieldService) Get(ctx context.Context, id string) (*domain.Field, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *fieldService) List(ctx context.Context) ([]domain.Field, error) {
	return s.repo.FindAll(ctx)
}

func (s *fieldService) Update(ctx context.Context, field *domain.Field) error {
	if err := validateField(field); err != nil {
		return err
	}
	return s.repo.Update(ctx, field)
}

func (s *fieldService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
