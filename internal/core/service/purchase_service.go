package service

import (
	"context"
	"time"

	"github.com/agrifarm/farm-management-api/internal/core/domain"
	"github.com/agrifarm/farm-management-api/internal/core/ports"

	"github.com/agrifarm/farm-management-api/internal/api/metrics"
)

type purchaseService struct {
	repo ports.PurchaseRepository
}

// NewPurchaseService returns the purchase order CRUD service.
func NewPurchaseService(repo ports.PurchaseRepository) ports.PurchaseService {
	return &purchaseService{repo: repo}
}

func validatePurchase(p *domain.Purchase) error {
	if p.BuyerID == "" {
		return domain.Invalid("buyer id must not be empty")
	}
	if p.HarvestID == "" {
		return domain.Invalid("harvest id must not be empty")
	}
	if p.Quantity <= 0 {
		return domain.Invalid("quantity must be greater than zero")
	}
	if p.TotalPrice <= 0 {
		return domain.Invalid("total price must be greater than zero")
	}
	return nil
}

func (s *purchaseService) Create(ctx context.Context, purchase *domain.Purchase) (*domain.Purchase, error) {
	if err := validatePurchase(purchase); err != nil {
		return nil, err
	}
	if purchase.Date.IsZero() {
		purchase.Date = time.Now().UTC()
	}
	if purchase.Status == "" {
		purchase.Status = domain.PurchaseProcessing
	}

	created, err := s.repo.Create(ctx, purchase)
	if err != nil {
		return nil, err
	}
	metrics.PurchasesCreatedTotal.Inc()
	return created, nil
}

func (s *purchaseService) Get(ctx context.Context, id string) (*domain.Purchase, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *purchaseService) List(ctx context.Context) ([]domain.Purchase, error) {
	return s.repo.FindAll(ctx)
}

func (s *purchaseService) Update(ctx context.Context, purchase *domain.Purchase) error {
	if err := validatePurchase(purchase); err != nil {
		return err
	}
	return s.repo.Update(ctx, purchase)
}

func (s *purchaseService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
