package service

import (
	"context"
	"errors"
	"testing"

	"github.com/agrifarm/farm-management-api/internal/core/domain"
)

type stubPurchaseRepo struct {
	createErr error
	created   []*domain.Purchase
}

func (r *stubPurchaseRepo) Create(_ context.Context, p *domain.Purchase) (*domain.Purchase, error) {
	if r.createErr != nil {
		return nil, r.createErr
	}
	r.created = append(r.created, p)
	return p, nil
}

func (r *stubPurchaseRepo) FindByID(_ context.Context, id string) (*domain.Purchase, error) {
	for _, p := range r.created {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, domain.ErrPurchaseNotFound
}

func (r *stubPurchaseRepo) FindAll(_ context.Context) ([]domain.Purchase, error) {
	out := make([]domain.Purchase, 0, len(r.created))
	for _, p := range r.created {
		out = append(out, *p)
	}
	return out, nil
}

func (r *stubPurchaseRepo) Update(_ context.Context, _ *domain.Purchase) error { return nil }
func (r *stubPurchaseRepo) Delete(_ context.Context, _ string) error           { return nil }

func validPurchase() *domain.Purchase {
	return &domain.Purchase{
		BuyerID:    "buyer-1",
		HarvestID:  "harvest-1",
		Quantity:   40,
		TotalPrice: 140,
	}
}

func TestPurchaseService_Create_Defaults(t *testing.T) {
	repo := &stubPurchaseRepo{}
	svc := NewPurchaseService(repo)

	created, err := svc.Create(context.Background(), validPurchase())
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if created.Status != domain.PurchaseProcessing {
		t.Fatalf("expected default status %q, got %q", domain.PurchaseProcessing, created.Status)
	}
	if created.Date.IsZero() {
		t.Fatalf("expected purchase date to default to now")
	}
}

func TestPurchaseService_Create_Validation(t *testing.T) {
	svc := NewPurchaseService(&stubPurchaseRepo{})

	cases := map[string]func(*domain.Purchase){
		"missing buyer":   func(p *domain.Purchase) { p.BuyerID = "" },
		"missing harvest": func(p *domain.Purchase) { p.HarvestID = "" },
		"zero quantity":   func(p *domain.Purchase) { p.Quantity = 0 },
		"zero price":      func(p *domain.Purchase) { p.TotalPrice = 0 },
	}
	for name, mutate := range cases {
		p := validPurchase()
		mutate(p)
		_, err := svc.Create(context.Background(), p)
		var ve *domain.ValidationError
		if !errors.As(err, &ve) {
			t.Errorf("%s: expected validation error, got: %v", name, err)
		}
	}
}

func TestPurchaseService_Create_RepositoryError(t *testing.T) {
	repo := &stubPurchaseRepo{createErr: errors.New("mongo down")}
	svc := NewPurchaseService(repo)

	if _, err := svc.Create(context.Background(), validPurchase()); err == nil {
		t.Fatalf("expected error when the repository fails")
	}
}
