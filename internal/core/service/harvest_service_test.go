package service

import (
	"context"
	"errors"
	"testing"

	"github.com/agrifarm/farm-management-api/internal/core/domain"
)

type stubHarvestRepo struct {
	created []*domain.Harvest
	updated []*domain.Harvest
}

func (r *stubHarvestRepo) Create(_ context.Context, h *domain.Harvest) (*domain.Harvest, error) {
	r.created = append(r.created, h)
	return h, nil
}

func (r *stubHarvestRepo) FindByID(_ context.Context, id string) (*domain.Harvest, error) {
	for _, h := range r.created {
		if h.ID == id {
			return h, nil
		}
	}
	return nil, domain.ErrHarvestNotFound
}

func (r *stubHarvestRepo) FindAll(_ context.Context) ([]domain.Harvest, error) {
	out := make([]domain.Harvest, 0, len(r.created))
	for _, h := range r.created {
		out = append(out, *h)
	}
	return out, nil
}

func (r *stubHarvestRepo) Update(_ context.Context, h *domain.Harvest) error {
	r.updated = append(r.updated, h)
	return nil
}

func (r *stubHarvestRepo) Delete(_ context.Context, _ string) error { return nil }

func validHarvest() *domain.Harvest {
	return &domain.Harvest{
		CropID:       "crop-1",
		FieldID:      "field-1",
		SupervisorID: "user-1",
		Quantity:     120,
		Quality:      "A",
		UnitPrice:    3.5,
	}
}

func TestHarvestService_Create_DefaultsStatus(t *testing.T) {
	repo := &stubHarvestRepo{}
	svc := NewHarvestService(repo)

	created, err := svc.Create(context.Background(), validHarvest())
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if created.Status != domain.HarvestPendingValidation {
		t.Fatalf("expected default status %q, got %q", domain.HarvestPendingValidation, created.Status)
	}
}

func TestHarvestService_Create_Validation(t *testing.T) {
	svc := NewHarvestService(&stubHarvestRepo{})

	cases := map[string]func(*domain.Harvest){
		"missing crop":       func(h *domain.Harvest) { h.CropID = "" },
		"missing field":      func(h *domain.Harvest) { h.FieldID = "" },
		"missing supervisor": func(h *domain.Harvest) { h.SupervisorID = "" },
		"zero quantity":      func(h *domain.Harvest) { h.Quantity = 0 },
		"zero price":         func(h *domain.Harvest) { h.UnitPrice = 0 },
		"missing quality":    func(h *domain.Harvest) { h.Quality = "" },
		"bogus status":       func(h *domain.Harvest) { h.Status = "eaten" },
	}
	for name, mutate := range cases {
		h := validHarvest()
		mutate(h)
		if _, err := svc.Create(context.Background(), h); err == nil {
			t.Errorf("%s: expected validation error", name)
		}
	}
}

func TestHarvestService_Update_StatusTransition(t *testing.T) {
	repo := &stubHarvestRepo{}
	svc := NewHarvestService(repo)

	created, err := svc.Create(context.Background(), validHarvest())
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	created.Status = domain.HarvestReadyForSale
	if err := svc.Update(context.Background(), created); err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if len(repo.updated) != 1 {
		t.Fatalf("expected one update, got %d", len(repo.updated))
	}

	created.Status = "spoiled"
	err = svc.Update(context.Background(), created)
	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected validation error for unknown status, got: %v", err)
	}
}
