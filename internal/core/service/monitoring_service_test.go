package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/agrifarm/farm-management-api/internal/core/domain"
	"github.com/agrifarm/farm-management-api/internal/core/ports"
)

type stubReadingRepo struct {
	createErr error
	created   []*domain.Reading
}

func (r *stubReadingRepo) Create(_ context.Context, reading *domain.Reading) (*domain.Reading, error) {
	if r.createErr != nil {
		return nil, r.createErr
	}
	r.created = append(r.created, reading)
	return reading, nil
}

func (r *stubReadingRepo) FindByID(_ context.Context, id string) (*domain.Reading, error) {
	for _, reading := range r.created {
		if reading.ID == id {
			return reading, nil
		}
	}
	return nil, domain.ErrReadingNotFound
}

func (r *stubReadingRepo) FindAll(_ context.Context) ([]domain.Reading, error) {
	out := make([]domain.Reading, 0, len(r.created))
	for _, reading := range r.created {
		out = append(out, *reading)
	}
	return out, nil
}

func (r *stubReadingRepo) Update(_ context.Context, _ *domain.Reading) error { return nil }
func (r *stubReadingRepo) Delete(_ context.Context, _ string) error          { return nil }

type stubReadingDedup struct {
	dupResult bool
	dupErr    error
	markErr   error
	marked    []string
}

func (d *stubReadingDedup) IsDuplicate(_ context.Context, fieldID string, _ time.Time) (bool, error) {
	return d.dupResult, d.dupErr
}

func (d *stubReadingDedup) Mark(_ context.Context, fieldID string, _ time.Time) error {
	if d.markErr != nil {
		return d.markErr
	}
	d.marked = append(d.marked, fieldID)
	return nil
}

func sampleInput() ports.ReadingInput {
	return ports.ReadingInput{
		FieldID:      "field-1",
		TemperatureC: 28.5,
		Humidity:     61.0,
		RecordedAt:   time.Now().UTC(),
	}
}

func TestMonitoringService_Process_HappyPath(t *testing.T) {
	repo := &stubReadingRepo{}
	dedup := &stubReadingDedup{}
	svc := NewMonitoringService(repo, dedup, zerolog.Nop())

	if err := svc.Process(context.Background(), sampleInput()); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if len(repo.created) != 1 {
		t.Fatalf("expected one reading persisted, got %d", len(repo.created))
	}
	if len(dedup.marked) != 1 || dedup.marked[0] != "field-1" {
		t.Errorf("expected dedup key marked for field-1, got: %v", dedup.marked)
	}
}

func TestMonitoringService_Process_DuplicateSkipped(t *testing.T) {
	repo := &stubReadingRepo{}
	dedup := &stubReadingDedup{dupResult: true}
	svc := NewMonitoringService(repo, dedup, zerolog.Nop())

	if err := svc.Process(context.Background(), sampleInput()); err != nil {
		t.Fatalf("expected no error for duplicate, got: %v", err)
	}
	if len(repo.created) != 0 {
		t.Errorf("expected duplicate reading to be skipped, got %d persisted", len(repo.created))
	}
}

func TestMonitoringService_Process_DedupFailureDoesNotDropReading(t *testing.T) {
	repo := &stubReadingRepo{}
	dedup := &stubReadingDedup{dupErr: errors.New("redis down")}
	svc := NewMonitoringService(repo, dedup, zerolog.Nop())

	if err := svc.Process(context.Background(), sampleInput()); err != nil {
		t.Fatalf("expected reading to survive a dedup failure, got: %v", err)
	}
	if len(repo.created) != 1 {
		t.Fatalf("expected one reading persisted, got %d", len(repo.created))
	}
}

func TestMonitoringService_Process_InvalidReading(t *testing.T) {
	repo := &stubReadingRepo{}
	svc := NewMonitoringService(repo, &stubReadingDedup{}, zerolog.Nop())

	in := sampleInput()
	in.FieldID = ""
	if err := svc.Process(context.Background(), in); err == nil {
		t.Fatalf("expected error for missing field id")
	}
	if len(repo.created) != 0 {
		t.Errorf("invalid reading must not be persisted")
	}
}

func TestMonitoringService_Process_RepositoryError(t *testing.T) {
	repo := &stubReadingRepo{createErr: errors.New("mongo down")}
	svc := NewMonitoringService(repo, &stubReadingDedup{}, zerolog.Nop())

	if err := svc.Process(context.Background(), sampleInput()); err == nil {
		t.Fatalf("expected error when the repository fails")
	}
}

func TestMonitoringService_Create_Defaults(t *testing.T) {
	repo := &stubReadingRepo{}
	svc := NewMonitoringService(repo, nil, zerolog.Nop())

	created, err := svc.Create(context.Background(), &domain.Reading{
		FieldID:      "field-2",
		TemperatureC: 19.0,
		Humidity:     55,
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if created.RecordedAt.IsZero() {
		t.Errorf("expected RecordedAt to default to now")
	}
}

func TestMonitoringService_Create_HumidityBounds(t *testing.T) {
	svc := NewMonitoringService(&stubReadingRepo{}, nil, zerolog.Nop())

	_, err := svc.Create(context.Background(), &domain.Reading{
		FieldID:  "field-3",
		Humidity: 140,
	})
	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected validation error, got: %v", err)
	}
}
