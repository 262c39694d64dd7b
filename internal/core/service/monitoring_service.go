package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/agrifarm/farm-management-api/internal/api/metrics"
	"github.com/agrifarm/farm-management-api/internal/core/domain"
	"github.com/agrifarm/farm-management-api/internal/core/ports"
)

// DedupChecker abstracts the idempotency store (Redis) used by the
// reading ingestion pipeline.
type DedupChecker interface {
	IsDuplicate(ctx context.Context, fieldID string, ts time.Time) (bool, error)
	Mark(ctx context.Context, fieldID string, ts time.Time) error
}

type monitoringService struct {
	repo  ports.ReadingRepository
	dedup DedupChecker
	log   zerolog.Logger
}

// NewMonitoringService returns the monitoring reading service. dedup may
// be nil when the ingestion pipeline is not wired (tests).
func NewMonitoringService(repo ports.ReadingRepository, dedup DedupChecker, log zerolog.Logger) ports.MonitoringService {
	return &monitoringService{repo: repo, dedup: dedup, log: log}
}

func validateReading(r *domain.Reading) error {
	if r.FieldID == "" {
		return domain.Invalid("field id must not be empty")
	}
	if r.Humidity < 0 || r.Humidity > 100 {
		return domain.Invalid("humidity must be between 0 and 100")
	}
	return nil
}

func (s *monitoringService) Create(ctx context.Context, reading *domain.Reading) (*domain.Reading, error) {
	if err := validateReading(reading); err != nil {
		return nil, err
	}
	if reading.RecordedAt.IsZero() {
		reading.RecordedAt = time.Now().UTC()
	}
	return s.repo.Create(ctx, reading)
}

func (s *monitoringService) Get(ctx context.Context, id string) (*domain.Reading, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *monitoringService) List(ctx context.Context) ([]domain.Reading, error) {
	return s.repo.FindAll(ctx)
}

func (s *monitoringService) Update(ctx context.Context, reading *domain.Reading) error {
	if err := validateReading(reading); err != nil {
		return err
	}
	return s.repo.Update(ctx, reading)
}

func (s *monitoringService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// Process ingests one queued reading: dedup check, persist, count.
// A failed dedup lookup is logged and the reading is processed anyway —
// a dropped measurement costs more than an occasional duplicate row.
func (s *monitoringService) Process(ctx context.Context, in ports.ReadingInput) error {
	if s.dedup != nil {
		isDup, err := s.dedup.IsDuplicate(ctx, in.FieldID, in.RecordedAt)
		if err != nil {
			s.log.Warn().Err(err).Str("field_id", in.FieldID).Msg("dedup check failed, processing anyway")
		} else if isDup {
			s.log.Debug().Str("field_id", in.FieldID).Time("recorded_at", in.RecordedAt).Msg("duplicate reading skipped")
			metrics.ReadingsDedupTotal.WithLabelValues("hit").Inc()
			return nil
		}
		metrics.ReadingsDedupTotal.WithLabelValues("miss").Inc()

		if markErr := s.dedup.Mark(ctx, in.FieldID, in.RecordedAt); markErr != nil {
			s.log.Warn().Err(markErr).Str("field_id", in.FieldID).Msg("failed to set dedup key")
		}
	}

	reading := &domain.Reading{
		FieldID:      in.FieldID,
		TemperatureC: in.TemperatureC,
		Humidity:     in.Humidity,
		RecordedAt:   in.RecordedAt,
	}
	if err := validateReading(reading); err != nil {
		return fmt.Errorf("process reading: %w", err)
	}
	if _, err := s.repo.Create(ctx, reading); err != nil {
		return fmt.Errorf("process reading: %w", err)
	}

	metrics.ReadingsProcessedTotal.Inc()
	return nil
}
