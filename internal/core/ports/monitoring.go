package ports

import (
	"context"
	"time"

	"github.com/agrifarm/farm-management-api/internal/core/domain"
)

// ReadingInput is a raw measurement queued for ingestion.
type ReadingInput struct {
	FieldID      string
	TemperatureC float64
	Humidity     float64
	RecordedAt   time.Time
}

type ReadingRepository interface {
	Create(ctx context.Context, reading *domain.Reading) (*domain.Reading, error)
	FindByID(ctx context.Context, id string) (*domain.Reading, error)
	FindAll(ctx context.Context) ([]domain.Reading, error)
	Update(ctx context.Context, reading *domain.Reading) error
	Delete(ctx context.Context, id string) error
}

// MonitoringService covers both the synchronous reading CRUD and the
// asynchronous ingestion path used by the dispatcher workers.
type MonitoringService interface {
	Create(ctx context.Context, reading *domain.Reading) (*domain.Reading, error)
	Get(ctx context.Context, id string) (*domain.Reading, error)
	List(ctx context.Context) ([]domain.Reading, error)
	Update(ctx context.Context, reading *domain.Reading) error
	Delete(ctx context.Context, id string) error
	Process(ctx context.Context, in ReadingInput) error
}
