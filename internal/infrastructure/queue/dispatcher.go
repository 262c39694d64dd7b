package queue

import (
	"context"
	"hash/fnv"

	"github.com/rs/zerolog"

	"github.com/agrifarm/farm-management-api/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
)

// Dispatcher routes monitoring readings to a fixed set of workers using
// consistent hashing on the field ID, guaranteeing per-field ordering.
type Dispatcher struct {
	workers []chan ports.ReadingInput
	service ports.MonitoringService
	log     zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, service ports.MonitoringService, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan ports.ReadingInput, numWorkers),
		service: service,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan ports.ReadingInput, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Enqueue sends a reading to the worker responsible for its field.
// The call is non-blocking up to channelBuffer capacity.
func (d *Dispatcher) Enqueue(reading ports.ReadingInput) {
	d.workers[d.shardIndex(reading.FieldID)] <- reading
}

// EnqueueBatch enqueues multiple readings preserving per-field ordering.
func (d *Dispatcher) EnqueueBatch(readings []ports.ReadingInput) {
	for _, r := range readings {
		d.Enqueue(r)
	}
}

// shardIndex maps a field ID deterministically to a worker index.
func (d *Dispatcher) shardIndex(fieldID string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(fieldID))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan ports.ReadingInput) {
	for {
		select {
		case <-ctx.Done():
			return
		case reading, ok := <-ch:
			if !ok {
				return
			}
			if err := d.service.Process(ctx, reading); err != nil {
				d.log.Error().Err(err).
					Str("field_id", reading.FieldID).
					Int("worker_id", id).
					Msg("reading ingestion failed")
			}
		}
	}
}
