package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const dedupTTL = time.Hour

// ReadingDedup provides idempotency checks for monitoring readings.
// Key format: reading:<field_id>:<unix_timestamp>
type ReadingDedup struct {
	client *redis.Client
}

// NewReadingDedup creates a ReadingDedup wrapping the given Redis client.
func NewReadingDedup(client *redis.Client) *ReadingDedup {
	return &ReadingDedup{client: client}
}

// IsDuplicate reports whether a reading for this field and timestamp has
// already been ingested.
func (d *ReadingDedup) IsDuplicate(ctx context.Context, fieldID string, ts time.Time) (bool, error) {
	n, err := d.client.Exists(ctx, d.key(fieldID, ts)).Result()
	if err != nil {
		return false, fmt.Errorf("dedup check: %w", err)
	}
	return n > 0, nil
}

// Mark records that this reading has been ingested (expires after dedupTTL).
func (d *ReadingDedup) Mark(ctx context.Context, fieldID string, ts time.Time) error {
	return d.client.Set(ctx, d.key(fieldID, ts), "1", dedupTTL).Err()
}

func (d *ReadingDedup) key(fieldID string, ts time.Time) string {
	return fmt.Sprintf("reading:%s:%d", fieldID, ts.Unix())
}
