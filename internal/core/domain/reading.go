package domain

import (
	"errors"
	"time"
)

var ErrReadingNotFound = errors.New("reading not found")

// Reading is a single environmental measurement taken on a field.
type Reading struct {
	ID           string    `json:"id" bson:"_id,omitempty"`
	FieldID      string    `json:"field_id" bson:"field_id"`
	TemperatureC float64   `json:"temperature_c" bson:"temperature_c"`
	Humidity     float64   `json:"humidity" bson:"humidity"`
	RecordedAt   time.Time `json:"recorded_at" bson:"recorded_at"`
}
