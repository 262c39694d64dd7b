package domain

import (
	"errors"
	"time"
)

var ErrHarvestNotFound = errors.New("harvest not found")

// HarvestStatus is the sales lifecycle state of a harvest lot.
type HarvestStatus string

const (
	HarvestPendingValidation HarvestStatus = "pending_validation"
	HarvestReadyForSale      HarvestStatus = "ready_for_sale"
	HarvestSold              HarvestStatus = "sold"
)

// Valid reports whether s is a known harvest status.
func (s HarvestStatus) Valid() bool {
	switch s {
	case HarvestPendingValidation, HarvestReadyForSale, HarvestSold:
		return true
	}
	return false
}

// Harvest records the yield collected from a field for one crop.
type Harvest struct {
	ID           string        `json:"id" bson:"_id,omitempty"`
	CropID       string        `json:"crop_id" bson:"crop_id"`
	FieldID      string        `json:"field_id" bson:"field_id"`
	SupervisorID string        `json:"supervisor_id" bson:"supervisor_id"`
	HarvestedAt  time.Time     `json:"harvested_at" bson:"harvested_at"`
	Quantity     float64       `json:"quantity" bson:"quantity"`
	Quality      string        `json:"quality" bson:"quality"`
	UnitPrice    float64       `json:"unit_price" bson:"unit_price"`
	Status       HarvestStatus `json:"status" bson:"status"`
}
