package domain

import (
	"errors"
	"time"
)

var ErrCropNotFound = errors.New("crop not found")
var ErrPlantingNotFound = errors.New("planting not found")

// PlantingStatus is the lifecycle state of a crop on a field.
type PlantingStatus string

const (
	PlantingGrowing  PlantingStatus = "growing"
	PlantingHarvest  PlantingStatus = "harvest"
	PlantingFinished PlantingStatus = "finished"
)

// Valid reports whether s is a known planting status.
func (s PlantingStatus) Valid() bool {
	switch s {
	case PlantingGrowing, PlantingHarvest, PlantingFinished:
		return true
	}
	return false
}

// Crop is a cultivated plant variety tracked by the farm.
type Crop struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	Name      string    `json:"name" bson:"name"`
	Variety   string    `json:"variety" bson:"variety"`
	PlantedAt time.Time `json:"planted_at" bson:"planted_at"`
	Quantity  int       `json:"quantity" bson:"quantity"`
}

// Planting assigns a crop to a field for a growing season.
type Planting struct {
	ID        string         `json:"id" bson:"_id,omitempty"`
	FieldID   string         `json:"field_id" bson:"field_id"`
	CropID    string         `json:"crop_id" bson:"crop_id"`
	PlantedAt time.Time      `json:"planted_at" bson:"planted_at"`
	Status    PlantingStatus `json:"status" bson:"status"`
}
