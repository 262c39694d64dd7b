package domain

import "errors"

var ErrFieldNotFound = errors.New("field not found")

// Field is a plot of land under cultivation, supervised by a manager.
type Field struct {
	ID           string  `json:"id" bson:"_id,omitempty"`
	Name         string  `json:"name" bson:"name"`
	AreaHectares float64 `json:"area_hectares" bson:"area_hectares"`
	Location     string  `json:"location" bson:"location"`
	SupervisorID string  `json:"supervisor_id" bson:"supervisor_id"`
}
