package model

import "time"

// SurfaceCondition describes the physical state of a surface before painting.
// The four prep-time rates are minutes of labor per m² (per linear m for
// trim), keyed by surface category.
type SurfaceCondition struct {
	ID              int64     `json:"id"`
	Name            string    `json:"name"`
	Description     string    `json:"description,omitempty"`
	PrepTimeWall    float64   `json:"prep_time_wall"`
	PrepTimeCeiling float64   `json:"prep_time_ceiling"`
	PrepTimeDoor    float64   `json:"prep_time_door"`
	PrepTimeLinear  float64   `json:"prep_time_linear"`
	IsActive        bool      `json:"is_active"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
