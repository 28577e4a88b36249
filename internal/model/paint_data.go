package model

import "time"

// PaintData prices one (paint type, surface type, paint quality) combination.
// At most one active row exists per combination; the database enforces this
// with a unique index. Coverage is m² per litre, CostPerM2 is $/m².
type PaintData struct {
	ID             int64     `json:"id"`
	PaintTypeID    int64     `json:"paint_type_id"`
	SurfaceTypeID  int64     `json:"surface_type_id"`
	PaintQualityID int64     `json:"paint_quality_id"`
	Coverage       float64   `json:"coverage"`
	CostPerM2      float64   `json:"cost_per_m2"`
	Notes          string    `json:"notes,omitempty"`
	IsActive       bool      `json:"is_active"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
