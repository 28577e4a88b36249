package model

import "time"

// PaintType is a categorical reference entity (primer, undercoat, top coat...).
// The calculation engine never interprets the name; only the id is used as a
// lookup key into PaintData.
type PaintType struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Category    string    `json:"category"` // "primer" | "undercoat" | "topcoat"
	Description string    `json:"description,omitempty"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
