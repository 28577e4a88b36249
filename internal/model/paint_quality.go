package model

import "time"

// PaintQuality is a categorical reference entity (Budget, Standard, Premium).
type PaintQuality struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Level       string    `json:"level"` // "basic" | "standard" | "premium" | "luxury"
	Description string    `json:"description,omitempty"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
