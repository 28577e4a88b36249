package model

import "time"

// PaintColor is a display-only swatch name; it never affects pricing.
type PaintColor struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
