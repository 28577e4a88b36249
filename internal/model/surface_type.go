package model

import "time"

// SurfaceType describes the physical material being painted (masonry,
// gyprock, timber...). Category ties it to a prep-time column.
type SurfaceType struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Category    SurfaceCategory `json:"category"`
	Description string          `json:"description,omitempty"`
	IsActive    bool            `json:"is_active"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}
