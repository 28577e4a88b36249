package repository

import (
	"context"

	"github.com/renopilot/backend/internal/model"
)

// PaintDataFilter narrows a paint-data search. Name filters match
// case-insensitive substrings on the related reference rows.
type PaintDataFilter struct {
	PaintTypeName   string
	SurfaceTypeName string
	QualityLevel    string
	MaxCostPerM2    *float64
}

// PaintDataRepository persists priced (paint type, surface type, quality)
// combinations.
type PaintDataRepository interface {
	List(ctx context.Context, activeOnly bool) ([]*model.PaintData, error)
	Search(ctx context.Context, filter PaintDataFilter) ([]*model.PaintData, error)
	// GetByCombination returns the single active row for the combination, or
	// ErrNotFound. The engine must fail on a missing combination, never guess.
	GetByCombination(ctx context.Context, paintTypeID, surfaceTypeID, paintQualityID int64) (*model.PaintData, error)
	Create(ctx context.Context, pd *model.PaintData) error
	Update(ctx context.Context, pd *model.PaintData) error
	Delete(ctx context.Context, id int64) error
}
