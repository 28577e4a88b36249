package repository

import (
	"context"

	"github.com/renopilot/backend/internal/model"
)

// The three categorical reference entities (paint types, surface types, paint
// qualities) and the color swatch list share the same CRUD shape. Lookups for
// calculations use List with activeOnly=true; admin screens list everything.

// PaintTypeRepository persists paint type reference rows.
type PaintTypeRepository interface {
	List(ctx context.Context, activeOnly bool) ([]*model.PaintType, error)
	GetByID(ctx context.Context, id int64) (*model.PaintType, error)
	Create(ctx context.Context, pt *model.PaintType) error
	Update(ctx context.Context, pt *model.PaintType) error
	Delete(ctx context.Context, id int64) error
}

// SurfaceTypeRepository persists surface type reference rows.
type SurfaceTypeRepository interface {
	List(ctx context.Context, activeOnly bool) ([]*model.SurfaceType, error)
	GetByID(ctx context.Context, id int64) (*model.SurfaceType, error)
	Create(ctx context.Context, st *model.SurfaceType) error
	Update(ctx context.Context, st *model.SurfaceType) error
	Delete(ctx context.Context, id int64) error
}

// PaintQualityRepository persists paint quality reference rows.
type PaintQualityRepository interface {
	List(ctx context.Context, activeOnly bool) ([]*model.PaintQuality, error)
	GetByID(ctx context.Context, id int64) (*model.PaintQuality, error)
	Create(ctx context.Context, pq *model.PaintQuality) error
	Update(ctx context.Context, pq *model.PaintQuality) error
	Delete(ctx context.Context, id int64) error
}

// PaintColorRepository persists display-only color swatches.
type PaintColorRepository interface {
	List(ctx context.Context) ([]*model.PaintColor, error)
	Create(ctx context.Context, pc *model.PaintColor) error
	Delete(ctx context.Context, id int64) error
}
