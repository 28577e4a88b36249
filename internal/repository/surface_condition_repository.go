package repository

import (
	"context"

	"github.com/renopilot/backend/internal/model"
)

// SurfaceConditionRepository persists surface condition rows with their four
// per-category preparation-time rates.
type SurfaceConditionRepository interface {
	List(ctx context.Context, activeOnly bool) ([]*model.SurfaceCondition, error)
	GetByID(ctx context.Context, id int64) (*model.SurfaceCondition, error)
	Create(ctx context.Context, sc *model.SurfaceCondition) error
	Update(ctx context.Context, sc *model.SurfaceCondition) error
	Delete(ctx context.Context, id int64) error
}
