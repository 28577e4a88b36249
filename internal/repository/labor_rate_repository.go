package repository

import (
	"context"

	"github.com/renopilot/backend/internal/model"
)

// LaborRateRepository persists regional labor rates.
type LaborRateRepository interface {
	List(ctx context.Context, activeOnly bool) ([]*model.LaborRate, error)
	GetByID(ctx context.Context, id int64) (*model.LaborRate, error)
	// Current returns the active rate with the newest effective date,
	// optionally scoped to a region. Empty region matches any row.
	Current(ctx context.Context, region string) (*model.LaborRate, error)
	Create(ctx context.Context, lr *model.LaborRate) error
	Update(ctx context.Context, lr *model.LaborRate) error
	Delete(ctx context.Context, id int64) error
}
