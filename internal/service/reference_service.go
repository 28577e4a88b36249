package service

import (
	"context"

	"github.com/renopilot/backend/internal/model"
	"github.com/renopilot/backend/internal/repository"
)

// ReferenceData is the combined snapshot the calculator UI loads up front:
// every reference set relevant to a calculation, active rows only.
type ReferenceData struct {
	PaintTypes        []*model.PaintType        `json:"paintTypes"`
	SurfaceTypes      []*model.SurfaceType      `json:"surfaceTypes"`
	PaintQualities    []*model.PaintQuality     `json:"paintQualities"`
	SurfaceConditions []*model.SurfaceCondition `json:"surfaceConditions"`
	LaborRates        []*model.LaborRate        `json:"laborRates"`
}

// ReferenceService is the admin/reader surface over the reference-data store.
// Admin lists include inactive rows; Snapshot serves only active ones.
type ReferenceService interface {
	Snapshot(ctx context.Context) (*ReferenceData, error)

	ListPaintTypes(ctx context.Context) ([]*model.PaintType, error)
	SavePaintType(ctx context.Context, pt *model.PaintType) error
	DeletePaintType(ctx context.Context, id int64) error

	ListSurfaceTypes(ctx context.Context) ([]*model.SurfaceType, error)
	SaveSurfaceType(ctx context.Context, st *model.SurfaceType) error
	DeleteSurfaceType(ctx context.Context, id int64) error

	ListPaintQualities(ctx context.Context) ([]*model.PaintQuality, error)
	SavePaintQuality(ctx context.Context, pq *model.PaintQuality) error
	DeletePaintQuality(ctx context.Context, id int64) error

	ListSurfaceConditions(ctx context.Context) ([]*model.SurfaceCondition, error)
	SaveSurfaceCondition(ctx context.Context, sc *model.SurfaceCondition) error
	DeleteSurfaceCondition(ctx context.Context, id int64) error

	ListPaintData(ctx context.Context) ([]*model.PaintData, error)
	SearchPaintData(ctx context.Context, filter repository.PaintDataFilter) ([]*model.PaintData, error)
	SavePaintData(ctx context.Context, pd *model.PaintData) error
	DeletePaintData(ctx context.Context, id int64) error

	ListLaborRates(ctx context.Context) ([]*model.LaborRate, error)
	SaveLaborRate(ctx context.Context, lr *model.LaborRate) error
	DeleteLaborRate(ctx context.Context, id int64) error

	ListPaintColors(ctx context.Context) ([]*model.PaintColor, error)
	CreatePaintColor(ctx context.Context, pc *model.PaintColor) error
	DeletePaintColor(ctx context.Context, id int64) error
}
