package service

import (
	"context"

	"github.com/renopilot/backend/internal/calc"
	"github.com/renopilot/backend/internal/model"
)

// SurfaceEstimateRequest describes one surface by raw dimensions and
// reference ids. The service resolves the ids and runs the engine.
type SurfaceEstimateRequest struct {
	SurfaceType        string                `json:"surfaceType"`
	Dimensions         calc.Dimensions       `json:"dimensions"`
	PaintTypeID        int64                 `json:"paintTypeId"`
	SurfaceTypeID      int64                 `json:"surfaceTypeId"`
	PaintQualityID     int64                 `json:"paintQualityId"`
	SurfaceConditionID int64                 `json:"surfaceConditionId"`
	SurfaceCategory    model.SurfaceCategory `json:"surfaceCategory"`
	Coats              int                   `json:"coats"`
	LaborRateID        *int64                `json:"laborRateId,omitempty"`
	Region             string                `json:"region,omitempty"`
}

// ProjectSurfaceRequest is one line of a project estimate. Area is already
// net (the output of the area endpoint becomes this value).
type ProjectSurfaceRequest struct {
	ID                 string                `json:"id"`
	Name               string                `json:"name"`
	Area               float64               `json:"area"`
	Coats              int                   `json:"coats"`
	PaintTypeID        int64                 `json:"paintTypeId"`
	SurfaceTypeID      int64                 `json:"surfaceTypeId"`
	PaintQualityID     int64                 `json:"paintQualityId"`
	SurfaceConditionID int64                 `json:"surfaceConditionId"`
	SurfaceCategory    model.SurfaceCategory `json:"surfaceCategory"`
}

// ProjectEstimateRequest describes a whole project.
type ProjectEstimateRequest struct {
	Surfaces    []ProjectSurfaceRequest `json:"surfaces"`
	LaborRateID *int64                  `json:"laborRateId,omitempty"`
	Region      string                  `json:"region,omitempty"`
}

// FormattedEstimate carries display strings; raw values keep full precision.
type FormattedEstimate struct {
	Area         string `json:"area"`
	TotalCost    string `json:"totalCost"`
	MaterialCost string `json:"materialCost"`
	LaborCost    string `json:"laborCost"`
	PaintVolume  string `json:"paintVolume"`
	PrepTime     string `json:"prepTime"`
}

// SurfaceEstimate is the full result for a single surface.
type SurfaceEstimate struct {
	Area      calc.AreaResult    `json:"area"`
	Cost      calc.CostBreakdown `json:"cost"`
	Formatted FormattedEstimate  `json:"formatted"`
}

// LaborRateInfo echoes the rate a calculation used.
type LaborRateInfo struct {
	Name         string   `json:"name"`
	Region       string   `json:"region,omitempty"`
	TotalRate    *float64 `json:"totalRate"`
	ProfitMargin float64  `json:"profitMargin"`
}

// ProjectFormatted carries display strings for project totals.
type ProjectFormatted struct {
	GrandTotal        string `json:"grandTotal"`
	TotalArea         string `json:"totalArea"`
	TotalMaterialCost string `json:"totalMaterialCost"`
	TotalLaborCost    string `json:"totalLaborCost"`
}

// ProjectEstimate is the full result for a project.
type ProjectEstimate struct {
	Summary   calc.ProjectCostSummary `json:"projectCosts"`
	LaborRate LaborRateInfo           `json:"laborRate"`
	Formatted ProjectFormatted        `json:"formatted"`
}

// EstimateService resolves reference ids and orchestrates the calculation
// engine. All engine errors pass through unmodified.
type EstimateService interface {
	Area(surfaceType string, dims calc.Dimensions) (calc.AreaResult, error)
	SurfaceEstimate(ctx context.Context, req SurfaceEstimateRequest) (*SurfaceEstimate, error)
	ProjectEstimate(ctx context.Context, req ProjectEstimateRequest) (*ProjectEstimate, error)
}
