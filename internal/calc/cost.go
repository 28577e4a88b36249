package calc

import (
	"fmt"

	"github.com/renopilot/backend/internal/model"
)

// Surface is one fully-resolved paintable element: net area plus the
// reference data already looked up by the caller. The engine never resolves
// ids itself.
type Surface struct {
	ID               string                  `json:"id"`
	Name             string                  `json:"name"`
	Area             float64                 `json:"area"`
	Coats            int                     `json:"coats"`
	PaintData        *model.PaintData        `json:"paintData"`
	SurfaceCondition *model.SurfaceCondition `json:"surfaceCondition"`
	Category         model.SurfaceCategory   `json:"surfaceCategory"`
}

// MaterialCostResult itemizes the paint required for a surface.
type MaterialCostResult struct {
	MaterialCost float64 `json:"materialCost"`
	PaintVolume  float64 `json:"paintVolume"` // litres
	Coverage     float64 `json:"coverage"`
	CostPerM2    float64 `json:"costPerM2"`
}

// LaborCostResult itemizes the preparation labor for a surface.
type LaborCostResult struct {
	LaborCost float64 `json:"laborCost"`
	PrepTime  float64 `json:"prepTime"` // minutes
	LaborRate float64 `json:"laborRate"`
}

// CostDetails carries the intermediate quantities behind a breakdown.
type CostDetails struct {
	PaintVolume float64 `json:"paintVolume"`
	Coverage    float64 `json:"coverage"`
	CostPerM2   float64 `json:"costPerM2"`
	PrepTime    float64 `json:"prepTime"`
	LaborRate   float64 `json:"laborRate"`
}

// CostBreakdown is the full per-surface result. Invariants:
// Subtotal == MaterialCost + LaborCost and TotalCost == Subtotal + ProfitMargin.
type CostBreakdown struct {
	MaterialCost float64     `json:"materialCost"`
	LaborCost    float64     `json:"laborCost"`
	Subtotal     float64     `json:"subtotal"`
	ProfitMargin float64     `json:"profitMargin"`
	TotalCost    float64     `json:"totalCost"`
	Details      CostDetails `json:"details"`
}

// SurfaceCostLine pairs a surface with its breakdown in a project summary.
type SurfaceCostLine struct {
	ID            string        `json:"id"`
	Name          string        `json:"name"`
	Area          float64       `json:"area"`
	CostBreakdown CostBreakdown `json:"costBreakdown"`
}

// ProjectTotals sums every cost component across a project's surfaces.
type ProjectTotals struct {
	TotalArea         float64 `json:"totalArea"`
	TotalMaterialCost float64 `json:"totalMaterialCost"`
	TotalLaborCost    float64 `json:"totalLaborCost"`
	TotalSubtotal     float64 `json:"totalSubtotal"`
	TotalProfitMargin float64 `json:"totalProfitMargin"`
	GrandTotal        float64 `json:"grandTotal"`
}

// ProjectCostSummary is the project-level output, surfaces in input order.
type ProjectCostSummary struct {
	Surfaces []SurfaceCostLine `json:"surfaces"`
	Totals   ProjectTotals     `json:"totals"`
}

// MaterialCost computes the paint volume and cost for area × coats. Each coat
// consumes its own paint, so cost scales linearly with the coat count.
func MaterialCost(area float64, coats int, paintData *model.PaintData) (MaterialCostResult, error) {
	if area <= 0 || coats <= 0 {
		return MaterialCostResult{}, fmt.Errorf("%w: area and coats must be positive", ErrInvalidInput)
	}

	totalArea := area * float64(coats)
	return MaterialCostResult{
		MaterialCost: totalArea * paintData.CostPerM2,
		PaintVolume:  totalArea / paintData.Coverage,
		Coverage:     paintData.Coverage,
		CostPerM2:    paintData.CostPerM2,
	}, nil
}

// LaborCost computes preparation time and cost for a surface. The prep-time
// rate is selected by category from the surface condition; a nil total rate
// on the labor rate costs labor at zero.
func LaborCost(area float64, condition *model.SurfaceCondition, category model.SurfaceCategory, rate *model.LaborRate) (LaborCostResult, error) {
	if area <= 0 {
		return LaborCostResult{}, fmt.Errorf("%w: area must be positive", ErrInvalidInput)
	}

	var prepPerUnit float64
	switch category {
	case model.CategoryWall:
		prepPerUnit = condition.PrepTimeWall
	case model.CategoryCeiling:
		prepPerUnit = condition.PrepTimeCeiling
	case model.CategoryDoor:
		prepPerUnit = condition.PrepTimeDoor
	case model.CategoryLinear:
		prepPerUnit = condition.PrepTimeLinear
	default:
		return LaborCostResult{}, fmt.Errorf("%w: %q", ErrUnsupportedCategory, category)
	}

	prepTime := area * prepPerUnit // minutes
	totalRate := rate.EffectiveTotalRate()
	return LaborCostResult{
		LaborCost: prepTime / 60 * totalRate,
		PrepTime:  prepTime,
		LaborRate: totalRate,
	}, nil
}

// SurfaceCost combines material and labor into a full breakdown. The profit
// margin applies to the combined subtotal, not to each component.
func SurfaceCost(area float64, coats int, paintData *model.PaintData, condition *model.SurfaceCondition, category model.SurfaceCategory, rate *model.LaborRate) (CostBreakdown, error) {
	material, err := MaterialCost(area, coats, paintData)
	if err != nil {
		return CostBreakdown{}, err
	}
	labor, err := LaborCost(area, condition, category, rate)
	if err != nil {
		return CostBreakdown{}, err
	}

	subtotal := material.MaterialCost + labor.LaborCost
	profit := subtotal * rate.ProfitMargin

	return CostBreakdown{
		MaterialCost: material.MaterialCost,
		LaborCost:    labor.LaborCost,
		Subtotal:     subtotal,
		ProfitMargin: profit,
		TotalCost:    subtotal + profit,
		Details: CostDetails{
			PaintVolume: material.PaintVolume,
			Coverage:    material.Coverage,
			CostPerM2:   material.CostPerM2,
			PrepTime:    labor.PrepTime,
			LaborRate:   labor.LaborRate,
		},
	}, nil
}

// ProjectCosts runs SurfaceCost over every surface in input order and sums
// the components. An empty surface list yields zero totals and no error; any
// bad surface fails the whole call.
func ProjectCosts(surfaces []Surface, rate *model.LaborRate) (ProjectCostSummary, error) {
	lines := make([]SurfaceCostLine, 0, len(surfaces))
	var totals ProjectTotals

	for _, s := range surfaces {
		breakdown, err := SurfaceCost(s.Area, s.Coats, s.PaintData, s.SurfaceCondition, s.Category, rate)
		if err != nil {
			return ProjectCostSummary{}, fmt.Errorf("surface %q: %w", s.Name, err)
		}

		lines = append(lines, SurfaceCostLine{
			ID:            s.ID,
			Name:          s.Name,
			Area:          s.Area,
			CostBreakdown: breakdown,
		})

		totals.TotalArea += s.Area
		totals.TotalMaterialCost += breakdown.MaterialCost
		totals.TotalLaborCost += breakdown.LaborCost
		totals.TotalSubtotal += breakdown.Subtotal
		totals.TotalProfitMargin += breakdown.ProfitMargin
		totals.GrandTotal += breakdown.TotalCost
	}

	return ProjectCostSummary{Surfaces: lines, Totals: totals}, nil
}
