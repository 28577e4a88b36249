package service

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/renopilot/backend/internal/calc"
	"github.com/renopilot/backend/internal/model"
	"github.com/renopilot/backend/internal/repository"
)

// EstimateServiceImpl implements EstimateService.
type EstimateServiceImpl struct {
	paintData         repository.PaintDataRepository
	surfaceConditions repository.SurfaceConditionRepository
	laborRates        repository.LaborRateRepository
	defaultRegion     string
}

// NewEstimateService creates an EstimateServiceImpl. defaultRegion applies
// when a request names neither a labor rate id nor a region; empty means
// any active rate qualifies.
func NewEstimateService(
	paintData repository.PaintDataRepository,
	surfaceConditions repository.SurfaceConditionRepository,
	laborRates repository.LaborRateRepository,
	defaultRegion string,
) EstimateService {
	return &EstimateServiceImpl{
		paintData:         paintData,
		surfaceConditions: surfaceConditions,
		laborRates:        laborRates,
		defaultRegion:     defaultRegion,
	}
}

// Area dispatches to the engine's area calculator for the surface type.
// Linear surfaces get the default strip height when none is given.
func (s *EstimateServiceImpl) Area(surfaceType string, dims calc.Dimensions) (calc.AreaResult, error) {
	switch surfaceType {
	case "wall":
		return calc.WallArea(dims)
	case "door":
		return calc.DoorArea(dims)
	case "ceiling":
		return calc.CeilingArea(dims)
	case "linear":
		length := 0.0
		if dims.Length != nil {
			length = *dims.Length
		}
		height := calc.DefaultLinearHeight
		if dims.Height != nil {
			height = *dims.Height
		}
		return calc.LinearSurfaceArea(length, height)
	default:
		return calc.AreaResult{}, fmt.Errorf("%w: unsupported surface type %q", calc.ErrInvalidDimension, surfaceType)
	}
}

// SurfaceEstimate validates, computes the area, resolves reference data and
// runs the engine for one surface.
func (s *EstimateServiceImpl) SurfaceEstimate(ctx context.Context, req SurfaceEstimateRequest) (*SurfaceEstimate, error) {
	validation := calc.ValidateDimensions(req.SurfaceType, req.Dimensions)
	if !validation.IsValid {
		return nil, fmt.Errorf("%w: %s", calc.ErrInvalidDimension, strings.Join(validation.Errors, ", "))
	}

	area, err := s.Area(req.SurfaceType, req.Dimensions)
	if err != nil {
		return nil, err
	}

	// Resolve the three reference lookups concurrently.
	var (
		paintData *model.PaintData
		condition *model.SurfaceCondition
		laborRate *model.LaborRate
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		paintData, err = s.paintData.GetByCombination(gctx, req.PaintTypeID, req.SurfaceTypeID, req.PaintQualityID)
		if err != nil {
			return fmt.Errorf("paint data: %w", err)
		}
		return nil
	})
	g.Go(func() (err error) {
		condition, err = s.resolveCondition(gctx, req.SurfaceConditionID)
		return err
	})
	g.Go(func() (err error) {
		laborRate, err = s.resolveLaborRate(gctx, req.LaborRateID, req.Region)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	cost, err := calc.SurfaceCost(area.NetArea, req.Coats, paintData, condition, req.SurfaceCategory, laborRate)
	if err != nil {
		return nil, err
	}

	return &SurfaceEstimate{
		Area: area,
		Cost: cost,
		Formatted: FormattedEstimate{
			Area:         calc.FormatArea(area.NetArea),
			TotalCost:    calc.FormatCurrency(cost.TotalCost),
			MaterialCost: calc.FormatCurrency(cost.MaterialCost),
			LaborCost:    calc.FormatCurrency(cost.LaborCost),
			PaintVolume:  calc.FormatVolume(cost.Details.PaintVolume),
			PrepTime:     calc.FormatTime(cost.Details.PrepTime),
		},
	}, nil
}

// ProjectEstimate resolves the labor rate once, resolves every surface and
// runs the project aggregator. A single bad surface fails the whole call.
func (s *EstimateServiceImpl) ProjectEstimate(ctx context.Context, req ProjectEstimateRequest) (*ProjectEstimate, error) {
	laborRate, err := s.resolveLaborRate(ctx, req.LaborRateID, req.Region)
	if err != nil {
		return nil, err
	}

	surfaces := make([]calc.Surface, 0, len(req.Surfaces))
	for _, sr := range req.Surfaces {
		paintData, err := s.paintData.GetByCombination(ctx, sr.PaintTypeID, sr.SurfaceTypeID, sr.PaintQualityID)
		if err != nil {
			return nil, fmt.Errorf("surface %q: paint data: %w", sr.Name, err)
		}
		condition, err := s.resolveCondition(ctx, sr.SurfaceConditionID)
		if err != nil {
			return nil, fmt.Errorf("surface %q: %w", sr.Name, err)
		}
		surfaces = append(surfaces, calc.Surface{
			ID:               sr.ID,
			Name:             sr.Name,
			Area:             sr.Area,
			Coats:            sr.Coats,
			PaintData:        paintData,
			SurfaceCondition: condition,
			Category:         sr.SurfaceCategory,
		})
	}

	summary, err := calc.ProjectCosts(surfaces, laborRate)
	if err != nil {
		return nil, err
	}

	return &ProjectEstimate{
		Summary: summary,
		LaborRate: LaborRateInfo{
			Name:         laborRate.Name,
			Region:       laborRate.Region,
			TotalRate:    laborRate.TotalRate,
			ProfitMargin: laborRate.ProfitMargin,
		},
		Formatted: ProjectFormatted{
			GrandTotal:        calc.FormatCurrency(summary.Totals.GrandTotal),
			TotalArea:         calc.FormatArea(summary.Totals.TotalArea),
			TotalMaterialCost: calc.FormatCurrency(summary.Totals.TotalMaterialCost),
			TotalLaborCost:    calc.FormatCurrency(summary.Totals.TotalLaborCost),
		},
	}, nil
}

// resolveCondition fetches a surface condition and treats inactive rows as
// missing, so retired conditions never price new work.
func (s *EstimateServiceImpl) resolveCondition(ctx context.Context, id int64) (*model.SurfaceCondition, error) {
	condition, err := s.surfaceConditions.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("surface condition: %w", err)
	}
	if !condition.IsActive {
		return nil, fmt.Errorf("surface condition: %w", repository.ErrNotFound)
	}
	return condition, nil
}

// resolveLaborRate fetches by id when given, otherwise the current rate for
// the region. A missing rate is an error, never a silent default.
func (s *EstimateServiceImpl) resolveLaborRate(ctx context.Context, id *int64, region string) (*model.LaborRate, error) {
	if id != nil {
		rate, err := s.laborRates.GetByID(ctx, *id)
		if err != nil {
			return nil, fmt.Errorf("labor rate: %w", err)
		}
		if !rate.IsActive {
			return nil, fmt.Errorf("labor rate: %w", repository.ErrNotFound)
		}
		return rate, nil
	}
	if region == "" {
		region = s.defaultRegion
	}
	rate, err := s.laborRates.Current(ctx, region)
	if err != nil {
		return nil, fmt.Errorf("labor rate: %w", err)
	}
	return rate, nil
}
