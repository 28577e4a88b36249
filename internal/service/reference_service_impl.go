package service

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/renopilot/backend/internal/model"
	"github.com/renopilot/backend/internal/repository"
)

// ReferenceServiceImpl implements ReferenceService over the pg repositories.
type ReferenceServiceImpl struct {
	paintTypes        repository.PaintTypeRepository
	surfaceTypes      repository.SurfaceTypeRepository
	paintQualities    repository.PaintQualityRepository
	surfaceConditions repository.SurfaceConditionRepository
	paintData         repository.PaintDataRepository
	laborRates        repository.LaborRateRepository
	paintColors       repository.PaintColorRepository
}

// NewReferenceService creates a ReferenceServiceImpl.
func NewReferenceService(
	paintTypes repository.PaintTypeRepository,
	surfaceTypes repository.SurfaceTypeRepository,
	paintQualities repository.PaintQualityRepository,
	surfaceConditions repository.SurfaceConditionRepository,
	paintData repository.PaintDataRepository,
	laborRates repository.LaborRateRepository,
	paintColors repository.PaintColorRepository,
) ReferenceService {
	return &ReferenceServiceImpl{
		paintTypes:        paintTypes,
		surfaceTypes:      surfaceTypes,
		paintQualities:    paintQualities,
		surfaceConditions: surfaceConditions,
		paintData:         paintData,
		laborRates:        laborRates,
		paintColors:       paintColors,
	}
}

// Snapshot fetches the five calculation-relevant reference sets concurrently.
func (s *ReferenceServiceImpl) Snapshot(ctx context.Context) (*ReferenceData, error) {
	var data ReferenceData
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		data.PaintTypes, err = s.paintTypes.List(gctx, true)
		return err
	})
	g.Go(func() (err error) {
		data.SurfaceTypes, err = s.surfaceTypes.List(gctx, true)
		return err
	})
	g.Go(func() (err error) {
		data.PaintQualities, err = s.paintQualities.List(gctx, true)
		return err
	})
	g.Go(func() (err error) {
		data.SurfaceConditions, err = s.surfaceConditions.List(gctx, true)
		return err
	})
	g.Go(func() (err error) {
		data.LaborRates, err = s.laborRates.List(gctx, true)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &data, nil
}

// --- paint types ---

func (s *ReferenceServiceImpl) ListPaintTypes(ctx context.Context) ([]*model.PaintType, error) {
	return s.paintTypes.List(ctx, false)
}

func (s *ReferenceServiceImpl) SavePaintType(ctx context.Context, pt *model.PaintType) error {
	if strings.TrimSpace(pt.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrValidation)
	}
	if pt.ID == 0 {
		return s.paintTypes.Create(ctx, pt)
	}
	return s.paintTypes.Update(ctx, pt)
}

func (s *ReferenceServiceImpl) DeletePaintType(ctx context.Context, id int64) error {
	return s.paintTypes.Delete(ctx, id)
}

// --- surface types ---

func (s *ReferenceServiceImpl) ListSurfaceTypes(ctx context.Context) ([]*model.SurfaceType, error) {
	return s.surfaceTypes.List(ctx, false)
}

func (s *ReferenceServiceImpl) SaveSurfaceType(ctx context.Context, st *model.SurfaceType) error {
	if strings.TrimSpace(st.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrValidation)
	}
	if !st.Category.Valid() {
		return fmt.Errorf("%w: category must be one of wall, ceiling, door, linear", ErrValidation)
	}
	if st.ID == 0 {
		return s.surfaceTypes.Create(ctx, st)
	}
	return s.surfaceTypes.Update(ctx, st)
}

func (s *ReferenceServiceImpl) DeleteSurfaceType(ctx context.Context, id int64) error {
	return s.surfaceTypes.Delete(ctx, id)
}

// --- paint qualities ---

func (s *ReferenceServiceImpl) ListPaintQualities(ctx context.Context) ([]*model.PaintQuality, error) {
	return s.paintQualities.List(ctx, false)
}

var validQualityLevels = map[string]bool{
	"basic":    true,
	"standard": true,
	"premium":  true,
	"luxury":   true,
}

func (s *ReferenceServiceImpl) SavePaintQuality(ctx context.Context, pq *model.PaintQuality) error {
	if strings.TrimSpace(pq.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrValidation)
	}
	if !validQualityLevels[pq.Level] {
		return fmt.Errorf("%w: level must be one of basic, standard, premium, luxury", ErrValidation)
	}
	if pq.ID == 0 {
		return s.paintQualities.Create(ctx, pq)
	}
	return s.paintQualities.Update(ctx, pq)
}

func (s *ReferenceServiceImpl) DeletePaintQuality(ctx context.Context, id int64) error {
	return s.paintQualities.Delete(ctx, id)
}

// --- surface conditions ---

func (s *ReferenceServiceImpl) ListSurfaceConditions(ctx context.Context) ([]*model.SurfaceCondition, error) {
	return s.surfaceConditions.List(ctx, false)
}

func (s *ReferenceServiceImpl) SaveSurfaceCondition(ctx context.Context, sc *model.SurfaceCondition) error {
	if strings.TrimSpace(sc.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrValidation)
	}
	if sc.PrepTimeWall < 0 || sc.PrepTimeCeiling < 0 || sc.PrepTimeDoor < 0 || sc.PrepTimeLinear < 0 {
		return fmt.Errorf("%w: prep times must be non-negative", ErrValidation)
	}
	if sc.ID == 0 {
		return s.surfaceConditions.Create(ctx, sc)
	}
	return s.surfaceConditions.Update(ctx, sc)
}

func (s *ReferenceServiceImpl) DeleteSurfaceCondition(ctx context.Context, id int64) error {
	return s.surfaceConditions.Delete(ctx, id)
}

// --- paint data ---

func (s *ReferenceServiceImpl) ListPaintData(ctx context.Context) ([]*model.PaintData, error) {
	return s.paintData.List(ctx, false)
}

func (s *ReferenceServiceImpl) SearchPaintData(ctx context.Context, filter repository.PaintDataFilter) ([]*model.PaintData, error) {
	return s.paintData.Search(ctx, filter)
}

func (s *ReferenceServiceImpl) SavePaintData(ctx context.Context, pd *model.PaintData) error {
	if pd.PaintTypeID == 0 || pd.SurfaceTypeID == 0 || pd.PaintQualityID == 0 {
		return fmt.Errorf("%w: paint type, surface type and quality are required", ErrValidation)
	}
	if pd.Coverage <= 0 {
		return fmt.Errorf("%w: coverage must be positive", ErrValidation)
	}
	if pd.CostPerM2 <= 0 {
		return fmt.Errorf("%w: cost per m² must be positive", ErrValidation)
	}
	if pd.ID == 0 {
		return s.paintData.Create(ctx, pd)
	}
	return s.paintData.Update(ctx, pd)
}

func (s *ReferenceServiceImpl) DeletePaintData(ctx context.Context, id int64) error {
	return s.paintData.Delete(ctx, id)
}

// --- labor rates ---

func (s *ReferenceServiceImpl) ListLaborRates(ctx context.Context) ([]*model.LaborRate, error) {
	return s.laborRates.List(ctx, false)
}

// SaveLaborRate recomputes the derived total rate on every save, mirroring
// the reference sheet where total = hourly + overhead.
func (s *ReferenceServiceImpl) SaveLaborRate(ctx context.Context, lr *model.LaborRate) error {
	if strings.TrimSpace(lr.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrValidation)
	}
	if lr.HourlyRate < 0 || lr.OverheadRate < 0 {
		return fmt.Errorf("%w: rates must be non-negative", ErrValidation)
	}
	if lr.ProfitMargin < 0 {
		return fmt.Errorf("%w: profit margin must be non-negative", ErrValidation)
	}
	lr.ComputeTotalRate()
	if lr.ID == 0 {
		return s.laborRates.Create(ctx, lr)
	}
	return s.laborRates.Update(ctx, lr)
}

func (s *ReferenceServiceImpl) DeleteLaborRate(ctx context.Context, id int64) error {
	return s.laborRates.Delete(ctx, id)
}

// --- paint colors ---

func (s *ReferenceServiceImpl) ListPaintColors(ctx context.Context) ([]*model.PaintColor, error) {
	return s.paintColors.List(ctx)
}

func (s *ReferenceServiceImpl) CreatePaintColor(ctx context.Context, pc *model.PaintColor) error {
	if strings.TrimSpace(pc.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrValidation)
	}
	return s.paintColors.Create(ctx, pc)
}

func (s *ReferenceServiceImpl) DeletePaintColor(ctx context.Context, id int64) error {
	return s.paintColors.Delete(ctx, id)
}
