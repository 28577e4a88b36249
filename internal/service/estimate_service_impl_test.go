package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/renopilot/backend/internal/calc"
	"github.com/renopilot/backend/internal/model"
	"github.com/renopilot/backend/internal/repository"
)

func fp(v float64) *float64 { return &v }

func ip(v int64) *int64 { return &v }

// ---------------------------------------------------------------------------
// Mock repositories
// ---------------------------------------------------------------------------

type mockPaintDataRepository struct {
	listFunc             func(ctx context.Context, activeOnly bool) ([]*model.PaintData, error)
	searchFunc           func(ctx context.Context, filter repository.PaintDataFilter) ([]*model.PaintData, error)
	getByCombinationFunc func(ctx context.Context, paintTypeID, surfaceTypeID, paintQualityID int64) (*model.PaintData, error)
	createFunc           func(ctx context.Context, pd *model.PaintData) error
	updateFunc           func(ctx context.Context, pd *model.PaintData) error
	deleteFunc           func(ctx context.Context, id int64) error
}

func (m *mockPaintDataRepository) List(ctx context.Context, activeOnly bool) ([]*model.PaintData, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, activeOnly)
	}
	return nil, nil
}
func (m *mockPaintDataRepository) Search(ctx context.Context, filter repository.PaintDataFilter) ([]*model.PaintData, error) {
	if m.searchFunc != nil {
		return m.searchFunc(ctx, filter)
	}
	return nil, nil
}
func (m *mockPaintDataRepository) GetByCombination(ctx context.Context, paintTypeID, surfaceTypeID, paintQualityID int64) (*model.PaintData, error) {
	if m.getByCombinationFunc != nil {
		return m.getByCombinationFunc(ctx, paintTypeID, surfaceTypeID, paintQualityID)
	}
	return nil, repository.ErrNotFound
}
func (m *mockPaintDataRepository) Create(ctx context.Context, pd *model.PaintData) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, pd)
	}
	return nil
}
func (m *mockPaintDataRepository) Update(ctx context.Context, pd *model.PaintData) error {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, pd)
	}
	return nil
}
func (m *mockPaintDataRepository) Delete(ctx context.Context, id int64) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return nil
}

type mockSurfaceConditionRepository struct {
	listFunc    func(ctx context.Context, activeOnly bool) ([]*model.SurfaceCondition, error)
	getByIDFunc func(ctx context.Context, id int64) (*model.SurfaceCondition, error)
	createFunc  func(ctx context.Context, sc *model.SurfaceCondition) error
	updateFunc  func(ctx context.Context, sc *model.SurfaceCondition) error
	deleteFunc  func(ctx context.Context, id int64) error
}

func (m *mockSurfaceConditionRepository) List(ctx context.Context, activeOnly bool) ([]*model.SurfaceCondition, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, activeOnly)
	}
	return nil, nil
}
func (m *mockSurfaceConditionRepository) GetByID(ctx context.Context, id int64) (*model.SurfaceCondition, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return nil, repository.ErrNotFound
}
func (m *mockSurfaceConditionRepository) Create(ctx context.Context, sc *model.SurfaceCondition) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, sc)
	}
	return nil
}
func (m *mockSurfaceConditionRepository) Update(ctx context.Context, sc *model.SurfaceCondition) error {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, sc)
	}
	return nil
}
func (m *mockSurfaceConditionRepository) Delete(ctx context.Context, id int64) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return nil
}

type mockLaborRateRepository struct {
	listFunc    func(ctx context.Context, activeOnly bool) ([]*model.LaborRate, error)
	getByIDFunc func(ctx context.Context, id int64) (*model.LaborRate, error)
	currentFunc func(ctx context.Context, region string) (*model.LaborRate, error)
	createFunc  func(ctx context.Context, lr *model.LaborRate) error
	updateFunc  func(ctx context.Context, lr *model.LaborRate) error
	deleteFunc  func(ctx context.Context, id int64) error
}

func (m *mockLaborRateRepository) List(ctx context.Context, activeOnly bool) ([]*model.LaborRate, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, activeOnly)
	}
	return nil, nil
}
func (m *mockLaborRateRepository) GetByID(ctx context.Context, id int64) (*model.LaborRate, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return nil, repository.ErrNotFound
}
func (m *mockLaborRateRepository) Current(ctx context.Context, region string) (*model.LaborRate, error) {
	if m.currentFunc != nil {
		return m.currentFunc(ctx, region)
	}
	return nil, repository.ErrNotFound
}
func (m *mockLaborRateRepository) Create(ctx context.Context, lr *model.LaborRate) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, lr)
	}
	return nil
}
func (m *mockLaborRateRepository) Update(ctx context.Context, lr *model.LaborRate) error {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, lr)
	}
	return nil
}
func (m *mockLaborRateRepository) Delete(ctx context.Context, id int64) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Fixtures
// ---------------------------------------------------------------------------

func fixturePaintData() *model.PaintData {
	return &model.PaintData{ID: 1, PaintTypeID: 1, SurfaceTypeID: 1, PaintQualityID: 1, Coverage: 9.8, CostPerM2: 2.551, IsActive: true}
}

func fixtureCondition() *model.SurfaceCondition {
	return &model.SurfaceCondition{ID: 1, Name: "Good", PrepTimeWall: 3.0, PrepTimeCeiling: 5.0, PrepTimeDoor: 8.0, PrepTimeLinear: 6.0, IsActive: true}
}

func fixtureRate() *model.LaborRate {
	total := 70.0
	return &model.LaborRate{ID: 1, Name: "Standard Rate", Region: "Sydney", HourlyRate: 35.0, OverheadRate: 35.0, TotalRate: &total, ProfitMargin: 0.20, IsActive: true}
}

func newTestEstimateService(pd *mockPaintDataRepository, sc *mockSurfaceConditionRepository, lr *mockLaborRateRepository) EstimateService {
	return NewEstimateService(pd, sc, lr, "")
}

// ---------------------------------------------------------------------------
// Area
// ---------------------------------------------------------------------------

func TestEstimateService_Area_DispatchesBySurfaceType(t *testing.T) {
	svc := newTestEstimateService(&mockPaintDataRepository{}, &mockSurfaceConditionRepository{}, &mockLaborRateRepository{})

	wall, err := svc.Area("wall", calc.Dimensions{Height: fp(3.2), Length: fp(4.0), DoorCount: 1, WindowCount: 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if wall.NetArea < 7.8 || wall.NetArea > 7.81 {
		t.Errorf("expected net area 7.802, got %v", wall.NetArea)
	}

	door, err := svc.Area("door", calc.Dimensions{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if door.NetArea != 1.8 {
		t.Errorf("expected standard door area 1.8, got %v", door.NetArea)
	}

	if _, err := svc.Area("floor", calc.Dimensions{}); !errors.Is(err, calc.ErrInvalidDimension) {
		t.Errorf("expected ErrInvalidDimension for unknown type, got %v", err)
	}
}

func TestEstimateService_Area_LinearDefaultsStripHeight(t *testing.T) {
	svc := newTestEstimateService(&mockPaintDataRepository{}, &mockSurfaceConditionRepository{}, &mockLaborRateRepository{})

	result, err := svc.Area("linear", calc.Dimensions{Length: fp(14.0)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.NetArea < 1.399 || result.NetArea > 1.401 {
		t.Errorf("expected 1.4, got %v", result.NetArea)
	}

	custom, err := svc.Area("linear", calc.Dimensions{Length: fp(10.0), Height: fp(0.2)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if custom.NetArea != 2.0 {
		t.Errorf("explicit height must win over the default, got %v", custom.NetArea)
	}
}

// ---------------------------------------------------------------------------
// SurfaceEstimate
// ---------------------------------------------------------------------------

func TestEstimateService_SurfaceEstimate_Success(t *testing.T) {
	pd := &mockPaintDataRepository{
		getByCombinationFunc: func(_ context.Context, paintTypeID, surfaceTypeID, paintQualityID int64) (*model.PaintData, error) {
			if paintTypeID != 1 || surfaceTypeID != 1 || paintQualityID != 1 {
				t.Errorf("unexpected combination %d/%d/%d", paintTypeID, surfaceTypeID, paintQualityID)
			}
			return fixturePaintData(), nil
		},
	}
	sc := &mockSurfaceConditionRepository{
		getByIDFunc: func(_ context.Context, id int64) (*model.SurfaceCondition, error) {
			return fixtureCondition(), nil
		},
	}
	lr := &mockLaborRateRepository{
		getByIDFunc: func(_ context.Context, id int64) (*model.LaborRate, error) {
			return fixtureRate(), nil
		},
	}
	svc := newTestEstimateService(pd, sc, lr)

	estimate, err := svc.SurfaceEstimate(context.Background(), SurfaceEstimateRequest{
		SurfaceType:        "wall",
		Dimensions:         calc.Dimensions{Height: fp(2.5), Length: fp(4.0)},
		PaintTypeID:        1,
		SurfaceTypeID:      1,
		PaintQualityID:     1,
		SurfaceConditionID: 1,
		SurfaceCategory:    model.CategoryWall,
		Coats:              1,
		LaborRateID:        ip(1),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if estimate.Area.NetArea != 10.0 {
		t.Errorf("expected net area 10, got %v", estimate.Area.NetArea)
	}
	if estimate.Formatted.TotalCost != "$72.61" {
		t.Errorf("expected formatted total $72.61, got %q", estimate.Formatted.TotalCost)
	}
	if estimate.Formatted.PrepTime != "30m" {
		t.Errorf("expected prep time 30m, got %q", estimate.Formatted.PrepTime)
	}
}

func TestEstimateService_SurfaceEstimate_RejectsInvalidDimensions(t *testing.T) {
	svc := newTestEstimateService(&mockPaintDataRepository{}, &mockSurfaceConditionRepository{}, &mockLaborRateRepository{})

	_, err := svc.SurfaceEstimate(context.Background(), SurfaceEstimateRequest{
		SurfaceType: "wall",
		Dimensions:  calc.Dimensions{Length: fp(4.0)},
	})
	if !errors.Is(err, calc.ErrInvalidDimension) {
		t.Fatalf("expected ErrInvalidDimension, got %v", err)
	}
	if !strings.Contains(err.Error(), "Wall height must be a positive number") {
		t.Errorf("error should carry the validation message, got %q", err.Error())
	}
}

func TestEstimateService_SurfaceEstimate_InactiveConditionIsNotFound(t *testing.T) {
	pd := &mockPaintDataRepository{
		getByCombinationFunc: func(context.Context, int64, int64, int64) (*model.PaintData, error) {
			return fixturePaintData(), nil
		},
	}
	retired := fixtureCondition()
	retired.IsActive = false
	sc := &mockSurfaceConditionRepository{
		getByIDFunc: func(context.Context, int64) (*model.SurfaceCondition, error) {
			return retired, nil
		},
	}
	lr := &mockLaborRateRepository{
		getByIDFunc: func(context.Context, int64) (*model.LaborRate, error) {
			return fixtureRate(), nil
		},
	}
	svc := newTestEstimateService(pd, sc, lr)

	_, err := svc.SurfaceEstimate(context.Background(), SurfaceEstimateRequest{
		SurfaceType:        "wall",
		Dimensions:         calc.Dimensions{Height: fp(2.5), Length: fp(4.0)},
		SurfaceConditionID: 1,
		SurfaceCategory:    model.CategoryWall,
		Coats:              1,
		LaborRateID:        ip(1),
	})
	if !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("expected ErrNotFound for inactive condition, got %v", err)
	}
}

func TestEstimateService_SurfaceEstimate_FallsBackToCurrentRate(t *testing.T) {
	pd := &mockPaintDataRepository{
		getByCombinationFunc: func(context.Context, int64, int64, int64) (*model.PaintData, error) {
			return fixturePaintData(), nil
		},
	}
	sc := &mockSurfaceConditionRepository{
		getByIDFunc: func(context.Context, int64) (*model.SurfaceCondition, error) {
			return fixtureCondition(), nil
		},
	}
	var gotRegion string
	lr := &mockLaborRateRepository{
		currentFunc: func(_ context.Context, region string) (*model.LaborRate, error) {
			gotRegion = region
			return fixtureRate(), nil
		},
	}
	svc := newTestEstimateService(pd, sc, lr)

	_, err := svc.SurfaceEstimate(context.Background(), SurfaceEstimateRequest{
		SurfaceType:        "wall",
		Dimensions:         calc.Dimensions{Height: fp(2.5), Length: fp(4.0)},
		SurfaceConditionID: 1,
		SurfaceCategory:    model.CategoryWall,
		Coats:              1,
		Region:             "Melbourne",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotRegion != "Melbourne" {
		t.Errorf("expected region Melbourne, got %q", gotRegion)
	}
}

func TestEstimateService_SurfaceEstimate_UsesDefaultRegion(t *testing.T) {
	pd := &mockPaintDataRepository{
		getByCombinationFunc: func(context.Context, int64, int64, int64) (*model.PaintData, error) {
			return fixturePaintData(), nil
		},
	}
	sc := &mockSurfaceConditionRepository{
		getByIDFunc: func(context.Context, int64) (*model.SurfaceCondition, error) {
			return fixtureCondition(), nil
		},
	}
	var gotRegion string
	lr := &mockLaborRateRepository{
		currentFunc: func(_ context.Context, region string) (*model.LaborRate, error) {
			gotRegion = region
			return fixtureRate(), nil
		},
	}
	svc := NewEstimateService(pd, sc, lr, "Sydney")

	_, err := svc.SurfaceEstimate(context.Background(), SurfaceEstimateRequest{
		SurfaceType:        "wall",
		Dimensions:         calc.Dimensions{Height: fp(2.5), Length: fp(4.0)},
		SurfaceConditionID: 1,
		SurfaceCategory:    model.CategoryWall,
		Coats:              1,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotRegion != "Sydney" {
		t.Errorf("expected default region Sydney, got %q", gotRegion)
	}
}

// ---------------------------------------------------------------------------
// ProjectEstimate
// ---------------------------------------------------------------------------

func TestEstimateService_ProjectEstimate_Success(t *testing.T) {
	pd := &mockPaintDataRepository{
		getByCombinationFunc: func(context.Context, int64, int64, int64) (*model.PaintData, error) {
			return fixturePaintData(), nil
		},
	}
	sc := &mockSurfaceConditionRepository{
		getByIDFunc: func(context.Context, int64) (*model.SurfaceCondition, error) {
			return fixtureCondition(), nil
		},
	}
	lr := &mockLaborRateRepository{
		getByIDFunc: func(context.Context, int64) (*model.LaborRate, error) {
			return fixtureRate(), nil
		},
	}
	svc := newTestEstimateService(pd, sc, lr)

	estimate, err := svc.ProjectEstimate(context.Background(), ProjectEstimateRequest{
		Surfaces: []ProjectSurfaceRequest{
			{ID: "s1", Name: "North Wall", Area: 10.0, Coats: 1, PaintTypeID: 1, SurfaceTypeID: 1, PaintQualityID: 1, SurfaceConditionID: 1, SurfaceCategory: model.CategoryWall},
			{ID: "s2", Name: "South Wall", Area: 10.0, Coats: 1, PaintTypeID: 1, SurfaceTypeID: 1, PaintQualityID: 1, SurfaceConditionID: 1, SurfaceCategory: model.CategoryWall},
		},
		LaborRateID: ip(1),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(estimate.Summary.Surfaces) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(estimate.Summary.Surfaces))
	}
	if estimate.Summary.Totals.TotalArea != 20.0 {
		t.Errorf("expected total area 20, got %v", estimate.Summary.Totals.TotalArea)
	}
	if estimate.LaborRate.Name != "Standard Rate" {
		t.Errorf("expected rate echoed back, got %+v", estimate.LaborRate)
	}
	if estimate.Formatted.GrandTotal != "$145.22" {
		t.Errorf("expected grand total $145.22, got %q", estimate.Formatted.GrandTotal)
	}
}

func TestEstimateService_ProjectEstimate_MissingPaintDataNamesSurface(t *testing.T) {
	pd := &mockPaintDataRepository{} // GetByCombination defaults to ErrNotFound
	sc := &mockSurfaceConditionRepository{
		getByIDFunc: func(context.Context, int64) (*model.SurfaceCondition, error) {
			return fixtureCondition(), nil
		},
	}
	lr := &mockLaborRateRepository{
		getByIDFunc: func(context.Context, int64) (*model.LaborRate, error) {
			return fixtureRate(), nil
		},
	}
	svc := newTestEstimateService(pd, sc, lr)

	_, err := svc.ProjectEstimate(context.Background(), ProjectEstimateRequest{
		Surfaces: []ProjectSurfaceRequest{
			{ID: "s1", Name: "Orphan Wall", Area: 10.0, Coats: 1, SurfaceCategory: model.CategoryWall},
		},
		LaborRateID: ip(1),
	})
	if !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if !strings.Contains(err.Error(), "Orphan Wall") {
		t.Errorf("error should name the surface, got %q", err.Error())
	}
}

func TestEstimateService_ProjectEstimate_EmptyProject(t *testing.T) {
	lr := &mockLaborRateRepository{
		getByIDFunc: func(context.Context, int64) (*model.LaborRate, error) {
			return fixtureRate(), nil
		},
	}
	svc := newTestEstimateService(&mockPaintDataRepository{}, &mockSurfaceConditionRepository{}, lr)

	estimate, err := svc.ProjectEstimate(context.Background(), ProjectEstimateRequest{LaborRateID: ip(1)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(estimate.Summary.Surfaces) != 0 || estimate.Summary.Surfaces == nil {
		t.Errorf("expected empty non-nil surface list, got %#v", estimate.Summary.Surfaces)
	}
	if estimate.Formatted.GrandTotal != "$0.00" {
		t.Errorf("expected $0.00, got %q", estimate.Formatted.GrandTotal)
	}
}

func TestEstimateService_ProjectEstimate_InactiveRateByID(t *testing.T) {
	retired := fixtureRate()
	retired.IsActive = false
	lr := &mockLaborRateRepository{
		getByIDFunc: func(context.Context, int64) (*model.LaborRate, error) {
			return retired, nil
		},
	}
	svc := newTestEstimateService(&mockPaintDataRepository{}, &mockSurfaceConditionRepository{}, lr)

	_, err := svc.ProjectEstimate(context.Background(), ProjectEstimateRequest{LaborRateID: ip(1)})
	if !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("expected ErrNotFound for inactive rate, got %v", err)
	}
}
