package calc

import (
	"errors"
	"math"
	"strings"
	"testing"
)

func fp(v float64) *float64 { return &v }

func approx(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

// ---------------------------------------------------------------------------
// WallArea
// ---------------------------------------------------------------------------

func TestWallArea_DeductsStandardOpenings(t *testing.T) {
	result, err := WallArea(Dimensions{
		Height:      fp(3.2),
		Length:      fp(4.0),
		DoorCount:   1,
		WindowCount: 2,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !approx(result.GrossArea, 12.8) {
		t.Errorf("expected gross 12.8, got %v", result.GrossArea)
	}
	if !approx(result.Breakdown.Doors, 1.8) {
		t.Errorf("expected door deduction 1.8, got %v", result.Breakdown.Doors)
	}
	if !approx(result.Breakdown.Windows, 3.198) {
		t.Errorf("expected window deduction 3.198, got %v", result.Breakdown.Windows)
	}
	if !approx(result.Deductions, 4.998) {
		t.Errorf("expected deductions 4.998, got %v", result.Deductions)
	}
	if !approx(result.NetArea, 7.802) {
		t.Errorf("expected net 7.802, got %v", result.NetArea)
	}
}

func TestWallArea_CustomOpeningAreasOverrideCounts(t *testing.T) {
	result, err := WallArea(Dimensions{
		Height:           fp(2.4),
		Length:           fp(5.0),
		DoorCount:        3,
		WindowCount:      3,
		CustomDoorArea:   fp(2.5),
		CustomWindowArea: fp(1.0),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !approx(result.Deductions, 3.5) {
		t.Errorf("expected deductions 3.5, got %v", result.Deductions)
	}
	if !approx(result.NetArea, 8.5) {
		t.Errorf("expected net 8.5, got %v", result.NetArea)
	}
}

func TestWallArea_ClampsNetAtZero(t *testing.T) {
	result, err := WallArea(Dimensions{
		Height:    fp(1.0),
		Length:    fp(1.0),
		DoorCount: 2,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.NetArea != 0 {
		t.Errorf("expected net clamped at 0, got %v", result.NetArea)
	}
	if !approx(result.Deductions, 3.6) {
		t.Errorf("expected deductions 3.6, got %v", result.Deductions)
	}
}

func TestWallArea_RejectsMissingOrNonPositiveDimensions(t *testing.T) {
	cases := []struct {
		name string
		dims Dimensions
	}{
		{"missing height", Dimensions{Length: fp(4.0)}},
		{"missing length", Dimensions{Height: fp(2.4)}},
		{"zero height", Dimensions{Height: fp(0), Length: fp(4.0)}},
		{"negative length", Dimensions{Height: fp(2.4), Length: fp(-1)}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := WallArea(tc.dims); !errors.Is(err, ErrInvalidDimension) {
				t.Errorf("expected ErrInvalidDimension, got %v", err)
			}
		})
	}
}

func TestWallArea_RejectsNegativeCounts(t *testing.T) {
	_, err := WallArea(Dimensions{Height: fp(2.4), Length: fp(4.0), DoorCount: -1})
	if !errors.Is(err, ErrInvalidDimension) {
		t.Errorf("expected ErrInvalidDimension, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// DoorArea
// ---------------------------------------------------------------------------

func TestDoorArea_DefaultsToStandardSize(t *testing.T) {
	result, err := DoorArea(Dimensions{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !approx(result.NetArea, 1.8) {
		t.Errorf("expected standard door area 1.8, got %v", result.NetArea)
	}
}

func TestDoorArea_ExplicitAreaWins(t *testing.T) {
	result, err := DoorArea(Dimensions{Area: fp(2.2), Height: fp(2.0), Width: fp(0.9)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !approx(result.NetArea, 2.2) {
		t.Errorf("expected 2.2, got %v", result.NetArea)
	}
}

func TestDoorArea_HeightTimesWidth(t *testing.T) {
	result, err := DoorArea(Dimensions{Height: fp(2.1), Width: fp(0.8)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !approx(result.NetArea, 1.68) {
		t.Errorf("expected 1.68, got %v", result.NetArea)
	}
}

func TestDoorArea_RejectsNonPositiveArea(t *testing.T) {
	if _, err := DoorArea(Dimensions{Area: fp(0)}); !errors.Is(err, ErrInvalidDimension) {
		t.Errorf("expected ErrInvalidDimension for zero area, got %v", err)
	}
	if _, err := DoorArea(Dimensions{Height: fp(-2), Width: fp(0.9)}); !errors.Is(err, ErrInvalidDimension) {
		t.Errorf("expected ErrInvalidDimension for negative height, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// CeilingArea
// ---------------------------------------------------------------------------

func TestCeilingArea_WidthTimesLength(t *testing.T) {
	result, err := CeilingArea(Dimensions{Width: fp(3.0), Length: fp(4.0)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !approx(result.NetArea, 12.0) {
		t.Errorf("expected 12.0, got %v", result.NetArea)
	}
}

func TestCeilingArea_NeverAssumesSize(t *testing.T) {
	_, err := CeilingArea(Dimensions{})
	if !errors.Is(err, ErrInvalidDimension) {
		t.Fatalf("expected ErrInvalidDimension, got %v", err)
	}
	if !strings.Contains(err.Error(), "area or width and length") {
		t.Errorf("expected message naming the alternatives, got %q", err.Error())
	}
}

// ---------------------------------------------------------------------------
// LinearSurfaceArea / RoomPerimeter
// ---------------------------------------------------------------------------

func TestLinearSurfaceArea_DefaultStripHeight(t *testing.T) {
	result, err := LinearSurfaceArea(14.0, DefaultLinearHeight)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !approx(result.NetArea, 1.4) {
		t.Errorf("expected 1.4, got %v", result.NetArea)
	}
}

func TestLinearSurfaceArea_RejectsNonPositive(t *testing.T) {
	if _, err := LinearSurfaceArea(0, 0.1); !errors.Is(err, ErrInvalidDimension) {
		t.Errorf("expected ErrInvalidDimension, got %v", err)
	}
}

func TestRoomPerimeter(t *testing.T) {
	p, err := RoomPerimeter(3.0, 4.0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !approx(p, 14.0) {
		t.Errorf("expected 14.0, got %v", p)
	}
	if _, err := RoomPerimeter(-3, 4); !errors.Is(err, ErrInvalidDimension) {
		t.Errorf("expected ErrInvalidDimension, got %v", err)
	}
}
