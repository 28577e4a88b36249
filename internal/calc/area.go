// Package calc is the pure cost-calculation engine for painting estimates.
// Every function is a deterministic transformation of its arguments: no I/O,
// no shared state, no rounding (display rounding lives in the format helpers).
package calc

import "fmt"

// Standard opening sizes in meters, from the estimator's reference sheet.
const (
	StandardDoorHeight   = 2.0
	StandardDoorWidth    = 0.9
	StandardWindowHeight = 1.599
	StandardWindowWidth  = 1.0

	// DefaultLinearHeight is the assumed strip height for trim, skirting
	// and cornice runs when none is given.
	DefaultLinearHeight = 0.1
)

// Dimensions carries the raw geometric input for one surface. Optional fields
// are pointers so "absent" and "zero" stay distinguishable after JSON decoding.
type Dimensions struct {
	Height           *float64 `json:"height,omitempty"`
	Width            *float64 `json:"width,omitempty"`
	Length           *float64 `json:"length,omitempty"`
	Area             *float64 `json:"area,omitempty"`
	DoorCount        int      `json:"doorCount,omitempty"`
	WindowCount      int      `json:"windowCount,omitempty"`
	CustomDoorArea   *float64 `json:"customDoorArea,omitempty"`
	CustomWindowArea *float64 `json:"customWindowArea,omitempty"`
}

// AreaBreakdown itemizes the deductions of a wall calculation.
type AreaBreakdown struct {
	Doors   float64 `json:"doors,omitempty"`
	Windows float64 `json:"windows,omitempty"`
}

// AreaResult is the output of every area calculator.
type AreaResult struct {
	GrossArea  float64       `json:"grossArea"`
	Deductions float64       `json:"deductions"`
	NetArea    float64       `json:"netArea"`
	Breakdown  AreaBreakdown `json:"breakdown"`
}

// WallArea computes the net paintable area of a wall. Door and window
// openings are deducted at standard sizes unless a custom total is given.
// Net area is clamped at zero: openings larger than the wall mean nothing
// left to paint, not an error.
func WallArea(d Dimensions) (AreaResult, error) {
	if d.Height == nil || d.Length == nil || *d.Height <= 0 || *d.Length <= 0 {
		return AreaResult{}, fmt.Errorf("%w: height and length must be positive", ErrInvalidDimension)
	}
	if d.DoorCount < 0 || d.WindowCount < 0 {
		return AreaResult{}, fmt.Errorf("%w: door and window counts must be non-negative", ErrInvalidDimension)
	}

	gross := *d.Height * *d.Length

	doors := float64(d.DoorCount) * StandardDoorHeight * StandardDoorWidth
	if d.CustomDoorArea != nil {
		doors = *d.CustomDoorArea
	}
	windows := float64(d.WindowCount) * StandardWindowHeight * StandardWindowWidth
	if d.CustomWindowArea != nil {
		windows = *d.CustomWindowArea
	}

	deductions := doors + windows
	net := gross - deductions
	if net < 0 {
		net = 0
	}

	return AreaResult{
		GrossArea:  gross,
		Deductions: deductions,
		NetArea:    net,
		Breakdown:  AreaBreakdown{Doors: doors, Windows: windows},
	}, nil
}

// DoorArea computes a door's paintable area: explicit area if given, else
// height × width, else the standard door size.
func DoorArea(d Dimensions) (AreaResult, error) {
	var area float64
	switch {
	case d.Area != nil:
		area = *d.Area
	case d.Height != nil && d.Width != nil:
		if *d.Height <= 0 || *d.Width <= 0 {
			return AreaResult{}, fmt.Errorf("%w: door area must be positive", ErrInvalidDimension)
		}
		area = *d.Height * *d.Width
	default:
		area = StandardDoorHeight * StandardDoorWidth
	}

	if area <= 0 {
		return AreaResult{}, fmt.Errorf("%w: door area must be positive", ErrInvalidDimension)
	}
	return flatArea(area), nil
}

// CeilingArea computes a ceiling's area from an explicit area or
// width × length. Ceiling size is never assumed.
func CeilingArea(d Dimensions) (AreaResult, error) {
	var area float64
	switch {
	case d.Area != nil:
		area = *d.Area
	case d.Width != nil && d.Length != nil:
		if *d.Width <= 0 || *d.Length <= 0 {
			return AreaResult{}, fmt.Errorf("%w: ceiling area must be positive", ErrInvalidDimension)
		}
		area = *d.Width * *d.Length
	default:
		return AreaResult{}, fmt.Errorf("%w: ceiling requires either area or width and length", ErrInvalidDimension)
	}

	if area <= 0 {
		return AreaResult{}, fmt.Errorf("%w: ceiling area must be positive", ErrInvalidDimension)
	}
	return flatArea(area), nil
}

// LinearSurfaceArea computes the paintable area of a trim, skirting or
// cornice run as length × strip height.
func LinearSurfaceArea(length, height float64) (AreaResult, error) {
	if length <= 0 || height <= 0 {
		return AreaResult{}, fmt.Errorf("%w: length and height must be positive", ErrInvalidDimension)
	}
	return flatArea(length * height), nil
}

// RoomPerimeter returns 2 × (width + length). Exposed as a helper for
// callers sizing linear runs; the aggregators never call it.
func RoomPerimeter(width, length float64) (float64, error) {
	if width <= 0 || length <= 0 {
		return 0, fmt.Errorf("%w: width and length must be positive", ErrInvalidDimension)
	}
	return 2 * (width + length), nil
}

func flatArea(area float64) AreaResult {
	return AreaResult{GrossArea: area, NetArea: area}
}
