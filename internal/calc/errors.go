package calc

import "errors"

// Calculation errors. Callers match with errors.Is; the engine wraps these
// with context via fmt.Errorf("%w: ...") and never recovers from them itself.
var (
	// ErrInvalidDimension means a geometric input violated a
	// positivity/presence precondition.
	ErrInvalidDimension = errors.New("invalid dimension")

	// ErrInvalidInput means a costing input (area, coats) violated a
	// precondition.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnsupportedCategory means a surface category outside
	// {wall, ceiling, door, linear}.
	ErrUnsupportedCategory = errors.New("unsupported surface category")
)
