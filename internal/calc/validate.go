package calc

// ValidationResult is the outcome of a pre-flight dimension check.
type ValidationResult struct {
	IsValid bool     `json:"isValid"`
	Errors  []string `json:"errors"`
}

// ValidateDimensions checks the raw dimensions required for a surface type
// before the area calculators run. It never fails hard: callers get a result
// object either way, and the calculators still enforce their own
// preconditions as a backstop.
func ValidateDimensions(surfaceType string, d Dimensions) ValidationResult {
	var errs []string

	switch surfaceType {
	case "wall":
		if d.Height == nil || *d.Height <= 0 {
			errs = append(errs, "Wall height must be a positive number")
		}
		if d.Length == nil || *d.Length <= 0 {
			errs = append(errs, "Wall length must be a positive number")
		}
	case "door":
		if !present(d.Area) && (!present(d.Height) || !present(d.Width)) {
			errs = append(errs, "Door requires either area or height and width")
		}
	case "ceiling":
		if !present(d.Area) && (!present(d.Width) || !present(d.Length)) {
			errs = append(errs, "Ceiling requires either area or width and length")
		}
	case "linear":
		if d.Length == nil || *d.Length <= 0 {
			errs = append(errs, "Linear surface length must be positive")
		}
	}

	return ValidationResult{IsValid: len(errs) == 0, Errors: errs}
}

// present treats an explicit zero like an absent field, so a zero area still
// demands the alternative dimensions.
func present(v *float64) bool {
	return v != nil && *v != 0
}
