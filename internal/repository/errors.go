package repository

import "errors"

var (
	// ErrNotFound is returned when a requested record does not exist in the
	// database (or is inactive where only active rows are served).
	ErrNotFound = errors.New("not found")

	// ErrConflict is returned when an insert or update violates a uniqueness
	// constraint, e.g. a second active paint-data row for the same combination.
	ErrConflict = errors.New("conflict")
)
