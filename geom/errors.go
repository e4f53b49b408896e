package geom

import (
	"errors"
	"fmt"
)

// Errors identifying which invariant a rejected value violated. They
// are always returned wrapped in a *ValidationError and can be tested
// for with errors.Is.
var (
	ErrNonFinite      = errors.New("value is NaN or infinite")
	ErrInvertedBounds = errors.New("minimum is greater than maximum")
	ErrTooFewVertices = errors.New("fewer than 3 vertices")
	ErrDegenerateEdge = errors.New("consecutive vertices are equal")
	ErrZeroVector     = errors.New("zero vector has no direction")
	ErrNoPoints       = errors.New("no points given")
)

// ValidationError is returned when a value cannot be constructed
// because its input would break one of the invariants of the type
// being built.
type ValidationError struct {
	// Field names the offending input, such as "min.x" or
	// "vertices[3]". It may be empty if the error concerns the input as
	// a whole.
	Field string

	// Err is one of the sentinel errors defined by this package.
	Err error
}

func invalid(field string, err error) *ValidationError {
	return &ValidationError{Field: field, Err: err}
}

func (err *ValidationError) Error() string {
	if err.Field == "" {
		return fmt.Sprintf("invalid geometry: %v", err.Err)
	}
	return fmt.Sprintf("invalid geometry: %v: %v", err.Field, err.Err)
}

func (err *ValidationError) Unwrap() error {
	return err.Err
}
