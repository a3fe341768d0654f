package model

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when a lookup or a keyed mutation matched no row.
	ErrNotFound = errors.New("record not found")

	// ErrStaleRecord is returned when a versioned mutation matched no row:
	// the row is missing or the supplied version token is stale. The two
	// cases are indistinguishable to the caller.
	ErrStaleRecord = errors.New("stale or missing record")

	// ErrDataIntegrity flags store results that violate the assumed table
	// shape, such as a primary-key statement affecting more than one row.
	ErrDataIntegrity = errors.New("data integrity violation")
)

// CodeStaleRecord is the stable machine-readable code carried by the
// validation error produced from a rejected versioned delete.
const CodeStaleRecord = "stale-or-missing-record"

// FieldError is a validation failure scoped to a single request field.
type FieldError struct {
	Field string
	Value string
	Code  string
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s %q: %s", e.Field, e.Value, e.Code)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}
