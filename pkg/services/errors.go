// Package services provides typed repositories over the Ent client, one
// per entity, plus the store retry policy. All run-state mutation goes
// through these services so invariants are enforced at a single choke
// point.
package services

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound indicates the requested record does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrAlreadyExists indicates a uniqueness constraint was violated.
	ErrAlreadyExists = errors.New("record already exists")

	// ErrConflict indicates the requested transition is not valid from
	// the record's current state.
	ErrConflict = errors.New("conflicting state transition")

	// ErrTerminal indicates a write attempted to mutate a run that has
	// already reached a terminal status.
	ErrTerminal = errors.New("run is terminal")

	// ErrStoreExhausted indicates the store retry budget was spent
	// without a successful write. Fatal for the owning run.
	ErrStoreExhausted = errors.New("persistence retries exhausted")

	// ErrFenceHeld indicates another orchestrator holds the fence row.
	ErrFenceHeld = errors.New("orchestration fence held")
)

// ValidationError describes a rejected service input.
type ValidationError struct {
	Field  string
	Reason string
}

// NewValidationError creates a validation error for a field.
func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

// Error returns the formatted message.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %s: %s", e.Field, e.Reason)
}

// IsValidation reports whether err is a validation error.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
