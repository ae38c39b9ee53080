package workspace

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when an id does not name a live entity in
	// the scope the operation works on.
	ErrNotFound = errors.New("not found")

	// ErrNoSelection is returned by create operations that need a current
	// project or folder while none is selected.
	ErrNoSelection = errors.New("nothing selected")
)

// ValidationError rejects user input before any mutation happens.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// InvariantViolation rejects a delete that would leave a collection empty.
type InvariantViolation struct {
	Kind string // "project", "folder" or "file"
}

func (e *InvariantViolation) Error() string {
	return fmt.Sprintf("cannot delete the last %s", e.Kind)
}

// IsValidation reports whether err is, or wraps, a *ValidationError.
func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}

// IsInvariant reports whether err is, or wraps, an *InvariantViolation.
func IsInvariant(err error) bool {
	var v *InvariantViolation
	return errors.As(err, &v)
}
