package model

import (
	"errors"
	"fmt"
)

var (
	// ErrRejected is wrapped by every ValidationError.
	ErrRejected = errors.New("rejected")
	// ErrNotFound is returned when an id does not match any record.
	ErrNotFound = errors.New("not found")
	// ErrNoDraft is returned when an edit operation runs with nothing staged.
	ErrNoDraft = errors.New("no expense is being edited")
)

// ValidationError describes input that was refused. State is unchanged when
// one is returned.
type ValidationError struct {
	Field  string
	Value  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s %q: %s", e.Field, e.Value, e.Reason)
}

// Unwrap lets errors.Is(err, ErrRejected) match any validation failure.
func (e *ValidationError) Unwrap() error {
	return ErrRejected
}
