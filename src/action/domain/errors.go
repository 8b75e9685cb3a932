package domain

import (
	"errors"
	"fmt"
)

// ErrBusy is returned when an action instance is submitted while already running.
var ErrBusy = errors.New("action already in progress")

// ValidationError is a local precondition failure. Its message is shown to the user as-is.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func Invalid(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// ActionFailure wraps the cause of a failed unit of work. The cause is logged, never shown.
type ActionFailure struct {
	Action string
	Err    error
}

func (e *ActionFailure) Error() string {
	return fmt.Sprintf("%s failed: %v", e.Action, e.Err)
}

func (e *ActionFailure) Unwrap() error { return e.Err }

func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}
