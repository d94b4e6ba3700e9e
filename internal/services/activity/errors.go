package activity

import (
	"errors"
	"fmt"
)

// Domain errors for activity service
var (
	ErrInvalidActivityID = errors.New("invalid activity ID")
	ErrActivityNotFound  = errors.New("activity not found")
	ErrAlreadyPersisted  = errors.New("activity already has an ID; use Update")

	// ErrValidation matches every *ValidationError with errors.Is
	ErrValidation = errors.New("validation failed")
)

// ValidationError reports a single invalid field
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// Is lets errors.Is(err, ErrValidation) match any ValidationError
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

func invalid(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}
