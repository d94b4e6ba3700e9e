package project

import "errors"

// Domain errors for project service
var (
	// Validation errors
	ErrEmptyName        = errors.New("project name cannot be empty")
	ErrNameTooLong      = errors.New("project name cannot exceed 100 characters")
	ErrInvalidProjectID = errors.New("invalid project ID")
	ErrInvalidPage      = errors.New("page must be >= 1 and page size >= 1")
	ErrInvalidSort      = errors.New("invalid sort spec")

	// Business logic errors
	ErrProjectNotFound = errors.New("project not found")
)
