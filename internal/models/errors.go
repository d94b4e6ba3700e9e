package models

import "errors"

// Domain-wide errors shared by repositories and services
var (
	// ErrNotFound indicates the requested row does not exist
	ErrNotFound = errors.New("not found")
)
