package commentperiod

import "errors"

// Domain errors for comment period service
var (
	ErrInvalidProjectID = errors.New("invalid project ID")
	ErrEmptyName        = errors.New("comment period name cannot be empty")
	ErrInvalidDates     = errors.New("comment period cannot end before it starts")
	ErrPeriodNotFound   = errors.New("comment period not found")
)
