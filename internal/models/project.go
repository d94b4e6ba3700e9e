package models

import "time"

// Project is the reference entity an activity may be linked to
type Project struct {
	ID          string
	Name        string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
