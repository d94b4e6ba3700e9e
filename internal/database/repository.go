package database

import (
	"database/sql"
)

// Repository provides a unified interface to all data operations.
// It composes domain-specific repositories.
type Repository struct {
	Projects       *ProjectRepo
	CommentPeriods *CommentPeriodRepo
	Activities     *ActivityRepo
}

// NewRepository creates a new Repository instance wrapping the given database connection.
func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		Projects:       &ProjectRepo{db: db},
		CommentPeriods: &CommentPeriodRepo{db: db},
		Activities:     &ActivityRepo{db: db},
	}
}
