package project

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/thenoetrevino/bulletin/internal/database"
	"github.com/thenoetrevino/bulletin/internal/models"
)

// Service defines all project-related business operations
type Service interface {
	// Read operations
	GetAll(ctx context.Context, page, pageSize int, sort string) ([]*models.Project, error)
	GetByID(ctx context.Context, id string) (*models.Project, error)

	// Write operations
	Create(ctx context.Context, req CreateProjectRequest) (*models.Project, error)
}

// CreateProjectRequest encapsulates data for creating a project
type CreateProjectRequest struct {
	Name        string
	Description string
}

// repository defines the data access methods needed by the project service
// This interface is private to the service layer
type repository interface {
	Create(ctx context.Context, p *models.Project) error
	GetByID(ctx context.Context, id string) (*models.Project, error)
	List(ctx context.Context, opts database.ListProjectsOptions) ([]*models.Project, error)
}

// service implements Service interface with private repository
type service struct {
	repo repository
}

// NewService creates a new project service with private repository
func NewService(repo repository) Service {
	return &service{repo: repo}
}

// GetAll returns one page of projects. Pages start at 1. The sort spec is a
// field name optionally prefixed with '+' (ascending) or '-' (descending).
func (s *service) GetAll(ctx context.Context, page, pageSize int, sort string) ([]*models.Project, error) {
	if page < 1 || pageSize < 1 {
		return nil, ErrInvalidPage
	}

	field, desc, err := ParseSort(sort)
	if err != nil {
		return nil, err
	}

	return s.repo.List(ctx, database.ListProjectsOptions{
		Limit:      pageSize,
		Offset:     (page - 1) * pageSize,
		SortBy:     field,
		Descending: desc,
	})
}

// GetByID retrieves a specific project
func (s *service) GetByID(ctx context.Context, id string) (*models.Project, error) {
	if id == "" {
		return nil, ErrInvalidProjectID
	}
	p, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, models.ErrNotFound) {
		return nil, ErrProjectNotFound
	}
	return p, err
}

// Create creates a new project with validation
func (s *service) Create(ctx context.Context, req CreateProjectRequest) (*models.Project, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if len(name) > 100 {
		return nil, ErrNameTooLong
	}

	p := &models.Project{
		ID:          uuid.NewString(),
		Name:        name,
		Description: req.Description,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}
	return s.repo.GetByID(ctx, p.ID)
}

// ParseSort reads a sort spec such as "+name" or "-created_at".
// An empty spec sorts by name ascending.
func ParseSort(spec string) (database.ProjectSortField, bool, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return database.SortByName, false, nil
	}

	desc := false
	switch spec[0] {
	case '+':
		spec = spec[1:]
	case '-':
		desc = true
		spec = spec[1:]
	}

	switch field := database.ProjectSortField(spec); field {
	case database.SortByName, database.SortByCreatedAt:
		return field, desc, nil
	default:
		return "", false, fmt.Errorf("%w: unknown field %q", ErrInvalidSort, spec)
	}
}
