package commentperiod

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/thenoetrevino/bulletin/internal/models"
)

// Service defines comment period operations
type Service interface {
	GetAllByProjectID(ctx context.Context, projectID string) ([]*models.CommentPeriod, error)
	GetByID(ctx context.Context, id string) (*models.CommentPeriod, error)
	Create(ctx context.Context, req CreatePeriodRequest) (*models.CommentPeriod, error)
}

// CreatePeriodRequest encapsulates data for creating a comment period
type CreatePeriodRequest struct {
	ProjectID string
	Name      string
	StartDate time.Time
	EndDate   time.Time
}

type repository interface {
	Create(ctx context.Context, p *models.CommentPeriod) error
	GetByID(ctx context.Context, id string) (*models.CommentPeriod, error)
	GetByProject(ctx context.Context, projectID string) ([]*models.CommentPeriod, error)
}

type service struct {
	repo repository
}

// NewService creates a new comment period service
func NewService(repo repository) Service {
	return &service{repo: repo}
}

// GetAllByProjectID returns every comment period of a project
func (s *service) GetAllByProjectID(ctx context.Context, projectID string) ([]*models.CommentPeriod, error) {
	if projectID == "" {
		return nil, ErrInvalidProjectID
	}
	return s.repo.GetByProject(ctx, projectID)
}

// GetByID retrieves a single comment period
func (s *service) GetByID(ctx context.Context, id string) (*models.CommentPeriod, error) {
	p, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, models.ErrNotFound) {
		return nil, ErrPeriodNotFound
	}
	return p, err
}

// Create validates and stores a comment period
func (s *service) Create(ctx context.Context, req CreatePeriodRequest) (*models.CommentPeriod, error) {
	if req.ProjectID == "" {
		return nil, ErrInvalidProjectID
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if !req.StartDate.IsZero() && !req.EndDate.IsZero() && req.EndDate.Before(req.StartDate) {
		return nil, ErrInvalidDates
	}

	p := &models.CommentPeriod{
		ID:        uuid.NewString(),
		ProjectID: req.ProjectID,
		Name:      name,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, fmt.Errorf("failed to create comment period: %w", err)
	}
	return p, nil
}
