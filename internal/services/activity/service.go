package activity

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"github.com/google/uuid"
	"github.com/thenoetrevino/bulletin/internal/database"
	"github.com/thenoetrevino/bulletin/internal/models"
)

// MaxHeadlineLength bounds the headline shown in listings
const MaxHeadlineLength = 200

// Service defines all recent-activity business operations
type Service interface {
	// Read operations
	GetByID(ctx context.Context, id string) (*models.Activity, error)
	List(ctx context.Context, opts ListOptions) ([]*models.Activity, error)

	// Write operations
	Add(ctx context.Context, a *models.Activity) (*models.Activity, error)
	Update(ctx context.Context, a *models.Activity) error
}

// ListOptions filters activity listings
type ListOptions struct {
	ProjectID  string
	ActiveOnly bool
	Limit      int
}

type repository interface {
	Create(ctx context.Context, a *models.Activity) error
	Update(ctx context.Context, a *models.Activity) error
	GetByID(ctx context.Context, id string) (*models.Activity, error)
	List(ctx context.Context, opts database.ListActivitiesOptions) ([]*models.Activity, error)
}

// projectRepository is needed to check the linked project exists
type projectRepository interface {
	GetByID(ctx context.Context, id string) (*models.Project, error)
}

// periodRepository is needed to check the linked comment period belongs to the project
type periodRepository interface {
	GetByID(ctx context.Context, id string) (*models.CommentPeriod, error)
}

type service struct {
	repo        repository
	projectRepo projectRepository
	periodRepo  periodRepository
	logger      *slog.Logger
}

// NewService creates a new activity service. A nil logger uses slog.Default.
func NewService(repo repository, projectRepo projectRepository, periodRepo periodRepository, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &service{
		repo:        repo,
		projectRepo: projectRepo,
		periodRepo:  periodRepo,
		logger:      logger,
	}
}

// GetByID retrieves an activity
func (s *service) GetByID(ctx context.Context, id string) (*models.Activity, error) {
	if id == "" {
		return nil, ErrInvalidActivityID
	}
	a, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, models.ErrNotFound) {
		return nil, ErrActivityNotFound
	}
	return a, err
}

// List returns activities, pinned first then newest first
func (s *service) List(ctx context.Context, opts ListOptions) ([]*models.Activity, error) {
	return s.repo.List(ctx, database.ListActivitiesOptions{
		ProjectID:  opts.ProjectID,
		ActiveOnly: opts.ActiveOnly,
		Limit:      opts.Limit,
	})
}

// Add validates and stores a new activity, assigning its ID
func (s *service) Add(ctx context.Context, a *models.Activity) (*models.Activity, error) {
	if a.ID != "" {
		return nil, ErrAlreadyPersisted
	}
	if err := s.validate(ctx, a); err != nil {
		return nil, err
	}

	stored := *a
	stored.ID = uuid.NewString()
	if err := s.repo.Create(ctx, &stored); err != nil {
		return nil, fmt.Errorf("failed to add activity: %w", err)
	}

	s.logger.Info("activity added", "id", stored.ID, "type", stored.Type, "project", stored.ProjectID)
	return s.repo.GetByID(ctx, stored.ID)
}

// Update validates and overwrites an existing activity
func (s *service) Update(ctx context.Context, a *models.Activity) error {
	if a.ID == "" {
		return ErrInvalidActivityID
	}
	if err := s.validate(ctx, a); err != nil {
		return err
	}

	if err := s.repo.Update(ctx, a); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return ErrActivityNotFound
		}
		return fmt.Errorf("failed to update activity: %w", err)
	}

	s.logger.Info("activity updated", "id", a.ID, "type", a.Type, "project", a.ProjectID)
	return nil
}

func (s *service) validate(ctx context.Context, a *models.Activity) error {
	headline := strings.TrimSpace(a.Headline)
	if headline == "" {
		return invalid("headline", "cannot be empty")
	}
	if len(headline) > MaxHeadlineLength {
		return invalid("headline", fmt.Sprintf("cannot exceed %d characters", MaxHeadlineLength))
	}
	if a.DateAdded.IsZero() {
		return invalid("dateAdded", "is required")
	}
	if err := checkURL("contentUrl", a.ContentURL); err != nil {
		return err
	}
	if err := checkURL("documentUrl", a.DocumentURL); err != nil {
		return err
	}

	if a.ProjectID != "" {
		if _, err := s.projectRepo.GetByID(ctx, a.ProjectID); err != nil {
			if errors.Is(err, models.ErrNotFound) {
				return invalid("project", "does not exist")
			}
			return fmt.Errorf("failed to check project: %w", err)
		}
	}

	if a.PCP == "" {
		return nil
	}
	if !a.IsPublicCommentPeriod() {
		return invalid("pcp", "only allowed on "+models.TypePublicCommentPeriod+" activities")
	}
	period, err := s.periodRepo.GetByID(ctx, a.PCP)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return invalid("pcp", "does not exist")
		}
		return fmt.Errorf("failed to check comment period: %w", err)
	}
	if period.ProjectID != a.ProjectID {
		return invalid("pcp", "belongs to a different project")
	}
	return nil
}

// checkURL accepts empty values and absolute http(s) URLs
func checkURL(field, raw string) error {
	if raw == "" {
		return nil
	}
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return invalid(field, "must be an absolute http or https URL")
	}
	return nil
}
