package app

import (
	"log/slog"

	"github.com/thenoetrevino/bulletin/internal/database"
	activityservice "github.com/thenoetrevino/bulletin/internal/services/activity"
	periodservice "github.com/thenoetrevino/bulletin/internal/services/commentperiod"
	projectservice "github.com/thenoetrevino/bulletin/internal/services/project"
)

// App holds all application services and provides dependency injection.
type App struct {
	repo   *database.Repository
	logger *slog.Logger

	ProjectService  projectservice.Service
	PeriodService   periodservice.Service
	ActivityService activityservice.Service
}

// Option configures an App before its services are built.
type Option func(*App)

// WithLogger routes service logs to logger instead of slog.Default.
func WithLogger(logger *slog.Logger) Option {
	return func(a *App) {
		a.logger = logger
	}
}

// New creates a new App with all services initialized.
func New(repo *database.Repository, opts ...Option) *App {
	a := &App{repo: repo}
	for _, opt := range opts {
		opt(a)
	}
	if a.logger == nil {
		a.logger = slog.Default()
	}

	a.ProjectService = projectservice.NewService(repo.Projects)
	a.PeriodService = periodservice.NewService(repo.CommentPeriods)
	a.ActivityService = activityservice.NewService(repo.Activities, repo.Projects, repo.CommentPeriods, a.logger)
	return a
}

func (a *App) Logger() *slog.Logger {
	return a.logger
}

// Repo returns the underlying repository for direct database access.
func (a *App) Repo() *database.Repository {
	return a.repo
}
