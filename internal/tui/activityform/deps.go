package activityform

import (
	"context"
	"log/slog"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/thenoetrevino/bulletin/internal/models"
)

// ProjectLister supplies the project reference list.
type ProjectLister interface {
	GetAll(ctx context.Context, page, pageSize int, sort string) ([]*models.Project, error)
}

// PeriodLister supplies the comment periods of one project.
type PeriodLister interface {
	GetAllByProjectID(ctx context.Context, projectID string) ([]*models.CommentPeriod, error)
}

// ActivitySaver persists the record built on submit.
type ActivitySaver interface {
	Add(ctx context.Context, a *models.Activity) (*models.Activity, error)
	Update(ctx context.Context, a *models.Activity) error
}

// Navigator leaves the screen.
type Navigator interface {
	GoTo(path string) tea.Cmd
}

// Deps are the collaborators of a Screen. Logger and Now are optional.
type Deps struct {
	Projects   ProjectLister
	Periods    PeriodLister
	Activities ActivitySaver
	Navigator  Navigator
	Logger     *slog.Logger
	Now        func() time.Time
}

// RouteData is the payload the screen is opened with. A nil Activity opens
// the screen in create mode.
type RouteData struct {
	Activity *models.Activity
}

func (r RouteData) IsEmpty() bool {
	return r.Activity == nil
}
