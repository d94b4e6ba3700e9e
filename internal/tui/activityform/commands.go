package activityform

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/thenoetrevino/bulletin/internal/models"
)

// Timeout constant for service calls
const timeoutDB = 30 * time.Second

// Result messages carry the id of the screen that issued them. The shell
// hands every message to whichever screen is current, so a screen drops
// results addressed to another one.

type projectsLoadedMsg struct {
	screen   uint64
	projects []*models.Project
	err      error
}

// periodsLoadedMsg carries the sequence number of the request it answers.
type periodsLoadedMsg struct {
	screen    uint64
	seq       uint64
	projectID string
	keep      string
	periods   []*models.CommentPeriod
	err       error
}

type savedMsg struct {
	screen   uint64
	activity *models.Activity
	err      error
}

func (s *Screen) loadProjects() tea.Cmd {
	s.loading = true
	id := s.id
	ctx := s.ctx
	lister := s.deps.Projects
	pageSize := s.pageSize

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(ctx, timeoutDB)
		defer cancel()

		projects, err := lister.GetAll(ctx, 1, pageSize, models.DefaultProjectSort)
		return projectsLoadedMsg{screen: id, projects: projects, err: err}
	}
}

// loadPeriodsForProject fetches the comment periods of projectID. It cancels
// the previous period request and tags this one so that only its response is
// applied. keep is the pcp value to retain when it is part of the new list.
func (s *Screen) loadPeriodsForProject(projectID, keep string) tea.Cmd {
	if s.cancelPeriods != nil {
		s.cancelPeriods()
	}
	ctx, cancel := context.WithTimeout(s.ctx, timeoutDB)
	s.cancelPeriods = cancel
	s.periodSeq++
	s.periodsLoading = true
	s.periodsErr = nil

	id := s.id
	seq := s.periodSeq
	lister := s.deps.Periods

	return func() tea.Msg {
		periods, err := lister.GetAllByProjectID(ctx, projectID)
		return periodsLoadedMsg{
			screen:    id,
			seq:       seq,
			projectID: projectID,
			keep:      keep,
			periods:   periods,
			err:       err,
		}
	}
}

func (s *Screen) saveActivity(record *models.Activity) tea.Cmd {
	id := s.id
	ctx := s.ctx
	saver := s.deps.Activities

	if s.isEditing {
		return func() tea.Msg {
			ctx, cancel := context.WithTimeout(ctx, timeoutDB)
			defer cancel()
			return savedMsg{screen: id, activity: record, err: saver.Update(ctx, record)}
		}
	}
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(ctx, timeoutDB)
		defer cancel()
		saved, err := saver.Add(ctx, record)
		return savedMsg{screen: id, activity: saved, err: err}
	}
}
