package activityform

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/thenoetrevino/bulletin/internal/tui/components"
	"github.com/thenoetrevino/bulletin/internal/tui/notifications"
)

const (
	maxFormWidth = 80
	// side by side preview needs at least this much room
	wideLayoutWidth = 140
)

func (s *Screen) formWidth() int {
	w := s.width - 8
	if s.width >= wideLayoutWidth {
		w = s.width/2 - 8
	}
	return max(20, min(w, maxFormWidth))
}

// View renders the header, notifications, the form with its content preview
// and the key help line.
func (s *Screen) View() string {
	title := "Add activity"
	box := components.CreateFormBoxStyle
	if s.isEditing {
		title = "Edit activity"
		box = components.EditFormBoxStyle
	}

	sections := []string{components.TitleStyle.Render(title)}

	if banners := notifications.RenderStack(s.notifications); banners != "" {
		sections = append(sections, banners)
	}

	switch {
	case s.loading:
		sections = append(sections, components.SubtleStyle.Render("Loading projects..."))
	case s.huhForm == nil:
		sections = append(sections, components.SubtleStyle.Render("Projects are unavailable."))
	default:
		sections = append(sections, s.renderBody(box))
	}

	var status []string
	if s.periodsLoading && s.TypeIsPCP() {
		status = append(status, "Loading comment periods...")
	}
	if s.saving {
		status = append(status, "Saving...")
	}

	retryable := s.loadErr != nil || s.periodsErr != nil
	sections = append(sections, components.RenderStatusBar(components.StatusBarProps{
		Status: status,
		Keys:   s.keys.shortHelp(retryable, s.notifications.HasAny()),
		Width:  s.width,
	}))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (s *Screen) renderBody(box lipgloss.Style) string {
	form := box.Render(s.huhForm.View())

	content := s.form.Content.Value()
	if strings.TrimSpace(content) == "" {
		return form
	}

	preview := components.PreviewBoxStyle.Render(components.RenderContent(components.ContentProps{
		Content: content,
		Width:   s.formWidth(),
	}))

	if s.width >= wideLayoutWidth {
		return lipgloss.JoinHorizontal(lipgloss.Top, form, " ", preview)
	}
	return lipgloss.JoinVertical(lipgloss.Left, form, preview)
}
