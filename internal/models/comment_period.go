package models

import (
	"fmt"
	"time"
)

// CommentPeriod is a public comment period scoped to a single project
type CommentPeriod struct {
	ID        string
	ProjectID string
	Name      string
	StartDate time.Time
	EndDate   time.Time
}

// Label returns the text shown when picking a comment period
func (p *CommentPeriod) Label() string {
	if p.StartDate.IsZero() || p.EndDate.IsZero() {
		return p.Name
	}
	return fmt.Sprintf("%s (%s to %s)", p.Name,
		p.StartDate.Format("2006-01-02"), p.EndDate.Format("2006-01-02"))
}
