package models

import "time"

// Activity is a recent-activity record shown on the public site.
// ID is empty until the record has been persisted.
type Activity struct {
	ID          string    `json:"id"`
	Headline    string    `json:"headline"`
	Content     string    `json:"content"` // rich text (markdown)
	DateAdded   time.Time `json:"dateAdded"`
	ProjectID   string    `json:"project,omitempty"`
	Active      bool      `json:"active"`
	Pinned      bool      `json:"pinned"`
	Type        string    `json:"type,omitempty"`
	PCP         string    `json:"pcp,omitempty"` // comment period ID, only with TypePublicCommentPeriod
	ContentURL  string    `json:"contentUrl,omitempty"`
	DocumentURL string    `json:"documentUrl,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// IsPublicCommentPeriod reports whether the activity announces a comment period
func (a *Activity) IsPublicCommentPeriod() bool {
	return a.Type == TypePublicCommentPeriod
}
