package state

import (
	"time"

	"github.com/thenoetrevino/bulletin/internal/converters"
	"github.com/thenoetrevino/bulletin/internal/models"
)

// Field is a single form control: a value plus an enabled flag.
type Field struct {
	value    string
	disabled bool
}

// NewField creates an enabled field holding value.
func NewField(value string) Field {
	return Field{value: value}
}

// Value returns the current value. Disabled fields still report their value;
// use Effective when building records.
func (f *Field) Value() string {
	return f.value
}

// Effective returns the value, or "" when the field is disabled.
func (f *Field) Effective() string {
	if f.disabled {
		return ""
	}
	return f.value
}

// SetValue replaces the value without touching the enabled flag.
func (f *Field) SetValue(v string) {
	f.value = v
}

// Ptr exposes the value for binding to a huh field.
func (f *Field) Ptr() *string {
	return &f.value
}

func (f *Field) Disabled() bool {
	return f.disabled
}

func (f *Field) Enable() {
	f.disabled = false
}

func (f *Field) Disable() {
	f.disabled = true
}

// Reset sets the value and the enabled flag in one step.
func (f *Field) Reset(value string, disabled bool) {
	f.value = value
	f.disabled = disabled
}

// ActivityForm holds every control of the add/edit activity screen.
// Each field is independent; derived flags are computed from it on read.
type ActivityForm struct {
	Headline    Field
	Content     Field
	DateAdded   Field // picker text, YYYY-MM-DD
	Project     Field
	Active      Field // "yes" or "no"
	Type        Field
	PCP         Field
	ContentURL  Field
	DocumentURL Field
}

// EmptyForm builds the create-mode form. The pcp control starts disabled
// and is enabled once the type is set to a public comment period.
func EmptyForm(now time.Time) *ActivityForm {
	f := &ActivityForm{
		Headline:    NewField(""),
		Content:     NewField(""),
		DateAdded:   NewField(converters.FormatPickerText(now)),
		Project:     NewField(""),
		Active:      NewField(models.ActiveNo),
		Type:        NewField(""),
		ContentURL:  NewField(""),
		DocumentURL: NewField(""),
	}
	f.PCP.Reset("", true)
	return f
}

// FormFromActivity builds the edit-mode form from a stored record.
// pcp is constructed disabled with an empty value; the screen reconciles it
// against the record type before the first render.
func FormFromActivity(a *models.Activity) *ActivityForm {
	f := &ActivityForm{
		Headline:    NewField(a.Headline),
		Content:     NewField(a.Content),
		DateAdded:   NewField(converters.FormatPickerText(a.DateAdded)),
		Project:     NewField(a.ProjectID),
		Active:      NewField(models.ActiveToString(a.Active)),
		Type:        NewField(a.Type),
		ContentURL:  NewField(a.ContentURL),
		DocumentURL: NewField(a.DocumentURL),
	}
	f.PCP.Reset("", true)
	return f
}

// TypeIsPCP reports whether the type control selects a public comment period.
func (f *ActivityForm) TypeIsPCP() bool {
	return f.Type.Value() == models.TypePublicCommentPeriod
}

// ProjectIsSelected reports whether the project control holds an id.
func (f *ActivityForm) ProjectIsSelected() bool {
	return f.Project.Value() != ""
}
