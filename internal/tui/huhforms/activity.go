package huhforms

import (
	"errors"
	"strings"

	"charm.land/huh/v2"

	"github.com/thenoetrevino/bulletin/internal/converters"
	"github.com/thenoetrevino/bulletin/internal/models"
	"github.com/thenoetrevino/bulletin/internal/services/activity"
)

// ActivityFormFields are the bindings the activity form writes into.
type ActivityFormFields struct {
	Headline    *string
	Content     *string
	DateAdded   *string
	Project     *string
	Active      *string
	Type        *string
	PCP         *string
	ContentURL  *string
	DocumentURL *string
	Confirm     *bool
}

// ActivityFormOptions carries the choices and dynamic hooks of the form.
type ActivityFormOptions struct {
	Editing  bool
	Types    []string
	Projects []*models.Project

	// Periods returns the comment periods for the current project. It is
	// re-evaluated whenever PeriodsVersion changes.
	Periods        func() []*models.CommentPeriod
	PeriodsVersion *uint64

	// PCPHidden hides the comment period group while the control is disabled.
	PCPHidden func() bool

	ContentLines int
}

// CreateActivityForm creates the huh form for adding or editing an activity.
func CreateActivityForm(fields ActivityFormFields, opts ActivityFormOptions) *huh.Form {
	lines := opts.ContentLines
	if lines <= 0 {
		lines = 5
	}

	details := huh.NewGroup(
		huh.NewInput().
			Key("headline").
			Title("Headline").
			Placeholder("Enter headline...").
			CharLimit(activity.MaxHeadlineLength).
			Validate(requireText("headline")).
			Value(fields.Headline),

		huh.NewInput().
			Key("dateAdded").
			Title("Date added").
			Description("YYYY-MM-DD").
			Validate(validatePickerDate).
			Value(fields.DateAdded),

		huh.NewSelect[string]().
			Key("type").
			Title("Type").
			Options(typeOptions(opts.Types, *fields.Type)...).
			Value(fields.Type),

		huh.NewSelect[string]().
			Key("project").
			Title("Project").
			Options(projectOptions(opts.Projects)...).
			Value(fields.Project),

		huh.NewSelect[string]().
			Key("active").
			Title("Active").
			Options(
				huh.NewOption("No", models.ActiveNo),
				huh.NewOption("Yes", models.ActiveYes),
			).
			Value(fields.Active),
	).Title(formTitle(opts.Editing))

	pcp := huh.NewGroup(
		huh.NewSelect[string]().
			Key("pcp").
			Title("Public comment period").
			OptionsFunc(func() []huh.Option[string] {
				var periods []*models.CommentPeriod
				if opts.Periods != nil {
					periods = opts.Periods()
				}
				return periodOptions(periods)
			}, opts.PeriodsVersion).
			Value(fields.PCP),
	).WithHideFunc(func() bool {
		return opts.PCPHidden != nil && opts.PCPHidden()
	})

	content := huh.NewGroup(
		huh.NewText().
			Key("content").
			Title("Content").
			Description("Markdown").
			Placeholder("Enter content...").
			CharLimit(10000).
			Lines(lines).
			Value(fields.Content),

		huh.NewInput().
			Key("contentUrl").
			Title("Content URL").
			Placeholder("https://...").
			Value(fields.ContentURL),

		huh.NewInput().
			Key("documentUrl").
			Title("Document URL").
			Placeholder("https://...").
			Value(fields.DocumentURL),
	)

	confirm := huh.NewGroup(
		huh.NewConfirm().
			Key("confirm").
			Title(confirmTitle(opts.Editing)).
			Affirmative("Save").
			Negative("Discard").
			Value(fields.Confirm),
	)

	form := huh.NewForm(details, pcp, content, confirm)
	return form.WithKeyMap(CreateKeyMap()).WithShowHelp(false)
}

func formTitle(editing bool) string {
	if editing {
		return "Edit activity"
	}
	return "Add activity"
}

func confirmTitle(editing bool) string {
	if editing {
		return "Save changes to this activity?"
	}
	return "Create this activity?"
}

// typeOptions lists the configured types, keeping a stored type that is no
// longer configured so editing does not silently rewrite it.
func typeOptions(types []string, current string) []huh.Option[string] {
	options := []huh.Option[string]{huh.NewOption("(none)", "")}
	seen := false
	for _, t := range types {
		options = append(options, huh.NewOption(t, t))
		if t == current {
			seen = true
		}
	}
	if current != "" && !seen {
		options = append(options, huh.NewOption(current, current))
	}
	return options
}

func projectOptions(projects []*models.Project) []huh.Option[string] {
	options := []huh.Option[string]{huh.NewOption("(no project)", "")}
	for _, p := range projects {
		options = append(options, huh.NewOption(p.Name, p.ID))
	}
	return options
}

func periodOptions(periods []*models.CommentPeriod) []huh.Option[string] {
	options := []huh.Option[string]{huh.NewOption("(select a comment period)", "")}
	for _, p := range periods {
		options = append(options, huh.NewOption(p.Label(), p.ID))
	}
	return options
}

func requireText(name string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return errors.New(name + " is required")
		}
		return nil
	}
}

func validatePickerDate(s string) error {
	if _, err := converters.ParsePickerDate(s); err != nil {
		return errors.New("enter a date as YYYY-MM-DD")
	}
	return nil
}
