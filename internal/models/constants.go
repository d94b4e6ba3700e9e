package models

// ============================================================================
// ACTIVITY TYPE CONSTANTS
// ============================================================================

// TypePublicCommentPeriod is the activity type that activates the comment
// period reference on an activity. Any other type leaves PCP empty.
const TypePublicCommentPeriod = "Public Comment Period"

// DefaultActivityTypes lists the activity types offered when the config
// does not provide its own list.
var DefaultActivityTypes = []string{
	"News",
	"Project Update",
	TypePublicCommentPeriod,
	"Decision",
}

// ============================================================================
// ACTIVE FLAG CONSTANTS
// ============================================================================

// The active flag is edited as a two-valued string.
const (
	ActiveYes = "yes"
	ActiveNo  = "no"
)

// ActiveFromString converts the form representation of the active flag.
// Anything other than "yes" is false.
func ActiveFromString(v string) bool {
	return v == ActiveYes
}

// ActiveToString converts the active flag to its form representation.
func ActiveToString(active bool) string {
	if active {
		return ActiveYes
	}
	return ActiveNo
}

// ============================================================================
// PAGING DEFAULTS
// ============================================================================

// DefaultProjectPageSize is large enough to fetch every project in one page.
const DefaultProjectPageSize = 1000

// DefaultProjectSort orders projects by name, ascending.
const DefaultProjectSort = "+name"
