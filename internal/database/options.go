package database

// ProjectSortField names a column projects may be ordered by
type ProjectSortField string

const (
	SortByName      ProjectSortField = "name"
	SortByCreatedAt ProjectSortField = "created_at"
)

// ListProjectsOptions controls paging and ordering of project listings
type ListProjectsOptions struct {
	Limit      int
	Offset     int
	SortBy     ProjectSortField
	Descending bool
}

// ListActivitiesOptions filters activity listings. Zero values mean no filter.
type ListActivitiesOptions struct {
	ProjectID  string
	ActiveOnly bool
	Limit      int
}
