// Package navigation defines the routes of the console and the message the
// shell uses to switch between screens.
package navigation

import (
	"errors"
	"strings"

	tea "charm.land/bubbletea/v2"
)

const (
	ListRoute = "/activity"
	AddRoute  = "/activity/add"
)

// ErrUnknownRoute is returned by Parse for paths no screen serves.
var ErrUnknownRoute = errors.New("unknown route")

// RouteKind identifies which screen a path opens.
type RouteKind int

const (
	RouteList RouteKind = iota
	RouteAdd
	RouteEdit
)

// Route is a parsed path. ID is set for RouteEdit only.
type Route struct {
	Kind RouteKind
	ID   string
}

// NavigateMsg asks the shell to open Path.
type NavigateMsg struct {
	Path string
}

// Navigator moves between screens.
type Navigator interface {
	GoTo(path string) tea.Cmd
}

// Router is the Navigator used by the running program.
type Router struct{}

// GoTo returns a command emitting NavigateMsg for path.
func (Router) GoTo(path string) tea.Cmd {
	return GoTo(path)
}

func GoTo(path string) tea.Cmd {
	return func() tea.Msg {
		return NavigateMsg{Path: path}
	}
}

// EditRoute returns the edit path for an activity id.
func EditRoute(id string) string {
	return ListRoute + "/" + id + "/edit"
}

// Parse resolves a path to a route. Trailing slashes are ignored.
func Parse(path string) (Route, error) {
	path = strings.TrimRight(path, "/")
	switch path {
	case ListRoute, "":
		return Route{Kind: RouteList}, nil
	case AddRoute:
		return Route{Kind: RouteAdd}, nil
	}

	rest, ok := strings.CutPrefix(path, ListRoute+"/")
	if !ok {
		return Route{}, ErrUnknownRoute
	}
	id, ok := strings.CutSuffix(rest, "/edit")
	if !ok || id == "" || strings.Contains(id, "/") {
		return Route{}, ErrUnknownRoute
	}
	return Route{Kind: RouteEdit, ID: id}, nil
}
