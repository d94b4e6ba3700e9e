package notifications

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/thenoetrevino/bulletin/internal/tui/state"
)

func TestSeverityOf(t *testing.T) {
	assert.Equal(t, Info, SeverityOf(state.LevelInfo))
	assert.Equal(t, Warning, SeverityOf(state.LevelWarning))
	assert.Equal(t, Error, SeverityOf(state.LevelError))
}

func TestRenderStack(t *testing.T) {
	assert.Equal(t, "", RenderStack(nil))

	ns := state.NewNotificationState()
	assert.Equal(t, "", RenderStack(ns))

	ns.Add(state.LevelError, "could not load projects")
	ns.Add(state.LevelInfo, "saved")
	out := RenderStack(ns)

	assert.True(t, strings.Contains(out, "could not load projects"))
	assert.True(t, strings.Contains(out, "saved"))
	assert.Less(t, strings.Index(out, "could not load"), strings.Index(out, "saved"))
}

func TestRender_HeaderNamesSeverity(t *testing.T) {
	out := Render(Error, "Could not save activity")

	assert.Contains(t, out, "Error")
	assert.Contains(t, out, "Could not save activity")
}
