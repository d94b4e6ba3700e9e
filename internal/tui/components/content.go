package components

import (
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
)

type ContentProps struct {
	Content string
	Width   int
}

// Cache Glamour renderers by width to avoid expensive re-creation
var rendererCache sync.Map // map[int]*glamour.TermRenderer

func getRenderer(width int) (*glamour.TermRenderer, error) {
	if cached, ok := rendererCache.Load(width); ok {
		return cached.(*glamour.TermRenderer), nil
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}

	rendererCache.Store(width, renderer)
	return renderer, nil
}

// RenderContent renders activity content as markdown. Rendering failures
// fall back to the raw text.
func RenderContent(props ContentProps) string {
	if strings.TrimSpace(props.Content) == "" {
		return SubtleStyle.Italic(true).Render("No content")
	}

	width := props.Width
	if width <= 0 {
		width = 80
	}

	renderer, err := getRenderer(width)
	if err != nil {
		return props.Content
	}
	rendered, err := renderer.Render(props.Content)
	if err != nil {
		return props.Content
	}
	return strings.TrimSpace(rendered)
}
