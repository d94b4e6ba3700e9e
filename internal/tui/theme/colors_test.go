package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/thenoetrevino/bulletin/internal/config"
)

func TestInit_AppliesScheme(t *testing.T) {
	t.Cleanup(func() { Init(config.DefaultColorScheme()) })

	mono := config.MonochromeColorScheme()
	Init(mono)

	assert.Equal(t, mono.Accent, Accent)
	assert.Equal(t, mono.ErrorBg, ErrorBg)
	assert.Equal(t, mono.Edit, Edit)
}

func TestDefaultsLoadedAtStartup(t *testing.T) {
	assert.NotEmpty(t, Accent)
	assert.NotEmpty(t, InfoFg)
}
