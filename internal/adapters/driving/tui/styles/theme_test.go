package styles

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTheme(t *testing.T) {
	theme := DefaultTheme()

	require.NotNil(t, theme)
	assert.Equal(t, lipgloss.Color("#7C3AED"), theme.Primary)
	assert.Equal(t, lipgloss.Color("#A6E3A1"), theme.Success)
	assert.Equal(t, lipgloss.Color("#F38BA8"), theme.Error)
}

func TestNewStyles_NilThemeUsesDefault(t *testing.T) {
	s := NewStyles(nil)

	require.NotNil(t, s)
	assert.Equal(t, DefaultTheme().Primary, s.theme.Primary)
}

func TestDefaultStyles(t *testing.T) {
	s := DefaultStyles()

	require.NotNil(t, s)
	assert.True(t, s.Title.GetBold())
	assert.True(t, s.Directory.GetBold())
	assert.False(t, s.File.GetBold())
}
