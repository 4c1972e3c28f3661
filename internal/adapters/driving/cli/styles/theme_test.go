package styles

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTheme(t *testing.T) {
	theme := DefaultTheme()
	require.NotNil(t, theme)

	assert.NotEmpty(t, theme.Primary)
	assert.NotEmpty(t, theme.Highlight)
	assert.NotEmpty(t, theme.Warning)
}

func TestNewStyles_NilTheme(t *testing.T) {
	s := NewStyles(nil, new(bytes.Buffer), false)

	require.NotNil(t, s)
	assert.Equal(t, "PHI", s.Warning.Render("PHI"), "no colour without a terminal")
}

func TestNewStyles_CustomTheme(t *testing.T) {
	theme := &Theme{Primary: "#000000", Highlight: "#FF0000", Warning: "#FFFF00"}

	s := NewStyles(theme, new(bytes.Buffer), true)

	assert.Equal(t, lipgloss.Color("#FF0000"), s.Target.GetForeground())
	assert.Equal(t, lipgloss.Color("#000000"), s.Heading.GetForeground())
}

func TestNewStyles_ForcedColour(t *testing.T) {
	s := NewStyles(nil, new(bytes.Buffer), true)

	out := s.Target.Render("Field 3: X <<<")
	assert.Contains(t, out, "Field 3: X <<<")
	assert.Contains(t, out, "\x1b[")
}
