// Package styles provides colour themes and styling for CLI output.
package styles

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme defines the colour palette for highlighted output.
type Theme struct {
	// Primary is the main accent colour.
	Primary lipgloss.Color

	// Highlight marks the field under inspection.
	Highlight lipgloss.Color

	// Warning indicates caution.
	Warning lipgloss.Color
}

// DefaultTheme returns the default colour theme.
func DefaultTheme() *Theme {
	return &Theme{
		Primary:   lipgloss.Color("#7C3AED"), // Purple
		Highlight: lipgloss.Color("#06B6D4"), // Cyan
		Warning:   lipgloss.Color("#F9E2AF"), // Yellow
	}
}

// Styles contains pre-configured lipgloss styles.
type Styles struct {
	// Heading style for message separators.
	Heading lipgloss.Style

	// Target style for the verified field.
	Target lipgloss.Style

	// Warning style for the PHI banner.
	Warning lipgloss.Style
}

// NewStyles creates styles from a theme rendering to w.
// When force is true colours are emitted even if w is not a terminal.
func NewStyles(theme *Theme, w io.Writer, force bool) *Styles {
	if theme == nil {
		theme = DefaultTheme()
	}

	r := lipgloss.NewRenderer(w)
	if force {
		r.SetColorProfile(termenv.ANSI256)
	}

	return &Styles{
		Heading: r.NewStyle().
			Bold(true).
			Foreground(theme.Primary),

		Target: r.NewStyle().
			Bold(true).
			Foreground(theme.Highlight),

		Warning: r.NewStyle().
			Bold(true).
			Foreground(theme.Warning),
	}
}
