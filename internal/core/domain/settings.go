package domain

const unknownDescription = "Unknown"

// ColorMode controls terminal highlighting of view output.
type ColorMode string

// Available colour modes.
const (
	// ColorAuto highlights only when stdout is a terminal.
	ColorAuto ColorMode = "auto"

	// ColorAlways highlights regardless of the output target.
	ColorAlways ColorMode = "always"

	// ColorNever disables highlighting.
	ColorNever ColorMode = "never"
)

// IsValid returns true if the colour mode is recognised.
func (m ColorMode) IsValid() bool {
	switch m {
	case ColorAuto, ColorAlways, ColorNever:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (m ColorMode) String() string {
	return string(m)
}

// Description returns a human-readable description of the mode.
func (m ColorMode) Description() string {
	switch m {
	case ColorAuto:
		return "Auto (highlight on terminals)"
	case ColorAlways:
		return "Always highlight"
	case ColorNever:
		return "Plain text"
	default:
		return unknownDescription
	}
}

// Settings holds user preferences loaded from the config file.
type Settings struct {
	// Color selects when output is highlighted.
	Color ColorMode

	// WarnPHI prints a warning before views that show literal field content.
	WarnPHI bool

	// Verbose enables debug logging on stderr.
	Verbose bool
}

// DefaultSettings returns the settings used when no config file exists.
func DefaultSettings() Settings {
	return Settings{
		Color:   ColorAuto,
		WarnPHI: true,
		Verbose: false,
	}
}
