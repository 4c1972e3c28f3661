package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColorMode_IsValid(t *testing.T) {
	tests := []struct {
		mode  ColorMode
		valid bool
	}{
		{ColorAuto, true},
		{ColorAlways, true},
		{ColorNever, true},
		{ColorMode("sometimes"), false},
		{ColorMode(""), false},
	}

	for _, tt := range tests {
		t.Run(string(tt.mode), func(t *testing.T) {
			assert.Equal(t, tt.valid, tt.mode.IsValid())
		})
	}
}

func TestColorMode_Description(t *testing.T) {
	assert.Equal(t, "Auto (highlight on terminals)", ColorAuto.Description())
	assert.Equal(t, "Plain text", ColorNever.Description())
	assert.Equal(t, "Unknown", ColorMode("bogus").Description())
}

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()
	assert.Equal(t, ColorAuto, s.Color)
	assert.True(t, s.WarnPHI)
	assert.False(t, s.Verbose)
}
