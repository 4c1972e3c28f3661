package services

import (
	"github.com/custodia-labs/hl7inspect/internal/core/domain"
	"github.com/custodia-labs/hl7inspect/internal/core/ports/driven"
	"github.com/custodia-labs/hl7inspect/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keyColor   = "color"
	keyWarnPHI = "warn_phi"
	keyVerbose = "verbose"
)

// SettingsService resolves user preferences from a config store.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{
		configStore: configStore,
	}
}

// Get returns the effective settings. Unknown or mistyped values fall back to defaults.
func (s *SettingsService) Get() domain.Settings {
	defaults := domain.DefaultSettings()
	if s.configStore == nil {
		return defaults
	}

	return domain.Settings{
		Color:   s.getColorMode(defaults.Color),
		WarnPHI: s.getBool(keyWarnPHI, defaults.WarnPHI),
		Verbose: s.getBool(keyVerbose, defaults.Verbose),
	}
}

func (s *SettingsService) getBool(key string, defaultVal bool) bool {
	val, exists := s.configStore.Get(key)
	if !exists {
		return defaultVal
	}
	if _, ok := val.(bool); !ok {
		return defaultVal
	}
	return s.configStore.GetBool(key)
}

func (s *SettingsService) getColorMode(defaultVal domain.ColorMode) domain.ColorMode {
	val := s.configStore.GetString(keyColor)
	if val == "" {
		return defaultVal
	}
	mode := domain.ColorMode(val)
	if !mode.IsValid() {
		return defaultVal
	}
	return mode
}
