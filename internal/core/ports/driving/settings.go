package driving

import "github.com/custodia-labs/hl7inspect/internal/core/domain"

// SettingsService exposes user preferences.
type SettingsService interface {
	// Get returns the effective settings, falling back to defaults.
	Get() domain.Settings
}
