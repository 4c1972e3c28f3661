package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/hl7inspect/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/hl7inspect/internal/core/domain"
)

func TestNewSettingsService(t *testing.T) {
	store := memory.NewConfigStore()
	service := NewSettingsService(store)

	require.NotNil(t, service)
}

func TestSettingsService_Get_ReturnsDefaults(t *testing.T) {
	service := NewSettingsService(memory.NewConfigStore())

	assert.Equal(t, domain.DefaultSettings(), service.Get())
}

func TestSettingsService_Get_NilStore(t *testing.T) {
	service := NewSettingsService(nil)

	assert.Equal(t, domain.DefaultSettings(), service.Get())
}

func TestSettingsService_Get_ReturnsStoredValues(t *testing.T) {
	store := memory.NewConfigStore()
	_ = store.Set("color", "never")
	_ = store.Set("warn_phi", false)
	_ = store.Set("verbose", true)

	settings := NewSettingsService(store).Get()

	assert.Equal(t, domain.ColorNever, settings.Color)
	assert.False(t, settings.WarnPHI)
	assert.True(t, settings.Verbose)
}

func TestSettingsService_Get_InvalidValuesReturnDefaults(t *testing.T) {
	store := memory.NewConfigStore()
	_ = store.Set("color", "rainbow")
	_ = store.Set("warn_phi", "no")

	settings := NewSettingsService(store).Get()

	defaults := domain.DefaultSettings()
	assert.Equal(t, defaults.Color, settings.Color)
	assert.Equal(t, defaults.WarnPHI, settings.WarnPHI)
}
