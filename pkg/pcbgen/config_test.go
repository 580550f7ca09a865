package pcbgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigValidates(t *testing.T) {
	cfg := DefaultConfig()
	assert.NoError(t, cfg.Validate())
	assert.Equal(t, "eurorack", cfg.Preset)
	assert.Equal(t, 5, cfg.RefinementBudget)
}

func TestConfigValidateRejectsUnknownPreset(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Preset = "breadboard"
	assert.Error(t, cfg.Validate())
}

func TestConfigValidateRequiresCustomDimensions(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Preset = "custom"
	assert.Error(t, cfg.Validate())

	cfg.CustomWidthMM = 100
	cfg.CustomHeightMM = 80
	assert.NoError(t, cfg.Validate())
}

func TestConfigValidateRejectsNegativeRefinementBudget(t *testing.T) {
	cfg := DefaultConfig()
	cfg.RefinementBudget = -1
	assert.Error(t, cfg.Validate())
}

func TestLoadConfigFromBytesOverridesOnlySpecifiedFields(t *testing.T) {
	cfg, err := LoadConfigFromBytes([]byte("preset: pedal\nrefinement_budget: 2\n"))
	require.NoError(t, err)
	assert.Equal(t, "pedal", cfg.Preset)
	assert.Equal(t, 2, cfg.RefinementBudget)
	assert.Equal(t, DefaultConfig().Placement, cfg.Placement)
}

func TestLoadConfigFromBytesRejectsInvalidConfig(t *testing.T) {
	_, err := LoadConfigFromBytes([]byte("preset: breadboard\n"))
	assert.Error(t, err)
}

func TestHashIsStableForEqualConfigs(t *testing.T) {
	a := DefaultConfig()
	b := DefaultConfig()
	assert.Equal(t, a.Hash(), b.Hash())

	b.RefinementBudget = 9
	assert.NotEqual(t, a.Hash(), b.Hash())
}
