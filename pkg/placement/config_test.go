package placement

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfigValidates(t *testing.T) {
	assert.NoError(t, DefaultConfig().Validate())
}

func TestConfigValidateRejectsBadMargin(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MarginPercentage = 0.6
	assert.Error(t, cfg.Validate())

	cfg.MarginPercentage = 0
	assert.Error(t, cfg.Validate())
}

func TestConfigValidateRejectsNonPositiveGridSpacing(t *testing.T) {
	cfg := DefaultConfig()
	cfg.GridSpacingPercentage = 0
	assert.Error(t, cfg.Validate())
}

func TestConfigValidateRejectsNegativeSpacing(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MinComponentSpacingMM = -1
	assert.Error(t, cfg.Validate())
}

func TestConfigValidateRejectsNegativeMaxNearby(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxNearbyComponents = -1
	assert.Error(t, cfg.Validate())
}
