package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/pcbgen/pkg/netlist"
)

func TestNewFromPresetDimensions(t *testing.T) {
	tests := []struct {
		preset     string
		wantWidth  float64
		wantHeight float64
		wantLayers int
	}{
		{"eurorack", 128.5, 128.5, 2},
		{"pedal", 125, 60, 2},
		{"desktop", 200, 150, 4},
		{"rack", 483, 44, 2},
	}
	for _, tc := range tests {
		b, err := NewFromPreset(tc.preset)
		require.NoError(t, err, tc.preset)
		assert.Equal(t, tc.wantWidth, b.WidthMM, tc.preset)
		assert.Equal(t, tc.wantHeight, b.HeightMM, tc.preset)
		assert.Len(t, b.Layers, tc.wantLayers, tc.preset)
	}
}

func TestNewFromPresetUnknownFails(t *testing.T) {
	_, err := NewFromPreset("breadboard")
	assert.Error(t, err)
}

func TestNewCustomLayerStack(t *testing.T) {
	b := NewCustom(100, 80, 6)
	assert.Len(t, b.Layers, 6)
	roleByID := make(map[string]LayerRole)
	for _, l := range b.Layers {
		roleByID[l.ID] = l.Role
	}
	assert.Equal(t, RolePower, roleByID["inner-1"])
	assert.Equal(t, RoleGround, roleByID["inner-2"])
}

func TestLayerByID(t *testing.T) {
	b, err := NewFromPreset("desktop")
	require.NoError(t, err)

	l, ok := b.LayerByID("inner-1")
	require.True(t, ok)
	assert.Equal(t, RolePower, l.Role)

	_, ok = b.LayerByID("inner-99")
	assert.False(t, ok)
}

func TestComponentAndNetAccessors(t *testing.T) {
	b, err := NewFromPreset("pedal")
	require.NoError(t, err)
	b.Components = append(b.Components, &netlist.Component{ID: "R1", Kind: "resistor"})
	b.Tracks = append(b.Tracks, Track{NetID: "IN", Layer: "front"})
	b.Vias = append(b.Vias, Via{NetID: "IN", FromLayer: "front", ToLayer: "back"})

	comp, ok := b.ComponentByID("R1")
	require.True(t, ok)
	assert.Equal(t, "resistor", comp.Kind)

	_, ok = b.ComponentByID("R99")
	assert.False(t, ok)

	assert.Len(t, b.TracksForNet("IN"), 1)
	assert.Len(t, b.TracksForNet("OUT"), 0)
	assert.Len(t, b.ViasForNet("IN"), 1)
}

func TestDefaultDesignRulesAreNonZero(t *testing.T) {
	rules := DefaultDesignRules()
	assert.Greater(t, rules.EdgeClearanceMM, 0.0)
	assert.Greater(t, rules.MinComponentSpacingMM, 0.0)
	assert.Greater(t, rules.ViaDiameterMM, rules.ViaDrillMM)
}
