package pcbgen

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/pcbgen/pkg/netlist"
	"github.com/dshills/pcbgen/pkg/pcberr"
	"github.com/dshills/pcbgen/pkg/registry"
)

func minimalNetlist(t *testing.T) *netlist.Netlist {
	t.Helper()
	reg := registry.NewDefault()
	nl := netlist.New(reg)

	r1, err := nl.AddComponent("resistor", "10k", "", nil)
	require.NoError(t, err)
	j1, err := nl.AddComponent("jack", "", "3.5mm", nil)
	require.NoError(t, err)

	_, err = nl.AddNet("IN", netlist.ClassAudio)
	require.NoError(t, err)
	_, err = nl.AddNet("OUT", netlist.ClassAudio)
	require.NoError(t, err)
	_, err = nl.AddNet("GND", netlist.ClassGround)
	require.NoError(t, err)

	require.NoError(t, nl.Connect("IN", r1, "1"))
	require.NoError(t, nl.Connect("OUT", r1, "2"))
	require.NoError(t, nl.Connect("GND", j1, "SLEEVE"))
	require.NoError(t, nl.Validate())
	return nl
}

func TestRunReachesFinalizedForValidCircuit(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Preset = "pedal"
	d := NewDriver(cfg)

	result, err := d.Run(context.Background(), minimalNetlist(t), false)
	require.NoError(t, err)
	assert.Equal(t, StateFinalized, result.State)
	require.NotNil(t, result.Report)
	assert.True(t, result.Report.IsValid)
}

func TestRunValidateOnlyStopsAtValidated(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Preset = "pedal"
	d := NewDriver(cfg)

	result, err := d.Run(context.Background(), minimalNetlist(t), true)
	require.NoError(t, err)
	assert.Equal(t, StateValidated, result.State)
}

func TestRunReturnsPlacementInfeasibleOnOvercrowdedBoard(t *testing.T) {
	reg := registry.NewDefault()
	nl := netlist.New(reg)
	for i := 0; i < 60; i++ {
		_, err := nl.AddComponent("opamp", "", "dual", nil)
		require.NoError(t, err)
	}

	cfg := DefaultConfig()
	cfg.Preset = "pedal"
	d := NewDriver(cfg)

	result, err := d.Run(context.Background(), nl, false)
	require.Error(t, err)
	assert.Equal(t, StateFailed, result.State)
	var infeasible *pcberr.PlacementInfeasible
	assert.ErrorAs(t, err, &infeasible)
}

func TestRunRespectsContextCancellation(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Preset = "pedal"
	d := NewDriver(cfg)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := d.Run(ctx, minimalNetlist(t), false)
	require.Error(t, err)
	assert.Equal(t, StateNetlistLoaded, result.State)
}

func TestRunHonorsDeadline(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Preset = "pedal"
	d := NewDriver(cfg)

	ctx, cancel := context.WithTimeout(context.Background(), time.Nanosecond)
	defer cancel()
	time.Sleep(time.Millisecond)

	_, err := d.Run(ctx, minimalNetlist(t), false)
	assert.Error(t, err)
}

func TestStateStringCoversEveryState(t *testing.T) {
	states := []State{
		StateEmpty, StateNetlistLoaded, StatePlaced, StateRouted,
		StateZoned, StateValidated, StateFinalized, StateFailed,
	}
	for _, s := range states {
		assert.NotEqual(t, "unknown", s.String(), "state %d", s)
	}
}

func TestCountErrorOrCriticalIgnoresWarnings(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Preset = "pedal"
	d := NewDriver(cfg)

	result, err := d.Run(context.Background(), minimalNetlist(t), false)
	require.NoError(t, err)
	assert.Equal(t, 0, countErrorOrCritical(result.Report))
}
