package routing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/pcbgen/pkg/board"
	"github.com/dshills/pcbgen/pkg/netlist"
	"github.com/dshills/pcbgen/pkg/placement"
	"github.com/dshills/pcbgen/pkg/registry"
)

func buildPlacedNetlist(t *testing.T, preset string) (*board.Board, *netlist.Netlist) {
	t.Helper()
	b, err := board.NewFromPreset(preset)
	require.NoError(t, err)
	nl := netlist.New(registry.NewDefault())

	r1, err := nl.AddComponent("resistor", "10k", "", nil)
	require.NoError(t, err)
	j1, err := nl.AddComponent("jack", "", "3.5mm", nil)
	require.NoError(t, err)

	_, err = nl.AddNet("IN", netlist.ClassAudio)
	require.NoError(t, err)
	_, err = nl.AddNet("GND", netlist.ClassGround)
	require.NoError(t, err)

	require.NoError(t, nl.Connect("IN", r1, "1"))
	require.NoError(t, nl.Connect("IN", j1, "TIP"))
	require.NoError(t, nl.Connect("GND", r1, "2"))
	require.NoError(t, nl.Connect("GND", j1, "SLEEVE"))

	pe := placement.New(placement.DefaultConfig())
	require.NoError(t, pe.Place(b, nl))

	return b, nl
}

func TestClassRuleTableCoversEverySignalClass(t *testing.T) {
	classes := []netlist.SignalClass{
		netlist.ClassAudio, netlist.ClassPower, netlist.ClassGround,
		netlist.ClassControl, netlist.ClassDigital, netlist.ClassHighSpeed,
	}
	for _, c := range classes {
		rule := RuleFor(c)
		assert.Greater(t, rule.MinWidthMM, 0.0, c.String())
		assert.Greater(t, rule.MinClearanceMM, 0.0, c.String())
	}
}

func TestClassPriorityOrdersPowerFirst(t *testing.T) {
	assert.Less(t, classPriority(netlist.ClassPower), classPriority(netlist.ClassGround))
	assert.Less(t, classPriority(netlist.ClassGround), classPriority(netlist.ClassAudio))
	assert.Less(t, classPriority(netlist.ClassAudio), classPriority(netlist.ClassHighSpeed))
	assert.Less(t, classPriority(netlist.ClassHighSpeed), classPriority(netlist.ClassDigital))
	assert.Less(t, classPriority(netlist.ClassDigital), classPriority(netlist.ClassControl))
}

func TestResolveLayerFallsBackToFirstLayer(t *testing.T) {
	assert.Equal(t, "front", resolveLayer("inner-1", []string{"front", "back"}))
	assert.Equal(t, "inner-1", resolveLayer("inner-1", []string{"front", "inner-1", "back"}))
}

func TestRouteConnectsEveryMultiEndpointNet(t *testing.T) {
	b, nl := buildPlacedNetlist(t, "pedal")

	eng := New(DefaultConfig())
	unrouted, err := eng.Route(b, nl)
	require.NoError(t, err)
	assert.Empty(t, unrouted.NetIDs)

	assert.NotEmpty(t, b.TracksForNet("IN"))
	assert.NotEmpty(t, b.TracksForNet("GND"))
}

func TestRouteSkipsSingleEndpointNets(t *testing.T) {
	b, nl := buildPlacedNetlist(t, "pedal")
	_, err := nl.AddNet("UNUSED", netlist.ClassControl)
	require.NoError(t, err)

	eng := New(DefaultConfig())
	unrouted, err := eng.Route(b, nl)
	require.NoError(t, err)
	assert.NotContains(t, unrouted.NetIDs, "UNUSED")
	assert.Empty(t, b.TracksForNet("UNUSED"))
}

func TestRouteTracksRespectMinWidth(t *testing.T) {
	b, nl := buildPlacedNetlist(t, "pedal")

	eng := New(DefaultConfig())
	_, err := eng.Route(b, nl)
	require.NoError(t, err)

	for _, tr := range b.Tracks {
		rule := RuleFor(nl.Nets[tr.NetID].Class)
		assert.Equal(t, rule.MinWidthMM, tr.WidthMM, "track for net %s", tr.NetID)
	}
}

func TestRouteIsDeterministic(t *testing.T) {
	build := func() *board.Board {
		b, nl := buildPlacedNetlist(t, "pedal")
		eng := New(DefaultConfig())
		_, err := eng.Route(b, nl)
		require.NoError(t, err)
		return b
	}

	b1 := build()
	b2 := build()
	require.Equal(t, len(b1.Tracks), len(b2.Tracks))
	for i := range b1.Tracks {
		assert.Equal(t, b1.Tracks[i], b2.Tracks[i])
	}
}

func TestRouteHonorsNetLayerOverride(t *testing.T) {
	b, nl := buildPlacedNetlist(t, "pedal")

	cfg := DefaultConfig()
	cfg.NetLayerOverride = map[string]string{"IN": "back"}

	eng := New(cfg)
	_, err := eng.Route(b, nl)
	require.NoError(t, err)

	for _, tr := range b.TracksForNet("IN") {
		assert.Equal(t, "back", tr.Layer)
	}
}

func TestRouteIgnoresOverrideForLayerNotOnBoard(t *testing.T) {
	b, nl := buildPlacedNetlist(t, "pedal")

	cfg := DefaultConfig()
	cfg.NetLayerOverride = map[string]string{"IN": "inner-1"}

	eng := New(cfg)
	_, err := eng.Route(b, nl)
	require.NoError(t, err)

	for _, tr := range b.TracksForNet("IN") {
		assert.NotEqual(t, "inner-1", tr.Layer)
	}
}

func TestNetSpanMMZeroForNoEndpoints(t *testing.T) {
	nl := netlist.New(registry.NewDefault())
	_, err := nl.AddNet("FLOAT", netlist.ClassControl)
	require.NoError(t, err)
	assert.Equal(t, 0.0, netSpanMM(nl, nl.Nets["FLOAT"]))
}
