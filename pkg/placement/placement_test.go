package placement

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/pcbgen/pkg/board"
	"github.com/dshills/pcbgen/pkg/netlist"
	"github.com/dshills/pcbgen/pkg/pcberr"
	"github.com/dshills/pcbgen/pkg/registry"
)

func newBoardAndNetlist(t *testing.T, preset string) (*board.Board, *netlist.Netlist) {
	t.Helper()
	b, err := board.NewFromPreset(preset)
	require.NoError(t, err)
	nl := netlist.New(registry.NewDefault())
	return b, nl
}

func TestPlaceMinimalCircuitOrthogonalAndContained(t *testing.T) {
	b, nl := newBoardAndNetlist(t, "pedal")
	_, err := nl.AddComponent("resistor", "10k", "", nil)
	require.NoError(t, err)
	_, err = nl.AddComponent("jack", "", "3.5mm", nil)
	require.NoError(t, err)

	eng := New(DefaultConfig())
	require.NoError(t, eng.Place(b, nl))

	for _, c := range b.Components {
		assert.True(t, c.Placed)
		assert.Contains(t, []int{0, 90, 180, 270}, c.RotationDeg)
		w, h := FootprintSizeMM(c.Kind)
		if c.RotationDeg == 90 || c.RotationDeg == 270 {
			w, h = h, w
		}
		assert.GreaterOrEqual(t, c.Position.XMM-w/2, b.Rules.EdgeClearanceMM, "component %s inside left edge", c.ID)
		assert.GreaterOrEqual(t, c.Position.YMM-h/2, b.Rules.EdgeClearanceMM, "component %s inside top edge", c.ID)
		assert.LessOrEqual(t, c.Position.XMM+w/2, b.WidthMM-b.Rules.EdgeClearanceMM, "component %s inside right edge", c.ID)
		assert.LessOrEqual(t, c.Position.YMM+h/2, b.HeightMM-b.Rules.EdgeClearanceMM, "component %s inside bottom edge", c.ID)
	}
}

func TestPlaceNonOverlapInvariant(t *testing.T) {
	b, nl := newBoardAndNetlist(t, "desktop")
	for i := 0; i < 10; i++ {
		_, err := nl.AddComponent("resistor", "10k", "", nil)
		require.NoError(t, err)
	}

	eng := New(DefaultConfig())
	require.NoError(t, eng.Place(b, nl))

	spacing := eng.cfg.MinComponentSpacingMM
	for i := 0; i < len(b.Components); i++ {
		for j := i + 1; j < len(b.Components); j++ {
			a, c := b.Components[i], b.Components[j]
			wa, ha := FootprintSizeMM(a.Kind)
			wc, hc := FootprintSizeMM(c.Kind)
			overlap := boxesOverlap(
				candidateBox{a.Position.XMM - wa/2 - spacing/2, a.Position.YMM - ha/2 - spacing/2, a.Position.XMM + wa/2 + spacing/2, a.Position.YMM + ha/2 + spacing/2},
				candidateBox{c.Position.XMM - wc/2 - spacing/2, c.Position.YMM - hc/2 - spacing/2, c.Position.XMM + wc/2 + spacing/2, c.Position.YMM + hc/2 + spacing/2},
			)
			assert.False(t, overlap, "components %s and %s should not overlap", a.ID, c.ID)
		}
	}
}

func TestPlaceInfeasibleOnOvercrowdedBoard(t *testing.T) {
	b, nl := newBoardAndNetlist(t, "pedal")
	for i := 0; i < 60; i++ {
		_, err := nl.AddComponent("opamp", "", "dual", nil)
		require.NoError(t, err)
	}

	eng := New(DefaultConfig())
	err := eng.Place(b, nl)
	require.Error(t, err)
	var infeasible *pcberr.PlacementInfeasible
	assert.ErrorAs(t, err, &infeasible)
}

func TestPlaceFrontPanelEdgeSpacing(t *testing.T) {
	b, nl := newBoardAndNetlist(t, "eurorack")
	j1, err := nl.AddComponent("jack", "", "3.5mm", nil)
	require.NoError(t, err)
	j2, err := nl.AddComponent("jack", "", "3.5mm", nil)
	require.NoError(t, err)

	eng := New(DefaultConfig())
	require.NoError(t, eng.Place(b, nl))

	c1, c2 := nl.Components[j1], nl.Components[j2]
	assert.InDelta(t, 3.5, c2.Position.XMM-c1.Position.XMM, 0.01)
}

func TestPlaceIsDeterministic(t *testing.T) {
	build := func() *board.Board {
		b, nl := newBoardAndNetlist(t, "desktop")
		for i := 0; i < 6; i++ {
			_, _ = nl.AddComponent("resistor", "10k", "", nil)
		}
		eng := New(DefaultConfig())
		require.NoError(t, eng.Place(b, nl))
		return b
	}

	b1 := build()
	b2 := build()
	require.Equal(t, len(b1.Components), len(b2.Components))
	for i := range b1.Components {
		assert.Equal(t, b1.Components[i].Position, b2.Components[i].Position)
		assert.Equal(t, b1.Components[i].RotationDeg, b2.Components[i].RotationDeg)
	}
}
