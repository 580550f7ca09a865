package routing

import (
	"math"

	"github.com/dshills/pcbgen/pkg/board"
)

// cell is an integer grid coordinate on one layer.
type cell struct {
	layer string
	ix    int
	iy    int
}

// obstacleGrid tracks, per layer, which cells are blocked (component
// keepouts, board edges) and which cells are occupied by an already-routed
// net (for clearance-halo and parallel-run penalty checks).
type obstacleGrid struct {
	gridMM     float64
	widthCells int
	heightCells int
	blocked    map[cell]bool
	owner      map[cell]string // cell -> net id that occupies it
}

func newObstacleGrid(b *board.Board, gridMM float64) *obstacleGrid {
	g := &obstacleGrid{
		gridMM:      gridMM,
		widthCells:  int(math.Ceil(b.WidthMM / gridMM)),
		heightCells: int(math.Ceil(b.HeightMM / gridMM)),
		blocked:     make(map[cell]bool),
		owner:       make(map[cell]string),
	}

	layerIDs := make([]string, len(b.Layers))
	for i, l := range b.Layers {
		layerIDs[i] = l.ID
	}

	edgeClearanceCells := int(math.Ceil(b.Rules.EdgeClearanceMM / gridMM))
	for _, layer := range layerIDs {
		for ix := 0; ix < g.widthCells; ix++ {
			for iy := 0; iy < g.heightCells; iy++ {
				if ix < edgeClearanceCells || iy < edgeClearanceCells ||
					ix >= g.widthCells-edgeClearanceCells || iy >= g.heightCells-edgeClearanceCells {
					g.blocked[cell{layer, ix, iy}] = true
				}
			}
		}
	}

	spacingCells := int(math.Ceil(b.Rules.MinComponentSpacingMM / gridMM))
	for _, comp := range b.Components {
		w, h := 8.0, 8.0 // conservative keepout; real footprint geometry is out of scope here
		x0 := comp.Position.XMM - w/2 - float64(spacingCells)*gridMM
		y0 := comp.Position.YMM - h/2 - float64(spacingCells)*gridMM
		x1 := comp.Position.XMM + w/2 + float64(spacingCells)*gridMM
		y1 := comp.Position.YMM + h/2 + float64(spacingCells)*gridMM
		for _, layer := range layerIDs {
			for ix := toCellIndex(x0, gridMM); ix <= toCellIndex(x1, gridMM); ix++ {
				for iy := toCellIndex(y0, gridMM); iy <= toCellIndex(y1, gridMM); iy++ {
					g.blocked[cell{layer, ix, iy}] = true
				}
			}
		}
	}

	return g
}

func toCellIndex(mm, gridMM float64) int {
	return int(math.Round(mm / gridMM))
}

func (g *obstacleGrid) inBounds(c cell) bool {
	return c.ix >= 0 && c.iy >= 0 && c.ix < g.widthCells && c.iy < g.heightCells
}

// occupy marks cells for a routed net, inflated by clearanceMM on each side
// of the path's bounding footprint (approximated per-cell, not per-segment,
// which is adequate at the grid's resolution).
func (g *obstacleGrid) occupy(netID string, path []cell, clearanceMM float64) {
	haloCells := int(math.Ceil(clearanceMM / g.gridMM))
	for _, c := range path {
		for dx := -haloCells; dx <= haloCells; dx++ {
			for dy := -haloCells; dy <= haloCells; dy++ {
				nc := cell{c.layer, c.ix + dx, c.iy + dy}
				if dx == 0 && dy == 0 {
					g.owner[nc] = netID
					continue
				}
				if _, exists := g.owner[nc]; !exists {
					g.owner[nc] = netID
				}
			}
		}
	}
}

// release removes a net's occupancy, used when ripping up a previously
// routed net for a retry.
func (g *obstacleGrid) release(netID string) {
	for c, owner := range g.owner {
		if owner == netID {
			delete(g.owner, c)
		}
	}
}

func toMM(ix int, gridMM float64) float64 { return float64(ix) * gridMM }
