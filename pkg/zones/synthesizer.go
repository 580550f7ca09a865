// Package zones implements the Zone Synthesizer: ground/power copper pour
// regions with foreign-net clearance and thermal-relief spokes to same-net
// pads, grounded on the teacher's pkg/carving.Stamper (per-cell rectangle
// stamping generalized from a tile grid to a zone-fill raster, unioned
// across cells rather than traced into a single polygon).
package zones

import (
	"math"
	"sort"

	"github.com/dshills/pcbgen/pkg/board"
	"github.com/dshills/pcbgen/pkg/netlist"
)

// Synthesizer pours plane zones for every ground/power net onto the board.
type Synthesizer struct {
	cfg *Config
}

// New builds a Synthesizer. A nil cfg falls back to DefaultConfig().
func New(cfg *Config) *Synthesizer {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return &Synthesizer{cfg: cfg}
}

// Synthesize pours one plane per ground/power net onto its designated
// layer, replacing b.Zones entirely (zones are always resynthesized from
// scratch after a routing change, per spec.md §3's lifecycle rule).
func (s *Synthesizer) Synthesize(b *board.Board, nl *netlist.Netlist) error {
	b.Zones = nil

	planeLayer := s.layerAssignment(b)

	netIDs := nl.IterNets()
	sort.Strings(netIDs)

	for _, netID := range netIDs {
		net := nl.Nets[netID]
		if net.Class != netlist.ClassGround && net.Class != netlist.ClassPower {
			continue
		}
		layer, ok := planeLayer[net.Class]
		if !ok {
			continue
		}

		cells := s.pourCells(b, nl, netID, layer)
		for _, c := range cells {
			b.Zones = append(b.Zones, board.Zone{
				NetID:       netID,
				Layer:       layer,
				ClearanceMM: b.Rules.MinZoneClearanceMM,
				Outline:     cellOutline(c, s.cfg.GridMM),
			})
		}

		s.addThermalReliefs(b, nl, netID, layer)
	}

	return nil
}

// layerAssignment picks one layer per plane-carrying class: GND on an
// inner layer, +V rails on another inner layer for 4-layer boards. On
// 2-layer boards GND gets a single-sided pour on the back layer (front if
// there is no back layer) and power gets no plane (spec.md §4.5).
func (s *Synthesizer) layerAssignment(b *board.Board) map[netlist.SignalClass]string {
	has := func(id string) bool {
		_, ok := b.LayerByID(id)
		return ok
	}

	assignment := map[netlist.SignalClass]string{}
	if has("inner-2") {
		assignment[netlist.ClassGround] = "inner-2"
	} else if has("back") {
		assignment[netlist.ClassGround] = "back"
	} else {
		assignment[netlist.ClassGround] = "front"
	}

	if has("inner-1") {
		assignment[netlist.ClassPower] = "inner-1"
	}
	// On 2-layer boards, only GND gets a single-sided pour; power stays as
	// discrete traces rather than sharing the one remaining copper layer.

	return assignment
}

// cellIndex is a grid cell on the zone-fill raster.
type cellIndex struct{ ix, iy int }

// pourCells rasterizes the board inset by edge_clearance, then clears cells
// within min_zone_clearance of any foreign-net track/via/pad on the same
// layer, returning the surviving cells.
func (s *Synthesizer) pourCells(b *board.Board, nl *netlist.Netlist, netID, layer string) []cellIndex {
	grid := s.cfg.GridMM
	edge := b.Rules.EdgeClearanceMM
	clearance := b.Rules.MinZoneClearanceMM

	wCells := int(math.Floor((b.WidthMM - 2*edge) / grid))
	hCells := int(math.Floor((b.HeightMM - 2*edge) / grid))
	if wCells <= 0 || hCells <= 0 {
		return nil
	}

	offsetCells := int(math.Ceil(edge / grid))
	filled := make(map[cellIndex]bool, wCells*hCells)
	for ix := 0; ix < wCells; ix++ {
		for iy := 0; iy < hCells; iy++ {
			filled[cellIndex{ix + offsetCells, iy + offsetCells}] = true
		}
	}

	haloCells := int(math.Ceil(clearance / grid))
	clearHalo := func(cx, cy float64) {
		cix := int(math.Round(cx / grid))
		ciy := int(math.Round(cy / grid))
		for dx := -haloCells; dx <= haloCells; dx++ {
			for dy := -haloCells; dy <= haloCells; dy++ {
				delete(filled, cellIndex{cix + dx, ciy + dy})
			}
		}
	}

	for _, t := range b.Tracks {
		if t.NetID == netID || t.Layer != layer {
			continue
		}
		for _, p := range t.Points {
			clearHalo(p.XMM, p.YMM)
		}
	}
	for _, v := range b.Vias {
		if v.NetID == netID {
			continue
		}
		if v.FromLayer == layer || v.ToLayer == layer {
			clearHalo(v.Position.XMM, v.Position.YMM)
		}
	}
	for _, c := range b.Components {
		if !netConnectsComponent(nl, netID, c.ID) {
			clearHalo(c.Position.XMM, c.Position.YMM)
		}
	}

	out := make([]cellIndex, 0, len(filled))
	for c := range filled {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].ix != out[j].ix {
			return out[i].ix < out[j].ix
		}
		return out[i].iy < out[j].iy
	})
	return out
}

func netConnectsComponent(nl *netlist.Netlist, netID, componentID string) bool {
	net, ok := nl.Nets[netID]
	if !ok {
		return false
	}
	for _, ep := range net.Endpoints {
		if ep.ComponentID == componentID {
			return true
		}
	}
	return false
}

func cellOutline(c cellIndex, gridMM float64) []board.Point {
	x0 := float64(c.ix) * gridMM
	y0 := float64(c.iy) * gridMM
	x1 := x0 + gridMM
	y1 := y0 + gridMM
	return []board.Point{
		{XMM: x0, YMM: y0}, {XMM: x1, YMM: y0}, {XMM: x1, YMM: y1}, {XMM: x0, YMM: y1},
	}
}

// addThermalReliefs connects same-net pads to the plane with four thin
// spokes, or, when star grounding is configured for a ground net, routes
// every spoke to the single designated star point instead of the plane
// directly (spec.md §4.5).
func (s *Synthesizer) addThermalReliefs(b *board.Board, nl *netlist.Netlist, netID, layer string) {
	net := nl.Nets[netID]

	starTarget := ""
	if net.Class == netlist.ClassGround && b.Rules.StarGrounding {
		if _, ok := nl.Components[b.Rules.StarPointRef]; ok {
			starTarget = b.Rules.StarPointRef
		} else {
			starTarget = nearestPad(b, nl, netID)
		}
	}

	bridge := (s.cfg.ThermalBridgeMM)
	for _, ep := range net.Endpoints {
		comp, ok := nl.Components[ep.ComponentID]
		if !ok {
			continue
		}

		if starTarget != "" && ep.ComponentID != starTarget {
			target, ok := nl.Components[starTarget]
			if !ok {
				continue
			}
			b.Tracks = append(b.Tracks, board.Track{
				NetID: netID, Layer: layer, WidthMM: bridge,
				Points: []board.Point{
					{XMM: comp.Position.XMM, YMM: comp.Position.YMM},
					{XMM: target.Position.XMM, YMM: target.Position.YMM},
				},
			})
			continue
		}

		for _, dir := range [][2]float64{{1, 0}, {-1, 0}, {0, 1}, {0, -1}} {
			b.Tracks = append(b.Tracks, board.Track{
				NetID: netID, Layer: layer, WidthMM: bridge,
				Points: []board.Point{
					{XMM: comp.Position.XMM, YMM: comp.Position.YMM},
					{XMM: comp.Position.XMM + dir[0]*bridge, YMM: comp.Position.YMM + dir[1]*bridge},
				},
			})
		}
	}
}

// nearestPad finds the net endpoint closest to the board center, used as
// the star-point fallback when configuration names no explicit star point
// (spec.md §9 open question decision).
func nearestPad(b *board.Board, nl *netlist.Netlist, netID string) string {
	net, ok := nl.Nets[netID]
	if !ok || len(net.Endpoints) == 0 {
		return ""
	}
	cx, cy := b.WidthMM/2, b.HeightMM/2
	best := ""
	bestDist := math.MaxFloat64
	for _, ep := range net.Endpoints {
		comp, ok := nl.Components[ep.ComponentID]
		if !ok {
			continue
		}
		dx, dy := comp.Position.XMM-cx, comp.Position.YMM-cy
		d := dx*dx + dy*dy
		if d < bestDist {
			bestDist = d
			best = comp.ID
		}
	}
	return best
}
