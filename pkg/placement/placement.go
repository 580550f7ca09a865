// Package placement implements the Placement Engine: a deterministic,
// constraint-driven candidate-grid search over named board zones. It
// replaces the teacher's force-directed physics embedder with the
// spec's ordered, grid-scan algorithm, but keeps the teacher's
// Engine/Config shape from pkg/embedding (there is no Register/Get
// registry here).
package placement

import (
	"math"
	"sort"

	"github.com/dshills/pcbgen/pkg/board"
	"github.com/dshills/pcbgen/pkg/netlist"
	"github.com/dshills/pcbgen/pkg/pcberr"
)

// Engine runs the full placement algorithm against a Board and Netlist.
type Engine struct {
	cfg *Config
}

// New builds a placement Engine bound to cfg. A nil cfg falls back to
// DefaultConfig().
func New(cfg *Config) *Engine {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return &Engine{cfg: cfg}
}

// candidateBox is an axis-aligned bounding box already inflated by half of
// min_component_spacing on every side, so two boxes overlap iff their plain
// rectangles intersect.
type candidateBox struct {
	x0, y0, x1, y1 float64
}

func boxesOverlap(a, b candidateBox) bool {
	return a.x0 < b.x1 && a.x1 > b.x0 && a.y0 < b.y1 && a.y1 > b.y0
}

// Place runs the full five-step algorithm from spec.md §4.3, mutating each
// component's Position/RotationDeg/Side/Placed fields in place. It never
// commits a partial placement: on failure every component placed during
// this call is restored to its prior state and removed from b.Components
// again before the PlacementInfeasible error is returned.
func (e *Engine) Place(b *board.Board, nl *netlist.Netlist) (err error) {
	placed := make([]candidateBox, 0, len(nl.Components))
	var opampCenters []board.Point

	spacing := e.cfg.MinComponentSpacingMM
	edgeClearance := b.Rules.EdgeClearanceMM

	committed := len(b.Components)
	saved := make(map[*netlist.Component]netlist.Component)
	defer func() {
		if err == nil {
			return
		}
		for _, c := range b.Components[committed:] {
			*c = saved[c]
		}
		b.Components = b.Components[:committed]
	}()

	placeAt := func(comp *netlist.Component, x, y float64, rotation int, w, h float64) {
		saved[comp] = *comp
		comp.Position = netlist.Position{XMM: x, YMM: y}
		comp.RotationDeg = rotation
		comp.Placed = true
		b.Components = append(b.Components, comp)

		bw, bh := w, h
		if rotation == 90 || rotation == 270 {
			bw, bh = h, w
		}
		placed = append(placed, candidateBox{
			x0: x - bw/2 - spacing/2, y0: y - bh/2 - spacing/2,
			x1: x + bw/2 + spacing/2, y1: y + bh/2 + spacing/2,
		})

		if groupFor(comp.Kind) == GroupOpamp {
			opampCenters = append(opampCenters, board.Point{XMM: x, YMM: y})
		}
	}

	densityNearby := func(x, y float64) int {
		count := 0
		r := e.cfg.MaxComponentDensityRadiusMM
		for _, box := range placed {
			cx := (box.x0 + box.x1) / 2
			cy := (box.y0 + box.y1) / 2
			dx, dy := cx-x, cy-y
			if dx*dx+dy*dy <= r*r {
				count++
			}
		}
		return count
	}

	fits := func(x, y, w, h float64, rotation int, thermal bool) bool {
		bw, bh := w, h
		if rotation == 90 || rotation == 270 {
			bw, bh = h, w
		}
		cand := candidateBox{
			x0: x - bw/2 - spacing/2, y0: y - bh/2 - spacing/2,
			x1: x + bw/2 + spacing/2, y1: y + bh/2 + spacing/2,
		}
		if cand.x0 < edgeClearance || cand.y0 < edgeClearance ||
			cand.x1 > b.WidthMM-edgeClearance || cand.y1 > b.HeightMM-edgeClearance {
			return false
		}
		for _, other := range placed {
			if boxesOverlap(cand, other) {
				return false
			}
		}
		if thermal && densityNearby(x, y) >= e.cfg.MaxNearbyComponents {
			return false
		}
		return true
	}

	// Step 5: stability components are fixed obstacles before general
	// placement proceeds.
	stabilitySet := make(map[string]bool, len(e.cfg.StabilityComponents))
	for _, sc := range e.cfg.StabilityComponents {
		comp, ok := nl.Components[sc.ComponentID]
		if !ok {
			continue
		}
		stabilitySet[sc.ComponentID] = true
		w, h := FootprintSizeMM(comp.Kind)
		x := b.WidthMM * sc.XPercent
		y := b.HeightMM * sc.YPercent
		placeAt(comp, x, y, 0, w, h)
	}

	// Step 4: front-panel components walk along the designated edge at
	// fixed per-kind spacing, ahead of the general candidate search.
	frontPanelKinds := map[string]bool{"jack": true, "potentiometer": true, "switch": true, "led": true}
	frontPanelPlaced := make(map[string]bool)
	if b.FrontPanelEdge != "" {
		kindIndex := make(map[string]int)
		ids := nl.IterComponents()
		for _, id := range ids {
			comp := nl.Components[id]
			if stabilitySet[id] || !frontPanelKinds[comp.Kind] {
				continue
			}
			w, h := FootprintSizeMM(comp.Kind)
			spacingPct, ok := e.cfg.FrontPanelSpacingMM[comp.Kind]
			if !ok {
				spacingPct = 10.0
			}
			idx := kindIndex[comp.Kind]
			kindIndex[comp.Kind]++

			x, y := frontPanelPosition(b, comp.Kind, idx, spacingPct, w, h, edgeClearance)
			if x < 0 || y < 0 {
				return &pcberr.PlacementInfeasible{ComponentID: comp.ID, Reason: "no room on front panel edge"}
			}
			placeAt(comp, x, y, 0, w, h)
			frontPanelPlaced[id] = true
		}
	}

	center, edges, top := computeZones(b, e.cfg.MarginPercentage)
	gridStep := e.cfg.GridSpacingPercentage * math.Min(b.WidthMM, b.HeightMM)
	if gridStep <= 0 {
		gridStep = 1.0
	}

	// Steps 1-3: ordered placement of every remaining component by group
	// priority, then deterministically by reference designator.
	ids := nl.IterComponents()
	remaining := make([]string, 0, len(ids))
	for _, id := range ids {
		if stabilitySet[id] || frontPanelPlaced[id] {
			continue
		}
		remaining = append(remaining, id)
	}
	sort.Slice(remaining, func(i, j int) bool {
		gi, gj := groupFor(nl.Components[remaining[i]].Kind), groupFor(nl.Components[remaining[j]].Kind)
		if gi.Priority() != gj.Priority() {
			return gi.Priority() < gj.Priority()
		}
		return remaining[i] < remaining[j]
	})

	for _, id := range remaining {
		comp := nl.Components[id]
		group := groupFor(comp.Kind)
		w, h := FootprintSizeMM(comp.Kind)
		opampCircles := nearOpampCircles(opampCenters, e.cfg.CenterSpacingPercentage*math.Hypot(b.WidthMM, b.HeightMM))
		regions := regionsForZone(group.PreferredZone(), center, edges, top, opampCircles)

		x, y, rotation, ok := searchCandidate(regions, gridStep, w, h, group.ThermalConsideration(), fits)
		if !ok {
			return &pcberr.PlacementInfeasible{ComponentID: comp.ID, Reason: "no candidate position satisfies spacing/clearance/density constraints"}
		}
		placeAt(comp, x, y, rotation, w, h)
	}

	return nil
}

// searchCandidate scans a grid over each region in order, preferring
// orthogonal rotations 0/180 before 90/270, and returns the first
// satisfying position.
func searchCandidate(regions []region, gridStep, w, h float64, thermal bool, fits func(x, y, w, h float64, rotation int, thermal bool) bool) (x, y float64, rotation int, ok bool) {
	rotations := []int{0, 180, 90, 270}
	for _, reg := range regions {
		for gy := reg.bounds.Y; gy <= reg.bounds.Y+reg.bounds.H; gy += gridStep {
			for gx := reg.bounds.X; gx <= reg.bounds.X+reg.bounds.W; gx += gridStep {
				if !reg.test(gx, gy) {
					continue
				}
				for _, rot := range rotations {
					if fits(gx, gy, w, h, rot, thermal) {
						return gx, gy, rot, true
					}
				}
			}
		}
	}
	return 0, 0, 0, false
}

// frontPanelPosition computes the fixed-spacing slot for the idx-th
// front-panel component of a given kind along the board's front panel
// edge. The first slot's box starts at the edge clearance; later slots
// follow at spacingMM centre to centre. Returns (-1,-1) if the slot would
// run off the board.
func frontPanelPosition(b *board.Board, kind string, idx int, spacingMM, w, h, edgeClearance float64) (x, y float64) {
	along := w
	if b.FrontPanelEdge == "left" || b.FrontPanelEdge == "right" {
		along = h
	}
	pos := edgeClearance + along/2 + float64(idx)*spacingMM
	switch b.FrontPanelEdge {
	case "top":
		if pos+w/2 > b.WidthMM-edgeClearance {
			return -1, -1
		}
		return pos, edgeClearance + h/2
	case "bottom":
		if pos+w/2 > b.WidthMM-edgeClearance {
			return -1, -1
		}
		return pos, b.HeightMM - edgeClearance - h/2
	case "left":
		if pos+h/2 > b.HeightMM-edgeClearance {
			return -1, -1
		}
		return edgeClearance + w/2, pos
	case "right":
		if pos+h/2 > b.HeightMM-edgeClearance {
			return -1, -1
		}
		return b.WidthMM - edgeClearance - w/2, pos
	default:
		return -1, -1
	}
}
