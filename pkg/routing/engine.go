// Package routing implements the Routing Engine: for each net, a sequence
// of track segments and vias obeying per-class width/clearance/layer-
// preference rules, found via an A* search on a multi-layer grid.
// Grounded on the teacher's pkg/carving corridor line-drawing, generalized
// from a single floor layer to a via-mediated layer stack.
package routing

import (
	"math"
	"sort"

	"github.com/dshills/pcbgen/pkg/board"
	"github.com/dshills/pcbgen/pkg/netlist"
)

// Engine routes every net in a Netlist onto a placed Board.
type Engine struct {
	cfg *Config
}

// New builds a routing Engine. A nil cfg falls back to DefaultConfig().
func New(cfg *Config) *Engine {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return &Engine{cfg: cfg}
}

// Unrouted is the set of net ids the engine could not connect within the
// search and reroute budget. The driver surfaces these as connectivity
// issues during Validation rather than treating them as a hard failure
// (spec.md §4.7: "unrouted nets are allowed to proceed").
type Unrouted struct {
	NetIDs []string
}

// Route assigns tracks and vias for every net, mutating b.Tracks/b.Vias in
// place. Returns the set of nets that remain unconnected after exhausting
// the reroute budget.
func (e *Engine) Route(b *board.Board, nl *netlist.Netlist) (Unrouted, error) {
	layers := make([]string, len(b.Layers))
	for i, l := range b.Layers {
		layers[i] = l.ID
	}

	grid := newObstacleGrid(b, e.cfg.GridMM)

	netIDs := nl.IterNets()
	ordered := make([]string, len(netIDs))
	copy(ordered, netIDs)
	sort.Slice(ordered, func(i, j int) bool {
		ni, nj := nl.Nets[ordered[i]], nl.Nets[ordered[j]]
		pi, pj := classPriority(ni.Class), classPriority(nj.Class)
		if pi != pj {
			return pi < pj
		}
		return netSpanMM(nl, ni) > netSpanMM(nl, nj)
	})

	attempts := make(map[string]int)

	for i := 0; i < len(ordered); i++ {
		netID := ordered[i]
		net := nl.Nets[netID]
		if len(net.Endpoints) < 2 {
			continue
		}

		if e.routeNet(b, nl, grid, layers, netID, net) {
			continue
		}

		if attempts[netID] >= e.cfg.MaxRerouteAttempts {
			continue
		}
		attempts[netID]++
		victim := e.ripLowestPriorityNeighbor(b, nl, grid, ordered, i)
		if victim != "" && attempts[victim] < e.cfg.MaxRerouteAttempts {
			ordered = append(ordered, victim)
		}
		ordered = append(ordered, netID)
	}

	var unrouted []string
	for _, netID := range netIDs {
		net := nl.Nets[netID]
		if len(net.Endpoints) < 2 {
			continue
		}
		if len(b.TracksForNet(netID)) == 0 {
			unrouted = append(unrouted, netID)
		}
	}
	sort.Strings(unrouted)

	return Unrouted{NetIDs: unrouted}, nil
}

// resolveLayer falls back to the board's first (front) layer when a
// class's preferred layer is not part of the board's stack-up, e.g. power
// and ground prefer inner layers that don't exist on a 2-layer board
// (spec.md §4.5's "single-sided pour on 2-layer boards" rule extends
// naturally to routing: everything collapses onto the front layer).
func resolveLayer(preferred string, layers []string) string {
	for _, l := range layers {
		if l == preferred {
			return preferred
		}
	}
	if len(layers) > 0 {
		return layers[0]
	}
	return preferred
}

// netSpanMM estimates a net's total Manhattan span across all its
// endpoints, used to order same-priority nets longest-first per spec.md
// §4.4 step 1.
func netSpanMM(nl *netlist.Netlist, net *netlist.Net) float64 {
	if len(net.Endpoints) == 0 {
		return 0
	}
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, ep := range net.Endpoints {
		comp, ok := nl.Components[ep.ComponentID]
		if !ok {
			continue
		}
		minX = math.Min(minX, comp.Position.XMM)
		maxX = math.Max(maxX, comp.Position.XMM)
		minY = math.Min(minY, comp.Position.YMM)
		maxY = math.Max(maxY, comp.Position.YMM)
	}
	return (maxX - minX) + (maxY - minY)
}

// routeNet connects every endpoint of net via a minimum-spanning-tree
// ordering: endpoints are sorted deterministically, then each subsequent
// endpoint is connected to its nearest already-connected endpoint.
func (e *Engine) routeNet(b *board.Board, nl *netlist.Netlist, grid *obstacleGrid, layers []string, netID string, net *netlist.Net) bool {
	rule := RuleFor(net.Class)
	rule.PreferredLayer = resolveLayer(rule.PreferredLayer, layers)
	if override, ok := e.cfg.NetLayerOverride[netID]; ok {
		if forced := resolveLayer(override, layers); forced == override {
			rule.PreferredLayer = forced
		}
	}

	endpoints := make([]netlist.Endpoint, len(net.Endpoints))
	copy(endpoints, net.Endpoints)
	sort.Slice(endpoints, func(i, j int) bool {
		if endpoints[i].ComponentID != endpoints[j].ComponentID {
			return endpoints[i].ComponentID < endpoints[j].ComponentID
		}
		return endpoints[i].Pin < endpoints[j].Pin
	})

	endpointCell := func(ep netlist.Endpoint) (cell, bool) {
		comp, ok := nl.Components[ep.ComponentID]
		if !ok {
			return cell{}, false
		}
		return cell{layer: rule.PreferredLayer, ix: toCellIndex(comp.Position.XMM, grid.gridMM), iy: toCellIndex(comp.Position.YMM, grid.gridMM)}, true
	}

	connected := []cell{}
	firstCell, ok := endpointCell(endpoints[0])
	if !ok {
		return false
	}
	connected = append(connected, firstCell)

	var newTracks []board.Track
	var newVias []board.Via

	for i := 1; i < len(endpoints); i++ {
		targetCell, ok := endpointCell(endpoints[i])
		if !ok {
			return false
		}

		nearest := connected[0]
		nearestDist := math.MaxFloat64
		for _, c := range connected {
			d := heuristic(c, targetCell, grid.gridMM)
			if d < nearestDist {
				nearest = c
				nearestDist = d
			}
		}

		path, found := searchPath(grid, layers, rule, e.cfg, netID, nearest, targetCell)
		if !found {
			return false
		}

		track, vias := pathToTrackAndVias(path, netID, rule, e.cfg, grid.gridMM)
		newTracks = append(newTracks, track...)
		newVias = append(newVias, vias...)
		grid.occupy(netID, path, rule.MinClearanceMM)
		connected = append(connected, targetCell)
	}

	b.Tracks = append(b.Tracks, newTracks...)
	b.Vias = append(b.Vias, newVias...)
	return true
}

// pathToTrackAndVias splits a layer-spanning cell path into per-layer track
// segments plus a via at every layer transition.
func pathToTrackAndVias(path []cell, netID string, rule ClassRule, cfg *Config, gridMM float64) ([]board.Track, []board.Via) {
	if len(path) == 0 {
		return nil, nil
	}

	var tracks []board.Track
	var vias []board.Via

	segStart := 0
	for i := 1; i < len(path); i++ {
		if path[i].layer != path[i-1].layer {
			tracks = append(tracks, segmentTrack(path[segStart:i], netID, path[i-1].layer, rule, gridMM))
			vias = append(vias, board.Via{
				NetID: netID, Position: board.Point{XMM: toMM(path[i-1].ix, gridMM), YMM: toMM(path[i-1].iy, gridMM)},
				DrillMM: cfg.ViaDrillMM, OuterDiaMM: cfg.ViaDiameterMM,
				FromLayer: path[i-1].layer, ToLayer: path[i].layer,
			})
			segStart = i
		}
	}
	tracks = append(tracks, segmentTrack(path[segStart:], netID, path[len(path)-1].layer, rule, gridMM))

	return tracks, vias
}

func segmentTrack(seg []cell, netID, layer string, rule ClassRule, gridMM float64) board.Track {
	points := make([]board.Point, len(seg))
	for i, c := range seg {
		points[i] = board.Point{XMM: toMM(c.ix, gridMM), YMM: toMM(c.iy, gridMM)}
	}
	return board.Track{NetID: netID, Layer: layer, Points: points, WidthMM: rule.MinWidthMM}
}

// ripLowestPriorityNeighbor rips up the lowest-priority already-routed net
// within a sliding window ahead of the failing net, per spec.md §4.4 step
// 4, so it can be retried in a new order.
func (e *Engine) ripLowestPriorityNeighbor(b *board.Board, nl *netlist.Netlist, grid *obstacleGrid, ordered []string, failingIndex int) string {
	window := 5
	lowestPriority := -1
	lowestIdx := -1
	for j := 0; j < failingIndex; j++ {
		if failingIndex-j > window {
			continue
		}
		net := nl.Nets[ordered[j]]
		p := classPriority(net.Class)
		if p > lowestPriority {
			lowestPriority = p
			lowestIdx = j
		}
	}
	if lowestIdx < 0 {
		return ""
	}

	victim := ordered[lowestIdx]
	grid.release(victim)

	kept := b.Tracks[:0]
	for _, t := range b.Tracks {
		if t.NetID != victim {
			kept = append(kept, t)
		}
	}
	b.Tracks = kept

	keptVias := b.Vias[:0]
	for _, v := range b.Vias {
		if v.NetID != victim {
			keptVias = append(keptVias, v)
		}
	}
	b.Vias = keptVias

	return victim
}
