package validation

import (
	"fmt"
	"math"

	"github.com/dshills/pcbgen/pkg/board"
	"github.com/dshills/pcbgen/pkg/netlist"
)

var activeICKinds = map[string]bool{
	"opamp": true, "ic-generic": true, "dac": true, "adc": true,
	"vco": true, "vcf": true, "vca": true, "logic": true, "timer": true,
}

// zoneCoverage estimates the fraction of the board area covered by zones
// on the given net, from the unit-cell raster the Zone Synthesizer emits.
func zoneCoverage(b *board.Board, netID string, gridMM float64) float64 {
	count := 0
	for _, z := range b.Zones {
		if z.NetID == netID {
			count++
		}
	}
	cellArea := gridMM * gridMM
	return float64(count) * cellArea / (b.WidthMM * b.HeightMM)
}

// checkPowerDistribution validates power plane coverage, a coarse voltage
// drop/current density proxy, and decoupling capacitor presence near every
// active IC's power pin.
func checkPowerDistribution(b *board.Board, nl *netlist.Netlist, cfg *Config) []Issue {
	var issues []Issue

	for _, netID := range nl.IterNets() {
		net := nl.Nets[netID]
		if net.Class != netlist.ClassPower {
			continue
		}
		coverage := zoneCoverage(b, netID, 1.0)
		if coverage > 0 && coverage < cfg.MinPowerPlaneCoverage {
			issues = append(issues, Issue{
				Severity: cfg.bucketSeverity(1 - coverage), Category: CategoryPower,
				Message:      fmt.Sprintf("power net %s plane coverage %.0f%% is below the %.0f%% threshold", netID, coverage*100, cfg.MinPowerPlaneCoverage*100),
				Suggestion:   "widen the zone outline or relax foreign-net clearance",
				AffectedNets: []string{netID},
			})
		}

		span := netSpanMM(nl, net)
		dropEstimate := span * cfg.MaxCurrentDensityAPerMM * 0.02
		if dropEstimate > cfg.MaxVoltageDropV {
			issues = append(issues, Issue{
				Severity: SeverityWarning, Category: CategoryPower,
				Message:      fmt.Sprintf("estimated voltage drop on %s (%.3f V) exceeds %.3f V over its %.1f mm span", netID, dropEstimate, cfg.MaxVoltageDropV, span),
				Suggestion:   "widen the power trace or add a local plane pour",
				AffectedNets: []string{netID},
			})
		}
	}

	for _, c := range b.Components {
		if !activeICKinds[c.Kind] {
			continue
		}
		if !hasNearbyDecouplingCap(b, nl, c, cfg.DecouplingCapDistanceMM) {
			issues = append(issues, Issue{
				Severity:            SeverityWarning,
				Category:            CategoryPower,
				Message:             fmt.Sprintf("no decoupling capacitor found within %.1f mm of %s", cfg.DecouplingCapDistanceMM, c.ID),
				Suggestion:          "place a bulk/bypass capacitor closer to this IC's power pin",
				AffectedComponents:  []string{c.ID},
			})
		}
	}

	return issues
}

func hasNearbyDecouplingCap(b *board.Board, nl *netlist.Netlist, ic *netlist.Component, maxDistMM float64) bool {
	for _, other := range b.Components {
		if other.Kind != "capacitor" {
			continue
		}
		dx, dy := other.Position.XMM-ic.Position.XMM, other.Position.YMM-ic.Position.YMM
		if math.Hypot(dx, dy) <= maxDistMM {
			return true
		}
	}
	return false
}

// netSpanMM mirrors the routing package's helper: total Manhattan span of
// a net's endpoints, re-derived here to avoid a validation->routing data
// dependency beyond the class-rule table.
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
		minX, maxX = math.Min(minX, comp.Position.XMM), math.Max(maxX, comp.Position.XMM)
		minY, maxY = math.Min(minY, comp.Position.YMM), math.Max(maxY, comp.Position.YMM)
	}
	return (maxX - minX) + (maxY - minY)
}
