package pcbgen

import (
	"math"

	"github.com/dshills/pcbgen/pkg/board"
	"github.com/dshills/pcbgen/pkg/netlist"
	"github.com/dshills/pcbgen/pkg/routing"
	"github.com/dshills/pcbgen/pkg/validation"
)

// remediationOrder is the fixed priority spec.md §5 requires to avoid
// oscillation: connectivity fixes are tried first, then geometric DRC
// (clearance and density), then signal integrity, then audio-specific,
// then manufacturing.
var remediationOrder = []validation.Category{
	validation.CategoryConnectivity,
	validation.CategoryGeometricDRC,
	validation.CategorySignal,
	validation.CategoryAudio,
	validation.CategoryManufacturing,
}

// applyRemediation inspects the highest-priority unresolved category in
// report and mutates the board/routing config accordingly. It returns
// true if it touched placement (the driver must then replay from
// Placed rather than Routed).
func applyRemediation(b *board.Board, nl *netlist.Netlist, report *validation.ValidationReport, routeCfg *routing.Config) bool {
	for _, category := range remediationOrder {
		issues := issuesInCategory(report, category)
		if len(issues) == 0 {
			continue
		}
		switch category {
		case validation.CategoryConnectivity:
			remediateConnectivity(routeCfg)
			return false
		case validation.CategoryGeometricDRC:
			return remediateGeometricDRC(b, nl, issues, routeCfg)
		case validation.CategorySignal:
			remediateSignal(nl, issues, routeCfg)
			return false
		default:
			// Audio-specific and manufacturing issues have no automatic
			// board mutation mapped; they surface in the report for a
			// human to address. The driver still runs one more pass, and
			// the unchanged error count then ends the run.
			return false
		}
	}
	return false
}

// remediateConnectivity widens the routing search budget for the next
// pass: more reroute attempts and a smaller penalty for non-preferred
// layers, giving the A* search more room to find a path.
func remediateConnectivity(routeCfg *routing.Config) {
	routeCfg.MaxRerouteAttempts++
	routeCfg.MaxSearchExpansions += 50000
	if routeCfg.NonPreferredLayerPenalty > 1.0 {
		routeCfg.NonPreferredLayerPenalty -= 0.25
	}
}

// remediateSignal moves the first net of each crosstalk-flagged pair onto
// the opposite layer from wherever it currently routes, so the next
// routing pass separates the parallel run onto different copper and the
// signal-integrity module stops flagging it (spec.md §8 scenario 3).
func remediateSignal(nl *netlist.Netlist, issues []validation.Issue, routeCfg *routing.Config) {
	if routeCfg.NetLayerOverride == nil {
		routeCfg.NetLayerOverride = make(map[string]string)
	}
	for _, iss := range issues {
		if len(iss.AffectedNets) == 0 {
			continue
		}
		netID := iss.AffectedNets[0]
		net, ok := nl.Nets[netID]
		if !ok {
			continue
		}
		current, overridden := routeCfg.NetLayerOverride[netID]
		if !overridden {
			current = routing.RuleFor(net.Class).PreferredLayer
		}
		routeCfg.NetLayerOverride[netID] = oppositeLayer(current)
	}
}

// oppositeLayer flips between the board's two outer signal layers, the
// only pair guaranteed to exist regardless of layer count.
func oppositeLayer(layer string) string {
	if layer == "front" {
		return "back"
	}
	return "front"
}

// remediateGeometricDRC splits net-tied issues (track width, via geometry)
// from component-tied issues (edge clearance, spacing). Net-tied issues
// lower routeCfg.ViaPreference by 10% (floor 0.5); no clearance halo is
// widened and no track is ripped up here. Component-tied issues nudge the
// offending component away from its nearest neighbor and report that
// placement was touched.
func remediateGeometricDRC(b *board.Board, nl *netlist.Netlist, issues []validation.Issue, routeCfg *routing.Config) bool {
	touchedPlacement := false
	for _, iss := range issues {
		if len(iss.AffectedComponents) > 0 {
			for _, compID := range iss.AffectedComponents {
				if nudgeComponent(b, nl, compID) {
					touchedPlacement = true
				}
			}
			continue
		}
		if len(iss.AffectedNets) > 0 {
			routeCfg.ViaPreference *= 0.9
			if routeCfg.ViaPreference < 0.5 {
				routeCfg.ViaPreference = 0.5
			}
		}
	}
	return touchedPlacement
}

// nudgeComponent is the one documented exception to a placed component's
// position being frozen after the Placement stage (spec.md §4.7's
// "nudge C and re-run routing for its neighborhood" remediation). It
// moves the component a small fixed step directly away from its nearest
// neighbor, clamped to stay within the board's edge clearance.
func nudgeComponent(b *board.Board, nl *netlist.Netlist, componentID string) bool {
	comp, ok := nl.Components[componentID]
	if !ok {
		return false
	}
	const stepMM = 1.0

	nearestDX, nearestDY, nearestDist := 0.0, 0.0, math.Inf(1)
	for _, other := range b.Components {
		if other.ID == comp.ID {
			continue
		}
		dx, dy := comp.Position.XMM-other.Position.XMM, comp.Position.YMM-other.Position.YMM
		dist := math.Hypot(dx, dy)
		if dist < nearestDist {
			nearestDist, nearestDX, nearestDY = dist, dx, dy
		}
	}
	if math.IsInf(nearestDist, 1) || nearestDist == 0 {
		return false
	}

	dirX, dirY := nearestDX/nearestDist, nearestDY/nearestDist
	edge := b.Rules.EdgeClearanceMM
	newX := clamp(comp.Position.XMM+dirX*stepMM, edge, b.WidthMM-edge)
	newY := clamp(comp.Position.YMM+dirY*stepMM, edge, b.HeightMM-edge)
	comp.Position = netlist.Position{XMM: newX, YMM: newY}
	return true
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func issuesInCategory(report *validation.ValidationReport, category validation.Category) []validation.Issue {
	var out []validation.Issue
	for _, iss := range report.Issues {
		if iss.Category != category {
			continue
		}
		if iss.Severity != validation.SeverityError && iss.Severity != validation.SeverityCritical {
			continue
		}
		out = append(out, iss)
	}
	return out
}
