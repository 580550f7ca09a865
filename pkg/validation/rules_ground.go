package validation

import (
	"fmt"
	"math"

	"github.com/dshills/pcbgen/pkg/board"
	"github.com/dshills/pcbgen/pkg/netlist"
)

// checkGround validates ground plane coverage, a loop-area proxy from
// track bounding boxes, and minimum stitching connections per ground net.
func checkGround(b *board.Board, nl *netlist.Netlist, cfg *Config) []Issue {
	var issues []Issue

	for _, netID := range nl.IterNets() {
		net := nl.Nets[netID]
		if net.Class != netlist.ClassGround {
			continue
		}

		coverage := zoneCoverage(b, netID, 1.0)
		if coverage > 0 && coverage < cfg.MinGroundPlaneCoverage {
			issues = append(issues, Issue{
				Severity: cfg.bucketSeverity(1 - coverage), Category: CategoryGround,
				Message:      fmt.Sprintf("ground net %s plane coverage %.0f%% is below the %.0f%% threshold", netID, coverage*100, cfg.MinGroundPlaneCoverage*100),
				Suggestion:   "enlarge the ground pour or reduce foreign-net keepouts",
				AffectedNets: []string{netID},
			})
		}

		area := loopAreaMM2(b, netID)
		if area > cfg.MaxGroundLoopAreaMM2 {
			issues = append(issues, Issue{
				Severity: SeverityWarning, Category: CategoryGround,
				Message:      fmt.Sprintf("ground net %s has an estimated loop area of %.0f mm^2, above %.0f mm^2", netID, area, cfg.MaxGroundLoopAreaMM2),
				Suggestion:   "route ground returns closer to their signal path",
				AffectedNets: []string{netID},
			})
		}

		connections := len(nl.Nets[netID].Endpoints)
		if connections < cfg.MinGroundConnections {
			issues = append(issues, Issue{
				Severity: SeverityWarning, Category: CategoryGround,
				Message:      fmt.Sprintf("ground net %s has only %d connection(s), below the minimum of %d", netID, connections, cfg.MinGroundConnections),
				Suggestion:   "add an explicit ground stitching connection",
				AffectedNets: []string{netID},
			})
		}
	}

	return issues
}

// loopAreaMM2 estimates the bounding-box area spanned by a net's tracks,
// a coarse proxy for true current-loop area.
func loopAreaMM2(b *board.Board, netID string) float64 {
	tracks := b.TracksForNet(netID)
	if len(tracks) == 0 {
		return 0
	}
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, t := range tracks {
		for _, p := range t.Points {
			minX, maxX = math.Min(minX, p.XMM), math.Max(maxX, p.XMM)
			minY, maxY = math.Min(minY, p.YMM), math.Max(maxY, p.YMM)
		}
	}
	return (maxX - minX) * (maxY - minY)
}
