package validation

import (
	"fmt"

	"github.com/dshills/pcbgen/pkg/board"
	"github.com/dshills/pcbgen/pkg/netlist"
)

// checkEMI flags oversized power/ground loop area (the dominant radiated
// emissions driver on a small mixed-signal board) and the absence of any
// ground plane layer at all, which leaves every signal unshielded.
func checkEMI(b *board.Board, nl *netlist.Netlist, cfg *Config) []Issue {
	var issues []Issue

	hasGroundPlane := false
	for _, l := range b.Layers {
		if l.Role == board.RoleGround {
			hasGroundPlane = true
			break
		}
	}
	if !hasGroundPlane {
		issues = append(issues, Issue{
			Severity:   SeverityWarning,
			Category:   CategoryEMI,
			Message:    "board has no dedicated ground plane layer",
			Suggestion: "dedicate an inner layer to a ground pour to shield signal layers",
		})
	}

	for _, netID := range nl.IterNets() {
		net := nl.Nets[netID]
		if net.Class != netlist.ClassPower && net.Class != netlist.ClassGround {
			continue
		}
		area := loopAreaMM2(b, netID)
		if area > cfg.MaxLoopAreaMM2 {
			issues = append(issues, Issue{
				Severity: cfg.bucketSeverity(area / cfg.MaxLoopAreaMM2), Category: CategoryEMI,
				Message:      fmt.Sprintf("net %s spans an estimated %.0f mm^2 loop, above the %.0f mm^2 emissions budget", netID, area, cfg.MaxLoopAreaMM2),
				Suggestion:   "route the return path directly beneath the supply trace",
				AffectedNets: []string{netID},
			})
		}
	}

	return issues
}
