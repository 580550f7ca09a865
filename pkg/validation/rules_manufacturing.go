package validation

import (
	"fmt"

	"github.com/dshills/pcbgen/pkg/board"
	"github.com/dshills/pcbgen/pkg/netlist"
)

const (
	minHoleDiameterMM    = 0.2
	minPadWidthMM        = 0.3
	minSilkWidthMM       = 0.1
	minSolderMaskWidthMM = 0.1
	minAnnularRingMM     = 0.1
)

// checkManufacturing enforces fabrication-house floor constraints: hole
// and pad minimums, annular ring, and fiducial presence for panelized or
// fine-pitch boards.
func checkManufacturing(b *board.Board, nl *netlist.Netlist, cfg *Config) []Issue {
	var issues []Issue

	for _, v := range b.Vias {
		if v.DrillMM < minHoleDiameterMM {
			issues = append(issues, Issue{
				Severity: SeverityError, Category: CategoryManufacturing,
				Message:      fmt.Sprintf("via on net %s has drill %.3f mm, below the fabrication floor of %.2f mm", v.NetID, v.DrillMM, minHoleDiameterMM),
				Suggestion:   "increase via drill size to meet fabrication capability",
				AffectedNets: []string{v.NetID},
			})
		}
		annular := (v.OuterDiaMM - v.DrillMM) / 2
		if annular < minAnnularRingMM {
			issues = append(issues, Issue{
				Severity: SeverityError, Category: CategoryManufacturing,
				Message:      fmt.Sprintf("via on net %s has a %.3f mm annular ring, below the %.2f mm floor", v.NetID, annular, minAnnularRingMM),
				Suggestion:   "increase the via outer diameter relative to its drill",
				AffectedNets: []string{v.NetID},
			})
		}
	}

	for _, t := range b.Tracks {
		if t.WidthMM < minPadWidthMM {
			issues = append(issues, Issue{
				Severity: SeverityWarning, Category: CategoryManufacturing,
				Message:      fmt.Sprintf("track on net %s is %.3f mm wide, near the fabrication floor of %.2f mm", t.NetID, t.WidthMM, minPadWidthMM),
				Suggestion:   "confirm the fabrication house supports this trace width before ordering",
				AffectedNets: []string{t.NetID},
			})
		}
	}

	if cfg.RequireFiducials {
		fiducialCount := 0
		for _, c := range b.Components {
			if c.Kind == "fiducial" {
				fiducialCount++
			}
		}
		if fiducialCount < cfg.MinFiducialCount {
			issues = append(issues, Issue{
				Severity:   SeverityError,
				Category:   CategoryManufacturing,
				Message:    fmt.Sprintf("board has %d fiducial(s), below the required minimum of %d", fiducialCount, cfg.MinFiducialCount),
				Suggestion: "add fiducial markers for automated pick-and-place alignment",
			})
		}
	}

	return issues
}
