package validation

import (
	"fmt"

	"github.com/dshills/pcbgen/pkg/board"
	"github.com/dshills/pcbgen/pkg/netlist"
	"github.com/dshills/pcbgen/pkg/placement"
	"github.com/dshills/pcbgen/pkg/routing"
)

// checkGeometricDRC enforces per-class track width, via drill-to-diameter,
// component edge clearance, and pairwise component spacing.
func checkGeometricDRC(b *board.Board, nl *netlist.Netlist, cfg *Config) []Issue {
	var issues []Issue

	for _, t := range b.Tracks {
		net, ok := nl.Nets[t.NetID]
		if !ok {
			continue
		}
		rule := routing.RuleFor(net.Class)
		if t.WidthMM < rule.MinWidthMM {
			issues = append(issues, Issue{
				Severity: SeverityError, Category: CategoryGeometricDRC,
				Message:      fmt.Sprintf("track on net %s is %.3f mm wide, below the %.3f mm class minimum", t.NetID, t.WidthMM, rule.MinWidthMM),
				Suggestion:   "re-route with the class minimum width",
				AffectedNets: []string{t.NetID},
			})
		}
	}

	for _, v := range b.Vias {
		if v.DrillMM >= v.OuterDiaMM {
			issues = append(issues, Issue{
				Severity: SeverityError, Category: CategoryGeometricDRC,
				Message:      fmt.Sprintf("via on net %s has drill %.3f mm >= outer diameter %.3f mm", v.NetID, v.DrillMM, v.OuterDiaMM),
				Suggestion:   "increase the via outer diameter or reduce the drill size",
				AffectedNets: []string{v.NetID},
			})
		}
	}

	edge := b.Rules.EdgeClearanceMM
	for _, c := range b.Components {
		w, h := placement.FootprintSizeMM(c.Kind)
		if c.Position.XMM-w/2 < edge || c.Position.YMM-h/2 < edge ||
			c.Position.XMM+w/2 > b.WidthMM-edge || c.Position.YMM+h/2 > b.HeightMM-edge {
			issues = append(issues, Issue{
				Severity: SeverityError, Category: CategoryGeometricDRC,
				Message:             fmt.Sprintf("component %s lies within the %.2f mm edge clearance", c.ID, edge),
				Suggestion:          "move the component further from the board outline",
				AffectedComponents:  []string{c.ID},
			})
		}
	}

	spacing := b.Rules.MinComponentSpacingMM
	for i := 0; i < len(b.Components); i++ {
		for j := i + 1; j < len(b.Components); j++ {
			a, c := b.Components[i], b.Components[j]
			aw, ah := placement.FootprintSizeMM(a.Kind)
			cw, ch := placement.FootprintSizeMM(c.Kind)
			if rectOverlap(a.Position.XMM, a.Position.YMM, aw, ah, c.Position.XMM, c.Position.YMM, cw, ch, spacing) {
				issues = append(issues, Issue{
					Severity: SeverityError, Category: CategoryGeometricDRC,
					Message:             fmt.Sprintf("components %s and %s violate minimum spacing of %.2f mm", a.ID, c.ID, spacing),
					Suggestion:          "re-run placement with a larger min_component_spacing or relocate one part",
					AffectedComponents:  []string{a.ID, c.ID},
				})
			}
		}
	}

	return issues
}

func rectOverlap(x1, y1, w1, h1, x2, y2, w2, h2, spacing float64) bool {
	ax0, ay0, ax1, ay1 := x1-w1/2-spacing/2, y1-h1/2-spacing/2, x1+w1/2+spacing/2, y1+h1/2+spacing/2
	bx0, by0, bx1, by1 := x2-w2/2-spacing/2, y2-h2/2-spacing/2, x2+w2/2+spacing/2, y2+h2/2+spacing/2
	return ax0 < bx1 && ax1 > bx0 && ay0 < by1 && ay1 > by0
}
