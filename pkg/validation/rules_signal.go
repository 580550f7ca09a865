package validation

import (
	"fmt"
	"math"

	"github.com/dshills/pcbgen/pkg/board"
	"github.com/dshills/pcbgen/pkg/netlist"
)

// checkSignalIntegrity flags impedance-controlled nets outside tolerance
// and parallel-run crosstalk exposure between same-layer tracks on
// different nets.
func checkSignalIntegrity(b *board.Board, nl *netlist.Netlist, cfg *Config) []Issue {
	var issues []Issue

	for _, netID := range nl.IterNets() {
		net := nl.Nets[netID]
		if net.Class != netlist.ClassHighSpeed {
			continue
		}
		for _, t := range b.TracksForNet(netID) {
			z := estimateImpedanceOhm(t.WidthMM)
			if math.Abs(z-50) > cfg.ImpedanceToleranceOhm {
				issues = append(issues, Issue{
					Severity: SeverityWarning, Category: CategorySignal,
					Message:      fmt.Sprintf("track on net %s estimated at %.1f ohm, outside the %.1f ohm tolerance band around 50 ohm", netID, z, cfg.ImpedanceToleranceOhm),
					Suggestion:   "adjust trace width or layer stack-up to bring impedance into tolerance",
					AffectedNets: []string{netID},
				})
			}
		}
	}

	for i := 0; i < len(b.Tracks); i++ {
		for j := i + 1; j < len(b.Tracks); j++ {
			a, c := b.Tracks[i], b.Tracks[j]
			if a.NetID == c.NetID || a.Layer != c.Layer {
				continue
			}
			runLen, spacing := parallelRun(a, c)
			if runLen <= 0 || spacing <= 0 {
				continue
			}
			crosstalk := runLen / spacing / 1000
			if crosstalk > cfg.MaxCrosstalk {
				issues = append(issues, Issue{
					Severity: cfg.bucketSeverity(crosstalk), Category: CategorySignal,
					Message:      fmt.Sprintf("nets %s and %s run parallel for %.1f mm at %.2f mm spacing (crosstalk proxy %.2f)", a.NetID, c.NetID, runLen, spacing, crosstalk),
					Suggestion:   "increase spacing or insert a grounded guard trace",
					AffectedNets: []string{a.NetID, c.NetID},
				})
			}
		}
	}

	return issues
}

// estimateImpedanceOhm is a coarse microstrip approximation, not a field
// solver: impedance falls as trace width grows, centered near 50 ohm at
// a nominal 0.3mm width.
func estimateImpedanceOhm(widthMM float64) float64 {
	if widthMM <= 0 {
		return 0
	}
	return 50 * (0.3 / widthMM)
}

// parallelRun returns the overlapping run length and minimum spacing
// between two same-layer tracks' point sequences, treating each as a
// polyline of straight segments.
func parallelRun(a, c board.Track) (runLen, minSpacing float64) {
	minSpacing = math.Inf(1)
	for i := 0; i+1 < len(a.Points); i++ {
		for j := 0; j+1 < len(c.Points); j++ {
			segLen, dist := segmentProximity(a.Points[i], a.Points[i+1], c.Points[j], c.Points[j+1])
			if dist < minSpacing {
				minSpacing = dist
			}
			runLen += segLen
		}
	}
	if math.IsInf(minSpacing, 1) {
		return 0, 0
	}
	return runLen, minSpacing
}

// segmentProximity returns the shorter segment's length and the distance
// between the two segments' midpoints, a cheap proxy adequate for a
// parallel-run heuristic rather than exact segment-to-segment distance.
func segmentProximity(a0, a1, b0, b1 board.Point) (length, distance float64) {
	lenA := math.Hypot(a1.XMM-a0.XMM, a1.YMM-a0.YMM)
	lenB := math.Hypot(b1.XMM-b0.XMM, b1.YMM-b0.YMM)
	length = math.Min(lenA, lenB)
	midA := board.Point{XMM: (a0.XMM + a1.XMM) / 2, YMM: (a0.YMM + a1.YMM) / 2}
	midB := board.Point{XMM: (b0.XMM + b1.XMM) / 2, YMM: (b0.YMM + b1.YMM) / 2}
	distance = math.Hypot(midA.XMM-midB.XMM, midA.YMM-midB.YMM)
	return length, distance
}
