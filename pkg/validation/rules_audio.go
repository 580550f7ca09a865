package validation

import (
	"fmt"
	"math"

	"github.com/dshills/pcbgen/pkg/board"
	"github.com/dshills/pcbgen/pkg/netlist"
)

// checkAudio validates audio-net trace length against a frequency-response
// proxy and flags acute routing angles. Parasitic inductance is not
// modeled here, only the length-driven response estimate; sharper
// electromagnetic effects are left for a future module.
func checkAudio(b *board.Board, nl *netlist.Netlist, cfg *Config) []Issue {
	var issues []Issue

	maxFreqHz := 20000.0
	if cfg.HighPrecisionMode {
		maxFreqHz = 80000.0
	}

	for _, netID := range nl.IterNets() {
		net := nl.Nets[netID]
		if net.Class != netlist.ClassAudio {
			continue
		}

		lengthMM := trackLengthMM(b, netID)
		if lengthMM == 0 {
			continue
		}
		attenuationDB := estimateRolloffDB(lengthMM, maxFreqHz)
		if attenuationDB > cfg.FrequencyResponseToleranceDB {
			issues = append(issues, Issue{
				Severity: cfg.bucketSeverity(attenuationDB / (cfg.FrequencyResponseToleranceDB * 3)), Category: CategoryAudio,
				Message:      fmt.Sprintf("audio net %s (%.1f mm) estimated at %.2f dB rolloff by %.0f Hz, above the %.2f dB tolerance", netID, lengthMM, attenuationDB, maxFreqHz, cfg.FrequencyResponseToleranceDB),
				Suggestion:   "shorten the trace or move the source/destination closer together",
				AffectedNets: []string{netID},
			})
		}

		for _, t := range b.TracksForNet(netID) {
			if minAngle := minVertexAngleDeg(t.Points); minAngle < cfg.MinAudioTraceAngleDeg {
				issues = append(issues, Issue{
					Severity: SeverityWarning, Category: CategoryAudio,
					Message:      fmt.Sprintf("audio net %s has a %.0f degree routing angle, below the %.0f degree minimum", netID, minAngle, cfg.MinAudioTraceAngleDeg),
					Suggestion:   "replace the acute corner with two 45 degree bends",
					AffectedNets: []string{netID},
				})
			}
		}
	}

	return issues
}

func trackLengthMM(b *board.Board, netID string) float64 {
	total := 0.0
	for _, t := range b.TracksForNet(netID) {
		for i := 0; i+1 < len(t.Points); i++ {
			total += math.Hypot(t.Points[i+1].XMM-t.Points[i].XMM, t.Points[i+1].YMM-t.Points[i].YMM)
		}
	}
	return total
}

// estimateRolloffDB models the trace as a first-order RC-like low-pass
// formed by its distributed series resistance and the board's parasitic
// capacitance to ground, using nominal per-mm R and C figures for a
// 0.3mm copper trace over FR4.
func estimateRolloffDB(lengthMM, freqHz float64) float64 {
	const rPerMM = 0.0005   // ohm/mm, nominal 1oz 0.3mm trace
	const cPerMM = 0.05e-12 // farad/mm, nominal board parasitic
	r := rPerMM * lengthMM
	c := cPerMM * lengthMM
	if r == 0 || c == 0 {
		return 0
	}
	fCorner := 1 / (2 * math.Pi * r * c)
	if freqHz <= fCorner {
		return 0
	}
	return 20 * math.Log10(freqHz/fCorner)
}

// minVertexAngleDeg returns the sharpest interior angle formed by any
// three consecutive points of a polyline, or 180 (a straight run) if it
// has fewer than three points.
func minVertexAngleDeg(points []board.Point) float64 {
	minAngle := 180.0
	for i := 1; i+1 < len(points); i++ {
		a, b, c := points[i-1], points[i], points[i+1]
		v1x, v1y := a.XMM-b.XMM, a.YMM-b.YMM
		v2x, v2y := c.XMM-b.XMM, c.YMM-b.YMM
		len1, len2 := math.Hypot(v1x, v1y), math.Hypot(v2x, v2y)
		if len1 == 0 || len2 == 0 {
			continue
		}
		cosTheta := (v1x*v2x + v1y*v2y) / (len1 * len2)
		cosTheta = math.Max(-1, math.Min(1, cosTheta))
		angle := math.Acos(cosTheta) * 180 / math.Pi
		if angle < minAngle {
			minAngle = angle
		}
	}
	return minAngle
}
