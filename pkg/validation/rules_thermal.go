package validation

import (
	"fmt"
	"math"

	"github.com/dshills/pcbgen/pkg/board"
	"github.com/dshills/pcbgen/pkg/netlist"
)

var dissipatingKinds = map[string]bool{
	"regulator": true, "power-transistor": true, "opamp": true, "vca": true,
}

// checkThermal flags an estimated component temperature above the board's
// ambient-plus-rise budget and overly dense clusters of heat-dissipating
// parts that would compound each other's thermal rise.
func checkThermal(b *board.Board, nl *netlist.Netlist, cfg *Config) []Issue {
	var issues []Issue

	const ambientC = 25.0
	for _, c := range b.Components {
		if !dissipatingKinds[c.Kind] {
			continue
		}
		rise := estimatedThermalRiseC(b, c)
		temp := ambientC + rise
		if temp > cfg.MaxComponentTempC {
			issues = append(issues, Issue{
				Severity: cfg.bucketSeverity((temp - ambientC) / (cfg.MaxComponentTempC - ambientC)), Category: CategoryThermal,
				Message:             fmt.Sprintf("component %s estimated at %.0f C, above the %.0f C budget", c.ID, temp, cfg.MaxComponentTempC),
				Suggestion:          "add a thermal relief pour or increase copper area under this part",
				AffectedComponents:  []string{c.ID},
			})
		}
	}

	for _, c := range b.Components {
		if !dissipatingKinds[c.Kind] {
			continue
		}
		count := 0
		for _, other := range b.Components {
			if other.ID == c.ID || !dissipatingKinds[other.Kind] {
				continue
			}
			dx, dy := other.Position.XMM-c.Position.XMM, other.Position.YMM-c.Position.YMM
			if math.Hypot(dx, dy) <= cfg.ThermalDensityRadiusMM {
				count++
			}
		}
		if count >= cfg.MaxDissipatingComponents {
			issues = append(issues, Issue{
				Severity:            SeverityWarning,
				Category:            CategoryThermal,
				Message:             fmt.Sprintf("component %s has %d other heat-dissipating parts within %.0f mm", c.ID, count, cfg.ThermalDensityRadiusMM),
				Suggestion:          "spread dissipating components further apart or add ventilation cutouts",
				AffectedComponents:  []string{c.ID},
			})
		}
	}

	return issues
}

// estimatedThermalRiseC is a coarse proxy: a fixed per-kind dissipation
// figure diffused over the copper zone area already touching the part's
// net, so a part sitting on more copper runs cooler.
func estimatedThermalRiseC(b *board.Board, c *netlist.Component) float64 {
	baseRiseC := map[string]float64{
		"regulator": 30, "power-transistor": 25, "opamp": 8, "vca": 10,
	}[c.Kind]
	if baseRiseC == 0 {
		return 0
	}
	nearbyZoneCells := 0
	for _, z := range b.Zones {
		for _, p := range z.Outline {
			if math.Hypot(p.XMM-c.Position.XMM, p.YMM-c.Position.YMM) <= 5 {
				nearbyZoneCells++
				break
			}
		}
	}
	if nearbyZoneCells == 0 {
		return baseRiseC
	}
	relief := math.Min(float64(nearbyZoneCells)*0.5, baseRiseC*0.6)
	return baseRiseC - relief
}
