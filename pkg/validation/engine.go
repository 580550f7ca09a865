// Package validation implements the Validation Engine described above in
// types.go. Its orchestrator runs every enabled rule module against a
// frozen Board/Netlist pair and merges their findings into one report.
package validation

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sourcegraph/conc/pool"

	"github.com/dshills/pcbgen/pkg/board"
	"github.com/dshills/pcbgen/pkg/netlist"
)

type ruleFunc func(*board.Board, *netlist.Netlist, *Config) []Issue

type ruleModule struct {
	name    string
	enabled func(*Config) bool
	run     ruleFunc
}

// modules lists every rule module in a fixed order. Merge order always
// follows this slice regardless of which goroutine finishes first, so a
// report's Issues are deterministic across runs.
var modules = []ruleModule{
	{"connectivity", func(c *Config) bool { return c.Connectivity.Enabled }, checkConnectivity},
	{"geometric_drc", func(c *Config) bool { return c.GeometricDRC.Enabled }, checkGeometricDRC},
	{"power_distribution", func(c *Config) bool { return c.Power.Enabled }, checkPowerDistribution},
	{"ground", func(c *Config) bool { return c.Ground.Enabled }, checkGround},
	{"signal_integrity", func(c *Config) bool { return c.Signal.Enabled }, checkSignalIntegrity},
	{"emi_emc", func(c *Config) bool { return c.EMI.Enabled }, checkEMI},
	{"thermal", func(c *Config) bool { return c.Thermal.Enabled }, checkThermal},
	{"audio_specific", func(c *Config) bool { return c.Audio.Enabled }, checkAudio},
	{"manufacturing", func(c *Config) bool { return c.Manufacturing.Enabled }, checkManufacturing},
}

// Engine runs the rule module catalog against a Board.
type Engine struct {
	cfg *Config
}

// New builds a validation Engine bound to cfg. A nil cfg falls back to
// DefaultConfig().
func New(cfg *Config) *Engine {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return &Engine{cfg: cfg}
}

// Validate runs every enabled rule module concurrently (each is a pure
// function of the already-frozen board/netlist, so there is nothing to
// synchronize beyond collecting results) and returns the aggregated
// report in fixed module order.
func (e *Engine) Validate(b *board.Board, nl *netlist.Netlist) *ValidationReport {
	results := make([][]Issue, len(modules))
	p := pool.New().WithMaxGoroutines(len(modules))
	for i, m := range modules {
		i, mod := i, m
		p.Go(func() {
			if !mod.enabled(e.cfg) {
				return
			}
			results[i] = mod.run(b, nl, e.cfg)
		})
	}
	p.Wait()

	var issues []Issue
	for _, r := range results {
		issues = append(issues, r...)
	}

	return &ValidationReport{
		ID:        reportID(issues),
		IsValid:   computeIsValid(issues),
		Timestamp: timestamp(),
		Issues:    issues,
	}
}

// timestamp is the engine's single indirection point for "now", kept
// separate so callers assembling deterministic golden-file tests can
// substitute a fixed value by constructing ValidationReport directly.
func timestamp() time.Time {
	return time.Now()
}

// reportID derives a stable identifier from the issue set itself, so
// re-validating an unchanged board is idempotent and two runs over the
// same input produce the same report id (the Timestamp still differs). uuid.NewSHA1
// gives this content hash a conventional UUID shape without pulling in a
// bare non-UUID correlation id.
func reportID(issues []Issue) string {
	var sb strings.Builder
	for _, iss := range issues {
		fmt.Fprintf(&sb, "%d|%s|%s|%s|%v|%v\n",
			iss.Severity, iss.Category, iss.Message, iss.Suggestion,
			iss.AffectedComponents, iss.AffectedNets)
	}
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(sb.String())).String()
}
