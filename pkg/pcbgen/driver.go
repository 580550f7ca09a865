package pcbgen

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"

	"github.com/dshills/pcbgen/pkg/backend"
	"github.com/dshills/pcbgen/pkg/board"
	"github.com/dshills/pcbgen/pkg/netlist"
	"github.com/dshills/pcbgen/pkg/pcberr"
	"github.com/dshills/pcbgen/pkg/placement"
	"github.com/dshills/pcbgen/pkg/routing"
	"github.com/dshills/pcbgen/pkg/validation"
	"github.com/dshills/pcbgen/pkg/zones"
)

// State is a board's position in the pipeline's state machine
// (spec.md §4.7): Empty -> NetlistLoaded -> Placed -> Routed -> Zoned ->
// Validated, terminating at Finalized or Failed.
type State int

const (
	StateEmpty State = iota
	StateNetlistLoaded
	StatePlaced
	StateRouted
	StateZoned
	StateValidated
	StateFinalized
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateEmpty:
		return "empty"
	case StateNetlistLoaded:
		return "netlist_loaded"
	case StatePlaced:
		return "placed"
	case StateRouted:
		return "routed"
	case StateZoned:
		return "zoned"
	case StateValidated:
		return "validated"
	case StateFinalized:
		return "finalized"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Result is what Run returns on every path, successful or not: the board
// in whatever state it reached, the last validation report produced (nil
// if validation never ran), and the final State.
type Result struct {
	Board  *board.Board
	Report *validation.ValidationReport
	State  State
}

// Driver sequences the five generation stages and manages the bounded
// refinement loop. Grounded on the teacher's DefaultGenerator.Generate
// orchestration shape, substituting the PCB domain's own stage engines
// for the dungeon pipeline's synthesis/embedding/carving/content passes.
type Driver struct {
	cfg              *Config
	placementEngine  *placement.Engine
	routingEngine    *routing.Engine
	zoneSynthesizer  *zones.Synthesizer
	validationEngine *validation.Engine
	logger           *logrus.Logger

	refinementIterations prometheus.Counter
	stageDuration         *prometheus.CounterVec
}

// NewDriver builds a Driver bound to cfg. A nil cfg falls back to
// DefaultConfig(). Metrics registration failures are swallowed: the
// prometheus counters are advisory per spec.md §5 and must never block
// pipeline correctness if collection is unavailable.
func NewDriver(cfg *Config) *Driver {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})

	d := &Driver{
		cfg:              cfg,
		placementEngine:  placement.New(&cfg.Placement),
		routingEngine:    routing.New(&cfg.Routing),
		zoneSynthesizer:  zones.New(&cfg.Zones),
		validationEngine: validation.New(&cfg.Validation),
		logger:           logger,
		refinementIterations: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "pcbgen_refinement_iterations_total",
			Help: "Total refinement loop iterations across all runs.",
		}),
		stageDuration: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "pcbgen_stage_passes_total",
			Help: "Completed stage passes by stage name.",
		}, []string{"stage"}),
	}
	_ = prometheus.Register(d.refinementIterations)
	_ = prometheus.Register(d.stageDuration)
	return d
}

// Run drives a netlist through the full pipeline to Finalized or Failed.
// validateOnly, when true, returns immediately after the first pass's
// Validation stage without entering the refinement loop, matching the
// CLI's --validate-only mode.
func (d *Driver) Run(ctx context.Context, nl *netlist.Netlist, validateOnly bool) (*Result, error) {
	b, err := d.newBoard()
	if err != nil {
		return &Result{State: StateFailed}, fmt.Errorf("constructing board: %w", err)
	}
	state := StateNetlistLoaded
	d.logger.WithField("state", state).Info("netlist loaded")

	if err := ctx.Err(); err != nil {
		return &Result{Board: b, State: state}, err
	}

	if err := d.placementEngine.Place(b, nl); err != nil {
		d.logger.WithError(err).Error("placement infeasible")
		return &Result{Board: b, State: StateFailed}, err
	}
	state = StatePlaced
	d.stageDuration.WithLabelValues("placement").Inc()
	d.logger.WithField("state", state).Info("placement complete")

	var report *validation.ValidationReport
	var lastIssueCount = -1

	for iteration := 0; ; iteration++ {
		if err := ctx.Err(); err != nil {
			if report != nil {
				report.Exhausted = true
			}
			return &Result{Board: b, Report: report, State: state}, err
		}

		b.Tracks = nil
		b.Vias = nil
		b.Zones = nil

		if _, err := d.routingEngine.Route(b, nl); err != nil {
			return &Result{Board: b, State: StateFailed}, fmt.Errorf("routing: %w", err)
		}
		state = StateRouted
		d.stageDuration.WithLabelValues("routing").Inc()

		if err := d.zoneSynthesizer.Synthesize(b, nl); err != nil {
			return &Result{Board: b, State: StateFailed}, fmt.Errorf("zone synthesis: %w", err)
		}
		state = StateZoned
		d.stageDuration.WithLabelValues("zones").Inc()

		report = d.validationEngine.Validate(b, nl)
		state = StateValidated
		d.stageDuration.WithLabelValues("validation").Inc()
		d.logger.WithFields(logrus.Fields{
			"state":       state,
			"iteration":   iteration,
			"issue_count": len(report.Issues),
			"is_valid":    report.IsValid,
		}).Info("validation pass complete")

		if validateOnly {
			return &Result{Board: b, Report: report, State: state}, nil
		}
		if report.IsValid {
			return &Result{Board: b, Report: report, State: StateFinalized}, nil
		}

		if iteration >= d.cfg.RefinementBudget {
			report.Exhausted = true
			return &Result{Board: b, Report: report, State: StateFailed},
				&pcberr.BudgetExhausted{Iterations: iteration, Budget: d.cfg.RefinementBudget}
		}

		errorCount := countErrorOrCritical(report)
		if errorCount == lastIssueCount {
			// Remediation made no progress last round: further
			// iterations would only repeat it, so stop early rather
			// than burn the remaining budget.
			report.Exhausted = true
			return &Result{Board: b, Report: report, State: StateFailed},
				&pcberr.ValidationFailure{IssueCount: errorCount}
		}
		lastIssueCount = errorCount

		d.refinementIterations.Inc()
		placementTouched := applyRemediation(b, nl, report, &d.cfg.Routing)
		if placementTouched {
			state = StatePlaced
		}
	}
}

func countErrorOrCritical(report *validation.ValidationReport) int {
	count := 0
	for _, iss := range report.Issues {
		if iss.Severity == validation.SeverityError || iss.Severity == validation.SeverityCritical {
			count++
		}
	}
	return count
}

// Finalize drains a Finalized board through be, placing every footprint,
// track, via, and zone and then persisting. Callers invoke it after Run
// returns a StateFinalized Result; the driver never calls a backend
// itself (spec.md §6: the backend is a caller-supplied outbound
// capability, not an internal dependency of the state machine).
func Finalize(b *board.Board, be backend.BoardBackend) (string, error) {
	loc, err := backend.Emit(b, be)
	if err != nil {
		return "", fmt.Errorf("finalizing via backend: %w", err)
	}
	return loc, nil
}

func (d *Driver) newBoard() (*board.Board, error) {
	var b *board.Board
	var err error
	if d.cfg.Preset == "custom" {
		layers := d.cfg.CustomLayers
		if layers == 0 {
			layers = 2
		}
		b = board.NewCustom(d.cfg.CustomWidthMM, d.cfg.CustomHeightMM, layers)
	} else {
		b, err = board.NewFromPreset(d.cfg.Preset)
		if err != nil {
			return nil, err
		}
	}
	b.Rules = d.cfg.DesignRules
	return b, nil
}
