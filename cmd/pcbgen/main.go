// Command pcbgen drives the PCB generation pipeline end to end: it loads
// a reference-format netlist JSON document and a YAML pipeline
// configuration, runs Netlist -> Placement -> Routing -> Zones ->
// Validation with bounded refinement, and persists the finished board
// through a BoardBackend emitter.
//
// Grounded on the teacher's cmd/dungeongen/main.go flag-and-run shape,
// restructured onto a single github.com/spf13/cobra root command whose
// flags select the mode (for example --validate-only).
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/dshills/pcbgen/pkg/backend"
	"github.com/dshills/pcbgen/pkg/board"
	"github.com/dshills/pcbgen/pkg/netlist/importer"
	"github.com/dshills/pcbgen/pkg/pcberr"
	"github.com/dshills/pcbgen/pkg/pcbgen"
	"github.com/dshills/pcbgen/pkg/registry"
	"github.com/dshills/pcbgen/pkg/validation"
)

// Exit codes distinguish failure stage per spec.md §6: 0 on Finalized,
// distinct non-zero codes for placement, validation, refinement-budget and
// backend failures so calling scripts can branch without parsing stderr.
// There is no routing code: unrouted nets surface as validation issues.
const (
	exitOK                = 0
	exitConfigError       = 1
	exitPlacementFailure  = 2
	exitValidationFailure = 3
	exitBudgetExhausted   = 4
	exitBackendError      = 5
)

var (
	netlistPath  string
	configPath   string
	registryPath string
	outputPath   string
	outputFormat string
	validateOnly bool
	verbose      bool
	deadline     time.Duration
)

func main() {
	root := newRootCmd()
	if err := root.Execute(); err != nil {
		os.Exit(exitCodeFor(err))
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "pcbgen",
		Short:         "Generate a fabrication-ready PCB from a netlist",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runGenerate,
	}
	cmd.Flags().StringVar(&netlistPath, "netlist", "", "Path to a reference-format netlist JSON document (required)")
	cmd.Flags().StringVar(&configPath, "config", "", "Path to a YAML pipeline configuration file (defaults apply if omitted)")
	cmd.Flags().StringVar(&registryPath, "registry", "", "Path to a YAML component registry catalog (built-in defaults if omitted)")
	cmd.Flags().StringVar(&outputPath, "output", "board.json", "Path to write the finalized board artifact")
	cmd.Flags().StringVar(&outputFormat, "format", "json", "Output backend: json or svg")
	cmd.Flags().BoolVar(&validateOnly, "validate-only", false, "Return after the first pass's Validation stage without refinement")
	cmd.Flags().BoolVar(&verbose, "verbose", false, "Raise the minimum logged severity from warning to info")
	cmd.Flags().DurationVar(&deadline, "deadline", 0, "Outer wall-clock deadline for the run (0 = no deadline)")
	_ = cmd.MarkFlagRequired("netlist")
	return cmd
}

func runGenerate(cmd *cobra.Command, args []string) error {
	logger := newLogger()

	reg := registry.NewDefault()
	if registryPath != "" {
		loaded, err := registry.Load(registryPath)
		if err != nil {
			return fmt.Errorf("loading registry: %w", err)
		}
		reg = loaded
	}

	f, err := os.Open(netlistPath)
	if err != nil {
		return fmt.Errorf("opening netlist: %w", err)
	}
	defer f.Close()

	nl, err := importer.ImportJSON(f, reg)
	if err != nil {
		return fmt.Errorf("importing netlist: %w", err)
	}

	cfg := pcbgen.DefaultConfig()
	if configPath != "" {
		loaded, err := pcbgen.LoadConfig(configPath)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		cfg = loaded
	}

	ctx := context.Background()
	var cancel context.CancelFunc
	if deadline > 0 {
		ctx, cancel = context.WithTimeout(ctx, deadline)
		defer cancel()
	}

	driver := pcbgen.NewDriver(cfg)
	start := time.Now()
	result, err := driver.Run(ctx, nl, validateOnly)
	elapsed := time.Since(start)

	logger.WithFields(logrus.Fields{
		"state":   result.State,
		"elapsed": elapsed,
	}).Info("pipeline run complete")

	if result.Report != nil {
		logReport(logger, result.Report)
	}

	if err != nil {
		return err
	}

	if result.State != pcbgen.StateFinalized {
		if validateOnly {
			fmt.Printf("validate-only pass complete: is_valid=%v issues=%d\n", result.Report.IsValid, len(result.Report.Issues))
			return nil
		}
		return &pcberr.ValidationFailure{IssueCount: len(result.Report.Issues)}
	}

	be, err := newBackend(outputFormat, result.Board)
	if err != nil {
		return err
	}
	loc, err := pcbgen.Finalize(result.Board, be)
	if err != nil {
		return err
	}
	fmt.Printf("board finalized: %s\n", loc)
	return nil
}

// newBackend resolves the --format flag to a concrete BoardBackend. json
// and svg are the two reference emitters this repository ships (spec.md
// §6: "any backend satisfying this capability ... is acceptable").
func newBackend(format string, b *board.Board) (backend.BoardBackend, error) {
	switch format {
	case "json", "":
		return backend.NewJSONBackend(outputPath), nil
	case "svg":
		return backend.NewSVGBackend(outputPath, b.WidthMM, b.HeightMM), nil
	default:
		return nil, &pcberr.ConfigurationError{Field: "format", Reason: fmt.Sprintf("unknown backend format %q, want json or svg", format)}
	}
}

// newLogger builds the structured logger used for the run. PCBGEN_LOG_LEVEL
// (spec.md §6's "log-level variable") takes precedence; --verbose raises
// the floor from warning to info when the variable is unset.
func newLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	level := os.Getenv("PCBGEN_LOG_LEVEL")
	switch {
	case level != "":
		if parsed, err := logrus.ParseLevel(level); err == nil {
			logger.SetLevel(parsed)
		}
	case verbose:
		logger.SetLevel(logrus.InfoLevel)
	default:
		logger.SetLevel(logrus.WarnLevel)
	}
	return logger
}

// logReport emits one log line per issue at a level matching its
// severity, plus a summary line.
func logReport(logger *logrus.Logger, report *validation.ValidationReport) {
	logger.WithFields(logrus.Fields{
		"is_valid":  report.IsValid,
		"issues":    len(report.Issues),
		"exhausted": report.Exhausted,
		"report_id": report.ID,
	}).Info("validation report")

	for _, iss := range report.Issues {
		fields := logrus.Fields{
			"category": iss.Category,
			"message":  iss.Message,
		}
		switch iss.Severity {
		case validation.SeverityCritical, validation.SeverityError:
			logger.WithFields(fields).Error(iss.Suggestion)
		case validation.SeverityWarning:
			logger.WithFields(fields).Warn(iss.Suggestion)
		default:
			logger.WithFields(fields).Info(iss.Suggestion)
		}
	}
}

func exitCodeFor(err error) int {
	var placementErr *pcberr.PlacementInfeasible
	var validationErr *pcberr.ValidationFailure
	var budgetErr *pcberr.BudgetExhausted
	var backendErr *pcberr.BackendError
	switch {
	case errors.As(err, &placementErr):
		return exitPlacementFailure
	case errors.As(err, &validationErr):
		return exitValidationFailure
	case errors.As(err, &budgetErr):
		return exitBudgetExhausted
	case errors.As(err, &backendErr):
		return exitBackendError
	default:
		fmt.Fprintf(os.Stderr, "pcbgen: %v\n", err)
		return exitConfigError
	}
}
