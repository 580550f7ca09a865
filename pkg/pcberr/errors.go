// Package pcberr defines the structured error taxonomy shared across the
// PCB generation pipeline. Every variant carries typed context instead of
// a bare string, and every stage wraps the errors it returns with
// fmt.Errorf("...: %w", err) so callers can unwrap to the concrete variant
// with errors.As.
package pcberr

import "fmt"

// ConfigurationError reports invalid, missing, or out-of-range configuration.
type ConfigurationError struct {
	Field  string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration error: field %q: %s", e.Field, e.Reason)
}

// RegistryError reports an unknown component kind or package variant.
type RegistryError struct {
	Kind    string
	Package string
	Reason  string
}

func (e *RegistryError) Error() string {
	if e.Package != "" {
		return fmt.Sprintf("registry error: kind %q package %q: %s", e.Kind, e.Package, e.Reason)
	}
	return fmt.Sprintf("registry error: kind %q: %s", e.Kind, e.Reason)
}

// NetlistError reports an integrity violation in the netlist graph:
// dangling pin references, duplicate net names, or duplicate component ids.
type NetlistError struct {
	Op     string
	Detail string
}

func (e *NetlistError) Error() string {
	return fmt.Sprintf("netlist error: %s: %s", e.Op, e.Detail)
}

// PlacementInfeasible reports that no candidate position satisfies the
// placement constraints for a component. The pipeline halts; no partial
// placement is committed.
type PlacementInfeasible struct {
	ComponentID string
	Reason      string
}

func (e *PlacementInfeasible) Error() string {
	return fmt.Sprintf("placement infeasible: component %q: %s", e.ComponentID, e.Reason)
}

// RoutingInfeasible reports that a single net could not be routed within
// the search budget. This is non-fatal: the driver surfaces it as a
// connectivity Issue in the validation report rather than halting.
type RoutingInfeasible struct {
	NetID  string
	Reason string
}

func (e *RoutingInfeasible) Error() string {
	return fmt.Sprintf("routing infeasible: net %q: %s", e.NetID, e.Reason)
}

// ValidationFailure reports that the final validation report still
// contains error-or-critical issues after the refinement budget expired.
type ValidationFailure struct {
	IssueCount int
}

func (e *ValidationFailure) Error() string {
	return fmt.Sprintf("validation failure: %d unresolved error/critical issues", e.IssueCount)
}

// BackendError reports that the BoardBackend capability rejected an
// operation (placing a footprint, creating a track/via/zone, persisting).
type BackendError struct {
	Op     string
	Detail string
}

func (e *BackendError) Error() string {
	return fmt.Sprintf("backend error: %s: %s", e.Op, e.Detail)
}

// BudgetExhausted reports that the refinement budget or outer deadline was
// reached before the pipeline converged to a fixed point.
type BudgetExhausted struct {
	Iterations int
	Budget     int
}

func (e *BudgetExhausted) Error() string {
	return fmt.Sprintf("refinement budget exhausted: %d/%d iterations", e.Iterations, e.Budget)
}
