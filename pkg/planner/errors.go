package planner

import (
	"fmt"
	"time"

	"github.com/polyroute/polyroute/pkg/transport"
)

// UnknownLocationError reports a location name with no registry entry, either
// referenced by a distance table or supplied as a trip endpoint.
type UnknownLocationError struct {
	Name  string
	Table string
}

func (e *UnknownLocationError) Error() string {
	if e.Table == "" {
		return fmt.Sprintf("unknown location %q", e.Name)
	}

	return fmt.Sprintf("unknown location %q referenced in %s table", e.Name, e.Table)
}

// ConflictingDistanceError reports a pair recorded in both directions of one
// modal table with different values. The source data is ambiguous, so the
// build refuses to pick a direction.
type ConflictingDistanceError struct {
	Mode    transport.Mode
	From    string
	To      string
	Forward float64
	Reverse float64
}

func (e *ConflictingDistanceError) Error() string {
	return fmt.Sprintf("%s table records %q -> %q as %g but %q -> %q as %g",
		e.Mode, e.From, e.To, e.Forward, e.To, e.From, e.Reverse)
}

// InvalidEndpointsError reports a trip whose start and end resolve to the
// same location.
type InvalidEndpointsError struct {
	Name string
}

func (e *InvalidEndpointsError) Error() string {
	return fmt.Sprintf("start and end are both %q, a route must have two distinct endpoints", e.Name)
}

// DisconnectedGraphError reports that no feasible path covering every
// location exists. When a witness pair is known it is included, otherwise
// Reason carries the solver's finding.
type DisconnectedGraphError struct {
	From   string
	To     string
	Reason string
}

func (e *DisconnectedGraphError) Error() string {
	if e.From != "" {
		return fmt.Sprintf("no chain of road or rail connections links %q and %q", e.From, e.To)
	}

	return fmt.Sprintf("no feasible route visiting every location: %s", e.Reason)
}

// SolverTimeoutError reports that the solver exceeded the caller-imposed
// time budget. No partial route is ever returned alongside it.
type SolverTimeoutError struct {
	Budget time.Duration
}

func (e *SolverTimeoutError) Error() string {
	return fmt.Sprintf("solver exceeded the %s time budget", e.Budget)
}

// IncoherentRouteError reports a solver permutation that traverses a pair
// with no known connection. It means the builder/solver contract was broken
// and is always fatal for the request.
type IncoherentRouteError struct {
	FromIndex int
	ToIndex   int
	From      string
	To        string
}

func (e *IncoherentRouteError) Error() string {
	return fmt.Sprintf("route traverses %q -> %q (indices %d -> %d) but no connection exists between them",
		e.From, e.To, e.FromIndex, e.ToIndex)
}
