package planner

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/polyroute/polyroute/pkg/registry"
	"github.com/polyroute/polyroute/pkg/transport"
)

// Solver is the external path-solving capability: given the merged distance
// matrix and two distinct endpoint indices, return a permutation of every
// index that starts at startIndex, ends at endIndex and minimises the summed
// pair distances. Implementations must only fail with the error kinds
// defined in this package.
type Solver interface {
	Solve(ctx context.Context, matrix *DistanceMatrix, startIndex int, endIndex int) ([]int, error)
}

// Planner runs the whole pipeline: resolve endpoints, merge the modal tables
// into matrices, hand them to the solver and reconstruct the resulting
// route. The registry and tables are fixed at construction; matrices are
// rebuilt per request and discarded with it.
type Planner struct {
	registry *registry.Registry
	road     []transport.ModalEdge
	rail     []transport.ModalEdge
	solver   Solver
}

func New(reg *registry.Registry, road []transport.ModalEdge, rail []transport.ModalEdge, solver Solver) *Planner {
	return &Planner{
		registry: reg,
		road:     road,
		rail:     rail,
		solver:   solver,
	}
}

func (p *Planner) Registry() *registry.Registry {
	return p.registry
}

// Plan computes the optimal route from start to end visiting every
// registered location exactly once. Any failure is terminal for the request;
// nothing is retried and no partial route is returned.
func (p *Planner) Plan(ctx context.Context, start string, end string) (*transport.Route, error) {
	startIndex, exists := p.registry.IndexOf(start)
	if !exists {
		return nil, &UnknownLocationError{Name: start}
	}
	endIndex, exists := p.registry.IndexOf(end)
	if !exists {
		return nil, &UnknownLocationError{Name: end}
	}

	if startIndex == endIndex {
		return nil, &InvalidEndpointsError{Name: start}
	}

	matrix, err := BuildMatrices(p.registry, p.road, p.rail)
	if err != nil {
		return nil, err
	}

	log.Debug().
		Str("start", start).
		Str("end", end).
		Int("locations", matrix.Size()).
		Msg("Solving route")

	permutation, err := p.solver.Solve(ctx, matrix, startIndex, endIndex)
	if err != nil {
		return nil, err
	}

	route, err := Reconstruct(p.registry, matrix, permutation)
	if err != nil {
		return nil, err
	}

	log.Debug().
		Float64("distance", route.TotalDistance).
		Int("road", route.RoadSegmentCount).
		Int("rail", route.RailSegmentCount).
		Msg("Route reconstructed")

	return route, nil
}
