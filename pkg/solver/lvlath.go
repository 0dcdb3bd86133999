package solver

import (
	"context"
	"time"

	"github.com/katalvlaran/lvlath/tsp"
	"github.com/rs/zerolog/log"

	"github.com/polyroute/polyroute/pkg/planner"
)

// exactVertexLimit is the largest instance handed to Held-Karp. Beyond it
// the O(n^2 * 2^n) state table stops being practical and the adapter falls
// back to Christofides with a 2-opt polish.
const exactVertexLimit = 14

// defaultTimeLimit bounds a single solver invocation when the caller's
// context carries no deadline of its own.
const defaultTimeLimit = 30 * time.Second

// solverSeed pins the solver's internal randomness so identical inputs
// return identical permutations. The contract only promises a stable total
// distance; the stable ordering is a courtesy of this seed.
const solverSeed = 1

// Lvlath adapts the lvlath/tsp solvers to the planner's Solver interface.
//
// lvlath solves closed tours, so the fixed-endpoint open path is obtained
// through the classic reduction: append a virtual terminal with zero-cost
// edges to both endpoints and a prohibitive cost to everything else, solve
// the cycle, then cut it at the terminal.
type Lvlath struct {
	TimeLimit time.Duration
}

func NewLvlath() *Lvlath {
	return &Lvlath{TimeLimit: defaultTimeLimit}
}

func (s *Lvlath) Solve(ctx context.Context, m *planner.DistanceMatrix, startIndex int, endIndex int) ([]int, error) {
	size := m.Size()

	if startIndex == endIndex {
		return nil, &planner.InvalidEndpointsError{Name: m.Name(startIndex)}
	}

	if witness, connected := connectivityWitness(m, startIndex); !connected {
		return nil, &planner.DisconnectedGraphError{
			From: m.Name(startIndex),
			To:   m.Name(witness),
		}
	}

	budget := s.TimeLimit
	if budget <= 0 {
		budget = defaultTimeLimit
	}
	if deadline, ok := ctx.Deadline(); ok {
		remaining := time.Until(deadline)
		if remaining <= 0 {
			return nil, &planner.SolverTimeoutError{Budget: budget}
		}
		if remaining < budget {
			budget = remaining
		}
	}

	exact := size <= exactVertexLimit

	options := tsp.DefaultOptions()
	options.Symmetric = true
	options.StartVertex = size
	options.Seed = solverSeed
	options.TimeLimit = budget
	if exact {
		options.Algo = tsp.ExactHeldKarp
	} else {
		options.Algo = tsp.Christofides
		options.EnableLocalSearch = true
	}

	log.Debug().
		Int("locations", size).
		Bool("exact", exact).
		Dur("budget", budget).
		Msg("Invoking tour solver")

	dense, err := virtualTerminalMatrix(m, startIndex, endIndex)
	if err != nil {
		return nil, &planner.DisconnectedGraphError{Reason: err.Error()}
	}

	result, err := tsp.SolveWithMatrix(dense, nil, options)
	if err != nil {
		return nil, translateSolverError(err, budget)
	}

	permutation, err := cutAtTerminal(result.Tour, size, startIndex, endIndex)
	if err != nil {
		return nil, err
	}

	// A permutation that leans on a penalty edge means no feasible tour
	// avoided the unreachable pairs; report it here rather than letting the
	// reconstructor trip over it downstream.
	for k := 0; k < len(permutation)-1; k++ {
		if !m.Reachable(permutation[k], permutation[k+1]) {
			return nil, &planner.DisconnectedGraphError{
				From: m.Name(permutation[k]),
				To:   m.Name(permutation[k+1]),
			}
		}
	}

	return permutation, nil
}
