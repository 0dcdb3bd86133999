package solver

import (
	"errors"
	"fmt"
	"time"

	"github.com/katalvlaran/lvlath/matrix"
	"github.com/katalvlaran/lvlath/tsp"

	"github.com/polyroute/polyroute/pkg/planner"
)

// connectivityWitness walks the finite entries of the matrix from source.
// If some location is unreachable through any chain of connections it is
// returned as the witness, since no tour covering it can exist.
func connectivityWitness(m *planner.DistanceMatrix, source int) (int, bool) {
	size := m.Size()

	visited := make([]bool, size)
	visited[source] = true
	queue := []int{source}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		for next := 0; next < size; next++ {
			if !visited[next] && m.Reachable(current, next) {
				visited[next] = true
				queue = append(queue, next)
			}
		}
	}

	for i := 0; i < size; i++ {
		if !visited[i] {
			return i, false
		}
	}

	return 0, true
}

// virtualTerminalMatrix builds the (n+1)-vertex instance for the cycle
// solver. The extra vertex bridges the two endpoints for free and charges a
// prohibitive penalty elsewhere, so every optimal cycle enters and leaves it
// through the endpoints. Unreachable pairs carry the same penalty instead of
// an infinity the solver would reject.
func virtualTerminalMatrix(m *planner.DistanceMatrix, startIndex int, endIndex int) (*matrix.Dense, error) {
	size := m.Size()
	terminal := size

	penalty := 1.0
	for i := 0; i < size; i++ {
		for j := i + 1; j < size; j++ {
			if m.Reachable(i, j) {
				penalty += m.Distance(i, j)
			}
		}
	}

	dense, err := matrix.NewDense(size+1, size+1)
	if err != nil {
		return nil, err
	}

	set := func(i int, j int, value float64) error {
		if err := dense.Set(i, j, value); err != nil {
			return err
		}

		return dense.Set(j, i, value)
	}

	for i := 0; i < size; i++ {
		for j := i + 1; j < size; j++ {
			value := penalty
			if m.Reachable(i, j) {
				value = m.Distance(i, j)
			}
			if err := set(i, j, value); err != nil {
				return nil, err
			}
		}
	}

	for i := 0; i < size; i++ {
		value := penalty
		if i == startIndex || i == endIndex {
			value = 0
		}
		if err := set(i, terminal, value); err != nil {
			return nil, err
		}
	}

	return dense, nil
}

// cutAtTerminal converts the solver's closed tour back into the open
// permutation: drop the closing vertex, rotate the virtual terminal to the
// front, strip it and orient the remainder start to end.
func cutAtTerminal(tour []int, size int, startIndex int, endIndex int) ([]int, error) {
	if len(tour) >= 2 && tour[0] == tour[len(tour)-1] {
		tour = tour[:len(tour)-1]
	}
	if len(tour) != size+1 {
		return nil, &planner.DisconnectedGraphError{
			Reason: fmt.Sprintf("solver returned a tour over %d vertices, expected %d", len(tour), size+1),
		}
	}

	terminalAt := -1
	for i, vertex := range tour {
		if vertex == size {
			terminalAt = i
			break
		}
	}
	if terminalAt < 0 {
		return nil, &planner.DisconnectedGraphError{
			Reason: "solver dropped the terminal vertex from the tour",
		}
	}

	permutation := make([]int, 0, size)
	permutation = append(permutation, tour[terminalAt+1:]...)
	permutation = append(permutation, tour[:terminalAt]...)

	if permutation[0] == endIndex && permutation[len(permutation)-1] == startIndex {
		for left, right := 0, len(permutation)-1; left < right; left, right = left+1, right-1 {
			permutation[left], permutation[right] = permutation[right], permutation[left]
		}
	}
	if permutation[0] != startIndex || permutation[len(permutation)-1] != endIndex {
		return nil, &planner.DisconnectedGraphError{
			Reason: "solver could not anchor the tour at the requested endpoints",
		}
	}

	seen := make([]bool, size)
	for _, vertex := range permutation {
		if vertex < 0 || vertex >= size || seen[vertex] {
			return nil, &planner.DisconnectedGraphError{
				Reason: fmt.Sprintf("solver tour revisits or skips vertex %d", vertex),
			}
		}
		seen[vertex] = true
	}

	return permutation, nil
}

// translateSolverError keeps lvlath's failure modes behind this boundary,
// mapping them onto the planner's error kinds.
func translateSolverError(err error, budget time.Duration) error {
	if errors.Is(err, tsp.ErrTimeLimit) {
		return &planner.SolverTimeoutError{Budget: budget}
	}
	if errors.Is(err, tsp.ErrTSPIncompleteGraph) {
		return &planner.DisconnectedGraphError{Reason: "solver found no tour covering every location"}
	}

	return &planner.DisconnectedGraphError{Reason: fmt.Sprintf("solver found no solution: %s", err)}
}
