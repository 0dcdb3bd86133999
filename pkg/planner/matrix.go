package planner

import (
	"math"

	"github.com/polyroute/polyroute/pkg/registry"
	"github.com/polyroute/polyroute/pkg/transport"
)

// Unreachable marks a pair with no known connection in either mode.
var Unreachable = math.Inf(1)

// DistanceMatrix is the merged view of both modal tables: for every pair of
// registered locations the minimum known distance across modes, plus which
// mode produced it. Indexing follows registry order. Values are symmetric
// with a zero diagonal; both are established at build time and the matrix is
// never mutated afterwards.
type DistanceMatrix struct {
	size      int
	names     []string
	distances []float64
	modes     []transport.Mode
}

func (m *DistanceMatrix) Size() int {
	return m.size
}

// Name returns the location name behind matrix index i, so downstream
// failures can name the locations involved instead of bare indices.
func (m *DistanceMatrix) Name(i int) string {
	return m.names[i]
}

func (m *DistanceMatrix) Distance(i int, j int) float64 {
	return m.distances[i*m.size+j]
}

// Mode returns the mode that produced the recorded minimum distance.
// It is transport.ModeUnknown on the diagonal and for unreachable pairs.
func (m *DistanceMatrix) Mode(i int, j int) transport.Mode {
	return m.modes[i*m.size+j]
}

func (m *DistanceMatrix) Reachable(i int, j int) bool {
	return !math.IsInf(m.distances[i*m.size+j], 1)
}

type pairKey struct {
	low  string
	high string
}

func orderedPairKey(a string, b string) pairKey {
	if a < b {
		return pairKey{low: a, high: b}
	}

	return pairKey{low: b, high: a}
}

// edgeLookup folds one modal table into a symmetric pair -> distance map.
// A pair recorded in both directions must agree on the value, otherwise the
// table is ambiguous and the build fails.
func edgeLookup(reg *registry.Registry, edges []transport.ModalEdge, mode transport.Mode, table string) (map[pairKey]float64, error) {
	lookup := map[pairKey]float64{}

	for _, edge := range edges {
		if _, exists := reg.Get(edge.From); !exists {
			return nil, &UnknownLocationError{Name: edge.From, Table: table}
		}
		if _, exists := reg.Get(edge.To); !exists {
			return nil, &UnknownLocationError{Name: edge.To, Table: table}
		}

		key := orderedPairKey(edge.From, edge.To)
		if recorded, exists := lookup[key]; exists && recorded != edge.Distance {
			return nil, &ConflictingDistanceError{
				Mode:    mode,
				From:    edge.From,
				To:      edge.To,
				Forward: edge.Distance,
				Reverse: recorded,
			}
		}

		lookup[key] = edge.Distance
	}

	return lookup, nil
}

// BuildMatrices merges the road and rail tables into a DistanceMatrix over
// the registry's locations. For every pair the cheaper mode wins; equal
// distances resolve to road. Pairs absent from both tables are Unreachable.
// The build is a pure function of its inputs.
func BuildMatrices(reg *registry.Registry, road []transport.ModalEdge, rail []transport.ModalEdge) (*DistanceMatrix, error) {
	roadLookup, err := edgeLookup(reg, road, transport.ModeRoad, "road")
	if err != nil {
		return nil, err
	}
	railLookup, err := edgeLookup(reg, rail, transport.ModeRail, "rail")
	if err != nil {
		return nil, err
	}

	size := reg.Len()
	matrix := &DistanceMatrix{
		size:      size,
		names:     reg.Names(),
		distances: make([]float64, size*size),
		modes:     make([]transport.Mode, size*size),
	}

	for i := 0; i < size; i++ {
		matrix.modes[i*size+i] = transport.ModeUnknown

		for j := i + 1; j < size; j++ {
			key := orderedPairKey(reg.At(i).Name, reg.At(j).Name)

			distance := Unreachable
			mode := transport.Mode(transport.ModeUnknown)

			if roadDistance, exists := roadLookup[key]; exists {
				distance = roadDistance
				mode = transport.ModeRoad
			}
			if railDistance, exists := railLookup[key]; exists && railDistance < distance {
				distance = railDistance
				mode = transport.ModeRail
			}

			matrix.distances[i*size+j] = distance
			matrix.distances[j*size+i] = distance
			matrix.modes[i*size+j] = mode
			matrix.modes[j*size+i] = mode
		}
	}

	return matrix, nil
}
