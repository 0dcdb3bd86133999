package planner

import (
	"github.com/polyroute/polyroute/pkg/registry"
	"github.com/polyroute/polyroute/pkg/transport"
)

// Reconstruct turns a solver permutation back into a concrete route by
// re-attaching the per-pair distance and winning mode from the matrices.
// A permutation step across an unreachable pair means the solver broke its
// contract with the builder; that is reported, never patched over.
func Reconstruct(reg *registry.Registry, matrix *DistanceMatrix, permutation []int) (*transport.Route, error) {
	route := &transport.Route{
		Segments:     make([]transport.RouteSegment, 0, len(permutation)-1),
		VisitedCount: len(permutation),
	}

	for k := 0; k < len(permutation)-1; k++ {
		i := permutation[k]
		j := permutation[k+1]

		if !matrix.Reachable(i, j) {
			return nil, &IncoherentRouteError{
				FromIndex: i,
				ToIndex:   j,
				From:      reg.At(i).Name,
				To:        reg.At(j).Name,
			}
		}

		segment := transport.RouteSegment{
			From:     reg.At(i),
			To:       reg.At(j),
			Distance: matrix.Distance(i, j),
			Mode:     matrix.Mode(i, j),
		}
		route.Segments = append(route.Segments, segment)

		route.TotalDistance += segment.Distance
		switch segment.Mode {
		case transport.ModeRoad:
			route.RoadSegmentCount++
		case transport.ModeRail:
			route.RailSegmentCount++
		}
	}

	route.StartLocation = route.Segments[0].From
	route.EndLocation = route.Segments[len(route.Segments)-1].To

	return route, nil
}
