package render

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/polyroute/polyroute/pkg/transport"
)

const divider = "----------------------------------------------------------------------"

// WriteSummary prints the per-segment breakdown and aggregate statistics of
// a route.
func WriteSummary(w io.Writer, route *transport.Route) error {
	if _, err := fmt.Fprintf(w, "Optimal Route Details (Best Mode Selected):\n%s\n", divider); err != nil {
		return err
	}

	for _, segment := range route.Segments {
		_, err := fmt.Fprintf(w, "%s -> %s: %.1f km (%s)\n",
			segment.From.Name, segment.To.Name, segment.Distance, segment.Mode)
		if err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintf(w, "%s\n", divider); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Total Distance: %.1f km\n", route.TotalDistance); err != nil {
		return err
	}

	distances := route.DistanceByMode()
	modes := maps.Keys(distances)
	slices.Sort(modes)
	for _, mode := range modes {
		segments := route.RoadSegmentCount
		if mode == transport.ModeRail {
			segments = route.RailSegmentCount
		}
		if _, err := fmt.Fprintf(w, "%s Distance: %.1f km (%d segments)\n", mode, distances[mode], segments); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintf(w, "Number of Cities Visited: %d\n", route.VisitedCount); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "Cities in Route: %s\n", strings.Join(route.LocationNames(), " -> "))

	return err
}
