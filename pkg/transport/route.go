package transport

// RouteSegment is one hop of a computed route, tagged with the distance and
// the mode that won the pair when the matrices were built. Segments are only
// ever produced by route reconstruction and never persisted on their own.
type RouteSegment struct {
	From     Location `json:"from"`
	To       Location `json:"to"`
	Distance float64  `json:"distance"`
	Mode     Mode     `json:"mode"`
}

// Route is the finished product of the planning pipeline and the only object
// handed to presentation layers. It visits every registered location exactly
// once, start and end pinned.
type Route struct {
	Segments []RouteSegment `json:"segments"`

	StartLocation Location `json:"start_location"`
	EndLocation   Location `json:"end_location"`

	TotalDistance    float64 `json:"total_distance"`
	RoadSegmentCount int     `json:"road_segment_count"`
	RailSegmentCount int     `json:"rail_segment_count"`
	VisitedCount     int     `json:"visited_count"`
}

// LocationNames returns the visited locations in travel order.
func (route *Route) LocationNames() []string {
	if len(route.Segments) == 0 {
		return nil
	}

	names := make([]string, 0, len(route.Segments)+1)
	names = append(names, route.Segments[0].From.Name)
	for _, segment := range route.Segments {
		names = append(names, segment.To.Name)
	}

	return names
}

// DistanceByMode sums segment distances per mode.
func (route *Route) DistanceByMode() map[Mode]float64 {
	distances := map[Mode]float64{}
	for _, segment := range route.Segments {
		distances[segment.Mode] += segment.Distance
	}

	return distances
}
