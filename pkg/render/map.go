package render

import (
	"fmt"
	"html/template"
	"io"
	"strings"

	"github.com/polyroute/polyroute/pkg/transport"
)

const (
	roadLineColour = "blue"
	railLineColour = "red"

	startMarkerColour        = "blue"
	intermediateMarkerColour = "red"
	endMarkerColour          = "green"
)

type mapSegment struct {
	From          string
	To            string
	FromLatitude  float64
	FromLongitude float64
	ToLatitude    float64
	ToLongitude   float64
	Distance      float64
	Mode          transport.Mode
	LineColour    string
	MarkerColour  string
	Number        int
}

type mapView struct {
	CenterLatitude  float64
	CenterLongitude float64
	Segments        []mapSegment
	SegmentCount    int

	End        transport.Location
	EndColour  string
	RoadColour string
	RailColour string

	TotalDistance float64
	RoadDistance  float64
	RailDistance  float64
	RoadSegments  int
	RailSegments  int
	VisitedCount  int
	RouteNames    string
}

// WriteMap renders the route as a self-contained interactive Leaflet page:
// one marker per visited city, one line per segment coloured by mode, with
// distance/mode popups, a statistics box and a legend.
func WriteMap(w io.Writer, route *transport.Route) error {
	if len(route.Segments) == 0 {
		return fmt.Errorf("cannot render an empty route")
	}

	view := mapView{
		Segments:     make([]mapSegment, 0, len(route.Segments)),
		SegmentCount: len(route.Segments),

		End:        route.EndLocation,
		EndColour:  endMarkerColour,
		RoadColour: roadLineColour,
		RailColour: railLineColour,

		TotalDistance: route.TotalDistance,
		RoadSegments:  route.RoadSegmentCount,
		RailSegments:  route.RailSegmentCount,
		VisitedCount:  route.VisitedCount,
		RouteNames:    strings.Join(route.LocationNames(), " -> "),
	}

	distances := route.DistanceByMode()
	view.RoadDistance = distances[transport.ModeRoad]
	view.RailDistance = distances[transport.ModeRail]

	for i, segment := range route.Segments {
		lineColour := roadLineColour
		if segment.Mode == transport.ModeRail {
			lineColour = railLineColour
		}

		markerColour := intermediateMarkerColour
		if i == 0 {
			markerColour = startMarkerColour
		}

		view.Segments = append(view.Segments, mapSegment{
			From:          segment.From.Name,
			To:            segment.To.Name,
			FromLatitude:  segment.From.Latitude,
			FromLongitude: segment.From.Longitude,
			ToLatitude:    segment.To.Latitude,
			ToLongitude:   segment.To.Longitude,
			Distance:      segment.Distance,
			Mode:          segment.Mode,
			LineColour:    lineColour,
			MarkerColour:  markerColour,
			Number:        i + 1,
		})

		view.CenterLatitude += segment.From.Latitude
		view.CenterLongitude += segment.From.Longitude
	}

	view.CenterLatitude = (view.CenterLatitude + route.EndLocation.Latitude) / float64(route.VisitedCount)
	view.CenterLongitude = (view.CenterLongitude + route.EndLocation.Longitude) / float64(route.VisitedCount)

	return mapTemplate.Execute(w, view)
}

var mapTemplate = template.Must(template.New("route-map").Parse(`<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <title>Route Map</title>
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <link rel="stylesheet" href="https://unpkg.com/leaflet@1.9.4/dist/leaflet.css">
  <script src="https://unpkg.com/leaflet@1.9.4/dist/leaflet.js"></script>
  <style>
    html, body, #map { height: 100%; margin: 0; }
    .overlay {
      position: fixed; z-index: 1000; background-color: white;
      padding: 15px; border: 2px solid grey; border-radius: 5px;
      font-family: sans-serif; font-size: 13px;
    }
    .overlay h4 { margin-top: 0; }
    .overlay p { margin: 5px 0; }
  </style>
</head>
<body>
  <div id="map"></div>

  <div class="overlay" style="bottom: 50px; left: 50px; width: 300px;">
    <h4>Route Statistics</h4>
    <p><b>Total Distance:</b> {{printf "%.1f" .TotalDistance}} km</p>
    <p><b>Road Distance:</b> {{printf "%.1f" .RoadDistance}} km ({{.RoadSegments}} segments)</p>
    <p><b>Rail Distance:</b> {{printf "%.1f" .RailDistance}} km ({{.RailSegments}} segments)</p>
    <p><b>Total Cities:</b> {{.VisitedCount}}</p>
    <p><b>Route:</b> {{.RouteNames}}</p>
  </div>

  <div class="overlay" style="bottom: 50px; right: 50px;">
    <h4>Legend</h4>
    <p><span style="color: {{.RoadColour}};">&#9644;</span> Road Transport</p>
    <p><span style="color: {{.RailColour}};">&#9644;</span> Rail Transport</p>
    <p><span style="color: blue;">&#9679;</span> Starting City</p>
    <p><span style="color: red;">&#9679;</span> Intermediate Cities</p>
    <p><span style="color: {{.EndColour}};">&#9679;</span> Destination City</p>
  </div>

  <script>
    var map = L.map('map').setView([{{.CenterLatitude}}, {{.CenterLongitude}}], 5);
    L.tileLayer('https://tile.openstreetmap.org/{z}/{x}/{y}.png', {
      attribution: '&copy; OpenStreetMap contributors'
    }).addTo(map);

    {{range .Segments}}
    L.circleMarker([{{.FromLatitude}}, {{.FromLongitude}}], {
      radius: 7, color: {{.MarkerColour}}, fillOpacity: 0.9
    }).addTo(map).bindPopup(
      "<b>{{.From}} &rarr; {{.To}}</b><br>" +
      "Distance: {{printf "%.1f" .Distance}} km<br>" +
      "Mode: {{.Mode}}<br>" +
      "Segment: {{.Number}} of {{$.SegmentCount}}"
    ).bindTooltip({{.From}} + " → " + {{.To}});

    L.polyline([[{{.FromLatitude}}, {{.FromLongitude}}], [{{.ToLatitude}}, {{.ToLongitude}}]], {
      color: {{.LineColour}}, weight: 3, opacity: 0.8
    }).addTo(map).bindPopup(
      "<b>{{.From}} &rarr; {{.To}}</b><br>" +
      "Distance: {{printf "%.1f" .Distance}} km<br>" +
      "Mode: {{.Mode}}"
    ).bindTooltip({{printf "%.1f" .Distance}} + " km ({{.Mode}})");
    {{end}}

    L.circleMarker([{{.End.Latitude}}, {{.End.Longitude}}], {
      radius: 7, color: {{.EndColour}}, fillOpacity: 0.9
    }).addTo(map).bindPopup("<b>Final Destination:</b> {{.End.Name}}")
      .bindTooltip("Destination: " + {{.End.Name}});
  </script>
</body>
</html>
`))
