package api_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/polyroute/polyroute/pkg/api"
	"github.com/polyroute/polyroute/pkg/planner"
	"github.com/polyroute/polyroute/pkg/registry"
	"github.com/polyroute/polyroute/pkg/solver"
	"github.com/polyroute/polyroute/pkg/transport"
)

func testApp(t *testing.T) *fiber.App {
	t.Helper()

	reg, err := registry.New([]transport.Location{
		{Name: "A", Latitude: 10, Longitude: 70},
		{Name: "B", Latitude: 11, Longitude: 71},
		{Name: "C", Latitude: 12, Longitude: 72},
	})
	require.NoError(t, err)

	road := []transport.ModalEdge{
		{From: "A", To: "B", Distance: 10, Mode: transport.ModeRoad},
		{From: "B", To: "C", Distance: 15, Mode: transport.ModeRoad},
	}
	rail := []transport.ModalEdge{
		{From: "A", To: "C", Distance: 12, Mode: transport.ModeRail},
	}

	plan := planner.New(reg, road, rail, solver.NewLvlath())

	return api.NewServer(plan)
}

func get(t *testing.T, app *fiber.App, target string) *http.Response {
	t.Helper()

	response, err := app.Test(httptest.NewRequest(http.MethodGet, target, nil), 10000)
	require.NoError(t, err)

	return response
}

func TestGetVersion(t *testing.T) {
	response := get(t, testApp(t), "/version")
	require.Equal(t, http.StatusOK, response.StatusCode)
}

func TestGetLocations(t *testing.T) {
	response := get(t, testApp(t), "/locations")
	require.Equal(t, http.StatusOK, response.StatusCode)

	var body struct {
		Locations []string `json:"locations"`
	}
	require.NoError(t, json.NewDecoder(response.Body).Decode(&body))
	assert.Equal(t, []string{"A", "B", "C"}, body.Locations)
}

func TestGetRoute(t *testing.T) {
	response := get(t, testApp(t), "/route/A/C")
	require.Equal(t, http.StatusOK, response.StatusCode)

	var route transport.Route
	require.NoError(t, json.NewDecoder(response.Body).Decode(&route))

	assert.Equal(t, 25.0, route.TotalDistance)
	assert.Equal(t, "A", route.StartLocation.Name)
	assert.Equal(t, "C", route.EndLocation.Name)
	assert.Equal(t, 3, route.VisitedCount)
}

func TestGetRoute_UnknownLocation(t *testing.T) {
	response := get(t, testApp(t), "/route/Atlantis/C")
	require.Equal(t, http.StatusNotFound, response.StatusCode)

	var body struct {
		Error string `json:"error"`
	}
	require.NoError(t, json.NewDecoder(response.Body).Decode(&body))
	assert.Contains(t, body.Error, "Atlantis")
}

func TestGetRoute_SameEndpoints(t *testing.T) {
	response := get(t, testApp(t), "/route/A/A")
	require.Equal(t, http.StatusBadRequest, response.StatusCode)
}

func TestGetRouteMap(t *testing.T) {
	response := get(t, testApp(t), "/route/A/C/map")
	require.Equal(t, http.StatusOK, response.StatusCode)
	assert.Contains(t, response.Header.Get("Content-Type"), "html")
}
