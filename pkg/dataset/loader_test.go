package dataset_test

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/polyroute/polyroute/pkg/dataset"
	"github.com/polyroute/polyroute/pkg/transport"
)

const registryCSV = `City,Latitude,Longitude
Delhi,28.6139,77.2090
Mumbai,19.0760,72.8777
Kolkata,22.5726,88.3639
`

const roadCSV = `From,To,Distance
Delhi,Mumbai,1400
Mumbai,Kolkata,1900
`

const railCSV = `From,To,Distance
Delhi,Kolkata,1450
`

func writeTable(t *testing.T, dir string, name string, contents string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0644))

	return path
}

func testDataSource(t *testing.T, registry string, road string, rail string) *dataset.DataSource {
	t.Helper()

	dir := t.TempDir()

	return &dataset.DataSource{
		Identifier: "test",
		Registry:   writeTable(t, dir, "cities.csv", registry),
		Tables: dataset.Tables{
			Road: writeTable(t, dir, "road.csv", road),
			Rail: writeTable(t, dir, "rail.csv", rail),
		},
	}
}

func TestLoad(t *testing.T) {
	reg, roadEdges, railEdges, err := dataset.Load(testDataSource(t, registryCSV, roadCSV, railCSV))
	require.NoError(t, err)

	require.Equal(t, []string{"Delhi", "Mumbai", "Kolkata"}, reg.Names())

	location, exists := reg.Get("Mumbai")
	require.True(t, exists)
	require.Equal(t, 19.0760, location.Latitude)
	require.Equal(t, 72.8777, location.Longitude)

	require.Len(t, roadEdges, 2)
	require.Equal(t, transport.ModalEdge{
		From: "Delhi", To: "Mumbai", Distance: 1400, Mode: transport.ModeRoad,
	}, roadEdges[0])

	require.Len(t, railEdges, 1)
	require.Equal(t, transport.Mode(transport.ModeRail), railEdges[0].Mode)
}

func TestLoad_NegativeDistance(t *testing.T) {
	badRoad := "From,To,Distance\nDelhi,Mumbai,-5\n"

	_, _, _, err := dataset.Load(testDataSource(t, registryCSV, badRoad, railCSV))

	var malformed *dataset.MalformedRecordError
	require.ErrorAs(t, err, &malformed)
	require.Equal(t, 1, malformed.Line)
	require.Contains(t, malformed.Reason, "negative")
}

func TestLoad_NonNumericDistance(t *testing.T) {
	badRail := "From,To,Distance\nDelhi,Kolkata,far\n"

	_, _, _, err := dataset.Load(testDataSource(t, registryCSV, roadCSV, badRail))

	var malformed *dataset.MalformedRecordError
	require.ErrorAs(t, err, &malformed)
	require.Contains(t, malformed.Reason, "far")
}

func TestLoad_EmptyCityName(t *testing.T) {
	badRegistry := "City,Latitude,Longitude\n,28.6,77.2\n"

	_, _, _, err := dataset.Load(testDataSource(t, badRegistry, roadCSV, railCSV))

	var malformed *dataset.MalformedRecordError
	require.ErrorAs(t, err, &malformed)
	require.Contains(t, malformed.Reason, "empty")
}

func TestLoad_MissingEndpointInEdge(t *testing.T) {
	badRoad := "From,To,Distance\nDelhi,,1400\n"

	_, _, _, err := dataset.Load(testDataSource(t, registryCSV, badRoad, railCSV))

	var malformed *dataset.MalformedRecordError
	require.ErrorAs(t, err, &malformed)
}

func TestLoad_BadCoordinate(t *testing.T) {
	badRegistry := "City,Latitude,Longitude\nDelhi,north,77.2\n"

	_, _, _, err := dataset.Load(testDataSource(t, badRegistry, roadCSV, railCSV))

	var malformed *dataset.MalformedRecordError
	require.ErrorAs(t, err, &malformed)
	require.Contains(t, malformed.Reason, "latitude")
}

// TestLoad_RemoteTable serves the registry over HTTP, with a flaky first
// response to exercise the load-time retry.
func TestLoad_RemoteTable(t *testing.T) {
	attempts := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		if attempts == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Write([]byte(registryCSV))
	}))
	defer server.Close()

	datasource := testDataSource(t, registryCSV, roadCSV, railCSV)
	datasource.Registry = server.URL

	reg, _, _, err := dataset.Load(datasource)
	require.NoError(t, err)
	require.Equal(t, 3, reg.Len())
	require.GreaterOrEqual(t, attempts, 2)
}

func TestLoadDataSource(t *testing.T) {
	dir := t.TempDir()
	descriptor := `identifier: test
provider:
  name: Test Provider
registry: data/cities.csv
tables:
  road: data/road.csv
  rail: data/rail.csv
`
	path := writeTable(t, dir, "test.yaml", descriptor)

	datasource, err := dataset.LoadDataSource(path)
	require.NoError(t, err)
	require.Equal(t, "test", datasource.Identifier)
	require.Equal(t, "Test Provider", datasource.Provider.Name)
	require.Equal(t, "data/road.csv", datasource.Tables.Road)
}

func TestLoadDataSource_MissingTables(t *testing.T) {
	dir := t.TempDir()
	path := writeTable(t, dir, "bad.yaml", "identifier: test\nregistry: data/cities.csv\n")

	_, err := dataset.LoadDataSource(path)
	require.Error(t, err)
}
