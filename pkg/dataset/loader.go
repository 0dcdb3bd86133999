package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/gocarina/gocsv"
	"github.com/rs/zerolog/log"

	"github.com/polyroute/polyroute/pkg/registry"
	"github.com/polyroute/polyroute/pkg/transport"
)

// MalformedRecordError reports a record that failed shape validation at the
// load boundary. Line is the 1-based data row within its source.
type MalformedRecordError struct {
	Source string
	Line   int
	Reason string
}

func (e *MalformedRecordError) Error() string {
	return fmt.Sprintf("malformed record %d in %s: %s", e.Line, e.Source, e.Reason)
}

// Records come in as raw strings and only become typed values after
// validation, so nothing malformed ever enters the planning pipeline.
type locationRecord struct {
	City      string `csv:"City"`
	Latitude  string `csv:"Latitude"`
	Longitude string `csv:"Longitude"`
}

type edgeRecord struct {
	From     string `csv:"From"`
	To       string `csv:"To"`
	Distance string `csv:"Distance"`
}

// Load reads every table of the datasource and returns the immutable inputs
// of the planning pipeline: the location registry and both modal edge lists.
func Load(datasource *DataSource) (*registry.Registry, []transport.ModalEdge, []transport.ModalEdge, error) {
	// Allow us to ignore those naughty records that have missing columns;
	// validation below rejects them with a proper record citation instead.
	gocsv.SetCSVReader(func(in io.Reader) gocsv.CSVReader {
		r := csv.NewReader(in)
		r.FieldsPerRecord = -1
		return r
	})

	reg, err := loadRegistry(datasource.Registry)
	if err != nil {
		return nil, nil, nil, err
	}

	roadEdges, err := loadEdges(datasource.Tables.Road, transport.ModeRoad)
	if err != nil {
		return nil, nil, nil, err
	}

	railEdges, err := loadEdges(datasource.Tables.Rail, transport.ModeRail)
	if err != nil {
		return nil, nil, nil, err
	}

	log.Info().
		Str("datasource", datasource.Identifier).
		Int("locations", reg.Len()).
		Int("road-edges", len(roadEdges)).
		Int("rail-edges", len(railEdges)).
		Msg("Dataset loaded")

	return reg, roadEdges, railEdges, nil
}

func loadRegistry(source string) (*registry.Registry, error) {
	reader, err := open(source)
	if err != nil {
		return nil, err
	}
	defer reader.Close()

	var records []*locationRecord
	if err := gocsv.Unmarshal(reader, &records); err != nil {
		return nil, &MalformedRecordError{Source: source, Line: 0, Reason: err.Error()}
	}

	locations := make([]transport.Location, 0, len(records))
	for i, record := range records {
		line := i + 1

		if record.City == "" {
			return nil, &MalformedRecordError{Source: source, Line: line, Reason: "city name is empty"}
		}

		latitude, err := parseCoordinate(record.Latitude)
		if err != nil {
			return nil, &MalformedRecordError{Source: source, Line: line, Reason: fmt.Sprintf("latitude %q is not a number", record.Latitude)}
		}
		longitude, err := parseCoordinate(record.Longitude)
		if err != nil {
			return nil, &MalformedRecordError{Source: source, Line: line, Reason: fmt.Sprintf("longitude %q is not a number", record.Longitude)}
		}

		locations = append(locations, transport.Location{
			Name:      record.City,
			Latitude:  latitude,
			Longitude: longitude,
		})
	}

	return registry.New(locations)
}

func loadEdges(source string, mode transport.Mode) ([]transport.ModalEdge, error) {
	reader, err := open(source)
	if err != nil {
		return nil, err
	}
	defer reader.Close()

	var records []*edgeRecord
	if err := gocsv.Unmarshal(reader, &records); err != nil {
		return nil, &MalformedRecordError{Source: source, Line: 0, Reason: err.Error()}
	}

	edges := make([]transport.ModalEdge, 0, len(records))
	for i, record := range records {
		line := i + 1

		if record.From == "" || record.To == "" {
			return nil, &MalformedRecordError{Source: source, Line: line, Reason: "from and to must both be set"}
		}

		distance, err := strconv.ParseFloat(record.Distance, 64)
		if err != nil || math.IsNaN(distance) || math.IsInf(distance, 0) {
			return nil, &MalformedRecordError{Source: source, Line: line, Reason: fmt.Sprintf("distance %q is not a number", record.Distance)}
		}
		if distance < 0 {
			return nil, &MalformedRecordError{Source: source, Line: line, Reason: fmt.Sprintf("distance %g is negative", distance)}
		}

		edges = append(edges, transport.ModalEdge{
			From:     record.From,
			To:       record.To,
			Distance: distance,
			Mode:     mode,
		})
	}

	return edges, nil
}

func parseCoordinate(value string) (float64, error) {
	coordinate, err := strconv.ParseFloat(value, 64)
	if err != nil || math.IsNaN(coordinate) || math.IsInf(coordinate, 0) {
		return 0, fmt.Errorf("invalid coordinate %q", value)
	}

	return coordinate, nil
}
