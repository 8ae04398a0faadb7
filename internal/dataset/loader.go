// Package dataset loads the four OpenFlights CSV tables into an immutable
// in-memory Snapshot with the lookup indexes the analysis engine needs.
package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/couchcryptid/air-traffic-analysis/internal/domain"
	"github.com/couchcryptid/air-traffic-analysis/internal/observability"
)

// File names expected inside the data directory. All four are required;
// a missing file aborts the load.
const (
	AirlinesFile  = "airlines.csv"
	AirplanesFile = "airplanes.csv"
	AirportsFile  = "airports.csv"
	RoutesFile    = "routes.csv"
)

// RequiredFiles lists every dataset file a complete load needs.
var RequiredFiles = []string{AirlinesFile, AirplanesFile, AirportsFile, RoutesFile}

// Snapshot is the loaded, immutable view of the four tables. The analysis
// engine never mutates it; all query operations are pure reads.
type Snapshot struct {
	Airlines  []domain.Airline
	Airplanes []domain.Airplane
	Airports  []domain.Airport
	Routes    []domain.Route

	airportsByID   map[string]int
	airportsByIATA map[string]int
	airlinesByID   map[string]int
	modelsByIATA   map[string]int
}

// NewSnapshot builds a Snapshot from already-materialized tables. Callers
// embedding the toolkit can construct snapshots without going through CSV
// files; Load uses the same indexing.
func NewSnapshot(airlines []domain.Airline, airplanes []domain.Airplane, airports []domain.Airport, routes []domain.Route) *Snapshot {
	s := &Snapshot{
		Airlines:  airlines,
		Airplanes: airplanes,
		Airports:  airports,
		Routes:    routes,
	}
	s.buildIndexes()
	return s
}

// AirportByID resolves an OpenFlights airport ID.
func (s *Snapshot) AirportByID(id string) (domain.Airport, bool) {
	i, ok := s.airportsByID[id]
	if !ok {
		return domain.Airport{}, false
	}
	return s.Airports[i], true
}

// AirportByIATA resolves a three-letter IATA airport code.
func (s *Snapshot) AirportByIATA(code string) (domain.Airport, bool) {
	i, ok := s.airportsByIATA[code]
	if !ok {
		return domain.Airport{}, false
	}
	return s.Airports[i], true
}

// AirlineByID resolves an OpenFlights airline ID.
func (s *Snapshot) AirlineByID(id string) (domain.Airline, bool) {
	i, ok := s.airlinesByID[id]
	if !ok {
		return domain.Airline{}, false
	}
	return s.Airlines[i], true
}

// ModelForCode resolves an aircraft IATA type code (e.g. "738") to its
// model name.
func (s *Snapshot) ModelForCode(code string) (string, bool) {
	i, ok := s.modelsByIATA[code]
	if !ok {
		return "", false
	}
	return s.Airplanes[i].Name, true
}

// Load reads the four dataset files from dir and builds a Snapshot.
// Loading is all-or-nothing: the first missing or unreadable file fails the
// whole load.
func Load(dir string, logger *slog.Logger, metrics *observability.Metrics) (*Snapshot, error) {
	start := time.Now()
	snap := &Snapshot{}

	err := readTable(filepath.Join(dir, AirlinesFile), func(r row) {
		snap.Airlines = append(snap.Airlines, airlineFromRow(r))
	})
	if err != nil {
		return nil, err
	}

	err = readTable(filepath.Join(dir, AirplanesFile), func(r row) {
		snap.Airplanes = append(snap.Airplanes, airplaneFromRow(r))
	})
	if err != nil {
		return nil, err
	}

	err = readTable(filepath.Join(dir, AirportsFile), func(r row) {
		snap.Airports = append(snap.Airports, airportFromRow(r))
	})
	if err != nil {
		return nil, err
	}

	err = readTable(filepath.Join(dir, RoutesFile), func(r row) {
		snap.Routes = append(snap.Routes, routeFromRow(r))
	})
	if err != nil {
		return nil, err
	}

	snap.buildIndexes()

	metrics.RowsLoaded.WithLabelValues("airlines").Set(float64(len(snap.Airlines)))
	metrics.RowsLoaded.WithLabelValues("airplanes").Set(float64(len(snap.Airplanes)))
	metrics.RowsLoaded.WithLabelValues("airports").Set(float64(len(snap.Airports)))
	metrics.RowsLoaded.WithLabelValues("routes").Set(float64(len(snap.Routes)))
	metrics.LoadDuration.Observe(time.Since(start).Seconds())

	logger.Info("datasets loaded",
		"dir", dir,
		"airlines", len(snap.Airlines),
		"airplanes", len(snap.Airplanes),
		"airports", len(snap.Airports),
		"routes", len(snap.Routes),
	)

	return snap, nil
}

func (s *Snapshot) buildIndexes() {
	s.airportsByID = make(map[string]int, len(s.Airports))
	s.airportsByIATA = make(map[string]int, len(s.Airports))
	for i, a := range s.Airports {
		if a.ID != "" {
			s.airportsByID[a.ID] = i
		}
		if a.IATA != "" {
			s.airportsByIATA[a.IATA] = i
		}
	}

	s.airlinesByID = make(map[string]int, len(s.Airlines))
	for i, a := range s.Airlines {
		if a.ID != "" {
			s.airlinesByID[a.ID] = i
		}
	}

	s.modelsByIATA = make(map[string]int, len(s.Airplanes))
	for i, a := range s.Airplanes {
		if a.IATA != "" {
			s.modelsByIATA[a.IATA] = i
		}
	}
}

// readTable streams a headered CSV file, calling decode for each data row.
// Malformed rows are skipped; a missing file is a fatal "dataset not found"
// error carrying the underlying fs.ErrNotExist.
func readTable(path string, decode func(row)) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("dataset not found: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	headers, err := reader.Read()
	if err != nil {
		return fmt.Errorf("read %s header: %w", filepath.Base(path), err)
	}

	cols := make(map[string]int, len(headers))
	for i, h := range headers {
		cols[h] = i
	}

	for {
		vals, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			continue
		}
		decode(row{cols: cols, vals: vals})
	}

	return nil
}
