package dataset

import (
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/couchcryptid/air-traffic-analysis/internal/observability"
)

const (
	airlinesCSV = `Airline ID,Name,Alias,IATA,ICAO,Callsign,Country,Active
24,American Airlines,\N,AA,AAL,AMERICAN,United States,Y
751,Defunct Air,\N,\N,DFA,DEFUNCT,Germany,N
`
	airplanesCSV = `Name,IATA code,ICAO code
Boeing 737-800,738,B738
Airbus A320,320,A320
Aerospatiale SN.601 Corvette,NDC,S601
`
	airportsCSV = `Airport ID,Name,City,Country,IATA,ICAO,Latitude,Longitude,Altitude
3797,John F Kennedy International Airport,New York,United States,JFK,KJFK,40.64,-73.78,13
3484,Los Angeles International Airport,Los Angeles,United States,LAX,KLAX,33.94,-118.41,125
507,London Heathrow Airport,London,United Kingdom,LHR,EGLL,51.4706,-0.4619,83
999,Ghost Field,Nowhere,Atlantis,\N,\N,\N,\N,0
`
	routesCSV = `Airline,Airline ID,Source airport,Source airport ID,Destination airport,Destination airport ID,Codeshare,Stops,Equipment
AA,24,JFK,3797,LAX,3484,,0,738 320
AA,24,LAX,3484,JFK,3797,Y,0,738
AA,24,JFK,3797,XXX,\N,,0,320
`
)

func writeDataset(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}
	return dir
}

func defaultFiles() map[string]string {
	return map[string]string{
		AirlinesFile:  airlinesCSV,
		AirplanesFile: airplanesCSV,
		AirportsFile:  airportsCSV,
		RoutesFile:    routesCSV,
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestLoad(t *testing.T) {
	dir := writeDataset(t, defaultFiles())

	snap, err := Load(dir, discardLogger(), observability.NewMetricsForTesting())
	require.NoError(t, err)

	assert.Len(t, snap.Airlines, 2)
	assert.Len(t, snap.Airplanes, 3)
	assert.Len(t, snap.Airports, 4)
	assert.Len(t, snap.Routes, 3)

	t.Run("airline fields", func(t *testing.T) {
		aa, ok := snap.AirlineByID("24")
		require.True(t, ok)
		assert.Equal(t, "American Airlines", aa.Name)
		assert.Equal(t, "AA", aa.IATA)
		assert.True(t, aa.Active)

		dfa, ok := snap.AirlineByID("751")
		require.True(t, ok)
		assert.Empty(t, dfa.IATA, "null sentinel should read as empty")
		assert.False(t, dfa.Active)
	})

	t.Run("airport lookups", func(t *testing.T) {
		jfk, ok := snap.AirportByID("3797")
		require.True(t, ok)
		assert.Equal(t, "New York", jfk.City)
		assert.Equal(t, 40.64, jfk.Coord.Lat)
		assert.True(t, jfk.Coord.Valid())

		byCode, ok := snap.AirportByIATA("LAX")
		require.True(t, ok)
		assert.Equal(t, "3484", byCode.ID)

		_, ok = snap.AirportByID("12345")
		assert.False(t, ok)
	})

	t.Run("missing coordinates are invalid, row still loaded", func(t *testing.T) {
		ghost, ok := snap.AirportByID("999")
		require.True(t, ok)
		assert.False(t, ghost.Coord.Valid())
	})

	t.Run("route fields", func(t *testing.T) {
		r := snap.Routes[0]
		assert.Equal(t, "3797", r.SourceID)
		assert.Equal(t, "3484", r.DestID)
		assert.Equal(t, []string{"738", "320"}, r.Equipment)
		assert.False(t, r.Codeshare)

		assert.True(t, snap.Routes[1].Codeshare)
		assert.Empty(t, snap.Routes[2].DestID, "null destination reference reads as empty")
	})

	t.Run("model code resolution", func(t *testing.T) {
		name, ok := snap.ModelForCode("738")
		require.True(t, ok)
		assert.Equal(t, "Boeing 737-800", name)

		_, ok = snap.ModelForCode("A38")
		assert.False(t, ok)
	})
}

func TestLoad_MissingFileIsFatal(t *testing.T) {
	files := defaultFiles()
	delete(files, RoutesFile)
	dir := writeDataset(t, files)

	_, err := Load(dir, discardLogger(), observability.NewMetricsForTesting())
	require.Error(t, err)
	assert.ErrorIs(t, err, fs.ErrNotExist)
	assert.Contains(t, err.Error(), "dataset not found")
}

func TestLoad_MissingOptionalColumns(t *testing.T) {
	files := defaultFiles()
	files[AirportsFile] = "Airport ID,Name,Country,Latitude,Longitude\n1,Testfield,Testland,10.0,20.0\n"
	dir := writeDataset(t, files)

	snap, err := Load(dir, discardLogger(), observability.NewMetricsForTesting())
	require.NoError(t, err)

	ap, ok := snap.AirportByID("1")
	require.True(t, ok)
	assert.Empty(t, ap.City)
	assert.Empty(t, ap.IATA)
	assert.True(t, ap.Coord.Valid())
}

func TestLoad_OutOfRangeCoordinates(t *testing.T) {
	files := defaultFiles()
	files[AirportsFile] = "Airport ID,Name,Country,IATA,Latitude,Longitude\n1,Bad Field,Testland,BAD,95.0,10.0\n"
	dir := writeDataset(t, files)

	snap, err := Load(dir, discardLogger(), observability.NewMetricsForTesting())
	require.NoError(t, err)

	ap, ok := snap.AirportByIATA("BAD")
	require.True(t, ok)
	assert.False(t, ap.Coord.Valid())
}
