package dataset

import (
	"math"
	"strconv"
	"strings"

	"github.com/couchcryptid/air-traffic-analysis/internal/domain"
)

// nullSentinel marks a missing value in OpenFlights data.
const nullSentinel = `\N`

// row gives named access to one CSV record. Missing columns and null
// sentinels both read as the empty string, so optional columns degrade
// gracefully.
type row struct {
	cols map[string]int
	vals []string
}

func (r row) get(name string) string {
	i, ok := r.cols[name]
	if !ok || i >= len(r.vals) {
		return ""
	}
	v := strings.TrimSpace(r.vals[i])
	if v == nullSentinel {
		return ""
	}
	return v
}

func airlineFromRow(r row) domain.Airline {
	return domain.Airline{
		ID:       r.get("Airline ID"),
		Name:     r.get("Name"),
		Alias:    r.get("Alias"),
		IATA:     r.get("IATA"),
		ICAO:     r.get("ICAO"),
		Callsign: r.get("Callsign"),
		Country:  r.get("Country"),
		Active:   r.get("Active") == "Y",
	}
}

func airplaneFromRow(r row) domain.Airplane {
	return domain.Airplane{
		Name: r.get("Name"),
		IATA: r.get("IATA code"),
		ICAO: r.get("ICAO code"),
	}
}

func airportFromRow(r row) domain.Airport {
	return domain.Airport{
		ID:       r.get("Airport ID"),
		Name:     r.get("Name"),
		City:     r.get("City"),
		Country:  r.get("Country"),
		IATA:     r.get("IATA"),
		ICAO:     r.get("ICAO"),
		Coord:    coordFromRow(r),
		Altitude: parseFloatOrZero(r.get("Altitude")),
	}
}

// coordFromRow parses the coordinate columns. Missing or unparseable values
// produce NaN, which fails Coordinate.Valid and keeps the row out of
// distance computations without dropping it from the table.
func coordFromRow(r row) domain.Coordinate {
	lat, okLat := parseFloat(r.get("Latitude"))
	lon, okLon := parseFloat(r.get("Longitude"))
	if !okLat || !okLon {
		return domain.Coordinate{Lat: math.NaN(), Lon: math.NaN()}
	}
	return domain.Coordinate{Lat: lat, Lon: lon}
}

func routeFromRow(r row) domain.Route {
	return domain.Route{
		AirlineCode: r.get("Airline"),
		AirlineID:   r.get("Airline ID"),
		SourceCode:  r.get("Source airport"),
		SourceID:    r.get("Source airport ID"),
		DestCode:    r.get("Destination airport"),
		DestID:      r.get("Destination airport ID"),
		Codeshare:   r.get("Codeshare") == "Y",
		Stops:       parseIntOrZero(r.get("Stops")),
		Equipment:   strings.Fields(r.get("Equipment")),
	}
}

func parseFloat(s string) (float64, bool) {
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// parseFloatOrZero parses a string as float64, returning 0 on failure.
func parseFloatOrZero(s string) float64 {
	v, ok := parseFloat(s)
	if !ok {
		return 0
	}
	return v
}

// parseIntOrZero parses a string as int, returning 0 on failure.
func parseIntOrZero(s string) int {
	if s == "" {
		return 0
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return v
}
