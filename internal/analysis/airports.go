package analysis

import (
	"fmt"
	"sort"
	"time"

	"github.com/couchcryptid/air-traffic-analysis/internal/adapter/geomap"
	"github.com/couchcryptid/air-traffic-analysis/internal/domain"
)

// AirportsByCountry returns the airports in a country. The match is exact
// and case-sensitive on the Country field; an empty result is an explicit
// error, never a silent empty set.
func (e *Engine) AirportsByCountry(country string) (airports []domain.Airport, err error) {
	start := time.Now()
	defer func() { e.observe("airports_by_country", start, err) }()

	for _, a := range e.snap.Airports {
		if a.Country == country {
			airports = append(airports, a)
		}
	}
	if len(airports) == 0 {
		return nil, fmt.Errorf("%w for country %q", ErrNoAirports, country)
	}
	return airports, nil
}

// WriteCountryMap renders an HTML map of a country's airports to path, one
// marker per airport with a name/city label. Airports without valid
// coordinates are listed but not plotted.
func (e *Engine) WriteCountryMap(country, path string) (err error) {
	start := time.Now()
	defer func() { e.observe("write_country_map", start, err) }()

	airports, err := e.AirportsByCountry(country)
	if err != nil {
		return err
	}

	markers := make([]geomap.Marker, 0, len(airports))
	for _, a := range airports {
		if !a.Coord.Valid() {
			continue
		}
		markers = append(markers, geomap.Marker{
			Name: a.Name,
			City: a.City,
			Lat:  a.Coord.Lat,
			Lon:  a.Coord.Lon,
		})
	}
	if len(markers) == 0 {
		return fmt.Errorf("%w with plottable coordinates for country %q", ErrNoAirports, country)
	}

	title := fmt.Sprintf("Airports in %s", country)
	if err := geomap.WriteAirportMap(path, title, markers); err != nil {
		return fmt.Errorf("write country map: %w", err)
	}

	e.logger.Info("country map written", "country", country, "path", path, "markers", len(markers))
	return nil
}

// CountryCount is a destination country with its departing flight count.
type CountryCount struct {
	Country string `json:"country"`
	Flights int    `json:"flights"`
}

// FlightsFromAirport counts routes departing the given airport, grouped by
// destination country and sorted descending. With internalOnly set, only
// destinations in the airport's own country are counted.
func (e *Engine) FlightsFromAirport(iata string, internalOnly bool) (counts []CountryCount, err error) {
	start := time.Now()
	defer func() { e.observe("flights_from_airport", start, err) }()

	origin, ok := e.snap.AirportByIATA(iata)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownAirport, iata)
	}

	byCountry := make(map[string]int)
	var order []string
	for _, r := range e.snap.Routes {
		if r.SourceID != origin.ID {
			continue
		}
		dest, ok := e.snap.AirportByID(r.DestID)
		if !ok {
			continue
		}
		if internalOnly && dest.Country != origin.Country {
			continue
		}
		if _, seen := byCountry[dest.Country]; !seen {
			order = append(order, dest.Country)
		}
		byCountry[dest.Country]++
	}

	if len(order) == 0 {
		return nil, fmt.Errorf("%w departing %q", ErrNoRoutes, iata)
	}

	counts = make([]CountryCount, 0, len(order))
	for _, c := range order {
		counts = append(counts, CountryCount{Country: c, Flights: byCountry[c]})
	}
	sort.SliceStable(counts, func(i, j int) bool {
		return counts[i].Flights > counts[j].Flights
	})
	return counts, nil
}

// CountryTrafficReport splits a country's departing routes into short-haul
// and long-haul at a cutoff distance, with the rail-substitution estimate
// for the short-haul share.
type CountryTrafficReport struct {
	GeneratedAt        time.Time `json:"generated_at"`
	Country            string    `json:"country"`
	CutoffKm           float64   `json:"cutoff_km"`
	ShortHaul          int       `json:"short_haul"`
	LongHaul           int       `json:"long_haul"`
	ShortHaulKm        float64   `json:"short_haul_km"` // unique pairs only
	PotentialSavingsKg float64   `json:"potential_savings_kg"`
}

// FlightsFromCountry classifies routes departing any airport in the country
// as short-haul (distance <= cutoffKm) or long-haul. The short-haul distance
// total deduplicates undirected airport pairs so a return leg is not counted
// twice.
func (e *Engine) FlightsFromCountry(country string, internalOnly bool, cutoffKm float64) (report CountryTrafficReport, err error) {
	start := time.Now()
	defer func() { e.observe("flights_from_country", start, err) }()

	if cutoffKm <= 0 {
		return CountryTrafficReport{}, fmt.Errorf("%w: cutoff must be positive, got %g km", ErrInvalidRange, cutoffKm)
	}

	originIDs := make(map[string]bool)
	for _, a := range e.snap.Airports {
		if a.Country == country && a.ID != "" {
			originIDs[a.ID] = true
		}
	}
	if len(originIDs) == 0 {
		return CountryTrafficReport{}, fmt.Errorf("%w for country %q", ErrNoAirports, country)
	}

	report.GeneratedAt = clock.Now()
	report.Country = country
	report.CutoffKm = cutoffKm

	seenPairs := make(map[string]bool)
	matched := 0
	for _, r := range e.snap.Routes {
		if !originIDs[r.SourceID] {
			continue
		}
		src, dst, ok := e.resolveRoute(r)
		if !ok {
			continue
		}
		if internalOnly && dst.Country != country {
			continue
		}
		matched++

		d := e.distance(src, dst)
		if d > cutoffKm {
			report.LongHaul++
			continue
		}
		report.ShortHaul++

		key := pairKey(src.ID, dst.ID)
		if seenPairs[key] {
			continue
		}
		seenPairs[key] = true
		report.ShortHaulKm += d
	}

	if matched == 0 {
		return CountryTrafficReport{}, fmt.Errorf("%w departing %q", ErrNoRoutes, country)
	}

	report.PotentialSavingsKg = e.emissions.SavingsKg(report.ShortHaulKm)
	return report, nil
}
