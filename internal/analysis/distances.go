package analysis

import (
	"fmt"
	"time"
)

// DistanceFilter bounds a distance analysis in kilometers. A nil bound means
// unbounded on that side; both bounds are inclusive.
type DistanceFilter struct {
	MinKm *float64
	MaxKm *float64
}

func (f DistanceFilter) validate() error {
	if f.MinKm != nil && *f.MinKm < 0 {
		return fmt.Errorf("%w: min distance %g is negative", ErrInvalidRange, *f.MinKm)
	}
	if f.MaxKm != nil && *f.MaxKm < 0 {
		return fmt.Errorf("%w: max distance %g is negative", ErrInvalidRange, *f.MaxKm)
	}
	if f.MinKm != nil && f.MaxKm != nil && *f.MinKm > *f.MaxKm {
		return fmt.Errorf("%w: min distance %g exceeds max %g", ErrInvalidRange, *f.MinKm, *f.MaxKm)
	}
	return nil
}

func (f DistanceFilter) contains(d float64) bool {
	if f.MinKm != nil && d < *f.MinKm {
		return false
	}
	if f.MaxKm != nil && d > *f.MaxKm {
		return false
	}
	return true
}

// RoutedDistance is one route that passed the filter, with its computed
// great-circle distance.
type RoutedDistance struct {
	SourceID   string  `json:"source_id"`
	DestID     string  `json:"dest_id"`
	Source     string  `json:"source"`
	Dest       string  `json:"dest"`
	DistanceKm float64 `json:"distance_km"`
}

// DistanceReport summarizes a distance analysis over the route table.
type DistanceReport struct {
	GeneratedAt time.Time        `json:"generated_at"`
	Count       int              `json:"count"`
	MeanKm      float64          `json:"mean_km"`
	MinKm       float64          `json:"min_km"`
	MaxKm       float64          `json:"max_km"`
	Routes      []RoutedDistance `json:"routes"`
}

// AnalyzeDistances computes the great-circle distance of every route whose
// endpoints resolve to valid coordinates and keeps those inside the filter.
// Routes with unresolved endpoints are excluded, not counted as zero.
func (e *Engine) AnalyzeDistances(filter DistanceFilter) (report DistanceReport, err error) {
	start := time.Now()
	defer func() { e.observe("analyze_distances", start, err) }()

	if err = filter.validate(); err != nil {
		return DistanceReport{}, err
	}

	report.GeneratedAt = clock.Now()

	var sum float64
	for _, r := range e.snap.Routes {
		src, dst, ok := e.resolveRoute(r)
		if !ok {
			continue
		}
		d := e.distance(src, dst)
		if !filter.contains(d) {
			continue
		}

		report.Routes = append(report.Routes, RoutedDistance{
			SourceID:   src.ID,
			DestID:     dst.ID,
			Source:     airportLabel(src),
			Dest:       airportLabel(dst),
			DistanceKm: d,
		})
		sum += d
		if report.Count == 0 || d < report.MinKm {
			report.MinKm = d
		}
		if d > report.MaxKm {
			report.MaxKm = d
		}
		report.Count++
	}

	if report.Count > 0 {
		report.MeanKm = sum / float64(report.Count)
	}

	e.logger.Debug("distance analysis complete",
		"routes", report.Count, "mean_km", report.MeanKm)
	return report, nil
}

// RouteListing is a raw per-route row: every route in the table, with a nil
// distance where an endpoint did not resolve.
type RouteListing struct {
	SourceID   string   `json:"source_id,omitempty"`
	DestID     string   `json:"dest_id,omitempty"`
	Source     string   `json:"source,omitempty"`
	Dest       string   `json:"dest,omitempty"`
	DistanceKm *float64 `json:"distance_km,omitempty"`
}

// RouteDistances lists every route with its computed distance attached, or
// nil for routes whose endpoints do not resolve.
func (e *Engine) RouteDistances() []RouteListing {
	start := time.Now()
	defer func() { e.observe("route_distances", start, nil) }()

	listings := make([]RouteListing, 0, len(e.snap.Routes))
	for _, r := range e.snap.Routes {
		listing := RouteListing{
			SourceID: r.SourceID,
			DestID:   r.DestID,
			Source:   r.SourceCode,
			Dest:     r.DestCode,
		}
		if src, dst, ok := e.resolveRoute(r); ok {
			d := e.distance(src, dst)
			listing.DistanceKm = &d
		}
		listings = append(listings, listing)
	}
	return listings
}

// DistanceBetween computes the great-circle distance between two airports by
// IATA code.
func (e *Engine) DistanceBetween(code1, code2 string) (km float64, err error) {
	start := time.Now()
	defer func() { e.observe("distance_between", start, err) }()

	a, ok := e.snap.AirportByIATA(code1)
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownAirport, code1)
	}
	b, ok := e.snap.AirportByIATA(code2)
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownAirport, code2)
	}
	if !a.Coord.Valid() || !b.Coord.Valid() {
		return 0, fmt.Errorf("%w: missing coordinates", ErrUnknownAirport)
	}
	return e.distance(a, b), nil
}
