// Package analysis exposes query operations over a loaded dataset Snapshot:
// route distance analysis, per-country and per-airport flight counts,
// aircraft model frequency, and short-haul emission-reduction estimates.
// All operations are pure reads; the only internal mutable state is the
// memoized route distance cache.
package analysis

import (
	"errors"
	"log/slog"
	"time"

	"github.com/couchcryptid/air-traffic-analysis/internal/dataset"
	"github.com/couchcryptid/air-traffic-analysis/internal/domain"
	"github.com/couchcryptid/air-traffic-analysis/internal/observability"
)

// Sentinel errors returned by query operations. Callers match with errors.Is.
var (
	// ErrInvalidRange reports a malformed numeric parameter: an inverted or
	// negative distance filter, a non-positive threshold or top-N count.
	ErrInvalidRange = errors.New("invalid range")

	// ErrNoAirports reports an empty country filter result.
	ErrNoAirports = errors.New("no airports found")

	// ErrUnknownAirport reports an airport code that does not resolve.
	ErrUnknownAirport = errors.New("unknown airport")

	// ErrNoRoutes reports a flight query that matched no routes.
	ErrNoRoutes = errors.New("no routes found")
)

// Engine answers analysis queries over an immutable dataset snapshot.
type Engine struct {
	snap      *dataset.Snapshot
	emissions domain.EmissionModel
	logger    *slog.Logger
	metrics   *observability.Metrics
	distances *distanceCache
}

// New creates an Engine over the given snapshot. cacheSize bounds the route
// distance memo; values below 1 disable caching.
func New(snap *dataset.Snapshot, model domain.EmissionModel, logger *slog.Logger, metrics *observability.Metrics, cacheSize int) *Engine {
	return &Engine{
		snap:      snap,
		emissions: model,
		logger:    logger,
		metrics:   metrics,
		distances: newDistanceCache(cacheSize),
	}
}

// observe records the outcome and duration of one query operation.
func (e *Engine) observe(op string, start time.Time, err error) {
	outcome := "success"
	if err != nil {
		outcome = "error"
	}
	e.metrics.QueriesTotal.WithLabelValues(op, outcome).Inc()
	e.metrics.QueryDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
}

// resolveRoute looks up both endpoints of a route. It fails when either
// reference is unknown or either airport lacks valid coordinates; such
// routes are excluded from geo-dependent computations, never treated as
// zero-distance.
func (e *Engine) resolveRoute(r domain.Route) (src, dst domain.Airport, ok bool) {
	src, okSrc := e.snap.AirportByID(r.SourceID)
	dst, okDst := e.snap.AirportByID(r.DestID)
	if !okSrc || !okDst || !src.Coord.Valid() || !dst.Coord.Valid() {
		e.metrics.UnresolvedRoutes.Inc()
		return domain.Airport{}, domain.Airport{}, false
	}
	return src, dst, true
}

// distance returns the great-circle distance between two airports, memoized
// per undirected airport-ID pair.
func (e *Engine) distance(a, b domain.Airport) float64 {
	key := pairKey(a.ID, b.ID)
	if d, ok := e.distances.get(key); ok {
		e.metrics.DistanceCache.WithLabelValues("hit").Inc()
		return d
	}
	e.metrics.DistanceCache.WithLabelValues("miss").Inc()

	d := domain.Haversine(a.Coord, b.Coord)
	e.distances.put(key, d)
	return d
}

// pairKey canonicalizes an airport-ID pair. Distance is symmetric, so both
// directions of a route share a cache entry.
func pairKey(id1, id2 string) string {
	if id2 < id1 {
		id1, id2 = id2, id1
	}
	return id1 + "|" + id2
}

// airportLabel prefers the IATA code and falls back to the OpenFlights ID.
func airportLabel(a domain.Airport) string {
	if a.IATA != "" {
		return a.IATA
	}
	return a.ID
}
