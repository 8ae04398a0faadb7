package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters, histograms, and gauges for the
// dataset loader and analysis engine.
type Metrics struct {
	RowsLoaded    *prometheus.GaugeVec // labels: table={airlines,airplanes,airports,routes}
	LoadDuration  prometheus.Histogram
	QueriesTotal  *prometheus.CounterVec   // labels: operation, outcome={success,error}
	QueryDuration *prometheus.HistogramVec // labels: operation

	UnresolvedRoutes prometheus.Counter
	DistanceCache    *prometheus.CounterVec // labels: result={hit,miss}
}

// NewMetrics creates and registers all toolkit metrics with the default
// Prometheus registry.
func NewMetrics() *Metrics {
	m := newMetrics()
	prometheus.MustRegister(
		m.RowsLoaded,
		m.LoadDuration,
		m.QueriesTotal,
		m.QueryDuration,
		m.UnresolvedRoutes,
		m.DistanceCache,
	)
	return m
}

// NewMetricsForTesting creates Metrics without registering them, avoiding
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

func newMetrics() *Metrics {
	return &Metrics{
		RowsLoaded: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "airtraffic",
			Name:      "rows_loaded",
			Help:      "Rows loaded per dataset table.",
		}, []string{"table"}),
		LoadDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "airtraffic",
			Name:      "load_duration_seconds",
			Help:      "Duration of a complete four-table dataset load.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}),
		QueriesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "airtraffic",
			Name:      "queries_total",
			Help:      "Analysis queries by operation and outcome.",
		}, []string{"operation", "outcome"}),
		QueryDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "airtraffic",
			Name:      "query_duration_seconds",
			Help:      "Analysis query duration in seconds.",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 2.5},
		}, []string{"operation"}),
		UnresolvedRoutes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "airtraffic",
			Name:      "unresolved_routes_total",
			Help:      "Routes skipped in geo computations because an endpoint did not resolve.",
		}),
		DistanceCache: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "airtraffic",
			Name:      "distance_cache_total",
			Help:      "Route distance cache lookups by result.",
		}, []string{"result"}),
	}
}
