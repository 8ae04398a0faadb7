package analysis

import (
	"fmt"
	"time"
)

// RouteSaving is the estimated per-passenger CO₂ saving for one unique
// short-haul airport pair.
type RouteSaving struct {
	Source     string  `json:"source"`
	Dest       string  `json:"dest"`
	DistanceKm float64 `json:"distance_km"`
	SavingsKg  float64 `json:"savings_kg"`
}

// EmissionReport aggregates the rail-substitution estimate for routes below
// a distance threshold.
type EmissionReport struct {
	GeneratedAt      time.Time     `json:"generated_at"`
	ThresholdKm      float64       `json:"threshold_km"`
	RoutesConsidered int           `json:"routes_considered"`
	UniquePairs      int           `json:"unique_pairs"`
	TotalSavingsKg   float64       `json:"total_savings_kg"`
	Routes           []RouteSaving `json:"routes"`
}

// EstimateEmissionReductions estimates per-passenger CO₂ savings from
// replacing flights shorter than thresholdKm with rail. A→B and B→A count as
// one pair in the totals so return legs don't double the estimate;
// RoutesConsidered still counts every matching route.
func (e *Engine) EstimateEmissionReductions(thresholdKm float64) (report EmissionReport, err error) {
	start := time.Now()
	defer func() { e.observe("estimate_emission_reductions", start, err) }()

	if thresholdKm <= 0 {
		return EmissionReport{}, fmt.Errorf("%w: threshold must be positive, got %g km", ErrInvalidRange, thresholdKm)
	}

	report.GeneratedAt = clock.Now()
	report.ThresholdKm = thresholdKm

	seen := make(map[string]bool)
	for _, r := range e.snap.Routes {
		src, dst, ok := e.resolveRoute(r)
		if !ok {
			continue
		}
		d := e.distance(src, dst)
		if d >= thresholdKm {
			continue
		}
		report.RoutesConsidered++

		key := pairKey(src.ID, dst.ID)
		if seen[key] {
			continue
		}
		seen[key] = true

		saving := e.emissions.SavingsKg(d)
		report.Routes = append(report.Routes, RouteSaving{
			Source:     airportLabel(src),
			Dest:       airportLabel(dst),
			DistanceKm: d,
			SavingsKg:  saving,
		})
		report.TotalSavingsKg += saving
	}
	report.UniquePairs = len(report.Routes)

	e.logger.Debug("emission estimate complete",
		"threshold_km", thresholdKm,
		"routes", report.RoutesConsidered,
		"unique_pairs", report.UniquePairs,
		"total_savings_kg", report.TotalSavingsKg,
	)
	return report, nil
}
