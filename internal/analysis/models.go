package analysis

import (
	"fmt"
	"sort"
	"time"
)

// ModelCount is one aircraft model with its route occurrence count.
type ModelCount struct {
	Model string `json:"model"`
	Count int    `json:"count"`
}

// AircraftModels counts route occurrences per aircraft model and returns the
// top n, descending by count. Ties keep first-encounter order (stable sort).
// A route listing several equipment codes counts once per code; codes that do
// not resolve to a known model are skipped. When countries are given, only
// routes departing an airport in one of them are counted; routes whose source
// airport does not resolve are then excluded too.
func (e *Engine) AircraftModels(n int, countries ...string) (models []ModelCount, err error) {
	start := time.Now()
	defer func() { e.observe("aircraft_models", start, err) }()

	if n <= 0 {
		return nil, fmt.Errorf("%w: top-n must be positive, got %d", ErrInvalidRange, n)
	}

	countrySet := make(map[string]bool, len(countries))
	for _, c := range countries {
		countrySet[c] = true
	}

	counts := make(map[string]int)
	var order []string
	for _, r := range e.snap.Routes {
		if len(countrySet) > 0 {
			src, ok := e.snap.AirportByID(r.SourceID)
			if !ok || !countrySet[src.Country] {
				continue
			}
		}
		for _, code := range r.Equipment {
			name, ok := e.snap.ModelForCode(code)
			if !ok {
				continue
			}
			if _, seen := counts[name]; !seen {
				order = append(order, name)
			}
			counts[name]++
		}
	}

	models = make([]ModelCount, 0, len(order))
	for _, name := range order {
		models = append(models, ModelCount{Model: name, Count: counts[name]})
	}
	sort.SliceStable(models, func(i, j int) bool {
		return models[i].Count > models[j].Count
	})

	if len(models) > n {
		models = models[:n]
	}
	return models, nil
}

// AircraftList returns the distinct aircraft model names in dataset order.
func (e *Engine) AircraftList() []string {
	start := time.Now()
	defer func() { e.observe("aircraft_list", start, nil) }()

	seen := make(map[string]bool, len(e.snap.Airplanes))
	var names []string
	for _, a := range e.snap.Airplanes {
		if a.Name == "" || seen[a.Name] {
			continue
		}
		seen[a.Name] = true
		names = append(names, a.Name)
	}
	return names
}
