package domain

import "fmt"

// Default emission factors in grams of CO₂ per passenger-kilometer.
// Illustrative averages, not externally validated; override via config.
const (
	DefaultAirGramsPerKm  = 255.0
	DefaultRailGramsPerKm = 41.0
)

// EmissionModel estimates per-passenger CO₂ savings from substituting rail
// for short-haul flights, using fixed linear emission factors.
type EmissionModel struct {
	AirGramsPerKm  float64
	RailGramsPerKm float64
}

// DefaultEmissionModel returns an EmissionModel with the default factors.
func DefaultEmissionModel() EmissionModel {
	return EmissionModel{
		AirGramsPerKm:  DefaultAirGramsPerKm,
		RailGramsPerKm: DefaultRailGramsPerKm,
	}
}

// Validate checks that both factors are positive and that air emits more
// than rail; a model that saved nothing (or went negative) would make every
// downstream estimate meaningless.
func (m EmissionModel) Validate() error {
	if m.AirGramsPerKm <= 0 || m.RailGramsPerKm <= 0 {
		return fmt.Errorf("emission factors must be positive (air=%g, rail=%g)", m.AirGramsPerKm, m.RailGramsPerKm)
	}
	if m.AirGramsPerKm <= m.RailGramsPerKm {
		return fmt.Errorf("air factor (%g) must exceed rail factor (%g)", m.AirGramsPerKm, m.RailGramsPerKm)
	}
	return nil
}

// SavingsKg returns the estimated per-passenger CO₂ savings in kilograms
// for replacing a flight of the given distance with rail.
func (m EmissionModel) SavingsKg(distanceKm float64) float64 {
	if distanceKm <= 0 {
		return 0
	}
	return distanceKm * (m.AirGramsPerKm - m.RailGramsPerKm) / 1000.0
}
