package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmissionModel_SavingsKg(t *testing.T) {
	m := DefaultEmissionModel()

	t.Run("default factors", func(t *testing.T) {
		// 1000 km * (255 - 41) g/km = 214 kg per passenger.
		assert.InDelta(t, 214.0, m.SavingsKg(1000), 1e-9)
	})

	t.Run("zero and negative distance save nothing", func(t *testing.T) {
		assert.Zero(t, m.SavingsKg(0))
		assert.Zero(t, m.SavingsKg(-500))
	})

	t.Run("savings scale linearly", func(t *testing.T) {
		assert.InDelta(t, 2*m.SavingsKg(300), m.SavingsKg(600), 1e-9)
	})
}

func TestEmissionModel_Validate(t *testing.T) {
	require.NoError(t, DefaultEmissionModel().Validate())

	tests := []struct {
		name  string
		model EmissionModel
	}{
		{"zero air factor", EmissionModel{AirGramsPerKm: 0, RailGramsPerKm: 41}},
		{"negative rail factor", EmissionModel{AirGramsPerKm: 255, RailGramsPerKm: -1}},
		{"rail dirtier than air", EmissionModel{AirGramsPerKm: 41, RailGramsPerKm: 255}},
		{"equal factors", EmissionModel{AirGramsPerKm: 100, RailGramsPerKm: 100}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, tt.model.Validate())
		})
	}
}
