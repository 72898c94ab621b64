package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validData() *CalculationData {
	return &CalculationData{
		Housing: HousingData{Type: "apartment", Size: 1000, Energy: EnergyData{Electricity: 9000}},
		Transportation: TransportationData{
			Car: CarData{MilesDriven: 12000, FuelEfficiency: 25},
		},
		Food:        FoodData{DietType: DietAverage, WasteLevel: WasteAverage},
		Consumption: ConsumptionData{ShoppingHabits: ShoppingAverage, RecyclingHabits: RecyclingSome},
	}
}

func TestCalculationData_Validate(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(d *CalculationData)
		errParts []string
	}{
		{
			name:   "valid",
			mutate: func(d *CalculationData) {},
		},
		{
			name:     "negative electricity",
			mutate:   func(d *CalculationData) { d.Housing.Energy.Electricity = -1 },
			errParts: []string{"housing.energy.electricity cannot be negative"},
		},
		{
			name:     "zero fuel efficiency",
			mutate:   func(d *CalculationData) { d.Transportation.Car.FuelEfficiency = 0 },
			errParts: []string{"fuelEfficiency must be at least 0.1"},
		},
		{
			name: "unknown enums",
			mutate: func(d *CalculationData) {
				d.Food.DietType = "carnivore"
				d.Consumption.RecyclingHabits = "sometimes"
			},
			errParts: []string{`food.dietType "carnivore"`, `consumption.recyclingHabits "sometimes"`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := validData()
			tt.mutate(d)
			err := d.Validate()
			if len(tt.errParts) == 0 {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			for _, part := range tt.errParts {
				assert.Contains(t, err.Error(), part)
			}
		})
	}
}

func TestEmissionsByCategory_TotalAndGet(t *testing.T) {
	e := EmissionsByCategory{Housing: 6960, Transportation: 4267.2, Food: 912.5, Consumption: 1000}

	assert.Equal(t, e.Housing+e.Transportation+e.Food+e.Consumption, e.Total())
	for _, c := range Categories {
		assert.True(t, c.IsValid())
	}
	assert.Equal(t, 912.5, e.Get(CategoryFood))
	assert.Equal(t, 0.0, e.Get("water"))
	assert.False(t, Category("Housing").IsValid())
}

func TestResultEnvelope_Summary(t *testing.T) {
	env := &ResultEnvelope{
		CarbonFootprint:     13139.7,
		EmissionsByCategory: EmissionsByCategory{Housing: 6960, Transportation: 4267.2, Food: 912.5, Consumption: 1000},
	}

	s := env.Summary()
	assert.Equal(t, 13139.7, s.CarbonFootprint)
	assert.Equal(t, 6960.0, s.Housing)
	assert.Equal(t, 1000.0, s.Consumption)
}
