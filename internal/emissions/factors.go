// Package emissions holds the emission coefficients and the pure per-category
// footprint formulas.
package emissions

import "footprint-workers/internal/models"

// Coefficients in kg CO2e per unit.
const (
	ElectricityKgPerKWh      = 0.42
	NaturalGasKgPerTherm     = 5.3
	HeatingOilKgPerGallon    = 10.15
	GasolineKgPerGallon      = 8.89
	BusKgPerMile             = 0.059
	TrainKgPerMile           = 0.041
	ShortHaulFlightKg        = 1100
	LongHaulFlightKg         = 4400
	BaseConsumptionKgPerYear = 1000
)

// Reference annual averages in kg CO2e.
const (
	GlobalAverageKgPerYear = 4000
	USAverageKgPerYear     = 16000
)

// Default utility rates used to turn bills into consumption.
const (
	ElectricityDollarsPerKWh  = 0.16
	NaturalGasDollarsPerTherm = 1.20
)

const (
	DaysPerYear   = 365
	MonthsPerYear = 12
	WeeksPerYear  = 52
)

var dietDailyKg = map[models.DietType]float64{
	models.DietMeatHeavy:  3.3,
	models.DietAverage:    2.5,
	models.DietVegetarian: 1.7,
	models.DietVegan:      1.5,
}

var wasteMultipliers = map[models.WasteLevel]float64{
	models.WasteLow:     0.9,
	models.WasteAverage: 1.0,
	models.WasteHigh:    1.1,
}

var shoppingMultipliers = map[models.ShoppingHabit]float64{
	models.ShoppingMinimal:  0.5,
	models.ShoppingAverage:  1.0,
	models.ShoppingFrequent: 1.5,
}

var recyclingMultipliers = map[models.RecyclingHabit]float64{
	models.RecyclingNone: 1.2,
	models.RecyclingSome: 1.0,
	models.RecyclingMost: 0.8,
	models.RecyclingAll:  0.6,
}

// DietFactor returns the daily kg CO2e for a diet; unknown diets count as average.
func DietFactor(d models.DietType) float64 {
	if v, ok := dietDailyKg[d]; ok {
		return v
	}
	return dietDailyKg[models.DietAverage]
}

// WasteFactor returns the food waste multiplier; unknown levels count as average.
func WasteFactor(w models.WasteLevel) float64 {
	if v, ok := wasteMultipliers[w]; ok {
		return v
	}
	return wasteMultipliers[models.WasteAverage]
}

// ShoppingFactor returns the shopping multiplier; unknown habits count as average.
func ShoppingFactor(s models.ShoppingHabit) float64 {
	if v, ok := shoppingMultipliers[s]; ok {
		return v
	}
	return shoppingMultipliers[models.ShoppingAverage]
}

// RecyclingFactor returns the recycling multiplier; unknown habits count as some.
func RecyclingFactor(r models.RecyclingHabit) float64 {
	if v, ok := recyclingMultipliers[r]; ok {
		return v
	}
	return recyclingMultipliers[models.RecyclingSome]
}

// ReferenceAverages returns the global and US reference footprints.
func ReferenceAverages() models.Averages {
	return models.Averages{Global: GlobalAverageKgPerYear, US: USAverageKgPerYear}
}
