package emissions

import "footprint-workers/internal/models"

// Housing returns annual kg CO2e from electricity, natural gas and heating oil.
func Housing(h models.HousingData) float64 {
	return h.Energy.Electricity*ElectricityKgPerKWh +
		h.Energy.NaturalGas*NaturalGasKgPerTherm +
		h.Energy.HeatingOil*HeatingOilKgPerGallon
}

// Transportation returns annual kg CO2e from driving, transit and flights.
// FuelEfficiency must be positive.
func Transportation(t models.TransportationData) float64 {
	car := t.Car.MilesDriven / t.Car.FuelEfficiency * GasolineKgPerGallon
	transit := t.PublicTransit.BusMiles*BusKgPerMile + t.PublicTransit.TrainMiles*TrainKgPerMile
	flights := t.Flights.ShortHaul*ShortHaulFlightKg + t.Flights.LongHaul*LongHaulFlightKg
	return car + transit + flights
}

// Food returns annual kg CO2e for a diet and waste level.
func Food(f models.FoodData) float64 {
	return DaysPerYear * DietFactor(f.DietType) * WasteFactor(f.WasteLevel)
}

// Consumption returns annual kg CO2e for shopping and recycling habits.
func Consumption(c models.ConsumptionData) float64 {
	return BaseConsumptionKgPerYear * ShoppingFactor(c.ShoppingHabits) * RecyclingFactor(c.RecyclingHabits)
}

// CalculateByCategory evaluates the four category formulas.
func CalculateByCategory(data *models.CalculationData) models.EmissionsByCategory {
	return models.EmissionsByCategory{
		Housing:        Housing(data.Housing),
		Transportation: Transportation(data.Transportation),
		Food:           Food(data.Food),
		Consumption:    Consumption(data.Consumption),
	}
}

// CalculateTotal returns the annual footprint. It sums in the same order as
// EmissionsByCategory.Total so the two agree bit for bit.
func CalculateTotal(data *models.CalculationData) float64 {
	return CalculateByCategory(data).Total()
}
