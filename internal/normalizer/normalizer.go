// Package normalizer turns raw questionnaire answers into canonical
// calculation data. It never fails: missing answers become zero or neutral
// defaults.
package normalizer

import (
	"strings"

	"footprint-workers/internal/emissions"
	"footprint-workers/internal/models"
)

const (
	weeksPerYear  = emissions.WeeksPerYear
	monthsPerYear = emissions.MonthsPerYear

	defaultHousingType = "apartment"
	defaultHousingSize = 1000
)

// Normalize converts raw input to CalculationData. A nil input is treated as
// an empty questionnaire.
func Normalize(raw *models.RawUserInput) *models.CalculationData {
	if raw == nil {
		raw = &models.RawUserInput{}
	}
	return &models.CalculationData{
		Housing:        normalizeHousing(raw.Housing),
		Transportation: normalizeTransportation(raw.Transportation),
		Food:           normalizeFood(raw.Food),
		Consumption:    normalizeConsumption(raw.Consumption),
	}
}

// ElectricityKWh converts a monthly bill to annual kWh at the default rate.
func ElectricityKWh(monthlyBill float64) float64 {
	return monthlyBill * monthsPerYear / emissions.ElectricityDollarsPerKWh
}

// NaturalGasTherms converts a monthly bill to annual therms at the default rate.
func NaturalGasTherms(monthlyBill float64) float64 {
	return monthlyBill * monthsPerYear / emissions.NaturalGasDollarsPerTherm
}

func normalizeHousing(h *models.HousingInput) models.HousingData {
	out := models.HousingData{Type: defaultHousingType, Size: defaultHousingSize}
	if h == nil {
		return out
	}

	if bill := num(h.MonthlyElectricityBill); bill > 0 {
		out.Energy.Electricity = ElectricityKWh(bill)
	}
	if flag(h.UsesNaturalGas) {
		if bill := num(h.MonthlyNaturalGasBill); bill > 0 {
			out.Energy.NaturalGas = NaturalGasTherms(bill)
		}
	}
	if flag(h.UsesHeatingOil) {
		out.Energy.HeatingOil = num(h.HeatingOilFillsPerYear) * num(h.HeatingOilTankSizeGallons)
	}
	return out
}

// carAnswered reports whether any commute or vehicle question in the car
// group was answered.
func carAnswered(car *models.CarInput) bool {
	return car.Make != nil || car.Model != nil || car.Year != nil ||
		car.CommuteMilesOneWay != nil || car.CommuteDaysPerWeek != nil
}

func normalizeTransportation(t *models.TransportationInput) models.TransportationData {
	out := models.TransportationData{
		Car: models.CarData{FuelEfficiency: DefaultMPG},
	}
	if t == nil {
		return out
	}

	if car := t.Car; car != nil {
		commute := num(car.CommuteMilesOneWay) * 2 * num(car.CommuteDaysPerWeek) * weeksPerYear
		errandsRange := str(car.WeeklyErrandsMilesRange)
		if strings.TrimSpace(errandsRange) == "" && carAnswered(car) {
			errandsRange = DefaultErrandsRange
		}
		errands := ErrandsAnnualMiles(errandsRange)
		out.Car.MilesDriven = commute + errands

		vehicleMake, model := strings.TrimSpace(str(car.Make)), strings.TrimSpace(str(car.Model))
		if vehicleMake != "" && model != "" && car.Year != nil && *car.Year > 0 {
			out.Car.FuelEfficiency = EstimateFuelEfficiency(vehicleMake, model, *car.Year)
		}
	}

	if pt := t.PublicTransit; pt != nil {
		out.PublicTransit.BusMiles = num(pt.WeeklyBusMiles) * weeksPerYear
		out.PublicTransit.TrainMiles = num(pt.WeeklyTrainMiles) * weeksPerYear
	}

	if f := t.Flights; f != nil {
		out.Flights.ShortHaul = num(f.Under3Hours)
		out.Flights.LongHaul = num(f.Between3And6Hours) + num(f.Over6Hours)
	}
	return out
}

func normalizeFood(f *models.FoodInput) models.FoodData {
	out := models.FoodData{DietType: models.DietAverage, WasteLevel: models.WasteAverage}
	if f != nil {
		out.DietType = MapDietDescription(str(f.DietDescription))
	}
	return out
}

func normalizeConsumption(c *models.ConsumptionInput) models.ConsumptionData {
	out := models.ConsumptionData{
		ShoppingHabits:  models.ShoppingAverage,
		RecyclingHabits: models.RecyclingSome,
	}
	if c != nil {
		out.ShoppingHabits = MapShoppingFrequency(str(c.ShoppingFrequencyDescription))
		out.RecyclingHabits = MapRecyclingHabits(c.RecycledMaterials)
	}
	return out
}

// num reads an optional quantity; absent and negative values count as zero.
func num(p *float64) float64 {
	if p == nil || *p < 0 {
		return 0
	}
	return *p
}

func flag(p *bool) bool {
	return p != nil && *p
}

func str(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
