package models

import (
	"errors"
	"fmt"
)

// MinFuelEfficiency is the smallest usable mpg figure.
const MinFuelEfficiency = 0.1

var (
	validDiets     = map[DietType]bool{DietMeatHeavy: true, DietAverage: true, DietVegetarian: true, DietVegan: true}
	validWaste     = map[WasteLevel]bool{WasteLow: true, WasteAverage: true, WasteHigh: true}
	validShopping  = map[ShoppingHabit]bool{ShoppingMinimal: true, ShoppingAverage: true, ShoppingFrequent: true}
	validRecycling = map[RecyclingHabit]bool{RecyclingNone: true, RecyclingSome: true, RecyclingMost: true, RecyclingAll: true}
)

// Validate checks the canonical invariants: every quantity non-negative,
// fuel efficiency at least MinFuelEfficiency and every categorical value
// known. All violations are joined into one error.
func (d *CalculationData) Validate() error {
	var errs []error

	nonNegative := func(field string, v float64) {
		if v < 0 {
			errs = append(errs, fmt.Errorf("%s cannot be negative", field))
		}
	}

	nonNegative("housing.size", d.Housing.Size)
	nonNegative("housing.energy.electricity", d.Housing.Energy.Electricity)
	nonNegative("housing.energy.naturalGas", d.Housing.Energy.NaturalGas)
	nonNegative("housing.energy.heatingOil", d.Housing.Energy.HeatingOil)
	nonNegative("transportation.car.milesDriven", d.Transportation.Car.MilesDriven)
	nonNegative("transportation.publicTransit.busMiles", d.Transportation.PublicTransit.BusMiles)
	nonNegative("transportation.publicTransit.trainMiles", d.Transportation.PublicTransit.TrainMiles)
	nonNegative("transportation.flights.shortHaul", d.Transportation.Flights.ShortHaul)
	nonNegative("transportation.flights.longHaul", d.Transportation.Flights.LongHaul)

	if d.Transportation.Car.FuelEfficiency < MinFuelEfficiency {
		errs = append(errs, fmt.Errorf("transportation.car.fuelEfficiency must be at least %.1f", MinFuelEfficiency))
	}
	if !validDiets[d.Food.DietType] {
		errs = append(errs, fmt.Errorf("food.dietType %q is not recognized", d.Food.DietType))
	}
	if !validWaste[d.Food.WasteLevel] {
		errs = append(errs, fmt.Errorf("food.wasteLevel %q is not recognized", d.Food.WasteLevel))
	}
	if !validShopping[d.Consumption.ShoppingHabits] {
		errs = append(errs, fmt.Errorf("consumption.shoppingHabits %q is not recognized", d.Consumption.ShoppingHabits))
	}
	if !validRecycling[d.Consumption.RecyclingHabits] {
		errs = append(errs, fmt.Errorf("consumption.recyclingHabits %q is not recognized", d.Consumption.RecyclingHabits))
	}

	return errors.Join(errs...)
}

// IsValid reports whether c is one of the four categories.
func (c Category) IsValid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}
