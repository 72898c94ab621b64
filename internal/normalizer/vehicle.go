package normalizer

import "strings"

// DefaultMPG applies when make, model or year is missing.
const DefaultMPG = 25

// ElectricEquivalentMPG is the flat MPG-equivalent for electric vehicles.
const ElectricEquivalentMPG = 100

// VehicleClass is the efficiency bucket a vehicle falls into.
type VehicleClass string

const (
	ClassHybrid       VehicleClass = "hybrid"
	ClassElectric     VehicleClass = "electric"
	ClassLuxuryLarge  VehicleClass = "luxury-or-large"
	ClassEconomy      VehicleClass = "compact-economy"
	ClassUnclassified VehicleClass = "unclassified"
)

// mpgBands holds year-banded MPG: 2020 and later, 2010 and later, older.
type mpgBands struct {
	recent, modern, older float64
}

func (b mpgBands) forYear(year int) float64 {
	switch {
	case year >= 2020:
		return b.recent
	case year >= 2010:
		return b.modern
	default:
		return b.older
	}
}

var (
	hybridMPG      = mpgBands{recent: 52, modern: 45, older: 40}
	luxuryLargeMPG = mpgBands{recent: 22, modern: 18, older: 15}
	economyMPG     = mpgBands{recent: 32, modern: 28, older: 25}

	hybridPatterns       = []string{"PRIUS", "HYBRID"}
	electricPatterns     = []string{"TESLA", "ELECTRIC", "EV"}
	luxuryMakes          = []string{"BMW", "MERCEDES", "AUDI", "LEXUS"}
	largeVehiclePatterns = []string{"SUV", "TRUCK"}
	economyMakes         = []string{"HONDA", "TOYOTA", "NISSAN", "HYUNDAI"}
	economyModels        = []string{"CIVIC", "COROLLA", "SENTRA", "ELANTRA"}
)

// ClassifyVehicle buckets a vehicle. Checks run in a fixed order and the
// first match wins: hybrid, electric, luxury or large, compact economy.
// Make lists match exactly; pattern lists match as substrings.
func ClassifyVehicle(vehicleMake, model string) VehicleClass {
	makeUpper := strings.ToUpper(strings.TrimSpace(vehicleMake))
	modelUpper := strings.ToUpper(strings.TrimSpace(model))

	switch {
	case containsAny(modelUpper, hybridPatterns):
		return ClassHybrid
	case containsAny(makeUpper, electricPatterns) || containsAny(modelUpper, electricPatterns):
		return ClassElectric
	case equalsAny(makeUpper, luxuryMakes) || containsAny(modelUpper, largeVehiclePatterns):
		return ClassLuxuryLarge
	case equalsAny(makeUpper, economyMakes) && containsAny(modelUpper, economyModels):
		return ClassEconomy
	default:
		return ClassUnclassified
	}
}

// EstimateFuelEfficiency returns an MPG estimate for a vehicle.
func EstimateFuelEfficiency(vehicleMake, model string, year int) float64 {
	switch ClassifyVehicle(vehicleMake, model) {
	case ClassHybrid:
		return hybridMPG.forYear(year)
	case ClassElectric:
		return ElectricEquivalentMPG
	case ClassLuxuryLarge:
		return luxuryLargeMPG.forYear(year)
	case ClassEconomy:
		return economyMPG.forYear(year)
	default:
		return generalMPGForYear(year)
	}
}

func generalMPGForYear(year int) float64 {
	switch {
	case year >= 2020:
		return 28
	case year >= 2015:
		return 26
	case year >= 2010:
		return 24
	default:
		return 20
	}
}

func containsAny(s string, patterns []string) bool {
	for _, p := range patterns {
		if strings.Contains(s, p) {
			return true
		}
	}
	return false
}

func equalsAny(s string, values []string) bool {
	for _, v := range values {
		if s == v {
			return true
		}
	}
	return false
}
