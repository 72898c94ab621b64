package models

// RawUserInput is the loosely structured questionnaire payload. Every group
// and field is optional; nil means "no data".
type RawUserInput struct {
	Housing        *HousingInput        `json:"housing,omitempty"`
	Transportation *TransportationInput `json:"transportation,omitempty"`
	Food           *FoodInput           `json:"food,omitempty"`
	Consumption    *ConsumptionInput    `json:"consumption,omitempty"`
	Location       *LocationInput       `json:"location,omitempty"`
}

type HousingInput struct {
	MonthlyElectricityBill    *float64 `json:"monthlyElectricityBill,omitempty"`
	UsesNaturalGas            *bool    `json:"usesNaturalGas,omitempty"`
	MonthlyNaturalGasBill     *float64 `json:"monthlyNaturalGasBill,omitempty"`
	UsesHeatingOil            *bool    `json:"usesHeatingOil,omitempty"`
	HeatingOilFillsPerYear    *float64 `json:"heatingOilFillsPerYear,omitempty"`
	HeatingOilTankSizeGallons *float64 `json:"heatingOilTankSizeGallons,omitempty"`
}

type TransportationInput struct {
	Car           *CarInput           `json:"car,omitempty"`
	PublicTransit *PublicTransitInput `json:"publicTransit,omitempty"`
	Flights       *FlightsInput       `json:"flights,omitempty"`
}

type CarInput struct {
	Make                    *string  `json:"make,omitempty"`
	Model                   *string  `json:"model,omitempty"`
	Year                    *int     `json:"year,omitempty"`
	CommuteMilesOneWay      *float64 `json:"commuteMilesOneWay,omitempty"`
	CommuteDaysPerWeek      *float64 `json:"commuteDaysPerWeek,omitempty"`
	WeeklyErrandsMilesRange *string  `json:"weeklyErrandsMilesRange,omitempty"`
}

type PublicTransitInput struct {
	WeeklyBusMiles   *float64 `json:"weeklyBusMiles,omitempty"`
	WeeklyTrainMiles *float64 `json:"weeklyTrainMiles,omitempty"`
}

// FlightsInput counts round trips per year by flight duration.
type FlightsInput struct {
	Under3Hours       *float64 `json:"under3Hours,omitempty"`
	Between3And6Hours *float64 `json:"between3And6Hours,omitempty"`
	Over6Hours        *float64 `json:"over6Hours,omitempty"`
}

type FoodInput struct {
	DietDescription *string `json:"dietDescription,omitempty"`
}

type ConsumptionInput struct {
	ShoppingFrequencyDescription *string  `json:"shoppingFrequencyDescription,omitempty"`
	RecycledMaterials            []string `json:"recycledMaterials,omitempty"`
}

// LocationInput is carried through but does not affect the math.
type LocationInput struct {
	ZipCode *string `json:"zipCode,omitempty"`
	Country *string `json:"country,omitempty"`
}
