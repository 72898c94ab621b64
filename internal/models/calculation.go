package models

// Category is one of the four footprint partitions.
type Category string

const (
	CategoryHousing        Category = "housing"
	CategoryTransportation Category = "transportation"
	CategoryFood           Category = "food"
	CategoryConsumption    Category = "consumption"
)

// Categories lists the partitions in their canonical order. Ranking ties keep
// this order.
var Categories = []Category{
	CategoryHousing,
	CategoryTransportation,
	CategoryFood,
	CategoryConsumption,
}

type DietType string

const (
	DietMeatHeavy  DietType = "meat-heavy"
	DietAverage    DietType = "average"
	DietVegetarian DietType = "vegetarian"
	DietVegan      DietType = "vegan"
)

type WasteLevel string

const (
	WasteLow     WasteLevel = "low"
	WasteAverage WasteLevel = "average"
	WasteHigh    WasteLevel = "high"
)

type ShoppingHabit string

const (
	ShoppingMinimal  ShoppingHabit = "minimal"
	ShoppingAverage  ShoppingHabit = "average"
	ShoppingFrequent ShoppingHabit = "frequent"
)

type RecyclingHabit string

const (
	RecyclingNone RecyclingHabit = "none"
	RecyclingSome RecyclingHabit = "some"
	RecyclingMost RecyclingHabit = "most"
	RecyclingAll  RecyclingHabit = "all"
)

// CalculationData is the canonical, physically typed footprint input.
type CalculationData struct {
	Housing        HousingData        `json:"housing"`
	Transportation TransportationData `json:"transportation"`
	Food           FoodData           `json:"food"`
	Consumption    ConsumptionData    `json:"consumption"`
}

type HousingData struct {
	Type   string     `json:"type"`
	Size   float64    `json:"size"`
	Energy EnergyData `json:"energy"`
}

// EnergyData holds annual quantities: kWh, therms and gallons.
type EnergyData struct {
	Electricity float64 `json:"electricity"`
	NaturalGas  float64 `json:"naturalGas"`
	HeatingOil  float64 `json:"heatingOil"`
}

type TransportationData struct {
	Car           CarData           `json:"car"`
	PublicTransit PublicTransitData `json:"publicTransit"`
	Flights       FlightsData       `json:"flights"`
}

type CarData struct {
	MilesDriven    float64 `json:"milesDriven"`
	FuelEfficiency float64 `json:"fuelEfficiency"`
}

type PublicTransitData struct {
	BusMiles   float64 `json:"busMiles"`
	TrainMiles float64 `json:"trainMiles"`
}

type FlightsData struct {
	ShortHaul float64 `json:"shortHaul"`
	LongHaul  float64 `json:"longHaul"`
}

type FoodData struct {
	DietType   DietType   `json:"dietType"`
	WasteLevel WasteLevel `json:"wasteLevel"`
}

type ConsumptionData struct {
	ShoppingHabits  ShoppingHabit  `json:"shoppingHabits"`
	RecyclingHabits RecyclingHabit `json:"recyclingHabits"`
}

// EmissionsByCategory is annual kg CO2e per category.
type EmissionsByCategory struct {
	Housing        float64 `json:"housing"`
	Transportation float64 `json:"transportation"`
	Food           float64 `json:"food"`
	Consumption    float64 `json:"consumption"`
}

// Total sums the categories in canonical order.
func (e EmissionsByCategory) Total() float64 {
	return e.Housing + e.Transportation + e.Food + e.Consumption
}

// Get returns the emissions for c, or 0 for an unknown category.
func (e EmissionsByCategory) Get(c Category) float64 {
	switch c {
	case CategoryHousing:
		return e.Housing
	case CategoryTransportation:
		return e.Transportation
	case CategoryFood:
		return e.Food
	case CategoryConsumption:
		return e.Consumption
	default:
		return 0
	}
}
