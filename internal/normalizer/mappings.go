package normalizer

import (
	"strings"

	"footprint-workers/internal/models"
)

// Questionnaire phrases as the form submits them.
const (
	DietMeatInMostMeals  = "Meat in most meals"
	DietMeatFewTimesWeek = "Meat a few times a week"
	DietVegetarianNoMeat = "Vegetarian (no meat)"
	DietVeganNoAnimal    = "Vegan (no animal products)"

	ShoppingFrequently = "I buy new things frequently."
	ShoppingNowAndThen = "I buy new things every now and then."
	ShoppingRarely     = "I rarely buy new things and prefer second-hand."

	RecyclingNoneOfThese = "None of these"
)

var dietPhrases = map[string]models.DietType{
	DietMeatInMostMeals:  models.DietMeatHeavy,
	DietMeatFewTimesWeek: models.DietAverage,
	DietVegetarianNoMeat: models.DietVegetarian,
	DietVeganNoAnimal:    models.DietVegan,
}

var shoppingPhrases = map[string]models.ShoppingHabit{
	ShoppingFrequently: models.ShoppingFrequent,
	ShoppingNowAndThen: models.ShoppingAverage,
	ShoppingRarely:     models.ShoppingMinimal,
}

// Weekly errand miles by range descriptor.
var errandsWeeklyMiles = map[string]float64{
	"0-25":   12.5,
	"25-50":  37.5,
	"50-100": 75,
	"100+":   125,
}

const defaultErrandsWeeklyMiles = 37.5

// MapDietDescription maps a diet phrase to a diet type; unknown phrases are average.
func MapDietDescription(description string) models.DietType {
	if d, ok := dietPhrases[description]; ok {
		return d
	}
	return models.DietAverage
}

// MapShoppingFrequency maps a shopping phrase to a habit; unknown phrases are average.
func MapShoppingFrequency(description string) models.ShoppingHabit {
	if s, ok := shoppingPhrases[description]; ok {
		return s
	}
	return models.ShoppingAverage
}

// MapRecyclingHabits classifies the recycled materials list. A nil list means
// the question was not answered and maps to the neutral "some".
func MapRecyclingHabits(materials []string) models.RecyclingHabit {
	if materials == nil {
		return models.RecyclingSome
	}

	distinct := make(map[string]struct{}, len(materials))
	for _, m := range materials {
		m = strings.TrimSpace(m)
		if m == "" {
			continue
		}
		if m == RecyclingNoneOfThese {
			return models.RecyclingNone
		}
		distinct[m] = struct{}{}
	}

	switch {
	case len(distinct) >= 3:
		return models.RecyclingAll
	case len(distinct) >= 1:
		return models.RecyclingSome
	default:
		return models.RecyclingNone
	}
}

// DefaultErrandsRange is assumed when the car group is answered but the
// errands question is left blank.
const DefaultErrandsRange = "25-50"

// ErrandsAnnualMiles converts a weekly range descriptor to annual miles. An
// empty descriptor means no errands; an unrecognized one uses the 25-50 midpoint.
func ErrandsAnnualMiles(rangeDescriptor string) float64 {
	rangeDescriptor = strings.TrimSpace(rangeDescriptor)
	if rangeDescriptor == "" {
		return 0
	}
	weekly, ok := errandsWeeklyMiles[rangeDescriptor]
	if !ok {
		weekly = defaultErrandsWeeklyMiles
	}
	return weekly * weeksPerYear
}
