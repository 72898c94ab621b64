package analysis

import (
	"fmt"
	"strconv"
	"strings"

	"footprint-workers/internal/models"
)

const formatInstructions = `You must respond with a JSON object that matches this exact structure:
{
  "summary": {
    "totalEmissions": number,
    "comparisonToAverages": {
      "global": number,
      "us": number
    },
    "topContributors": [
      {
        "category": string,
        "percentage": number,
        "emissions": number
      }
    ]
  },
  "recommendations": [
    {
      "title": string,
      "description": string,
      "dataReference": string,
      "potentialImpact": {
        "co2Reduction": number,
        "unit": "kg/year"
      },
      "goal": string,
      "priority": "high" | "medium" | "low",
      "category": "housing" | "transportation" | "food" | "consumption"
    }
  ],
  "disclaimer": string
}`

// SystemPrompt is the fixed instruction sent with every analysis request.
var SystemPrompt = "You are a precise environmental sustainability expert. Analyze carbon footprint data and provide structured recommendations.\n\n" +
	"IMPORTANT: Respond with ONLY pure JSON - no markdown code blocks, no ```json tags, no additional text. Just the raw JSON object.\n\n" +
	formatInstructions

// BuildUserPrompt embeds the computed figures and category details.
func BuildUserPrompt(total float64, data *models.CalculationData, breakdown models.EmissionsByCategory) string {
	pct := Percentages(total, breakdown)
	flights := data.Transportation.Flights.ShortHaul + data.Transportation.Flights.LongHaul

	var b strings.Builder
	fmt.Fprintf(&b, "Analyze this user's carbon footprint (%.0f kg CO2e/year):\n\n", total)
	b.WriteString("Emissions by category:\n")
	fmt.Fprintf(&b, "- Housing: %.0f kg CO2e/year (%.1f%%) - %s, %s kWh electricity, %s therms gas\n",
		breakdown.Housing, pct[models.CategoryHousing], data.Housing.Type,
		plain(data.Housing.Energy.Electricity), plain(data.Housing.Energy.NaturalGas))
	fmt.Fprintf(&b, "- Transportation: %.0f kg CO2e/year (%.1f%%) - %s miles driven, %s flights/year\n",
		breakdown.Transportation, pct[models.CategoryTransportation],
		plain(data.Transportation.Car.MilesDriven), plain(flights))
	fmt.Fprintf(&b, "- Food: %.0f kg CO2e/year (%.1f%%) - %s diet, %s waste level\n",
		breakdown.Food, pct[models.CategoryFood], data.Food.DietType, data.Food.WasteLevel)
	fmt.Fprintf(&b, "- Consumption: %.0f kg CO2e/year (%.1f%%) - %s shopping, %s recycling\n\n",
		breakdown.Consumption, pct[models.CategoryConsumption],
		data.Consumption.ShoppingHabits, data.Consumption.RecyclingHabits)

	b.WriteString("Global average: 4000 kg CO2e/year\n")
	b.WriteString("US average: 16000 kg CO2e/year\n\n")

	b.WriteString("Provide a structured analysis with:\n")
	b.WriteString("1. Summary with emissions comparison and top 3 contributors\n")
	b.WriteString("2. 3 specific, actionable recommendations focusing on the highest impact categories\n")
	b.WriteString("3. Include potential CO2 reduction estimates and realistic goals for each recommendation\n")
	b.WriteString("4. Set appropriate priority levels (high/medium/low) based on impact potential\n")
	b.WriteString("5. Include a standard disclaimer about AI-generated advice\n\n")

	b.WriteString("IMPORTANT: Use exact lowercase values for category fields:\n")
	for _, c := range models.Categories {
		fmt.Fprintf(&b, "- %q (not %q)\n", string(c), titleCase(c))
	}
	b.WriteString("\nRespond with ONLY the JSON object, no markdown formatting.")

	return b.String()
}

// plain formats a quantity with the shortest exact representation.
func plain(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
