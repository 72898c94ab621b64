package analysis

import (
	"fmt"
	"math"
	"strings"

	"footprint-workers/internal/emissions"
	"footprint-workers/internal/models"
)

// Disclaimer is attached to every fallback analysis.
const Disclaimer = "These recommendations are generated based on your emission profile and should be considered as general advice. Consult environmental experts for personalized strategies."

const (
	primaryReduction   = 0.20
	secondaryReduction = 0.15
)

// BuildFallback builds the deterministic analysis from ranked contributors.
// contributors must hold all four categories sorted by RankContributors.
func BuildFallback(total float64, contributors []models.Contributor) *models.AIAnalysisResponse {
	top := contributors
	if len(top) > TopContributorCount {
		top = top[:TopContributorCount]
	}
	topCopy := make([]models.Contributor, len(top))
	copy(topCopy, top)

	first, second := contributors[0], contributors[1]

	return &models.AIAnalysisResponse{
		Summary: models.AnalysisSummary{
			TotalEmissions: total,
			ComparisonToAverages: models.Comparison{
				Global: total / emissions.GlobalAverageKgPerYear,
				US:     total / emissions.USAverageKgPerYear,
			},
			TopContributors: topCopy,
		},
		Recommendations: []models.Recommendation{
			{
				Title:         fmt.Sprintf("Reduce %s Emissions", titleCase(first.Category)),
				Description:   fmt.Sprintf("Your largest contributor is %s at %.1f%% of your total emissions.", first.Category, first.Percentage),
				DataReference: fmt.Sprintf("Based on your %s data", first.Category),
				PotentialImpact: models.PotentialImpact{
					CO2Reduction: math.Round(first.Emissions * primaryReduction),
					Unit:         models.ImpactUnit,
				},
				Goal:     fmt.Sprintf("Reduce %s emissions by 20%%", first.Category),
				Priority: models.PriorityHigh,
				Category: first.Category,
			},
			{
				Title:         fmt.Sprintf("Optimize %s", titleCase(second.Category)),
				Description:   fmt.Sprintf("Your second largest contributor is %s at %.1f%% of emissions.", second.Category, second.Percentage),
				DataReference: fmt.Sprintf("Based on your %s data", second.Category),
				PotentialImpact: models.PotentialImpact{
					CO2Reduction: math.Round(second.Emissions * secondaryReduction),
					Unit:         models.ImpactUnit,
				},
				Goal:     fmt.Sprintf("Reduce %s emissions by 15%%", second.Category),
				Priority: models.PriorityMedium,
				Category: second.Category,
			},
		},
		Disclaimer: Disclaimer,
	}
}

func titleCase(c models.Category) string {
	s := string(c)
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
