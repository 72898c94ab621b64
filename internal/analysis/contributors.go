package analysis

import (
	"sort"

	"footprint-workers/internal/models"
)

// TopContributorCount is how many ranked categories the summary keeps.
const TopContributorCount = 3

// Percentages returns each category's share of total. A zero total yields
// zero shares rather than NaN.
func Percentages(total float64, breakdown models.EmissionsByCategory) map[models.Category]float64 {
	out := make(map[models.Category]float64, len(models.Categories))
	for _, c := range models.Categories {
		if total == 0 {
			out[c] = 0
			continue
		}
		out[c] = 100 * breakdown.Get(c) / total
	}
	return out
}

// RankContributors returns all four categories sorted by percentage,
// descending. Ties keep canonical category order.
func RankContributors(total float64, breakdown models.EmissionsByCategory) []models.Contributor {
	pct := Percentages(total, breakdown)
	contributors := make([]models.Contributor, 0, len(models.Categories))
	for _, c := range models.Categories {
		contributors = append(contributors, models.Contributor{
			Category:   c,
			Percentage: pct[c],
			Emissions:  breakdown.Get(c),
		})
	}
	sort.SliceStable(contributors, func(i, j int) bool {
		return contributors[i].Percentage > contributors[j].Percentage
	})
	return contributors
}
