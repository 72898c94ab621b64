package models

type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// ImpactUnit is the only unit a recommendation's impact may carry.
const ImpactUnit = "kg/year"

// Contributor pairs a category with its share of the total.
type Contributor struct {
	Category   Category `json:"category"`
	Percentage float64  `json:"percentage"`
	Emissions  float64  `json:"emissions"`
}

type Comparison struct {
	Global float64 `json:"global"`
	US     float64 `json:"us"`
}

type AnalysisSummary struct {
	TotalEmissions       float64       `json:"totalEmissions"`
	ComparisonToAverages Comparison    `json:"comparisonToAverages"`
	TopContributors      []Contributor `json:"topContributors"`
}

type PotentialImpact struct {
	CO2Reduction float64 `json:"co2Reduction"`
	Unit         string  `json:"unit"`
}

type Recommendation struct {
	Title           string          `json:"title"`
	Description     string          `json:"description"`
	DataReference   string          `json:"dataReference"`
	PotentialImpact PotentialImpact `json:"potentialImpact"`
	Goal            string          `json:"goal"`
	Priority        Priority        `json:"priority"`
	Category        Category        `json:"category"`
}

type AIAnalysisResponse struct {
	Summary         AnalysisSummary  `json:"summary"`
	Recommendations []Recommendation `json:"recommendations"`
	Disclaimer      string           `json:"disclaimer"`
}

// Averages are reference annual footprints in kg CO2e.
type Averages struct {
	Global float64 `json:"global"`
	US     float64 `json:"us"`
}

// ResultEnvelope is what a calculation request returns.
type ResultEnvelope struct {
	UserID              string              `json:"userId"`
	CalculationID       string              `json:"calculationId"`
	CarbonFootprint     float64             `json:"carbonFootprint"`
	EmissionsByCategory EmissionsByCategory `json:"emissionsByCategory"`
	CalculationData     *CalculationData    `json:"calculationData,omitempty"`
	AIAnalysis          *AIAnalysisResponse `json:"aiAnalysis"`
	Averages            Averages            `json:"averages"`
	Message             string              `json:"message"`
}

// ResultsSummary is the figure set the results email needs.
type ResultsSummary struct {
	CarbonFootprint float64 `json:"carbonFootprint"`
	Housing         float64 `json:"housing"`
	Transportation  float64 `json:"transportation"`
	Food            float64 `json:"food"`
	Consumption     float64 `json:"consumption"`
}

// Summary extracts the email figures from an envelope.
func (r *ResultEnvelope) Summary() ResultsSummary {
	return ResultsSummary{
		CarbonFootprint: r.CarbonFootprint,
		Housing:         r.EmissionsByCategory.Housing,
		Transportation:  r.EmissionsByCategory.Transportation,
		Food:            r.EmissionsByCategory.Food,
		Consumption:     r.EmissionsByCategory.Consumption,
	}
}
