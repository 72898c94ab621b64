package pipeline

import (
	"context"
	"strings"
	"testing"

	"footprint-workers/internal/analysis"
	"footprint-workers/internal/common/logger"
	"footprint-workers/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockAnalyzer struct {
	calls     int
	lastTotal float64
}

func (m *mockAnalyzer) GenerateWithOutcome(ctx context.Context, total float64, data *models.CalculationData, breakdown models.EmissionsByCategory) (*models.AIAnalysisResponse, analysis.Outcome) {
	m.calls++
	m.lastTotal = total
	return analysis.BuildFallback(total, analysis.RankContributors(total, breakdown)), analysis.OutcomeFallbackOnly
}

func f64(v float64) *float64 { return &v }
func boolPtr(v bool) *bool   { return &v }

func TestOrchestrator_Run(t *testing.T) {
	tests := []struct {
		name           string
		raw            *models.RawUserInput
		validateOutput func(t *testing.T, env *models.ResultEnvelope)
	}{
		{
			name: "empty input uses defaults",
			raw:  &models.RawUserInput{},
			validateOutput: func(t *testing.T, env *models.ResultEnvelope) {
				assert.InDelta(t, 1912.5, env.CarbonFootprint, 1e-9)
				assert.InDelta(t, 912.5, env.EmissionsByCategory.Food, 1e-9)
				assert.InDelta(t, 1000, env.EmissionsByCategory.Consumption, 1e-9)
			},
		},
		{
			name: "utility bills",
			raw: &models.RawUserInput{
				Housing: &models.HousingInput{
					MonthlyElectricityBill: f64(120),
					UsesNaturalGas:         boolPtr(true),
					MonthlyNaturalGasBill:  f64(60),
				},
			},
			validateOutput: func(t *testing.T, env *models.ResultEnvelope) {
				assert.InDelta(t, 6960, env.EmissionsByCategory.Housing, 1e-9)
				require.NotNil(t, env.CalculationData)
				assert.InDelta(t, 9000, env.CalculationData.Housing.Energy.Electricity, 1e-9)
				assert.Equal(t, models.CategoryHousing, env.AIAnalysis.Summary.TopContributors[0].Category)
			},
		},
		{
			name: "nil input",
			raw:  nil,
			validateOutput: func(t *testing.T, env *models.ResultEnvelope) {
				assert.InDelta(t, 1912.5, env.CarbonFootprint, 1e-9)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			analyzer := &mockAnalyzer{}
			o := NewOrchestrator(analyzer, nil, logger.NewTestLogger(t))

			env := o.Run(context.Background(), "user-1", tt.raw)
			require.NotNil(t, env)

			assert.Equal(t, "user-1", env.UserID)
			assert.True(t, strings.HasPrefix(env.CalculationID, "user-1-"))
			assert.Equal(t, SuccessMessage, env.Message)
			assert.Equal(t, 4000.0, env.Averages.Global)
			assert.Equal(t, 16000.0, env.Averages.US)
			assert.Equal(t, env.EmissionsByCategory.Total(), env.CarbonFootprint)
			assert.Equal(t, env.CarbonFootprint, analyzer.lastTotal)
			assert.Equal(t, 1, analyzer.calls)
			require.NotNil(t, env.AIAnalysis)

			tt.validateOutput(t, env)
		})
	}
}

func TestOrchestrator_CalculationIDsAreUnique(t *testing.T) {
	o := NewOrchestrator(&mockAnalyzer{}, nil, logger.NewNoOpLogger())

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		env := o.Run(context.Background(), "same-user", &models.RawUserInput{})
		assert.False(t, seen[env.CalculationID], "duplicate id %s", env.CalculationID)
		seen[env.CalculationID] = true
	}
}

func TestOrchestrator_WithRealGenerator(t *testing.T) {
	gen := analysis.NewGenerator(analysis.Config{UseExternalGenerator: false}, nil, logger.NewNoOpLogger())
	o := NewOrchestrator(gen, nil, logger.NewNoOpLogger()).WithSource("test")

	env := o.Run(context.Background(), "u", &models.RawUserInput{
		Food: &models.FoodInput{DietDescription: strPtr("Vegan (no animal products)")},
	})

	assert.Equal(t, "test", o.source)
	require.Len(t, env.AIAnalysis.Recommendations, 2)
	assert.Equal(t, models.PriorityHigh, env.AIAnalysis.Recommendations[0].Priority)
	assert.Equal(t, analysis.Disclaimer, env.AIAnalysis.Disclaimer)
}

func TestOrchestrator_FixedID(t *testing.T) {
	o := NewOrchestrator(&mockAnalyzer{}, nil, logger.NewNoOpLogger())
	o.newID = func() string { return "abc" }

	env := o.Run(context.Background(), "user-9", nil)
	assert.Equal(t, "user-9-abc", env.CalculationID)
}

func strPtr(v string) *string { return &v }
