// Package pipeline sequences normalization, calculation and analysis into a
// single result envelope.
package pipeline

import (
	"context"
	"time"

	"footprint-workers/internal/analysis"
	"footprint-workers/internal/common/logger"
	"footprint-workers/internal/common/metrics"
	"footprint-workers/internal/common/observability"
	"footprint-workers/internal/emissions"
	"footprint-workers/internal/models"
	"footprint-workers/internal/normalizer"

	"github.com/google/uuid"
)

// SuccessMessage is returned on every completed envelope.
const SuccessMessage = "Carbon footprint calculation and AI analysis completed successfully"

// Analyzer produces the narrative analysis for a computed footprint.
type Analyzer interface {
	GenerateWithOutcome(ctx context.Context, total float64, data *models.CalculationData, breakdown models.EmissionsByCategory) (*models.AIAnalysisResponse, analysis.Outcome)
}

type Orchestrator struct {
	analyzer Analyzer
	obs      *observability.Observability
	logger   logger.Logger
	source   string
	newID    func() string
}

func NewOrchestrator(analyzer Analyzer, obs *observability.Observability, log logger.Logger) *Orchestrator {
	if log == nil {
		log = logger.NewNoOpLogger()
	}
	return &Orchestrator{
		analyzer: analyzer,
		obs:      obs,
		logger:   log.With(map[string]interface{}{"component": "pipeline"}),
		source:   "direct",
		newID:    func() string { return uuid.New().String() },
	}
}

// WithSource returns a copy that labels its runs with the given entry point.
func (o *Orchestrator) WithSource(source string) *Orchestrator {
	cp := *o
	cp.source = source
	return &cp
}

// Run computes the footprint and analysis for one request.
func (o *Orchestrator) Run(ctx context.Context, userID string, raw *models.RawUserInput) *models.ResultEnvelope {
	start := time.Now()

	data := normalizer.Normalize(raw)
	if err := data.Validate(); err != nil {
		o.logger.Warn("Normalized calculation data failed validation", map[string]interface{}{
			"userId": userID,
			"error":  err.Error(),
		})
	}

	breakdown := emissions.CalculateByCategory(data)
	total := breakdown.Total()

	aiAnalysis, outcome := o.analyzer.GenerateWithOutcome(ctx, total, data, breakdown)

	envelope := &models.ResultEnvelope{
		UserID:              userID,
		CalculationID:       userID + "-" + o.newID(),
		CarbonFootprint:     total,
		EmissionsByCategory: breakdown,
		CalculationData:     data,
		AIAnalysis:          aiAnalysis,
		Averages:            emissions.ReferenceAverages(),
		Message:             SuccessMessage,
	}

	duration := time.Since(start)
	metrics.FootprintCalculations.WithLabelValues(o.source).Inc()
	o.obs.RecordRun(ctx, string(outcome), duration, total)

	o.logger.Info("Footprint calculated", map[string]interface{}{
		"userId":          userID,
		"calculationId":   envelope.CalculationID,
		"carbonFootprint": total,
		"analysisOutcome": string(outcome),
		"duration":        duration.String(),
	})

	return envelope
}
