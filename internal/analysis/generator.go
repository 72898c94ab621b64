// Package analysis ranks footprint contributors and produces the narrative
// analysis, preferring an external text generator and falling back to a
// deterministic recommendation set.
package analysis

import (
	"context"
	"errors"
	"time"

	apperrors "footprint-workers/internal/common/errors"
	"footprint-workers/internal/common/llm"
	"footprint-workers/internal/common/logger"
	"footprint-workers/internal/common/metrics"
	"footprint-workers/internal/models"
)

// Outcome is the terminal state of one Generate call.
type Outcome string

const (
	OutcomeFallbackOnly           Outcome = "fallback_only"
	OutcomeValidated              Outcome = "validated"
	OutcomeFallbackOnSubstitution Outcome = "fallback_on_substitution"
)

type Config struct {
	// UseExternalGenerator gates the external call. When false the fallback
	// is returned without contacting the generator.
	UseExternalGenerator bool
}

type Generator struct {
	config    Config
	textGen   llm.TextGenerator
	logger    logger.Logger
	observeFn func(time.Duration)
}

func NewGenerator(config Config, textGen llm.TextGenerator, log logger.Logger) *Generator {
	if textGen == nil {
		config.UseExternalGenerator = false
	}
	if log == nil {
		log = logger.NewNoOpLogger()
	}
	return &Generator{
		config:  config,
		textGen: textGen,
		logger:  log.With(map[string]interface{}{"component": "analysis-generator"}),
		observeFn: func(d time.Duration) {
			metrics.TextGenerationDuration.Observe(d.Seconds())
		},
	}
}

// Generate never fails; on any external problem it returns the fallback.
func (g *Generator) Generate(ctx context.Context, total float64, data *models.CalculationData, breakdown models.EmissionsByCategory) *models.AIAnalysisResponse {
	resp, _ := g.GenerateWithOutcome(ctx, total, data, breakdown)
	return resp
}

// GenerateWithOutcome is Generate plus the terminal state reached.
func (g *Generator) GenerateWithOutcome(ctx context.Context, total float64, data *models.CalculationData, breakdown models.EmissionsByCategory) (*models.AIAnalysisResponse, Outcome) {
	fallback := BuildFallback(total, RankContributors(total, breakdown))

	if !g.config.UseExternalGenerator {
		g.record(OutcomeFallbackOnly)
		return fallback, OutcomeFallbackOnly
	}

	resp, err := g.external(ctx, total, data, breakdown)
	if err != nil {
		appErr := classify(err)
		g.logger.Warn("External analysis unavailable, using fallback", map[string]interface{}{
			"errorCode": appErr.Code,
			"error":     err.Error(),
		})
		g.record(OutcomeFallbackOnSubstitution)
		return fallback, OutcomeFallbackOnSubstitution
	}

	g.logger.Debug("External analysis validated", map[string]interface{}{
		"recommendations": len(resp.Recommendations),
	})
	g.record(OutcomeValidated)
	return resp, OutcomeValidated
}

func (g *Generator) external(ctx context.Context, total float64, data *models.CalculationData, breakdown models.EmissionsByCategory) (*models.AIAnalysisResponse, error) {
	start := time.Now()
	text, err := g.textGen.Generate(ctx, SystemPrompt, BuildUserPrompt(total, data, breakdown))
	g.observeFn(time.Since(start))
	if err != nil {
		return nil, err
	}
	return ParseResponse(Sanitize(text))
}

func (g *Generator) record(o Outcome) {
	metrics.AnalysisOutcomes.WithLabelValues(string(o)).Inc()
}

// classify maps a substitution cause to an error code for logging.
func classify(err error) *apperrors.StandardError {
	switch {
	case errors.Is(err, llm.ErrGenerationTimeout):
		return apperrors.NewTextGenerationTimeoutError(err)
	case errors.Is(err, llm.ErrGenerationFailed), errors.Is(err, llm.ErrEmptyCompletion):
		return apperrors.NewTextGenerationFailedError(err)
	default:
		return apperrors.NewAnalysisSchemaInvalidError(err.Error())
	}
}
