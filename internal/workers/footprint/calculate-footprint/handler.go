// internal/workers/footprint/calculate-footprint/handler.go
package calculatefootprint

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"strings"

	"footprint-workers/internal/common/errors"
	"footprint-workers/internal/common/logger"
	"footprint-workers/internal/common/metrics"
	"footprint-workers/internal/models"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
)

const (
	TaskType = "calculate-footprint"
)

// Runner runs the footprint pipeline for one user.
type Runner interface {
	Run(ctx context.Context, userID string, raw *models.RawUserInput) *models.ResultEnvelope
}

type Handler struct {
	config       *Config
	runner       Runner
	errorHandler *errors.ErrorHandler
	logger       logger.Logger
}

func NewHandler(config *Config, runner Runner, log logger.Logger) *Handler {
	l := log.With(map[string]interface{}{
		"taskType": TaskType,
	})
	return &Handler{
		config:       config,
		runner:       runner,
		errorHandler: errors.NewErrorHandler(l),
		logger:       l,
	}
}

func (h *Handler) Handle(client worker.JobClient, job entities.Job) {
	h.logger.Info("processing job", map[string]interface{}{
		"jobKey":      job.Key,
		"workflowKey": job.ProcessInstanceKey,
	})

	ctx, cancel := context.WithTimeout(context.Background(), h.config.Timeout)
	defer cancel()

	var input Input
	if err := json.Unmarshal([]byte(job.Variables), &input); err != nil {
		h.fail(ctx, client, job, errors.NewParseError(err))
		return
	}

	output, err := h.execute(ctx, &input)
	if err != nil {
		h.fail(ctx, client, job, err)
		return
	}

	h.completeJob(client, job, output)
}

func (h *Handler) execute(ctx context.Context, input *Input) (output *Output, err error) {
	if strings.TrimSpace(input.UserID) == "" || input.UserInput == nil {
		return nil, errors.NewInvalidRequestError("userId and userInput are required")
	}

	defer func() {
		if p := recover(); p != nil {
			h.logger.Error("footprint pipeline panicked", map[string]interface{}{
				"userId": input.UserID,
				"panic":  fmt.Sprint(p),
			})
			output, err = nil, errors.NewCalculationFailedError(fmt.Errorf("panic: %v", p))
		}
	}()

	envelope := h.runner.Run(ctx, input.UserID, input.UserInput)
	if envelope == nil {
		return nil, errors.NewCalculationFailedError(stderrors.New("pipeline returned no result"))
	}

	return &Output{
		Footprint: envelope,
		Results:   envelope.Summary(),
	}, nil
}

func (h *Handler) completeJob(client worker.JobClient, job entities.Job, output *Output) {
	cmd, err := client.NewCompleteJobCommand().
		JobKey(job.Key).
		VariablesFromObject(output)
	if err != nil {
		h.logger.Error("Failed to create complete job command", map[string]interface{}{
			"jobKey": job.Key,
			"error":  err.Error(),
		})
		return
	}

	if _, err := cmd.Send(context.Background()); err != nil {
		h.logger.Error("Failed to send complete job command", map[string]interface{}{
			"jobKey": job.Key,
			"error":  err.Error(),
		})
		return
	}
	metrics.WorkerJobsCompleted.WithLabelValues(TaskType).Inc()
}

func (h *Handler) fail(ctx context.Context, client worker.JobClient, job entities.Job, err error) {
	metrics.WorkerJobsFailed.WithLabelValues(TaskType, string(errors.Normalize(err).Code)).Inc()
	h.errorHandler.HandleJobError(ctx, client, job, err)
}

// Execute method for direct usage
func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	return h.execute(ctx, input)
}
