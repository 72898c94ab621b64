package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"footprint-workers/internal/analysis"
	"footprint-workers/internal/common/config"
	"footprint-workers/internal/common/errors"
	"footprint-workers/internal/common/llm"
	"footprint-workers/internal/common/logger"
	"footprint-workers/internal/models"
	"footprint-workers/internal/notify"
	"footprint-workers/internal/pipeline"
)

type calculateOptions struct {
	UserID   string
	External bool
	Compact  bool
}

type calculateRequest struct {
	UserID    string               `json:"userId"`
	UserInput *models.RawUserInput `json:"userInput"`
}

func readInput(cmd *cobra.Command, path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	return os.ReadFile(path)
}

func runCalculate(cmd *cobra.Command, path string, opts calculateOptions) error {
	data, err := readInput(cmd, path)
	if err != nil {
		return fmt.Errorf("read request: %w", err)
	}

	var req calculateRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return errors.NewParseError(err)
	}
	if opts.UserID != "" {
		req.UserID = opts.UserID
	}
	if strings.TrimSpace(req.UserID) == "" || req.UserInput == nil {
		return errors.NewInvalidRequestError("userId and userInput are required")
	}

	log := logger.NewStructured("warn", "console")
	gen, err := newGenerator(opts.External, log)
	if err != nil {
		return err
	}

	envelope := pipeline.NewOrchestrator(gen, nil, log).
		WithSource("cli").
		Run(cmd.Context(), req.UserID, req.UserInput)

	enc := json.NewEncoder(cmd.OutOrStdout())
	if !opts.Compact {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(envelope)
}

func newGenerator(external bool, log logger.Logger) (*analysis.Generator, error) {
	if !external {
		return analysis.NewGenerator(analysis.Config{}, nil, log), nil
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("config load failed: %w", err)
	}
	if !cfg.UseExternalGenerator() {
		return nil, fmt.Errorf("--external needs apis.openai.api_key outside the test environment")
	}

	client := llm.NewOpenAIClient(&llm.Config{
		BaseURL:     cfg.APIs.OpenAI.BaseURL,
		APIKey:      cfg.APIs.OpenAI.APIKey,
		Model:       cfg.APIs.OpenAI.Model,
		Temperature: cfg.APIs.OpenAI.Temperature,
		MaxTokens:   cfg.APIs.OpenAI.MaxTokens,
		Timeout:     config.GetDuration(cfg.APIs.OpenAI.Timeout),
	})
	return analysis.NewGenerator(analysis.Config{UseExternalGenerator: true}, client, log), nil
}

// summaryFrom accepts either a result envelope or a bare results summary.
func summaryFrom(data []byte) (*models.ResultsSummary, error) {
	var envelope models.ResultEnvelope
	if err := json.Unmarshal(data, &envelope); err != nil {
		return nil, errors.NewParseError(err)
	}
	if envelope.CalculationID != "" {
		s := envelope.Summary()
		return &s, nil
	}

	var summary models.ResultsSummary
	if err := json.Unmarshal(data, &summary); err != nil {
		return nil, errors.NewParseError(err)
	}
	return &summary, nil
}

func runEmailPreview(cmd *cobra.Command, path, to string, html bool) error {
	data, err := readInput(cmd, path)
	if err != nil {
		return fmt.Errorf("read results: %w", err)
	}

	summary, err := summaryFrom(data)
	if err != nil {
		return err
	}

	req := &models.ResultsEmailRequest{Email: to, Results: summary}
	if err := notify.ValidateResultsRequest(req); err != nil {
		return err
	}

	msg, err := notify.RenderResultsEmail("noreply@ecoviz.xyz", to, "https://ecoviz.xyz/results", summary)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Subject: %s\n\n", msg.Subject)
	if html {
		fmt.Fprintln(out, msg.HTMLBody)
	} else {
		fmt.Fprintln(out, msg.Body)
	}
	return nil
}
