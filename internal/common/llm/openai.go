// Package llm talks to an OpenAI-compatible chat completions endpoint.
package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	commonhttp "footprint-workers/internal/common/http"
)

var (
	ErrGenerationTimeout = errors.New("TEXT_GENERATION_TIMEOUT")
	ErrGenerationFailed  = errors.New("TEXT_GENERATION_FAILED")
	ErrEmptyCompletion   = errors.New("empty completion")
)

// TextGenerator turns a system instruction and a user prompt into free-form
// text. Implementations make a single attempt.
type TextGenerator interface {
	Generate(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

type Config struct {
	BaseURL     string
	APIKey      string
	Model       string
	Temperature float64
	MaxTokens   int
	Timeout     time.Duration
}

// OpenAIClient implements TextGenerator against /chat/completions.
type OpenAIClient struct {
	config *Config
	http   *commonhttp.Client
}

func NewOpenAIClient(config *Config) *OpenAIClient {
	return &OpenAIClient{
		config: config,
		// No client timeout; the caller's context bounds the call.
		http: commonhttp.NewClient(0),
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

func (c *OpenAIClient) Generate(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	if c.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.config.Timeout)
		defer cancel()
	}

	req := chatRequest{
		Model: c.config.Model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPrompt},
		},
		Temperature: c.config.Temperature,
		MaxTokens:   c.config.MaxTokens,
	}

	headers := map[string]string{
		"Authorization": "Bearer " + c.config.APIKey,
	}

	var resp chatResponse
	url := strings.TrimRight(c.config.BaseURL, "/") + "/chat/completions"
	if err := c.http.PostJSON(ctx, url, headers, req, &resp); err != nil {
		if ctx.Err() != nil {
			return "", fmt.Errorf("%w: %v", ErrGenerationTimeout, err)
		}
		return "", fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}

	if len(resp.Choices) == 0 || strings.TrimSpace(resp.Choices[0].Message.Content) == "" {
		return "", fmt.Errorf("%w: %v", ErrGenerationFailed, ErrEmptyCompletion)
	}
	return resp.Choices[0].Message.Content, nil
}
