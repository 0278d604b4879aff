package gemini

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"google.golang.org/genai"

	"github.com/ayuh2206-ops/dnyanjyoti-api/internal/config"
	"github.com/ayuh2206-ops/dnyanjyoti-api/internal/llm"
)

// ErrEmptyPrompt is returned when a completion is requested with no prompt.
var ErrEmptyPrompt = errors.New("prompt cannot be empty")

// Client implements the llm.Client interface using Google's Gemini API.
// It selects between the configured fast and smart models per request and
// bounds every call with the configured timeout.
type Client struct {
	logger *slog.Logger
	config config.LLMConfig
	client *genai.Client
}

// NewClient creates a new Gemini-backed llm.Client with the provided
// dependencies. Returns llm.ErrUnconfigured if no API key is set.
func NewClient(ctx context.Context, logger *slog.Logger, cfg config.LLMConfig) (*Client, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	if cfg.GeminiAPIKey == "" {
		return nil, fmt.Errorf("%w: gemini API key cannot be empty", llm.ErrUnconfigured)
	}

	if cfg.FastModel == "" || cfg.SmartModel == "" {
		return nil, fmt.Errorf("%w: model names cannot be empty", llm.ErrUnconfigured)
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.GeminiAPIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create Gemini client: %v", llm.ErrUnconfigured, err)
	}

	return &Client{
		logger: logger.With(slog.String("component", "gemini_client")),
		config: cfg,
		client: client,
	}, nil
}

// Ensure Client implements llm.Client interface
var _ llm.Client = (*Client)(nil)

// Complete implements llm.Client.Complete
// It makes a single call to the Gemini API with no retries: a failed call
// is surfaced immediately, normalized to the llm package's sentinel errors.
func (c *Client) Complete(ctx context.Context, prompt string, opts llm.Options) (*llm.Response, error) {
	if prompt == "" {
		return nil, ErrEmptyPrompt
	}

	model := c.modelFor(opts.Tier)

	maxTokens := opts.MaxTokens
	if maxTokens <= 0 {
		maxTokens = c.config.MaxOutputTokens
	}

	genCfg := &genai.GenerateContentConfig{
		MaxOutputTokens: int32(maxTokens),
	}
	if opts.Temperature > 0 {
		genCfg.Temperature = genai.Ptr(opts.Temperature)
	}
	if opts.SystemPrompt != "" {
		genCfg.SystemInstruction = genai.NewContentFromText(opts.SystemPrompt, genai.RoleUser)
	}

	timeout := time.Duration(c.config.RequestTimeoutSeconds) * time.Second
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	c.logger.InfoContext(ctx, "making Gemini API call",
		slog.String("model", model),
		slog.Int("prompt_length", len(prompt)))

	start := time.Now()
	resp, err := c.client.Models.GenerateContent(ctx, model, genai.Text(prompt), genCfg)
	if err != nil {
		normalized := normalizeError(err)
		c.logger.ErrorContext(ctx, "Gemini API call failed",
			slog.String("model", model),
			slog.String("error", err.Error()),
			slog.Duration("elapsed", time.Since(start)))
		return nil, normalized
	}

	text := resp.Text()
	if text == "" {
		c.logger.ErrorContext(ctx, "Gemini API returned no text",
			slog.String("model", model))
		return nil, fmt.Errorf("%w: empty response", llm.ErrUnknown)
	}

	tokensUsed := 0
	if resp.UsageMetadata != nil {
		tokensUsed = int(resp.UsageMetadata.TotalTokenCount)
	}

	c.logger.InfoContext(ctx, "Gemini API call successful",
		slog.String("model", model),
		slog.Int("tokens_used", tokensUsed),
		slog.Duration("elapsed", time.Since(start)))

	return &llm.Response{
		Text:       text,
		TokensUsed: tokensUsed,
		Model:      model,
	}, nil
}

// modelFor maps a quality tier to a configured model name.
// Unrecognized tiers fall back to the fast model.
func (c *Client) modelFor(tier llm.Tier) string {
	if tier == llm.TierSmart {
		return c.config.SmartModel
	}
	return c.config.FastModel
}

// normalizeError maps a Gemini API error to the llm package's sentinel
// errors, preserving the original error for debugging.
func normalizeError(err error) error {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.Code {
		case http.StatusUnauthorized, http.StatusForbidden:
			return fmt.Errorf("%w: %v", llm.ErrAuthInvalid, err)
		case http.StatusTooManyRequests:
			return fmt.Errorf("%w: %v", llm.ErrRateLimited, err)
		}
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: request timed out: %v", llm.ErrUnknown, err)
	}

	return fmt.Errorf("%w: %v", llm.ErrUnknown, err)
}
