// Package llm defines the boundary to the hosted text-generation provider.
// It follows the interface-at-the-consumer pattern: the application core
// depends on Client, and the concrete Gemini implementation lives under
// internal/platform/gemini.
package llm

import "context"

// Tier selects the quality/cost level of the underlying model.
type Tier string

// Provider quality tiers.
const (
	TierFast  Tier = "fast"
	TierSmart Tier = "smart"
)

// Options configures one completion request.
type Options struct {
	// Tier selects which underlying model answers the request.
	// Defaults to TierFast when empty.
	Tier Tier

	// Temperature controls sampling randomness. Zero means the provider
	// default.
	Temperature float32

	// MaxTokens caps the response length. Zero means the configured default.
	MaxTokens int

	// SystemPrompt is prepended as the system instruction when non-empty.
	SystemPrompt string
}

// Response is the normalized success shape of a provider call. TokensUsed is
// the provider's own token accounting and is metadata only; it is distinct
// from the user-facing credit cost.
type Response struct {
	Text       string
	TokensUsed int
	Model      string
}

// Client wraps the remote text-generation capability. Implementations
// normalize provider failures to the sentinel errors in this package and
// never retry: a failed call is surfaced immediately.
type Client interface {
	Complete(ctx context.Context, prompt string, opts Options) (*Response, error)
}
