package llm

import "errors"

// Normalized provider failure modes. Implementations wrap these with %w so
// callers can classify failures with errors.Is without knowing the provider.
var (
	// ErrUnconfigured is returned when no API key is configured for the
	// provider.
	ErrUnconfigured = errors.New("llm provider is not configured")

	// ErrAuthInvalid is returned when the provider rejects the configured
	// credentials.
	ErrAuthInvalid = errors.New("llm provider rejected credentials")

	// ErrRateLimited is returned when the provider throttles the request.
	ErrRateLimited = errors.New("llm provider rate limit exceeded")

	// ErrUnknown covers every other provider failure, including network
	// errors and malformed responses.
	ErrUnknown = errors.New("llm provider request failed")
)
