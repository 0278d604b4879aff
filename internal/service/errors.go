package service

import (
	"errors"
	"fmt"
)

// Common service errors - sentinel errors used across service implementations.
// Callers check for these with errors.Is; the API layer maps them to HTTP
// status codes.
var (
	// ErrNotOwned indicates a resource is owned by a different user than the
	// one making the request. API layer maps this to HTTP 403 Forbidden.
	ErrNotOwned = errors.New("resource is owned by another user")

	// ErrInvalidInput indicates a request failed local validation before any
	// credits were spent. API layer maps this to HTTP 400 Bad Request.
	ErrInvalidInput = errors.New("invalid input")
)

// AIServiceError wraps errors from the AI service with the failed operation
// and a human-readable message, supporting errors.Is/errors.As through
// Unwrap.
type AIServiceError struct {
	Operation string
	Message   string
	Err       error
}

// Error implements the error interface for AIServiceError.
func (e *AIServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("ai service %s failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("ai service %s failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *AIServiceError) Unwrap() error {
	return e.Err
}

// NewAIServiceError creates a new AIServiceError.
func NewAIServiceError(operation, message string, err error) *AIServiceError {
	return &AIServiceError{
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}
