// Package review provides the flashcard review workflow: listing due cards
// and applying the spaced-repetition schedule transition when a user reports
// a review quality.
package review

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ayuh2206-ops/dnyanjyoti-api/internal/domain"
)

// Common error types for ReviewService
var (
	// ErrCardNotFound indicates that the card does not exist.
	ErrCardNotFound = errors.New("card not found")

	// ErrCardNotOwned indicates that the user does not own the card.
	ErrCardNotOwned = errors.New("unauthorized access: card not owned by user")

	// ErrInvalidQuality indicates an unrecognized review quality value.
	ErrInvalidQuality = errors.New("invalid review quality")
)

// ReviewService drives flashcard review sessions.
type ReviewService interface {
	// GetDueCards returns the user's cards whose next review time is at or
	// before now, oldest first. Due-ness is computed from the schedule at
	// call time; there is no stored flag.
	GetDueCards(ctx context.Context, userID uuid.UUID) ([]*domain.Flashcard, error)

	// SubmitReview applies a review quality signal to a card: it verifies
	// the card exists and belongs to the user, computes the new schedule
	// state, and persists it. The read and write happen in one transaction.
	//
	// Returns ErrCardNotFound, ErrCardNotOwned, or ErrInvalidQuality for
	// the expected failure modes.
	SubmitReview(
		ctx context.Context,
		userID uuid.UUID,
		cardID uuid.UUID,
		quality domain.ReviewQuality,
	) (*domain.Flashcard, error)

	// DeleteCard removes a card owned by the user.
	// Returns ErrCardNotFound if no such card exists for this user.
	DeleteCard(ctx context.Context, userID, cardID uuid.UUID) error
}

// ServiceError wraps errors from the review service with additional context,
// supporting errors.Is/errors.As through Unwrap.
type ServiceError struct {
	Operation string
	Message   string
	Err       error
}

// Error implements the error interface for ServiceError.
func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s operation failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("%s operation failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ServiceError) Unwrap() error {
	return e.Err
}

// timeFunc returns the current time; injectable for testing.
type timeFunc func() time.Time
