// Package srs implements the spaced-repetition scheduler that evolves
// flashcard review state in response to review quality signals.
package srs

import (
	"errors"
	"time"

	"github.com/ayuh2206-ops/dnyanjyoti-api/internal/domain"
)

// Common errors
var (
	ErrNilCard        = errors.New("flashcard cannot be nil")
	ErrInvalidQuality = errors.New("invalid review quality")
)

// Service defines the interface for spaced-repetition scheduling operations.
type Service interface {
	// CalculateNextReview computes the card's new schedule state from a
	// review quality signal. The returned card is a new value; the input is
	// never modified. There is no terminal state: a card cycles between due
	// and not due indefinitely.
	CalculateNextReview(
		card *domain.Flashcard,
		quality domain.ReviewQuality,
		now time.Time,
	) (*domain.Flashcard, error)
}

// defaultService is the standard implementation of the Service interface.
type defaultService struct {
	params *Params
}

// NewDefaultService creates a new scheduler service with default parameters.
func NewDefaultService() Service {
	return &defaultService{
		params: NewDefaultParams(),
	}
}

// NewServiceWithParams creates a new scheduler service with custom parameters.
func NewServiceWithParams(params *Params) Service {
	return &defaultService{
		params: params,
	}
}

// CalculateNextReview implements the Service interface.
func (s *defaultService) CalculateNextReview(
	card *domain.Flashcard,
	quality domain.ReviewQuality,
	now time.Time,
) (*domain.Flashcard, error) {
	if card == nil {
		return nil, ErrNilCard
	}

	if !quality.IsValid() {
		return nil, ErrInvalidQuality
	}

	return nextState(card, quality, now, s.params), nil
}
