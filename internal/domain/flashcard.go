package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// ReviewQuality is the quantized 5-point quality signal a user reports after
// reviewing a flashcard. Only the four named buckets are valid.
type ReviewQuality int

// Recognized review quality buckets.
const (
	QualityAgain ReviewQuality = 1
	QualityHard  ReviewQuality = 3
	QualityGood  ReviewQuality = 4
	QualityEasy  ReviewQuality = 5
)

// IsValid reports whether q is one of the recognized quality buckets.
func (q ReviewQuality) IsValid() bool {
	switch q {
	case QualityAgain, QualityHard, QualityGood, QualityEasy:
		return true
	default:
		return false
	}
}

// Flashcard-specific validation errors
var (
	ErrCardIDEmpty       = errors.New("flashcard ID cannot be empty")
	ErrCardUserIDEmpty   = errors.New("flashcard user ID cannot be empty")
	ErrCardFrontEmpty    = errors.New("flashcard front cannot be empty")
	ErrCardBackEmpty     = errors.New("flashcard back cannot be empty")
	ErrInvalidInterval   = errors.New("interval must be greater than or equal to 0")
	ErrInvalidEaseFactor = errors.New("ease factor must be at least 1.3")
	ErrInvalidRepetition = errors.New("repetitions must be greater than or equal to 0")
)

// MinEaseFactor is the floor below which a card's ease factor never drops.
const MinEaseFactor = 1.3

// DefaultEaseFactor is the ease factor assigned to newly created cards.
const DefaultEaseFactor = 2.5

// Flashcard is a spaced-repetition card together with its review schedule
// state. Schedule fields (Repetitions, EaseFactor, IntervalDays,
// NextReviewAt) are mutated only by the srs package in response to a review
// event; everything else is fixed at creation.
//
// Due-ness is always derived by comparing NextReviewAt to the current time.
// There is no stored "due" flag to go stale.
type Flashcard struct {
	ID           uuid.UUID `json:"id"`
	UserID       uuid.UUID `json:"user_id"`
	Front        string    `json:"front"`
	Back         string    `json:"back"`
	Topic        string    `json:"topic"`
	Subject      string    `json:"subject"`
	Difficulty   string    `json:"difficulty"`
	Repetitions  int       `json:"repetitions"`
	EaseFactor   float64   `json:"ease_factor"`
	IntervalDays int       `json:"interval_days"`
	NextReviewAt time.Time `json:"next_review_at"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// NewFlashcard creates a new Flashcard owned by userID with fresh review
// state: zero repetitions, the default ease factor, a zero interval, and an
// immediate next review. Returns an error if validation fails.
func NewFlashcard(userID uuid.UUID, front, back, topic, subject, difficulty string) (*Flashcard, error) {
	now := time.Now().UTC()
	card := &Flashcard{
		ID:           uuid.New(),
		UserID:       userID,
		Front:        front,
		Back:         back,
		Topic:        topic,
		Subject:      subject,
		Difficulty:   difficulty,
		Repetitions:  0,
		EaseFactor:   DefaultEaseFactor,
		IntervalDays: 0,
		NextReviewAt: now, // available for review immediately
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := card.Validate(); err != nil {
		return nil, err
	}

	return card, nil
}

// Validate checks if the Flashcard has valid data.
// Returns an error if any field fails validation.
func (c *Flashcard) Validate() error {
	if c.ID == uuid.Nil {
		return ErrCardIDEmpty
	}

	if c.UserID == uuid.Nil {
		return ErrCardUserIDEmpty
	}

	if c.Front == "" {
		return ErrCardFrontEmpty
	}

	if c.Back == "" {
		return ErrCardBackEmpty
	}

	if c.Repetitions < 0 {
		return ErrInvalidRepetition
	}

	if c.EaseFactor < MinEaseFactor {
		return ErrInvalidEaseFactor
	}

	if c.IntervalDays < 0 {
		return ErrInvalidInterval
	}

	return nil
}

// IsDue reports whether the card is due for review at the given time.
// This comparison is the sole source of truth for review sessions.
func (c *Flashcard) IsDue(now time.Time) bool {
	return !c.NextReviewAt.After(now)
}
