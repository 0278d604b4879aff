package srs

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayuh2206-ops/dnyanjyoti-api/internal/domain"
)

func TestCalculateNewEaseFactor(t *testing.T) {
	t.Parallel()
	params := NewDefaultParams()

	testCases := []struct {
		name     string
		current  float64
		quality  domain.ReviewQuality
		expected float64
	}{
		{
			name:     "again reduces ease factor",
			current:  2.5,
			quality:  domain.QualityAgain,
			expected: 2.3,
		},
		{
			name:     "hard reduces ease factor less than again",
			current:  2.5,
			quality:  domain.QualityHard,
			expected: 2.35,
		},
		{
			name:     "good leaves ease factor unchanged",
			current:  2.5,
			quality:  domain.QualityGood,
			expected: 2.5,
		},
		{
			name:     "easy raises ease factor",
			current:  2.5,
			quality:  domain.QualityEasy,
			expected: 2.65,
		},
		{
			name:     "again at the floor stays at the floor",
			current:  1.3,
			quality:  domain.QualityAgain,
			expected: 1.3,
		},
		{
			name:     "reduction never crosses the floor",
			current:  1.4,
			quality:  domain.QualityAgain,
			expected: 1.3,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := calculateNewEaseFactor(tc.current, tc.quality, params)
			assert.InDelta(t, tc.expected, got, 1e-9)
		})
	}
}

func TestCalculateNewInterval(t *testing.T) {
	t.Parallel()
	params := NewDefaultParams()

	testCases := []struct {
		name     string
		current  int
		newReps  int
		ef       float64
		quality  domain.ReviewQuality
		expected int
	}{
		{
			name:     "again resets interval",
			current:  30,
			newReps:  0,
			ef:       2.5,
			quality:  domain.QualityAgain,
			expected: params.AgainInterval,
		},
		{
			name:     "first repetition gets the short fixed interval",
			current:  0,
			newReps:  1,
			ef:       2.5,
			quality:  domain.QualityGood,
			expected: params.FirstInterval,
		},
		{
			name:     "second repetition gets the longer fixed interval",
			current:  1,
			newReps:  2,
			ef:       2.5,
			quality:  domain.QualityGood,
			expected: params.SecondInterval,
		},
		{
			name:     "later repetitions multiply by the ease factor",
			current:  6,
			newReps:  3,
			ef:       2.5,
			quality:  domain.QualityGood,
			expected: 15, // 6 * 2.5
		},
		{
			name:     "multiplication rounds to nearest day",
			current:  10,
			newReps:  4,
			ef:       1.35,
			quality:  domain.QualityHard,
			expected: 14, // 10 * 1.35 = 13.5 → 14
		},
		{
			name:     "interval never drops below one day",
			current:  0,
			newReps:  3,
			ef:       1.3,
			quality:  domain.QualityGood,
			expected: 1,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := calculateNewInterval(tc.current, tc.newReps, tc.ef, tc.quality, params)
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestNextStateAgainResetsRepetitions(t *testing.T) {
	t.Parallel()
	params := NewDefaultParams()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	card := newTestCard(t)
	card.Repetitions = 5
	card.IntervalDays = 40
	card.EaseFactor = 2.1

	next := nextState(card, domain.QualityAgain, now, params)

	assert.Equal(t, 0, next.Repetitions)
	assert.Equal(t, params.AgainInterval, next.IntervalDays)
	assert.InDelta(t, 1.9, next.EaseFactor, 1e-9)
	assert.Equal(t, now.AddDate(0, 0, params.AgainInterval), next.NextReviewAt)

	// Input card must be untouched.
	assert.Equal(t, 5, card.Repetitions)
	assert.Equal(t, 40, card.IntervalDays)
}

func TestNextStateRepeatedAgainConvergesToFloor(t *testing.T) {
	t.Parallel()
	params := NewDefaultParams()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	card := newTestCard(t)
	card.Repetitions = 3
	card.IntervalDays = 20

	for i := 0; i < 20; i++ {
		card = nextState(card, domain.QualityAgain, now, params)
	}

	assert.Equal(t, 1, card.IntervalDays)
	assert.InDelta(t, params.MinEaseFactor, card.EaseFactor, 1e-9)
	assert.GreaterOrEqual(t, card.EaseFactor, params.MinEaseFactor)
}

func TestNextStateGoodNeverSchedulesBeforeNow(t *testing.T) {
	t.Parallel()
	params := NewDefaultParams()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	for _, quality := range []domain.ReviewQuality{domain.QualityGood, domain.QualityEasy} {
		card := newTestCard(t)
		for i := 0; i < 10; i++ {
			card = nextState(card, quality, now, params)
			assert.False(t, card.NextReviewAt.Before(now),
				"review %d with quality %d scheduled before now", i, quality)
		}
	}
}

func TestNextStateFreshCardGoodReview(t *testing.T) {
	t.Parallel()
	params := NewDefaultParams()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	// repetitions=0, easeFactor=2.5, interval=0 reviewed with quality=easy
	card := newTestCard(t)
	next := nextState(card, domain.QualityEasy, now, params)

	assert.Equal(t, 1, next.Repetitions)
	assert.Greater(t, next.IntervalDays, 0)
	assert.Equal(t, now.AddDate(0, 0, next.IntervalDays), next.NextReviewAt)
	assert.InDelta(t, 2.65, next.EaseFactor, 1e-9)
}

func newTestCard(t *testing.T) *domain.Flashcard {
	t.Helper()
	card, err := domain.NewFlashcard(
		newUserID(t),
		"What year was the Indian Constitution adopted?",
		"1949 (came into force on 26 January 1950)",
		"Constitution",
		"Polity",
		"medium",
	)
	require.NoError(t, err)
	return card
}
