package srs

import (
	"math"
	"time"

	"github.com/ayuh2206-ops/dnyanjyoti-api/internal/domain"
)

// calculateNewEaseFactor applies the quality-dependent adjustment to the
// card's ease factor and floors the result at params.MinEaseFactor. A lapse
// ("again") reduces the ease factor the most, "hard" slightly less, "good"
// leaves it unchanged, and "easy" raises it.
func calculateNewEaseFactor(
	currentEF float64,
	quality domain.ReviewQuality,
	params *Params,
) float64 {
	newEF := currentEF + params.EaseAdjustment[quality]

	if newEF < params.MinEaseFactor {
		newEF = params.MinEaseFactor
	}

	return newEF
}

// calculateNewInterval determines the new interval in days after a review.
//
// A lapse resets the interval to params.AgainInterval. For successful
// reviews the interval depends on the repetition count after the review:
// the first repetition gets a short fixed interval, the second a longer
// fixed one, and later repetitions multiply the previous interval by the
// (already updated) ease factor, rounded and kept at least one day.
func calculateNewInterval(
	currentInterval int,
	newRepetitions int,
	easeFactor float64,
	quality domain.ReviewQuality,
	params *Params,
) int {
	if quality < domain.QualityHard {
		return params.AgainInterval
	}

	switch newRepetitions {
	case 1:
		return params.FirstInterval
	case 2:
		return params.SecondInterval
	}

	next := int(math.Round(float64(currentInterval) * easeFactor))
	if next < 1 {
		next = 1
	}
	return next
}

// nextState computes the full post-review state of a flashcard, following
// the immutable update pattern: the input card is never modified, a new
// value is returned.
func nextState(
	card *domain.Flashcard,
	quality domain.ReviewQuality,
	now time.Time,
	params *Params,
) *domain.Flashcard {
	next := *card

	next.EaseFactor = calculateNewEaseFactor(card.EaseFactor, quality, params)

	if quality < domain.QualityHard {
		next.Repetitions = 0
	} else {
		next.Repetitions = card.Repetitions + 1
	}

	next.IntervalDays = calculateNewInterval(
		card.IntervalDays,
		next.Repetitions,
		next.EaseFactor,
		quality,
		params,
	)

	next.NextReviewAt = now.AddDate(0, 0, next.IntervalDays)
	next.UpdatedAt = now

	return &next
}
