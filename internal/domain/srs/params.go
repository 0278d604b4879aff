package srs

import (
	"github.com/ayuh2206-ops/dnyanjyoti-api/internal/domain"
)

// Params defines all configurable parameters for the spaced-repetition
// algorithm.
type Params struct {
	// MinEaseFactor is the floor for a card's ease factor.
	MinEaseFactor float64

	// EaseAdjustment maps each review quality to the delta applied to the
	// card's ease factor. The delta grows with the distance of the quality
	// signal from "good".
	EaseAdjustment map[domain.ReviewQuality]float64

	// FirstInterval and SecondInterval are the fixed intervals (in days) for
	// the first and second successful repetitions. Later repetitions
	// multiply the previous interval by the ease factor.
	FirstInterval  int
	SecondInterval int

	// AgainInterval is the interval (in days) assigned when a card lapses.
	AgainInterval int
}

// ParamsConfig allows overriding the default parameters when creating a new
// Params instance. Zero values keep the defaults.
type ParamsConfig struct {
	MinEaseFactor float64

	AgainEaseAdjustment float64
	HardEaseAdjustment  float64
	EasyEaseAdjustment  float64

	FirstInterval  int
	SecondInterval int
	AgainInterval  int
}

// NewDefaultParams creates a new Params instance with default values.
func NewDefaultParams() *Params {
	return &Params{
		MinEaseFactor: domain.MinEaseFactor,

		EaseAdjustment: map[domain.ReviewQuality]float64{
			domain.QualityAgain: -0.20,
			domain.QualityHard:  -0.15,
			domain.QualityGood:  0.0,
			domain.QualityEasy:  0.15,
		},

		FirstInterval:  1,
		SecondInterval: 6,
		AgainInterval:  1,
	}
}

// NewParams creates a new Params instance with custom configuration.
func NewParams(config ParamsConfig) *Params {
	params := NewDefaultParams()

	if config.MinEaseFactor > 0 {
		params.MinEaseFactor = config.MinEaseFactor
	}

	if config.AgainEaseAdjustment != 0 {
		params.EaseAdjustment[domain.QualityAgain] = config.AgainEaseAdjustment
	}
	if config.HardEaseAdjustment != 0 {
		params.EaseAdjustment[domain.QualityHard] = config.HardEaseAdjustment
	}
	if config.EasyEaseAdjustment != 0 {
		params.EaseAdjustment[domain.QualityEasy] = config.EasyEaseAdjustment
	}

	if config.FirstInterval > 0 {
		params.FirstInterval = config.FirstInterval
	}
	if config.SecondInterval > 0 {
		params.SecondInterval = config.SecondInterval
	}
	if config.AgainInterval > 0 {
		params.AgainInterval = config.AgainInterval
	}

	return params
}
