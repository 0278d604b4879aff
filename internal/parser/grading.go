package parser

import "github.com/ayuh2206-ops/dnyanjyoti-api/internal/domain"

// ParseGrading extracts an essay grading result from raw provider text using
// the three-tier strategy. Out-of-range scores are clamped into their
// declared ranges and missing arrays coerced to empty, never rejected. On
// total parse failure the maximally conservative fallback grading is
// returned and the second result is true.
func ParseGrading(text string) (domain.GradingResult, bool) {
	var result domain.GradingResult
	if decodeJSON(text, &result) {
		result.Clamp()
		return result, false
	}

	return fallbackGrading(), true
}

// fallbackGrading is the tier-three result: it awards nothing and tells the
// user an examiner-style evaluation was not possible.
func fallbackGrading() domain.GradingResult {
	return domain.GradingResult{
		TotalScore: 0,
		Breakdown:  domain.GradingBreakdown{},
		Strengths:  []string{},
		Weaknesses: []string{},
		Suggestions: []string{
			"Your answer could not be evaluated automatically. Please try submitting it again.",
		},
		ModelAnswer: "",
	}
}
