package domain

// Score range bounds for essay grading. TotalScore is provider-sourced and
// clamped to its range, never recomputed from the breakdown.
const (
	MaxTotalScore     = 10
	MaxContentScore   = 3
	MaxStructureScore = 2
	MaxAccuracyScore  = 3
	MaxExamplesScore  = 2
)

// GradingBreakdown splits an essay score into its assessed dimensions.
// Each field stays within its declared range; the parser clamps values on
// violation rather than rejecting the grading outright.
type GradingBreakdown struct {
	Content   int `json:"content"`
	Structure int `json:"structure"`
	Accuracy  int `json:"accuracy"`
	Examples  int `json:"examples"`
}

// GradingResult is the structured outcome of grading a user's essay answer.
type GradingResult struct {
	TotalScore  int              `json:"totalScore"`
	Breakdown   GradingBreakdown `json:"breakdown"`
	Strengths   []string         `json:"strengths"`
	Weaknesses  []string         `json:"weaknesses"`
	Suggestions []string         `json:"suggestions"`
	ModelAnswer string           `json:"modelAnswer"`
}

// Clamp forces every numeric field into its declared range and coerces nil
// slices to empty ones, so callers always receive a usable result.
func (g *GradingResult) Clamp() {
	g.TotalScore = clampScore(g.TotalScore, MaxTotalScore)
	g.Breakdown.Content = clampScore(g.Breakdown.Content, MaxContentScore)
	g.Breakdown.Structure = clampScore(g.Breakdown.Structure, MaxStructureScore)
	g.Breakdown.Accuracy = clampScore(g.Breakdown.Accuracy, MaxAccuracyScore)
	g.Breakdown.Examples = clampScore(g.Breakdown.Examples, MaxExamplesScore)

	if g.Strengths == nil {
		g.Strengths = []string{}
	}
	if g.Weaknesses == nil {
		g.Weaknesses = []string{}
	}
	if g.Suggestions == nil {
		g.Suggestions = []string{}
	}
}

func clampScore(v, max int) int {
	if v < 0 {
		return 0
	}
	if v > max {
		return max
	}
	return v
}
