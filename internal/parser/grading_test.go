package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseGrading(t *testing.T) {
	t.Parallel()

	t.Run("clean JSON", func(t *testing.T) {
		t.Parallel()

		text := `{
			"totalScore": 8,
			"breakdown": {"content": 3, "structure": 2, "accuracy": 2, "examples": 1},
			"strengths": ["clear introduction"],
			"weaknesses": ["thin conclusion"],
			"suggestions": ["add a case study"],
			"modelAnswer": "A model answer would begin with..."
		}`

		result, fallback := ParseGrading(text)
		assert.False(t, fallback)
		assert.Equal(t, 8, result.TotalScore)
		assert.Equal(t, 3, result.Breakdown.Content)
		assert.Equal(t, []string{"clear introduction"}, result.Strengths)
	})

	t.Run("JSON inside a code fence", func(t *testing.T) {
		t.Parallel()

		text := "Here is the evaluation:\n```json\n{\"totalScore\": 7, \"breakdown\": {}}\n```"
		result, fallback := ParseGrading(text)
		assert.False(t, fallback)
		assert.Equal(t, 7, result.TotalScore)
	})

	t.Run("out of range score is clamped not rejected", func(t *testing.T) {
		t.Parallel()

		result, fallback := ParseGrading(`{"totalScore": 250, "breakdown": {"content": 9}}`)
		assert.False(t, fallback)
		assert.Equal(t, 10, result.TotalScore)
		assert.Equal(t, 3, result.Breakdown.Content)
	})

	t.Run("negative score is clamped to zero", func(t *testing.T) {
		t.Parallel()

		result, fallback := ParseGrading(`{"totalScore": -4, "breakdown": {}}`)
		assert.False(t, fallback)
		assert.Equal(t, 0, result.TotalScore)
	})

	t.Run("nil slices are coerced to empty", func(t *testing.T) {
		t.Parallel()

		result, fallback := ParseGrading(`{"totalScore": 5, "breakdown": {}}`)
		assert.False(t, fallback)
		assert.NotNil(t, result.Strengths)
		assert.NotNil(t, result.Weaknesses)
		assert.NotNil(t, result.Suggestions)
	})

	t.Run("garbage falls back to the zero grading", func(t *testing.T) {
		t.Parallel()

		result, fallback := ParseGrading("I cannot grade this answer, sorry.")
		assert.True(t, fallback)
		assert.Equal(t, 0, result.TotalScore)
		require.NotEmpty(t, result.Suggestions)
		assert.Contains(t, result.Suggestions[0], "could not be evaluated")
	})
}
