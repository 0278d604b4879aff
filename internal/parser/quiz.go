package parser

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/ayuh2206-ops/dnyanjyoti-api/internal/domain"
)

// questionMarker splits provider text into question blocks. The provider is
// asked for "Q1.", "Q2.", ... markers but real responses drift, so the
// pattern is anchored per line and tolerant of leading whitespace.
var questionMarker = regexp.MustCompile(`(?m)^\s*Q\d+\.\s*`)

// optionMarker matches an option line such as "A) New Delhi".
var optionMarker = regexp.MustCompile(`^([A-D])\)\s*(.+)$`)

// correctMarker matches the answer line, e.g. "Correct: B" (case-insensitive).
var correctMarker = regexp.MustCompile(`(?i)^correct:\s*([A-Da-d])\b`)

// explanationPrefix introduces the explanation line.
const explanationPrefix = "explanation:"

// ParseQuiz extracts multiple-choice questions from raw provider text.
//
// The text is split on question-number markers; within each block the first
// non-empty line is the stem, and subsequent lines are scanned for option,
// correct-answer, and explanation markers. A block is accepted only if it
// has a non-empty stem, exactly four options, and a correct-answer letter;
// partial blocks are discarded whole, never repaired.
//
// If no block survives, a single deterministic placeholder question
// templated on the subject is returned and the second result is true so the
// caller can warn the user that the content needs review.
func ParseQuiz(text, subject string) ([]domain.QuizQuestion, bool) {
	blocks := questionMarker.Split(text, -1)

	var questions []domain.QuizQuestion
	for _, block := range blocks[1:] { // blocks[0] is whatever preceded Q1.
		if q, ok := parseQuestionBlock(block); ok {
			questions = append(questions, q)
		}
	}

	if len(questions) == 0 {
		return []domain.QuizQuestion{fallbackQuestion(subject)}, true
	}

	return questions, false
}

// parseQuestionBlock parses one question block. The boolean result reports
// whether the block satisfied every structural requirement.
func parseQuestionBlock(block string) (domain.QuizQuestion, bool) {
	var q domain.QuizQuestion

	lines := strings.Split(block, "\n")
	for _, raw := range lines {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		if q.Question == "" {
			q.Question = line
			continue
		}

		if m := optionMarker.FindStringSubmatch(line); m != nil {
			// Options must arrive in A-D order; anything else is malformed
			// and disqualifies the block via the count/validate checks.
			expected := string(rune('A' + len(q.Options)))
			if m[1] == expected && len(q.Options) < domain.QuizOptionCount {
				q.Options = append(q.Options, strings.TrimSpace(m[2]))
			}
			continue
		}

		if m := correctMarker.FindStringSubmatch(line); m != nil {
			q.CorrectAnswer = strings.ToUpper(m[1])
			continue
		}

		if lower := strings.ToLower(line); strings.HasPrefix(lower, explanationPrefix) {
			q.Explanation = strings.TrimSpace(line[len(explanationPrefix):])
		}
	}

	if err := q.Validate(); err != nil {
		return domain.QuizQuestion{}, false
	}

	return q, true
}

// fallbackQuestion builds the deterministic placeholder returned when the
// provider text yields no usable question.
func fallbackQuestion(subject string) domain.QuizQuestion {
	if subject == "" {
		subject = "General Studies"
	}

	return domain.QuizQuestion{
		Question: fmt.Sprintf(
			"Which preparation strategy is most effective when starting a new %s topic?",
			subject,
		),
		Options: []string{
			"Skip directly to practice tests",
			"Read the foundational material first, then attempt questions",
			"Memorize answers without understanding concepts",
			"Study only previous year questions",
		},
		CorrectAnswer: "B",
		Explanation: fmt.Sprintf(
			"Building conceptual understanding before testing is the recommended approach for %s. "+
				"This question is a placeholder: the generated quiz could not be parsed and needs review.",
			subject,
		),
	}
}
