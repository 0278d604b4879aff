package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Quiz-specific validation errors
var (
	ErrQuestionStemEmpty    = errors.New("question stem cannot be empty")
	ErrWrongOptionCount     = errors.New("question must have exactly 4 options")
	ErrEmptyOption          = errors.New("question options cannot be empty")
	ErrInvalidCorrectAnswer = errors.New("correct answer must be one of A, B, C, D")
)

// QuizOptionCount is the number of options every multiple-choice question
// carries.
const QuizOptionCount = 4

// QuizQuestion is a single multiple-choice question produced by the response
// parser. It is immutable after creation within a quiz attempt.
type QuizQuestion struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correctAnswer"`
	Explanation   string   `json:"explanation"`
}

// Validate checks the structural invariants of a QuizQuestion: a non-empty
// stem, exactly four populated options, and a correct answer letter that
// references one of them. It validates shape, not factual truth.
func (q *QuizQuestion) Validate() error {
	if q.Question == "" {
		return ErrQuestionStemEmpty
	}

	if len(q.Options) != QuizOptionCount {
		return ErrWrongOptionCount
	}

	for _, opt := range q.Options {
		if opt == "" {
			return ErrEmptyOption
		}
	}

	switch q.CorrectAnswer {
	case "A", "B", "C", "D":
		return nil
	default:
		return ErrInvalidCorrectAnswer
	}
}

// Quiz is a persisted set of generated questions, together with the provider
// metadata of the call that produced it. RawResponse keeps the unparsed
// provider text for later audit of what the model actually said.
type Quiz struct {
	ID          uuid.UUID      `json:"id"`
	UserID      uuid.UUID      `json:"user_id"`
	Subject     string         `json:"subject"`
	Difficulty  string         `json:"difficulty"`
	Questions   []QuizQuestion `json:"questions"`
	RawResponse string         `json:"raw_response"`
	TokensUsed  int            `json:"tokens_used"`
	Model       string         `json:"model"`
	NeedsReview bool           `json:"needs_review"`
	CreatedAt   time.Time      `json:"created_at"`
}

// NewQuiz creates a persisted Quiz from parsed questions and the provider
// metadata of the generation call.
func NewQuiz(
	userID uuid.UUID,
	subject, difficulty string,
	questions []QuizQuestion,
	rawResponse string,
	tokensUsed int,
	model string,
	needsReview bool,
) *Quiz {
	return &Quiz{
		ID:          uuid.New(),
		UserID:      userID,
		Subject:     subject,
		Difficulty:  difficulty,
		Questions:   questions,
		RawResponse: rawResponse,
		TokensUsed:  tokensUsed,
		Model:       model,
		NeedsReview: needsReview,
		CreatedAt:   time.Now().UTC(),
	}
}
