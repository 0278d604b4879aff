package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/ayuh2206-ops/dnyanjyoti-api/internal/api/shared"
	"github.com/ayuh2206-ops/dnyanjyoti-api/internal/domain"
	"github.com/ayuh2206-ops/dnyanjyoti-api/internal/platform/logger"
	"github.com/ayuh2206-ops/dnyanjyoti-api/internal/store"
)

// defaultQuizHistoryLimit caps the list endpoint when the client does not
// ask for a specific page size.
const defaultQuizHistoryLimit = 20

// QuizListResponse is the payload for the quiz history endpoint. Questions
// are omitted from the listing; clients fetch a single quiz to replay it.
type QuizListResponse struct {
	Quizzes []QuizSummary `json:"quizzes"`
}

// QuizSummary is one row of quiz history.
type QuizSummary struct {
	ID            string `json:"id"`
	Subject       string `json:"subject"`
	Difficulty    string `json:"difficulty"`
	QuestionCount int    `json:"question_count"`
	NeedsReview   bool   `json:"needs_review"`
	CreatedAt     string `json:"created_at"`
}

// QuizHandler serves previously generated quizzes.
type QuizHandler struct {
	quizzes store.QuizStore
	logger  *slog.Logger
}

// NewQuizHandler creates a new QuizHandler.
func NewQuizHandler(quizzes store.QuizStore, logger *slog.Logger) *QuizHandler {
	if quizzes == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("quizzes cannot be nil for QuizHandler")
	}
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for QuizHandler")
	}

	return &QuizHandler{
		quizzes: quizzes,
		logger:  logger.With(slog.String("component", "quiz_handler")),
	}
}

// ListQuizzes handles GET /quizzes requests, returning the user's quiz
// history newest first.
func (h *QuizHandler) ListQuizzes(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	userID, ok := getUserIDFromContext(r)
	if !ok {
		log.Warn("user ID not found or invalid in request context")
		shared.RespondWithError(w, r, http.StatusUnauthorized, "User ID not found or invalid")
		return
	}

	quizzes, err := h.quizzes.ListByUser(r.Context(), userID, defaultQuizHistoryLimit)
	if err != nil {
		statusCode := MapErrorToStatusCode(err)
		safeMessage := GetSafeErrorMessage(err)
		if statusCode == http.StatusInternalServerError {
			safeMessage = "Failed to list quizzes"
		}
		shared.RespondWithErrorAndLog(w, r, statusCode, safeMessage, err)
		return
	}

	response := QuizListResponse{Quizzes: make([]QuizSummary, 0, len(quizzes))}
	for _, quiz := range quizzes {
		response.Quizzes = append(response.Quizzes, quizToSummary(quiz))
	}

	shared.RespondWithJSON(w, r, http.StatusOK, response)
}

// GetQuiz handles GET /quizzes/{id} requests, returning the full quiz with
// its questions.
func (h *QuizHandler) GetQuiz(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	userID, ok := getUserIDFromContext(r)
	if !ok {
		log.Warn("user ID not found or invalid in request context")
		shared.RespondWithError(w, r, http.StatusUnauthorized, "User ID not found or invalid")
		return
	}

	quizID, ok := getPathUUID(r, "id")
	if !ok {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid quiz ID format")
		return
	}

	quiz, err := h.quizzes.GetByID(r.Context(), userID, quizID)
	if err != nil {
		statusCode := MapErrorToStatusCode(err)
		safeMessage := GetSafeErrorMessage(err)
		if statusCode == http.StatusInternalServerError {
			safeMessage = "Failed to get quiz"
		}
		shared.RespondWithErrorAndLog(w, r, statusCode, safeMessage, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, quiz)
}

func quizToSummary(quiz *domain.Quiz) QuizSummary {
	return QuizSummary{
		ID:            quiz.ID.String(),
		Subject:       quiz.Subject,
		Difficulty:    quiz.Difficulty,
		QuestionCount: len(quiz.Questions),
		NeedsReview:   quiz.NeedsReview,
		CreatedAt:     quiz.CreatedAt.Format(time.RFC3339),
	}
}
