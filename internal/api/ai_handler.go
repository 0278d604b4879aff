package api

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/ayuh2206-ops/dnyanjyoti-api/internal/api/shared"
	"github.com/ayuh2206-ops/dnyanjyoti-api/internal/platform/logger"
	"github.com/ayuh2206-ops/dnyanjyoti-api/internal/service"
)

// AIHandler exposes the credit-gated AI content generation endpoints. Every
// endpoint follows the same contract: the request is validated and costed,
// credits are debited, and only then is the provider called. A provider
// failure after a successful debit is not refunded.
type AIHandler struct {
	aiService service.AIService
	logger    *slog.Logger
}

// NewAIHandler creates a new AIHandler.
func NewAIHandler(aiService service.AIService, logger *slog.Logger) *AIHandler {
	if aiService == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("aiService cannot be nil for AIHandler")
	}
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for AIHandler")
	}

	return &AIHandler{
		aiService: aiService,
		logger:    logger.With(slog.String("component", "ai_handler")),
	}
}

// GenerateQuiz handles POST /ai/quiz requests.
func (h *AIHandler) GenerateQuiz(w http.ResponseWriter, r *http.Request) {
	var req service.QuizRequest
	userID, ok := h.decodeAIRequest(w, r, &req)
	if !ok {
		return
	}

	result, err := h.aiService.GenerateQuiz(r.Context(), userID, req)
	if err != nil {
		h.respondAIError(w, r, "generate quiz", err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, result)
}

// GradeAnswer handles POST /ai/grade requests.
func (h *AIHandler) GradeAnswer(w http.ResponseWriter, r *http.Request) {
	var req service.GradeRequest
	userID, ok := h.decodeAIRequest(w, r, &req)
	if !ok {
		return
	}

	result, err := h.aiService.GradeAnswer(r.Context(), userID, req)
	if err != nil {
		h.respondAIError(w, r, "grade answer", err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, result)
}

// GenerateFlashcards handles POST /ai/flashcards requests.
func (h *AIHandler) GenerateFlashcards(w http.ResponseWriter, r *http.Request) {
	var req service.FlashcardsRequest
	userID, ok := h.decodeAIRequest(w, r, &req)
	if !ok {
		return
	}

	result, err := h.aiService.GenerateFlashcards(r.Context(), userID, req)
	if err != nil {
		h.respondAIError(w, r, "generate flashcards", err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, result)
}

// GenerateMindMap handles POST /ai/mindmap requests.
func (h *AIHandler) GenerateMindMap(w http.ResponseWriter, r *http.Request) {
	var req service.MindMapRequest
	userID, ok := h.decodeAIRequest(w, r, &req)
	if !ok {
		return
	}

	result, err := h.aiService.GenerateMindMap(r.Context(), userID, req)
	if err != nil {
		h.respondAIError(w, r, "generate mind map", err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, result)
}

// Chat handles POST /ai/chat requests.
func (h *AIHandler) Chat(w http.ResponseWriter, r *http.Request) {
	var req service.ChatRequest
	userID, ok := h.decodeAIRequest(w, r, &req)
	if !ok {
		return
	}

	result, err := h.aiService.Chat(r.Context(), userID, req)
	if err != nil {
		h.respondAIError(w, r, "chat", err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, result)
}

// Summarize handles POST /ai/summarize requests.
func (h *AIHandler) Summarize(w http.ResponseWriter, r *http.Request) {
	var req service.SummarizeRequest
	userID, ok := h.decodeAIRequest(w, r, &req)
	if !ok {
		return
	}

	result, err := h.aiService.Summarize(r.Context(), userID, req)
	if err != nil {
		h.respondAIError(w, r, "summarize", err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, result)
}

// decodeAIRequest pulls the authenticated user ID from the context and
// decodes the JSON body into req. On failure an error response has already
// been written and the second return is false. Field-level validation is
// left to the service layer, which owns the bounds.
func (h *AIHandler) decodeAIRequest(
	w http.ResponseWriter,
	r *http.Request,
	req interface{},
) (uuid.UUID, bool) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	userID, ok := getUserIDFromContext(r)
	if !ok {
		log.Warn("user ID not found or invalid in request context")
		shared.RespondWithError(w, r, http.StatusUnauthorized, "User ID not found or invalid")
		return uuid.Nil, false
	}

	if err := shared.DecodeJSON(r, req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return uuid.Nil, false
	}

	return userID, true
}

// respondAIError maps a service error to a status code and sanitized
// message, logs the redacted detail, and writes the response.
func (h *AIHandler) respondAIError(w http.ResponseWriter, r *http.Request, operation string, err error) {
	statusCode := MapErrorToStatusCode(err)
	safeMessage := GetSafeErrorMessage(err)
	if statusCode == http.StatusInternalServerError {
		safeMessage = "Failed to " + operation
	}
	shared.RespondWithErrorAndLog(w, r, statusCode, safeMessage, err)
}
