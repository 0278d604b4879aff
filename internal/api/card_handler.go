package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/ayuh2206-ops/dnyanjyoti-api/internal/api/shared"
	"github.com/ayuh2206-ops/dnyanjyoti-api/internal/domain"
	"github.com/ayuh2206-ops/dnyanjyoti-api/internal/platform/logger"
	"github.com/ayuh2206-ops/dnyanjyoti-api/internal/service/review"
)

// CardResponse represents the response data for a flashcard.
type CardResponse struct {
	ID           string    `json:"id"`
	Front        string    `json:"front"`
	Back         string    `json:"back"`
	Topic        string    `json:"topic"`
	Subject      string    `json:"subject"`
	Difficulty   string    `json:"difficulty"`
	Repetitions  int       `json:"repetitions"`
	EaseFactor   float64   `json:"ease_factor"`
	IntervalDays int       `json:"interval_days"`
	NextReviewAt time.Time `json:"next_review_at"`
	CreatedAt    time.Time `json:"created_at"`
}

// DueCardsResponse is the payload for the due cards endpoint.
type DueCardsResponse struct {
	Cards []CardResponse `json:"cards"`
	Count int            `json:"count"`
}

// SubmitReviewRequest is the request body for recording a card review.
// Quality uses the 5-point buckets: 1 again, 3 hard, 4 good, 5 easy.
type SubmitReviewRequest struct {
	Quality int `json:"quality" validate:"required,oneof=1 3 4 5"`
}

// CardHandler handles flashcard review HTTP requests.
type CardHandler struct {
	reviewService review.ReviewService
	logger        *slog.Logger
}

// NewCardHandler creates a new CardHandler.
func NewCardHandler(reviewService review.ReviewService, logger *slog.Logger) *CardHandler {
	if reviewService == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("reviewService cannot be nil for CardHandler")
	}
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for CardHandler")
	}

	return &CardHandler{
		reviewService: reviewService,
		logger:        logger.With(slog.String("component", "card_handler")),
	}
}

// GetDueCards handles GET /cards/due requests. It returns every card whose
// next review time has arrived, oldest first. An empty list is a normal
// 200 response.
func (h *CardHandler) GetDueCards(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	userID, ok := getUserIDFromContext(r)
	if !ok {
		log.Warn("user ID not found or invalid in request context")
		shared.RespondWithError(w, r, http.StatusUnauthorized, "User ID not found or invalid")
		return
	}

	cards, err := h.reviewService.GetDueCards(r.Context(), userID)
	if err != nil {
		statusCode := MapErrorToStatusCode(err)
		safeMessage := GetSafeErrorMessage(err)
		if statusCode == http.StatusInternalServerError {
			safeMessage = "Failed to get due cards"
		}
		shared.RespondWithErrorAndLog(w, r, statusCode, safeMessage, err)
		return
	}

	response := DueCardsResponse{
		Cards: make([]CardResponse, 0, len(cards)),
		Count: len(cards),
	}
	for _, card := range cards {
		response.Cards = append(response.Cards, cardToResponse(card))
	}

	log.Debug("retrieved due cards",
		slog.String("user_id", userID.String()),
		slog.Int("count", len(cards)))
	shared.RespondWithJSON(w, r, http.StatusOK, response)
}

// SubmitReview handles POST /cards/{id}/review requests. It records the
// review quality and returns the card with its updated schedule.
func (h *CardHandler) SubmitReview(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	userID, ok := getUserIDFromContext(r)
	if !ok {
		log.Warn("user ID not found or invalid in request context")
		shared.RespondWithError(w, r, http.StatusUnauthorized, "User ID not found or invalid")
		return
	}

	cardID, ok := getPathUUID(r, "id")
	if !ok {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid card ID format")
		return
	}

	var req SubmitReviewRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid review quality")
		return
	}

	card, err := h.reviewService.SubmitReview(
		r.Context(), userID, cardID, domain.ReviewQuality(req.Quality))
	if err != nil {
		statusCode := MapErrorToStatusCode(err)
		safeMessage := GetSafeErrorMessage(err)
		if statusCode == http.StatusInternalServerError {
			safeMessage = "Failed to submit review"
		}
		shared.RespondWithErrorAndLog(w, r, statusCode, safeMessage, err)
		return
	}

	log.Debug("review recorded",
		slog.String("user_id", userID.String()),
		slog.String("card_id", cardID.String()),
		slog.Int("quality", req.Quality),
		slog.Int("interval_days", card.IntervalDays))
	shared.RespondWithJSON(w, r, http.StatusOK, cardToResponse(card))
}

// DeleteCard handles DELETE /cards/{id} requests.
func (h *CardHandler) DeleteCard(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	userID, ok := getUserIDFromContext(r)
	if !ok {
		log.Warn("user ID not found or invalid in request context")
		shared.RespondWithError(w, r, http.StatusUnauthorized, "User ID not found or invalid")
		return
	}

	cardID, ok := getPathUUID(r, "id")
	if !ok {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid card ID format")
		return
	}

	if err := h.reviewService.DeleteCard(r.Context(), userID, cardID); err != nil {
		statusCode := MapErrorToStatusCode(err)
		safeMessage := GetSafeErrorMessage(err)
		if statusCode == http.StatusInternalServerError {
			safeMessage = "Failed to delete card"
		}
		shared.RespondWithErrorAndLog(w, r, statusCode, safeMessage, err)
		return
	}

	log.Debug("card deleted",
		slog.String("user_id", userID.String()),
		slog.String("card_id", cardID.String()))
	w.WriteHeader(http.StatusNoContent)
}

func cardToResponse(card *domain.Flashcard) CardResponse {
	return CardResponse{
		ID:           card.ID.String(),
		Front:        card.Front,
		Back:         card.Back,
		Topic:        card.Topic,
		Subject:      card.Subject,
		Difficulty:   card.Difficulty,
		Repetitions:  card.Repetitions,
		EaseFactor:   card.EaseFactor,
		IntervalDays: card.IntervalDays,
		NextReviewAt: card.NextReviewAt,
		CreatedAt:    card.CreatedAt,
	}
}
