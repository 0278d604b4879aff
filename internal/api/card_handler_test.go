package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayuh2206-ops/dnyanjyoti-api/internal/api/shared"
	"github.com/ayuh2206-ops/dnyanjyoti-api/internal/domain"
	"github.com/ayuh2206-ops/dnyanjyoti-api/internal/service/review"
)

func dueCard(userID uuid.UUID) *domain.Flashcard {
	now := time.Now().UTC()
	return &domain.Flashcard{
		ID:           uuid.New(),
		UserID:       userID,
		Front:        "Article 21 protects which right?",
		Back:         "Right to life and personal liberty",
		Topic:        "Fundamental Rights",
		Subject:      "Polity",
		Difficulty:   "medium",
		Repetitions:  2,
		EaseFactor:   2.5,
		IntervalDays: 6,
		NextReviewAt: now.Add(-time.Hour),
		CreatedAt:    now.Add(-72 * time.Hour),
		UpdatedAt:    now.Add(-24 * time.Hour),
	}
}

// cardRequest builds a request routed through chi so URL parameters resolve,
// with the user ID placed in the context the way the auth middleware does.
func cardRequest(method, target string, body string, userID uuid.UUID) *http.Request {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	if userID != uuid.Nil {
		req = req.WithContext(shared.SetUserID(req.Context(), userID))
	}
	return req
}

func cardRouter(handler *CardHandler) chi.Router {
	r := chi.NewRouter()
	r.Get("/cards/due", handler.GetDueCards)
	r.Post("/cards/{id}/review", handler.SubmitReview)
	r.Delete("/cards/{id}", handler.DeleteCard)
	return r
}

func TestGetDueCards(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name           string
		userIDInCtx    uuid.UUID
		serviceResult  []*domain.Flashcard
		serviceError   error
		expectedStatus int
		expectedCount  int
	}{
		{
			name:           "two cards due",
			userIDInCtx:    userID,
			serviceResult:  []*domain.Flashcard{dueCard(userID), dueCard(userID)},
			expectedStatus: http.StatusOK,
			expectedCount:  2,
		},
		{
			name:           "nothing due is an empty list",
			userIDInCtx:    userID,
			serviceResult:  []*domain.Flashcard{},
			expectedStatus: http.StatusOK,
			expectedCount:  0,
		},
		{
			name:           "storage failure",
			userIDInCtx:    userID,
			serviceError:   errors.New("database error"),
			expectedStatus: http.StatusInternalServerError,
		},
		{
			name:           "missing user ID",
			userIDInCtx:    uuid.Nil,
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			mockService := &mockReviewService{
				getDueCardsFn: func(ctx context.Context, gotUserID uuid.UUID) ([]*domain.Flashcard, error) {
					assert.Equal(t, userID, gotUserID)
					return tc.serviceResult, tc.serviceError
				},
			}
			handler := NewCardHandler(mockService, testLogger())

			req := cardRequest(http.MethodGet, "/cards/due", "", tc.userIDInCtx)
			rr := httptest.NewRecorder()
			cardRouter(handler).ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
			if tc.expectedStatus == http.StatusOK {
				var resp DueCardsResponse
				require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.Equal(t, tc.expectedCount, resp.Count)
				assert.Len(t, resp.Cards, tc.expectedCount)
			}
		})
	}
}

func TestSubmitReview(t *testing.T) {
	userID := uuid.New()
	cardID := uuid.New()

	t.Run("valid review updates schedule", func(t *testing.T) {
		updated := dueCard(userID)
		updated.ID = cardID
		updated.Repetitions = 3
		updated.IntervalDays = 15

		mockService := &mockReviewService{
			submitReviewFn: func(
				ctx context.Context, gotUserID, gotCardID uuid.UUID, quality domain.ReviewQuality,
			) (*domain.Flashcard, error) {
				assert.Equal(t, userID, gotUserID)
				assert.Equal(t, cardID, gotCardID)
				assert.Equal(t, domain.QualityGood, quality)
				return updated, nil
			},
		}
		handler := NewCardHandler(mockService, testLogger())

		req := cardRequest(http.MethodPost, "/cards/"+cardID.String()+"/review", `{"quality":4}`, userID)
		rr := httptest.NewRecorder()
		cardRouter(handler).ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		var resp CardResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, cardID.String(), resp.ID)
		assert.Equal(t, 3, resp.Repetitions)
		assert.Equal(t, 15, resp.IntervalDays)
	})

	t.Run("quality outside the buckets is rejected before the service", func(t *testing.T) {
		handler := NewCardHandler(&mockReviewService{}, testLogger())

		req := cardRequest(http.MethodPost, "/cards/"+cardID.String()+"/review", `{"quality":2}`, userID)
		rr := httptest.NewRecorder()
		cardRouter(handler).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("malformed card ID", func(t *testing.T) {
		handler := NewCardHandler(&mockReviewService{}, testLogger())

		req := cardRequest(http.MethodPost, "/cards/not-a-uuid/review", `{"quality":4}`, userID)
		rr := httptest.NewRecorder()
		cardRouter(handler).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("another user's card maps to 403", func(t *testing.T) {
		mockService := &mockReviewService{
			submitReviewFn: func(
				ctx context.Context, gotUserID, gotCardID uuid.UUID, quality domain.ReviewQuality,
			) (*domain.Flashcard, error) {
				return nil, review.ErrCardNotOwned
			},
		}
		handler := NewCardHandler(mockService, testLogger())

		req := cardRequest(http.MethodPost, "/cards/"+cardID.String()+"/review", `{"quality":4}`, userID)
		rr := httptest.NewRecorder()
		cardRouter(handler).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusForbidden, rr.Code)
	})

	t.Run("unknown card maps to 404", func(t *testing.T) {
		mockService := &mockReviewService{
			submitReviewFn: func(
				ctx context.Context, gotUserID, gotCardID uuid.UUID, quality domain.ReviewQuality,
			) (*domain.Flashcard, error) {
				return nil, review.ErrCardNotFound
			},
		}
		handler := NewCardHandler(mockService, testLogger())

		req := cardRequest(http.MethodPost, "/cards/"+cardID.String()+"/review", `{"quality":4}`, userID)
		rr := httptest.NewRecorder()
		cardRouter(handler).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestDeleteCard(t *testing.T) {
	userID := uuid.New()
	cardID := uuid.New()

	t.Run("success returns no content", func(t *testing.T) {
		mockService := &mockReviewService{
			deleteCardFn: func(ctx context.Context, gotUserID, gotCardID uuid.UUID) error {
				assert.Equal(t, userID, gotUserID)
				assert.Equal(t, cardID, gotCardID)
				return nil
			},
		}
		handler := NewCardHandler(mockService, testLogger())

		req := cardRequest(http.MethodDelete, "/cards/"+cardID.String(), "", userID)
		rr := httptest.NewRecorder()
		cardRouter(handler).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNoContent, rr.Code)
		assert.Empty(t, rr.Body.String())
	})

	t.Run("unknown card maps to 404", func(t *testing.T) {
		mockService := &mockReviewService{
			deleteCardFn: func(ctx context.Context, gotUserID, gotCardID uuid.UUID) error {
				return review.ErrCardNotFound
			},
		}
		handler := NewCardHandler(mockService, testLogger())

		req := cardRequest(http.MethodDelete, "/cards/"+cardID.String(), "", userID)
		rr := httptest.NewRecorder()
		cardRouter(handler).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}
