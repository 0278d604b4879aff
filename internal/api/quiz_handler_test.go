package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayuh2206-ops/dnyanjyoti-api/internal/api/shared"
	"github.com/ayuh2206-ops/dnyanjyoti-api/internal/domain"
	"github.com/ayuh2206-ops/dnyanjyoti-api/internal/store"
)

func sampleQuiz(userID uuid.UUID) *domain.Quiz {
	return &domain.Quiz{
		ID:         uuid.New(),
		UserID:     userID,
		Subject:    "Polity",
		Difficulty: "medium",
		Questions: []domain.QuizQuestion{
			{
				Question:      "Which article abolishes untouchability?",
				Options:       []string{"Article 15", "Article 16", "Article 17", "Article 18"},
				CorrectAnswer: "C",
				Explanation:   "Article 17 abolishes untouchability.",
			},
		},
		TokensUsed: 200,
		Model:      "gemini-2.0-flash",
		CreatedAt:  time.Now().UTC(),
	}
}

func quizRouter(handler *QuizHandler) chi.Router {
	r := chi.NewRouter()
	r.Get("/quizzes", handler.ListQuizzes)
	r.Get("/quizzes/{id}", handler.GetQuiz)
	return r
}

func TestListQuizzes(t *testing.T) {
	userID := uuid.New()

	quizzes := &mockQuizStore{
		listByUserFn: func(ctx context.Context, gotUserID uuid.UUID, limit int) ([]*domain.Quiz, error) {
			assert.Equal(t, userID, gotUserID)
			assert.Equal(t, defaultQuizHistoryLimit, limit)
			return []*domain.Quiz{sampleQuiz(userID), sampleQuiz(userID)}, nil
		},
	}
	handler := NewQuizHandler(quizzes, testLogger())

	req := httptest.NewRequest(http.MethodGet, "/quizzes", nil)
	req = req.WithContext(shared.SetUserID(req.Context(), userID))
	rr := httptest.NewRecorder()
	quizRouter(handler).ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	var resp QuizListResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.Len(t, resp.Quizzes, 2)
	assert.Equal(t, "Polity", resp.Quizzes[0].Subject)
	assert.Equal(t, 1, resp.Quizzes[0].QuestionCount)
}

func TestGetQuiz(t *testing.T) {
	userID := uuid.New()

	t.Run("returns full quiz with questions", func(t *testing.T) {
		quiz := sampleQuiz(userID)
		quizzes := &mockQuizStore{
			getByIDFn: func(ctx context.Context, gotUserID, gotQuizID uuid.UUID) (*domain.Quiz, error) {
				assert.Equal(t, quiz.ID, gotQuizID)
				return quiz, nil
			},
		}
		handler := NewQuizHandler(quizzes, testLogger())

		req := httptest.NewRequest(http.MethodGet, "/quizzes/"+quiz.ID.String(), nil)
		req = req.WithContext(shared.SetUserID(req.Context(), userID))
		rr := httptest.NewRecorder()
		quizRouter(handler).ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		var resp domain.Quiz
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		require.Len(t, resp.Questions, 1)
		assert.Equal(t, "C", resp.Questions[0].CorrectAnswer)
	})

	t.Run("unknown quiz maps to 404", func(t *testing.T) {
		quizzes := &mockQuizStore{
			getByIDFn: func(ctx context.Context, gotUserID, gotQuizID uuid.UUID) (*domain.Quiz, error) {
				return nil, store.ErrQuizNotFound
			},
		}
		handler := NewQuizHandler(quizzes, testLogger())

		req := httptest.NewRequest(http.MethodGet, "/quizzes/"+uuid.NewString(), nil)
		req = req.WithContext(shared.SetUserID(req.Context(), userID))
		rr := httptest.NewRecorder()
		quizRouter(handler).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("malformed quiz ID maps to 400", func(t *testing.T) {
		handler := NewQuizHandler(&mockQuizStore{}, testLogger())

		req := httptest.NewRequest(http.MethodGet, "/quizzes/not-a-uuid", nil)
		req = req.WithContext(shared.SetUserID(req.Context(), userID))
		rr := httptest.NewRecorder()
		quizRouter(handler).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}
