package store

import (
	"context"

	"github.com/google/uuid"

	"github.com/ayuh2206-ops/dnyanjyoti-api/internal/domain"
)

// QuizStore defines persistence for generated quizzes.
type QuizStore interface {
	// Create saves a quiz along with its questions.
	// Returns ErrInvalidEntity if the quiz fails validation.
	Create(ctx context.Context, quiz *domain.Quiz) error

	// GetByID retrieves a quiz by its ID, scoped to the owning user.
	// Returns ErrQuizNotFound if no matching quiz exists.
	GetByID(ctx context.Context, userID, quizID uuid.UUID) (*domain.Quiz, error)

	// ListByUser returns the user's quizzes, newest first, capped at limit.
	ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*domain.Quiz, error)
}
