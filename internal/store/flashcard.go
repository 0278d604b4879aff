package store

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/ayuh2206-ops/dnyanjyoti-api/internal/domain"
)

// FlashcardStore defines persistence for flashcards and their
// spaced-repetition state.
type FlashcardStore interface {
	// Create saves a single flashcard.
	// Returns ErrInvalidEntity if the card fails validation.
	Create(ctx context.Context, card *domain.Flashcard) error

	// CreateMultiple saves a batch of flashcards in one transaction.
	// Either every card is persisted or none are.
	CreateMultiple(ctx context.Context, cards []*domain.Flashcard) error

	// GetByID retrieves a flashcard by its ID, scoped to the owning user.
	// Returns ErrCardNotFound if no matching card exists.
	GetByID(ctx context.Context, userID, cardID uuid.UUID) (*domain.Flashcard, error)

	// GetDue returns the user's cards whose next review time is at or
	// before now, ordered oldest review time first.
	GetDue(ctx context.Context, userID uuid.UUID, now time.Time) ([]*domain.Flashcard, error)

	// Update saves modified scheduling state for an existing card.
	// Returns ErrCardNotFound if the card does not exist.
	Update(ctx context.Context, card *domain.Flashcard) error

	// Delete removes a card, scoped to the owning user.
	// Returns ErrCardNotFound if the card does not exist.
	Delete(ctx context.Context, userID, cardID uuid.UUID) error

	// WithTx returns a FlashcardStore bound to the given transaction so
	// scheduling updates can commit atomically with other writes.
	WithTx(tx DBTX) FlashcardStore
}
