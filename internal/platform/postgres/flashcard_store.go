package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/ayuh2206-ops/dnyanjyoti-api/internal/domain"
	"github.com/ayuh2206-ops/dnyanjyoti-api/internal/platform/logger"
	"github.com/ayuh2206-ops/dnyanjyoti-api/internal/store"
)

// PostgresFlashcardStore implements the store.FlashcardStore interface
// using a PostgreSQL database as the storage backend.
type PostgresFlashcardStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresFlashcardStore creates a new PostgreSQL implementation of the FlashcardStore interface.
// It accepts a database connection or transaction that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresFlashcardStore(db store.DBTX, logger *slog.Logger) *PostgresFlashcardStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresFlashcardStore{
		db:     db,
		logger: logger.With(slog.String("component", "flashcard_store")),
	}
}

// Ensure PostgresFlashcardStore implements store.FlashcardStore interface
var _ store.FlashcardStore = (*PostgresFlashcardStore)(nil)

// WithTx implements store.FlashcardStore.WithTx
// It returns a store bound to the given transaction so card updates can
// commit atomically with other writes.
func (s *PostgresFlashcardStore) WithTx(tx store.DBTX) store.FlashcardStore {
	return &PostgresFlashcardStore{
		db:     tx,
		logger: s.logger,
	}
}

const insertFlashcardQuery = `
	INSERT INTO flashcards (
		id, user_id, front, back, topic, subject, difficulty,
		repetitions, ease_factor, interval_days, next_review_at,
		created_at, updated_at
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
`

// Create implements store.FlashcardStore.Create
// Returns store.ErrInvalidEntity (wrapping the validation error) if the card
// data is invalid, or if the owning user does not exist.
func (s *PostgresFlashcardStore) Create(ctx context.Context, card *domain.Flashcard) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := card.Validate(); err != nil {
		log.Warn("flashcard validation failed during create",
			slog.String("error", err.Error()),
			slog.String("card_id", card.ID.String()))
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	_, err := s.db.ExecContext(ctx, insertFlashcardQuery,
		card.ID,
		card.UserID,
		card.Front,
		card.Back,
		card.Topic,
		card.Subject,
		card.Difficulty,
		card.Repetitions,
		card.EaseFactor,
		card.IntervalDays,
		card.NextReviewAt,
		card.CreatedAt,
		card.UpdatedAt,
	)

	if err != nil {
		if IsForeignKeyViolation(err) {
			log.Warn("foreign key violation during flashcard creation",
				slog.String("card_id", card.ID.String()),
				slog.String("user_id", card.UserID.String()))
			return fmt.Errorf("%w: user with ID %s not found",
				store.ErrInvalidEntity, card.UserID)
		}

		log.Error("failed to create flashcard",
			slog.String("error", err.Error()),
			slog.String("card_id", card.ID.String()))
		return MapError(err)
	}

	log.Debug("flashcard created",
		slog.String("card_id", card.ID.String()),
		slog.String("user_id", card.UserID.String()))
	return nil
}

// CreateMultiple implements store.FlashcardStore.CreateMultiple
// All cards are validated up front, then inserted one by one. When the store
// is bound to a connection rather than an existing transaction, the inserts
// run in their own transaction so the batch commits atomically.
func (s *PostgresFlashcardStore) CreateMultiple(ctx context.Context, cards []*domain.Flashcard) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	for _, card := range cards {
		if err := card.Validate(); err != nil {
			log.Warn("flashcard validation failed during batch create",
				slog.String("error", err.Error()),
				slog.String("card_id", card.ID.String()))
			return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
		}
	}

	insert := func(ctx context.Context, db store.DBTX) error {
		for _, card := range cards {
			_, err := db.ExecContext(ctx, insertFlashcardQuery,
				card.ID,
				card.UserID,
				card.Front,
				card.Back,
				card.Topic,
				card.Subject,
				card.Difficulty,
				card.Repetitions,
				card.EaseFactor,
				card.IntervalDays,
				card.NextReviewAt,
				card.CreatedAt,
				card.UpdatedAt,
			)
			if err != nil {
				return MapError(err)
			}
		}
		return nil
	}

	var err error
	if sqlDB, ok := s.db.(*sql.DB); ok {
		err = store.RunInTransaction(ctx, sqlDB, func(ctx context.Context, tx *sql.Tx) error {
			return insert(ctx, tx)
		})
	} else {
		// Already inside a caller-managed transaction.
		err = insert(ctx, s.db)
	}

	if err != nil {
		log.Error("failed to create flashcard batch",
			slog.String("error", err.Error()),
			slog.Int("count", len(cards)))
		return err
	}

	log.Info("flashcard batch created",
		slog.Int("count", len(cards)))
	return nil
}

// GetByID implements store.FlashcardStore.GetByID
// Returns store.ErrCardNotFound if no card matches the user/card pair.
func (s *PostgresFlashcardStore) GetByID(ctx context.Context, userID, cardID uuid.UUID) (*domain.Flashcard, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, user_id, front, back, topic, subject, difficulty,
		       repetitions, ease_factor, interval_days, next_review_at,
		       created_at, updated_at
		FROM flashcards
		WHERE id = $1 AND user_id = $2
	`

	var card domain.Flashcard
	err := s.db.QueryRowContext(ctx, query, cardID, userID).Scan(
		&card.ID,
		&card.UserID,
		&card.Front,
		&card.Back,
		&card.Topic,
		&card.Subject,
		&card.Difficulty,
		&card.Repetitions,
		&card.EaseFactor,
		&card.IntervalDays,
		&card.NextReviewAt,
		&card.CreatedAt,
		&card.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("flashcard not found",
				slog.String("card_id", cardID.String()))
			return nil, store.ErrCardNotFound
		}
		log.Error("failed to get flashcard by ID",
			slog.String("error", err.Error()),
			slog.String("card_id", cardID.String()))
		return nil, MapError(err)
	}

	return &card, nil
}

// GetDue implements store.FlashcardStore.GetDue
// Due-ness is evaluated against the caller-supplied now, so the query is the
// single source of truth for what is reviewable. Cards are returned oldest
// review time first.
func (s *PostgresFlashcardStore) GetDue(ctx context.Context, userID uuid.UUID, now time.Time) ([]*domain.Flashcard, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, user_id, front, back, topic, subject, difficulty,
		       repetitions, ease_factor, interval_days, next_review_at,
		       created_at, updated_at
		FROM flashcards
		WHERE user_id = $1 AND next_review_at <= $2
		ORDER BY next_review_at ASC
	`

	rows, err := s.db.QueryContext(ctx, query, userID, now)
	if err != nil {
		log.Error("failed to query due flashcards",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()))
		return nil, MapError(err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	var cards []*domain.Flashcard
	for rows.Next() {
		var card domain.Flashcard
		err := rows.Scan(
			&card.ID,
			&card.UserID,
			&card.Front,
			&card.Back,
			&card.Topic,
			&card.Subject,
			&card.Difficulty,
			&card.Repetitions,
			&card.EaseFactor,
			&card.IntervalDays,
			&card.NextReviewAt,
			&card.CreatedAt,
			&card.UpdatedAt,
		)
		if err != nil {
			log.Error("failed to scan flashcard row",
				slog.String("error", err.Error()))
			return nil, err
		}
		cards = append(cards, &card)
	}

	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows",
			slog.String("error", err.Error()))
		return nil, err
	}

	if cards == nil {
		cards = []*domain.Flashcard{}
	}

	log.Debug("found due flashcards",
		slog.String("user_id", userID.String()),
		slog.Int("count", len(cards)))
	return cards, nil
}

// Update implements store.FlashcardStore.Update
// It persists the card's current scheduling state.
// Returns store.ErrCardNotFound if the card does not exist.
func (s *PostgresFlashcardStore) Update(ctx context.Context, card *domain.Flashcard) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := card.Validate(); err != nil {
		log.Warn("flashcard validation failed during update",
			slog.String("error", err.Error()),
			slog.String("card_id", card.ID.String()))
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	query := `
		UPDATE flashcards
		SET repetitions = $1, ease_factor = $2, interval_days = $3,
		    next_review_at = $4, updated_at = $5
		WHERE id = $6 AND user_id = $7
	`

	result, err := s.db.ExecContext(ctx, query,
		card.Repetitions,
		card.EaseFactor,
		card.IntervalDays,
		card.NextReviewAt,
		card.UpdatedAt,
		card.ID,
		card.UserID,
	)

	if err != nil {
		log.Error("failed to update flashcard",
			slog.String("error", err.Error()),
			slog.String("card_id", card.ID.String()))
		return MapError(err)
	}

	if err := CheckRowsAffected(result, "flashcard"); err != nil {
		log.Debug("flashcard not found for update",
			slog.String("card_id", card.ID.String()))
		return store.ErrCardNotFound
	}

	log.Debug("flashcard updated",
		slog.String("card_id", card.ID.String()),
		slog.Int("repetitions", card.Repetitions),
		slog.Int("interval_days", card.IntervalDays))
	return nil
}

// Delete implements store.FlashcardStore.Delete
// Returns store.ErrCardNotFound if the card does not exist.
func (s *PostgresFlashcardStore) Delete(ctx context.Context, userID, cardID uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx,
		`DELETE FROM flashcards WHERE id = $1 AND user_id = $2`,
		cardID, userID,
	)
	if err != nil {
		log.Error("failed to delete flashcard",
			slog.String("error", err.Error()),
			slog.String("card_id", cardID.String()))
		return MapError(err)
	}

	if err := CheckRowsAffected(result, "flashcard"); err != nil {
		log.Debug("flashcard not found for delete",
			slog.String("card_id", cardID.String()))
		return store.ErrCardNotFound
	}

	log.Info("flashcard deleted",
		slog.String("card_id", cardID.String()),
		slog.String("user_id", userID.String()))
	return nil
}
