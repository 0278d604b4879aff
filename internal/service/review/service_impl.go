package review

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/ayuh2206-ops/dnyanjyoti-api/internal/domain"
	"github.com/ayuh2206-ops/dnyanjyoti-api/internal/domain/srs"
	"github.com/ayuh2206-ops/dnyanjyoti-api/internal/platform/logger"
	"github.com/ayuh2206-ops/dnyanjyoti-api/internal/store"
)

// Verify interface compliance at compile time
var _ ReviewService = (*reviewServiceImpl)(nil)

// reviewServiceImpl implements the ReviewService interface.
type reviewServiceImpl struct {
	db         *sql.DB
	cards      store.FlashcardStore
	srsService srs.Service
	logger     *slog.Logger
	now        timeFunc
	runTx      func(ctx context.Context, db *sql.DB, fn store.TxFn) error // injectable for testing
}

// NewReviewService creates a new ReviewService implementation.
// It panics if any required dependency is nil.
func NewReviewService(
	db *sql.DB,
	cards store.FlashcardStore,
	srsService srs.Service,
	logger *slog.Logger,
) ReviewService {
	if db == nil {
		panic("db cannot be nil")
	}
	if cards == nil {
		panic("cards cannot be nil")
	}
	if srsService == nil {
		panic("srsService cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &reviewServiceImpl{
		db:         db,
		cards:      cards,
		srsService: srsService,
		logger:     logger.With(slog.String("component", "review_service")),
		now:        func() time.Time { return time.Now().UTC() },
		runTx:      store.RunInTransaction,
	}
}

// GetDueCards implements ReviewService.GetDueCards.
func (s *reviewServiceImpl) GetDueCards(
	ctx context.Context,
	userID uuid.UUID,
) ([]*domain.Flashcard, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	cards, err := s.cards.GetDue(ctx, userID, s.now())
	if err != nil {
		log.Error("failed to get due cards",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()))
		return nil, fmt.Errorf("failed to get due cards: %w", err)
	}

	log.Debug("retrieved due cards",
		slog.String("user_id", userID.String()),
		slog.Int("count", len(cards)))
	return cards, nil
}

// SubmitReview implements ReviewService.SubmitReview.
// The card read, schedule transition, and write run in a single transaction
// so two rapid reviews of the same card cannot interleave their updates.
func (s *reviewServiceImpl) SubmitReview(
	ctx context.Context,
	userID uuid.UUID,
	cardID uuid.UUID,
	quality domain.ReviewQuality,
) (*domain.Flashcard, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if !quality.IsValid() {
		log.Warn("invalid review quality",
			slog.String("user_id", userID.String()),
			slog.String("card_id", cardID.String()),
			slog.Int("quality", int(quality)))
		return nil, ErrInvalidQuality
	}

	var updated *domain.Flashcard
	err := s.runTx(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		txCards := s.cards.WithTx(tx)

		card, err := txCards.GetByID(ctx, userID, cardID)
		if err != nil {
			if errors.Is(err, store.ErrCardNotFound) {
				return ErrCardNotFound
			}
			return fmt.Errorf("failed to get card: %w", err)
		}

		// The store query is already scoped by user, so a found card is
		// owned by the caller. The explicit check stays as a second lock
		// on the invariant.
		if card.UserID != userID {
			return ErrCardNotOwned
		}

		newCard, err := s.srsService.CalculateNextReview(card, quality, s.now())
		if err != nil {
			return fmt.Errorf("failed to calculate next review: %w", err)
		}

		if err := txCards.Update(ctx, newCard); err != nil {
			return fmt.Errorf("failed to save card: %w", err)
		}

		updated = newCard
		return nil
	})

	if err != nil {
		if errors.Is(err, ErrCardNotFound) || errors.Is(err, ErrCardNotOwned) {
			return nil, err
		}

		log.Error("failed to submit review",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()),
			slog.String("card_id", cardID.String()))
		return nil, &ServiceError{
			Operation: "submit_review",
			Message:   "failed to process review",
			Err:       err,
		}
	}

	log.Debug("review processed",
		slog.String("user_id", userID.String()),
		slog.String("card_id", cardID.String()),
		slog.Int("quality", int(quality)),
		slog.Float64("ease_factor", updated.EaseFactor),
		slog.Int("interval_days", updated.IntervalDays),
		slog.Time("next_review_at", updated.NextReviewAt))

	return updated, nil
}

// DeleteCard implements ReviewService.DeleteCard.
func (s *reviewServiceImpl) DeleteCard(ctx context.Context, userID, cardID uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := s.cards.Delete(ctx, userID, cardID); err != nil {
		if errors.Is(err, store.ErrCardNotFound) {
			return ErrCardNotFound
		}
		log.Error("failed to delete card",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()),
			slog.String("card_id", cardID.String()))
		return fmt.Errorf("failed to delete card: %w", err)
	}

	return nil
}
