package postgres

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"github.com/ayuh2206-ops/dnyanjyoti-api/internal/domain"
	"github.com/ayuh2206-ops/dnyanjyoti-api/internal/platform/logger"
	"github.com/ayuh2206-ops/dnyanjyoti-api/internal/store"
)

// PostgresCreditStore implements the store.CreditStore interface
// using a PostgreSQL database as the storage backend.
//
// It holds a *sql.DB rather than a DBTX because Debit and Credit open their
// own transaction: the balance change and its ledger audit row must commit
// together or not at all.
type PostgresCreditStore struct {
	db     *sql.DB
	logger *slog.Logger
}

// NewPostgresCreditStore creates a new PostgreSQL implementation of the CreditStore interface.
// It accepts a database connection that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresCreditStore(db *sql.DB, logger *slog.Logger) *PostgresCreditStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresCreditStore{
		db:     db,
		logger: logger.With(slog.String("component", "credit_store")),
	}
}

// Ensure PostgresCreditStore implements store.CreditStore interface
var _ store.CreditStore = (*PostgresCreditStore)(nil)

// Debit implements store.CreditStore.Debit
// The balance check and decrement happen in a single conditional UPDATE, so
// concurrent debits against the same user serialize on the row and can never
// drive the balance negative. A zero-row result means the balance was too
// small (or the user does not exist); the distinction is resolved with a
// follow-up existence check before returning.
func (s *PostgresCreditStore) Debit(ctx context.Context, userID uuid.UUID, amount int, reason string) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	entry, err := domain.NewCreditTransaction(userID, amount, domain.TransactionDebit, reason)
	if err != nil {
		log.Warn("invalid debit request",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()))
		return store.ErrInvalidAmount
	}

	err = store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		result, err := tx.ExecContext(ctx, `
			UPDATE users
			SET credits = credits - $1, updated_at = NOW()
			WHERE id = $2 AND credits >= $1
		`, amount, userID)
		if err != nil {
			return MapError(err)
		}

		rowsAffected, err := result.RowsAffected()
		if err != nil {
			return err
		}

		if rowsAffected == 0 {
			var exists bool
			err := tx.QueryRowContext(ctx,
				`SELECT EXISTS(SELECT 1 FROM users WHERE id = $1)`,
				userID,
			).Scan(&exists)
			if err != nil {
				return MapError(err)
			}
			if !exists {
				return store.ErrUserNotFound
			}
			return store.ErrInsufficientCredits
		}

		return s.recordTransaction(ctx, tx, entry)
	})

	if err != nil {
		if errors.Is(err, store.ErrInsufficientCredits) {
			log.Info("debit rejected: insufficient credits",
				slog.String("user_id", userID.String()),
				slog.Int("amount", amount),
				slog.String("reason", reason))
		} else {
			log.Error("failed to debit credits",
				slog.String("error", err.Error()),
				slog.String("user_id", userID.String()),
				slog.Int("amount", amount))
		}
		return err
	}

	log.Info("credits debited",
		slog.String("user_id", userID.String()),
		slog.Int("amount", amount),
		slog.String("reason", reason))
	return nil
}

// Credit implements store.CreditStore.Credit
// Additions have no upper bound; the balance change and ledger entry commit
// in the same transaction.
func (s *PostgresCreditStore) Credit(ctx context.Context, userID uuid.UUID, amount int, reason string) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	entry, err := domain.NewCreditTransaction(userID, amount, domain.TransactionCredit, reason)
	if err != nil {
		log.Warn("invalid credit request",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()))
		return store.ErrInvalidAmount
	}

	err = store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		result, err := tx.ExecContext(ctx, `
			UPDATE users
			SET credits = credits + $1, updated_at = NOW()
			WHERE id = $2
		`, amount, userID)
		if err != nil {
			return MapError(err)
		}

		if err := CheckRowsAffected(result, "user"); err != nil {
			return store.ErrUserNotFound
		}

		return s.recordTransaction(ctx, tx, entry)
	})

	if err != nil {
		log.Error("failed to credit account",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()),
			slog.Int("amount", amount))
		return err
	}

	log.Info("credits added",
		slog.String("user_id", userID.String()),
		slog.Int("amount", amount),
		slog.String("reason", reason))
	return nil
}

// Balance implements store.CreditStore.Balance
func (s *PostgresCreditStore) Balance(ctx context.Context, userID uuid.UUID) (int, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var balance int
	err := s.db.QueryRowContext(ctx,
		`SELECT credits FROM users WHERE id = $1`,
		userID,
	).Scan(&balance)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, store.ErrUserNotFound
		}
		log.Error("failed to read credit balance",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()))
		return 0, MapError(err)
	}

	return balance, nil
}

// Transactions implements store.CreditStore.Transactions
func (s *PostgresCreditStore) Transactions(
	ctx context.Context,
	userID uuid.UUID,
	limit int,
) ([]*domain.CreditTransaction, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, user_id, amount, kind, reason, created_at
		FROM credit_transactions
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`, userID, limit)
	if err != nil {
		log.Error("failed to query credit transactions",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()))
		return nil, MapError(err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	var entries []*domain.CreditTransaction
	for rows.Next() {
		var entry domain.CreditTransaction
		var kind string

		err := rows.Scan(
			&entry.ID,
			&entry.UserID,
			&entry.Amount,
			&kind,
			&entry.Reason,
			&entry.CreatedAt,
		)
		if err != nil {
			log.Error("failed to scan credit transaction row",
				slog.String("error", err.Error()))
			return nil, err
		}

		entry.Kind = domain.TransactionKind(kind)
		entries = append(entries, &entry)
	}

	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows",
			slog.String("error", err.Error()))
		return nil, err
	}

	if entries == nil {
		entries = []*domain.CreditTransaction{}
	}

	return entries, nil
}

// recordTransaction writes a ledger audit row inside the caller's transaction.
func (s *PostgresCreditStore) recordTransaction(ctx context.Context, tx *sql.Tx, entry *domain.CreditTransaction) error {
	_, err := tx.ExecContext(ctx, `
		INSERT INTO credit_transactions (id, user_id, amount, kind, reason, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`,
		entry.ID,
		entry.UserID,
		entry.Amount,
		entry.Kind,
		entry.Reason,
		entry.CreatedAt,
	)
	if err != nil {
		return MapError(err)
	}
	return nil
}
