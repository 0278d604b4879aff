package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/ayuh2206-ops/dnyanjyoti-api/internal/domain"
	"github.com/ayuh2206-ops/dnyanjyoti-api/internal/platform/logger"
	"github.com/ayuh2206-ops/dnyanjyoti-api/internal/store"
)

// PostgresQuizStore implements the store.QuizStore interface
// using a PostgreSQL database as the storage backend.
//
// Questions are stored as a JSONB document on the quiz row. They are written
// once at generation time and read back whole, so a relational breakout
// would buy nothing.
type PostgresQuizStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresQuizStore creates a new PostgreSQL implementation of the QuizStore interface.
// It accepts a database connection or transaction that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresQuizStore(db store.DBTX, logger *slog.Logger) *PostgresQuizStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresQuizStore{
		db:     db,
		logger: logger.With(slog.String("component", "quiz_store")),
	}
}

// Ensure PostgresQuizStore implements store.QuizStore interface
var _ store.QuizStore = (*PostgresQuizStore)(nil)

// Create implements store.QuizStore.Create
// Returns store.ErrInvalidEntity if the owning user does not exist.
func (s *PostgresQuizStore) Create(ctx context.Context, quiz *domain.Quiz) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	questions, err := json.Marshal(quiz.Questions)
	if err != nil {
		return fmt.Errorf("%w: failed to encode questions: %v", store.ErrInvalidEntity, err)
	}

	query := `
		INSERT INTO quizzes (
			id, user_id, subject, difficulty, questions,
			raw_response, tokens_used, model, needs_review, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	_, err = s.db.ExecContext(ctx, query,
		quiz.ID,
		quiz.UserID,
		quiz.Subject,
		quiz.Difficulty,
		questions,
		quiz.RawResponse,
		quiz.TokensUsed,
		quiz.Model,
		quiz.NeedsReview,
		quiz.CreatedAt,
	)

	if err != nil {
		if IsForeignKeyViolation(err) {
			log.Warn("foreign key violation during quiz creation",
				slog.String("quiz_id", quiz.ID.String()),
				slog.String("user_id", quiz.UserID.String()))
			return fmt.Errorf("%w: user with ID %s not found",
				store.ErrInvalidEntity, quiz.UserID)
		}

		log.Error("failed to create quiz",
			slog.String("error", err.Error()),
			slog.String("quiz_id", quiz.ID.String()))
		return MapError(err)
	}

	log.Info("quiz created",
		slog.String("quiz_id", quiz.ID.String()),
		slog.String("user_id", quiz.UserID.String()),
		slog.Int("question_count", len(quiz.Questions)))
	return nil
}

// GetByID implements store.QuizStore.GetByID
// Returns store.ErrQuizNotFound if no quiz matches the user/quiz pair.
func (s *PostgresQuizStore) GetByID(ctx context.Context, userID, quizID uuid.UUID) (*domain.Quiz, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, user_id, subject, difficulty, questions,
		       raw_response, tokens_used, model, needs_review, created_at
		FROM quizzes
		WHERE id = $1 AND user_id = $2
	`

	quiz, err := scanQuiz(s.db.QueryRowContext(ctx, query, quizID, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("quiz not found",
				slog.String("quiz_id", quizID.String()))
			return nil, store.ErrQuizNotFound
		}
		log.Error("failed to get quiz by ID",
			slog.String("error", err.Error()),
			slog.String("quiz_id", quizID.String()))
		return nil, MapError(err)
	}

	return quiz, nil
}

// ListByUser implements store.QuizStore.ListByUser
func (s *PostgresQuizStore) ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*domain.Quiz, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if limit <= 0 {
		limit = 20
	}

	query := `
		SELECT id, user_id, subject, difficulty, questions,
		       raw_response, tokens_used, model, needs_review, created_at
		FROM quizzes
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`

	rows, err := s.db.QueryContext(ctx, query, userID, limit)
	if err != nil {
		log.Error("failed to query quizzes",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()))
		return nil, MapError(err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	var quizzes []*domain.Quiz
	for rows.Next() {
		quiz, err := scanQuiz(rows)
		if err != nil {
			log.Error("failed to scan quiz row",
				slog.String("error", err.Error()))
			return nil, err
		}
		quizzes = append(quizzes, quiz)
	}

	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows",
			slog.String("error", err.Error()))
		return nil, err
	}

	if quizzes == nil {
		quizzes = []*domain.Quiz{}
	}

	return quizzes, nil
}

// rowScanner covers *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanQuiz(row rowScanner) (*domain.Quiz, error) {
	var quiz domain.Quiz
	var questions []byte

	err := row.Scan(
		&quiz.ID,
		&quiz.UserID,
		&quiz.Subject,
		&quiz.Difficulty,
		&questions,
		&quiz.RawResponse,
		&quiz.TokensUsed,
		&quiz.Model,
		&quiz.NeedsReview,
		&quiz.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(questions, &quiz.Questions); err != nil {
		return nil, fmt.Errorf("failed to decode quiz questions: %w", err)
	}

	return &quiz, nil
}
