package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/ayuh2206-ops/dnyanjyoti-api/internal/config"
	"github.com/ayuh2206-ops/dnyanjyoti-api/internal/domain/srs"
	"github.com/ayuh2206-ops/dnyanjyoti-api/internal/llm"
	"github.com/ayuh2206-ops/dnyanjyoti-api/internal/platform/gemini"
	"github.com/ayuh2206-ops/dnyanjyoti-api/internal/platform/postgres"
	"github.com/ayuh2206-ops/dnyanjyoti-api/internal/service"
	"github.com/ayuh2206-ops/dnyanjyoti-api/internal/service/auth"
	"github.com/ayuh2206-ops/dnyanjyoti-api/internal/service/review"
	"github.com/ayuh2206-ops/dnyanjyoti-api/internal/store"
)

// application holds the shared application dependencies so wiring happens
// in one place and cleanup can walk them on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	// Stores
	userStore      store.UserStore
	creditStore    store.CreditStore
	flashcardStore store.FlashcardStore
	quizStore      store.QuizStore

	// Services
	jwtService    auth.JWTService
	llmClient     llm.Client
	srsService    srs.Service
	userService   service.UserService
	aiService     service.AIService
	reviewService review.ReviewService
}

// newApplication wires every store and service from the core dependencies.
func newApplication(
	ctx context.Context,
	cfg *config.Config,
	logger *slog.Logger,
	db *sql.DB,
) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
		db:     db,
	}

	var err error
	app.jwtService, err = auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize JWT service: %w", err)
	}
	logger.Info("JWT authentication service initialized",
		slog.Int("token_expiry_minutes", cfg.Auth.TokenExpiryMinutes))

	app.userStore = postgres.NewPostgresUserStore(db, logger)
	app.creditStore = postgres.NewPostgresCreditStore(db, logger)
	app.flashcardStore = postgres.NewPostgresFlashcardStore(db, logger)
	app.quizStore = postgres.NewPostgresQuizStore(db, logger)

	app.llmClient, err = gemini.NewClient(ctx, logger.With(slog.String("component", "llm_client")), cfg.LLM)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize LLM client: %w", err)
	}
	logger.Info("LLM client initialized",
		slog.String("fast_model", cfg.LLM.FastModel),
		slog.String("smart_model", cfg.LLM.SmartModel))

	app.srsService = srs.NewDefaultService()

	app.userService = service.NewUserService(
		app.userStore,
		auth.NewBcryptVerifier(),
		cfg.Credit.StartingBalance,
		logger,
	)
	app.aiService = service.NewAIService(
		app.creditStore,
		app.llmClient,
		app.quizStore,
		app.flashcardStore,
		logger,
	)
	app.reviewService = review.NewReviewService(
		db,
		app.flashcardStore,
		app.srsService,
		logger,
	)

	logger.Info("application initialized")
	return app, nil
}

// Run starts the HTTP server and blocks until shutdown.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// cleanup releases application resources during shutdown.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("error closing database connection", "error", err)
		}
	}
	app.logger.Info("application shutdown completed")
}
