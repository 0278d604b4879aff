package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/ayuh2206-ops/dnyanjyoti-api/internal/api"
	apiMiddleware "github.com/ayuh2206-ops/dnyanjyoti-api/internal/api/middleware"
)

// setupRouter configures all routes and middleware. Auth endpoints and the
// health check are public; everything else requires a valid access token.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware)

	authHandler := api.NewAuthHandler(app.userService, app.jwtService, app.logger)
	aiHandler := api.NewAIHandler(app.aiService, app.logger)
	cardHandler := api.NewCardHandler(app.reviewService, app.logger)
	creditHandler := api.NewCreditHandler(app.creditStore, app.logger)
	quizHandler := api.NewQuizHandler(app.quizStore, app.logger)
	authMiddleware := apiMiddleware.NewAuthMiddleware(app.jwtService)

	r.Route("/api", func(r chi.Router) {
		// Authentication endpoints (public)
		r.Post("/auth/register", authHandler.Register)
		r.Post("/auth/login", authHandler.Login)
		r.Post("/auth/refresh", authHandler.RefreshToken)

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)

			// AI content generation
			r.Post("/ai/quiz", aiHandler.GenerateQuiz)
			r.Post("/ai/grade", aiHandler.GradeAnswer)
			r.Post("/ai/flashcards", aiHandler.GenerateFlashcards)
			r.Post("/ai/mindmap", aiHandler.GenerateMindMap)
			r.Post("/ai/chat", aiHandler.Chat)
			r.Post("/ai/summarize", aiHandler.Summarize)

			// Flashcard review
			r.Get("/cards/due", cardHandler.GetDueCards)
			r.Post("/cards/{id}/review", cardHandler.SubmitReview)
			r.Delete("/cards/{id}", cardHandler.DeleteCard)

			// Quiz history
			r.Get("/quizzes", quizHandler.ListQuizzes)
			r.Get("/quizzes/{id}", quizHandler.GetQuiz)

			// Credit ledger
			r.Get("/credits", creditHandler.GetBalance)
			r.Get("/credits/transactions", creditHandler.GetTransactions)
		})
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("failed to write health check response", "error", err)
		}
	})

	return r
}
