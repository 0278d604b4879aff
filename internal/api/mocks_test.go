package api

import (
	"context"
	"io"
	"log/slog"

	"github.com/google/uuid"

	"github.com/ayuh2206-ops/dnyanjyoti-api/internal/domain"
	"github.com/ayuh2206-ops/dnyanjyoti-api/internal/service"
	"github.com/ayuh2206-ops/dnyanjyoti-api/internal/service/auth"
)

// Function-field mocks for the handler tests. Each test assigns only the
// functions it expects the handler to call; an unexpected call panics on
// the nil function, which is the failure we want.

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type mockAIService struct {
	generateQuizFn       func(ctx context.Context, userID uuid.UUID, req service.QuizRequest) (*service.QuizResult, error)
	gradeAnswerFn        func(ctx context.Context, userID uuid.UUID, req service.GradeRequest) (*service.GradeResult, error)
	generateFlashcardsFn func(ctx context.Context, userID uuid.UUID, req service.FlashcardsRequest) (*service.FlashcardsResult, error)
	generateMindMapFn    func(ctx context.Context, userID uuid.UUID, req service.MindMapRequest) (*service.MindMapResult, error)
	chatFn               func(ctx context.Context, userID uuid.UUID, req service.ChatRequest) (*service.ChatResult, error)
	summarizeFn          func(ctx context.Context, userID uuid.UUID, req service.SummarizeRequest) (*service.SummarizeResult, error)
}

func (m *mockAIService) GenerateQuiz(
	ctx context.Context, userID uuid.UUID, req service.QuizRequest,
) (*service.QuizResult, error) {
	return m.generateQuizFn(ctx, userID, req)
}

func (m *mockAIService) GradeAnswer(
	ctx context.Context, userID uuid.UUID, req service.GradeRequest,
) (*service.GradeResult, error) {
	return m.gradeAnswerFn(ctx, userID, req)
}

func (m *mockAIService) GenerateFlashcards(
	ctx context.Context, userID uuid.UUID, req service.FlashcardsRequest,
) (*service.FlashcardsResult, error) {
	return m.generateFlashcardsFn(ctx, userID, req)
}

func (m *mockAIService) GenerateMindMap(
	ctx context.Context, userID uuid.UUID, req service.MindMapRequest,
) (*service.MindMapResult, error) {
	return m.generateMindMapFn(ctx, userID, req)
}

func (m *mockAIService) Chat(
	ctx context.Context, userID uuid.UUID, req service.ChatRequest,
) (*service.ChatResult, error) {
	return m.chatFn(ctx, userID, req)
}

func (m *mockAIService) Summarize(
	ctx context.Context, userID uuid.UUID, req service.SummarizeRequest,
) (*service.SummarizeResult, error) {
	return m.summarizeFn(ctx, userID, req)
}

type mockReviewService struct {
	getDueCardsFn  func(ctx context.Context, userID uuid.UUID) ([]*domain.Flashcard, error)
	submitReviewFn func(ctx context.Context, userID, cardID uuid.UUID, quality domain.ReviewQuality) (*domain.Flashcard, error)
	deleteCardFn   func(ctx context.Context, userID, cardID uuid.UUID) error
}

func (m *mockReviewService) GetDueCards(
	ctx context.Context, userID uuid.UUID,
) ([]*domain.Flashcard, error) {
	return m.getDueCardsFn(ctx, userID)
}

func (m *mockReviewService) SubmitReview(
	ctx context.Context, userID, cardID uuid.UUID, quality domain.ReviewQuality,
) (*domain.Flashcard, error) {
	return m.submitReviewFn(ctx, userID, cardID, quality)
}

func (m *mockReviewService) DeleteCard(ctx context.Context, userID, cardID uuid.UUID) error {
	return m.deleteCardFn(ctx, userID, cardID)
}

type mockUserService struct {
	registerFn     func(ctx context.Context, email, password string) (*domain.User, error)
	authenticateFn func(ctx context.Context, email, password string) (*domain.User, error)
	getUserFn      func(ctx context.Context, userID uuid.UUID) (*domain.User, error)
}

func (m *mockUserService) Register(ctx context.Context, email, password string) (*domain.User, error) {
	return m.registerFn(ctx, email, password)
}

func (m *mockUserService) Authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	return m.authenticateFn(ctx, email, password)
}

func (m *mockUserService) GetUser(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	return m.getUserFn(ctx, userID)
}

type mockQuizStore struct {
	createFn     func(ctx context.Context, quiz *domain.Quiz) error
	getByIDFn    func(ctx context.Context, userID, quizID uuid.UUID) (*domain.Quiz, error)
	listByUserFn func(ctx context.Context, userID uuid.UUID, limit int) ([]*domain.Quiz, error)
}

func (m *mockQuizStore) Create(ctx context.Context, quiz *domain.Quiz) error {
	return m.createFn(ctx, quiz)
}

func (m *mockQuizStore) GetByID(ctx context.Context, userID, quizID uuid.UUID) (*domain.Quiz, error) {
	return m.getByIDFn(ctx, userID, quizID)
}

func (m *mockQuizStore) ListByUser(
	ctx context.Context, userID uuid.UUID, limit int,
) ([]*domain.Quiz, error) {
	return m.listByUserFn(ctx, userID, limit)
}

type mockJWTService struct {
	generateTokenFn        func(ctx context.Context, userID uuid.UUID) (string, error)
	validateTokenFn        func(ctx context.Context, tokenString string) (*auth.Claims, error)
	generateRefreshTokenFn func(ctx context.Context, userID uuid.UUID) (string, error)
	validateRefreshTokenFn func(ctx context.Context, tokenString string) (*auth.Claims, error)
}

func (m *mockJWTService) GenerateToken(ctx context.Context, userID uuid.UUID) (string, error) {
	return m.generateTokenFn(ctx, userID)
}

func (m *mockJWTService) ValidateToken(ctx context.Context, tokenString string) (*auth.Claims, error) {
	return m.validateTokenFn(ctx, tokenString)
}

func (m *mockJWTService) GenerateRefreshToken(ctx context.Context, userID uuid.UUID) (string, error) {
	return m.generateRefreshTokenFn(ctx, userID)
}

func (m *mockJWTService) ValidateRefreshToken(ctx context.Context, tokenString string) (*auth.Claims, error) {
	return m.validateRefreshTokenFn(ctx, tokenString)
}

type mockCreditStore struct {
	debitFn        func(ctx context.Context, userID uuid.UUID, amount int, reason string) error
	creditFn       func(ctx context.Context, userID uuid.UUID, amount int, reason string) error
	balanceFn      func(ctx context.Context, userID uuid.UUID) (int, error)
	transactionsFn func(ctx context.Context, userID uuid.UUID, limit int) ([]*domain.CreditTransaction, error)
}

func (m *mockCreditStore) Debit(ctx context.Context, userID uuid.UUID, amount int, reason string) error {
	return m.debitFn(ctx, userID, amount, reason)
}

func (m *mockCreditStore) Credit(ctx context.Context, userID uuid.UUID, amount int, reason string) error {
	return m.creditFn(ctx, userID, amount, reason)
}

func (m *mockCreditStore) Balance(ctx context.Context, userID uuid.UUID) (int, error) {
	return m.balanceFn(ctx, userID)
}

func (m *mockCreditStore) Transactions(
	ctx context.Context, userID uuid.UUID, limit int,
) ([]*domain.CreditTransaction, error) {
	return m.transactionsFn(ctx, userID, limit)
}
