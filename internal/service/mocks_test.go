package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/ayuh2206-ops/dnyanjyoti-api/internal/domain"
	"github.com/ayuh2206-ops/dnyanjyoti-api/internal/llm"
	"github.com/ayuh2206-ops/dnyanjyoti-api/internal/store"
)

// MockCreditStore mocks the store.CreditStore interface
type MockCreditStore struct {
	mock.Mock
}

func (m *MockCreditStore) Debit(ctx context.Context, userID uuid.UUID, amount int, reason string) error {
	args := m.Called(ctx, userID, amount, reason)
	return args.Error(0)
}

func (m *MockCreditStore) Credit(ctx context.Context, userID uuid.UUID, amount int, reason string) error {
	args := m.Called(ctx, userID, amount, reason)
	return args.Error(0)
}

func (m *MockCreditStore) Balance(ctx context.Context, userID uuid.UUID) (int, error) {
	args := m.Called(ctx, userID)
	return args.Int(0), args.Error(1)
}

func (m *MockCreditStore) Transactions(
	ctx context.Context,
	userID uuid.UUID,
	limit int,
) ([]*domain.CreditTransaction, error) {
	args := m.Called(ctx, userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.CreditTransaction), args.Error(1)
}

// MockLLMClient mocks the llm.Client interface
type MockLLMClient struct {
	mock.Mock
}

func (m *MockLLMClient) Complete(
	ctx context.Context,
	prompt string,
	opts llm.Options,
) (*llm.Response, error) {
	args := m.Called(ctx, prompt, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*llm.Response), args.Error(1)
}

// MockQuizStore mocks the store.QuizStore interface
type MockQuizStore struct {
	mock.Mock
}

func (m *MockQuizStore) Create(ctx context.Context, quiz *domain.Quiz) error {
	args := m.Called(ctx, quiz)
	return args.Error(0)
}

func (m *MockQuizStore) GetByID(ctx context.Context, userID, quizID uuid.UUID) (*domain.Quiz, error) {
	args := m.Called(ctx, userID, quizID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Quiz), args.Error(1)
}

func (m *MockQuizStore) ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*domain.Quiz, error) {
	args := m.Called(ctx, userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Quiz), args.Error(1)
}

// MockFlashcardStore mocks the store.FlashcardStore interface
type MockFlashcardStore struct {
	mock.Mock
}

func (m *MockFlashcardStore) Create(ctx context.Context, card *domain.Flashcard) error {
	args := m.Called(ctx, card)
	return args.Error(0)
}

func (m *MockFlashcardStore) CreateMultiple(ctx context.Context, cards []*domain.Flashcard) error {
	args := m.Called(ctx, cards)
	return args.Error(0)
}

func (m *MockFlashcardStore) GetByID(ctx context.Context, userID, cardID uuid.UUID) (*domain.Flashcard, error) {
	args := m.Called(ctx, userID, cardID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Flashcard), args.Error(1)
}

func (m *MockFlashcardStore) GetDue(
	ctx context.Context,
	userID uuid.UUID,
	now time.Time,
) ([]*domain.Flashcard, error) {
	args := m.Called(ctx, userID, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Flashcard), args.Error(1)
}

func (m *MockFlashcardStore) Update(ctx context.Context, card *domain.Flashcard) error {
	args := m.Called(ctx, card)
	return args.Error(0)
}

func (m *MockFlashcardStore) Delete(ctx context.Context, userID, cardID uuid.UUID) error {
	args := m.Called(ctx, userID, cardID)
	return args.Error(0)
}

func (m *MockFlashcardStore) WithTx(tx store.DBTX) store.FlashcardStore {
	args := m.Called(tx)
	return args.Get(0).(store.FlashcardStore)
}

// MockUserStore mocks the store.UserStore interface
type MockUserStore struct {
	mock.Mock
}

func (m *MockUserStore) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
