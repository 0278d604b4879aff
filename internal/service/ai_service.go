package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/ayuh2206-ops/dnyanjyoti-api/internal/domain"
	"github.com/ayuh2206-ops/dnyanjyoti-api/internal/llm"
	"github.com/ayuh2206-ops/dnyanjyoti-api/internal/parser"
	"github.com/ayuh2206-ops/dnyanjyoti-api/internal/platform/logger"
	"github.com/ayuh2206-ops/dnyanjyoti-api/internal/store"
)

// Request size bounds enforced before any credits are spent.
const (
	maxQuizQuestions  = 20
	maxFlashcardCount = 50
	maxInputTextLen   = 50000
	maxChatHistoryLen = 40
)

// QuizRequest asks for generated multiple-choice questions.
type QuizRequest struct {
	Subject    string   `json:"subject"`
	Difficulty string   `json:"difficulty"`
	Count      int      `json:"count"`
	Topics     []string `json:"topics"`
}

// QuizResult is the envelope returned for a quiz generation.
type QuizResult struct {
	QuizID      uuid.UUID             `json:"quizId"`
	Questions   []domain.QuizQuestion `json:"questions"`
	RawResponse string                `json:"rawResponse"`
	TokensUsed  int                   `json:"tokensUsed"`
	Model       string                `json:"model"`
	NeedsReview bool                  `json:"needsReview"`
}

// GradeRequest asks for an essay answer to be graded.
type GradeRequest struct {
	Question  string `json:"question"`
	Answer    string `json:"answer"`
	WordLimit int    `json:"wordLimit"`
}

// GradeResult is the envelope returned for a grading.
type GradeResult struct {
	Grading     domain.GradingResult `json:"grading"`
	TokensUsed  int                  `json:"tokensUsed"`
	Model       string               `json:"model"`
	NeedsReview bool                 `json:"needsReview"`
}

// FlashcardsRequest asks for flashcards generated from study material.
type FlashcardsRequest struct {
	Text    string `json:"text"`
	Count   int    `json:"count"`
	Subject string `json:"subject"`
}

// FlashcardsResult is the envelope returned for flashcard generation.
// The cards are already persisted with fresh review state.
type FlashcardsResult struct {
	Flashcards  []*domain.Flashcard `json:"flashcards"`
	TokensUsed  int                 `json:"tokensUsed"`
	Model       string              `json:"model"`
	NeedsReview bool                `json:"needsReview"`
}

// MindMapRequest asks for a topic mind map.
type MindMapRequest struct {
	Topic   string `json:"topic"`
	Subject string `json:"subject"`
}

// MindMapResult is the envelope returned for a mind map generation.
type MindMapResult struct {
	MindMap     domain.MindMapNode `json:"mindMap"`
	TokensUsed  int                `json:"tokensUsed"`
	Model       string             `json:"model"`
	NeedsReview bool               `json:"needsReview"`
}

// ChatMessage is one prior turn of a tutoring conversation.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatRequest asks for a tutoring reply. Mode selects the provider tier:
// "smart" uses the premium model, anything else the fast one.
type ChatRequest struct {
	Message             string        `json:"message"`
	Subject             string        `json:"subject"`
	Mode                string        `json:"mode"`
	ConversationHistory []ChatMessage `json:"conversationHistory"`
}

// ChatResult is the envelope returned for a chat turn.
type ChatResult struct {
	Response   string `json:"response"`
	TokensUsed int    `json:"tokensUsed"`
	Model      string `json:"model"`
}

// SummarizeRequest asks for a revision summary of study material.
type SummarizeRequest struct {
	Text string `json:"text"`
}

// SummarizeResult is the envelope returned for a summary.
type SummarizeResult struct {
	Summary    string `json:"summary"`
	TokensUsed int    `json:"tokensUsed"`
	Model      string `json:"model"`
}

// AIService runs the AI-backed actions. Every method follows the same
// pipeline: validate, debit, call the provider, parse, persist. A debit
// that fails with store.ErrInsufficientCredits means no provider call was
// made; a provider failure after a successful debit is NOT refunded.
type AIService interface {
	GenerateQuiz(ctx context.Context, userID uuid.UUID, req QuizRequest) (*QuizResult, error)
	GradeAnswer(ctx context.Context, userID uuid.UUID, req GradeRequest) (*GradeResult, error)
	GenerateFlashcards(ctx context.Context, userID uuid.UUID, req FlashcardsRequest) (*FlashcardsResult, error)
	GenerateMindMap(ctx context.Context, userID uuid.UUID, req MindMapRequest) (*MindMapResult, error)
	Chat(ctx context.Context, userID uuid.UUID, req ChatRequest) (*ChatResult, error)
	Summarize(ctx context.Context, userID uuid.UUID, req SummarizeRequest) (*SummarizeResult, error)
}

// aiServiceImpl implements the AIService interface.
type aiServiceImpl struct {
	credits   store.CreditStore
	llmClient llm.Client
	quizzes   store.QuizStore
	cards     store.FlashcardStore
	logger    *slog.Logger
}

// NewAIService creates a new AIService.
// It panics if any required dependency is nil.
func NewAIService(
	credits store.CreditStore,
	llmClient llm.Client,
	quizzes store.QuizStore,
	cards store.FlashcardStore,
	logger *slog.Logger,
) AIService {
	if credits == nil {
		panic("credits cannot be nil")
	}
	if llmClient == nil {
		panic("llmClient cannot be nil")
	}
	if quizzes == nil {
		panic("quizzes cannot be nil")
	}
	if cards == nil {
		panic("cards cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &aiServiceImpl{
		credits:   credits,
		llmClient: llmClient,
		quizzes:   quizzes,
		cards:     cards,
		logger:    logger.With(slog.String("component", "ai_service")),
	}
}

// Ensure aiServiceImpl implements AIService interface
var _ AIService = (*aiServiceImpl)(nil)

// complete debits the action's cost and calls the provider. The debit comes
// first: store.ErrInsufficientCredits short-circuits before any provider
// traffic, and a provider failure after the debit is surfaced without
// refund.
func (s *aiServiceImpl) complete(
	ctx context.Context,
	userID uuid.UUID,
	operation string,
	cost int,
	prompt string,
	opts llm.Options,
) (*llm.Response, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := s.credits.Debit(ctx, userID, cost, operation); err != nil {
		return nil, err
	}

	resp, err := s.llmClient.Complete(ctx, prompt, opts)
	if err != nil {
		log.Error("provider call failed after debit",
			slog.String("operation", operation),
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()),
			slog.Int("cost", cost))
		return nil, err
	}

	log.Info("ai action completed",
		slog.String("operation", operation),
		slog.String("user_id", userID.String()),
		slog.Int("cost", cost),
		slog.Int("tokens_used", resp.TokensUsed),
		slog.String("model", resp.Model))
	return resp, nil
}

// GenerateQuiz implements AIService.GenerateQuiz
func (s *aiServiceImpl) GenerateQuiz(
	ctx context.Context,
	userID uuid.UUID,
	req QuizRequest,
) (*QuizResult, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if req.Subject == "" {
		return nil, fmt.Errorf("%w: subject is required", ErrInvalidInput)
	}
	if req.Count < 1 || req.Count > maxQuizQuestions {
		return nil, fmt.Errorf("%w: count must be between 1 and %d", ErrInvalidInput, maxQuizQuestions)
	}

	prompt := buildQuizPrompt(req.Subject, req.Difficulty, req.Count, req.Topics)
	resp, err := s.complete(ctx, userID, "quiz", QuizCost(req.Count), prompt, llm.Options{
		Tier:         llm.TierFast,
		SystemPrompt: quizSystemPrompt,
	})
	if err != nil {
		return nil, err
	}

	questions, needsReview := parser.ParseQuiz(resp.Text, req.Subject)

	quiz := domain.NewQuiz(
		userID,
		req.Subject,
		req.Difficulty,
		questions,
		resp.Text,
		resp.TokensUsed,
		resp.Model,
		needsReview,
	)
	if err := s.quizzes.Create(ctx, quiz); err != nil {
		log.Error("failed to persist quiz",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()))
		return nil, NewAIServiceError("quiz", "failed to save quiz", err)
	}

	return &QuizResult{
		QuizID:      quiz.ID,
		Questions:   questions,
		RawResponse: resp.Text,
		TokensUsed:  resp.TokensUsed,
		Model:       resp.Model,
		NeedsReview: needsReview,
	}, nil
}

// GradeAnswer implements AIService.GradeAnswer
// Grading always uses the smart tier: marking a mains answer is the one
// action where model quality visibly changes the outcome.
func (s *aiServiceImpl) GradeAnswer(
	ctx context.Context,
	userID uuid.UUID,
	req GradeRequest,
) (*GradeResult, error) {
	if req.Question == "" {
		return nil, fmt.Errorf("%w: question is required", ErrInvalidInput)
	}
	if req.Answer == "" {
		return nil, fmt.Errorf("%w: answer is required", ErrInvalidInput)
	}
	if req.WordLimit < 0 {
		return nil, fmt.Errorf("%w: word limit cannot be negative", ErrInvalidInput)
	}

	prompt := buildGradePrompt(req.Question, req.Answer, req.WordLimit)
	resp, err := s.complete(ctx, userID, "grade", GradingCost(req.WordLimit), prompt, llm.Options{
		Tier:         llm.TierSmart,
		SystemPrompt: gradeSystemPrompt,
	})
	if err != nil {
		return nil, err
	}

	grading, needsReview := parser.ParseGrading(resp.Text)

	return &GradeResult{
		Grading:     grading,
		TokensUsed:  resp.TokensUsed,
		Model:       resp.Model,
		NeedsReview: needsReview,
	}, nil
}

// GenerateFlashcards implements AIService.GenerateFlashcards
// Parsed cards are persisted with fresh review state in one batch; the
// whole batch commits or none of it does.
func (s *aiServiceImpl) GenerateFlashcards(
	ctx context.Context,
	userID uuid.UUID,
	req FlashcardsRequest,
) (*FlashcardsResult, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if req.Text == "" {
		return nil, fmt.Errorf("%w: text is required", ErrInvalidInput)
	}
	if len(req.Text) > maxInputTextLen {
		return nil, fmt.Errorf("%w: text exceeds %d characters", ErrInvalidInput, maxInputTextLen)
	}
	if req.Count < 1 || req.Count > maxFlashcardCount {
		return nil, fmt.Errorf("%w: count must be between 1 and %d", ErrInvalidInput, maxFlashcardCount)
	}

	prompt := buildFlashcardsPrompt(req.Text, req.Count)
	resp, err := s.complete(ctx, userID, "flashcards", FlashcardsCost(req.Count), prompt, llm.Options{
		Tier: llm.TierFast,
	})
	if err != nil {
		return nil, err
	}

	contents, needsReview := parser.ParseFlashcards(resp.Text, req.Subject)

	cards := make([]*domain.Flashcard, 0, len(contents))
	for _, c := range contents {
		card, err := domain.NewFlashcard(userID, c.Front, c.Back, c.Topic, req.Subject, c.Difficulty)
		if err != nil {
			// Parsed content already passed the parser's shape checks, so
			// a failure here is a programming error worth surfacing.
			return nil, NewAIServiceError("flashcards", "failed to build flashcard", err)
		}
		cards = append(cards, card)
	}

	if err := s.cards.CreateMultiple(ctx, cards); err != nil {
		log.Error("failed to persist flashcards",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()),
			slog.Int("count", len(cards)))
		return nil, NewAIServiceError("flashcards", "failed to save flashcards", err)
	}

	return &FlashcardsResult{
		Flashcards:  cards,
		TokensUsed:  resp.TokensUsed,
		Model:       resp.Model,
		NeedsReview: needsReview,
	}, nil
}

// GenerateMindMap implements AIService.GenerateMindMap
func (s *aiServiceImpl) GenerateMindMap(
	ctx context.Context,
	userID uuid.UUID,
	req MindMapRequest,
) (*MindMapResult, error) {
	if req.Topic == "" {
		return nil, fmt.Errorf("%w: topic is required", ErrInvalidInput)
	}

	prompt := buildMindMapPrompt(req.Topic, req.Subject)
	resp, err := s.complete(ctx, userID, "mindmap", MindMapCost(), prompt, llm.Options{
		Tier: llm.TierFast,
	})
	if err != nil {
		return nil, err
	}

	mindMap, needsReview := parser.ParseMindMap(resp.Text, req.Topic)

	return &MindMapResult{
		MindMap:     mindMap,
		TokensUsed:  resp.TokensUsed,
		Model:       resp.Model,
		NeedsReview: needsReview,
	}, nil
}

// Chat implements AIService.Chat
func (s *aiServiceImpl) Chat(
	ctx context.Context,
	userID uuid.UUID,
	req ChatRequest,
) (*ChatResult, error) {
	if req.Message == "" {
		return nil, fmt.Errorf("%w: message is required", ErrInvalidInput)
	}
	if len(req.ConversationHistory) > maxChatHistoryLen {
		return nil, fmt.Errorf("%w: conversation history exceeds %d messages", ErrInvalidInput, maxChatHistoryLen)
	}

	tier := llm.TierFast
	if req.Mode == "smart" {
		tier = llm.TierSmart
	}

	prompt := buildChatPrompt(req.Message, req.Subject, req.ConversationHistory)
	resp, err := s.complete(ctx, userID, "chat", ChatCost(tier), prompt, llm.Options{
		Tier:         tier,
		SystemPrompt: chatSystemPrompt,
	})
	if err != nil {
		return nil, err
	}

	return &ChatResult{
		Response:   resp.Text,
		TokensUsed: resp.TokensUsed,
		Model:      resp.Model,
	}, nil
}

// Summarize implements AIService.Summarize
func (s *aiServiceImpl) Summarize(
	ctx context.Context,
	userID uuid.UUID,
	req SummarizeRequest,
) (*SummarizeResult, error) {
	if req.Text == "" {
		return nil, fmt.Errorf("%w: text is required", ErrInvalidInput)
	}
	if len(req.Text) > maxInputTextLen {
		return nil, fmt.Errorf("%w: text exceeds %d characters", ErrInvalidInput, maxInputTextLen)
	}

	prompt := buildSummarizePrompt(req.Text)
	resp, err := s.complete(ctx, userID, "summarize", SummarizeCost(), prompt, llm.Options{
		Tier: llm.TierFast,
	})
	if err != nil {
		return nil, err
	}

	return &SummarizeResult{
		Summary:    resp.Text,
		TokensUsed: resp.TokensUsed,
		Model:      resp.Model,
	}, nil
}
