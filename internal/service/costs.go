package service

import "github.com/ayuh2206-ops/dnyanjyoti-api/internal/llm"

// Credit costs per AI action. Costs are a pure function of the action and
// its size, computed before the provider is called; the provider's own
// token count never feeds back into billing.
const (
	costPerQuizQuestion = 2
	costChatFast        = 3
	costChatSmart       = 5
	costMindMap         = 5
	costGradingBase     = 8
	costGradingExtraCap = 7
	costGradingWordsPer = 200
	costPerFlashcard    = 1
	costSummarize       = 2
)

// QuizCost returns the credit cost of generating count quiz questions.
func QuizCost(count int) int {
	return costPerQuizQuestion * count
}

// ChatCost returns the credit cost of one chat message at the given tier.
func ChatCost(tier llm.Tier) int {
	if tier == llm.TierSmart {
		return costChatSmart
	}
	return costChatFast
}

// GradingCost returns the credit cost of grading an answer with the given
// word limit. Longer answers cost more, capped so an extreme limit cannot
// run away.
func GradingCost(wordLimit int) int {
	extra := wordLimit / costGradingWordsPer
	if extra > costGradingExtraCap {
		extra = costGradingExtraCap
	}
	if extra < 0 {
		extra = 0
	}
	return costGradingBase + extra
}

// FlashcardsCost returns the credit cost of generating count flashcards.
func FlashcardsCost(count int) int {
	return costPerFlashcard * count
}

// MindMapCost returns the credit cost of generating a mind map.
func MindMapCost() int {
	return costMindMap
}

// SummarizeCost returns the credit cost of summarizing a text.
func SummarizeCost() int {
	return costSummarize
}
