package service

import (
	"fmt"
	"strings"
)

// Prompt builders for each AI action. Quiz prompts request the line-oriented
// Q<n>. format the parser expects; JSON actions request a single JSON object
// and nothing else. The parser tolerates deviation either way, so these are
// best-effort instructions, not contracts.

const quizSystemPrompt = `You are an expert UPSC exam question setter. ` +
	`You write precise multiple-choice questions at the level of the civil services preliminary examination.`

func buildQuizPrompt(subject, difficulty string, count int, topics []string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Generate %d multiple-choice questions on %s for UPSC preparation.\n", count, subject)
	if difficulty != "" {
		fmt.Fprintf(&b, "Difficulty: %s.\n", difficulty)
	}
	if len(topics) > 0 {
		fmt.Fprintf(&b, "Focus on these topics: %s.\n", strings.Join(topics, ", "))
	}
	b.WriteString(`
Format each question exactly like this:

Q1. <question text>
A) <option>
B) <option>
C) <option>
D) <option>
Correct: <letter>
Explanation: <one or two sentences>

Number the questions Q1., Q2., and so on. Do not add anything else.`)
	return b.String()
}

const gradeSystemPrompt = `You are a UPSC mains examiner. You grade answers strictly but fairly, ` +
	`the way the civil services main examination is marked.`

func buildGradePrompt(question, answer string, wordLimit int) string {
	return fmt.Sprintf(`Grade the following answer to a UPSC mains question.

Question: %s
Word limit: %d

Answer:
%s

Respond with a single JSON object and nothing else:
{"totalScore": <0-10>, "breakdown": {"content": <0-3>, "structure": <0-2>, "accuracy": <0-3>, "examples": <0-2>}, "strengths": [...], "weaknesses": [...], "suggestions": [...], "modelAnswer": "<a concise model answer>"}`,
		question, wordLimit, answer)
}

func buildFlashcardsPrompt(text string, count int) string {
	return fmt.Sprintf(`Create %d flashcards from the following study material for UPSC preparation.

Material:
%s

Respond with a single JSON object and nothing else:
{"flashcards": [{"front": "<question or term>", "back": "<answer or definition>", "topic": "<short topic label>", "difficulty": "easy|medium|hard"}]}`,
		count, text)
}

func buildMindMapPrompt(topic, subject string) string {
	return fmt.Sprintf(`Create a mind map of "%s" (%s) for UPSC preparation.

Respond with a single JSON object and nothing else, nested at most four levels deep:
{"name": "%s", "children": [{"name": "<branch>", "children": [...]}]}`,
		topic, subject, topic)
}

const chatSystemPrompt = `You are a knowledgeable and encouraging UPSC preparation mentor. ` +
	`Answer questions accurately, relate them to the exam syllabus where relevant, and keep answers focused.`

func buildChatPrompt(message, subject string, history []ChatMessage) string {
	var b strings.Builder
	if subject != "" {
		fmt.Fprintf(&b, "Subject context: %s\n\n", subject)
	}
	for _, m := range history {
		fmt.Fprintf(&b, "%s: %s\n", m.Role, m.Content)
	}
	fmt.Fprintf(&b, "user: %s", message)
	return b.String()
}

func buildSummarizePrompt(text string) string {
	return fmt.Sprintf(`Summarize the following material for UPSC revision. `+
		`Keep the key facts, dates, and concepts; drop filler. Use short paragraphs or bullet points.

%s`, text)
}
