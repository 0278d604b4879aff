package parser

import "strings"

// FlashcardContent is the card material extracted from a provider response,
// before it is bound to a user and given schedule state by the service
// layer.
type FlashcardContent struct {
	Front      string `json:"front"`
	Back       string `json:"back"`
	Topic      string `json:"topic"`
	Difficulty string `json:"difficulty"`
}

// flashcardSet mirrors the JSON shape the provider is prompted to return.
type flashcardSet struct {
	Flashcards []FlashcardContent `json:"flashcards"`
}

// ParseFlashcards extracts a flashcard set from raw provider text using the
// three-tier strategy. Cards missing a front or back are dropped; if
// nothing usable remains, a single placeholder card on the given topic is
// returned and the second result is true.
func ParseFlashcards(text, topic string) ([]FlashcardContent, bool) {
	var set flashcardSet
	if decodeJSON(text, &set) {
		var cards []FlashcardContent
		for _, c := range set.Flashcards {
			c.Front = strings.TrimSpace(c.Front)
			c.Back = strings.TrimSpace(c.Back)
			if c.Front == "" || c.Back == "" {
				continue
			}
			if c.Topic == "" {
				c.Topic = topic
			}
			if c.Difficulty == "" {
				c.Difficulty = "medium"
			}
			cards = append(cards, c)
		}
		if len(cards) > 0 {
			return cards, false
		}
	}

	return []FlashcardContent{fallbackFlashcard(topic)}, true
}

// fallbackFlashcard is the deterministic tier-three card.
func fallbackFlashcard(topic string) FlashcardContent {
	if topic == "" {
		topic = "General Studies"
	}

	return FlashcardContent{
		Front: "What should you do with this flashcard?",
		Back: "The study material for \"" + topic + "\" could not be converted into " +
			"flashcards automatically. Review the source text and regenerate.",
		Topic:      topic,
		Difficulty: "easy",
	}
}
