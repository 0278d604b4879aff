package parser

import "github.com/ayuh2206-ops/dnyanjyoti-api/internal/domain"

// ParseMindMap extracts a topic mind map from raw provider text using the
// three-tier strategy. The root node's name is always forced to the
// requested topic regardless of what the provider produced. On parse
// failure a generic topic skeleton is returned and the second result is
// true.
func ParseMindMap(text, topic string) (domain.MindMapNode, bool) {
	var root domain.MindMapNode
	if decodeJSON(text, &root) && len(root.Children) > 0 {
		root.Name = topic
		return root, false
	}

	return fallbackMindMap(topic), true
}

// fallbackMindMap is the tier-three skeleton: a root named after the topic
// with generic study branches.
func fallbackMindMap(topic string) domain.MindMapNode {
	return domain.MindMapNode{
		Name: topic,
		Children: []domain.MindMapNode{
			{Name: "Overview"},
			{Name: "Key Concepts"},
			{Name: "Important Facts"},
			{Name: "Exam Relevance"},
		},
	}
}
