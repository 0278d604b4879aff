package parser

import (
	"encoding/json"
	"strings"
)

// decodeJSON applies the first two tiers of the JSON extraction strategy:
// a strict parse of the entire text, then a parse of the substring between
// the first '{' and the last '}'. The substring tier tolerates the prose
// that models sometimes wrap around their JSON. Returns false when neither
// tier produces valid JSON; callers then synthesize their task-specific
// fallback (tier three).
func decodeJSON(text string, v any) bool {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return false
	}

	if json.Unmarshal([]byte(trimmed), v) == nil {
		return true
	}

	start := strings.Index(trimmed, "{")
	end := strings.LastIndex(trimmed, "}")
	if start == -1 || end <= start {
		return false
	}

	return json.Unmarshal([]byte(trimmed[start:end+1]), v) == nil
}
