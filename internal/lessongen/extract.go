package lessongen

import "strings"

// extractJSON pulls the JSON object out of a model response that may
// be wrapped in prose or markdown fences. It takes the substring from
// the first '{' to the last '}' inclusive.
func extractJSON(text string) (string, bool) {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start == -1 || end == -1 || end < start {
		return "", false
	}
	return text[start : end+1], true
}
