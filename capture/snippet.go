package capture

import "strings"

// SnippetLimit bounds stored snippets, in runes.
const SnippetLimit = 500

// Snippet collapses all runs of whitespace in text to single spaces and
// truncates the result to at most limit runes.
func Snippet(text string, limit int) string {
	collapsed := strings.Join(strings.Fields(text), " ")
	runes := []rune(collapsed)
	if len(runes) <= limit {
		return collapsed
	}
	return string(runes[:limit])
}
