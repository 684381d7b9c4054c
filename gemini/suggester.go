// Package gemini implements the outline suggester on Google Gemini. The
// suggester is optional garnish: callers treat its failures as log lines,
// never as conversion failures.
package gemini

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"

	navigator "github.com/glendon144/ai-navigator"
)

const model = "gemini-2.5-flash"

// Ensure Suggester implements navigator.Suggester at compile time.
var _ navigator.Suggester = (*Suggester)(nil)

// Suggester proposes OPML outlines for text payloads using Google Gemini.
type Suggester struct {
	client *genai.Client
}

// NewSuggester creates a new Suggester.
func NewSuggester(client *genai.Client) *Suggester {
	return &Suggester{client: client}
}

// SuggestOutline asks the model for an OPML outline of the given text and
// returns the raw OPML XML.
func (s *Suggester) SuggestOutline(ctx context.Context, text string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", navigator.Errorf(navigator.EINVALID, "text required")
	}

	prompt := BuildUserPrompt(text)
	config := BuildConfig()

	result, err := s.client.Models.GenerateContent(ctx, model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: prompt}},
		}},
		config,
	)
	if err != nil {
		return "", err
	}
	if result == nil {
		return "", navigator.Errorf(navigator.EINTERNAL, "gemini returned nil result")
	}

	return StripFences(result.Text()), nil
}

// BuildConfig returns the GenerateContentConfig for Gemini API calls.
func BuildConfig() *genai.GenerateContentConfig {
	temp := float32(0.4)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{
				Text: "You organize text into outlines. Respond with a single OPML 2.0 document whose body contains nested <outline> elements summarizing the structure of the provided text. Output only the OPML XML, with no commentary and no code fences.",
			}},
		},
		Temperature: &temp,
	}
}

// BuildUserPrompt builds the user prompt containing the text to outline.
func BuildUserPrompt(text string) string {
	var sb strings.Builder
	sb.WriteString("<text>\n")
	fmt.Fprintf(&sb, "%s\n", text)
	sb.WriteString("</text>\n\n")
	sb.WriteString("Produce an OPML outline of this text.")
	return sb.String()
}

// StripFences removes a surrounding Markdown code fence if the model added
// one despite instructions.
func StripFences(s string) string {
	trimmed := strings.TrimSpace(s)
	if !strings.HasPrefix(trimmed, "```") {
		return trimmed
	}
	trimmed = strings.TrimPrefix(trimmed, "```")
	if i := strings.Index(trimmed, "\n"); i >= 0 {
		trimmed = trimmed[i+1:] // drop the language tag line
	}
	trimmed = strings.TrimSuffix(strings.TrimSpace(trimmed), "```")
	return strings.TrimSpace(trimmed)
}
