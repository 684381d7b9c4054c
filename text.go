package navigator

import (
	"regexp"
	"strings"
)

// DefaultTitle is used when no title can be inferred and no fallback is given.
const DefaultTitle = "Document"

var (
	listMarkRe  = regexp.MustCompile(`^\s*(?:[-*\x{2022}\x{2023}\x{00B7}]|\d+[.)])\s+`)
	titleLineRe = regexp.MustCompile(`^[\t ]*([A-Z][^a-z\n]{3,}|#{1,6}\s+.+)$`)
	paraSplitRe = regexp.MustCompile(`\n\s*\n+`)
	inlineSepRe = regexp.MustCompile(`[;\x{2022}\x{25E6}]|\s-\s`)
)

// maxInlineItem bounds the length of a segment in a colon-introduced inline
// list; longer segments mean the block reads as prose, not a list.
const maxInlineItem = 240

// titleScanLines bounds how far into the text title inference looks.
const titleScanLines = 8

// TextOutline infers outline structure from unmarked text. It infers a title
// from the leading lines (ATX marker, setext underline, or an ALL-CAPS
// heading-like line), removes the matched lines, splits the remainder into
// paragraphs on blank lines, and bulletizes each paragraph that reads as a
// list. The result is always a tree; garbage input degrades to leaves.
func TextOutline(text string, fallbackTitle string) *Outline {
	lines := splitLines(text)

	title := ""
	for i := 0; i < len(lines) && i < titleScanLines; i++ {
		ln := strings.TrimSpace(lines[i])
		if strings.HasPrefix(ln, "# ") {
			title = strings.TrimSpace(strings.TrimLeft(ln, "# "))
			lines = lines[i+1:]
			break
		}
		if i+1 < len(lines) && isSetextUnderline(strings.TrimSpace(lines[i+1]), len(ln)) {
			title = ln
			lines = lines[i+2:]
			break
		}
		if titleLineRe.MatchString(lines[i]) {
			title = strings.TrimSpace(strings.TrimLeft(ln, "# "))
			lines = lines[i+1:]
			break
		}
	}
	if title == "" {
		title = fallbackTitle
	}
	if title == "" {
		title = DefaultTitle
	}
	root := NewOutline(title)

	body := strings.Join(lines, "\n")
	for _, para := range SplitParagraphs(body) {
		items, head, rest, ok := Bulletize(para)
		if !ok {
			root.Add(NewOutline(para))
			continue
		}
		if rest != "" {
			root.Add(NewOutline(rest))
		}
		if head == "" {
			head = "List"
		}
		section := NewOutline(head)
		for _, it := range items {
			section.Add(NewOutline(it))
		}
		root.Add(section)
	}
	return root
}

// SplitParagraphs splits text into paragraphs on blank-line boundaries,
// dropping empty blocks.
func SplitParagraphs(text string) []string {
	var out []string
	for _, p := range paraSplitRe.Split(strings.TrimSpace(text), -1) {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Bulletize classifies a paragraph as a list. It returns the items, the
// section head text (empty unless the paragraph is a colon-introduced inline
// list), the non-list remainder lines (empty unless some lines carried no
// marker), and whether bulletization fired.
//
// A paragraph bulletizes when at least max(2, n/2) of its n non-blank lines
// start with a recognized list marker; the markered lines become items and
// the rest becomes the remainder. Failing that, a colon followed by a run of
// at least two short semicolon/bullet-delimited segments becomes a list
// headed by the text before the colon.
func Bulletize(block string) (items []string, head string, rest string, ok bool) {
	var lines []string
	for _, ln := range splitLines(block) {
		if strings.TrimSpace(ln) != "" {
			lines = append(lines, strings.TrimRight(ln, " \t"))
		}
	}
	if len(lines) == 0 {
		return nil, "", "", false
	}

	markered := 0
	for _, ln := range lines {
		if listMarkRe.MatchString(ln) {
			markered++
		}
	}
	if markered >= max(2, len(lines)/2) {
		var leftover []string
		for _, ln := range lines {
			if listMarkRe.MatchString(ln) {
				items = append(items, strings.TrimSpace(listMarkRe.ReplaceAllString(ln, "")))
			} else {
				leftover = append(leftover, strings.TrimSpace(ln))
			}
		}
		return items, "", strings.Join(leftover, "\n"), true
	}

	if strings.Contains(block, ":") && strings.ContainsAny(block, ";,•") {
		before, tail, _ := strings.Cut(block, ":")
		var parts []string
		for _, it := range inlineSepRe.Split(tail, -1) {
			it = strings.Trim(it, " \t-•‣·")
			if it != "" {
				parts = append(parts, it)
			}
		}
		if len(parts) >= 2 && allShort(parts, maxInlineItem) {
			return parts, strings.TrimSpace(before), "", true
		}
	}

	return nil, "", "", false
}

func allShort(items []string, limit int) bool {
	for _, it := range items {
		if len([]rune(it)) > limit {
			return false
		}
	}
	return true
}

// isSetextUnderline reports whether line is a setext-style title underline:
// solely repeated '=' or '-' characters, at least half as long as the title
// line (minimum 3).
func isSetextUnderline(line string, titleLen int) bool {
	if len(line) < max(3, titleLen/2) {
		return false
	}
	return strings.Count(line, "=") == len(line) || strings.Count(line, "-") == len(line)
}

func splitLines(text string) []string {
	lines := strings.Split(text, "\n")
	for i, ln := range lines {
		lines[i] = strings.TrimRight(ln, "\r")
	}
	return lines
}
