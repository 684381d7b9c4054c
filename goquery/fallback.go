package goquery

import (
	"strings"

	navigator "github.com/glendon144/ai-navigator"
	"golang.org/x/net/html"
)

// ScanHeadings is the minimal fallback scanner: a single tokenizer pass that
// extracts only the document title and headings. It never fails; unterminated
// or unknown tags are skipped and scanning stops at the end of input.
func ScanHeadings(htmlText string) *navigator.Outline {
	type heading struct {
		level int
		text  string
	}

	var (
		headings []heading
		title    string
		inLevel  int
		inTitle  bool
		buf      strings.Builder
	)

	z := html.NewTokenizer(strings.NewReader(htmlText))
	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			break
		}
		switch tt {
		case html.StartTagToken:
			name, _ := z.TagName()
			if lvl := headingLevel(string(name)); lvl > 0 {
				inLevel = lvl
				buf.Reset()
			} else if string(name) == "title" {
				inTitle = true
				buf.Reset()
			}
		case html.TextToken:
			if inLevel > 0 || inTitle {
				buf.Write(z.Text())
			}
		case html.EndTagToken:
			name, _ := z.TagName()
			if inLevel > 0 && headingLevel(string(name)) == inLevel {
				if txt := collapseSpace(buf.String()); txt != "" {
					headings = append(headings, heading{inLevel, txt})
				}
				inLevel = 0
			} else if inTitle && string(name) == "title" {
				title = collapseSpace(buf.String())
				inTitle = false
			}
		}
	}

	root := navigator.NewOutline(title)
	stack := []levelNode{{0, root}}
	for _, h := range headings {
		node := navigator.NewOutline(h.text)
		for len(stack) > 1 && stack[len(stack)-1].level >= h.level {
			stack = stack[:len(stack)-1]
		}
		stack[len(stack)-1].node.Add(node)
		stack = append(stack, levelNode{h.level, node})
	}
	return root
}

func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
