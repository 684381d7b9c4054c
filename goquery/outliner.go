// Package goquery extracts outline structure from marked-up documents.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	navigator "github.com/glendon144/ai-navigator"
	"golang.org/x/net/html"
)

// Ensure Outliner implements navigator.Outliner at compile time.
var _ navigator.Outliner = (*Outliner)(nil)

// Outliner reads HTML (or an HTML-like fragment) and builds an outline tree
// by nesting headings on their level. Malformed markup is read best-effort;
// the result is always a tree, never an error.
type Outliner struct {
	// SkipStrayParagraphs disables the synthetic "Unsorted" top-level
	// bucket for paragraph text outside any heading.
	SkipStrayParagraphs bool
}

// NewOutliner creates a new Outliner.
func NewOutliner() *Outliner {
	return &Outliner{}
}

// levelNode pairs a heading level with its outline node on the nesting stack.
type levelNode struct {
	level int
	node  *navigator.Outline
}

// OutlineHTML builds an outline tree from markup. Fragments without an
// enclosing document are wrapped so the parser has a defined root context.
// If the primary parser fails, a minimal fallback scanner still extracts
// headings.
func (o *Outliner) OutlineHTML(htmlText string) *navigator.Outline {
	wrapped := EnsureWrapped(htmlText)

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(wrapped))
	if err != nil {
		return ScanHeadings(wrapped)
	}

	title := strings.TrimSpace(doc.Find("head > title").First().Text())
	root := navigator.NewOutline(title)

	// Seed the stack with a pseudo-level below h1 so the first heading
	// always lands under the root.
	stack := []levelNode{{0, root}}
	var stray []string

	var body *html.Node
	if sel := doc.Find("body").First(); len(sel.Nodes) > 0 {
		body = sel.Nodes[0]
	}
	if body != nil {
		o.walk(body, &stack, &stray)
	}

	if !o.SkipStrayParagraphs && len(stray) > 0 {
		unsorted := navigator.NewOutline("Unsorted")
		for _, txt := range stray {
			unsorted.Add(navigator.NewOutline(txt))
		}
		root.Add(unsorted)
	}

	return root
}

// walk scans element nodes in document order. Headings nest on the stack,
// lists attach to the nearest heading, paragraph text outside any heading is
// collected for the "Unsorted" bucket.
func (o *Outliner) walk(n *html.Node, stack *[]levelNode, stray *[]string) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode {
			continue
		}
		switch {
		case headingLevel(c.Data) > 0:
			level := headingLevel(c.Data)
			node := navigator.NewOutline(elementText(c))
			// Equal levels become siblings, not children.
			for len(*stack) > 1 && (*stack)[len(*stack)-1].level >= level {
				*stack = (*stack)[:len(*stack)-1]
			}
			(*stack)[len(*stack)-1].node.Add(node)
			*stack = append(*stack, levelNode{level, node})
		case c.Data == "ul" || c.Data == "ol":
			attachList(c, (*stack)[len(*stack)-1].node)
			// Keep walking so nested lists attach too.
			o.walk(c, stack, stray)
		case c.Data == "p":
			if len(*stack) == 1 {
				if txt := elementText(c); txt != "" {
					*stray = append(*stray, txt)
				}
			}
		default:
			o.walk(c, stack, stray)
		}
	}
}

// attachList appends a synthetic "List" node holding the direct list items.
// Lists with no extractable items are dropped.
func attachList(listEl *html.Node, parent *navigator.Outline) {
	list := navigator.NewOutline("List")
	for li := listEl.FirstChild; li != nil; li = li.NextSibling {
		if li.Type != html.ElementNode || li.Data != "li" {
			continue
		}
		if txt := elementText(li); txt != "" {
			list.Add(navigator.NewOutline(txt))
		}
	}
	if len(list.Children()) > 0 {
		parent.Add(list)
	}
}

// EnsureWrapped wraps fragment markup (clean reader-mode output is often
// just <p>…</p> runs) in a minimal document so the parser has a root
// context.
func EnsureWrapped(htmlText string) string {
	if strings.Contains(strings.ToLower(htmlText), "<html") {
		return htmlText
	}
	return "<html><body>" + htmlText + "</body></html>"
}

func headingLevel(name string) int {
	if len(name) == 2 && (name[0] == 'h' || name[0] == 'H') && name[1] >= '1' && name[1] <= '6' {
		return int(name[1] - '0')
	}
	return 0
}

// elementText collects the text content under n with whitespace collapsed,
// the way a reader would see it.
func elementText(n *html.Node) string {
	var parts []string
	var gather func(*html.Node)
	gather = func(n *html.Node) {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.TextNode {
				if t := strings.TrimSpace(c.Data); t != "" {
					parts = append(parts, t)
				}
				continue
			}
			gather(c)
		}
	}
	gather(n)
	return strings.Join(strings.Fields(strings.Join(parts, " ")), " ")
}
