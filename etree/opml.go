// Package etree reads OPML documents back into outline trees.
package etree

import (
	"io"
	"os"
	"strings"

	"github.com/beevik/etree"
	navigator "github.com/glendon144/ai-navigator"
)

// Head holds the parsed OPML head fields.
type Head struct {
	Title       string
	DateCreated string
	OwnerName   string
	Generator   string
}

// Parse reads an OPML document and returns its head and top-level outline
// forest. Nodes keep their attribute order as written; a missing text
// attribute falls back to the untitled placeholder.
func Parse(r io.Reader) (*Head, []*navigator.Outline, error) {
	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(r); err != nil {
		return nil, nil, navigator.Errorf(navigator.EINVALID, "failed to parse OPML: %v", err)
	}

	root := doc.Root()
	if root == nil || root.Tag != "opml" {
		return nil, nil, navigator.Errorf(navigator.EINVALID, "not an OPML document")
	}

	head := &Head{}
	if h := root.SelectElement("head"); h != nil {
		if el := h.SelectElement("title"); el != nil {
			head.Title = el.Text()
		}
		if el := h.SelectElement("dateCreated"); el != nil {
			head.DateCreated = el.Text()
		}
		if el := h.SelectElement("ownerName"); el != nil {
			head.OwnerName = el.Text()
		}
		if el := h.SelectElement("generator"); el != nil {
			head.Generator = el.Text()
		}
	}

	body := root.SelectElement("body")
	if body == nil {
		return head, nil, nil
	}

	var roots []*navigator.Outline
	for _, el := range body.SelectElements("outline") {
		roots = append(roots, fromElement(el))
	}
	return head, roots, nil
}

// ParseString parses OPML from a string.
func ParseString(s string) (*Head, []*navigator.Outline, error) {
	return Parse(strings.NewReader(s))
}

// Load parses an OPML file from disk.
// Returns ENOTFOUND if the file does not exist.
func Load(path string) (*Head, []*navigator.Outline, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil, navigator.Errorf(navigator.ENOTFOUND, "outline file %q not found", path)
		}
		return nil, nil, err
	}
	defer f.Close()
	return Parse(f)
}

func fromElement(el *etree.Element) *navigator.Outline {
	node := navigator.NewOutline(el.SelectAttrValue("text", ""))
	for _, a := range el.Attr {
		if a.Key == "text" {
			continue
		}
		node.SetAttr(a.Key, a.Value)
	}
	for _, child := range el.SelectElements("outline") {
		node.Add(fromElement(child))
	}
	return node
}
