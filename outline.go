package navigator

import "time"

// UntitledLabel is the placeholder label for nodes constructed without text.
const UntitledLabel = "(untitled)"

// Generator identifies this engine in OPML head metadata.
const Generator = "AI Navigator Outline Engine"

// TimestampFormat is the fixed textual form for dateCreated and captured_at
// values (ISO 8601, UTC).
const TimestampFormat = "2006-01-02T15:04:05Z"

// Attr is a single key/value pair on an outline node. Attribute order is
// insertion order and is preserved on serialization.
type Attr struct {
	Key   string
	Value string
}

// Outline is a node in an outline tree: a display label, ordered attributes,
// and ordered children. A node exclusively owns its children; children are
// only ever newly constructed nodes, so the structure is a strict tree and no
// append can introduce a cycle. Trees are write-once: they are appended to
// during extraction and read-only afterwards.
type Outline struct {
	// Text is the display label. Never empty after construction.
	Text string

	attrs    []Attr
	children []*Outline
}

// NewOutline creates a node with the given label. An empty label falls back
// to UntitledLabel so no node ever serializes without display text.
func NewOutline(text string) *Outline {
	if text == "" {
		text = UntitledLabel
	}
	return &Outline{Text: text}
}

// Add appends a child node, preserving insertion order. O(1).
func (o *Outline) Add(child *Outline) {
	o.children = append(o.children, child)
}

// Children returns the ordered child sequence. Callers must not mutate it.
func (o *Outline) Children() []*Outline {
	return o.children
}

// SetAttr sets an attribute, replacing any existing value for the same key so
// keys are never duplicated. The reserved "text" key updates the label
// instead; the label is always emitted first on serialization.
func (o *Outline) SetAttr(key, value string) {
	if key == "text" {
		if value == "" {
			value = UntitledLabel
		}
		o.Text = value
		return
	}
	for i := range o.attrs {
		if o.attrs[i].Key == key {
			o.attrs[i].Value = value
			return
		}
	}
	o.attrs = append(o.attrs, Attr{Key: key, Value: value})
}

// Attr returns the value for key and whether it is set. The reserved "text"
// key reports the label.
func (o *Outline) Attr(key string) (string, bool) {
	if key == "text" {
		return o.Text, true
	}
	for _, a := range o.attrs {
		if a.Key == key {
			return a.Value, true
		}
	}
	return "", false
}

// Attrs returns the declared attributes in insertion order, excluding the
// reserved "text" key. Callers must not mutate the slice.
func (o *Outline) Attrs() []Attr {
	return o.attrs
}

// Document is a complete OPML document: head metadata plus a root forest.
// Documents produced by the assembler always have at least one root node.
type Document struct {
	Title       string
	DateCreated string
	OwnerName   string

	meta  []Attr
	roots []*Outline
}

// NewDocument creates a document with the given title and the current UTC
// time as dateCreated.
func NewDocument(title string) *Document {
	return &Document{
		Title:       title,
		DateCreated: time.Now().UTC().Format(TimestampFormat),
	}
}

// Add appends a top-level outline node, preserving order. OPML permits more
// than one top-level outline.
func (d *Document) Add(node *Outline) {
	d.roots = append(d.roots, node)
}

// Roots returns the ordered top-level forest. Callers must not mutate it.
func (d *Document) Roots() []*Outline {
	return d.roots
}

// SetMeta sets an extra head-level field, replacing any existing value for
// the same key. Field order is insertion order.
func (d *Document) SetMeta(key, value string) {
	for i := range d.meta {
		if d.meta[i].Key == key {
			d.meta[i].Value = value
			return
		}
	}
	d.meta = append(d.meta, Attr{Key: key, Value: value})
}

// Meta returns the extra head fields in insertion order.
func (d *Document) Meta() []Attr {
	return d.meta
}
