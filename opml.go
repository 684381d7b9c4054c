package navigator

import (
	"strings"
	"unicode"
)

// XML serializes the document as OPML 2.0. The output is well-formed XML for
// any input text: every text and attribute value is stripped of characters
// illegal in XML 1.0 and then has the five metacharacters escaped.
func (d *Document) XML() string {
	var b strings.Builder
	b.WriteString("<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n")
	b.WriteString("<opml version=\"2.0\">\n")
	b.WriteString("  <head>\n")
	b.WriteString("    <title>" + Sanitize(d.Title) + "</title>\n")
	b.WriteString("    <dateCreated>" + Sanitize(d.DateCreated) + "</dateCreated>\n")
	b.WriteString("    <generator>" + Sanitize(Generator) + "</generator>\n")
	if d.OwnerName != "" {
		b.WriteString("    <ownerName>" + Sanitize(d.OwnerName) + "</ownerName>\n")
	}
	for _, m := range d.meta {
		name := elementName(m.Key)
		if name == "" {
			continue
		}
		b.WriteString("    <" + name + ">" + Sanitize(m.Value) + "</" + name + ">\n")
	}
	b.WriteString("  </head>\n")
	b.WriteString("  <body>\n")
	for _, o := range d.roots {
		o.writeXML(&b, 1)
	}
	b.WriteString("  </body>\n")
	b.WriteString("</opml>\n")
	return b.String()
}

// writeXML emits the node indented two spaces per level. The text attribute
// is always first, then declared attributes in insertion order. Childless
// nodes self-close.
func (o *Outline) writeXML(b *strings.Builder, level int) {
	pad := strings.Repeat("  ", level)
	b.WriteString(pad + "<outline text=\"" + Sanitize(o.Text) + "\"")
	for _, a := range o.attrs {
		if a.Key == "text" {
			continue
		}
		name := elementName(a.Key)
		if name == "" {
			continue
		}
		b.WriteString(" " + name + "=\"" + Sanitize(a.Value) + "\"")
	}
	if len(o.children) == 0 {
		b.WriteString("/>\n")
		return
	}
	b.WriteString(">\n")
	for _, c := range o.children {
		c.writeXML(b, level+1)
	}
	b.WriteString(pad + "</outline>\n")
}

// Sanitize strips characters illegal in XML 1.0 and escapes the five XML
// metacharacters. Stripping is silent; no input ever raises an error here.
func Sanitize(s string) string {
	return escape(stripIllegal(s))
}

// stripIllegal removes every character outside the legal XML 1.0 ranges:
// tab, LF, CR, U+0020..U+D7FF, U+E000..U+FFFD, U+10000..U+10FFFF. Invalid
// UTF-8 bytes decode to U+FFFD, which is legal, so undecodable input
// degrades to replacement characters rather than failing.
func stripIllegal(s string) string {
	clean := true
	for _, r := range s {
		if !legalXML(r) {
			clean = false
			break
		}
	}
	if clean {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if legalXML(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func legalXML(r rune) bool {
	switch {
	case r == '\t' || r == '\n' || r == '\r':
		return true
	case r >= 0x20 && r <= 0xD7FF:
		return true
	case r >= 0xE000 && r <= 0xFFFD:
		return true
	case r >= 0x10000 && r <= 0x10FFFF:
		return true
	}
	return false
}

var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	"\"", "&quot;",
	"'", "&apos;",
)

func escape(s string) string {
	return xmlEscaper.Replace(s)
}

// elementName reduces a metadata key to a safe XML name: letters, digits,
// '-', '_' and '.', starting with a letter or underscore. Keys with nothing
// salvageable are dropped.
func elementName(key string) string {
	var b strings.Builder
	for _, r := range key {
		switch {
		case unicode.IsLetter(r) || r == '_':
			b.WriteRune(r)
		case b.Len() > 0 && (unicode.IsDigit(r) || r == '-' || r == '.'):
			b.WriteRune(r)
		}
	}
	return b.String()
}
