package navigator

import "regexp"

// Kind selects how a conversion payload is read.
type Kind string

// Payload kinds. KindAuto applies the markup detection rule.
const (
	KindAuto   Kind = "auto"
	KindMarkup Kind = "html"
	KindText   Kind = "text"
)

// markupSignsRe matches the fixed set of structural tag signatures that mark
// a payload as markup rather than plain text.
var markupSignsRe = regexp.MustCompile(`(?i)<\s*(!doctype|html|head|body|h[1-6]|p|div|ul|ol|li)\b`)

// IsProbablyHTML reports whether text carries structural markup.
func IsProbablyHTML(text string) bool {
	return markupSignsRe.MatchString(text)
}

// Options carries caller-supplied conversion settings. There is no
// module-level configuration state; every call receives its own value.
type Options struct {
	// Title overrides the inferred document title.
	Title string

	// OwnerName is emitted in the OPML head when set.
	OwnerName string

	// SkipStrayParagraphs disables the synthetic "Unsorted" bucket for
	// markup paragraphs outside any heading.
	SkipStrayParagraphs bool

	// Assist enables the outline suggestion hook when a Suggester is
	// configured. Assist failures never fail a conversion.
	Assist bool
}

// Outliner builds an outline tree from markup. The result is always a tree,
// possibly with no children; malformed markup degrades to best-effort
// partial extraction, never an error.
type Outliner interface {
	OutlineHTML(html string) *Outline
}

// AssembleDocument wraps an extracted outline into a complete document. The
// final title is the outline's own title, then the option title, then the
// caller hint, then DefaultTitle. The outline's children become the root
// forest; an empty extraction result is replaced by a single placeholder
// node carrying the title, so every assembled document has at least one
// root.
func AssembleDocument(title string, outline *Outline, opts Options) *Document {
	final := outline.Text
	if final == "" || final == UntitledLabel {
		final = opts.Title
	}
	if final == "" {
		final = title
	}
	if final == "" {
		final = DefaultTitle
	}

	doc := NewDocument(final)
	doc.OwnerName = opts.OwnerName
	for _, child := range outline.Children() {
		doc.Add(child)
	}
	if len(outline.Children()) == 0 {
		if outline.Text != UntitledLabel && outline.Text != "" {
			doc.Add(NewOutline(outline.Text))
		} else {
			doc.Add(NewOutline(final))
		}
	}
	return doc
}

// DocumentFromHTML parses markup and assembles it into a document.
func DocumentFromHTML(title string, html string, outliner Outliner, opts Options) *Document {
	return AssembleDocument(title, outliner.OutlineHTML(html), opts)
}

// DocumentFromText runs the plain-text heuristics and assembles the result
// into a document. When no title can be inferred the option title wins over
// the caller hint, mirroring the assembler's precedence.
func DocumentFromText(title string, text string, opts Options) *Document {
	fallback := opts.Title
	if fallback == "" {
		fallback = title
	}
	return AssembleDocument(title, TextOutline(text, fallback), opts)
}

// Convert is the single-document conversion entry point: it detects (or is
// told) the payload kind, builds a document, and returns it unserialized so
// callers can attach further metadata before rendering XML. Invalid UTF-8 in
// the payload degrades to replacement characters during serialization.
func Convert(title string, payload []byte, kind Kind, outliner Outliner, opts Options) *Document {
	text := string(payload)
	markup := kind == KindMarkup || (kind != KindText && IsProbablyHTML(text))
	if markup {
		return DocumentFromHTML(title, text, outliner, opts)
	}
	return DocumentFromText(title, text, opts)
}

// ConvertToOPML converts a payload and returns serialized OPML text.
func ConvertToOPML(title string, payload []byte, kind Kind, outliner Outliner, opts Options) string {
	return Convert(title, payload, kind, outliner, opts).XML()
}
