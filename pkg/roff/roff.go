// Package roff provides a document model and renderer for the ROFF
// typesetting language used by troff/groff and UNIX man pages.
//
// A [Document] is an ordered, append-only sequence of elements: control
// lines (macro invocations such as section headers) and text lines built
// from styled spans. The model stores caller text verbatim; all escaping
// happens at render time, so rendering the same document twice yields
// byte-identical output.
//
//	d := roff.New()
//	d.Control("TH", "FOO", "1")
//	d.Heading("NAME")
//	d.Text(roff.Plain("foo - do a foo thing"))
//	out := d.Render()
//
// Caller-supplied text can never alter document structure: leading control
// characters, backslashes, quotes and tabs are all neutralized by the
// renderer. The only fallible operation is [Document.Control] with a
// malformed macro name.
package roff

import (
	"errors"
	"slices"
)

// ErrInvalidMacroName is returned by [Document.Control] when the macro name
// is empty or contains characters outside the ROFF macro-name grammar
// (ASCII letters and digits).
var ErrInvalidMacroName = errors.New("macro name must be one or more letters or digits")

// SpanKind identifies the style of a text span.
type SpanKind int

const (
	// SpanPlain is text in the current font, no decorations.
	SpanPlain SpanKind = iota
	// SpanBold switches to the bold font for the span.
	SpanBold
	// SpanItalic switches to the italic font for the span.
	SpanItalic
	// SpanBoldItalic switches to a font that is both bold and italic.
	SpanBoldItalic
	// SpanMono switches to the regular constant-width font.
	SpanMono
	// SpanMonoBold switches to the bold constant-width font.
	SpanMonoBold
	// SpanMonoItalic switches to the italic constant-width font.
	SpanMonoItalic
	// SpanBreak emits an explicit line break (.br) in the output.
	SpanBreak
)

// Span is a contiguous run of text sharing one inline style.
// Spans hold raw, unescaped caller content; escaping is deferred to render
// time. Construct spans with [Plain], [Bold], [Italic], [BoldItalic],
// [Mono], [MonoBold], [MonoItalic] and [LineBreak].
type Span struct {
	Kind SpanKind
	Text string
}

// Plain returns a span rendered in the current font.
func Plain(s string) Span { return Span{Kind: SpanPlain, Text: s} }

// Bold returns a span rendered in the bold font.
func Bold(s string) Span { return Span{Kind: SpanBold, Text: s} }

// Italic returns a span rendered in the italic font.
func Italic(s string) Span { return Span{Kind: SpanItalic, Text: s} }

// BoldItalic returns a span rendered in the bold italic font.
func BoldItalic(s string) Span { return Span{Kind: SpanBoldItalic, Text: s} }

// Mono returns a span rendered in the constant-width font.
func Mono(s string) Span { return Span{Kind: SpanMono, Text: s} }

// MonoBold returns a span rendered in the bold constant-width font.
func MonoBold(s string) Span { return Span{Kind: SpanMonoBold, Text: s} }

// MonoItalic returns a span rendered in the italic constant-width font.
func MonoItalic(s string) Span { return Span{Kind: SpanMonoItalic, Text: s} }

// LineBreak returns a span that forces an explicit output line break.
func LineBreak() Span { return Span{Kind: SpanBreak} }

// ElementKind distinguishes the top-level element variants of a document.
type ElementKind int

const (
	// ElementControl is a macro invocation line (".SH NAME").
	ElementControl ElementKind = iota
	// ElementText is a line of prose composed of styled spans.
	ElementText
	// ElementComment is a source comment, invisible in formatted output.
	ElementComment
)

// Element is one node of a document. Exactly one field group is meaningful
// depending on Kind: Macro and Args for [ElementControl], Spans for
// [ElementText], Text for [ElementComment].
type Element struct {
	Kind  ElementKind
	Macro string
	Args  []string
	Spans []Span
	Text  string
}

// Document is an ordered sequence of elements, built by appending and
// rendered with [Document.Render]. A Document owns its elements exclusively:
// appended argument and span slices are copied, and already-appended
// elements cannot be edited or removed.
//
// The zero value is usable but callers should prefer [New]. A Document is
// not safe for concurrent appends; rendering is a pure read and may happen
// concurrently from multiple goroutines as long as nothing is appending.
type Document struct {
	elements []Element
}

// New creates an empty document.
func New() *Document { return &Document{} }

// Control appends a macro invocation with the given arguments.
//
// The name must not include the leading dot and must match the ROFF
// macro-name grammar: one or more ASCII letters or digits. A malformed name
// is rejected with [ErrInvalidMacroName] at the call that introduces it,
// never silently coerced. Arguments are stored raw and escaped at render
// time.
func (d *Document) Control(name string, args ...string) error {
	if !validMacroName(name) {
		return ErrInvalidMacroName
	}
	d.appendControl(name, args...)
	return nil
}

// appendControl appends a control line whose name is already known to be
// valid. Used by the fixed-macro convenience methods.
func (d *Document) appendControl(name string, args ...string) {
	d.elements = append(d.elements, Element{
		Kind:  ElementControl,
		Macro: name,
		Args:  slices.Clone(args),
	})
}

// Text appends a prose line built from the given spans. The rendered line
// is terminated with a single newline. Span content needs no preparation:
// the renderer escapes it so that it can never introduce control lines.
func (d *Document) Text(spans ...Span) *Document {
	d.elements = append(d.elements, Element{
		Kind:  ElementText,
		Spans: slices.Clone(spans),
	})
	return d
}

// Comment appends a ROFF source comment (".\" text"). Comments do not show
// up in formatted output. Newlines in text are replaced with spaces so a
// comment is always a single source line.
func (d *Document) Comment(text string) *Document {
	d.elements = append(d.elements, Element{Kind: ElementComment, Text: text})
	return d
}

// Heading appends a section heading (.SH).
func (d *Document) Heading(title string) *Document {
	d.appendControl("SH", title)
	return d
}

// Subheading appends a subsection heading (.SS).
func (d *Document) Subheading(title string) *Document {
	d.appendControl("SS", title)
	return d
}

// ParagraphBreak appends a paragraph separator (.PP).
func (d *Document) ParagraphBreak() *Document {
	d.appendControl("PP")
	return d
}

// TaggedParagraph appends a tagged-paragraph directive (.TP): the next text
// line becomes the tag, the following lines the indented body.
func (d *Document) TaggedParagraph() *Document {
	d.appendControl("TP")
	return d
}

// IndentedParagraph appends an indented-paragraph directive (.IP) with the
// given marker and indentation width. Empty arguments are omitted from the
// right.
func (d *Document) IndentedParagraph(marker, width string) *Document {
	switch {
	case width != "":
		d.appendControl("IP", marker, width)
	case marker != "":
		d.appendControl("IP", marker)
	default:
		d.appendControl("IP")
	}
	return d
}

// Indent appends a relative-indent start (.RS).
func (d *Document) Indent() *Document {
	d.appendControl("RS")
	return d
}

// Unindent appends a relative-indent end (.RE).
func (d *Document) Unindent() *Document {
	d.appendControl("RE")
	return d
}

// Break appends an explicit output line break (.br).
func (d *Document) Break() *Document {
	d.appendControl("br")
	return d
}

// Append copies every element of other onto the end of d.
// The two documents remain independent afterwards.
func (d *Document) Append(other *Document) *Document {
	for _, el := range other.elements {
		el.Args = slices.Clone(el.Args)
		el.Spans = slices.Clone(el.Spans)
		d.elements = append(d.elements, el)
	}
	return d
}

// Elements returns a copy of the document's element sequence.
// Mutating the returned slice does not affect the document.
func (d *Document) Elements() []Element {
	out := make([]Element, len(d.elements))
	for i, el := range d.elements {
		el.Args = slices.Clone(el.Args)
		el.Spans = slices.Clone(el.Spans)
		out[i] = el
	}
	return out
}

// Len returns the number of elements in the document.
func (d *Document) Len() int { return len(d.elements) }

// IsEmpty reports whether the document has no elements.
func (d *Document) IsEmpty() bool { return len(d.elements) == 0 }

// validMacroName reports whether name is one or more ASCII letters or digits.
func validMacroName(name string) bool {
	if name == "" {
		return false
	}
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
		default:
			return false
		}
	}
	return true
}
