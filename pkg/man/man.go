// Package man builds UNIX manual pages on top of the roff document model.
//
// A [Page] wraps a roff document and exposes the man(7) macro vocabulary:
// title header, sections, paragraphs and tagged labels. Inline text is
// expressed with semantic [Fragment] styles (literal, metavar, ...) that map
// to fonts, so callers describe what a snippet is rather than how to render
// it.
//
//	page := man.New("CORRUPT", man.General)
//	page.Section("NAME")
//	page.Paragraph(man.Normal("corrupt - modify files by randomly changing bits"))
//	page.Section("OPTIONS")
//	page.Label("", man.Literal("-n"), man.Normal("="), man.Metavar("BITS"))
//	page.Paragraph(man.Normal("Set the number of bits to modify"))
//	out := page.Render()
package man

import (
	"strconv"
	"strings"

	"github.com/pacak/semantic/pkg/roff"
)

// Section is a manual section identifier: the second argument of .TH.
// Use one of the named constants, or any custom string starting with a
// digit 1 to 8 ("3x" style subsections).
type Section string

const (
	// General commands.
	General Section = "1"
	// SystemCall covers system calls.
	SystemCall Section = "2"
	// LibraryFunction covers library functions such as libc routines.
	LibraryFunction Section = "3"
	// SpecialFile covers special files (usually devices in /dev) and drivers.
	SpecialFile Section = "4"
	// FileFormat covers file formats and conventions.
	FileFormat Section = "5"
	// Game covers games and screensavers.
	Game Section = "6"
	// Misc is the miscellaneous section.
	Misc Section = "7"
	// Sysadmin covers system administration commands and daemons.
	Sysadmin Section = "8"
)

// Style describes what a snippet of text is. Unlike a raw font choice it
// focuses on meaning; the font is derived when the page is rendered.
type Style int

const (
	// StyleNormal is plain text with no decorations.
	StyleNormal Style = iota
	// StyleLiteral marks text the user types verbatim: flags, command names.
	StyleLiteral
	// StyleMetavar marks placeholders the user substitutes, like FILE or BITS.
	StyleMetavar
	// StyleImportant marks extra-highlighted text.
	StyleImportant
	// StyleCode marks inline code rendered in a constant-width font.
	StyleCode
)

// Fragment is a styled run of text inside a paragraph or label.
type Fragment struct {
	Style Style
	Text  string
}

// Normal returns a plain text fragment.
func Normal(s string) Fragment { return Fragment{Style: StyleNormal, Text: s} }

// Literal returns a fragment for text the user types verbatim (bold).
func Literal(s string) Fragment { return Fragment{Style: StyleLiteral, Text: s} }

// Metavar returns a fragment for a placeholder name (italic).
func Metavar(s string) Fragment { return Fragment{Style: StyleMetavar, Text: s} }

// Important returns a fragment for highlighted text (bold italic).
func Important(s string) Fragment { return Fragment{Style: StyleImportant, Text: s} }

// Code returns a fragment rendered in the constant-width font.
func Code(s string) Fragment { return Fragment{Style: StyleCode, Text: s} }

// span converts the fragment to a roff span. Paragraph text flows, so
// newlines are squashed to spaces before the span is built.
func (f Fragment) span() roff.Span {
	text := strings.ReplaceAll(f.Text, "\n", " ")
	switch f.Style {
	case StyleLiteral:
		return roff.Bold(text)
	case StyleMetavar:
		return roff.Italic(text)
	case StyleImportant:
		return roff.BoldItalic(text)
	case StyleCode:
		return roff.Mono(text)
	default:
		return roff.Plain(text)
	}
}

// Page is a manual page under construction. Create one with [New], append
// content in reading order, then call [Page.Render] once.
type Page struct {
	doc *roff.Document
}

// New starts a manual page with the given title and section.
//
// Up to three extra arguments populate the remaining .TH fields: the date
// of the last update, the source (project or suite the program belongs to),
// and the manual name. Further arguments are ignored, matching what man(7)
// accepts.
func New(title string, section Section, extra ...string) *Page {
	args := []string{title, string(section)}
	if len(extra) > 3 {
		extra = extra[:3]
	}
	args = append(args, extra...)

	p := &Page{doc: roff.New()}
	// "TH" is a fixed valid macro name, the error path is unreachable.
	_ = p.doc.Control("TH", args...)
	return p
}

// Comment adds a source comment to the page, invisible in rendered output.
func (p *Page) Comment(text string) *Page {
	p.doc.Comment(text)
	return p
}

// Section starts a new unnumbered section (.SH).
func (p *Page) Section(title string) *Page {
	p.doc.Heading(title)
	return p
}

// Subsection starts a new unnumbered subsection (.SS).
func (p *Page) Subsection(title string) *Page {
	p.doc.Subheading(title)
	return p
}

// Paragraph adds a paragraph of styled text followed by a paragraph break.
func (p *Page) Paragraph(frags ...Fragment) *Page {
	p.text(frags)
	p.doc.ParagraphBreak()
	return p
}

// Label starts a tagged paragraph (.TP): the fragments form the tag and the
// next [Page.Paragraph] becomes its indented body. A non-empty offset sets
// the body indentation width.
func (p *Page) Label(offset string, frags ...Fragment) *Page {
	if offset != "" {
		// "TP" is a fixed valid macro name, the error path is unreachable.
		_ = p.doc.Control("TP", offset)
	} else {
		p.doc.TaggedParagraph()
	}
	p.text(frags)
	return p
}

// Bullet adds a bullet list item (.IP \(bu) with the given body text.
func (p *Page) Bullet(frags ...Fragment) *Page {
	p.doc.IndentedParagraph(`\(bu`, "2")
	p.text(frags)
	return p
}

// Numbered adds a numbered list item (.IP "N.") with the given body text.
func (p *Page) Numbered(n int, frags ...Fragment) *Page {
	p.doc.IndentedParagraph(strconv.Itoa(n)+".", "4")
	p.text(frags)
	return p
}

// text appends one text element built from the fragments, skipping empties.
func (p *Page) text(frags []Fragment) {
	spans := make([]roff.Span, 0, len(frags))
	for _, f := range frags {
		if f.Text == "" {
			continue
		}
		spans = append(spans, f.span())
	}
	if len(spans) > 0 {
		p.doc.Text(spans...)
	}
}

// Raw exposes the underlying roff document for constructs the page API does
// not cover. The document is still rendered by [Page.Render].
func (p *Page) Raw() *roff.Document {
	return p.doc
}

// Render serializes the page to ROFF source with apostrophe handling
// enabled, ready to be fed to troff -mman or installed as a man page.
// Rendering is pure: the page can keep growing and be rendered again.
func (p *Page) Render() string {
	return p.doc.Render(roff.WithApostropheHandling())
}
