package roff

import (
	"fmt"
	"strings"
)

// restoreFont returns to the font that was active before the last switch.
const restoreFont = `\fP`

// apostrophePreamble defines the Aq string register so that apostrophes can
// be rendered as typographically correct quotes under groff while staying
// plain under classic troff.
const apostrophePreamble = ".ie \\n(.g .ds Aq \\(aq\n.el .ds Aq '\n"

// fontEscape returns the font-switch escape for a span kind, or "" for
// spans rendered in the current font.
func fontEscape(kind SpanKind) string {
	switch kind {
	case SpanBold:
		return `\fB`
	case SpanItalic:
		return `\fI`
	case SpanBoldItalic:
		return `\f(BI`
	case SpanMono:
		return `\f(CR`
	case SpanMonoBold:
		return `\f(CB`
	case SpanMonoItalic:
		return `\f(CI`
	default:
		return ""
	}
}

// RenderOption configures [Document.Render].
type RenderOption func(*renderer)

// WithApostropheHandling prepends the groff apostrophe preamble and renders
// every apostrophe in text through the Aq string register. Man pages should
// enable this so quoted shell snippets survive groff's smart-quote
// substitution.
func WithApostropheHandling() RenderOption {
	return func(r *renderer) { r.handleApostrophes = true }
}

// renderer accumulates output and tracks whether the next byte written
// starts a new output line, which decides when column-one escaping applies.
type renderer struct {
	buf               strings.Builder
	atLineStart       bool
	handleApostrophes bool
}

// Render serializes the document to ROFF source text.
//
// Render is a total function: it cannot fail for any document built through
// the public API, performs no I/O, and is idempotent - rendering the same
// document twice produces byte-identical output. An empty document renders
// to the empty string.
//
// Every control line and every text element is terminated with exactly one
// newline. Text content is escaped so that it can never be parsed as a
// control line: backslashes become \\, dashes become \-, tabs become \t,
// and a dot, apostrophe or space in column one is prefixed with the
// zero-width \& escape. The column-one escape is applied whenever the
// character lands at a line start, without checking whether the resulting
// line would actually resolve to a known macro.
func (d *Document) Render(opts ...RenderOption) string {
	r := renderer{atLineStart: true}
	for _, opt := range opts {
		opt(&r)
	}
	if r.handleApostrophes {
		r.buf.WriteString(apostrophePreamble)
	}

	for _, el := range d.elements {
		switch el.Kind {
		case ElementControl:
			r.controlLine(el.Macro, el.Args)
		case ElementText:
			r.textLine(el.Spans)
		case ElementComment:
			r.commentLine(el.Text)
		default:
			panic(fmt.Sprintf("roff: unhandled element kind %d", el.Kind))
		}
	}
	return r.buf.String()
}

// controlLine emits ".MACRO arg ...\n" with each argument escaped and,
// where needed, quoted.
func (r *renderer) controlLine(macro string, args []string) {
	r.buf.WriteByte('.')
	r.buf.WriteString(macro)
	for _, arg := range args {
		r.buf.WriteByte(' ')
		r.buf.WriteString(escapeArg(arg))
	}
	r.newline()
}

// textLine emits the spans of one text element and terminates the line.
func (r *renderer) textLine(spans []Span) {
	for _, span := range spans {
		if span.Kind == SpanBreak {
			r.lineBreak()
			continue
		}
		esc := fontEscape(span.Kind)
		if esc != "" {
			r.raw(esc)
		}
		r.text(span.Text)
		if esc != "" {
			r.raw(restoreFont)
		}
	}
	if !r.atLineStart {
		r.newline()
	}
}

// commentLine emits ".\" text\n" with newlines squashed to spaces.
func (r *renderer) commentLine(text string) {
	r.buf.WriteString(`.\" `)
	r.buf.WriteString(strings.NewReplacer("\n", " ", "\r", " ").Replace(text))
	r.newline()
}

// lineBreak terminates the current output line (if any) and emits .br.
func (r *renderer) lineBreak() {
	if !r.atLineStart {
		r.newline()
	}
	r.buf.WriteString(".br")
	r.newline()
}

// raw writes a prebuilt escape sequence. Escapes start with a backslash, so
// they are safe in column one and simply mark the line as started.
func (r *renderer) raw(s string) {
	r.buf.WriteString(s)
	r.atLineStart = false
}

// newline ends the current output line.
func (r *renderer) newline() {
	r.buf.WriteByte('\n')
	r.atLineStart = true
}

// text writes caller-supplied text with full escaping. Embedded newlines
// are kept, and the character following each one is treated as column one.
func (r *renderer) text(s string) {
	for _, ch := range s {
		if ch == '\n' {
			r.newline()
			continue
		}
		if r.atLineStart && columnOneUnsafe(ch) {
			// An apostrophe rendered through \*(Aq already starts
			// with a backslash and cannot open a control line.
			if !(ch == '\'' && r.handleApostrophes) {
				r.buf.WriteString(`\&`)
			}
		}
		r.atLineStart = false
		switch ch {
		case '\\':
			r.buf.WriteString(`\\`)
		case '-':
			r.buf.WriteString(`\-`)
		case '\t':
			r.buf.WriteString(`\t`)
		case '\'':
			if r.handleApostrophes {
				r.buf.WriteString(`\*(Aq`)
			} else {
				r.buf.WriteByte('\'')
			}
		default:
			r.buf.WriteRune(ch)
		}
	}
}

// columnOneUnsafe reports whether ch would be misparsed at the start of a
// ROFF source line: dots and apostrophes open control lines, and a leading
// space changes line adjustment.
func columnOneUnsafe(ch rune) bool {
	return ch == '.' || ch == '\'' || ch == ' '
}

// escapeArg escapes one macro argument. Newlines and tabs are normalized to
// spaces (arguments are single-line by construction). An argument containing
// a space or a double quote, or the empty argument, is wrapped in double
// quotes with literal quotes doubled per ROFF's quoted-argument convention.
// Backslash escapes pass through untouched so callers can use glyph
// sequences such as \(bu in markers.
func escapeArg(arg string) string {
	arg = strings.NewReplacer("\n", " ", "\r", " ", "\t", " ").Replace(arg)

	if arg != "" && !strings.ContainsAny(arg, ` "`) {
		return arg
	}
	return `"` + strings.ReplaceAll(arg, `"`, `""`) + `"`
}
