package doc

import (
	"fmt"
	"strings"
)

// RenderMarkdown renders the document as markdown with embedded HTML for
// the constructs plain markdown lacks (definition lists, styled list
// items). Blocks are separated by blank lines.
//
// Inside paragraphs, dashes in literal and monospaced fragments are
// escaped as \- so that markdown processors aimed at man page output
// keep them as real minus signs.
func (d *Document) RenderMarkdown() string {
	var blocks []string
	for _, b := range d.blocks {
		blocks = append(blocks, renderMarkdownBlock(b))
	}
	return strings.Join(blocks, "\n\n")
}

func renderMarkdownBlock(b Block) string {
	switch b.Kind {
	case BlockSection:
		return "# " + b.Title
	case BlockSubsection:
		return "## " + b.Title
	case BlockParagraph:
		return markdownFragments(b.Frags, true)
	case BlockBulletList:
		return markdownList("<ul>", "</ul>", b.Items)
	case BlockNumberedList:
		return markdownList("<ol>", "</ol>", b.Items)
	case BlockDefinitionList:
		entries := make([]string, len(b.Defs))
		for i, def := range b.Defs {
			entries[i] = "<dt>" + markdownFragments(def.Term, false) + "</dt>\n" +
				"<dd>" + markdownFragments(def.Body, false) + "</dd>"
		}
		return "<dl>\n" + strings.Join(entries, "\n") + "</dl>"
	default:
		panic(fmt.Sprintf("doc: unknown block kind %d", b.Kind))
	}
}

func markdownList(openTag, closeTag string, items [][]Fragment) string {
	var sb strings.Builder
	sb.WriteString(openTag)
	sb.WriteString("\n")
	for _, item := range items {
		sb.WriteString("<li>")
		sb.WriteString(markdownFragments(item, false))
		sb.WriteString("</li>\n")
	}
	sb.WriteString(closeTag)
	return sb.String()
}

func markdownFragments(frags []Fragment, escapeDash bool) string {
	var sb strings.Builder
	for _, f := range frags {
		text := f.Text
		if escapeDash && (f.Style == StyleLiteral || f.Style == StyleMono) {
			text = strings.ReplaceAll(text, "-", `\-`)
		}
		switch f.Style {
		case StyleText:
			sb.WriteString(text)
		case StyleLiteral:
			sb.WriteString("<tt><b>" + text + "</b></tt>")
		case StyleMetavar:
			sb.WriteString("<tt><i>" + text + "</i></tt>")
		case StyleMono:
			sb.WriteString("<tt>" + text + "</tt>")
		case StyleImportant:
			sb.WriteString("<b>" + text + "</b>")
		default:
			panic(fmt.Sprintf("doc: unknown fragment style %d", f.Style))
		}
	}
	return sb.String()
}
