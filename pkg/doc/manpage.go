package doc

import (
	"fmt"

	"github.com/pacak/semantic/pkg/man"
)

// RenderManpage appends the document's blocks to a manual page and
// returns the rendered ROFF output.
func (d *Document) RenderManpage(page *man.Page) string {
	d.AppendTo(page)
	return page.Render()
}

// AppendTo appends the document's blocks to a manual page. Definition
// list terms become tagged paragraphs, bullet and numbered items use the
// standard list macros.
func (d *Document) AppendTo(page *man.Page) {
	for _, b := range d.blocks {
		switch b.Kind {
		case BlockSection:
			page.Section(b.Title)
		case BlockSubsection:
			page.Subsection(b.Title)
		case BlockParagraph:
			page.Paragraph(manFragments(b.Frags)...)
		case BlockBulletList:
			for _, item := range b.Items {
				page.Bullet(manFragments(item)...)
			}
		case BlockNumberedList:
			for i, item := range b.Items {
				page.Numbered(i+1, manFragments(item)...)
			}
		case BlockDefinitionList:
			for _, def := range b.Defs {
				page.Label("", manFragments(def.Term)...)
				page.Paragraph(manFragments(def.Body)...)
			}
		default:
			panic(fmt.Sprintf("doc: unknown block kind %d", b.Kind))
		}
	}
}

func manFragments(frags []Fragment) []man.Fragment {
	out := make([]man.Fragment, len(frags))
	for i, f := range frags {
		switch f.Style {
		case StyleText:
			out[i] = man.Normal(f.Text)
		case StyleLiteral:
			out[i] = man.Literal(f.Text)
		case StyleMetavar:
			out[i] = man.Metavar(f.Text)
		case StyleMono:
			out[i] = man.Code(f.Text)
		case StyleImportant:
			out[i] = man.Important(f.Text)
		default:
			panic(fmt.Sprintf("doc: unknown fragment style %d", f.Style))
		}
	}
	return out
}
