// Package doc provides a format-independent semantic document: styled text
// structured into sections, paragraphs and lists, renderable as markdown or
// as a manual page.
//
// Content carries meaning, not presentation. A --help flag is a [Literal],
// a FILE placeholder is a [Metavar]; each renderer chooses fonts or tags.
//
//	d := doc.New()
//	d.Section("Usage")
//	d.Paragraph(doc.Text("Program takes "), doc.Literal("--help"), doc.Text(" flag"))
//	d.BulletList(
//		doc.Item(doc.Text("program should not crash")),
//		doc.Item(doc.Text("pass "), doc.Literal("--version"), doc.Text(" to see the version")),
//	)
//	md := d.RenderMarkdown()
package doc

import "slices"

// Style gives a fragment of text its meaning.
type Style int

const (
	// StyleText is plain prose.
	StyleText Style = iota
	// StyleLiteral is something the user types literally, like -f or --foo.
	StyleLiteral
	// StyleMetavar is a placeholder the user replaces with their own input.
	StyleMetavar
	// StyleMono is monospaced text.
	StyleMono
	// StyleImportant is a highlighted part of the text.
	StyleImportant
)

// Fragment is a styled run of text.
type Fragment struct {
	Style Style
	Text  string
}

// Text returns a plain prose fragment.
func Text(s string) Fragment { return Fragment{Style: StyleText, Text: s} }

// Literal returns a fragment for text typed literally by the user.
func Literal(s string) Fragment { return Fragment{Style: StyleLiteral, Text: s} }

// Metavar returns a fragment for a placeholder name.
func Metavar(s string) Fragment { return Fragment{Style: StyleMetavar, Text: s} }

// Mono returns a monospaced fragment.
func Mono(s string) Fragment { return Fragment{Style: StyleMono, Text: s} }

// Important returns a highlighted fragment.
func Important(s string) Fragment { return Fragment{Style: StyleImportant, Text: s} }

// Item bundles fragments into one list item.
func Item(frags ...Fragment) []Fragment { return frags }

// Definition is one term/body pair of a definition list.
type Definition struct {
	Term []Fragment
	Body []Fragment
}

// Define pairs a term with its definition body.
func Define(term, body []Fragment) Definition {
	return Definition{Term: term, Body: body}
}

// BlockKind identifies the structural role of a block.
type BlockKind int

const (
	// BlockSection is a section header.
	BlockSection BlockKind = iota
	// BlockSubsection is a subsection header.
	BlockSubsection
	// BlockParagraph is a paragraph of styled text.
	BlockParagraph
	// BlockBulletList is an unnumbered list.
	BlockBulletList
	// BlockNumberedList is a numbered list.
	BlockNumberedList
	// BlockDefinitionList is a sequence of term/definition pairs.
	BlockDefinitionList
)

// Block is one structural element of a document. The meaningful fields
// depend on Kind: Title for headers, Frags for paragraphs, Items for
// bullet and numbered lists, Defs for definition lists.
type Block struct {
	Kind  BlockKind
	Title string
	Frags []Fragment
	Items [][]Fragment
	Defs  []Definition
}

// Document is an append-only sequence of blocks.
// The zero value is ready to use; [New] exists for symmetry with the
// other builders in this module.
type Document struct {
	blocks []Block
}

// New creates an empty semantic document.
func New() *Document { return &Document{} }

// Section appends a section header.
func (d *Document) Section(name string) *Document {
	d.blocks = append(d.blocks, Block{Kind: BlockSection, Title: name})
	return d
}

// Subsection appends a subsection header.
func (d *Document) Subsection(name string) *Document {
	d.blocks = append(d.blocks, Block{Kind: BlockSubsection, Title: name})
	return d
}

// Paragraph appends a paragraph of styled text. Paragraphs are logically
// separated from surrounding blocks by the renderer.
func (d *Document) Paragraph(frags ...Fragment) *Document {
	d.blocks = append(d.blocks, Block{Kind: BlockParagraph, Frags: slices.Clone(frags)})
	return d
}

// BulletList appends an unnumbered list with the given items.
func (d *Document) BulletList(items ...[]Fragment) *Document {
	d.blocks = append(d.blocks, Block{Kind: BlockBulletList, Items: cloneItems(items)})
	return d
}

// NumberedList appends a numbered list with the given items.
func (d *Document) NumberedList(items ...[]Fragment) *Document {
	d.blocks = append(d.blocks, Block{Kind: BlockNumberedList, Items: cloneItems(items)})
	return d
}

// DefinitionList appends a definition list with the given term/body pairs.
func (d *Document) DefinitionList(defs ...Definition) *Document {
	cloned := make([]Definition, len(defs))
	for i, def := range defs {
		cloned[i] = Definition{
			Term: slices.Clone(def.Term),
			Body: slices.Clone(def.Body),
		}
	}
	d.blocks = append(d.blocks, Block{Kind: BlockDefinitionList, Defs: cloned})
	return d
}

// Blocks returns a shallow copy of the document's block sequence.
func (d *Document) Blocks() []Block { return slices.Clone(d.blocks) }

// IsEmpty reports whether the document has no blocks.
func (d *Document) IsEmpty() bool { return len(d.blocks) == 0 }

func cloneItems(items [][]Fragment) [][]Fragment {
	out := make([][]Fragment, len(items))
	for i, item := range items {
		out[i] = slices.Clone(item)
	}
	return out
}
