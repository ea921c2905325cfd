package manifest

import (
	"github.com/pacak/semantic/pkg/doc"
	"github.com/pacak/semantic/pkg/man"
)

// Doc builds the semantic document for the page: a synthesized NAME and
// SYNOPSIS followed by the manifest sections in order. Option entries
// render as a definition list after the section's paragraphs.
func (p *Page) Doc() (*doc.Document, error) {
	d := doc.New()

	d.Section("NAME")
	d.Paragraph(doc.Text(p.Page.Name + " - " + p.Page.Summary))

	d.Section("SYNOPSIS")
	d.Paragraph(p.synopsis()...)

	for _, s := range p.Sections {
		d.Section(s.Title)
		for _, para := range s.Paragraphs {
			frags, err := parseMarkup(para)
			if err != nil {
				return nil, err
			}
			d.Paragraph(frags...)
		}
		if len(s.Options) > 0 {
			defs := make([]doc.Definition, len(s.Options))
			for i, o := range s.Options {
				body, err := parseMarkup(o.Description)
				if err != nil {
					return nil, err
				}
				defs[i] = doc.Define(optionTerm(o), body)
			}
			d.DefinitionList(defs...)
		}
	}
	return d, nil
}

// Manpage builds the full manual page: the .TH header from the page
// metadata with the document appended.
func (p *Page) Manpage() (*man.Page, error) {
	d, err := p.Doc()
	if err != nil {
		return nil, err
	}
	page := man.New(p.Page.Title, man.Section(p.Page.Section), p.thExtra()...)
	d.AppendTo(page)
	return page, nil
}

// RenderMan renders the page as ROFF man page source.
func (p *Page) RenderMan() (string, error) {
	page, err := p.Manpage()
	if err != nil {
		return "", err
	}
	return page.Render(), nil
}

// RenderMarkdown renders the page's document as markdown.
func (p *Page) RenderMarkdown() (string, error) {
	d, err := p.Doc()
	if err != nil {
		return "", err
	}
	return d.RenderMarkdown(), nil
}

// synopsis builds the one-line usage: the command name followed by each
// option in brackets.
func (p *Page) synopsis() []doc.Fragment {
	frags := []doc.Fragment{doc.Literal(p.Page.Name)}
	for _, o := range p.options() {
		frags = append(frags, doc.Text(" ["), doc.Literal(o.Flags[0]))
		if o.Argument != "" {
			frags = append(frags, doc.Text(" "), doc.Metavar(o.Argument))
		}
		frags = append(frags, doc.Text("]"))
	}
	return frags
}

// optionTerm builds the definition term for one option entry, like
// "-n, --bits BITS".
func optionTerm(o Option) []doc.Fragment {
	var frags []doc.Fragment
	for i, f := range o.Flags {
		if i > 0 {
			frags = append(frags, doc.Text(", "))
		}
		frags = append(frags, doc.Literal(f))
	}
	if o.Argument != "" {
		frags = append(frags, doc.Text(" "), doc.Metavar(o.Argument))
	}
	return frags
}

// thExtra returns the trailing .TH arguments (date, source, manual),
// trimmed so that absent trailing fields are omitted entirely.
func (p *Page) thExtra() []string {
	extra := []string{p.Page.Date, p.Page.Source, p.Page.Manual}
	for len(extra) > 0 && extra[len(extra)-1] == "" {
		extra = extra[:len(extra)-1]
	}
	return extra
}
