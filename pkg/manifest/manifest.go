// Package manifest loads declarative man page definitions from TOML files
// and turns them into semantic documents.
//
// A manifest describes one page: its identity (name, section, summary)
// and a list of content sections. Option tables get their own syntax so
// SYNOPSIS and OPTIONS material stays structured instead of hand-written
// markup:
//
//	[page]
//	name    = "corrupt"
//	section = "1"
//	summary = "modify files by randomly changing bits"
//
//	[[sections]]
//	title      = "DESCRIPTION"
//	paragraphs = ["**corrupt** modifies files by toggling a randomly chosen bit."]
//
//	[[sections]]
//	title = "OPTIONS"
//	  [[sections.options]]
//	  flags       = ["-n", "--bits"]
//	  argument    = "BITS"
//	  description = "Set the number of bits to modify"
package manifest

import (
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/pacak/semantic/pkg/errors"
)

// Page is one parsed and validated man page manifest.
type Page struct {
	Page     Meta      `toml:"page"`
	Sections []Section `toml:"sections"`
}

// Meta identifies the page and fills the .TH title header.
type Meta struct {
	Name    string `toml:"name"`
	Title   string `toml:"title"`
	Section string `toml:"section"`
	Summary string `toml:"summary"`
	Date    string `toml:"date"`
	Source  string `toml:"source"`
	Manual  string `toml:"manual"`
}

// Section is one content section of the page, in reading order.
// Paragraphs come first, then the option entries.
type Section struct {
	Title      string   `toml:"title"`
	Paragraphs []string `toml:"paragraphs"`
	Options    []Option `toml:"options"`
}

// Option is one command line option entry of an options section.
type Option struct {
	Flags       []string `toml:"flags"`
	Argument    string   `toml:"argument"`
	Description string   `toml:"description"`
}

// Load reads and parses a manifest file.
func Load(path string) (*Page, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "failed to read manifest %s", path)
	}
	return Parse(data)
}

// Parse parses and validates manifest data.
func Parse(data []byte) (*Page, error) {
	var p Page
	if err := toml.Unmarshal(data, &p); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidManifest, err, "failed to parse manifest")
	}
	if err := p.validate(); err != nil {
		return nil, err
	}
	if p.Page.Title == "" {
		p.Page.Title = strings.ToUpper(p.Page.Name)
	}
	return &p, nil
}

func (p *Page) validate() error {
	if err := errors.ValidatePageName(p.Page.Name); err != nil {
		return err
	}
	if err := errors.ValidateSection(p.Page.Section); err != nil {
		return err
	}
	if p.Page.Summary == "" {
		return errors.New(errors.ErrCodeInvalidManifest, "page %q has no summary", p.Page.Name)
	}
	for i, s := range p.Sections {
		if s.Title == "" {
			return errors.New(errors.ErrCodeInvalidSection, "section %d has no title", i+1)
		}
		for _, o := range s.Options {
			if len(o.Flags) == 0 {
				return errors.New(errors.ErrCodeInvalidManifest,
					"section %q has an option without flags", s.Title)
			}
			for _, f := range o.Flags {
				if f == "" {
					return errors.New(errors.ErrCodeInvalidManifest,
						"section %q has an option with an empty flag", s.Title)
				}
			}
		}
	}
	return nil
}

// Filename returns the conventional install name for the page, name.section.
func (p *Page) Filename() string {
	return p.Page.Name + "." + p.Page.Section
}

// options collects every option entry in manifest order, for SYNOPSIS.
func (p *Page) options() []Option {
	var opts []Option
	for _, s := range p.Sections {
		opts = append(opts, s.Options...)
	}
	return opts
}
