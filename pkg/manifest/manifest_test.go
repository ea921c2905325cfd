package manifest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pacak/semantic/pkg/errors"
)

const corruptManifest = `
[page]
name    = "corrupt"
section = "1"
summary = "modify files by randomly changing bits"
date    = "2026-08-01"

[[sections]]
title      = "DESCRIPTION"
paragraphs = ["**corrupt** modifies files by toggling a randomly chosen bit."]

[[sections]]
title = "OPTIONS"

  [[sections.options]]
  flags       = ["-n", "--bits"]
  argument    = "BITS"
  description = "Set the number of bits to modify"
`

func TestParse(t *testing.T) {
	p, err := Parse([]byte(corruptManifest))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if p.Page.Name != "corrupt" {
		t.Errorf("Name = %q, want %q", p.Page.Name, "corrupt")
	}
	if p.Page.Title != "CORRUPT" {
		t.Errorf("Title = %q, want %q (defaulted from name)", p.Page.Title, "CORRUPT")
	}
	if len(p.Sections) != 2 {
		t.Fatalf("len(Sections) = %d, want 2", len(p.Sections))
	}
	if got := p.Sections[1].Options[0].Flags; len(got) != 2 || got[0] != "-n" {
		t.Errorf("option flags = %v, want [-n --bits]", got)
	}
}

func TestParseKeepsExplicitTitle(t *testing.T) {
	manifest := `
[page]
name    = "corrupt"
title   = "Corrupt"
section = "1"
summary = "modify files"
`
	p, err := Parse([]byte(manifest))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if p.Page.Title != "Corrupt" {
		t.Errorf("Title = %q, want %q", p.Page.Title, "Corrupt")
	}
}

func TestParseValidation(t *testing.T) {
	tests := []struct {
		name     string
		manifest string
		wantCode errors.Code
	}{
		{
			name:     "not toml",
			manifest: "{ not toml",
			wantCode: errors.ErrCodeInvalidManifest,
		},
		{
			name:     "missing name",
			manifest: "[page]\nsection = \"1\"\nsummary = \"x\"\n",
			wantCode: errors.ErrCodeInvalidManifest,
		},
		{
			name:     "bad section",
			manifest: "[page]\nname = \"x\"\nsection = \"99\"\nsummary = \"x\"\n",
			wantCode: errors.ErrCodeInvalidSection,
		},
		{
			name:     "missing summary",
			manifest: "[page]\nname = \"x\"\nsection = \"1\"\n",
			wantCode: errors.ErrCodeInvalidManifest,
		},
		{
			name: "untitled section",
			manifest: "[page]\nname = \"x\"\nsection = \"1\"\nsummary = \"x\"\n" +
				"[[sections]]\nparagraphs = [\"y\"]\n",
			wantCode: errors.ErrCodeInvalidSection,
		},
		{
			name: "option without flags",
			manifest: "[page]\nname = \"x\"\nsection = \"1\"\nsummary = \"x\"\n" +
				"[[sections]]\ntitle = \"OPTIONS\"\n[[sections.options]]\ndescription = \"y\"\n",
			wantCode: errors.ErrCodeInvalidManifest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.manifest))
			if err == nil {
				t.Fatal("Parse() error = nil, want error")
			}
			if !errors.Is(err, tt.wantCode) {
				t.Errorf("error code = %v, want %v (err: %v)", errors.GetCode(err), tt.wantCode, err)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corrupt.toml")
	if err := os.WriteFile(path, []byte(corruptManifest), 0o644); err != nil {
		t.Fatal(err)
	}

	p, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if p.Page.Name != "corrupt" {
		t.Errorf("Name = %q, want %q", p.Page.Name, "corrupt")
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	if err == nil {
		t.Fatal("Load() error = nil, want error")
	}
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeFileNotFound)
	}
}

func TestFilename(t *testing.T) {
	p, err := Parse([]byte(corruptManifest))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if got := p.Filename(); got != "corrupt.1" {
		t.Errorf("Filename() = %q, want %q", got, "corrupt.1")
	}
}

func TestRenderMan(t *testing.T) {
	p, err := Parse([]byte(corruptManifest))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	got, err := p.RenderMan()
	if err != nil {
		t.Fatalf("RenderMan() error = %v", err)
	}

	want := ".ie \\n(.g .ds Aq \\(aq\n" +
		".el .ds Aq '\n" +
		".TH CORRUPT 1 2026-08-01\n" +
		".SH NAME\n" +
		"corrupt \\- modify files by randomly changing bits\n" +
		".PP\n" +
		".SH SYNOPSIS\n" +
		"\\fBcorrupt\\fP [\\fB\\-n\\fP \\fIBITS\\fP]\n" +
		".PP\n" +
		".SH DESCRIPTION\n" +
		"\\fBcorrupt\\fP modifies files by toggling a randomly chosen bit.\n" +
		".PP\n" +
		".SH OPTIONS\n" +
		".TP\n" +
		"\\fB\\-n\\fP, \\fB\\-\\-bits\\fP \\fIBITS\\fP\n" +
		"Set the number of bits to modify\n" +
		".PP\n"

	if got != want {
		t.Errorf("RenderMan() = %q, want %q", got, want)
	}
}

func TestRenderMarkdown(t *testing.T) {
	p, err := Parse([]byte(corruptManifest))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	got, err := p.RenderMarkdown()
	if err != nil {
		t.Fatalf("RenderMarkdown() error = %v", err)
	}

	want := "# NAME\n" +
		"\n" +
		"corrupt - modify files by randomly changing bits\n" +
		"\n" +
		"# SYNOPSIS\n" +
		"\n" +
		"<tt><b>corrupt</b></tt> [<tt><b>\\-n</b></tt> <tt><i>BITS</i></tt>]\n" +
		"\n" +
		"# DESCRIPTION\n" +
		"\n" +
		"<tt><b>corrupt</b></tt> modifies files by toggling a randomly chosen bit.\n" +
		"\n" +
		"# OPTIONS\n" +
		"\n" +
		"<dl>\n" +
		"<dt><tt><b>-n</b></tt>, <tt><b>--bits</b></tt> <tt><i>BITS</i></tt></dt>\n" +
		"<dd>Set the number of bits to modify</dd></dl>"

	if got != want {
		t.Errorf("RenderMarkdown() = %q, want %q", got, want)
	}
}

func TestRenderManInvalidMarkup(t *testing.T) {
	manifest := "[page]\nname = \"x\"\nsection = \"1\"\nsummary = \"x\"\n" +
		"[[sections]]\ntitle = \"BUGS\"\nparagraphs = [\"**oops\"]\n"
	p, err := Parse([]byte(manifest))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if _, err := p.RenderMan(); !errors.Is(err, errors.ErrCodeInvalidMarkup) {
		t.Errorf("RenderMan() error code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidMarkup)
	}
}
