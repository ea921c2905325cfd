package doc

import (
	"testing"

	"github.com/pacak/semantic/pkg/man"
)

const preamble = ".ie \\n(.g .ds Aq \\(aq\n.el .ds Aq '\n"

func TestRenderManpage(t *testing.T) {
	d := New()
	d.Section("DESCRIPTION")
	d.Paragraph(Text("Pass "), Literal("--help"), Text(" to print usage"))
	d.Subsection("Lists")
	d.BulletList(Item(Text("keeps files intact")))
	d.NumberedList(Item(Text("first step")), Item(Text("second step")))
	d.DefinitionList(
		Define(Item(Literal("-v")), Item(Text("verbose output"))),
	)

	want := preamble +
		".TH demo 1\n" +
		".SH DESCRIPTION\n" +
		"Pass \\fB\\-\\-help\\fP to print usage\n" +
		".PP\n" +
		".SS Lists\n" +
		".IP \\(bu 2\n" +
		"keeps files intact\n" +
		".IP 1. 4\n" +
		"first step\n" +
		".IP 2. 4\n" +
		"second step\n" +
		".TP\n" +
		"\\fB\\-v\\fP\n" +
		"verbose output\n" +
		".PP\n"

	if got := d.RenderManpage(man.New("demo", man.General)); got != want {
		t.Errorf("RenderManpage() = %q, want %q", got, want)
	}
}

// The same styled content must reach both renderers with its meaning
// intact: a literal flag is bold on the man page and <tt><b> in markdown.
func TestFragmentStylesAgreeAcrossRenderers(t *testing.T) {
	tests := []struct {
		name     string
		frag     Fragment
		wantRoff string
	}{
		{"text", Text("plain"), "plain\n"},
		{"literal", Literal("flag"), "\\fBflag\\fP\n"},
		{"metavar", Metavar("FILE"), "\\fIFILE\\fP\n"},
		{"mono", Mono("code"), "\\f(CRcode\\fP\n"},
		{"important", Important("note"), "\\f(BInote\\fP\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := New().Paragraph(tt.frag)
			want := preamble + ".TH x 1\n" + tt.wantRoff + ".PP\n"
			if got := d.RenderManpage(man.New("x", man.General)); got != want {
				t.Errorf("RenderManpage() = %q, want %q", got, want)
			}
		})
	}
}

func TestRenderManpageEmptyDocument(t *testing.T) {
	got := New().RenderManpage(man.New("empty", man.General))
	want := preamble + ".TH empty 1\n"
	if got != want {
		t.Errorf("RenderManpage() = %q, want %q", got, want)
	}
}
