package exprfilter

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	pandoc "github.com/growler/go-panflute"
)

func testDoc() *pandoc.Doc {
	return pandoc.NewDoc(
		pandoc.Must(pandoc.NewHeader(2, pandoc.NewAttr("intro", []string{"unnumbered"}), pandoc.NewStr("Intro"))),
		pandoc.NewPara(
			pandoc.NewStr("see"), pandoc.NewSpace(),
			pandoc.NewLink(pandoc.Target{Url: "http://example.com"}, pandoc.Attr{}, pandoc.NewStr("here")),
			pandoc.NewSpace(),
			pandoc.NewEmph(pandoc.NewStr("now")),
		),
		pandoc.NewDiv(pandoc.NewAttr("", []string{"draft", "note"}, "owner", "ann"), pandoc.NewPara(pandoc.NewStr("TODO"))),
		pandoc.Must(pandoc.NewRawBlock("html", "<hr>")),
	)
}

func TestMatch(t *testing.T) {
	doc := testDoc()
	blocks := doc.Blocks()
	link := blocks[1].(*pandoc.Para).Content().At(2)
	var tests = []struct {
		src  string
		elt  pandoc.Element
		want bool
	}{
		{`tag == "Header" && level == 2 && identifier == "intro"`, blocks[0], true},
		{`"unnumbered" in classes`, blocks[0], true},
		{`text == "Intro" && category == "block"`, blocks[0], true},
		{`url startsWith "http:" && category == "inline"`, link, true},
		{`hasClass("draft") && attributes["owner"] == "ann"`, blocks[2], true},
		{`hasClass("draft")`, blocks[1], false},
		{`text contains "TODO"`, blocks[2], true},
		{`format == "html"`, blocks[3], true},
		{`category == "document"`, doc, true},
		{`category == "meta"`, pandoc.NewMetaString("x"), true},
		{`level > 0`, link, false},
	}
	for _, tt := range tests {
		p, err := Compile(tt.src)
		if err != nil {
			t.Errorf("Compile(%q): %v", tt.src, err)
			continue
		}
		got, err := p.Match(tt.elt)
		if err != nil {
			t.Errorf("%q: %v", tt.src, err)
			continue
		}
		if got != tt.want {
			t.Errorf("%q on %s = %v, want %v", tt.src, tt.elt.Tag(), got, tt.want)
		}
	}
}

func TestCompileErrors(t *testing.T) {
	for _, src := range []string{`tag ==`, `level + 1`, `unknown == 1`} {
		if _, err := Compile(src); err == nil {
			t.Errorf("Compile(%q): expected an error", src)
		}
	}
}

func TestDrop(t *testing.T) {
	doc := testDoc()
	p, err := Compile(`tag in ["Emph", "Link"] || hasClass("draft")`)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := doc.Walk(Drop(p)); err != nil {
		t.Fatal(err)
	}
	if got := pandoc.Stringify(doc, false); got != "Introsee  <hr>" {
		t.Errorf("unexpected text %q", got)
	}
}

func TestKeepOnly(t *testing.T) {
	doc := testDoc()
	doc.Metadata().SetString("title", "T")
	p, err := Compile(`tag in ["Header", "Div"]`)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := doc.Walk(KeepOnly(p)); err != nil {
		t.Fatal(err)
	}
	var tags []pandoc.Tag
	for _, b := range doc.Blocks() {
		tags = append(tags, b.Tag())
	}
	if diff := cmp.Diff([]pandoc.Tag{pandoc.HeaderTag, pandoc.DivTag}, tags); diff != "" {
		t.Errorf("unexpected blocks (-want +got):\n%s", diff)
	}
	if doc.Metadata().Get("title") == nil {
		t.Error("metadata was dropped")
	}
	if d := doc.Blocks()[1].(*pandoc.Div); d.Content().Len() != 1 {
		t.Error("nested blocks were dropped")
	}
}
