package pandoc

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func cellRow(text string) *TableRow {
	return NewTableRow(Attr{}, NewTableCell(NewPlain(NewStr(text))))
}

func testTable() *Table {
	head := NewTableHead(Attr{}, cellRow("TableHead"))
	foot := NewTableFoot(Attr{}, cellRow("TableFoot"))
	body := Must(NewTableBody(Attr{}, 0, []*TableRow{cellRow("BodyHead")}, cellRow("BodyBody")))
	caption := NewCaption([]Inline{NewStr("Short")}, NewPlain(NewStr("Caption")))
	return Must(NewTable(Attr{}, caption, nil, head, []*TableBody{body}, foot))
}

func strs(e Element) []string {
	var items []string
	Query(e, func(s *Str) { items = append(items, s.Text) })
	return items
}

func BenchmarkWalkTable(b *testing.B) {
	b.StopTimer()
	tbl := testTable()
	b.ReportAllocs()
	b.StartTimer()
	for i := 0; i < b.N; i++ {
		Query(tbl, func(e Element) {})
	}
}

func TestWalkTable(t *testing.T) {
	want := []string{"TableHead", "BodyBody", "BodyHead", "TableFoot", "Caption", "Short"}
	if diff := cmp.Diff(want, strs(testTable())); diff != "" {
		t.Errorf("walk order mismatch (-want +got):\n%s", diff)
	}
}

func TestWalkOrder(t *testing.T) {
	doc := NewDoc(
		NewPara(NewEmph(NewStr("a")), NewStr("b")),
		NewHorizontalRule(),
	)
	doc.Metadata().SetString("k", "v")
	var log []string
	_, err := Walk(doc, func(e Element, d *Doc) ([]Element, error) {
		if d != doc {
			t.Errorf("expected the walked document, got %v", d)
		}
		log = append(log, string(e.Tag()))
		return nil, nil
	})
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"MetaString", "MetaMap", "Str", "Emph", "Str", "Para", "HorizontalRule", "Pandoc"}
	if diff := cmp.Diff(want, log); diff != "" {
		t.Errorf("walk order mismatch (-want +got):\n%s", diff)
	}
}

func TestWalkDelete(t *testing.T) {
	p := NewPara(NewStr("a"), NewStr("b"), NewStr("c"))
	b := p.Content().At(1)
	doc := NewDoc(p)
	_, err := doc.Walk(On(func(s *Str, _ *Doc) ([]Element, error) {
		if s.Text == "b" {
			return Delete(), nil
		}
		return nil, nil
	}))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"a", "c"}, strs(doc)); diff != "" {
		t.Errorf("unexpected content (-want +got):\n%s", diff)
	}
	if b.Parent() != nil || b.Index() != -1 {
		t.Errorf("deleted element still attached to %v at %d", b.Parent(), b.Index())
	}
	c := p.Content().At(1)
	if c.Index() != 1 || Prev(c) != p.Content().At(0) {
		t.Errorf("stale position %d after delete", c.Index())
	}
}

func TestWalkSplice(t *testing.T) {
	p := NewPara(NewStr("a"), NewStr("b"), NewStr("c"))
	_, err := Walk(p, On(func(s *Str, _ *Doc) ([]Element, error) {
		if s.Text == "b" {
			return Replace(NewStr("x"), NewSpace(), NewStr("y")), nil
		}
		return nil, nil
	}))
	if err != nil {
		t.Fatal(err)
	}
	if got := Stringify(p, false); got != "ax yc" {
		t.Errorf("expected %q, got %q", "ax yc", got)
	}
	for i, it := range p.Content().Items() {
		if it.Index() != i || it.Parent() != p || it.Location() != "content" {
			t.Errorf("item %d stamped as %v/%s/%d", i, it.Parent(), it.Location(), it.Index())
		}
	}
}

func TestWalkReplaceRoot(t *testing.T) {
	s := NewStr("a")
	res, err := Walk(s, func(e Element, _ *Doc) ([]Element, error) {
		return Replace(NewEmph(NewStr("b"))), nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(res) != 1 || res[0].Tag() != EmphTag {
		t.Errorf("unexpected result %v", res)
	}
	res, err = Walk(s, func(e Element, _ *Doc) ([]Element, error) { return nil, nil })
	if err != nil || len(res) != 1 || res[0] != Element(s) {
		t.Errorf("expected the kept root, got %v, %v", res, err)
	}
}

func TestWalkStopIf(t *testing.T) {
	p := NewPara(NewEmph(NewStr("a")), NewStr("b"))
	var seen []string
	_, err := Walk(p, func(e Element, _ *Doc) ([]Element, error) {
		seen = append(seen, string(e.Tag()))
		return nil, nil
	}, StopIf(func(e Element) bool { return Is[*Emph](e) }))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"Emph", "Str", "Para"}, seen); diff != "" {
		t.Errorf("unexpected visits (-want +got):\n%s", diff)
	}
}

func TestWalkContinue(t *testing.T) {
	p := NewPara(NewStr("a"))
	_, err := Walk(p, func(e Element, _ *Doc) ([]Element, error) {
		// the result is ignored along with Continue
		return Delete(), Continue
	})
	if err != nil {
		t.Fatal(err)
	}
	if p.Content().Len() != 1 {
		t.Error("Continue did not keep the element")
	}
}

func TestWalkError(t *testing.T) {
	boom := errors.New("boom")
	p := NewPara(NewStr("a"), NewStr("b"))
	var n int
	_, err := Walk(p, func(e Element, _ *Doc) ([]Element, error) {
		n++
		return nil, boom
	})
	if !errors.Is(err, boom) {
		t.Errorf("expected boom, got %v", err)
	}
	if n != 1 {
		t.Errorf("walk continued after an error: %d visits", n)
	}
}

func TestWalkWrongKind(t *testing.T) {
	p := NewPara(NewStr("a"))
	_, err := Walk(p, On(func(s *Str, _ *Doc) ([]Element, error) {
		return Replace(NewPara()), nil
	}))
	var te *TypeError
	if !errors.As(err, &te) {
		t.Fatalf("expected a *TypeError, got %v", err)
	}
	if te.Location != "content" || te.Got != "Para" {
		t.Errorf("unexpected error %v", te)
	}
}

func TestWalkField(t *testing.T) {
	f := NewFigure(Attr{}, NewCaption(nil, NewPlain(NewStr("cap"))), NewPlain(NewStr("body")))
	_, err := Walk(f, On(func(c *Caption, _ *Doc) ([]Element, error) {
		return Delete(), nil
	}))
	if err != nil {
		t.Fatal(err)
	}
	if f.Caption().Content().Len() != 0 || f.Caption().Parent() != f {
		t.Error("deleted caption was not reset to an empty one")
	}
	_, err = Walk(f, On(func(c *Caption, _ *Doc) ([]Element, error) {
		return Replace(NewCaption(nil), NewCaption(nil)), nil
	}))
	var te *TypeError
	if !errors.As(err, &te) {
		t.Errorf("expected a *TypeError, got %v", err)
	}
}

func TestWalkMetadata(t *testing.T) {
	doc := NewDoc()
	doc.Metadata().SetString("drop", "x")
	doc.Metadata().SetString("keep", "y")
	_, err := doc.Walk(On(func(s *MetaString, _ *Doc) ([]Element, error) {
		if s.Text == "x" {
			return Delete(), nil
		}
		return Replace(NewMetaBool(true)), nil
	}))
	if err != nil {
		t.Fatal(err)
	}
	if got := strings.Join(doc.Metadata().Content().Keys(), ","); got != "keep" {
		t.Errorf("unexpected keys %s", got)
	}
	if v := doc.GetMetadata("keep", nil); v != true {
		t.Errorf("expected replaced value true, got %v", v)
	}
}

func TestDocWalk(t *testing.T) {
	doc := NewDoc(NewPara(NewStr("a")))
	other := NewDoc()
	res, err := doc.Walk(On(func(d *Doc, _ *Doc) ([]Element, error) {
		return Replace(other), nil
	}))
	if err != nil || res != other {
		t.Errorf("expected the replacement document, got %v, %v", res, err)
	}
	_, err = doc.Walk(On(func(d *Doc, _ *Doc) ([]Element, error) {
		return Delete(), nil
	}))
	var te *TypeError
	if !errors.As(err, &te) {
		t.Errorf("expected a *TypeError, got %v", err)
	}
}

func TestQuery(t *testing.T) {
	p := NewPara(NewEmph(NewStr("a")), NewStr("b"))
	var inlines int
	Query(p, func(Inline) { inlines++ })
	if inlines != 3 {
		t.Errorf("expected 3 inlines, got %d", inlines)
	}
	var paras int
	Query(p, func(*Para) { paras++ })
	if paras != 0 {
		t.Error("Query visited the root")
	}
}
