package pandoc

import (
	"errors"
	"testing"
)

func TestNavigation(t *testing.T) {
	a, b, c := NewStr("a"), NewStr("b"), NewStr("c")
	p := NewPara(a, NewSpace(), b, c)
	doc := NewDoc(NewDiv(Attr{}, p))

	if Next(a).Tag() != SpaceTag || Prev(b).Tag() != SpaceTag {
		t.Error("unexpected siblings")
	}
	if Next(c) != nil || Prev(a) != nil {
		t.Error("expected no sibling at the ends")
	}
	if Offset(a, 3) != Element(c) || Offset(c, -3) != Element(a) || Offset(a, 9) != nil {
		t.Error("unexpected offsets")
	}
	if s := Siblings(b); len(s) != 4 || s[2] != Element(b) {
		t.Errorf("unexpected siblings %v", s)
	}
	if Next(doc) != nil || Siblings(doc) != nil {
		t.Error("the root has no siblings")
	}
	if DocOf(a) != doc || DocOf(doc) != doc || DocOf(NewStr("x")) != nil {
		t.Error("unexpected document")
	}

	if e, err := Ancestor(a, 1); err != nil || e != Element(p) {
		t.Errorf("expected the paragraph, got %v, %v", e, err)
	}
	if e, err := Ancestor(a, 3); err != nil || e != Element(doc) {
		t.Errorf("expected the document, got %v, %v", e, err)
	}
	if e, err := Ancestor(a, 4); err != nil || e != nil {
		t.Errorf("expected nil beyond the root, got %v, %v", e, err)
	}
	var ve *ValueError
	if _, err := Ancestor(a, 0); !errors.As(err, &ve) {
		t.Errorf("expected a *ValueError, got %v", err)
	}
}

func TestNavigationDetached(t *testing.T) {
	a := NewStr("a")
	p := NewPara(a, NewStr("b"))
	p.Content().Delete(0)
	if Next(a) != nil || Siblings(a) != nil || a.Parent() != nil {
		t.Error("detached element still navigates")
	}
	// b is adopted by q while p still holds it; only q's stamp counts
	b := p.Content().At(0)
	q := NewPara(NewStr("c"))
	q.Content().Insert(0, b)
	if b.Parent() != q || b.Index() != 0 || Next(b).(*Str).Text != "c" {
		t.Errorf("adopted element stamped as %v/%d", b.Parent(), b.Index())
	}
}

func TestCategories(t *testing.T) {
	var e Element = NewSoftBreak()
	if !Is[WhiteSpace](e) || !Is[Inline](e) || Is[Block](e) {
		t.Error("unexpected categories for SoftBreak")
	}
	if !Is[BlockContainer](NewDiv(Attr{})) || !Is[InlineContainer](NewPlain()) || Is[InlineContainer](NewDiv(Attr{})) {
		t.Error("unexpected container categories")
	}
	if !Is[Linkable](NewDiv(Attr{})) || Is[Linkable](NewPara()) {
		t.Error("unexpected linkable categories")
	}
}
