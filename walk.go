package pandoc

import (
	"errors"
	"fmt"
)

// Action is applied to every element visited by a walk, after all of the
// element's children have been walked. The result decides what becomes of
// the element:
//
//   - nil keeps the element;
//   - an empty, non-nil slice deletes it;
//   - anything else replaces it, splicing the elements in its place.
//
// Returning the Continue error also keeps the element. Any other error
// stops the walk and is returned to the caller.
//
// doc is the document given with WithDoc or, failing that, the document
// the walked element is attached to. It is nil for detached elements.
type Action func(elt Element, doc *Doc) ([]Element, error)

// Delete is the result of an Action that deletes the visited element.
func Delete() []Element { return []Element{} }

// Replace is the result of an Action that replaces the visited element
// with elts.
func Replace(elts ...Element) []Element {
	if elts == nil {
		return []Element{}
	}
	return elts
}

// On adapts a function on one kind of element to an Action. Elements of
// other kinds are kept.
//
// Example:
//
//	upper := pandoc.On(func(s *pandoc.Str, _ *pandoc.Doc) ([]pandoc.Element, error) {
//		s.Text = strings.ToUpper(s.Text)
//		return nil, nil
//	})
func On[E Element](f func(E, *Doc) ([]Element, error)) Action {
	return func(elt Element, doc *Doc) ([]Element, error) {
		if e, ok := elt.(E); ok {
			return f(e, doc)
		}
		return nil, nil
	}
}

// WalkOption configures a walk.
type WalkOption func(*walker)

// StopIf skips the children of elements for which f returns true. The
// action is still applied to those elements.
func StopIf(f func(Element) bool) WalkOption {
	return func(w *walker) { w.stop = f }
}

// WithDoc sets the document passed to the action.
func WithDoc(doc *Doc) WalkOption {
	return func(w *walker) { w.doc = doc }
}

type walker struct {
	action Action
	doc    *Doc
	stop   func(Element) bool
}

// Walk walks elt and its children bottom-up, applying action to every
// element. Children are visited in the order of their fields, then the
// action is applied to elt itself. Walk returns what elt became: a slice
// holding elt when it is kept, an empty slice when it is deleted, or the
// replacement elements.
//
// Example:
//
//	_, err := pandoc.Walk(doc, func(elt pandoc.Element, doc *pandoc.Doc) ([]pandoc.Element, error) {
//		if e, ok := elt.(*pandoc.Emph); ok {
//			return pandoc.Replace(pandoc.NewStrong(e.Content().Items()...)), nil
//		}
//		return nil, nil
//	})
func Walk(elt Element, action Action, opts ...WalkOption) ([]Element, error) {
	w := &walker{action: action}
	for _, o := range opts {
		o(w)
	}
	if w.doc == nil {
		w.doc = DocOf(elt)
	}
	res, replaced, err := w.visit(elt)
	if err != nil {
		return nil, err
	}
	if !replaced {
		return []Element{elt}, nil
	}
	return res, nil
}

// Walk walks the document with action and returns the resulting document:
// d itself unless the action replaced the root with another document.
func (d *Doc) Walk(action Action, opts ...WalkOption) (*Doc, error) {
	res, err := Walk(d, action, append([]WalkOption{WithDoc(d)}, opts...)...)
	if err != nil {
		return nil, err
	}
	if len(res) != 1 {
		return nil, &TypeError{Got: fmt.Sprintf("%d elements", len(res)), Want: "a single document"}
	}
	n, ok := res[0].(*Doc)
	if !ok || n == nil {
		return nil, &TypeError{Got: kindName(res[0]), Want: "a single document"}
	}
	return n, nil
}

// Query calls fun for every element of type P below elt, bottom-up, without
// changing the tree. elt itself is not passed to fun.
//
// Example:
//
//	var headers int
//	pandoc.Query(doc, func(*pandoc.Header) { headers++ })
func Query[P any](elt Element, fun func(P)) {
	w := &walker{action: func(e Element, _ *Doc) ([]Element, error) {
		if e != elt {
			if p, ok := e.(P); ok {
				fun(p)
			}
		}
		return nil, nil
	}}
	_, _, _ = w.visit(elt)
}

// visit walks the children of e and applies the action to e. replaced
// reports whether res should take the place of e.
func (w *walker) visit(e Element) (res []Element, replaced bool, err error) {
	if w.stop == nil || !w.stop(e) {
		if err = w.walkChildren(e); err != nil {
			return nil, false, err
		}
	}
	res, err = w.action(e, w.doc)
	switch {
	case errors.Is(err, Continue):
		return nil, false, nil
	case err != nil:
		return nil, false, err
	case res == nil:
		return nil, false, nil
	}
	return res, true, nil
}

func (w *walker) walkChildren(e Element) error {
	switch e := e.(type) {
	case *Doc:
		if err := walkField(w, e.Metadata(), e.SetMetadata, NewMetaMap); err != nil {
			return err
		}
		return walkList(w, e.Content())

	// Inlines
	case *Emph:
		return walkList(w, e.Content())
	case *Underline:
		return walkList(w, e.Content())
	case *Strong:
		return walkList(w, e.Content())
	case *Strikeout:
		return walkList(w, e.Content())
	case *Superscript:
		return walkList(w, e.Content())
	case *Subscript:
		return walkList(w, e.Content())
	case *SmallCaps:
		return walkList(w, e.Content())
	case *Quoted:
		return walkList(w, e.Content())
	case *Cite:
		if err := walkList(w, e.Content()); err != nil {
			return err
		}
		return walkList(w, e.Citations())
	case *Citation:
		if err := walkList(w, e.Prefix()); err != nil {
			return err
		}
		return walkList(w, e.Suffix())
	case *Link:
		return walkList(w, e.Content())
	case *Image:
		return walkList(w, e.Content())
	case *Note:
		return walkList(w, e.Content())
	case *Span:
		return walkList(w, e.Content())

	// following have no children
	case *Str:
	case *Code:
	case *Space:
	case *SoftBreak:
	case *LineBreak:
	case *Math:
	case *RawInline:

	// Blocks
	case *Plain:
		return walkList(w, e.Content())
	case *Para:
		return walkList(w, e.Content())
	case *LineBlock:
		return walkList(w, e.Content())
	case *LineItem:
		return walkList(w, e.Content())
	case *BlockQuote:
		return walkList(w, e.Content())
	case *OrderedList:
		return walkList(w, e.Content())
	case *BulletList:
		return walkList(w, e.Content())
	case *ListItem:
		return walkList(w, e.Content())
	case *DefinitionList:
		return walkList(w, e.Content())
	case *DefinitionItem:
		if err := walkList(w, e.Term()); err != nil {
			return err
		}
		return walkList(w, e.Definitions())
	case *Definition:
		return walkList(w, e.Content())
	case *Header:
		return walkList(w, e.Content())
	case *Div:
		return walkList(w, e.Content())
	case *Figure:
		if err := walkList(w, e.Content()); err != nil {
			return err
		}
		return walkField(w, e.Caption(), e.SetCaption, emptyCaption)
	case *Table:
		if err := walkField(w, e.Head(), e.setHead, emptyHead); err != nil {
			return err
		}
		if err := walkList(w, e.Content()); err != nil {
			return err
		}
		if err := walkField(w, e.Foot(), e.setFoot, emptyFoot); err != nil {
			return err
		}
		return walkField(w, e.Caption(), e.setCaption, emptyCaption)
	case *TableHead:
		return walkList(w, e.Content())
	case *TableFoot:
		return walkList(w, e.Content())
	case *TableBody:
		if err := walkList(w, e.Content()); err != nil {
			return err
		}
		return walkList(w, e.Head())
	case *TableRow:
		return walkList(w, e.Content())
	case *TableCell:
		return walkList(w, e.Content())
	case *Caption:
		if err := walkList(w, e.Content()); err != nil {
			return err
		}
		return walkList(w, e.Short())

	// following have no children
	case *CodeBlock:
	case *RawBlock:
	case *HorizontalRule:

	// Meta
	case *MetaMap:
		return walkMap(w, e.Content())
	case *MetaList:
		return walkList(w, e.Content())
	case *MetaInlines:
		return walkList(w, e.Content())
	case *MetaBlocks:
		return walkList(w, e.Content())
	case *MetaBool:
	case *MetaString:
	}
	return nil
}

func emptyCaption() *Caption { return NewCaption(nil) }
func emptyHead() *TableHead  { return NewTableHead(Attr{}) }
func emptyFoot() *TableFoot  { return NewTableFoot(Attr{}) }

// walkList walks every item of l and splices the results back. The list is
// reset only if some item was deleted or replaced.
func walkList[T Element](w *walker, l *List[T]) error {
	items := l.Items()
	var (
		out     []T
		changed bool
	)
	for i, it := range items {
		res, replaced, err := w.visit(it)
		if err != nil {
			return err
		}
		if !replaced {
			if changed {
				out = append(out, it)
			}
			continue
		}
		if !changed {
			changed = true
			out = append(make([]T, 0, len(items)+len(res)), items[:i]...)
		}
		conv, err := convert[T](l.Location(), res)
		if err != nil {
			return err
		}
		out = append(out, conv...)
	}
	if changed {
		l.Reset(out...)
	}
	return nil
}

// walkField walks a singly held child. A deleted child is replaced with
// the result of empty; a child cannot be replaced with more than one
// element.
func walkField[T Element](w *walker, cur T, set func(T), empty func() T) error {
	loc := cur.Location()
	res, replaced, err := w.visit(cur)
	if err != nil || !replaced {
		return err
	}
	switch len(res) {
	case 0:
		set(empty())
	case 1:
		v, ok := res[0].(T)
		if !ok || isNil(res[0]) {
			return &TypeError{Got: kindName(res[0]), Want: typeName[T](), Location: loc}
		}
		set(v)
	default:
		return &TypeError{Got: fmt.Sprintf("%d elements", len(res)), Want: "a single " + typeName[T](), Location: loc}
	}
	return nil
}

// walkMap walks every value of m. A deleted value removes its key.
func walkMap[T Element](w *walker, m *Map[T]) error {
	for _, k := range m.Keys() {
		v, ok := m.Get(k)
		if !ok {
			continue
		}
		res, replaced, err := w.visit(v)
		if err != nil {
			return err
		}
		if !replaced {
			continue
		}
		switch len(res) {
		case 0:
			m.Delete(k)
		case 1:
			if err := m.Assign(k, res[0]); err != nil {
				return err
			}
		default:
			return &TypeError{Got: fmt.Sprintf("%d elements", len(res)), Want: "a single " + typeName[T](), Location: m.location + "." + k}
		}
	}
	return nil
}
