package pandoc

// Offset returns the element n positions away from e in the sequence that
// holds it, or nil if e is not held in a sequence or the position is out
// of range.
func Offset(e Element, n int) Element {
	if isNil(e) {
		return nil
	}
	b := e.base()
	if b.seq == nil || b.pos == 0 {
		return nil
	}
	idx := b.pos - 1
	// stale stamp of an element no longer in the sequence
	if idx >= b.seq.Len() || b.seq.element(idx) != e {
		return nil
	}
	i := idx + n
	if i < 0 || i >= b.seq.Len() {
		return nil
	}
	return b.seq.element(i)
}

// Next returns the following sibling of e, or nil.
func Next(e Element) Element { return Offset(e, 1) }

// Prev returns the preceding sibling of e, or nil.
func Prev(e Element) Element { return Offset(e, -1) }

// Siblings returns the elements of the sequence that holds e, e included,
// or nil if e is not held in a sequence.
func Siblings(e Element) []Element {
	if Offset(e, 0) == nil {
		return nil
	}
	seq := e.base().seq
	s := make([]Element, seq.Len())
	for i := range s {
		s[i] = seq.element(i)
	}
	return s
}

// Ancestor returns the n-th ancestor of e: Ancestor(e, 1) is e.Parent().
// It returns nil if the chain of parents is shorter than n, and fails with
// a *ValueError if n is less than 1.
func Ancestor(e Element, n int) (Element, error) {
	if n < 1 {
		return nil, &ValueError{Field: "ancestor level", Value: n, Expected: "at least 1"}
	}
	for ; n > 0 && !isNil(e); n-- {
		e = e.Parent()
	}
	if isNil(e) {
		return nil, nil
	}
	return e, nil
}

// DocOf returns the document e belongs to, e itself if it is a document,
// or nil if e is detached.
func DocOf(e Element) *Doc {
	for !isNil(e) {
		if d, ok := e.(*Doc); ok {
			return d
		}
		e = e.Parent()
	}
	return nil
}
