package pandoc

// sequence is the untyped view of a List used for navigation.
type sequence interface {
	Len() int
	element(i int) Element
}

// List is an ordered sequence of children held by an element field. Every
// element stored in a list is stamped with the owner, the field name and
// its position, and the stamps are refreshed on every structural change.
//
// A List is obtained from its owner's accessor (for example
// [Para.Content]) and must not be copied.
type List[T Element] struct {
	owner    Element
	location string
	items    []T
}

func (l *List[T]) bind(owner Element, location string) *List[T] {
	if l.owner != owner || l.location != location {
		l.owner, l.location = owner, location
		l.restamp(0)
	}
	return l
}

func (l *List[T]) restamp(from int) {
	for i := from; i < len(l.items); i++ {
		l.items[i].base().stamp(l.owner, l.location, i, l)
	}
}

func (l *List[T]) release(items []T) {
	for _, it := range items {
		if n := it.base(); n.owned(l.owner, l.location) {
			n.detach()
		}
	}
}

func (l *List[T]) check(items []T) {
	for _, it := range items {
		if isNil(it) {
			panic(&TypeError{Got: "nil", Want: typeName[T](), Location: l.location})
		}
	}
}

// Owner returns the element holding the list.
func (l *List[T]) Owner() Element { return l.owner }

// Location returns the name of the owner's field holding the list.
func (l *List[T]) Location() string { return l.location }

// Len returns the number of items.
func (l *List[T]) Len() int {
	if l == nil {
		return 0
	}
	return len(l.items)
}

// At returns the i-th item. It panics if i is out of range.
func (l *List[T]) At(i int) T { return l.items[i] }

func (l *List[T]) element(i int) Element { return l.items[i] }

// Items returns a copy of the items.
func (l *List[T]) Items() []T {
	if l == nil {
		return nil
	}
	return append([]T(nil), l.items...)
}

// IndexOf returns the position of e in the list, or -1.
func (l *List[T]) IndexOf(e Element) int {
	for i, it := range l.items {
		if Element(it) == e {
			return i
		}
	}
	return -1
}

// Set replaces the i-th item.
func (l *List[T]) Set(i int, v T) {
	l.check([]T{v})
	l.release(l.items[i : i+1])
	l.items[i] = v
	v.base().stamp(l.owner, l.location, i, l)
}

// Append adds items at the end.
func (l *List[T]) Append(v ...T) {
	l.check(v)
	n := len(l.items)
	l.items = append(l.items, v...)
	l.restamp(n)
}

// Insert inserts items before position i.
func (l *List[T]) Insert(i int, v ...T) {
	l.Splice(i, i, v...)
}

// Delete removes and returns the i-th item.
func (l *List[T]) Delete(i int) T {
	v := l.items[i]
	l.Splice(i, i+1)
	return v
}

// Splice replaces the items in [i, j) with v.
func (l *List[T]) Splice(i, j int, v ...T) {
	l.check(v)
	_ = l.items[i:j]
	l.release(l.items[i:j])
	tail := len(l.items) - j
	items := make([]T, 0, i+len(v)+tail)
	items = append(items, l.items[:i]...)
	items = append(items, v...)
	items = append(items, l.items[j:]...)
	l.items = items
	l.restamp(i)
}

// Reset replaces all items with v. The slice is copied.
func (l *List[T]) Reset(v ...T) {
	l.check(v)
	l.release(l.items)
	l.items = append([]T(nil), v...)
	l.restamp(0)
}

// Assign replaces all items with elements of arbitrary kind, failing with a
// *TypeError if one of them does not belong in the list.
func (l *List[T]) Assign(v ...Element) error {
	items, err := convert[T](l.location, v)
	if err != nil {
		return err
	}
	l.Reset(items...)
	return nil
}

// AppendElements adds elements of arbitrary kind, failing with a *TypeError
// if one of them does not belong in the list.
func (l *List[T]) AppendElements(v ...Element) error {
	items, err := convert[T](l.location, v)
	if err != nil {
		return err
	}
	l.Append(items...)
	return nil
}

func convert[T Element](location string, v []Element) ([]T, error) {
	items := make([]T, len(v))
	for i, e := range v {
		it, ok := e.(T)
		if !ok || isNil(e) {
			return nil, &TypeError{Got: kindName(e), Want: typeName[T](), Location: location}
		}
		items[i] = it
	}
	return items, nil
}

// Map is an insertion-ordered mapping from keys to children held by an
// element field. Values are stamped with the owner and the field name.
type Map[T Element] struct {
	owner    Element
	location string
	keys     []string
	values   map[string]T
}

func (m *Map[T]) bind(owner Element, location string) *Map[T] {
	if m.owner != owner || m.location != location {
		m.owner, m.location = owner, location
		for _, v := range m.values {
			v.base().stamp(owner, location, -1, nil)
		}
	}
	return m
}

// Owner returns the element holding the map.
func (m *Map[T]) Owner() Element { return m.owner }

// Len returns the number of entries.
func (m *Map[T]) Len() int {
	if m == nil {
		return 0
	}
	return len(m.keys)
}

// Keys returns the keys in insertion order.
func (m *Map[T]) Keys() []string {
	if m == nil {
		return nil
	}
	return append([]string(nil), m.keys...)
}

// Get returns the value of key.
func (m *Map[T]) Get(key string) (T, bool) {
	v, ok := m.values[key]
	return v, ok
}

// Has reports whether key is present.
func (m *Map[T]) Has(key string) bool {
	_, ok := m.values[key]
	return ok
}

// Set sets the value of key, keeping the position of an existing key.
// Setting a nil value removes the key.
func (m *Map[T]) Set(key string, v T) {
	if isNil(v) {
		m.Delete(key)
		return
	}
	if old, ok := m.values[key]; ok {
		if n := old.base(); n.owned(m.owner, m.location) {
			n.detach()
		}
	} else {
		if m.values == nil {
			m.values = make(map[string]T)
		}
		m.keys = append(m.keys, key)
	}
	m.values[key] = v
	v.base().stamp(m.owner, m.location, -1, nil)
}

// Assign sets the value of key to an element of arbitrary kind, failing
// with a *TypeError if it does not belong in the map.
func (m *Map[T]) Assign(key string, v Element) error {
	it, ok := v.(T)
	if !ok || isNil(v) {
		return &TypeError{Got: kindName(v), Want: typeName[T](), Location: m.location + "." + key}
	}
	m.Set(key, it)
	return nil
}

// Delete removes key and reports whether it was present.
func (m *Map[T]) Delete(key string) bool {
	old, ok := m.values[key]
	if !ok {
		return false
	}
	if n := old.base(); n.owned(m.owner, m.location) {
		n.detach()
	}
	delete(m.values, key)
	for i, k := range m.keys {
		if k == key {
			m.keys = append(m.keys[:i:i], m.keys[i+1:]...)
			break
		}
	}
	return true
}

// Range calls f for each entry in insertion order until f returns false.
func (m *Map[T]) Range(f func(key string, v T) bool) {
	if m == nil {
		return
	}
	for _, k := range m.Keys() {
		if v, ok := m.values[k]; ok && !f(k, v) {
			return
		}
	}
}

// Clear removes all entries.
func (m *Map[T]) Clear() {
	for _, k := range m.Keys() {
		m.Delete(k)
	}
}
