package pandoc

import (
	"fmt"
	"reflect"
	"sort"
	"strconv"
)

// Metadata map
type MetaMap struct {
	node
	content Map[MetaValue]
}

const MetaMapTag = Tag("MetaMap")

func NewMetaMap() *MetaMap { return &MetaMap{} }

func (m *MetaMap) Tag() Tag                  { return MetaMapTag }
func (m *MetaMap) meta()                     {}
func (m *MetaMap) Content() *Map[MetaValue] { return m.content.bind(m, "content") }

// Get returns the value of key or nil.
func (m *MetaMap) Get(key string) MetaValue {
	v, _ := m.Content().Get(key)
	return v
}

// Set sets the value of key. A nil value removes the key.
func (m *MetaMap) Set(key string, value MetaValue) {
	m.Content().Set(key, value)
}

func (m *MetaMap) SetBool(key string, value bool) {
	m.Set(key, &MetaBool{Value: value})
}

func (m *MetaMap) SetString(key string, value string) {
	m.Set(key, &MetaString{Text: value})
}

func (m *MetaMap) SetInlines(key string, value ...Inline) {
	m.Set(key, NewMetaInlines(value...))
}

func (m *MetaMap) SetBlocks(key string, value ...Block) {
	m.Set(key, NewMetaBlocks(value...))
}

// SetValue converts a plain Go value with ToMeta and stores it under key.
func (m *MetaMap) SetValue(key string, value any) error {
	v, err := ToMeta(value)
	if err != nil {
		return err
	}
	m.Set(key, v)
	return nil
}

// Lookup follows a dotted path of keys through nested maps. The empty path
// returns m itself.
func (m *MetaMap) Lookup(path string) (MetaValue, bool) {
	var v MetaValue = m
	if path == "" {
		return v, true
	}
	for _, k := range splitPath(path) {
		mm, ok := v.(*MetaMap)
		if !ok {
			return nil, false
		}
		if v, ok = mm.Content().Get(k); !ok {
			return nil, false
		}
	}
	return v, true
}

// Metadata list
type MetaList struct {
	node
	content List[MetaValue]
}

const MetaListTag = Tag("MetaList")

func NewMetaList(items ...MetaValue) *MetaList {
	l := &MetaList{}
	l.Content().Reset(items...)
	return l
}

func (m *MetaList) Tag() Tag                   { return MetaListTag }
func (m *MetaList) meta()                      {}
func (m *MetaList) Content() *List[MetaValue] { return m.content.bind(m, "content") }

// Metadata inlines
type MetaInlines struct {
	node
	content List[Inline]
}

const MetaInlinesTag = Tag("MetaInlines")

func NewMetaInlines(content ...Inline) *MetaInlines {
	m := &MetaInlines{}
	m.Content().Reset(content...)
	return m
}

func (m *MetaInlines) Tag() Tag                { return MetaInlinesTag }
func (m *MetaInlines) meta()                   {}
func (m *MetaInlines) Content() *List[Inline] { return m.content.bind(m, "content") }

// Text returns the plain text of the inlines.
func (m *MetaInlines) Text() string { return Stringify(m, false) }

// Metadata blocks
type MetaBlocks struct {
	node
	content List[Block]
}

const MetaBlocksTag = Tag("MetaBlocks")

func NewMetaBlocks(content ...Block) *MetaBlocks {
	m := &MetaBlocks{}
	m.Content().Reset(content...)
	return m
}

func (m *MetaBlocks) Tag() Tag               { return MetaBlocksTag }
func (m *MetaBlocks) meta()                  {}
func (m *MetaBlocks) Content() *List[Block] { return m.content.bind(m, "content") }

// Metadata boolean
type MetaBool struct {
	node
	Value bool
}

const MetaBoolTag = Tag("MetaBool")

func NewMetaBool(v bool) *MetaBool { return &MetaBool{Value: v} }

func (b *MetaBool) Tag() Tag { return MetaBoolTag }
func (b *MetaBool) meta()    {}

// Metadata string
type MetaString struct {
	node
	Text string
}

const MetaStringTag = Tag("MetaString")

func NewMetaString(s string) *MetaString { return &MetaString{Text: s} }

func (s *MetaString) Tag() Tag       { return MetaStringTag }
func (s *MetaString) meta()          {}
func (s *MetaString) String() string { return s.Text }

// ToMeta converts a plain Go value into a metadata value:
//
//   - MetaValue is returned as is;
//   - bool becomes MetaBool;
//   - string, integers and floats become MetaString;
//   - Inline and []Inline become MetaInlines, Block and []Block MetaBlocks;
//   - slices and arrays become MetaList;
//   - maps with string keys become MetaMap, with keys sorted.
//
// Other values fail with a *TypeError.
func ToMeta(v any) (MetaValue, error) {
	switch v := v.(type) {
	case nil:
		return nil, &TypeError{Got: "nil", Want: "metadata value"}
	case MetaValue:
		return v, nil
	case Inline:
		return NewMetaInlines(v), nil
	case Block:
		return NewMetaBlocks(v), nil
	case []Inline:
		return NewMetaInlines(v...), nil
	case []Block:
		return NewMetaBlocks(v...), nil
	case bool:
		return NewMetaBool(v), nil
	case string:
		return NewMetaString(v), nil
	case float32:
		return NewMetaString(strconv.FormatFloat(float64(v), 'g', -1, 32)), nil
	case float64:
		return NewMetaString(strconv.FormatFloat(v, 'g', -1, 64)), nil
	case fmt.Stringer:
		return NewMetaString(v.String()), nil
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return NewMetaString(strconv.FormatInt(rv.Int(), 10)), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return NewMetaString(strconv.FormatUint(rv.Uint(), 10)), nil
	case reflect.String:
		return NewMetaString(rv.String()), nil
	case reflect.Bool:
		return NewMetaBool(rv.Bool()), nil
	case reflect.Slice, reflect.Array:
		items := make([]MetaValue, rv.Len())
		for i := range items {
			item, err := ToMeta(rv.Index(i).Interface())
			if err != nil {
				return nil, err
			}
			items[i] = item
		}
		return NewMetaList(items...), nil
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			break
		}
		keys := make([]string, 0, rv.Len())
		for _, k := range rv.MapKeys() {
			keys = append(keys, k.String())
		}
		sort.Strings(keys)
		m := NewMetaMap()
		for _, k := range keys {
			item, err := ToMeta(rv.MapIndex(reflect.ValueOf(k).Convert(rv.Type().Key())).Interface())
			if err != nil {
				return nil, err
			}
			m.Set(k, item)
		}
		return m, nil
	}
	return nil, &TypeError{Got: kindName(v), Want: "metadata value"}
}

// MetaToBuiltin converts a metadata value into plain Go values: MetaBool
// to bool, MetaString to string, MetaList to []any, MetaMap to
// map[string]any, and MetaInlines and MetaBlocks to their plain text.
func MetaToBuiltin(v MetaValue) any {
	switch v := v.(type) {
	case *MetaBool:
		return v.Value
	case *MetaString:
		return v.Text
	case *MetaList:
		items := v.Content().items
		l := make([]any, len(items))
		for i, it := range items {
			l[i] = MetaToBuiltin(it)
		}
		return l
	case *MetaMap:
		m := make(map[string]any, v.Content().Len())
		v.Content().Range(func(k string, it MetaValue) bool {
			m[k] = MetaToBuiltin(it)
			return true
		})
		return m
	case *MetaInlines, *MetaBlocks:
		return Stringify(v, true)
	}
	return nil
}
