// Package pandoc implements a typed, navigable tree for the [Pandoc] AST as
// defined in [Pandoc Types], the JSON codec for it and a bottom-up filter
// engine for transforming documents.
//
// Every element knows its parent, the field of the parent that holds it
// and, if it is held in a sequence, its position there. The containers
// ([List] and [Map]) maintain these back references on every structural
// change, so navigation ([Next], [Prev], [Ancestor], [DocOf]) is always
// consistent with the tree.
//
// [Pandoc]: https://pandoc.org/
// [Pandoc Types]: https://hackage.haskell.org/package/pandoc-types
package pandoc

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// Implemented Pandoc protocol version.
const Version = "1.23.1"

var _Version = func() []int {
	c := strings.Split(Version, ".")
	v := make([]int, len(c))
	for i, s := range c {
		n, _ := strconv.ParseInt(s, 10, 64)
		v[i] = int(n)
	}
	return v
}()

// The oldest protocol version the codec accepts.
var minVersion = []int{1, 22}

// The newest major protocol version the codec accepts.
const maxMajorVersion = 2

// Is reports whether elt is of type P.
//
// Example:
//
//	if pandoc.Is[*pandoc.Str](elt) {
//	    ...
//
//	if pandoc.Is[pandoc.Inline](elt) {
//	    ...
func Is[P any](elt Element) bool {
	_, ok := elt.(P)
	return ok
}

// Must returns v or panics if err is not nil. It is intended for building
// trees from constants:
//
//	h := pandoc.Must(pandoc.NewHeader(1, pandoc.Attr{}, pandoc.NewStr("Intro")))
func Must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// Element is a node of the document tree.
type Element interface {
	// Tag returns the kind of the element.
	Tag() Tag
	// Parent returns the element holding this one, or nil.
	Parent() Element
	// Location returns the name of the parent's field holding this element.
	Location() string
	// Index returns the position of the element in the parent's sequence,
	// or -1 if the element is not held in a sequence.
	Index() int

	base() *node
	write(*encoder) error
}

// Pandoc AST object tag
type Tag string

func (t Tag) Tag() Tag       { return t }
func (t Tag) String() string { return string(t) }

// Pandoc AST inline element
type Inline interface {
	Element
	inline()
}

// Pandoc AST block element
type Block interface {
	Element
	block()
}

// Pandoc document metadata value
type MetaValue interface {
	Element
	meta()
}

// Pandoc AST inline's whitespaces (Space, SoftBreak, LineBreak)
type WhiteSpace interface {
	Inline
	space()
}

// InlineContainer is implemented by elements whose main children are inlines.
type InlineContainer interface {
	Element
	Content() *List[Inline]
}

// BlockContainer is implemented by elements whose main children are blocks.
type BlockContainer interface {
	Element
	Content() *List[Block]
}

// Linkable is an element that carries an identifier.
type Linkable interface {
	Element
	Ident() string
	SetIdent(string)
}

// Attributed is an element that carries attributes.
type Attributed interface {
	Linkable
	Attrs() *Attr
}

// node holds the back references shared by all elements.
type node struct {
	parent   Element
	location string
	pos      int      // index+1 in the owning sequence, 0 if not in one
	seq      sequence // owning sequence, nil if not in one
}

func (n *node) base() *node       { return n }
func (n *node) Parent() Element   { return n.parent }
func (n *node) Location() string  { return n.location }
func (n *node) Index() int        { return n.pos - 1 }
func (n *node) detach()           { *n = node{} }
func (n *node) owned(by Element, loc string) bool {
	return n.parent == by && n.location == loc
}

func (n *node) stamp(parent Element, location string, index int, seq sequence) {
	n.parent = parent
	n.location = location
	n.pos = index + 1
	n.seq = seq
}

// adopt stamps a singly held child and detaches the one it replaces.
func adopt[T Element](parent Element, location string, old, child T) T {
	if !isNil(old) && old.base().owned(parent, location) {
		old.base().detach()
	}
	if !isNil(child) {
		child.base().stamp(parent, location, -1, nil)
	}
	return child
}

func isNil(e any) bool {
	if e == nil {
		return true
	}
	v := reflect.ValueOf(e)
	return v.Kind() == reflect.Pointer && v.IsNil()
}

// kindName names the kind of an arbitrary value for error messages.
func kindName(v any) string {
	switch v := v.(type) {
	case nil:
		return "nil"
	case Element:
		if isNil(v) {
			return "nil"
		}
		return string(v.Tag())
	}
	return fmt.Sprintf("%T", v)
}

// typeName names the type parameter T for error messages.
func typeName[T any]() string {
	return strings.TrimPrefix(strings.TrimLeft(fmt.Sprintf("%T", (*T)(nil)), "*"), "pandoc.")
}

// Pandoc elements attribute' key-value pair.
type KV struct {
	Key   string
	Value string
}

// Pandoc elements attribute.
type Attr struct {
	Id      string   // Element ID
	Classes []string // Element classes
	KVs     []KV     // Element attributes' key-value pairs
}

// NewAttr builds attributes from an identifier, classes and key-value pairs
// given as alternating keys and values.
func NewAttr(id string, classes []string, pairs ...string) Attr {
	return Attr{Id: id, Classes: classes}.WithKVs(pairs...)
}

// Returns the element's ID.
func (a *Attr) Ident() string {
	return a.Id
}

// Sets the element's ID in-place.
func (a *Attr) SetIdent(id string) {
	a.Id = id
}

// Attrs returns the attributes for in-place changes.
func (a *Attr) Attrs() *Attr { return a }

// Returns a copy of attributes with the given ID.
func (a Attr) WithIdent(id string) Attr {
	a.Id = id
	return a
}

// Returns true if attribute has the given class.
func (a *Attr) HasClass(c string) bool {
	for _, cl := range a.Classes {
		if cl == c {
			return true
		}
	}
	return false
}

// Returns true if attribute has one of the given classes.
func (a *Attr) HasOneOfClasses(c ...string) bool {
	for _, cl := range a.Classes {
		for _, c := range c {
			if cl == c {
				return true
			}
		}
	}
	return false
}

// Returns a value of the given key or false if the key is not present.
func (a *Attr) Get(key string) (string, bool) {
	for _, kv := range a.KVs {
		if kv.Key == key {
			return kv.Value, true
		}
	}
	return "", false
}

// Set sets the value of key in place, keeping the position of an existing key.
func (a *Attr) Set(key, value string) {
	for i := range a.KVs {
		if a.KVs[i].Key == key {
			a.KVs[i].Value = value
			return
		}
	}
	a.KVs = append(a.KVs, KV{key, value})
}

// Delete removes key in place.
func (a *Attr) Delete(key string) {
	for i := range a.KVs {
		if a.KVs[i].Key == key {
			a.KVs = append(a.KVs[:i:i], a.KVs[i+1:]...)
			return
		}
	}
}

// Returns a copy of attributes with the given class.
func (a Attr) WithClass(c string) Attr {
	if !a.HasClass(c) {
		a.Classes = append(a.Classes[:len(a.Classes):len(a.Classes)], c)
	}
	return a
}

// Returns a copy of attributes without the given class.
func (a Attr) WithoutClass(c string) Attr {
	for i, cl := range a.Classes {
		if cl == c {
			a.Classes = append(a.Classes[:i:i], a.Classes[i+1:]...)
			return a
		}
	}
	return a
}

// Returns a copy of attributes with the given key-value pair.
func (a Attr) WithKV(key, value string) Attr {
	return a.WithKVs(key, value)
}

// Returns a copy of attributes without the given key.
func (a Attr) WithoutKey(key string) Attr {
	return a.WithoutKeys(key)
}

// Returns a copy of attributes with the given key-value pairs.
func (a Attr) WithKVs(pairs ...string) Attr {
	kvs := append(make([]KV, 0, len(a.KVs)+len(pairs)/2), a.KVs...)
next:
	for i := 0; i+1 < len(pairs); i += 2 {
		for j := range kvs {
			if kvs[j].Key == pairs[i] {
				kvs[j].Value = pairs[i+1]
				continue next
			}
		}
		kvs = append(kvs, KV{pairs[i], pairs[i+1]})
	}
	a.KVs = kvs
	return a
}

// Returns a copy of attributes without the given keys.
func (a Attr) WithoutKeys(keys ...string) Attr {
	kvs := make([]KV, 0, len(a.KVs))
next:
	for _, kv := range a.KVs {
		for _, k := range keys {
			if kv.Key == k {
				continue next
			}
		}
		kvs = append(kvs, kv)
	}
	a.KVs = kvs
	return a
}

// Map returns the key-value pairs as a map.
func (a *Attr) Map() map[string]string {
	m := make(map[string]string, len(a.KVs))
	for _, kv := range a.KVs {
		m[kv.Key] = kv.Value
	}
	return m
}

func (a *Attr) clone() Attr {
	return Attr{
		Id:      a.Id,
		Classes: append([]string(nil), a.Classes...),
		KVs:     append([]KV(nil), a.KVs...),
	}
}

type QuoteType Tag

const (
	SingleQuote QuoteType = "SingleQuote"
	DoubleQuote QuoteType = "DoubleQuote"
)

var quoteTypes = []QuoteType{SingleQuote, DoubleQuote}

func (q QuoteType) Valid() bool { return oneOf(q, quoteTypes) }

type MathType Tag

const (
	DisplayMath MathType = "DisplayMath"
	InlineMath  MathType = "InlineMath"
)

var mathTypes = []MathType{DisplayMath, InlineMath}

func (m MathType) Valid() bool { return oneOf(m, mathTypes) }

type CitationMode Tag

const (
	NormalCitation CitationMode = "NormalCitation"
	SuppressAuthor CitationMode = "SuppressAuthor"
	AuthorInText   CitationMode = "AuthorInText"
)

var citationModes = []CitationMode{AuthorInText, SuppressAuthor, NormalCitation}

func (c CitationMode) Valid() bool { return oneOf(c, citationModes) }

type ListNumberStyle Tag

const (
	DefaultStyle ListNumberStyle = "DefaultStyle"
	Example      ListNumberStyle = "Example"
	Decimal      ListNumberStyle = "Decimal"
	LowerRoman   ListNumberStyle = "LowerRoman"
	UpperRoman   ListNumberStyle = "UpperRoman"
	LowerAlpha   ListNumberStyle = "LowerAlpha"
	UpperAlpha   ListNumberStyle = "UpperAlpha"
)

var listNumberStyles = []ListNumberStyle{DefaultStyle, Example, Decimal, LowerRoman, UpperRoman, LowerAlpha, UpperAlpha}

func (s ListNumberStyle) Valid() bool { return oneOf(s, listNumberStyles) }

type ListNumberDelim Tag

const (
	DefaultDelim ListNumberDelim = "DefaultDelim"
	Period       ListNumberDelim = "Period"
	OneParen     ListNumberDelim = "OneParen"
	TwoParens    ListNumberDelim = "TwoParens"
)

var listNumberDelims = []ListNumberDelim{DefaultDelim, Period, OneParen, TwoParens}

func (d ListNumberDelim) Valid() bool { return oneOf(d, listNumberDelims) }

type Alignment Tag

const (
	AlignLeft    Alignment = "AlignLeft"
	AlignRight   Alignment = "AlignRight"
	AlignCenter  Alignment = "AlignCenter"
	AlignDefault Alignment = "AlignDefault"
)

var alignments = []Alignment{AlignLeft, AlignRight, AlignCenter, AlignDefault}

func (a Alignment) Valid() bool { return oneOf(a, alignments) }

// Formats accepted by RawInline and RawBlock.
var rawFormats = []string{
	"tex", "latex", "latex-merge", "html", "context", "rtf", "opendocument",
	"noteref", "openxml", "icml", "commonmark", "creole", "docbook", "docx",
	"dokuwiki", "epub", "fb2", "gfm", "haddock", "ipynb", "jats", "json",
	"man", "markdown", "markdown_github", "markdown_mmd", "markdown_phpextra",
	"markdown_strict", "mediawiki", "muse", "native", "odt", "opml", "org",
	"rst", "t2t", "textile", "tikiwiki", "twiki", "typst", "vimwiki",
}

// IsRawFormat reports whether f is a format accepted by raw elements.
func IsRawFormat(f string) bool { return oneOf(f, rawFormats) }

func oneOf[T comparable](v T, set []T) bool {
	for _, s := range set {
		if v == s {
			return true
		}
	}
	return false
}

// enum is implemented by the closed string domains above.
type enum interface {
	~string
	Valid() bool
}

func checkEnum[T enum](field string, v T) error {
	if v.Valid() {
		return nil
	}
	return &ValueError{Field: field, Value: string(v), Expected: fmt.Sprintf("one of %v", domainOf(v))}
}

func domainOf(v any) any {
	switch v.(type) {
	case QuoteType:
		return quoteTypes
	case MathType:
		return mathTypes
	case CitationMode:
		return citationModes
	case ListNumberStyle:
		return listNumberStyles
	case ListNumberDelim:
		return listNumberDelims
	case Alignment:
		return alignments
	}
	return nil
}

func checkRawFormat(format string) error {
	if IsRawFormat(format) {
		return nil
	}
	return &ValueError{Field: "raw format", Value: format, Expected: "a known output format"}
}

func checkRange(field string, v, lo, hi int) error {
	if v < lo || v > hi {
		if hi == maxInt {
			return &ValueError{Field: field, Value: v, Expected: fmt.Sprintf("at least %d", lo)}
		}
		return &ValueError{Field: field, Value: v, Expected: fmt.Sprintf("between %d and %d", lo, hi)}
	}
	return nil
}

const maxInt = int(^uint(0) >> 1)
