package pandoc

import (
	"bufio"
	"bytes"
	"io"
	"math"
	"strconv"
)

type writable interface {
	write(*encoder) error
}

// encoder carries the output and the era being written.
type encoder struct {
	w   *bufio.Writer
	era Era
}

func (e *encoder) Write(p []byte) (int, error) { return e.w.Write(p) }

// interface check

var _ []Element = []Element{
	&Doc{},
	&MetaMap{},
	&MetaList{},
	&MetaInlines{},
	&MetaBlocks{},
	&MetaString{},
	&MetaBool{},

	&Str{},
	&Emph{},
	&Underline{},
	&Strong{},
	&Strikeout{},
	&Superscript{},
	&Subscript{},
	&SmallCaps{},
	&Quoted{},
	&Cite{},
	&Citation{},
	&Code{},
	&Space{},
	&SoftBreak{},
	&LineBreak{},
	&Math{},
	&RawInline{},
	&Link{},
	&Image{},
	&Note{},
	&Span{},

	&Plain{},
	&Para{},
	&LineBlock{},
	&LineItem{},
	&CodeBlock{},
	&RawBlock{},
	&BlockQuote{},
	&OrderedList{},
	&BulletList{},
	&ListItem{},
	&DefinitionList{},
	&DefinitionItem{},
	&Definition{},
	&HorizontalRule{},
	&Header{},
	&Table{},
	&Caption{},
	&TableHead{},
	&TableFoot{},
	&TableBody{},
	&TableRow{},
	&TableCell{},
	&Figure{},
	&Div{},
}

func (s *Str) write(w *encoder) error {
	return withTag(s, str(s.Text)).write(w)
}

func (s *Emph) write(w *encoder) error {
	return withTag(s, list(s.Content().items)).write(w)
}

func (s *Underline) write(w *encoder) error {
	return withTag(s, list(s.Content().items)).write(w)
}

func (s *Strong) write(w *encoder) error {
	return withTag(s, list(s.Content().items)).write(w)
}

func (s *Strikeout) write(w *encoder) error {
	return withTag(s, list(s.Content().items)).write(w)
}

func (s *Superscript) write(w *encoder) error {
	return withTag(s, list(s.Content().items)).write(w)
}

func (s *Subscript) write(w *encoder) error {
	return withTag(s, list(s.Content().items)).write(w)
}

func (s *SmallCaps) write(w *encoder) error {
	return withTag(s, list(s.Content().items)).write(w)
}

func (q *Quoted) write(w *encoder) error {
	if err := checkEnum("quote type", q.QuoteType); err != nil {
		return err
	}
	return withTag(q, tuple2(taggedStr(q.QuoteType), list(q.Content().items))).write(w)
}

func writeField[T writable](w *encoder, name string, d byte, v T) error {
	if err := writeKey(w, name); err != nil {
		return err
	}
	if err := v.write(w); err != nil {
		return err
	}
	return writeDelim(w, d)
}

func (c *Citation) write(w *encoder) error {
	if err := checkEnum("citation mode", c.Mode); err != nil {
		return err
	}
	if err := writeDelim(w, '{'); err != nil {
		return err
	}
	if err := writeField(w, "citationId", ',', str(c.Id)); err != nil {
		return err
	}
	if err := writeField(w, "citationPrefix", ',', list(c.Prefix().items)); err != nil {
		return err
	}
	if err := writeField(w, "citationSuffix", ',', list(c.Suffix().items)); err != nil {
		return err
	}
	if err := writeField(w, "citationMode", ',', taggedStr(c.Mode)); err != nil {
		return err
	}
	if err := writeField(w, "citationNoteNum", ',', num(c.NoteNum)); err != nil {
		return err
	}
	return writeField(w, "citationHash", '}', num(c.Hash))
}

func (c *Cite) write(w *encoder) error {
	return withTag(c, tuple2(list(c.Citations().items), list(c.Content().items))).write(w)
}

func (c *Code) write(w *encoder) error {
	return withTag(c, tuple2(attr(&c.Attr), str(c.Text))).write(w)
}

func (c *Space) write(w *encoder) error {
	return taggedStr(c.Tag()).write(w)
}

func (b *SoftBreak) write(w *encoder) error {
	return taggedStr(b.Tag()).write(w)
}

func (b *LineBreak) write(w *encoder) error {
	return taggedStr(b.Tag()).write(w)
}

func (m *Math) write(w *encoder) error {
	if err := checkEnum("math type", m.MathType); err != nil {
		return err
	}
	return withTag(m, tuple2(taggedStr(m.MathType), str(m.Text))).write(w)
}

func (r *RawInline) write(w *encoder) error {
	if err := checkRawFormat(r.Format); err != nil {
		return err
	}
	return withTag(r, tuple2(str(r.Format), str(r.Text))).write(w)
}

func (a KV) write(w *encoder) error {
	return tuple2(str(a.Key), str(a.Value)).write(w)
}

type wattr struct{ a *Attr }

func attr(a *Attr) wattr { return wattr{a} }

func (a wattr) write(w *encoder) error {
	return tuple3(str(a.a.Id), strList(a.a.Classes), list(a.a.KVs)).write(w)
}

func (t Target) write(w *encoder) error {
	return tuple2(str(t.Url), str(t.Title)).write(w)
}

func (l *Link) write(w *encoder) error {
	return withTag(l, tuple3(attr(&l.Attr), list(l.Content().items), l.Target)).write(w)
}

func (i *Image) write(w *encoder) error {
	return withTag(i, tuple3(attr(&i.Attr), list(i.Content().items), i.Target)).write(w)
}

func (n *Note) write(w *encoder) error {
	return withTag(n, list(n.Content().items)).write(w)
}

func (s *Span) write(w *encoder) error {
	return withTag(s, tuple2(attr(&s.Attr), list(s.Content().items))).write(w)
}

func (p *Plain) write(w *encoder) error {
	return withTag(p, list(p.Content().items)).write(w)
}

func (p *Para) write(w *encoder) error {
	return withTag(p, list(p.Content().items)).write(w)
}

func (p *LineBlock) write(w *encoder) error {
	return withTag(p, list(p.Content().items)).write(w)
}

func (p *LineItem) write(w *encoder) error {
	return list(p.Content().items).write(w)
}

func (p *CodeBlock) write(w *encoder) error {
	return withTag(p, tuple2(attr(&p.Attr), str(p.Text))).write(w)
}

func (p *RawBlock) write(w *encoder) error {
	if err := checkRawFormat(p.Format); err != nil {
		return err
	}
	return withTag(p, tuple2(str(p.Format), str(p.Text))).write(w)
}

func (p *BlockQuote) write(w *encoder) error {
	return withTag(p, list(p.Content().items)).write(w)
}

func (a ListAttrs) write(w *encoder) error {
	if err := a.validate(); err != nil {
		return err
	}
	return tuple3(num(a.Start), taggedStr(a.Style), taggedStr(a.Delimiter)).write(w)
}

func (p *OrderedList) write(w *encoder) error {
	return withTag(p, tuple2(p.ListAttrs, list(p.Content().items))).write(w)
}

func (p *BulletList) write(w *encoder) error {
	return withTag(p, list(p.Content().items)).write(w)
}

func (p *ListItem) write(w *encoder) error {
	return list(p.Content().items).write(w)
}

func (d *DefinitionItem) write(w *encoder) error {
	return tuple2(list(d.Term().items), list(d.Definitions().items)).write(w)
}

func (d *Definition) write(w *encoder) error {
	return list(d.Content().items).write(w)
}

func (p *DefinitionList) write(w *encoder) error {
	return withTag(p, list(p.Content().items)).write(w)
}

func (l *HorizontalRule) write(w *encoder) error {
	return taggedStr(l.Tag()).write(w)
}

func (p *Header) write(w *encoder) error {
	if err := checkRange("header level", p.Level, 1, 10); err != nil {
		return err
	}
	return withTag(p, tuple3(num(p.Level), attr(&p.Attr), list(p.Content().items))).write(w)
}

func (c ColWidth) write(w *encoder) error {
	if c.Default {
		return taggedStr(_ColWidthDefault).write(w)
	} else {
		if _, err := w.Write(appendFloat([]byte("{\"t\":\""+_ColWidth+"\",\"c\":"), c.Width)); err != nil {
			return err
		}
		return writeDelim(w, '}')
	}
}

func (c ColSpec) write(w *encoder) error {
	return tuple2(taggedStr(c.Align), c.Width).write(w)
}

func (r *TableCell) write(w *encoder) error {
	if err := r.validate(); err != nil {
		return err
	}
	if err := writeDelim(w, '['); err != nil {
		return err
	}
	if err := attr(&r.Attr).write(w); err != nil {
		return err
	}
	if err := writeDelim(w, ','); err != nil {
		return err
	}
	if err := taggedStr(r.Align).write(w); err != nil {
		return err
	}
	if err := writeDelim(w, ','); err != nil {
		return err
	}
	if err := num(r.RowSpan).write(w); err != nil {
		return err
	}
	if err := writeDelim(w, ','); err != nil {
		return err
	}
	if err := num(r.ColSpan).write(w); err != nil {
		return err
	}
	if err := writeDelim(w, ','); err != nil {
		return err
	}
	if err := list(r.Content().items).write(w); err != nil {
		return err
	}
	return writeDelim(w, ']')
}

func (r *TableRow) write(w *encoder) error {
	return tuple2(attr(&r.Attr), list(r.Content().items)).write(w)
}

func (h *TableHead) write(w *encoder) error {
	return tuple2(attr(&h.Attr), list(h.Content().items)).write(w)
}

func (f *TableFoot) write(w *encoder) error {
	return tuple2(attr(&f.Attr), list(f.Content().items)).write(w)
}

func (b *TableBody) write(w *encoder) error {
	if err := writeDelim(w, '['); err != nil {
		return err
	}
	if err := attr(&b.Attr).write(w); err != nil {
		return err
	}
	if err := writeDelim(w, ','); err != nil {
		return err
	}
	if err := num(b.RowHeadColumns).write(w); err != nil {
		return err
	}
	if err := writeDelim(w, ','); err != nil {
		return err
	}
	if err := list(b.Head().items).write(w); err != nil {
		return err
	}
	if err := writeDelim(w, ','); err != nil {
		return err
	}
	if err := list(b.Content().items).write(w); err != nil {
		return err
	}
	return writeDelim(w, ']')
}

func (c *Caption) write(w *encoder) error {
	return tuple2(captionShort{c.Short().items}, list(c.Content().items)).write(w)
}

func (p *Table) write(w *encoder) error {
	_, specs, err := p.layout()
	if err != nil {
		return err
	}
	if _, err := w.Write([]byte("{\"t\":\"Table\",\"c\":[")); err != nil {
		return err
	}
	if err := attr(&p.Attr).write(w); err != nil {
		return err
	}
	if err := writeDelim(w, ','); err != nil {
		return err
	}
	if err := p.Caption().write(w); err != nil {
		return err
	}
	if err := writeDelim(w, ','); err != nil {
		return err
	}
	if err := list(specs).write(w); err != nil {
		return err
	}
	if err := writeDelim(w, ','); err != nil {
		return err
	}
	if err := p.Head().write(w); err != nil {
		return err
	}
	if err := writeDelim(w, ','); err != nil {
		return err
	}
	if err := list(p.Content().items).write(w); err != nil {
		return err
	}
	if err := writeDelim(w, ','); err != nil {
		return err
	}
	if err := p.Foot().write(w); err != nil {
		return err
	}
	_, err = w.Write([]byte("]}"))
	return err
}

func (p *Figure) write(w *encoder) error {
	return withTag(p, tuple3(attr(&p.Attr), p.Caption(), list(p.Content().items))).write(w)
}

func (p *Div) write(w *encoder) error {
	return withTag(p, tuple2(attr(&p.Attr), list(p.Content().items))).write(w)
}

// -------------------

func (m *MetaInlines) write(w *encoder) error {
	return withTag(m, list(m.Content().items)).write(w)
}

func (m *MetaBlocks) write(w *encoder) error {
	return withTag(m, list(m.Content().items)).write(w)
}

func (m *MetaString) write(w *encoder) error {
	return withTag(m, str(m.Text)).write(w)
}

func (m *MetaBool) write(w *encoder) error {
	return withTag(m, wbool(m.Value)).write(w)
}

func (m *MetaList) write(w *encoder) error {
	return withTag(m, list(m.Content().items)).write(w)
}

func (m *MetaMap) write(w *encoder) error {
	return withTag(m, metaEntries{m}).write(w)
}

// metaEntries writes the key-value object of a metadata map.
type metaEntries struct{ m *MetaMap }

func (e metaEntries) write(w *encoder) error {
	if err := writeDelim(w, '{'); err != nil {
		return err
	}
	c := e.m.Content()
	for i, k := range c.keys {
		if i > 0 {
			if err := writeDelim(w, ','); err != nil {
				return err
			}
		}
		if err := writeKey(w, k); err != nil {
			return err
		}
		if err := c.values[k].write(w); err != nil {
			return err
		}
	}
	return writeDelim(w, '}')
}

// -------------------

type captionShort struct {
	inlines []Inline
}

func (c captionShort) write(w *encoder) error {
	if len(c.inlines) > 0 {
		return list(c.inlines).write(w)
	} else {
		return writeNull(w)
	}
}

func taggedStr[T ~string](t T) tstr { return tstr(t) }

// tstr is an enumeration value or a payload-less element; the legacy era
// writes an explicit empty content
type tstr string

func (s tstr) write(w *encoder) error {
	if _, err := w.Write(appendQuote([]byte("{\"t\":"), string(s))); err != nil {
		return err
	}
	if w.era == Legacy {
		if _, err := w.Write([]byte(",\"c\":[]")); err != nil {
			return err
		}
	}
	return writeDelim(w, '}')
}

func num(n int) wnum { return wnum(n) }

type wnum int64

func (n wnum) write(w *encoder) error {
	if _, err := w.Write(strconv.AppendInt(nil, int64(n), 10)); err != nil {
		return err
	}
	return nil
}

type wbool bool

func (b wbool) write(w *encoder) error {
	_, err := w.Write(strconv.AppendBool(nil, bool(b)))
	return err
}

type wlstr[T ~string] []T

func strList[T ~string](l []T) wlstr[T] { return wlstr[T](l) }
func (s wlstr[T]) write(w *encoder) error {
	if err := writeDelim(w, '['); err != nil {
		return err
	}
	for i := range s {
		if i > 0 {
			if err := writeDelim(w, ','); err != nil {
				return err
			}
		}
		if _, err := w.Write(appendQuote(nil, string(s[i]))); err != nil {
			return err
		}
	}
	return writeDelim(w, ']')
}

func str[T ~string](s T) wstr { return wstr(s) }

type wstr string

func (s wstr) write(w *encoder) error {
	_, err := w.Write(appendQuote(nil, string(s)))
	return err
}

// tuples
type t2[T1, T2 writable] struct {
	e1 T1
	e2 T2
}

func tuple2[T1, T2 writable](e1 T1, e2 T2) t2[T1, T2] {
	return t2[T1, T2]{e1, e2}
}
func (t t2[T1, T2]) write(w *encoder) error {
	if err := writeDelim(w, '['); err != nil {
		return err
	}
	if err := t.e1.write(w); err != nil {
		return err
	}
	if err := writeDelim(w, ','); err != nil {
		return err
	}
	if err := t.e2.write(w); err != nil {
		return err
	}
	return writeDelim(w, ']')
}

type t3[T1, T2, T3 writable] struct {
	e1 T1
	e2 T2
	e3 T3
}

func tuple3[T1, T2, T3 writable](e1 T1, e2 T2, e3 T3) t3[T1, T2, T3] {
	return t3[T1, T2, T3]{e1, e2, e3}
}
func (t t3[T1, T2, T3]) write(w *encoder) error {
	if err := writeDelim(w, '['); err != nil {
		return err
	}
	if err := t.e1.write(w); err != nil {
		return err
	}
	if err := writeDelim(w, ','); err != nil {
		return err
	}
	if err := t.e2.write(w); err != nil {
		return err
	}
	if err := writeDelim(w, ','); err != nil {
		return err
	}
	if err := t.e3.write(w); err != nil {
		return err
	}
	return writeDelim(w, ']')
}

func withTag[C writable](e Element, c C) t[C] {
	return t[C]{t: e.Tag(), c: c}
}

type t[C writable] struct {
	t Tag
	c C
}

func (e t[T]) write(w *encoder) error {
	if _, err := w.Write(appendQuote([]byte("{\"t\":"), string(e.t))); err != nil {
		return err
	}
	if _, err := w.Write([]byte(",\"c\":")); err != nil {
		return err
	}
	if err := e.c.write(w); err != nil {
		return err
	}
	return writeDelim(w, '}')
}

func list[T writable](lst []T) l[T] {
	return l[T](lst)
}

type l[T writable] []T

func (lst l[T]) write(w *encoder) error {
	if err := writeDelim(w, '['); err != nil {
		return err
	}
	for i := range lst {
		if i > 0 {
			if err := writeDelim(w, ','); err != nil {
				return err
			}
		}
		if err := lst[i].write(w); err != nil {
			return err
		}
	}
	return writeDelim(w, ']')
}

func writeDelim(w io.Writer, b byte) error {
	if _, err := w.Write([]byte{b}); err != nil {
		return err
	}
	return nil
}

func writeKey(wrt io.Writer, name string) error {
	if _, err := wrt.Write(appendQuote(nil, name)); err != nil {
		return err
	}
	if _, err := wrt.Write([]byte{':'}); err != nil {
		return err
	}
	return nil
}

func writeNull(wrt io.Writer) error {
	if _, err := wrt.Write([]byte("null")); err != nil {
		return err
	}
	return nil
}

// pandoc uses different exponent cutoffs than strconv.AppendFloat,
// and it also does not pad the exponent to two digits.
func appendFloat(b []byte, f float64) []byte {
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return append(b, "null"...)
	}
	abs := math.Abs(f)
	fmt := byte('f')
	if abs != 0 {
		if abs < 1e-1 || abs >= 1e21 {
			fmt = 'e'
		}
	}
	b = strconv.AppendFloat(b, f, fmt, -1, 64)
	if fmt == 'e' {
		n := len(b)
		if n >= 4 && b[n-4] == 'e' && b[n-3] == '-' && b[n-2] == '0' {
			b[n-2] = b[n-1]
			b = b[:n-1]
		}
	}
	return b
}

// appendQuote appends s as a JSON string. Control characters without a
// short escape are written as \u00XX; everything else is written as is.
func appendQuote(b []byte, s string) []byte {
	const hex = "0123456789abcdef"
	b = append(b, '"')
	start := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 0x20 && c != '"' && c != '\\' {
			continue
		}
		b = append(b, s[start:i]...)
		switch c {
		case '"', '\\':
			b = append(b, '\\', c)
		case '\b':
			b = append(b, '\\', 'b')
		case '\f':
			b = append(b, '\\', 'f')
		case '\n':
			b = append(b, '\\', 'n')
		case '\r':
			b = append(b, '\\', 'r')
		case '\t':
			b = append(b, '\\', 't')
		default:
			b = append(b, '\\', 'u', '0', '0', hex[c>>4], hex[c&0xf])
		}
		start = i + 1
	}
	b = append(b, s[start:]...)
	return append(b, '"')
}

func (p *Doc) write(w *encoder) error {
	return writeDoc(w, p.APIVersion, p.Metadata(), p.Content().items)
}

func writeDoc(w *encoder, version []int, meta *MetaMap, blocks []Block) error {
	if w.era == Legacy {
		if _, err := w.Write([]byte("[{\"unMeta\":")); err != nil {
			return err
		}
		if err := (metaEntries{meta}).write(w); err != nil {
			return err
		}
		if _, err := w.Write([]byte("},")); err != nil {
			return err
		}
		if err := list(blocks).write(w); err != nil {
			return err
		}
		return writeDelim(w, ']')
	}
	if err := checkAPIVersion(version); err != nil {
		return err
	}
	if err := writeDelim(w, '{'); err != nil {
		return err
	}
	if err := writeKey(w, "pandoc-api-version"); err != nil {
		return err
	}
	if err := writeDelim(w, '['); err != nil {
		return err
	}
	for i, n := range version {
		if i > 0 {
			if _, err := w.Write([]byte{','}); err != nil {
				return err
			}
		}
		if _, err := w.Write(strconv.AppendInt(nil, int64(n), 10)); err != nil {
			return err
		}
	}
	if err := writeDelim(w, ']'); err != nil {
		return err
	}
	if err := writeDelim(w, ','); err != nil {
		return err
	}
	if err := writeKey(w, "meta"); err != nil {
		return err
	}
	if err := (metaEntries{meta}).write(w); err != nil {
		return err
	}
	if err := writeDelim(w, ','); err != nil {
		return err
	}
	if err := writeKey(w, "blocks"); err != nil {
		return err
	}
	if err := list(blocks).write(w); err != nil {
		return err
	}
	if err := writeDelim(w, '}'); err != nil {
		return err
	}
	return nil
}

// WriteEra writes the document elt to w in the given era. Anything but a
// *Doc is a *TypeError; use WriteElement for fragments.
func WriteEra(w io.Writer, elt Element, era Era) error {
	if _, ok := elt.(*Doc); !ok {
		return &TypeError{Got: kindName(elt), Want: "Doc"}
	}
	return WriteElement(w, elt, era)
}

// WriteElement writes the JSON encoding of any element to w in the given
// era. Elements other than documents are written as they appear inside a
// document.
func WriteElement(w io.Writer, elt Element, era Era) error {
	if isNil(elt) {
		return &TypeError{Got: "nil", Want: "Element"}
	}
	e := &encoder{w: bufio.NewWriter(w), era: era}
	if err := elt.write(e); err != nil {
		return err
	}
	return e.w.Flush()
}

// Write writes the document elt to w in its own era. Anything but a *Doc
// is a *TypeError.
//
// Example:
//
//	var doc *pandoc.Doc
//	...
//	if err := pandoc.Write(os.Stdout, doc); err != nil {
//		log.Fatal(err)
//	}
func Write(w io.Writer, elt Element) error {
	d, ok := elt.(*Doc)
	if !ok || d == nil {
		return &TypeError{Got: kindName(elt), Want: "Doc"}
	}
	return WriteElement(w, d, d.Era)
}

// Marshal returns the JSON encoding of the document elt.
func Marshal(elt Element) ([]byte, error) {
	var b bytes.Buffer
	if err := Write(&b, elt); err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}

// MarshalElement returns the modern JSON encoding of any element.
func MarshalElement(elt Element) ([]byte, error) {
	var b bytes.Buffer
	if err := WriteElement(&b, elt, Modern); err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}

// WriteTo writes the document to w in its era.
func (p *Doc) WriteTo(w io.Writer) (int64, error) {
	c := &countingWriter{w: w}
	err := WriteEra(c, p, p.Era)
	return c.n, err
}

// Equal reports whether a and b are of the same kind and have the same
// content. Parents, positions and, for documents, the output format, API
// version and filter state are not compared.
func Equal(a, b Element) bool {
	if isNil(a) || isNil(b) {
		return isNil(a) && isNil(b)
	}
	if a.Tag() != b.Tag() {
		return false
	}
	if da, ok := a.(*Doc); ok {
		db := b.(*Doc)
		return Equal(da.Metadata(), db.Metadata()) && equalEncoding(list(da.Content().items), list(db.Content().items))
	}
	return equalEncoding(a, b)
}

func equalEncoding(a, b writable) bool {
	var ba, bb bytes.Buffer
	ea := &encoder{w: bufio.NewWriter(&ba)}
	eb := &encoder{w: bufio.NewWriter(&bb)}
	if a.write(ea) != nil || b.write(eb) != nil || ea.w.Flush() != nil || eb.w.Flush() != nil {
		return false
	}
	return bytes.Equal(ba.Bytes(), bb.Bytes())
}

// Clone returns a deep copy of elt. The copy is detached from any parent.
func Clone[P Element](elt P) (P, error) {
	var zero P
	if d, ok := any(elt).(*Doc); ok {
		c, err := cloneDoc(d)
		if err != nil {
			return zero, err
		}
		return any(c).(P), nil
	}
	b, err := MarshalElement(elt)
	if err != nil {
		return zero, err
	}
	e, err := decodeAs(elt.Tag(), b)
	if err != nil {
		return zero, err
	}
	return e.(P), nil
}

func cloneDoc(d *Doc) (*Doc, error) {
	version := d.APIVersion
	if len(version) == 0 {
		version = []int{1, 23}
	}
	var b bytes.Buffer
	e := &encoder{w: bufio.NewWriter(&b)}
	if err := writeDoc(e, version, d.Metadata(), d.Content().items); err != nil {
		return nil, err
	}
	if err := e.w.Flush(); err != nil {
		return nil, err
	}
	n, err := Unmarshal(b.Bytes())
	if err != nil {
		return nil, err
	}
	n.Era = d.Era
	n.Format = d.Format
	n.PandocVersion = d.PandocVersion
	n.ReaderOptions = d.ReaderOptions
	n.State = make(map[string]any, len(d.State))
	for k, v := range d.State {
		n.State[k] = v
	}
	return n, nil
}
