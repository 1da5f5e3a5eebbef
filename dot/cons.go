// Package dot provides terse constructors for building document trees in
// code and tests. Constructors that validate their arguments panic on
// invalid input.
package dot

import pandoc "github.com/growler/go-panflute"

var (
	Continue = pandoc.Continue
	Delete   = pandoc.Delete
	Replace  = pandoc.Replace
)

func Blocks(b ...pandoc.Block) []pandoc.Block {
	return b
}

func Inlines(i ...pandoc.Inline) []pandoc.Inline {
	return i
}

// Document with the given blocks
func Doc(b ...pandoc.Block) *pandoc.Doc {
	return pandoc.NewDoc(b...)
}

// Text (string)
func Str(s string) *pandoc.Str {
	return pandoc.NewStr(s)
}

// Words separated by spaces
func Text(words ...string) []pandoc.Inline {
	var res []pandoc.Inline
	for i, w := range words {
		if i > 0 {
			res = append(res, pandoc.NewSpace())
		}
		res = append(res, pandoc.NewStr(w))
	}
	return res
}

// Emphasized text (list of inlines)
func Emph(i ...pandoc.Inline) *pandoc.Emph {
	return pandoc.NewEmph(i...)
}

// Underlined text (list of inlines)
func Underline(i ...pandoc.Inline) *pandoc.Underline {
	return pandoc.NewUnderline(i...)
}

// Strongly emphasized text (list of inlines)
func Strong(i ...pandoc.Inline) *pandoc.Strong {
	return pandoc.NewStrong(i...)
}

// Strikeout text (list of inlines)
func Strikeout(i ...pandoc.Inline) *pandoc.Strikeout {
	return pandoc.NewStrikeout(i...)
}

// Superscripted text (list of inlines)
func Superscript(i ...pandoc.Inline) *pandoc.Superscript {
	return pandoc.NewSuperscript(i...)
}

// Subscripted text (list of inlines)
func Subscript(i ...pandoc.Inline) *pandoc.Subscript {
	return pandoc.NewSubscript(i...)
}

// Small capitals (list of inlines)
func SmallCaps(i ...pandoc.Inline) *pandoc.SmallCaps {
	return pandoc.NewSmallCaps(i...)
}

const (
	DoubleQuote = pandoc.DoubleQuote
	SingleQuote = pandoc.SingleQuote
)

// Quoted text (list of inlines). The first argument is the quote type.
func Quoted(t pandoc.QuoteType, i ...pandoc.Inline) *pandoc.Quoted {
	return pandoc.Must(pandoc.NewQuoted(t, i...))
}

const (
	NormalCitation = pandoc.NormalCitation
	SuppressAuthor = pandoc.SuppressAuthor
	AuthorInText   = pandoc.AuthorInText
)

func Citation(id string, mode pandoc.CitationMode, noteNum int, prefix, suffix []pandoc.Inline) *pandoc.Citation {
	c := pandoc.Must(pandoc.NewCitation(id, mode))
	c.NoteNum = noteNum
	c.Prefix().Reset(prefix...)
	c.Suffix().Reset(suffix...)
	return c
}

// Citation (list of inlines as citation text).
func Cite(c []*pandoc.Citation, i ...pandoc.Inline) *pandoc.Cite {
	return pandoc.NewCite(c, i...)
}

// Inline code (literal). The first argument is the span attributes.
func Code(attr pandoc.Attr, text string) *pandoc.Code {
	return pandoc.NewCode(text, attr)
}

// Inter-word space
func Space() *pandoc.Space { return pandoc.NewSpace() }

// Soft line break
func SoftBreak() *pandoc.SoftBreak { return pandoc.NewSoftBreak() }

// Hard line break
func LineBreak() *pandoc.LineBreak { return pandoc.NewLineBreak() }

const (
	DisplayMath = pandoc.DisplayMath
	InlineMath  = pandoc.InlineMath
)

// TeX math (literal). The first argument is the math type.
func Math(t pandoc.MathType, text string) *pandoc.Math {
	return pandoc.Must(pandoc.NewMath(t, text))
}

// Raw inline (literal). The first argument is the format
// the literal must be export in.
func RawInline(format string, text string) *pandoc.RawInline {
	return pandoc.Must(pandoc.NewRawInline(format, text))
}

// Link (list of inlines as link text).
func Link(attr pandoc.Attr, url string, title string, i ...pandoc.Inline) *pandoc.Link {
	return pandoc.NewLink(pandoc.Target{Url: url, Title: title}, attr, i...)
}

// Image (list of inlines as alternate text).
func Image(attr pandoc.Attr, url string, title string, i ...pandoc.Inline) *pandoc.Image {
	return pandoc.NewImage(pandoc.Target{Url: url, Title: title}, attr, i...)
}

// Footnote or endnote (list of blocks)
func Note(i ...pandoc.Block) *pandoc.Note {
	return pandoc.NewNote(i...)
}

// Generic inline container with attributes.
func Span(attr pandoc.Attr, i ...pandoc.Inline) *pandoc.Span {
	return pandoc.NewSpan(attr, i...)
}

// Horizontal rule.
func HorizontalRule() *pandoc.HorizontalRule {
	return pandoc.NewHorizontalRule()
}

var NoAttr = pandoc.Attr{}

func KVs(kvs ...string) []pandoc.KV {
	var res = make([]pandoc.KV, 0, len(kvs)/2)
	for i := 0; i < len(kvs)-1; i += 2 {
		res = append(res, pandoc.KV{Key: kvs[i], Value: kvs[i+1]})
	}
	return res
}

func Attr(id string, classes ...string) pandoc.Attr {
	return pandoc.Attr{Id: id, Classes: classes}
}

func AttrKVs(id string, kvs []pandoc.KV, classes ...string) pandoc.Attr {
	return pandoc.Attr{Id: id, Classes: classes, KVs: kvs}
}

func Plain(i ...pandoc.Inline) *pandoc.Plain {
	return pandoc.NewPlain(i...)
}

func Para(i ...pandoc.Inline) *pandoc.Para {
	return pandoc.NewPara(i...)
}

// Line block, one list of inlines per line
func LineBlock(lines ...[]pandoc.Inline) *pandoc.LineBlock {
	items := make([]*pandoc.LineItem, len(lines))
	for i, l := range lines {
		items[i] = pandoc.NewLineItem(l...)
	}
	return pandoc.NewLineBlock(items...)
}

func BlockQuote(b ...pandoc.Block) *pandoc.BlockQuote {
	return pandoc.NewBlockQuote(b...)
}

func items(i [][]pandoc.Block) []*pandoc.ListItem {
	res := make([]*pandoc.ListItem, len(i))
	for j, b := range i {
		res[j] = pandoc.NewListItem(b...)
	}
	return res
}

func BulletList(i ...[]pandoc.Block) *pandoc.BulletList {
	return pandoc.NewBulletList(items(i)...)
}

// Ordered list numbered from start with the default style and delimiter
func OrderedList(start int, i ...[]pandoc.Block) *pandoc.OrderedList {
	attrs := pandoc.DefaultListAttrs
	attrs.Start = start
	return pandoc.Must(pandoc.NewOrderedList(attrs, items(i)...))
}

// Definition list item: a term and its definitions
func Definition(term []pandoc.Inline, defs ...[]pandoc.Block) *pandoc.DefinitionItem {
	d := make([]*pandoc.Definition, len(defs))
	for i, b := range defs {
		d[i] = pandoc.NewDefinition(b...)
	}
	return pandoc.NewDefinitionItem(term, d...)
}

func DefinitionList(i ...*pandoc.DefinitionItem) *pandoc.DefinitionList {
	return pandoc.NewDefinitionList(i...)
}

func CodeBlock(attr pandoc.Attr, text string) *pandoc.CodeBlock {
	return pandoc.NewCodeBlock(text, attr)
}

func Div(attr pandoc.Attr, i ...pandoc.Block) *pandoc.Div {
	return pandoc.NewDiv(attr, i...)
}

func Header(level int, attr pandoc.Attr, i ...pandoc.Inline) *pandoc.Header {
	return pandoc.Must(pandoc.NewHeader(level, attr, i...))
}

func RawBlock(format string, text string) *pandoc.RawBlock {
	return pandoc.Must(pandoc.NewRawBlock(format, text))
}

func Figure(attr pandoc.Attr, caption []pandoc.Block, i ...pandoc.Block) *pandoc.Figure {
	return pandoc.NewFigure(attr, pandoc.NewCaption(nil, caption...), i...)
}

// Table cell with default alignment and spans
func Cell(b ...pandoc.Block) *pandoc.TableCell {
	return pandoc.NewTableCell(b...)
}

// Table cell spanning rows and columns
func SpanCell(rows, cols int, b ...pandoc.Block) *pandoc.TableCell {
	return pandoc.Must(pandoc.NewSpanningCell(pandoc.Attr{}, pandoc.AlignDefault, rows, cols, b...))
}

func Row(c ...*pandoc.TableCell) *pandoc.TableRow {
	return pandoc.NewTableRow(pandoc.Attr{}, c...)
}

// Table with an optional head row and a single body; column
// specifications are defaulted.
func Table(head *pandoc.TableRow, rows ...*pandoc.TableRow) *pandoc.Table {
	var h *pandoc.TableHead
	if head != nil {
		h = pandoc.NewTableHead(pandoc.Attr{}, head)
	}
	body := pandoc.Must(pandoc.NewTableBody(pandoc.Attr{}, 0, nil, rows...))
	return pandoc.Must(pandoc.NewTable(pandoc.Attr{}, nil, nil, h, []*pandoc.TableBody{body}, nil))
}

// Walk helpers

func On[E pandoc.Element](f func(E, *pandoc.Doc) ([]pandoc.Element, error)) pandoc.Action {
	return pandoc.On[E](f)
}

func Query[P any](elt pandoc.Element, fun func(P)) {
	pandoc.Query[P](elt, fun)
}

func Stringify(e pandoc.Element) string {
	return pandoc.Stringify(e, true)
}
