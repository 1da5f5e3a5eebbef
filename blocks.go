package pandoc

import "strings"

// Plain text, not a paragraph
type Plain struct {
	node
	content List[Inline]
}

const PlainTag = Tag("Plain")

func NewPlain(content ...Inline) *Plain {
	p := &Plain{}
	p.Content().Reset(content...)
	return p
}

func (p *Plain) Tag() Tag                { return PlainTag }
func (p *Plain) block()                  {}
func (p *Plain) Content() *List[Inline] { return p.content.bind(p, "content") }

// Paragraph
type Para struct {
	node
	content List[Inline]
}

const ParaTag = Tag("Para")

func NewPara(content ...Inline) *Para {
	p := &Para{}
	p.Content().Reset(content...)
	return p
}

func (p *Para) Tag() Tag                { return ParaTag }
func (p *Para) block()                  {}
func (p *Para) Content() *List[Inline] { return p.content.bind(p, "content") }

// Multiple non-breaking lines
type LineBlock struct {
	node
	content List[*LineItem]
}

const LineBlockTag = Tag("LineBlock")

func NewLineBlock(lines ...*LineItem) *LineBlock {
	l := &LineBlock{}
	l.Content().Reset(lines...)
	return l
}

func (l *LineBlock) Tag() Tag                   { return LineBlockTag }
func (l *LineBlock) block()                     {}
func (l *LineBlock) Content() *List[*LineItem] { return l.content.bind(l, "content") }

// A line of a LineBlock
type LineItem struct {
	node
	content List[Inline]
}

const LineItemTag = Tag("LineItem")

func NewLineItem(content ...Inline) *LineItem {
	l := &LineItem{}
	l.Content().Reset(content...)
	return l
}

func (l *LineItem) Tag() Tag                { return LineItemTag }
func (l *LineItem) Content() *List[Inline] { return l.content.bind(l, "content") }

// Code block (literal) with attributes
type CodeBlock struct {
	node
	Attr
	Text string
}

const CodeBlockTag = Tag("CodeBlock")

func NewCodeBlock(text string, attr Attr) *CodeBlock {
	return &CodeBlock{Attr: attr, Text: text}
}

func (c *CodeBlock) Tag() Tag { return CodeBlockTag }
func (c *CodeBlock) block()   {}

// Raw block
type RawBlock struct {
	node
	Format string
	Text   string
}

const RawBlockTag = Tag("RawBlock")

func NewRawBlock(format, text string) (*RawBlock, error) {
	if err := checkRawFormat(format); err != nil {
		return nil, err
	}
	return &RawBlock{Format: format, Text: text}, nil
}

func (r *RawBlock) Tag() Tag { return RawBlockTag }
func (r *RawBlock) block()   {}

// Block quote (list of blocks)
type BlockQuote struct {
	node
	content List[Block]
}

const BlockQuoteTag = Tag("BlockQuote")

func NewBlockQuote(content ...Block) *BlockQuote {
	b := &BlockQuote{}
	b.Content().Reset(content...)
	return b
}

func (b *BlockQuote) Tag() Tag               { return BlockQuoteTag }
func (b *BlockQuote) block()                 {}
func (b *BlockQuote) Content() *List[Block] { return b.content.bind(b, "content") }

// Ordered list numbering
type ListAttrs struct {
	Start     int
	Style     ListNumberStyle
	Delimiter ListNumberDelim
}

// DefaultListAttrs numbers from 1 with the default style and delimiter.
var DefaultListAttrs = ListAttrs{Start: 1, Style: DefaultStyle, Delimiter: DefaultDelim}

func (a ListAttrs) validate() error {
	if err := checkEnum("list number style", a.Style); err != nil {
		return err
	}
	return checkEnum("list number delimiter", a.Delimiter)
}

// Ordered list (attributes and a list of items, each a list of blocks)
type OrderedList struct {
	node
	ListAttrs
	content List[*ListItem]
}

const OrderedListTag = Tag("OrderedList")

func NewOrderedList(attrs ListAttrs, items ...*ListItem) (*OrderedList, error) {
	if err := attrs.validate(); err != nil {
		return nil, err
	}
	l := &OrderedList{ListAttrs: attrs}
	l.Content().Reset(items...)
	return l, nil
}

func (l *OrderedList) Tag() Tag                   { return OrderedListTag }
func (l *OrderedList) block()                     {}
func (l *OrderedList) Content() *List[*ListItem] { return l.content.bind(l, "content") }

// Bullet list (list of items, each a list of blocks)
type BulletList struct {
	node
	content List[*ListItem]
}

const BulletListTag = Tag("BulletList")

func NewBulletList(items ...*ListItem) *BulletList {
	l := &BulletList{}
	l.Content().Reset(items...)
	return l
}

func (l *BulletList) Tag() Tag                   { return BulletListTag }
func (l *BulletList) block()                     {}
func (l *BulletList) Content() *List[*ListItem] { return l.content.bind(l, "content") }

// An item of an ordered or bullet list
type ListItem struct {
	node
	content List[Block]
}

const ListItemTag = Tag("ListItem")

func NewListItem(content ...Block) *ListItem {
	l := &ListItem{}
	l.Content().Reset(content...)
	return l
}

func (l *ListItem) Tag() Tag               { return ListItemTag }
func (l *ListItem) Content() *List[Block] { return l.content.bind(l, "content") }

// Definition list (list of items, each a pair of inlines and a list of blocks)
type DefinitionList struct {
	node
	content List[*DefinitionItem]
}

const DefinitionListTag = Tag("DefinitionList")

func NewDefinitionList(items ...*DefinitionItem) *DefinitionList {
	d := &DefinitionList{}
	d.Content().Reset(items...)
	return d
}

func (d *DefinitionList) Tag() Tag                         { return DefinitionListTag }
func (d *DefinitionList) block()                           {}
func (d *DefinitionList) Content() *List[*DefinitionItem] { return d.content.bind(d, "content") }

// A term and its definitions
type DefinitionItem struct {
	node
	term        List[Inline]
	definitions List[*Definition]
}

const DefinitionItemTag = Tag("DefinitionItem")

func NewDefinitionItem(term []Inline, definitions ...*Definition) *DefinitionItem {
	d := &DefinitionItem{}
	d.Term().Reset(term...)
	d.Definitions().Reset(definitions...)
	return d
}

func (d *DefinitionItem) Tag() Tag                       { return DefinitionItemTag }
func (d *DefinitionItem) Term() *List[Inline]           { return d.term.bind(d, "term") }
func (d *DefinitionItem) Definitions() *List[*Definition] { return d.definitions.bind(d, "definitions") }

// A single definition of a term
type Definition struct {
	node
	content List[Block]
}

const DefinitionTag = Tag("Definition")

func NewDefinition(content ...Block) *Definition {
	d := &Definition{}
	d.Content().Reset(content...)
	return d
}

func (d *Definition) Tag() Tag               { return DefinitionTag }
func (d *Definition) Content() *List[Block] { return d.content.bind(d, "content") }

// Horizontal rule
type HorizontalRule struct{ node }

const HorizontalRuleTag = Tag("HorizontalRule")

func NewHorizontalRule() *HorizontalRule { return &HorizontalRule{} }

func (*HorizontalRule) Tag() Tag { return HorizontalRuleTag }
func (*HorizontalRule) block()   {}

// Header - level (integer) and text (inlines)
type Header struct {
	node
	Attr
	Level   int
	content List[Inline]
}

const HeaderTag = Tag("Header")

func NewHeader(level int, attr Attr, content ...Inline) (*Header, error) {
	if err := checkRange("header level", level, 1, 10); err != nil {
		return nil, err
	}
	h := &Header{Attr: attr, Level: level}
	h.Content().Reset(content...)
	return h, nil
}

func (h *Header) Tag() Tag                { return HeaderTag }
func (h *Header) block()                  {}
func (h *Header) Content() *List[Inline] { return h.content.bind(h, "content") }

// Title returns the plain text of the header.
func (h *Header) Title() string {
	var sb strings.Builder
	for _, i := range h.Content().items {
		stringifyInto(&sb, i, false)
	}
	return sb.String()
}

// Figure with attributes, caption, and content (list of blocks)
type Figure struct {
	node
	Attr
	caption *Caption
	content List[Block]
}

const FigureTag = Tag("Figure")

func NewFigure(attr Attr, caption *Caption, content ...Block) *Figure {
	f := &Figure{Attr: attr}
	f.SetCaption(caption)
	f.Content().Reset(content...)
	return f
}

func (f *Figure) Tag() Tag               { return FigureTag }
func (f *Figure) block()                 {}
func (f *Figure) Content() *List[Block] { return f.content.bind(f, "content") }

// Caption returns the figure caption.
func (f *Figure) Caption() *Caption {
	if f.caption == nil {
		f.caption = adopt[*Caption](f, "caption", nil, NewCaption(nil))
	}
	return f.caption
}

// SetCaption replaces the figure caption. A nil caption is replaced by an
// empty one.
func (f *Figure) SetCaption(c *Caption) {
	if c == nil {
		c = NewCaption(nil)
	}
	f.caption = adopt(f, "caption", f.caption, c)
}

// Generic block container with attributes
type Div struct {
	node
	Attr
	content List[Block]
}

const DivTag = Tag("Div")

func NewDiv(attr Attr, content ...Block) *Div {
	d := &Div{Attr: attr}
	d.Content().Reset(content...)
	return d
}

func (d *Div) Tag() Tag               { return DivTag }
func (d *Div) block()                 {}
func (d *Div) Content() *List[Block] { return d.content.bind(d, "content") }
