package pandoc

// Text (string)
type Str struct {
	node
	Text string
}

const StrTag = Tag("Str")

func NewStr(text string) *Str { return &Str{Text: text} }

func (s *Str) Tag() Tag { return StrTag }
func (s *Str) inline()  {}

// Emphasized text (list of inlines)
type Emph struct {
	node
	content List[Inline]
}

const EmphTag = Tag("Emph")

func NewEmph(content ...Inline) *Emph {
	e := &Emph{}
	e.Content().Reset(content...)
	return e
}

func (e *Emph) Tag() Tag                { return EmphTag }
func (e *Emph) inline()                 {}
func (e *Emph) Content() *List[Inline] { return e.content.bind(e, "content") }

// Underlined text (list of inlines)
type Underline struct {
	node
	content List[Inline]
}

const UnderlineTag = Tag("Underline")

func NewUnderline(content ...Inline) *Underline {
	u := &Underline{}
	u.Content().Reset(content...)
	return u
}

func (u *Underline) Tag() Tag                { return UnderlineTag }
func (u *Underline) inline()                 {}
func (u *Underline) Content() *List[Inline] { return u.content.bind(u, "content") }

// Strongly emphasized text (list of inlines)
type Strong struct {
	node
	content List[Inline]
}

const StrongTag = Tag("Strong")

func NewStrong(content ...Inline) *Strong {
	s := &Strong{}
	s.Content().Reset(content...)
	return s
}

func (s *Strong) Tag() Tag                { return StrongTag }
func (s *Strong) inline()                 {}
func (s *Strong) Content() *List[Inline] { return s.content.bind(s, "content") }

// Strikeout text (list of inlines)
type Strikeout struct {
	node
	content List[Inline]
}

const StrikeoutTag = Tag("Strikeout")

func NewStrikeout(content ...Inline) *Strikeout {
	s := &Strikeout{}
	s.Content().Reset(content...)
	return s
}

func (s *Strikeout) Tag() Tag                { return StrikeoutTag }
func (s *Strikeout) inline()                 {}
func (s *Strikeout) Content() *List[Inline] { return s.content.bind(s, "content") }

// Superscripted text (list of inlines)
type Superscript struct {
	node
	content List[Inline]
}

const SuperscriptTag = Tag("Superscript")

func NewSuperscript(content ...Inline) *Superscript {
	s := &Superscript{}
	s.Content().Reset(content...)
	return s
}

func (s *Superscript) Tag() Tag                { return SuperscriptTag }
func (s *Superscript) inline()                 {}
func (s *Superscript) Content() *List[Inline] { return s.content.bind(s, "content") }

// Subscripted text (list of inlines)
type Subscript struct {
	node
	content List[Inline]
}

const SubscriptTag = Tag("Subscript")

func NewSubscript(content ...Inline) *Subscript {
	s := &Subscript{}
	s.Content().Reset(content...)
	return s
}

func (s *Subscript) Tag() Tag                { return SubscriptTag }
func (s *Subscript) inline()                 {}
func (s *Subscript) Content() *List[Inline] { return s.content.bind(s, "content") }

// Small caps text (list of inlines)
type SmallCaps struct {
	node
	content List[Inline]
}

const SmallCapsTag = Tag("SmallCaps")

func NewSmallCaps(content ...Inline) *SmallCaps {
	s := &SmallCaps{}
	s.Content().Reset(content...)
	return s
}

func (s *SmallCaps) Tag() Tag                { return SmallCapsTag }
func (s *SmallCaps) inline()                 {}
func (s *SmallCaps) Content() *List[Inline] { return s.content.bind(s, "content") }

// Quoted text (list of inlines)
type Quoted struct {
	node
	QuoteType QuoteType
	content   List[Inline]
}

const QuotedTag = Tag("Quoted")

func NewQuoted(qt QuoteType, content ...Inline) (*Quoted, error) {
	if err := checkEnum("quote type", qt); err != nil {
		return nil, err
	}
	q := &Quoted{QuoteType: qt}
	q.Content().Reset(content...)
	return q, nil
}

func (q *Quoted) Tag() Tag                { return QuotedTag }
func (q *Quoted) inline()                 {}
func (q *Quoted) Content() *List[Inline] { return q.content.bind(q, "content") }

// A single reference of a citation
type Citation struct {
	node
	Id      string
	Mode    CitationMode
	NoteNum int
	Hash    int
	prefix  List[Inline]
	suffix  List[Inline]
}

const CitationTag = Tag("Citation")

func NewCitation(id string, mode CitationMode) (*Citation, error) {
	if err := checkEnum("citation mode", mode); err != nil {
		return nil, err
	}
	return &Citation{Id: id, Mode: mode}, nil
}

func (c *Citation) Tag() Tag               { return CitationTag }
func (c *Citation) Prefix() *List[Inline] { return c.prefix.bind(c, "prefix") }
func (c *Citation) Suffix() *List[Inline] { return c.suffix.bind(c, "suffix") }

// Citation (list of inlines)
type Cite struct {
	node
	content   List[Inline]
	citations List[*Citation]
}

const CiteTag = Tag("Cite")

func NewCite(citations []*Citation, content ...Inline) *Cite {
	c := &Cite{}
	c.Citations().Reset(citations...)
	c.Content().Reset(content...)
	return c
}

func (c *Cite) Tag() Tag                     { return CiteTag }
func (c *Cite) inline()                      {}
func (c *Cite) Content() *List[Inline]      { return c.content.bind(c, "content") }
func (c *Cite) Citations() *List[*Citation] { return c.citations.bind(c, "citations") }

// Inline code (literal)
type Code struct {
	node
	Attr
	Text string
}

const CodeTag = Tag("Code")

func NewCode(text string, attr Attr) *Code { return &Code{Attr: attr, Text: text} }

func (c *Code) Tag() Tag { return CodeTag }
func (c *Code) inline()  {}

// Inter-word space
type Space struct{ node }

const SpaceTag = Tag("Space")

func NewSpace() *Space { return &Space{} }

func (*Space) Tag() Tag { return SpaceTag }
func (*Space) space()   {}
func (*Space) inline()  {}

// Soft line break
type SoftBreak struct{ node }

const SoftBreakTag = Tag("SoftBreak")

func NewSoftBreak() *SoftBreak { return &SoftBreak{} }

func (*SoftBreak) Tag() Tag { return SoftBreakTag }
func (*SoftBreak) space()   {}
func (*SoftBreak) inline()  {}

// Hard line break
type LineBreak struct{ node }

const LineBreakTag = Tag("LineBreak")

func NewLineBreak() *LineBreak { return &LineBreak{} }

func (*LineBreak) Tag() Tag { return LineBreakTag }
func (*LineBreak) space()   {}
func (*LineBreak) inline()  {}

// TeX math (literal)
type Math struct {
	node
	MathType MathType
	Text     string
}

const MathTag = Tag("Math")

func NewMath(mt MathType, text string) (*Math, error) {
	if err := checkEnum("math type", mt); err != nil {
		return nil, err
	}
	return &Math{MathType: mt, Text: text}, nil
}

func (m *Math) Tag() Tag { return MathTag }
func (m *Math) inline()  {}

// Raw inline
type RawInline struct {
	node
	Format string
	Text   string
}

const RawInlineTag = Tag("RawInline")

func NewRawInline(format, text string) (*RawInline, error) {
	if err := checkRawFormat(format); err != nil {
		return nil, err
	}
	return &RawInline{Format: format, Text: text}, nil
}

func (r *RawInline) Tag() Tag { return RawInlineTag }
func (r *RawInline) inline()  {}

// Link or image target
type Target struct {
	Url   string
	Title string
}

// Hyperlink: alt text (list of inlines), target
type Link struct {
	node
	Attr
	Target  Target
	content List[Inline]
}

const LinkTag = Tag("Link")

func NewLink(target Target, attr Attr, content ...Inline) *Link {
	l := &Link{Attr: attr, Target: target}
	l.Content().Reset(content...)
	return l
}

func (l *Link) Tag() Tag                { return LinkTag }
func (l *Link) inline()                 {}
func (l *Link) Content() *List[Inline] { return l.content.bind(l, "content") }

// Image: alt text (list of inlines), target
type Image struct {
	node
	Attr
	Target  Target
	content List[Inline]
}

const ImageTag = Tag("Image")

func NewImage(target Target, attr Attr, content ...Inline) *Image {
	i := &Image{Attr: attr, Target: target}
	i.Content().Reset(content...)
	return i
}

func (i *Image) Tag() Tag                { return ImageTag }
func (i *Image) inline()                 {}
func (i *Image) Content() *List[Inline] { return i.content.bind(i, "content") }

// Footnote or endnote
type Note struct {
	node
	content List[Block]
}

const NoteTag = Tag("Note")

func NewNote(content ...Block) *Note {
	n := &Note{}
	n.Content().Reset(content...)
	return n
}

func (n *Note) Tag() Tag               { return NoteTag }
func (n *Note) inline()                {}
func (n *Note) Content() *List[Block] { return n.content.bind(n, "content") }

// Generic inline container with attributes
type Span struct {
	node
	Attr
	content List[Inline]
}

const SpanTag = Tag("Span")

func NewSpan(attr Attr, content ...Inline) *Span {
	s := &Span{Attr: attr}
	s.Content().Reset(content...)
	return s
}

func (s *Span) Tag() Tag                { return SpanTag }
func (s *Span) inline()                 {}
func (s *Span) Content() *List[Inline] { return s.content.bind(s, "content") }
