package pandoc

import (
	"bytes"
	"fmt"
	"io"
	"math"
)

// ----------- dispatch -------------

// elementReaders read the rest of a tagged object after its tag, either
// `,"c":payload}` or `}` for payload-less elements.
var elementReaders map[Tag]func(*scanner) (Element, error)

// structReaders read untagged sub-structures from their wire form.
var structReaders map[Tag]func(*scanner) (Element, error)

func init() {
	elementReaders = map[Tag]func(*scanner) (Element, error){
		StrTag:         obj(readStr),
		EmphTag:        obj(readEmph),
		UnderlineTag:   obj(readUnderline),
		StrongTag:      obj(readStrong),
		StrikeoutTag:   obj(readStrikeout),
		SuperscriptTag: obj(readSuperscript),
		SubscriptTag:   obj(readSubscript),
		SmallCapsTag:   obj(readSmallCaps),
		QuotedTag:      obj(readQuoted),
		CiteTag:        obj(readCite),
		CodeTag:        obj(readCode),
		SpaceTag:       empty(NewSpace),
		SoftBreakTag:   empty(NewSoftBreak),
		LineBreakTag:   empty(NewLineBreak),
		MathTag:        obj(readMath),
		RawInlineTag:   obj(readRawInline),
		LinkTag:        obj(readLink),
		ImageTag:       obj(readImage),
		NoteTag:        obj(readNote),
		SpanTag:        obj(readSpan),

		PlainTag:          obj(readPlain),
		ParaTag:           obj(readPara),
		LineBlockTag:      obj(readLineBlock),
		CodeBlockTag:      obj(readCodeBlock),
		RawBlockTag:       obj(readRawBlock),
		BlockQuoteTag:     obj(readBlockQuote),
		OrderedListTag:    obj(readOrderedList),
		BulletListTag:     obj(readBulletList),
		DefinitionListTag: obj(readDefinitionList),
		HeaderTag:         obj(readHeader),
		HorizontalRuleTag: empty(NewHorizontalRule),
		TableTag:          obj(readTable),
		FigureTag:         obj(readFigure),
		DivTag:            obj(readDiv),

		MetaMapTag:     obj(readMetaMap),
		MetaListTag:    obj(readMetaList),
		MetaBoolTag:    obj(readMetaBool),
		MetaStringTag:  obj(readMetaString),
		MetaInlinesTag: obj(readMetaInlines),
		MetaBlocksTag:  obj(readMetaBlocks),
	}
	structReaders = map[Tag]func(*scanner) (Element, error){
		CitationTag:       as(readCitation),
		ListItemTag:       as(readListItem),
		LineItemTag:       as(readLineItem),
		DefinitionItemTag: as(readDefinitionItem),
		DefinitionTag:     as(readDefinition),
		CaptionTag:        as(readCaption),
		TableHeadTag:      as(readTableHead),
		TableFootTag:      as(readTableFoot),
		TableBodyTag:      as(readTableBody),
		TableRowTag:       as(readTableRow),
		TableCellTag:      as(readTableCell),
	}
}

// obj adapts a payload reader to an element reader.
func obj[T Element](r func(*scanner) (T, error)) func(*scanner) (Element, error) {
	rd := readObj(r)
	return func(s *scanner) (Element, error) {
		v, err := rd(s)
		if err != nil {
			return nil, err
		}
		return v, nil
	}
}

// empty adapts a constructor of a payload-less element to an element reader.
func empty[T Element](f func() T) func(*scanner) (Element, error) {
	return func(s *scanner) (Element, error) {
		if err := readEmptyObj(s); err != nil {
			return nil, err
		}
		return f(), nil
	}
}

func as[T Element](r func(*scanner) (T, error)) func(*scanner) (Element, error) {
	return func(s *scanner) (Element, error) {
		v, err := r(s)
		if err != nil {
			return nil, err
		}
		return v, nil
	}
}

// reads a tagged element of any kind
func readElement(s *scanner) (Element, error) {
	tag, err := readTag(s)
	if err != nil {
		return nil, err
	}
	r, ok := elementReaders[tag]
	if !ok {
		return nil, s.errorf("unknown element type %q", tag)
	}
	return r(s)
}

// reads a tagged element of kind T
func readKind[T Element](s *scanner) (T, error) {
	var zero T
	off := s.current()
	e, err := readElement(s)
	if err != nil {
		return zero, err
	}
	v, ok := e.(T)
	if !ok {
		return zero, &DecodeError{Offset: off, Err: &TypeError{Got: string(e.Tag()), Want: typeName[T]()}}
	}
	return v, nil
}

func readInline(s *scanner) (Inline, error)       { return readKind[Inline](s) }
func readBlock(s *scanner) (Block, error)         { return readKind[Block](s) }
func readMetaValue(s *scanner) (MetaValue, error) { return readKind[MetaValue](s) }

// ----------- inlines -------------

// Str
func readStr(s *scanner) (*Str, error) {
	if str, err := readString(s); err != nil {
		return nil, err
	} else {
		return NewStr(str), nil
	}
}

// Emph
func readEmph(s *scanner) (*Emph, error) {
	if list, err := listr(readInline)(s); err != nil {
		return nil, err
	} else {
		return NewEmph(list...), nil
	}
}

// Underline
func readUnderline(s *scanner) (*Underline, error) {
	if list, err := listr(readInline)(s); err != nil {
		return nil, err
	} else {
		return NewUnderline(list...), nil
	}
}

// Strong
func readStrong(s *scanner) (*Strong, error) {
	if list, err := listr(readInline)(s); err != nil {
		return nil, err
	} else {
		return NewStrong(list...), nil
	}
}

// Strikeout
func readStrikeout(s *scanner) (*Strikeout, error) {
	if list, err := listr(readInline)(s); err != nil {
		return nil, err
	} else {
		return NewStrikeout(list...), nil
	}
}

// Superscript
func readSuperscript(s *scanner) (*Superscript, error) {
	if list, err := listr(readInline)(s); err != nil {
		return nil, err
	} else {
		return NewSuperscript(list...), nil
	}
}

// Subscript
func readSubscript(s *scanner) (*Subscript, error) {
	if list, err := listr(readInline)(s); err != nil {
		return nil, err
	} else {
		return NewSubscript(list...), nil
	}
}

// SmallCaps
func readSmallCaps(s *scanner) (*SmallCaps, error) {
	if list, err := listr(readInline)(s); err != nil {
		return nil, err
	} else {
		return NewSmallCaps(list...), nil
	}
}

var readQuoteType = readTags(quoteTypes...)

// Quoted
func readQuoted(s *scanner) (*Quoted, error) {
	tup, err := tupler(s, 2)
	if err != nil {
		return nil, err
	}
	typ, tup, err := readItem(readQuoteType)(s, tup)
	if err != nil {
		return nil, err
	}
	inlines, _, err := readItem(listr(readInline))(s, tup)
	if err != nil {
		return nil, err
	}
	q, err := NewQuoted(typ, inlines...)
	return q, s.wrap(err)
}

// RawInline
func readRawInline(s *scanner) (*RawInline, error) {
	tup, err := tupler(s, 2)
	if err != nil {
		return nil, err
	}
	format, tup, err := readItem(readString)(s, tup)
	if err != nil {
		return nil, err
	}
	str, _, err := readItem(readString)(s, tup)
	if err != nil {
		return nil, err
	}
	r, err := NewRawInline(format, str)
	return r, s.wrap(err)
}

var readMathType = readTags(mathTypes...)

// Math
func readMath(s *scanner) (*Math, error) {
	tup, err := tupler(s, 2)
	if err != nil {
		return nil, err
	}
	typ, tup, err := readItem(readMathType)(s, tup)
	if err != nil {
		return nil, err
	}
	str, _, err := readItem(readString)(s, tup)
	if err != nil {
		return nil, err
	}
	m, err := NewMath(typ, str)
	return m, s.wrap(err)
}

// Code
func readCode(s *scanner) (*Code, error) {
	tup, err := tupler(s, 2)
	if err != nil {
		return nil, err
	}
	attr, tup, err := readItem(readAttr)(s, tup)
	if err != nil {
		return nil, err
	}
	code, _, err := readItem(readString)(s, tup)
	if err != nil {
		return nil, err
	}
	return NewCode(code, attr), nil
}

// Span
func readSpan(s *scanner) (*Span, error) {
	tup, err := tupler(s, 2)
	if err != nil {
		return nil, err
	}
	attr, tup, err := readItem(readAttr)(s, tup)
	if err != nil {
		return nil, err
	}
	inlines, _, err := readItem(listr(readInline))(s, tup)
	if err != nil {
		return nil, err
	}
	return NewSpan(attr, inlines...), nil
}

var readCitationMode = readTags(citationModes...)

func readCitation(s *scanner) (*Citation, error) {
	var (
		c              = &Citation{}
		prefix, suffix []Inline
	)
	err := readFields(s, func(key string) (err error) {
		switch key {
		case "citationId":
			c.Id, err = readString(s)
		case "citationPrefix":
			prefix, err = listr(readInline)(s)
		case "citationSuffix":
			suffix, err = listr(readInline)(s)
		case "citationMode":
			c.Mode, err = readCitationMode(s)
		case "citationNoteNum":
			c.NoteNum, err = readInt(s)
		case "citationHash":
			c.Hash, err = readInt(s)
		default:
			err = s.errorf("unknown citation field %q", key)
		}
		return
	})
	if err != nil {
		return nil, err
	}
	if err := checkEnum("citation mode", c.Mode); err != nil {
		return nil, s.wrap(err)
	}
	c.Prefix().Reset(prefix...)
	c.Suffix().Reset(suffix...)
	return c, nil
}

// Cite
func readCite(s *scanner) (*Cite, error) {
	tup, err := tupler(s, 2)
	if err != nil {
		return nil, err
	}
	citations, tup, err := readItem(listr(readCitation))(s, tup)
	if err != nil {
		return nil, err
	}
	inlines, _, err := readItem(listr(readInline))(s, tup)
	if err != nil {
		return nil, err
	}
	return NewCite(citations, inlines...), nil
}

// Note
func readNote(s *scanner) (*Note, error) {
	blocks, err := listr(readBlock)(s)
	if err != nil {
		return nil, err
	}
	return NewNote(blocks...), nil
}

// Image
func readImage(s *scanner) (*Image, error) {
	tup, err := tupler(s, 3)
	if err != nil {
		return nil, err
	}
	attr, tup, err := readItem(readAttr)(s, tup)
	if err != nil {
		return nil, err
	}
	inlines, tup, err := readItem(listr(readInline))(s, tup)
	if err != nil {
		return nil, err
	}
	target, _, err := readItem(readTarget)(s, tup)
	if err != nil {
		return nil, err
	}
	return NewImage(target, attr, inlines...), nil
}

// Link
func readLink(s *scanner) (*Link, error) {
	tup, err := tupler(s, 3)
	if err != nil {
		return nil, err
	}
	attr, tup, err := readItem(readAttr)(s, tup)
	if err != nil {
		return nil, err
	}
	inlines, tup, err := readItem(listr(readInline))(s, tup)
	if err != nil {
		return nil, err
	}
	target, _, err := readItem(readTarget)(s, tup)
	if err != nil {
		return nil, err
	}
	return NewLink(target, attr, inlines...), nil
}

// ----------- blocks -------------

// Plain
func readPlain(s *scanner) (*Plain, error) {
	if list, err := listr(readInline)(s); err != nil {
		return nil, err
	} else {
		return NewPlain(list...), nil
	}
}

// Para
func readPara(s *scanner) (*Para, error) {
	if list, err := listr(readInline)(s); err != nil {
		return nil, err
	} else {
		return NewPara(list...), nil
	}
}

// CodeBlock
func readCodeBlock(s *scanner) (*CodeBlock, error) {
	tup, err := tupler(s, 2)
	if err != nil {
		return nil, err
	}
	attr, tup, err := readItem(readAttr)(s, tup)
	if err != nil {
		return nil, err
	}
	code, _, err := readItem(readString)(s, tup)
	if err != nil {
		return nil, err
	}
	return NewCodeBlock(code, attr), nil
}

// Div
func readDiv(s *scanner) (*Div, error) {
	tup, err := tupler(s, 2)
	if err != nil {
		return nil, err
	}
	attr, tup, err := readItem(readAttr)(s, tup)
	if err != nil {
		return nil, err
	}
	blocks, _, err := readItem(listr(readBlock))(s, tup)
	if err != nil {
		return nil, err
	}
	return NewDiv(attr, blocks...), nil
}

// RawBlock
func readRawBlock(s *scanner) (*RawBlock, error) {
	tup, err := tupler(s, 2)
	if err != nil {
		return nil, err
	}
	format, tup, err := readItem(readString)(s, tup)
	if err != nil {
		return nil, err
	}
	text, _, err := readItem(readString)(s, tup)
	if err != nil {
		return nil, err
	}
	r, err := NewRawBlock(format, text)
	return r, s.wrap(err)
}

// Header
func readHeader(s *scanner) (*Header, error) {
	tup, err := tupler(s, 3)
	if err != nil {
		return nil, err
	}
	lvl, tup, err := readItem(readInt)(s, tup)
	if err != nil {
		return nil, err
	}
	attr, tup, err := readItem(readAttr)(s, tup)
	if err != nil {
		return nil, err
	}
	inlines, _, err := readItem(listr(readInline))(s, tup)
	if err != nil {
		return nil, err
	}
	h, err := NewHeader(lvl, attr, inlines...)
	return h, s.wrap(err)
}

// LineBlock
func readLineBlock(s *scanner) (*LineBlock, error) {
	if list, err := listr(readLineItem)(s); err != nil {
		return nil, err
	} else {
		return NewLineBlock(list...), nil
	}
}

func readLineItem(s *scanner) (*LineItem, error) {
	if list, err := listr(readInline)(s); err != nil {
		return nil, err
	} else {
		return NewLineItem(list...), nil
	}
}

func readListItem(s *scanner) (*ListItem, error) {
	if list, err := listr(readBlock)(s); err != nil {
		return nil, err
	} else {
		return NewListItem(list...), nil
	}
}

// BulletList
func readBulletList(s *scanner) (*BulletList, error) {
	list, err := listr(readListItem)(s)
	if err != nil {
		return nil, err
	}
	return NewBulletList(list...), nil
}

// Figure
func readFigure(s *scanner) (*Figure, error) {
	tup, err := tupler(s, 3)
	if err != nil {
		return nil, err
	}
	attr, tup, err := readItem(readAttr)(s, tup)
	if err != nil {
		return nil, err
	}
	caption, tup, err := readItem(readCaption)(s, tup)
	if err != nil {
		return nil, err
	}
	content, _, err := readItem(listr(readBlock))(s, tup)
	if err != nil {
		return nil, err
	}
	return NewFigure(attr, caption, content...), nil
}

// OrderedList
func readOrderedList(s *scanner) (*OrderedList, error) {
	tup, err := tupler(s, 2)
	if err != nil {
		return nil, err
	}
	attr, tup, err := readItem(readListAttr)(s, tup)
	if err != nil {
		return nil, err
	}
	list, _, err := readItem(listr(readListItem))(s, tup)
	if err != nil {
		return nil, err
	}
	l, err := NewOrderedList(attr, list...)
	return l, s.wrap(err)
}

// Table
func readTable(s *scanner) (*Table, error) {
	tup, err := tupler(s, 6)
	if err != nil {
		return nil, err
	}
	attr, tup, err := readItem(readAttr)(s, tup)
	if err != nil {
		return nil, err
	}
	caption, tup, err := readItem(readCaption)(s, tup)
	if err != nil {
		return nil, err
	}
	colSpec, tup, err := readItem(listr(readColSpec))(s, tup)
	if err != nil {
		return nil, err
	}
	head, tup, err := readItem(readTableHead)(s, tup)
	if err != nil {
		return nil, err
	}
	bodies, tup, err := readItem(listr(readTableBody))(s, tup)
	if err != nil {
		return nil, err
	}
	foot, _, err := readItem(readTableFoot)(s, tup)
	if err != nil {
		return nil, err
	}
	t, err := NewTable(attr, caption, colSpec, head, bodies, foot)
	return t, s.wrap(err)
}

// DefinitionList
func readDefinitionList(s *scanner) (*DefinitionList, error) {
	list, err := listr(readDefinitionItem)(s)
	if err != nil {
		return nil, err
	}
	return NewDefinitionList(list...), nil
}

// BlockQuote
func readBlockQuote(s *scanner) (*BlockQuote, error) {
	list, err := listr(readBlock)(s)
	if err != nil {
		return nil, err
	}
	return NewBlockQuote(list...), nil
}

// ----------- other types -------------

var readListNumberStyle = readTags(listNumberStyles...)

var readListNumberDelim = readTags(listNumberDelims...)

func readListAttr(s *scanner) (ListAttrs, error) {
	tup, err := tupler(s, 3)
	if err != nil {
		return ListAttrs{}, err
	}
	start, tup, err := readItem(readInt)(s, tup)
	if err != nil {
		return ListAttrs{}, err
	}
	style, tup, err := readItem(readListNumberStyle)(s, tup)
	if err != nil {
		return ListAttrs{}, err
	}
	delim, _, err := readItem(readListNumberDelim)(s, tup)
	if err != nil {
		return ListAttrs{}, err
	}
	return ListAttrs{start, style, delim}, nil
}

func readDefinitionItem(s *scanner) (*DefinitionItem, error) {
	tup, err := tupler(s, 2)
	if err != nil {
		return nil, err
	}
	term, tup, err := readItem(listr(readInline))(s, tup)
	if err != nil {
		return nil, err
	}
	defs, _, err := readItem(listr(readDefinition))(s, tup)
	if err != nil {
		return nil, err
	}
	return NewDefinitionItem(term, defs...), nil
}

func readDefinition(s *scanner) (*Definition, error) {
	list, err := listr(readBlock)(s)
	if err != nil {
		return nil, err
	}
	return NewDefinition(list...), nil
}

func readTableBody(s *scanner) (*TableBody, error) {
	tup, err := tupler(s, 4)
	if err != nil {
		return nil, err
	}
	attr, tup, err := readItem(readAttr)(s, tup)
	if err != nil {
		return nil, err
	}
	rhc, tup, err := readItem(readInt)(s, tup)
	if err != nil {
		return nil, err
	}
	head, tup, err := readItem(listr(readTableRow))(s, tup)
	if err != nil {
		return nil, err
	}
	body, _, err := readItem(listr(readTableRow))(s, tup)
	if err != nil {
		return nil, err
	}
	b, err := NewTableBody(attr, rhc, head, body...)
	return b, s.wrap(err)
}

func readTableCell(s *scanner) (*TableCell, error) {
	tup, err := tupler(s, 5)
	if err != nil {
		return nil, err
	}
	attr, tup, err := readItem(readAttr)(s, tup)
	if err != nil {
		return nil, err
	}
	align, tup, err := readItem(readAlignment)(s, tup)
	if err != nil {
		return nil, err
	}
	rowSpan, tup, err := readItem(readInt)(s, tup)
	if err != nil {
		return nil, err
	}
	colSpan, tup, err := readItem(readInt)(s, tup)
	if err != nil {
		return nil, err
	}
	blocks, _, err := readItem(listr(readBlock))(s, tup)
	if err != nil {
		return nil, err
	}
	c, err := NewSpanningCell(attr, align, rowSpan, colSpan, blocks...)
	return c, s.wrap(err)
}

func readTableRow(s *scanner) (*TableRow, error) {
	tup, err := tupler(s, 2)
	if err != nil {
		return nil, err
	}
	attr, tup, err := readItem(readAttr)(s, tup)
	if err != nil {
		return nil, err
	}
	cells, _, err := readItem(listr(readTableCell))(s, tup)
	if err != nil {
		return nil, err
	}
	return NewTableRow(attr, cells...), nil
}

func readHeadFoot(s *scanner) (Attr, []*TableRow, error) {
	tup, err := tupler(s, 2)
	if err != nil {
		return Attr{}, nil, err
	}
	attr, tup, err := readItem(readAttr)(s, tup)
	if err != nil {
		return Attr{}, nil, err
	}
	rows, _, err := readItem(listr(readTableRow))(s, tup)
	if err != nil {
		return Attr{}, nil, err
	}
	return attr, rows, nil
}

func readTableHead(s *scanner) (*TableHead, error) {
	attr, rows, err := readHeadFoot(s)
	if err != nil {
		return nil, err
	}
	return NewTableHead(attr, rows...), nil
}

func readTableFoot(s *scanner) (*TableFoot, error) {
	attr, rows, err := readHeadFoot(s)
	if err != nil {
		return nil, err
	}
	return NewTableFoot(attr, rows...), nil
}

var readAlignment = readTags(alignments...)

func readColWidth(s *scanner) (ColWidth, error) {
	tag, err := readTag(s)
	if err != nil {
		return ColWidth{}, err
	}
	switch tag {
	case _ColWidthDefault:
		if err := readEmptyObj(s); err != nil {
			return ColWidth{}, err
		}
		return DefaultColWidth(), nil
	case _ColWidth:
		if flt, err := readObj(readFloat)(s); err != nil {
			return ColWidth{}, err
		} else {
			return ColWidth{flt, false}, nil
		}
	default:
		return ColWidth{}, s.errorf("unknown col width type %q", tag)
	}
}

func readColSpec(s *scanner) (ColSpec, error) {
	tup, err := tupler(s, 2)
	if err != nil {
		return ColSpec{}, err
	}
	align, tup, err := readItem(readAlignment)(s, tup)
	if err != nil {
		return ColSpec{}, err
	}
	width, _, err := readItem(readColWidth)(s, tup)
	if err != nil {
		return ColSpec{}, err
	}
	return ColSpec{align, width}, nil
}

func readCaption(s *scanner) (*Caption, error) {
	tup, err := tupler(s, 2)
	if err != nil {
		return nil, err
	}
	var short []Inline
	if tok := s.peek(); tok == tokNull {
		_, tup, err = readItem(readNull)(s, tup)
	} else {
		short, tup, err = readItem(listr(readInline))(s, tup)
	}
	if err != nil {
		return nil, err
	}
	long, _, err := readItem(listr(readBlock))(s, tup)
	if err != nil {
		return nil, err
	}
	return NewCaption(short, long...), nil
}

func readAttrKV(s *scanner) (KV, error) {
	tup, err := tupler(s, 2)
	if err != nil {
		return KV{}, err
	}
	key, tup, err := readItem(readString)(s, tup)
	if err != nil {
		return KV{}, err
	}
	value, _, err := readItem(readString)(s, tup)
	if err != nil {
		return KV{}, err
	}
	return KV{key, value}, nil
}

func readAttr(s *scanner) (Attr, error) {
	tup, err := tupler(s, 3)
	if err != nil {
		return Attr{}, err
	}
	id, tup, err := readItem(readString)(s, tup)
	if err != nil {
		return Attr{}, err
	}
	classes, tup, err := readItem(listr(readString))(s, tup)
	if err != nil {
		return Attr{}, err
	}
	kvs, _, err := readItem(listr(readAttrKV))(s, tup)
	if err != nil {
		return Attr{}, err
	}
	return Attr{id, classes, kvs}, nil
}

func readTarget(s *scanner) (Target, error) {
	tup, err := tupler(s, 2)
	if err != nil {
		return Target{}, err
	}
	url, tup, err := readItem(readString)(s, tup)
	if err != nil {
		return Target{}, err
	}
	title, _, err := readItem(readString)(s, tup)
	if err != nil {
		return Target{}, err
	}
	return Target{url, title}, nil
}

// ----------- meta -------------

func readMetaMap(s *scanner) (*MetaMap, error) {
	return readMeta(s)
}

func readMeta(s *scanner) (*MetaMap, error) {
	m := NewMetaMap()
	err := readFields(s, func(key string) error {
		v, err := readMetaValue(s)
		if err != nil {
			return err
		}
		m.Set(key, v)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return m, nil
}

func readMetaBool(s *scanner) (*MetaBool, error) {
	if b, err := readBool(s); err != nil {
		return nil, err
	} else {
		return NewMetaBool(b), nil
	}
}

func readMetaList(s *scanner) (*MetaList, error) {
	if list, err := listr(readMetaValue)(s); err != nil {
		return nil, err
	} else {
		return NewMetaList(list...), nil
	}
}

func readMetaString(s *scanner) (*MetaString, error) {
	if str, err := readString(s); err != nil {
		return nil, err
	} else {
		return NewMetaString(str), nil
	}
}

func readMetaInlines(s *scanner) (*MetaInlines, error) {
	if list, err := listr(readInline)(s); err != nil {
		return nil, err
	} else {
		return NewMetaInlines(list...), nil
	}
}

func readMetaBlocks(s *scanner) (*MetaBlocks, error) {
	if list, err := listr(readBlock)(s); err != nil {
		return nil, err
	} else {
		return NewMetaBlocks(list...), nil
	}
}

// ----------- helpers -------------

// reads the opening of a tagged object up to and including the tag
func readTag(s *scanner) (Tag, error) {
	if err := s.expect(tokLBrace); err != nil {
		return "", err
	}
	if err := s.expectString("t"); err != nil {
		return "", err
	}
	if err := s.expect(tokColon); err != nil {
		return "", err
	}
	str, err := readString(s)
	return Tag(str), err
}

// reads content of a tagged object
func readObj[T any](r func(*scanner) (T, error)) func(*scanner) (T, error) {
	return func(s *scanner) (ret T, err error) {
		if err = s.expect(tokComma); err != nil {
			return
		}
		if err = s.expectString("c"); err != nil {
			return
		}
		if err = s.expect(tokColon); err != nil {
			return
		}
		if ret, err = r(s); err != nil {
			return
		}
		if err = s.expect(tokRBrace); err != nil {
			return
		}
		return
	}
}

// reads the rest of a tagged object without content: either `}` or, as
// older pandoc writes it, `,"c":[]}`
func readEmptyObj(s *scanner) error {
	if s.peek() == tokComma {
		s.next()
		if err := s.expectString("c"); err != nil {
			return err
		}
		if err := s.expect(tokColon); err != nil {
			return err
		}
		if err := s.expect(tokLBrack); err != nil {
			return err
		}
		if err := s.expect(tokRBrack); err != nil {
			return err
		}
	}
	return s.expect(tokRBrace)
}

// reads one of the tags
func readTags[T ~string](tags ...T) func(*scanner) (T, error) {
	var m = make(map[string]T, len(tags))
	for _, elt := range tags {
		m[string(elt)] = elt
	}
	return func(s *scanner) (ret T, err error) {
		tag, err := readTag(s)
		if err != nil {
			return
		}
		if elt, ok := m[string(tag)]; !ok {
			err = s.wrap(&ValueError{Field: "enumeration", Value: string(tag), Expected: fmt.Sprintf("one of %v", tags)})
			return
		} else if err = readEmptyObj(s); err != nil {
			return
		} else {
			ret = elt
			return
		}
	}
}

// tuple reader
type tuple int

// creates a new tuple reader
func tupler(s *scanner, cnt int) (tuple, error) {
	if err := s.expect(tokLBrack); err != nil {
		return 0, err
	} else {
		return tuple(cnt), nil
	}
}

// reads tuple item
func readItem[T any](r func(*scanner) (T, error)) func(*scanner, tuple) (T, tuple, error) {
	return func(s *scanner, t tuple) (ret T, rt tuple, err error) {
		ret, err = r(s)
		if err != nil {
			return
		}
		rt = t - 1
		if rt == 0 {
			err = s.expect(tokRBrack)
			return
		} else {
			err = s.expect(tokComma)
			return
		}
	}
}

// reads an object, calling field for each key to consume its value
func readFields(s *scanner, field func(key string) error) error {
	if err := s.expect(tokLBrace); err != nil {
		return err
	}
	if s.peek() == tokRBrace {
		s.next()
		return nil
	}
	for {
		key, err := readString(s)
		if err != nil {
			return err
		}
		if err := s.expect(tokColon); err != nil {
			return err
		}
		if err := field(key); err != nil {
			return err
		}
		off := s.current()
		if tok := s.next(); tok == tokRBrace {
			return nil
		} else if tok != tokComma {
			return &DecodeError{Offset: off, Err: fmt.Errorf("expected comma or right brace, got %s", tok)}
		}
	}
}

// ----------- list readers -------------

// a list reader
func listr[T any, R func(*scanner) (T, error)](r R) func(*scanner) ([]T, error) {
	return func(s *scanner) ([]T, error) {
		ret := make([]T, 0, 1)
		if err := s.expect(tokLBrack); err != nil {
			return nil, err
		}
		for {
			if s.peek() == tokRBrack {
				s.next()
				break
			}
			item, err := r(s)
			if err != nil {
				return nil, err
			}
			ret = append(ret, item)
			off := s.current()
			if tok := s.next(); tok == tokRBrack {
				break
			} else if tok != tokComma {
				return nil, &DecodeError{Offset: off, Err: fmt.Errorf("expected comma or right bracket, got %s", tok)}
			}
		}
		return ret, nil
	}
}

// int reader
func readInt(s *scanner) (int, error) {
	off := s.current()
	if err := s.expect(tokNumber); err != nil {
		return 0, err
	}
	if !s.numberIsInt() {
		f := s.float()
		if f != math.Trunc(f) || math.Abs(f) > math.MaxInt32 {
			return 0, &DecodeError{Offset: off, Err: fmt.Errorf("expected an integer, got %v", f)}
		}
	}
	return int(s.int()), nil
}

// float reader
func readFloat(s *scanner) (float64, error) {
	if err := s.expect(tokNumber); err != nil {
		return 0, err
	}
	return s.float(), nil
}

// null reader
func readNull(s *scanner) (any, error) {
	off := s.current()
	if tok := s.next(); tok == tokNull {
		return nil, nil
	} else {
		return nil, &DecodeError{Offset: off, Err: fmt.Errorf("expected null, got %s", tok)}
	}
}

// bool reader
func readBool(s *scanner) (bool, error) {
	off := s.current()
	if tok := s.next(); tok == tokTrue {
		return true, nil
	} else if tok == tokFalse {
		return false, nil
	} else {
		return false, &DecodeError{Offset: off, Err: fmt.Errorf("expected boolean, got %s", tok)}
	}
}

// string reader
func readString(s *scanner) (string, error) {
	if err := s.expect(tokStr); err != nil {
		return "", err
	}
	return s.string(), nil
}

// compares two semver versions
func cmpSemver(mine, their []int) int {
	var i int
	for i = 0; i < len(mine); i++ {
		if i >= len(their) {
			return 1
		}
		if mine[i] > their[i] {
			return 1
		}
		if mine[i] < their[i] {
			return -1
		}
	}
	if i < len(their) {
		return -1
	} else {
		return 0
	}
}

// ----------- documents -------------

// ReadFrom parses a Pandoc AST JSON document from the reader. Both the
// modern object layout and the legacy two-element array layout are
// accepted; the layout found is recorded in the document's Era.
func ReadFrom(r io.Reader) (*Doc, error) {
	var s = scanner{}
	s.init(r)
	var (
		doc *Doc
		err error
	)
	switch tok := s.peek(); tok {
	case tokLBrace:
		doc, err = readModernDoc(&s)
	case tokLBrack:
		doc, err = readLegacyDoc(&s)
	default:
		return nil, s.errorf("expected a pandoc document, got %s", tok)
	}
	if err != nil {
		return nil, err
	}
	if tok := s.peek(); tok != tokEOF {
		return nil, s.errorf("unexpected %s after document", tok)
	}
	return doc, nil
}

// Unmarshal parses a Pandoc AST JSON document.
func Unmarshal(data []byte) (*Doc, error) {
	return ReadFrom(bytes.NewReader(data))
}

func readModernDoc(s *scanner) (*Doc, error) {
	var (
		doc     = NewDoc()
		version []int
	)
	err := readFields(s, func(key string) (err error) {
		switch key {
		case "pandoc-api-version":
			if version, err = listr(readInt)(s); err == nil {
				err = s.wrap(doc.SetAPIVersion(version...))
			}
		case "meta":
			var meta *MetaMap
			if meta, err = readMeta(s); err == nil {
				doc.SetMetadata(meta)
			}
		case "blocks":
			var blocks []Block
			if blocks, err = listr(readBlock)(s); err == nil {
				doc.Content().Reset(blocks...)
			}
		default:
			err = s.errorf("unknown pandoc field %q", key)
		}
		return
	})
	if err != nil {
		return nil, err
	}
	if version == nil {
		return nil, s.errorf("missing pandoc-api-version")
	}
	doc.Era = Modern
	return doc, nil
}

func readLegacyDoc(s *scanner) (*Doc, error) {
	doc := NewDoc()
	if err := s.expect(tokLBrack); err != nil {
		return nil, err
	}
	err := readFields(s, func(key string) error {
		if key != "unMeta" {
			return s.errorf("unknown legacy document field %q", key)
		}
		meta, err := readMeta(s)
		if err != nil {
			return err
		}
		doc.SetMetadata(meta)
		return nil
	})
	if err != nil {
		return nil, err
	}
	if err := s.expect(tokComma); err != nil {
		return nil, err
	}
	blocks, err := listr(readBlock)(s)
	if err != nil {
		return nil, err
	}
	if err := s.expect(tokRBrack); err != nil {
		return nil, err
	}
	doc.Content().Reset(blocks...)
	doc.Era = Legacy
	return doc, nil
}

// decodeAs reads an element of the given kind from its JSON encoding.
func decodeAs(kind Tag, data []byte) (Element, error) {
	var s = scanner{}
	s.init(bytes.NewReader(data))
	var (
		e   Element
		err error
	)
	if r, ok := structReaders[kind]; ok {
		e, err = r(&s)
	} else {
		e, err = readElement(&s)
	}
	if err != nil {
		return nil, err
	}
	if e.Tag() != kind {
		return nil, &TypeError{Got: string(e.Tag()), Want: string(kind)}
	}
	return e, nil
}
