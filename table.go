package pandoc

import "fmt"

// Column width
type ColWidth struct {
	Width   float64
	Default bool
}

const (
	_ColWidth        = "ColWidth"
	_ColWidthDefault = "ColWidthDefault"
)

func DefaultColWidth() ColWidth { return ColWidth{Default: true} }

func (c ColWidth) Tag() string {
	if c.Default {
		return _ColWidthDefault
	} else {
		return _ColWidth
	}
}

// Column alignment and width
type ColSpec struct {
	Align Alignment
	Width ColWidth
}

// DefaultColSpec is the column specification of a table built without one.
var DefaultColSpec = ColSpec{Align: AlignDefault, Width: DefaultColWidth()}

func (c ColSpec) validate() error {
	if err := checkEnum("column alignment", c.Align); err != nil {
		return err
	}
	if !c.Width.Default && c.Width.Width < 0 {
		return &ValueError{Field: "column width", Value: c.Width.Width, Expected: "a non-negative number"}
	}
	return nil
}

// Table caption: an optional short caption (inlines) and a long caption
// (blocks). Also used by figures.
type Caption struct {
	node
	content List[Block]
	short   List[Inline]
}

const CaptionTag = Tag("Caption")

func NewCaption(short []Inline, content ...Block) *Caption {
	c := &Caption{}
	c.Short().Reset(short...)
	c.Content().Reset(content...)
	return c
}

func (c *Caption) Tag() Tag               { return CaptionTag }
func (c *Caption) Content() *List[Block] { return c.content.bind(c, "content") }
func (c *Caption) Short() *List[Inline]  { return c.short.bind(c, "short_caption") }

// Table head: attributes and a list of rows
type TableHead struct {
	node
	Attr
	content List[*TableRow]
}

const TableHeadTag = Tag("TableHead")

func NewTableHead(attr Attr, rows ...*TableRow) *TableHead {
	h := &TableHead{Attr: attr}
	h.Content().Reset(rows...)
	return h
}

func (h *TableHead) Tag() Tag                   { return TableHeadTag }
func (h *TableHead) Content() *List[*TableRow] { return h.content.bind(h, "content") }

// Table foot: attributes and a list of rows
type TableFoot struct {
	node
	Attr
	content List[*TableRow]
}

const TableFootTag = Tag("TableFoot")

func NewTableFoot(attr Attr, rows ...*TableRow) *TableFoot {
	f := &TableFoot{Attr: attr}
	f.Content().Reset(rows...)
	return f
}

func (f *TableFoot) Tag() Tag                   { return TableFootTag }
func (f *TableFoot) Content() *List[*TableRow] { return f.content.bind(f, "content") }

// Table body: attributes, number of row header columns, intermediate head
// rows and body rows
type TableBody struct {
	node
	Attr
	RowHeadColumns int
	content        List[*TableRow]
	head           List[*TableRow]
}

const TableBodyTag = Tag("TableBody")

func NewTableBody(attr Attr, rowHeadColumns int, head []*TableRow, rows ...*TableRow) (*TableBody, error) {
	if err := checkRange("row head columns", rowHeadColumns, 0, maxInt); err != nil {
		return nil, err
	}
	b := &TableBody{Attr: attr, RowHeadColumns: rowHeadColumns}
	b.Head().Reset(head...)
	b.Content().Reset(rows...)
	return b, nil
}

func (b *TableBody) Tag() Tag                   { return TableBodyTag }
func (b *TableBody) Content() *List[*TableRow] { return b.content.bind(b, "content") }
func (b *TableBody) Head() *List[*TableRow]    { return b.head.bind(b, "head") }

// Table row: attributes and a list of cells
type TableRow struct {
	node
	Attr
	content List[*TableCell]
}

const TableRowTag = Tag("TableRow")

func NewTableRow(attr Attr, cells ...*TableCell) *TableRow {
	r := &TableRow{Attr: attr}
	r.Content().Reset(cells...)
	return r
}

func (r *TableRow) Tag() Tag                    { return TableRowTag }
func (r *TableRow) Content() *List[*TableCell] { return r.content.bind(r, "content") }

// Width returns the number of columns covered by the row's own cells.
func (r *TableRow) Width() int {
	w := 0
	for _, c := range r.Content().items {
		w += c.ColSpan
	}
	return w
}

// Table cell: attributes, alignment, row span, column span and content
type TableCell struct {
	node
	Attr
	Align   Alignment
	RowSpan int
	ColSpan int
	content List[Block]
}

const TableCellTag = Tag("TableCell")

// NewTableCell creates a default aligned cell spanning one row and one column.
func NewTableCell(content ...Block) *TableCell {
	c := &TableCell{Align: AlignDefault, RowSpan: 1, ColSpan: 1}
	c.Content().Reset(content...)
	return c
}

// NewSpanningCell creates a cell with the given alignment and spans.
func NewSpanningCell(attr Attr, align Alignment, rowSpan, colSpan int, content ...Block) (*TableCell, error) {
	c := &TableCell{Attr: attr, Align: align, RowSpan: rowSpan, ColSpan: colSpan}
	if err := c.validate(); err != nil {
		return nil, err
	}
	c.Content().Reset(content...)
	return c, nil
}

func (c *TableCell) validate() error {
	if err := checkEnum("cell alignment", c.Align); err != nil {
		return err
	}
	if err := checkRange("row span", c.RowSpan, 1, maxInt); err != nil {
		return err
	}
	return checkRange("column span", c.ColSpan, 1, maxInt)
}

func (c *TableCell) Tag() Tag               { return TableCellTag }
func (c *TableCell) Content() *List[Block] { return c.content.bind(c, "content") }

// Table, with attributes, caption, column alignments and widths, table
// head, table bodies, and table foot
type Table struct {
	node
	Attr
	ColSpecs []ColSpec
	caption  *Caption
	head     *TableHead
	content  List[*TableBody]
	foot     *TableFoot
	cols     int
}

const TableTag = Tag("Table")

// NewTable creates a table and validates its shape. Nil caption, head or
// foot are replaced with empty ones. Empty colspecs are filled with
// DefaultColSpec for every column.
func NewTable(attr Attr, caption *Caption, colspecs []ColSpec, head *TableHead, bodies []*TableBody, foot *TableFoot) (*Table, error) {
	t := &Table{Attr: attr, ColSpecs: append([]ColSpec(nil), colspecs...)}
	t.setCaption(caption)
	t.setHead(head)
	t.setFoot(foot)
	t.Content().Reset(bodies...)
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

func (t *Table) Tag() Tag                    { return TableTag }
func (t *Table) block()                      {}
func (t *Table) Content() *List[*TableBody] { return t.content.bind(t, "content") }

// Columns returns the number of columns found by the last validation.
func (t *Table) Columns() int { return t.cols }

func (t *Table) Caption() *Caption {
	if t.caption == nil {
		t.setCaption(nil)
	}
	return t.caption
}

func (t *Table) Head() *TableHead {
	if t.head == nil {
		t.setHead(nil)
	}
	return t.head
}

func (t *Table) Foot() *TableFoot {
	if t.foot == nil {
		t.setFoot(nil)
	}
	return t.foot
}

// SetCaption replaces the caption. A nil caption is replaced by an empty one.
func (t *Table) SetCaption(c *Caption) { t.setCaption(c) }

// SetHead replaces the table head. The table is validated and left
// unchanged if the new head does not fit.
func (t *Table) SetHead(h *TableHead) error {
	old := t.head
	t.setHead(h)
	if err := t.Validate(); err != nil {
		t.setHead(old)
		return err
	}
	return nil
}

// SetFoot replaces the table foot. The table is validated and left
// unchanged if the new foot does not fit.
func (t *Table) SetFoot(f *TableFoot) error {
	old := t.foot
	t.setFoot(f)
	if err := t.Validate(); err != nil {
		t.setFoot(old)
		return err
	}
	return nil
}

func (t *Table) setCaption(c *Caption) {
	if c == nil {
		c = NewCaption(nil)
	}
	t.caption = adopt(t, "caption", t.caption, c)
}

func (t *Table) setHead(h *TableHead) {
	if h == nil {
		h = NewTableHead(Attr{})
	}
	t.head = adopt(t, "head", t.head, h)
}

func (t *Table) setFoot(f *TableFoot) {
	if f == nil {
		f = NewTableFoot(Attr{})
	}
	t.foot = adopt(t, "foot", t.foot, f)
}

// Validate recomputes the number of columns and checks that every row of
// every group covers exactly that many columns, counting the cells carried
// down by row spans, and that the column specifications agree with it. If
// the table has no column specifications, default ones are filled in.
func (t *Table) Validate() error {
	cols, specs, err := t.layout()
	if err != nil {
		return err
	}
	t.ColSpecs = specs
	t.cols = cols
	return nil
}

// layout checks the table like Validate without modifying it. It returns
// the number of columns and the column specifications to use, defaults
// when the table has none.
func (t *Table) layout() (int, []ColSpec, error) {
	bodies := t.Content().items
	groups := make([][]*TableRow, 0, 2+2*len(bodies))
	groups = append(groups, t.Head().Content().items)
	for _, b := range bodies {
		groups = append(groups, b.Head().items, b.Content().items)
	}
	groups = append(groups, t.Foot().Content().items)

	cols := -1
	if len(bodies) > 0 && bodies[0].Content().Len() > 0 {
		cols = bodies[0].Content().At(0).Width()
	} else {
		for _, g := range groups {
			if len(g) > 0 {
				cols = g[0].Width()
				break
			}
		}
	}
	if cols < 0 {
		cols = len(t.ColSpecs)
	}
	for _, g := range groups {
		if err := checkRows(g, cols); err != nil {
			return 0, nil, err
		}
	}
	specs := t.ColSpecs
	switch {
	case len(specs) == 0:
		specs = make([]ColSpec, cols)
		for i := range specs {
			specs[i] = DefaultColSpec
		}
	case len(specs) != cols:
		return 0, nil, &StructureError{Kind: TableTag, Msg: fmt.Sprintf("%d column specifications for %d columns", len(specs), cols)}
	}
	for _, cs := range specs {
		if err := cs.validate(); err != nil {
			return 0, nil, err
		}
	}
	return cols, specs, nil
}

// checkRows checks that every row of a group spans cols columns.
func checkRows(rows []*TableRow, cols int) error {
	type carry struct{ span, rows int }
	var pending []carry
	for i, r := range rows {
		w := 0
		next := pending[:0:0]
		for _, p := range pending {
			w += p.span
			if p.rows > 1 {
				next = append(next, carry{p.span, p.rows - 1})
			}
		}
		for _, c := range r.Content().items {
			if err := c.validate(); err != nil {
				return err
			}
			w += c.ColSpan
			if c.RowSpan > 1 {
				next = append(next, carry{c.ColSpan, c.RowSpan - 1})
			}
		}
		if w != cols {
			return &StructureError{Kind: TableTag, Msg: fmt.Sprintf("%s row %d spans %d columns, expected %d", r.Location(), i, w, cols)}
		}
		pending = next
	}
	return nil
}
