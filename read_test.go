package pandoc

import (
	"bytes"
	"encoding/json"
	"errors"
	"strconv"
	"strings"
	"testing"
)

func TestAppendQuote(t *testing.T) {
	var tests = []struct {
		str, want string
	}{
		{"", `""`},
		{"a", `"a"`},
		{"\"", `"\""`},
		{`\`, `"\\"`},
		{"a\nb\tc\r", `"a\nb\tc\r"`},
		{"\x01\x1f", `"\u0001\u001f"`},
		{"\b\f", `"\b\f"`},
		{"<é💩>", `"<é💩>"`},
	}
	for i := range tests {
		r := appendQuote(nil, tests[i].str)
		v := []byte(tests[i].want)
		if !bytes.Equal(r, v) {
			t.Errorf("expected [%s], got [%s]", v, r)
		}
	}
}

func TestAppendFloat(t *testing.T) {
	var tests = []struct {
		f    float64
		want string
	}{
		{0, "0"},
		{0.5, "0.5"},
		{0.25, "0.25"},
		{1, "1"},
		{0.05, "5e-2"},
	}
	for _, tt := range tests {
		if got := string(appendFloat(nil, tt.f)); got != tt.want {
			t.Errorf("appendFloat(%g) = %s, want %s", tt.f, got, tt.want)
		}
	}
}

func TestCompareSemver(t *testing.T) {
	var tests = []struct {
		a, b []int
		want int
	}{
		{[]int{1, 23, 1}, []int{1, 23, 1}, 0},
		{[]int{1, 23, 1}, []int{1, 23, 2}, -1},
		{[]int{1, 23}, []int{1, 23, 2}, -1},
		{[]int{1, 23, 1}, []int{1, 23}, 1},
		{[]int{1}, []int{1, 23, 1}, -1},
	}
	for _, tt := range tests {
		got := cmpSemver(tt.a, tt.b)
		if got != tt.want {
			t.Errorf("compareSemver(%v, %v) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func roundTrip(t *testing.T, data string) {
	t.Helper()
	doc, err := ReadFrom(strings.NewReader(data))
	if err != nil {
		t.Fatal(err)
	}
	var b bytes.Buffer
	n, err := doc.WriteTo(&b)
	if err != nil {
		t.Fatal(err)
	}
	if n != int64(b.Len()) {
		t.Errorf("WriteTo reported %d bytes, wrote %d", n, b.Len())
	}
	if got := b.String(); got != data {
		for i := 0; i < len(data) && i < len(got); i++ {
			if data[i] != got[i] {
				t.Fatalf("mismatch at %d:\n want %s\n  got %s", i, data[i:min(i+40, len(data))], got[i:min(i+40, len(got))])
			}
		}
		t.Fatalf("length mismatch: want %d, got %d", len(data), len(got))
	}
}

func TestPipe(t *testing.T) {
	roundTrip(t, t1)
	roundTrip(t, t2Doc)
}

func TestPipeLegacy(t *testing.T) {
	roundTrip(t, t1Legacy)
}

func TestEraSwitch(t *testing.T) {
	doc, err := Unmarshal([]byte(t1))
	if err != nil {
		t.Fatal(err)
	}
	if doc.Era != Modern {
		t.Errorf("expected modern era, got %s", doc.Era)
	}
	var b bytes.Buffer
	if err := WriteEra(&b, doc, Legacy); err != nil {
		t.Fatal(err)
	}
	if b.String() != t1Legacy {
		t.Errorf("legacy encoding mismatch:\n want %s\n  got %s", t1Legacy, b.String())
	}
	legacy, err := Unmarshal(b.Bytes())
	if err != nil {
		t.Fatal(err)
	}
	if legacy.Era != Legacy {
		t.Errorf("expected legacy era, got %s", legacy.Era)
	}
	if !Equal(doc, legacy) {
		t.Error("documents read from both eras differ")
	}
}

func TestReadErrors(t *testing.T) {
	var tests = []struct {
		name string
		data string
		want any
	}{
		{"unknown tag", `{"pandoc-api-version":[1,23],"meta":{},"blocks":[{"t":"Paragraph","c":[]}]}`, &DecodeError{}},
		{"inline as block", `{"pandoc-api-version":[1,23],"meta":{},"blocks":[{"t":"Str","c":"a"}]}`, &TypeError{}},
		{"old version", `{"pandoc-api-version":[1,20],"meta":{},"blocks":[]}`, &ValueError{}},
		{"major version", `{"pandoc-api-version":[3,0],"meta":{},"blocks":[]}`, &ValueError{}},
		{"fractional header level", `{"pandoc-api-version":[1,23],"meta":{},"blocks":[{"t":"Header","c":[1.5,["",[],[]],[]]}]}`, &DecodeError{}},
		{"fractional row span", `{"pandoc-api-version":[1,23],"meta":{},"blocks":[{"t":"Table","c":[["",[],[]],[null,[]],[[{"t":"AlignDefault"},{"t":"ColWidthDefault"}]],[["",[],[]],[]],[[["",[],[]],0,[],[[["",[],[]],[[["",[],[]],{"t":"AlignDefault"},1.5,1,[]]]]]]],[["",[],[]],[]]]}]}`, &DecodeError{}},
		{"long version", `{"pandoc-api-version":[1,23,1,0,0],"meta":{},"blocks":[]}`, &ValueError{}},
		{"no version", `{"meta":{},"blocks":[]}`, &DecodeError{}},
		{"bad enum", `{"pandoc-api-version":[1,23],"meta":{},"blocks":[{"t":"Para","c":[{"t":"Quoted","c":[{"t":"TripleQuote"},[]]}]}]}`, &ValueError{}},
		{"bad raw format", `{"pandoc-api-version":[1,23],"meta":{},"blocks":[{"t":"RawBlock","c":["word","x"]}]}`, &ValueError{}},
		{"bad header level", `{"pandoc-api-version":[1,23],"meta":{},"blocks":[{"t":"Header","c":[11,["",[],[]],[]]}]}`, &ValueError{}},
		{"bad table", `{"pandoc-api-version":[1,23],"meta":{},"blocks":[` + badTable + `]}`, &StructureError{}},
		{"trailing data", `{"pandoc-api-version":[1,23],"meta":{},"blocks":[]}[]`, &DecodeError{}},
		{"truncated", `{"pandoc-api-version":[1,23],"meta":{},"blocks":[`, &DecodeError{}},
		{"not a document", `"text"`, &DecodeError{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Unmarshal([]byte(tt.data))
			if err == nil {
				t.Fatal("expected an error")
			}
			var de *DecodeError
			if !errors.As(err, &de) {
				t.Errorf("expected a *DecodeError, got %T: %v", err, err)
			}
			switch tt.want.(type) {
			case *TypeError:
				var e *TypeError
				if !errors.As(err, &e) {
					t.Errorf("expected a *TypeError, got %v", err)
				}
			case *ValueError:
				var e *ValueError
				if !errors.As(err, &e) {
					t.Errorf("expected a *ValueError, got %v", err)
				}
			case *StructureError:
				var e *StructureError
				if !errors.As(err, &e) {
					t.Errorf("expected a *StructureError, got %v", err)
				}
			}
		})
	}
}

func TestReadVersions(t *testing.T) {
	for _, v := range []string{"[1,22]", "[1,23,1]", "[1,23,1,0]", "[2,0]", "[2,1,3]"} {
		doc, err := Unmarshal([]byte(`{"pandoc-api-version":` + v + `,"meta":{},"blocks":[]}`))
		if err != nil {
			t.Errorf("version %s: %v", v, err)
			continue
		}
		if got := "[" + strings.ReplaceAll(versionString(doc.APIVersion), ".", ",") + "]"; got != v {
			t.Errorf("version %s read as %s", v, got)
		}
	}
}

func TestReadIntegralNumbers(t *testing.T) {
	doc, err := Unmarshal([]byte(`{"pandoc-api-version":[1,23],"meta":{},"blocks":[{"t":"Header","c":[2.0,["",[],[]],[]]},{"t":"Header","c":[1e0,["",[],[]],[]]}]}`))
	if err != nil {
		t.Fatal(err)
	}
	for i, want := range []int{2, 1} {
		if got := doc.Content().At(i).(*Header).Level; got != want {
			t.Errorf("header %d: expected level %d, got %d", i, want, got)
		}
	}
}

func TestReadEscapes(t *testing.T) {
	const data = `{"pandoc-api-version":[1,23],"meta":{},"blocks":[{"t":"Para","c":[{"t":"Str","c":"caf\u00e9 \ud83d\udca9 \"q\" \\ \/"}]}]}`
	doc, err := Unmarshal([]byte(data))
	if err != nil {
		t.Fatal(err)
	}
	s := doc.Content().At(0).(*Para).Content().At(0).(*Str)
	if want := `café 💩 "q" \ /`; s.Text != want {
		t.Errorf("expected %q, got %q", want, s.Text)
	}
	out, err := MarshalElement(s)
	if err != nil {
		t.Fatal(err)
	}
	if want := `{"t":"Str","c":"café 💩 \"q\" \\ /"}`; string(out) != want {
		t.Errorf("expected %s, got %s", want, out)
	}
}

func TestReadMetadata(t *testing.T) {
	doc, err := Unmarshal([]byte(t2Doc))
	if err != nil {
		t.Fatal(err)
	}
	if got := doc.Metadata().Content().Keys(); strings.Join(got, ",") != "title,draft,tags,nested" {
		t.Errorf("unexpected key order %v", got)
	}
	if v := doc.GetMetadata("nested.k", nil); v != "v" {
		t.Errorf("expected nested value v, got %v", v)
	}
	if v := doc.GetMetadata("draft", false); v != true {
		t.Errorf("expected draft to be true, got %v", v)
	}
	if v := doc.GetMetadata("title", ""); v != "T" {
		t.Errorf("expected title T, got %v", v)
	}
	if v := doc.GetMetadata("nested.missing", "def"); v != "def" {
		t.Errorf("expected default, got %v", v)
	}
}

func TestClone(t *testing.T) {
	doc, err := Unmarshal([]byte(t2Doc))
	if err != nil {
		t.Fatal(err)
	}
	doc.State["k"] = 1
	c, err := Clone(doc)
	if err != nil {
		t.Fatal(err)
	}
	if c == doc || !Equal(c, doc) {
		t.Error("clone differs from the original")
	}
	if c.State["k"] != 1 {
		t.Error("clone lost the state")
	}
	tbl := doc.Content().At(7).(*Table)
	ct, err := Clone(tbl)
	if err != nil {
		t.Fatal(err)
	}
	if ct.Parent() != nil || ct.Columns() != 2 {
		t.Errorf("unexpected clone parent %v or columns %d", ct.Parent(), ct.Columns())
	}
	if tbl.Parent() != doc || tbl.Index() != 7 {
		t.Error("cloning changed the original's position")
	}
	ct.Caption().Content().Append(NewPara(NewStr("x")))
	if Equal(ct, tbl) {
		t.Error("clone shares content with the original")
	}
}

func TestMarshalFragments(t *testing.T) {
	var tests = []struct {
		elt  Element
		want string
	}{
		{NewSpace(), `{"t":"Space"}`},
		{Must(NewMath(DisplayMath, "x")), `{"t":"Math","c":[{"t":"DisplayMath"},"x"]}`},
		{NewTableCell(), `[["",[],[]],{"t":"AlignDefault"},1,1,[]]`},
		{NewCaption(nil), `[null,[]]`},
		{NewMetaBool(false), `{"t":"MetaBool","c":false}`},
	}
	for _, tt := range tests {
		b, err := MarshalElement(tt.elt)
		if err != nil {
			t.Fatal(err)
		}
		if string(b) != tt.want {
			t.Errorf("expected %s, got %s", tt.want, b)
		}
		var te *TypeError
		if _, err := Marshal(tt.elt); !errors.As(err, &te) || te.Want != "Doc" || te.Got != string(tt.elt.Tag()) {
			t.Errorf("Marshal(%s): expected a *TypeError wanting Doc, got %v", tt.elt.Tag(), err)
		}
	}
	var b bytes.Buffer
	if err := WriteElement(&b, NewSpace(), Legacy); err != nil {
		t.Fatal(err)
	}
	if want := `{"t":"Space","c":[]}`; b.String() != want {
		t.Errorf("expected %s, got %s", want, b.String())
	}
}

func TestWriteRequiresDoc(t *testing.T) {
	para := NewPara(NewStr("x"))
	var te *TypeError
	var b bytes.Buffer
	if err := Write(&b, para); !errors.As(err, &te) || te.Got != "Para" || te.Want != "Doc" {
		t.Errorf("Write: expected a *TypeError for a Para, got %v", err)
	}
	if err := WriteEra(&b, para, Legacy); !errors.As(err, &te) {
		t.Errorf("WriteEra: expected a *TypeError for a Para, got %v", err)
	}
	var doc *Doc
	if _, err := Marshal(doc); !errors.As(err, &te) || te.Got != "nil" {
		t.Errorf("Marshal: expected a *TypeError for a nil document, got %v", err)
	}
	if b.Len() != 0 {
		t.Errorf("rejected elements wrote %q", b.String())
	}
	if _, err := Marshal(NewDoc(para)); err != nil {
		t.Errorf("Marshal of a document: %v", err)
	}
	if para.Parent() == nil {
		t.Error("expected the paragraph to be held by the document")
	}
}

func TestWriteRejectsInvalid(t *testing.T) {
	q := Must(NewQuoted(SingleQuote))
	q.QuoteType = "Backtick"
	if _, err := MarshalElement(q); err == nil {
		t.Error("expected an error for an invalid quote type")
	}
	h := Must(NewHeader(1, Attr{}))
	h.Level = 0
	if _, err := MarshalElement(h); err == nil {
		t.Error("expected an error for header level 0")
	}
	c := NewTableCell()
	c.ColSpan = 0
	if _, err := MarshalElement(c); err == nil {
		t.Error("expected an error for a zero column span")
	}
}

func testData() []byte {
	var b bytes.Buffer
	b.WriteString("[0")
	for i := 1; i < 1000; i++ {
		b.WriteByte(',')
		b.WriteString(strconv.Itoa(i))
	}
	b.WriteByte(']')
	return b.Bytes()
}

func BenchmarkInline(b *testing.B) {
	b.StopTimer()
	v := []byte(`[{"t":"Space"},{"t":"Space"},{"t":"Space"},{"t":"Space"},{"t":"Space"},{"t":"Space"},{"t":"Space"},{"t":"Space"},{"t":"Space"},{"t":"Space"}]`)
	var r = bytes.NewReader(nil)
	var j scanner
	b.StartTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		r.Reset(v)
		j.init(r)
		if _, err := listr(readInline)(&j); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkList(b *testing.B) {
	b.StopTimer()
	v := testData()
	var r = bytes.NewReader(nil)
	var j scanner
	b.StartTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		r.Reset(v)
		j.init(r)
		if _, err := listr(readInt)(&j); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkListStd(b *testing.B) {
	b.StopTimer()
	v := testData()
	b.StartTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		var r []int
		_ = json.Unmarshal(v, &r)
	}
}

const t1 = `{"pandoc-api-version":[1,23,1],"meta":{},"blocks":[{"t":"Header","c":[1,["mainpage",["title"],[]],[{"t":"Str","c":"A"},{"t":"Space"},{"t":"Str","c":"document"}]]},{"t":"Para","c":[{"t":"Str","c":"Paragraph"}]},{"t":"Header","c":[2,["sec1",["h1"],[]],[{"t":"Str","c":"A"},{"t":"Space"},{"t":"Str","c":"section"}]]},{"t":"Para","c":[{"t":"Str","c":"Another"},{"t":"Space"},{"t":"Str","c":"paragraph"}]},{"t":"Header","c":[3,["sec1-1",["h2"],[]],[{"t":"Str","c":"A"},{"t":"Space"},{"t":"Str","c":"subsection"}]]},{"t":"Para","c":[{"t":"Str","c":"Yet"},{"t":"Space"},{"t":"Str","c":"another"},{"t":"Space"},{"t":"Str","c":"paragraph"}]},{"t":"Header","c":[4,["sec1-1-1",["h3"],[]],[{"t":"Str","c":"A"},{"t":"Space"},{"t":"Str","c":"subsubsection"}]]},{"t":"Para","c":[{"t":"Str","c":"And"},{"t":"Space"},{"t":"Str","c":"another"},{"t":"Space"},{"t":"Str","c":"paragraph"}]}]}`

const t1Legacy = `[{"unMeta":{}},[{"t":"Header","c":[1,["mainpage",["title"],[]],[{"t":"Str","c":"A"},{"t":"Space","c":[]},{"t":"Str","c":"document"}]]},{"t":"Para","c":[{"t":"Str","c":"Paragraph"}]},{"t":"Header","c":[2,["sec1",["h1"],[]],[{"t":"Str","c":"A"},{"t":"Space","c":[]},{"t":"Str","c":"section"}]]},{"t":"Para","c":[{"t":"Str","c":"Another"},{"t":"Space","c":[]},{"t":"Str","c":"paragraph"}]},{"t":"Header","c":[3,["sec1-1",["h2"],[]],[{"t":"Str","c":"A"},{"t":"Space","c":[]},{"t":"Str","c":"subsection"}]]},{"t":"Para","c":[{"t":"Str","c":"Yet"},{"t":"Space","c":[]},{"t":"Str","c":"another"},{"t":"Space","c":[]},{"t":"Str","c":"paragraph"}]},{"t":"Header","c":[4,["sec1-1-1",["h3"],[]],[{"t":"Str","c":"A"},{"t":"Space","c":[]},{"t":"Str","c":"subsubsection"}]]},{"t":"Para","c":[{"t":"Str","c":"And"},{"t":"Space","c":[]},{"t":"Str","c":"another"},{"t":"Space","c":[]},{"t":"Str","c":"paragraph"}]}]]`

const noAttr = `["",[],[]]`

const t2Doc = `{"pandoc-api-version":[1,23,1],"meta":{` +
	`"title":{"t":"MetaInlines","c":[{"t":"Str","c":"T"}]},` +
	`"draft":{"t":"MetaBool","c":true},` +
	`"tags":{"t":"MetaList","c":[{"t":"MetaString","c":"a"}]},` +
	`"nested":{"t":"MetaMap","c":{"k":{"t":"MetaString","c":"v"}}}},"blocks":[` +
	// 0
	`{"t":"Para","c":[` +
	`{"t":"Cite","c":[[{"citationId":"doe","citationPrefix":[],"citationSuffix":[{"t":"Str","c":"p. 1"}],"citationMode":{"t":"NormalCitation"},"citationNoteNum":1,"citationHash":0}],[{"t":"Str","c":"[@doe]"}]]},` +
	`{"t":"Quoted","c":[{"t":"DoubleQuote"},[{"t":"Str","c":"q"}]]},` +
	`{"t":"Math","c":[{"t":"InlineMath"},"x^2"]},` +
	`{"t":"Link","c":[` + noAttr + `,[{"t":"Emph","c":[{"t":"Str","c":"l"}]}],["http://x","t"]]},` +
	`{"t":"Code","c":[` + noAttr + `,"c"]},{"t":"SoftBreak"},{"t":"LineBreak"},` +
	`{"t":"Underline","c":[]},{"t":"Strong","c":[]},{"t":"Strikeout","c":[]},{"t":"Superscript","c":[]},{"t":"Subscript","c":[]},{"t":"SmallCaps","c":[]},` +
	`{"t":"RawInline","c":["tex","\\x"]},{"t":"Span","c":[["s",[],[["k","v"]]],[]]}]},` +
	// 1
	`{"t":"OrderedList","c":[[3,{"t":"Decimal"},{"t":"Period"}],[[{"t":"Plain","c":[{"t":"Str","c":"one"}]}]]]},` +
	// 2
	`{"t":"DefinitionList","c":[[[{"t":"Str","c":"term"}],[[{"t":"Para","c":[{"t":"Str","c":"def"}]}]]]]},` +
	// 3
	`{"t":"LineBlock","c":[[{"t":"Str","c":"l1"}],[{"t":"Str","c":"l2"}]]},` +
	// 4
	`{"t":"CodeBlock","c":[["",["go"],[["k","v"]]],"x := 1\n"]},` +
	// 5
	`{"t":"RawBlock","c":["html","<br>"]},` +
	// 6
	`{"t":"HorizontalRule"},` +
	// 7
	`{"t":"Table","c":[` + noAttr + `,[null,[]],` +
	`[[{"t":"AlignLeft"},{"t":"ColWidthDefault"}],[{"t":"AlignRight"},{"t":"ColWidth","c":0.5}]],` +
	`[` + noAttr + `,[[` + noAttr + `,[[` + noAttr + `,{"t":"AlignDefault"},1,1,[{"t":"Plain","c":[{"t":"Str","c":"h1"}]}]],[` + noAttr + `,{"t":"AlignDefault"},1,1,[]]]]]],` +
	`[[` + noAttr + `,0,[],[` +
	`[` + noAttr + `,[[` + noAttr + `,{"t":"AlignDefault"},2,1,[]],[` + noAttr + `,{"t":"AlignDefault"},1,1,[]]]],` +
	`[` + noAttr + `,[[` + noAttr + `,{"t":"AlignDefault"},1,1,[]]]]]]],` +
	`[` + noAttr + `,[]]]},` +
	// 8
	`{"t":"Figure","c":[["fig",[],[]],[[{"t":"Str","c":"short"}],[{"t":"Plain","c":[{"t":"Str","c":"cap"}]}]],[{"t":"Plain","c":[{"t":"Image","c":[` + noAttr + `,[],["a.png",""]]}]}]]},` +
	// 9
	`{"t":"Div","c":[["d",["c"],[]],[{"t":"BlockQuote","c":[{"t":"Para","c":[{"t":"Note","c":[{"t":"Para","c":[{"t":"Str","c":"n"}]}]}]}]},{"t":"BulletList","c":[[{"t":"Plain","c":[]}],[]]}]]},` +
	// 10
	`{"t":"Header","c":[2,["h",[],[]],[{"t":"Str","c":"Title"}]]}` +
	`]}`

const badTable = `{"t":"Table","c":[` + noAttr + `,[null,[]],[],` +
	`[` + noAttr + `,[]],` +
	`[[` + noAttr + `,0,[],[` +
	`[` + noAttr + `,[[` + noAttr + `,{"t":"AlignDefault"},1,1,[]],[` + noAttr + `,{"t":"AlignDefault"},1,1,[]]]],` +
	`[` + noAttr + `,[[` + noAttr + `,{"t":"AlignDefault"},1,1,[]]]]]]],` +
	`[` + noAttr + `,[]]]}`
