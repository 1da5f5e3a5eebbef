package pandoc

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// Era selects the JSON layout of a document.
type Era int

const (
	// Modern is the object layout with "pandoc-api-version", "meta" and
	// "blocks" produced by pandoc 1.18 and later.
	Modern Era = iota
	// Legacy is the [{"unMeta": ...}, [...]] layout of older pandoc.
	Legacy
)

func (e Era) String() string {
	switch e {
	case Modern:
		return "modern"
	case Legacy:
		return "legacy"
	}
	return fmt.Sprintf("Era(%d)", int(e))
}

// Pandoc document: metadata and a list of blocks, together with the output
// format it is being converted to and free-form filter state.
type Doc struct {
	node
	metadata *MetaMap
	content  List[Block]

	// Output format, such as "html" or "latex".
	Format string
	// Protocol version; 2 to 4 components.
	APIVersion []int
	// JSON layout the document was read in and is written in.
	Era Era
	// Version of the pandoc that invoked the filter, if any.
	PandocVersion string
	// Reader options passed by the invoking pandoc, if any.
	ReaderOptions map[string]any
	// State shared between filter actions and hooks.
	State map[string]any
}

const DocTag = Tag("Pandoc")

// DefaultFormat is the output format of documents created without one.
const DefaultFormat = "html"

// NewDoc creates a document in the modern era with empty metadata, the
// default output format and API version 1.23.
func NewDoc(content ...Block) *Doc {
	d := &Doc{
		Format:     DefaultFormat,
		APIVersion: []int{1, 23},
		State:      map[string]any{},
	}
	d.loadEnv()
	d.Content().Reset(content...)
	return d
}

func (d *Doc) loadEnv() {
	d.PandocVersion = os.Getenv("PANDOC_VERSION")
	if s := os.Getenv("PANDOC_READER_OPTIONS"); s != "" {
		var opts map[string]any
		if json.Unmarshal([]byte(s), &opts) == nil {
			d.ReaderOptions = opts
		}
	}
}

func (d *Doc) Tag() Tag               { return DocTag }
func (d *Doc) Content() *List[Block] { return d.content.bind(d, "content") }

// Blocks returns a copy of the top-level blocks.
func (d *Doc) Blocks() []Block { return d.Content().Items() }

// Metadata returns the document metadata.
func (d *Doc) Metadata() *MetaMap {
	if d.metadata == nil {
		d.metadata = adopt(d, "metadata", nil, NewMetaMap())
	}
	return d.metadata
}

// SetMetadata replaces the document metadata. Nil sets empty metadata.
func (d *Doc) SetMetadata(m *MetaMap) {
	if m == nil {
		m = NewMetaMap()
	}
	d.metadata = adopt(d, "metadata", d.metadata, m)
}

// SetAPIVersion validates and sets the protocol version.
func (d *Doc) SetAPIVersion(v ...int) error {
	if err := checkAPIVersion(v); err != nil {
		return err
	}
	d.APIVersion = append([]int(nil), v...)
	return nil
}

// GetMetadata returns the metadata value at a dotted path of keys,
// converted with MetaToBuiltin, or def if the path does not exist. The
// empty path returns the whole metadata.
func (d *Doc) GetMetadata(path string, def any) any {
	v, ok := d.Metadata().Lookup(path)
	if !ok {
		return def
	}
	return MetaToBuiltin(v)
}

// GetMetadataValue is GetMetadata without the conversion.
func (d *Doc) GetMetadataValue(path string) (MetaValue, bool) {
	return d.Metadata().Lookup(path)
}

func checkAPIVersion(v []int) error {
	if len(v) < 2 || len(v) > 4 || v[0] > maxMajorVersion || cmpSemver(v, minVersion) < 0 {
		return &ValueError{Field: "API version", Value: versionString(v), Expected: fmt.Sprintf("%s or later, major at most %d", versionString(minVersion), maxMajorVersion)}
	}
	return nil
}

func versionString(v []int) string {
	s := make([]string, len(v))
	for i, n := range v {
		s[i] = fmt.Sprint(n)
	}
	return strings.Join(s, ".")
}
