package yamlblock

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	pandoc "github.com/growler/go-panflute"
)

// FrontMatter splits a leading YAML block fenced by '---' lines off text and
// converts it to metadata. The block may be closed by '---' or '...'. The
// remaining text is returned as body. Mapping order is preserved; booleans
// become MetaBool and every other scalar a MetaString.
func FrontMatter(text string) (*pandoc.MetaMap, string, error) {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	rest, ok := strings.CutPrefix(text, "---\n")
	if !ok {
		return nil, text, ErrNoFrontMatter
	}
	var head, body string
	for off := 0; ; {
		end := strings.IndexByte(rest[off:], '\n')
		if end < 0 {
			end = len(rest)
		} else {
			end += off
		}
		if line := rest[off:end]; line == "---" || line == "..." {
			head = rest[:off]
			if end < len(rest) {
				body = rest[end+1:]
			}
			break
		}
		if end == len(rest) {
			return nil, text, fmt.Errorf("%w: front matter is not closed", ErrMalformed)
		}
		off = end + 1
	}

	meta := pandoc.NewMetaMap()
	var doc yaml.Node
	if err := yaml.Unmarshal([]byte(head), &doc); err != nil {
		return nil, text, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if len(doc.Content) == 0 {
		return meta, body, nil
	}
	root := resolve(doc.Content[0])
	if root.Kind != yaml.MappingNode {
		return nil, text, fmt.Errorf("%w: front matter is a %s, not a mapping", ErrMalformed, root.ShortTag())
	}
	for i := 0; i+1 < len(root.Content); i += 2 {
		meta.Set(root.Content[i].Value, metaValue(root.Content[i+1]))
	}
	return meta, body, nil
}

func resolve(n *yaml.Node) *yaml.Node {
	for n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}
	return n
}

func metaValue(n *yaml.Node) pandoc.MetaValue {
	n = resolve(n)
	switch n.Kind {
	case yaml.MappingNode:
		m := pandoc.NewMetaMap()
		for i := 0; i+1 < len(n.Content); i += 2 {
			m.Set(n.Content[i].Value, metaValue(n.Content[i+1]))
		}
		return m
	case yaml.SequenceNode:
		l := pandoc.NewMetaList()
		for _, c := range n.Content {
			l.Content().Append(metaValue(c))
		}
		return l
	}
	if n.ShortTag() == "!!bool" {
		var b bool
		if n.Decode(&b) == nil {
			return pandoc.NewMetaBool(b)
		}
	}
	if n.ShortTag() == "!!null" {
		return pandoc.NewMetaString("")
	}
	return pandoc.NewMetaString(n.Value)
}
