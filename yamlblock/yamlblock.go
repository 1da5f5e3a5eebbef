// Package yamlblock reads YAML options from fenced code blocks and YAML front
// matter from text.
//
// A code block carries its options before its data:
//
//	~~~ {.chart}
//	title: Sales
//	kind: bar
//	---
//	2019,10
//	2020,14
//	~~~
//
// In normal mode the options are the text before the first line made only
// of three or more '-' or '.' characters, and the data is what follows it.
// In strict mode a block is raw data until a '---' line opens a YAML chunk,
// which a '---' or '...' line closes; several chunks are merged and the raw
// text between them is joined into the data.
package yamlblock

import (
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	pandoc "github.com/growler/go-panflute"
)

var (
	// ErrAmbiguous reports a strict block whose delimiters can be read more
	// than one way: an indented delimiter line, a '...' line outside of a
	// YAML chunk, or a chunk that is never closed.
	ErrAmbiguous = errors.New("yamlblock: ambiguous delimiters")
	// ErrMalformed reports options that are not a YAML mapping.
	ErrMalformed = errors.New("yamlblock: malformed YAML")
	// ErrNoFrontMatter reports text that does not start with a '---' line.
	ErrNoFrontMatter = errors.New("yamlblock: missing front matter")
)

// Func handles a code block with its parsed options and data. Its results
// are interpreted the way a pandoc.Action's are.
type Func func(options map[string]any, data string, elt *pandoc.CodeBlock, doc *pandoc.Doc) ([]pandoc.Element, error)

// Filter returns an action that passes code blocks carrying one of the tag
// classes to the function registered for it. When a block carries several
// tags, its first matching class wins. Other elements are kept.
func Filter(tags map[string]Func, strict bool) pandoc.Action {
	return func(elt pandoc.Element, doc *pandoc.Doc) ([]pandoc.Element, error) {
		cb, ok := elt.(*pandoc.CodeBlock)
		if !ok {
			return nil, nil
		}
		for _, class := range cb.Classes {
			fn, ok := tags[class]
			if !ok || fn == nil {
				continue
			}
			options, data, err := Split(cb.Text, strict)
			if err != nil {
				return nil, fmt.Errorf("code block %q: %w", class, err)
			}
			return fn(options, data, cb, doc)
		}
		return nil, nil
	}
}

// Split separates the options of a code block from its data.
func Split(text string, strict bool) (map[string]any, string, error) {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	if strict {
		return splitStrict(text)
	}
	return splitNormal(text)
}

func splitNormal(text string) (map[string]any, string, error) {
	raw, data := text, ""
	for off := 0; off < len(text); {
		end := strings.IndexByte(text[off:], '\n')
		if end < 0 {
			end = len(text)
		} else {
			end += off
		}
		if isDelimiter(text[off:end]) {
			raw = text[:off]
			if end < len(text) {
				data = strings.TrimLeft(text[end+1:], "\n")
			}
			break
		}
		off = end + 1
	}
	options := make(map[string]any)
	if err := decodeInto(raw, options); err != nil {
		return nil, "", err
	}
	return options, data, nil
}

func splitStrict(text string) (map[string]any, string, error) {
	var (
		options = make(map[string]any)
		data    []string
		chunk   []string
		inYAML  bool
	)
	flush := func() error {
		s := strings.Trim(strings.Join(chunk, "\n"), "\n")
		chunk = chunk[:0]
		if s == "" {
			return nil
		}
		if !inYAML {
			data = append(data, s)
			return nil
		}
		m := make(map[string]any)
		if err := decodeInto(s, m); err != nil {
			return err
		}
		for k, v := range m {
			options[k] = v
		}
		return nil
	}
	for n, line := range strings.Split(text, "\n") {
		if !isDelimiter(line) {
			if trimmed := strings.TrimLeft(line, " \t"); trimmed != line && isDelimiter(trimmed) {
				return nil, "", fmt.Errorf("%w: indented delimiter on line %d", ErrAmbiguous, n+1)
			}
			chunk = append(chunk, line)
			continue
		}
		if err := flush(); err != nil {
			return nil, "", err
		}
		switch {
		case inYAML:
			inYAML = false
		case line[0] == '-':
			inYAML = true
		default:
			return nil, "", fmt.Errorf("%w: %q on line %d closes no YAML chunk", ErrAmbiguous, line, n+1)
		}
	}
	if inYAML {
		return nil, "", fmt.Errorf("%w: YAML chunk is not closed", ErrAmbiguous)
	}
	if err := flush(); err != nil {
		return nil, "", err
	}
	return options, strings.Join(data, "\n"), nil
}

// isDelimiter reports whether line is made of three or more '-' or '.'.
func isDelimiter(line string) bool {
	if len(line) < 3 || (line[0] != '-' && line[0] != '.') {
		return false
	}
	return strings.Count(line, line[:1]) == len(line)
}

func decodeInto(s string, m map[string]any) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	if err := yaml.Unmarshal([]byte(s), &m); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return nil
}
