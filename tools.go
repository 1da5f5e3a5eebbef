package pandoc

import (
	"fmt"
	"strings"
)

// Stringify returns the plain text of e and its children. Spaces and
// breaks become a single space, quoted content is wrapped in double
// quotes, and, if newlines is set, every paragraph is followed by a blank
// line.
//
// Example:
//
//	p := pandoc.NewPara(pandoc.NewStr("Hello"), pandoc.NewSpace(), pandoc.NewStr("world"))
//	pandoc.Stringify(p, true) // "Hello world\n\n"
func Stringify(e Element, newlines bool) string {
	var sb strings.Builder
	stringifyInto(&sb, e, newlines)
	return sb.String()
}

func stringifyInto(sb *strings.Builder, e Element, newlines bool) {
	w := &walker{
		// runs before the children of every element
		stop: func(e Element) bool {
			if _, ok := e.(*Quoted); ok {
				sb.WriteByte('"')
			}
			return false
		},
		action: func(e Element, _ *Doc) ([]Element, error) {
			switch e := e.(type) {
			case *Str:
				sb.WriteString(e.Text)
			case *Code:
				sb.WriteString(e.Text)
			case *Math:
				sb.WriteString(e.Text)
			case *RawInline:
				sb.WriteString(e.Text)
			case *CodeBlock:
				sb.WriteString(e.Text)
			case *RawBlock:
				sb.WriteString(e.Text)
			case *MetaString:
				sb.WriteString(e.Text)
			case WhiteSpace:
				sb.WriteByte(' ')
			case *Quoted:
				sb.WriteByte('"')
			case *Para:
				if newlines {
					sb.WriteString("\n\n")
				}
			}
			return nil, nil
		},
	}
	_, _, _ = w.visit(e)
}

func splitPath(path string) []string {
	return strings.Split(path, ".")
}

// ReplaceKeyword replaces every Str below e whose text is exactly keyword
// with a copy of replacement, and returns the number of replacements.
// A count above zero limits the number of replacements.
//
// An inline replacement takes the place of the Str itself. A block
// replacement takes the place of the block whose only child is the
// keyword, possibly through a chain of inline wrappers holding nothing
// else, such as Para(Emph(Str(keyword))). Keywords in blocks with other
// content are left alone.
//
// e must be attached to a document; e itself is never replaced.
func ReplaceKeyword(e Element, keyword string, replacement Element, count int) (int, error) {
	doc := DocOf(e)
	if doc == nil {
		return 0, ErrNoDocument
	}
	var n int
	replace := func() ([]Element, error) {
		n++
		if count > 0 && n > count {
			return nil, nil
		}
		c, err := Clone(replacement)
		if err != nil {
			return nil, err
		}
		return Replace(c), nil
	}
	var action Action
	switch replacement.(type) {
	case Inline:
		action = func(elt Element, _ *Doc) ([]Element, error) {
			if s, ok := elt.(*Str); ok && elt != e && s.Text == keyword {
				return replace()
			}
			return nil, nil
		}
	case Block:
		action = func(elt Element, _ *Doc) ([]Element, error) {
			c, ok := elt.(InlineContainer)
			if !ok || elt == e || !Is[Block](elt) || !onlyKeyword(c, keyword) {
				return nil, nil
			}
			return replace()
		}
	default:
		return 0, &TypeError{Got: kindName(replacement), Want: "Inline or Block"}
	}
	if _, err := Walk(e, action, WithDoc(doc)); err != nil {
		return 0, err
	}
	if count > 0 && n > count {
		n = count
	}
	return n, nil
}

// onlyKeyword reports whether c holds nothing but keyword, possibly through
// a chain of single-child inline containers.
func onlyKeyword(c InlineContainer, keyword string) bool {
	for c.Content().Len() == 1 {
		switch x := c.Content().At(0).(type) {
		case *Str:
			return x.Text == keyword
		case InlineContainer:
			c = x
		default:
			return false
		}
	}
	return false
}

// GetOption looks up an option first in the element attribute localKey,
// then in the document metadata under the dotted docKey, then falls back to
// def. Empty keys and a nil doc skip their level. If no level yields a
// value, GetOption fails with an error wrapping ErrOptionNotFound.
//
// Example:
//
//	style, err := pandoc.GetOption(div.Attr, "name", doc, "style-div.name", nil)
func GetOption(attrs Attr, localKey string, doc *Doc, docKey string, def any) (any, error) {
	if localKey != "" {
		if v, ok := attrs.Get(localKey); ok {
			return v, nil
		}
	}
	if doc != nil && docKey != "" {
		if v := doc.GetMetadata(docKey, nil); v != nil {
			return v, nil
		}
	}
	if def != nil {
		return def, nil
	}
	return nil, fmt.Errorf("%w: local %q, document %q", ErrOptionNotFound, localKey, docKey)
}
