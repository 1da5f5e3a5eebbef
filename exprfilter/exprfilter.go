// Package exprfilter builds filters from boolean expressions over the fields
// of an element, such as
//
//	tag == "Div" && hasClass("draft")
//	category == "block" && text contains "TODO"
//	tag == "Link" && url startsWith "http:"
//
// The expression language is that of github.com/expr-lang/expr; the
// variables available are the fields of Env.
package exprfilter

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	pandoc "github.com/growler/go-panflute"
)

// Env is the environment an expression is evaluated in. Identifier, classes
// and attributes are set for elements carrying attributes. Fields that do
// not apply to an element are left empty.
type Env struct {
	Tag        string            `expr:"tag"`
	Text       string            `expr:"text"` // stringified content
	Identifier string            `expr:"identifier"`
	Classes    []string          `expr:"classes"`
	Attributes map[string]string `expr:"attributes"`
	Level      int               `expr:"level"`  // Header
	URL        string            `expr:"url"`    // Link, Image
	Format     string            `expr:"format"` // RawInline, RawBlock
	Category   string            `expr:"category"`
	HasClass   func(string) bool `expr:"hasClass"`
}

// A Program is a compiled expression.
type Program struct {
	src  string
	prog *vm.Program
}

// Compile compiles a boolean expression.
func Compile(src string) (*Program, error) {
	prog, err := expr.Compile(src, expr.Env(Env{}), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("exprfilter: compile %q: %w", src, err)
	}
	return &Program{src: src, prog: prog}, nil
}

func (p *Program) String() string { return p.src }

// Match evaluates the program against elt.
func (p *Program) Match(elt pandoc.Element) (bool, error) {
	out, err := expr.Run(p.prog, NewEnv(elt))
	if err != nil {
		return false, fmt.Errorf("exprfilter: %q on %s: %w", p.src, elt.Tag(), err)
	}
	return out.(bool), nil
}

// NewEnv returns the environment describing elt.
func NewEnv(elt pandoc.Element) Env {
	env := Env{
		Tag:      string(elt.Tag()),
		Text:     pandoc.Stringify(elt, false),
		Category: category(elt),
		HasClass: func(string) bool { return false },
	}
	if a, ok := elt.(pandoc.Attributed); ok {
		attr := a.Attrs()
		env.Identifier = attr.Id
		env.Classes = append([]string(nil), attr.Classes...)
		env.Attributes = attr.Map()
		env.HasClass = attr.HasClass
	}
	switch e := elt.(type) {
	case *pandoc.Header:
		env.Level = e.Level
	case *pandoc.Link:
		env.URL = e.Target.Url
	case *pandoc.Image:
		env.URL = e.Target.Url
	case *pandoc.RawInline:
		env.Format = e.Format
	case *pandoc.RawBlock:
		env.Format = e.Format
	}
	return env
}

func category(elt pandoc.Element) string {
	switch elt.(type) {
	case pandoc.Inline:
		return "inline"
	case pandoc.Block:
		return "block"
	case pandoc.MetaValue:
		return "meta"
	case *pandoc.Doc:
		return "document"
	}
	return "other"
}

// Drop returns an action deleting every element the program matches. The
// document itself is never deleted.
func Drop(p *Program) pandoc.Action {
	return func(elt pandoc.Element, _ *pandoc.Doc) ([]pandoc.Element, error) {
		if _, ok := elt.(*pandoc.Doc); ok {
			return nil, nil
		}
		ok, err := p.Match(elt)
		if err != nil || !ok {
			return nil, err
		}
		return pandoc.Delete(), nil
	}
}

// KeepOnly returns an action deleting the top-level blocks of a document the
// program does not match. Metadata is kept as is.
func KeepOnly(p *Program) pandoc.Action {
	return func(elt pandoc.Element, _ *pandoc.Doc) ([]pandoc.Element, error) {
		if _, ok := elt.Parent().(*pandoc.Doc); !ok || elt.Location() != "content" {
			return nil, nil
		}
		ok, err := p.Match(elt)
		if err != nil || ok {
			return nil, err
		}
		return pandoc.Delete(), nil
	}
}
