package pandoc

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNoDocument is returned when an operation needs the root document
	// and the element is not attached to one.
	ErrNoDocument = errors.New("pandoc: element is not attached to a document")
	// ErrOptionNotFound is returned by GetOption when neither the element,
	// the document metadata nor the default provide a value.
	ErrOptionNotFound = errors.New("pandoc: option not found")
	// Continue may be returned by a walk action to keep the element as is.
	Continue = errors.New("continue")
)

// TypeError reports an element of the wrong kind or category, for example a
// block placed where an inline is expected.
type TypeError struct {
	Got      string // kind of the offending value
	Want     string // expected kind or category
	Location string // field the value was meant for, if known
}

func (e *TypeError) Error() string {
	if e.Location != "" {
		return fmt.Sprintf("pandoc: %s: expected %s, got %s", e.Location, e.Want, e.Got)
	}
	return fmt.Sprintf("pandoc: expected %s, got %s", e.Want, e.Got)
}

// ValueError reports a scalar outside its allowed domain.
type ValueError struct {
	Field    string
	Value    any
	Expected string
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("pandoc: invalid %s %#v: expected %s", e.Field, e.Value, e.Expected)
}

// StructureError reports an internally inconsistent element, such as a
// table whose rows disagree on the number of columns.
type StructureError struct {
	Kind Tag
	Msg  string
}

func (e *StructureError) Error() string {
	return fmt.Sprintf("pandoc: invalid %s: %s", e.Kind, e.Msg)
}

// DecodeError reports malformed or unsupported JSON input.
type DecodeError struct {
	Offset int // byte offset in the input
	Err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("pandoc: decode at offset %d: %v", e.Offset, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// ProcessError reports a failed external command, such as the pandoc
// executable or a filter, together with its diagnostic output.
type ProcessError struct {
	Cmd      string // command line
	ExitCode int    // -1 if the process did not start or was killed
	Stderr   string
	Err      error
}

func (e *ProcessError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "pandoc: %s", e.Cmd)
	if e.ExitCode >= 0 {
		fmt.Fprintf(&b, " exited with code %d", e.ExitCode)
	} else if e.Err != nil {
		fmt.Fprintf(&b, ": %v", e.Err)
	}
	if s := strings.TrimSpace(e.Stderr); s != "" {
		b.WriteString(": ")
		b.WriteString(s)
	}
	return b.String()
}

func (e *ProcessError) Unwrap() error { return e.Err }
