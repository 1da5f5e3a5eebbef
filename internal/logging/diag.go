package logging

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// Diag prints diagnostics for people, colored when its writer is a
// terminal.
type Diag struct {
	w    io.Writer
	prog string
	bad  *color.Color
	warn *color.Color
	note *color.Color
}

// NewDiag returns a Diag writing to w with messages prefixed by prog.
func NewDiag(w io.Writer, prog string) *Diag {
	d := &Diag{
		w:    w,
		prog: prog,
		bad:  color.New(color.FgRed, color.Bold),
		warn: color.New(color.FgYellow),
		note: color.New(color.FgCyan),
	}
	d.SetColor(IsTerminal(w))
	return d
}

// SetColor turns colors on or off.
func (d *Diag) SetColor(on bool) {
	for _, c := range []*color.Color{d.bad, d.warn, d.note} {
		if on {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
}

func (d *Diag) print(c *color.Color, label, msg string) {
	fmt.Fprintf(d.w, "%s: %s %s\n", d.prog, c.Sprint(label+":"), msg)
}

// Error prints err.
func (d *Diag) Error(err error) { d.print(d.bad, "error", err.Error()) }

// Warn prints a warning.
func (d *Diag) Warn(format string, args ...any) { d.print(d.warn, "warning", fmt.Sprintf(format, args...)) }

// Note prints an informational message.
func (d *Diag) Note(format string, args ...any) { d.print(d.note, "note", fmt.Sprintf(format, args...)) }
