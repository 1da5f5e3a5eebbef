package harness

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"reflect"
	"strings"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/traefik/yaegi/interp"
	"github.com/traefik/yaegi/stdlib"

	pandoc "github.com/growler/go-panflute"
)

// scriptEntry is the function a Go script must define.
const scriptEntry = "Main"

// Option configures Run.
type Option func(*runner)

// WithLogger sets the logger filters are reported to.
func WithLogger(l *slog.Logger) Option {
	return func(r *runner) { r.log = l }
}

type runner struct {
	log *slog.Logger
}

// Run runs filters over doc in order and returns the resulting document.
// The output format, filter state and invoking pandoc version of doc are
// carried over to the result. The first failing filter aborts the run.
func Run(ctx context.Context, doc *pandoc.Doc, filters []Filter, opts ...Option) (*pandoc.Doc, error) {
	r := &runner{log: slog.Default()}
	for _, o := range opts {
		o(r)
	}
	for _, f := range filters {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		r.log.Debug("running filter", "filter", f.Name, "path", f.Path, "kind", f.Kind)
		var (
			res *pandoc.Doc
			err error
		)
		switch f.Kind {
		case Script:
			res, err = r.runScript(f, doc)
		case Patch:
			res, err = runPatch(f, doc)
		default:
			res, err = runExecutable(ctx, f, doc)
		}
		if err != nil {
			return nil, fmt.Errorf("harness: filter %s: %w", f.Name, err)
		}
		if res != doc {
			carry(doc, res)
			doc = res
		}
		r.log.Debug("filter completed", "filter", f.Name)
	}
	return doc, nil
}

func carry(from, to *pandoc.Doc) {
	to.Format = from.Format
	to.Era = from.Era
	to.PandocVersion = from.PandocVersion
	to.ReaderOptions = from.ReaderOptions
	to.State = from.State
}

func (r *runner) runScript(f Filter, doc *pandoc.Doc) (*pandoc.Doc, error) {
	var stdout bytes.Buffer
	i := interp.New(interp.Options{Stdout: &stdout, Stderr: os.Stderr, Env: os.Environ()})
	if err := i.Use(stdlib.Symbols); err != nil {
		return nil, err
	}
	if err := i.Use(symbols); err != nil {
		return nil, err
	}
	if _, err := i.EvalPath(f.Path); err != nil {
		return nil, fmt.Errorf("interpret %s: %w", f.Path, err)
	}
	fn, err := i.Eval(scriptEntry)
	if err != nil {
		return nil, fmt.Errorf("%s must define %s(*pandoc.Doc) (*pandoc.Doc, error): %w", f.Path, scriptEntry, err)
	}
	res, err := callEntry(fn, doc)
	if stdout.Len() > 0 {
		// pandoc reads the document from the filter's output
		r.log.Warn("filter wrote to stdout", "filter", f.Name, "output", strings.TrimSpace(stdout.String()))
	}
	return res, err
}

func callEntry(fn reflect.Value, doc *pandoc.Doc) (*pandoc.Doc, error) {
	if !fn.IsValid() || fn.Kind() != reflect.Func {
		return nil, fmt.Errorf("%s is not a function", scriptEntry)
	}
	if fn.Type().NumIn() != 1 || fn.Type().NumOut() != 2 {
		return nil, fmt.Errorf("%s must have the signature func(*pandoc.Doc) (*pandoc.Doc, error)", scriptEntry)
	}
	out := fn.Call([]reflect.Value{reflect.ValueOf(doc)})
	if e := out[1]; !e.IsNil() {
		if err, ok := e.Interface().(error); ok {
			return nil, err
		}
		return nil, fmt.Errorf("%s returned a non-error second value", scriptEntry)
	}
	res, ok := out[0].Interface().(*pandoc.Doc)
	if !ok {
		return nil, fmt.Errorf("%s returned %s, not *pandoc.Doc", scriptEntry, out[0].Type())
	}
	if res == nil {
		// the document was changed in place
		return doc, nil
	}
	return res, nil
}

func runPatch(f Filter, doc *pandoc.Doc) (*pandoc.Doc, error) {
	data, err := os.ReadFile(f.Path)
	if err != nil {
		return nil, err
	}
	patch, err := jsonpatch.DecodePatch(data)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", f.Path, err)
	}
	in, err := pandoc.Marshal(doc)
	if err != nil {
		return nil, err
	}
	out, err := patch.Apply(in)
	if err != nil {
		return nil, err
	}
	if out, err = tagFirst(out); err != nil {
		return nil, err
	}
	return pandoc.Unmarshal(out)
}

func runExecutable(ctx context.Context, f Filter, doc *pandoc.Doc) (*pandoc.Doc, error) {
	in, err := pandoc.Marshal(doc)
	if err != nil {
		return nil, err
	}
	cmd := exec.CommandContext(ctx, f.Path, doc.Format)
	if doc.PandocVersion != "" {
		cmd.Env = append(os.Environ(), "PANDOC_VERSION="+doc.PandocVersion)
	}
	var stdout, stderr bytes.Buffer
	cmd.Stdin = bytes.NewReader(in)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		pe := &pandoc.ProcessError{Cmd: strings.Join(cmd.Args, " "), ExitCode: -1, Stderr: stderr.String(), Err: err}
		var ee *exec.ExitError
		if errors.As(err, &ee) && ee.Exited() {
			pe.ExitCode = ee.ExitCode()
		}
		return nil, pe
	}
	return pandoc.Unmarshal(stdout.Bytes())
}
