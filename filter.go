package pandoc

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Hook runs once on the whole document, before or after the filters.
type Hook func(doc *Doc) error

type runConfig struct {
	prepare  Hook
	finalize Hook
	stop     func(Element) bool
	format   string
	logger   *slog.Logger
	trace    bool
}

// RunOption configures a filter run.
type RunOption func(*runConfig)

// Prepare sets the hook run after the document is read, before the first
// filter. It may stash working data in doc.State.
func Prepare(h Hook) RunOption {
	return func(c *runConfig) { c.prepare = h }
}

// Finalize sets the hook run after the last filter, before the document is
// written.
func Finalize(h Hook) RunOption {
	return func(c *runConfig) { c.finalize = h }
}

// WithStopIf passes StopIf(f) to every walk of the run.
func WithStopIf(f func(Element) bool) RunOption {
	return func(c *runConfig) { c.stop = f }
}

// WithFormat sets the output format of the document before the filters run.
func WithFormat(format string) RunOption {
	return func(c *runConfig) { c.format = format }
}

// WithLogger sets the logger of the run. The default discards records.
func WithLogger(l *slog.Logger) RunOption {
	return func(c *runConfig) { c.logger = l }
}

// WithTrace logs, at debug level, a text diff of the document after every
// filter that changed it.
func WithTrace(on bool) RunOption {
	return func(c *runConfig) { c.trace = on }
}

func newRunConfig(opts []RunOption) *runConfig {
	c := &runConfig{}
	for _, o := range opts {
		o(c)
	}
	if c.logger == nil {
		c.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	c.logger = c.logger.With("run", uuid.NewString())
	return c
}

// ApplyFilters applies the actions to doc one after another, each as a
// full walk of the document, between the prepare and finalize hooks. It
// returns the resulting document and stops at the first error.
func ApplyFilters(doc *Doc, actions []Action, opts ...RunOption) (*Doc, error) {
	c := newRunConfig(opts)
	return c.apply(doc, actions)
}

func (c *runConfig) apply(doc *Doc, actions []Action) (*Doc, error) {
	if c.format != "" {
		doc.Format = c.format
	}
	if doc.State == nil {
		doc.State = map[string]any{}
	}
	if c.prepare != nil {
		if err := c.prepare(doc); err != nil {
			return nil, fmt.Errorf("prepare: %w", err)
		}
	}
	var walkOpts []WalkOption
	if c.stop != nil {
		walkOpts = append(walkOpts, StopIf(c.stop))
	}
	var before string
	if c.trace {
		before = Stringify(doc, true)
	}
	for i, action := range actions {
		c.logger.Debug("applying filter", "filter", i, "format", doc.Format)
		next, err := doc.Walk(action, walkOpts...)
		if err != nil {
			c.logger.Error("filter failed", "filter", i, "error", err)
			return nil, fmt.Errorf("filter %d: %w", i, err)
		}
		doc = next
		if c.trace {
			after := Stringify(doc, true)
			if after != before {
				c.logger.Debug("document changed", "filter", i, "diff", textDiff(before, after))
			}
			before = after
		}
	}
	if c.finalize != nil {
		if err := c.finalize(doc); err != nil {
			return nil, fmt.Errorf("finalize: %w", err)
		}
	}
	return doc, nil
}

func textDiff(from, to string) string {
	dmp := diffpatch.New()
	diffs := dmp.DiffMain(from, to, false)
	return dmp.PatchToText(dmp.PatchMake(from, diffs))
}

// RunFilters reads a document from r, applies the actions with
// ApplyFilters and writes the result to w in the era it was read in.
//
// Example:
//
//	func main() {
//		err := pandoc.RunFilters(os.Stdin, os.Stdout, []pandoc.Action{smallcaps, links},
//			pandoc.WithFormat(os.Args[1]))
//		if err != nil {
//			fmt.Fprintln(os.Stderr, err)
//			os.Exit(1)
//		}
//	}
func RunFilters(r io.Reader, w io.Writer, actions []Action, opts ...RunOption) error {
	c := newRunConfig(opts)
	doc, err := ReadFrom(r)
	if err != nil {
		c.logger.Error("cannot read document", "error", err)
		return err
	}
	c.logger.Debug("document read", "era", doc.Era, "api", versionString(doc.APIVersion), "blocks", doc.Content().Len())
	if doc, err = c.apply(doc, actions); err != nil {
		return err
	}
	_, err = doc.WriteTo(w)
	return err
}

// RunFilter is RunFilters with a single action.
func RunFilter(r io.Reader, w io.Writer, action Action, opts ...RunOption) error {
	return RunFilters(r, w, []Action{action}, opts...)
}
