// Command panfl runs document filters as a pandoc filter.
//
// pandoc invokes it with the output format as its only argument and the
// document on standard input:
//
//	pandoc --filter panfl -M panflute-filters=caps,links.go in.md -o out.html
//
// The filters come from the command line, the config file or, when neither
// names any, from the document metadata. They are run in order, followed by
// the --drop and --keep expressions.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/ulikunitz/xz"

	pandoc "github.com/growler/go-panflute"
	"github.com/growler/go-panflute/exprfilter"
	"github.com/growler/go-panflute/harness"
	"github.com/growler/go-panflute/internal/config"
	"github.com/growler/go-panflute/internal/logging"
)

// CLI defines the command-line interface using Kong
type CLI struct {
	Format    string   `arg:"" optional:"" help:"Output format passed to the filters."`
	Filters   []string `name:"filter" short:"f" sep:"none" help:"Filter to run, repeatable."`
	Dirs      []string `name:"dir" short:"d" sep:"none" help:"Extra dir to search filters in, repeatable."`
	DataDir   bool     `name:"data-dir" help:"Search the pandoc user data dir too."`
	Drop      []string `name:"drop" sep:"none" placeholder:"EXPR" help:"Delete elements matching EXPR, repeatable."`
	Keep      string   `name:"keep" placeholder:"EXPR" help:"Keep only top-level blocks matching EXPR."`
	Input     string   `name:"input" short:"i" type:"path" help:"Read the document from a file, decompressing .xz."`
	Output    string   `name:"output" short:"o" type:"path" help:"Write the document to a file, compressing .xz."`
	Config    string   `name:"config" short:"c" type:"path" help:"Config file (default: user config dir)."`
	Trace     bool     `name:"trace" help:"Log document changes made by every expression."`
	Verbose   bool     `name:"verbose" short:"v" help:"Verbose output."`
	LogFormat string   `name:"log-format" help:"Log format: auto, json or text."`
}

// settings are the command line merged over the config file.
type settings struct {
	format   string
	filters  []string
	dirs     []string
	dataDir  bool
	drop     []string
	keep     string
	trace    bool
	logLevel logging.Level
	logFmt   logging.Format
}

func (c *CLI) loadConfig() (*config.Config, error) {
	if c.Config != "" {
		return config.Load(c.Config)
	}
	return config.LoadDefault()
}

func (c *CLI) merge(cfg *config.Config) (*settings, error) {
	s := &settings{
		format:   c.Format,
		filters:  append(append([]string(nil), cfg.Filters...), c.Filters...),
		dirs:     append(append([]string(nil), c.Dirs...), cfg.Dirs...),
		dataDir:  c.DataDir || cfg.DataDir,
		drop:     append(append([]string(nil), cfg.Drop...), c.Drop...),
		keep:     c.Keep,
		trace:    c.Trace || cfg.Trace,
		logLevel: logging.LevelWarn,
	}
	if s.format == "" {
		s.format = cfg.Format
	}
	if s.keep == "" {
		s.keep = cfg.Keep
	}
	var err error
	if cfg.Log.Level != "" {
		if s.logLevel, err = logging.ParseLevel(cfg.Log.Level); err != nil {
			return nil, err
		}
	}
	if c.Verbose {
		s.logLevel = logging.LevelDebug
	}
	logFmt := cfg.Log.Format
	if c.LogFormat != "" {
		logFmt = c.LogFormat
	}
	if s.logFmt, err = logging.ParseFormat(logFmt); err != nil {
		return nil, err
	}
	return s, nil
}

// actions compiles the drop and keep expressions.
func (s *settings) actions() ([]pandoc.Action, error) {
	var actions []pandoc.Action
	for _, src := range s.drop {
		p, err := exprfilter.Compile(src)
		if err != nil {
			return nil, err
		}
		actions = append(actions, exprfilter.Drop(p))
	}
	if s.keep != "" {
		p, err := exprfilter.Compile(s.keep)
		if err != nil {
			return nil, err
		}
		actions = append(actions, exprfilter.KeepOnly(p))
	}
	return actions, nil
}

func openInput(path string, stdin io.Reader) (io.Reader, func() error, error) {
	if path == "" || path == "-" {
		return stdin, func() error { return nil }, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	if !strings.HasSuffix(path, ".xz") {
		return f, f.Close, nil
	}
	r, err := xz.NewReader(f)
	if err != nil {
		f.Close()
		return nil, nil, fmt.Errorf("%s: %w", path, err)
	}
	return r, f.Close, nil
}

func createOutput(path string, stdout io.Writer) (io.Writer, func() error, error) {
	if path == "" || path == "-" {
		return stdout, func() error { return nil }, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, err
	}
	if !strings.HasSuffix(path, ".xz") {
		return f, f.Close, nil
	}
	w, err := xz.NewWriter(f)
	if err != nil {
		f.Close()
		return nil, nil, fmt.Errorf("%s: %w", path, err)
	}
	return w, func() error {
		if err := w.Close(); err != nil {
			f.Close()
			return err
		}
		return f.Close()
	}, nil
}

// filter runs the configured filters over doc.
func (s *settings) filter(ctx context.Context, doc *pandoc.Doc, log *slog.Logger, diag *logging.Diag) (*pandoc.Doc, error) {
	actions, err := s.actions()
	if err != nil {
		return nil, err
	}
	if s.format != "" {
		doc.Format = s.format
	}
	names, dirs := s.filters, s.dirs
	if len(names) == 0 {
		meta := harness.FromMetadata(doc)
		names = meta.Filters
		dirs = append(dirs, meta.Dirs...)
		if meta.Echo != "" {
			diag.Note("%s", meta.Echo)
		}
		if meta.Verbose {
			diag.Note("filters %s, searched in %s", strings.Join(names, ", "), strings.Join(dirs, ", "))
		}
	}
	if s.dataDir {
		if d := harness.DataDir(); d != "" {
			dirs = append(dirs, d)
		}
	}
	dirs = append(dirs, harness.DefaultDirs()...)
	filters, err := harness.Resolve(names, dirs)
	if err != nil {
		return nil, err
	}
	if doc, err = harness.Run(ctx, doc, filters, harness.WithLogger(log)); err != nil {
		return nil, err
	}
	if len(actions) == 0 {
		return doc, nil
	}
	return pandoc.ApplyFilters(doc, actions,
		pandoc.WithLogger(log),
		pandoc.WithTrace(s.trace),
	)
}

func (c *CLI) run(ctx context.Context, stdin io.Reader, stdout io.Writer, diag *logging.Diag) error {
	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}
	s, err := c.merge(cfg)
	if err != nil {
		return err
	}
	logging.InitLogger(s.logLevel, s.logFmt)
	ctx = logging.WithInvocation(ctx)
	log := logging.LoggerFromContext(ctx)

	r, closeIn, err := openInput(c.Input, stdin)
	if err != nil {
		return err
	}
	doc, err := pandoc.ReadFrom(r)
	if cerr := closeIn(); err == nil {
		err = cerr
	}
	if err != nil {
		return err
	}
	log.Debug("document read", "era", doc.Era, "format", s.format)
	if doc, err = s.filter(ctx, doc, log, diag); err != nil {
		return err
	}
	w, closeOut, err := createOutput(c.Output, stdout)
	if err != nil {
		return err
	}
	_, err = doc.WriteTo(w)
	if cerr := closeOut(); err == nil {
		err = cerr
	}
	return err
}

func main() {
	var cli CLI
	kong.Parse(&cli,
		kong.Name("panfl"),
		kong.Description("Run document filters over a pandoc JSON document."),
		kong.UsageOnError(),
	)
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	diag := logging.NewDiag(os.Stderr, "panfl")
	if err := cli.run(ctx, os.Stdin, os.Stdout, diag); err != nil {
		diag.Error(err)
		stop()
		os.Exit(1)
	}
}
