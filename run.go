package pandoc

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"

	"github.com/zeebo/blake3"
)

// ASTFormat names the JSON AST in conversions: text in this format is
// pandoc JSON, converted with pandoc's "json" reader or writer.
const ASTFormat = "panflute"

// A configuration for running pandoc executable.
type Conf struct {
	Pandoc string   // Path to pandoc executable
	Dir    string   // Working directory
	Format string   // Format to load or store.
	Ext    []string // List of format extensions, each must start with '+' or '-'
	Opts   []string // Additional options
}

// Makes a new Conf for format f.
func Format(f string) Conf {
	return Conf{Format: f}
}

// Returns a Conf with a specified path to pandoc executable.
func (c Conf) WithPandoc(path string) Conf {
	c.Pandoc = path
	return c
}

func (c Conf) WithDir(dir string) Conf {
	c.Dir = dir
	return c
}

func (c Conf) WithExt(ext string) Conf {
	c.Ext = append([]string(nil), c.Ext...)
	for i := range c.Ext {
		if c.Ext[i] == "-"+ext {
			c.Ext[i] = "+" + ext
			return c
		} else if c.Ext[i] == "+"+ext {
			return c
		}
	}
	c.Ext = append(c.Ext, "+"+ext)
	return c
}

func (c Conf) WithoutExt(ext string) Conf {
	c.Ext = append([]string(nil), c.Ext...)
	for i := range c.Ext {
		if c.Ext[i] == "-"+ext {
			return c
		} else if c.Ext[i] == "+"+ext {
			c.Ext[i] = "-" + ext
			return c
		}
	}
	c.Ext = append(c.Ext, "-"+ext)
	return c
}

// Add an option to the configuration. Accepts:
//   - single-letter option, e.g. "s"
//   - single-letter option with value, e.g. "o", "out.html"
//   - long option, e.g. "standalone"
//   - long option with value, e.g. "metadata", "title"
//   - long option with key and value, e.g. "metadata", "title", "Foo"
func (c Conf) WithOpt(opt string, val ...string) Conf {
	if opt == "" {
		return c
	}
	c.Opts = append([]string(nil), c.Opts...)
	if len(opt) == 1 {
		c.Opts = append(c.Opts, "-"+opt)
		if len(val) == 1 {
			c.Opts = append(c.Opts, val[0])
		} else if len(val) > 1 {
			c.Opts = append(c.Opts, val[0]+"="+val[1])
		}
	} else if len(val) == 0 {
		c.Opts = append(c.Opts, "--"+opt)
	} else if len(val) == 1 {
		c.Opts = append(c.Opts, "--"+opt+"="+val[0])
	} else if len(val) > 1 {
		c.Opts = append(c.Opts, "--"+opt+"="+val[0]+":"+val[1])
	}
	return c
}

func (c *Conf) pandocExecutable() (string, error) {
	if c.Pandoc != "" {
		return c.Pandoc, nil
	}
	if this, err := os.Executable(); err == nil {
		pandoc, err := exec.LookPath(filepath.Join(filepath.Dir(this), "pandoc"))
		if err == nil || errors.Is(err, exec.ErrDot) {
			return pandoc, nil
		}
	}
	if pandoc, err := exec.LookPath("pandoc"); err == nil {
		return pandoc, nil
	} else {
		return "", fmt.Errorf("pandoc executable is not found: %w", err)
	}
}

func formatArg(flag, format string, ext []string) string {
	if format == ASTFormat {
		format = "json"
	}
	return strings.Join(append([]string{flag, format}, ext...), "")
}

func (c *Conf) command(ctx context.Context, args ...string) (*exec.Cmd, error) {
	pandoc, err := c.pandocExecutable()
	if err != nil {
		return nil, err
	}
	cmd := exec.CommandContext(ctx, pandoc, append(args, c.Opts...)...)
	cmd.Dir = c.Dir
	return cmd, nil
}

func (c *Conf) loadCmd(ctx context.Context) (*exec.Cmd, error) {
	return c.command(ctx, "-tjson", formatArg("-f", c.Format, c.Ext))
}

func (c *Conf) storeCmd(ctx context.Context) (*exec.Cmd, error) {
	return c.command(ctx, "-fjson", formatArg("-t", c.Format, c.Ext))
}

// processError turns a failed run of cmd into a *ProcessError.
func processError(cmd *exec.Cmd, stderr *bytes.Buffer, err error) error {
	if err == nil {
		return nil
	}
	pe := &ProcessError{Cmd: strings.Join(cmd.Args, " "), ExitCode: -1, Stderr: stderr.String(), Err: err}
	var ee *exec.ExitError
	if errors.As(err, &ee) && ee.Exited() {
		pe.ExitCode = ee.ExitCode()
	}
	return pe
}

// load runs cmd and reads its output as a document.
func load(cmd *exec.Cmd) (*Doc, error) {
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	op, err := cmd.StdoutPipe()
	if err != nil {
		return nil, err
	}
	if err := cmd.Start(); err != nil {
		return nil, processError(cmd, &stderr, err)
	}
	p, err := ReadFrom(op)
	if err != nil {
		_, _ = io.Copy(io.Discard, op)
		if werr := cmd.Wait(); werr != nil {
			return nil, processError(cmd, &stderr, werr)
		}
		return nil, err
	}
	if err = cmd.Wait(); err != nil {
		return nil, processError(cmd, &stderr, err)
	}
	return p, nil
}

// store runs cmd with the document written to its input.
func store(cmd *exec.Cmd, p *Doc) error {
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	ip, err := cmd.StdinPipe()
	if err != nil {
		return err
	}
	if err := cmd.Start(); err != nil {
		return processError(cmd, &stderr, err)
	}
	if _, err := p.WriteTo(ip); err != nil {
		_ = ip.Close()
		_ = cmd.Wait()
		return err
	}
	if err = ip.Close(); err != nil {
		_ = cmd.Wait()
		return err
	}
	return processError(cmd, &stderr, cmd.Wait())
}

// LoadFrom converts the text read from r in conf.Format into a document.
func LoadFrom(ctx context.Context, r io.Reader, conf Conf) (*Doc, error) {
	cmd, err := conf.loadCmd(ctx)
	if err != nil {
		return nil, err
	}
	cmd.Stdin = r
	return load(cmd)
}

// LoadFile converts the files in conf.Format into a single document.
func LoadFile(ctx context.Context, conf Conf, files ...string) (*Doc, error) {
	cmd, err := conf.loadCmd(ctx)
	if err != nil {
		return nil, err
	}
	cmd.Args = append(cmd.Args, files...)
	return load(cmd)
}

// StoreTo renders the document in conf.Format to w.
func (p *Doc) StoreTo(ctx context.Context, w io.Writer, conf Conf) error {
	cmd, err := conf.storeCmd(ctx)
	if err != nil {
		return err
	}
	cmd.Stdout = w
	return store(cmd, p)
}

// StoreFile renders the document in conf.Format to the file f.
func (p *Doc) StoreFile(ctx context.Context, f string, conf Conf) error {
	oconf := conf.WithOpt("o", f)
	cmd, err := oconf.storeCmd(ctx)
	if err != nil {
		return err
	}
	return store(cmd, p)
}

// Converter converts text between formats with the pandoc executable.
// Conf provides the executable, the working directory and options added to
// every conversion; its Format and Ext are ignored.
type Converter struct {
	Conf  Conf
	Cache *Cache // optional
}

// Convert converts input from one format to another. Either format may be
// ASTFormat. Extra options are passed to pandoc as is.
func (c *Converter) Convert(ctx context.Context, input []byte, from, to string, opts ...string) ([]byte, error) {
	args := append([]string{formatArg("-f", from, nil), formatArg("-t", to, nil)}, opts...)
	if c.Cache != nil {
		if out, ok := c.Cache.get(c.Conf, args, input); ok {
			return out, nil
		}
	}
	cmd, err := c.Conf.command(ctx, args...)
	if err != nil {
		return nil, err
	}
	var stdout, stderr bytes.Buffer
	cmd.Stdin = bytes.NewReader(input)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := processError(cmd, &stderr, cmd.Run()); err != nil {
		return nil, err
	}
	out := stdout.Bytes()
	if c.Cache != nil {
		c.Cache.put(c.Conf, args, input, out)
	}
	return out, nil
}

// ConvertText converts text from one format to another. Line endings of
// the result are normalized to "\n" and the trailing newline is removed.
func (c *Converter) ConvertText(ctx context.Context, text, from, to string, opts ...string) (string, error) {
	out, err := c.Convert(ctx, []byte(text), from, to, opts...)
	if err != nil {
		return "", err
	}
	s := strings.ReplaceAll(string(out), "\r\n", "\n")
	return strings.TrimSuffix(s, "\n"), nil
}

// Parse converts text into a document.
func (c *Converter) Parse(ctx context.Context, text, from string, opts ...string) (*Doc, error) {
	out, err := c.Convert(ctx, []byte(text), from, ASTFormat, opts...)
	if err != nil {
		return nil, err
	}
	return Unmarshal(out)
}

// ParseBlocks converts text into a list of blocks.
func (c *Converter) ParseBlocks(ctx context.Context, text, from string, opts ...string) ([]Block, error) {
	doc, err := c.Parse(ctx, text, from, opts...)
	if err != nil {
		return nil, err
	}
	blocks := doc.Content().Items()
	doc.Content().Reset()
	return blocks, nil
}

// Render converts elements into text. A document is rendered as is; blocks
// and inlines are copied into a new document first, inlines wrapped in
// Plain blocks.
func (c *Converter) Render(ctx context.Context, to string, elts []Element, opts ...string) (string, error) {
	var doc *Doc
	if len(elts) == 1 {
		doc, _ = elts[0].(*Doc)
	}
	if doc == nil {
		doc = NewDoc()
		var inlines []Inline
		flush := func() {
			if len(inlines) > 0 {
				doc.Content().Append(NewPlain(inlines...))
				inlines = nil
			}
		}
		for _, e := range elts {
			c, err := Clone(e)
			if err != nil {
				return "", err
			}
			switch c := c.(type) {
			case Inline:
				inlines = append(inlines, c)
			case Block:
				flush()
				doc.Content().Append(c)
			default:
				return "", &TypeError{Got: kindName(c), Want: "Inline or Block"}
			}
		}
		flush()
	}
	input, err := Marshal(doc)
	if err != nil {
		return "", err
	}
	return c.ConvertText(ctx, string(input), ASTFormat, to, opts...)
}

// ConvertText converts text with a default Converter.
func ConvertText(ctx context.Context, text, from, to string, opts ...string) (string, error) {
	return (&Converter{}).ConvertText(ctx, text, from, to, opts...)
}

// Cache memoizes conversions by a digest of the executable, the arguments
// and the input. It is safe for concurrent use.
type Cache struct {
	mu      sync.Mutex
	entries map[[32]byte][]byte
}

func NewCache() *Cache {
	return &Cache{entries: make(map[[32]byte][]byte)}
}

// Len returns the number of cached conversions.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

func cacheKey(conf Conf, args []string, input []byte) [32]byte {
	h := blake3.New()
	for _, s := range append(append([]string{conf.Pandoc, conf.Dir}, args...), conf.Opts...) {
		_, _ = h.WriteString(s)
		_, _ = h.Write([]byte{0})
	}
	_, _ = h.Write(input)
	var k [32]byte
	copy(k[:], h.Sum(nil))
	return k
}

func (c *Cache) get(conf Conf, args []string, input []byte) ([]byte, bool) {
	k := cacheKey(conf, args, input)
	c.mu.Lock()
	defer c.mu.Unlock()
	out, ok := c.entries[k]
	return out, ok
}

func (c *Cache) put(conf Conf, args []string, input, output []byte) {
	k := cacheKey(conf, args, input)
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.entries == nil {
		c.entries = make(map[[32]byte][]byte)
	}
	c.entries[k] = append([]byte(nil), output...)
}
