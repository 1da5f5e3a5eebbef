package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/google/go-cmp/cmp"
)

const sample = `
format: latex
filters: [include, caps.go]
dirs:
  - ~/filters
data-dir: true
drop:
  - tag == "Div" && hasClass("draft")
keep: category == "block"
trace: true
log:
  level: debug
  format: json
`

func TestParse(t *testing.T) {
	c, err := Parse([]byte(sample))
	if err != nil {
		t.Fatal(err)
	}
	want := &Config{
		Format:  "latex",
		Filters: []string{"include", "caps.go"},
		Dirs:    []string{"~/filters"},
		DataDir: true,
		Drop:    []string{`tag == "Div" && hasClass("draft")`},
		Keep:    `category == "block"`,
		Trace:   true,
		Log:     Log{Level: "debug", Format: "json"},
	}
	if diff := cmp.Diff(want, c); diff != "" {
		t.Errorf("unexpected config (-want +got):\n%s", diff)
	}
	empty, err := Parse(nil)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(&Config{}, empty); diff != "" {
		t.Errorf("unexpected config (-want +got):\n%s", diff)
	}
}

func TestParseErrors(t *testing.T) {
	for _, in := range []string{
		"unknown: 1",
		"filters: 7",
		"log:\n  level: loud",
		"log:\n  format: xml",
		"format: [",
	} {
		if _, err := Parse([]byte(in)); err == nil {
			t.Errorf("Parse(%q): expected an error", in)
		}
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	if err := os.WriteFile(path, []byte("format: html\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	c, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if c.Format != "html" {
		t.Errorf("unexpected format %q", c.Format)
	}
	if _, err := Load(path + ".missing"); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("expected fs.ErrNotExist, got %v", err)
	}
}

func TestLoadDefault(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("config dir comes from XDG_CONFIG_HOME on linux only")
	}
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	c, err := LoadDefault()
	if err != nil || c.Format != "" {
		t.Fatalf("expected an empty config, got %+v, %v", c, err)
	}
	if err := os.MkdirAll(filepath.Join(dir, "panfl"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "panfl", FileName), []byte("trace: true\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if c, err = LoadDefault(); err != nil || !c.Trace {
		t.Errorf("expected trace from the default file, got %+v, %v", c, err)
	}
}
