package pandoc

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestConf(t *testing.T) {
	base := Format("markdown").WithExt("smart")
	c := base.WithoutExt("smart").WithExt("footnotes").WithoutExt("raw_html").
		WithOpt("s").WithOpt("o", "out.html").WithOpt("standalone").
		WithOpt("metadata", "title").WithOpt("variable", "k", "v").WithOpt("")
	if diff := cmp.Diff([]string{"+smart"}, base.Ext); diff != "" {
		t.Errorf("builder changed the base (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"-smart", "+footnotes", "-raw_html"}, c.Ext); diff != "" {
		t.Errorf("extensions (-want +got):\n%s", diff)
	}
	want := []string{"-s", "-o", "out.html", "--standalone", "--metadata=title", "--variable=k:v"}
	if diff := cmp.Diff(want, c.Opts); diff != "" {
		t.Errorf("options (-want +got):\n%s", diff)
	}
	if got := formatArg("-f", c.Format, c.Ext); got != "-fmarkdown-smart+footnotes-raw_html" {
		t.Errorf("unexpected format argument %s", got)
	}
	if got := formatArg("-t", ASTFormat, nil); got != "-tjson" {
		t.Errorf("unexpected format argument %s", got)
	}
}

func TestCacheKey(t *testing.T) {
	conf := Conf{Pandoc: "/bin/pandoc"}
	a := cacheKey(conf, []string{"-fmarkdown", "-tjson"}, []byte("x"))
	if a != cacheKey(conf, []string{"-fmarkdown", "-tjson"}, []byte("x")) {
		t.Error("key is not stable")
	}
	for _, k := range [][32]byte{
		cacheKey(conf, []string{"-fmarkdown", "-tjson"}, []byte("y")),
		cacheKey(conf, []string{"-fmarkdow", "n-tjson"}, []byte("x")),
		cacheKey(conf.WithOpt("s"), []string{"-fmarkdown", "-tjson"}, []byte("x")),
		cacheKey(Conf{}, []string{"-fmarkdown", "-tjson"}, []byte("x")),
	} {
		if k == a {
			t.Error("distinct requests share a key")
		}
	}
}

// fakePandoc writes a shell script standing in for the pandoc executable.
func fakePandoc(t *testing.T, script string) Conf {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell scripts are not executable on windows")
	}
	path := filepath.Join(t.TempDir(), "pandoc")
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+script+"\n"), 0o755); err != nil {
		t.Fatal(err)
	}
	return Conf{Pandoc: path}
}

func TestConverter(t *testing.T) {
	conv := &Converter{Conf: fakePandoc(t, "cat"), Cache: NewCache()}
	ctx := context.Background()
	out, err := conv.ConvertText(ctx, "a\r\nb\n", "markdown", "plain")
	if err != nil {
		t.Fatal(err)
	}
	if out != "a\nb" {
		t.Errorf("unexpected output %q", out)
	}
	if _, err := conv.ConvertText(ctx, "a\r\nb\n", "markdown", "plain"); err != nil {
		t.Fatal(err)
	}
	if conv.Cache.Len() != 1 {
		t.Errorf("expected one cached conversion, got %d", conv.Cache.Len())
	}

	blocks, err := conv.ParseBlocks(ctx, t1, ASTFormat)
	if err != nil {
		t.Fatal(err)
	}
	if len(blocks) != 8 || blocks[0].Parent() != nil {
		t.Errorf("unexpected blocks %d, parent %v", len(blocks), blocks[0].Parent())
	}

	s, err := conv.Render(ctx, "html", []Element{NewStr("a"), NewSpace(), NewHorizontalRule()})
	if err != nil {
		t.Fatal(err)
	}
	if want := `{"pandoc-api-version":[1,23],"meta":{},"blocks":[{"t":"Plain","c":[{"t":"Str","c":"a"},{"t":"Space"}]},{"t":"HorizontalRule"}]}`; s != want {
		t.Errorf("expected %s, got %s", want, s)
	}
	if _, err := conv.Render(ctx, "html", []Element{NewMetaBool(true)}); err == nil {
		t.Error("expected an error for a metadata value")
	}
}

func TestConverterFailure(t *testing.T) {
	conv := &Converter{Conf: fakePandoc(t, "echo 'unknown format' >&2\nexit 3")}
	_, err := conv.Convert(context.Background(), []byte("x"), "nope", "html")
	var pe *ProcessError
	if !errors.As(err, &pe) {
		t.Fatalf("expected a *ProcessError, got %v", err)
	}
	if pe.ExitCode != 3 || !strings.Contains(pe.Stderr, "unknown format") {
		t.Errorf("unexpected error %+v", pe)
	}
	if !strings.Contains(pe.Error(), "exited with code 3: unknown format") {
		t.Errorf("unexpected message %q", pe.Error())
	}
}

func TestLoadStore(t *testing.T) {
	conf := fakePandoc(t, "cat")
	ctx := context.Background()
	doc, err := LoadFrom(ctx, strings.NewReader(t1), conf.WithPandoc(conf.Pandoc))
	if err != nil {
		t.Fatal(err)
	}
	var out strings.Builder
	if err := doc.StoreTo(ctx, &out, conf); err != nil {
		t.Fatal(err)
	}
	if out.String() != t1 {
		t.Errorf("unexpected output %s", out.String())
	}
	if _, err := LoadFrom(ctx, strings.NewReader("not json"), conf); err == nil {
		t.Error("expected a decode error")
	}
}
