// Package harness finds filters by name and runs them over a document.
//
// Three kinds of filters are supported:
//
//   - Go scripts (".go"), interpreted in process; a script is a main package
//     defining
//
//     func Main(doc *pandoc.Doc) (*pandoc.Doc, error)
//
//     with pandoc imported from "github.com/growler/go-panflute";
//   - JSON patches (".json-patch", ".patch.json"), RFC 6902 operations
//     applied to the JSON encoding of the document;
//   - executables, run as pandoc JSON filters with the output format as the
//     only argument.
package harness

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	pandoc "github.com/growler/go-panflute"
)

// ErrNotFound is wrapped by errors for filters that cannot be resolved.
var ErrNotFound = errors.New("harness: filter not found")

// Kind is the way a filter is run.
type Kind int

const (
	Executable Kind = iota
	Script
	Patch
)

func (k Kind) String() string {
	switch k {
	case Script:
		return "script"
	case Patch:
		return "patch"
	}
	return "executable"
}

// A Filter is a resolved filter.
type Filter struct {
	Name string // as requested
	Path string // absolute path of the file
	Kind Kind
}

// suffixes tried, in order, when looking a name up in a directory.
var suffixes = []string{"", ".go", ".json-patch", ".patch.json"}

func kindOf(path string) Kind {
	switch {
	case strings.HasSuffix(path, ".go"):
		return Script
	case strings.HasSuffix(path, ".json-patch"), strings.HasSuffix(path, ".patch.json"):
		return Patch
	}
	return Executable
}

// Resolve finds every named filter. Environment variables and a leading
// "~/" are expanded in names and directories. An absolute name must exist
// as given; a relative one is looked up in dirs in order, as given and with
// each of the known suffixes.
func Resolve(names, dirs []string) ([]Filter, error) {
	filters := make([]Filter, 0, len(names))
	for _, name := range names {
		f, err := resolve(name, dirs)
		if err != nil {
			return nil, err
		}
		filters = append(filters, f)
	}
	return filters, nil
}

func resolve(name string, dirs []string) (Filter, error) {
	exp := expand(name)
	if filepath.IsAbs(exp) {
		if isFile(exp) {
			return Filter{Name: name, Path: exp, Kind: kindOf(exp)}, nil
		}
		return Filter{}, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	for _, dir := range dirs {
		for _, suffix := range suffixes {
			path, err := filepath.Abs(filepath.Join(expand(dir), exp+suffix))
			if err != nil {
				continue
			}
			if isFile(path) {
				return Filter{Name: name, Path: path, Kind: kindOf(path)}, nil
			}
		}
	}
	return Filter{}, fmt.Errorf("%w: %s (searched %s)", ErrNotFound, name, strings.Join(dirs, ", "))
}

func expand(path string) string {
	path = os.ExpandEnv(path)
	if rest, ok := strings.CutPrefix(path, "~/"); ok {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, rest)
		}
	}
	return filepath.Clean(path)
}

func isFile(path string) bool {
	fi, err := os.Stat(path)
	return err == nil && fi.Mode().IsRegular()
}

// DataDir returns the filters directory of the pandoc user data directory.
func DataDir() string {
	if runtime.GOOS == "windows" {
		return filepath.Join(os.Getenv("APPDATA"), "pandoc", "filters")
	}
	if d := os.Getenv("XDG_DATA_HOME"); d != "" {
		return filepath.Join(d, "pandoc", "filters")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".local", "share", "pandoc", "filters")
}

// DefaultDirs returns the working directory followed by DataDir.
func DefaultDirs() []string {
	dirs := []string{"."}
	if d := DataDir(); d != "" {
		dirs = append(dirs, d)
	}
	return dirs
}

// Metadata keys read by FromMetadata.
const (
	FiltersKey = "panflute-filters"
	PathKey    = "panflute-path"
	VerboseKey = "panflute-verbose"
	EchoKey    = "panflute-echo"
)

// Settings are the filter settings a document carries in its metadata.
type Settings struct {
	Filters []string
	Dirs    []string
	Verbose bool
	Echo    string
}

// FromMetadata reads filter settings from the metadata of doc. Filters and
// paths may be given as a single string or as a list. The "--data-dir"
// entry of the paths stands for DataDir.
func FromMetadata(doc *pandoc.Doc) Settings {
	s := Settings{
		Filters: stringList(doc.GetMetadata(FiltersKey, nil)),
	}
	for _, d := range stringList(doc.GetMetadata(PathKey, nil)) {
		if d == "--data-dir" {
			d = DataDir()
		}
		if d != "" {
			s.Dirs = append(s.Dirs, d)
		}
	}
	s.Verbose, _ = doc.GetMetadata(VerboseKey, false).(bool)
	s.Echo, _ = doc.GetMetadata(EchoKey, "").(string)
	return s
}

func stringList(v any) []string {
	switch v := v.(type) {
	case string:
		return []string{v}
	case []any:
		var res []string
		for _, e := range v {
			if s, ok := e.(string); ok {
				res = append(res, s)
			}
		}
		return res
	}
	return nil
}
