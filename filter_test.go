package pandoc

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func upper() Action {
	return On(func(s *Str, _ *Doc) ([]Element, error) {
		s.Text = strings.ToUpper(s.Text)
		return nil, nil
	})
}

func TestApplyFilters(t *testing.T) {
	doc := NewDoc(NewPara(NewStr("a"), NewStr("b")))
	var log []string
	record := func(name string) Action {
		return func(e Element, d *Doc) ([]Element, error) {
			if _, ok := e.(*Doc); ok {
				log = append(log, name)
				if d.State["prepared"] != true {
					t.Errorf("%s: state from prepare is missing", name)
				}
			}
			return nil, nil
		}
	}
	res, err := ApplyFilters(doc, []Action{record("first"), upper(), record("second")},
		Prepare(func(d *Doc) error {
			log = append(log, "prepare")
			d.State["prepared"] = true
			return nil
		}),
		Finalize(func(d *Doc) error {
			log = append(log, "finalize")
			return nil
		}),
		WithFormat("latex"),
	)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"prepare", "first", "second", "finalize"}, log); diff != "" {
		t.Errorf("unexpected order (-want +got):\n%s", diff)
	}
	if res.Format != "latex" || Stringify(res, false) != "AB" {
		t.Errorf("unexpected result %s %q", res.Format, Stringify(res, false))
	}
}

func TestApplyFiltersErrors(t *testing.T) {
	boom := errors.New("boom")
	var ran bool
	_, err := ApplyFilters(NewDoc(), []Action{
		func(Element, *Doc) ([]Element, error) { return nil, boom },
		func(Element, *Doc) ([]Element, error) { ran = true; return nil, nil },
	}, Finalize(func(*Doc) error { ran = true; return nil }))
	if !errors.Is(err, boom) {
		t.Errorf("expected boom, got %v", err)
	}
	if ran {
		t.Error("run continued after a failing filter")
	}
	_, err = ApplyFilters(NewDoc(), nil, Prepare(func(*Doc) error { return boom }))
	if !errors.Is(err, boom) || !strings.HasPrefix(err.Error(), "prepare") {
		t.Errorf("expected a prepare error, got %v", err)
	}
}

func TestRunFilters(t *testing.T) {
	var out bytes.Buffer
	err := RunFilter(strings.NewReader(t1Legacy), &out, upper())
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(out.String(), `[{"unMeta":{}},[{"t":"Header","c":[1,["mainpage",["title"],[]],[{"t":"Str","c":"A"},{"t":"Space","c":[]},{"t":"Str","c":"DOCUMENT"}]]}`) {
		t.Errorf("unexpected output %s", out.String())
	}
	if err := RunFilters(strings.NewReader("{"), &out, nil); err == nil {
		t.Error("expected a decode error")
	}
}

func TestRunTrace(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
	_, err := ApplyFilters(NewDoc(NewPara(NewStr("abc"))), []Action{upper()}, WithLogger(logger), WithTrace(true))
	if err != nil {
		t.Fatal(err)
	}
	s := logs.String()
	if !strings.Contains(s, "document changed") || !strings.Contains(s, "run=") || !strings.Contains(s, "ABC") {
		t.Errorf("unexpected trace %s", s)
	}
}

func TestStopIfOption(t *testing.T) {
	doc := NewDoc(NewPara(NewStr("a")), NewDiv(Attr{}, NewPara(NewStr("b"))))
	res, err := ApplyFilters(doc, []Action{upper()}, WithStopIf(func(e Element) bool { return Is[*Div](e) }))
	if err != nil {
		t.Fatal(err)
	}
	if got := Stringify(res, false); got != "Ab" {
		t.Errorf("expected %q, got %q", "Ab", got)
	}
}
