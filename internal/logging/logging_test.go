package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	var tests = []struct {
		in   string
		want Level
		ok   bool
	}{
		{"debug", LevelDebug, true},
		{"INFO", LevelInfo, true},
		{" warn ", LevelWarn, true},
		{"warning", LevelWarn, true},
		{"error", LevelError, true},
		{"trace", LevelInfo, false},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if (err == nil) != tt.ok || got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, %v", tt.in, got, err)
		}
	}
	if LevelWarn.String() != "warn" || Level(9).String() != "Level(9)" {
		t.Error("unexpected level names")
	}
}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]Format{"": FormatAuto, "auto": FormatAuto, "JSON": FormatJSON, "text": FormatText} {
		if got, err := ParseFormat(in); err != nil || got != want {
			t.Errorf("ParseFormat(%q) = %v, %v", in, got, err)
		}
	}
	if _, err := ParseFormat("xml"); err == nil {
		t.Error("expected an error")
	}
}

func TestNew(t *testing.T) {
	var buf bytes.Buffer
	// a buffer is not a terminal
	logger := New(&buf, LevelInfo, FormatAuto)
	logger.Debug("hidden")
	logger.Info("shown", "k", "v")
	var rec map[string]any
	if err := json.Unmarshal(buf.Bytes(), &rec); err != nil {
		t.Fatalf("expected one JSON record, got %q: %v", buf.String(), err)
	}
	if rec["msg"] != "shown" || rec["k"] != "v" || rec["level"] != "INFO" {
		t.Errorf("unexpected record %v", rec)
	}

	buf.Reset()
	New(&buf, LevelDebug, FormatText).Debug("hello")
	if !strings.Contains(buf.String(), "level=DEBUG msg=hello") {
		t.Errorf("unexpected text record %q", buf.String())
	}
}

func TestLoggerFromContext(t *testing.T) {
	ctx := WithInvocation(context.Background())
	id := GetInvocation(ctx)
	if len(id) != 36 {
		t.Fatalf("unexpected invocation id %q", id)
	}
	if GetInvocation(context.Background()) != "" {
		t.Error("unexpected invocation id in an empty context")
	}
	var buf bytes.Buffer
	saved := defaultLogger
	defer func() { defaultLogger = saved }()
	defaultLogger = New(&buf, LevelInfo, FormatText)
	LoggerFromContext(ctx).Info("x")
	if !strings.Contains(buf.String(), "invocation="+id) {
		t.Errorf("record lacks the invocation id: %q", buf.String())
	}
}

func TestDiag(t *testing.T) {
	var buf bytes.Buffer
	d := NewDiag(&buf, "panfl")
	d.Error(errors.New("boom"))
	d.Warn("%d filters", 2)
	d.Note("done")
	want := "panfl: error: boom\npanfl: warning: 2 filters\npanfl: note: done\n"
	if buf.String() != want {
		t.Errorf("expected %q, got %q", want, buf.String())
	}
	buf.Reset()
	d.SetColor(true)
	d.Error(errors.New("boom"))
	if !strings.Contains(buf.String(), "\x1b[") {
		t.Errorf("expected escape sequences, got %q", buf.String())
	}
}
