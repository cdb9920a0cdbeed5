package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
)

func TestWriterReceivesText(t *testing.T) {
	var buf bytes.Buffer
	l := New(WithQuiet(), WithWriter(&buf))
	l.Info("status redrawn", "rows", 3)

	out := buf.String()
	if !strings.Contains(out, "status redrawn") || !strings.Contains(out, "rows=3") {
		t.Errorf("unexpected output %q", out)
	}
}

func TestJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	l := New(WithQuiet(), WithWriter(&buf), WithFormat("json"))
	l.Warn("screen reinit", "reason", "periodic")

	var rec map[string]any
	if err := json.Unmarshal(buf.Bytes(), &rec); err != nil {
		t.Fatalf("expected JSON line, got %q: %v", buf.String(), err)
	}
	if rec["msg"] != "screen reinit" || rec["reason"] != "periodic" {
		t.Errorf("unexpected record %v", rec)
	}
}

func TestDebugLevel(t *testing.T) {
	var quiet, loud bytes.Buffer
	New(WithQuiet(), WithWriter(&quiet)).Debug("hidden")
	New(WithQuiet(), WithWriter(&loud), WithDebug()).Debug("shown")

	if quiet.Len() != 0 {
		t.Errorf("expected debug suppressed, got %q", quiet.String())
	}
	if !strings.Contains(loud.String(), "shown") {
		t.Errorf("expected debug output, got %q", loud.String())
	}
}

func TestContextRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	l := New(WithQuiet(), WithWriter(&buf))
	ctx := WithLogger(context.Background(), l)

	FromContext(ctx).Info("from context")
	if !strings.Contains(buf.String(), "from context") {
		t.Errorf("expected logger from context to write, got %q", buf.String())
	}
}

func TestFromContextDefault(t *testing.T) {
	if FromContext(context.Background()) == nil {
		t.Fatal("expected non-nil fallback logger")
	}
}
