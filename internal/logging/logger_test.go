package logging

import (
	"bytes"
	"strings"
	"testing"
)

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l := New(Warn, &buf)
	l.Debug("dropped")
	l.Info("dropped")
	l.Warn("kept")
	l.Error("kept too")

	out := buf.String()
	if strings.Contains(out, "dropped") {
		t.Fatalf("low-severity entries leaked: %q", out)
	}
	if !strings.Contains(out, "[WARN] kept") || !strings.Contains(out, "[ERROR] kept too") {
		t.Fatalf("expected warn and error entries, got %q", out)
	}
}

func TestFieldRendering(t *testing.T) {
	var buf bytes.Buffer
	l := New(Debug, &buf)
	l.Debug("dispatch", F("angles", 2048), F("workers", 4))

	out := buf.String()
	if !strings.Contains(out, "angles=2048") || !strings.Contains(out, "workers=4") {
		t.Fatalf("fields missing: %q", out)
	}
}

func TestDiscard(t *testing.T) {
	// Must not panic and must accept every level.
	l := Discard()
	l.Debug("x")
	l.Error("x", F("k", "v"))
}
