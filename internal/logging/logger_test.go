package logging

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestConsoleHandlerOutput(t *testing.T) {
	var buf bytes.Buffer
	levelVar := new(slog.LevelVar)
	logger := slog.New(newConsoleHandler(&buf, levelVar)).With(String("component", "publish"))

	logger.Info("stage started", String("stage", "rendering"), Int("version", 3))

	line := buf.String()
	if !strings.Contains(line, "INFO publish: stage started") {
		t.Fatalf("unexpected line %q", line)
	}
	if !strings.Contains(line, "stage=rendering") || !strings.Contains(line, "version=3") {
		t.Fatalf("missing attrs in %q", line)
	}
}

func TestConsoleHandlerQuotesValuesWithSpaces(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(newConsoleHandler(&buf, new(slog.LevelVar)))

	logger.Info("publish aborted", String("reason", "disk full"))
	if !strings.Contains(buf.String(), `reason="disk full"`) {
		t.Fatalf("unexpected line %q", buf.String())
	}
}

func TestConsoleHandlerLevelFilter(t *testing.T) {
	var buf bytes.Buffer
	levelVar := new(slog.LevelVar)
	levelVar.Set(slog.LevelWarn)
	logger := slog.New(newConsoleHandler(&buf, levelVar))

	logger.Info("dropped")
	if buf.Len() != 0 {
		t.Fatalf("info record should be filtered, got %q", buf.String())
	}
	logger.Error("kept")
	if !strings.Contains(buf.String(), "ERROR kept") {
		t.Fatalf("unexpected line %q", buf.String())
	}
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, err := New(Options{Format: "xml"}); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestNewNopDiscards(t *testing.T) {
	logger := NewNop()
	logger.Error("nothing happens", Error(nil))
}
