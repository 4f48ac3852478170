package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestNew_TextFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{
		Level:  slog.LevelInfo,
		Format: FormatText,
		Output: &buf,
	})

	logger.Info("walking tree", "root", "/media")

	output := buf.String()
	if !strings.Contains(output, "walking tree") {
		t.Errorf("output missing message: %q", output)
	}
	if !strings.Contains(output, "root=/media") {
		t.Errorf("output missing attribute: %q", output)
	}
}

func TestNew_JSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{
		Level:  slog.LevelInfo,
		Format: FormatJSON,
		Output: &buf,
	})

	logger.Info("renamed", "from", "a.mkv", "to", "b.mkv")

	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, buf.String())
	}
	if record["msg"] != "renamed" {
		t.Errorf("msg = %v, want %q", record["msg"], "renamed")
	}
	if record["from"] != "a.mkv" {
		t.Errorf("from = %v, want %q", record["from"], "a.mkv")
	}
	if _, ok := record["time"]; !ok {
		t.Error("JSON record should carry a timestamp")
	}
	if record["level"] != "INFO" {
		t.Errorf("level = %v, want INFO", record["level"])
	}
}

func TestNew_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{
		Level:  slog.LevelError,
		Format: FormatText,
		Output: &buf,
	})

	logger.Info("should be dropped")
	logger.Error("should appear")

	output := buf.String()
	if strings.Contains(output, "should be dropped") {
		t.Error("info message should have been filtered")
	}
	if !strings.Contains(output, "should appear") {
		t.Error("error message should have passed the filter")
	}
}

func TestNewDiscard(t *testing.T) {
	logger := NewDiscard()
	// Must not panic and must be enabled for nothing visible
	logger.Error("dropped")
}

func TestLevelFromVerbosity(t *testing.T) {
	tests := []struct {
		verbosity int
		want      slog.Level
	}{
		{-1, slog.LevelWarn},
		{0, slog.LevelWarn},
		{1, slog.LevelInfo},
		{2, slog.LevelDebug},
		{3, LevelTrace},
		{4, LevelTrace},
	}

	for _, tt := range tests {
		got := LevelFromVerbosity(tt.verbosity)
		if got != tt.want {
			t.Errorf("LevelFromVerbosity(%d) = %v, want %v", tt.verbosity, got, tt.want)
		}
	}
}

func TestLevelTrace(t *testing.T) {
	if LevelTrace >= slog.LevelDebug {
		t.Error("LevelTrace should be lower than LevelDebug")
	}
}

func TestTestWriter_TrimsNewline(t *testing.T) {
	tw := &testWriter{t: t}

	n, err := tw.Write([]byte("line with newline\n"))
	if err != nil {
		t.Fatalf("Write() error: %v", err)
	}
	if n != len("line with newline\n") {
		t.Errorf("Write() returned %d, want full length", n)
	}
}

func TestForTest(t *testing.T) {
	logger := ForTest(t)
	logger.Debug("captured by the test log")
}
