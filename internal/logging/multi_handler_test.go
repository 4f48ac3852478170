package logging

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestMultiHandler_FanOut(t *testing.T) {
	var termBuf, fileBuf bytes.Buffer

	// Terminal at warn, file at info: the spec's log-file sink must see
	// info records even when the terminal does not.
	term := NewHandler(&termBuf, &slog.HandlerOptions{Level: slog.LevelWarn})
	file := slog.NewJSONHandler(&fileBuf, &slog.HandlerOptions{Level: slog.LevelInfo})

	logger := slog.New(NewMultiHandler(term, file))

	logger.Info("skipping hidden file", "name", ".hidden.mkv")
	logger.Warn("something odd")

	if strings.Contains(termBuf.String(), "skipping hidden file") {
		t.Error("terminal handler should have filtered the info record")
	}
	if !strings.Contains(fileBuf.String(), "skipping hidden file") {
		t.Error("file handler should have received the info record")
	}
	if !strings.Contains(termBuf.String(), "something odd") {
		t.Error("terminal handler should have received the warn record")
	}
}

func TestMultiHandler_Enabled(t *testing.T) {
	a := slog.NewTextHandler(&bytes.Buffer{}, &slog.HandlerOptions{Level: slog.LevelError})
	b := slog.NewTextHandler(&bytes.Buffer{}, &slog.HandlerOptions{Level: slog.LevelInfo})

	h := NewMultiHandler(a, b)
	ctx := context.Background()

	if !h.Enabled(ctx, slog.LevelInfo) {
		t.Error("enabled if any underlying handler is enabled")
	}
	if h.Enabled(ctx, slog.LevelDebug) {
		t.Error("disabled when no underlying handler is enabled")
	}
}

func TestMultiHandler_WithAttrs(t *testing.T) {
	var buf bytes.Buffer
	h := NewMultiHandler(slog.NewTextHandler(&buf, nil))

	logger := slog.New(h.WithAttrs([]slog.Attr{slog.String("run", "dry")}))
	logger.Info("msg")

	if !strings.Contains(buf.String(), "run=dry") {
		t.Errorf("attribute should propagate to underlying handlers, got: %q", buf.String())
	}
}
