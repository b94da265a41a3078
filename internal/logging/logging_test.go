package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestNew_JSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{
		Level:  slog.LevelInfo,
		Format: FormatJSON,
		Output: &buf,
	})

	logger.Info("checking file", "path", "package.json")

	var parsed map[string]any
	if err := json.Unmarshal(buf.Bytes(), &parsed); err != nil {
		t.Fatalf("output is not valid JSON: %v\noutput: %s", err, buf.String())
	}
	if parsed["msg"] != "checking file" {
		t.Errorf("msg = %v, want %q", parsed["msg"], "checking file")
	}
	if parsed["path"] != "package.json" {
		t.Errorf("path = %v, want %q", parsed["path"], "package.json")
	}
}

func TestNew_UnknownFormatDefaultsToText(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{
		Level:  slog.LevelInfo,
		Format: Format("unknown"),
		Output: &buf,
	})

	logger.Info("test message", "key", "value")

	output := buf.String()
	var parsed map[string]any
	if err := json.Unmarshal([]byte(output), &parsed); err == nil {
		t.Error("unknown format should default to text, not JSON")
	}
	if !strings.Contains(output, "key=value") {
		t.Errorf("output missing key=value attribute: %s", output)
	}
}

func TestNew_DefaultsToStderr(t *testing.T) {
	if logger := New(Config{Level: slog.LevelInfo}); logger == nil {
		t.Fatal("expected non-nil logger")
	}
}

func TestDefault(t *testing.T) {
	logger := Default()
	if logger.Enabled(context.Background(), slog.LevelInfo) {
		t.Error("default logger should not log at info")
	}
	if !logger.Enabled(context.Background(), slog.LevelWarn) {
		t.Error("default logger should log at warn")
	}
}

func TestNewDiscard_ProducesNoOutput(t *testing.T) {
	logger := NewDiscard()
	logger.Debug("debug message", "key", "value")
	logger.Error("error message", "err", "something went wrong")
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

func TestContext(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		logger := NewDiscard()
		ctx := NewContext(context.Background(), logger)
		if got := FromContext(ctx); got != logger {
			t.Error("FromContext did not return the stored logger")
		}
	})

	t.Run("falls back to default", func(t *testing.T) {
		if got := FromContext(context.Background()); got != slog.Default() {
			t.Error("FromContext should fall back to slog.Default()")
		}
	})

	t.Run("nil context", func(t *testing.T) {
		//nolint:staticcheck // nil context is handled explicitly
		if got := FromContext(nil); got == nil {
			t.Error("FromContext(nil) should not return nil")
		}
	})
}

func TestForTest(t *testing.T) {
	logger := ForTest(t)
	if !logger.Enabled(context.Background(), LevelTrace) {
		t.Error("ForTest logger should enable trace level")
	}
	logger.Info("visible with -v")
}

func TestTestWriter_TrimsNewline(t *testing.T) {
	tw := &testWriter{t: t}

	n, err := tw.Write([]byte("test message\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != len("test message\n") {
		t.Errorf("Write returned %d, want %d", n, len("test message\n"))
	}

	n, err = tw.Write([]byte(""))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 0 {
		t.Errorf("Write returned %d, want 0", n)
	}
}
