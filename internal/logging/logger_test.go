package logging_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"reflow/internal/logging"
)

func TestConsoleHandlerShape(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Level: "info", Format: "console", Writer: &buf})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	logger.With("component", "engine").Info("task starting", "task", "abc123", "reason", "inputs changed")

	line := strings.TrimSpace(buf.String())
	if !strings.Contains(line, " INFO engine: task starting") {
		t.Errorf("line missing level/component/message: %q", line)
	}
	if !strings.Contains(line, "task=abc123") {
		t.Errorf("line missing attribute: %q", line)
	}
	if !strings.Contains(line, `reason="inputs changed"`) {
		t.Errorf("attribute with spaces not quoted: %q", line)
	}
}

func TestConsoleHandlerLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Level: "warn", Format: "console", Writer: &buf})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	logger.Info("suppressed")
	logger.Warn("kept")

	out := buf.String()
	if strings.Contains(out, "suppressed") {
		t.Errorf("info line emitted at warn level: %q", out)
	}
	if !strings.Contains(out, "kept") {
		t.Errorf("warn line missing: %q", out)
	}
}

func TestJSONHandler(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Level: "info", Format: "json", Writer: &buf})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	logger.Info("run converged", "passes", 2)

	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("invalid JSON line %q: %v", buf.String(), err)
	}
	if record["msg"] != "run converged" {
		t.Errorf("msg = %v", record["msg"])
	}
	if record["level"] != "info" {
		t.Errorf("level = %v", record["level"])
	}
	if _, ok := record["ts"]; !ok {
		t.Error("ts key missing")
	}
}

func TestUnsupportedFormat(t *testing.T) {
	var buf bytes.Buffer
	if _, err := logging.New(logging.Options{Format: "yaml", Writer: &buf}); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestNewNop(t *testing.T) {
	logger := logging.NewNop()
	// Must be safe to use everywhere without output or panics.
	logger.Info("ignored", "k", "v")
}
