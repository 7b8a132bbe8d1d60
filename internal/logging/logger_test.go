package logging_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"laudure/internal/logging"
)

func TestConsoleOutputShape(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Level: "info", Format: "console", Output: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logger.Info("processing diner",
		logging.String(logging.FieldDiner, "Emily Chen"),
		logging.Int("index", 3),
	)

	line := buf.String()
	if !strings.Contains(line, "INFO") || !strings.Contains(line, "processing diner") {
		t.Fatalf("unexpected console line: %q", line)
	}
	if !strings.Contains(line, `diner="Emily Chen"`) {
		t.Fatalf("expected quoted diner attr, got %q", line)
	}
	if !strings.Contains(line, "index=3") {
		t.Fatalf("expected index attr, got %q", line)
	}
}

func TestConsoleLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Level: "warn", Format: "console", Output: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	logger.Info("suppressed")
	logger.Warn("kept")
	out := buf.String()
	if strings.Contains(out, "suppressed") {
		t.Fatalf("info line should be filtered at warn level: %q", out)
	}
	if !strings.Contains(out, "kept") {
		t.Fatalf("warn line missing: %q", out)
	}
}

func TestJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Level: "info", Format: "json", Output: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	logger.Info("run started", logging.String(logging.FieldRunID, "abc"))

	var decoded map[string]any
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("expected JSON output, got %q: %v", buf.String(), err)
	}
	if decoded["msg"] != "run started" || decoded[logging.FieldRunID] != "abc" {
		t.Fatalf("unexpected JSON payload: %v", decoded)
	}
}

func TestUnsupportedFormat(t *testing.T) {
	if _, err := logging.New(logging.Options{Format: "xml"}); err == nil {
		t.Fatal("expected unsupported format error")
	}
}

func TestWithAttrsCarriesFields(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Level: "info", Format: "console", Output: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	stageLogger := logger.With(logging.String(logging.FieldStage, "insights"))
	stageLogger.Info("done")
	if !strings.Contains(buf.String(), "stage=insights") {
		t.Fatalf("expected inherited stage attr, got %q", buf.String())
	}
}
