package logging_test

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"subjectid/internal/logging"
)

func TestNewConsoleWritesAttrs(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Level: "debug", Format: "console", Writer: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logger.Info("run complete", "method", "md5", "records", 3)

	out := buf.String()
	if !strings.Contains(out, "run complete") {
		t.Fatalf("missing message in output: %q", out)
	}
	if !strings.Contains(out, "method=md5") || !strings.Contains(out, "records=3") {
		t.Fatalf("missing attrs in output: %q", out)
	}
}

func TestNewConsoleRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Level: "warn", Format: "console", Writer: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logger.Info("suppressed")
	logger.Warn("kept")

	out := buf.String()
	if strings.Contains(out, "suppressed") {
		t.Fatalf("info record should be suppressed at warn level: %q", out)
	}
	if !strings.Contains(out, "kept") {
		t.Fatalf("warn record missing: %q", out)
	}
}

func TestNewJSONEmitsValidRecords(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Level: "info", Format: "json", Writer: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logger.Info("run complete", "method", "uuid")

	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("output is not JSON: %v (%q)", err, buf.String())
	}
	if record["msg"] != "run complete" {
		t.Fatalf("unexpected msg: %v", record["msg"])
	}
	if record["method"] != "uuid" {
		t.Fatalf("unexpected method attr: %v", record["method"])
	}
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, err := logging.New(logging.Options{Format: "xml"}); err == nil {
		t.Fatal("expected error for unknown format")
	}
}

func TestNewTeesToFile(t *testing.T) {
	var buf bytes.Buffer
	path := filepath.Join(t.TempDir(), "subjectid.log")
	logger, err := logging.New(logging.Options{Level: "info", Format: "console", Writer: &buf, FilePath: path})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	logger.Info("persisted")

	if !strings.Contains(buf.String(), "persisted") {
		t.Fatalf("writer output missing record: %q", buf.String())
	}
}
