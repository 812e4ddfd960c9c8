package main

import (
	"encoding/json"
	"strings"
	"testing"

	"subjectid/internal/testsupport"
)

func TestPreviewPlainOutput(t *testing.T) {
	env := setupCLITestEnv(t)
	input := testsupport.WriteNames(t, env.baseDir, "roster.txt", "Alice", " Bob ", "Alice")

	out, _, err := runCLI(t, env.configPath, "preview", input)
	if err != nil {
		t.Fatalf("preview: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(out), "\n")
	want := []string{"Alice", "Bob", "Alice"}
	if len(lines) != len(want) {
		t.Fatalf("expected %d lines, got %d:\n%s", len(want), len(lines), out)
	}
	for i, line := range want {
		if lines[i] != line {
			t.Fatalf("line %d: got %q want %q", i, lines[i], line)
		}
	}
}

func TestPreviewLimit(t *testing.T) {
	env := setupCLITestEnv(t)
	input := testsupport.WriteNames(t, env.baseDir, "roster.txt", "Alice", "Bob", "Carol")

	out, _, err := runCLI(t, env.configPath, "preview", input, "--limit", "2")
	if err != nil {
		t.Fatalf("preview: %v", err)
	}
	requireContains(t, out, "Showing first 2 of 3 names")
	if strings.Contains(out, "Carol") {
		t.Fatalf("third name should be hidden by the limit:\n%s", out)
	}
}

func TestPreviewJSON(t *testing.T) {
	env := setupCLITestEnv(t)
	input := testsupport.WriteNames(t, env.baseDir, "roster.txt", "Alice", "Alice")

	out, _, err := runCLI(t, env.configPath, "preview", input, "--json")
	if err != nil {
		t.Fatalf("preview: %v", err)
	}

	var payload struct {
		Format     string   `json:"format"`
		Names      []string `json:"names"`
		Duplicates []bool   `json:"duplicates"`
	}
	if err := json.Unmarshal([]byte(out), &payload); err != nil {
		t.Fatalf("parse preview JSON: %v\n%s", err, out)
	}
	if payload.Format != "txt" {
		t.Fatalf("format: got %q want %q", payload.Format, "txt")
	}
	if len(payload.Names) != 2 {
		t.Fatalf("expected 2 names, got %d", len(payload.Names))
	}
	if !payload.Duplicates[1] {
		t.Fatal("second occurrence should be flagged as duplicate")
	}
}

func TestPreviewMissingFile(t *testing.T) {
	env := setupCLITestEnv(t)

	_, _, err := runCLI(t, env.configPath, "preview", "does-not-exist.txt")
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}
