package main

import (
	"encoding/json"
	"testing"
)

func TestHistoryEmpty(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, env.configPath, "history")
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	requireContains(t, out, "No runs recorded")
}

func TestHistoryRecordsRuns(t *testing.T) {
	env := setupCLITestEnv(t)

	if _, _, err := runCLI(t, env.configPath,
		"generate", "-n", "Alice", "-n", "Bob", "--method", "sha1", "--output", "-"); err != nil {
		t.Fatalf("generate: %v", err)
	}
	if _, _, err := runCLI(t, env.configPath,
		"generate", "-n", "Carol", "--method", "sequential", "--output", "-"); err != nil {
		t.Fatalf("generate: %v", err)
	}

	out, _, err := runCLI(t, env.configPath, "history", "--json")
	if err != nil {
		t.Fatalf("history: %v", err)
	}

	var runs []struct {
		ID          int64  `json:"id"`
		Source      string `json:"source"`
		Method      string `json:"method"`
		RecordCount int    `json:"record_count"`
	}
	if err := json.Unmarshal([]byte(out), &runs); err != nil {
		t.Fatalf("parse history JSON: %v\n%s", err, out)
	}
	if len(runs) != 2 {
		t.Fatalf("expected 2 runs, got %d", len(runs))
	}
	if runs[0].Method != "sequential" || runs[1].Method != "sha1" {
		t.Fatalf("runs should be newest-first, got %q then %q", runs[0].Method, runs[1].Method)
	}
	if runs[1].RecordCount != 2 {
		t.Fatalf("first run record count: got %d want 2", runs[1].RecordCount)
	}
}

func TestHistoryClear(t *testing.T) {
	env := setupCLITestEnv(t)

	if _, _, err := runCLI(t, env.configPath,
		"generate", "-n", "Alice", "--method", "uuid", "--output", "-"); err != nil {
		t.Fatalf("generate: %v", err)
	}

	out, _, err := runCLI(t, env.configPath, "history", "clear")
	if err != nil {
		t.Fatalf("history clear: %v", err)
	}
	requireContains(t, out, "Removed 1 run(s)")

	out, _, err = runCLI(t, env.configPath, "history")
	if err != nil {
		t.Fatalf("history after clear: %v", err)
	}
	requireContains(t, out, "No runs recorded")
}
