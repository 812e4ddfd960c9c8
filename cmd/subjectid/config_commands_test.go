package main

import (
	"path/filepath"
	"testing"
)

func TestConfigInitAndValidate(t *testing.T) {
	env := setupCLITestEnv(t)
	target := filepath.Join(env.baseDir, "generated", "config.toml")

	out, _, err := runCLI(t, env.configPath, "config", "init", "--path", target)
	if err != nil {
		t.Fatalf("config init: %v", err)
	}
	requireContains(t, out, target)

	_, _, err = runCLI(t, env.configPath, "config", "init", "--path", target)
	if err == nil {
		t.Fatal("expected error when config already exists")
	}

	if _, _, err := runCLI(t, env.configPath, "config", "init", "--path", target, "--overwrite"); err != nil {
		t.Fatalf("config init --overwrite: %v", err)
	}

	t.Setenv("SUBJECTID_CONFIG", target)
	out, _, err = runCLI(t, env.configPath, "config", "validate")
	if err != nil {
		t.Fatalf("config validate: %v", err)
	}
	requireContains(t, out, "Configuration valid")
	requireContains(t, out, target)
}

func TestConfigShowPrintsResolvedTOML(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, env.configPath, "config", "show")
	if err != nil {
		t.Fatalf("config show: %v", err)
	}
	requireContains(t, out, env.stateDir)
	requireContains(t, out, "default_method")
}

func TestConfigValidateRejectsBadMethod(t *testing.T) {
	env := setupCLITestEnv(t)
	bad := testWriteConfig(t, env.baseDir, "[generate]\ndefault_method = \"rot13\"\n")

	t.Setenv("SUBJECTID_CONFIG", bad)
	_, _, err := runCLI(t, env.configPath, "config", "validate")
	if err == nil {
		t.Fatal("expected validation error for unknown default method")
	}
}
