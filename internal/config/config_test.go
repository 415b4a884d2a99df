package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if len(cfg.Harness.Command) == 0 {
		t.Fatalf("default harness command is empty")
	}
	if cfg.Harness.Command[0] != "python3" {
		t.Fatalf("default harness command = %v", cfg.Harness.Command)
	}
	if cfg.Syntax.Prompt != ">>>" || cfg.Syntax.Continuation != "..." {
		t.Fatalf("unexpected default syntax markers: %q %q", cfg.Syntax.Prompt, cfg.Syntax.Continuation)
	}
	if cfg.Timeout() != 600*time.Second {
		t.Fatalf("default timeout = %s, want 10m", cfg.Timeout())
	}
	if len(cfg.Tracebacks.InternalMarkers) == 0 {
		t.Fatalf("default internal markers are empty")
	}
}

func TestLoad_MissingDefaultFile_ReturnsDefaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Syntax.Prompt != ">>>" {
		t.Fatalf("expected defaults, got prompt %q", cfg.Syntax.Prompt)
	}
}

func TestLoad_DefaultFileInWorkingDirectory(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, filepath.Join(dir, DefaultPath), "harness:\n  command: [sage, -t]\n")
	chdir(t, dir)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if len(cfg.Harness.Command) != 2 || cfg.Harness.Command[0] != "sage" {
		t.Fatalf("harness command = %v, want [sage -t]", cfg.Harness.Command)
	}
}

func TestLoad_ExplicitMissingFile_ReturnsError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent.yaml")

	_, err := Load(path)
	if err == nil {
		t.Fatalf("expected error for missing explicit config")
	}
	if !strings.Contains(err.Error(), "failed to read config") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestLoad_MergesOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mendoc.yaml")
	writeConfig(t, path, `harness:
  command: [sage, -t]
  environment: sage.all
  timeout_seconds: 30
features:
  modules:
    sage.all: sage
  names:
    GAP: gap
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if len(cfg.Harness.Command) != 2 || cfg.Harness.Command[0] != "sage" {
		t.Fatalf("harness command = %v", cfg.Harness.Command)
	}
	if cfg.Harness.Environment != "sage.all" {
		t.Fatalf("environment = %q", cfg.Harness.Environment)
	}
	if cfg.Timeout() != 30*time.Second {
		t.Fatalf("timeout = %s, want 30s", cfg.Timeout())
	}

	// Sections absent from the file keep their defaults.
	if cfg.Syntax.Prompt != ">>>" {
		t.Fatalf("syntax prompt = %q, want default", cfg.Syntax.Prompt)
	}
	if cfg.Harness.Interpreter != "python3" {
		t.Fatalf("interpreter = %q, want default", cfg.Harness.Interpreter)
	}

	features := cfg.BuildFeatures()
	if features.Modules["sage.all"] != "sage" {
		t.Fatalf("module map = %v", features.Modules)
	}
	if features.Names["GAP"] != "gap" {
		t.Fatalf("name map = %v", features.Names)
	}
	if len(features.InternalMarkers) == 0 {
		t.Fatalf("internal markers lost during merge")
	}
}

func TestLoad_InvalidYAML_ReturnsError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yaml")
	writeConfig(t, path, "harness: [unclosed\n")

	_, err := Load(path)
	if err == nil {
		t.Fatalf("expected error")
	}
	if !strings.Contains(err.Error(), "failed to parse config") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestLoad_EmptyHarnessCommand_ReturnsError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.yaml")
	writeConfig(t, path, "harness:\n  command: []\n")

	_, err := Load(path)
	if err == nil {
		t.Fatalf("expected error")
	}
	if !strings.Contains(err.Error(), "invalid config") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestConfig_Timeout_NonPositiveFallsBack(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Harness.TimeoutSeconds = -1

	if cfg.Timeout() != 600*time.Second {
		t.Fatalf("timeout = %s, want fallback", cfg.Timeout())
	}
}

func TestConfig_BuildSyntax(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Syntax.FileTagPrefix = "# doctest:"

	syntax := cfg.BuildSyntax()
	if syntax.Prompt != cfg.Syntax.Prompt {
		t.Fatalf("prompt = %q", syntax.Prompt)
	}
	if syntax.FileTagPrefix != "# doctest:" {
		t.Fatalf("file tag prefix = %q", syntax.FileTagPrefix)
	}
	if len(syntax.Docstrings) != 2 {
		t.Fatalf("docstrings = %v", syntax.Docstrings)
	}
}

func writeConfig(t *testing.T, path, contents string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(contents), 0o600); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}

func chdir(t *testing.T, dir string) {
	t.Helper()

	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("Chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })
}
