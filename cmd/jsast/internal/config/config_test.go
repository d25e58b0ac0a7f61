package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfigIsValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Errorf("DefaultConfig().Validate() error = %v", err)
	}
}

func TestValidateRejectsEmptyIncludeGlobs(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Batch.IncludeGlobs = nil
	if err := cfg.Validate(); err == nil {
		t.Error("expected an error for empty include globs")
	}
}

func TestValidateRejectsMalformedGlob(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Batch.IncludeGlobs = []string{"["}
	if err := cfg.Validate(); err == nil {
		t.Error("expected an error for a malformed glob pattern")
	}
}

func TestLoadWithMissingPathFallsBackToDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") error = %v", err)
	}
	if cfg.Batch.IgnoreFile != ".jsastignore" {
		t.Errorf("IgnoreFile = %q, want %q", cfg.Batch.IgnoreFile, ".jsastignore")
	}
}

func TestLoadReadsYAMLFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	contents := "print:\n  pretty: true\nbatch:\n  include_globs:\n    - \"*.tree.json\"\n  ignore_file: \".myignore\"\n"
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !cfg.Print.Pretty {
		t.Error("expected Print.Pretty to be true")
	}
	if len(cfg.Batch.IncludeGlobs) != 1 || cfg.Batch.IncludeGlobs[0] != "*.tree.json" {
		t.Errorf("IncludeGlobs = %v, want [*.tree.json]", cfg.Batch.IncludeGlobs)
	}
	if cfg.Batch.IgnoreFile != ".myignore" {
		t.Errorf("IgnoreFile = %q, want %q", cfg.Batch.IgnoreFile, ".myignore")
	}
}
