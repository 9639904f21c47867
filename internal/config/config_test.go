package config

import (
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.BaseURL != "" {
		t.Errorf("expected empty base url default, got %q", cfg.BaseURL)
	}
	if cfg.OutputWidth != 40 {
		t.Errorf("expected default output width 40, got %d", cfg.OutputWidth)
	}
	if cfg.LibraryPath == "" {
		t.Error("expected a default library path")
	}
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("RIPTIDE_BASE_URL", "http://localhost:8080")
	t.Setenv("RIPTIDE_OUTPUT_WIDTH", "60")
	t.Setenv("RIPTIDE_LIBRARY_PATH", "/tmp/riptide-test.db")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.BaseURL != "http://localhost:8080" {
		t.Errorf("expected env base url, got %q", cfg.BaseURL)
	}
	if cfg.OutputWidth != 60 {
		t.Errorf("expected output width 60, got %d", cfg.OutputWidth)
	}
	if cfg.LibraryPath != "/tmp/riptide-test.db" {
		t.Errorf("expected env library path, got %q", cfg.LibraryPath)
	}
}
