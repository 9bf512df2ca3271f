package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Export.OutputDir != "./exports" {
		t.Errorf("Export.OutputDir = %q, want ./exports", cfg.Export.OutputDir)
	}
	if len(cfg.Export.Tables) != 2 {
		t.Errorf("Export.Tables = %v, want sessions and states", cfg.Export.Tables)
	}
	if cfg.State.DBPath != ".grove/state.db" {
		t.Errorf("State.DBPath = %q", cfg.State.DBPath)
	}
	if cfg.TUI.RefreshRate != 100*time.Millisecond {
		t.Errorf("TUI.RefreshRate = %v, want 100ms", cfg.TUI.RefreshRate)
	}
}

func TestLoadFromPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
export:
  output_dir: /tmp/grove-exports
  tables:
    - sessions
state:
  db_path: /tmp/grove.db
tui:
  refresh_rate: 250ms
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("LoadFromPath failed: %v", err)
	}

	if cfg.Export.OutputDir != "/tmp/grove-exports" {
		t.Errorf("Export.OutputDir = %q", cfg.Export.OutputDir)
	}
	if len(cfg.Export.Tables) != 1 || cfg.Export.Tables[0] != "sessions" {
		t.Errorf("Export.Tables = %v", cfg.Export.Tables)
	}
	if cfg.State.DBPath != "/tmp/grove.db" {
		t.Errorf("State.DBPath = %q", cfg.State.DBPath)
	}
	if cfg.TUI.RefreshRate != 250*time.Millisecond {
		t.Errorf("TUI.RefreshRate = %v, want 250ms", cfg.TUI.RefreshRate)
	}
}

func TestLoadFromPath_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("state:\n  db_path: custom.db\n"), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("LoadFromPath failed: %v", err)
	}
	if cfg.State.DBPath != "custom.db" {
		t.Errorf("State.DBPath = %q, want custom.db", cfg.State.DBPath)
	}
	if cfg.Export.OutputDir != "./exports" {
		t.Errorf("Export.OutputDir = %q, want default", cfg.Export.OutputDir)
	}
}

func TestLoadFromPath_MissingFile(t *testing.T) {
	if _, err := LoadFromPath(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
