package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileGivesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !cfg.AutoAdvance || !cfg.AllowHints || !cfg.Coach {
		t.Fatalf("defaults wrong: %+v", cfg)
	}
}

func TestLoadOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
collections_dir = "/var/lib/tactix/sets"
auto_advance = false
coach = false
db_path = "/tmp/tactix-test.db"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.CollectionsDir != "/var/lib/tactix/sets" {
		t.Fatalf("collections dir = %q", cfg.CollectionsDir)
	}
	if cfg.AutoAdvance || cfg.Coach {
		t.Fatalf("false overrides ignored: %+v", cfg)
	}
	if !cfg.AllowHints {
		t.Fatal("absent key should keep its default")
	}
	if cfg.DBPath != "/tmp/tactix-test.db" {
		t.Fatalf("db path = %q", cfg.DBPath)
	}
}

func TestLoadRejectsBadTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("auto_advance = maybe"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected parse error")
	}
}
