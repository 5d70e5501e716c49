package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestMustLoadDefaults(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")

	cfg := MustLoad("")
	if cfg.Database.SQLitePath != "tasks.db" {
		t.Errorf("default sqlite path = %q, want tasks.db", cfg.Database.SQLitePath)
	}
	if cfg.Snapshot.Dir != "." {
		t.Errorf("default snapshot dir = %q, want .", cfg.Snapshot.Dir)
	}
	if cfg.Log.Debug {
		t.Error("debug logging enabled by default")
	}
}

func TestMustLoadEnvOverrides(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")
	t.Setenv("TASKMAN_DB_PATH", "/tmp/custom.db")
	t.Setenv("TASKMAN_SNAPSHOT_DIR", "/tmp/snaps")

	cfg := MustLoad("")
	if cfg.Database.SQLitePath != "/tmp/custom.db" {
		t.Errorf("sqlite path = %q, want /tmp/custom.db", cfg.Database.SQLitePath)
	}
	if cfg.Snapshot.Dir != "/tmp/snaps" {
		t.Errorf("snapshot dir = %q, want /tmp/snaps", cfg.Snapshot.Dir)
	}
}

func TestMustLoadYAMLFile(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")

	path := filepath.Join(t.TempDir(), "config.yaml")
	body := "database:\n  sqlite_path: data/tracker.db\nsnapshot:\n  dir: data/snapshots\nlog:\n  debug: true\n"
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	cfg := MustLoad(path)
	if cfg.Database.SQLitePath != "data/tracker.db" {
		t.Errorf("sqlite path = %q, want data/tracker.db", cfg.Database.SQLitePath)
	}
	if cfg.Snapshot.Dir != "data/snapshots" {
		t.Errorf("snapshot dir = %q, want data/snapshots", cfg.Snapshot.Dir)
	}
	if !cfg.Log.Debug {
		t.Error("debug flag from file not applied")
	}
}
