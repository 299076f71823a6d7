package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad_FileWithDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
database:
  sqlite_path: /tmp/test.db
sync:
  on_start: true
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Database.SQLitePath != "/tmp/test.db" {
		t.Errorf("sqlite path: %q", cfg.Database.SQLitePath)
	}
	if !cfg.Sync.OnStart {
		t.Error("expected on_start from file")
	}
	if cfg.Sync.Cron == "" {
		t.Error("expected default sync cron")
	}
	if cfg.Snapshot.CacheTTL != "5m" {
		t.Errorf("snapshot ttl default: %q", cfg.Snapshot.CacheTTL)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("validate: %v", err)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("CRYPTFOLIO_DB_PATH", "/env/override.db")
	t.Setenv("CRYPTFOLIO_SNAPSHOT_TTL", "90s")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Database.SQLitePath != "/env/override.db" {
		t.Errorf("env override ignored: %q", cfg.Database.SQLitePath)
	}
	ttl, err := cfg.SnapshotTTL()
	if err != nil {
		t.Fatalf("snapshot ttl: %v", err)
	}
	if ttl != 90*time.Second {
		t.Errorf("snapshot ttl: got %v, want 90s", ttl)
	}
}

func TestValidate_BadTTL(t *testing.T) {
	cfg := &Config{}
	cfg.Snapshot.CacheTTL = "soon"
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for unparseable ttl")
	}
}
