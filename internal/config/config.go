package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	Sync struct {
		Cron    string `yaml:"cron"`
		OnStart bool   `yaml:"on_start"`
	} `yaml:"sync"`
	Snapshot struct {
		CacheTTL string `yaml:"cache_ttl"`
	} `yaml:"snapshot"`
}

// Load reads config from a YAML file, then applies .env and environment
// variable overrides, then defaults.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("[WARN] load .env: %v", err)
	}

	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("CRYPTFOLIO_DB_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}
	if v := os.Getenv("CRYPTFOLIO_SYNC_CRON"); v != "" {
		cfg.Sync.Cron = v
	}
	if v := os.Getenv("CRYPTFOLIO_SYNC_ON_START"); v == "true" {
		cfg.Sync.OnStart = true
	}
	if v := os.Getenv("CRYPTFOLIO_SNAPSHOT_TTL"); v != "" {
		cfg.Snapshot.CacheTTL = v
	}

	// Defaults
	if cfg.Database.SQLitePath == "" {
		cfg.Database.SQLitePath = "data/cryptfolio.db"
	}
	if cfg.Sync.Cron == "" {
		cfg.Sync.Cron = "0 0 */6 * * *"
	}
	if cfg.Snapshot.CacheTTL == "" {
		cfg.Snapshot.CacheTTL = "5m"
	}

	return cfg, nil
}

// Validate checks that all fields parse.
func (c *Config) Validate() error {
	if _, err := c.SnapshotTTL(); err != nil {
		return err
	}
	return nil
}

// SnapshotTTL returns the parsed snapshot cache lifetime.
func (c *Config) SnapshotTTL() (time.Duration, error) {
	d, err := time.ParseDuration(c.Snapshot.CacheTTL)
	if err != nil {
		return 0, fmt.Errorf("snapshot.cache_ttl: %w", err)
	}
	return d, nil
}
