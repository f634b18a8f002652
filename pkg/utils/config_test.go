package utils

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := loadConfig(filepath.Join(t.TempDir(), "missing.env"))
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if cfg.App.Port != "8080" || cfg.App.LogPath != "logs/" || cfg.App.ShutdownTimeout != 10*time.Second {
		t.Fatalf("unexpected app defaults: %+v", cfg.App)
	}
	if cfg.Database.Port != "5432" || cfg.Database.SSLMode != "disable" || cfg.Database.MaxConns != 10 {
		t.Fatalf("unexpected database defaults: %+v", cfg.Database)
	}
}

func TestLoadConfig_FileThenEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	content := "PORT=9000\nDB_NAME=digest\nDB_USER=reader\nDEBUG=true\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write env file: %v", err)
	}
	t.Setenv("DB_USER", "writer")

	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if cfg.App.Port != "9000" || !cfg.App.Debug {
		t.Fatalf("file values not applied: %+v", cfg.App)
	}
	if cfg.Database.Name != "digest" {
		t.Fatalf("db name %q", cfg.Database.Name)
	}
	if cfg.Database.User != "writer" {
		t.Fatalf("env should override file, got user %q", cfg.Database.User)
	}
}
