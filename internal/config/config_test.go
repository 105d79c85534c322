package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Port != 3002 {
		t.Errorf("expected default port 3002, got %d", cfg.Server.Port)
	}
	if cfg.Database.URL == "" {
		t.Error("expected a default database url")
	}
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := "[server]\nport = 8080\n\n[redis]\nurl = \"\"\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("expected port 8080, got %d", cfg.Server.Port)
	}
	if cfg.Redis.URL != "" {
		t.Errorf("expected redis disabled, got %q", cfg.Redis.URL)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	t.Setenv("PORT", "9999")
	t.Setenv("DATABASE_URL", "postgres://env/override")

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Port != 9999 {
		t.Errorf("expected env port 9999, got %d", cfg.Server.Port)
	}
	if cfg.Database.URL != "postgres://env/override" {
		t.Errorf("expected env database url, got %q", cfg.Database.URL)
	}
}

func TestAddr(t *testing.T) {
	c := ServerConfig{Host: "127.0.0.1", Port: 3002}
	if got := c.Addr(); got != "127.0.0.1:3002" {
		t.Errorf("Addr() = %q", got)
	}
}
