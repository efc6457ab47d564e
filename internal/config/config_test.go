// ABOUTME: Tests for configuration loading and backing file resolution.
// ABOUTME: Verifies precedence of flag, environment, config file, default.

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/harper/filetag/internal/store"
)

func TestConfigPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	path := ConfigPath()
	if path == "" {
		t.Fatal("ConfigPath returned empty string")
	}
	if !filepath.IsAbs(path) {
		t.Errorf("ConfigPath should return absolute path, got %s", path)
	}
}

func TestConfigDir(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	if dir := ConfigDir(); dir != filepath.Dir(ConfigPath()) {
		t.Errorf("ConfigDir() = %s, want %s", dir, filepath.Dir(ConfigPath()))
	}
}

func TestLoadMissingConfig(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load should not fail on missing config: %v", err)
	}
	if cfg.DB != "" {
		t.Errorf("expected empty DB, got %q", cfg.DB)
	}
}

func TestSaveAndLoad(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	if err := Save(&Config{DB: "/tmp/custom.json"}); err != nil {
		t.Fatalf("failed to save config: %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	if cfg.DB != "/tmp/custom.json" {
		t.Errorf("expected /tmp/custom.json, got %q", cfg.DB)
	}
}

func TestLoadInvalidConfig(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	if err := os.MkdirAll(ConfigDir(), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(ConfigPath(), []byte(":\tnot yaml"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(); err == nil {
		t.Error("expected error for invalid config")
	}
}

func TestResolveDBPrecedence(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	oldWD, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(oldWD) })

	// Default when nothing is set.
	t.Setenv(EnvDB, "")
	if got := ResolveDB(""); got != store.DefaultFile {
		t.Errorf("expected default %q, got %q", store.DefaultFile, got)
	}

	// Config file beats default.
	if err := Save(&Config{DB: "/tmp/from-config.json"}); err != nil {
		t.Fatal(err)
	}
	if got := ResolveDB(""); got != "/tmp/from-config.json" {
		t.Errorf("expected config value, got %q", got)
	}

	// Environment beats config file.
	t.Setenv(EnvDB, "/tmp/from-env.json")
	if got := ResolveDB(""); got != "/tmp/from-env.json" {
		t.Errorf("expected env value, got %q", got)
	}

	// Flag beats everything.
	if got := ResolveDB("/tmp/from-flag.json"); got != "/tmp/from-flag.json" {
		t.Errorf("expected flag value, got %q", got)
	}
}
