// ABOUTME: Configuration for filetag, resolving the backing file path.
// ABOUTME: Precedence: --db flag, FILETAG_DB env, config file, default.

package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/harper/filetag/internal/store"
)

// EnvDB overrides the backing file path when set.
const EnvDB = "FILETAG_DB"

type Config struct {
	// DB is the backing file path. Relative values are resolved against
	// the working directory of the invoking process.
	DB string `yaml:"db,omitempty"`
}

// ConfigDir returns the directory holding the config file.
func ConfigDir() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, _ := os.UserHomeDir()
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "filetag")
}

// ConfigPath returns the full path of the config file.
func ConfigPath() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}

// Load reads the config file, returning an empty config if it is absent.
func Load() (*Config, error) {
	data, err := os.ReadFile(ConfigPath())
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// Save writes the config file, creating its directory if needed.
func Save(cfg *Config) error {
	if err := os.MkdirAll(ConfigDir(), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}

	if err := os.WriteFile(ConfigPath(), data, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// ResolveDB picks the backing file path. The --db flag wins, then the
// FILETAG_DB environment variable (a .env in the working directory is
// loaded best-effort first), then the config file, then .filetag.json in
// the working directory.
func ResolveDB(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}

	_ = godotenv.Load()
	if env := os.Getenv(EnvDB); env != "" {
		return env
	}

	if cfg, err := Load(); err == nil && cfg.DB != "" {
		return cfg.DB
	}

	return store.DefaultFile
}
