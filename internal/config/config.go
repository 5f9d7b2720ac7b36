package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// Storage backends for persisted preferences.
const (
	StorageSQLite = "sqlite"
	StorageTOML   = "toml"
)

// Config captures everything carlot reads from its config file.
type Config struct {
	APIURL    string
	APIKey    string
	Model     string
	Limit     int
	Storage   string
	DataDir   string
	Simulated bool
}

const (
	defaultConfigPath = "~/.config/carlot/config.toml"
	defaultDataDir    = "~/.local/share/carlot"
	defaultAPIURL     = "https://api.api-ninjas.com"
	defaultModel      = "camry"
	defaultLimit      = 50
	defaultStorage    = StorageSQLite
)

// DefaultPath returns the default config file path.
func DefaultPath() string {
	return defaultConfigPath
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		APIURL:  defaultAPIURL,
		Model:   defaultModel,
		Limit:   defaultLimit,
		Storage: defaultStorage,
		DataDir: mustExpand(defaultDataDir),
	}
}

// Load locates and parses the carlot config, falling back to defaults when missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		APIURL    string  `toml:"api_url"`
		APIKey    string  `toml:"api_key"`
		Model     *string `toml:"model"`
		Limit     int     `toml:"limit"`
		Storage   string  `toml:"storage"`
		DataDir   string  `toml:"data_dir"`
		Simulated bool    `toml:"simulated"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if v := strings.TrimSpace(raw.APIURL); v != "" {
		cfg.APIURL = v
	}
	cfg.APIKey = strings.TrimSpace(raw.APIKey)
	if raw.Model != nil {
		cfg.Model = strings.TrimSpace(*raw.Model)
	}
	if raw.Limit > 0 {
		cfg.Limit = raw.Limit
	}
	if v := strings.TrimSpace(raw.Storage); v != "" {
		cfg.Storage = strings.ToLower(v)
	}
	if v := strings.TrimSpace(raw.DataDir); v != "" {
		cfg.DataDir = mustExpand(v)
	}
	cfg.Simulated = raw.Simulated

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks values that have no sensible fallback.
func (c Config) Validate() error {
	switch c.Storage {
	case StorageSQLite, StorageTOML:
	default:
		return fmt.Errorf("invalid storage %q: want %q or %q", c.Storage, StorageSQLite, StorageTOML)
	}
	if c.Limit <= 0 {
		return fmt.Errorf("invalid limit %d: must be positive", c.Limit)
	}
	return nil
}

// LogPath returns the file the TUI logs to while it owns the terminal.
func (c Config) LogPath() string {
	if strings.TrimSpace(c.DataDir) == "" {
		return mustExpand(defaultDataDir + "/carlot.log")
	}
	return filepath.Join(c.DataDir, "carlot.log")
}

// ExpandPath expands a leading tilde and returns an absolute path.
func ExpandPath(path string) (string, error) {
	return expandPath(path)
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
