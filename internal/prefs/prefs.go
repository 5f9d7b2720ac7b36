// Package prefs handles carlot user preferences persistence.
// Preferences are stored in ~/.config/carlot/prefs.toml.
package prefs

import (
	"errors"
	"fmt"
	"io"
	"maps"
	"os"
	"path/filepath"
	"strings"
	"sync"

	toml "github.com/pelletier/go-toml/v2"
)

// Prefs holds user preferences for carlot. State carries the vehicle store's
// persisted keys when the TOML storage backend is selected.
type Prefs struct {
	Theme string            `toml:"theme"`
	State map[string]string `toml:"state,omitempty"`
}

const (
	defaultPrefsPath = "~/.config/carlot/prefs.toml"
	defaultTheme     = "Nightfox"
)

// DefaultPath returns the default preferences file path.
func DefaultPath() string {
	return defaultPrefsPath
}

// DefaultTheme returns the theme used when none is saved.
func DefaultTheme() string {
	return defaultTheme
}

// Load reads preferences from the given path, falling back to defaults if missing.
func Load(path string) (Prefs, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Prefs{Theme: defaultTheme}, nil
	}

	prefs := Prefs{Theme: defaultTheme}

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return prefs, nil
		}
		return prefs, nil // Graceful degradation
	}
	defer func() { _ = file.Close() }()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return prefs, nil // Graceful degradation
	}

	if err := toml.Unmarshal(bytes, &prefs); err != nil {
		return Prefs{Theme: defaultTheme}, nil // Graceful degradation
	}

	if strings.TrimSpace(prefs.Theme) == "" {
		prefs.Theme = defaultTheme
	}

	return prefs, nil
}

// Save writes preferences to the given path, creating directories as needed.
func Save(path string, p Prefs) error {
	resolved, err := resolvePath(path)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	dir := filepath.Dir(resolved)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create prefs dir: %w", err)
	}

	bytes, err := toml.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal prefs: %w", err)
	}

	if err := os.WriteFile(resolved, bytes, 0o644); err != nil {
		return fmt.Errorf("write prefs: %w", err)
	}

	return nil
}

// Store exposes the prefs file as key/value storage. Every Set rewrites the
// file so other preferences such as the theme are preserved.
type Store struct {
	mu   sync.Mutex
	path string
}

// NewStore returns a Store over the prefs file at path (empty for default).
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Get returns the value saved under key.
func (s *Store) Get(key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, _ := Load(s.path)
	v, ok := p.State[key]
	return v, ok, nil
}

// Set saves value under key.
func (s *Store) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, _ := Load(s.path)
	state := make(map[string]string, len(p.State)+1)
	maps.Copy(state, p.State)
	state[key] = value
	p.State = state
	return Save(s.path, p)
}

// SaveTheme updates only the theme, keeping stored state.
func (s *Store) SaveTheme(theme string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, _ := Load(s.path)
	p.Theme = theme
	return Save(s.path, p)
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultPrefsPath)
	}
	return expandPath(path)
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
