package app

import (
	"fmt"

	"github.com/five82/carlot/internal/carapi"
	"github.com/five82/carlot/internal/config"
	"github.com/five82/carlot/internal/prefs"
	"github.com/five82/carlot/internal/sqlite"
	"github.com/five82/carlot/internal/state"
)

// Storage is a state.Storage that must be closed when the app exits.
type Storage interface {
	state.Storage
	Close() error
}

// OpenStorage opens the backend named by cfg.Storage. The toml backend keeps
// state in the prefs file next to the theme.
func OpenStorage(cfg config.Config, prefsStore *prefs.Store) (Storage, error) {
	switch cfg.Storage {
	case config.StorageSQLite:
		kv, err := sqlite.Open(cfg.DataDir)
		if err != nil {
			return nil, fmt.Errorf("open storage: %w", err)
		}
		return kv, nil
	case config.StorageTOML:
		if prefsStore == nil {
			prefsStore = prefs.NewStore("")
		}
		return nopCloser{prefsStore}, nil
	default:
		return nil, fmt.Errorf("open storage: unknown backend %q", cfg.Storage)
	}
}

// MemoryStorage wraps state.MemoryStorage for one-shot commands that should
// not touch saved preferences.
func MemoryStorage() Storage {
	return nopCloser{state.NewMemoryStorage()}
}

// NewClient builds the vehicle API client from cfg.
func NewClient(cfg config.Config) (*carapi.Client, error) {
	client, err := carapi.NewClient(carapi.Options{
		BaseURL: cfg.APIURL,
		APIKey:  cfg.APIKey,
		Model:   cfg.Model,
	})
	if err != nil {
		return nil, fmt.Errorf("init api client: %w", err)
	}
	return client, nil
}

// Query returns the fetch parameters for cfg.
func Query(cfg config.Config) carapi.Query {
	limit := cfg.Limit
	if limit <= 0 {
		limit = carapi.DefaultLimit
	}
	return carapi.Query{Limit: limit}
}

type nopCloser struct {
	state.Storage
}

func (nopCloser) Close() error { return nil }
