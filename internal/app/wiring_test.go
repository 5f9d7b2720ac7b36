package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/five82/carlot/internal/carapi"
	"github.com/five82/carlot/internal/config"
	"github.com/five82/carlot/internal/prefs"
	"github.com/five82/carlot/internal/state"
)

func TestOpenStorage_SQLite(t *testing.T) {
	cfg := config.Default()
	cfg.DataDir = t.TempDir()

	storage, err := OpenStorage(cfg, nil)
	if err != nil {
		t.Fatalf("OpenStorage returned error: %v", err)
	}
	t.Cleanup(func() { _ = storage.Close() })

	if err := storage.Set(state.PageKey, "2"); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}
	if _, err := os.Stat(filepath.Join(cfg.DataDir, "carlot.db")); err != nil {
		t.Fatalf("database file missing: %v", err)
	}
	got, ok, err := storage.Get(state.PageKey)
	if err != nil || !ok || got != "2" {
		t.Fatalf("Get = %q, %v, %v; want 2, true, nil", got, ok, err)
	}
}

func TestOpenStorage_TOMLUsesPrefsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.toml")
	cfg := config.Default()
	cfg.Storage = config.StorageTOML

	storage, err := OpenStorage(cfg, prefs.NewStore(path))
	if err != nil {
		t.Fatalf("OpenStorage returned error: %v", err)
	}
	if err := storage.Set(state.SortKey, `{"column":"year","asc":true}`); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}
	if err := storage.Close(); err != nil {
		t.Fatalf("Close returned error: %v", err)
	}

	p, _ := prefs.Load(path)
	if got := p.State[state.SortKey]; got != `{"column":"year","asc":true}` {
		t.Fatalf("prefs state = %q, want saved sort", got)
	}
}

func TestOpenStorage_UnknownBackend(t *testing.T) {
	cfg := config.Default()
	cfg.Storage = "redis"
	if _, err := OpenStorage(cfg, nil); err == nil {
		t.Fatalf("OpenStorage returned nil error for unknown backend")
	}
}

func TestStoreRestoresFromOpenedStorage(t *testing.T) {
	cfg := config.Default()
	cfg.DataDir = t.TempDir()

	first, err := OpenStorage(cfg, nil)
	if err != nil {
		t.Fatalf("OpenStorage returned error: %v", err)
	}
	store := state.NewStore(first)
	store.SetFilters(state.FilterPatch{Make: state.Set("toyota")})
	if err := first.Close(); err != nil {
		t.Fatalf("Close returned error: %v", err)
	}

	second, err := OpenStorage(cfg, nil)
	if err != nil {
		t.Fatalf("reopen returned error: %v", err)
	}
	t.Cleanup(func() { _ = second.Close() })

	if got := state.NewStore(second).Filters().Make; got != "toyota" {
		t.Fatalf("restored make = %q, want toyota", got)
	}
}

func TestQueryDefaultsLimit(t *testing.T) {
	if got := Query(config.Config{}).Limit; got != carapi.DefaultLimit {
		t.Fatalf("Limit = %d, want %d", got, carapi.DefaultLimit)
	}
	if got := Query(config.Config{Limit: 5}).Limit; got != 5 {
		t.Fatalf("Limit = %d, want 5", got)
	}
}

func TestNewClientRejectsBadURL(t *testing.T) {
	cfg := config.Default()
	cfg.APIURL = "://bad"
	if _, err := NewClient(cfg); err == nil {
		t.Fatalf("NewClient returned nil error for bad URL")
	}
}

func TestMemoryStorageCloses(t *testing.T) {
	s := MemoryStorage()
	if err := s.Set("k", "v"); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close returned error: %v", err)
	}
}
