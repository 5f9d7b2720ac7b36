package state

import (
	"encoding/json"
	"log"
	"strconv"
	"strings"
	"sync"
)

// Keys under which the store persists user preferences.
const (
	FiltersKey = "vehicleFilters"
	SortKey    = "vehicleSort"
	PageKey    = "vehiclePage"
)

// Storage is a durable string key/value store. Implementations must be safe
// for concurrent use.
type Storage interface {
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
}

// MemoryStorage is a process-local Storage.
type MemoryStorage struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemoryStorage returns an empty MemoryStorage.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{values: make(map[string]string)}
}

// Get implements Storage.
func (m *MemoryStorage) Get(key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[key]
	return v, ok, nil
}

// Set implements Storage.
func (m *MemoryStorage) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.values == nil {
		m.values = make(map[string]string)
	}
	m.values[key] = value
	return nil
}

// persisted is the state restored at construction.
type persisted struct {
	filters Filters
	sort    Sort
	page    int
}

// restore reads every key, falling back to defaults for missing or malformed
// values.
func restore(storage Storage) persisted {
	out := persisted{page: 1}
	if storage == nil {
		return out
	}

	if raw, ok := read(storage, FiltersKey); ok {
		var f Filters
		if err := json.Unmarshal([]byte(raw), &f); err == nil {
			out.filters = f
		}
	}

	if raw, ok := read(storage, SortKey); ok {
		var s Sort
		if err := json.Unmarshal([]byte(raw), &s); err == nil {
			if col, valid := ParseColumn(string(s.Column)); valid {
				out.sort = Sort{Column: col, Asc: s.Asc}
			}
		}
	}

	if raw, ok := read(storage, PageKey); ok {
		if page, err := strconv.Atoi(strings.TrimSpace(raw)); err == nil && page >= 1 {
			out.page = page
		}
	}
	return out
}

func read(storage Storage, key string) (string, bool) {
	raw, ok, err := storage.Get(key)
	if err != nil {
		log.Printf("restore %s: %v", key, err)
		return "", false
	}
	return raw, ok
}

func saveFilters(storage Storage, f Filters) {
	data, err := json.Marshal(f)
	if err != nil {
		log.Printf("persist %s: %v", FiltersKey, err)
		return
	}
	write(storage, FiltersKey, string(data))
}

func saveSort(storage Storage, s Sort) {
	data, err := json.Marshal(s)
	if err != nil {
		log.Printf("persist %s: %v", SortKey, err)
		return
	}
	write(storage, SortKey, string(data))
}

func savePage(storage Storage, page int) {
	write(storage, PageKey, strconv.Itoa(page))
}

func write(storage Storage, key, value string) {
	if storage == nil {
		return
	}
	if err := storage.Set(key, value); err != nil {
		log.Printf("persist %s: %v", key, err)
	}
}
