// Package sqlite implements durable key/value storage on SQLite.
//
// The database lives at <data_dir>/carlot.db and holds a single kv table. Each
// Set is an upsert committed immediately, so state survives abrupt exits.
package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

// ErrClosed is returned by operations on a closed KV.
var ErrClosed = errors.New("sqlite storage is closed")

// KV is a string key/value store backed by a SQLite file. It is safe for
// concurrent use.
type KV struct {
	mu   sync.RWMutex
	db   *sql.DB
	path string
}

// Open creates dataDir if needed, opens the database and ensures the schema.
func Open(dataDir string) (*KV, error) {
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	path := filepath.Join(dataDir, dbFileName)
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	// One connection keeps writes serialized in the driver.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(createKV); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}
	return &KV{db: db, path: path}, nil
}

// Path returns the database file location.
func (k *KV) Path() string {
	return k.path
}

// Get returns the value stored under key.
func (k *KV) Get(key string) (string, bool, error) {
	k.mu.RLock()
	defer k.mu.RUnlock()
	if k.db == nil {
		return "", false, ErrClosed
	}

	var value string
	err := k.db.QueryRow(selectKV, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get %s: %w", key, err)
	}
	return value, true, nil
}

// Set stores value under key, replacing any previous value.
func (k *KV) Set(key, value string) error {
	k.mu.RLock()
	defer k.mu.RUnlock()
	if k.db == nil {
		return ErrClosed
	}
	now := time.Now().UTC().Format(time.RFC3339)
	if _, err := k.db.Exec(upsertKV, key, value, now); err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}
	return nil
}

// Delete removes key. Deleting a missing key is not an error.
func (k *KV) Delete(key string) error {
	k.mu.RLock()
	defer k.mu.RUnlock()
	if k.db == nil {
		return ErrClosed
	}
	if _, err := k.db.Exec(deleteKV, key); err != nil {
		return fmt.Errorf("delete %s: %w", key, err)
	}
	return nil
}

// Keys lists stored keys in order.
func (k *KV) Keys() ([]string, error) {
	k.mu.RLock()
	defer k.mu.RUnlock()
	if k.db == nil {
		return nil, ErrClosed
	}

	rows, err := k.db.Query(listKeys)
	if err != nil {
		return nil, fmt.Errorf("list keys: %w", err)
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			return nil, fmt.Errorf("scan key: %w", err)
		}
		keys = append(keys, key)
	}
	return keys, rows.Err()
}

// Close releases the database. Close is idempotent.
func (k *KV) Close() error {
	k.mu.Lock()
	defer k.mu.Unlock()
	if k.db == nil {
		return nil
	}
	err := k.db.Close()
	k.db = nil
	return err
}
