package sqlite

const (
	dbFileName = "carlot.db"

	createKV = `CREATE TABLE IF NOT EXISTS kv (
    key TEXT PRIMARY KEY,
    value TEXT NOT NULL,
    updated_at TEXT NOT NULL
);`

	upsertKV = `INSERT INTO kv (key, value, updated_at) VALUES (?, ?, ?)
ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at;`

	selectKV = `SELECT value FROM kv WHERE key = ?;`
	deleteKV = `DELETE FROM kv WHERE key = ?;`
	listKeys = `SELECT key FROM kv ORDER BY key;`
)
