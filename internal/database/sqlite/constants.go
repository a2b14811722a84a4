package sqlite

import "time"

const (
	driverName    = "sqlite3"
	dsnParameters = "?_foreign_keys=on&_journal_mode=WAL&_busy_timeout=5000"
	migrationsDir = "migrations"

	// DefaultCacheTTL bounds how long a decoded read stays cached
	DefaultCacheTTL = 10 * time.Minute
)

// Queries
const (
	queryGet    = `SELECT value FROM kv WHERE key = ?`
	querySet    = `INSERT INTO kv (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP) ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP`
	queryDelete = `DELETE FROM kv WHERE key = ?`
)

// Error Messages
const (
	ErrMsgOpenFailed    = "failed to open database: %w"
	ErrMsgMigrateFailed = "failed to run migrations: %w"
	ErrMsgQueryFailed   = "failed to read %s: %w"
	ErrMsgWriteFailed   = "failed to write %s: %w"
	ErrMsgDeleteFailed  = "failed to delete %s: %w"
)

// Log Messages
const (
	LogMsgStoreOpened      = "SQLite store opened"
	LogMsgMigrationApplied = "Applied store migration"
)
