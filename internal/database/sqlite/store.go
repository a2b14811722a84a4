// Package sqlite is the on-disk repository.Store. Each key is one row of a
// kv table holding a JSON document; reads go through an expiring LRU cache.
package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/hashicorp/golang-lru/v2/expirable"
	_ "github.com/mattn/go-sqlite3"
	"github.com/pressly/goose/v3"

	"github.com/osse101/RavenCompanion_Go/internal/database"
)

//go:embed migrations/*.sql
var migrations embed.FS

// Store handles all database operations
type Store struct {
	db    *sql.DB
	cache *expirable.LRU[string, []byte]
}

// Open opens (creating if needed) the database at path and applies migrations
func Open(ctx context.Context, path string, cacheSize int) (*Store, error) {
	db, err := sql.Open(driverName, path+dsnParameters)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgOpenFailed, err)
	}
	// A single connection keeps writes ordered and avoids SQLITE_BUSY.
	db.SetMaxOpenConns(1)

	if err := migrate(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf(ErrMsgMigrateFailed, err)
	}

	slog.Default().Info(LogMsgStoreOpened, "path", path)
	return newStore(db, cacheSize), nil
}

func newStore(db *sql.DB, cacheSize int) *Store {
	if cacheSize <= 0 {
		cacheSize = 1
	}
	return &Store{
		db:    db,
		cache: expirable.NewLRU[string, []byte](cacheSize, nil, DefaultCacheTTL),
	}
}

func migrate(ctx context.Context, db *sql.DB) error {
	fsys, err := fs.Sub(migrations, migrationsDir)
	if err != nil {
		return err
	}
	provider, err := goose.NewProvider(goose.DialectSQLite3, db, fsys)
	if err != nil {
		return err
	}
	results, err := provider.Up(ctx)
	if err != nil {
		return err
	}
	for _, r := range results {
		slog.Default().Debug(LogMsgMigrationApplied, "version", r.Source.Version, "duration", r.Duration)
	}
	return nil
}

// Get decodes the value stored at key into dst
func (s *Store) Get(ctx context.Context, key string, dst any) (bool, error) {
	raw, ok := s.cache.Get(key)
	if !ok {
		var value string
		err := s.db.QueryRowContext(ctx, queryGet, key).Scan(&value)
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		if err != nil {
			return false, fmt.Errorf(ErrMsgQueryFailed, key, err)
		}
		raw = []byte(value)
		s.cache.Add(key, raw)
	}

	if err := json.Unmarshal(raw, dst); err != nil {
		return false, fmt.Errorf(database.ErrMsgDecodeValueFailed, key, err)
	}
	return true, nil
}

// Set stores value at key, replacing any previous value
func (s *Store) Set(ctx context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf(database.ErrMsgEncodeValueFailed, key, err)
	}
	if _, err := s.db.ExecContext(ctx, querySet, key, string(raw)); err != nil {
		s.cache.Remove(key)
		return fmt.Errorf(ErrMsgWriteFailed, key, err)
	}
	s.cache.Add(key, raw)
	return nil
}

// Delete removes key
func (s *Store) Delete(ctx context.Context, key string) error {
	s.cache.Remove(key)
	if _, err := s.db.ExecContext(ctx, queryDelete, key); err != nil {
		return fmt.Errorf(ErrMsgDeleteFailed, key, err)
	}
	return nil
}

// Close closes the database connection
func (s *Store) Close() error {
	s.cache.Purge()
	return s.db.Close()
}
