package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/lceo-rwanda/portal/internal/platform/storage/sqlitemigrate"
	"github.com/lceo-rwanda/portal/internal/services/web/storage"
	"github.com/lceo-rwanda/portal/internal/services/web/storage/sqlite/migrations"
	_ "modernc.org/sqlite"
)

var _ storage.Store = (*Store)(nil)

// Store persists browser key-value entries in SQLite.
type Store struct {
	sqlDB *sql.DB
	now   func() time.Time
}

// Open opens and migrates a browser storage database at path.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}

	cleanPath := filepath.Clean(path)
	dsn := cleanPath + "?_pragma=journal_mode(WAL)&_pragma=foreign_keys(ON)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}

	if err := sqlitemigrate.ApplyMigrations(context.Background(), sqlDB, migrations.FS, ""); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Store{sqlDB: sqlDB, now: func() time.Time { return time.Now().UTC() }}, nil
}

// Close releases the underlying SQLite connection.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// GetValue loads one entry.
func (s *Store) GetValue(ctx context.Context, namespace, key string) ([]byte, bool, error) {
	if s == nil || s.sqlDB == nil {
		return nil, false, storage.ErrNotConfigured
	}
	namespace, key, err := storage.NormalizeKey(namespace, key)
	if err != nil {
		return nil, false, err
	}

	var value []byte
	err = s.sqlDB.QueryRowContext(ctx,
		`SELECT value FROM browser_storage WHERE namespace = ? AND storage_key = ?`,
		namespace, key,
	).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get browser value: %w", err)
	}
	return value, true, nil
}

// PutValue upserts one entry.
func (s *Store) PutValue(ctx context.Context, namespace, key string, value []byte) error {
	if s == nil || s.sqlDB == nil {
		return storage.ErrNotConfigured
	}
	namespace, key, err := storage.NormalizeKey(namespace, key)
	if err != nil {
		return err
	}
	if value == nil {
		value = []byte{}
	}

	_, err = s.sqlDB.ExecContext(ctx,
		`INSERT INTO browser_storage (namespace, storage_key, value, updated_at)
		 VALUES (?, ?, ?, ?)
		 ON CONFLICT(namespace, storage_key) DO UPDATE SET
		    value = excluded.value,
		    updated_at = excluded.updated_at`,
		namespace, key, value, s.now().UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("put browser value: %w", err)
	}
	return nil
}

// DeleteValue removes one entry. Deleting a missing entry is not an error.
func (s *Store) DeleteValue(ctx context.Context, namespace, key string) error {
	if s == nil || s.sqlDB == nil {
		return storage.ErrNotConfigured
	}
	namespace, key, err := storage.NormalizeKey(namespace, key)
	if err != nil {
		return err
	}
	if _, err := s.sqlDB.ExecContext(ctx,
		`DELETE FROM browser_storage WHERE namespace = ? AND storage_key = ?`,
		namespace, key,
	); err != nil {
		return fmt.Errorf("delete browser value: %w", err)
	}
	return nil
}

// PruneBefore deletes entries not written since cutoff and reports how many went.
func (s *Store) PruneBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	if s == nil || s.sqlDB == nil {
		return 0, storage.ErrNotConfigured
	}
	res, err := s.sqlDB.ExecContext(ctx,
		`DELETE FROM browser_storage WHERE updated_at < ?`,
		cutoff.UTC().UnixMilli(),
	)
	if err != nil {
		return 0, fmt.Errorf("prune browser values: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("prune browser values: %w", err)
	}
	return n, nil
}
