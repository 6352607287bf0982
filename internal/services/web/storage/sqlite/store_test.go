package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/lceo-rwanda/portal/internal/services/web/storage"
	_ "modernc.org/sqlite"
)

func TestOpenRequiresPath(t *testing.T) {
	if _, err := Open("  "); err == nil {
		t.Fatal("expected error")
	}
}

func TestOpenRunsMigrations(t *testing.T) {
	path := filepath.Join(t.TempDir(), "portal.db")
	openStore(t, path)

	sqlDB, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	defer func() {
		_ = sqlDB.Close()
	}()

	var name string
	if err := sqlDB.QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name = 'browser_storage'").Scan(&name); err != nil {
		t.Fatalf("browser_storage table missing: %v", err)
	}
}

func TestValueLifecycle(t *testing.T) {
	store := openStore(t, filepath.Join(t.TempDir(), "portal.db"))
	ctx := context.Background()

	if _, ok, err := store.GetValue(ctx, "ns-1", "lceo_user"); err != nil || ok {
		t.Fatalf("GetValue on empty store = ok %v err %v, want miss", ok, err)
	}
	if err := store.PutValue(ctx, "ns-1", "lceo_user", []byte(`{"id":"a"}`)); err != nil {
		t.Fatalf("put: %v", err)
	}
	if err := store.PutValue(ctx, "ns-1", "lceo_user", []byte(`{"id":"b"}`)); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	got, ok, err := store.GetValue(ctx, " ns-1 ", "lceo_user")
	if err != nil || !ok {
		t.Fatalf("get = ok %v err %v, want hit", ok, err)
	}
	if string(got) != `{"id":"b"}` {
		t.Fatalf("value = %s, want overwritten record", got)
	}
	if _, ok, _ := store.GetValue(ctx, "ns-2", "lceo_user"); ok {
		t.Fatal("namespaces must be isolated")
	}

	if err := store.DeleteValue(ctx, "ns-1", "lceo_user"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, ok, _ := store.GetValue(ctx, "ns-1", "lceo_user"); ok {
		t.Fatal("value still present after delete")
	}
	if err := store.DeleteValue(ctx, "ns-1", "lceo_user"); err != nil {
		t.Fatalf("second delete: %v", err)
	}
}

func TestRejectsEmptyKeys(t *testing.T) {
	store := openStore(t, filepath.Join(t.TempDir(), "portal.db"))
	ctx := context.Background()

	if err := store.PutValue(ctx, "", "k", []byte("v")); err == nil {
		t.Fatal("expected namespace error")
	}
	if _, _, err := store.GetValue(ctx, "ns", " "); err == nil {
		t.Fatal("expected key error")
	}
}

func TestPruneBefore(t *testing.T) {
	store := openStore(t, filepath.Join(t.TempDir(), "portal.db"))
	ctx := context.Background()
	base := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	store.now = func() time.Time { return base }
	if err := store.PutValue(ctx, "old", "k", []byte("v")); err != nil {
		t.Fatalf("put old: %v", err)
	}
	store.now = func() time.Time { return base.Add(48 * time.Hour) }
	if err := store.PutValue(ctx, "new", "k", []byte("v")); err != nil {
		t.Fatalf("put new: %v", err)
	}

	removed, err := store.PruneBefore(ctx, base.Add(24*time.Hour))
	if err != nil {
		t.Fatalf("prune: %v", err)
	}
	if removed != 1 {
		t.Fatalf("removed = %d, want 1", removed)
	}
	if _, ok, _ := store.GetValue(ctx, "new", "k"); !ok {
		t.Fatal("recent entry pruned")
	}
}

func TestNilStoreIsNotConfigured(t *testing.T) {
	var store *Store
	if _, _, err := store.GetValue(context.Background(), "ns", "k"); !errors.Is(err, storage.ErrNotConfigured) {
		t.Fatalf("GetValue error = %v, want %v", err, storage.ErrNotConfigured)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("Close on nil store = %v", err)
	}
}

func openStore(t *testing.T, path string) *Store {
	t.Helper()
	store, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Fatalf("close: %v", err)
		}
	})
	return store
}
