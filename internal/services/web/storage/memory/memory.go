// Package memory provides a process-local browser storage implementation.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/lceo-rwanda/portal/internal/services/web/storage"
)

var _ storage.Store = (*Store)(nil)

type entry struct {
	value     []byte
	updatedAt time.Time
}

// Store keeps browser entries in a mutex-guarded map.
type Store struct {
	mu      sync.RWMutex
	entries map[string]map[string]entry
	closed  bool
}

// New returns an empty store.
func New() *Store {
	return &Store{entries: make(map[string]map[string]entry)}
}

// Close drops every entry; later calls fail with storage.ErrNotConfigured.
func (s *Store) Close() error {
	if s == nil {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = nil
	s.closed = true
	return nil
}

// GetValue returns a copy of the stored bytes.
func (s *Store) GetValue(_ context.Context, namespace, key string) ([]byte, bool, error) {
	if s == nil {
		return nil, false, storage.ErrNotConfigured
	}
	namespace, key, err := storage.NormalizeKey(namespace, key)
	if err != nil {
		return nil, false, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return nil, false, storage.ErrNotConfigured
	}
	e, ok := s.entries[namespace][key]
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), e.value...), true, nil
}

// PutValue stores a copy of value.
func (s *Store) PutValue(_ context.Context, namespace, key string, value []byte) error {
	if s == nil {
		return storage.ErrNotConfigured
	}
	namespace, key, err := storage.NormalizeKey(namespace, key)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return storage.ErrNotConfigured
	}
	bucket := s.entries[namespace]
	if bucket == nil {
		bucket = make(map[string]entry)
		s.entries[namespace] = bucket
	}
	bucket[key] = entry{value: append([]byte{}, value...), updatedAt: time.Now().UTC()}
	return nil
}

// DeleteValue removes an entry if present.
func (s *Store) DeleteValue(_ context.Context, namespace, key string) error {
	if s == nil {
		return storage.ErrNotConfigured
	}
	namespace, key, err := storage.NormalizeKey(namespace, key)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return storage.ErrNotConfigured
	}
	bucket := s.entries[namespace]
	delete(bucket, key)
	if len(bucket) == 0 {
		delete(s.entries, namespace)
	}
	return nil
}

// PruneBefore deletes entries not written since cutoff.
func (s *Store) PruneBefore(_ context.Context, cutoff time.Time) (int64, error) {
	if s == nil {
		return 0, storage.ErrNotConfigured
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return 0, storage.ErrNotConfigured
	}
	var removed int64
	for namespace, bucket := range s.entries {
		for key, e := range bucket {
			if e.updatedAt.Before(cutoff) {
				delete(bucket, key)
				removed++
			}
		}
		if len(bucket) == 0 {
			delete(s.entries, namespace)
		}
	}
	return removed, nil
}
