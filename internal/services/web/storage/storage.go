package storage

import (
	"context"
	"errors"
	"strings"
	"time"
)

// ErrNotConfigured is returned by nil or closed stores.
var ErrNotConfigured = errors.New("storage is not configured")

// Store is the per-browser key-value contract shared by the session and the
// donation wizard.
type Store interface {
	Close() error
	GetValue(ctx context.Context, namespace, key string) ([]byte, bool, error)
	PutValue(ctx context.Context, namespace, key string, value []byte) error
	DeleteValue(ctx context.Context, namespace, key string) error
}

// NormalizeKey trims a namespace and key pair and rejects empty parts.
func NormalizeKey(namespace, key string) (string, string, error) {
	namespace = strings.TrimSpace(namespace)
	if namespace == "" {
		return "", "", errors.New("namespace is required")
	}
	key = strings.TrimSpace(key)
	if key == "" {
		return "", "", errors.New("key is required")
	}
	return namespace, key, nil
}

// Pruner is implemented by stores that can expire idle entries.
type Pruner interface {
	PruneBefore(ctx context.Context, cutoff time.Time) (int64, error)
}
