// Package auth holds the portal session: who is signed in for one browser.
//
// The signed-in user lives in the browser's key-value namespace as a single
// JSON record under StorageKey. There is no password check, token issuance
// or expiry.
package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/lceo-rwanda/portal/internal/platform/clock"
	"github.com/lceo-rwanda/portal/internal/platform/timeouts"
	"github.com/lceo-rwanda/portal/internal/portal/mockdata"
)

// StorageKey is the fixed key holding the persisted user record.
const StorageKey = "lceo_user"

// ErrInvalidCredentials reports a login that matched no user.
var ErrInvalidCredentials = errors.New("invalid credentials")

// KeyValue is the browser storage the session reads and writes.
type KeyValue interface {
	GetValue(ctx context.Context, namespace, key string) ([]byte, bool, error)
	PutValue(ctx context.Context, namespace, key string, value []byte) error
	DeleteValue(ctx context.Context, namespace, key string) error
}

// Directory resolves users for login and restore.
type Directory interface {
	UserByID(id string) (mockdata.User, bool)
	UserByEmail(email string) (mockdata.User, bool)
	FirstUserOfType(userType mockdata.UserType) (mockdata.User, bool)
}

type mockDirectory struct{}

func (mockDirectory) UserByID(id string) (mockdata.User, bool) { return mockdata.UserByID(id) }

func (mockDirectory) UserByEmail(email string) (mockdata.User, bool) {
	return mockdata.UserByEmail(email)
}

func (mockDirectory) FirstUserOfType(userType mockdata.UserType) (mockdata.User, bool) {
	return mockdata.FirstUserOfType(userType)
}

// MockDirectory resolves users against the static mock set.
func MockDirectory() Directory { return mockDirectory{} }

// Session is the outcome of restoring a browser's persisted user.
type Session struct {
	User mockdata.User
	// Authenticated is false when nothing usable is persisted.
	Authenticated bool
	// Stale is true when the persisted id matched no known user and the raw
	// persisted record was used instead.
	Stale bool
}

// Service implements login, logout and restore for browser namespaces.
type Service struct {
	store      KeyValue
	users      Directory
	clock      clock.Clock
	loginDelay time.Duration
	logger     *slog.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithDirectory overrides the user directory.
func WithDirectory(users Directory) Option {
	return func(s *Service) {
		if users != nil {
			s.users = users
		}
	}
}

// WithClock sets the clock used for the simulated login latency.
func WithClock(c clock.Clock) Option {
	return func(s *Service) {
		if c != nil {
			s.clock = c
		}
	}
}

// WithLoginDelay overrides the simulated login latency.
func WithLoginDelay(d time.Duration) Option {
	return func(s *Service) { s.loginDelay = d }
}

// WithLogger sets the logger for session diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewService builds a session service over store.
func NewService(store KeyValue, opts ...Option) (*Service, error) {
	if store == nil {
		return nil, errors.New("session store is required")
	}
	s := &Service{
		store:      store,
		users:      MockDirectory(),
		clock:      clock.Real{},
		loginDelay: timeouts.SimulatedLogin,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s, nil
}

// Login signs a browser in. An email match wins; otherwise a non-empty role
// selects the first user of that role. No match fails with
// ErrInvalidCredentials and leaves any existing session untouched.
func (s *Service) Login(ctx context.Context, namespace string, email string, role mockdata.UserType) (mockdata.User, error) {
	if err := s.clock.Sleep(ctx, s.loginDelay); err != nil {
		return mockdata.User{}, err
	}

	var (
		user  mockdata.User
		found bool
	)
	if email = strings.TrimSpace(email); email != "" {
		user, found = s.users.UserByEmail(email)
	}
	if !found && role != "" {
		user, found = s.users.FirstUserOfType(role)
	}
	if !found {
		return mockdata.User{}, ErrInvalidCredentials
	}

	payload, err := json.Marshal(user)
	if err != nil {
		return mockdata.User{}, fmt.Errorf("encode session user: %w", err)
	}
	if err := s.store.PutValue(ctx, namespace, StorageKey, payload); err != nil {
		return mockdata.User{}, fmt.Errorf("persist session: %w", err)
	}
	s.logger.InfoContext(ctx, "session login", "user_id", user.ID, "user_type", string(user.UserType))
	return user, nil
}

// Logout clears the persisted user for a browser.
func (s *Service) Logout(ctx context.Context, namespace string) error {
	if err := s.store.DeleteValue(ctx, namespace, StorageKey); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

// Restore reads the persisted user and re-resolves it by id. When the id
// matches no known user the raw persisted record is returned as-is. A record
// that cannot be decoded is removed.
func (s *Service) Restore(ctx context.Context, namespace string) (Session, error) {
	raw, ok, err := s.store.GetValue(ctx, namespace, StorageKey)
	if err != nil {
		return Session{}, fmt.Errorf("load session: %w", err)
	}
	if !ok || len(raw) == 0 {
		return Session{}, nil
	}

	var parsed *mockdata.User
	if err := json.Unmarshal(raw, &parsed); err != nil || parsed == nil {
		s.logger.WarnContext(ctx, "discarding unreadable session record", "error", err)
		if delErr := s.store.DeleteValue(ctx, namespace, StorageKey); delErr != nil {
			return Session{}, fmt.Errorf("clear unreadable session: %w", delErr)
		}
		return Session{}, nil
	}

	if fresh, found := s.users.UserByID(parsed.ID); found {
		return Session{User: fresh, Authenticated: true}, nil
	}
	// TODO(auth-restore): decide whether an unknown persisted id should sign the browser out instead of trusting the stored record.
	s.logger.WarnContext(ctx, "restored session from persisted record", "user_id", parsed.ID)
	return Session{User: *parsed, Authenticated: true, Stale: true}, nil
}

// IsAuthenticated reports whether a browser has a restorable user.
func (s *Service) IsAuthenticated(ctx context.Context, namespace string) bool {
	session, err := s.Restore(ctx, namespace)
	return err == nil && session.Authenticated
}
