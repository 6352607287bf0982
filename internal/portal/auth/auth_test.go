package auth

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/lceo-rwanda/portal/internal/platform/clock"
	"github.com/lceo-rwanda/portal/internal/portal/mockdata"
)

type fakeStore struct {
	mu     sync.Mutex
	values map[string][]byte
	getErr error
}

func newFakeStore() *fakeStore {
	return &fakeStore{values: make(map[string][]byte)}
}

func (f *fakeStore) GetValue(_ context.Context, namespace, key string) ([]byte, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.getErr != nil {
		return nil, false, f.getErr
	}
	v, ok := f.values[namespace+"/"+key]
	return v, ok, nil
}

func (f *fakeStore) PutValue(_ context.Context, namespace, key string, value []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.values[namespace+"/"+key] = value
	return nil
}

func (f *fakeStore) DeleteValue(_ context.Context, namespace, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.values, namespace+"/"+key)
	return nil
}

func (f *fakeStore) has(namespace, key string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.values[namespace+"/"+key]
	return ok
}

func newTestService(t *testing.T, store KeyValue, opts ...Option) (*Service, *clock.Fake) {
	t.Helper()
	fake := clock.NewFake(time.Date(2024, 6, 3, 9, 0, 0, 0, time.UTC))
	svc, err := NewService(store, append([]Option{WithClock(fake)}, opts...)...)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	return svc, fake
}

func TestNewServiceRequiresStore(t *testing.T) {
	t.Parallel()

	if _, err := NewService(nil); err == nil {
		t.Fatal("expected missing store error")
	}
}

func TestLoginByEmailResolvesDonor(t *testing.T) {
	t.Parallel()

	store := newFakeStore()
	svc, fake := newTestService(t, store)

	user, err := svc.Login(context.Background(), "browser-1", "donor1@example.org", "")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if user.UserType != mockdata.UserTypeDonor {
		t.Fatalf("UserType = %q, want %q", user.UserType, mockdata.UserTypeDonor)
	}
	if !store.has("browser-1", StorageKey) {
		t.Fatal("expected persisted session record")
	}
	if sleeps := fake.Sleeps(); len(sleeps) != 1 || sleeps[0] != 800*time.Millisecond {
		t.Fatalf("sleeps = %v, want one 800ms wait", sleeps)
	}
}

func TestLoginUnknownEmailFails(t *testing.T) {
	t.Parallel()

	store := newFakeStore()
	svc, _ := newTestService(t, store)

	_, err := svc.Login(context.Background(), "browser-1", "nonexistent@x.org", "")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("login error = %v, want %v", err, ErrInvalidCredentials)
	}
	if store.has("browser-1", StorageKey) {
		t.Fatal("failed login must not persist a session")
	}
}

func TestLoginFallsBackToRole(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService(t, newFakeStore())

	tests := []struct {
		name  string
		email string
		role  mockdata.UserType
		want  string
	}{
		{name: "role only", role: mockdata.UserTypeBeneficiary, want: mockdata.BeneficiaryUserID},
		{name: "unknown email with role", email: "who@x.org", role: mockdata.UserTypeAdmin, want: mockdata.AdminUserID},
		{name: "email wins over role", email: "ADMIN@lceo.org", role: mockdata.UserTypeDonor, want: mockdata.AdminUserID},
	}
	for _, tc := range tests {
		user, err := svc.Login(context.Background(), "browser-"+tc.name, tc.email, tc.role)
		if err != nil {
			t.Fatalf("%s: login: %v", tc.name, err)
		}
		if user.ID != tc.want {
			t.Fatalf("%s: user = %q, want %q", tc.name, user.ID, tc.want)
		}
	}
}

func TestLoginHonorsCancelledContext(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService(t, newFakeStore())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := svc.Login(ctx, "browser-1", mockdata.DonorEmail, ""); !errors.Is(err, context.Canceled) {
		t.Fatalf("login error = %v, want %v", err, context.Canceled)
	}
}

func TestLogoutClearsSession(t *testing.T) {
	t.Parallel()

	store := newFakeStore()
	svc, _ := newTestService(t, store)
	ctx := context.Background()

	if _, err := svc.Login(ctx, "browser-1", mockdata.DonorEmail, ""); err != nil {
		t.Fatalf("login: %v", err)
	}
	if !svc.IsAuthenticated(ctx, "browser-1") {
		t.Fatal("expected authenticated after login")
	}
	if err := svc.Logout(ctx, "browser-1"); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if store.has("browser-1", StorageKey) {
		t.Fatal("persisted session key still present after logout")
	}
	if svc.IsAuthenticated(ctx, "browser-1") {
		t.Fatal("IsAuthenticated = true after logout")
	}
}

func TestRestoreResolvesFreshRecord(t *testing.T) {
	t.Parallel()

	store := newFakeStore()
	svc, _ := newTestService(t, store)
	ctx := context.Background()

	outdated := mockdata.User{ID: mockdata.DonorUserID, FullName: "Old Name", UserType: mockdata.UserTypeDonor}
	payload, _ := json.Marshal(outdated)
	_ = store.PutValue(ctx, "browser-1", StorageKey, payload)

	session, err := svc.Restore(ctx, "browser-1")
	if err != nil {
		t.Fatalf("restore: %v", err)
	}
	if !session.Authenticated || session.Stale {
		t.Fatalf("session = %+v, want authenticated fresh session", session)
	}
	if session.User.FullName != "Michael Thompson" {
		t.Fatalf("FullName = %q, want fresh mock record", session.User.FullName)
	}
}

func TestRestoreFallsBackToPersistedRecord(t *testing.T) {
	t.Parallel()

	store := newFakeStore()
	svc, _ := newTestService(t, store)
	ctx := context.Background()

	removed := mockdata.User{ID: "user-removed", FullName: "Former Donor", UserType: mockdata.UserTypeDonor}
	payload, _ := json.Marshal(removed)
	_ = store.PutValue(ctx, "browser-1", StorageKey, payload)

	session, err := svc.Restore(ctx, "browser-1")
	if err != nil {
		t.Fatalf("restore: %v", err)
	}
	if !session.Authenticated || !session.Stale {
		t.Fatalf("session = %+v, want stale authenticated session", session)
	}
	if session.User.FullName != "Former Donor" {
		t.Fatalf("FullName = %q, want persisted value", session.User.FullName)
	}
}

func TestRestoreDiscardsUnreadableRecord(t *testing.T) {
	t.Parallel()

	for _, raw := range []string{"{not json", "null"} {
		store := newFakeStore()
		svc, _ := newTestService(t, store)
		ctx := context.Background()
		_ = store.PutValue(ctx, "browser-1", StorageKey, []byte(raw))

		session, err := svc.Restore(ctx, "browser-1")
		if err != nil {
			t.Fatalf("restore %q: %v", raw, err)
		}
		if session.Authenticated {
			t.Fatalf("restore %q authenticated an unreadable record", raw)
		}
		if store.has("browser-1", StorageKey) {
			t.Fatalf("unreadable record %q was not removed", raw)
		}
	}
}

func TestRestorePropagatesStoreErrors(t *testing.T) {
	t.Parallel()

	store := newFakeStore()
	store.getErr = errors.New("disk gone")
	svc, _ := newTestService(t, store)

	if _, err := svc.Restore(context.Background(), "browser-1"); err == nil {
		t.Fatal("expected store error")
	}
	if svc.IsAuthenticated(context.Background(), "browser-1") {
		t.Fatal("store errors must not authenticate")
	}
}
