// Package module defines the feature contract used by portal composition.
package module

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/lceo-rwanda/portal/internal/platform/clock"
	"github.com/lceo-rwanda/portal/internal/portal/auth"
	"github.com/lceo-rwanda/portal/internal/portal/mockdata"
	"github.com/lceo-rwanda/portal/internal/portal/role"
	"github.com/lceo-rwanda/portal/internal/services/web/platform/observability"
	"github.com/lceo-rwanda/portal/internal/services/web/platform/requestmeta"
)

// Viewer is the signed-in state of the requesting browser.
type Viewer struct {
	Authenticated bool
	User          mockdata.User
	// Stale marks a viewer restored from a persisted record whose id no
	// longer matches a known user.
	Stale bool
}

// Role returns the viewer's portal configuration.
func (v Viewer) Role() role.Config { return role.For(v.User.UserType) }

// Home is where the viewer's portal starts, or "/" when signed out.
func (v Viewer) Home() string {
	if !v.Authenticated {
		return "/"
	}
	return role.HomePath(v.User.UserType)
}

// Initials abbreviates the viewer's name for the navbar avatar.
func (v Viewer) Initials() string { return role.Initials(v.User.FullName) }

// ResolveViewer resolves the viewer for a request.
type ResolveViewer func(*http.Request) Viewer

// Sessions is the browser session surface used by handlers.
type Sessions interface {
	Login(ctx context.Context, namespace string, email string, role mockdata.UserType) (mockdata.User, error)
	Logout(ctx context.Context, namespace string) error
	Restore(ctx context.Context, namespace string) (auth.Session, error)
}

// KeyValue is browser-local storage scoped by namespace.
type KeyValue interface {
	GetValue(ctx context.Context, namespace, key string) ([]byte, bool, error)
	PutValue(ctx context.Context, namespace, key string, value []byte) error
	DeleteValue(ctx context.Context, namespace, key string) error
}

// Dependencies carries shared runtime collaborators into modules.
type Dependencies struct {
	Sessions      Sessions
	Store         KeyValue
	Clock         clock.Clock
	Logger        *slog.Logger
	Metrics       *observability.Metrics
	SchemePolicy  requestmeta.SchemePolicy
	ResolveViewer ResolveViewer
}

// Mount describes a module route mount.
type Mount struct {
	// Prefix is the subtree the module owns, with a trailing slash.
	Prefix string
	// Exact lists additional exact paths served by Handler, such as the
	// subtree root without its trailing slash.
	Exact   []string
	Handler http.Handler
	// Role, when set, restricts the mount to signed-in users of that type.
	Role mockdata.UserType
}

// Module declares the minimum contract required by composition.
type Module interface {
	ID() string
	Mount(Dependencies) (Mount, error)
}
