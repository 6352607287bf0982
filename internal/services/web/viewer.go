package web

import (
	"context"
	"log/slog"
	"net/http"
	"sync"

	module "github.com/lceo-rwanda/portal/internal/services/web/module"
	"github.com/lceo-rwanda/portal/internal/services/web/platform/webctx"
)

type requestViewerState struct {
	once   sync.Once
	viewer module.Viewer
}

type requestViewerStateKey struct{}

// viewerResolver restores the signed-in user for the request's browser
// namespace.
type viewerResolver struct {
	sessions module.Sessions
	logger   *slog.Logger
}

func newViewerResolver(sessions module.Sessions, logger *slog.Logger) viewerResolver {
	if logger == nil {
		logger = slog.Default()
	}
	return viewerResolver{sessions: sessions, logger: logger}
}

func (v viewerResolver) resolveUncached(r *http.Request) module.Viewer {
	if v.sessions == nil || r == nil {
		return module.Viewer{}
	}
	namespace := webctx.NamespaceFrom(r)
	if namespace == "" {
		return module.Viewer{}
	}
	session, err := v.sessions.Restore(r.Context(), namespace)
	if err != nil {
		v.logger.ErrorContext(r.Context(), "restore session", "error", err)
		return module.Viewer{}
	}
	if !session.Authenticated {
		return module.Viewer{}
	}
	return module.Viewer{Authenticated: true, User: session.User, Stale: session.Stale}
}

// Resolve returns the request viewer, restoring it at most once per request
// when the cache middleware ran.
func (v viewerResolver) Resolve(r *http.Request) module.Viewer {
	if r == nil {
		return module.Viewer{}
	}
	if state, ok := r.Context().Value(requestViewerStateKey{}).(*requestViewerState); ok && state != nil {
		state.once.Do(func() {
			state.viewer = v.resolveUncached(r)
		})
		return state.viewer
	}
	return v.resolveUncached(r)
}

// withViewerCache installs the per-request viewer cache.
func withViewerCache(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := context.WithValue(r.Context(), requestViewerStateKey{}, &requestViewerState{})
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
