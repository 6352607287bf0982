// Package app composes feature modules into the portal's root handler.
package app

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/lceo-rwanda/portal/internal/portal/mockdata"
	module "github.com/lceo-rwanda/portal/internal/services/web/module"
	"github.com/lceo-rwanda/portal/internal/services/web/platform/httpx"
	"github.com/lceo-rwanda/portal/internal/services/web/routepath"
)

// ComposeInput carries the module set and the shared dependencies handed to
// each module.
type ComposeInput struct {
	Dependencies module.Dependencies
	Modules      []module.Module
}

// Compose mounts every module on a root mux. Modules that declare a role are
// wrapped in the role guard and the same-origin check.
func Compose(input ComposeInput) (*http.ServeMux, error) {
	deps := input.Dependencies
	if deps.ResolveViewer == nil {
		deps.ResolveViewer = func(*http.Request) module.Viewer { return module.Viewer{} }
	}
	root := http.NewServeMux()
	seen := make(map[string]string)
	for _, feature := range input.Modules {
		if feature == nil {
			return nil, fmt.Errorf("module is nil")
		}
		mount, err := resolveMount(feature, deps)
		if err != nil {
			return nil, err
		}
		handler := mount.Handler
		if mount.Role != "" {
			handler = wrapRoleModule(deps, mount.Role)(handler)
		}
		paths := append([]string{strings.TrimSpace(mount.Prefix)}, mount.Exact...)
		for _, path := range paths {
			if err := mountPath(root, feature, path, handler, seen); err != nil {
				return nil, err
			}
		}
	}
	return root, nil
}

func mountPath(root *http.ServeMux, feature module.Module, path string, handler http.Handler, seen map[string]string) error {
	path = strings.TrimSpace(path)
	if path == "" {
		return fmt.Errorf("module %q has an empty exact path", feature.ID())
	}
	if previous, ok := seen[path]; ok {
		return fmt.Errorf("module %q duplicates path %q owned by module %q", feature.ID(), path, previous)
	}
	seen[path] = feature.ID()
	root.Handle(path, handler)
	return nil
}

func resolveMount(feature module.Module, deps module.Dependencies) (module.Mount, error) {
	mount, err := feature.Mount(deps)
	if err != nil {
		return module.Mount{}, fmt.Errorf("mount module %q: %w", feature.ID(), err)
	}
	if err := validatePrefix(mount.Prefix); err != nil {
		return module.Mount{}, fmt.Errorf("mount module %q has invalid prefix %q: %w", feature.ID(), mount.Prefix, err)
	}
	if mount.Handler == nil {
		return module.Mount{}, fmt.Errorf("mount module %q: handler is required", feature.ID())
	}
	return mount, nil
}

func validatePrefix(prefix string) error {
	if prefix == "" {
		return fmt.Errorf("prefix is required")
	}
	if strings.TrimSpace(prefix) != prefix {
		return fmt.Errorf("prefix must not include surrounding whitespace")
	}
	if !strings.HasPrefix(prefix, "/") {
		return fmt.Errorf("prefix must begin with /")
	}
	if !strings.HasSuffix(prefix, "/") {
		return fmt.Errorf("prefix must end with /")
	}
	return nil
}

// requireRole sends anonymous visitors to login and signed-in users of
// another role to their own portal home.
func requireRole(resolve module.ResolveViewer, want mockdata.UserType) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if next == nil {
			return http.NotFoundHandler()
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			viewer := resolve(r)
			if !viewer.Authenticated {
				httpx.WriteRedirect(w, r, routepath.LoginWithNext(r.URL.Path))
				return
			}
			if viewer.User.UserType != want {
				httpx.WriteRedirect(w, r, viewer.Home())
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func wrapRoleModule(deps module.Dependencies, want mockdata.UserType) func(http.Handler) http.Handler {
	roleWrap := requireRole(deps.ResolveViewer, want)
	originWrap := requireSameOrigin(deps)
	return func(next http.Handler) http.Handler {
		return roleWrap(originWrap(next))
	}
}

func requireSameOrigin(deps module.Dependencies) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if next == nil {
			next = http.NotFoundHandler()
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isMutationMethod(r) && !deps.SchemePolicy.HasSameOriginProof(r) {
				http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func isMutationMethod(r *http.Request) bool {
	if r == nil {
		return false
	}
	switch r.Method {
	case http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
		return true
	default:
		return false
	}
}
