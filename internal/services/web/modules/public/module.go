// Package public serves the marketing pages and the public contact forms.
package public

import (
	"net/http"

	"github.com/lceo-rwanda/portal/internal/services/web/module"
	"github.com/lceo-rwanda/portal/internal/services/web/platform/modulehandler"
	"github.com/lceo-rwanda/portal/internal/services/web/routepath"
)

// Module provides the unauthenticated site pages.
type Module struct{}

// New returns the public module.
func New() Module { return Module{} }

// ID returns a stable module identifier.
func (Module) ID() string { return "public" }

// Mount wires public routes at the site root.
func (Module) Mount(deps module.Dependencies) (module.Mount, error) {
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(newService(), modulehandler.NewBase(deps)))
	return module.Mount{Prefix: routepath.Root, Handler: mux}, nil
}
