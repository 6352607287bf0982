// Package admin serves the staff portal under /admin.
package admin

import (
	"errors"
	"net/http"

	"github.com/lceo-rwanda/portal/internal/portal/mockdata"
	"github.com/lceo-rwanda/portal/internal/services/web/module"
	"github.com/lceo-rwanda/portal/internal/services/web/platform/modulehandler"
	"github.com/lceo-rwanda/portal/internal/services/web/routepath"
)

// Module provides the admin portal routes.
type Module struct{}

// New returns the admin module.
func New() Module { return Module{} }

// ID returns a stable module identifier.
func (Module) ID() string { return "admin" }

// Mount wires the /admin subtree for staff.
func (Module) Mount(deps module.Dependencies) (module.Mount, error) {
	if deps.Store == nil {
		return module.Mount{}, errors.New("admin: store is required")
	}
	base := modulehandler.NewBase(deps)
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(newService(deps.Store, base.Now, base.Logger()), base))
	return module.Mount{
		Prefix:  routepath.AdminPrefix,
		Exact:   []string{routepath.Admin},
		Handler: mux,
		Role:    mockdata.UserTypeAdmin,
	}, nil
}
