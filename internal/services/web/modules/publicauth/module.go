// Package publicauth serves sign-in, sign-out and the account recovery forms.
package publicauth

import (
	"errors"
	"net/http"

	"github.com/lceo-rwanda/portal/internal/services/web/module"
	"github.com/lceo-rwanda/portal/internal/services/web/platform/modulehandler"
	"github.com/lceo-rwanda/portal/internal/services/web/routepath"
)

// Module provides the authentication routes.
type Module struct{}

// New returns the auth module.
func New() Module { return Module{} }

// ID returns a stable module identifier.
func (Module) ID() string { return "publicauth" }

// Mount wires /login, /logout and the /auth/ subtree.
func (Module) Mount(deps module.Dependencies) (module.Mount, error) {
	if deps.Sessions == nil {
		return module.Mount{}, errors.New("publicauth: sessions are required")
	}
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(newService(deps.Sessions), modulehandler.NewBase(deps)))
	return module.Mount{
		Prefix:  routepath.AuthPrefix,
		Exact:   []string{routepath.Login, routepath.Logout},
		Handler: mux,
	}, nil
}
