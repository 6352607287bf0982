// Package donate serves the public donation wizard.
package donate

import (
	"errors"
	"net/http"

	"github.com/lceo-rwanda/portal/internal/services/web/module"
	"github.com/lceo-rwanda/portal/internal/services/web/platform/modulehandler"
	"github.com/lceo-rwanda/portal/internal/services/web/routepath"
)

// Module provides the donation routes.
type Module struct{}

// New returns the donate module.
func New() Module { return Module{} }

// ID returns a stable module identifier.
func (Module) ID() string { return "donate" }

// Mount wires /donate and its subtree.
func (Module) Mount(deps module.Dependencies) (module.Mount, error) {
	if deps.Store == nil {
		return module.Mount{}, errors.New("donate: store is required")
	}
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(newService(deps.Store), modulehandler.NewBase(deps)))
	return module.Mount{
		Prefix:  routepath.DonatePrefix,
		Exact:   []string{routepath.Donate},
		Handler: mux,
	}, nil
}
