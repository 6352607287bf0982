// Package donor serves the donor portal under /donor.
package donor

import (
	"net/http"

	"github.com/lceo-rwanda/portal/internal/portal/mockdata"
	"github.com/lceo-rwanda/portal/internal/services/web/module"
	"github.com/lceo-rwanda/portal/internal/services/web/platform/modulehandler"
	"github.com/lceo-rwanda/portal/internal/services/web/routepath"
)

// Module provides the donor portal routes.
type Module struct{}

// New returns the donor module.
func New() Module { return Module{} }

// ID returns a stable module identifier.
func (Module) ID() string { return "donor" }

// Mount wires the /donor subtree for donors.
func (Module) Mount(deps module.Dependencies) (module.Mount, error) {
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(modulehandler.NewBase(deps)))
	return module.Mount{
		Prefix:  routepath.DonorPrefix,
		Exact:   []string{routepath.Donor},
		Handler: mux,
		Role:    mockdata.UserTypeDonor,
	}, nil
}
