// Package beneficiary serves the beneficiary portal under /dashboard.
package beneficiary

import (
	"errors"
	"net/http"

	"github.com/lceo-rwanda/portal/internal/portal/mockdata"
	"github.com/lceo-rwanda/portal/internal/services/web/module"
	"github.com/lceo-rwanda/portal/internal/services/web/platform/modulehandler"
	"github.com/lceo-rwanda/portal/internal/services/web/routepath"
)

// Module provides the beneficiary portal routes.
type Module struct{}

// New returns the beneficiary module.
func New() Module { return Module{} }

// ID returns a stable module identifier.
func (Module) ID() string { return "beneficiary" }

// Mount wires the /dashboard subtree for beneficiaries.
func (Module) Mount(deps module.Dependencies) (module.Mount, error) {
	if deps.Store == nil {
		return module.Mount{}, errors.New("beneficiary: store is required")
	}
	base := modulehandler.NewBase(deps)
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(newService(deps.Store, base.Now), base))
	return module.Mount{
		Prefix:  routepath.DashboardPrefix,
		Exact:   []string{routepath.Dashboard},
		Handler: mux,
		Role:    mockdata.UserTypeBeneficiary,
	}, nil
}
