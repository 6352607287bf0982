// Package modules lists the portal's feature modules.
package modules

import (
	module "github.com/lceo-rwanda/portal/internal/services/web/module"
	"github.com/lceo-rwanda/portal/internal/services/web/modules/admin"
	"github.com/lceo-rwanda/portal/internal/services/web/modules/beneficiary"
	"github.com/lceo-rwanda/portal/internal/services/web/modules/donate"
	"github.com/lceo-rwanda/portal/internal/services/web/modules/donor"
	"github.com/lceo-rwanda/portal/internal/services/web/modules/public"
	"github.com/lceo-rwanda/portal/internal/services/web/modules/publicauth"
)

// Mount aliases the module mount contract.
type Mount = module.Mount

// Module aliases the module interface contract.
type Module = module.Module

// PublicModules returns modules open to every visitor.
func PublicModules() []Module {
	return []Module{
		public.New(),
		publicauth.New(),
		donate.New(),
	}
}

// PortalModules returns the role-restricted dashboards.
func PortalModules() []Module {
	return []Module{
		beneficiary.New(),
		donor.New(),
		admin.New(),
	}
}

// All returns public modules followed by portal modules.
func All() []Module {
	return append(PublicModules(), PortalModules()...)
}
