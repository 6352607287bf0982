// Package role maps each user type to its portal configuration.
package role

import (
	"strings"

	"github.com/lceo-rwanda/portal/internal/portal/mockdata"
)

// NavItem is one sidebar entry in a role portal.
type NavItem struct {
	Label string
	Path  string
}

// Config describes one role portal.
type Config struct {
	UserType mockdata.UserType
	// Prefix is the path subtree owned by the role, without trailing slash.
	Prefix      string
	Home        string
	PortalLabel string
	Nav         []NavItem
}

var configs = map[mockdata.UserType]Config{
	mockdata.UserTypeAdmin: {
		UserType:    mockdata.UserTypeAdmin,
		Prefix:      "/admin",
		Home:        "/admin",
		PortalLabel: "Admin Portal",
		Nav: []NavItem{
			{Label: "Dashboard", Path: "/admin"},
			{Label: "Beneficiaries", Path: "/admin/beneficiaries"},
			{Label: "Programs", Path: "/admin/programs"},
			{Label: "Donors", Path: "/admin/donors"},
			{Label: "Financial", Path: "/admin/financial"},
			{Label: "Reports", Path: "/admin/reports"},
			{Label: "Settings", Path: "/admin/settings"},
		},
	},
	mockdata.UserTypeBeneficiary: {
		UserType:    mockdata.UserTypeBeneficiary,
		Prefix:      "/dashboard",
		Home:        "/dashboard",
		PortalLabel: "Beneficiary Portal",
		Nav: []NavItem{
			{Label: "My Journey", Path: "/dashboard"},
			{Label: "My Goals", Path: "/dashboard/goals"},
			{Label: "Weekly Tracking", Path: "/dashboard/tracking"},
			{Label: "Resources", Path: "/dashboard/resources"},
		},
	},
	mockdata.UserTypeDonor: {
		UserType:    mockdata.UserTypeDonor,
		Prefix:      "/donor",
		Home:        "/donor",
		PortalLabel: "Donor Portal",
		Nav: []NavItem{
			{Label: "Impact Overview", Path: "/donor"},
			{Label: "My Donations", Path: "/donor/donations"},
			{Label: "Impact Reports", Path: "/donor/reports"},
		},
	},
}

// For returns the portal configuration for userType. Unknown types get the
// admin configuration, matching the default navigation.
func For(userType mockdata.UserType) Config {
	if cfg, ok := configs[userType]; ok {
		return clone(cfg)
	}
	return clone(configs[mockdata.UserTypeAdmin])
}

// Lookup returns the configuration for a known user type.
func Lookup(userType mockdata.UserType) (Config, bool) {
	cfg, ok := configs[userType]
	if !ok {
		return Config{}, false
	}
	return clone(cfg), true
}

// All returns every role configuration in a stable order.
func All() []Config {
	return []Config{
		clone(configs[mockdata.UserTypeAdmin]),
		clone(configs[mockdata.UserTypeBeneficiary]),
		clone(configs[mockdata.UserTypeDonor]),
	}
}

// HomePath is where a signed-in user of userType lands by default.
func HomePath(userType mockdata.UserType) string {
	if cfg, ok := configs[userType]; ok {
		return cfg.Home
	}
	return "/"
}

// Owns reports whether path falls inside the role subtree.
func (c Config) Owns(path string) bool {
	if c.Prefix == "" {
		return false
	}
	return path == c.Prefix || strings.HasPrefix(path, c.Prefix+"/")
}

// OwnerOf returns the role whose subtree contains path.
func OwnerOf(path string) (Config, bool) {
	for _, cfg := range All() {
		if cfg.Owns(path) {
			return cfg, true
		}
	}
	return Config{}, false
}

// Active reports whether item is the current page for path. Portal roots
// match exactly; deeper entries also match their sub-pages.
func (c Config) Active(item NavItem, path string) bool {
	if item.Path == c.Home {
		return path == c.Home || path == c.Home+"/"
	}
	return path == item.Path || strings.HasPrefix(path, item.Path+"/")
}

// Initials derives up to two uppercase initials from a full name.
func Initials(fullName string) string {
	var out []rune
	for _, part := range strings.Fields(fullName) {
		for _, r := range part {
			out = append(out, []rune(strings.ToUpper(string(r)))...)
			break
		}
		if len(out) == 2 {
			break
		}
	}
	return string(out)
}

func clone(cfg Config) Config {
	cfg.Nav = append([]NavItem(nil), cfg.Nav...)
	return cfg
}
