// Package routepath stores canonical HTTP paths for portal modules.
package routepath

import (
	"net/url"
	"strings"
)

const (
	Root               = "/"
	About              = "/about"
	HowWeWork          = "/how-we-work"
	StrategicDirection = "/strategic-direction"
	Programs           = "/programs"
	ProgramsPrefix     = "/programs/"
	ProgramPattern     = ProgramsPrefix + "{programID}"
	Impact             = "/impact"
	Resources          = "/resources"
	GetInvolved        = "/get-involved"
	Contact            = "/contact"
	Newsletter         = "/newsletter"
	Donate             = "/donate"
	DonatePrefix       = "/donate/"
	Health             = "/healthz"
	Metrics            = "/metrics"
	StaticPrefix       = "/static/"

	Login              = "/login"
	Logout             = "/logout"
	AuthPrefix         = "/auth/"
	AuthRegister       = "/auth/register"
	AuthForgotPassword = "/auth/forgot-password"
	AuthResetPassword  = "/auth/reset-password"
	AuthVerifyEmail    = "/auth/verify-email"

	Admin                         = "/admin"
	AdminPrefix                   = "/admin/"
	AdminBeneficiaries            = "/admin/beneficiaries"
	AdminBeneficiariesAdd         = "/admin/beneficiaries/add"
	AdminBeneficiariesExport      = "/admin/beneficiaries/export"
	AdminBeneficiaryStatusPattern = "/admin/beneficiaries/{beneficiaryID}/status"
	AdminPrograms                 = "/admin/programs"
	AdminDonors                   = "/admin/donors"
	AdminDonorsAdd                = "/admin/donors/add"
	AdminFinancial                = "/admin/financial"
	AdminReports                  = "/admin/reports"
	AdminSettings                 = "/admin/settings"

	Dashboard          = "/dashboard"
	DashboardPrefix    = "/dashboard/"
	DashboardGoals     = "/dashboard/goals"
	DashboardTracking  = "/dashboard/tracking"
	DashboardResources = "/dashboard/resources"

	Donor          = "/donor"
	DonorPrefix    = "/donor/"
	DonorDonations = "/donor/donations"
	DonorReports   = "/donor/reports"
)

// Program returns the program detail route.
func Program(programID string) string {
	return ProgramsPrefix + escapeSegment(programID)
}

// DonateFor returns the donation route with a preselected program.
func DonateFor(programID string) string {
	programID = strings.TrimSpace(programID)
	if programID == "" {
		return Donate
	}
	return Donate + "?" + url.Values{"program": {programID}}.Encode()
}

// AdminBeneficiaryStatus returns the beneficiary status update route.
func AdminBeneficiaryStatus(beneficiaryID string) string {
	return AdminBeneficiaries + "/" + escapeSegment(beneficiaryID) + "/status"
}

// LoginWithNext returns the login route that returns to next afterwards.
func LoginWithNext(next string) string {
	next = SafeNext(next)
	if next == Root {
		return Login
	}
	return Login + "?" + url.Values{"next": {next}}.Encode()
}

// SafeNext keeps only local absolute paths. Anything else becomes Root.
func SafeNext(next string) string {
	next = strings.TrimSpace(next)
	if next == "" || !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") || strings.Contains(next, `\`) {
		return Root
	}
	parsed, err := url.Parse(next)
	if err != nil || parsed.Scheme != "" || parsed.Host != "" {
		return Root
	}
	return next
}

func escapeSegment(raw string) string {
	return url.PathEscape(strings.TrimSpace(raw))
}
