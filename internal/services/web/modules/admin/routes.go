package admin

import (
	"net/http"

	"github.com/lceo-rwanda/portal/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.Admin, h.handleDashboard)
	mux.HandleFunc(http.MethodGet+" "+routepath.AdminBeneficiaries, h.handleBeneficiaries)
	mux.HandleFunc(http.MethodGet+" "+routepath.AdminBeneficiariesAdd, h.handleAddBeneficiary)
	mux.HandleFunc(http.MethodPost+" "+routepath.AdminBeneficiariesAdd, h.handleAddBeneficiaryPost)
	mux.HandleFunc(http.MethodGet+" "+routepath.AdminBeneficiariesExport, h.handleExport)
	mux.HandleFunc(http.MethodPost+" "+routepath.AdminBeneficiaryStatusPattern, h.handleStatusPost)
	mux.HandleFunc(http.MethodGet+" "+routepath.AdminPrograms, h.handlePrograms)
	mux.HandleFunc(http.MethodGet+" "+routepath.AdminDonors, h.handleDonors)
	mux.HandleFunc(http.MethodGet+" "+routepath.AdminDonorsAdd, h.handleAddDonor)
	mux.HandleFunc(http.MethodPost+" "+routepath.AdminDonorsAdd, h.handleAddDonorPost)
	mux.HandleFunc(http.MethodGet+" "+routepath.AdminFinancial, h.handleFinancial)
	mux.HandleFunc(http.MethodGet+" "+routepath.AdminReports, h.handleReports)
	mux.HandleFunc(http.MethodGet+" "+routepath.AdminSettings, h.handleSettings)
	mux.HandleFunc(http.MethodPost+" "+routepath.AdminSettings, h.handleSettingsPost)
	mux.HandleFunc(routepath.AdminPrefix, h.RedirectHome)
}
