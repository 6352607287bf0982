package donor

import (
	"net/http"

	"github.com/lceo-rwanda/portal/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.Donor, h.handleOverview)
	mux.HandleFunc(http.MethodGet+" "+routepath.DonorDonations, h.handleDonations)
	mux.HandleFunc(http.MethodGet+" "+routepath.DonorReports, h.handleReports)
	mux.HandleFunc(routepath.DonorPrefix, h.RedirectHome)
}
