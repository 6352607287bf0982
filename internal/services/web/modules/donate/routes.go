package donate

import (
	"net/http"

	"github.com/lceo-rwanda/portal/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.Donate, h.handleDonate)
	mux.HandleFunc(http.MethodPost+" "+routepath.Donate, h.handleDonatePost)
	mux.HandleFunc(routepath.DonatePrefix, h.RedirectHome)
}
