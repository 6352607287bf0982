package beneficiary

import (
	"net/http"

	"github.com/lceo-rwanda/portal/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.Dashboard, h.handleJourney)
	mux.HandleFunc(http.MethodGet+" "+routepath.DashboardGoals, h.handleGoals)
	mux.HandleFunc(http.MethodGet+" "+routepath.DashboardTracking, h.handleTracking)
	mux.HandleFunc(http.MethodPost+" "+routepath.DashboardTracking, h.handleTrackingPost)
	mux.HandleFunc(http.MethodGet+" "+routepath.DashboardResources, h.handleResources)
	mux.HandleFunc(routepath.DashboardPrefix, h.RedirectHome)
}
