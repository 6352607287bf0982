package public

import (
	"net/http"

	"github.com/lceo-rwanda/portal/internal/services/web/platform/httpx"
	"github.com/lceo-rwanda/portal/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" /{$}", h.handleHome)
	mux.HandleFunc(http.MethodGet+" "+routepath.About, h.handleAbout)
	mux.HandleFunc(http.MethodGet+" "+routepath.HowWeWork, h.handleHowWeWork)
	mux.HandleFunc(http.MethodGet+" "+routepath.StrategicDirection, h.handleStrategicDirection)
	mux.HandleFunc(http.MethodGet+" "+routepath.Programs, h.handlePrograms)
	mux.HandleFunc(http.MethodGet+" "+routepath.ProgramPattern, h.handleProgram)
	mux.HandleFunc(http.MethodGet+" "+routepath.Impact, h.handleImpact)
	mux.HandleFunc(http.MethodGet+" "+routepath.Resources, h.handleResources)
	mux.HandleFunc(http.MethodGet+" "+routepath.GetInvolved, h.handleGetInvolved)
	mux.HandleFunc(http.MethodGet+" "+routepath.Contact, h.handleContact)
	mux.HandleFunc(http.MethodPost+" "+routepath.Contact, h.handleContactPost)
	mux.HandleFunc(http.MethodGet+" "+routepath.Newsletter, httpx.MethodNotAllowed(http.MethodPost))
	mux.HandleFunc(http.MethodPost+" "+routepath.Newsletter, h.handleNewsletterPost)
	mux.HandleFunc(routepath.Root, h.RedirectHome)
}
