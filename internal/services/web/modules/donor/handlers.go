package donor

import (
	"net/http"

	"github.com/lceo-rwanda/portal/internal/portal/mockdata"
	"github.com/lceo-rwanda/portal/internal/services/web/platform/modulehandler"
	"github.com/lceo-rwanda/portal/internal/services/web/platform/pagerender"
)

type handlers struct {
	modulehandler.Base
}

func newHandlers(base modulehandler.Base) handlers {
	return handlers{Base: base}
}

func (h handlers) handleOverview(w http.ResponseWriter, r *http.Request) {
	o := overviewFor(donorFor(h.Viewer(r)))
	h.WritePage(w, r, pagerender.Page{
		Title:  "Impact Overview",
		Layout: pagerender.LayoutPortal,
		Body:   overviewView(o, h.Localizer(r), h.Language(r)),
	})
}

func (h handlers) handleDonations(w http.ResponseWriter, r *http.Request) {
	d := donorFor(h.Viewer(r))
	h.WritePage(w, r, pagerender.Page{
		Title:  "My Donations",
		Layout: pagerender.LayoutPortal,
		Body:   donationsView(d, mockdata.DonationsByDonor(d.ID), h.Localizer(r), h.Language(r)),
	})
}

func (h handlers) handleReports(w http.ResponseWriter, r *http.Request) {
	d := donorFor(h.Viewer(r))
	h.WritePage(w, r, pagerender.Page{
		Title:  "Impact Reports",
		Layout: pagerender.LayoutPortal,
		Body:   reportsView(allocate(mockdata.DonationsByDonor(d.ID)), h.Localizer(r), h.Language(r)),
	})
}
