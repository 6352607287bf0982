package beneficiary

import (
	"net/http"

	"github.com/a-h/templ"

	"github.com/lceo-rwanda/portal/internal/platform/timeouts"
	webi18n "github.com/lceo-rwanda/portal/internal/services/web/i18n"
	"github.com/lceo-rwanda/portal/internal/services/web/platform/flash"
	"github.com/lceo-rwanda/portal/internal/services/web/platform/formvalue"
	"github.com/lceo-rwanda/portal/internal/services/web/platform/modulehandler"
	"github.com/lceo-rwanda/portal/internal/services/web/platform/pagerender"
	"github.com/lceo-rwanda/portal/internal/services/web/routepath"
	"github.com/lceo-rwanda/portal/internal/services/web/templates"
)

type handlers struct {
	modulehandler.Base
	service service
}

func newHandlers(s service, base modulehandler.Base) handlers {
	return handlers{Base: base, service: s}
}

func portalPage(title string, body templ.Component, toast *templates.Toast) pagerender.Page {
	return pagerender.Page{Title: title, Layout: pagerender.LayoutPortal, Body: body, Toast: toast}
}

func (h handlers) handleJourney(w http.ResponseWriter, r *http.Request) {
	b := beneficiaryFor(h.Viewer(r))
	summary, err := h.service.journey(r.Context(), h.Namespace(r), b, h.Language(r))
	if err != nil {
		h.WriteError(w, r, err)
		return
	}
	h.WritePage(w, r, portalPage("My Journey", journeyView(summary, h.Localizer(r)), nil))
}

func (h handlers) handleGoals(w http.ResponseWriter, r *http.Request) {
	b := beneficiaryFor(h.Viewer(r))
	h.WritePage(w, r, portalPage("My Goals", goalsView(goalsFor(b), h.Localizer(r), h.Now()), nil))
}

func (h handlers) handleTracking(w http.ResponseWriter, r *http.Request) {
	h.renderTracking(w, r, http.StatusOK, trackingForm{}, nil)
}

func (h handlers) handleTrackingPost(w http.ResponseWriter, r *http.Request) {
	if err := h.ParseForm(r); err != nil {
		h.WriteError(w, r, err)
		return
	}
	form := trackingForm{
		WeekEnding: formvalue.Get(r, "weekEnding"),
		Attendance: formvalue.Get(r, "attendance"),
		Income:     formvalue.Get(r, "income"),
		Expenses:   formvalue.Get(r, "expenses"),
		Savings:    formvalue.Get(r, "savings"),
		TaskGiven:  formvalue.Get(r, "taskGiven"),
		TaskStatus: formvalue.Get(r, "taskStatus"),
		Challenges: formvalue.Get(r, "challenges"),
		Notes:      formvalue.Get(r, "notes"),
	}
	b := beneficiaryFor(h.Viewer(r))
	entry, key := parseTracking(form, b.ID, h.Now())
	if key != "" {
		toast := &templates.Toast{Kind: string(flash.KindError), Message: webi18n.T(h.Localizer(r), key)}
		h.renderTracking(w, r, http.StatusBadRequest, form, toast)
		return
	}
	if err := h.Simulate(r.Context(), timeouts.SimulatedFormSubmit); err != nil {
		h.WriteError(w, r, err)
		return
	}
	if _, err := h.service.submitTracking(r.Context(), h.Namespace(r), entry); err != nil {
		h.WriteError(w, r, err)
		return
	}
	h.Metrics().FormSubmitted("weekly_tracking")
	h.RedirectWithFlash(w, r, routepath.DashboardTracking, flash.Success("toast.tracking.submitted"))
}

func (h handlers) renderTracking(w http.ResponseWriter, r *http.Request, status int, form trackingForm, toast *templates.Toast) {
	b := beneficiaryFor(h.Viewer(r))
	entries, err := h.service.trackings(r.Context(), h.Namespace(r), b)
	if err != nil {
		h.WriteError(w, r, err)
		return
	}
	page := portalPage("Weekly Tracking", trackingView(b, form, entries, statsFor(entries), h.Localizer(r)), toast)
	page.StatusCode = status
	h.WritePage(w, r, page)
}

func (h handlers) handleResources(w http.ResponseWriter, r *http.Request) {
	h.WritePage(w, r, portalPage("Resources & Support", resourcesView(), nil))
}
