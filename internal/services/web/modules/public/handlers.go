package public

import (
	"net/http"

	"github.com/lceo-rwanda/portal/internal/platform/timeouts"
	webi18n "github.com/lceo-rwanda/portal/internal/services/web/i18n"
	"github.com/lceo-rwanda/portal/internal/services/web/platform/flash"
	"github.com/lceo-rwanda/portal/internal/services/web/platform/formvalue"
	"github.com/lceo-rwanda/portal/internal/services/web/platform/modulehandler"
	"github.com/lceo-rwanda/portal/internal/services/web/platform/pagerender"
	"github.com/lceo-rwanda/portal/internal/services/web/routepath"
	"github.com/lceo-rwanda/portal/internal/services/web/templates"
)

const newsletterSourceContact = "contact"

type handlers struct {
	modulehandler.Base
	service service
}

func newHandlers(s service, base modulehandler.Base) handlers {
	return handlers{Base: base, service: s}
}

func (h handlers) handleHome(w http.ResponseWriter, r *http.Request) {
	lang := h.Language(r)
	h.WritePage(w, r, pagerender.Page{
		Body: homeView(h.service.activePrograms(lang), h.service.featuredStories(), lang),
	})
}

func (h handlers) handleAbout(w http.ResponseWriter, r *http.Request) {
	h.WritePage(w, r, pagerender.Page{Title: "About", Body: aboutView()})
}

func (h handlers) handleHowWeWork(w http.ResponseWriter, r *http.Request) {
	h.WritePage(w, r, pagerender.Page{Title: "How We Work", Body: howWeWorkView()})
}

func (h handlers) handleStrategicDirection(w http.ResponseWriter, r *http.Request) {
	h.WritePage(w, r, pagerender.Page{Title: "Strategic Direction", Body: strategicDirectionView()})
}

func (h handlers) handlePrograms(w http.ResponseWriter, r *http.Request) {
	h.WritePage(w, r, pagerender.Page{Title: "Programs", Body: programsView(h.service.programs(h.Language(r)))})
}

func (h handlers) handleProgram(w http.ResponseWriter, r *http.Request) {
	lang := h.Language(r)
	detail, err := h.service.program(r.PathValue("programID"), lang)
	if err != nil {
		h.WriteError(w, r, err)
		return
	}
	h.WritePage(w, r, pagerender.Page{Title: detail.Name, Body: programView(detail, h.Localizer(r), lang)})
}

func (h handlers) handleImpact(w http.ResponseWriter, r *http.Request) {
	h.WritePage(w, r, pagerender.Page{Title: "Impact", Body: impactView(h.service.impact(), h.Localizer(r), h.Language(r))})
}

func (h handlers) handleResources(w http.ResponseWriter, r *http.Request) {
	h.WritePage(w, r, pagerender.Page{Title: "Resources", Body: resourcesView()})
}

func (h handlers) handleGetInvolved(w http.ResponseWriter, r *http.Request) {
	h.WritePage(w, r, pagerender.Page{Title: "Get Involved", Body: getInvolvedView()})
}

func (h handlers) handleContact(w http.ResponseWriter, r *http.Request) {
	h.renderContact(w, r, http.StatusOK, contactForm{}, "")
}

func (h handlers) handleContactPost(w http.ResponseWriter, r *http.Request) {
	if err := h.ParseForm(r); err != nil {
		h.WriteError(w, r, err)
		return
	}
	form := contactForm{
		Name:    formvalue.Get(r, "name"),
		Email:   formvalue.Get(r, "email"),
		Phone:   formvalue.Get(r, "phone"),
		Subject: formvalue.Get(r, "subject"),
		Message: formvalue.Get(r, "message"),
	}
	if formvalue.AnyBlank(form.Name, form.Email, form.Message) {
		h.renderContact(w, r, http.StatusBadRequest, form, "error.required_fields")
		return
	}
	if !formvalue.Email(form.Email) {
		h.renderContact(w, r, http.StatusBadRequest, form, "error.email_invalid")
		return
	}
	if err := h.Simulate(r.Context(), timeouts.SimulatedFormSubmit); err != nil {
		h.WriteError(w, r, err)
		return
	}
	h.Metrics().FormSubmitted("contact")
	h.RedirectWithFlash(w, r, routepath.Contact, flash.Success("toast.contact.sent"))
}

func (h handlers) renderContact(w http.ResponseWriter, r *http.Request, status int, form contactForm, errKey string) {
	page := pagerender.Page{Title: "Contact", StatusCode: status}
	var message string
	if errKey != "" {
		message = webi18n.T(h.Localizer(r), errKey)
		page.Toast = &templates.Toast{Kind: string(flash.KindError), Message: message}
	}
	page.Body = contactView(form, message)
	h.WritePage(w, r, page)
}

func (h handlers) handleNewsletterPost(w http.ResponseWriter, r *http.Request) {
	if err := h.ParseForm(r); err != nil {
		h.WriteError(w, r, err)
		return
	}
	next := routepath.SafeNext(formvalue.Get(r, "next"))
	if !formvalue.Email(formvalue.Get(r, "email")) {
		h.RedirectWithFlash(w, r, next, flash.Failure("error.email_invalid"))
		return
	}
	if err := h.Simulate(r.Context(), timeouts.SimulatedQuickForm); err != nil {
		h.WriteError(w, r, err)
		return
	}
	h.Metrics().FormSubmitted("newsletter")
	key := "toast.footer.subscribed"
	if formvalue.Get(r, "source") == newsletterSourceContact {
		key = "toast.newsletter.subscribed"
	}
	h.RedirectWithFlash(w, r, next, flash.Success(key))
}
