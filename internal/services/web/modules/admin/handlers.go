package admin

import (
	"net/http"
	"net/url"

	"github.com/a-h/templ"

	"github.com/lceo-rwanda/portal/internal/platform/timeouts"
	"github.com/lceo-rwanda/portal/internal/portal/mockdata"
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

func (h handlers) errorToast(r *http.Request, key string) *templates.Toast {
	return &templates.Toast{Kind: string(flash.KindError), Message: webi18n.T(h.Localizer(r), key)}
}

// statusFilter reads the optional ?status= list filter.
func statusFilter(r *http.Request) mockdata.BeneficiaryStatus {
	status, _ := mockdata.ParseBeneficiaryStatus(r.URL.Query().Get("status"))
	return status
}

func beneficiariesURL(status mockdata.BeneficiaryStatus) string {
	if status == "" {
		return routepath.AdminBeneficiaries
	}
	return routepath.AdminBeneficiaries + "?" + url.Values{"status": {string(status)}}.Encode()
}

func (h handlers) handleDashboard(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.dashboard(r.Context(), h.Namespace(r))
	if err != nil {
		h.WriteError(w, r, err)
		return
	}
	h.WritePage(w, r, portalPage("Admin Dashboard", dashboardView(stats, h.Localizer(r), h.Language(r)), nil))
}

func (h handlers) handleBeneficiaries(w http.ResponseWriter, r *http.Request) {
	all, err := h.service.beneficiaries(r.Context(), h.Namespace(r))
	if err != nil {
		h.WriteError(w, r, err)
		return
	}
	status := statusFilter(r)
	body := beneficiariesView(filterByStatus(all, status), status, h.Localizer(r), h.Language(r))
	h.WritePage(w, r, portalPage("Beneficiaries", body, nil))
}

func (h handlers) handleExport(w http.ResponseWriter, r *http.Request) {
	all, err := h.service.beneficiaries(r.Context(), h.Namespace(r))
	if err != nil {
		h.WriteError(w, r, err)
		return
	}
	h.Flash(w, r, flash.Success("toast.admin.exporting"))
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+exportFilename+`"`)
	if err := writeBeneficiariesCSV(w, filterByStatus(all, statusFilter(r))); err != nil {
		h.Logger().ErrorContext(r.Context(), "export beneficiaries", "error", err)
		return
	}
	h.Metrics().FormSubmitted("beneficiary_export")
}

func (h handlers) handleStatusPost(w http.ResponseWriter, r *http.Request) {
	if err := h.ParseForm(r); err != nil {
		h.WriteError(w, r, err)
		return
	}
	filter, _ := mockdata.ParseBeneficiaryStatus(formvalue.Get(r, "filter"))
	status, ok := mockdata.ParseBeneficiaryStatus(formvalue.Get(r, "status"))
	if !ok {
		h.RedirectWithFlash(w, r, beneficiariesURL(filter), flash.Failure("error.status_invalid"))
		return
	}
	if err := h.Simulate(r.Context(), timeouts.SimulatedQuickForm); err != nil {
		h.WriteError(w, r, err)
		return
	}
	updated, err := h.service.updateStatus(r.Context(), h.Namespace(r), r.PathValue("beneficiaryID"), status)
	if err != nil {
		h.WriteError(w, r, err)
		return
	}
	h.Metrics().FormSubmitted("beneficiary_status")
	notice := flash.Success("toast.admin.status_updated", updated.FullName, statusLabels[status])
	h.RedirectWithFlash(w, r, beneficiariesURL(filter), notice)
}

func (h handlers) handleAddBeneficiary(w http.ResponseWriter, r *http.Request) {
	h.renderAddBeneficiary(w, r, http.StatusOK, beneficiaryForm{}, "")
}

func (h handlers) handleAddBeneficiaryPost(w http.ResponseWriter, r *http.Request) {
	if err := h.ParseForm(r); err != nil {
		h.WriteError(w, r, err)
		return
	}
	form := beneficiaryForm{
		FullName:        formvalue.Get(r, "fullName"),
		Email:           formvalue.Get(r, "email"),
		Phone:           formvalue.Get(r, "phone"),
		ProgramID:       formvalue.Get(r, "programId"),
		District:        formvalue.Get(r, "district"),
		BusinessType:    formvalue.Get(r, "businessType"),
		StartCapital:    formvalue.Get(r, "startCapital"),
		Password:        r.FormValue("password"),
		ConfirmPassword: r.FormValue("confirmPassword"),
	}
	record, key := parseBeneficiary(form, h.Now())
	if key != "" {
		h.renderAddBeneficiary(w, r, http.StatusBadRequest, form, key)
		return
	}
	if err := h.Simulate(r.Context(), timeouts.SimulatedFormSubmit); err != nil {
		h.WriteError(w, r, err)
		return
	}
	if _, err := h.service.addBeneficiary(r.Context(), h.Namespace(r), record); err != nil {
		h.WriteError(w, r, err)
		return
	}
	h.Metrics().FormSubmitted("add_beneficiary")
	h.RedirectWithFlash(w, r, routepath.AdminBeneficiaries, flash.Success("toast.admin.beneficiary_added"))
}

func (h handlers) renderAddBeneficiary(w http.ResponseWriter, r *http.Request, status int, form beneficiaryForm, key string) {
	var (
		toast   *templates.Toast
		message string
	)
	if key != "" {
		toast = h.errorToast(r, key)
		message = toast.Message
	}
	page := portalPage("Add Beneficiary", addBeneficiaryView(form, message, h.Language(r)), toast)
	page.StatusCode = status
	h.WritePage(w, r, page)
}

func (h handlers) handlePrograms(w http.ResponseWriter, r *http.Request) {
	h.WritePage(w, r, portalPage("Programs", programsView(mockdata.Programs(), h.Localizer(r), h.Language(r)), nil))
}

func (h handlers) handleDonors(w http.ResponseWriter, r *http.Request) {
	donors, err := h.service.donors(r.Context(), h.Namespace(r))
	if err != nil {
		h.WriteError(w, r, err)
		return
	}
	h.WritePage(w, r, portalPage("Donors", donorsView(donors, h.Localizer(r)), nil))
}

func (h handlers) handleAddDonor(w http.ResponseWriter, r *http.Request) {
	h.renderAddDonor(w, r, http.StatusOK, donorForm{Currency: string(mockdata.CurrencyUSD)}, "")
}

func (h handlers) handleAddDonorPost(w http.ResponseWriter, r *http.Request) {
	if err := h.ParseForm(r); err != nil {
		h.WriteError(w, r, err)
		return
	}
	form := donorForm{
		FullName:  formvalue.Get(r, "fullName"),
		Email:     formvalue.Get(r, "email"),
		Country:   formvalue.Get(r, "country"),
		Currency:  formvalue.Get(r, "currency"),
		Recurring: formvalue.Checked(r, "recurring"),
		Anonymous: formvalue.Checked(r, "anonymous"),
	}
	record, key := parseDonor(form, h.Now())
	if key != "" {
		h.renderAddDonor(w, r, http.StatusBadRequest, form, key)
		return
	}
	if err := h.Simulate(r.Context(), timeouts.SimulatedFormSubmit); err != nil {
		h.WriteError(w, r, err)
		return
	}
	if _, err := h.service.addDonor(r.Context(), h.Namespace(r), record); err != nil {
		h.WriteError(w, r, err)
		return
	}
	h.Metrics().FormSubmitted("add_donor")
	h.RedirectWithFlash(w, r, routepath.AdminDonors, flash.Success("toast.admin.donor_added"))
}

func (h handlers) renderAddDonor(w http.ResponseWriter, r *http.Request, status int, form donorForm, key string) {
	var (
		toast   *templates.Toast
		message string
	)
	if key != "" {
		toast = h.errorToast(r, key)
		message = toast.Message
	}
	page := portalPage("Add Donor", addDonorView(form, message), toast)
	page.StatusCode = status
	h.WritePage(w, r, page)
}

func (h handlers) handleFinancial(w http.ResponseWriter, r *http.Request) {
	h.WritePage(w, r, portalPage("Financial Overview", financialView(financialSummary(), h.Localizer(r), h.Language(r)), nil))
}

func (h handlers) handleReports(w http.ResponseWriter, r *http.Request) {
	h.WritePage(w, r, portalPage("Reports", reportsView(), nil))
}

func (h handlers) handleSettings(w http.ResponseWriter, r *http.Request) {
	current, err := h.service.settings(r.Context(), h.Namespace(r))
	if err != nil {
		h.WriteError(w, r, err)
		return
	}
	h.renderSettings(w, r, http.StatusOK, current, "")
}

func (h handlers) handleSettingsPost(w http.ResponseWriter, r *http.Request) {
	if err := h.ParseForm(r); err != nil {
		h.WriteError(w, r, err)
		return
	}
	next := settings{
		OrganizationName:   formvalue.Get(r, "organizationName"),
		ContactEmail:       formvalue.Get(r, "contactEmail"),
		DefaultLanguage:    mockdata.Language(formvalue.Get(r, "defaultLanguage")),
		EmailNotifications: formvalue.Checked(r, "emailNotifications"),
		TrackingReminders:  formvalue.Checked(r, "trackingReminders"),
	}
	if key := validateSettings(next); key != "" {
		h.renderSettings(w, r, http.StatusBadRequest, next, key)
		return
	}
	if err := h.Simulate(r.Context(), timeouts.SimulatedQuickForm); err != nil {
		h.WriteError(w, r, err)
		return
	}
	if err := h.service.saveSettings(r.Context(), h.Namespace(r), next); err != nil {
		h.WriteError(w, r, err)
		return
	}
	h.Metrics().FormSubmitted("settings")
	h.RedirectWithFlash(w, r, routepath.AdminSettings, flash.Success("toast.settings.saved"))
}

func (h handlers) renderSettings(w http.ResponseWriter, r *http.Request, status int, current settings, key string) {
	var toast *templates.Toast
	if key != "" {
		toast = h.errorToast(r, key)
	}
	page := portalPage("Settings", settingsView(current), toast)
	page.StatusCode = status
	h.WritePage(w, r, page)
}
