// Package weberror renders shared error responses for portal modules.
package weberror

import (
	"net/http"
	"strings"

	webi18n "github.com/lceo-rwanda/portal/internal/services/web/i18n"
	"github.com/lceo-rwanda/portal/internal/services/web/module"
	apperrors "github.com/lceo-rwanda/portal/internal/services/web/platform/errors"
	"github.com/lceo-rwanda/portal/internal/services/web/platform/pagerender"
	"github.com/lceo-rwanda/portal/internal/services/web/templates"
)

// ShouldRenderErrorPage reports whether status should use the error page UX.
func ShouldRenderErrorPage(statusCode int) bool {
	return statusCode == http.StatusNotFound || statusCode >= http.StatusInternalServerError
}

// PublicMessage resolves a visitor-safe localized error message.
func PublicMessage(loc webi18n.Localizer, err error) string {
	if err == nil {
		return ""
	}
	if loc != nil {
		if key := apperrors.LocalizationKey(err); key != "" {
			if localized := strings.TrimSpace(loc.Sprintf(key)); localized != "" {
				return localized
			}
		}
	}
	statusCode := apperrors.HTTPStatus(err)
	if statusCode < http.StatusBadRequest {
		statusCode = http.StatusInternalServerError
	}
	return http.StatusText(statusCode)
}

// WritePage renders the error page inside the site chrome.
func WritePage(w http.ResponseWriter, r *http.Request, statusCode int, viewer module.Viewer) {
	if w == nil {
		return
	}
	if !ShouldRenderErrorPage(statusCode) {
		statusCode = http.StatusInternalServerError
	}
	loc, _ := webi18n.ForRequest(r)
	err := pagerender.Write(w, r, viewer, pagerender.Page{
		Title:      templates.ErrorPageTitle(statusCode, loc),
		StatusCode: statusCode,
		Body:       templates.ErrorState(statusCode, loc),
	})
	if err != nil {
		http.Error(w, http.StatusText(statusCode), statusCode)
	}
}

// Write maps err to a response. Not-found and server failures get the error
// page; client failures get a short localized message.
func Write(w http.ResponseWriter, r *http.Request, err error, viewer module.Viewer) {
	if w == nil {
		return
	}
	statusCode := apperrors.HTTPStatus(err)
	if ShouldRenderErrorPage(statusCode) {
		WritePage(w, r, statusCode, viewer)
		return
	}
	loc, _ := webi18n.ForRequest(r)
	http.Error(w, PublicMessage(loc, err), statusCode)
}
