package templates

import (
	"net/http"

	"github.com/a-h/templ"

	webi18n "github.com/lceo-rwanda/portal/internal/services/web/i18n"
	"github.com/lceo-rwanda/portal/internal/services/web/routepath"
)

const (
	errorTitleNotFoundKey   = "error.page.not_found.title"
	errorTitleServerKey     = "error.page.server.title"
	errorMessageNotFoundKey = "error.page.not_found.message"
	errorMessageServerKey   = "error.page.server.message"
	errorBackHomeKey        = "error.page.back_home"
)

// ErrorPageTitle returns the browser title for an error page.
func ErrorPageTitle(statusCode int, loc webi18n.Localizer) string {
	if normalizeErrorStatus(statusCode) == http.StatusNotFound {
		return webi18n.T(loc, errorTitleNotFoundKey)
	}
	return webi18n.T(loc, errorTitleServerKey)
}

// ErrorState renders the body of an error page.
func ErrorState(statusCode int, loc webi18n.Localizer) templ.Component {
	messageKey := errorMessageServerKey
	if normalizeErrorStatus(statusCode) == http.StatusNotFound {
		messageKey = errorMessageNotFoundKey
	}
	return Section("error-state",
		H1(ErrorPageTitle(statusCode, loc)),
		P(webi18n.T(loc, messageKey)),
		Link(routepath.Root, "button", webi18n.T(loc, errorBackHomeKey)),
	)
}

func normalizeErrorStatus(statusCode int) int {
	if statusCode == http.StatusNotFound {
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}
