package weberror

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	webi18n "github.com/lceo-rwanda/portal/internal/services/web/i18n"
	"github.com/lceo-rwanda/portal/internal/services/web/module"
	apperrors "github.com/lceo-rwanda/portal/internal/services/web/platform/errors"
)

func TestWriteRendersErrorPageForNotFound(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	Write(rr, httptest.NewRequest(http.MethodGet, "/programs/missing", nil), apperrors.E(apperrors.KindNotFound, "missing"), module.Viewer{})
	if rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusNotFound)
	}
	body := rr.Body.String()
	if !strings.Contains(body, `class="error-state"`) {
		t.Fatalf("body missing error state: %q", body)
	}
	if !strings.Contains(body, "Page not found") {
		t.Fatal("body missing not-found title")
	}
}

func TestWriteRendersServerErrorPageForUnknownErrors(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	Write(rr, httptest.NewRequest(http.MethodGet, "/donate", nil), errors.New("disk on fire"), module.Viewer{})
	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusInternalServerError)
	}
	if strings.Contains(rr.Body.String(), "disk on fire") {
		t.Fatal("body leaked internal error text")
	}
}

func TestWriteUsesPlainTextForBadRequest(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	Write(rr, httptest.NewRequest(http.MethodPost, "/contact", nil), apperrors.E(apperrors.KindInvalidInput, "bad form"), module.Viewer{})
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusBadRequest)
	}
	body := rr.Body.String()
	if !strings.Contains(body, http.StatusText(http.StatusBadRequest)) {
		t.Fatalf("body = %q, want generic bad-request text", body)
	}
	if strings.Contains(body, "bad form") {
		t.Fatalf("body leaked internal error text: %q", body)
	}
}

func TestPublicMessagePrefersLocalizationKey(t *testing.T) {
	t.Parallel()

	loc := webi18n.Printer(webi18n.Default())
	err := apperrors.EK(apperrors.KindInvalidInput, "error.form_unreadable", "parse form: EOF")
	if got, want := PublicMessage(loc, err), "We could not read the submitted form"; got != want {
		t.Fatalf("PublicMessage() = %q, want %q", got, want)
	}
	if got := PublicMessage(loc, nil); got != "" {
		t.Fatalf("PublicMessage(nil) = %q, want empty", got)
	}
}
