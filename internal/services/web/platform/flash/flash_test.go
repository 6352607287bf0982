package flash

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/lceo-rwanda/portal/internal/services/web/platform/requestmeta"
)

func TestWriteThenReadAndClear(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodPost, "/admin/beneficiaries/b-1/status", nil)
	writeRR := httptest.NewRecorder()
	Write(writeRR, req, Success("toast.admin.status_updated", "b-1", "graduated"), requestmeta.SchemePolicy{})

	cookie, err := http.ParseSetCookie(writeRR.Header().Get("Set-Cookie"))
	if err != nil {
		t.Fatalf("ParseSetCookie() error = %v", err)
	}
	if !cookie.HttpOnly || cookie.SameSite != http.SameSiteLaxMode {
		t.Fatalf("cookie flags = httpOnly %v sameSite %v", cookie.HttpOnly, cookie.SameSite)
	}

	next := httptest.NewRequest(http.MethodGet, "/admin/beneficiaries", nil)
	next.AddCookie(cookie)
	readRR := httptest.NewRecorder()
	notice, ok := ReadAndClear(readRR, next)
	if !ok {
		t.Fatal("ReadAndClear() ok = false, want true")
	}
	if notice.Kind != KindSuccess || notice.Key != "toast.admin.status_updated" {
		t.Fatalf("notice = %+v", notice)
	}
	if len(notice.Args) != 2 || notice.Args[1] != "graduated" {
		t.Fatalf("notice args = %v", notice.Args)
	}
	cleared, err := http.ParseSetCookie(readRR.Header().Get("Set-Cookie"))
	if err != nil || cleared.MaxAge >= 0 {
		t.Fatalf("expected expired cookie, got %+v (%v)", cleared, err)
	}
}

func TestReadAndClearInvalidCookieStillClears(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: "%%%"})
	rr := httptest.NewRecorder()
	if _, ok := ReadAndClear(rr, req); ok {
		t.Fatal("ReadAndClear() ok = true, want false")
	}
	if rr.Header().Get("Set-Cookie") == "" {
		t.Fatal("expected clearing Set-Cookie header")
	}
}

func TestWriteIgnoresInvalidNotice(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, notice := range []Notice{
		{Kind: KindSuccess, Key: "  "},
		{Kind: "loud", Key: "toast.x"},
	} {
		rr := httptest.NewRecorder()
		Write(rr, req, notice, requestmeta.SchemePolicy{})
		if got := rr.Header().Get("Set-Cookie"); got != "" {
			t.Fatalf("Set-Cookie = %q for %+v, want none", got, notice)
		}
	}
}

func TestWriteMarksCookieSecureOverHTTPS(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "https://portal.test/", nil)
	rr := httptest.NewRecorder()
	Write(rr, req, Failure("toast.login.failed"), requestmeta.SchemePolicy{})
	cookie, err := http.ParseSetCookie(rr.Header().Get("Set-Cookie"))
	if err != nil {
		t.Fatalf("ParseSetCookie() error = %v", err)
	}
	if !cookie.Secure {
		t.Fatal("cookie should be Secure over HTTPS")
	}
}
