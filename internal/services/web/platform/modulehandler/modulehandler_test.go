package modulehandler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/lceo-rwanda/portal/internal/platform/clock"
	"github.com/lceo-rwanda/portal/internal/portal/mockdata"
	"github.com/lceo-rwanda/portal/internal/services/web/module"
	"github.com/lceo-rwanda/portal/internal/services/web/platform/flash"
	"github.com/lceo-rwanda/portal/internal/services/web/platform/pagerender"
	"github.com/lceo-rwanda/portal/internal/services/web/platform/webctx"
	"github.com/lceo-rwanda/portal/internal/services/web/templates"
)

func TestViewerUsesResolver(t *testing.T) {
	t.Parallel()

	user, _ := mockdata.UserByEmail(mockdata.AdminEmail)
	base := NewBase(module.Dependencies{
		ResolveViewer: func(*http.Request) module.Viewer {
			return module.Viewer{Authenticated: true, User: user}
		},
	})
	viewer := base.Viewer(httptest.NewRequest(http.MethodGet, "/admin", nil))
	if !viewer.Authenticated || viewer.User.ID != mockdata.AdminUserID {
		t.Fatalf("Viewer() = %+v, want admin", viewer)
	}
	if got := NewTestBase().Viewer(httptest.NewRequest(http.MethodGet, "/", nil)); got.Authenticated {
		t.Fatal("test base should resolve a signed-out viewer")
	}
}

func TestNamespaceReadsRequestContext(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(webctx.WithNamespace(req.Context(), "ns-1"))
	if got := NewTestBase().Namespace(req); got != "ns-1" {
		t.Fatalf("Namespace() = %q, want %q", got, "ns-1")
	}
}

func TestSimulateSleepsThroughClock(t *testing.T) {
	t.Parallel()

	fake := clock.NewFake(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	base := NewBase(module.Dependencies{Clock: fake})
	if err := base.Simulate(t.Context(), 1500*time.Millisecond); err != nil {
		t.Fatalf("Simulate() error = %v", err)
	}
	sleeps := fake.Sleeps()
	if len(sleeps) != 1 || sleeps[0] != 1500*time.Millisecond {
		t.Fatalf("sleeps = %v, want [1.5s]", sleeps)
	}
}

func TestParseFormClassifiesFailures(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader("%zz"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	err := NewTestBase().ParseForm(req)
	if err == nil {
		t.Fatal("ParseForm() error = nil, want error")
	}
	rr := httptest.NewRecorder()
	NewTestBase().WriteError(rr, req, err)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusBadRequest)
	}
}

func TestWriteErrorRendersServerErrorPage(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	NewTestBase().WriteError(rr, httptest.NewRequest(http.MethodGet, "/donate", nil), errors.New("boom"))
	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusInternalServerError)
	}
}

func TestWritePageRendersBody(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	NewTestBase().WritePage(rr, httptest.NewRequest(http.MethodGet, "/about", nil), pagerender.Page{
		Title: "About",
		Body:  templates.H1("About LCEO"),
	})
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	if !strings.Contains(rr.Body.String(), "<h1>About LCEO</h1>") {
		t.Fatal("body missing page heading")
	}
}

func TestRedirectWithFlashSetsCookieAndLocation(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	NewTestBase().RedirectWithFlash(rr, httptest.NewRequest(http.MethodPost, "/login", nil), "/donor", flash.Success("toast.login.success"))
	if rr.Code != http.StatusFound {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusFound)
	}
	if got := rr.Header().Get("Location"); got != "/donor" {
		t.Fatalf("Location = %q, want %q", got, "/donor")
	}
	if !strings.Contains(rr.Header().Get("Set-Cookie"), flash.CookieName+"=") {
		t.Fatal("expected flash cookie")
	}
}

func TestToastLocalizesNotice(t *testing.T) {
	t.Parallel()

	toast := NewTestBase().Toast(httptest.NewRequest(http.MethodPost, "/admin/beneficiaries", nil), flash.Success("toast.admin.status_updated", "Uwera Grace", "graduated"))
	if toast == nil {
		t.Fatal("Toast() = nil")
	}
	if want := "Updated status for beneficiary Uwera Grace to graduated"; toast.Message != want {
		t.Fatalf("Message = %q, want %q", toast.Message, want)
	}
}
