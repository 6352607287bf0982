package public

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/lceo-rwanda/portal/internal/platform/clock"
	"github.com/lceo-rwanda/portal/internal/platform/timeouts"
	"github.com/lceo-rwanda/portal/internal/portal/mockdata"
	"github.com/lceo-rwanda/portal/internal/services/web/module"
	"github.com/lceo-rwanda/portal/internal/services/web/platform/flash"
	"github.com/lceo-rwanda/portal/internal/services/web/routepath"
	"github.com/lceo-rwanda/portal/internal/testkit/htmldoc"
)

func mountPublic(t *testing.T, deps module.Dependencies) http.Handler {
	t.Helper()
	mount, err := New().Mount(deps)
	if err != nil {
		t.Fatalf("Mount() error = %v", err)
	}
	if mount.Prefix != routepath.Root {
		t.Fatalf("Prefix = %q, want %q", mount.Prefix, routepath.Root)
	}
	return mount.Handler
}

func postForm(path string, form url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func flashFrom(t *testing.T, rr *httptest.ResponseRecorder) flash.Notice {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range rr.Result().Cookies() {
		req.AddCookie(c)
	}
	notice, ok := flash.ReadAndClear(httptest.NewRecorder(), req)
	if !ok {
		t.Fatal("expected a flash notice")
	}
	return notice
}

func TestHomeListsActiveProgramsOnly(t *testing.T) {
	t.Parallel()

	h := mountPublic(t, module.Dependencies{Clock: clock.Instant{}})
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, routepath.Root, nil))

	doc := htmldoc.Parse(t, rr.Body.String())
	if !doc.Has("article", "data-program", mockdata.ProgramEducation) {
		t.Fatal("home should list the education program")
	}
	if doc.Has("article", "data-program", mockdata.ProgramLeadership) {
		t.Fatal("home should not list programs still in planning")
	}
	if !doc.HasText("Our Impact in Numbers") {
		t.Fatal("home missing impact figures")
	}
}

func TestProgramDetailLinksToPreselectedDonation(t *testing.T) {
	t.Parallel()

	h := mountPublic(t, module.Dependencies{Clock: clock.Instant{}})
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, routepath.Program(mockdata.ProgramEnterprise), nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	doc := htmldoc.Parse(t, rr.Body.String())
	if !doc.Has("a", "href", routepath.DonateFor(mockdata.ProgramEnterprise)) {
		t.Fatalf("missing donate link; links = %v", doc.Links())
	}
	if !doc.HasText("Women Entrepreneurship") {
		t.Fatal("missing program name")
	}
	if !doc.HasText("USD 90,000.00") {
		t.Fatal("missing formatted budget")
	}
	if !doc.HasText("From one machine to a tailoring shop") {
		t.Fatal("missing related story")
	}
}

func TestContactPostRequiresFields(t *testing.T) {
	t.Parallel()

	fake := clock.NewFake(time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC))
	h := mountPublic(t, module.Dependencies{Clock: fake})
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, postForm(routepath.Contact, url.Values{"name": {"Grace"}, "email": {"grace@example.org"}}))

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusBadRequest)
	}
	doc := htmldoc.Parse(t, rr.Body.String())
	if !doc.Has("div", "data-toast", "error") {
		t.Fatal("missing error toast")
	}
	if !doc.HasText("Please fill in all required fields") {
		t.Fatal("missing required-fields message")
	}
	if !doc.Has("input", "name", "name", "value", "Grace") {
		t.Fatal("submitted name should be kept")
	}
	if got := len(fake.Sleeps()); got != 0 {
		t.Fatalf("sleeps = %d, want 0 for invalid submissions", got)
	}
}

func TestContactPostSucceedsAfterSimulatedDelay(t *testing.T) {
	t.Parallel()

	fake := clock.NewFake(time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC))
	h := mountPublic(t, module.Dependencies{Clock: fake})
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, postForm(routepath.Contact, url.Values{
		"name":    {"Grace"},
		"email":   {"grace@example.org"},
		"message": {"How can I volunteer?"},
	}))

	if rr.Code != http.StatusFound {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusFound)
	}
	if got := rr.Header().Get("Location"); got != routepath.Contact {
		t.Fatalf("Location = %q, want %q", got, routepath.Contact)
	}
	if got := flashFrom(t, rr).Key; got != "toast.contact.sent" {
		t.Fatalf("flash key = %q, want %q", got, "toast.contact.sent")
	}
	sleeps := fake.Sleeps()
	if len(sleeps) != 1 || sleeps[0] != timeouts.SimulatedFormSubmit {
		t.Fatalf("sleeps = %v, want [%v]", sleeps, timeouts.SimulatedFormSubmit)
	}
}

func TestNewsletterPost(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		form         url.Values
		wantLocation string
		wantKind     flash.Kind
		wantKey      string
	}{
		{
			name:         "footer subscription",
			form:         url.Values{"email": {"friend@example.org"}, "next": {routepath.About}},
			wantLocation: routepath.About,
			wantKind:     flash.KindSuccess,
			wantKey:      "toast.footer.subscribed",
		},
		{
			name:         "contact page subscription",
			form:         url.Values{"email": {"friend@example.org"}, "next": {routepath.Contact}, "source": {newsletterSourceContact}},
			wantLocation: routepath.Contact,
			wantKind:     flash.KindSuccess,
			wantKey:      "toast.newsletter.subscribed",
		},
		{
			name:         "invalid email",
			form:         url.Values{"email": {"nope"}, "next": {routepath.About}},
			wantLocation: routepath.About,
			wantKind:     flash.KindError,
			wantKey:      "error.email_invalid",
		},
		{
			name:         "external next",
			form:         url.Values{"email": {"friend@example.org"}, "next": {"https://evil.example"}},
			wantLocation: routepath.Root,
			wantKind:     flash.KindSuccess,
			wantKey:      "toast.footer.subscribed",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			h := mountPublic(t, module.Dependencies{Clock: clock.Instant{}})
			rr := httptest.NewRecorder()
			h.ServeHTTP(rr, postForm(routepath.Newsletter, tc.form))
			if rr.Code != http.StatusFound {
				t.Fatalf("status = %d, want %d", rr.Code, http.StatusFound)
			}
			if got := rr.Header().Get("Location"); got != tc.wantLocation {
				t.Fatalf("Location = %q, want %q", got, tc.wantLocation)
			}
			notice := flashFrom(t, rr)
			if notice.Kind != tc.wantKind || notice.Key != tc.wantKey {
				t.Fatalf("flash = %+v, want %s/%s", notice, tc.wantKind, tc.wantKey)
			}
		})
	}
}
