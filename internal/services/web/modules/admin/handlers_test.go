package admin

import (
	"encoding/csv"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"slices"
	"strings"
	"testing"
	"time"

	"golang.org/x/net/html"

	"github.com/lceo-rwanda/portal/internal/platform/clock"
	"github.com/lceo-rwanda/portal/internal/platform/timeouts"
	"github.com/lceo-rwanda/portal/internal/portal/mockdata"
	"github.com/lceo-rwanda/portal/internal/services/web/module"
	"github.com/lceo-rwanda/portal/internal/services/web/platform/flash"
	"github.com/lceo-rwanda/portal/internal/services/web/platform/observability"
	"github.com/lceo-rwanda/portal/internal/services/web/platform/webctx"
	"github.com/lceo-rwanda/portal/internal/services/web/routepath"
	"github.com/lceo-rwanda/portal/internal/services/web/storage/memory"
	"github.com/lceo-rwanda/portal/internal/testkit/htmldoc"
)

const testNamespace = "browser-1"

type fixture struct {
	handler http.Handler
	clock   *clock.Fake
	metrics *observability.Metrics
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	admin, ok := mockdata.UserByEmail(mockdata.AdminEmail)
	if !ok {
		t.Fatalf("UserByEmail(%q) not found", mockdata.AdminEmail)
	}
	fake := clock.NewFake(time.Date(2024, 6, 3, 9, 0, 0, 0, time.UTC))
	metrics := observability.NewMetrics()
	mount, err := New().Mount(module.Dependencies{
		Store:   memory.New(),
		Clock:   fake,
		Metrics: metrics,
		ResolveViewer: func(*http.Request) module.Viewer {
			return module.Viewer{Authenticated: true, User: admin}
		},
	})
	if err != nil {
		t.Fatalf("Mount() error = %v", err)
	}
	if mount.Role != mockdata.UserTypeAdmin {
		t.Fatalf("Role = %q, want %q", mount.Role, mockdata.UserTypeAdmin)
	}
	return fixture{handler: mount.Handler, clock: fake, metrics: metrics}
}

func (f fixture) serve(req *http.Request) *httptest.ResponseRecorder {
	req = req.WithContext(webctx.WithNamespace(req.Context(), testNamespace))
	rr := httptest.NewRecorder()
	f.handler.ServeHTTP(rr, req)
	return rr
}

func (f fixture) get(t *testing.T, path string) htmldoc.Doc {
	t.Helper()
	rr := f.serve(httptest.NewRequest(http.MethodGet, path, nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("GET %s status = %d, want %d", path, rr.Code, http.StatusOK)
	}
	return htmldoc.Parse(t, rr.Body.String())
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

func assertRedirect(t *testing.T, rr *httptest.ResponseRecorder, want string) {
	t.Helper()
	if rr.Code != http.StatusFound {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusFound)
	}
	if got := rr.Header().Get("Location"); got != want {
		t.Fatalf("Location = %q, want %q", got, want)
	}
}

func scrape(t *testing.T, metrics *observability.Metrics) string {
	t.Helper()
	rr := httptest.NewRecorder()
	metrics.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	body, err := io.ReadAll(rr.Body)
	if err != nil {
		t.Fatalf("read metrics: %v", err)
	}
	return string(body)
}

func rowsWith(doc htmldoc.Doc, attr string) []*html.Node {
	var rows []*html.Node
	for _, n := range doc.Find("tr") {
		if htmldoc.HasAttr(n, attr) {
			rows = append(rows, n)
		}
	}
	return rows
}

func TestMountRequiresStore(t *testing.T) {
	t.Parallel()

	if _, err := New().Mount(module.Dependencies{}); err == nil {
		t.Fatal("expected error without store")
	}
}

func TestDashboardShowsSeedTotals(t *testing.T) {
	t.Parallel()

	doc := newFixture(t).get(t, routepath.Admin)
	for _, want := range []string{"Admin Dashboard", "Total Beneficiaries", "USD 3,750.00", "Admin Portal"} {
		if !doc.HasText(want) {
			t.Fatalf("dashboard missing %q", want)
		}
	}
	if got := len(rowsWith(doc, "data-donation")); got != 4 {
		t.Fatalf("recent donations = %d, want 4", got)
	}
}

func TestBeneficiariesFilterByStatus(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	tests := []struct {
		query string
		want  int
	}{
		{query: "", want: 4},
		{query: "?status=active", want: 2},
		{query: "?status=graduated", want: 1},
		{query: "?status=inactive", want: 1},
		{query: "?status=bogus", want: 4},
	}
	for _, tc := range tests {
		t.Run(tc.query, func(t *testing.T) {
			doc := f.get(t, routepath.AdminBeneficiaries+tc.query)
			if got := len(rowsWith(doc, "data-beneficiary")); got != tc.want {
				t.Fatalf("rows = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestStatusUpdatePersistsAndToasts(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	rr := f.serve(postForm(routepath.AdminBeneficiaryStatus("beneficiary-1"), url.Values{
		"status": {"graduated"},
		"filter": {"active"},
	}))
	assertRedirect(t, rr, routepath.AdminBeneficiaries+"?status=active")
	notice := flashFrom(t, rr)
	if notice.Key != "toast.admin.status_updated" {
		t.Fatalf("flash key = %q, want %q", notice.Key, "toast.admin.status_updated")
	}
	if want := []string{"Uwera Grace", "Graduated"}; !slices.Equal(notice.Args, want) {
		t.Fatalf("flash args = %v, want %v", notice.Args, want)
	}
	if got := f.clock.Sleeps(); !slices.Equal(got, []time.Duration{timeouts.SimulatedQuickForm}) {
		t.Fatalf("sleeps = %v, want [%v]", got, timeouts.SimulatedQuickForm)
	}

	doc := f.get(t, routepath.AdminBeneficiaries+"?status=graduated")
	if got := len(rowsWith(doc, "data-beneficiary")); got != 2 {
		t.Fatalf("graduated rows = %d, want 2", got)
	}
}

func TestStatusUpdateRejectsUnknownStatus(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	rr := f.serve(postForm(routepath.AdminBeneficiaryStatus("beneficiary-1"), url.Values{"status": {"expelled"}}))
	assertRedirect(t, rr, routepath.AdminBeneficiaries)
	if notice := flashFrom(t, rr); notice.Kind != flash.KindError || notice.Key != "error.status_invalid" {
		t.Fatalf("flash = %+v, want error.status_invalid", notice)
	}
}

func TestStatusUpdateUnknownBeneficiaryIsNotFound(t *testing.T) {
	t.Parallel()

	rr := newFixture(t).serve(postForm(routepath.AdminBeneficiaryStatus("beneficiary-99"), url.Values{"status": {"active"}}))
	if rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusNotFound)
	}
}

func TestExportWritesCSV(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	rr := f.serve(httptest.NewRequest(http.MethodGet, routepath.AdminBeneficiariesExport+"?status=active", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	if got := rr.Header().Get("Content-Type"); !strings.HasPrefix(got, "text/csv") {
		t.Fatalf("Content-Type = %q, want text/csv", got)
	}
	if got := rr.Header().Get("Content-Disposition"); !strings.Contains(got, exportFilename) {
		t.Fatalf("Content-Disposition = %q, want filename %q", got, exportFilename)
	}
	records, err := csv.NewReader(rr.Body).ReadAll()
	if err != nil {
		t.Fatalf("read csv: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("records = %d, want header plus 2 rows", len(records))
	}
	want := []string{"beneficiary-1", "Uwera Grace", "Women Entrepreneurship", "active", "Gasabo", "2023-02-01", "50000", "185000", "Tailoring"}
	if !slices.Equal(records[1], want) {
		t.Fatalf("row = %v, want %v", records[1], want)
	}
	if notice := flashFrom(t, rr); notice.Key != "toast.admin.exporting" {
		t.Fatalf("flash key = %q, want %q", notice.Key, "toast.admin.exporting")
	}
}

func TestAddBeneficiary(t *testing.T) {
	t.Parallel()

	valid := func() url.Values {
		return url.Values{
			"fullName":        {"Iradukunda Claudine"},
			"email":           {"claudine@example.org"},
			"programId":       {mockdata.ProgramEnterprise},
			"district":        {"Huye"},
			"businessType":    {"Bakery"},
			"startCapital":    {"60000"},
			"password":        {"longenough"},
			"confirmPassword": {"longenough"},
		}
	}

	tests := []struct {
		name    string
		mutate  func(url.Values)
		wantMsg string
	}{
		{name: "missing name", mutate: func(v url.Values) { v.Set("fullName", "") }, wantMsg: "Please fill in all required fields"},
		{name: "short password", mutate: func(v url.Values) { v.Set("password", "short"); v.Set("confirmPassword", "short") }, wantMsg: "Password must be at least 8 characters"},
		{name: "mismatch", mutate: func(v url.Values) { v.Set("confirmPassword", "different1") }, wantMsg: "Passwords do not match"},
		{name: "unknown program", mutate: func(v url.Values) { v.Set("programId", "program-space") }, wantMsg: "Choose one of the listed programs"},
		{name: "negative capital", mutate: func(v url.Values) { v.Set("startCapital", "-5") }, wantMsg: "Start capital must be a number of zero or more"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			form := valid()
			tc.mutate(form)
			rr := newFixture(t).serve(postForm(routepath.AdminBeneficiariesAdd, form))
			if rr.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want %d", rr.Code, http.StatusBadRequest)
			}
			doc := htmldoc.Parse(t, rr.Body.String())
			if got := htmldoc.NodeText(doc.First("p", "class", "form-error")); got != tc.wantMsg {
				t.Fatalf("error = %q, want %q", got, tc.wantMsg)
			}
		})
	}

	t.Run("success", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)
		rr := f.serve(postForm(routepath.AdminBeneficiariesAdd, valid()))
		assertRedirect(t, rr, routepath.AdminBeneficiaries)
		if notice := flashFrom(t, rr); notice.Key != "toast.admin.beneficiary_added" {
			t.Fatalf("flash key = %q, want %q", notice.Key, "toast.admin.beneficiary_added")
		}
		if got := f.clock.Sleeps(); !slices.Equal(got, []time.Duration{timeouts.SimulatedFormSubmit}) {
			t.Fatalf("sleeps = %v, want [%v]", got, timeouts.SimulatedFormSubmit)
		}
		doc := f.get(t, routepath.AdminBeneficiaries)
		if got := len(rowsWith(doc, "data-beneficiary")); got != 5 {
			t.Fatalf("rows = %d, want 5", got)
		}
		if !doc.HasText("Iradukunda Claudine") {
			t.Fatal("new beneficiary missing from list")
		}
		if !strings.Contains(scrape(t, f.metrics), `lceo_form_submissions_total{form="add_beneficiary"} 1`) {
			t.Fatal("expected add_beneficiary form metric")
		}
	})
}

func TestAddDonor(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	rr := f.serve(postForm(routepath.AdminDonorsAdd, url.Values{"fullName": {"Aline"}, "email": {"not-an-email"}, "country": {"Rwanda"}}))
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusBadRequest)
	}

	rr = f.serve(postForm(routepath.AdminDonorsAdd, url.Values{
		"fullName":  {"Aline Uwase"},
		"email":     {"aline@example.org"},
		"country":   {"Rwanda"},
		"currency":  {"rwf"},
		"recurring": {"true"},
	}))
	assertRedirect(t, rr, routepath.AdminDonors)
	if notice := flashFrom(t, rr); notice.Key != "toast.admin.donor_added" {
		t.Fatalf("flash key = %q, want %q", notice.Key, "toast.admin.donor_added")
	}
	doc := f.get(t, routepath.AdminDonors)
	if got := len(rowsWith(doc, "data-donor")); got != 3 {
		t.Fatalf("donor rows = %d, want 3", got)
	}
	if !doc.HasText("RWF 0") {
		t.Fatal("new donor should show a zero total in RWF")
	}
	if !f.get(t, routepath.Admin).HasText("Total Donors") {
		t.Fatal("dashboard missing donor stat")
	}
}

func TestSettingsSaveAndReload(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	doc := f.get(t, routepath.AdminSettings)
	if !doc.Has("input", "name", "organizationName", "value", "Life-Changing Endeavor Organization") {
		t.Fatal("settings should start from defaults")
	}

	rr := f.serve(postForm(routepath.AdminSettings, url.Values{"organizationName": {"LCEO Rwanda"}, "contactEmail": {""}}))
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusBadRequest)
	}

	rr = f.serve(postForm(routepath.AdminSettings, url.Values{
		"organizationName": {"LCEO Rwanda"},
		"contactEmail":     {"hello@lceo.org"},
		"defaultLanguage":  {"rw"},
	}))
	assertRedirect(t, rr, routepath.AdminSettings)
	if notice := flashFrom(t, rr); notice.Key != "toast.settings.saved" {
		t.Fatalf("flash key = %q, want %q", notice.Key, "toast.settings.saved")
	}
	doc = f.get(t, routepath.AdminSettings)
	if !doc.Has("input", "name", "organizationName", "value", "LCEO Rwanda") {
		t.Fatal("saved organization name not shown")
	}
	if !htmldoc.HasAttr(doc.First("option", "value", "rw"), "selected") {
		t.Fatal("saved language not selected")
	}
	if htmldoc.HasAttr(doc.First("input", "name", "emailNotifications"), "checked") {
		t.Fatal("unchecked notifications should stay off")
	}
}

func TestFinancialAndProgramsPages(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	doc := f.get(t, routepath.AdminFinancial)
	for _, want := range []string{"USD 3,750.00", "USD 300,000.00", "82%"} {
		if !doc.HasText(want) {
			t.Fatalf("financial missing %q", want)
		}
	}
	doc = f.get(t, routepath.AdminPrograms)
	if !doc.Has("article", "data-program", mockdata.ProgramLeadership, "data-status", "planning") {
		t.Fatal("programs page should list programs in planning")
	}
	if !doc.HasText("65% funded") {
		t.Fatal("programs page missing funded percent")
	}
}
