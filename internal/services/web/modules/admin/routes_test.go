package admin

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/lceo-rwanda/portal/internal/services/web/platform/modulehandler"
	"github.com/lceo-rwanda/portal/internal/services/web/platform/webctx"
	"github.com/lceo-rwanda/portal/internal/services/web/routepath"
	"github.com/lceo-rwanda/portal/internal/services/web/storage/memory"
)

func testService() service {
	return newService(memory.New(), func() time.Time { return time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC) }, nil)
}

func TestRegisterRoutesHandlesNilMux(t *testing.T) {
	t.Parallel()

	registerRoutes(nil, newHandlers(testService(), modulehandler.NewTestBase()))
}

func TestRegisterRoutesPathAndMethodContracts(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(testService(), modulehandler.NewTestBase()))

	tests := []struct {
		name         string
		method       string
		path         string
		wantStatus   int
		wantLocation string
	}{
		{name: "dashboard", method: http.MethodGet, path: routepath.Admin, wantStatus: http.StatusOK},
		{name: "beneficiaries", method: http.MethodGet, path: routepath.AdminBeneficiaries, wantStatus: http.StatusOK},
		{name: "add beneficiary", method: http.MethodGet, path: routepath.AdminBeneficiariesAdd, wantStatus: http.StatusOK},
		{name: "export", method: http.MethodGet, path: routepath.AdminBeneficiariesExport, wantStatus: http.StatusOK},
		{name: "programs", method: http.MethodGet, path: routepath.AdminPrograms, wantStatus: http.StatusOK},
		{name: "donors", method: http.MethodGet, path: routepath.AdminDonors, wantStatus: http.StatusOK},
		{name: "add donor", method: http.MethodGet, path: routepath.AdminDonorsAdd, wantStatus: http.StatusOK},
		{name: "financial", method: http.MethodGet, path: routepath.AdminFinancial, wantStatus: http.StatusOK},
		{name: "reports", method: http.MethodGet, path: routepath.AdminReports, wantStatus: http.StatusOK},
		{name: "settings", method: http.MethodGet, path: routepath.AdminSettings, wantStatus: http.StatusOK},
		{name: "unknown admin page", method: http.MethodGet, path: "/admin/audit-log", wantStatus: http.StatusFound, wantLocation: routepath.Root},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			req := httptest.NewRequest(tc.method, tc.path, nil)
			req = req.WithContext(webctx.WithNamespace(req.Context(), "routes"))
			rr := httptest.NewRecorder()
			mux.ServeHTTP(rr, req)
			if rr.Code != tc.wantStatus {
				t.Fatalf("status = %d, want %d", rr.Code, tc.wantStatus)
			}
			if tc.wantLocation != "" {
				if got := rr.Header().Get("Location"); got != tc.wantLocation {
					t.Fatalf("Location = %q, want %q", got, tc.wantLocation)
				}
			}
		})
	}
}
