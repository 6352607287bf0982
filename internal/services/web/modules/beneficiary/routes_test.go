package beneficiary

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
	return newService(memory.New(), func() time.Time { return time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC) })
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
		{name: "journey", method: http.MethodGet, path: routepath.Dashboard, wantStatus: http.StatusOK},
		{name: "goals", method: http.MethodGet, path: routepath.DashboardGoals, wantStatus: http.StatusOK},
		{name: "tracking", method: http.MethodGet, path: routepath.DashboardTracking, wantStatus: http.StatusOK},
		{name: "resources", method: http.MethodGet, path: routepath.DashboardResources, wantStatus: http.StatusOK},
		{name: "unknown dashboard page", method: http.MethodGet, path: "/dashboard/settings", wantStatus: http.StatusFound, wantLocation: routepath.Root},
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
