package i18n

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func TestPrinterUsesCatalog(t *testing.T) {
	t.Parallel()

	p := Printer(language.English)
	if got := p.Sprintf("toast.login.success"); got != "Successfully logged in" {
		t.Fatalf("toast.login.success = %q", got)
	}
	if got := p.Sprintf("toast.admin.status_updated", "b-1", "graduated"); got != "Updated status for beneficiary b-1 to graduated" {
		t.Fatalf("toast.admin.status_updated = %q", got)
	}
}

func TestResolveTagFallsBackToEnglish(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept-Language", "fr-FR, rw;q=0.8")
	if got := ResolveTag(req); got != language.English {
		t.Fatalf("ResolveTag = %v, want %v", got, language.English)
	}
	if got := ResolveTag(nil); got != language.English {
		t.Fatalf("ResolveTag(nil) = %v, want %v", got, language.English)
	}
}

func TestTWithoutLocalizer(t *testing.T) {
	t.Parallel()

	if got := T(nil, "plain"); got != "plain" {
		t.Fatalf("T = %q, want %q", got, "plain")
	}
	if got := T(nil, "Step %d", 2); got != "Step 2" {
		t.Fatalf("T = %q, want %q", got, "Step 2")
	}
}

func TestTAcceptsCatalogKeysFromVariables(t *testing.T) {
	t.Parallel()

	p := Printer(language.English)
	tests := []struct {
		key  message.Reference
		args []any
		want string
	}{
		{key: "donate.impact.mentorship", args: []any{3}, want: "3 months of mentorship"},
		{key: "title.page", args: []any{"Programs"}, want: "Programs | LCEO"},
		{key: message.Key("missing.key", "Fallback %d"), args: []any{7}, want: "Fallback 7"},
	}
	for _, tc := range tests {
		if got := T(p, tc.key, tc.args...); got != tc.want {
			t.Fatalf("T(%v) = %q, want %q", tc.key, got, tc.want)
		}
	}
	if got := T(nil, message.Key("missing.key", "Fallback")); got != "" {
		t.Fatalf("T(nil, non-string key) = %q, want empty", got)
	}
}

func TestMoneyGroupsDigits(t *testing.T) {
	t.Parallel()

	p := Printer(language.English)
	rwf := Money(p, decimal.NewFromInt(150000), "RWF")
	if !strings.HasPrefix(rwf, "RWF ") || !strings.Contains(rwf, "150,000") {
		t.Fatalf("Money(RWF) = %q", rwf)
	}
	usd := Money(p, decimal.NewFromInt(1500), "usd")
	if !strings.HasPrefix(usd, "USD ") || !strings.Contains(usd, "1,500") {
		t.Fatalf("Money(USD) = %q", usd)
	}
}
