package formvalue

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
)

func TestGetAndChecked(t *testing.T) {
	t.Parallel()

	form := url.Values{"name": {"  Grace  "}, "agree": {"on"}, "other": {"off"}}
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	if got := Get(req, "name"); got != "Grace" {
		t.Fatalf("Get(name) = %q, want %q", got, "Grace")
	}
	if !Checked(req, "agree") {
		t.Fatal("Checked(agree) = false, want true")
	}
	if Checked(req, "other") || Checked(req, "missing") {
		t.Fatal("Checked should be false for off and missing fields")
	}
	if Get(nil, "name") != "" {
		t.Fatal("Get(nil) should be empty")
	}
}

func TestAnyBlank(t *testing.T) {
	t.Parallel()

	if !AnyBlank("a", " ", "c") {
		t.Fatal("AnyBlank() = false, want true")
	}
	if AnyBlank("a", "b") {
		t.Fatal("AnyBlank() = true, want false")
	}
}

func TestEmail(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw  string
		want bool
	}{
		{raw: "donor1@example.org", want: true},
		{raw: "  admin@lceo.org ", want: true},
		{raw: "", want: false},
		{raw: "not-an-email", want: false},
		{raw: "Grace <grace@example.org>", want: false},
	}
	for _, tc := range tests {
		if got := Email(tc.raw); got != tc.want {
			t.Fatalf("Email(%q) = %v, want %v", tc.raw, got, tc.want)
		}
	}
}

func TestNonNegativeDecimal(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw    string
		want   string
		wantOK bool
	}{
		{raw: "", want: "0", wantOK: true},
		{raw: "15000", want: "15000", wantOK: true},
		{raw: "12.50", want: "12.5", wantOK: true},
		{raw: "-1", want: "0", wantOK: false},
		{raw: "abc", want: "0", wantOK: false},
	}
	for _, tc := range tests {
		got, ok := NonNegativeDecimal(tc.raw)
		if ok != tc.wantOK || got.String() != tc.want {
			t.Fatalf("NonNegativeDecimal(%q) = (%s, %v), want (%s, %v)", tc.raw, got, ok, tc.want, tc.wantOK)
		}
	}
}

func TestCheckPassword(t *testing.T) {
	t.Parallel()

	if !CheckPassword("Secure123").All() {
		t.Fatal("Secure123 should satisfy every rule")
	}
	rules := CheckPassword("short")
	if rules.MinLength || rules.Upper || rules.Digit || !rules.Lower {
		t.Fatalf("CheckPassword(short) = %+v", rules)
	}
}
