package admin

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/lceo-rwanda/portal/internal/portal/mockdata"
)

func TestParseDonorDefaultsCurrency(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC)
	tests := []struct {
		raw  string
		want mockdata.Currency
	}{
		{raw: "eur", want: mockdata.CurrencyEUR},
		{raw: "RWF", want: mockdata.CurrencyRWF},
		{raw: "", want: mockdata.CurrencyUSD},
		{raw: "GBP", want: mockdata.CurrencyUSD},
	}
	for _, tc := range tests {
		d, key := parseDonor(donorForm{FullName: "Aline", Email: "aline@example.org", Country: "Rwanda", Currency: tc.raw}, now)
		if key != "" {
			t.Fatalf("parseDonor(%q) key = %q, want none", tc.raw, key)
		}
		if d.PreferredCurrency != tc.want {
			t.Fatalf("parseDonor(%q) currency = %q, want %q", tc.raw, d.PreferredCurrency, tc.want)
		}
		if !d.CreatedAt.Equal(now) {
			t.Fatalf("CreatedAt = %v, want %v", d.CreatedAt, now)
		}
	}
}

func TestFinancialSummaryTotalsByType(t *testing.T) {
	t.Parallel()

	f := financialSummary()
	if !f.TotalRaised.Equal(decimal.NewFromInt(3750)) {
		t.Fatalf("TotalRaised = %s, want 3750", f.TotalRaised)
	}
	got := make(map[mockdata.DonationType]int)
	for _, total := range f.ByType {
		got[total.Type] = total.Count
	}
	want := map[mockdata.DonationType]int{
		mockdata.DonationOneTime:   2,
		mockdata.DonationMonthly:   1,
		mockdata.DonationQuarterly: 0,
		mockdata.DonationYearly:    1,
	}
	for k, v := range want {
		if got[k] != v {
			t.Fatalf("count[%s] = %d, want %d", k, got[k], v)
		}
	}
}

func TestStatusOverridesAreScopedPerBrowser(t *testing.T) {
	t.Parallel()

	s := testService()
	ctx := context.Background()
	if _, err := s.updateStatus(ctx, "browser-a", "beneficiary-4", mockdata.BeneficiaryActive); err != nil {
		t.Fatalf("updateStatus() error = %v", err)
	}
	for ns, want := range map[string]int{"browser-a": 3, "browser-b": 2} {
		all, err := s.beneficiaries(ctx, ns)
		if err != nil {
			t.Fatalf("beneficiaries(%s) error = %v", ns, err)
		}
		if got := len(filterByStatus(all, mockdata.BeneficiaryActive)); got != want {
			t.Fatalf("%s active = %d, want %d", ns, got, want)
		}
	}
}

func TestUnreadableStoredRecordsFallBackToDefaults(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  string
	}{
		{name: "null", raw: "null"},
		{name: "malformed", raw: `{"beneficiary-4":`},
		{name: "wrong shape", raw: `["active"]`},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			s := testService()
			ctx := context.Background()
			for _, key := range []string{statusKey, beneficiariesKey, donorsKey, settingsKey} {
				if err := s.store.PutValue(ctx, "browser", key, []byte(tc.raw)); err != nil {
					t.Fatalf("PutValue(%s) error = %v", key, err)
				}
			}

			updated, err := s.updateStatus(ctx, "browser", "beneficiary-4", mockdata.BeneficiaryActive)
			if err != nil {
				t.Fatalf("updateStatus() error = %v", err)
			}
			if updated.Status != mockdata.BeneficiaryActive {
				t.Fatalf("status = %q, want %q", updated.Status, mockdata.BeneficiaryActive)
			}
			all, err := s.beneficiaries(ctx, "browser")
			if err != nil {
				t.Fatalf("beneficiaries() error = %v", err)
			}
			if got, want := len(all), len(mockdata.Beneficiaries()); got != want {
				t.Fatalf("beneficiaries = %d, want %d", got, want)
			}
			donors, err := s.donors(ctx, "browser")
			if err != nil {
				t.Fatalf("donors() error = %v", err)
			}
			if got, want := len(donors), len(mockdata.Donors()); got != want {
				t.Fatalf("donors = %d, want %d", got, want)
			}
			current, err := s.settings(ctx, "browser")
			if err != nil {
				t.Fatalf("settings() error = %v", err)
			}
			if current != defaultSettings() {
				t.Fatalf("settings = %+v, want defaults", current)
			}
		})
	}
}
