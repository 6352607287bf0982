package donation

import (
	"context"
	"math"
	"testing"
)

func TestSelectedAmount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data Data
		want int64
	}{
		{name: "empty", data: Data{}, want: 0},
		{name: "preset", data: Data{Amount: "250"}, want: 250},
		{name: "preset wins", data: Data{Amount: "50", CustomAmount: "900"}, want: 50},
		{name: "custom", data: Data{CustomAmount: "75"}, want: 75},
		{name: "fraction truncates", data: Data{CustomAmount: "12.9"}, want: 12},
		{name: "leading space", data: Data{CustomAmount: "  40"}, want: 40},
		{name: "trailing text", data: Data{CustomAmount: "30usd"}, want: 30},
		{name: "not a number", data: Data{CustomAmount: "abc"}, want: 0},
		{name: "negative", data: Data{CustomAmount: "-20"}, want: -20},
		{name: "explicit plus", data: Data{CustomAmount: "+45"}, want: 45},
		{name: "beyond int64 clamps", data: Data{CustomAmount: "99999999999999999999"}, want: math.MaxInt64},
		{name: "below int64 clamps", data: Data{CustomAmount: "-99999999999999999999"}, want: math.MinInt64},
	}
	for _, tc := range tests {
		if got := tc.data.SelectedAmount().IntPart(); got != tc.want {
			t.Fatalf("%s: SelectedAmount = %d, want %d", tc.name, got, tc.want)
		}
	}
}

func TestAmountChoicesClearEachOther(t *testing.T) {
	t.Parallel()

	d := DefaultData()
	d.SetCustomAmount("80")
	d.ChooseSuggested(100)
	if d.Amount != "100" || d.CustomAmount != "" {
		t.Fatalf("after preset: amount %q custom %q", d.Amount, d.CustomAmount)
	}
	d.SetCustomAmount("80")
	if d.Amount != "" || d.CustomAmount != "80" {
		t.Fatalf("after custom: amount %q custom %q", d.Amount, d.CustomAmount)
	}
}

func TestParseHelpers(t *testing.T) {
	t.Parallel()

	if _, ok := ParseType("one-time"); !ok {
		t.Fatal("one-time should parse")
	}
	if _, ok := ParseFrequency("weekly"); ok {
		t.Fatal("weekly should not parse")
	}
	if m, ok := ParseMethod(" mobile "); !ok || m != MethodMobile {
		t.Fatalf("ParseMethod = %q %v", m, ok)
	}
}

func TestOversizedAmountPassesAmountGuard(t *testing.T) {
	t.Parallel()

	data := DefaultData()
	data.SetCustomAmount("123456789012345678901234567890")
	w, err := Restore(Snapshot{State: StateAmountAndDetails, Data: data})
	if err != nil {
		t.Fatalf("Restore() error = %v", err)
	}
	if err := w.Next(context.Background()); err != nil {
		t.Fatalf("Next() error = %v", err)
	}
	if w.State() != StatePaymentInfo {
		t.Fatalf("state = %s, want %s", w.State(), StatePaymentInfo)
	}
	impact := CalculateImpact(w.Data().SelectedAmount())
	if impact.SchoolSupplies != math.MaxInt64/25 {
		t.Fatalf("SchoolSupplies = %d, want %d", impact.SchoolSupplies, int64(math.MaxInt64/25))
	}
}
