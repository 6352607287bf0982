package donation

import (
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// GeneralFund is the program value for "where needed most".
const GeneralFund = "general"

var (
	maxAmount = decimal.NewFromInt(math.MaxInt64)
	minAmount = decimal.NewFromInt(math.MinInt64)
)

// SuggestedAmounts are the preset gift sizes offered on the amount step.
var SuggestedAmounts = []int64{25, 50, 100, 250, 500, 1000}

// Type is the donation cadence family.
type Type string

const (
	TypeRecurring Type = "recurring"
	TypeOneTime   Type = "one-time"
)

// Frequency is the recurring donation interval.
type Frequency string

const (
	FrequencyMonthly   Frequency = "monthly"
	FrequencyQuarterly Frequency = "quarterly"
	FrequencyYearly    Frequency = "yearly"
)

// Method is the chosen payment channel.
type Method string

const (
	MethodCard   Method = "card"
	MethodMobile Method = "mobile"
	MethodBank   Method = "bank"
)

// ParseType validates a raw donation type.
func ParseType(raw string) (Type, bool) {
	switch Type(strings.TrimSpace(raw)) {
	case TypeRecurring:
		return TypeRecurring, true
	case TypeOneTime:
		return TypeOneTime, true
	default:
		return "", false
	}
}

// ParseFrequency validates a raw frequency.
func ParseFrequency(raw string) (Frequency, bool) {
	switch Frequency(strings.TrimSpace(raw)) {
	case FrequencyMonthly:
		return FrequencyMonthly, true
	case FrequencyQuarterly:
		return FrequencyQuarterly, true
	case FrequencyYearly:
		return FrequencyYearly, true
	default:
		return "", false
	}
}

// ParseMethod validates a raw payment method.
func ParseMethod(raw string) (Method, bool) {
	switch Method(strings.TrimSpace(raw)) {
	case MethodCard:
		return MethodCard, true
	case MethodMobile:
		return MethodMobile, true
	case MethodBank:
		return MethodBank, true
	default:
		return "", false
	}
}

// Data is everything the donor has entered so far.
type Data struct {
	Program       string    `json:"program"`
	Type          Type      `json:"type"`
	Frequency     Frequency `json:"frequency"`
	Amount        string    `json:"amount"`
	CustomAmount  string    `json:"customAmount"`
	Anonymous     bool      `json:"anonymous"`
	Message       string    `json:"message"`
	PaymentMethod Method    `json:"paymentMethod"`
	Email         string    `json:"email"`
	Name          string    `json:"name"`
}

// DefaultData is the state of a fresh wizard.
func DefaultData() Data {
	return Data{Type: TypeRecurring, Frequency: FrequencyMonthly}
}

// ChooseSuggested selects a preset amount and clears any custom entry.
func (d *Data) ChooseSuggested(amount int64) {
	d.Amount = strconv.FormatInt(amount, 10)
	d.CustomAmount = ""
}

// SetCustomAmount records a typed amount and clears any preset choice.
func (d *Data) SetCustomAmount(raw string) {
	d.CustomAmount = raw
	d.Amount = ""
}

// SelectedAmount is the preset amount if chosen, else the custom amount,
// read as a leading integer. Unparseable input yields zero and digit runs
// beyond the int64 range are clamped to it.
func (d Data) SelectedAmount() decimal.Decimal {
	raw := d.Amount
	if raw == "" {
		raw = d.CustomAmount
	}
	n, ok := parseLeadingInteger(raw)
	if !ok {
		return decimal.Zero
	}
	switch {
	case n.GreaterThan(maxAmount):
		return maxAmount
	case n.LessThan(minAmount):
		return minAmount
	}
	return n
}

// Recurring reports whether the gift repeats.
func (d Data) Recurring() bool { return d.Type == TypeRecurring }

// parseLeadingInteger reads an optionally signed run of decimal digits after
// leading whitespace and ignores whatever follows.
func parseLeadingInteger(raw string) (decimal.Decimal, bool) {
	s := strings.TrimLeft(raw, " \t\n\r\f\v")
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digitsStart := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digitsStart {
		return decimal.Zero, false
	}
	n, err := decimal.NewFromString(s[digitsStart:end])
	if err != nil {
		return decimal.Zero, false
	}
	if digitsStart > 0 && s[0] == '-' {
		n = n.Neg()
	}
	return n, true
}
