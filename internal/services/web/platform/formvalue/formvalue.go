// Package formvalue reads and validates submitted form fields.
package formvalue

import (
	"net/http"
	"net/mail"
	"strings"

	"github.com/shopspring/decimal"
)

// Get returns the trimmed value of a form field.
func Get(r *http.Request, name string) string {
	if r == nil {
		return ""
	}
	return strings.TrimSpace(r.FormValue(name))
}

// Checked reports whether a checkbox field was submitted as on.
func Checked(r *http.Request, name string) bool {
	switch strings.ToLower(Get(r, name)) {
	case "on", "true", "1", "yes":
		return true
	default:
		return false
	}
}

// AnyBlank reports whether any value is empty after trimming.
func AnyBlank(values ...string) bool {
	for _, v := range values {
		if strings.TrimSpace(v) == "" {
			return true
		}
	}
	return false
}

// Email reports whether raw is a bare email address.
func Email(raw string) bool {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return false
	}
	addr, err := mail.ParseAddress(raw)
	return err == nil && addr.Address == raw
}

// NonNegativeDecimal parses raw as a decimal of zero or more. Blank input
// is zero.
func NonNegativeDecimal(raw string) (decimal.Decimal, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return decimal.Zero, true
	}
	value, err := decimal.NewFromString(raw)
	if err != nil || value.IsNegative() {
		return decimal.Zero, false
	}
	return value, true
}

// PasswordRules reports which strength rules a password meets.
type PasswordRules struct {
	MinLength bool
	Upper     bool
	Lower     bool
	Digit     bool
}

// All reports whether every rule holds.
func (p PasswordRules) All() bool {
	return p.MinLength && p.Upper && p.Lower && p.Digit
}

// MinPasswordLength is the shortest accepted password.
const MinPasswordLength = 8

// CheckPassword evaluates the strength rules for password.
func CheckPassword(password string) PasswordRules {
	rules := PasswordRules{MinLength: len(password) >= MinPasswordLength}
	for _, c := range password {
		switch {
		case c >= 'A' && c <= 'Z':
			rules.Upper = true
		case c >= 'a' && c <= 'z':
			rules.Lower = true
		case c >= '0' && c <= '9':
			rules.Digit = true
		}
	}
	return rules
}
