// Package i18n holds the portal message catalog and locale-aware formatting.
package i18n

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
	"golang.org/x/text/number"
)

// Localizer provides translated strings for templates and handlers.
type Localizer interface {
	Sprintf(key message.Reference, args ...any) string
}

var (
	catalogue = catalog.NewBuilder(catalog.Fallback(language.English))
	supported = []language.Tag{language.English}
	matcher   = language.NewMatcher(supported)
)

func set(key, msg string) {
	if err := catalogue.SetString(language.English, key, msg); err != nil {
		panic(fmt.Sprintf("i18n: register %q: %v", key, err))
	}
}

// Default returns the catalog language.
func Default() language.Tag { return language.English }

// Printer returns a printer bound to the portal catalog.
func Printer(tag language.Tag) *message.Printer {
	return message.NewPrinter(tag, message.Catalog(catalogue))
}

// ResolveTag picks the best supported language from Accept-Language.
func ResolveTag(r *http.Request) language.Tag {
	if r == nil {
		return Default()
	}
	accept := strings.TrimSpace(r.Header.Get("Accept-Language"))
	if accept == "" {
		return Default()
	}
	tags, _, err := language.ParseAcceptLanguage(accept)
	if err != nil || len(tags) == 0 {
		return Default()
	}
	_, idx, _ := matcher.Match(tags...)
	return supported[idx]
}

// ForRequest returns a localizer and its language tag for r.
func ForRequest(r *http.Request) (*message.Printer, language.Tag) {
	tag := ResolveTag(r)
	return Printer(tag), tag
}

// T returns a translated string, or the key formatted with args when no
// localizer is available.
func T(loc Localizer, key message.Reference, args ...any) string {
	if loc != nil {
		return loc.Sprintf(key, args...)
	}
	keyString, ok := key.(string)
	if !ok {
		return ""
	}
	if len(args) > 0 {
		return fmt.Sprintf(keyString, args...)
	}
	return keyString
}

// Money formats amount in the ISO currency code using that currency's
// standard number of decimals, e.g. "RWF 150,000" or "USD 1,250.00".
func Money(p *message.Printer, amount decimal.Decimal, code string) string {
	if p == nil {
		p = Printer(Default())
	}
	unit, err := currency.ParseISO(strings.ToUpper(strings.TrimSpace(code)))
	if err != nil {
		unit = currency.USD
	}
	scale, _ := currency.Standard.Rounding(unit)
	value := amount.Round(int32(scale)).InexactFloat64()
	return p.Sprintf("%s %v", unit.String(), number.Decimal(value, number.Scale(scale)))
}

// Count formats an integer with grouping separators.
func Count(p *message.Printer, n int64) string {
	if p == nil {
		p = Printer(Default())
	}
	return p.Sprintf("%v", number.Decimal(n))
}
