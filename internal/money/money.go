// Package money formats minor-unit amounts for display in the supported
// currencies.
package money

import (
	"fmt"
	"strings"

	"github.com/ElisioMassango/chelevi-sub001/internal/domain"
)

// Format renders a minor-unit amount in the Portuguese-style decimal
// convention used by the storefront: thousands separated by '.', decimals by
// ','. Examples: Format(123456, "MZN") == "1.234,56 MT",
// Format(123456, "EUR") == "1.234,56 €".
func Format(minor int64, currency string) string {
	negative := minor < 0
	if negative {
		minor = -minor
	}

	whole := minor / 100
	cents := minor % 100

	grouped := groupThousands(whole)
	amount := fmt.Sprintf("%s,%02d", grouped, cents)
	if negative {
		amount = "-" + amount
	}

	switch currency {
	case domain.CurrencyEUR:
		return amount + " €"
	case domain.CurrencyMZN:
		return amount + " MT"
	default:
		return amount + " " + currency
	}
}

func groupThousands(n int64) string {
	s := fmt.Sprintf("%d", n)
	if len(s) <= 3 {
		return s
	}

	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}
