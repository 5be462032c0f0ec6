package export

import (
	"strings"

	"github.com/shopspring/decimal"
)

// euroString renders a monetary value with locale-style two-decimal grouping
// (1.234.567,89) for display in exported documents.
func euroString(v decimal.Decimal) string {
	fixed := v.StringFixed(2)

	negative := strings.HasPrefix(fixed, "-")
	fixed = strings.TrimPrefix(fixed, "-")

	intPart := fixed[:len(fixed)-3]
	fracPart := fixed[len(fixed)-2:]

	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}

	out := b.String() + "," + fracPart
	if negative {
		out = "-" + out
	}
	return out + " EUR"
}
