// Package format converts base-unit token amounts to display values. It is the
// only place where amounts leave exact integer arithmetic.
package format

import (
	"math/big"
	"strings"

	"github.com/shopspring/decimal"
)

// FromBaseUnits scales a base-unit integer down by the token's display
// decimals. A nil amount is treated as zero.
func FromBaseUnits(v *big.Int, decimals int32) decimal.Decimal {
	if v == nil {
		return decimal.Zero
	}
	return decimal.NewFromBigInt(v, -decimals)
}

// WithThousands renders d with a fixed number of decimal places and comma
// thousands separators, e.g. 1234567.8915 -> "1,234,567.8915".
func WithThousands(d decimal.Decimal, places int32) string {
	s := d.StringFixed(places)

	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	intPart := s
	fracPart := ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, fracPart = s[:i], s[i:]
	}

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	b.WriteString(fracPart)
	return b.String()
}
