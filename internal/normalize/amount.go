// Package normalize converts loosely-structured stored or form input into
// the canonical records of the model package. Stored partitions evolved
// over time: amounts may be strings with currency symbols, field names
// have legacy spellings, and lists may be missing entirely. Everything
// numeric funnels through ParseAmount so every caller tolerates the same
// input the forms produce.
package normalize

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// ParseAmount coerces a raw JSON value into a non-negative float64 amount.
// Numbers pass through; strings are stripped of every character that is
// not a digit, '.' or '-' (currency symbols, thousands separators) and
// parsed exactly. Anything unparseable or non-finite is 0. This is the
// single amount-parsing path for the whole ledger.
func ParseAmount(v any) float64 {
	return finite(parseSigned(v))
}

// ParseSigned is ParseAmount without the non-negative clamp, for fields
// where a negative figure is meaningful (none of the stored records need
// one today, but derived savings math does).
func ParseSigned(v any) float64 {
	f := parseSigned(v)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

func parseSigned(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int64:
		return float64(n)
	case string:
		cleaned := stripAmount(n)
		if cleaned == "" || cleaned == "-" || cleaned == "." {
			return 0
		}
		d, err := decimal.NewFromString(cleaned)
		if err != nil {
			return 0
		}
		return d.InexactFloat64()
	default:
		return 0
	}
}

func stripAmount(s string) string {
	var b strings.Builder
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == '.' || r == '-' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func finite(f float64) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) || f < 0 {
		return 0
	}
	return f
}
