package chart

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// FormatValue renders a metric value with thousands separators and at most
// two decimals.
func FormatValue(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "n/a"
	}
	return groupThousands(decimal.NewFromFloat(v).Round(2).String())
}

// formatTickValue prints v with just enough decimals to tell ticks step apart.
func formatTickValue(v, step float64) string {
	places := int32(0)
	if step > 0 && step < 1 {
		places = int32(math.Ceil(-math.Log10(step)))
	}
	return groupThousands(decimal.NewFromFloat(v).StringFixed(places))
}

func groupThousands(s string) string {
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	intPart, frac := s, ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, frac = s[:i], s[i:]
	}
	if len(intPart) <= 3 {
		return sign + intPart + frac
	}

	var b strings.Builder
	head := len(intPart) % 3
	if head > 0 {
		b.WriteString(intPart[:head])
	}
	for i := head; i < len(intPart); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(intPart[i : i+3])
	}
	return sign + b.String() + frac
}
