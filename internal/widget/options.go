package widget

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"ebichart/internal"
)

// CoinOptions labels coin ids for display: "bitcoin_cash" -> "Bitcoin Cash".
func CoinOptions(coins []string) []Option {
	opts := make([]Option, 0, len(coins))
	for _, c := range coins {
		words := strings.FieldsFunc(c, func(r rune) bool { return r == '_' || r == '-' })
		for i, w := range words {
			r, size := utf8.DecodeRuneInString(w)
			words[i] = string(unicode.ToUpper(r)) + w[size:]
		}
		opts = append(opts, Option{Value: c, Label: strings.Join(words, " ")})
	}
	return opts
}

func MetricOptions() []Option {
	opts := make([]Option, 0, len(internal.Metrics))
	for _, m := range internal.Metrics {
		opts = append(opts, Option{Value: string(m), Label: m.Label()})
	}
	return opts
}
