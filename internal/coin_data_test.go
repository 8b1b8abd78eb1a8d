package internal

import (
	"errors"
	"math"
	"reflect"
	"testing"
)

func TestParseMetric(t *testing.T) {
	for _, m := range Metrics {
		got, err := ParseMetric(string(m))
		if err != nil || got != m {
			t.Errorf("ParseMetric(%q) = %q, %v", m, got, err)
		}
	}
	if _, err := ParseMetric("volume"); !errors.Is(err, ErrUnknownMetric) {
		t.Errorf("err = %v, want ErrUnknownMetric", err)
	}
}

func TestMetricValueAndLabel(t *testing.T) {
	r := Record{PriceUSD: 1, MarketCap: 2, Volume24h: 3}
	tests := []struct {
		m     Metric
		value float64
		label string
	}{
		{PriceUSD, 1, "Price USD ($)"},
		{MarketCap, 2, "Market Capitalization ($)"},
		{Volume24h, 3, "24 Hour Trading Volume ($)"},
	}
	for _, tt := range tests {
		if got := tt.m.Value(r); got != tt.value {
			t.Errorf("%s value = %v", tt.m, got)
		}
		if got := tt.m.Label(); got != tt.label {
			t.Errorf("%s label = %q", tt.m, got)
		}
	}
	if !math.IsNaN(Metric("x").Value(r)) {
		t.Error("unknown metric should be NaN")
	}
}

func TestDatasetCoinsAndSpan(t *testing.T) {
	ds := Dataset{
		"ethereum": {{Date: day(3)}, {Date: day(9)}},
		"bitcoin":  {{Date: day(1)}, {Date: day(5)}},
		"empty":    nil,
	}
	if got := ds.Coins(); !reflect.DeepEqual(got, []string{"bitcoin", "empty", "ethereum"}) {
		t.Errorf("Coins = %v", got)
	}
	first, last, ok := ds.Span()
	if !ok || !first.Equal(day(1)) || !last.Equal(day(9)) {
		t.Errorf("Span = %v %v %v", first, last, ok)
	}
	if _, _, ok := (Dataset{}).Span(); ok {
		t.Error("empty dataset has no span")
	}
}
