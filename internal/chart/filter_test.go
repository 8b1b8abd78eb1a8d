package chart

import (
	"testing"
	"time"

	"ebichart/internal"
)

func week() []internal.Record {
	records := make([]internal.Record, 7)
	for i := range records {
		records[i] = internal.Record{Date: jan(i + 1), PriceUSD: float64(i + 1)}
	}
	return records
}

func TestFilter(t *testing.T) {
	records := week()
	tests := []struct {
		name       string
		start, end time.Time
		want       []float64
	}{
		{"full span", jan(1), jan(7), []float64{1, 2, 3, 4, 5, 6, 7}},
		{"inclusive bounds", jan(2), jan(4), []float64{2, 3, 4}},
		{"bounds between records", jan(2).Add(time.Hour), jan(4).Add(time.Hour), []float64{3, 4}},
		{"wider than data", jan(1).AddDate(0, 0, -30), jan(30), []float64{1, 2, 3, 4, 5, 6, 7}},
		{"single day", jan(5), jan(5), []float64{5}},
		{"before data", jan(1).AddDate(-1, 0, 0), jan(1).AddDate(0, 0, -1), nil},
		{"after data", jan(8), jan(9), nil},
		{"inverted", jan(5), jan(2), nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filter(records, tt.start, tt.end)
			if len(got) != len(tt.want) {
				t.Fatalf("got %d records, want %d", len(got), len(tt.want))
			}
			for i := range got {
				if got[i].PriceUSD != tt.want[i] {
					t.Errorf("record %d = %v, want %v", i, got[i].PriceUSD, tt.want[i])
				}
			}
		})
	}
}

func TestFilterDoesNotAlias(t *testing.T) {
	records := week()
	got := Filter(records, jan(2), jan(3))
	_ = append(got, internal.Record{PriceUSD: -1})
	if records[3].PriceUSD != 4 {
		t.Error("append to filtered slice overwrote the source")
	}
}

func TestDomains(t *testing.T) {
	records := []internal.Record{
		{Date: jan(3), PriceUSD: 5},
		{Date: jan(1), PriceUSD: 50},
		{Date: jan(2), PriceUSD: 20},
	}
	lo, hi, ok := XDomain(records)
	if !ok || !lo.Equal(jan(1)) || !hi.Equal(jan(3)) {
		t.Errorf("x domain = %v %v %v", lo, hi, ok)
	}
	y0, y1, ok := YDomain(records, internal.PriceUSD)
	if !ok || !almost(y0, 5/YPadding) || !almost(y1, 50*YPadding) {
		t.Errorf("y domain = %v %v %v", y0, y1, ok)
	}
	if _, _, ok := XDomain(nil); ok {
		t.Error("empty x domain")
	}
	if _, _, ok := YDomain(nil, internal.PriceUSD); ok {
		t.Error("empty y domain")
	}
}
