package chart

import (
	"testing"
	"time"

	"ebichart/internal"
)

func TestNearest(t *testing.T) {
	records := []internal.Record{{Date: jan(1)}, {Date: jan(3)}, {Date: jan(5)}}

	tests := []struct {
		name string
		at   time.Time
		want int
	}{
		{"before first", jan(1).AddDate(0, 0, -3), 0},
		{"on first", jan(1), 0},
		{"closer to earlier", jan(1).Add(23 * time.Hour), 0},
		{"closer to later", jan(2).Add(time.Hour), 1},
		{"midpoint picks later", jan(2), 1},
		{"on middle", jan(3), 1},
		{"second midpoint", jan(4), 2},
		{"on last", jan(5), 2},
		{"after last", jan(9), 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Nearest(records, tt.at)
			if !ok || got != tt.want {
				t.Errorf("Nearest(%v) = %d, %v; want %d", tt.at, got, ok, tt.want)
			}
		})
	}

	if _, ok := Nearest(nil, jan(1)); ok {
		t.Error("empty records have no nearest")
	}
	if got, ok := Nearest(records[:1], jan(9)); !ok || got != 0 {
		t.Errorf("single record = %d, %v", got, ok)
	}
}

func TestTooltipFollowsCurrentScene(t *testing.T) {
	c := Default()
	ds := sampleDataset()
	v := NewView(ds, "bitcoin", internal.PriceUSD)

	var tip Tooltip
	first := c.Render(ds, v)
	tip.Enter(first)
	tip.Move(first, c.Width)
	if tip.Record.PriceUSD != 150 {
		t.Fatalf("snapped to %+v", tip.Record)
	}

	// After a coin switch the same pointer resolves against the new records.
	second := c.Render(ds, v.WithCoin("ethereum"))
	tip.Move(second, c.Width)
	if tip.Record.PriceUSD != 10 || tip.Label != "10" {
		t.Errorf("snapped to %+v (%q)", tip.Record, tip.Label)
	}
}
