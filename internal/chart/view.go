package chart

import (
	"fmt"
	"time"

	"ebichart/internal"
)

// ViewState is everything the controls can change. Renders read only this.
type ViewState struct {
	Coin   string
	Metric internal.Metric
	Start  time.Time
	End    time.Time
}

// NewView selects coin and metric over the full span of the dataset.
func NewView(ds internal.Dataset, coin string, metric internal.Metric) ViewState {
	start, end, _ := ds.Span()
	return ViewState{Coin: coin, Metric: metric, Start: start, End: end}
}

func (v ViewState) WithCoin(coin string) ViewState {
	v.Coin = coin
	return v
}

func (v ViewState) WithMetric(m internal.Metric) ViewState {
	v.Metric = m
	return v
}

func (v ViewState) WithRange(start, end time.Time) ViewState {
	v.Start, v.End = start, end
	return v
}

// Validate reports whether the coin exists in ds and the metric is known.
func (v ViewState) Validate(ds internal.Dataset) error {
	if _, ok := ds[v.Coin]; !ok {
		return fmt.Errorf("%w: %q", internal.ErrUnknownCoin, v.Coin)
	}
	if _, err := internal.ParseMetric(string(v.Metric)); err != nil {
		return err
	}
	return nil
}

func (v ViewState) File() internal.ViewFile {
	return internal.ViewFile{Coin: v.Coin, Metric: v.Metric, Start: v.Start, End: v.End}
}

// ViewFromFile restores a saved selection; zero dates fall back to fallback's.
func ViewFromFile(f internal.ViewFile, fallback ViewState) ViewState {
	v := fallback
	if f.Coin != "" {
		v.Coin = f.Coin
	}
	if f.Metric != "" {
		v.Metric = f.Metric
	}
	if !f.Start.IsZero() {
		v.Start = f.Start
	}
	if !f.End.IsZero() {
		v.End = f.End
	}
	return v
}
