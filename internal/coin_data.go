package internal

import (
	"fmt"
	"math"
	"sort"
	"time"
)

// Record is one day's metrics for one coin. Missing metrics are NaN.
type Record struct {
	Date      time.Time `json:"date"`
	PriceUSD  float64   `json:"price_usd"`
	MarketCap float64   `json:"market_cap"`
	Volume24h float64   `json:"24h_vol"`
}

// Dataset maps a coin id to its records in ascending date order.
type Dataset map[string][]Record

type Metric string

const (
	PriceUSD  Metric = "price_usd"
	MarketCap Metric = "market_cap"
	Volume24h Metric = "24h_vol"
)

// Metrics lists the selectable metrics in menu order.
var Metrics = []Metric{PriceUSD, MarketCap, Volume24h}

var metricLabels = map[Metric]string{
	PriceUSD:  "Price USD ($)",
	MarketCap: "Market Capitalization ($)",
	Volume24h: "24 Hour Trading Volume ($)",
}

func ParseMetric(s string) (Metric, error) {
	m := Metric(s)
	if _, ok := metricLabels[m]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownMetric, s)
	}
	return m, nil
}

// Label is the human readable name, used verbatim as the y-axis title.
func (m Metric) Label() string {
	if l, ok := metricLabels[m]; ok {
		return l
	}
	return string(m)
}

func (m Metric) Value(r Record) float64 {
	switch m {
	case PriceUSD:
		return r.PriceUSD
	case MarketCap:
		return r.MarketCap
	case Volume24h:
		return r.Volume24h
	}
	return math.NaN()
}

// Coins returns the coin ids in sorted order.
func (d Dataset) Coins() []string {
	coins := make([]string, 0, len(d))
	for c := range d {
		coins = append(coins, c)
	}
	sort.Strings(coins)
	return coins
}

// Span returns the earliest and latest date across every coin.
func (d Dataset) Span() (first, last time.Time, ok bool) {
	for _, records := range d {
		if len(records) == 0 {
			continue
		}
		lo, hi := records[0].Date, records[len(records)-1].Date
		if !ok || lo.Before(first) {
			first = lo
		}
		if !ok || hi.After(last) {
			last = hi
		}
		ok = true
	}
	return first, last, ok
}
