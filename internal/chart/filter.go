package chart

import (
	"math"
	"sort"
	"time"

	"ebichart/internal"
)

// YPadding keeps the extrema off the plot edges.
const YPadding = 1.005

// Filter returns the contiguous run of records with start <= date <= end.
// records must be in ascending date order. The result shares storage with
// records but cannot be appended into it.
func Filter(records []internal.Record, start, end time.Time) []internal.Record {
	if end.Before(start) {
		return nil
	}
	lo := sort.Search(len(records), func(i int) bool { return !records[i].Date.Before(start) })
	hi := sort.Search(len(records), func(i int) bool { return records[i].Date.After(end) })
	if lo >= hi {
		return nil
	}
	return records[lo:hi:hi]
}

// XDomain is the date extent of records.
func XDomain(records []internal.Record) (time.Time, time.Time, bool) {
	if len(records) == 0 {
		return time.Time{}, time.Time{}, false
	}
	lo, hi := records[0].Date, records[0].Date
	for _, r := range records[1:] {
		if r.Date.Before(lo) {
			lo = r.Date
		}
		if r.Date.After(hi) {
			hi = r.Date
		}
	}
	return lo, hi, true
}

// YDomain is [min/YPadding, max*YPadding] over the finite values of m.
func YDomain(records []internal.Record, m internal.Metric) (float64, float64, bool) {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, r := range records {
		v := m.Value(r)
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	if lo > hi {
		return 0, 0, false
	}
	return lo / YPadding, hi * YPadding, true
}
