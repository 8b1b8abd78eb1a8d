package chart

import (
	"math"
	"time"
)

type timeUnit int

const (
	unitDay timeUnit = iota
	unitWeek
	unitMonth
	unitYear
)

const day = 24 * time.Hour

type timeInterval struct {
	unit   timeUnit
	step   int
	approx time.Duration
}

var timeIntervals = []timeInterval{
	{unitDay, 1, day},
	{unitDay, 2, 2 * day},
	{unitWeek, 1, 7 * day},
	{unitMonth, 1, 30 * day},
	{unitMonth, 3, 90 * day},
	{unitYear, 1, 365 * day},
}

// chooseInterval picks the interval whose length is closest (by ratio) to
// span/count. Spans beyond the table use a nice multiple of years.
func chooseInterval(lo, hi time.Time, count int) timeInterval {
	target := hi.Sub(lo) / time.Duration(count)

	i := 0
	for i < len(timeIntervals) && timeIntervals[i].approx <= target {
		i++
	}
	switch {
	case i == 0:
		return timeIntervals[0]
	case i == len(timeIntervals):
		years := tickStep(yearsOf(lo), yearsOf(hi), count)
		step := int(math.Max(1, math.Round(years)))
		return timeInterval{unitYear, step, time.Duration(step) * 365 * day}
	}

	prev, next := timeIntervals[i-1], timeIntervals[i]
	if float64(target)/float64(prev.approx) < float64(next.approx)/float64(target) {
		return prev
	}
	return next
}

func yearsOf(t time.Time) float64 {
	return float64(t.Year()) + float64(t.YearDay()-1)/365
}

func (iv timeInterval) ticks(lo, hi time.Time) []time.Time {
	var ticks []time.Time
	for t := iv.floor(lo); !t.After(hi); t = iv.next(t) {
		if !t.Before(lo) && iv.accept(t) {
			ticks = append(ticks, t)
		}
	}
	return ticks
}

func (iv timeInterval) floor(t time.Time) time.Time {
	y, m, d := t.Date()
	switch iv.unit {
	case unitWeek:
		midnight := time.Date(y, m, d, 0, 0, 0, 0, t.Location())
		return midnight.AddDate(0, 0, -int(midnight.Weekday()))
	case unitMonth:
		return time.Date(y, m, 1, 0, 0, 0, 0, t.Location())
	case unitYear:
		return time.Date(y, time.January, 1, 0, 0, 0, 0, t.Location())
	}
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func (iv timeInterval) next(t time.Time) time.Time {
	switch iv.unit {
	case unitWeek:
		return t.AddDate(0, 0, 7)
	case unitMonth:
		return t.AddDate(0, 1, 0)
	case unitYear:
		return t.AddDate(1, 0, 0)
	}
	return t.AddDate(0, 0, 1)
}

// accept keeps every step-th boundary, counted from the start of the parent period.
func (iv timeInterval) accept(t time.Time) bool {
	switch iv.unit {
	case unitDay:
		return (t.Day()-1)%iv.step == 0
	case unitMonth:
		return (int(t.Month())-1)%iv.step == 0
	case unitYear:
		return t.Year()%iv.step == 0
	}
	return true
}

// FormatTick labels a tick by the coarsest boundary it sits on.
func FormatTick(t time.Time) string {
	switch {
	case t.Month() == time.January && t.Day() == 1:
		return t.Format("2006")
	case t.Day() == 1:
		return t.Format("January")
	}
	return t.Format("Jan 02")
}
