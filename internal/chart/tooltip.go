package chart

import (
	"math"
	"sort"
	"time"

	"ebichart/internal"
)

type TooltipState int

const (
	Hidden TooltipState = iota
	Visible
)

// Segment is a guide line in plot coordinates.
type Segment struct {
	X1, Y1, X2, Y2 float64
}

// Tooltip follows the pointer over the plot and snaps to the nearest record.
type Tooltip struct {
	State  TooltipState
	Index  int
	Record internal.Record
	Marker Point
	Label  string
	XGuide Segment
	YGuide Segment
}

// Enter shows the tooltip unless the scene has nothing to point at.
func (t *Tooltip) Enter(s Scene) {
	if s.Empty {
		t.State = Hidden
		return
	}
	t.State = Visible
}

func (t *Tooltip) Leave() {
	t.State = Hidden
}

// Move snaps to the record nearest the date under plot x coordinate px and
// reports whether the tooltip is visible afterwards.
func (t *Tooltip) Move(s Scene, px float64) bool {
	if s.Empty {
		t.State = Hidden
		return false
	}
	i, ok := Nearest(s.Records, s.X.Invert(px))
	if !ok {
		t.State = Hidden
		return false
	}

	r := s.Records[i]
	v := s.Metric.Value(r)
	if math.IsNaN(v) {
		t.State = Hidden
		return false
	}

	mx, my := s.X.Scale(r.Date), s.Y.Scale(v)
	bottom, _ := s.Y.Range()

	t.State = Visible
	t.Index = i
	t.Record = r
	t.Marker = Point{X: mx, Y: my}
	t.Label = FormatValue(v)
	t.XGuide = Segment{X1: mx, Y1: my, X2: mx, Y2: bottom}
	t.YGuide = Segment{X1: mx, Y1: my, X2: 0, Y2: my}
	return true
}

// Nearest returns the index of the record closest in date to at. Dates at
// or beyond either end resolve to that end; an exact midpoint resolves to
// the later record.
func Nearest(records []internal.Record, at time.Time) (int, bool) {
	n := len(records)
	if n == 0 {
		return 0, false
	}
	if !at.After(records[0].Date) {
		return 0, true
	}
	if !at.Before(records[n-1].Date) {
		return n - 1, true
	}

	// bisect-left over [1, n)
	i := 1 + sort.Search(n-1, func(k int) bool { return !records[k+1].Date.Before(at) })
	d0, d1 := records[i-1], records[i]
	if at.Sub(d0.Date) >= d1.Date.Sub(at) {
		return i, true
	}
	return i - 1, true
}
