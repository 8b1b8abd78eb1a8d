package widget

import (
	"math"
	"time"

	"ebichart/internal/common"
)

type Handle int

const (
	NoHandle Handle = iota
	StartHandle
	EndHandle
)

// handleSlop widens the vertical hit area around the track.
const handleSlop = 8

// RangeSlider selects [Start, End] within [Min, Max] in whole Steps.
type RangeSlider struct {
	Bounds Rect
	Min    time.Time
	Max    time.Time
	Step   time.Duration
	Start  time.Time
	End    time.Time

	active Handle
}

func NewRangeSlider(bounds Rect, lo, hi time.Time, step time.Duration) *RangeSlider {
	if step <= 0 {
		step = 24 * time.Hour
	}
	return &RangeSlider{Bounds: bounds, Min: lo, Max: hi, Step: step, Start: lo, End: hi}
}

// X is the track position of t.
func (s *RangeSlider) X(t time.Time) float64 {
	span := s.Max.Sub(s.Min)
	if span <= 0 {
		return s.Bounds.X
	}
	f := float64(t.Sub(s.Min)) / float64(span)
	return s.Bounds.X + math.Max(0, math.Min(1, f))*s.Bounds.W
}

// At is the step-aligned value under track position x, clamped to [Min, Max].
func (s *RangeSlider) At(x float64) time.Time {
	if s.Bounds.W <= 0 {
		return s.Min
	}
	f := math.Max(0, math.Min(1, (x-s.Bounds.X)/s.Bounds.W))
	steps := math.Round(f * float64(s.Max.Sub(s.Min)) / float64(s.Step))
	t := s.Min.Add(time.Duration(steps) * s.Step)
	if t.After(s.Max) {
		return s.Max
	}
	return t
}

// Press grabs the handle nearest x when (x, y) is on the track and moves it
// there. It reports whether the range changed.
func (s *RangeSlider) Press(x, y float64) bool {
	hit := Rect{X: s.Bounds.X - handleSlop, Y: s.Bounds.Y - handleSlop, W: s.Bounds.W + 2*handleSlop, H: s.Bounds.H + 2*handleSlop}
	if !hit.Contains(x, y) {
		return false
	}
	xs, xe := s.X(s.Start), s.X(s.End)
	ds, de := math.Abs(x-xs), math.Abs(x-xe)
	if ds < de || (ds == de && x < xs) {
		s.active = StartHandle
	} else {
		s.active = EndHandle
	}
	return s.Drag(x)
}

// Drag moves the grabbed handle. Handles cannot cross.
func (s *RangeSlider) Drag(x float64) bool {
	v := s.At(x)
	switch s.active {
	case StartHandle:
		if v.After(s.End) {
			v = s.End
		}
		if v.Equal(s.Start) {
			return false
		}
		s.Start = v
	case EndHandle:
		if v.Before(s.Start) {
			v = s.Start
		}
		if v.Equal(s.End) {
			return false
		}
		s.End = v
	default:
		return false
	}
	return true
}

func (s *RangeSlider) Release() {
	s.active = NoHandle
}

func (s *RangeSlider) Active() Handle {
	return s.active
}

// SetRange clamps start and end into [Min, Max] and orders them.
func (s *RangeSlider) SetRange(start, end time.Time) {
	clamp := func(t time.Time) time.Time {
		if t.Before(s.Min) {
			return s.Min
		}
		if t.After(s.Max) {
			return s.Max
		}
		return t
	}
	start, end = clamp(start), clamp(end)
	if end.Before(start) {
		start, end = end, start
	}
	s.Start, s.End = start, end
}

// Labels are the two displayed dates.
func (s *RangeSlider) Labels() (string, string) {
	return s.Start.Format(common.DateLayout), s.End.Format(common.DateLayout)
}
