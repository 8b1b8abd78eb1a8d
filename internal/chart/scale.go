package chart

import (
	"math"
	"time"
)

// TimeScale maps a date domain onto a pixel range. The range is fixed at
// construction; WithDomain returns a copy with a new domain.
type TimeScale struct {
	d0, d1 time.Time
	r0, r1 float64
}

func NewTimeScale(r0, r1 float64) TimeScale {
	return TimeScale{r0: r0, r1: r1}
}

func (s TimeScale) WithDomain(d0, d1 time.Time) TimeScale {
	s.d0, s.d1 = d0, d1
	return s
}

func (s TimeScale) Domain() (time.Time, time.Time) { return s.d0, s.d1 }

func (s TimeScale) Range() (float64, float64) { return s.r0, s.r1 }

// Scale maps t to pixels. A zero-width domain maps to the middle of the range.
func (s TimeScale) Scale(t time.Time) float64 {
	span := s.d1.Sub(s.d0)
	if span == 0 {
		return (s.r0 + s.r1) / 2
	}
	f := float64(t.Sub(s.d0)) / float64(span)
	return s.r0 + f*(s.r1-s.r0)
}

func (s TimeScale) Invert(px float64) time.Time {
	if s.r0 == s.r1 {
		return s.d0
	}
	f := (px - s.r0) / (s.r1 - s.r0)
	return s.d0.Add(time.Duration(math.Round(f * float64(s.d1.Sub(s.d0)))))
}

// Ticks returns about count boundary-aligned dates inside the domain.
func (s TimeScale) Ticks(count int) []time.Time {
	lo, hi := s.d0, s.d1
	if hi.Before(lo) {
		lo, hi = hi, lo
	}
	if count <= 0 || (lo.IsZero() && hi.IsZero()) {
		return nil
	}
	return chooseInterval(lo, hi, count).ticks(lo, hi)
}

// LinearScale maps a numeric domain onto a pixel range.
type LinearScale struct {
	d0, d1 float64
	r0, r1 float64
}

func NewLinearScale(r0, r1 float64) LinearScale {
	return LinearScale{r0: r0, r1: r1}
}

func (s LinearScale) WithDomain(d0, d1 float64) LinearScale {
	s.d0, s.d1 = d0, d1
	return s
}

func (s LinearScale) Domain() (float64, float64) { return s.d0, s.d1 }

func (s LinearScale) Range() (float64, float64) { return s.r0, s.r1 }

func (s LinearScale) Scale(v float64) float64 {
	if s.d0 == s.d1 {
		return (s.r0 + s.r1) / 2
	}
	return s.r0 + (v-s.d0)/(s.d1-s.d0)*(s.r1-s.r0)
}

func (s LinearScale) Invert(px float64) float64 {
	if s.r0 == s.r1 {
		return s.d0
	}
	return s.d0 + (px-s.r0)/(s.r1-s.r0)*(s.d1-s.d0)
}

// TickStep is the 1, 2 or 5 x 10^k spacing used by Ticks.
func (s LinearScale) TickStep(count int) float64 {
	lo, hi := s.d0, s.d1
	if hi < lo {
		lo, hi = hi, lo
	}
	return tickStep(lo, hi, count)
}

func (s LinearScale) Ticks(count int) []float64 {
	lo, hi := s.d0, s.d1
	if hi < lo {
		lo, hi = hi, lo
	}
	if count <= 0 || math.IsNaN(lo) || math.IsNaN(hi) {
		return nil
	}
	if lo == hi {
		return []float64{lo}
	}

	step := tickStep(lo, hi, count)
	i0, i1 := math.Ceil(lo/step), math.Floor(hi/step)
	ticks := make([]float64, 0, int(i1-i0)+1)
	for i := i0; i <= i1; i++ {
		ticks = append(ticks, i*step)
	}
	return ticks
}

var (
	e10 = math.Sqrt(50)
	e5  = math.Sqrt(10)
	e2  = math.Sqrt(2)
)

func tickStep(lo, hi float64, count int) float64 {
	if count <= 0 || hi <= lo {
		return 0
	}
	raw := (hi - lo) / float64(count)
	power := math.Floor(math.Log10(raw))
	unit := math.Pow(10, power)
	err := raw / unit

	factor := 1.0
	switch {
	case err >= e10:
		factor = 10
	case err >= e5:
		factor = 5
	case err >= e2:
		factor = 2
	}
	return factor * unit
}
