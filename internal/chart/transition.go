package chart

import "time"

// Transition animates between two scenes over Duration with cubic in-out easing.
type Transition struct {
	From     Scene
	To       Scene
	Start    time.Time
	Duration time.Duration
}

func NewTransition(from, to Scene, start time.Time, d time.Duration) Transition {
	return Transition{From: from, To: to, Start: start, Duration: d}
}

// Progress returns the eased progress at now, clamped to [0, 1].
func (tr Transition) Progress(now time.Time) float64 {
	if tr.Duration <= 0 {
		return 1
	}
	t := float64(now.Sub(tr.Start)) / float64(tr.Duration)
	switch {
	case t <= 0:
		return 0
	case t >= 1:
		return 1
	}
	return EaseCubicInOut(t)
}

func (tr Transition) Done(now time.Time) bool {
	return tr.Progress(now) >= 1
}

// Frame is the scene to draw at now.
func (c *Chart) Frame(tr Transition, now time.Time) Scene {
	return c.Tween(tr.From, tr.To, tr.Progress(now))
}

func EaseCubicInOut(t float64) float64 {
	t *= 2
	if t <= 1 {
		return t * t * t / 2
	}
	t -= 2
	return (t*t*t + 2) / 2
}
