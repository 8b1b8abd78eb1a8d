package chart

import (
	"math"
	"time"

	"ebichart/internal"
	"ebichart/internal/common"
)

const xTickCount = 10

type Margin struct {
	Left, Right, Top, Bottom float64
}

// DefaultMargin and the 800x500 outer size match the original chart area.
var DefaultMargin = Margin{Left: 50, Right: 100, Top: 50, Bottom: 100}

// Point is a path vertex in plot coordinates. Move starts a new segment.
type Point struct {
	X, Y float64
	Move bool
}

// Tick is an axis tick. X ticks carry Time, Y ticks carry Value.
type Tick struct {
	Pos   float64
	Label string
	Time  time.Time
	Value float64
}

// Scene describes everything drawn for one view. It holds no references
// to the window and can be drawn or exported any number of times.
type Scene struct {
	Empty   bool
	Coin    string
	Metric  internal.Metric
	YLabel  string
	Records []internal.Record
	X       TimeScale
	Y       LinearScale
	Path    []Point
	XTicks  []Tick
	YTicks  []Tick
}

// Chart owns the plot geometry. Its scale ranges never change; every
// render resets the domains from the filtered records.
type Chart struct {
	Margin     Margin
	Width      float64
	Height     float64
	YTickCount int

	x TimeScale
	y LinearScale
}

// New builds a chart for an outer area of outerW x outerH.
func New(outerW, outerH float64, m Margin, yTicks int) *Chart {
	if yTicks <= 0 {
		yTicks = common.DefaultYTicks
	}
	w := outerW - m.Left - m.Right
	h := outerH - m.Top - m.Bottom
	return &Chart{
		Margin:     m,
		Width:      w,
		Height:     h,
		YTickCount: yTicks,
		x:          NewTimeScale(0, w),
		y:          NewLinearScale(h, 0),
	}
}

func Default() *Chart {
	return New(800, 500, DefaultMargin, common.DefaultYTicks)
}

// Render is a pure function of ds and v. An unknown coin or a selection
// with no plottable values gives an Empty scene.
func (c *Chart) Render(ds internal.Dataset, v ViewState) Scene {
	filtered := Filter(ds[v.Coin], v.Start, v.End)

	x0, x1, okX := XDomain(filtered)
	y0, y1, okY := YDomain(filtered, v.Metric)
	if !okX || !okY {
		return Scene{
			Empty:  true,
			Coin:   v.Coin,
			Metric: v.Metric,
			YLabel: v.Metric.Label(),
			X:      c.x,
			Y:      c.y,
		}
	}
	return c.project(v.Coin, v.Metric, filtered, [2]time.Time{x0, x1}, [2]float64{y0, y1})
}

// Tween blends from into to at eased progress t in [0, 1]. Domains are
// interpolated and the target records re-projected, so the axes and the
// line move together.
func (c *Chart) Tween(from, to Scene, t float64) Scene {
	if t >= 1 || from.Empty || to.Empty {
		return to
	}
	if t <= 0 {
		t = 0
	}

	fx0, fx1 := from.X.Domain()
	tx0, tx1 := to.X.Domain()
	fy0, fy1 := from.Y.Domain()
	ty0, ty1 := to.Y.Domain()

	xd := [2]time.Time{lerpTime(fx0, tx0, t), lerpTime(fx1, tx1, t)}
	yd := [2]float64{lerp(fy0, ty0, t), lerp(fy1, ty1, t)}
	return c.project(to.Coin, to.Metric, to.Records, xd, yd)
}

func (c *Chart) project(coin string, m internal.Metric, records []internal.Record, xd [2]time.Time, yd [2]float64) Scene {
	x := c.x.WithDomain(xd[0], xd[1])
	y := c.y.WithDomain(yd[0], yd[1])

	s := Scene{
		Coin:    coin,
		Metric:  m,
		YLabel:  m.Label(),
		Records: records,
		X:       x,
		Y:       y,
		Path:    make([]Point, 0, len(records)),
	}

	gap := true
	for _, r := range records {
		v := m.Value(r)
		if math.IsNaN(v) {
			gap = true
			continue
		}
		s.Path = append(s.Path, Point{X: x.Scale(r.Date), Y: y.Scale(v), Move: gap})
		gap = false
	}

	for _, t := range x.Ticks(xTickCount) {
		s.XTicks = append(s.XTicks, Tick{Pos: x.Scale(t), Label: FormatTick(t), Time: t})
	}
	step := y.TickStep(c.YTickCount)
	for _, v := range y.Ticks(c.YTickCount) {
		s.YTicks = append(s.YTicks, Tick{Pos: y.Scale(v), Label: formatTickValue(v, step), Value: v})
	}
	return s
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

func lerpTime(a, b time.Time, t float64) time.Time {
	return a.Add(time.Duration(float64(b.Sub(a)) * t))
}
