package ui

import (
	"fmt"
	"image/color"
	"math"

	"ebichart/internal/app"
	"ebichart/internal/chart"
	"ebichart/internal/widget"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/temidaradev/esset/v2"
)

// placeholderArea is where status messages go before a session exists.
var placeholderArea = app.PlotArea(chart.Default())

func (g *Game) initSolidColorImage() {
	if g.solidColorImage == nil {
		g.solidColorImage = ebiten.NewImage(1, 1)
		g.solidColorImage.Fill(color.White)
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.initSolidColorImage()

	screen.Fill(backgroundColor)

	g.mu.Lock()
	defer g.mu.Unlock()

	switch {
	case g.loading:
		g.drawMessage(screen, placeholderArea, "Loading coin data...", mutedColor)
	case g.loadErr != nil:
		g.drawMessage(screen, placeholderArea, fmt.Sprintf("Could not load data: %v", g.loadErr), errorColor)
	case g.session != nil:
		s := g.session
		g.drawScene(screen, s)
		g.drawSlider(screen, s.Slider)
		// Open lists go last so they cover the chart.
		g.drawSelect(screen, s.MetricSelect)
		g.drawSelect(screen, s.CoinSelect)
	}
}

func (g *Game) drawMessage(screen *ebiten.Image, r widget.Rect, message string, clr color.RGBA) {
	vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), plotColor, false)

	textWidth, textHeight := text.Measure(message, g.fontFace, 0)
	msgX := r.X + (r.W-textWidth)/2.0
	msgY := r.Y + (r.H-textHeight)/2.0
	esset.DrawText(screen, message, 0, msgX, msgY, g.fontFace, clr)
}

func (g *Game) drawScene(screen *ebiten.Image, s *app.Session) {
	scene := s.Current
	r := s.PlotRect()
	if scene.Empty {
		g.drawMessage(screen, r, "No data in the selected range.", mutedColor)
		g.drawYTitle(screen, r, scene.YLabel)
		return
	}

	vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), plotColor, false)

	g.drawAxes(screen, scene, r)
	g.drawYTitle(screen, r, scene.YLabel)
	g.drawPath(screen, scene.Path, r.X, r.Y)

	if s.Tooltip.State == chart.Visible {
		g.drawTooltip(screen, s.Tooltip, r.X, r.Y)
	}
}

func (g *Game) drawAxes(screen *ebiten.Image, s chart.Scene, r widget.Rect) {
	x0, y0 := float32(r.X), float32(r.Y)
	w, h := float32(r.W), float32(r.H)

	vector.StrokeLine(screen, x0, y0+h, x0+w, y0+h, 1, axisColor, false)
	for _, tk := range s.XTicks {
		x := x0 + float32(tk.Pos)
		vector.StrokeLine(screen, x, y0+h, x, y0+h+tickLength, 1, axisColor, false)
		tw, _ := text.Measure(tk.Label, g.fontFace, 0)
		esset.DrawText(screen, tk.Label, 0, float64(x)-tw/2, float64(y0+h)+tickLength+2, g.fontFace, axisColor)
	}

	vector.StrokeLine(screen, x0, y0, x0, y0+h, 1, axisColor, false)
	for _, tk := range s.YTicks {
		y := y0 + float32(tk.Pos)
		vector.StrokeLine(screen, x0-tickLength, y, x0, y, 1, axisColor, false)
		tw, th := text.Measure(tk.Label, g.fontFace, 0)
		esset.DrawText(screen, tk.Label, 0, float64(x0)-tickLength-3-tw, float64(y)-th/2, g.fontFace, axisColor)
	}
}

// drawYTitle writes the metric name rotated along the inside of the y axis.
func (g *Game) drawYTitle(screen *ebiten.Image, r widget.Rect, label string) {
	tw, _ := text.Measure(label, g.fontFace, 0)

	op := &text.DrawOptions{}
	op.GeoM.Rotate(-math.Pi / 2)
	op.GeoM.Translate(r.X+6, r.Y+tw+6)
	op.ColorScale.ScaleWithColor(titleColor)
	text.Draw(screen, label, g.fontFace, op)
}

func (g *Game) drawPath(screen *ebiten.Image, points []chart.Point, ox, oy float64) {
	if len(points) == 0 {
		return
	}
	path := &vector.Path{}
	for _, p := range points {
		x, y := float32(ox+p.X), float32(oy+p.Y)
		if p.Move {
			path.MoveTo(x, y)
		} else {
			path.LineTo(x, y)
		}
	}

	vs, is := path.AppendVerticesAndIndicesForStroke(nil, nil, &vector.StrokeOptions{
		Width:    pathWidth,
		LineJoin: vector.LineJoinRound,
	})

	op := &ebiten.DrawTrianglesOptions{}
	op.ColorM.Scale(0.75, 0.75, 0.75, 1)

	screen.DrawTriangles(vs, is, g.solidColorImage, op)

	// A lone point has no stroke to show.
	if len(points) == 1 {
		vector.DrawFilledCircle(screen, float32(ox+points[0].X), float32(oy+points[0].Y), pathWidth, axisColor, true)
	}
}

func (g *Game) drawTooltip(screen *ebiten.Image, t chart.Tooltip, ox, oy float64) {
	for _, seg := range []chart.Segment{t.XGuide, t.YGuide} {
		vector.StrokeLine(screen, float32(ox+seg.X1), float32(oy+seg.Y1), float32(ox+seg.X2), float32(oy+seg.Y2), 1, mutedColor, false)
	}

	mx, my := float32(ox+t.Marker.X), float32(oy+t.Marker.Y)
	vector.StrokeCircle(screen, mx, my, markerR, 2, markerColor, true)

	_, th := text.Measure(t.Label, g.fontFace, 0)
	esset.DrawText(screen, t.Label, 0, float64(mx)+labelOffset, float64(my)-th/2, g.fontFace, textColor)
}

func (g *Game) drawSelect(screen *ebiten.Image, s *widget.Select) {
	b := s.Bounds
	vector.DrawFilledRect(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), controlColor, false)
	vector.StrokeRect(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), 1, axisColor, false)

	_, th := text.Measure(s.Label(), g.fontFace, 0)
	esset.DrawText(screen, s.Label(), 0, b.X+6, b.Y+(b.H-th)/2, g.fontFace, textColor)
	esset.DrawText(screen, "v", 0, b.X+b.W-14, b.Y+(b.H-th)/2, g.fontFace, mutedColor)

	if !s.Open {
		return
	}
	mx, my := ebiten.CursorPosition()
	hover := s.OptionAt(float64(mx), float64(my))
	for i, opt := range s.Options {
		r := s.OptionRect(i)
		bg := controlColor
		if i == hover {
			bg = hoverColor
		}
		vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), bg, false)
		clr := textColor
		if i == s.Selected {
			clr = accentColor
		}
		esset.DrawText(screen, opt.Label, 0, r.X+6, r.Y+(r.H-th)/2, g.fontFace, clr)
	}
}

func (g *Game) drawSlider(screen *ebiten.Image, s *widget.RangeSlider) {
	b := s.Bounds
	vector.DrawFilledRect(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), controlColor, false)

	xs, xe := s.X(s.Start), s.X(s.End)
	vector.DrawFilledRect(screen, float32(xs), float32(b.Y), float32(xe-xs), float32(b.H), accentColor, false)
	for _, x := range []float64{xs, xe} {
		vector.DrawFilledRect(screen, float32(x-4), float32(b.Y-6), 8, float32(b.H+12), axisColor, false)
	}

	from, to := s.Labels()
	label := from + " - " + to
	tw, th := text.Measure(label, g.fontFace, 0)
	esset.DrawText(screen, label, 0, b.X+(b.W-tw)/2, b.Y-th-12, g.fontFace, textColor)
}
