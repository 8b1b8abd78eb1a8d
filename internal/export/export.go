// Package export renders a chart scene to a static SVG or PNG.
package export

import (
	"fmt"
	"io"
	"math"
	"strings"
	"time"

	"ebichart/internal"
	"ebichart/internal/chart"
	"ebichart/internal/common"
	"ebichart/internal/util"

	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

type Format string

const (
	SVG Format = "svg"
	PNG Format = "png"
)

func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case SVG, PNG:
		return f, nil
	}
	return "", fmt.Errorf("unsupported export format %q, use svg or png", s)
}

// Render draws view of ds on an 800x500 chart and writes it to w. Only the
// chart goes to w; progress is reported through logger.
func Render(w io.Writer, ds internal.Dataset, view chart.ViewState, yTicks int, f Format, logger *util.Logger) error {
	if logger == nil {
		logger = util.NewLogger()
	}
	c := chart.New(800, 500, chart.DefaultMargin, yTicks)
	scene := c.Render(ds, view)

	if err := Write(w, c, scene, f); err != nil {
		logger.Error(err, common.ErrCodeExportFailed, common.ErrMsgExportFailed, "Export failed", "coin", view.Coin, "metric", string(view.Metric))
		return err
	}
	logger.Info("Chart exported", "coin", view.Coin, "metric", string(view.Metric), "records", len(scene.Records), "format", string(f))
	return nil
}

// Write draws s with the geometry of c. Only finite values are plotted.
func Write(w io.Writer, c *chart.Chart, s chart.Scene, f Format) error {
	if s.Empty {
		return internal.ErrEmptySelection
	}

	var xs []time.Time
	var ys []float64
	for _, r := range s.Records {
		v := s.Metric.Value(r)
		if math.IsNaN(v) {
			continue
		}
		xs = append(xs, r.Date)
		ys = append(ys, v)
	}

	x0, x1 := s.X.Domain()
	if x0.Equal(x1) {
		// go-chart refuses a zero-width range.
		x0, x1 = x0.Add(-12*time.Hour), x1.Add(12*time.Hour)
	}
	y0, y1 := s.Y.Domain()
	if y0 == y1 {
		y0, y1 = y0-1, y1+1
	}

	xTicks := make([]gochart.Tick, 0, len(s.XTicks))
	for _, tk := range s.XTicks {
		xTicks = append(xTicks, gochart.Tick{Value: gochart.TimeToFloat64(tk.Time), Label: tk.Label})
	}
	yTicks := make([]gochart.Tick, 0, len(s.YTicks))
	for _, tk := range s.YTicks {
		yTicks = append(yTicks, gochart.Tick{Value: tk.Value, Label: tk.Label})
	}

	m := c.Margin
	graph := gochart.Chart{
		Width:  int(c.Width + m.Left + m.Right),
		Height: int(c.Height + m.Top + m.Bottom),
		Background: gochart.Style{
			Padding: gochart.Box{Top: int(m.Top), Left: int(m.Left), Right: int(m.Right), Bottom: int(m.Bottom)},
		},
		XAxis: gochart.XAxis{
			Range: &gochart.ContinuousRange{Min: gochart.TimeToFloat64(x0), Max: gochart.TimeToFloat64(x1)},
			Ticks: xTicks,
		},
		YAxis: gochart.YAxis{
			Name:  s.YLabel,
			Range: &gochart.ContinuousRange{Min: y0, Max: y1},
			Ticks: yTicks,
		},
		Series: []gochart.Series{
			gochart.TimeSeries{
				Name:    s.Coin,
				XValues: xs,
				YValues: ys,
				Style: gochart.Style{
					StrokeColor: drawing.ColorFromHex("808080"),
					StrokeWidth: 3,
				},
			},
		},
	}

	provider := gochart.SVG
	if f == PNG {
		provider = gochart.PNG
	}
	if err := graph.Render(provider, w); err != nil {
		return fmt.Errorf("render %s [%s]: %w", f, s.Coin, err)
	}
	return nil
}
