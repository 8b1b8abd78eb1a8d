// Package app binds the controls, the view state and the chart together.
// It has no window dependency; package ui feeds it pointer input.
package app

import (
	"time"

	"ebichart/internal"
	"ebichart/internal/chart"
	"ebichart/internal/common"
	"ebichart/internal/config"
	"ebichart/internal/util"
	"ebichart/internal/widget"
)

// ChartTop is where the 800x500 chart area starts below the controls.
const ChartTop = 70.0

var (
	CoinSelectRect   = widget.Rect{X: 50, Y: 14, W: 150, H: 22}
	MetricSelectRect = widget.Rect{X: 215, Y: 14, W: 220, H: 22}
	SliderRect       = widget.Rect{X: 470, Y: 38, W: 280, H: 4}
)

// Session is the state of one loaded dataset on screen. Every control
// change replaces View and re-renders the whole chart.
type Session struct {
	Chart        *chart.Chart
	Dataset      internal.Dataset
	View         chart.ViewState
	Current      chart.Scene
	Transition   chart.Transition
	Tooltip      chart.Tooltip
	CoinSelect   *widget.Select
	MetricSelect *widget.Select
	Slider       *widget.RangeSlider

	hovering   bool
	transition time.Duration
	logger     *util.Logger
}

// New builds a session for a non-empty dataset. The initial view comes from
// the state file when it holds a valid view, otherwise from the config.
func New(ds internal.Dataset, cfg *config.Config, logger *util.Logger, now time.Time) *Session {
	if logger == nil {
		logger = util.NewLogger()
	}
	s := &Session{
		Chart:        chart.New(800, 500, chart.DefaultMargin, cfg.GetYTicks()),
		Dataset:      ds,
		CoinSelect:   widget.NewSelect(CoinSelectRect, widget.CoinOptions(ds.Coins())),
		MetricSelect: widget.NewSelect(MetricSelectRect, widget.MetricOptions()),
		transition:   cfg.GetTransition(),
		logger:       logger,
	}

	view := s.initialView(cfg)

	first, last, _ := ds.Span()
	s.Slider = widget.NewRangeSlider(SliderRect, first, last, 24*time.Hour)
	s.Slider.SetRange(view.Start, view.End)
	view = view.WithRange(s.Slider.Start, s.Slider.End)

	s.CoinSelect.SetValue(view.Coin)
	s.MetricSelect.SetValue(string(view.Metric))

	s.View = view
	s.Current = s.Chart.Render(ds, view)
	s.Transition = chart.NewTransition(s.Current, s.Current, now, 0)
	return s
}

func (s *Session) initialView(cfg *config.Config) chart.ViewState {
	metric, err := internal.ParseMetric(cfg.DefaultMetric)
	if err != nil {
		s.logger.Warn(common.ErrCodeInvalidView, common.ErrMsgInvalidView, err.Error())
		metric = internal.PriceUSD
	}
	coin := cfg.DefaultCoin
	if _, ok := s.Dataset[coin]; !ok {
		if coins := s.Dataset.Coins(); len(coins) > 0 {
			coin = coins[0]
		}
	}
	view := chart.NewView(s.Dataset, coin, metric)

	if cfg.StateFile == "" {
		return view
	}
	saved, err := internal.LoadView(cfg.StateFile)
	if err != nil {
		s.logger.Error(err, common.ErrCodeStateLoadFailed, common.ErrMsgStateLoadFailed, "Using default view", "file", cfg.StateFile)
		return view
	}
	if saved.IsZero() {
		return view
	}
	restored := chart.ViewFromFile(saved, view)
	if err := restored.Validate(s.Dataset); err != nil {
		s.logger.Warn(common.ErrCodeInvalidView, common.ErrMsgInvalidView, err.Error(), "file", cfg.StateFile)
		return view
	}
	return restored
}

// Apply re-renders for v and starts a transition from what is on screen.
func (s *Session) Apply(v chart.ViewState, now time.Time) {
	s.View = v
	next := s.Chart.Render(s.Dataset, v)
	s.Transition = chart.NewTransition(s.Current, next, now, s.transition)
	s.logger.Debug("View changed", "coin", v.Coin, "metric", string(v.Metric),
		"start", v.Start.Format(common.DateLayout), "end", v.End.Format(common.DateLayout), "records", len(next.Records))
}

// Tick advances the transition; Current is what should be drawn.
func (s *Session) Tick(now time.Time) {
	s.Current = s.Chart.Frame(s.Transition, now)
}

// Target is the scene the running transition ends on.
func (s *Session) Target() chart.Scene {
	return s.Transition.To
}

// Press handles a left-button press at screen position (x, y).
func (s *Session) Press(x, y float64, now time.Time) {
	if changed, consumed := s.CoinSelect.Click(x, y); consumed {
		s.MetricSelect.Open = false
		if changed {
			s.Apply(s.View.WithCoin(s.CoinSelect.Value()), now)
		}
		return
	}
	if changed, consumed := s.MetricSelect.Click(x, y); consumed {
		if changed {
			s.Apply(s.View.WithMetric(internal.Metric(s.MetricSelect.Value())), now)
		}
		return
	}
	if s.Slider.Press(x, y) {
		s.Apply(s.View.WithRange(s.Slider.Start, s.Slider.End), now)
	}
}

// Drag handles pointer movement while the button is held.
func (s *Session) Drag(x float64, now time.Time) {
	if s.Slider.Active() == widget.NoHandle {
		return
	}
	if s.Slider.Drag(x) {
		s.Apply(s.View.WithRange(s.Slider.Start, s.Slider.End), now)
	}
}

func (s *Session) Release() {
	s.Slider.Release()
}

// Pointer is the single hover handler for the plot. It always reads the
// scene currently on screen.
func (s *Session) Pointer(x, y float64) {
	inside := s.PlotRect().Contains(x, y) && !s.CoinSelect.Open && !s.MetricSelect.Open

	switch {
	case inside && !s.hovering:
		s.hovering = true
		s.Tooltip.Enter(s.Current)
	case !inside && s.hovering:
		s.hovering = false
		s.Tooltip.Leave()
	}
	if inside {
		ox, _ := s.PlotOrigin()
		s.Tooltip.Move(s.Current, x-ox)
	}
}

// PlotOrigin is the screen position of plot coordinate (0, 0).
func (s *Session) PlotOrigin() (float64, float64) {
	r := PlotArea(s.Chart)
	return r.X, r.Y
}

func (s *Session) PlotRect() widget.Rect {
	return PlotArea(s.Chart)
}

// PlotArea is the screen rectangle of c's plot below the controls.
func PlotArea(c *chart.Chart) widget.Rect {
	return widget.Rect{X: c.Margin.Left, Y: ChartTop + c.Margin.Top, W: c.Width, H: c.Height}
}

// SaveState writes the current view to file.
func (s *Session) SaveState(file string) error {
	return internal.SaveView(file, s.View.File())
}
