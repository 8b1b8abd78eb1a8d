// Package widget holds the state and hit-testing of the chart controls.
// Drawing lives in package ui; nothing here depends on the window.
package widget

type Rect struct {
	X, Y, W, H float64
}

func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

type Option struct {
	Value string
	Label string
}

// Select is a drop-down list. While Open the options are laid out below Bounds.
type Select struct {
	Bounds   Rect
	Options  []Option
	Selected int
	Open     bool
}

func NewSelect(bounds Rect, options []Option) *Select {
	return &Select{Bounds: bounds, Options: options}
}

func (s *Select) OptionRect(i int) Rect {
	b := s.Bounds
	return Rect{X: b.X, Y: b.Y + b.H*float64(i+1), W: b.W, H: b.H}
}

// Click handles a press at (x, y). consumed is true when the press belonged
// to the select, including the click that closes an open list.
func (s *Select) Click(x, y float64) (changed, consumed bool) {
	if !s.Open {
		if s.Bounds.Contains(x, y) && len(s.Options) > 0 {
			s.Open = true
			return false, true
		}
		return false, false
	}

	s.Open = false
	if i := s.OptionAt(x, y); i >= 0 {
		changed = i != s.Selected
		s.Selected = i
	}
	return changed, true
}

// OptionAt is the index of the open option under (x, y), or -1.
func (s *Select) OptionAt(x, y float64) int {
	if !s.Open {
		return -1
	}
	for i := range s.Options {
		if s.OptionRect(i).Contains(x, y) {
			return i
		}
	}
	return -1
}

func (s *Select) Value() string {
	if s.Selected < 0 || s.Selected >= len(s.Options) {
		return ""
	}
	return s.Options[s.Selected].Value
}

func (s *Select) Label() string {
	if s.Selected < 0 || s.Selected >= len(s.Options) {
		return ""
	}
	return s.Options[s.Selected].Label
}

// SetValue selects the option with value v and reports whether it exists.
func (s *Select) SetValue(v string) bool {
	for i, o := range s.Options {
		if o.Value == v {
			s.Selected = i
			return true
		}
	}
	return false
}
