package widget

import (
	"testing"
	"time"
)

func coinSelect() *Select {
	return NewSelect(Rect{X: 10, Y: 10, W: 100, H: 20}, []Option{
		{Value: "bitcoin", Label: "Bitcoin"},
		{Value: "ethereum", Label: "Ethereum"},
		{Value: "ripple", Label: "Ripple"},
	})
}

func TestSelectClick(t *testing.T) {
	s := coinSelect()

	if changed, consumed := s.Click(500, 500); changed || consumed {
		t.Fatal("click outside a closed select must pass through")
	}
	if changed, consumed := s.Click(20, 15); changed || !consumed || !s.Open {
		t.Fatal("click on header should open the list")
	}
	if got := s.OptionAt(20, 55); got != 1 {
		t.Errorf("OptionAt = %d, want 1", got)
	}

	// Second option row spans y in [50, 70).
	changed, consumed := s.Click(20, 55)
	if !changed || !consumed || s.Open {
		t.Fatalf("pick: changed=%v consumed=%v open=%v", changed, consumed, s.Open)
	}
	if s.Value() != "ethereum" || s.Label() != "Ethereum" {
		t.Errorf("selected %q %q", s.Value(), s.Label())
	}

	s.Click(20, 15)
	if changed, consumed := s.Click(20, 55); changed || !consumed {
		t.Error("re-picking the same option is not a change")
	}

	s.Click(20, 15)
	if changed, consumed := s.Click(500, 500); changed || !consumed || s.Open {
		t.Error("click outside an open list closes it")
	}
}

func TestSelectSetValue(t *testing.T) {
	s := coinSelect()
	if !s.SetValue("ripple") || s.Selected != 2 {
		t.Errorf("SetValue ripple: selected %d", s.Selected)
	}
	if s.SetValue("dogecoin") || s.Selected != 2 {
		t.Error("unknown value must not change the selection")
	}
	empty := NewSelect(Rect{W: 10, H: 10}, nil)
	if empty.Value() != "" || empty.Label() != "" {
		t.Error("empty select has no value")
	}
	if _, consumed := empty.Click(1, 1); consumed || empty.Open {
		t.Error("empty select does not open")
	}
}

func day(d int) time.Time {
	return time.Date(2017, time.January, d, 0, 0, 0, 0, time.UTC)
}

func slider() *RangeSlider {
	// Ten days over 100px: one day every 10px.
	return NewRangeSlider(Rect{X: 0, Y: 0, W: 100, H: 4}, day(1), day(11), 0)
}

func TestSliderAt(t *testing.T) {
	s := slider()
	tests := []struct {
		x    float64
		want time.Time
	}{
		{-50, day(1)},
		{0, day(1)},
		{14, day(2)},
		{16, day(3)},
		{100, day(11)},
		{300, day(11)},
	}
	for _, tt := range tests {
		if got := s.At(tt.x); !got.Equal(tt.want) {
			t.Errorf("At(%v) = %v, want %v", tt.x, got, tt.want)
		}
	}
	if got := s.X(day(6)); got != 50 {
		t.Errorf("X(day 6) = %v", got)
	}
}

func TestSliderDrag(t *testing.T) {
	s := slider()

	if s.Press(50, 100) {
		t.Fatal("press away from the track should miss")
	}
	if !s.Press(20, 2) || s.Active() != StartHandle {
		t.Fatalf("press near start: active=%v", s.Active())
	}
	if !s.Start.Equal(day(3)) {
		t.Errorf("start = %v", s.Start)
	}
	if !s.Drag(40) || !s.Start.Equal(day(5)) {
		t.Errorf("drag start = %v", s.Start)
	}
	if s.Drag(41) {
		t.Error("drag within the same step is not a change")
	}
	// The start handle stops at the end handle.
	s.Drag(200)
	if !s.Start.Equal(s.End) {
		t.Errorf("start %v crossed end %v", s.Start, s.End)
	}
	s.Release()
	if s.Drag(10) {
		t.Error("drag without a grabbed handle")
	}

	s.SetRange(day(2), day(8))
	if !s.Press(90, 2) || s.Active() != EndHandle || !s.End.Equal(day(10)) {
		t.Errorf("press near end: active=%v end=%v", s.Active(), s.End)
	}
	s.Drag(0)
	if !s.End.Equal(day(2)) {
		t.Errorf("end %v crossed start %v", s.End, s.Start)
	}

	from, to := s.Labels()
	if from != "02/01/2017" || to != "02/01/2017" {
		t.Errorf("labels = %q %q", from, to)
	}
}

func TestSliderSetRange(t *testing.T) {
	s := slider()
	s.SetRange(day(20), time.Date(2016, time.June, 1, 0, 0, 0, 0, time.UTC))
	if !s.Start.Equal(day(1)) || !s.End.Equal(day(11)) {
		t.Errorf("range = %v %v", s.Start, s.End)
	}
}
