package game

import (
	"math"
	"testing"
)

func TestScroller_ClampAndWheel(t *testing.T) {
	s := NewScroller(600, 0.35)
	s.SetContentHeight(1000)

	tests := []struct {
		name string
		dy   float64
		want float64
	}{
		{"down", 120, 120},
		{"past bottom", 1000, 400},
		{"up", -100, 300},
		{"past top", -1000, 0},
	}
	for _, tt := range tests {
		s.ScrollBy(tt.dy)
		if s.Offset() != tt.want {
			t.Errorf("%s: offset = %v, want %v", tt.name, s.Offset(), tt.want)
		}
	}
}

func TestScroller_SmoothScroll(t *testing.T) {
	s := NewScroller(600, 0.35)
	s.SetContentHeight(2000)

	s.ScrollTo(500)
	if !s.Scrolling() {
		t.Fatal("ScrollTo should start a tween")
	}

	s.Update(0.1)
	mid := s.Offset()
	if mid <= 0 || mid >= 500 {
		t.Errorf("offset mid-tween = %v, want in (0, 500)", mid)
	}
	// EaseOutCubic 前段比线性快
	if mid <= 500*0.1/0.35 {
		t.Errorf("offset %v should be ahead of linear progress", mid)
	}

	for i := 0; i < 30; i++ {
		s.Update(1.0 / 60)
	}
	if s.Scrolling() || math.Abs(s.Offset()-500) > 1e-9 {
		t.Errorf("after tween offset=%v scrolling=%v, want 500 false", s.Offset(), s.Scrolling())
	}
}

func TestScroller_WheelInterruptsTween(t *testing.T) {
	s := NewScroller(600, 0.35)
	s.SetContentHeight(2000)
	s.ScrollTo(800)
	s.Update(0.05)

	s.ScrollBy(-10)
	if s.Scrolling() {
		t.Error("wheel scroll should cancel the tween")
	}
}

func TestScroller_NearBottom(t *testing.T) {
	tests := []struct {
		name    string
		content float64
		offset  float64
		want    bool
	}{
		{"short content", 300, 0, true},
		{"top of long page", 2000, 0, false},
		{"just outside threshold", 2000, 1299, false},
		{"at threshold", 2000, 1300, true},
		{"at bottom", 2000, 1400, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewScroller(600, 0.35)
			s.SetContentHeight(tt.content)
			s.JumpTo(tt.offset)
			if got := s.NearBottom(100); got != tt.want {
				t.Errorf("NearBottom = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestScroller_ShrinkContentClampsOffset(t *testing.T) {
	s := NewScroller(600, 0.35)
	s.SetContentHeight(2000)
	s.JumpTo(1400)

	s.SetContentHeight(800)
	if s.Offset() != 200 {
		t.Errorf("offset = %v, want 200", s.Offset())
	}

	s.ScrollToTop()
	if s.Offset() != 0 {
		t.Errorf("ScrollToTop offset = %v", s.Offset())
	}
}
