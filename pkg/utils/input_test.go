package utils

import "testing"

func TestInRect(t *testing.T) {
	tests := []struct {
		name   string
		px, py float64
		want   bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right corner", 30, 20, true},
		{"left of rect", 9.9, 15, false},
		{"below rect", 15, 20.1, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := InRect(tt.px, tt.py, 10, 10, 20, 10); got != tt.want {
				t.Errorf("InRect(%v, %v) = %v, want %v", tt.px, tt.py, got, tt.want)
			}
		})
	}
}

func TestPointerStateOffset(t *testing.T) {
	p := PointerState{
		X: 10, Y: 20,
		Pressed: true,
		Held:    []Point{{X: 10, Y: 20}, {X: 100, Y: 200}},
	}

	moved := p.Offset(5, -10)
	if moved.X != 15 || moved.Y != 10 {
		t.Errorf("primary = (%v, %v), want (15, 10)", moved.X, moved.Y)
	}
	if moved.Held[1] != (Point{X: 105, Y: 190}) {
		t.Errorf("held[1] = %+v, want {105 190}", moved.Held[1])
	}
	if p.Held[1] != (Point{X: 100, Y: 200}) {
		t.Error("Offset modified the original held points")
	}
	if !moved.Pressed {
		t.Error("Offset lost the pressed flag")
	}
}
