package utils

import (
	"math"
	"testing"
)

func TestEasingEndpoints(t *testing.T) {
	funcs := map[string]func(float64) float64{
		"linear":     EaseLinear,
		"outCubic":   EaseOutCubic,
		"inOutCubic": EaseInOutCubic,
		"outQuad":    EaseOutQuad,
	}
	for name, f := range funcs {
		if math.Abs(f(0)) > 1e-9 || math.Abs(f(1)-1) > 1e-9 {
			t.Errorf("%s: f(0)=%v f(1)=%v, 期望 0 和 1", name, f(0), f(1))
		}
	}
}

func TestEaseOutCubic(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected float64
	}{
		{"中点", 0.5, 0.875}, // 1 - (1-0.5)^3
		{"四分之一", 0.25, 0.578125},
		{"四分之三", 0.75, 0.984375},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := EaseOutCubic(tt.input)
			if math.Abs(result-tt.expected) > 0.001 {
				t.Errorf("EaseOutCubic(%v) = %v, 期望 %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestLerpAndClamp(t *testing.T) {
	if got := Lerp(100, 200, 0.25); got != 125 {
		t.Errorf("Lerp(100, 200, 0.25) = %v, 期望 125", got)
	}
	if got := Clamp(-5, 0, 10); got != 0 {
		t.Errorf("Clamp(-5, 0, 10) = %v", got)
	}
	if got := Clamp(15, 0, 10); got != 10 {
		t.Errorf("Clamp(15, 0, 10) = %v", got)
	}
	if got := Clamp(5, 0, 10); got != 5 {
		t.Errorf("Clamp(5, 0, 10) = %v", got)
	}
}

func TestTween(t *testing.T) {
	tw := NewTween(0, 100, 1.0, EaseOutCubic)

	if v := tw.Update(0.5); math.Abs(v-87.5) > 1e-9 {
		t.Errorf("value at 0.5s = %v, 期望 87.5", v)
	}
	if tw.Done() {
		t.Error("tween finished early")
	}

	if v := tw.Update(0.75); v != 100 {
		t.Errorf("value after end = %v, 期望 100", v)
	}
	if !tw.Done() {
		t.Error("tween should be done")
	}
}

func TestTweenZeroDuration(t *testing.T) {
	tw := NewTween(10, 20, 0, nil)
	if tw.Value() != 20 || !tw.Done() {
		t.Errorf("zero-duration tween = %v, done=%v", tw.Value(), tw.Done())
	}
}
