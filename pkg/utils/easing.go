package utils

import "math"

// Easing Functions (缓动函数)
//
// 所有函数接受一个进度值 t ∈ [0, 1]，返回缓动后的值 ∈ [0, 1]。
//
// 参考：https://easings.net/

// EaseLinear 线性缓动（无缓动）
func EaseLinear(t float64) float64 {
	return t
}

// EaseOutCubic 三次方缓出
// 特点：开始快，结束慢（用于平滑滚动）
// 公式：f(t) = 1 - (1-t)³
func EaseOutCubic(t float64) float64 {
	return 1 - math.Pow(1-t, 3)
}

// EaseInOutCubic 三次方缓入缓出
// 公式：
//
//	t < 0.5: f(t) = 4t³
//	t >= 0.5: f(t) = 1 - (-2t + 2)³ / 2
func EaseInOutCubic(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	return 1 - math.Pow(-2*t+2, 3)/2
}

// EaseOutQuad 二次方缓出
// 公式：f(t) = 1 - (1-t)²
func EaseOutQuad(t float64) float64 {
	return 1 - (1-t)*(1-t)
}

// Lerp 线性插值
// t=0 返回 a，t=1 返回 b
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Clamp 将 v 限制在 [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(v, hi))
}

// Tween 从 From 到 To 的一次补间
type Tween struct {
	From, To float64
	Duration float64 // 秒
	Ease     func(t float64) float64
	elapsed  float64
}

// NewTween 创建补间，ease 为 nil 时使用线性缓动
func NewTween(from, to, duration float64, ease func(float64) float64) *Tween {
	if ease == nil {
		ease = EaseLinear
	}
	return &Tween{From: from, To: to, Duration: duration, Ease: ease}
}

// Update 推进 dt 秒并返回当前值
func (tw *Tween) Update(dt float64) float64 {
	tw.elapsed += dt
	return tw.Value()
}

// Value 当前值
func (tw *Tween) Value() float64 {
	if tw.Duration <= 0 || tw.elapsed >= tw.Duration {
		return tw.To
	}
	return Lerp(tw.From, tw.To, tw.Ease(tw.elapsed/tw.Duration))
}

// Done 是否已经结束
func (tw *Tween) Done() bool {
	return tw.Duration <= 0 || tw.elapsed >= tw.Duration
}
