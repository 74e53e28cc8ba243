// Package utils 提供通用工具函数
package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Point 屏幕坐标
type Point struct {
	X, Y float64
}

// PointerState 存储当前帧的指针状态
// 统一处理鼠标和触摸输入
type PointerState struct {
	// 主指针位置（第一个触摸点或鼠标）
	X, Y float64
	// 主指针是否按下
	Pressed bool
	// 本帧刚刚按下 / 释放
	JustPressed  bool
	JustReleased bool
	// 所有按住的点（全部触摸点，以及按下时的鼠标位置）
	Held []Point
}

// Offset 返回平移后的状态（用于把屏幕坐标换算到滚动内容坐标）
func (p PointerState) Offset(dx, dy float64) PointerState {
	out := p
	out.X += dx
	out.Y += dy
	if len(p.Held) > 0 {
		out.Held = make([]Point, len(p.Held))
		for i, h := range p.Held {
			out.Held[i] = Point{X: h.X + dx, Y: h.Y + dy}
		}
	}
	return out
}

// PointerSource 指针状态来源，测试中替换为固定状态
type PointerSource func() PointerState

// 保存最后一次触摸位置（触摸释放时 ebiten 不再提供该触摸点的位置）
var lastTouchX, lastTouchY int

// CurrentPointer 从 ebiten 读取本帧的指针状态
// 优先使用触摸输入，没有触摸时使用鼠标左键
func CurrentPointer() PointerState {
	state := PointerState{}

	touchIDs := ebiten.AppendTouchIDs(nil)
	for _, id := range touchIDs {
		x, y := ebiten.TouchPosition(id)
		state.Held = append(state.Held, Point{X: float64(x), Y: float64(y)})
	}

	if len(touchIDs) > 0 {
		lastTouchX, lastTouchY = ebiten.TouchPosition(touchIDs[0])
		state.X, state.Y = float64(lastTouchX), float64(lastTouchY)
		state.Pressed = true
		state.JustPressed = len(inpututil.AppendJustPressedTouchIDs(nil)) > 0
		return state
	}

	if len(inpututil.AppendJustReleasedTouchIDs(nil)) > 0 {
		state.X, state.Y = float64(lastTouchX), float64(lastTouchY)
		state.JustReleased = true
		return state
	}

	mx, my := ebiten.CursorPosition()
	state.X, state.Y = float64(mx), float64(my)
	state.Pressed = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	state.JustPressed = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	state.JustReleased = inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft)
	if state.Pressed {
		state.Held = append(state.Held, Point{X: state.X, Y: state.Y})
	}
	return state
}

// WheelDelta 返回本帧鼠标滚轮的垂直滚动量（向下为正，单位为"格"）
func WheelDelta() float64 {
	_, dy := ebiten.Wheel()
	return -dy
}

// InRect 判断点是否在矩形内（包含边界）
func InRect(px, py, x, y, w, h float64) bool {
	return px >= x && px <= x+w && py >= y && py <= y+h
}
