package main

import (
	"time"

	"github.com/decker502/nutrition/pkg/minigame"
)

// holdTimeout 终端只有按键事件（含自动重复），没有抬起事件：
// 超过这个时间没有收到同一方向的按键就视为松开
const holdTimeout = 150 * time.Millisecond

// holdTracker 根据按键重复模拟方向键的按住状态
type holdTracker struct {
	timeout time.Duration
	last    map[minigame.Direction]time.Time
}

func newHoldTracker(timeout time.Duration) *holdTracker {
	return &holdTracker{
		timeout: timeout,
		last:    make(map[minigame.Direction]time.Time),
	}
}

// Press 记录一次按键（首次按下或自动重复）
func (h *holdTracker) Press(d minigame.Direction, now time.Time) {
	h.last[d] = now
}

// Held 返回方向是否处于按住状态
func (h *holdTracker) Held(d minigame.Direction) bool {
	_, ok := h.last[d]
	return ok
}

// Drop 立即松开某个方向
func (h *holdTracker) Drop(d minigame.Direction) bool {
	if _, ok := h.last[d]; !ok {
		return false
	}
	delete(h.last, d)
	return true
}

// Expire 松开超时的方向，按 Left、Right 的顺序返回
func (h *holdTracker) Expire(now time.Time) []minigame.Direction {
	var released []minigame.Direction
	for _, d := range []minigame.Direction{minigame.Left, minigame.Right} {
		t, ok := h.last[d]
		if ok && now.Sub(t) >= h.timeout {
			delete(h.last, d)
			released = append(released, d)
		}
	}
	return released
}
