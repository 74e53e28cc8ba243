package main

import (
	"testing"
	"time"

	"github.com/decker502/nutrition/pkg/minigame"
)

func TestHoldTrackerExpire(t *testing.T) {
	t0 := time.Unix(1000, 0)
	h := newHoldTracker(holdTimeout)

	h.Press(minigame.Left, t0)
	if got := h.Expire(t0.Add(holdTimeout / 2)); len(got) != 0 {
		t.Fatalf("Expire() before timeout = %v, want none", got)
	}

	// 自动重复刷新按住时间
	h.Press(minigame.Left, t0.Add(holdTimeout/2))
	if got := h.Expire(t0.Add(holdTimeout)); len(got) != 0 {
		t.Fatalf("Expire() after repeat = %v, want none", got)
	}

	got := h.Expire(t0.Add(2 * holdTimeout))
	if len(got) != 1 || got[0] != minigame.Left {
		t.Fatalf("Expire() = %v, want [Left]", got)
	}
	if h.Held(minigame.Left) {
		t.Error("Left should no longer be held")
	}
}

func TestHoldTrackerDrop(t *testing.T) {
	h := newHoldTracker(holdTimeout)
	if h.Drop(minigame.Right) {
		t.Error("Drop() on a direction that is not held should return false")
	}
	h.Press(minigame.Right, time.Now())
	if !h.Drop(minigame.Right) {
		t.Error("Drop() should return true for a held direction")
	}
	if h.Held(minigame.Right) {
		t.Error("Right should no longer be held")
	}
}
