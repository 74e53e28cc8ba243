package minigame

import "testing"

func TestSimSchedulerIntervalFiresOncePerPeriod(t *testing.T) {
	tests := []struct {
		name  string
		steps []float64
		want  int
	}{
		{"sixty small steps make one second", repeat(1.0/60, 60), 1},
		{"just short of a second", repeat(1.0/60, 59), 0},
		{"single large step fires every elapsed period", []float64{2.5}, 2},
		{"three seconds in 0.1 steps", repeat(0.1, 30), 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSimScheduler()
			fired := 0
			s.SetInterval(1.0, func() { fired++ })
			for _, dt := range tt.steps {
				s.Advance(dt)
			}
			if fired != tt.want {
				t.Errorf("interval fired %d times, want %d", fired, tt.want)
			}
		})
	}
}

func TestSimSchedulerFrames(t *testing.T) {
	s := NewSimScheduler()

	var stamps []float64
	var loop FrameFunc
	loop = func(ts float64) {
		stamps = append(stamps, ts)
		s.RequestFrame(loop)
	}
	s.RequestFrame(loop)

	if s.PendingFrames() != 1 {
		t.Fatalf("PendingFrames() = %d, want 1", s.PendingFrames())
	}

	s.Advance(0.5)
	if len(stamps) != 1 {
		t.Fatalf("frame requested inside a callback must wait for the next Advance, got %d calls", len(stamps))
	}
	s.Advance(0.25)
	if len(stamps) != 2 || stamps[1] != 0.75 {
		t.Errorf("stamps = %v, want [0.5 0.75]", stamps)
	}
	if s.PendingFrames() != 1 {
		t.Errorf("PendingFrames() = %d, want 1", s.PendingFrames())
	}
}

func TestSimSchedulerCancel(t *testing.T) {
	s := NewSimScheduler()

	frameCalled := false
	intervalCalled := false
	fh := s.RequestFrame(func(float64) { frameCalled = true })
	ih := s.SetInterval(1, func() { intervalCalled = true })

	s.CancelFrame(fh)
	s.ClearInterval(ih)
	// 未知句柄和零句柄都是空操作
	s.CancelFrame(0)
	s.CancelFrame(999)
	s.ClearInterval(0)
	s.ClearInterval(999)

	s.Advance(2)
	if frameCalled || intervalCalled {
		t.Errorf("cancelled callbacks ran: frame=%v interval=%v", frameCalled, intervalCalled)
	}
	if s.PendingFrames() != 0 || s.ActiveIntervals() != 0 {
		t.Errorf("pending=%d active=%d, want 0/0", s.PendingFrames(), s.ActiveIntervals())
	}
}

func TestSimSchedulerIntervalCancelsFrame(t *testing.T) {
	s := NewSimScheduler()

	frameCalled := false
	var fh Handle
	fh = s.RequestFrame(func(float64) { frameCalled = true })
	var ih Handle
	ih = s.SetInterval(1, func() {
		s.CancelFrame(fh)
		s.ClearInterval(ih)
	})

	s.Advance(3)
	if frameCalled {
		t.Error("frame cancelled by an interval callback in the same Advance must not run")
	}
	if s.ActiveIntervals() != 0 {
		t.Errorf("ActiveIntervals() = %d, want 0", s.ActiveIntervals())
	}
}

func TestSimSchedulerRejectsNonPositiveInterval(t *testing.T) {
	s := NewSimScheduler()
	if h := s.SetInterval(0, func() {}); h != 0 {
		t.Errorf("SetInterval(0) = %d, want 0", h)
	}
	if s.ActiveIntervals() != 0 {
		t.Errorf("ActiveIntervals() = %d, want 0", s.ActiveIntervals())
	}
}

func repeat(v float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = v
	}
	return out
}
