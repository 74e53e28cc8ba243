package minigame

import "sort"

// Handle 标识一次帧请求或一个定时器，零值表示"无"
type Handle uint64

// FrameFunc 帧回调，参数为调度器当前时间戳（秒）
type FrameFunc func(timestamp float64)

// Scheduler 引擎使用的两个独立时钟：一次性帧请求和周期定时器
//
// 宿主（ebiten 场景或终端循环）负责推进时间；引擎只登记和取消回调。
type Scheduler interface {
	RequestFrame(fn FrameFunc) Handle
	CancelFrame(h Handle)
	SetInterval(seconds float64, fn func()) Handle
	ClearInterval(h Handle)
}

// intervalEpsilon 浮点累加误差容差，保证 60 次 1/60 秒推进恰好触发 1 秒定时器
const intervalEpsilon = 1e-9

type interval struct {
	every float64
	next  float64
	fn    func()
}

// SimScheduler 由宿主显式推进的调度器
// 单线程使用：所有方法必须在同一个 goroutine 中调用
type SimScheduler struct {
	now       float64
	nextID    Handle
	frames    map[Handle]FrameFunc
	intervals map[Handle]*interval
}

// NewSimScheduler 创建调度器，时间从 0 开始
func NewSimScheduler() *SimScheduler {
	return &SimScheduler{
		frames:    make(map[Handle]FrameFunc),
		intervals: make(map[Handle]*interval),
	}
}

func (s *SimScheduler) newHandle() Handle {
	s.nextID++
	return s.nextID
}

// RequestFrame 登记一次性帧回调，在下一次 Advance 时调用
func (s *SimScheduler) RequestFrame(fn FrameFunc) Handle {
	h := s.newHandle()
	s.frames[h] = fn
	return h
}

// CancelFrame 取消帧请求；未知句柄为空操作
func (s *SimScheduler) CancelFrame(h Handle) {
	delete(s.frames, h)
}

// SetInterval 登记每 seconds 秒触发一次的定时器
// seconds <= 0 时不登记，返回零句柄
func (s *SimScheduler) SetInterval(seconds float64, fn func()) Handle {
	if seconds <= 0 || fn == nil {
		return 0
	}
	h := s.newHandle()
	s.intervals[h] = &interval{every: seconds, next: s.now + seconds, fn: fn}
	return h
}

// ClearInterval 取消定时器；未知句柄为空操作
func (s *SimScheduler) ClearInterval(h Handle) {
	delete(s.intervals, h)
}

// Now 返回调度器当前时间（秒）
func (s *SimScheduler) Now() float64 {
	return s.now
}

// PendingFrames 返回尚未执行的帧请求数
func (s *SimScheduler) PendingFrames() int {
	return len(s.frames)
}

// ActiveIntervals 返回活跃定时器数
func (s *SimScheduler) ActiveIntervals() int {
	return len(s.intervals)
}

// Advance 推进时间 dt 秒
//
// 执行顺序：
//  1. 到期的定时器按句柄顺序触发，每个经过的周期触发一次
//  2. 推进前登记的帧请求各调用一次（回调中新登记的请求留到下一次 Advance）
//
// 回调内部可以安全地取消或登记任意句柄。
func (s *SimScheduler) Advance(dt float64) {
	if dt < 0 {
		dt = 0
	}
	s.now += dt

	for _, h := range s.sortedIntervals() {
		for {
			iv, ok := s.intervals[h]
			if !ok || iv.next > s.now+intervalEpsilon {
				break
			}
			iv.next += iv.every
			iv.fn()
		}
	}

	if len(s.frames) == 0 {
		return
	}
	pending := make([]Handle, 0, len(s.frames))
	for h := range s.frames {
		pending = append(pending, h)
	}
	sort.Slice(pending, func(i, j int) bool { return pending[i] < pending[j] })
	for _, h := range pending {
		fn, ok := s.frames[h]
		if !ok {
			continue // 被之前的回调取消
		}
		delete(s.frames, h)
		fn(s.now)
	}
}

func (s *SimScheduler) sortedIntervals() []Handle {
	handles := make([]Handle, 0, len(s.intervals))
	for h := range s.intervals {
		handles = append(handles, h)
	}
	sort.Slice(handles, func(i, j int) bool { return handles[i] < handles[j] })
	return handles
}
