package game

import (
	"log"
	"runtime"

	"github.com/hajimehoshi/ebiten/v2"
)

// windowResetDelayFrames 退出全屏后等待多少帧再恢复窗口大小
const windowResetDelayFrames = 3

// FullscreenHost 能够切换全屏的宿主
type FullscreenHost interface {
	// Available 当前平台是否支持
	Available() bool
	IsFullscreen() bool
	SetFullscreen(fullscreen bool)
	// RestoreWindow 退出全屏后恢复窗口尺寸
	RestoreWindow()
}

// FullscreenToggle 全屏切换
// 使用第一个可用的宿主；没有可用宿主时切换无效
type FullscreenToggle struct {
	hosts []FullscreenHost

	pendingWindowReset bool
	resetCountdown     int
	resetHost          FullscreenHost
}

// NewFullscreenToggle 创建全屏切换，按优先级传入宿主
func NewFullscreenToggle(hosts ...FullscreenHost) *FullscreenToggle {
	return &FullscreenToggle{hosts: hosts}
}

func (f *FullscreenToggle) host() FullscreenHost {
	for _, h := range f.hosts {
		if h != nil && h.Available() {
			return h
		}
	}
	return nil
}

// IsFullscreen 当前是否全屏
func (f *FullscreenToggle) IsFullscreen() bool {
	h := f.host()
	return h != nil && h.IsFullscreen()
}

// Toggle 切换全屏
//
// 返回：
//
//	是否找到可用的宿主
func (f *FullscreenToggle) Toggle() bool {
	h := f.host()
	if h == nil {
		log.Printf("[Fullscreen] Warning: no fullscreen host available")
		return false
	}

	if h.IsFullscreen() {
		h.SetFullscreen(false)
		// 延迟几帧后设置窗口大小，让窗口管理器有时间处理
		f.pendingWindowReset = true
		f.resetCountdown = windowResetDelayFrames
		f.resetHost = h
		log.Printf("[Fullscreen] Exit fullscreen, will reset window size in %d frames", windowResetDelayFrames)
	} else {
		h.SetFullscreen(true)
		f.pendingWindowReset = false
		log.Printf("[Fullscreen] Enter fullscreen")
	}
	return true
}

// Update 每帧调用一次，处理延迟的窗口尺寸恢复
func (f *FullscreenToggle) Update() {
	if !f.pendingWindowReset {
		return
	}
	f.resetCountdown--
	if f.resetCountdown <= 0 {
		f.pendingWindowReset = false
		f.resetHost.RestoreWindow()
	}
}

// EbitenFullscreenHost 桌面窗口的全屏宿主
type EbitenFullscreenHost struct {
	WindowWidth, WindowHeight int
}

// Available 移动端由系统管理全屏
func (h EbitenFullscreenHost) Available() bool {
	return runtime.GOOS != "android" && runtime.GOOS != "ios"
}

func (h EbitenFullscreenHost) IsFullscreen() bool {
	return ebiten.IsFullscreen()
}

func (h EbitenFullscreenHost) SetFullscreen(fullscreen bool) {
	ebiten.SetFullscreen(fullscreen)
}

func (h EbitenFullscreenHost) RestoreWindow() {
	if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
		ebiten.RestoreWindow()
	}
	ebiten.SetWindowSize(h.WindowWidth, h.WindowHeight)
	log.Printf("[Fullscreen] Delayed SetWindowSize(%d, %d)", h.WindowWidth, h.WindowHeight)
}
