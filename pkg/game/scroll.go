package game

import (
	"github.com/decker502/nutrition/pkg/utils"
)

// Scroller 面板内容的纵向滚动
//
// 偏移量 0 表示内容顶部对齐可视区域顶部。
// 平滑滚动使用 EaseOutCubic 补间，滚轮滚动立即生效并打断正在进行的补间。
type Scroller struct {
	offset         float64
	viewportHeight float64
	contentHeight  float64

	tween    *utils.Tween
	duration float64
}

// NewScroller 创建滚动器
func NewScroller(viewportHeight, smoothDuration float64) *Scroller {
	return &Scroller{
		viewportHeight: viewportHeight,
		contentHeight:  viewportHeight,
		duration:       smoothDuration,
	}
}

// Offset 当前滚动偏移
func (s *Scroller) Offset() float64 {
	return s.offset
}

// MaxOffset 最大滚动偏移（内容不足一屏时为 0）
func (s *Scroller) MaxOffset() float64 {
	if s.contentHeight <= s.viewportHeight {
		return 0
	}
	return s.contentHeight - s.viewportHeight
}

// SetContentHeight 更新内容高度并把偏移量限制在新范围内
func (s *Scroller) SetContentHeight(h float64) {
	s.contentHeight = h
	s.offset = utils.Clamp(s.offset, 0, s.MaxOffset())
}

// ScrollTo 平滑滚动到目标位置
func (s *Scroller) ScrollTo(target float64) {
	target = utils.Clamp(target, 0, s.MaxOffset())
	if target == s.offset {
		s.tween = nil
		return
	}
	s.tween = utils.NewTween(s.offset, target, s.duration, utils.EaseOutCubic)
}

// JumpTo 立即滚动到目标位置
func (s *Scroller) JumpTo(target float64) {
	s.tween = nil
	s.offset = utils.Clamp(target, 0, s.MaxOffset())
}

// ScrollBy 相对滚动（鼠标滚轮）
func (s *Scroller) ScrollBy(dy float64) {
	s.JumpTo(s.offset + dy)
}

// ScrollToTop 回到顶部
func (s *Scroller) ScrollToTop() {
	s.JumpTo(0)
}

// Scrolling 是否正在平滑滚动
func (s *Scroller) Scrolling() bool {
	return s.tween != nil
}

// Update 推进平滑滚动
func (s *Scroller) Update(deltaTime float64) {
	if s.tween == nil {
		return
	}
	s.offset = utils.Clamp(s.tween.Update(deltaTime), 0, s.MaxOffset())
	if s.tween.Done() {
		s.tween = nil
	}
}

// NearBottom 可视区域底部距离内容底部不超过 threshold 像素
func (s *Scroller) NearBottom(threshold float64) bool {
	return s.viewportHeight+s.offset >= s.contentHeight-threshold
}
