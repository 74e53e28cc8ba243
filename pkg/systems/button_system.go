package systems

import (
	"github.com/decker502/nutrition/pkg/components"
	"github.com/decker502/nutrition/pkg/ecs"
	"github.com/decker502/nutrition/pkg/utils"
)

// ButtonSystem 按钮交互系统
// 负责处理按钮的鼠标悬停、点击等交互逻辑
//
// 职责：
//   - 检测鼠标悬停（更新按钮状态为 UIHovered）
//   - 检测鼠标释放（触发 OnClick 回调）
//   - 根据 Enabled 状态和分组隐藏状态决定是否响应交互
type ButtonSystem struct {
	entityManager *ecs.EntityManager
	pointer       utils.PointerSource
	offset        OffsetFunc

	// OnAnyClick 在任意按钮的 OnClick 之前调用（用于统一播放点击音效）
	OnAnyClick func(buttonID string)
	// Blocked 返回 true 时本帧不处理点击（如数字键盘消费了输入）
	Blocked func() bool
}

// NewButtonSystem 创建按钮交互系统
func NewButtonSystem(em *ecs.EntityManager) *ButtonSystem {
	return &ButtonSystem{
		entityManager: em,
		pointer:       utils.CurrentPointer,
		offset:        noOffset,
	}
}

// SetPointerSource 替换指针状态来源
func (s *ButtonSystem) SetPointerSource(src utils.PointerSource) {
	s.pointer = src
}

// SetOffset 设置滚动偏移来源
func (s *ButtonSystem) SetOffset(offset OffsetFunc) {
	if offset == nil {
		offset = noOffset
	}
	s.offset = offset
}

// Update 更新按钮交互状态
// 每帧最多触发一个按钮的回调：回调可能会重建按钮实体
//
// 返回：
//
//	本帧是否有按钮被点击
func (s *ButtonSystem) Update(deltaTime float64) bool {
	pointer := s.pointer()
	blocked := s.Blocked != nil && s.Blocked()

	entities := ecs.GetEntitiesWith2[*components.ButtonComponent, *components.PositionComponent](s.entityManager)

	for _, entityID := range entities {
		button, _ := ecs.GetComponent[*components.ButtonComponent](s.entityManager, entityID)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, entityID)

		if isHidden(s.entityManager, entityID) {
			button.State = components.UINormal
			continue
		}
		if !button.Enabled {
			button.State = components.UIDisabled
			continue
		}

		p := pointerFor(pointer, button.Fixed, s.offset)
		if !utils.InRect(p.X, p.Y, pos.X, pos.Y, button.Width, button.Height) {
			button.State = components.UINormal
			continue
		}

		switch {
		case p.Pressed:
			button.State = components.UIClicked
		case p.JustReleased && !blocked:
			button.State = components.UIHovered
			if s.OnAnyClick != nil {
				s.OnAnyClick(button.ID)
			}
			if button.OnClick != nil {
				button.OnClick()
			}
			return true
		default:
			button.State = components.UIHovered
		}
	}

	return false
}

// FindButton 按ID查找按钮实体
func FindButton(em *ecs.EntityManager, buttonID string) (ecs.EntityID, bool) {
	for _, id := range ecs.GetEntitiesWith1[*components.ButtonComponent](em) {
		button, _ := ecs.GetComponent[*components.ButtonComponent](em, id)
		if button.ID == buttonID {
			return id, true
		}
	}
	return 0, false
}
