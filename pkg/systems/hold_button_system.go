package systems

import (
	"github.com/decker502/nutrition/pkg/components"
	"github.com/decker502/nutrition/pkg/ecs"
	"github.com/decker502/nutrition/pkg/utils"
)

// HoldButtonSystem 按住型按钮系统（小游戏的触摸方向键）
// 每个按钮独立判断是否有按住的点落在其范围内，支持多点触摸同时按住左右键
type HoldButtonSystem struct {
	entityManager *ecs.EntityManager
	pointer       utils.PointerSource
	offset        OffsetFunc
}

// NewHoldButtonSystem 创建按住型按钮系统
func NewHoldButtonSystem(em *ecs.EntityManager) *HoldButtonSystem {
	return &HoldButtonSystem{
		entityManager: em,
		pointer:       utils.CurrentPointer,
		offset:        noOffset,
	}
}

// SetPointerSource 替换指针状态来源
func (s *HoldButtonSystem) SetPointerSource(src utils.PointerSource) {
	s.pointer = src
}

// SetOffset 设置滚动偏移来源
func (s *HoldButtonSystem) SetOffset(offset OffsetFunc) {
	if offset == nil {
		offset = noOffset
	}
	s.offset = offset
}

// Update 检测按住/松开并触发回调
func (s *HoldButtonSystem) Update(deltaTime float64) {
	pointer := s.pointer()

	entities := ecs.GetEntitiesWith3[*components.HoldButtonComponent, *components.ButtonComponent, *components.PositionComponent](s.entityManager)
	for _, entityID := range entities {
		hold, _ := ecs.GetComponent[*components.HoldButtonComponent](s.entityManager, entityID)
		button, _ := ecs.GetComponent[*components.ButtonComponent](s.entityManager, entityID)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, entityID)

		held := false
		if button.Enabled && !isHidden(s.entityManager, entityID) {
			p := pointerFor(pointer, button.Fixed, s.offset)
			for _, pt := range p.Held {
				if utils.InRect(pt.X, pt.Y, pos.X, pos.Y, button.Width, button.Height) {
					held = true
					break
				}
			}
		}

		switch {
		case held && !hold.Held:
			hold.Held = true
			if hold.OnPress != nil {
				hold.OnPress()
			}
		case !held && hold.Held:
			hold.Held = false
			if hold.OnRelease != nil {
				hold.OnRelease()
			}
		}
	}
}

// ReleaseAll 松开所有按住的按钮（离开场景时调用）
func (s *HoldButtonSystem) ReleaseAll() {
	for _, entityID := range ecs.GetEntitiesWith1[*components.HoldButtonComponent](s.entityManager) {
		hold, _ := ecs.GetComponent[*components.HoldButtonComponent](s.entityManager, entityID)
		if hold.Held {
			hold.Held = false
			if hold.OnRelease != nil {
				hold.OnRelease()
			}
		}
	}
}
