package systems

import (
	"github.com/decker502/nutrition/pkg/components"
	"github.com/decker502/nutrition/pkg/ecs"
	"github.com/decker502/nutrition/pkg/utils"
)

// OffsetFunc 返回屏幕坐标到内容坐标的偏移：内容坐标 = 屏幕坐标 + (dx, dy)
// 面板内容随滚动移动，固定控件（导航栏）不使用偏移
type OffsetFunc func() (dx, dy float64)

func noOffset() (float64, float64) { return 0, 0 }

// isHidden 检查实体是否被所在分组隐藏
func isHidden(em *ecs.EntityManager, id ecs.EntityID) bool {
	ui, ok := ecs.GetComponent[*components.UIComponent](em, id)
	return ok && ui.Hidden
}

// SetGroupHidden 显示或隐藏某个分组的所有控件
func SetGroupHidden(em *ecs.EntityManager, group string, hidden bool) {
	for _, id := range ecs.GetEntitiesWith1[*components.UIComponent](em) {
		ui, _ := ecs.GetComponent[*components.UIComponent](em, id)
		if ui.Group == group {
			ui.Hidden = hidden
		}
	}
}

// pointerFor 返回某个控件坐标系下的指针状态
func pointerFor(p utils.PointerState, fixed bool, offset OffsetFunc) utils.PointerState {
	if fixed {
		return p
	}
	dx, dy := offset()
	return p.Offset(dx, dy)
}
