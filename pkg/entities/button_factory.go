package entities

import (
	"image/color"

	"github.com/decker502/nutrition/pkg/components"
	"github.com/decker502/nutrition/pkg/ecs"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// 按钮样式
var (
	// NavButtonStyle 顶部导航栏按钮
	NavButtonStyle = components.ButtonStyle{
		Fill:     color.RGBA{R: 46, G: 125, B: 50, A: 255},
		Hover:    color.RGBA{R: 67, G: 160, B: 71, A: 255},
		Pressed:  color.RGBA{R: 27, G: 94, B: 32, A: 255},
		Selected: color.RGBA{R: 129, G: 199, B: 132, A: 255},
		Text:     color.RGBA{R: 255, G: 255, B: 255, A: 255},
	}

	// PrimaryButtonStyle 面板内的操作按钮（计算、提交、开始等）
	PrimaryButtonStyle = components.ButtonStyle{
		Fill:    color.RGBA{R: 76, G: 175, B: 80, A: 255},
		Hover:   color.RGBA{R: 102, G: 187, B: 106, A: 255},
		Pressed: color.RGBA{R: 56, G: 142, B: 60, A: 255},
		Border:  color.RGBA{R: 56, G: 142, B: 60, A: 255},
		Text:    color.RGBA{R: 255, G: 255, B: 255, A: 255},
	}

	// OptionButtonStyle 测验选项、维生素标签
	OptionButtonStyle = components.ButtonStyle{
		Fill:     color.RGBA{R: 245, G: 245, B: 245, A: 255},
		Hover:    color.RGBA{R: 232, G: 245, B: 233, A: 255},
		Pressed:  color.RGBA{R: 200, G: 230, B: 201, A: 255},
		Selected: color.RGBA{R: 165, G: 214, B: 167, A: 255},
		Border:   color.RGBA{R: 189, G: 189, B: 189, A: 255},
		Text:     color.RGBA{R: 33, G: 33, B: 33, A: 255},
	}

	// HotspotButtonStyle 膳食指南图上的热点（半透明）
	HotspotButtonStyle = components.ButtonStyle{
		Fill:    color.RGBA{R: 255, G: 255, B: 255, A: 40},
		Hover:   color.RGBA{R: 255, G: 235, B: 59, A: 90},
		Pressed: color.RGBA{R: 255, G: 193, B: 7, A: 120},
		Border:  color.RGBA{R: 255, G: 255, B: 255, A: 160},
		Text:    color.RGBA{R: 33, G: 33, B: 33, A: 255},
	}

	// TouchButtonStyle 小游戏的触摸方向键
	TouchButtonStyle = components.ButtonStyle{
		Fill:    color.RGBA{R: 0, G: 0, B: 0, A: 90},
		Pressed: color.RGBA{R: 0, G: 0, B: 0, A: 160},
		Border:  color.RGBA{R: 255, G: 255, B: 255, A: 200},
		Text:    color.RGBA{R: 255, G: 255, B: 255, A: 255},
	}
)

// NavGroup 导航栏按钮所在分组
const NavGroup = "nav"

// NewTextButton 创建文字按钮实体
//
// 参数：
//   - em: 实体管理器
//   - id: 按钮ID（用于查找和点击音效日志）
//   - x, y, width, height: 按钮区域（内容坐标）
//   - label: 按钮文字
//   - font: 文字字体
//   - style: 按钮样式
//   - onClick: 点击回调函数
//
// 返回：
//   - 按钮实体ID
func NewTextButton(
	em *ecs.EntityManager,
	id string,
	x, y, width, height float64,
	label string,
	font text.Face,
	style components.ButtonStyle,
	onClick func(),
) ecs.EntityID {
	entity := em.CreateEntity()

	ecs.AddComponent(em, entity, &components.PositionComponent{X: x, Y: y})
	ecs.AddComponent(em, entity, &components.ButtonComponent{
		ID:      id,
		Text:    label,
		Font:    font,
		Style:   style,
		Width:   width,
		Height:  height,
		State:   components.UINormal,
		Enabled: true,
		OnClick: onClick,
	})

	return entity
}

// NewNavButton 创建导航栏按钮（固定在屏幕顶部，不随内容滚动）
func NewNavButton(em *ecs.EntityManager, id string, x, y, width, height float64, label string, font text.Face, onClick func()) ecs.EntityID {
	entity := NewTextButton(em, id, x, y, width, height, label, font, NavButtonStyle, onClick)
	button, _ := ecs.GetComponent[*components.ButtonComponent](em, entity)
	button.Fixed = true
	ecs.AddComponent(em, entity, &components.UIComponent{Group: NavGroup})
	return entity
}

// NewHoldButton 创建按住型按钮（触摸方向键）
// 按下时调用 onPress，松开时调用 onRelease
func NewHoldButton(em *ecs.EntityManager, id string, x, y, width, height float64, label string, font text.Face, onPress, onRelease func()) ecs.EntityID {
	entity := NewTextButton(em, id, x, y, width, height, label, font, TouchButtonStyle, nil)
	ecs.AddComponent(em, entity, &components.HoldButtonComponent{
		OnPress:   onPress,
		OnRelease: onRelease,
	})
	return entity
}

// SetGroup 把实体加入分组（分组可以整体显示/隐藏）
func SetGroup(em *ecs.EntityManager, entity ecs.EntityID, group string) ecs.EntityID {
	if ui, ok := ecs.GetComponent[*components.UIComponent](em, entity); ok {
		ui.Group = group
		return entity
	}
	ecs.AddComponent(em, entity, &components.UIComponent{Group: group})
	return entity
}

// SetSelected 设置按钮的选中状态
func SetSelected(em *ecs.EntityManager, entity ecs.EntityID, selected bool) {
	if button, ok := ecs.GetComponent[*components.ButtonComponent](em, entity); ok {
		button.Selected = selected
	}
}
