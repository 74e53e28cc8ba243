package systems

import (
	"image/color"

	"github.com/decker502/nutrition/pkg/components"
	"github.com/decker502/nutrition/pkg/ecs"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// ButtonRenderSystem 按钮渲染系统
// 按钮没有图片资源，背景和边框用矢量绘制
type ButtonRenderSystem struct {
	entityManager *ecs.EntityManager
	offset        OffsetFunc
}

// NewButtonRenderSystem 创建按钮渲染系统
func NewButtonRenderSystem(em *ecs.EntityManager) *ButtonRenderSystem {
	return &ButtonRenderSystem{
		entityManager: em,
		offset:        noOffset,
	}
}

// SetOffset 设置滚动偏移来源（与 ButtonSystem 使用同一个）
func (s *ButtonRenderSystem) SetOffset(offset OffsetFunc) {
	if offset == nil {
		offset = noOffset
	}
	s.offset = offset
}

// Draw 渲染所有按钮
// fixed 为 true 时只绘制固定按钮，否则只绘制随内容滚动的按钮
func (s *ButtonRenderSystem) Draw(screen *ebiten.Image, fixed bool) {
	entities := ecs.GetEntitiesWith2[*components.ButtonComponent, *components.PositionComponent](s.entityManager)

	for _, entityID := range entities {
		button, _ := ecs.GetComponent[*components.ButtonComponent](s.entityManager, entityID)
		if button.Fixed != fixed || isHidden(s.entityManager, entityID) {
			continue
		}
		s.DrawButton(screen, entityID)
	}
}

// DrawButton 渲染单个按钮实体
func (s *ButtonRenderSystem) DrawButton(screen *ebiten.Image, entityID ecs.EntityID) {
	button, ok := ecs.GetComponent[*components.ButtonComponent](s.entityManager, entityID)
	if !ok {
		return
	}
	pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, entityID)
	if !ok {
		return
	}

	x, y := pos.X, pos.Y
	if !button.Fixed {
		dx, dy := s.offset()
		x, y = x-dx, y-dy
	}

	fill := buttonFill(button)
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(button.Width), float32(button.Height), fill, false)
	if button.Style.Border.A > 0 {
		vector.StrokeRect(screen, float32(x), float32(y), float32(button.Width), float32(button.Height), 1, button.Style.Border, false)
	}

	s.drawButtonText(screen, button, x, y)
}

// buttonFill 根据状态选择背景色
func buttonFill(button *components.ButtonComponent) color.RGBA {
	style := button.Style
	switch {
	case button.State == components.UIDisabled:
		c := style.Fill
		c.A /= 2
		return c
	case button.State == components.UIClicked && style.Pressed.A > 0:
		return style.Pressed
	case button.Selected && style.Selected.A > 0:
		return style.Selected
	case button.State == components.UIHovered && style.Hover.A > 0:
		return style.Hover
	default:
		return style.Fill
	}
}

// drawButtonText 渲染按钮文字（居中）
func (s *ButtonRenderSystem) drawButtonText(screen *ebiten.Image, button *components.ButtonComponent, x, y float64) {
	if button.Text == "" || button.Font == nil {
		return
	}

	op := &text.DrawOptions{}
	op.LayoutOptions.PrimaryAlign = text.AlignCenter
	op.LayoutOptions.SecondaryAlign = text.AlignCenter
	op.GeoM.Translate(x+button.Width/2, y+button.Height/2)
	op.ColorScale.ScaleWithColor(button.Style.Text)
	text.Draw(screen, button.Text, button.Font, op)
}
