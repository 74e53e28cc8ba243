package systems

import (
	"image/color"

	"github.com/decker502/nutrition/pkg/components"
	"github.com/decker502/nutrition/pkg/ecs"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	inputBackgroundColor  = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	inputBorderColor      = color.RGBA{R: 160, G: 160, B: 160, A: 255}
	inputFocusBorderColor = color.RGBA{R: 76, G: 175, B: 80, A: 255}
	inputTextColor        = color.RGBA{R: 33, G: 33, B: 33, A: 255}
	inputPlaceholderColor = color.RGBA{R: 150, G: 150, B: 150, A: 255}
)

// TextInputRenderSystem 文本输入框渲染系统
// 负责绘制输入框边框、背景、文本和光标
type TextInputRenderSystem struct {
	entityManager *ecs.EntityManager
	offset        OffsetFunc
}

// NewTextInputRenderSystem 创建文本输入框渲染系统
func NewTextInputRenderSystem(em *ecs.EntityManager) *TextInputRenderSystem {
	return &TextInputRenderSystem{
		entityManager: em,
		offset:        noOffset,
	}
}

// SetOffset 设置滚动偏移来源
func (s *TextInputRenderSystem) SetOffset(offset OffsetFunc) {
	if offset == nil {
		offset = noOffset
	}
	s.offset = offset
}

// Draw 绘制所有文本输入框
func (s *TextInputRenderSystem) Draw(screen *ebiten.Image) {
	dx, dy := s.offset()
	entities := ecs.GetEntitiesWith2[*components.TextInputComponent, *components.PositionComponent](s.entityManager)
	for _, entityID := range entities {
		if isHidden(s.entityManager, entityID) {
			continue
		}
		input, _ := ecs.GetComponent[*components.TextInputComponent](s.entityManager, entityID)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, entityID)
		s.DrawInputBox(screen, input, pos.X-dx, pos.Y-dy)
	}
}

// DrawInputBox 在屏幕坐标 (x, y) 绘制单个输入框
func (s *TextInputRenderSystem) DrawInputBox(screen *ebiten.Image, input *components.TextInputComponent, x, y float64) {
	border := inputBorderColor
	if input.IsFocused {
		border = inputFocusBorderColor
	}
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(input.Width), float32(input.Height), inputBackgroundColor, false)
	vector.StrokeRect(screen, float32(x), float32(y), float32(input.Width), float32(input.Height), 2, border, false)

	if input.Font == nil {
		return
	}

	textX := x + input.PaddingLeft
	textY := y + input.Height/2 // 垂直居中

	if input.Text == "" && input.Placeholder != "" && !input.IsFocused {
		s.drawText(screen, input, input.Placeholder, textX, textY, inputPlaceholderColor)
	} else if input.Text != "" {
		s.drawText(screen, input, input.Text, textX, textY, inputTextColor)
	}

	// 光标（闪烁的竖线）
	if input.IsFocused && input.CursorVisible {
		s.drawCursor(screen, input, textX, textY)
	}
}

// drawText 绘制文本
func (s *TextInputRenderSystem) drawText(screen *ebiten.Image, input *components.TextInputComponent, txt string, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	op.PrimaryAlign = text.AlignStart
	op.SecondaryAlign = text.AlignCenter
	text.Draw(screen, txt, input.Font, op)
}

// drawCursor 绘制光标
func (s *TextInputRenderSystem) drawCursor(screen *ebiten.Image, input *components.TextInputComponent, textX, textY float64) {
	// 光标在第 N 个字符后面
	runes := []rune(input.Text)
	pos := input.CursorPosition
	if pos > len(runes) {
		pos = len(runes)
	}

	var textWidth float64
	if pos > 0 {
		textWidth, _ = text.Measure(string(runes[:pos]), input.Font, 0)
	}

	cursorX := textX + textWidth
	cursorY := textY - input.Height/4
	vector.DrawFilledRect(screen, float32(cursorX), float32(cursorY), 2, float32(input.Height/2), inputTextColor, false)
}
