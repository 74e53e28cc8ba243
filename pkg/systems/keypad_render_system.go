package systems

import (
	"image/color"

	"github.com/decker502/nutrition/pkg/components"
	"github.com/decker502/nutrition/pkg/ecs"
	"github.com/decker502/nutrition/pkg/entities"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// 数字键盘视觉常量
var (
	// 键盘背景颜色（半透明深色）
	keypadBackgroundColor = color.RGBA{R: 30, G: 30, B: 40, A: 230}

	keyNormalColor  = color.RGBA{R: 70, G: 70, B: 80, A: 255}
	keyPressedColor = color.RGBA{R: 40, G: 40, B: 50, A: 255}
	keySpecialColor = color.RGBA{R: 60, G: 60, B: 70, A: 255}
	keyDoneColor    = color.RGBA{R: 60, G: 120, B: 60, A: 255}
	keyBorderColor  = color.RGBA{R: 100, G: 100, B: 110, A: 255}
	keyTextColor    = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

// KeypadRenderSystem 数字键盘渲染系统
type KeypadRenderSystem struct {
	entityManager *ecs.EntityManager
	keyFont       text.Face
}

// NewKeypadRenderSystem 创建数字键盘渲染系统
func NewKeypadRenderSystem(em *ecs.EntityManager, font text.Face) *KeypadRenderSystem {
	return &KeypadRenderSystem{
		entityManager: em,
		keyFont:       font,
	}
}

// Draw 渲染数字键盘
func (s *KeypadRenderSystem) Draw(screen *ebiten.Image) {
	for _, kbEntity := range ecs.GetEntitiesWith1[*components.KeypadComponent](s.entityManager) {
		kb, _ := ecs.GetComponent[*components.KeypadComponent](s.entityManager, kbEntity)
		if !kb.IsVisible {
			continue
		}

		x, y, w, h := entities.KeypadBounds(kb)
		vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), float32(h), keypadBackgroundColor, true)

		for _, key := range entities.KeypadKeys(kb) {
			s.drawKey(screen, kb, key)
		}
	}
}

// drawKey 绘制单个按键
func (s *KeypadRenderSystem) drawKey(screen *ebiten.Image, kb *components.KeypadComponent, key components.KeyInfo) {
	bg := keyBackgroundColor(kb, key)
	vector.DrawFilledRect(screen, float32(key.X), float32(key.Y), float32(key.Width), float32(key.Height), bg, true)
	vector.StrokeRect(screen, float32(key.X), float32(key.Y), float32(key.Width), float32(key.Height), 1, keyBorderColor, true)

	if s.keyFont == nil || key.Label == "" {
		return
	}
	op := &text.DrawOptions{}
	op.LayoutOptions.PrimaryAlign = text.AlignCenter
	op.LayoutOptions.SecondaryAlign = text.AlignCenter
	op.GeoM.Translate(key.X+key.Width/2, key.Y+key.Height/2)
	op.ColorScale.ScaleWithColor(keyTextColor)
	text.Draw(screen, key.Label, s.keyFont, op)
}

// keyBackgroundColor 获取按键背景颜色
func keyBackgroundColor(kb *components.KeypadComponent, key components.KeyInfo) color.RGBA {
	if kb.PressedKey == key.Action {
		return keyPressedColor
	}
	switch key.Action {
	case components.KeyDone:
		return keyDoneColor
	case components.KeyBackspace, ".":
		return keySpecialColor
	default:
		return keyNormalColor
	}
}
