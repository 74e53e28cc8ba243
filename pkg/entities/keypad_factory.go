package entities

import (
	"log"

	"github.com/decker502/nutrition/pkg/components"
	"github.com/decker502/nutrition/pkg/ecs"
)

// 数字键盘布局常量
const (
	KeypadKeyWidth  = 72.0 // 按键宽度
	KeypadKeyHeight = 44.0 // 按键高度
	KeypadSpacing   = 6.0  // 按键间距
	KeypadPadding   = 10.0 // 键盘边距
)

// NewKeypadEntity 创建数字键盘实体
// 键盘水平居中，固定在屏幕底部，初始不可见
func NewKeypadEntity(em *ecs.EntityManager, screenWidth, screenHeight float64) ecs.EntityID {
	entity := em.CreateEntity()

	rows := float64(len(components.KeypadLayout))
	width := 3*KeypadKeyWidth + 2*KeypadSpacing
	height := rows*KeypadKeyHeight + (rows-1)*KeypadSpacing

	kb := &components.KeypadComponent{
		X:          (screenWidth - width) / 2,
		Y:          screenHeight - height - KeypadPadding,
		KeyWidth:   KeypadKeyWidth,
		KeyHeight:  KeypadKeyHeight,
		KeySpacing: KeypadSpacing,
	}
	ecs.AddComponent(em, entity, kb)

	log.Printf("[KeypadFactory] Created keypad entity (ID=%d, y=%.1f)", entity, kb.Y)
	return entity
}

// KeypadKeys 计算所有按键的位置和尺寸
// 只有一个按键的行（确定键）占满整行宽度
func KeypadKeys(kb *components.KeypadComponent) []components.KeyInfo {
	rowWidth := 3*kb.KeyWidth + 2*kb.KeySpacing

	var keys []components.KeyInfo
	y := kb.Y
	for _, row := range components.KeypadLayout {
		keyWidth := kb.KeyWidth
		if len(row) == 1 {
			keyWidth = rowWidth
		}
		x := kb.X
		for _, action := range row {
			keys = append(keys, components.KeyInfo{
				Label:  keypadLabel(action),
				Action: action,
				X:      x,
				Y:      y,
				Width:  keyWidth,
				Height: kb.KeyHeight,
			})
			x += keyWidth + kb.KeySpacing
		}
		y += kb.KeyHeight + kb.KeySpacing
	}
	return keys
}

// KeypadBounds 键盘区域（含边距）
func KeypadBounds(kb *components.KeypadComponent) (x, y, w, h float64) {
	rows := float64(len(components.KeypadLayout))
	w = 3*kb.KeyWidth + 2*kb.KeySpacing + 2*KeypadPadding
	h = rows*kb.KeyHeight + (rows-1)*kb.KeySpacing + 2*KeypadPadding
	return kb.X - KeypadPadding, kb.Y - KeypadPadding, w, h
}

func keypadLabel(action string) string {
	switch action {
	case components.KeyBackspace:
		return "<-"
	case components.KeyDone:
		return "Done"
	default:
		return action
	}
}
