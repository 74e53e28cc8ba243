package systems

import (
	"log"

	"github.com/decker502/nutrition/pkg/components"
	"github.com/decker502/nutrition/pkg/ecs"
	"github.com/decker502/nutrition/pkg/entities"
	"github.com/decker502/nutrition/pkg/utils"
)

// 按键高亮持续时间（秒）
const keyPressHighlightDuration = 0.1

// KeypadSystem 数字键盘系统
// 移动端输入框获得焦点时显示键盘，处理按键输入
type KeypadSystem struct {
	entityManager *ecs.EntityManager
	pointer       utils.PointerSource
}

// NewKeypadSystem 创建数字键盘系统
func NewKeypadSystem(em *ecs.EntityManager) *KeypadSystem {
	return &KeypadSystem{
		entityManager: em,
		pointer:       utils.CurrentPointer,
	}
}

// SetPointerSource 替换指针状态来源
func (s *KeypadSystem) SetPointerSource(src utils.PointerSource) {
	s.pointer = src
}

// Update 更新数字键盘系统
// 需要在按钮和输入框系统之前调用，它们通过 ConsumeInput 判断点击是否已被消费
func (s *KeypadSystem) Update(deltaTime float64) {
	p := s.pointer()
	keypads := ecs.GetEntitiesWith1[*components.KeypadComponent](s.entityManager)

	for _, kbEntity := range keypads {
		kb, _ := ecs.GetComponent[*components.KeypadComponent](s.entityManager, kbEntity)

		// 每帧开始时重置输入消费状态
		kb.InputConsumedThisFrame = false
		if kb.SwallowRelease && p.JustReleased {
			kb.InputConsumedThisFrame = true
			kb.SwallowRelease = false
		}

		// 更新按键高亮计时器
		if kb.PressedKey != "" {
			kb.PressedTimer -= deltaTime
			if kb.PressedTimer <= 0 {
				kb.PressedKey = ""
				kb.PressedTimer = 0
			}
		}

		// 不可见时：有输入框获得焦点就弹出键盘
		if !kb.IsVisible {
			if target, ok := FocusedInput(s.entityManager); ok {
				s.show(kb, target)
			}
			continue
		}

		s.handleInput(kb, p)
	}
}

func (s *KeypadSystem) show(kb *components.KeypadComponent, target ecs.EntityID) {
	kb.IsVisible = true
	kb.TargetInputEntity = target
	log.Printf("[KeypadSystem] Keypad shown for entity %d", target)
}

// handleInput 处理触摸/点击输入
func (s *KeypadSystem) handleInput(kb *components.KeypadComponent, p utils.PointerState) {
	if !p.JustPressed {
		return
	}

	// 键盘可见时消费所有点击，避免穿透到下层控件
	kb.InputConsumedThisFrame = true
	kb.SwallowRelease = true

	x, y, w, h := entities.KeypadBounds(kb)
	if !utils.InRect(p.X, p.Y, x, y, w, h) {
		log.Printf("[KeypadSystem] Click outside keypad, closing")
		s.close(kb)
		return
	}

	for _, key := range entities.KeypadKeys(kb) {
		if utils.InRect(p.X, p.Y, key.X, key.Y, key.Width, key.Height) {
			s.handleKeyPress(kb, key.Action)
			kb.PressedKey = key.Action
			kb.PressedTimer = keyPressHighlightDuration
			return
		}
	}
}

// handleKeyPress 处理按键
func (s *KeypadSystem) handleKeyPress(kb *components.KeypadComponent, action string) {
	input, ok := ecs.GetComponent[*components.TextInputComponent](s.entityManager, kb.TargetInputEntity)
	if !ok {
		log.Printf("[KeypadSystem] Target entity %d has no TextInputComponent", kb.TargetInputEntity)
		s.close(kb)
		return
	}

	switch action {
	case components.KeyBackspace:
		DeleteCharBefore(input)
	case components.KeyDone:
		s.close(kb)
		if input.OnSubmit != nil {
			input.OnSubmit()
		}
		return
	default:
		InsertText(input, action)
	}

	input.CursorBlinkTimer = 0
	input.CursorVisible = true
}

// close 关闭键盘，目标输入框失去焦点
func (s *KeypadSystem) close(kb *components.KeypadComponent) {
	if input, ok := ecs.GetComponent[*components.TextInputComponent](s.entityManager, kb.TargetInputEntity); ok {
		Focus(input, false)
	}
	kb.IsVisible = false
	kb.TargetInputEntity = 0
}

// HideKeypad 隐藏数字键盘（切换面板时调用）
func (s *KeypadSystem) HideKeypad() {
	for _, kbEntity := range ecs.GetEntitiesWith1[*components.KeypadComponent](s.entityManager) {
		kb, _ := ecs.GetComponent[*components.KeypadComponent](s.entityManager, kbEntity)
		if kb.IsVisible {
			s.close(kb)
		}
	}
}

// IsKeypadVisible 检查数字键盘是否可见
func (s *KeypadSystem) IsKeypadVisible() bool {
	for _, kbEntity := range ecs.GetEntitiesWith1[*components.KeypadComponent](s.entityManager) {
		kb, _ := ecs.GetComponent[*components.KeypadComponent](s.entityManager, kbEntity)
		if kb.IsVisible {
			return true
		}
	}
	return false
}

// ConsumeInput 检查本帧输入是否被数字键盘消费
// 如果返回 true，其他系统应该跳过处理本帧的点击事件
func (s *KeypadSystem) ConsumeInput() bool {
	for _, kbEntity := range ecs.GetEntitiesWith1[*components.KeypadComponent](s.entityManager) {
		kb, _ := ecs.GetComponent[*components.KeypadComponent](s.entityManager, kbEntity)
		if kb.InputConsumedThisFrame {
			return true
		}
	}
	return false
}
