package systems

import (
	"log"
	"strings"

	"github.com/decker502/nutrition/pkg/components"
	"github.com/decker502/nutrition/pkg/ecs"
	"github.com/decker502/nutrition/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// KeyboardSource 本帧的键盘输入，测试中替换为固定输入
type KeyboardSource interface {
	// Chars 本帧输入的字符
	Chars() []rune
	// Repeat 按键是否在本帧触发（首帧立即触发，按住 30 帧后每 3 帧触发一次）
	Repeat(key ebiten.Key) bool
	// JustPressed 按键是否在本帧刚按下
	JustPressed(key ebiten.Key) bool
}

type ebitenKeyboard struct{}

func (ebitenKeyboard) Chars() []rune {
	return ebiten.AppendInputChars(nil)
}

func (ebitenKeyboard) Repeat(key ebiten.Key) bool {
	d := inpututil.KeyPressDuration(key)
	return d == 1 || (d >= 30 && d%3 == 0)
}

func (ebitenKeyboard) JustPressed(key ebiten.Key) bool {
	return inpututil.IsKeyJustPressed(key)
}

// TextInputSystem 文本输入系统
// 处理输入框的点击聚焦、键盘输入、光标闪烁
type TextInputSystem struct {
	entityManager *ecs.EntityManager
	keyboard      KeyboardSource
	pointer       utils.PointerSource
	offset        OffsetFunc

	// Blocked 返回 true 时本帧的点击已被其他控件（数字键盘）消费
	Blocked func() bool
}

// NewTextInputSystem 创建文本输入系统
func NewTextInputSystem(em *ecs.EntityManager) *TextInputSystem {
	return &TextInputSystem{
		entityManager: em,
		keyboard:      ebitenKeyboard{},
		pointer:       utils.CurrentPointer,
		offset:        noOffset,
	}
}

// SetKeyboardSource 替换键盘输入来源
func (s *TextInputSystem) SetKeyboardSource(k KeyboardSource) {
	s.keyboard = k
}

// SetPointerSource 替换指针状态来源
func (s *TextInputSystem) SetPointerSource(src utils.PointerSource) {
	s.pointer = src
}

// SetOffset 设置滚动偏移来源
func (s *TextInputSystem) SetOffset(offset OffsetFunc) {
	if offset == nil {
		offset = noOffset
	}
	s.offset = offset
}

// Update 更新文本输入系统
func (s *TextInputSystem) Update(deltaTime float64) {
	s.updateFocus()

	entities := ecs.GetEntitiesWith1[*components.TextInputComponent](s.entityManager)
	for _, entityID := range entities {
		input, _ := ecs.GetComponent[*components.TextInputComponent](s.entityManager, entityID)

		// 只处理获得焦点的输入框
		if !input.IsFocused {
			input.CursorVisible = false
			continue
		}

		s.updateCursorBlink(input, deltaTime)

		// 移动端：由数字键盘输入
		if utils.IsMobile() {
			continue
		}
		s.handleKeyboardInput(input)
	}
}

// updateFocus 点击输入框获得焦点，点击其他位置失去焦点
func (s *TextInputSystem) updateFocus() {
	p := s.pointer()
	if !p.JustPressed || (s.Blocked != nil && s.Blocked()) {
		return
	}
	dx, dy := s.offset()
	px, py := p.X+dx, p.Y+dy

	entities := ecs.GetEntitiesWith2[*components.TextInputComponent, *components.PositionComponent](s.entityManager)
	for _, entityID := range entities {
		input, _ := ecs.GetComponent[*components.TextInputComponent](s.entityManager, entityID)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, entityID)
		Focus(input, utils.InRect(px, py, pos.X, pos.Y, input.Width, input.Height))
	}
}

// Focus 设置输入框焦点，获得焦点时光标移到末尾并立即可见
func Focus(input *components.TextInputComponent, focused bool) {
	if focused && !input.IsFocused {
		input.CursorPosition = len([]rune(input.Text))
		input.CursorBlinkTimer = 0
		input.CursorVisible = true
	}
	input.IsFocused = focused
}

// FocusedInput 返回获得焦点的输入框实体
func FocusedInput(em *ecs.EntityManager) (ecs.EntityID, bool) {
	for _, id := range ecs.GetEntitiesWith1[*components.TextInputComponent](em) {
		input, _ := ecs.GetComponent[*components.TextInputComponent](em, id)
		if input.IsFocused {
			return id, true
		}
	}
	return 0, false
}

// updateCursorBlink 更新光标闪烁状态
func (s *TextInputSystem) updateCursorBlink(input *components.TextInputComponent, deltaTime float64) {
	const blinkInterval = 0.5 // 光标闪烁间隔（秒）

	input.CursorBlinkTimer += deltaTime
	if input.CursorBlinkTimer >= blinkInterval {
		input.CursorBlinkTimer = 0
		input.CursorVisible = !input.CursorVisible
	}
}

// handleKeyboardInput 处理键盘输入
func (s *TextInputSystem) handleKeyboardInput(input *components.TextInputComponent) {
	edited := false

	if runes := s.keyboard.Chars(); len(runes) > 0 {
		InsertText(input, string(runes))
		edited = true
	}
	if s.keyboard.Repeat(ebiten.KeyBackspace) {
		DeleteCharBefore(input)
		edited = true
	}
	if s.keyboard.Repeat(ebiten.KeyDelete) {
		deleteCharAfter(input)
		edited = true
	}
	if s.keyboard.Repeat(ebiten.KeyArrowLeft) && input.CursorPosition > 0 {
		input.CursorPosition--
		edited = true
	}
	if s.keyboard.Repeat(ebiten.KeyArrowRight) && input.CursorPosition < len([]rune(input.Text)) {
		input.CursorPosition++
		edited = true
	}
	if s.keyboard.JustPressed(ebiten.KeyHome) {
		input.CursorPosition = 0
		edited = true
	}
	if s.keyboard.JustPressed(ebiten.KeyEnd) {
		input.CursorPosition = len([]rune(input.Text))
		edited = true
	}
	if s.keyboard.JustPressed(ebiten.KeyEnter) && input.OnSubmit != nil {
		input.OnSubmit()
	}

	if edited {
		// 编辑时光标应该可见
		input.CursorBlinkTimer = 0
		input.CursorVisible = true
	}
}

// InsertText 在光标位置插入文本
// 数字输入框只接受数字和小数点
func InsertText(input *components.TextInputComponent, text string) {
	hasDot := strings.ContainsRune(input.Text, '.')
	filtered := make([]rune, 0, len(text))
	for _, r := range text {
		if !acceptRune(input, r) {
			continue
		}
		// 数字输入框最多一个小数点
		if input.Numeric && r == '.' {
			if hasDot {
				continue
			}
			hasDot = true
		}
		filtered = append(filtered, r)
	}
	if len(filtered) == 0 {
		return
	}

	runes := []rune(input.Text)
	if input.MaxLength > 0 && len(runes)+len(filtered) > input.MaxLength {
		log.Printf("[TextInputSystem] 达到最大长度限制 (%d 字符)", input.MaxLength)
		return
	}
	if input.CursorPosition > len(runes) {
		input.CursorPosition = len(runes)
	}

	result := make([]rune, 0, len(runes)+len(filtered))
	result = append(result, runes[:input.CursorPosition]...)
	result = append(result, filtered...)
	result = append(result, runes[input.CursorPosition:]...)

	input.Text = string(result)
	input.CursorPosition += len(filtered)
}

func acceptRune(input *components.TextInputComponent, r rune) bool {
	if input.Numeric {
		return (r >= '0' && r <= '9') || r == '.'
	}
	return r >= ' ' && r != 0x7f
}

// DeleteCharBefore 删除光标前的字符（退格）
func DeleteCharBefore(input *components.TextInputComponent) {
	if input.CursorPosition == 0 {
		return
	}

	runes := []rune(input.Text)
	if input.CursorPosition > len(runes) {
		input.CursorPosition = len(runes)
	}
	result := append(runes[:input.CursorPosition-1:input.CursorPosition-1], runes[input.CursorPosition:]...)
	input.Text = string(result)
	input.CursorPosition--
}

// deleteCharAfter 删除光标后的字符（Delete键）
func deleteCharAfter(input *components.TextInputComponent) {
	runes := []rune(input.Text)
	if input.CursorPosition >= len(runes) {
		return
	}

	result := append(runes[:input.CursorPosition:input.CursorPosition], runes[input.CursorPosition+1:]...)
	input.Text = string(result)
}
