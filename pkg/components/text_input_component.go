package components

import "github.com/hajimehoshi/ebiten/v2/text/v2"

// TextInputComponent 文本输入框组件
// 用于 BMI 计算器的身高、体重输入
type TextInputComponent struct {
	// 输入框文本
	Text string

	// 输入框样式
	Width  float64   // 输入框宽度（像素）
	Height float64   // 输入框高度（像素）
	Font   text.Face // 文本字体

	// 光标状态
	CursorVisible    bool    // 光标是否可见（闪烁效果）
	CursorBlinkTimer float64 // 光标闪烁计时器（秒）
	CursorPosition   int     // 光标位置（字符索引）

	// 输入限制
	MaxLength   int    // 最大字符数（0 = 无限制）
	Numeric     bool   // 只接受数字和小数点
	Placeholder string // 占位符文本（输入框为空时显示）

	// 焦点状态
	IsFocused bool // 是否获得焦点（接收键盘输入）

	// 内边距
	PaddingLeft float64

	// OnSubmit 按下回车时调用
	OnSubmit func()
}
