package components

import "github.com/decker502/nutrition/pkg/ecs"

// KeypadComponent 屏幕数字键盘（移动端输入身高体重）
type KeypadComponent struct {
	// 显示状态
	IsVisible bool

	// 目标输入实体（获得焦点的输入框）
	TargetInputEntity ecs.EntityID

	// 按下反馈
	PressedKey   string
	PressedTimer float64

	// 本帧是否消费了指针输入（阻止点击穿透到下面的控件）
	InputConsumedThisFrame bool
	// 按下已被消费，对应的释放也要消费（否则释放会触发下层按钮）
	SwallowRelease bool

	// 布局（屏幕坐标，键盘固定在屏幕底部）
	X, Y       float64
	KeyWidth   float64
	KeyHeight  float64
	KeySpacing float64
}

// 特殊按键动作
const (
	KeyBackspace = "BACKSPACE"
	KeyDone      = "DONE"
)

// KeypadLayout 数字键盘布局
var KeypadLayout = [][]string{
	{"1", "2", "3"},
	{"4", "5", "6"},
	{"7", "8", "9"},
	{".", "0", KeyBackspace},
	{KeyDone},
}

// KeyInfo 按键信息（用于布局计算和点击检测）
type KeyInfo struct {
	Label  string
	Action string
	X, Y   float64
	Width  float64
	Height float64
}
