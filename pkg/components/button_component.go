package components

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// ButtonStyle 按钮配色
type ButtonStyle struct {
	Fill     color.RGBA // 正常状态背景
	Hover    color.RGBA // 悬停状态背景
	Pressed  color.RGBA // 按下状态背景
	Selected color.RGBA // 选中状态背景（当前面板、当前标签、已选选项）
	Border   color.RGBA
	Text     color.RGBA
}

// ButtonComponent 按钮组件
// 纯数据组件：外观、文字、状态、回调
type ButtonComponent struct {
	// ID 按钮标识，如 "minigame-btn"、"btn-water"
	ID string

	// Text 按钮上显示的文字
	Text string
	// Font 文字字体
	Font text.Face
	// Style 配色
	Style ButtonStyle

	// Width / Height 按钮尺寸（像素）
	Width  float64
	Height float64

	// State 当前交互状态（Normal/Hover/Clicked/Disabled）
	State UIState
	// Enabled 是否启用（禁用时不响应点击）
	Enabled bool
	// Selected 是否处于选中状态（只影响外观）
	Selected bool
	// Fixed 为 true 时按钮位于屏幕坐标（如顶部导航栏），不随内容滚动
	Fixed bool

	// OnClick 点击回调函数（在鼠标释放时触发）
	OnClick func()
}
