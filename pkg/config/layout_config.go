package config

// 布局配置常量
// 本文件定义了应用窗口、页眉导航栏和各面板的布局参数

// Window Configuration (窗口配置)
const (
	// GameWindowWidth 逻辑屏幕宽度（像素），窗口缩放由 Ebitengine 处理
	GameWindowWidth = 960

	// GameWindowHeight 逻辑屏幕高度（像素）
	GameWindowHeight = 720

	// WindowTitle 窗口标题
	WindowTitle = "Nutrition Explorer"
)

// Header Configuration (页眉配置)
const (
	// HeaderHeight 页眉导航栏高度，面板内容从此处开始绘制
	// 导航滚动时目标位置需要减去此高度
	HeaderHeight = 60.0

	// NavButtonWidth 导航按钮宽度
	NavButtonWidth = 112.0

	// NavButtonHeight 导航按钮高度
	NavButtonHeight = 32.0

	// NavButtonGap 导航按钮间距
	NavButtonGap = 6.0

	// NavButtonY 导航按钮的Y坐标
	NavButtonY = (HeaderHeight - NavButtonHeight) / 2

	// FullscreenButtonWidth 全屏按钮宽度（位于页眉最右侧）
	FullscreenButtonWidth = 40.0
)

// Panel Configuration (面板配置)
const (
	// PanelPaddingX 面板内容左右内边距
	PanelPaddingX = 40.0

	// PanelPaddingTop 面板内容顶部内边距
	PanelPaddingTop = 24.0

	// PanelContentWidth 面板内容可用宽度
	PanelContentWidth = GameWindowWidth - 2*PanelPaddingX

	// ViewportHeight 页眉以下的可视区域高度
	ViewportHeight = GameWindowHeight - HeaderHeight
)

// Scroll Configuration (滚动配置)
const (
	// BackToTopThreshold 距离文档底部多少像素以内时显示"回到顶部"按钮
	BackToTopThreshold = 100.0

	// SmoothScrollDuration 平滑滚动动画时长（秒）
	SmoothScrollDuration = 0.35

	// WheelScrollStep 鼠标滚轮每格滚动的像素数
	WheelScrollStep = 40.0

	// BackToTopButtonSize 回到顶部按钮尺寸
	BackToTopButtonSize = 44.0
)

// Minigame Layout (小游戏布局)
// 游戏区域尺寸来自 data/minigame.yaml，这里只定义在面板中的摆放位置
const (
	// MinigameFieldX 游戏画布在面板中的X坐标
	MinigameFieldX = 80.0

	// MinigameFieldY 游戏画布在面板中的Y坐标
	MinigameFieldY = 70.0

	// TouchButtonWidth 触摸左右按钮宽度
	TouchButtonWidth = 120.0

	// TouchButtonHeight 触摸左右按钮高度
	TouchButtonHeight = 56.0
)
