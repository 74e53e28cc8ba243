package components

// HoldButtonComponent 按住型按钮（触摸方向键）
// 与 ButtonComponent 配合使用：ButtonComponent 负责外观，本组件负责按住/松开
type HoldButtonComponent struct {
	// Held 当前是否被按住
	Held bool
	// OnPress 开始按住时调用一次
	OnPress func()
	// OnRelease 松开时调用一次
	OnRelease func()
}
