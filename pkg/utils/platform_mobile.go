//go:build mobile

package utils

// MobileEmulateEnv 移动端构建中无效，保留以便代码在两种构建下一致
const MobileEmulateEnv = "NUTRITION_MOBILE_EMULATE"

// IsMobile 检测当前是否在移动设备上运行
// 移动端编译时总是返回 true（小游戏显示触摸方向键，BMI 输入使用数字键盘）
func IsMobile() bool {
	return true
}
