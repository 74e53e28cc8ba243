//go:build !mobile

package utils

import "os"

// MobileEmulateEnv 设置为 "1" 时桌面端也显示触摸控件（用于本地调试）
const MobileEmulateEnv = "NUTRITION_MOBILE_EMULATE"

// IsMobile 检测当前是否在移动设备上运行
// 桌面端编译时返回 false，除非设置了 NUTRITION_MOBILE_EMULATE=1
func IsMobile() bool {
	return os.Getenv(MobileEmulateEnv) == "1"
}
