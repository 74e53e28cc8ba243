package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/decker502/nutrition/pkg/app"
	"github.com/decker502/nutrition/pkg/config"
	"github.com/decker502/nutrition/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
)

var (
	verbose    = flag.Bool("verbose", false, "显示详细调试信息")
	panel      = flag.String("panel", "", "启动时显示的面板ID（home, macronutrients, guidelines, micronutrients, bmi, minigame, quiz）")
	fullscreen = flag.Bool("fullscreen", false, "以全屏模式启动")
	mute       = flag.Bool("mute", false, "关闭提示音")
	seed       = flag.Int64("seed", 0, "小游戏随机种子（0 = 按当前时间）")
)

func main() {
	flag.Parse()

	// 初始化嵌入资源（dataFS 在 embed.go 中声明）
	embedded.Init(dataFS)

	nutritionApp, err := app.NewApp(app.Config{
		Verbose:    *verbose,
		Panel:      *panel,
		Fullscreen: *fullscreen,
		Mute:       *mute,
		Seed:       *seed,
	})
	if err != nil {
		fatalf("应用初始化失败: %v", err)
	}

	ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(nutritionApp); err != nil {
		fatalf("运行失败: %v", err)
	}
}

// fatalf 直接写到标准错误：非详细模式下 NewApp 已关闭 log 输出
func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
