package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene represents one panel of the application (home, BMI, minigame, quiz...).
// Each scene has its own update and rendering logic.
type Scene interface {
	// Update updates the scene logic based on the elapsed time.
	// deltaTime is the time elapsed since the last update in seconds.
	Update(deltaTime float64)

	// Draw renders the scene to the provided screen.
	// screen is the target image where the scene should be drawn.
	Draw(screen *ebiten.Image)
}

// Enterer 可选接口：面板被激活时调用（每次激活都会调用，包括重复激活同一个面板）
type Enterer interface {
	OnEnter()
}

// Leaver 可选接口：切换到其他面板时调用
type Leaver interface {
	OnLeave()
}

// Sizer 可选接口：面板内容高度（像素），用于滚动范围和"回到顶部"按钮
// 未实现时按可视区域高度处理
type Sizer interface {
	ContentHeight() float64
}
