// Package app 提供应用的核心包装器
//
// 该包将初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"
	"math/rand"

	cueaudio "github.com/decker502/nutrition/internal/audio"
	"github.com/decker502/nutrition/pkg/components"
	"github.com/decker502/nutrition/pkg/config"
	"github.com/decker502/nutrition/pkg/content"
	"github.com/decker502/nutrition/pkg/ecs"
	"github.com/decker502/nutrition/pkg/embedded"
	"github.com/decker502/nutrition/pkg/entities"
	"github.com/decker502/nutrition/pkg/game"
	"github.com/decker502/nutrition/pkg/minigame"
	"github.com/decker502/nutrition/pkg/scenes"
	"github.com/decker502/nutrition/pkg/systems"
	"github.com/decker502/nutrition/pkg/types"
	"github.com/decker502/nutrition/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// frameDelta 固定的逻辑帧时长（ebiten 默认 60 TPS）
const frameDelta = 1.0 / 60.0

// 固定按钮
const (
	fullscreenButtonID = "fullscreen-btn"
	backToTopButtonID  = "back-to-top-btn"
	backToTopGroup     = "back-to-top"
	headerMarginX      = 10.0
	backToTopMargin    = 20.0
)

var (
	backgroundColor = color.RGBA{R: 241, G: 248, B: 233, A: 255}
	headerColor     = color.RGBA{R: 27, G: 94, B: 32, A: 255}
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// Panel 启动时显示的面板ID，为空时显示第一个面板
	Panel string
	// Fullscreen 以全屏启动
	Fullscreen bool
	// Mute 关闭所有提示音
	Mute bool
	// Seed 小游戏随机种子，0 表示使用当前时间
	Seed int64
}

// App 是应用的核心包装器，实现 ebiten.Game 接口
//
// 页眉导航栏和"回到顶部"按钮属于 App 自己的实体世界（屏幕坐标），
// 各面板场景有独立的实体世界，内容随滚动偏移。
type App struct {
	navigator  *game.PanelNavigator
	scroller   *game.Scroller
	fullscreen *game.FullscreenToggle
	scheduler  *minigame.SimScheduler
	audio      *game.AudioManager

	entityManager *ecs.EntityManager
	buttonSystem  *systems.ButtonSystem
	buttonRender  *systems.ButtonRenderSystem
	navButtons    map[string]ecs.EntityID

	pointer utils.PointerSource
	wheel   func() float64

	// clickConsumed 本帧的点击已被页眉或回到顶部按钮处理
	clickConsumed bool
	verbose       bool
}

// NewApp 创建并初始化应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入资源。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	minigameConfig, err := config.LoadMinigameConfig(config.MinigameConfigPath)
	if err != nil {
		return nil, fmt.Errorf("小游戏配置加载失败: %w", err)
	}
	cueConfig, err := config.LoadCueConfig(config.CueConfigPath)
	if err != nil {
		return nil, fmt.Errorf("提示音配置加载失败: %w", err)
	}
	registry, err := content.Load(embedded.ReadFile)
	if err != nil {
		return nil, fmt.Errorf("内容加载失败: %w", err)
	}

	// 初始化音频（音频上下文每个进程只能创建一次）
	audioContext := audio.CurrentContext()
	if audioContext == nil {
		audioContext = audio.NewContext(cueConfig.SampleRate)
	}
	matchContextRate(cueConfig, audioContext.SampleRate())
	audioManager := game.NewAudioManager(audioContext, cueaudio.NewBank(cueConfig))
	audioManager.SetMuted(cfg.Mute)
	audioManager.PreloadCues(types.AllCues())
	log.Printf("[App] AudioManager initialized (muted=%v)", cfg.Mute)

	resourceManager := game.NewResourceManager(embedded.ReadFile)
	if err := resourceManager.LoadResourceConfig(game.ResourceConfigPath); err != nil {
		return nil, fmt.Errorf("资源配置加载失败: %w", err)
	}
	resourceManager.LoadSprites()

	a := &App{
		navigator:     game.NewPanelNavigator(),
		scroller:      game.NewScroller(config.ViewportHeight, config.SmoothScrollDuration),
		fullscreen:    game.NewFullscreenToggle(game.EbitenFullscreenHost{WindowWidth: config.GameWindowWidth, WindowHeight: config.GameWindowHeight}),
		scheduler:     minigame.NewSimScheduler(),
		audio:         audioManager,
		entityManager: ecs.NewEntityManager(),
		navButtons:    make(map[string]ecs.EntityID),
		pointer:       utils.CurrentPointer,
		wheel:         utils.WheelDelta,
		verbose:       cfg.Verbose,
	}

	a.buttonSystem = systems.NewButtonSystem(a.entityManager)
	a.buttonSystem.SetPointerSource(func() utils.PointerState { return a.pointer() })
	a.buttonSystem.OnAnyClick = a.playClick
	a.buttonRender = systems.NewButtonRenderSystem(a.entityManager)

	var engineOpts []minigame.Option
	if cfg.Seed != 0 {
		engineOpts = append(engineOpts, minigame.WithRand(rand.New(rand.NewSource(cfg.Seed))))
	}

	sceneContext := &scenes.Context{
		Resources:  resourceManager,
		Content:    registry,
		Cues:       audioManager,
		Offset:     a.contentOffset,
		Pointer:    a.panelPointer,
		OnAnyClick: a.playClick,
		Blocked:    func() bool { return a.clickConsumed },
		Navigate:   a.navigate,
	}
	if err := a.registerPanels(registry, sceneContext, minigameConfig, engineOpts); err != nil {
		return nil, err
	}
	a.createHeader(registry, resourceManager)
	a.navigator.OnActivate = a.panelActivated

	startPanel := cfg.Panel
	if startPanel == "" {
		startPanel = registry.Panels()[0].ID
	}
	if err := a.navigator.Activate(startPanel); err != nil {
		return nil, fmt.Errorf("启动面板无效: %w", err)
	}
	a.scroller.JumpTo(0)

	if cfg.Fullscreen {
		a.fullscreen.Toggle()
	}
	log.Printf("[App] Started on panel %q", startPanel)
	return a, nil
}

// registerPanels 为内容中的每个面板创建场景
func (a *App) registerPanels(registry *content.Registry, ctx *scenes.Context, mgCfg *config.MinigameConfig, engineOpts []minigame.Option) error {
	mobile := utils.IsMobile()
	factories := map[string]func() game.Scene{
		"home":           func() game.Scene { return scenes.NewHomeScene(ctx) },
		"macronutrients": func() game.Scene { return scenes.NewMacronutrientsScene(ctx) },
		"guidelines":     func() game.Scene { return scenes.NewGuidelinesScene(ctx) },
		"micronutrients": func() game.Scene { return scenes.NewMicronutrientsScene(ctx) },
		"bmi":            func() game.Scene { return scenes.NewBMIScene(ctx, mobile) },
		"minigame": func() game.Scene {
			return scenes.NewMinigameScene(ctx, mgCfg, a.scheduler, mobile, engineOpts...)
		},
		"quiz": func() game.Scene { return scenes.NewQuizScene(ctx) },
	}

	for _, p := range registry.Panels() {
		factory, ok := factories[p.ID]
		if !ok {
			return fmt.Errorf("面板 %q 没有对应的场景", p.ID)
		}
		a.navigator.Register(p.ID, factory())
	}
	return nil
}

// createHeader 创建页眉导航按钮、全屏按钮和回到顶部按钮
func (a *App) createHeader(registry *content.Registry, rm *game.ResourceManager) {
	font := rm.Font(15)

	x := headerMarginX
	for _, p := range registry.Panels() {
		id := game.NavButtonID(p.ID)
		a.navButtons[p.ID] = entities.NewNavButton(a.entityManager, id, x, config.NavButtonY,
			config.NavButtonWidth, config.NavButtonHeight, p.Title, font, func() {
				a.navigate(game.PanelIDFromButton(id))
			})
		x += config.NavButtonWidth + config.NavButtonGap
	}

	entities.NewNavButton(a.entityManager, fullscreenButtonID,
		config.GameWindowWidth-config.FullscreenButtonWidth-headerMarginX, config.NavButtonY,
		config.FullscreenButtonWidth, config.NavButtonHeight, "[ ]", font, func() { a.fullscreen.Toggle() })

	size := config.BackToTopButtonSize
	top := entities.NewTextButton(a.entityManager, backToTopButtonID,
		config.GameWindowWidth-size-backToTopMargin, config.GameWindowHeight-size-backToTopMargin,
		size, size, "Top", rm.BoldFont(13), entities.PrimaryButtonStyle, a.scroller.ScrollToTop)
	button, _ := ecs.GetComponent[*components.ButtonComponent](a.entityManager, top)
	button.Fixed = true
	entities.SetGroup(a.entityManager, top, backToTopGroup)
	systems.SetGroupHidden(a.entityManager, backToTopGroup, true)
}

// navigate 切换面板（导航按钮和首页快捷入口共用）
// matchContextRate 让提示音按已有音频上下文的采样率合成，否则播放会变调
func matchContextRate(cfg *config.CueConfig, contextRate int) bool {
	if cfg.SampleRate == contextRate {
		return false
	}
	log.Printf("[App] Warning: audio context runs at %d Hz, rendering cues at that rate instead of %d Hz", contextRate, cfg.SampleRate)
	cfg.SampleRate = contextRate
	return true
}

func (a *App) navigate(panelID string) {
	if err := a.navigator.Activate(panelID); err != nil {
		log.Printf("[App] Warning: %v", err)
	}
}

// panelActivated 高亮当前导航按钮并平滑滚动到面板顶部
func (a *App) panelActivated(panelID string) {
	for id, entity := range a.navButtons {
		entities.SetSelected(a.entityManager, entity, id == panelID)
	}
	a.scroller.SetContentHeight(a.navigator.ContentHeight(config.ViewportHeight))
	a.scroller.ScrollTo(0)
}

func (a *App) playClick(buttonID string) {
	log.Printf("[App] Click %s", buttonID)
	a.audio.Play(types.CueClick)
}

// contentOffset 面板内容坐标 = 屏幕坐标 + 偏移
// 内容从页眉下方开始绘制
func (a *App) contentOffset() (float64, float64) {
	return 0, a.scroller.Offset() - config.HeaderHeight
}

// panelPointer 面板看到的指针状态：页眉区域内的指针被屏蔽
func (a *App) panelPointer() utils.PointerState {
	return maskHeader(a.pointer(), config.HeaderHeight)
}

// maskHeader 去掉位于页眉（y < headerHeight）内的指针
func maskHeader(p utils.PointerState, headerHeight float64) utils.PointerState {
	out := p
	out.Held = nil
	for _, h := range p.Held {
		if h.Y >= headerHeight {
			out.Held = append(out.Held, h)
		}
	}
	if p.Y < headerHeight {
		// 移出所有控件范围
		out.X, out.Y = -1, -1
		out.Pressed, out.JustPressed, out.JustReleased = false, false, false
	}
	return out
}

// Update 更新逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	a.fullscreen.Update()

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		a.fullscreen.Toggle()
	}

	a.update(frameDelta)
	return nil
}

func (a *App) update(deltaTime float64) {
	a.scroller.SetContentHeight(a.navigator.ContentHeight(config.ViewportHeight))
	if d := a.wheel(); d != 0 {
		a.scroller.ScrollBy(d * config.WheelScrollStep)
	}
	a.scroller.Update(deltaTime)
	systems.SetGroupHidden(a.entityManager, backToTopGroup, !a.backToTopVisible())

	a.clickConsumed = a.buttonSystem.Update(deltaTime)
	a.navigator.Update(deltaTime)

	// 小游戏的帧回调和倒计时
	a.scheduler.Advance(deltaTime)
}

// backToTopVisible 可以滚动且接近底部时显示回到顶部按钮
func (a *App) backToTopVisible() bool {
	return a.scroller.MaxOffset() > 0 && a.scroller.NearBottom(config.BackToTopThreshold)
}

// Draw 绘制画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)
	a.navigator.Draw(screen)

	vector.DrawFilledRect(screen, 0, 0, config.GameWindowWidth, config.HeaderHeight, headerColor, false)
	a.buttonRender.Draw(screen, true)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	// 先填充黑色背景（全屏时左右两边为黑色）
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.GameWindowWidth, config.GameWindowHeight
}

// Navigator 返回面板导航器
func (a *App) Navigator() *game.PanelNavigator {
	return a.navigator
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
