package scenes

import (
	"fmt"
	"image"
	"image/color"
	"log"

	"github.com/decker502/nutrition/pkg/config"
	"github.com/decker502/nutrition/pkg/entities"
	"github.com/decker502/nutrition/pkg/minigame"
	"github.com/decker502/nutrition/pkg/systems"
	"github.com/decker502/nutrition/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// 画布配色
var (
	fieldColor  = color.RGBA{R: 0x69, G: 0x69, B: 0x69, A: 0xff}
	promptColor = color.RGBA{R: 0x00, G: 0xff, B: 0x55, A: 0xff}
)

const (
	hudGap       = 30.0
	promptSize   = 28
	touchGap     = 20.0
	scoreMessage = "Your score: %d"
)

// KeySource 方向键状态来源（测试中替换）
type KeySource interface {
	JustPressed(key ebiten.Key) bool
	JustReleased(key ebiten.Key) bool
}

type ebitenKeys struct{}

func (ebitenKeys) JustPressed(key ebiten.Key) bool  { return inpututil.IsKeyJustPressed(key) }
func (ebitenKeys) JustReleased(key ebiten.Key) bool { return inpututil.IsKeyJustReleased(key) }

// 每个方向对应的按键
var directionKeys = map[minigame.Direction][]ebiten.Key{
	minigame.Left:  {ebiten.KeyArrowLeft, ebiten.KeyA},
	minigame.Right: {ebiten.KeyArrowRight, ebiten.KeyD},
}

// MinigameScene hosts the catch-the-healthy-food engine.
//
// The engine draws into a DisplayList which this scene renders on the
// grey field; HUD values arrive through the engine observer. Clicking the
// field starts a session; the arrow keys (or A/D) and, on touch devices,
// the on-screen hold buttons move the basket.
type MinigameScene struct {
	panel
	engine  *minigame.Engine
	display *minigame.DisplayList
	keys    KeySource

	holdButtons *systems.HoldButtonSystem

	stats  minigame.Stats
	banner string // 结算提示，如 "Your score: 7"

	fieldX, fieldY float64
	fieldW, fieldH float64
}

// NewMinigameScene creates the minigame panel.
//
// Parameters:
//   - ctx: shared scene context
//   - cfg: minigame parameters (nil uses the defaults)
//   - sched: the scheduler the host advances every frame
//   - mobile: when true on-screen left/right hold buttons are shown
//   - opts: extra engine options (e.g. minigame.WithRand for a fixed seed)
func NewMinigameScene(ctx *Context, cfg *config.MinigameConfig, sched minigame.Scheduler, mobile bool, opts ...minigame.Option) *MinigameScene {
	s := &MinigameScene{panel: newPanel(ctx), keys: ebitenKeys{}}
	s.display = minigame.NewDisplayList()

	engineOpts := []minigame.Option{
		minigame.WithSurface(s.display),
		minigame.WithCuePlayer(s.ctx.Cues),
		minigame.WithObserver(minigame.ObserverFuncs{
			OnStats: func(stats minigame.Stats) { s.stats = stats },
			OnEnded: s.sessionEnded,
		}),
	}
	s.engine = minigame.NewEngine(cfg, sched, append(engineOpts, opts...)...)
	s.stats = minigame.Stats{
		Lives:    s.engine.Config().Session.Lives,
		TimeLeft: s.engine.Config().Session.Seconds,
	}

	s.holdButtons = systems.NewHoldButtonSystem(s.entityManager)
	s.holdButtons.SetPointerSource(s.ctx.Pointer)
	s.holdButtons.SetOffset(s.ctx.Offset)

	s.layout(mobile)
	s.engine.EnterIdle()
	return s
}

// SetKeySource replaces the keyboard source.
func (s *MinigameScene) SetKeySource(k KeySource) {
	s.keys = k
}

// Engine returns the underlying engine.
func (s *MinigameScene) Engine() *minigame.Engine {
	return s.engine
}

// Stats returns the latest HUD values.
func (s *MinigameScene) Stats() minigame.Stats {
	return s.stats
}

// Banner returns the final score message of the last session ("" while
// a session is running or before the first one).
func (s *MinigameScene) Banner() string {
	return s.banner
}

func (s *MinigameScene) layout(mobile bool) {
	s.reset()
	cfg := s.engine.Config()

	y := s.addTitle("Catch the Healthy Food")
	s.fieldX, s.fieldY = config.MinigameFieldX, max(config.MinigameFieldY, y)
	s.fieldW, s.fieldH = cfg.Field.Width, cfg.Field.Height

	// 右侧说明
	hudX := s.fieldX + s.fieldW + hudGap
	hudW := config.PanelPaddingX + config.PanelContentWidth - hudX
	hy := s.fieldY + 4*lineHeight(s.bold(headingSize))
	hy = s.addParagraph("Move the basket to catch healthy food. Junk food costs a life.", s.font(bodySize), hudX, hy, hudW, textColor)
	hy = s.addParagraph("Use the Left/Right arrow keys or A/D.", s.font(bodySize), hudX, hy+sectionSpace/2, hudW, mutedColor)
	bottom := max(s.fieldY+s.fieldH, hy)

	if mobile {
		by := s.fieldY + s.fieldH + touchGap
		entities.NewHoldButton(s.entityManager, "left-btn", s.fieldX, by,
			config.TouchButtonWidth, config.TouchButtonHeight, "<", s.bold(headingSize),
			func() { s.engine.Press(minigame.Left) }, func() { s.engine.Release(minigame.Left) })
		entities.NewHoldButton(s.entityManager, "right-btn", s.fieldX+s.fieldW-config.TouchButtonWidth, by,
			config.TouchButtonWidth, config.TouchButtonHeight, ">", s.bold(headingSize),
			func() { s.engine.Press(minigame.Right) }, func() { s.engine.Release(minigame.Right) })
		bottom = by + config.TouchButtonHeight
	}
	s.finish(bottom)
}

func (s *MinigameScene) sessionEnded(final minigame.Session) {
	s.banner = fmt.Sprintf(scoreMessage, final.Score)
	log.Printf("[MinigameScene] %s", s.banner)
}

// OnEnter shows the idle screen, stopping any session left running.
func (s *MinigameScene) OnEnter() {
	s.engine.EnterIdle()
	s.engine.DrawIdle()
}

// OnLeave stops the game and releases held controls.
func (s *MinigameScene) OnLeave() {
	s.holdButtons.ReleaseAll()
	s.engine.EnterIdle()
}

// Update forwards input to the engine. The engine clocks themselves are
// advanced by the host scheduler.
func (s *MinigameScene) Update(deltaTime float64) {
	s.holdButtons.Update(deltaTime)
	s.buttonSystem.Update(deltaTime)
	s.handleKeys()
	s.handleFieldClick()
}

func (s *MinigameScene) handleKeys() {
	for _, d := range []minigame.Direction{minigame.Left, minigame.Right} {
		for _, key := range directionKeys[d] {
			if s.keys.JustPressed(key) {
				s.engine.Press(d)
			}
			if s.keys.JustReleased(key) {
				s.engine.Release(d)
			}
		}
	}
}

// handleFieldClick 点击画布开始（或重新开始）一局
func (s *MinigameScene) handleFieldClick() {
	if s.ctx.Blocked() {
		return
	}
	dx, dy := s.ctx.Offset()
	p := s.ctx.Pointer().Offset(dx, dy)
	if !p.JustReleased || !utils.InRect(p.X, p.Y, s.fieldX, s.fieldY, s.fieldW, s.fieldH) {
		return
	}
	if s.engine.HandleClick() {
		s.banner = ""
	}
}

// Draw renders the field, the engine display list and the HUD.
func (s *MinigameScene) Draw(screen *ebiten.Image) {
	s.drawPanel(screen)

	fx, fy := s.toScreen(s.fieldX, s.fieldY)
	vector.DrawFilledRect(screen, float32(fx), float32(fy), float32(s.fieldW), float32(s.fieldH), fieldColor, false)

	// 精灵超出画布的部分不绘制
	field := screen.SubImage(image.Rect(int(fx), int(fy), int(fx+s.fieldW), int(fy+s.fieldH))).(*ebiten.Image)
	for _, cmd := range s.display.Commands() {
		s.drawSprite(field, cmd.Key, s.fieldX+cmd.X, s.fieldY+cmd.Y, cmd.W, cmd.H)
	}

	if prompt := s.display.Prompt(); prompt != "" {
		s.drawLabel(screen, label{
			Text: prompt, Face: s.bold(promptSize), Color: promptColor, Centered: true,
			X: s.fieldX + s.fieldW/2, Y: s.fieldY + s.fieldH/2 - promptSize/2,
		})
	}

	s.drawHUD(screen)
}

func (s *MinigameScene) drawHUD(screen *ebiten.Image) {
	face := s.bold(headingSize)
	x, y := s.fieldX+s.fieldW+hudGap, s.fieldY
	for _, line := range []string{
		fmt.Sprintf("Score: %d", s.stats.Score),
		fmt.Sprintf("Time: %ds", s.stats.TimeLeft),
		fmt.Sprintf("Lives: %d", s.stats.Lives),
	} {
		s.drawLabel(screen, label{Text: line, Face: face, X: x, Y: y, Color: textColor})
		y += lineHeight(face)
	}
	if s.banner != "" {
		s.drawLabel(screen, label{Text: s.banner, Face: face, X: x, Y: s.fieldY + s.fieldH - lineHeight(face), Color: titleColor})
	}
}
