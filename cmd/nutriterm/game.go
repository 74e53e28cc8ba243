package main

import (
	"fmt"
	"log"
	"time"
	"unicode"

	"github.com/decker502/nutrition/pkg/config"
	"github.com/decker502/nutrition/pkg/minigame"
	"github.com/decker502/nutrition/pkg/types"
	"github.com/gdamore/tcell/v2"
)

// terminalGame 终端宿主：持有引擎、显示列表和 HUD 状态
type terminalGame struct {
	engine  *minigame.Engine
	sched   *minigame.SimScheduler
	display *minigame.DisplayList
	holds   *holdTracker
	sprites map[string]spriteStyle

	stats  minigame.Stats
	banner string

	// mouseDown 上一个鼠标事件时左键是否按下，只在按下沿开始游戏
	mouseDown bool
}

func newTerminalGame(cfg *config.MinigameConfig, cues types.CuePlayer, sprites map[string]spriteStyle, opts ...minigame.Option) *terminalGame {
	g := &terminalGame{
		sched:   minigame.NewSimScheduler(),
		display: minigame.NewDisplayList(),
		holds:   newHoldTracker(holdTimeout),
		sprites: sprites,
	}

	engineOpts := []minigame.Option{
		minigame.WithSurface(g.display),
		minigame.WithCuePlayer(cues),
		minigame.WithObserver(minigame.ObserverFuncs{
			OnStats: func(stats minigame.Stats) { g.stats = stats },
			OnEnded: func(final minigame.Session) {
				g.banner = fmt.Sprintf("Your score: %d", final.Score)
			},
		}),
	}
	g.engine = minigame.NewEngine(cfg, g.sched, append(engineOpts, opts...)...)

	session := g.engine.Config().Session
	g.stats = minigame.Stats{Lives: session.Lives, TimeLeft: session.Seconds}
	g.engine.EnterIdle()
	return g
}

func (g *terminalGame) fieldSize() (float64, float64) {
	f := g.engine.Config().Field
	return f.Width, f.Height
}

// handleEvent 处理一个 tcell 事件，返回 false 表示退出
func (g *terminalGame) handleEvent(ev tcell.Event, now time.Time, view fieldView) bool {
	switch e := ev.(type) {
	case *tcell.EventKey:
		return g.handleKey(e, now)
	case *tcell.EventMouse:
		down := e.Buttons()&tcell.Button1 != 0
		if down && !g.mouseDown {
			if x, y := e.Position(); view.contains(x, y) {
				g.start()
			}
		}
		g.mouseDown = down
	}
	return true
}

func (g *terminalGame) handleKey(e *tcell.EventKey, now time.Time) bool {
	switch e.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyLeft:
		g.press(minigame.Left, now)
	case tcell.KeyRight:
		g.press(minigame.Right, now)
	case tcell.KeyEnter:
		g.start()
	case tcell.KeyRune:
		switch unicode.ToLower(e.Rune()) {
		case 'q':
			return false
		case 'a':
			g.press(minigame.Left, now)
		case 'd':
			g.press(minigame.Right, now)
		case ' ':
			g.start()
		}
	}
	return true
}

// press 终端一次只报告一个按键，按下一个方向时松开另一个方向
func (g *terminalGame) press(d minigame.Direction, now time.Time) {
	other := minigame.Right
	if d == minigame.Right {
		other = minigame.Left
	}
	if g.holds.Drop(other) {
		g.engine.Release(other)
	}
	g.holds.Press(d, now)
	g.engine.Press(d)
}

func (g *terminalGame) start() {
	if g.engine.HandleClick() {
		g.banner = ""
		log.Printf("[Nutriterm] Session %s started", g.engine.Session().ID)
	}
}

// update 松开超时的方向键并推进引擎时钟
func (g *terminalGame) update(deltaTime float64, now time.Time) {
	for _, d := range g.holds.Expire(now) {
		g.engine.Release(d)
	}
	g.sched.Advance(deltaTime)
}
