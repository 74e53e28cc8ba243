package main

import (
	"fmt"
	"log"
	"math"

	"github.com/decker502/nutrition/pkg/embedded"
	"github.com/decker502/nutrition/pkg/game"
	"github.com/decker502/nutrition/pkg/minigame"
	"github.com/gdamore/tcell/v2"
)

// cellAspect 终端单元格的高宽比
const cellAspect = 2.0

const helpText = "Click / Space: start   ←/→ or A/D: move   Esc/Q: quit"

var (
	fieldStyle  = tcell.StyleDefault.Background(tcell.NewRGBColor(0x69, 0x69, 0x69))
	borderStyle = tcell.StyleDefault.Foreground(tcell.ColorGray)
	hudStyle    = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	promptStyle = fieldStyle.Foreground(tcell.NewRGBColor(0x00, 0xff, 0x55)).Bold(true)
	helpStyle   = tcell.StyleDefault.Foreground(tcell.ColorGray)
)

// 按 resources.yaml 中的形状选择字符
var shapeRunes = map[string]rune{
	game.ShapeRect:     '█',
	game.ShapeCircle:   '●',
	game.ShapeTriangle: '▲',
	game.ShapeStack:    '≡',
}

// spriteStyle 精灵在终端中的字符和颜色
type spriteStyle struct {
	Rune  rune
	Style tcell.Style
}

func loadSpriteStyles() map[string]spriteStyle {
	data, err := embedded.ReadFile(game.ResourceConfigPath)
	if err != nil {
		log.Printf("[Nutriterm] Warning: %v", err)
		return map[string]spriteStyle{}
	}
	cfg, err := game.ParseResourceConfig(data)
	if err != nil {
		log.Printf("[Nutriterm] Warning: %v", err)
		return map[string]spriteStyle{}
	}
	return spriteStyles(cfg)
}

func spriteStyles(cfg *game.ResourceConfig) map[string]spriteStyle {
	styles := make(map[string]spriteStyle, len(cfg.Sprites))
	for _, s := range cfg.Sprites {
		r, ok := shapeRunes[s.Shape]
		if !ok {
			r = '■'
		}
		style := fieldStyle
		if c, err := game.ParseHexColor(s.Color); err == nil {
			style = style.Foreground(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
		}
		styles[s.ID] = spriteStyle{Rune: r, Style: style}
	}
	return styles
}

// fieldView 场地在终端中的位置（单元格，不含边框）
type fieldView struct {
	X, Y, W, H     int
	fieldW, fieldH float64
}

// layoutField 把场地按比例缩放到终端中
// 第 0 行为 HUD，第 1 行为上边框，最后两行为下边框和操作说明
func layoutField(screenW, screenH int, fieldW, fieldH float64) fieldView {
	availW, availH := screenW-2, screenH-4

	h := availH
	w := int(float64(h) * cellAspect * fieldW / fieldH)
	if w > availW {
		w = availW
		h = int(float64(w) / cellAspect * fieldH / fieldW)
	}
	w, h = max(w, 1), max(h, 1)

	return fieldView{X: max((screenW-w)/2, 1), Y: 2, W: w, H: h, fieldW: fieldW, fieldH: fieldH}
}

func (v fieldView) contains(cx, cy int) bool {
	return cx >= v.X && cx < v.X+v.W && cy >= v.Y && cy < v.Y+v.H
}

// cellRect 场地坐标矩形换算为单元格范围 [x0, x1) × [y0, y1)，至少占一个单元格
func (v fieldView) cellRect(x, y, w, h float64) (x0, y0, x1, y1 int) {
	cw, ch := float64(v.W), float64(v.H)
	x0 = v.X + int(math.Floor(x*cw/v.fieldW))
	y0 = v.Y + int(math.Floor(y*ch/v.fieldH))
	x1 = v.X + int(math.Ceil((x+w)*cw/v.fieldW))
	y1 = v.Y + int(math.Ceil((y+h)*ch/v.fieldH))
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	return x0, y0, x1, y1
}

func hudText(stats minigame.Stats) string {
	return fmt.Sprintf("Score: %d   Time: %ds   Lives: %d", stats.Score, stats.TimeLeft, stats.Lives)
}

func draw(screen tcell.Screen, g *terminalGame) {
	screen.Clear()
	w, h := screen.Size()
	fw, fh := g.fieldSize()
	view := layoutField(w, h, fw, fh)

	drawText(screen, 1, 0, hudText(g.stats), hudStyle)
	drawField(screen, view)

	for _, cmd := range g.display.Commands() {
		style, ok := g.sprites[cmd.Key]
		if !ok {
			style = spriteStyle{Rune: '?', Style: fieldStyle}
		}
		drawSprite(screen, view, cmd, style)
	}

	cy := view.Y + view.H/2
	if prompt := g.display.Prompt(); prompt != "" {
		drawCentered(screen, view.X+view.W/2, cy, prompt, promptStyle)
	}
	if g.banner != "" {
		drawCentered(screen, view.X+view.W/2, cy+1, g.banner, promptStyle)
	}

	drawText(screen, 1, h-1, helpText, helpStyle)
	screen.Show()
}

// drawField 绘制场地背景和边框
func drawField(screen tcell.Screen, v fieldView) {
	for y := v.Y; y < v.Y+v.H; y++ {
		for x := v.X; x < v.X+v.W; x++ {
			screen.SetContent(x, y, ' ', nil, fieldStyle)
		}
	}
	for x := v.X - 1; x <= v.X+v.W; x++ {
		screen.SetContent(x, v.Y-1, '─', nil, borderStyle)
		screen.SetContent(x, v.Y+v.H, '─', nil, borderStyle)
	}
	for y := v.Y; y < v.Y+v.H; y++ {
		screen.SetContent(v.X-1, y, '│', nil, borderStyle)
		screen.SetContent(v.X+v.W, y, '│', nil, borderStyle)
	}
	screen.SetContent(v.X-1, v.Y-1, '┌', nil, borderStyle)
	screen.SetContent(v.X+v.W, v.Y-1, '┐', nil, borderStyle)
	screen.SetContent(v.X-1, v.Y+v.H, '└', nil, borderStyle)
	screen.SetContent(v.X+v.W, v.Y+v.H, '┘', nil, borderStyle)
}

// drawSprite 只绘制场地内的部分
func drawSprite(screen tcell.Screen, v fieldView, cmd minigame.DrawCmd, s spriteStyle) {
	x0, y0, x1, y1 := v.cellRect(cmd.X, cmd.Y, cmd.W, cmd.H)
	for y := max(y0, v.Y); y < min(y1, v.Y+v.H); y++ {
		for x := max(x0, v.X); x < min(x1, v.X+v.W); x++ {
			screen.SetContent(x, y, s.Rune, nil, s.Style)
		}
	}
}

func drawText(screen tcell.Screen, x, y int, s string, style tcell.Style) {
	for _, r := range s {
		screen.SetContent(x, y, r, nil, style)
		x++
	}
}

func drawCentered(screen tcell.Screen, cx, y int, s string, style tcell.Style) {
	drawText(screen, cx-len([]rune(s))/2, y, s, style)
}
