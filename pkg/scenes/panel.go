package scenes

import (
	"image/color"
	"strings"

	"github.com/decker502/nutrition/pkg/components"
	"github.com/decker502/nutrition/pkg/config"
	"github.com/decker502/nutrition/pkg/ecs"
	"github.com/decker502/nutrition/pkg/entities"
	"github.com/decker502/nutrition/pkg/systems"
	"github.com/decker502/nutrition/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// 字号
const (
	titleSize   = 30
	headingSize = 20
	bodySize    = 17
	buttonSize  = 16
)

// 面板配色
var (
	textColor    = color.RGBA{R: 33, G: 33, B: 33, A: 255}
	mutedColor   = color.RGBA{R: 97, G: 97, B: 97, A: 255}
	titleColor   = color.RGBA{R: 46, G: 125, B: 50, A: 255}
	errorColor   = color.RGBA{R: 211, G: 47, B: 47, A: 255}
	cardFill     = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	cardBorder   = color.RGBA{R: 200, G: 230, B: 201, A: 255}
	popoverFill  = color.RGBA{R: 255, G: 253, B: 231, A: 255}
	popoverEdge  = color.RGBA{R: 251, G: 192, B: 45, A: 255}
	lineSpacing  = 4.0
	sectionSpace = 18.0
)

// label 一行已排版的文字（内容坐标）
type label struct {
	Text     string
	Face     text.Face
	X, Y     float64
	Color    color.Color
	Centered bool // X 为水平中心
}

// box 卡片背景
type box struct {
	X, Y, W, H float64
	Fill       color.RGBA
	Border     color.RGBA
}

// spriteRef 精灵图片
type spriteRef struct {
	ID         string
	X, Y, W, H float64
}

// panel 各面板场景共用的部分：实体世界、按钮系统和排版结果
//
// 场景在 layout 中调用 reset 后重新生成按钮和文字，
// 绘制时按 box → sprite → 按钮 → 文字 的顺序叠加。
type panel struct {
	ctx *Context

	entityManager *ecs.EntityManager
	buttonSystem  *systems.ButtonSystem
	buttonRender  *systems.ButtonRenderSystem

	boxes   []box
	sprites []spriteRef
	labels  []label
	height  float64
}

func newPanel(ctx *Context) panel {
	ctx = ctx.withDefaults()
	em := ecs.NewEntityManager()

	buttons := systems.NewButtonSystem(em)
	buttons.SetPointerSource(ctx.Pointer)
	buttons.SetOffset(ctx.Offset)
	buttons.OnAnyClick = ctx.OnAnyClick
	buttons.Blocked = ctx.Blocked

	render := systems.NewButtonRenderSystem(em)
	render.SetOffset(ctx.Offset)

	return panel{
		ctx:           ctx,
		entityManager: em,
		buttonSystem:  buttons,
		buttonRender:  render,
	}
}

// ContentHeight 返回排版后的内容高度（滚动范围）
func (p *panel) ContentHeight() float64 {
	return p.height
}

// EntityManager 返回面板的实体世界
func (p *panel) EntityManager() *ecs.EntityManager {
	return p.entityManager
}

// reset 清空实体和排版结果
func (p *panel) reset() {
	p.entityManager.Clear()
	p.boxes = p.boxes[:0]
	p.sprites = p.sprites[:0]
	p.labels = p.labels[:0]
	p.height = 0
}

func (p *panel) font(size float64) text.Face {
	return p.ctx.Resources.Font(size)
}

func (p *panel) bold(size float64) text.Face {
	return p.ctx.Resources.BoldFont(size)
}

// lineHeight 返回字体的行高
func lineHeight(face text.Face) float64 {
	m := face.Metrics()
	h := m.HAscent + m.HDescent + m.HLineGap
	if h <= 0 {
		h = 16
	}
	return h + lineSpacing
}

// addText 添加单行文字，返回下一行的 y
func (p *panel) addText(s string, face text.Face, x, y float64, clr color.Color) float64 {
	p.labels = append(p.labels, label{Text: s, Face: face, X: x, Y: y, Color: clr})
	return y + lineHeight(face)
}

// addCentered 添加水平居中的单行文字
func (p *panel) addCentered(s string, face text.Face, cx, y float64, clr color.Color) float64 {
	p.labels = append(p.labels, label{Text: s, Face: face, X: cx, Y: y, Color: clr, Centered: true})
	return y + lineHeight(face)
}

// addParagraph 按宽度折行添加段落，返回段落下方的 y
func (p *panel) addParagraph(s string, face text.Face, x, y, width float64, clr color.Color) float64 {
	for _, line := range utils.WrapText(s, face, width) {
		y = p.addText(line, face, x, y, clr)
	}
	return y
}

// paragraphHeight 计算段落折行后的高度（不添加）
func paragraphHeight(s string, face text.Face, width float64) float64 {
	return float64(len(utils.WrapText(s, face, width))) * lineHeight(face)
}

func (p *panel) addBox(x, y, w, h float64, fill, border color.RGBA) {
	p.boxes = append(p.boxes, box{X: x, Y: y, W: w, H: h, Fill: fill, Border: border})
}

func (p *panel) addSprite(id string, x, y, w, h float64) {
	p.sprites = append(p.sprites, spriteRef{ID: id, X: x, Y: y, W: w, H: h})
}

// addButton 创建随内容滚动的文字按钮
func (p *panel) addButton(id string, x, y, w, h float64, text string, style components.ButtonStyle, onClick func()) ecs.EntityID {
	return entities.NewTextButton(p.entityManager, id, x, y, w, h, text, p.font(buttonSize), style, onClick)
}

// addTitle 在面板顶部添加标题，返回标题下方的 y
func (p *panel) addTitle(title string) float64 {
	y := p.addText(title, p.bold(titleSize), config.PanelPaddingX, config.PanelPaddingTop, titleColor)
	return y + sectionSpace/2
}

// finish 记录内容高度
func (p *panel) finish(bottom float64) {
	p.height = bottom + config.PanelPaddingTop
}

// labelTexts 返回所有文字（按添加顺序）
func (p *panel) labelTexts() []string {
	out := make([]string, 0, len(p.labels))
	for _, l := range p.labels {
		out = append(out, l.Text)
	}
	return out
}

// hasText 检查排版结果中是否有包含 sub 的文字
func (p *panel) hasText(sub string) bool {
	for _, l := range p.labels {
		if strings.Contains(l.Text, sub) {
			return true
		}
	}
	return false
}

// toScreen 内容坐标转换为屏幕坐标
func (p *panel) toScreen(x, y float64) (float64, float64) {
	dx, dy := p.ctx.Offset()
	return x - dx, y - dy
}

// visible 粗略判断内容区域是否在屏幕内
func (p *panel) visible(screen *ebiten.Image, y, h float64) bool {
	_, sy := p.toScreen(0, y)
	b := screen.Bounds()
	return sy+h >= float64(b.Min.Y) && sy <= float64(b.Max.Y)
}

// drawPanel 绘制排版结果和按钮
func (p *panel) drawPanel(screen *ebiten.Image) {
	for _, b := range p.boxes {
		p.drawBox(screen, b)
	}
	for _, s := range p.sprites {
		p.drawSprite(screen, s.ID, s.X, s.Y, s.W, s.H)
	}
	p.buttonRender.Draw(screen, false)
	for _, l := range p.labels {
		p.drawLabel(screen, l)
	}
}

func (p *panel) drawBox(screen *ebiten.Image, b box) {
	if !p.visible(screen, b.Y, b.H) {
		return
	}
	x, y := p.toScreen(b.X, b.Y)
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(b.W), float32(b.H), b.Fill, false)
	if b.Border.A > 0 {
		vector.StrokeRect(screen, float32(x), float32(y), float32(b.W), float32(b.H), 1, b.Border, false)
	}
}

func (p *panel) drawSprite(screen *ebiten.Image, id string, x, y, w, h float64) {
	img := p.ctx.Resources.Sprite(id)
	if img == nil || !p.visible(screen, y, h) {
		return
	}
	sx, sy := p.toScreen(x, y)
	bounds := img.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w/float64(bounds.Dx()), h/float64(bounds.Dy()))
	op.GeoM.Translate(sx, sy)
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(img, op)
}

func (p *panel) drawLabel(screen *ebiten.Image, l label) {
	if l.Face == nil || !p.visible(screen, l.Y, lineHeight(l.Face)) {
		return
	}
	x, y := p.toScreen(l.X, l.Y)
	op := &text.DrawOptions{}
	if l.Centered {
		op.LayoutOptions.PrimaryAlign = text.AlignCenter
	}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(l.Color)
	text.Draw(screen, l.Text, l.Face, op)
}

// drawWrapped 绘制动态文字（不进入排版结果），返回下方的 y
func (p *panel) drawWrapped(screen *ebiten.Image, s string, face text.Face, x, y, width float64, clr color.Color) float64 {
	for _, line := range utils.WrapText(s, face, width) {
		p.drawLabel(screen, label{Text: line, Face: face, X: x, Y: y, Color: clr})
		y += lineHeight(face)
	}
	return y
}
