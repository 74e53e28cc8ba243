package scenes

import (
	"image/color"

	"github.com/decker502/nutrition/pkg/config"
	"github.com/decker502/nutrition/pkg/content"
	"github.com/decker502/nutrition/pkg/entities"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// 餐盘和提示卡布局
const (
	plateWidth    = 540.0
	plateHeight   = 480.0
	tooltipGap    = 20.0
	tooltipPad    = 14.0
	closeBtnSize  = 28.0
	examplePrefix = "Examples of foods: "
)

// 各区域的底色（按热点顺序循环使用）
var hotspotColors = []color.RGBA{
	{R: 239, G: 83, B: 80, A: 255},
	{R: 255, G: 202, B: 40, A: 255},
	{R: 102, G: 187, B: 106, A: 255},
	{R: 141, G: 110, B: 99, A: 255},
	{R: 66, G: 165, B: 245, A: 255},
}

var plateColor = color.RGBA{R: 236, G: 239, B: 241, A: 255}

// GuidelinesScene shows the healthy plate. Clicking a region opens its
// tooltip card and closes any other; the × button closes it.
type GuidelinesScene struct {
	panel
	popover content.Popover

	plateX, plateY float64
}

// NewGuidelinesScene creates the dietary guidelines panel.
func NewGuidelinesScene(ctx *Context) *GuidelinesScene {
	s := &GuidelinesScene{panel: newPanel(ctx)}
	s.layout()
	return s
}

// OpenTooltip opens the tooltip of a hotspot and closes the others.
// Unknown ids are ignored.
func (s *GuidelinesScene) OpenTooltip(id string) {
	if _, ok := s.ctx.Content.Hotspot(id); !ok {
		return
	}
	s.popover.Open(id)
	s.layout()
}

// CloseTooltip closes the open tooltip.
func (s *GuidelinesScene) CloseTooltip() {
	s.popover.Close()
	s.layout()
}

// OpenTooltipID returns the id of the open tooltip ("" when closed).
func (s *GuidelinesScene) OpenTooltipID() string {
	return s.popover.Active()
}

func (s *GuidelinesScene) layout() {
	s.reset()

	y := s.addTitle("Dietary Guidelines")
	y = s.addParagraph("Click on each part of the plate to learn how much of each food group to eat at every meal.",
		s.font(bodySize), config.PanelPaddingX, y, config.PanelContentWidth, textColor)
	y += sectionSpace

	s.plateX, s.plateY = config.PanelPaddingX, y
	for i, h := range s.ctx.Content.Hotspots() {
		x, hy := s.plateX+h.Rect.X, s.plateY+h.Rect.Y
		s.addBox(x, hy, h.Rect.Width, h.Rect.Height, hotspotColors[i%len(hotspotColors)], color.RGBA{})
		id := h.ID
		button := s.addButton(h.ID, x, hy, h.Rect.Width, h.Rect.Height, h.Title, entities.HotspotButtonStyle, func() {
			s.OpenTooltip(id)
		})
		entities.SetSelected(s.entityManager, button, s.popover.IsOpen(id))
	}
	bottom := s.plateY + plateHeight

	if h, ok := s.ctx.Content.Hotspot(s.popover.Active()); ok {
		bottom = max(bottom, s.layoutTooltip(h))
	}
	s.finish(bottom)
}

// layoutTooltip 在餐盘右侧排版提示卡，返回卡片底部
func (s *GuidelinesScene) layoutTooltip(h content.Hotspot) float64 {
	x := s.plateX + plateWidth + tooltipGap
	w := config.PanelPaddingX + config.PanelContentWidth - x
	inner := w - 2*tooltipPad

	title, body := s.bold(headingSize), s.font(bodySize-1)
	height := lineHeight(title) + sectionSpace/2 +
		paragraphHeight(h.Text, body, inner) + sectionSpace/2 +
		paragraphHeight(examplePrefix+h.Examples, body, inner) + 2*tooltipPad
	s.addBox(x, s.plateY, w, height, popoverFill, popoverEdge)

	ty := s.addText(h.Title, title, x+tooltipPad, s.plateY+tooltipPad, textColor) + sectionSpace/2
	ty = s.addParagraph(h.Text, body, x+tooltipPad, ty, inner, textColor) + sectionSpace/2
	s.addParagraph(examplePrefix+h.Examples, body, x+tooltipPad, ty, inner, mutedColor)

	s.addButton("tooltip-close", x+w-closeBtnSize-4, s.plateY+4, closeBtnSize, closeBtnSize, "×", entities.OptionButtonStyle, s.CloseTooltip)
	return s.plateY + height
}

// Update handles hotspot and close clicks.
func (s *GuidelinesScene) Update(deltaTime float64) {
	s.buttonSystem.Update(deltaTime)
}

// Draw renders the plate, the hotspots and the open tooltip.
func (s *GuidelinesScene) Draw(screen *ebiten.Image) {
	if s.visible(screen, s.plateY, plateHeight) {
		x, y := s.toScreen(s.plateX, s.plateY)
		r := float32(min(plateWidth, plateHeight) / 2)
		vector.DrawFilledCircle(screen, float32(x+plateWidth/2-40), float32(y+plateHeight/2), r, plateColor, true)
	}
	s.drawPanel(screen)
}
