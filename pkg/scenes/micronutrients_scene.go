package scenes

import (
	"log"

	"github.com/decker502/nutrition/pkg/config"
	"github.com/decker502/nutrition/pkg/content"
	"github.com/decker502/nutrition/pkg/entities"
	"github.com/hajimehoshi/ebiten/v2"
)

const (
	tabWidth       = 170.0
	tabHeight      = 38.0
	tabGap         = 8.0
	vitaminColumns = 2
	vitaminGap     = 16.0
	vitaminPad     = 14.0
)

// MicronutrientsScene shows vitamin and mineral cards grouped in tabs.
// The tab buttons are named "btn-<group>"; the first group is selected
// when the panel is created.
type MicronutrientsScene struct {
	panel
	tabs *content.Tabs
}

// NewMicronutrientsScene creates the micronutrients panel.
func NewMicronutrientsScene(ctx *Context) *MicronutrientsScene {
	s := &MicronutrientsScene{panel: newPanel(ctx)}
	groups := s.ctx.Content.VitaminGroups()
	ids := make([]string, 0, len(groups))
	for _, g := range groups {
		ids = append(ids, g.ID)
	}
	s.tabs = content.NewTabs(ids...)
	s.layout()
	return s
}

// ActiveTab returns the selected group id.
func (s *MicronutrientsScene) ActiveTab() string {
	return s.tabs.Active()
}

// SelectTab switches to the group named by a tab button id ("btn-fat").
func (s *MicronutrientsScene) SelectTab(buttonID string) {
	if !s.tabs.Select(content.TabIDFromButton(buttonID)) {
		log.Printf("[Micronutrients] Unknown tab button %q", buttonID)
		return
	}
	s.layout()
}

func (s *MicronutrientsScene) layout() {
	s.reset()

	y := s.addTitle("Micronutrients")
	y = s.addParagraph("Vitamins and minerals are needed in small amounts but are essential for health. Choose a group to see what each one does.",
		s.font(bodySize), config.PanelPaddingX, y, config.PanelContentWidth, textColor)
	y += sectionSpace

	x := config.PanelPaddingX
	for _, g := range s.ctx.Content.VitaminGroups() {
		id := content.TabButtonID(g.ID)
		button := s.addButton(id, x, y, tabWidth, tabHeight, g.Label, entities.OptionButtonStyle, func() {
			s.SelectTab(id)
		})
		entities.SetSelected(s.entityManager, button, g.ID == s.tabs.Active())
		x += tabWidth + tabGap
	}
	y += tabHeight + sectionSpace

	y = s.layoutCards(s.ctx.Content.Vitamins(s.tabs.Active()), y)
	s.finish(y)
}

// layoutCards 两列排版维生素卡片，返回最后一行的底部
func (s *MicronutrientsScene) layoutCards(vitamins []content.Vitamin, y float64) float64 {
	w := (config.PanelContentWidth - vitaminGap*(vitaminColumns-1)) / vitaminColumns
	inner := w - 2*vitaminPad
	title, body := s.bold(headingSize), s.font(bodySize-1)

	for row := 0; row < len(vitamins); row += vitaminColumns {
		end := min(row+vitaminColumns, len(vitamins))

		// 同一行卡片等高
		rowH := 0.0
		for _, v := range vitamins[row:end] {
			h := lineHeight(title) + paragraphHeight(v.Info, body, inner) + sectionSpace/2 +
				paragraphHeight(v.Foods, body, inner) + 2*vitaminPad
			rowH = max(rowH, h)
		}

		for i, v := range vitamins[row:end] {
			x := config.PanelPaddingX + float64(i)*(w+vitaminGap)
			s.addBox(x, y, w, rowH, cardFill, cardBorder)
			ty := s.addText(v.Title, title, x+vitaminPad, y+vitaminPad, titleColor)
			ty = s.addParagraph(v.Info, body, x+vitaminPad, ty, inner, textColor) + sectionSpace/2
			s.addParagraph(v.Foods, body, x+vitaminPad, ty, inner, mutedColor)
		}
		y += rowH + vitaminGap
	}
	return y
}

// Update handles tab clicks.
func (s *MicronutrientsScene) Update(deltaTime float64) {
	s.buttonSystem.Update(deltaTime)
}

// Draw renders the tabs and the cards of the active group.
func (s *MicronutrientsScene) Draw(screen *ebiten.Image) {
	s.drawPanel(screen)
}
