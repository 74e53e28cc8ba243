package scenes

import (
	"fmt"

	"github.com/decker502/nutrition/pkg/components"
	"github.com/decker502/nutrition/pkg/config"
	"github.com/decker502/nutrition/pkg/content"
	"github.com/decker502/nutrition/pkg/ecs"
	"github.com/decker502/nutrition/pkg/entities"
	"github.com/hajimehoshi/ebiten/v2"
)

// 幻灯片布局
const (
	slideImageSize   = 180.0
	slideImageGap    = 24.0
	subcategoryH     = 44.0
	subcategoryGap   = 12.0
	popupWidth       = 280.0
	popupPadding     = 10.0
	popupReserve     = 130.0 // 卡片下方为弹出说明预留的高度
	slideNavWidth    = 110.0
	slideNavHeight   = 40.0
	noSubcategoryIdx = -1
)

// subcategoryCard 一个子分类卡片按钮及其说明
type subcategoryCard struct {
	entity      ecs.EntityID
	x, y, w     float64
	description string
}

// MacronutrientsScene shows one macronutrient slide at a time.
// Prev/Next wrap around; hovering a subcategory card (or tapping it on
// touch screens) pops up its description below the card.
type MacronutrientsScene struct {
	panel
	slides []content.Macronutrient
	slider *content.Slider

	cards  []subcategoryCard
	pinned int // 点击固定显示的卡片，-1 表示没有
	shown  int // 当前显示说明的卡片
}

// NewMacronutrientsScene creates the macronutrients panel.
func NewMacronutrientsScene(ctx *Context) *MacronutrientsScene {
	s := &MacronutrientsScene{panel: newPanel(ctx)}
	s.slides = s.ctx.Content.Macronutrients()
	s.slider = content.NewSlider(len(s.slides))
	s.pinned = noSubcategoryIdx
	s.shown = noSubcategoryIdx
	s.layout()
	return s
}

// Current returns the index of the visible slide.
func (s *MacronutrientsScene) Current() int {
	return s.slider.Current()
}

// Next shows the next slide (wrapping to the first).
func (s *MacronutrientsScene) Next() {
	s.slider.Next()
	s.pinned = noSubcategoryIdx
	s.layout()
}

// Prev shows the previous slide (wrapping to the last).
func (s *MacronutrientsScene) Prev() {
	s.slider.Prev()
	s.pinned = noSubcategoryIdx
	s.layout()
}

// ShownDescription returns the description currently popped up, if any.
func (s *MacronutrientsScene) ShownDescription() (string, bool) {
	if s.shown < 0 || s.shown >= len(s.cards) {
		return "", false
	}
	return s.cards[s.shown].description, true
}

func (s *MacronutrientsScene) layout() {
	s.reset()
	s.cards = s.cards[:0]
	s.shown = noSubcategoryIdx

	y := s.addTitle("Macronutrients")
	if s.slider.Len() == 0 {
		s.finish(y)
		return
	}
	slide := s.slides[s.slider.Current()]

	y = s.addText(slide.Title, s.bold(headingSize+4), config.PanelPaddingX, y, textColor)
	y += sectionSpace / 2

	// 左侧图片，右侧段落
	s.addSprite(slide.Image, config.PanelPaddingX, y, slideImageSize, slideImageSize)
	textX := config.PanelPaddingX + slideImageSize + slideImageGap
	textW := config.PanelContentWidth - slideImageSize - slideImageGap
	ty := y
	for _, para := range slide.Paragraphs {
		ty = s.addParagraph(para, s.font(bodySize), textX, ty, textW, textColor)
		ty += sectionSpace / 2
	}
	y = max(y+slideImageSize, ty) + sectionSpace

	if n := len(slide.Subcategories); n > 0 {
		w := (config.PanelContentWidth - float64(n-1)*subcategoryGap) / float64(n)
		for i, sub := range slide.Subcategories {
			x := config.PanelPaddingX + float64(i)*(w+subcategoryGap)
			idx := i
			entity := s.addButton(fmt.Sprintf("subcategory-%s-%d", slide.ID, i), x, y, w, subcategoryH, sub.Name, entities.OptionButtonStyle, func() {
				s.togglePinned(idx)
			})
			s.cards = append(s.cards, subcategoryCard{entity: entity, x: x, y: y + subcategoryH, w: w, description: sub.Description})
		}
		y += subcategoryH + popupReserve
	}

	// 翻页
	s.addButton("macro-prev", config.PanelPaddingX, y, slideNavWidth, slideNavHeight, "< Prev", entities.PrimaryButtonStyle, s.Prev)
	s.addCentered(fmt.Sprintf("%d / %d", s.slider.Current()+1, s.slider.Len()), s.font(bodySize),
		config.PanelPaddingX+config.PanelContentWidth/2, y+10, mutedColor)
	s.addButton("macro-next", config.PanelPaddingX+config.PanelContentWidth-slideNavWidth, y, slideNavWidth, slideNavHeight, "Next >", entities.PrimaryButtonStyle, s.Next)

	s.finish(y + slideNavHeight)
}

func (s *MacronutrientsScene) togglePinned(i int) {
	if s.pinned == i {
		s.pinned = noSubcategoryIdx
	} else {
		s.pinned = i
	}
	for j, c := range s.cards {
		entities.SetSelected(s.entityManager, c.entity, j == s.pinned)
	}
}

// Update handles slide navigation and the subcategory popups.
func (s *MacronutrientsScene) Update(deltaTime float64) {
	if s.buttonSystem.Update(deltaTime) {
		// 回调可能已重建卡片，悬停状态下一帧再计算
		s.shown = s.pinned
		return
	}

	s.shown = s.pinned
	for i, c := range s.cards {
		button, ok := ecs.GetComponent[*components.ButtonComponent](s.entityManager, c.entity)
		if !ok {
			continue
		}
		if button.State == components.UIHovered || button.State == components.UIClicked {
			s.shown = i
			break
		}
	}
}

// Draw renders the slide and the description popup.
func (s *MacronutrientsScene) Draw(screen *ebiten.Image) {
	s.drawPanel(screen)

	if s.shown < 0 || s.shown >= len(s.cards) {
		return
	}
	c := s.cards[s.shown]
	face := s.font(bodySize - 2)
	w := max(c.w, popupWidth)
	x := min(c.x, config.PanelPaddingX+config.PanelContentWidth-w)
	h := paragraphHeight(c.description, face, w-2*popupPadding) + 2*popupPadding
	s.drawBox(screen, box{X: x, Y: c.y + 4, W: w, H: h, Fill: popoverFill, Border: popoverEdge})
	s.drawWrapped(screen, c.description, face, x+popupPadding, c.y+4+popupPadding, w-2*popupPadding, textColor)
}
