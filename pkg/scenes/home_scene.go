package scenes

import (
	"github.com/decker502/nutrition/pkg/config"
	"github.com/decker502/nutrition/pkg/entities"
	"github.com/hajimehoshi/ebiten/v2"
)

// HomePanelID 首页面板ID
const HomePanelID = "home"

// 首页快捷入口按钮尺寸
const (
	shortcutWidth  = 200.0
	shortcutHeight = 40.0
	shortcutGap    = 12.0
)

// HomeScene is the landing panel: the intro text plus one shortcut
// button for every other panel.
type HomeScene struct {
	panel
}

// NewHomeScene creates the home panel and lays out its content.
func NewHomeScene(ctx *Context) *HomeScene {
	s := &HomeScene{panel: newPanel(ctx)}
	s.layout()
	return s
}

func (s *HomeScene) layout() {
	s.reset()
	intro := s.ctx.Content.Intro()

	y := s.addTitle(intro.Title)
	for _, para := range intro.Paragraphs {
		y = s.addParagraph(para, s.font(bodySize), config.PanelPaddingX, y, config.PanelContentWidth, textColor)
		y += sectionSpace / 2
	}
	y += sectionSpace

	// 快捷入口，按内容宽度自动换行
	x := config.PanelPaddingX
	for _, p := range s.ctx.Content.Panels() {
		if p.ID == HomePanelID {
			continue
		}
		if x+shortcutWidth > config.PanelPaddingX+config.PanelContentWidth {
			x = config.PanelPaddingX
			y += shortcutHeight + shortcutGap
		}
		id := p.ID
		s.addButton("home-go-"+id, x, y, shortcutWidth, shortcutHeight, p.Title, entities.PrimaryButtonStyle, func() {
			s.ctx.Navigate(id)
		})
		x += shortcutWidth + shortcutGap
	}
	s.finish(y + shortcutHeight)
}

// Update handles shortcut clicks.
func (s *HomeScene) Update(deltaTime float64) {
	s.buttonSystem.Update(deltaTime)
}

// Draw renders the intro and the shortcuts.
func (s *HomeScene) Draw(screen *ebiten.Image) {
	s.drawPanel(screen)
}
