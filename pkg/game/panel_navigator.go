package game

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
)

// ErrUnknownPanel 激活未注册的面板
var ErrUnknownPanel = errors.New("unknown panel")

// navButtonSuffix 导航按钮ID的固定后缀（"quiz-btn" → "quiz"）
const navButtonSuffix = "-btn"

// PanelNavigator manages which panel is active.
// It ensures only one panel's Update and Draw methods are called at any given time.
type PanelNavigator struct {
	panels   map[string]Scene
	order    []string
	activeID string

	// OnActivate 每次激活面板后调用（应用外壳用它平滑滚动到面板顶部）
	OnActivate func(id string)
}

// NewPanelNavigator creates a navigator with no registered panels.
func NewPanelNavigator() *PanelNavigator {
	return &PanelNavigator{
		panels: make(map[string]Scene),
	}
}

// Register 注册面板，重复注册同一ID会替换原面板
func (n *PanelNavigator) Register(id string, scene Scene) {
	if _, exists := n.panels[id]; !exists {
		n.order = append(n.order, id)
	}
	n.panels[id] = scene
}

// Activate 激活面板
//
// 当前面板与目标不同时先调用当前面板的 OnLeave，然后切换并调用目标面板的 OnEnter。
// 重复激活当前面板只会再次调用 OnEnter。
func (n *PanelNavigator) Activate(id string) error {
	next, ok := n.panels[id]
	if !ok {
		return fmt.Errorf("activate %q: %w", id, ErrUnknownPanel)
	}

	if n.activeID != "" && n.activeID != id {
		if leaver, ok := n.panels[n.activeID].(Leaver); ok {
			leaver.OnLeave()
		}
	}

	n.activeID = id
	if enterer, ok := next.(Enterer); ok {
		enterer.OnEnter()
	}
	log.Printf("[PanelNavigator] Activated panel: %s", id)

	if n.OnActivate != nil {
		n.OnActivate(id)
	}
	return nil
}

// ActiveID 当前面板ID，未激活任何面板时为空字符串
func (n *PanelNavigator) ActiveID() string {
	return n.activeID
}

// Active 当前面板
func (n *PanelNavigator) Active() Scene {
	return n.panels[n.activeID]
}

// Panel 按ID获取面板
func (n *PanelNavigator) Panel(id string) (Scene, bool) {
	s, ok := n.panels[id]
	return s, ok
}

// IDs 按注册顺序返回所有面板ID
func (n *PanelNavigator) IDs() []string {
	return append([]string(nil), n.order...)
}

// ContentHeight 当前面板内容高度，面板未实现 Sizer 时返回 fallback
func (n *PanelNavigator) ContentHeight(fallback float64) float64 {
	if sizer, ok := n.Active().(Sizer); ok {
		return sizer.ContentHeight()
	}
	return fallback
}

// Update updates the currently active panel.
func (n *PanelNavigator) Update(deltaTime float64) {
	if scene := n.Active(); scene != nil {
		scene.Update(deltaTime)
	}
}

// Draw renders the currently active panel.
func (n *PanelNavigator) Draw(screen *ebiten.Image) {
	if scene := n.Active(); scene != nil {
		scene.Draw(screen)
	}
}

// PanelIDFromButton 从导航按钮ID得到面板ID（去掉 "-btn" 后缀）
func PanelIDFromButton(buttonID string) string {
	return strings.TrimSuffix(buttonID, navButtonSuffix)
}

// NavButtonID 面板对应的导航按钮ID
func NavButtonID(panelID string) string {
	return panelID + navButtonSuffix
}
