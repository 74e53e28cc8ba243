package scenes

import (
	"github.com/decker502/nutrition/pkg/content"
	"github.com/decker502/nutrition/pkg/game"
	"github.com/decker502/nutrition/pkg/systems"
	"github.com/decker502/nutrition/pkg/types"
	"github.com/decker502/nutrition/pkg/utils"
)

// Scene is a type alias for game.Scene so that callers of this package
// do not need to import pkg/game just to hold a panel.
type Scene = game.Scene

// Context carries everything a panel scene needs from the host application.
// The app builds one Context and hands it to every scene constructor.
type Context struct {
	// Resources provides fonts and sprites.
	Resources *game.ResourceManager
	// Content is the validated static content registry.
	Content *content.Registry
	// Cues plays sound cues (quiz grading, minigame catches).
	Cues types.CuePlayer

	// Offset converts screen coordinates to panel content coordinates.
	Offset systems.OffsetFunc
	// Pointer 面板看到的指针状态（页眉区域内的指针已被宿主屏蔽）
	Pointer utils.PointerSource
	// OnAnyClick is called before any button callback (click cue).
	OnAnyClick func(buttonID string)
	// Blocked returns true when the host already consumed this frame's click.
	Blocked func() bool
	// Navigate activates another panel (used by the home page shortcuts).
	Navigate func(panelID string)
}

// withDefaults fills unset hooks so that scenes never check for nil.
func (c *Context) withDefaults() *Context {
	out := *c
	if out.Cues == nil {
		out.Cues = types.NopCuePlayer{}
	}
	if out.Offset == nil {
		out.Offset = func() (float64, float64) { return 0, 0 }
	}
	if out.Pointer == nil {
		out.Pointer = utils.CurrentPointer
	}
	if out.Blocked == nil {
		out.Blocked = func() bool { return false }
	}
	if out.Navigate == nil {
		out.Navigate = func(string) {}
	}
	return &out
}
