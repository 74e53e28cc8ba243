package entities

import (
	"testing"

	"github.com/decker502/nutrition/pkg/components"
	"github.com/decker502/nutrition/pkg/ecs"
)

func TestNewNavButton(t *testing.T) {
	em := ecs.NewEntityManager()
	e := NewNavButton(em, "quiz-btn", 10, 10, 100, 40, "Quiz", nil, nil)

	button, ok := ecs.GetComponent[*components.ButtonComponent](em, e)
	if !ok {
		t.Fatal("nav button missing ButtonComponent")
	}
	if !button.Fixed || !button.Enabled || button.ID != "quiz-btn" {
		t.Errorf("button = %+v, want fixed enabled quiz-btn", button)
	}
	ui, ok := ecs.GetComponent[*components.UIComponent](em, e)
	if !ok || ui.Group != NavGroup {
		t.Errorf("nav button group = %v, want %q", ui, NavGroup)
	}
}

func TestNewHoldButton(t *testing.T) {
	em := ecs.NewEntityManager()
	e := NewHoldButton(em, "leftBtn", 0, 0, 80, 60, "<", nil, func() {}, func() {})

	if !ecs.HasComponent[*components.HoldButtonComponent](em, e) {
		t.Error("hold button missing HoldButtonComponent")
	}
	if !ecs.HasComponent[*components.ButtonComponent](em, e) {
		t.Error("hold button missing ButtonComponent")
	}
}

func TestSetGroupAndSelected(t *testing.T) {
	em := ecs.NewEntityManager()
	e := NewTextButton(em, "opt", 0, 0, 10, 10, "A", nil, OptionButtonStyle, nil)

	SetGroup(em, e, "q0")
	SetGroup(em, e, "q1")
	ui, _ := ecs.GetComponent[*components.UIComponent](em, e)
	if ui.Group != "q1" {
		t.Errorf("group = %q, want q1", ui.Group)
	}

	SetSelected(em, e, true)
	button, _ := ecs.GetComponent[*components.ButtonComponent](em, e)
	if !button.Selected {
		t.Error("button should be selected")
	}
}

func TestKeypadLayout(t *testing.T) {
	em := ecs.NewEntityManager()
	e := NewKeypadEntity(em, 800, 600)
	kb, _ := ecs.GetComponent[*components.KeypadComponent](em, e)

	keys := KeypadKeys(kb)
	if len(keys) != 13 {
		t.Fatalf("keys = %d, want 13", len(keys))
	}

	done := keys[len(keys)-1]
	if done.Action != components.KeyDone {
		t.Fatalf("last key = %q, want DONE", done.Action)
	}
	if want := 3*kb.KeyWidth + 2*kb.KeySpacing; done.Width != want {
		t.Errorf("done width = %v, want %v", done.Width, want)
	}

	// 键盘在屏幕底部以内
	x, y, w, h := KeypadBounds(kb)
	if x < 0 || x+w > 800 || y+h > 600 {
		t.Errorf("bounds (%v,%v,%v,%v) outside 800x600", x, y, w, h)
	}
	if done.Y+done.Height > y+h {
		t.Error("done key outside keypad bounds")
	}
}

func TestNewNumericInputEntity(t *testing.T) {
	em := ecs.NewEntityManager()
	e := NewNumericInputEntity(em, 0, 0, 120, 32, nil, "Height (cm)", nil)

	input, ok := ecs.GetComponent[*components.TextInputComponent](em, e)
	if !ok || !input.Numeric || input.Placeholder != "Height (cm)" {
		t.Errorf("input = %+v", input)
	}
}
