package scenes

import (
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/decker502/nutrition/pkg/components"
	"github.com/decker502/nutrition/pkg/config"
	"github.com/decker502/nutrition/pkg/content"
	"github.com/decker502/nutrition/pkg/ecs"
	"github.com/decker502/nutrition/pkg/entities"
	"github.com/decker502/nutrition/pkg/game"
	"github.com/decker502/nutrition/pkg/minigame"
	"github.com/decker502/nutrition/pkg/systems"
	"github.com/decker502/nutrition/pkg/types"
	"github.com/decker502/nutrition/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

const frame = 1.0 / 60

func readRepo(path string) ([]byte, error) {
	return os.ReadFile(filepath.Join("..", "..", path))
}

// fakePointer 可变的指针状态
type fakePointer struct {
	state utils.PointerState
}

func (f *fakePointer) source() utils.PointerSource {
	return func() utils.PointerState { return f.state }
}

func (f *fakePointer) press(x, y float64) {
	f.state = utils.PointerState{X: x, Y: y, Pressed: true, JustPressed: true, Held: []utils.Point{{X: x, Y: y}}}
}

func (f *fakePointer) hold(x, y float64) {
	f.state = utils.PointerState{X: x, Y: y, Pressed: true, Held: []utils.Point{{X: x, Y: y}}}
}

func (f *fakePointer) release(x, y float64) {
	f.state = utils.PointerState{X: x, Y: y, JustReleased: true}
}

func (f *fakePointer) idle(x, y float64) {
	f.state = utils.PointerState{X: x, Y: y}
}

type recordingCues struct {
	played []types.Cue
}

func (r *recordingCues) Play(c types.Cue) { r.played = append(r.played, c) }

type fixture struct {
	ctx      *Context
	fp       *fakePointer
	cues     *recordingCues
	clicks   []string
	navigate []string
	scrollY  float64
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	reg, err := content.Load(readRepo)
	if err != nil {
		t.Fatalf("content.Load() failed: %v", err)
	}
	f := &fixture{fp: &fakePointer{}, cues: &recordingCues{}}
	f.ctx = &Context{
		Resources:  game.NewResourceManager(readRepo),
		Content:    reg,
		Cues:       f.cues,
		Pointer:    f.fp.source(),
		Offset:     func() (float64, float64) { return 0, f.scrollY },
		OnAnyClick: func(id string) { f.clicks = append(f.clicks, id) },
		Navigate:   func(id string) { f.navigate = append(f.navigate, id) },
	}
	return f
}

// clickButton 在按钮中心按下并释放（屏幕坐标）
func (f *fixture) clickButton(t *testing.T, scene Scene, em *ecs.EntityManager, id string) {
	t.Helper()
	x, y := f.buttonCenter(t, em, id)
	f.fp.press(x, y)
	scene.Update(frame)
	f.fp.release(x, y)
	scene.Update(frame)
	f.fp.idle(x, y)
}

func (f *fixture) buttonCenter(t *testing.T, em *ecs.EntityManager, id string) (float64, float64) {
	t.Helper()
	e, ok := systems.FindButton(em, id)
	if !ok {
		t.Fatalf("button %q not found", id)
	}
	pos, _ := ecs.GetComponent[*components.PositionComponent](em, e)
	button, _ := ecs.GetComponent[*components.ButtonComponent](em, e)
	return pos.X + button.Width/2, pos.Y + button.Height/2 - f.scrollY
}

func TestHomeSceneShortcuts(t *testing.T) {
	f := newFixture(t)
	s := NewHomeScene(f.ctx)

	if !s.hasText(f.ctx.Content.Intro().Title) {
		t.Errorf("intro title missing from %v", s.labelTexts())
	}
	if _, ok := systems.FindButton(s.entityManager, "home-go-home"); ok {
		t.Error("home should not link to itself")
	}

	f.clickButton(t, s, s.entityManager, "home-go-quiz")
	if len(f.navigate) != 1 || f.navigate[0] != "quiz" {
		t.Errorf("navigate = %v, want [quiz]", f.navigate)
	}
	if len(f.clicks) != 1 || f.clicks[0] != "home-go-quiz" {
		t.Errorf("click cue ids = %v", f.clicks)
	}
	if s.ContentHeight() <= 0 {
		t.Error("content height should be positive")
	}
}

func TestMacronutrientsSlidesWrap(t *testing.T) {
	f := newFixture(t)
	s := NewMacronutrientsScene(f.ctx)
	n := len(f.ctx.Content.Macronutrients())

	if s.Current() != 0 || !s.hasText("Carbohydrates") {
		t.Fatalf("first slide not shown: %v", s.labelTexts())
	}

	f.clickButton(t, s, s.entityManager, "macro-prev")
	if s.Current() != n-1 {
		t.Errorf("prev from first = %d, want %d", s.Current(), n-1)
	}
	f.clickButton(t, s, s.entityManager, "macro-next")
	f.clickButton(t, s, s.entityManager, "macro-next")
	if s.Current() != 1 {
		t.Errorf("after prev, next, next = %d, want 1", s.Current())
	}
	if !s.hasText("Proteins") {
		t.Errorf("second slide not laid out: %v", s.labelTexts())
	}
}

func TestMacronutrientsHoverShowsDescription(t *testing.T) {
	f := newFixture(t)
	s := NewMacronutrientsScene(f.ctx)
	first := f.ctx.Content.Macronutrients()[0].Subcategories[0]

	s.Update(frame)
	if _, ok := s.ShownDescription(); ok {
		t.Fatal("no description should be shown without hover")
	}

	x, y := f.buttonCenter(t, s.entityManager, "subcategory-carbs-0")
	f.fp.idle(x, y)
	s.Update(frame)
	desc, ok := s.ShownDescription()
	if !ok || desc != first.Description {
		t.Errorf("hover description = %q, %v", desc, ok)
	}

	// 移开后消失，点击后固定显示
	f.fp.idle(0, 0)
	s.Update(frame)
	if _, ok := s.ShownDescription(); ok {
		t.Error("description should hide when the pointer leaves")
	}
	f.clickButton(t, s, s.entityManager, "subcategory-carbs-0")
	f.fp.idle(0, 0)
	s.Update(frame)
	if desc, _ := s.ShownDescription(); desc != first.Description {
		t.Errorf("tapped card should stay open, got %q", desc)
	}
}

func TestGuidelinesTooltipExclusive(t *testing.T) {
	f := newFixture(t)
	s := NewGuidelinesScene(f.ctx)

	f.clickButton(t, s, s.entityManager, "FruitsMap")
	if s.OpenTooltipID() != "FruitsMap" {
		t.Fatalf("open tooltip = %q", s.OpenTooltipID())
	}
	if !s.hasText("Examples of foods:") {
		t.Errorf("tooltip text missing: %v", s.labelTexts())
	}

	f.clickButton(t, s, s.entityManager, "WaterMap")
	if s.OpenTooltipID() != "WaterMap" {
		t.Errorf("second hotspot should replace the first, got %q", s.OpenTooltipID())
	}
	if s.hasText(f.ctx.Content.Hotspots()[0].Text[:20]) {
		t.Error("previous tooltip text still laid out")
	}

	f.clickButton(t, s, s.entityManager, "tooltip-close")
	if s.OpenTooltipID() != "" {
		t.Errorf("close should hide tooltip, got %q", s.OpenTooltipID())
	}
	if _, ok := systems.FindButton(s.entityManager, "tooltip-close"); ok {
		t.Error("close button should be removed with the tooltip")
	}

	s.OpenTooltip("NoSuchMap")
	if s.OpenTooltipID() != "" {
		t.Error("unknown hotspot should be ignored")
	}
}

func TestMicronutrientsTabs(t *testing.T) {
	f := newFixture(t)
	s := NewMicronutrientsScene(f.ctx)

	if s.ActiveTab() != "water" || !s.hasText("Vitamin C") {
		t.Fatalf("default tab = %q, labels %v", s.ActiveTab(), s.labelTexts())
	}

	f.clickButton(t, s, s.entityManager, "btn-fat")
	if s.ActiveTab() != "fat" {
		t.Errorf("active tab = %q, want fat", s.ActiveTab())
	}
	if !s.hasText("Vitamin A") || s.hasText("Vitamin C") {
		t.Errorf("fat tab cards not shown: %v", s.labelTexts())
	}
	e, _ := systems.FindButton(s.entityManager, "btn-fat")
	button, _ := ecs.GetComponent[*components.ButtonComponent](s.entityManager, e)
	if !button.Selected {
		t.Error("active tab button should be selected")
	}

	s.SelectTab("btn-nothing")
	if s.ActiveTab() != "fat" {
		t.Error("unknown tab changed the selection")
	}
}

func TestBMISceneCalculate(t *testing.T) {
	f := newFixture(t)
	s := NewBMIScene(f.ctx, false)

	tests := []struct {
		height, weight string
		want           string
	}{
		{"170", "65", "Your BMI is 22.5 - Normal weight."},
		{"180cm", "100", "Your BMI is 30.9 - Obese."},
		{"", "65", InvalidBMIMessage},
		{"170", "0", InvalidBMIMessage},
	}
	for _, tt := range tests {
		s.SetInputs(tt.height, tt.weight)
		s.Calculate()
		if s.Result() != tt.want {
			t.Errorf("height=%q weight=%q: got %q, want %q", tt.height, tt.weight, s.Result(), tt.want)
		}
	}
}

// fakeKeyboard 固定的键盘输入
type fakeKeyboard struct {
	chars   []rune
	pressed map[ebiten.Key]bool
}

func (k *fakeKeyboard) Chars() []rune                   { return k.chars }
func (k *fakeKeyboard) Repeat(ebiten.Key) bool          { return false }
func (k *fakeKeyboard) JustPressed(key ebiten.Key) bool { return k.pressed[key] }

func TestBMISceneEnterSubmits(t *testing.T) {
	t.Setenv(utils.MobileEmulateEnv, "")
	f := newFixture(t)
	s := NewBMIScene(f.ctx, false)
	kb := &fakeKeyboard{}
	s.TextInputSystem().SetKeyboardSource(kb)

	s.SetInputs("", "50")
	height, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, s.heightInput)
	f.fp.press(height.X+5, height.Y+5)
	kb.chars = []rune("160")
	s.Update(frame)

	f.fp.idle(0, 0)
	kb.chars = nil
	kb.pressed = map[ebiten.Key]bool{ebiten.KeyEnter: true}
	s.Update(frame)

	if want := "Your BMI is 19.5 - Normal weight."; s.Result() != want {
		t.Errorf("Result() = %q, want %q", s.Result(), want)
	}
}

func TestBMISceneKeypad(t *testing.T) {
	t.Setenv(utils.MobileEmulateEnv, "1")
	f := newFixture(t)
	s := NewBMIScene(f.ctx, true)
	s.SetInputs("", "70")

	height, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, s.heightInput)
	f.fp.press(height.X+5, height.Y+5)
	s.Update(frame)
	f.fp.release(height.X+5, height.Y+5)
	s.Update(frame)
	if !s.keypadSystem.IsKeypadVisible() {
		t.Fatal("keypad should open for the focused input")
	}

	kbEntities := ecs.GetEntitiesWith1[*components.KeypadComponent](s.entityManager)
	kb, _ := ecs.GetComponent[*components.KeypadComponent](s.entityManager, kbEntities[0])
	keys := map[string]components.KeyInfo{}
	for _, k := range entities.KeypadKeys(kb) {
		keys[k.Action] = k
	}
	for _, action := range []string{"1", "6", "0", components.KeyDone} {
		k := keys[action]
		f.fp.press(k.X+2, k.Y+2)
		s.Update(frame)
		f.fp.release(k.X+2, k.Y+2)
		s.Update(frame)
	}

	if s.keypadSystem.IsKeypadVisible() {
		t.Error("Done should close the keypad")
	}
	if want := "Your BMI is 27.3 - Overweight."; s.Result() != want {
		t.Errorf("Result() = %q, want %q", s.Result(), want)
	}

	s.OnLeave()
	if _, focused := systems.FocusedInput(s.entityManager); focused {
		t.Error("leaving the panel should blur inputs")
	}
}

// quietConfig 不生成食物的小游戏参数
func quietConfig() *config.MinigameConfig {
	cfg := config.DefaultMinigameConfig()
	cfg.Items.SpawnRate = 0
	return cfg
}

type fakeKeys struct {
	pressed, released map[ebiten.Key]bool
}

func (k *fakeKeys) JustPressed(key ebiten.Key) bool  { return k.pressed[key] }
func (k *fakeKeys) JustReleased(key ebiten.Key) bool { return k.released[key] }

func TestMinigameSceneLifecycle(t *testing.T) {
	f := newFixture(t)
	sched := minigame.NewSimScheduler()
	s := NewMinigameScene(f.ctx, quietConfig(), sched, false, minigame.WithRand(rand.New(rand.NewSource(1))))

	s.OnEnter()
	if s.display.Prompt() != "Click to Play!" {
		t.Fatalf("idle prompt = %q", s.display.Prompt())
	}

	// 点击画布开始
	cx, cy := s.fieldX+s.fieldW/2, s.fieldY+s.fieldH/2
	f.fp.press(cx, cy)
	s.Update(frame)
	f.fp.release(cx, cy)
	s.Update(frame)
	if !s.Engine().Running() {
		t.Fatal("field click should start a session")
	}
	if len(f.clicks) != 0 {
		t.Errorf("field click should not play the button cue, got %v", f.clicks)
	}

	keys := &fakeKeys{pressed: map[ebiten.Key]bool{ebiten.KeyA: true}}
	s.SetKeySource(keys)
	f.fp.idle(0, 0)
	s.Update(frame)
	if !s.Engine().Input().Left {
		t.Error("A should press left")
	}
	keys.pressed, keys.released = nil, map[ebiten.Key]bool{ebiten.KeyA: true}
	s.Update(frame)
	if s.Engine().Input().Left {
		t.Error("releasing A should release left")
	}

	// 倒计时结束
	for i := 0; i < 31*60; i++ {
		sched.Advance(frame)
	}
	if s.Engine().Phase() != minigame.PhaseEnded {
		t.Fatalf("phase = %v, want ended", s.Engine().Phase())
	}
	if s.Banner() != "Your score: 0" || s.display.Prompt() != "Click to Restart" {
		t.Errorf("banner = %q, prompt = %q", s.Banner(), s.display.Prompt())
	}

	// 重新开始会清除结算提示
	keys.released = nil
	f.fp.press(cx, cy)
	s.Update(frame)
	f.fp.release(cx, cy)
	s.Update(frame)
	if !s.Engine().Running() || s.Banner() != "" {
		t.Errorf("restart: running=%v banner=%q", s.Engine().Running(), s.Banner())
	}

	s.OnLeave()
	if s.Engine().Phase() != minigame.PhaseIdle || sched.ActiveIntervals() != 0 {
		t.Errorf("leave should stop the game: phase=%v intervals=%d", s.Engine().Phase(), sched.ActiveIntervals())
	}
}

func TestMinigameSceneTouchButtons(t *testing.T) {
	f := newFixture(t)
	sched := minigame.NewSimScheduler()
	s := NewMinigameScene(f.ctx, quietConfig(), sched, true)
	s.SetKeySource(&fakeKeys{})
	s.Engine().Start()

	x, y := f.buttonCenter(t, s.entityManager, "right-btn")
	f.fp.press(x, y)
	s.Update(frame)
	if !s.Engine().Input().Right {
		t.Fatal("holding the right button should press right")
	}
	f.fp.hold(x, y)
	s.Update(frame)
	f.fp.release(x, y)
	s.Update(frame)
	if s.Engine().Input().Right {
		t.Error("releasing the right button should release right")
	}
	if len(f.clicks) != 1 || f.clicks[0] != "right-btn" {
		t.Errorf("touch button release should play the click cue, got %v", f.clicks)
	}
}

func TestQuizSceneFlow(t *testing.T) {
	f := newFixture(t)
	s := NewQuizScene(f.ctx)
	questions := f.ctx.Content.Questions()

	f.clickButton(t, s, s.entityManager, "q0-opt0")
	f.clickButton(t, s, s.entityManager, "submit-btn")
	if !strings.Contains(s.Warning(), "You missed 5 question(s).") {
		t.Errorf("warning = %q", s.Warning())
	}
	if s.Engine().Completed() {
		t.Fatal("incomplete submission must not grade")
	}

	for i, q := range questions {
		s.Select(i, q.Answer)
	}
	e, _ := systems.FindButton(s.entityManager, "q0-opt0")
	button, _ := ecs.GetComponent[*components.ButtonComponent](s.entityManager, e)
	if questions[0].Answer != 0 && button.Selected {
		t.Error("changing the answer should clear the old highlight")
	}

	f.clickButton(t, s, s.entityManager, "submit-btn")
	if !s.hasText("You scored 6 out of 6") || s.Warning() != "" {
		t.Fatalf("end screen labels = %v, warning %q", s.labelTexts(), s.Warning())
	}
	if _, ok := systems.FindButton(s.entityManager, "submit-btn"); ok {
		t.Error("form should be hidden after grading")
	}
	if got := f.cues.played[len(f.cues.played)-1]; got != types.CueCorrectAnswer {
		t.Errorf("cue = %v, want correct-answer", got)
	}

	f.clickButton(t, s, s.entityManager, "restart-btn")
	if s.Engine().Completed() || s.Engine().Unanswered() != len(questions) {
		t.Error("restart should clear the attempt")
	}
	if _, ok := systems.FindButton(s.entityManager, "submit-btn"); !ok {
		t.Error("restart should show the form again")
	}
}

func TestScrolledButtonsUseContentCoordinates(t *testing.T) {
	f := newFixture(t)
	s := NewQuizScene(f.ctx)

	f.scrollY = 300
	f.clickButton(t, s, s.entityManager, "submit-btn")
	if s.Warning() == "" {
		t.Error("click at scrolled screen position should hit the submit button")
	}

	// 同一屏幕位置在未滚动时不是提交按钮
	x, y := f.buttonCenter(t, s.entityManager, "submit-btn")
	s.warning = ""
	f.scrollY = 0
	f.fp.press(x, y)
	s.Update(frame)
	f.fp.release(x, y)
	s.Update(frame)
	if s.Warning() != "" {
		t.Error("unscrolled click should miss the submit button")
	}
}

func TestBlockedContextSuppressesClicks(t *testing.T) {
	f := newFixture(t)
	blocked := true
	f.ctx.Blocked = func() bool { return blocked }
	s := NewHomeScene(f.ctx)

	f.clickButton(t, s, s.entityManager, "home-go-bmi")
	if len(f.navigate) != 0 {
		t.Errorf("blocked click navigated to %v", f.navigate)
	}
	blocked = false
	f.clickButton(t, s, s.entityManager, "home-go-bmi")
	if len(f.navigate) != 1 {
		t.Errorf("unblocked click: navigate = %v", f.navigate)
	}
}
