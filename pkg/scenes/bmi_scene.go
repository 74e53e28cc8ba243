package scenes

import (
	"fmt"
	"log"

	"github.com/decker502/nutrition/pkg/bmi"
	"github.com/decker502/nutrition/pkg/components"
	"github.com/decker502/nutrition/pkg/config"
	"github.com/decker502/nutrition/pkg/ecs"
	"github.com/decker502/nutrition/pkg/entities"
	"github.com/decker502/nutrition/pkg/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

// InvalidBMIMessage 输入无效时显示的提示
const InvalidBMIMessage = "Please enter valid height and weight."

const (
	bmiLabelWidth  = 130.0
	bmiInputWidth  = 180.0
	bmiInputHeight = 36.0
	bmiRowGap      = 14.0
	bmiButtonWidth = 160.0
	bmiTableWidth  = 360.0
	bmiTableRowH   = 30.0
)

// bmiTableRow 分类参考表的一行
type bmiTableRow struct {
	category bmi.Category
	rangeStr string
}

var bmiTable = []bmiTableRow{
	{bmi.Underweight, fmt.Sprintf("below %.1f", bmi.UnderweightBelow)},
	{bmi.Normal, fmt.Sprintf("%.1f - %.1f", bmi.UnderweightBelow, bmi.NormalBelow-0.1)},
	{bmi.Overweight, fmt.Sprintf("%.1f - %.1f", bmi.NormalBelow, bmi.OverweightBelow-0.1)},
	{bmi.Obese, fmt.Sprintf("%.1f and above", bmi.OverweightBelow)},
}

// BMIScene is the BMI calculator: two numeric inputs, a Calculate button
// and a result line. Pressing Enter in either input also calculates.
// On touch devices a numeric keypad pops up while an input is focused.
type BMIScene struct {
	panel

	textInputSystem *systems.TextInputSystem
	textInputRender *systems.TextInputRenderSystem
	keypadSystem    *systems.KeypadSystem
	keypadRender    *systems.KeypadRenderSystem

	heightInput ecs.EntityID
	weightInput ecs.EntityID

	result   string
	category bmi.Category
	invalid  bool
	resultY  float64
	tableY   float64
}

// NewBMIScene creates the BMI panel.
//
// Parameters:
//   - ctx: shared scene context
//   - mobile: when true a numeric keypad entity is created for touch input
func NewBMIScene(ctx *Context, mobile bool) *BMIScene {
	s := &BMIScene{panel: newPanel(ctx)}

	s.keypadSystem = systems.NewKeypadSystem(s.entityManager)
	s.keypadSystem.SetPointerSource(s.ctx.Pointer)
	s.keypadRender = systems.NewKeypadRenderSystem(s.entityManager, s.font(buttonSize+2))

	blocked := func() bool { return s.ctx.Blocked() || s.keypadSystem.ConsumeInput() }
	s.buttonSystem.Blocked = blocked

	s.textInputSystem = systems.NewTextInputSystem(s.entityManager)
	s.textInputSystem.SetPointerSource(s.ctx.Pointer)
	s.textInputSystem.SetOffset(s.ctx.Offset)
	s.textInputSystem.Blocked = blocked
	s.textInputRender = systems.NewTextInputRenderSystem(s.entityManager)
	s.textInputRender.SetOffset(s.ctx.Offset)

	s.layout()
	if mobile {
		entities.NewKeypadEntity(s.entityManager, config.GameWindowWidth, config.GameWindowHeight)
	}
	return s
}

// TextInputSystem exposes the input system (tests replace its keyboard).
func (s *BMIScene) TextInputSystem() *systems.TextInputSystem {
	return s.textInputSystem
}

func (s *BMIScene) layout() {
	s.reset()

	y := s.addTitle("BMI Calculator")
	y = s.addParagraph("Body Mass Index compares your weight with your height. Enter your height in centimetres and your weight in kilograms.",
		s.font(bodySize), config.PanelPaddingX, y, config.PanelContentWidth, textColor)
	y += sectionSpace

	inputX := config.PanelPaddingX + bmiLabelWidth
	labelFace := s.font(bodySize)
	s.addText("Height (cm)", labelFace, config.PanelPaddingX, y+8, textColor)
	s.heightInput = entities.NewNumericInputEntity(s.entityManager, inputX, y, bmiInputWidth, bmiInputHeight, s.font(bodySize), "e.g. 170", s.Calculate)
	y += bmiInputHeight + bmiRowGap

	s.addText("Weight (kg)", labelFace, config.PanelPaddingX, y+8, textColor)
	s.weightInput = entities.NewNumericInputEntity(s.entityManager, inputX, y, bmiInputWidth, bmiInputHeight, s.font(bodySize), "e.g. 65", s.Calculate)
	y += bmiInputHeight + bmiRowGap

	s.addButton("calculate-btn", inputX, y, bmiButtonWidth, bmiInputHeight+4, "Calculate BMI", entities.PrimaryButtonStyle, s.Calculate)
	y += bmiInputHeight + 4 + sectionSpace

	s.resultY = y
	y += lineHeight(s.bold(headingSize)) + sectionSpace

	s.tableY = y
	s.finish(y + bmiTableRowH*float64(len(bmiTable)+1))
}

func (s *BMIScene) input(id ecs.EntityID) *components.TextInputComponent {
	input, _ := ecs.GetComponent[*components.TextInputComponent](s.entityManager, id)
	return input
}

// SetInputs replaces the text of both inputs.
func (s *BMIScene) SetInputs(height, weight string) {
	s.input(s.heightInput).Text = height
	s.input(s.weightInput).Text = weight
}

// Calculate reads both inputs and updates the result line.
func (s *BMIScene) Calculate() {
	height, weight := s.input(s.heightInput).Text, s.input(s.weightInput).Text
	res, err := bmi.Parse(height, weight)
	if err != nil {
		log.Printf("[BMIScene] Invalid input height=%q weight=%q: %v", height, weight, err)
		s.result, s.invalid, s.category = InvalidBMIMessage, true, ""
		return
	}
	s.result, s.invalid, s.category = res.String(), false, res.Category
	log.Printf("[BMIScene] %s", s.result)
}

// Result returns the text of the result line ("" before the first calculation).
func (s *BMIScene) Result() string {
	return s.result
}

// OnLeave hides the keypad and blurs the inputs.
func (s *BMIScene) OnLeave() {
	s.keypadSystem.HideKeypad()
	for _, id := range []ecs.EntityID{s.heightInput, s.weightInput} {
		systems.Focus(s.input(id), false)
	}
}

// Update runs the keypad first so that it can consume the click.
func (s *BMIScene) Update(deltaTime float64) {
	s.keypadSystem.Update(deltaTime)
	s.textInputSystem.Update(deltaTime)
	s.buttonSystem.Update(deltaTime)
}

// Draw renders the form, the result, the reference table and the keypad.
func (s *BMIScene) Draw(screen *ebiten.Image) {
	s.drawPanel(screen)
	s.textInputRender.Draw(screen)

	if s.result != "" {
		clr := textColor
		if s.invalid {
			clr = errorColor
		}
		s.drawLabel(screen, label{Text: s.result, Face: s.bold(headingSize), X: config.PanelPaddingX, Y: s.resultY, Color: clr})
	}
	s.drawTable(screen)

	if s.keypadSystem.IsKeypadVisible() {
		s.keypadRender.Draw(screen)
	}
}

// drawTable 绘制分类参考表，高亮当前结果所在的行
func (s *BMIScene) drawTable(screen *ebiten.Image) {
	face := s.font(bodySize - 1)
	x, y := config.PanelPaddingX, s.tableY
	s.drawBox(screen, box{X: x, Y: y, W: bmiTableWidth, H: bmiTableRowH, Fill: cardBorder})
	s.drawLabel(screen, label{Text: "Category", Face: s.bold(bodySize - 1), X: x + 10, Y: y + 5, Color: textColor})
	s.drawLabel(screen, label{Text: "BMI", Face: s.bold(bodySize - 1), X: x + bmiTableWidth/2, Y: y + 5, Color: textColor})

	for _, row := range bmiTable {
		y += bmiTableRowH
		fill := cardFill
		if row.category == s.category {
			fill = popoverFill
		}
		s.drawBox(screen, box{X: x, Y: y, W: bmiTableWidth, H: bmiTableRowH, Fill: fill, Border: cardBorder})
		s.drawLabel(screen, label{Text: string(row.category), Face: face, X: x + 10, Y: y + 5, Color: textColor})
		s.drawLabel(screen, label{Text: row.rangeStr, Face: face, X: x + bmiTableWidth/2, Y: y + 5, Color: mutedColor})
	}
}
