package scenes

import (
	"errors"
	"fmt"
	"log"

	"github.com/decker502/nutrition/pkg/config"
	"github.com/decker502/nutrition/pkg/ecs"
	"github.com/decker502/nutrition/pkg/entities"
	"github.com/decker502/nutrition/pkg/quiz"
	"github.com/hajimehoshi/ebiten/v2"
)

const (
	optionWidth   = 380.0
	optionHeight  = 34.0
	optionGap     = 8.0
	questionGap   = 22.0
	submitWidth   = 160.0
	submitHeight  = 42.0
	warningPrefix = "! "
)

// QuizScene is the six-question quiz. All answers are submitted at once;
// a submission with unanswered questions shows an inline warning, a full
// one hides the form and shows the score with a restart button.
type QuizScene struct {
	panel
	engine *quiz.Engine

	options  [][]ecs.EntityID // 每题的选项按钮
	warning  string
	warningY float64
}

// NewQuizScene creates the quiz panel.
func NewQuizScene(ctx *Context) *QuizScene {
	s := &QuizScene{panel: newPanel(ctx)}
	s.engine = quiz.NewEngine(s.ctx.Content.Questions(),
		quiz.WithPassThreshold(s.ctx.Content.PassThreshold()),
		quiz.WithCuePlayer(s.ctx.Cues),
	)
	s.layout()
	return s
}

// Engine returns the underlying quiz engine.
func (s *QuizScene) Engine() *quiz.Engine {
	return s.engine
}

// Warning returns the inline incomplete-submission message ("" when hidden).
func (s *QuizScene) Warning() string {
	return s.warning
}

func (s *QuizScene) layout() {
	s.reset()
	s.options = s.options[:0]

	if res, done := s.engine.Result(); done {
		s.layoutEndScreen(res)
		return
	}

	y := s.addTitle("Nutrition Quiz")
	y = s.addParagraph("Answer all questions, then press Submit.", s.font(bodySize), config.PanelPaddingX, y, config.PanelContentWidth, mutedColor)
	y += sectionSpace

	for _, q := range s.engine.RenderAll() {
		y = s.addParagraph(q.Prompt, s.bold(bodySize+1), config.PanelPaddingX, y, config.PanelContentWidth, textColor)
		y += optionGap

		buttons := make([]ecs.EntityID, len(q.Options))
		for i, opt := range q.Options {
			// 两列排列
			x := config.PanelPaddingX + float64(i%2)*(optionWidth+optionGap)
			oy := y + float64(i/2)*(optionHeight+optionGap)
			question, option := q.Index, i
			buttons[i] = s.addButton(fmt.Sprintf("q%d-opt%d", q.Index, i), x, oy, optionWidth, optionHeight, opt, entities.OptionButtonStyle, func() {
				s.Select(question, option)
			})
			entities.SetSelected(s.entityManager, buttons[i], q.Selected == i)
		}
		s.options = append(s.options, buttons)
		rows := (len(q.Options) + 1) / 2
		y += float64(rows)*(optionHeight+optionGap) + questionGap
	}

	s.addButton("submit-btn", config.PanelPaddingX, y, submitWidth, submitHeight, "Submit", entities.PrimaryButtonStyle, s.Submit)
	y += submitHeight + sectionSpace/2
	s.warningY = y
	s.finish(y + 2*lineHeight(s.font(bodySize)))
}

func (s *QuizScene) layoutEndScreen(res quiz.Result) {
	y := s.addTitle("Quiz Complete")
	y = s.addText(res.String(), s.bold(headingSize+4), config.PanelPaddingX, y, textColor)
	msg := "Keep learning and try again!"
	if res.Passed {
		msg = "Great job! You know your nutrition."
	}
	y = s.addText(msg, s.font(bodySize), config.PanelPaddingX, y+sectionSpace/2, mutedColor)
	y += sectionSpace

	s.addButton("restart-btn", config.PanelPaddingX, y, submitWidth, submitHeight, "Restart Quiz", entities.PrimaryButtonStyle, s.Restart)
	s.finish(y + submitHeight)
}

// Select records an answer and updates the option highlight.
func (s *QuizScene) Select(question, option int) {
	if err := s.engine.Select(question, option); err != nil {
		log.Printf("[QuizScene] Select(%d, %d) failed: %v", question, option, err)
		return
	}
	if question < len(s.options) {
		for i, id := range s.options[question] {
			entities.SetSelected(s.entityManager, id, i == option)
		}
	}
}

// Submit grades the quiz. An incomplete submission only shows the warning.
func (s *QuizScene) Submit() {
	res, err := s.engine.Grade()
	var incomplete *quiz.IncompleteSubmissionError
	switch {
	case errors.As(err, &incomplete):
		s.warning = warningPrefix + incomplete.Error()
		return
	case err != nil:
		log.Printf("[QuizScene] Grade failed: %v", err)
		return
	}

	log.Printf("[QuizScene] %s (passed=%v)", res, res.Passed)
	s.warning = ""
	s.layout()
}

// Restart clears all answers and shows the form again.
func (s *QuizScene) Restart() {
	s.engine.Restart()
	s.warning = ""
	s.layout()
}

// OnEnter starts a fresh attempt every time the panel is opened.
// Re-selecting the quiz while it is already shown also restarts it, so any
// unsubmitted answers are cleared.
func (s *QuizScene) OnEnter() {
	s.Restart()
}

// Update handles option, submit and restart clicks.
func (s *QuizScene) Update(deltaTime float64) {
	s.buttonSystem.Update(deltaTime)
}

// Draw renders the form (or the end screen) and the warning.
func (s *QuizScene) Draw(screen *ebiten.Image) {
	s.drawPanel(screen)
	if s.warning != "" {
		s.drawWrapped(screen, s.warning, s.font(bodySize), config.PanelPaddingX, s.warningY, config.PanelContentWidth, errorColor)
	}
}
