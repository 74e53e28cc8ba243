// Package quiz 实现一次性提交的选择题测验
package quiz

import (
	"errors"
	"fmt"
	"log"

	"github.com/decker502/nutrition/pkg/content"
	"github.com/decker502/nutrition/pkg/types"
)

var (
	// ErrOutOfRange 题目或选项下标越界
	ErrOutOfRange = errors.New("question or option index out of range")
	// ErrLocked 已提交评分，重新开始前不能修改答案
	ErrLocked = errors.New("quiz already graded, restart to answer again")
)

// IncompleteSubmissionError 提交时仍有未作答的题目
type IncompleteSubmissionError struct {
	Unanswered int
}

func (e *IncompleteSubmissionError) Error() string {
	return fmt.Sprintf("You missed %d question(s). Please answer all before submitting.", e.Unanswered)
}

// Result 评分结果
type Result struct {
	Correct int
	Total   int
	Passed  bool // Correct >= 通过线
}

func (r Result) String() string {
	return fmt.Sprintf("You scored %d out of %d", r.Correct, r.Total)
}

// QuestionView 渲染用的题目快照
type QuestionView struct {
	Index    int
	Prompt   string
	Options  []string
	Selected int // -1 表示未选择
}

// Engine 测验状态
type Engine struct {
	questions []content.Question
	threshold int
	cues      types.CuePlayer

	selected []int // 每题选中的选项，-1 表示未选择
	result   *Result
}

// Option 引擎选项
type Option func(*Engine)

// WithPassThreshold 设置播放"答对"提示音所需的正确题数
func WithPassThreshold(n int) Option {
	return func(e *Engine) {
		e.threshold = n
	}
}

// WithCuePlayer 设置提示音播放器
func WithCuePlayer(p types.CuePlayer) Option {
	return func(e *Engine) {
		if p != nil {
			e.cues = p
		}
	}
}

// NewEngine 创建测验，默认通过线为题目总数
func NewEngine(questions []content.Question, opts ...Option) *Engine {
	e := &Engine{
		questions: questions,
		threshold: len(questions),
		cues:      types.NopCuePlayer{},
	}
	for _, opt := range opts {
		opt(e)
	}
	e.Restart()
	return e
}

// Len 题目数量
func (e *Engine) Len() int {
	return len(e.questions)
}

// RenderAll 返回全部题目及当前选择
func (e *Engine) RenderAll() []QuestionView {
	views := make([]QuestionView, len(e.questions))
	for i, q := range e.questions {
		views[i] = QuestionView{
			Index:    i,
			Prompt:   q.Prompt,
			Options:  q.Options,
			Selected: e.selected[i],
		}
	}
	return views
}

// Select 为第 question 题选择第 option 个选项（覆盖之前的选择）
func (e *Engine) Select(question, option int) error {
	if e.result != nil {
		return ErrLocked
	}
	if question < 0 || question >= len(e.questions) {
		return ErrOutOfRange
	}
	if option < 0 || option >= len(e.questions[question].Options) {
		return ErrOutOfRange
	}
	e.selected[question] = option
	return nil
}

// Selected 返回第 question 题的选择，-1 表示未选择或越界
func (e *Engine) Selected(question int) int {
	if question < 0 || question >= len(e.selected) {
		return -1
	}
	return e.selected[question]
}

// Unanswered 未作答的题目数
func (e *Engine) Unanswered() int {
	n := 0
	for _, s := range e.selected {
		if s < 0 {
			n++
		}
	}
	return n
}

// Grade 提交全部答案
//
// 有未作答的题目时返回 *IncompleteSubmissionError，不给出分数也不改变作答状态。
// 否则统计正确数，按通过线播放提示音并锁定作答。
func (e *Engine) Grade() (Result, error) {
	if e.result != nil {
		return *e.result, nil
	}
	if n := e.Unanswered(); n > 0 {
		return Result{}, &IncompleteSubmissionError{Unanswered: n}
	}

	res := Result{Total: len(e.questions)}
	for i, q := range e.questions {
		if q.Correct(e.selected[i]) {
			res.Correct++
		}
	}
	res.Passed = res.Correct >= e.threshold

	if res.Passed {
		e.cues.Play(types.CueCorrectAnswer)
	} else {
		e.cues.Play(types.CueWrongAnswer)
	}

	e.result = &res
	log.Printf("[Quiz] Graded: %d/%d (threshold %d)", res.Correct, res.Total, e.threshold)
	return res, nil
}

// Completed 是否已经评分
func (e *Engine) Completed() bool {
	return e.result != nil
}

// Result 返回评分结果，未评分时 ok 为 false
func (e *Engine) Result() (Result, bool) {
	if e.result == nil {
		return Result{}, false
	}
	return *e.result, true
}

// Restart 清除所有选择和结果
func (e *Engine) Restart() {
	e.selected = make([]int, len(e.questions))
	for i := range e.selected {
		e.selected[i] = -1
	}
	e.result = nil
}
