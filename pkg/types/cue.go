// Package types 定义共享的基础类型
// 这个包不依赖任何其他业务包，用于解决循环引用问题
package types

// Cue 提示音ID，与 data/cues.yaml 中的键一致
type Cue string

const (
	// CueClick 任意按钮点击
	CueClick Cue = "click"
	// CueCorrectCatch 接住健康食物
	CueCorrectCatch Cue = "correct-catch"
	// CueWrongCatch 接住垃圾食品
	CueWrongCatch Cue = "wrong-catch"
	// CueCorrectAnswer 测验达到通过线
	CueCorrectAnswer Cue = "correct-answer"
	// CueWrongAnswer 测验未达到通过线
	CueWrongAnswer Cue = "wrong-answer"
)

// AllCues 返回所有提示音ID（用于预加载）
func AllCues() []Cue {
	return []Cue{CueClick, CueCorrectCatch, CueWrongCatch, CueCorrectAnswer, CueWrongAnswer}
}

// String 返回提示音ID字符串
func (c Cue) String() string {
	return string(c)
}

// CuePlayer 播放提示音
// 实现必须是非阻塞的：调用方在帧回调或按钮回调中直接调用
type CuePlayer interface {
	Play(cue Cue)
}

// CuePlayerFunc 函数适配器
type CuePlayerFunc func(cue Cue)

// Play 实现 CuePlayer
func (f CuePlayerFunc) Play(cue Cue) {
	f(cue)
}

// NopCuePlayer 静音播放器
type NopCuePlayer struct{}

// Play 实现 CuePlayer（不做任何事）
func (NopCuePlayer) Play(Cue) {}
