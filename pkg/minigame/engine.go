package minigame

import (
	"log"
	"math"
	"math/rand"
	"time"

	"github.com/decker502/nutrition/pkg/config"
	"github.com/decker502/nutrition/pkg/types"
	"github.com/google/uuid"
)

// Engine 小游戏引擎
//
// 所有方法都必须在宿主的更新线程中调用（ebiten 的 Update 或终端主循环），
// 帧回调和倒计时回调由同一个 Scheduler 在该线程中触发，因此不需要加锁。
type Engine struct {
	cfg      *config.MinigameConfig
	sched    Scheduler
	surface  Surface
	observer Observer
	cues     types.CuePlayer
	rng      *rand.Rand

	session Session
	input   Input

	frame     Handle // 待执行的帧请求
	countdown Handle // 倒计时定时器

	// 帧时间戳，firstFrame 为 true 时下一帧 delta 为 0
	lastTimestamp float64
	firstFrame    bool
}

// Option 引擎选项
type Option func(*Engine)

// WithSurface 设置绘制目标（默认丢弃所有绘制）
func WithSurface(s Surface) Option {
	return func(e *Engine) {
		if s != nil {
			e.surface = s
		}
	}
}

// WithObserver 设置 HUD 观察者
func WithObserver(o Observer) Option {
	return func(e *Engine) {
		e.observer = o
	}
}

// WithCuePlayer 设置接住食物时的提示音播放器
func WithCuePlayer(p types.CuePlayer) Option {
	return func(e *Engine) {
		if p != nil {
			e.cues = p
		}
	}
}

// WithRand 注入随机源（测试中用固定种子）
func WithRand(r *rand.Rand) Option {
	return func(e *Engine) {
		if r != nil {
			e.rng = r
		}
	}
}

// NewEngine 创建处于 Idle 阶段的引擎
// cfg 为 nil 时使用 config.DefaultMinigameConfig()
func NewEngine(cfg *config.MinigameConfig, sched Scheduler, opts ...Option) *Engine {
	if cfg == nil {
		cfg = config.DefaultMinigameConfig()
	}
	e := &Engine{
		cfg:     cfg,
		sched:   sched,
		surface: nopSurface{},
		cues:    types.NopCuePlayer{},
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.session = e.freshSession(PhaseIdle)
	return e
}

func (e *Engine) freshSession(phase Phase) Session {
	return Session{
		Phase:    phase,
		Score:    0,
		Lives:    e.cfg.Session.Lives,
		TimeLeft: e.cfg.Session.Seconds,
		Basket: Basket{
			X:      e.cfg.Basket.StartX,
			Y:      e.cfg.BasketY(),
			Width:  e.cfg.Basket.Width,
			Height: e.cfg.Basket.Height,
		},
	}
}

// Config 返回引擎使用的参数
func (e *Engine) Config() *config.MinigameConfig {
	return e.cfg
}

// Phase 返回当前阶段
func (e *Engine) Phase() Phase {
	return e.session.Phase
}

// Running 是否正在进行
func (e *Engine) Running() bool {
	return e.session.Phase == PhaseRunning
}

// Stats 返回 HUD 数值
func (e *Engine) Stats() Stats {
	return Stats{Score: e.session.Score, Lives: e.session.Lives, TimeLeft: e.session.TimeLeft}
}

// Input 返回当前输入状态
func (e *Engine) Input() Input {
	return e.input
}

// Session 返回当前会话的副本
func (e *Engine) Session() Session {
	s := e.session
	s.Items = append([]Item(nil), e.session.Items...)
	return s
}

// EnterIdle 停止一切计时并回到待机画面
// 可以从任何阶段调用，重复调用是安全的
func (e *Engine) EnterIdle() {
	e.cancelClocks()
	e.input = Input{}
	e.session.Phase = PhaseIdle
	e.DrawIdle()
}

// DrawIdle 只绘制待机提示
func (e *Engine) DrawIdle() {
	e.surface.Clear()
	e.surface.SetPrompt(e.cfg.Prompts.Idle)
}

// HandleClick 处理场地上的点击：不在进行中时开始新的一局
func (e *Engine) HandleClick() bool {
	if e.Running() {
		return false
	}
	return e.Start()
}

// Start 开始新的一局
// 只能从 Idle 或 Ended 阶段开始；正在进行时返回 false
//
// 返回：
//
//	true 表示新的一局已经开始
func (e *Engine) Start() bool {
	if e.Running() {
		return false
	}

	e.cancelClocks()
	e.session = e.freshSession(PhaseRunning)
	e.session.ID = uuid.NewString()
	e.input = Input{}

	e.surface.Clear()
	e.surface.SetPrompt("")
	e.publishStats()

	e.countdown = e.sched.SetInterval(e.cfg.Session.TickInterval, e.tick)
	e.firstFrame = true
	e.requestFrame()

	log.Printf("[Minigame] Session %s started (lives=%d, time=%ds)",
		e.session.ID, e.session.Lives, e.session.TimeLeft)
	return true
}

// End 结束当前一局：停止计时、显示重新开始提示并通知最终分数
// 不在进行中时为空操作
func (e *Engine) End() {
	if !e.Running() {
		return
	}

	e.cancelClocks()
	e.input = Input{}
	e.session.Phase = PhaseEnded

	e.surface.Clear()
	e.surface.SetPrompt(e.cfg.Prompts.Ended)

	log.Printf("[Minigame] Session %s ended: score=%d lives=%d time=%d",
		e.session.ID, e.session.Score, e.session.Lives, e.session.TimeLeft)

	if e.observer != nil {
		e.observer.SessionEnded(e.Session())
	}
}

// Press 按下方向（键盘按下或触摸开始）
func (e *Engine) Press(d Direction) {
	e.setInput(d, true)
}

// Release 松开方向（键盘抬起或触摸结束）
func (e *Engine) Release(d Direction) {
	e.setInput(d, false)
}

func (e *Engine) setInput(d Direction, down bool) {
	if !e.Running() {
		return
	}
	switch d {
	case Left:
		e.input.Left = down
	case Right:
		e.input.Right = down
	}
}

// OnFrame 推进一帧
//
// 参数：
//
//	delta - 距上一帧的时间（秒）
//
// 步骤：绘制篮子 → 移动篮子 → 按概率生成食物 → 从末尾向前更新食物并检测碰撞。
// 生命归零时本帧直接结束；否则请求下一帧。
func (e *Engine) OnFrame(delta float64) {
	if !e.Running() {
		return
	}
	if delta < 0 {
		delta = 0
	}

	e.surface.Clear()
	b := &e.session.Basket
	e.surface.DrawSprite(BasketSprite, b.X, b.Y, b.Width, b.Height)

	e.moveBasket(delta)
	e.maybeSpawn(delta)
	e.updateItems(delta)

	if e.session.Lives <= 0 {
		e.End()
		return
	}
	e.requestFrame()
}

func (e *Engine) moveBasket(delta float64) {
	b := &e.session.Basket
	b.X += e.input.Axis() * e.cfg.Basket.Speed * delta
	maxX := e.cfg.Field.Width - b.Width
	b.X = math.Max(0, math.Min(b.X, maxX))
}

func (e *Engine) maybeSpawn(delta float64) {
	if len(e.cfg.Pool) == 0 {
		return
	}
	if e.rng.Float64() >= delta*e.cfg.Items.SpawnRate {
		return
	}

	entry := e.cfg.Pool[e.rng.Intn(len(e.cfg.Pool))]
	items := e.cfg.Items
	e.session.Items = append(e.session.Items, Item{
		X:        e.rng.Float64() * (e.cfg.Field.Width - items.Width),
		Y:        -items.Height,
		Width:    items.Width,
		Height:   items.Height,
		Speed:    items.MinSpeed + e.rng.Float64()*(items.MaxSpeed-items.MinSpeed),
		Category: Category(entry.Category),
		Sprite:   entry.Sprite,
	})
}

func (e *Engine) updateItems(delta float64) {
	basket := e.session.Basket
	items := e.session.Items

	// 从末尾向前扫描，删除当前元素不影响尚未访问的元素
	for i := len(items) - 1; i >= 0; i-- {
		it := &items[i]
		it.Y += it.Speed * delta
		e.surface.DrawSprite(it.Sprite, it.X, it.Y, it.Width, it.Height)

		if it.Overlaps(basket) {
			e.catch(*it)
			items = append(items[:i], items[i+1:]...)
		} else if it.Y > e.cfg.Field.Height {
			items = append(items[:i], items[i+1:]...)
		}
	}
	e.session.Items = items
}

func (e *Engine) catch(it Item) {
	if it.Category == Beneficial {
		e.session.Score++
		e.cues.Play(types.CueCorrectCatch)
	} else {
		if e.session.Lives > 0 {
			e.session.Lives--
		}
		e.cues.Play(types.CueWrongCatch)
	}
	e.publishStats()
}

// tick 倒计时回调
func (e *Engine) tick() {
	if !e.Running() {
		return
	}
	if e.session.TimeLeft > 0 {
		e.session.TimeLeft--
	}
	e.publishStats()

	if e.session.TimeLeft <= 0 || e.session.Lives <= 0 {
		e.End()
	}
}

// frameCallback 把调度器时间戳换算为帧间隔后推进一帧
func (e *Engine) frameCallback(timestamp float64) {
	e.frame = 0

	delta := 0.0
	if e.firstFrame {
		e.firstFrame = false
	} else {
		delta = timestamp - e.lastTimestamp
	}
	e.lastTimestamp = timestamp

	if limit := e.cfg.Session.MaxFrameDelta; limit > 0 && delta > limit {
		delta = limit
	}
	e.OnFrame(delta)
}

// requestFrame 保证同一时间最多只有一个帧请求
func (e *Engine) requestFrame() {
	if e.frame != 0 {
		e.sched.CancelFrame(e.frame)
	}
	e.frame = e.sched.RequestFrame(e.frameCallback)
}

func (e *Engine) cancelClocks() {
	if e.frame != 0 {
		e.sched.CancelFrame(e.frame)
		e.frame = 0
	}
	if e.countdown != 0 {
		e.sched.ClearInterval(e.countdown)
		e.countdown = 0
	}
}

func (e *Engine) publishStats() {
	if e.observer != nil {
		e.observer.StatsChanged(e.Stats())
	}
}
