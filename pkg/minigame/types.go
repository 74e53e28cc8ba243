// Package minigame 实现"接住健康食物"小游戏的核心逻辑
//
// 引擎本身不依赖任何图形或输入库：时钟通过 Scheduler 注入，
// 绘制写入 Surface，分数等 HUD 信息通过 Observer 通知宿主。
package minigame

import "github.com/decker502/nutrition/pkg/config"

// Phase 会话阶段
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseRunning
	PhaseEnded
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRunning:
		return "running"
	case PhaseEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// Category 掉落物分类
type Category string

const (
	Beneficial  Category = config.CategoryBeneficial
	Detrimental Category = config.CategoryDetrimental
)

// BasketSprite 篮子精灵键
const BasketSprite = "basket"

// Basket 玩家控制的篮子，只在水平方向移动
type Basket struct {
	X, Y          float64
	Width, Height float64
}

// Item 下落中的食物
type Item struct {
	X, Y          float64
	Width, Height float64
	Speed         float64 // 像素/秒
	Category      Category
	Sprite        string
}

// Bottom 返回物品底边的 y 坐标
func (it Item) Bottom() float64 {
	return it.Y + it.Height
}

// Overlaps 判断物品是否落入篮子
// 只检查底边是否到达篮子顶部以及水平方向的重叠
func (it Item) Overlaps(b Basket) bool {
	return it.Bottom() >= b.Y &&
		it.X+it.Width > b.X &&
		it.X < b.X+b.Width
}

// Direction 输入方向
type Direction int

const (
	Left Direction = iota
	Right
)

// Input 当前按住的方向键
type Input struct {
	Left  bool
	Right bool
}

// Axis 返回 -1、0 或 1
func (in Input) Axis() float64 {
	axis := 0.0
	if in.Right {
		axis++
	}
	if in.Left {
		axis--
	}
	return axis
}

// Session 一局游戏的状态
type Session struct {
	ID       string // 用于日志关联
	Phase    Phase
	Score    int
	Lives    int
	TimeLeft int // 剩余秒数
	Basket   Basket
	Items    []Item
}

// Stats HUD 显示的三个数值
type Stats struct {
	Score    int
	Lives    int
	TimeLeft int
}

// Observer 接收 HUD 更新和结算通知
type Observer interface {
	StatsChanged(stats Stats)
	SessionEnded(final Session)
}

// ObserverFuncs 用函数字段实现 Observer，未设置的字段忽略
type ObserverFuncs struct {
	OnStats func(stats Stats)
	OnEnded func(final Session)
}

func (o ObserverFuncs) StatsChanged(stats Stats) {
	if o.OnStats != nil {
		o.OnStats(stats)
	}
}

func (o ObserverFuncs) SessionEnded(final Session) {
	if o.OnEnded != nil {
		o.OnEnded(final)
	}
}
