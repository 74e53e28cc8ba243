package minigame

// Surface 引擎的绘制目标
type Surface interface {
	// Clear 清空上一帧的精灵（提示文本保留）
	Clear()
	// DrawSprite 在场地坐标 (x, y) 绘制 w×h 的精灵
	DrawSprite(key string, x, y, w, h float64)
	// SetPrompt 设置居中提示文本，空字符串表示隐藏
	SetPrompt(text string)
}

// DrawCmd 一条精灵绘制命令
type DrawCmd struct {
	Key  string
	X, Y float64
	W, H float64
}

// DisplayList 保留模式的 Surface 实现
// 引擎写入，宿主在自己的绘制阶段读出并渲染（ebiten 图像或终端字符）。
type DisplayList struct {
	cmds   []DrawCmd
	prompt string
}

// NewDisplayList 创建空的显示列表
func NewDisplayList() *DisplayList {
	return &DisplayList{}
}

func (d *DisplayList) Clear() {
	d.cmds = d.cmds[:0]
}

func (d *DisplayList) DrawSprite(key string, x, y, w, h float64) {
	d.cmds = append(d.cmds, DrawCmd{Key: key, X: x, Y: y, W: w, H: h})
}

func (d *DisplayList) SetPrompt(text string) {
	d.prompt = text
}

// Commands 返回当前帧的绘制命令（调用方不得修改）
func (d *DisplayList) Commands() []DrawCmd {
	return d.cmds
}

// Prompt 返回当前提示文本
func (d *DisplayList) Prompt() string {
	return d.prompt
}

// Count 返回指定精灵的绘制次数
func (d *DisplayList) Count(key string) int {
	n := 0
	for _, c := range d.cmds {
		if c.Key == key {
			n++
		}
	}
	return n
}

type nopSurface struct{}

func (nopSurface) Clear()                                    {}
func (nopSurface) DrawSprite(key string, x, y, w, h float64) {}
func (nopSurface) SetPrompt(text string)                     {}
