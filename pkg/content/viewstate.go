package content

import "strings"

// Slider 幻灯片游标，前后翻页循环
type Slider struct {
	count   int
	current int
}

// NewSlider 创建 count 张幻灯片的游标，从第 0 张开始
func NewSlider(count int) *Slider {
	return &Slider{count: count}
}

// Next 翻到下一张（最后一张之后回到第一张）
func (s *Slider) Next() int {
	if s.count > 0 {
		s.current = (s.current + 1) % s.count
	}
	return s.current
}

// Prev 翻到上一张（第一张之前回到最后一张）
func (s *Slider) Prev() int {
	if s.count > 0 {
		s.current = (s.current - 1 + s.count) % s.count
	}
	return s.current
}

// Current 当前下标
func (s *Slider) Current() int {
	return s.current
}

// Len 幻灯片数量
func (s *Slider) Len() int {
	return s.count
}

// Popover 热点弹出卡片状态，同一时间最多一个打开
type Popover struct {
	active string
}

// Open 打开指定卡片并关闭其他卡片
func (p *Popover) Open(id string) {
	p.active = id
}

// Close 关闭当前卡片
func (p *Popover) Close() {
	p.active = ""
}

// Active 返回打开的卡片ID，没有时返回空字符串
func (p *Popover) Active() string {
	return p.active
}

// IsOpen 判断指定卡片是否打开
func (p *Popover) IsOpen(id string) bool {
	return id != "" && p.active == id
}

// tabButtonPrefix 标签按钮ID前缀，如 "btn-water"
const tabButtonPrefix = "btn-"

// TabIDFromButton 从按钮ID得到分组ID
func TabIDFromButton(buttonID string) string {
	return strings.TrimPrefix(buttonID, tabButtonPrefix)
}

// TabButtonID 从分组ID得到按钮ID
func TabButtonID(groupID string) string {
	return tabButtonPrefix + groupID
}

// Tabs 维生素标签页状态
type Tabs struct {
	ids    []string
	active string
}

// NewTabs 创建标签页，默认选中第一个
func NewTabs(ids ...string) *Tabs {
	t := &Tabs{ids: ids}
	if len(ids) > 0 {
		t.active = ids[0]
	}
	return t
}

// Select 切换到指定分组；未知ID返回 false 且不改变状态
func (t *Tabs) Select(id string) bool {
	for _, known := range t.ids {
		if known == id {
			t.active = id
			return true
		}
	}
	return false
}

// Active 当前分组ID
func (t *Tabs) Active() string {
	return t.active
}

// IDs 所有分组ID
func (t *Tabs) IDs() []string {
	return t.ids
}
