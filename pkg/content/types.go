// Package content 保存各面板展示的静态营养知识数据
package content

// Panel 导航面板
type Panel struct {
	ID    string `yaml:"id"`
	Title string `yaml:"title"`
}

// Intro 首页介绍
type Intro struct {
	Title      string   `yaml:"title"`
	Paragraphs []string `yaml:"paragraphs"`
}

// Subcategory 宏量营养素的子分类
type Subcategory struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

// Macronutrient 一张宏量营养素幻灯片
type Macronutrient struct {
	ID            string        `yaml:"id"`
	Title         string        `yaml:"title"`
	Image         string        `yaml:"image"` // 精灵ID
	Paragraphs    []string      `yaml:"paragraphs"`
	Subcategories []Subcategory `yaml:"subcategories"`
}

// Rect 面板坐标系下的矩形
type Rect struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Contains 判断点是否在矩形内（右边和下边不包含）
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// Hotspot 膳食指南餐盘图上的可点击区域
type Hotspot struct {
	ID       string `yaml:"id"`
	Title    string `yaml:"title"`
	Text     string `yaml:"text"`
	Examples string `yaml:"examples"`
	Rect     Rect   `yaml:"rect"`
}

// Vitamin 维生素或矿物质卡片
type Vitamin struct {
	Title string `yaml:"title"`
	Info  string `yaml:"info"`
	Foods string `yaml:"foods"`
}

// VitaminGroup 一个标签页下的卡片组
type VitaminGroup struct {
	ID       string    `yaml:"id"`
	Label    string    `yaml:"label"`
	Vitamins []Vitamin `yaml:"vitamins"`
}

// Question 测验题目
type Question struct {
	Prompt  string   `yaml:"prompt"`
	Options []string `yaml:"options"`
	Answer  int      `yaml:"answer"` // 正确选项下标
}

// Correct 判断选项是否正确
func (q Question) Correct(option int) bool {
	return option == q.Answer
}
