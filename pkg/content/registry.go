package content

import (
	"fmt"
	"log"

	"gopkg.in/yaml.v3"
)

// 内容文件路径（相对于嵌入文件系统根目录）
const (
	PanelsPath         = "data/content/panels.yaml"
	MacronutrientsPath = "data/content/macronutrients.yaml"
	GuidelinesPath     = "data/content/guidelines.yaml"
	VitaminsPath       = "data/content/vitamins.yaml"
	QuizPath           = "data/content/quiz.yaml"
)

// ReadFunc 读取文件内容，通常是 embedded.ReadFile
type ReadFunc func(path string) ([]byte, error)

// Registry 只读的内容注册表
type Registry struct {
	panels         []Panel
	intro          Intro
	macronutrients []Macronutrient
	hotspots       []Hotspot
	vitaminGroups  []VitaminGroup
	questions      []Question
	passThreshold  int
}

type panelsFile struct {
	Panels []Panel `yaml:"panels"`
	Intro  Intro   `yaml:"intro"`
}

type macronutrientsFile struct {
	Macronutrients []Macronutrient `yaml:"macronutrients"`
}

type guidelinesFile struct {
	Hotspots []Hotspot `yaml:"hotspots"`
}

type vitaminsFile struct {
	Groups []VitaminGroup `yaml:"groups"`
}

type quizFile struct {
	PassThreshold int        `yaml:"passThreshold"`
	Questions     []Question `yaml:"questions"`
}

// Load 读取并校验全部内容文件
func Load(read ReadFunc) (*Registry, error) {
	var (
		panels panelsFile
		macros macronutrientsFile
		guides guidelinesFile
		vits   vitaminsFile
		quiz   quizFile
	)

	files := []struct {
		path string
		out  interface{}
	}{
		{PanelsPath, &panels},
		{MacronutrientsPath, &macros},
		{GuidelinesPath, &guides},
		{VitaminsPath, &vits},
		{QuizPath, &quiz},
	}
	for _, f := range files {
		data, err := read(f.path)
		if err != nil {
			return nil, fmt.Errorf("failed to read content file %s: %w", f.path, err)
		}
		if err := yaml.Unmarshal(data, f.out); err != nil {
			return nil, fmt.Errorf("failed to parse content file %s: %w", f.path, err)
		}
	}

	r := &Registry{
		panels:         panels.Panels,
		intro:          panels.Intro,
		macronutrients: macros.Macronutrients,
		hotspots:       guides.Hotspots,
		vitaminGroups:  vits.Groups,
		questions:      quiz.Questions,
		passThreshold:  quiz.PassThreshold,
	}
	if r.passThreshold == 0 {
		r.passThreshold = len(r.questions)
	}

	if err := r.validate(); err != nil {
		return nil, fmt.Errorf("invalid content: %w", err)
	}

	log.Printf("[Content] Loaded %d panels, %d macronutrients, %d hotspots, %d vitamin groups, %d questions",
		len(r.panels), len(r.macronutrients), len(r.hotspots), len(r.vitaminGroups), len(r.questions))
	return r, nil
}

// Panels 返回导航面板（按显示顺序）
func (r *Registry) Panels() []Panel {
	return r.panels
}

// Panel 按ID查找面板
func (r *Registry) Panel(id string) (Panel, bool) {
	for _, p := range r.panels {
		if p.ID == id {
			return p, true
		}
	}
	return Panel{}, false
}

// Intro 返回首页介绍
func (r *Registry) Intro() Intro {
	return r.intro
}

// Macronutrients 返回幻灯片数据
func (r *Registry) Macronutrients() []Macronutrient {
	return r.macronutrients
}

// Hotspots 返回餐盘热点
func (r *Registry) Hotspots() []Hotspot {
	return r.hotspots
}

// Hotspot 按ID查找热点
func (r *Registry) Hotspot(id string) (Hotspot, bool) {
	for _, h := range r.hotspots {
		if h.ID == id {
			return h, true
		}
	}
	return Hotspot{}, false
}

// VitaminGroups 返回维生素分组（标签页顺序）
func (r *Registry) VitaminGroups() []VitaminGroup {
	return r.vitaminGroups
}

// Vitamins 返回指定分组的卡片，未知分组返回 nil
func (r *Registry) Vitamins(groupID string) []Vitamin {
	for _, g := range r.vitaminGroups {
		if g.ID == groupID {
			return g.Vitamins
		}
	}
	return nil
}

// Questions 返回测验题目
func (r *Registry) Questions() []Question {
	return r.questions
}

// PassThreshold 返回播放"答对"提示音所需的正确题数
func (r *Registry) PassThreshold() int {
	return r.passThreshold
}
