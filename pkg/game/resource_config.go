package game

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// ResourceConfigPath 资源配置文件路径
const ResourceConfigPath = "data/resources.yaml"

// 精灵的程序化绘制形状
const (
	ShapeRect     = "rect"
	ShapeCircle   = "circle"
	ShapeTriangle = "triangle"
	ShapeStack    = "stack"
)

// ResourceConfig represents the resource configuration loaded from YAML.
// It defines the structure of data/resources.yaml.
//
// Structure:
//
//	sprites:
//	  - id: apple
//	    path: data/sprites/apple.png
//	    shape: circle
//	    color: "#d62828"
type ResourceConfig struct {
	Sprites []SpriteResource `yaml:"sprites"`
}

// SpriteResource 单个精灵定义
// Path 指向的 PNG 不存在时，按 Shape/Color 程序化绘制
type SpriteResource struct {
	ID    string `yaml:"id"`    // 精灵ID（与 minigame.yaml 的 sprite 字段一致）
	Path  string `yaml:"path"`  // 可选的嵌入 PNG 路径
	Shape string `yaml:"shape"` // rect | circle | triangle | stack
	Color string `yaml:"color"` // "#rrggbb" 或 "#rrggbbaa"
}

// ParseResourceConfig 解析并校验资源配置
func ParseResourceConfig(data []byte) (*ResourceConfig, error) {
	var cfg ResourceConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse resource YAML: %w", err)
	}
	if err := validateResourceConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid resource config: %w", err)
	}
	return &cfg, nil
}

func validateResourceConfig(cfg *ResourceConfig) error {
	seen := make(map[string]bool, len(cfg.Sprites))
	for i, s := range cfg.Sprites {
		if s.ID == "" {
			return fmt.Errorf("sprites[%d]: id cannot be empty", i)
		}
		if seen[s.ID] {
			return fmt.Errorf("sprites[%d]: duplicate sprite id %q", i, s.ID)
		}
		seen[s.ID] = true

		switch s.Shape {
		case ShapeRect, ShapeCircle, ShapeTriangle, ShapeStack:
		default:
			return fmt.Errorf("sprite %q: unknown shape %q", s.ID, s.Shape)
		}
		if _, err := ParseHexColor(s.Color); err != nil {
			return fmt.Errorf("sprite %q: %w", s.ID, err)
		}
	}
	return nil
}

// ParseHexColor 解析 "#rrggbb" / "#rrggbbaa" 颜色
func ParseHexColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 && len(hex) != 8 {
		return color.RGBA{}, fmt.Errorf("invalid color %q", s)
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return color.RGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}
