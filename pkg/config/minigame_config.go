package config

import (
	"fmt"

	"github.com/decker502/nutrition/pkg/embedded"
	"gopkg.in/yaml.v3"
)

// MinigameConfigPath 小游戏参数配置文件路径
const MinigameConfigPath = "data/minigame.yaml"

// 食物类别（与 YAML 中的 category 字段一致）
const (
	CategoryBeneficial  = "beneficial"
	CategoryDetrimental = "detrimental"
)

// MinigameConfig 接食物小游戏参数
type MinigameConfig struct {
	Field   FieldConfig   `yaml:"field"`
	Basket  BasketConfig  `yaml:"basket"`
	Items   ItemsConfig   `yaml:"items"`
	Pool    []PoolEntry   `yaml:"pool"`
	Session SessionConfig `yaml:"session"`
	Prompts PromptsConfig `yaml:"prompts"`
}

// FieldConfig 游戏区域尺寸（像素）
type FieldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// BasketConfig 篮子参数
type BasketConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	BottomMargin float64 `yaml:"bottomMargin"` // 篮子顶边距离区域底部的距离
	StartX       float64 `yaml:"startX"`
	Speed        float64 `yaml:"speed"` // 水平移动速度（像素/秒）
}

// ItemsConfig 下落食物参数
type ItemsConfig struct {
	Width     float64 `yaml:"width"`
	Height    float64 `yaml:"height"`
	MinSpeed  float64 `yaml:"minSpeed"`  // 下落速度下限（像素/秒）
	MaxSpeed  float64 `yaml:"maxSpeed"`  // 下落速度上限（不含）
	SpawnRate float64 `yaml:"spawnRate"` // 每秒期望生成数量，单帧概率 = delta × spawnRate
}

// PoolEntry 生成池中的一种食物
type PoolEntry struct {
	Sprite   string `yaml:"sprite"`
	Category string `yaml:"category"`
}

// SessionConfig 单局参数
type SessionConfig struct {
	Lives         int     `yaml:"lives"`
	Seconds       int     `yaml:"seconds"`
	TickInterval  float64 `yaml:"tickInterval"`  // 倒计时间隔（秒）
	MaxFrameDelta float64 `yaml:"maxFrameDelta"` // 单帧时间上限，0 表示不限制
}

// PromptsConfig 画布提示文字
type PromptsConfig struct {
	Idle  string `yaml:"idle"`
	Ended string `yaml:"ended"`
}

// BasketY 返回篮子的固定Y坐标
func (c *MinigameConfig) BasketY() float64 {
	return c.Field.Height - c.Basket.BottomMargin
}

// DefaultMinigameConfig 返回内置默认参数（与 data/minigame.yaml 一致）
func DefaultMinigameConfig() *MinigameConfig {
	return &MinigameConfig{
		Field:  FieldConfig{Width: 400, Height: 400},
		Basket: BasketConfig{Width: 60, Height: 20, BottomMargin: 30, StartX: 150, Speed: 300},
		Items:  ItemsConfig{Width: 40, Height: 40, MinSpeed: 80, MaxSpeed: 120, SpawnRate: 2.5},
		Pool: []PoolEntry{
			{Sprite: "carrot", Category: CategoryBeneficial},
			{Sprite: "apple", Category: CategoryBeneficial},
			{Sprite: "veggie", Category: CategoryBeneficial},
			{Sprite: "soda", Category: CategoryDetrimental},
			{Sprite: "burger", Category: CategoryDetrimental},
		},
		Session: SessionConfig{Lives: 3, Seconds: 30, TickInterval: 1.0, MaxFrameDelta: 0.25},
		Prompts: PromptsConfig{Idle: "Click to Play!", Ended: "Click to Restart"},
	}
}

// LoadMinigameConfig 从嵌入的 YAML 文件加载小游戏参数
func LoadMinigameConfig(path string) (*MinigameConfig, error) {
	data, err := embedded.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read minigame config %s: %w", path, err)
	}

	cfg, err := ParseMinigameConfig(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// ParseMinigameConfig 解析并校验 YAML 数据
func ParseMinigameConfig(data []byte) (*MinigameConfig, error) {
	var cfg MinigameConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse minigame YAML: %w", err)
	}

	if err := validateMinigameConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid minigame config: %w", err)
	}

	return &cfg, nil
}

// validateMinigameConfig 验证配置的有效性
func validateMinigameConfig(cfg *MinigameConfig) error {
	if cfg.Field.Width <= 0 || cfg.Field.Height <= 0 {
		return fmt.Errorf("field size must be positive, got %.0fx%.0f", cfg.Field.Width, cfg.Field.Height)
	}

	// 篮子必须能放进区域
	if cfg.Basket.Width <= 0 || cfg.Basket.Height <= 0 {
		return fmt.Errorf("basket size must be positive, got %.0fx%.0f", cfg.Basket.Width, cfg.Basket.Height)
	}
	if cfg.Basket.Width > cfg.Field.Width {
		return fmt.Errorf("basket width %.0f exceeds field width %.0f", cfg.Basket.Width, cfg.Field.Width)
	}
	if cfg.Basket.BottomMargin < cfg.Basket.Height || cfg.Basket.BottomMargin > cfg.Field.Height {
		return fmt.Errorf("basket.bottomMargin must be within [%.0f, %.0f], got %.0f",
			cfg.Basket.Height, cfg.Field.Height, cfg.Basket.BottomMargin)
	}
	if cfg.Basket.StartX < 0 || cfg.Basket.StartX > cfg.Field.Width-cfg.Basket.Width {
		return fmt.Errorf("basket.startX must be within [0, %.0f], got %.0f",
			cfg.Field.Width-cfg.Basket.Width, cfg.Basket.StartX)
	}
	if cfg.Basket.Speed <= 0 {
		return fmt.Errorf("basket.speed must be positive, got %.1f", cfg.Basket.Speed)
	}

	if cfg.Items.Width <= 0 || cfg.Items.Height <= 0 || cfg.Items.Width > cfg.Field.Width {
		return fmt.Errorf("invalid item size %.0fx%.0f", cfg.Items.Width, cfg.Items.Height)
	}
	if cfg.Items.MinSpeed <= 0 || cfg.Items.MaxSpeed < cfg.Items.MinSpeed {
		return fmt.Errorf("item speed range invalid: [%.1f, %.1f)", cfg.Items.MinSpeed, cfg.Items.MaxSpeed)
	}
	if cfg.Items.SpawnRate < 0 {
		return fmt.Errorf("items.spawnRate cannot be negative, got %.2f", cfg.Items.SpawnRate)
	}

	if len(cfg.Pool) == 0 {
		return fmt.Errorf("pool cannot be empty")
	}
	for i, entry := range cfg.Pool {
		if entry.Sprite == "" {
			return fmt.Errorf("pool[%d]: sprite cannot be empty", i)
		}
		if entry.Category != CategoryBeneficial && entry.Category != CategoryDetrimental {
			return fmt.Errorf("pool[%d]: unknown category %q", i, entry.Category)
		}
	}

	if cfg.Session.Lives < 1 {
		return fmt.Errorf("session.lives must be at least 1, got %d", cfg.Session.Lives)
	}
	if cfg.Session.Seconds < 1 {
		return fmt.Errorf("session.seconds must be at least 1, got %d", cfg.Session.Seconds)
	}
	if cfg.Session.TickInterval <= 0 {
		return fmt.Errorf("session.tickInterval must be positive, got %.2f", cfg.Session.TickInterval)
	}
	if cfg.Session.MaxFrameDelta < 0 {
		return fmt.Errorf("session.maxFrameDelta cannot be negative, got %.2f", cfg.Session.MaxFrameDelta)
	}

	// 提示文字可选，缺省时使用默认值
	defaults := DefaultMinigameConfig()
	if cfg.Prompts.Idle == "" {
		cfg.Prompts.Idle = defaults.Prompts.Idle
	}
	if cfg.Prompts.Ended == "" {
		cfg.Prompts.Ended = defaults.Prompts.Ended
	}

	return nil
}
