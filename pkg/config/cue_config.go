package config

import (
	"fmt"

	"github.com/decker502/nutrition/pkg/embedded"
	"gopkg.in/yaml.v3"
)

// CueConfigPath 提示音合成配置文件路径
const CueConfigPath = "data/cues.yaml"

// 振荡器波形名称
const (
	WaveSine   = "sine"
	WaveSquare = "square"
	WaveSaw    = "saw"
	WaveNoise  = "noise"
)

// CueConfig 提示音合成配置
// 应用不携带音频文件，所有提示音在启动时按此配置合成
type CueConfig struct {
	SampleRate   int                `yaml:"sampleRate"`
	MasterVolume float64            `yaml:"masterVolume"` // 0.0 ~ 1.0
	Cues         map[string]CueSpec `yaml:"cues"`         // 提示音ID -> 合成参数
}

// CueSpec 单个提示音：按顺序播放的音符序列
type CueSpec struct {
	Volume float64    `yaml:"volume"`
	Notes  []NoteSpec `yaml:"notes"`
}

// NoteSpec 单个音符
type NoteSpec struct {
	Freq       float64 `yaml:"freq"`
	Wave       string  `yaml:"wave"`
	DurationMs int     `yaml:"durationMs"`
	AttackMs   int     `yaml:"attackMs"`
	ReleaseMs  int     `yaml:"releaseMs"`
}

// LoadCueConfig 从嵌入的 YAML 文件加载提示音配置
func LoadCueConfig(path string) (*CueConfig, error) {
	data, err := embedded.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read cue config %s: %w", path, err)
	}

	cfg, err := ParseCueConfig(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// ParseCueConfig 解析并校验提示音配置
func ParseCueConfig(data []byte) (*CueConfig, error) {
	var cfg CueConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse cue YAML: %w", err)
	}

	if err := validateCueConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid cue config: %w", err)
	}

	return &cfg, nil
}

// validateCueConfig 验证配置的有效性
func validateCueConfig(cfg *CueConfig) error {
	if cfg.SampleRate <= 0 {
		return fmt.Errorf("sampleRate must be positive, got %d", cfg.SampleRate)
	}
	if cfg.MasterVolume < 0 || cfg.MasterVolume > 1 {
		return fmt.Errorf("masterVolume must be within [0, 1], got %.2f", cfg.MasterVolume)
	}
	if len(cfg.Cues) == 0 {
		return fmt.Errorf("cues cannot be empty")
	}

	for id, cue := range cfg.Cues {
		if cue.Volume < 0 || cue.Volume > 1 {
			return fmt.Errorf("cue %s: volume must be within [0, 1], got %.2f", id, cue.Volume)
		}
		if len(cue.Notes) == 0 {
			return fmt.Errorf("cue %s: at least one note is required", id)
		}
		for i, note := range cue.Notes {
			switch note.Wave {
			case WaveSine, WaveSquare, WaveSaw, WaveNoise:
			default:
				return fmt.Errorf("cue %s note %d: unknown wave %q", id, i, note.Wave)
			}
			if note.Freq < 0 {
				return fmt.Errorf("cue %s note %d: freq cannot be negative", id, i)
			}
			if note.DurationMs <= 0 {
				return fmt.Errorf("cue %s note %d: durationMs must be positive, got %d", id, i, note.DurationMs)
			}
			if note.AttackMs < 0 || note.ReleaseMs < 0 {
				return fmt.Errorf("cue %s note %d: attack/release cannot be negative", id, i)
			}
		}
	}

	return nil
}
