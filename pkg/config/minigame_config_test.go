package config

import (
	"os"
	"strings"
	"testing"
)

const validMinigameYAML = `
field:
  width: 400
  height: 400
basket:
  width: 60
  height: 20
  bottomMargin: 30
  startX: 150
  speed: 300
items:
  width: 40
  height: 40
  minSpeed: 80
  maxSpeed: 120
  spawnRate: 2.5
pool:
  - sprite: carrot
    category: beneficial
  - sprite: soda
    category: detrimental
session:
  lives: 3
  seconds: 30
  tickInterval: 1.0
`

func TestParseMinigameConfig(t *testing.T) {
	tests := []struct {
		name        string
		yamlContent string
		wantErr     bool
		errContains string
		validate    func(*testing.T, *MinigameConfig)
	}{
		{
			name:        "valid config",
			yamlContent: validMinigameYAML,
			validate: func(t *testing.T, cfg *MinigameConfig) {
				if cfg.BasketY() != 370 {
					t.Errorf("expected basket y = 370, got %.1f", cfg.BasketY())
				}
				if len(cfg.Pool) != 2 {
					t.Errorf("expected 2 pool entries, got %d", len(cfg.Pool))
				}
				if cfg.Prompts.Idle != "Click to Play!" {
					t.Errorf("expected default idle prompt, got %q", cfg.Prompts.Idle)
				}
				if cfg.Session.MaxFrameDelta != 0 {
					t.Errorf("expected maxFrameDelta = 0 when omitted, got %.2f", cfg.Session.MaxFrameDelta)
				}
			},
		},
		{
			name:        "empty pool",
			yamlContent: strings.Replace(validMinigameYAML, "pool:\n  - sprite: carrot\n    category: beneficial\n  - sprite: soda\n    category: detrimental\n", "pool: []\n", 1),
			wantErr:     true,
			errContains: "pool cannot be empty",
		},
		{
			name:        "unknown category",
			yamlContent: strings.Replace(validMinigameYAML, "category: detrimental", "category: tasty", 1),
			wantErr:     true,
			errContains: "unknown category",
		},
		{
			name:        "basket wider than field",
			yamlContent: strings.Replace(validMinigameYAML, "  width: 60", "  width: 500", 1),
			wantErr:     true,
			errContains: "exceeds field width",
		},
		{
			name:        "inverted speed range",
			yamlContent: strings.Replace(validMinigameYAML, "maxSpeed: 120", "maxSpeed: 50", 1),
			wantErr:     true,
			errContains: "item speed range invalid",
		},
		{
			name:        "zero lives",
			yamlContent: strings.Replace(validMinigameYAML, "lives: 3", "lives: 0", 1),
			wantErr:     true,
			errContains: "session.lives",
		},
		{
			name:        "malformed yaml",
			yamlContent: "field: [",
			wantErr:     true,
			errContains: "failed to parse minigame YAML",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := ParseMinigameConfig([]byte(tt.yamlContent))
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error containing %q, got nil", tt.errContains)
				}
				if !strings.Contains(err.Error(), tt.errContains) {
					t.Errorf("expected error containing %q, got %q", tt.errContains, err.Error())
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.validate != nil {
				tt.validate(t, cfg)
			}
		})
	}
}

// TestShippedMinigameConfig 确认仓库中的 data/minigame.yaml 与默认参数一致
func TestShippedMinigameConfig(t *testing.T) {
	data, err := os.ReadFile("../../data/minigame.yaml")
	if err != nil {
		t.Fatalf("failed to read shipped config: %v", err)
	}

	cfg, err := ParseMinigameConfig(data)
	if err != nil {
		t.Fatalf("shipped config invalid: %v", err)
	}

	def := DefaultMinigameConfig()
	if cfg.Field != def.Field || cfg.Basket != def.Basket || cfg.Items != def.Items || cfg.Session != def.Session {
		t.Errorf("shipped config differs from defaults:\n got  %+v\n want %+v", cfg, def)
	}
	if len(cfg.Pool) != len(def.Pool) {
		t.Fatalf("expected %d pool entries, got %d", len(def.Pool), len(cfg.Pool))
	}
	for i := range cfg.Pool {
		if cfg.Pool[i] != def.Pool[i] {
			t.Errorf("pool[%d] = %+v, want %+v", i, cfg.Pool[i], def.Pool[i])
		}
	}
}

func TestDefaultMinigameConfigIsValid(t *testing.T) {
	if err := validateMinigameConfig(DefaultMinigameConfig()); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}
}
