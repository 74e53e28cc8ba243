package config

import (
	"os"
	"strings"
	"testing"
)

func TestParseCueConfig(t *testing.T) {
	tests := []struct {
		name        string
		yamlContent string
		wantErr     bool
		errContains string
	}{
		{
			name: "valid config",
			yamlContent: `
sampleRate: 48000
masterVolume: 0.5
cues:
  click:
    volume: 0.4
    notes:
      - { freq: 1200, wave: square, durationMs: 30, attackMs: 2, releaseMs: 20 }
`,
		},
		{
			name:        "missing sample rate",
			yamlContent: "masterVolume: 0.5\ncues:\n  click:\n    notes:\n      - { freq: 1, wave: sine, durationMs: 10 }\n",
			wantErr:     true,
			errContains: "sampleRate must be positive",
		},
		{
			name:        "master volume out of range",
			yamlContent: "sampleRate: 48000\nmasterVolume: 2\ncues:\n  click:\n    notes:\n      - { freq: 1, wave: sine, durationMs: 10 }\n",
			wantErr:     true,
			errContains: "masterVolume",
		},
		{
			name:        "unknown wave",
			yamlContent: "sampleRate: 48000\nmasterVolume: 1\ncues:\n  click:\n    notes:\n      - { freq: 1, wave: triangle, durationMs: 10 }\n",
			wantErr:     true,
			errContains: "unknown wave",
		},
		{
			name:        "cue without notes",
			yamlContent: "sampleRate: 48000\nmasterVolume: 1\ncues:\n  click:\n    volume: 1\n",
			wantErr:     true,
			errContains: "at least one note",
		},
		{
			name:        "zero duration",
			yamlContent: "sampleRate: 48000\nmasterVolume: 1\ncues:\n  click:\n    notes:\n      - { freq: 1, wave: sine, durationMs: 0 }\n",
			wantErr:     true,
			errContains: "durationMs must be positive",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseCueConfig([]byte(tt.yamlContent))
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseCueConfig() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr && !strings.Contains(err.Error(), tt.errContains) {
				t.Errorf("expected error containing %q, got %q", tt.errContains, err.Error())
			}
		})
	}
}

func TestShippedCueConfig(t *testing.T) {
	data, err := os.ReadFile("../../data/cues.yaml")
	if err != nil {
		t.Fatalf("failed to read shipped config: %v", err)
	}

	cfg, err := ParseCueConfig(data)
	if err != nil {
		t.Fatalf("shipped cue config invalid: %v", err)
	}

	for _, id := range []string{"click", "correct-catch", "wrong-catch", "correct-answer", "wrong-answer"} {
		if _, ok := cfg.Cues[id]; !ok {
			t.Errorf("shipped cue config is missing %q", id)
		}
	}
}
