package main

import (
	"os"
	"strings"
	"testing"

	"github.com/decker502/nutrition/pkg/game"
	"github.com/decker502/nutrition/pkg/minigame"
)

func TestLayoutField(t *testing.T) {
	tests := []struct {
		name         string
		screenW      int
		screenH      int
		wantW, wantH int
	}{
		{"height limited", 200, 24, 40, 20},
		{"width limited", 42, 60, 40, 20},
		{"tiny terminal", 3, 4, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := layoutField(tt.screenW, tt.screenH, 400, 400)
			if v.W != tt.wantW || v.H != tt.wantH {
				t.Errorf("layoutField() = %dx%d, want %dx%d", v.W, v.H, tt.wantW, tt.wantH)
			}
			if v.Y != 2 {
				t.Errorf("Y = %d, want 2", v.Y)
			}
		})
	}
}

func TestFieldViewCellRect(t *testing.T) {
	v := fieldView{X: 10, Y: 2, W: 40, H: 20, fieldW: 400, fieldH: 400}

	x0, y0, x1, y1 := v.cellRect(0, 0, 400, 400)
	if x0 != 10 || y0 != 2 || x1 != 50 || y1 != 22 {
		t.Errorf("full field = (%d,%d)-(%d,%d), want (10,2)-(50,22)", x0, y0, x1, y1)
	}

	// 小于一个单元格的精灵至少占一格
	x0, y0, x1, y1 = v.cellRect(100, 100, 1, 1)
	if x1-x0 != 1 || y1-y0 != 1 {
		t.Errorf("tiny sprite = (%d,%d)-(%d,%d), want one cell", x0, y0, x1, y1)
	}

	if !v.contains(10, 2) || v.contains(50, 2) || v.contains(10, 22) {
		t.Error("contains() should cover exactly the inner cells")
	}
}

func TestSpriteStylesFromShippedConfig(t *testing.T) {
	data, err := os.ReadFile("../../" + game.ResourceConfigPath)
	if err != nil {
		t.Fatalf("read resources: %v", err)
	}
	cfg, err := game.ParseResourceConfig(data)
	if err != nil {
		t.Fatalf("ParseResourceConfig() failed: %v", err)
	}

	styles := spriteStyles(cfg)
	for _, id := range []string{minigame.BasketSprite, "carrot", "apple", "burger"} {
		if _, ok := styles[id]; !ok {
			t.Errorf("missing terminal style for sprite %q", id)
		}
	}
	if styles["apple"].Rune != '●' {
		t.Errorf("apple rune = %q, want ●", styles["apple"].Rune)
	}
}

func TestHUDText(t *testing.T) {
	got := hudText(minigame.Stats{Score: 4, TimeLeft: 12, Lives: 2})
	for _, want := range []string{"Score: 4", "Time: 12s", "Lives: 2"} {
		if !strings.Contains(got, want) {
			t.Errorf("hudText() = %q, missing %q", got, want)
		}
	}
}
