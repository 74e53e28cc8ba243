package game

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"testing"

	cueaudio "github.com/decker502/nutrition/internal/audio"
	"github.com/decker502/nutrition/pkg/config"
	"github.com/decker502/nutrition/pkg/types"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

// Ebitengine only allows one audio context to be created
var testAudioContext *audio.Context

// TestMain sets up the shared audio context before running tests
func TestMain(m *testing.M) {
	testAudioContext = audio.NewContext(48000)
	os.Exit(m.Run())
}

// mapReader 内存中的资源文件
func mapReader(files map[string][]byte) ReadFunc {
	return func(path string) ([]byte, error) {
		if data, ok := files[path]; ok {
			return data, nil
		}
		return nil, os.ErrNotExist
	}
}

func encodePNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{B: 255, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}

const testResourcesYAML = `
sprites:
  - id: apple
    path: data/sprites/apple.png
    shape: circle
    color: "#d62828"
  - id: burger
    path: data/sprites/burger.png
    shape: stack
    color: "#b5651d"
  - id: basket
    shape: rect
    color: "#8b5a2b80"
`

func TestResourceManager_LoadSprites(t *testing.T) {
	rm := NewResourceManager(mapReader(map[string][]byte{
		"data/resources.yaml":     []byte(testResourcesYAML),
		"data/sprites/apple.png":  encodePNG(t, 10, 12),
		"data/sprites/burger.png": []byte("not a png"),
	}))

	if err := rm.LoadResourceConfig("data/resources.yaml"); err != nil {
		t.Fatalf("LoadResourceConfig: %v", err)
	}
	rm.LoadSprites()

	if rm.SpriteCount() != 3 {
		t.Fatalf("SpriteCount = %d, want 3", rm.SpriteCount())
	}

	// PNG 存在时使用 PNG 尺寸
	if b := rm.Sprite("apple").Bounds(); b.Dx() != 10 || b.Dy() != 12 {
		t.Errorf("apple bounds = %v, want 10x12", b)
	}
	// 损坏或缺失时退化为程序化纹理
	for _, id := range []string{"burger", "basket"} {
		if b := rm.Sprite(id).Bounds(); b.Dx() != spriteTextureSize {
			t.Errorf("%s bounds = %v, want procedural %d", id, b, spriteTextureSize)
		}
	}
	if rm.Sprite("unknown") != nil {
		t.Error("unknown sprite should be nil")
	}
}

func TestResourceManager_MissingConfig(t *testing.T) {
	rm := NewResourceManager(mapReader(nil))
	err := rm.LoadResourceConfig("data/resources.yaml")
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("err = %v, want wrapped ErrNotExist", err)
	}
}

func TestResourceManager_FontsCached(t *testing.T) {
	rm := NewResourceManager(mapReader(nil))

	a := rm.Font(16)
	if a == nil {
		t.Fatal("Font returned nil")
	}
	if rm.Font(16) != a {
		t.Error("same size should return cached face")
	}
	if rm.Font(20) == a {
		t.Error("different size should return a different face")
	}
	if rm.BoldFont(16) == a {
		t.Error("bold face should differ from regular")
	}
}

func TestParseResourceConfig_Validation(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"empty id", "sprites:\n  - { shape: rect, color: '#000000' }\n"},
		{"duplicate id", "sprites:\n  - { id: a, shape: rect, color: '#000000' }\n  - { id: a, shape: rect, color: '#000000' }\n"},
		{"unknown shape", "sprites:\n  - { id: a, shape: hexagon, color: '#000000' }\n"},
		{"bad color", "sprites:\n  - { id: a, shape: rect, color: 'red' }\n"},
		{"bad yaml", "sprites: ["},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseResourceConfig([]byte(tt.yaml)); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		in      string
		want    color.RGBA
		wantErr bool
	}{
		{"#d62828", color.RGBA{R: 0xd6, G: 0x28, B: 0x28, A: 0xff}, false},
		{"8b5a2b80", color.RGBA{R: 0x8b, G: 0x5a, B: 0x2b, A: 0x80}, false},
		{"#fff", color.RGBA{}, true},
		{"#gggggg", color.RGBA{}, true},
	}
	for _, tt := range tests {
		got, err := ParseHexColor(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseHexColor(%q) err = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseHexColor(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func testBank(t *testing.T) *cueaudio.Bank {
	t.Helper()
	cfg, err := config.ParseCueConfig([]byte(`
sampleRate: 48000
masterVolume: 0.5
cues:
  click:
    volume: 1
    notes:
      - { freq: 1000, wave: square, durationMs: 20, attackMs: 1, releaseMs: 10 }
`))
	if err != nil {
		t.Fatalf("ParseCueConfig: %v", err)
	}
	return cueaudio.NewBank(cfg)
}

func TestAudioManager_PlaySound(t *testing.T) {
	am := NewAudioManager(testAudioContext, testBank(t))

	if !am.PlaySound(types.CueClick) {
		t.Error("configured cue should play")
	}
	if am.PlaySound(types.CueWrongCatch) {
		t.Error("unconfigured cue should not play")
	}

	am.SetMuted(true)
	if am.PlaySound(types.CueClick) {
		t.Error("muted manager should not play")
	}
	am.SetMuted(false)

	am.SetVolume(0)
	if am.PlaySound(types.CueClick) {
		t.Error("zero volume should not play")
	}
}

func TestAudioManager_VolumeClamp(t *testing.T) {
	am := NewAudioManager(nil, nil)
	tests := []struct {
		in, want float64
	}{
		{0.5, 0.5},
		{-1, 0},
		{2, 1},
	}
	for _, tt := range tests {
		am.SetVolume(tt.in)
		if am.Volume() != tt.want {
			t.Errorf("SetVolume(%v) -> %v, want %v", tt.in, am.Volume(), tt.want)
		}
	}
}

func TestAudioManager_NoContextIsSilent(t *testing.T) {
	am := NewAudioManager(nil, testBank(t))
	if am.PlaySound(types.CueClick) {
		t.Error("manager without audio context should be silent")
	}

	// 实现 CuePlayer
	var _ types.CuePlayer = am
	am.Play(types.CueClick)
}
