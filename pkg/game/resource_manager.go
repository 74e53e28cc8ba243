package game

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	_ "image/png" // Register PNG decoder
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// spriteTextureSize 程序化精灵的纹理尺寸，绘制时缩放到目标大小
const spriteTextureSize = 64

// ReadFunc 读取资源文件（生产环境为 embedded.ReadFile）
type ReadFunc func(path string) ([]byte, error)

// ResourceManager is responsible for centralized management of sprites and fonts.
// Resources are loaded once and reused by every scene.
//
// This implementation is NOT thread-safe; all loading happens on the
// ebiten update goroutine.
type ResourceManager struct {
	read    ReadFunc
	config  *ResourceConfig
	sprites map[string]*ebiten.Image

	regular   *text.GoTextFaceSource
	bold      *text.GoTextFaceSource
	faceCache map[string]text.Face
}

// NewResourceManager 创建资源管理器
func NewResourceManager(read ReadFunc) *ResourceManager {
	return &ResourceManager{
		read:      read,
		sprites:   make(map[string]*ebiten.Image),
		faceCache: make(map[string]text.Face),
	}
}

// LoadResourceConfig 读取并解析精灵配置
func (rm *ResourceManager) LoadResourceConfig(configPath string) error {
	data, err := rm.read(configPath)
	if err != nil {
		return fmt.Errorf("failed to read resource config %s: %w", configPath, err)
	}
	cfg, err := ParseResourceConfig(data)
	if err != nil {
		return fmt.Errorf("%s: %w", configPath, err)
	}
	rm.config = cfg
	return nil
}

// LoadSprites 加载配置中的所有精灵
// PNG 缺失或损坏时退化为程序化绘制，不会返回错误
func (rm *ResourceManager) LoadSprites() {
	if rm.config == nil {
		return
	}
	for _, res := range rm.config.Sprites {
		rm.sprites[res.ID] = rm.loadSprite(res)
	}
	log.Printf("[ResourceManager] Loaded %d sprites", len(rm.sprites))
}

func (rm *ResourceManager) loadSprite(res SpriteResource) *ebiten.Image {
	if res.Path != "" {
		data, err := rm.read(res.Path)
		if err == nil {
			img, _, decodeErr := image.Decode(bytes.NewReader(data))
			if decodeErr == nil {
				return ebiten.NewImageFromImage(img)
			}
			log.Printf("[ResourceManager] Warning: failed to decode %s: %v, drawing %s", res.Path, decodeErr, res.Shape)
		}
	}
	clr, _ := ParseHexColor(res.Color)
	return DrawProceduralSprite(res.Shape, clr)
}

// Sprite 按ID获取精灵，未知ID返回 nil
func (rm *ResourceManager) Sprite(id string) *ebiten.Image {
	return rm.sprites[id]
}

// SpriteCount 已加载的精灵数量
func (rm *ResourceManager) SpriteCount() int {
	return len(rm.sprites)
}

// DrawProceduralSprite 按形状绘制精灵纹理
func DrawProceduralSprite(shape string, clr color.RGBA) *ebiten.Image {
	const s = spriteTextureSize
	img := ebiten.NewImage(s, s)

	switch shape {
	case ShapeCircle:
		vector.DrawFilledCircle(img, s/2, s/2, s/2-2, clr, true)
		// 高光
		vector.DrawFilledCircle(img, s/3, s/3, s/10, color.RGBA{R: 255, G: 255, B: 255, A: 110}, true)
	case ShapeTriangle:
		// 倒三角（胡萝卜），逐行绘制
		for row := 0; row < s; row++ {
			w := float32(s-row) * 0.8
			vector.DrawFilledRect(img, (s-w)/2, float32(row), w, 1, clr, false)
		}
		vector.DrawFilledRect(img, s/2-3, 0, 6, 8, color.RGBA{R: 42, G: 157, B: 60, A: 255}, false)
	case ShapeStack:
		// 汉堡：面包、肉饼、面包
		dark := color.RGBA{R: clr.R / 2, G: clr.G / 3, B: clr.B / 3, A: clr.A}
		vector.DrawFilledRect(img, 4, 6, s-8, 18, clr, false)
		vector.DrawFilledRect(img, 2, 26, s-4, 12, dark, false)
		vector.DrawFilledRect(img, 4, 40, s-8, 16, clr, false)
	default:
		vector.DrawFilledRect(img, 0, 0, s, s, clr, false)
		vector.StrokeRect(img, 1, 1, s-2, s-2, 2, color.RGBA{A: 90}, false)
	}
	return img
}

// Font 返回指定字号的常规字体
// 字体数据来自 Go 字体（golang.org/x/image/font/gofont），加载失败时退回 basicfont
func (rm *ResourceManager) Font(size float64) text.Face {
	return rm.face("regular", size)
}

// BoldFont 返回指定字号的粗体字体
func (rm *ResourceManager) BoldFont(size float64) text.Face {
	return rm.face("bold", size)
}

func (rm *ResourceManager) face(style string, size float64) text.Face {
	cacheKey := fmt.Sprintf("%s:%.1f", style, size)
	if cached, ok := rm.faceCache[cacheKey]; ok {
		return cached
	}

	var face text.Face
	source, err := rm.faceSource(style)
	if err != nil {
		log.Printf("[ResourceManager] Warning: %v, using basicfont", err)
		face = text.NewGoXFace(basicfont.Face7x13)
	} else {
		face = &text.GoTextFace{
			Source:    source,
			Size:      size,
			Direction: text.DirectionLeftToRight,
		}
	}

	rm.faceCache[cacheKey] = face
	return face
}

func (rm *ResourceManager) faceSource(style string) (*text.GoTextFaceSource, error) {
	var err error
	switch style {
	case "bold":
		if rm.bold == nil {
			rm.bold, err = text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
		}
		if err != nil {
			return nil, fmt.Errorf("failed to create bold font source: %w", err)
		}
		return rm.bold, nil
	default:
		if rm.regular == nil {
			rm.regular, err = text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
		}
		if err != nil {
			return nil, fmt.Errorf("failed to create regular font source: %w", err)
		}
		return rm.regular, nil
	}
}
