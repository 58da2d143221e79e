package config

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"strings"

	css "github.com/mazznoer/csscolorparser"
	"gopkg.in/yaml.v3"

	"github.com/decker502/carousel/pkg/embedded"
)

// DefaultGalleryConfigPath 内嵌画廊配置文件路径
const DefaultGalleryConfigPath = "data/gallery.yaml"

// ErrNoSlides 配置中没有任何幻灯片图片
var ErrNoSlides = errors.New("gallery has no images")

// GalleryConfig 画廊配置
//
// 描述幻灯片几何、相机、灯光、颜色、图片列表以及运动模型参数。
//
// 配置文件位置: data/gallery.yaml
type GalleryConfig struct {
	Geometry  SlideGeometry     `yaml:"geometry"`
	Camera    CameraConfig      `yaml:"camera"`
	Lighting  LightingConfig    `yaml:"lighting"`
	Colors    ColorConfig       `yaml:"colors"`
	Particles ParticleConfig    `yaml:"particles"`
	Images    []ImageEntry      `yaml:"images"`
	Settings  *CarouselSettings `yaml:"settings"`
}

// SlideGeometry 幻灯片几何参数（世界单位）
type SlideGeometry struct {
	Width     float64 `yaml:"width"`
	Height    float64 `yaml:"height"`
	Gap       float64 `yaml:"gap"`
	Count     int     `yaml:"count"`     // 环上幻灯片数量（图片循环使用）
	SegmentsX int     `yaml:"segmentsX"` // 网格水平细分
	SegmentsY int     `yaml:"segmentsY"` // 网格垂直细分
}

// Unit 返回相邻幻灯片的间距（宽度 + 间隙）
func (g SlideGeometry) Unit() float64 {
	return g.Width + g.Gap
}

// TotalWidth 返回环的周长
func (g SlideGeometry) TotalWidth() float64 {
	return float64(g.Count) * g.Unit()
}

// CameraConfig 透视相机参数
type CameraConfig struct {
	FOV              float64 `yaml:"fov"`              // 横屏时的垂直视角（度）
	PortraitFOVScale float64 `yaml:"portraitFovScale"` // 竖屏时 fov = FOV / aspect * PortraitFOVScale
	Z                float64 `yaml:"z"`
	Near             float64 `yaml:"near"`
	Far              float64 `yaml:"far"`
}

// LightingConfig 灯光参数
//
// 颜色使用 CSS 颜色字符串（如 "#404040"、"white"）。
type LightingConfig struct {
	Ambient              string     `yaml:"ambient"`
	AmbientIntensity     float64    `yaml:"ambientIntensity"`
	Directional          string     `yaml:"directional"`
	DirectionalIntensity float64    `yaml:"directionalIntensity"`
	DirectionalPosition  [3]float64 `yaml:"directionalPosition"`
	Point                string     `yaml:"point"`
	PointIntensity       float64    `yaml:"pointIntensity"`
	PointDistance        float64    `yaml:"pointDistance"` // 点光源衰减距离，0 表示不衰减
	PointZ               float64    `yaml:"pointZ"`
}

// ColorConfig 界面颜色
type ColorConfig struct {
	Background string `yaml:"background"`
	Title      string `yaml:"title"`
	Number     string `yaml:"number"`
	Particle   string `yaml:"particle"`
	Untextured string `yaml:"untextured"` // 纹理加载失败时幻灯片的底色
}

// ParticleConfig 背景漂浮粒子
type ParticleConfig struct {
	Count   int     `yaml:"count"`
	MinSize float64 `yaml:"minSize"`
	MaxSize float64 `yaml:"maxSize"`
}

// ImageEntry 一张幻灯片图片及其标题
type ImageEntry struct {
	Path    string  `yaml:"path"`
	Title   string  `yaml:"title"`
	OffsetY float64 `yaml:"offsetY"` // 标题相对投影中心的垂直偏移（像素）
}

// DefaultGalleryConfig 返回默认画廊配置（不含图片）
func DefaultGalleryConfig() *GalleryConfig {
	return &GalleryConfig{
		Geometry: SlideGeometry{
			Width:     1.4,
			Height:    5,
			Gap:       1,
			Count:     10,
			SegmentsX: 64,
			SegmentsY: 32,
		},
		Camera: CameraConfig{
			FOV:              50,
			PortraitFOVScale: 0.8,
			Z:                3.5,
			Near:             0.1,
			Far:              100,
		},
		Lighting: LightingConfig{
			Ambient:              "#404040",
			AmbientIntensity:     1,
			Directional:          "#ffffff",
			DirectionalIntensity: 0.5,
			DirectionalPosition:  [3]float64{0, 1, 1},
			Point:                "#ffffff",
			PointIntensity:       2,
			PointDistance:        10,
			PointZ:               2,
		},
		Colors: ColorConfig{
			Background: "#0d0d0d",
			Title:      "#f5f5f5",
			Number:     "rgba(245, 245, 245, 0.6)",
			Particle:   "#ffffff",
			Untextured: "#d9d9d9",
		},
		Particles: ParticleConfig{
			Count:   80,
			MinSize: 2,
			MaxSize: 7,
		},
		Settings: DefaultCarouselSettings(),
	}
}

// LoadGalleryConfig 加载画廊配置
//
// 以 "data/" 开头的路径从内嵌资源读取，其余路径从磁盘读取
// （用于命令行 --config 覆盖）。
//
// 参数:
//   - path: 配置文件路径（如 "data/gallery.yaml"）
//
// 返回:
//   - *GalleryConfig: 加载成功后的配置结构
//   - error: 读取、解析或验证失败时返回错误
func LoadGalleryConfig(path string) (*GalleryConfig, error) {
	var (
		data []byte
		err  error
	)
	if strings.HasPrefix(path, "data/") && embedded.IsInitialized() {
		data, err = embedded.ReadFile(path)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read gallery config %s: %w", path, err)
	}

	cfg, err := ParseGalleryConfig(data)
	if err != nil {
		return nil, fmt.Errorf("invalid gallery config %s: %w", path, err)
	}
	return cfg, nil
}

// ParseGalleryConfig 解析 YAML 画廊配置
//
// 未出现在 YAML 中的字段保留 DefaultGalleryConfig 的值。
func ParseGalleryConfig(data []byte) (*GalleryConfig, error) {
	cfg := DefaultGalleryConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse gallery config: %w", err)
	}
	if cfg.Settings == nil {
		cfg.Settings = DefaultCarouselSettings()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate 验证配置有效性
func (c *GalleryConfig) Validate() error {
	g := c.Geometry
	if g.Width <= 0 || g.Height <= 0 {
		return fmt.Errorf("slide size must be positive, got %.2fx%.2f", g.Width, g.Height)
	}
	if g.Gap < 0 {
		return fmt.Errorf("gap must be >= 0, got %.2f", g.Gap)
	}
	if g.Count <= 0 {
		return fmt.Errorf("slide count must be > 0, got %d", g.Count)
	}
	if g.SegmentsX <= 0 || g.SegmentsY <= 0 {
		return fmt.Errorf("mesh segments must be positive, got %dx%d", g.SegmentsX, g.SegmentsY)
	}
	// ebiten 的 DrawTriangles 索引为 uint16
	if (g.SegmentsX+1)*(g.SegmentsY+1) > 1<<16 {
		return fmt.Errorf("mesh %dx%d has too many vertices", g.SegmentsX, g.SegmentsY)
	}

	if c.Camera.FOV <= 0 || c.Camera.FOV >= 180 {
		return fmt.Errorf("camera fov must be in (0, 180), got %.1f", c.Camera.FOV)
	}
	if c.Camera.Near <= 0 || c.Camera.Far <= c.Camera.Near {
		return fmt.Errorf("camera clip range invalid: near=%.2f far=%.2f", c.Camera.Near, c.Camera.Far)
	}

	if len(c.Images) == 0 {
		return ErrNoSlides
	}
	for i, img := range c.Images {
		if img.Path == "" {
			return fmt.Errorf("image %d has empty path", i)
		}
	}

	if c.Particles.Count < 0 || c.Particles.MinSize > c.Particles.MaxSize {
		return fmt.Errorf("particles invalid: count=%d size=[%.1f, %.1f]",
			c.Particles.Count, c.Particles.MinSize, c.Particles.MaxSize)
	}

	for name, s := range map[string]string{
		"lighting.ambient":     c.Lighting.Ambient,
		"lighting.directional": c.Lighting.Directional,
		"lighting.point":       c.Lighting.Point,
		"colors.background":    c.Colors.Background,
		"colors.title":         c.Colors.Title,
		"colors.number":        c.Colors.Number,
		"colors.particle":      c.Colors.Particle,
		"colors.untextured":    c.Colors.Untextured,
	} {
		if _, err := ParseColor(s); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}

	if err := c.Settings.Validate(); err != nil {
		return fmt.Errorf("settings: %w", err)
	}
	return nil
}

// ImageFor 返回第 index 张幻灯片使用的图片（图片列表循环使用）
func (c *GalleryConfig) ImageFor(index int) ImageEntry {
	return c.Images[index%len(c.Images)]
}

// ParseColor 解析 CSS 颜色字符串
func ParseColor(s string) (color.NRGBA, error) {
	c, err := css.Parse(s)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return color.NRGBA{
		R: uint8(255 * c.R),
		G: uint8(255 * c.G),
		B: uint8(255 * c.B),
		A: uint8(255 * c.A),
	}, nil
}

// MustColor 解析已经通过 Validate 的颜色字符串
func MustColor(s string) color.NRGBA {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}
