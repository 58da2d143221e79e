package render

import (
	"image/color"
	"math"

	"github.com/decker502/carousel/pkg/carousel"
	"github.com/decker502/carousel/pkg/config"
)

// 点光源跟随指针的范围
const (
	pointerLightRangeX = 3.0
	pointerLightRangeY = 2.0
)

type rgb struct{ r, g, b float64 }

func lightColor(s string, intensity float64) rgb {
	c := config.MustColor(s)
	return rgb{
		r: float64(c.R) / 255 * intensity,
		g: float64(c.G) / 255 * intensity,
		b: float64(c.B) / 255 * intensity,
	}
}

// Lighting 环境光 + 平行光 + 跟随指针的点光源
//
// 逐顶点 Lambert 着色，结果作为顶点颜色与纹理相乘。
// 幻灯片双面可见，背向相机的法线会被翻转。
type Lighting struct {
	ambient rgb

	directional    rgb
	directionalDir carousel.Vec3

	point         rgb
	pointPos      carousel.Vec3
	pointDistance float64
}

// NewLighting 根据配置创建灯光
func NewLighting(cfg config.LightingConfig) *Lighting {
	d := cfg.DirectionalPosition
	return &Lighting{
		ambient:        lightColor(cfg.Ambient, cfg.AmbientIntensity),
		directional:    lightColor(cfg.Directional, cfg.DirectionalIntensity),
		directionalDir: carousel.Vec3{X: d[0], Y: d[1], Z: d[2]}.Normalize(),
		point:          lightColor(cfg.Point, cfg.PointIntensity),
		pointPos:       carousel.Vec3{Z: cfg.PointZ},
		pointDistance:  cfg.PointDistance,
	}
}

// SetPointer 把点光源移动到指针位置（归一化坐标，y 向上）
func (l *Lighting) SetPointer(nx, ny float64) {
	l.pointPos.X = nx * pointerLightRangeX
	l.pointPos.Y = ny * pointerLightRangeY
}

// PointPosition 返回点光源当前位置
func (l *Lighting) PointPosition() carousel.Vec3 {
	return l.pointPos
}

// Shade 计算世界坐标 pos、法线 normal 处的光照，各分量限制在 [0, 1]
func (l *Lighting) Shade(pos, normal carousel.Vec3) (r, g, b float32) {
	if normal.Z < 0 {
		normal = normal.Scale(-1)
	}

	acc := l.ambient

	if nd := normal.Dot(l.directionalDir); nd > 0 {
		acc.r += l.directional.r * nd
		acc.g += l.directional.g * nd
		acc.b += l.directional.b * nd
	}

	toLight := l.pointPos.Sub(pos)
	dist := toLight.Len()
	if dist > 0 {
		atten := 1.0
		if l.pointDistance > 0 {
			atten = math.Max(0, 1-dist/l.pointDistance)
			atten *= atten
		}
		if nd := normal.Dot(toLight.Scale(1 / dist)); nd > 0 && atten > 0 {
			acc.r += l.point.r * nd * atten
			acc.g += l.point.g * nd * atten
			acc.b += l.point.b * nd * atten
		}
	}

	return unit(acc.r), unit(acc.g), unit(acc.b)
}

func unit(v float64) float32 {
	return float32(carousel.Clamp(v, 0, 1))
}

// tint 把光照结果乘以底色
func tint(r, g, b float32, c color.NRGBA) (float32, float32, float32) {
	return r * float32(c.R) / 255, g * float32(c.G) / 255, b * float32(c.B) / 255
}
