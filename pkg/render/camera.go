// Package render 把 carousel 的运动状态绘制到 ebiten 屏幕上
//
// 渲染层只读取 carousel.Slides() / State()，从不写回运动状态。
package render

import (
	"math"

	"github.com/decker502/carousel/pkg/carousel"
	"github.com/decker502/carousel/pkg/config"
)

// Camera 透视相机
//
// 相机位于 (0, 0, Z)，朝 -Z 方向观察原点。
// FOV 随宽高比变化：横屏固定为配置值，竖屏按 1/aspect 放大，
// 保证窄屏上也能看到中心幻灯片的完整宽度。
type Camera struct {
	cfg config.CameraConfig

	Width, Height int
	Aspect        float64
	FOV           float64 // 当前垂直视角（度）

	focal float64 // 1 / tan(fov/2)
}

// NewCamera 创建相机，初始尺寸为窗口默认尺寸
func NewCamera(cfg config.CameraConfig) *Camera {
	c := &Camera{cfg: cfg}
	c.Resize(config.GameWindowWidth, config.GameWindowHeight)
	return c
}

// FOVFor 按宽高比计算垂直视角（度）
func FOVFor(base, portraitScale, aspect float64) float64 {
	if aspect >= 1 {
		return base
	}
	return base * (1 / aspect) * portraitScale
}

// Resize 同步更新宽高比和视角，返回尺寸是否变化
func (c *Camera) Resize(width, height int) bool {
	if width <= 0 || height <= 0 {
		return false
	}
	if width == c.Width && height == c.Height {
		return false
	}
	c.Width, c.Height = width, height
	c.Aspect = float64(width) / float64(height)
	// 极窄的竖屏会把视角推到 180° 以上
	c.FOV = math.Min(FOVFor(c.cfg.FOV, c.cfg.PortraitFOVScale, c.Aspect), 170)
	c.focal = 1 / math.Tan(c.FOV*math.Pi/360)
	return true
}

// Project 把世界坐标投影到屏幕像素
//
// depth 为到相机平面的距离；点位于近裁剪面之后或远裁剪面之外时 ok 为 false。
func (c *Camera) Project(p carousel.Vec3) (sx, sy, depth float64, ok bool) {
	depth = c.cfg.Z - p.Z
	if depth < c.cfg.Near || depth > c.cfg.Far {
		return 0, 0, depth, false
	}
	ndcX := p.X * c.focal / (c.Aspect * depth)
	ndcY := p.Y * c.focal / depth
	sx = (ndcX*0.5 + 0.5) * float64(c.Width)
	sy = (-ndcY*0.5 + 0.5) * float64(c.Height)
	return sx, sy, depth, true
}

// VisibleHalfWidth 返回 z=0 平面上视口的半宽（世界单位）
func (c *Camera) VisibleHalfWidth() float64 {
	return c.cfg.Z * c.Aspect / c.focal
}

// PointerToNDC 把屏幕像素坐标换算为 [-1, 1] 的归一化坐标（y 向上）
func (c *Camera) PointerToNDC(x, y int) (nx, ny float64) {
	if c.Width == 0 || c.Height == 0 {
		return 0, 0
	}
	nx = float64(x)/float64(c.Width)*2 - 1
	ny = -(float64(y)/float64(c.Height)*2 - 1)
	return nx, ny
}
