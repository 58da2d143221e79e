package render

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/carousel/pkg/carousel"
)

// Texture 幻灯片纹理及其 "cover" 适配参数
//
// 纹理坐标变换：u' = OffsetU + u*RepeatU，v' = OffsetV + v*RepeatV，
// 使图片按比例铺满幻灯片并裁掉多余部分。
type Texture struct {
	Image *ebiten.Image

	RepeatU, RepeatV float64
	OffsetU, OffsetV float64

	w, h float64
}

// CoverFit 计算图片铺满 slideW×slideH 平面时的 repeat/offset
//
// 图片比平面更宽时水平裁剪，否则垂直裁剪；裁剪始终居中。
func CoverFit(imgW, imgH int, slideW, slideH float64) (repeatU, repeatV, offsetU, offsetV float64) {
	if imgW <= 0 || imgH <= 0 || slideW <= 0 || slideH <= 0 {
		return 1, 1, 0, 0
	}
	imgAspect := float64(imgW) / float64(imgH)
	slideAspect := slideW / slideH
	if imgAspect > slideAspect {
		repeatU = slideAspect / imgAspect
		return repeatU, 1, (1 - repeatU) / 2, 0
	}
	repeatV = imgAspect / slideAspect
	return 1, repeatV, 0, (1 - repeatV) / 2
}

// NewTexture 为幻灯片尺寸 slideW×slideH 创建纹理
func NewTexture(img *ebiten.Image, slideW, slideH float64) *Texture {
	b := img.Bounds()
	t := &Texture{Image: img, w: float64(b.Dx()), h: float64(b.Dy())}
	t.RepeatU, t.RepeatV, t.OffsetU, t.OffsetV = CoverFit(b.Dx(), b.Dy(), slideW, slideH)
	return t
}

// Src 把网格 UV（v 向上）换算为源图片像素坐标（y 向下）
func (t *Texture) Src(uv carousel.Vec2) (sx, sy float32) {
	u := t.OffsetU + uv.X*t.RepeatU
	v := t.OffsetV + uv.Y*t.RepeatV
	return float32(u * t.w), float32((1 - v) * t.h)
}

var whiteSubImage *ebiten.Image

// whiteImage 返回 1×1 白色子图，取自 3×3 图片的中心以避免边缘采样
func whiteImage() *ebiten.Image {
	if whiteSubImage == nil {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		whiteSubImage = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return whiteSubImage
}
