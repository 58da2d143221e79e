package render

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/decker502/carousel/pkg/carousel"
	"github.com/decker502/carousel/pkg/config"
)

const (
	titleFontSize  = 28
	numberFontSize = 14
	numberGap      = 8 // 标题与序号之间的像素间距

	blurTaps    = 8   // 模糊的环形采样数
	minBlurDraw = 0.5 // 模糊半径小于该值时只画一次
	minOpacity  = 0.01
)

// FadeOpacity 按中心距离计算标题不透明度
//
// dist < start 时为 1，dist > end 时为 0，之间线性过渡。
func FadeOpacity(dist, start, end float64) float64 {
	switch {
	case dist < start:
		return 1
	case dist > end:
		return 0
	case end <= start:
		return 0
	}
	return 1 - (dist-start)/(end-start)
}

// SlideNumber 返回幻灯片的两位序号（从 01 开始）
func SlideNumber(index int) string {
	return fmt.Sprintf("%02d", index+1)
}

// TitleRenderer 在幻灯片投影中心上叠加标题和序号
type TitleRenderer struct {
	camera   *Camera
	settings *config.CarouselSettings
	gallery  *config.GalleryConfig

	titleFace  *text.GoTextFace
	numberFace *text.GoTextFace

	titleColor  color.NRGBA
	numberColor color.NRGBA
}

// NewTitleRenderer 创建标题渲染器
//
// settings 与轮播模型共享，调试面板修改淡出区间后下一帧生效。
func NewTitleRenderer(camera *Camera, gallery *config.GalleryConfig, settings *config.CarouselSettings, source *text.GoTextFaceSource) *TitleRenderer {
	return &TitleRenderer{
		camera:      camera,
		settings:    settings,
		gallery:     gallery,
		titleFace:   &text.GoTextFace{Source: source, Size: titleFontSize},
		numberFace:  &text.GoTextFace{Source: source, Size: numberFontSize},
		titleColor:  config.MustColor(gallery.Colors.Title),
		numberColor: config.MustColor(gallery.Colors.Number),
	}
}

// Draw 绘制所有标题
//
// 不透明度由中心距离决定，模糊半径 (1-opacity)*TextMaxBlur 用多次偏移绘制近似。
func (r *TitleRenderer) Draw(screen *ebiten.Image, slides []*carousel.Slide) {
	s := r.settings
	for _, sl := range slides {
		opacity := FadeOpacity(sl.DistanceFromCenter(), s.TextFadeStart, s.TextFadeEnd)
		if opacity < minOpacity {
			continue
		}
		sx, sy, _, ok := r.camera.Project(sl.Position)
		if !ok {
			continue
		}

		entry := r.gallery.ImageFor(sl.Index)
		y := sy + entry.OffsetY
		blur := (1 - opacity) * s.TextMaxBlur

		r.drawBlurred(screen, entry.Title, r.titleFace, r.titleColor, sx, y, opacity, blur)
		_, th := text.Measure(entry.Title, r.titleFace, 0)
		r.drawBlurred(screen, SlideNumber(sl.Index), r.numberFace, r.numberColor, sx, y+th+numberGap, opacity, blur)
	}
}

func (r *TitleRenderer) drawBlurred(screen *ebiten.Image, str string, face *text.GoTextFace, clr color.NRGBA, x, y, opacity, blur float64) {
	if blur < minBlurDraw {
		drawCentered(screen, str, face, clr, x, y, opacity)
		return
	}
	alpha := opacity / (blurTaps + 1)
	drawCentered(screen, str, face, clr, x, y, alpha)
	for i := 0; i < blurTaps; i++ {
		a := float64(i) * 2 * math.Pi / blurTaps
		drawCentered(screen, str, face, clr, x+math.Cos(a)*blur, y+math.Sin(a)*blur, alpha*1.5)
	}
}

func drawCentered(screen *ebiten.Image, str string, face *text.GoTextFace, clr color.NRGBA, x, y, alpha float64) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.PrimaryAlign = text.AlignCenter
	op.ColorScale.ScaleWithColor(clr)
	op.ColorScale.ScaleAlpha(float32(alpha))
	text.Draw(screen, str, face, op)
}
