package render

import (
	"image/color"
	"math/rand/v2"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/decker502/carousel/pkg/config"
)

// Particle 背景中的一个静态光点
type Particle struct {
	X, Y    float64 // 屏幕比例坐标 [0, 1)
	Size    float64 // 直径（像素）
	Opacity float64
}

// Backdrop 幻灯片后面的漂浮光点背景
type Backdrop struct {
	background color.NRGBA
	particle   color.NRGBA
	particles  []Particle
}

// NewBackdrop 按配置随机生成光点
func NewBackdrop(cfg *config.GalleryConfig, rng *rand.Rand) *Backdrop {
	pc := cfg.Particles
	b := &Backdrop{
		background: config.MustColor(cfg.Colors.Background),
		particle:   config.MustColor(cfg.Colors.Particle),
		particles:  make([]Particle, pc.Count),
	}
	for i := range b.particles {
		b.particles[i] = Particle{
			X:       rng.Float64(),
			Y:       rng.Float64(),
			Size:    pc.MinSize + rng.Float64()*(pc.MaxSize-pc.MinSize),
			Opacity: 0.1 + rng.Float64()*0.5,
		}
	}
	return b
}

// Particles 返回所有光点
func (b *Backdrop) Particles() []Particle {
	return b.particles
}

// Draw 填充背景色并绘制光点
func (b *Backdrop) Draw(screen *ebiten.Image) {
	screen.Fill(b.background)

	bounds := screen.Bounds()
	w, h := float64(bounds.Dx()), float64(bounds.Dy())
	for _, p := range b.particles {
		clr := b.particle
		clr.A = uint8(float64(clr.A) * p.Opacity)
		vector.DrawFilledCircle(screen, float32(p.X*w), float32(p.Y*h), float32(p.Size/2), clr, true)
	}
}
