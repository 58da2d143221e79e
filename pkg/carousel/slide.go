package carousel

import (
	"math"
	"math/rand/v2"

	"github.com/decker502/carousel/pkg/config"
)

// Slide 环上的一张幻灯片
type Slide struct {
	Index int

	TargetX  float64 // 相对环中心的折叠位置
	CurrentX float64 // 以 SlideLerp 追赶 TargetX 的渲染位置

	Position Vec3
	Rotation Vec3 // pitch / yaw / roll（弧度）
	Scale    float64
	Visible  bool // 本帧是否做了扭曲计算

	Mesh *Mesh

	// 每张幻灯片的动画相位，用于让相同几何的扭曲彼此错开
	Time          float64
	WaveSpeed     float64
	WaveAmplitude float64
	WavePhase     float64
	RotFactor     float64
}

func newSlide(index int, g config.SlideGeometry, rng *rand.Rand) *Slide {
	return &Slide{
		Index: index,
		Scale: 1,
		Rotation: Vec3{
			X: (rng.Float64() - 0.5) * 0.1,
			Y: (rng.Float64() - 0.5) * 0.1,
		},
		Mesh:          NewPlaneMesh(g.Width, g.Height, g.SegmentsX, g.SegmentsY),
		Time:          rng.Float64() * 1000,
		WaveSpeed:     0.5 + rng.Float64()*0.5,
		WaveAmplitude: 1,
		WavePhase:     rng.Float64() * math.Pi * 2,
	}
}

// DistanceFromCenter 返回幻灯片到环中心的水平距离
func (s *Slide) DistanceFromCenter() float64 {
	return math.Abs(s.Position.X)
}
