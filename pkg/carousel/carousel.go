// Package carousel 实现画廊轮播的运动模型
//
// 本包只包含数值逻辑：输入统一（拖拽/滚轮/触摸）、每帧积分器（Tick）
// 和逐顶点扭曲。它不依赖 ebiten，渲染层（pkg/render）每帧读取
// Slides() 和 State() 的结果并绘制。
//
// 所有输入方法只写入目标值（TargetPosition、TargetDistortion）和手势会话字段，
// 从不直接修改 CurrentPosition；CurrentPosition 只由 Tick 写入。
package carousel

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"time"

	"github.com/decker502/carousel/pkg/config"
)

// ErrEmptyRing 环上没有幻灯片
var ErrEmptyRing = errors.New("carousel: ring has no slides")

// VelocityHistorySize 速度历史采样数
const VelocityHistorySize = 5

// velocityWeights 加权平均权重，越新的采样权重越大
var velocityWeights = [VelocityHistorySize]float64{0.1, 0.15, 0.2, 0.25, 0.3}

// MotionState 共享运动状态
type MotionState struct {
	CurrentPosition float64
	TargetPosition  float64
	AutoScrollSpeed float64 // 惯性速度（每帧位移）

	CurrentDistortion float64
	TargetDistortion  float64

	VelocityHistory [VelocityHistorySize]float64
	AvgVelocity     float64
	PeakVelocity    float64
	Decelerating    bool

	MovementDirection Vec2
	GlobalTime        float64

	// ScrollingUntil 惯性窗口截止时间；在此之前每帧施加 AutoScrollSpeed
	ScrollingUntil time.Duration
}

// PointerSource 手势来源
type PointerSource int

const (
	SourceMouse PointerSource = iota
	SourceTouch
)

func (s PointerSource) String() string {
	if s == SourceTouch {
		return "touch"
	}
	return "mouse"
}

// PointerSession 单次手势的临时状态
//
// 手势开始时重置，结束时消费并清空。
type PointerSession struct {
	Active      bool
	Source      PointerSource
	StartX      float64
	LastX       float64 // 最近一次刷新时的位置
	PendingX    float64 // 最近一次移动事件的位置（可能尚未刷新）
	Accumulated float64 // 尚未刷新的位移
	LastFlush   time.Duration
}

// Carousel 轮播运动模型
type Carousel struct {
	settings *config.CarouselSettings
	geometry config.SlideGeometry

	slides  []*Slide
	state   MotionState
	session PointerSession

	unit       float64
	totalWidth float64
	cullX      float64 // |CurrentX| 超过此值的幻灯片跳过扭曲计算
}

// New 创建轮播模型
//
// settings 以指针共享：调试面板对它的修改在下一帧生效。
// rng 决定每张幻灯片的随机相位；传 nil 使用基于时间的种子。
func New(settings *config.CarouselSettings, geometry config.SlideGeometry, rng *rand.Rand) (*Carousel, error) {
	if geometry.Count <= 0 {
		return nil, ErrEmptyRing
	}
	if settings == nil {
		return nil, fmt.Errorf("carousel: nil settings")
	}
	if rng == nil {
		rng = rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0x9e3779b97f4a7c15))
	}

	c := &Carousel{
		settings:   settings,
		geometry:   geometry,
		unit:       geometry.Unit(),
		totalWidth: geometry.TotalWidth(),
	}
	c.cullX = c.totalWidth/2 + geometry.Width*1.5

	c.slides = make([]*Slide, geometry.Count)
	for i := range c.slides {
		c.slides[i] = newSlide(i, geometry, rng)
		x := Wrap(float64(i)*c.unit, c.totalWidth)
		c.slides[i].TargetX = x
		c.slides[i].CurrentX = x
		c.slides[i].Position.X = x
	}
	return c, nil
}

// Slides 返回所有幻灯片（按序号排列）
func (c *Carousel) Slides() []*Slide {
	return c.slides
}

// State 返回运动状态的副本
func (c *Carousel) State() MotionState {
	return c.state
}

// Session 返回当前手势会话的副本
func (c *Carousel) Session() PointerSession {
	return c.session
}

// Settings 返回共享的参数
func (c *Carousel) Settings() *config.CarouselSettings {
	return c.settings
}

// Geometry 返回幻灯片几何
func (c *Carousel) Geometry() config.SlideGeometry {
	return c.geometry
}

// TotalWidth 返回环的周长
func (c *Carousel) TotalWidth() float64 {
	return c.totalWidth
}

// SetVisibleHalfWidth 设置视口在 z=0 平面上的半宽
//
// 中心距离超过 halfWidth + 1.5*SlideWidth 的幻灯片不做逐顶点扭曲。
// halfWidth <= 0 时恢复为整环范围。
func (c *Carousel) SetVisibleHalfWidth(halfWidth float64) {
	if halfWidth <= 0 || math.IsNaN(halfWidth) {
		c.cullX = c.totalWidth/2 + c.geometry.Width*1.5
		return
	}
	c.cullX = halfWidth + c.geometry.Width*1.5
}

// IsScrolling 惯性窗口在 now 时是否仍然打开
func (c *Carousel) IsScrolling(now time.Duration) bool {
	return now < c.state.ScrollingUntil
}
