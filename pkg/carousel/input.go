package carousel

import (
	"math"
	"time"
)

// 输入统一的经验常数
const (
	// FlushDistance 累积位移超过该像素数时刷新到目标位置
	FlushDistance = 1.0
	// FlushInterval 距离上次刷新超过该时间时刷新
	FlushInterval = 50 * time.Millisecond

	// DragStrength 每像素拖拽位移对目标扭曲的贡献
	DragStrength = 0.02
	// WheelStrength 每像素滚轮位移对目标扭曲的贡献
	WheelStrength = 0.001
	// InputDistortionCap 输入只能把目标扭曲抬到这个值
	InputDistortionCap = 1.0

	// ReleaseVelocityScale 释放时 (LastX-StartX) 到释放速度的换算
	ReleaseVelocityScale = 0.005
	// ReleaseThreshold 释放速度超过该值才产生惯性
	ReleaseThreshold = 0.5
	// MomentumScale 释放速度到惯性速度的换算（再乘 MomentumMultiplier）
	MomentumScale = 0.05
	// ReleaseDistortionScale 释放速度到目标扭曲的换算（再乘 DistortionSensitivity）
	ReleaseDistortionScale = 3.0

	// WheelMomentumScale 滚轮像素到惯性速度的换算
	WheelMomentumScale = 0.0005
	// WheelMomentumMax 滚轮惯性速度上限
	WheelMomentumMax = 0.05

	// WheelIdleWindow 最后一次水平滚轮后惯性窗口保持打开的时间
	WheelIdleWindow = 150 * time.Millisecond
	// MomentumWindow 拖拽/触摸释放后惯性窗口保持打开的时间
	MomentumWindow = 800 * time.Millisecond
)

// BeginDrag 鼠标按下，开始拖拽手势
//
// 正在进行的惯性不会被清除，新的拖拽只是覆盖目标位置的轨迹。
func (c *Carousel) BeginDrag(x float64, now time.Duration) {
	c.begin(SourceMouse, x, now)
}

// BeginTouch 触摸开始
//
// 与鼠标不同，触摸开始会关闭惯性窗口。
func (c *Carousel) BeginTouch(x float64, now time.Duration) {
	c.begin(SourceTouch, x, now)
	c.state.ScrollingUntil = 0
}

func (c *Carousel) begin(src PointerSource, x float64, now time.Duration) {
	c.session = PointerSession{
		Active:    true,
		Source:    src,
		StartX:    x,
		LastX:     x,
		PendingX:  x,
		LastFlush: now,
	}
}

// Move 拖拽/触摸移动到 x
//
// 位移先累积，累积超过 FlushDistance 或距离上次刷新超过 FlushInterval 时
// 刷新：目标位置反向移动，目标扭曲只升不降。
func (c *Carousel) Move(x float64, now time.Duration) {
	ss := &c.session
	if !ss.Active {
		return
	}
	ss.Accumulated += x - ss.PendingX
	ss.PendingX = x

	if math.Abs(ss.Accumulated) > FlushDistance || now-ss.LastFlush > FlushInterval {
		c.flush(now)
		if ss.Source == SourceTouch {
			c.openScrollWindow(now + MomentumWindow)
		}
	}
}

func (c *Carousel) flush(now time.Duration) {
	ss := &c.session
	ss.LastX = ss.PendingX
	c.raiseTargetDistortion(math.Abs(ss.Accumulated) * DragStrength)
	c.state.TargetPosition -= ss.Accumulated * c.settings.TouchSensitivity
	ss.Accumulated = 0
	ss.LastFlush = now
}

// Release 拖拽/触摸结束
//
// 未刷新的位移在这里一并刷新，保证一次手势对目标位置的影响只取决于总位移。
// 释放速度超过阈值时播种惯性速度和目标扭曲，并打开 MomentumWindow 窗口。
func (c *Carousel) Release(now time.Duration) {
	ss := &c.session
	if !ss.Active {
		return
	}
	if ss.Accumulated != 0 {
		c.flush(now)
	}

	velocity := (ss.LastX - ss.StartX) * ReleaseVelocityScale
	if math.Abs(velocity) > ReleaseThreshold {
		s := c.settings
		c.state.AutoScrollSpeed = -velocity * s.MomentumMultiplier * MomentumScale
		c.state.TargetDistortion = math.Min(c.inputDistortionCap(),
			math.Abs(velocity)*ReleaseDistortionScale*s.DistortionSensitivity)
		if ss.Source == SourceTouch {
			c.state.MovementDirection.X = -Sign(velocity)
		}
		c.openScrollWindow(now + MomentumWindow)
	}
	c.session = PointerSession{}
}

// Cancel 指针离开交互区域，结束手势但不产生惯性
func (c *Carousel) Cancel() {
	c.session = PointerSession{}
}

// Wheel 处理滚轮事件，返回是否被轮播消费
//
// 只有水平分量占优（|dx| > |dy|）时才驱动轮播；
// 垂直滚动返回 false，交给页面/宿主处理。
func (c *Carousel) Wheel(dx, dy float64, now time.Duration) bool {
	if math.Abs(dx) <= math.Abs(dy) {
		return false
	}

	c.raiseTargetDistortion(math.Abs(dx) * WheelStrength)
	c.state.TargetPosition -= dx * c.settings.WheelSensitivity
	c.state.AutoScrollSpeed = math.Min(math.Abs(dx)*WheelMomentumScale, WheelMomentumMax) * Sign(dx)
	c.state.MovementDirection.X = -Sign(dx)
	c.openScrollWindow(now + WheelIdleWindow)
	return true
}

// raiseTargetDistortion 输入只会抬高目标扭曲，上限 InputDistortionCap
func (c *Carousel) raiseTargetDistortion(amount float64) {
	t := math.Min(c.inputDistortionCap(), c.state.TargetDistortion+amount)
	if t > c.state.TargetDistortion {
		c.state.TargetDistortion = t
	}
}

func (c *Carousel) inputDistortionCap() float64 {
	return math.Min(InputDistortionCap, c.settings.MaxDistortion)
}

func (c *Carousel) openScrollWindow(until time.Duration) {
	c.state.ScrollingUntil = until
}
