package carousel

import (
	"math"
	"time"
)

// 积分器常数
const (
	// DefaultDeltaTime 首帧或 deltaTime 非法时使用的帧间隔（秒）
	DefaultDeltaTime = 0.016

	// MinAutoScrollSpeed 惯性速度低于该值时归零
	MinAutoScrollSpeed = 0.001

	positionNear       = 0.1  // 位置差小于该值时平滑速率减半
	distortionNear     = 0.05 // 扭曲差小于该值时平滑速率减半
	velocityNoiseFloor = 0.01 // 低于该值的瞬时速度记为 0

	peakAttack            = 0.3
	peakDecay             = 0.98
	accelerationBoostRate = 0.03
	accelerationBoostMax  = 0.1
	decelerationRatio     = 0.7
	decelerationMinPeak   = 0.3

	movingVelocity   = 0.03 // 超过该速度时目标扭曲向速度平方项混合
	slowVelocity     = 0.1  // 平均速度低于该值时快速衰减
	maxBlend         = 0.2
	decelDecayScale  = 1.01
	slowDecayScale   = 0.9
	teleportSlideGap = 2.0 // 折叠跳变超过 teleportSlideGap*SlideWidth 时直接瞬移

	depthPerUnit  = -0.2
	scalePerUnit  = 0.15
	minSlideScale = 0.5
)

// Tick 推进一帧
//
// dt 为距上一帧的秒数（<=0 或非有限值时使用 DefaultDeltaTime），
// now 为单调时钟时间，用于惯性窗口的截止判断。
func (c *Carousel) Tick(dt float64, now time.Duration) {
	if !(dt > 0) || math.IsInf(dt, 0) {
		dt = DefaultDeltaTime
	}
	s := &c.state
	set := c.settings
	s.GlobalTime += dt
	prevPos := s.CurrentPosition

	// 1. 惯性
	c.applyMomentum(now)

	// 2. 位置平滑
	rate := AdaptiveRate(set.Smoothing, math.Abs(s.TargetPosition-s.CurrentPosition), positionNear)
	s.CurrentPosition = Damp(s.CurrentPosition, s.TargetPosition, rate)

	// 3. 速度历史与加权平均
	velocity := math.Abs(s.CurrentPosition-prevPos) / dt
	significant := velocity
	if significant <= velocityNoiseFloor {
		significant = 0
	}
	copy(s.VelocityHistory[:], s.VelocityHistory[1:])
	s.VelocityHistory[VelocityHistorySize-1] = significant

	var weighted, weightSum float64
	for i, v := range s.VelocityHistory {
		weighted += v * velocityWeights[i]
		weightSum += velocityWeights[i]
	}
	s.AvgVelocity = weighted / weightSum

	// 4. 峰值包络
	if s.AvgVelocity > s.PeakVelocity {
		s.PeakVelocity += (s.AvgVelocity - s.PeakVelocity) * peakAttack
		boost := math.Min(accelerationBoostMax, s.AvgVelocity*accelerationBoostRate)
		s.TargetDistortion = math.Min(set.MaxDistortion, s.TargetDistortion+boost)
	}
	s.Decelerating = s.AvgVelocity/(s.PeakVelocity+0.001) < decelerationRatio &&
		s.PeakVelocity > decelerationMinPeak
	s.PeakVelocity *= peakDecay

	// 5. 目标扭曲：快速移动时向速度平方项混合，否则乘性衰减
	if velocity > movingVelocity {
		movement := math.Min(1, velocity*velocity*2)
		blend := math.Min(maxBlend, velocity)
		s.TargetDistortion += (movement - s.TargetDistortion) * blend
	}
	if s.Decelerating {
		s.TargetDistortion *= set.DistortionDecay * decelDecayScale
	} else if s.AvgVelocity < slowVelocity {
		s.TargetDistortion *= set.DistortionDecay * slowDecayScale
	}
	s.TargetDistortion = Clamp(s.TargetDistortion, 0, set.MaxDistortion)

	// 6. 扭曲平滑
	rate = AdaptiveRate(set.DistortionSmoothing, math.Abs(s.TargetDistortion-s.CurrentDistortion), distortionNear)
	s.CurrentDistortion = Clamp(Damp(s.CurrentDistortion, s.TargetDistortion, rate), 0, set.MaxDistortion)

	// 7-8. 幻灯片
	for _, sl := range c.slides {
		c.updateSlide(sl, dt)
	}
}

// applyMomentum 惯性窗口打开时把惯性速度加到目标位置并按速度相关系数衰减；
// 窗口关闭后残余惯性清零
func (c *Carousel) applyMomentum(now time.Duration) {
	s := &c.state
	if !c.IsScrolling(now) {
		s.AutoScrollSpeed = 0
		return
	}
	if s.AutoScrollSpeed == 0 {
		return
	}
	s.TargetPosition += s.AutoScrollSpeed
	decay := math.Max(0.92, 0.97-math.Abs(s.AutoScrollSpeed)*0.5)
	s.AutoScrollSpeed *= decay
	if math.Abs(s.AutoScrollSpeed) < MinAutoScrollSpeed {
		s.AutoScrollSpeed = 0
	}
}

// updateSlide 折叠幻灯片位置、计算深度与缩放，并对可见幻灯片做扭曲
func (c *Carousel) updateSlide(sl *Slide, dt float64) {
	base := Wrap(float64(sl.Index)*c.unit-c.state.CurrentPosition, c.totalWidth)
	if math.Abs(base-sl.TargetX) > c.geometry.Width*teleportSlideGap {
		sl.CurrentX = base
	}
	sl.TargetX = base
	sl.CurrentX = Damp(sl.CurrentX, sl.TargetX, c.settings.SlideLerp)

	sl.Visible = math.Abs(sl.CurrentX) < c.cullX
	if !sl.Visible {
		return
	}

	sl.Position.X = sl.CurrentX
	dist := math.Abs(sl.Position.X)
	sl.Position.Z = dist * depthPerUnit
	sl.Scale = math.Max(minSlideScale, 1-dist*scalePerUnit)

	c.distort(sl, c.state.CurrentDistortion, dt)
}
