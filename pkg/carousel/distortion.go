package carousel

import "math"

// 逐顶点扭曲常数
const (
	waveAmplitudeRate = 0.05
	rotFactorRate     = 0.1
	maxRotDistortion  = 0.2

	gravityOrbitX    = 0.5
	gravityOrbitY    = 0.3
	gravityFreqX     = 0.1
	gravityFreqY     = 0.15
	gravityFalloff   = 8.0
	gravityMaxEffect = 2.0

	waveFrequency  = 5.0
	pulseFrequency = 3.0
	pulseStrength  = 0.05
	stretchScale   = 0.3
	twistScale     = 0.1

	maxPlanarOffset = 1.0
	maxDepthOffset  = 2.0
	maxDepthSpread  = 5.0
)

// distort 根据扭曲系数 factor 把幻灯片的静止网格变形为本帧网格
//
// 变形由五项叠加：向缓慢绕行的"重力中心"的拉扯、按方向传播的波、
// 沿运动方向的拉伸、按扭曲强度的扭转、以及带每张幻灯片随机相位的脉动。
// 平面方向位移限制在 ±1，深度限制在 ±2，之后重新计算法线。
// 旋转系数以独立速率平滑，产生滞后的弹性倾斜。
func (c *Carousel) distort(sl *Slide, factor, dt float64) {
	set := c.settings
	st := &c.state

	sl.Time += dt * set.AnimationSpeed * sl.WaveSpeed
	t := sl.Time

	momentumBoost := math.Min(1, st.PeakVelocity*set.MomentumDistortionBoost)
	targetAmplitude := 1 + momentumBoost*set.WaveAmplitudeBoost*3
	sl.WaveAmplitude = Damp(sl.WaveAmplitude, targetAmplitude, waveAmplitudeRate)

	effective := factor * set.DistortionIntensity
	gravityX := math.Sin(t*gravityFreqX) * gravityOrbitX
	gravityY := math.Cos(t*gravityFreqY) * gravityOrbitY
	gravityStrength := Clamp(effective, 0, gravityMaxEffect) * 2

	// 方向带滞回：位移差超过阈值才向新方向混合，避免近零速度时闪烁
	dx := sl.TargetX - sl.CurrentX
	if adx := math.Abs(dx); adx > set.DirectionChangeThreshold {
		newDirection := 1.0
		if dx > 0 {
			newDirection = -1
		}
		blend := math.Min(1, set.DirectionSmoothing*(1+adx*5))
		st.MovementDirection.X = Damp(st.MovementDirection.X, newDirection, blend)
	}
	dir := st.MovementDirection

	velocityScale := math.Min(1, st.PeakVelocity*2)
	directionInfluence := set.DirectionInfluence * velocityScale
	stretch := effective * stretchScale * velocityScale
	twist := effective * twistScale * velocityScale
	horizontalDamping := set.HorizontalDistortionDamping * (1 - velocityScale*0.3)
	pulseScale := pulseStrength * effective * sl.WaveAmplitude

	m := sl.Mesh
	for i, o := range m.Original {
		distX := o.X - gravityX
		distY := o.Y - gravityY
		dist := math.Sqrt(distX*distX + distY*distY + 0.0001)
		gravityFactor := math.Min(1, 1/(1+dist*gravityFalloff))

		waveX := dir.X * math.Sin(dist*waveFrequency+t) * directionInfluence
		waveY := dir.Y * math.Cos(dist*waveFrequency+t) * directionInfluence * 0.3

		pullX := distX * gravityFactor * gravityStrength * 0.5
		pullY := distY * gravityFactor * gravityStrength * 0.5

		stretchX := dir.X * stretch * (1 - math.Min(1, math.Abs(o.Y)))
		stretchY := dir.Y * stretch * (1 - math.Min(1, math.Abs(o.X)))

		pulse := math.Sin(t+dist*pulseFrequency+sl.WavePhase) * pulseScale

		twistAmount := twist * gravityFactor
		twistX := -o.Y * twistAmount
		twistY := o.X * twistAmount

		offX := Clamp((pullX+stretchX+twistX+waveX)*horizontalDamping, -maxPlanarOffset, maxPlanarOffset)
		offY := Clamp(pullY+stretchY+twistY+waveY, -maxPlanarOffset, maxPlanarOffset)
		offZ := Clamp((gravityFactor*gravityStrength+pulse)*(1+math.Min(maxDepthSpread, dist)), -maxDepthOffset, maxDepthOffset)

		m.Displaced[i] = Vec3{X: o.X + offX, Y: o.Y + offY, Z: o.Z + offZ}
	}
	m.ComputeNormals()

	targetRot := math.Min(maxRotDistortion, effective) * set.RotationFactor * (1 + momentumBoost*0.5)
	sl.RotFactor = Damp(sl.RotFactor, targetRot, rotFactorRate)
	rf := sl.RotFactor
	sl.Rotation = Vec3{
		X: math.Sin(t*0.2) * 0.1 * rf,
		Y: math.Sin(t*0.3+0.5) * 0.1 * rf,
		Z: rf * 0.05 * math.Sin(t*0.1),
	}
}
