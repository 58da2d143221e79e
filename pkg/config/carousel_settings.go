package config

import (
	"fmt"
	"math"
)

// CarouselSettings 轮播运动模型的可调参数
//
// 每个字段都是一个独立的数值旋钮，运行时可以通过调试面板修改，
// 修改后的值由 game.SettingsManager 持久化。
// 默认值与 data/gallery.yaml 中的 settings 段保持一致。
type CarouselSettings struct {
	// 输入
	WheelSensitivity   float64 `yaml:"wheelSensitivity"`   // 水平滚轮像素 -> 环上位移
	TouchSensitivity   float64 `yaml:"touchSensitivity"`   // 拖拽/触摸像素 -> 环上位移
	MomentumMultiplier float64 `yaml:"momentumMultiplier"` // 释放速度 -> 惯性速度倍率

	// 平滑
	Smoothing           float64 `yaml:"smoothing"`           // currentPosition 追赶 targetPosition 的速率
	SlideLerp           float64 `yaml:"slideLerp"`           // 单张幻灯片 currentX 追赶 targetX 的速率
	DistortionSmoothing float64 `yaml:"distortionSmoothing"` // currentDistortion 追赶 targetDistortion 的速率

	// 扭曲
	DistortionDecay             float64 `yaml:"distortionDecay"`
	MaxDistortion               float64 `yaml:"maxDistortion"`
	DistortionSensitivity       float64 `yaml:"distortionSensitivity"`
	DistortionIntensity         float64 `yaml:"distortionIntensity"`
	HorizontalDistortionDamping float64 `yaml:"horizontalDistortionDamping"`
	MomentumDistortionBoost     float64 `yaml:"momentumDistortionBoost"`
	DirectionInfluence          float64 `yaml:"directionInfluence"`
	WaveAmplitudeBoost          float64 `yaml:"waveAmplitudeBoost"`
	DirectionChangeThreshold    float64 `yaml:"directionChangeThreshold"`
	DirectionSmoothing          float64 `yaml:"directionSmoothing"`

	// 效果
	RotationFactor float64 `yaml:"rotationFactor"`
	AnimationSpeed float64 `yaml:"animationSpeed"`
	TextFadeStart  float64 `yaml:"textFadeStart"` // 标题开始淡出的中心距离
	TextFadeEnd    float64 `yaml:"textFadeEnd"`   // 标题完全消失的中心距离
	TextMaxBlur    float64 `yaml:"textMaxBlur"`   // 标题完全淡出时的模糊半径（像素）
}

// DefaultCarouselSettings 返回默认参数
//
// 标题淡出阈值依赖幻灯片宽度（默认 1.4），因此写成 SlideWidth/2 的展开值。
func DefaultCarouselSettings() *CarouselSettings {
	return &CarouselSettings{
		WheelSensitivity:   0.05,
		TouchSensitivity:   0.05,
		MomentumMultiplier: 2.5,

		Smoothing:           0.1,
		SlideLerp:           0.075,
		DistortionSmoothing: 0.5,

		DistortionDecay:             0.93,
		MaxDistortion:               2.0,
		DistortionSensitivity:       0.25,
		DistortionIntensity:         0.07,
		HorizontalDistortionDamping: 0.07,
		MomentumDistortionBoost:     0.7,
		DirectionInfluence:          0.4,
		WaveAmplitudeBoost:          0.2,
		DirectionChangeThreshold:    0.02,
		DirectionSmoothing:          0.03,

		RotationFactor: 0.2,
		AnimationSpeed: 0.5,
		TextFadeStart:  0.7,
		TextFadeEnd:    1.2,
		TextMaxBlur:    5,
	}
}

// Tunable 调试面板中的一个可调参数
type Tunable struct {
	Group string
	Name  string
	Min   float64
	Max   float64
	Value *float64
}

// Step 返回一次按键调整的步长（范围的 1/100）
func (t Tunable) Step() float64 {
	return (t.Max - t.Min) / 100
}

// Nudge 按步长调整参数值，结果限制在 [Min, Max]
func (t Tunable) Nudge(steps int) {
	v := *t.Value + float64(steps)*t.Step()
	*t.Value = math.Max(t.Min, math.Min(t.Max, v))
}

// Tunables 返回所有可调参数及其调整范围
//
// 分组与范围和原始调试面板一致：Distortion / Controls / Effects。
// 返回的 Value 指针直接指向 s 的字段。
func (s *CarouselSettings) Tunables() []Tunable {
	return []Tunable{
		{"Distortion", "maxDistortion", 1.0, 10.0, &s.MaxDistortion},
		{"Distortion", "distortionSensitivity", 0.1, 1.0, &s.DistortionSensitivity},
		{"Distortion", "distortionDecay", 0.8, 0.99, &s.DistortionDecay},
		{"Distortion", "distortionSmoothing", 0.01, 1.0, &s.DistortionSmoothing},
		{"Distortion", "distortionIntensity", 0.0, 1.0, &s.DistortionIntensity},
		{"Distortion", "horizontalDistortionDamping", 0.0, 1.0, &s.HorizontalDistortionDamping},
		{"Distortion", "momentumDistortionBoost", 0.0, 1.0, &s.MomentumDistortionBoost},
		{"Distortion", "directionInfluence", 0.0, 1.0, &s.DirectionInfluence},
		{"Distortion", "waveAmplitudeBoost", 0.0, 1.0, &s.WaveAmplitudeBoost},
		{"Distortion", "directionChangeThreshold", 0.0, 0.1, &s.DirectionChangeThreshold},
		{"Distortion", "directionSmoothing", 0.01, 0.2, &s.DirectionSmoothing},
		{"Controls", "wheelSensitivity", 0.001, 0.1, &s.WheelSensitivity},
		{"Controls", "touchSensitivity", 0.001, 0.1, &s.TouchSensitivity},
		{"Controls", "momentumMultiplier", 0.5, 5.0, &s.MomentumMultiplier},
		{"Controls", "smoothing", 0.01, 1.0, &s.Smoothing},
		{"Controls", "slideLerp", 0.01, 1.0, &s.SlideLerp},
		{"Effects", "rotationFactor", 0.0, 0.5, &s.RotationFactor},
		{"Effects", "animationSpeed", 0.1, 2.0, &s.AnimationSpeed},
		{"Effects", "textFadeStart", 0.0, 5.0, &s.TextFadeStart},
		{"Effects", "textFadeEnd", 0.0, 5.0, &s.TextFadeEnd},
		{"Effects", "textMaxBlur", 0, 20, &s.TextMaxBlur},
	}
}

// Validate 验证参数有效性
//
// 所有平滑/衰减速率必须在 (0, 1] 内，否则指数平滑会发散或振荡；
// 灵敏度和最大扭曲必须为正；标题淡出区间不能倒置。
func (s *CarouselSettings) Validate() error {
	rates := []struct {
		name  string
		value float64
	}{
		{"smoothing", s.Smoothing},
		{"slideLerp", s.SlideLerp},
		{"distortionSmoothing", s.DistortionSmoothing},
		{"distortionDecay", s.DistortionDecay},
		{"directionSmoothing", s.DirectionSmoothing},
	}
	for _, r := range rates {
		if !(r.value > 0 && r.value <= 1) {
			return fmt.Errorf("%s must be in (0, 1], got %v", r.name, r.value)
		}
	}

	if s.MaxDistortion <= 0 {
		return fmt.Errorf("maxDistortion must be > 0, got %v", s.MaxDistortion)
	}
	if s.WheelSensitivity <= 0 || s.TouchSensitivity <= 0 {
		return fmt.Errorf("sensitivities must be > 0, got wheel=%v touch=%v",
			s.WheelSensitivity, s.TouchSensitivity)
	}
	if s.MomentumMultiplier < 0 {
		return fmt.Errorf("momentumMultiplier must be >= 0, got %v", s.MomentumMultiplier)
	}
	if s.TextFadeEnd < s.TextFadeStart {
		return fmt.Errorf("textFadeEnd(%.2f) < textFadeStart(%.2f)", s.TextFadeEnd, s.TextFadeStart)
	}
	if s.TextMaxBlur < 0 {
		return fmt.Errorf("textMaxBlur must be >= 0, got %v", s.TextMaxBlur)
	}
	return nil
}

// Clone 返回参数的副本
func (s *CarouselSettings) Clone() *CarouselSettings {
	c := *s
	return &c
}
