package carousel

import (
	"math"
	"math/rand/v2"
	"testing"
	"time"
)

// TestDragLinearity 净位移为零的拖拽序列让目标位置回到起点
func TestDragLinearity(t *testing.T) {
	tests := []struct {
		name   string
		deltas []float64
		step   time.Duration
	}{
		{"整数往返", []float64{5, -3, -2}, 16 * time.Millisecond},
		{"亚像素累积", []float64{0.4, 0.4, -0.8}, 10 * time.Millisecond},
		{"亚像素超时刷新", []float64{0.3, 0.3, -0.6}, 60 * time.Millisecond},
		{"大幅来回", []float64{120, -60, 30, -90}, 16 * time.Millisecond},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestCarousel(t)
			start := c.State().TargetPosition

			x, now := 200.0, time.Duration(0)
			c.BeginDrag(x, now)
			for _, d := range tt.deltas {
				x += d
				now += tt.step
				c.Move(x, now)
			}
			c.Release(now + tt.step)

			if got := c.State().TargetPosition; math.Abs(got-start) > 1e-9 {
				t.Errorf("TargetPosition = %v, want %v", got, start)
			}
		})
	}

	t.Run("随机序列", func(t *testing.T) {
		rng := rand.New(rand.NewPCG(7, 7))
		for trial := 0; trial < 50; trial++ {
			c := newTestCarousel(t)
			deltas := make([]float64, 20)
			var sum float64
			for i := range deltas[:19] {
				deltas[i] = rng.Float64()*40 - 20
				sum += deltas[i]
			}
			deltas[19] = -sum

			x, now := 0.0, time.Duration(0)
			c.BeginTouch(x, now)
			for _, d := range deltas {
				x += d
				now += time.Duration(rng.IntN(80)) * time.Millisecond
				c.Move(x, now)
			}
			c.Release(now)
			if got := c.State().TargetPosition; math.Abs(got) > 1e-9 {
				t.Fatalf("trial %d: TargetPosition = %v, want 0", trial, got)
			}
		}
	})
}

// TestMoveFlushThreshold 累积位移不足 1px 时等待 50ms 再刷新
func TestMoveFlushThreshold(t *testing.T) {
	c := newTestCarousel(t)
	c.BeginDrag(100, 0)

	c.Move(100.5, 10*time.Millisecond)
	if got := c.State().TargetPosition; got != 0 {
		t.Fatalf("expected no flush yet, TargetPosition = %v", got)
	}
	if got := c.Session().Accumulated; got != 0.5 {
		t.Errorf("Accumulated = %v, want 0.5", got)
	}

	c.Move(100.8, 70*time.Millisecond)
	want := -0.8 * c.Settings().TouchSensitivity
	if got := c.State().TargetPosition; math.Abs(got-want) > 1e-12 {
		t.Errorf("TargetPosition = %v, want %v", got, want)
	}
	if got := c.Session().LastX; got != 100.8 {
		t.Errorf("LastX = %v, want 100.8", got)
	}
}

// TestMoveRaisesDistortionOnly 输入只会抬高目标扭曲
func TestMoveRaisesDistortionOnly(t *testing.T) {
	c := newTestCarousel(t)
	c.state.TargetDistortion = 1.5 // 积分器的加速增益可以超过 1

	c.BeginDrag(0, 0)
	c.Move(10, 16*time.Millisecond)

	if got := c.State().TargetDistortion; got != 1.5 {
		t.Errorf("TargetDistortion = %v, want unchanged 1.5", got)
	}

	c.state.TargetDistortion = 0
	c.Move(20, 32*time.Millisecond)
	if got := c.State().TargetDistortion; math.Abs(got-10*DragStrength) > 1e-12 {
		t.Errorf("TargetDistortion = %v, want %v", got, 10*DragStrength)
	}
}

// TestReleaseSeedsMomentum 快速释放播种反向惯性
func TestReleaseSeedsMomentum(t *testing.T) {
	c := newTestCarousel(t)
	end := fling(c, 0)

	st := c.State()
	velocity := 300 * ReleaseVelocityScale
	want := -velocity * c.Settings().MomentumMultiplier * MomentumScale
	if math.Abs(st.AutoScrollSpeed-want) > 1e-12 {
		t.Errorf("AutoScrollSpeed = %v, want %v", st.AutoScrollSpeed, want)
	}
	if st.AutoScrollSpeed >= 0 {
		t.Errorf("AutoScrollSpeed should be negative for a rightward drag, got %v", st.AutoScrollSpeed)
	}
	if st.TargetDistortion != 1 {
		t.Errorf("TargetDistortion = %v, want 1 (capped)", st.TargetDistortion)
	}
	if st.ScrollingUntil != end+MomentumWindow {
		t.Errorf("ScrollingUntil = %v, want %v", st.ScrollingUntil, end+MomentumWindow)
	}
	if c.Session().Active {
		t.Error("session should be cleared after release")
	}
}

// TestReleaseSlowNoMomentum 慢速释放不产生惯性
func TestReleaseSlowNoMomentum(t *testing.T) {
	c := newTestCarousel(t)
	c.BeginDrag(0, 0)
	c.Move(50, 16*time.Millisecond) // 50 * 0.005 = 0.25 < 0.5
	c.Release(32 * time.Millisecond)

	st := c.State()
	if st.AutoScrollSpeed != 0 {
		t.Errorf("AutoScrollSpeed = %v, want 0", st.AutoScrollSpeed)
	}
	if c.IsScrolling(33 * time.Millisecond) {
		t.Error("scroll window should stay closed")
	}
}

// TestMomentumCutAtWindowEnd 惯性在窗口内单调衰减，窗口截止后的第一帧清零
//
// +300px/100ms 的甩动在 800ms 内还衰减不到 MinAutoScrollSpeed，剩余速度由截止清零
func TestMomentumCutAtWindowEnd(t *testing.T) {
	c := newTestCarousel(t)
	now := fling(c, 0)
	deadline := c.State().ScrollingUntil
	if deadline != now+MomentumWindow {
		t.Fatalf("ScrollingUntil = %v, want %v", deadline, now+MomentumWindow)
	}

	prev := math.Abs(c.State().AutoScrollSpeed)
	for now+frame < deadline {
		now += frame
		c.Tick(frameDT, now)
		speed := c.State().AutoScrollSpeed
		if speed > 0 {
			t.Fatalf("momentum changed sign at %v: %v", now, speed)
		}
		if math.Abs(speed) > prev {
			t.Fatalf("momentum grew at %v: %v > %v", now, math.Abs(speed), prev)
		}
		prev = math.Abs(speed)
	}

	// 窗口内最后一帧仍有残余惯性
	if prev < MinAutoScrollSpeed {
		t.Fatalf("|AutoScrollSpeed| = %v before deadline, want >= %v", prev, MinAutoScrollSpeed)
	}

	target := c.State().TargetPosition
	c.Tick(frameDT, deadline)
	st := c.State()
	if st.AutoScrollSpeed != 0 {
		t.Errorf("AutoScrollSpeed = %v at deadline, want 0", st.AutoScrollSpeed)
	}
	if st.TargetPosition != target {
		t.Errorf("TargetPosition moved at deadline: %v -> %v", target, st.TargetPosition)
	}
}

// TestMomentumBelowMinimumZeroed 窗口内速度衰减到 MinAutoScrollSpeed 以下时清零
func TestMomentumBelowMinimumZeroed(t *testing.T) {
	c := newTestCarousel(t)
	c.state.AutoScrollSpeed = 2 * MinAutoScrollSpeed
	c.state.ScrollingUntil = time.Hour

	now := time.Duration(0)
	for i := 0; i < 100 && c.State().AutoScrollSpeed != 0; i++ {
		prev := c.State().AutoScrollSpeed
		now += frame
		c.Tick(frameDT, now)
		if speed := c.State().AutoScrollSpeed; speed != 0 && speed < MinAutoScrollSpeed {
			t.Fatalf("AutoScrollSpeed = %v kept below minimum (prev %v)", speed, prev)
		}
	}
	if got := c.State().AutoScrollSpeed; got != 0 {
		t.Errorf("AutoScrollSpeed = %v, want 0 inside the window", got)
	}
	if !c.IsScrolling(now) {
		t.Error("window should still be open")
	}
}

// TestCancelDropsGesture 指针离开后释放不产生惯性
func TestCancelDropsGesture(t *testing.T) {
	c := newTestCarousel(t)
	c.BeginDrag(0, 0)
	c.Move(500, 16*time.Millisecond)
	c.Cancel()
	c.Release(32 * time.Millisecond)

	if st := c.State(); st.AutoScrollSpeed != 0 {
		t.Errorf("AutoScrollSpeed = %v, want 0", st.AutoScrollSpeed)
	}
	// 取消前已刷新的位移保留
	want := -500 * c.Settings().TouchSensitivity
	if got := c.State().TargetPosition; math.Abs(got-want) > 1e-9 {
		t.Errorf("TargetPosition = %v, want %v", got, want)
	}
}

// TestNewDragKeepsMomentum 新手势不清除正在进行的惯性
func TestNewDragKeepsMomentum(t *testing.T) {
	c := newTestCarousel(t)
	end := fling(c, 0)
	before := c.State()

	c.BeginDrag(400, end+10*time.Millisecond)

	after := c.State()
	if after.AutoScrollSpeed != before.AutoScrollSpeed {
		t.Errorf("AutoScrollSpeed changed: %v -> %v", before.AutoScrollSpeed, after.AutoScrollSpeed)
	}
	if after.ScrollingUntil != before.ScrollingUntil {
		t.Errorf("ScrollingUntil changed: %v -> %v", before.ScrollingUntil, after.ScrollingUntil)
	}
}

// TestTouchLifecycle 触摸开始关闭惯性窗口，释放时设置运动方向
func TestTouchLifecycle(t *testing.T) {
	c := newTestCarousel(t)
	end := fling(c, 0)

	c.BeginTouch(0, end+time.Millisecond)
	if c.IsScrolling(end + 2*time.Millisecond) {
		t.Error("touch start should close the scroll window")
	}

	now := end + time.Millisecond
	for i := 1; i <= 4; i++ {
		now += 16 * time.Millisecond
		c.Move(float64(i)*100, now)
		if !c.IsScrolling(now) {
			t.Fatalf("touch move should keep the scroll window open")
		}
	}
	c.Release(now)

	st := c.State()
	if st.MovementDirection.X != -1 {
		t.Errorf("MovementDirection.X = %v, want -1", st.MovementDirection.X)
	}
	if st.AutoScrollSpeed >= 0 {
		t.Errorf("AutoScrollSpeed = %v, want negative", st.AutoScrollSpeed)
	}
}

// TestWheelHorizontalPriority 只有水平分量占优的滚轮驱动轮播
func TestWheelHorizontalPriority(t *testing.T) {
	tests := []struct {
		name       string
		dx, dy     float64
		wantUsed   bool
		wantTarget float64
	}{
		{"水平为主", 100, 10, true, -100 * 0.05},
		{"垂直为主", 10, 100, false, 0},
		{"相等时让给页面", 50, 50, false, 0},
		{"向左", -40, 5, true, 40 * 0.05},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestCarousel(t)
			used := c.Wheel(tt.dx, tt.dy, time.Second)
			if used != tt.wantUsed {
				t.Errorf("Wheel() = %v, want %v", used, tt.wantUsed)
			}
			if got := c.State().TargetPosition; math.Abs(got-tt.wantTarget) > 1e-12 {
				t.Errorf("TargetPosition = %v, want %v", got, tt.wantTarget)
			}
			if !tt.wantUsed {
				if c.State().TargetDistortion != 0 || c.IsScrolling(time.Second) {
					t.Error("vertical wheel must not touch carousel state")
				}
			}
		})
	}
}

// TestWheelMomentumWindow 滚轮惯性窗口 150ms 后关闭
func TestWheelMomentumWindow(t *testing.T) {
	c := newTestCarousel(t)
	c.Wheel(100, 0, 0)

	st := c.State()
	if math.Abs(st.AutoScrollSpeed-0.05) > 1e-12 {
		t.Errorf("AutoScrollSpeed = %v, want 0.05", st.AutoScrollSpeed)
	}
	if st.MovementDirection.X != -1 {
		t.Errorf("MovementDirection.X = %v, want -1", st.MovementDirection.X)
	}
	if !c.IsScrolling(WheelIdleWindow - time.Millisecond) {
		t.Error("window should be open before 150ms")
	}
	if c.IsScrolling(WheelIdleWindow) {
		t.Error("window should be closed at 150ms")
	}

	c.Tick(frameDT, WheelIdleWindow)
	if got := c.State().AutoScrollSpeed; got != 0 {
		t.Errorf("AutoScrollSpeed after window = %v, want 0", got)
	}
}
