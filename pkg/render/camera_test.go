package render

import (
	"math"
	"testing"

	"github.com/decker502/carousel/pkg/carousel"
	"github.com/decker502/carousel/pkg/config"
)

func TestFOVFor(t *testing.T) {
	tests := []struct {
		name   string
		aspect float64
		want   float64
	}{
		{"横屏", 16.0 / 9.0, 50},
		{"正方形", 1, 50},
		{"竖屏", 0.5, 80},
		{"手机竖屏", 9.0 / 16.0, 50 * 16.0 / 9.0 * 0.8},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FOVFor(50, 0.8, tt.aspect); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("FOVFor() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCameraResize(t *testing.T) {
	cam := NewCamera(config.DefaultGalleryConfig().Camera)
	if cam.Width != config.GameWindowWidth || cam.Height != config.GameWindowHeight {
		t.Fatalf("initial size = %dx%d", cam.Width, cam.Height)
	}
	if cam.FOV != 50 {
		t.Errorf("landscape FOV = %v, want 50", cam.FOV)
	}

	if !cam.Resize(720, 1280) {
		t.Fatal("Resize() should report a change")
	}
	want := 50 / (720.0 / 1280.0) * 0.8
	if math.Abs(cam.FOV-want) > 1e-9 {
		t.Errorf("portrait FOV = %v, want %v", cam.FOV, want)
	}

	if cam.Resize(720, 1280) {
		t.Error("Resize() with same size should report no change")
	}
	if cam.Resize(0, 100) {
		t.Error("Resize() with zero width should be ignored")
	}
	if cam.Width != 720 {
		t.Errorf("Width = %d after ignored resize", cam.Width)
	}
}

func TestCameraProject(t *testing.T) {
	cam := NewCamera(config.DefaultGalleryConfig().Camera)

	sx, sy, depth, ok := cam.Project(carousel.Vec3{})
	if !ok {
		t.Fatal("origin should be projectable")
	}
	if math.Abs(sx-640) > 1e-9 || math.Abs(sy-360) > 1e-9 {
		t.Errorf("origin projects to (%v, %v), want screen center", sx, sy)
	}
	if depth != 3.5 {
		t.Errorf("depth = %v, want 3.5", depth)
	}

	// 视口半宽处的点落在屏幕右边缘
	hw := cam.VisibleHalfWidth()
	sx, _, _, _ = cam.Project(carousel.Vec3{X: hw})
	if math.Abs(sx-1280) > 1e-6 {
		t.Errorf("half-width point projects to x=%v, want 1280", sx)
	}

	// y 向上为正，投影后在屏幕上方
	_, sy, _, _ = cam.Project(carousel.Vec3{Y: 1})
	if sy >= 360 {
		t.Errorf("point above center projects to y=%v, want < 360", sy)
	}

	// 远处的点更靠近中心
	near, _, _, _ := cam.Project(carousel.Vec3{X: 1})
	far, _, _, _ := cam.Project(carousel.Vec3{X: 1, Z: -2})
	if far >= near {
		t.Errorf("farther point should be closer to center: near=%v far=%v", near, far)
	}

	if _, _, _, ok := cam.Project(carousel.Vec3{Z: 3.5}); ok {
		t.Error("point at the camera plane should be clipped")
	}
}

func TestPointerToNDC(t *testing.T) {
	cam := NewCamera(config.DefaultGalleryConfig().Camera)
	tests := []struct {
		x, y   int
		nx, ny float64
	}{
		{0, 0, -1, 1},
		{640, 360, 0, 0},
		{1280, 720, 1, -1},
	}
	for _, tt := range tests {
		nx, ny := cam.PointerToNDC(tt.x, tt.y)
		if nx != tt.nx || ny != tt.ny {
			t.Errorf("PointerToNDC(%d, %d) = (%v, %v), want (%v, %v)", tt.x, tt.y, nx, ny, tt.nx, tt.ny)
		}
	}
}
