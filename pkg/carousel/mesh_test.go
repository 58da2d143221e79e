package carousel

import (
	"math"
	"testing"
)

func TestNewPlaneMesh(t *testing.T) {
	m := NewPlaneMesh(2, 4, 2, 2)

	if len(m.Original) != 9 {
		t.Fatalf("vertex count = %d, want 9", len(m.Original))
	}
	if len(m.Indices) != 24 {
		t.Fatalf("index count = %d, want 24", len(m.Indices))
	}
	if got := m.Original[0]; got != (Vec3{X: -1, Y: 2}) {
		t.Errorf("top-left = %+v", got)
	}
	if got := m.Original[8]; got != (Vec3{X: 1, Y: -2}) {
		t.Errorf("bottom-right = %+v", got)
	}
	if got := m.UVs[0]; got != (Vec2{X: 0, Y: 1}) {
		t.Errorf("top-left uv = %+v", got)
	}
	if got := m.UVs[8]; got != (Vec2{X: 1, Y: 0}) {
		t.Errorf("bottom-right uv = %+v", got)
	}
	for _, idx := range m.Indices {
		if int(idx) >= len(m.Original) {
			t.Fatalf("index %d out of range", idx)
		}
	}
}

func TestComputeNormals(t *testing.T) {
	m := NewPlaneMesh(1, 1, 4, 4)

	m.ComputeNormals()
	for i, n := range m.Normals {
		if math.Abs(n.Z-1) > 1e-12 || math.Abs(n.X) > 1e-12 || math.Abs(n.Y) > 1e-12 {
			t.Fatalf("flat normal %d = %+v, want +Z", i, n)
		}
	}

	// 右边缘整体抬起：法线向 -X 倾斜
	for i, o := range m.Original {
		m.Displaced[i] = Vec3{X: o.X, Y: o.Y, Z: o.X}
	}
	m.ComputeNormals()
	for i, n := range m.Normals {
		if n.X >= 0 || n.Z <= 0 {
			t.Fatalf("tilted normal %d = %+v", i, n)
		}
	}

	m.Reset()
	if m.Displaced[3] != m.Original[3] || m.Normals[3] != (Vec3{Z: 1}) {
		t.Error("Reset should restore rest pose")
	}
}

func TestRotateXYZ(t *testing.T) {
	tests := []struct {
		name string
		v, r Vec3
		want Vec3
	}{
		{"绕Z", Vec3{X: 1}, Vec3{Z: math.Pi / 2}, Vec3{Y: 1}},
		{"绕X", Vec3{Z: 1}, Vec3{X: math.Pi / 2}, Vec3{Y: -1}},
		{"绕Y", Vec3{Z: 1}, Vec3{Y: math.Pi / 2}, Vec3{X: 1}},
		{"不旋转", Vec3{X: 1, Y: 2, Z: 3}, Vec3{}, Vec3{X: 1, Y: 2, Z: 3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.v.RotateXYZ(tt.r)
			if got.Sub(tt.want).Len() > 1e-12 {
				t.Errorf("RotateXYZ() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestWrap(t *testing.T) {
	tests := []struct {
		x, want float64
	}{
		{0, 0},
		{11.9, 11.9},
		{12, -12},
		{-12, -12},
		{25, 1},
		{-25, -1},
		{1e6, -8},
	}
	for _, tt := range tests {
		if got := Wrap(tt.x, 24); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("Wrap(%v, 24) = %v, want %v", tt.x, got, tt.want)
		}
	}
}

func TestAdaptiveRate(t *testing.T) {
	if got := AdaptiveRate(0.1, 0.05, 0.1); got != 0.05 {
		t.Errorf("near target rate = %v, want 0.05", got)
	}
	if got := AdaptiveRate(0.1, 0.5, 0.1); got != 0.1 {
		t.Errorf("far rate = %v, want 0.1", got)
	}
	if got := Damp(0, 10, 0.25); got != 2.5 {
		t.Errorf("Damp() = %v, want 2.5", got)
	}
}
