package carousel

import "math"

// Vec2 二维向量
type Vec2 struct {
	X, Y float64
}

// Vec3 三维向量
type Vec3 struct {
	X, Y, Z float64
}

// Add 返回 a + b
func (a Vec3) Add(b Vec3) Vec3 {
	return Vec3{a.X + b.X, a.Y + b.Y, a.Z + b.Z}
}

// Sub 返回 a - b
func (a Vec3) Sub(b Vec3) Vec3 {
	return Vec3{a.X - b.X, a.Y - b.Y, a.Z - b.Z}
}

// Scale 返回 a * s
func (a Vec3) Scale(s float64) Vec3 {
	return Vec3{a.X * s, a.Y * s, a.Z * s}
}

// Dot 点积
func (a Vec3) Dot(b Vec3) float64 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

// Cross 叉积
func (a Vec3) Cross(b Vec3) Vec3 {
	return Vec3{
		a.Y*b.Z - a.Z*b.Y,
		a.Z*b.X - a.X*b.Z,
		a.X*b.Y - a.Y*b.X,
	}
}

// Len 向量长度
func (a Vec3) Len() float64 {
	return math.Sqrt(a.Dot(a))
}

// Normalize 返回单位向量；零向量原样返回
func (a Vec3) Normalize() Vec3 {
	l := a.Len()
	if l == 0 {
		return a
	}
	return a.Scale(1 / l)
}

// RotateXYZ 按欧拉角 (X, Y, Z) 旋转，顺序与 Rx·Ry·Rz 矩阵一致（先绕 Z，再 Y，最后 X）
func (a Vec3) RotateXYZ(r Vec3) Vec3 {
	// Z
	sz, cz := math.Sincos(r.Z)
	x, y, z := a.X*cz-a.Y*sz, a.X*sz+a.Y*cz, a.Z
	// Y
	sy, cy := math.Sincos(r.Y)
	x, z = x*cy+z*sy, -x*sy+z*cy
	// X
	sx, cx := math.Sincos(r.X)
	y, z = y*cx-z*sx, y*sx+z*cx
	return Vec3{x, y, z}
}
