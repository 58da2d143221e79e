package carousel

// Mesh 细分平面网格
//
// 顶点按行排列：第 0 行位于平面顶部（y = +h/2），每行从左到右。
// Original 为静止顶点，Displaced 为当前帧扭曲后的顶点，
// Normals 由 ComputeNormals 根据 Displaced 重新计算。
type Mesh struct {
	Cols, Rows int // 每行/每列的顶点数（细分数 + 1）

	Original  []Vec3
	Displaced []Vec3
	Normals   []Vec3
	UVs       []Vec2 // u 向右，v 向上，范围 [0, 1]
	Indices   []uint16
}

// NewPlaneMesh 创建 width×height、细分 segX×segY 的平面网格
func NewPlaneMesh(width, height float64, segX, segY int) *Mesh {
	cols, rows := segX+1, segY+1
	n := cols * rows
	m := &Mesh{
		Cols:      cols,
		Rows:      rows,
		Original:  make([]Vec3, n),
		Displaced: make([]Vec3, n),
		Normals:   make([]Vec3, n),
		UVs:       make([]Vec2, n),
		Indices:   make([]uint16, 0, segX*segY*6),
	}

	segW := width / float64(segX)
	segH := height / float64(segY)
	for iy := 0; iy < rows; iy++ {
		y := height/2 - float64(iy)*segH
		for ix := 0; ix < cols; ix++ {
			i := iy*cols + ix
			m.Original[i] = Vec3{X: float64(ix)*segW - width/2, Y: y}
			m.UVs[i] = Vec2{X: float64(ix) / float64(segX), Y: 1 - float64(iy)/float64(segY)}
			m.Normals[i] = Vec3{Z: 1}
		}
	}
	copy(m.Displaced, m.Original)

	for iy := 0; iy < segY; iy++ {
		for ix := 0; ix < segX; ix++ {
			a := uint16(ix + cols*iy)
			b := uint16(ix + cols*(iy+1))
			c := uint16(ix + 1 + cols*(iy+1))
			d := uint16(ix + 1 + cols*iy)
			m.Indices = append(m.Indices, a, b, d, b, c, d)
		}
	}
	return m
}

// Reset 把 Displaced 恢复为静止顶点
func (m *Mesh) Reset() {
	copy(m.Displaced, m.Original)
	for i := range m.Normals {
		m.Normals[i] = Vec3{Z: 1}
	}
}

// ComputeNormals 按面法线累加重新计算顶点法线
func (m *Mesh) ComputeNormals() {
	for i := range m.Normals {
		m.Normals[i] = Vec3{}
	}
	for i := 0; i+2 < len(m.Indices); i += 3 {
		ia, ib, ic := m.Indices[i], m.Indices[i+1], m.Indices[i+2]
		pa, pb, pc := m.Displaced[ia], m.Displaced[ib], m.Displaced[ic]
		n := pc.Sub(pb).Cross(pa.Sub(pb))
		m.Normals[ia] = m.Normals[ia].Add(n)
		m.Normals[ib] = m.Normals[ib].Add(n)
		m.Normals[ic] = m.Normals[ic].Add(n)
	}
	for i, n := range m.Normals {
		m.Normals[i] = n.Normalize()
	}
}
