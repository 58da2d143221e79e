package render

import (
	"cmp"
	"image/color"
	"slices"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/carousel/pkg/carousel"
)

// SlideRenderer 把幻灯片网格变换、投影并以三角形绘制
type SlideRenderer struct {
	camera   *Camera
	lighting *Lighting

	textures   []*Texture // 按图片序号索引，nil 表示加载失败
	untextured color.NRGBA

	vertices []ebiten.Vertex
	order    []*carousel.Slide
}

// NewSlideRenderer 创建幻灯片渲染器
//
// 幻灯片 i 使用 textures[i % len(textures)]；纹理为 nil 时以 untextured 底色绘制。
func NewSlideRenderer(camera *Camera, lighting *Lighting, textures []*Texture, untextured color.NRGBA) *SlideRenderer {
	return &SlideRenderer{
		camera:     camera,
		lighting:   lighting,
		textures:   textures,
		untextured: untextured,
	}
}

// TextureFor 返回幻灯片使用的纹理（可能为 nil）
func (r *SlideRenderer) TextureFor(index int) *Texture {
	if len(r.textures) == 0 {
		return nil
	}
	return r.textures[index%len(r.textures)]
}

// Draw 按从远到近的顺序绘制可见幻灯片
func (r *SlideRenderer) Draw(screen *ebiten.Image, slides []*carousel.Slide) {
	r.order = r.order[:0]
	for _, sl := range slides {
		if sl.Visible {
			r.order = append(r.order, sl)
		}
	}
	slices.SortStableFunc(r.order, func(a, b *carousel.Slide) int {
		return cmp.Compare(a.Position.Z, b.Position.Z)
	})

	op := &ebiten.DrawTrianglesOptions{}
	op.Filter = ebiten.FilterLinear

	for _, sl := range r.order {
		tex := r.TextureFor(sl.Index)
		if !r.buildVertices(sl, tex) {
			continue
		}
		src := whiteImage()
		if tex != nil {
			src = tex.Image
		}
		screen.DrawTriangles(r.vertices, sl.Mesh.Indices, src, op)
	}
}

// buildVertices 填充 r.vertices；任意顶点无法投影时返回 false
func (r *SlideRenderer) buildVertices(sl *carousel.Slide, tex *Texture) bool {
	m := sl.Mesh
	if cap(r.vertices) < len(m.Displaced) {
		r.vertices = make([]ebiten.Vertex, len(m.Displaced))
	}
	r.vertices = r.vertices[:len(m.Displaced)]

	for i, p := range m.Displaced {
		world := p.Scale(sl.Scale).RotateXYZ(sl.Rotation).Add(sl.Position)
		normal := m.Normals[i].RotateXYZ(sl.Rotation)

		sx, sy, _, ok := r.camera.Project(world)
		if !ok {
			return false
		}

		cr, cg, cb := r.lighting.Shade(world, normal)
		v := &r.vertices[i]
		v.DstX, v.DstY = float32(sx), float32(sy)
		if tex != nil {
			v.SrcX, v.SrcY = tex.Src(m.UVs[i])
		} else {
			cr, cg, cb = tint(cr, cg, cb, r.untextured)
			v.SrcX, v.SrcY = 1.5, 1.5
		}
		v.ColorR, v.ColorG, v.ColorB, v.ColorA = cr, cg, cb, 1
	}
	return true
}
