package scenes

import (
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// EmptyScene 画廊无法创建时使用的空场景，只填充背景色
type EmptyScene struct {
	Background color.Color
}

// Update 空场景没有逻辑
func (s *EmptyScene) Update(deltaTime float64, now time.Duration) {}

// Draw 填充背景色
func (s *EmptyScene) Draw(screen *ebiten.Image) {
	if s.Background != nil {
		screen.Fill(s.Background)
	}
}
