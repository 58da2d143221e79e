package scenes

import (
	"time"

	"github.com/decker502/carousel/pkg/utils"
)

// handlePointer 把统一后的指针事件转发给轮播模型
func (s *GalleryScene) handlePointer(events []utils.PointerEvent, now time.Duration) {
	for _, e := range events {
		x := float64(e.X)
		switch e.Kind {
		case utils.PointerBegin:
			if e.Touch {
				s.carousel.BeginTouch(x, now)
			} else {
				s.carousel.BeginDrag(x, now)
			}
		case utils.PointerMove:
			s.carousel.Move(x, now)
		case utils.PointerEnd:
			s.carousel.Release(now)
		case utils.PointerCancel:
			s.carousel.Cancel()
		case utils.PointerWheel:
			// 垂直滚动不属于轮播，直接忽略
			s.carousel.Wheel(e.WheelX, e.WheelY, now)
		}
	}
}
