package carousel

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/decker502/carousel/pkg/config"
)

const frameDT = 1.0 / 60.0

var frame = time.Second / 60

// testGeometry 默认几何，网格细分降低以加快测试
func testGeometry() config.SlideGeometry {
	g := config.DefaultGalleryConfig().Geometry
	g.SegmentsX = 8
	g.SegmentsY = 4
	return g
}

func newTestCarousel(t *testing.T) *Carousel {
	t.Helper()
	c, err := New(config.DefaultCarouselSettings(), testGeometry(), rand.New(rand.NewPCG(1, 2)))
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	return c
}

// fling 模拟一次 +300px、100ms 的拖拽并释放，返回释放时间
func fling(c *Carousel, start time.Duration) time.Duration {
	c.BeginDrag(0, start)
	for i := 1; i <= 6; i++ {
		c.Move(float64(i)*50, start+time.Duration(i)*100*time.Millisecond/6)
	}
	end := start + 100*time.Millisecond
	c.Release(end)
	return end
}

// run 以 60fps 推进 n 帧，返回结束时间
func run(c *Carousel, now time.Duration, n int) time.Duration {
	for i := 0; i < n; i++ {
		now += frame
		c.Tick(frameDT, now)
	}
	return now
}
