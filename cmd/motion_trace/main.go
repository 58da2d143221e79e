// Command motion_trace replays a scripted gesture through the carousel motion
// model without opening a window and prints the resulting per-frame state.
//
// Usage:
//
//	go run ./cmd/motion_trace --gesture drag --distance 300 --duration 100ms
//	go run ./cmd/motion_trace --gesture wheel --distance 120 --frames 120 --every 5
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand/v2"
	"os"
	"text/tabwriter"
	"time"

	"github.com/decker502/carousel/pkg/carousel"
	"github.com/decker502/carousel/pkg/config"
)

const fps = 60

var (
	configPath = flag.String("config", config.DefaultGalleryConfigPath, "gallery config providing geometry and settings")
	gesture    = flag.String("gesture", "drag", "gesture to replay: drag, touch or wheel")
	distance   = flag.Float64("distance", 300, "total pointer travel in pixels (per wheel event for wheel)")
	duration   = flag.Duration("duration", 100*time.Millisecond, "gesture duration")
	steps      = flag.Int("steps", 6, "number of move (or wheel) events in the gesture")
	frames     = flag.Int("frames", 180, "number of frames to simulate")
	every      = flag.Int("every", 10, "print every n-th frame")
	seed       = flag.Uint64("seed", 1, "random seed for slide phases")
	slide      = flag.Int("slide", 0, "slide whose position is traced")
)

// event is one scripted input applied before the frame at or after At.
type event struct {
	At    time.Duration
	Apply func(c *carousel.Carousel, now time.Duration)
}

func main() {
	flag.Parse()

	settings := config.DefaultCarouselSettings()
	geometry := config.DefaultGalleryConfig().Geometry
	if gallery, err := config.LoadGalleryConfig(*configPath); err != nil {
		log.Printf("[motion_trace] Warning: %v (using defaults)", err)
	} else {
		settings, geometry = gallery.Settings, gallery.Geometry
	}

	script, err := buildScript(*gesture, *distance, *duration, *steps)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		flag.Usage()
		os.Exit(2)
	}

	c, err := carousel.New(settings, geometry, rand.New(rand.NewPCG(*seed, 0)))
	if err != nil {
		log.Fatalf("failed to create carousel: %v", err)
	}
	if *slide < 0 || *slide >= len(c.Slides()) {
		log.Fatalf("slide %d out of range [0, %d)", *slide, len(c.Slides()))
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(w, "frame\tms\tcurrent\ttarget\tspeed\tdistortion\ttarget_d\tpeak\tslide_x\tscrolling\t")

	frameTime := time.Second / fps
	next := 0
	for f := 0; f <= *frames; f++ {
		now := time.Duration(f) * frameTime
		for next < len(script) && script[next].At <= now {
			script[next].Apply(c, now)
			next++
		}
		c.Tick(1.0/fps, now)

		if f%*every != 0 && f != *frames {
			continue
		}
		st := c.State()
		sl := c.Slides()[*slide]
		fmt.Fprintf(w, "%d\t%d\t%.4f\t%.4f\t%.5f\t%.4f\t%.4f\t%.4f\t%.4f\t%t\t\n",
			f, now.Milliseconds(),
			st.CurrentPosition, st.TargetPosition, st.AutoScrollSpeed,
			st.CurrentDistortion, st.TargetDistortion, st.PeakVelocity,
			sl.Position.X, c.IsScrolling(now))
	}
	w.Flush()
}

// buildScript turns the gesture flags into timestamped carousel input.
// The gesture starts at the first frame; moves are spread evenly over d.
func buildScript(kind string, dist float64, d time.Duration, n int) ([]event, error) {
	if n <= 0 {
		return nil, fmt.Errorf("steps must be > 0, got %d", n)
	}
	at := func(i int) time.Duration { return time.Duration(i) * d / time.Duration(n) }

	switch kind {
	case "drag", "touch":
		begin := (*carousel.Carousel).BeginDrag
		if kind == "touch" {
			begin = (*carousel.Carousel).BeginTouch
		}
		script := []event{{At: 0, Apply: func(c *carousel.Carousel, now time.Duration) { begin(c, 0, now) }}}
		for i := 1; i <= n; i++ {
			x := dist * float64(i) / float64(n)
			script = append(script, event{At: at(i), Apply: func(c *carousel.Carousel, now time.Duration) { c.Move(x, now) }})
		}
		script = append(script, event{At: d, Apply: func(c *carousel.Carousel, now time.Duration) { c.Release(now) }})
		return script, nil

	case "wheel":
		var script []event
		for i := 0; i < n; i++ {
			script = append(script, event{At: at(i), Apply: func(c *carousel.Carousel, now time.Duration) { c.Wheel(dist, 0, now) }})
		}
		return script, nil
	}
	return nil, fmt.Errorf("unknown gesture %q", kind)
}
