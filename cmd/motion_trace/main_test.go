package main

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/decker502/carousel/pkg/carousel"
	"github.com/decker502/carousel/pkg/config"
)

func TestBuildScript(t *testing.T) {
	tests := []struct {
		name    string
		kind    string
		steps   int
		wantLen int
		wantErr bool
	}{
		{"拖拽", "drag", 6, 8, false},
		{"触摸", "touch", 3, 5, false},
		{"滚轮", "wheel", 4, 4, false},
		{"未知手势", "pinch", 4, 0, true},
		{"步数为零", "drag", 0, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			script, err := buildScript(tt.kind, 300, 100*time.Millisecond, tt.steps)
			if (err != nil) != tt.wantErr {
				t.Fatalf("error = %v, wantErr %v", err, tt.wantErr)
			}
			if len(script) != tt.wantLen {
				t.Errorf("len(script) = %d, want %d", len(script), tt.wantLen)
			}
			for i := 1; i < len(script); i++ {
				if script[i].At < script[i-1].At {
					t.Errorf("event %d at %v precedes event %d at %v", i, script[i].At, i-1, script[i-1].At)
				}
			}
		})
	}
}

// TestDragScriptSeedsMomentum 回放拖拽脚本后产生反向惯性
func TestDragScriptSeedsMomentum(t *testing.T) {
	script, err := buildScript("drag", 300, 100*time.Millisecond, 6)
	if err != nil {
		t.Fatal(err)
	}
	c, err := carousel.New(config.DefaultCarouselSettings(), config.DefaultGalleryConfig().Geometry, rand.New(rand.NewPCG(1, 0)))
	if err != nil {
		t.Fatal(err)
	}
	for _, e := range script {
		e.Apply(c, e.At)
	}

	st := c.State()
	if st.TargetPosition != -15 {
		t.Errorf("TargetPosition = %v, want -15", st.TargetPosition)
	}
	if st.AutoScrollSpeed >= 0 {
		t.Errorf("AutoScrollSpeed = %v, want negative", st.AutoScrollSpeed)
	}
}
