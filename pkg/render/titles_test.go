package render

import (
	"math"
	"testing"
)

func TestFadeOpacity(t *testing.T) {
	tests := []struct {
		name string
		dist float64
		want float64
	}{
		{"中心", 0, 1},
		{"淡出起点内", 0.69, 1},
		{"淡出起点", 0.7, 1},
		{"中点", 0.95, 0.5},
		{"淡出终点", 1.2, 0},
		{"远处", 3, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FadeOpacity(tt.dist, 0.7, 1.2); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("FadeOpacity(%v) = %v, want %v", tt.dist, got, tt.want)
			}
		})
	}

	// 区间退化时不除零
	if got := FadeOpacity(1, 1, 1); got != 0 {
		t.Errorf("degenerate range: FadeOpacity = %v, want 0", got)
	}
}

func TestSlideNumber(t *testing.T) {
	tests := map[int]string{0: "01", 4: "05", 9: "10", 11: "12"}
	for index, want := range tests {
		if got := SlideNumber(index); got != want {
			t.Errorf("SlideNumber(%d) = %q, want %q", index, got, want)
		}
	}
}
