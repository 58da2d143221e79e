package config

import (
	"math"
	"testing"
)

func TestDefaultCarouselSettingsValid(t *testing.T) {
	s := DefaultCarouselSettings()
	if err := s.Validate(); err != nil {
		t.Fatalf("default settings invalid: %v", err)
	}
	if s.MaxDistortion != 2.0 {
		t.Errorf("MaxDistortion: got %v, want 2.0", s.MaxDistortion)
	}
	if s.TextFadeEnd-s.TextFadeStart != 0.5 {
		t.Errorf("fade window: got %v, want 0.5", s.TextFadeEnd-s.TextFadeStart)
	}
}

func TestCarouselSettingsValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*CarouselSettings)
		wantErr bool
	}{
		{"默认值", func(*CarouselSettings) {}, false},
		{"平滑为0", func(s *CarouselSettings) { s.Smoothing = 0 }, true},
		{"衰减大于1", func(s *CarouselSettings) { s.DistortionDecay = 1.2 }, true},
		{"最大扭曲为0", func(s *CarouselSettings) { s.MaxDistortion = 0 }, true},
		{"灵敏度为负", func(s *CarouselSettings) { s.TouchSensitivity = -1 }, true},
		{"淡出区间倒置", func(s *CarouselSettings) { s.TextFadeEnd = 0.1 }, true},
		{"模糊为负", func(s *CarouselSettings) { s.TextMaxBlur = -1 }, true},
		{"NaN 速率", func(s *CarouselSettings) { s.SlideLerp = math.NaN() }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := DefaultCarouselSettings()
			tt.mutate(s)
			err := s.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestTunablesPointAtFields(t *testing.T) {
	s := DefaultCarouselSettings()
	var found bool
	for _, tn := range s.Tunables() {
		if tn.Name != "maxDistortion" {
			continue
		}
		found = true
		tn.Nudge(10)
		want := 2.0 + 10*tn.Step()
		if math.Abs(s.MaxDistortion-want) > 1e-9 {
			t.Errorf("MaxDistortion after nudge: got %v, want %v", s.MaxDistortion, want)
		}
		tn.Nudge(-100000)
		if s.MaxDistortion != tn.Min {
			t.Errorf("Nudge should clamp to Min %v, got %v", tn.Min, s.MaxDistortion)
		}
	}
	if !found {
		t.Fatal("maxDistortion tunable not found")
	}
}

func TestCloneIsIndependent(t *testing.T) {
	s := DefaultCarouselSettings()
	c := s.Clone()
	c.Smoothing = 0.9
	if s.Smoothing == 0.9 {
		t.Error("Clone shares memory with original")
	}
}
