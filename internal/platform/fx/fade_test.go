package fx

import (
	"image/color"
	"testing"
)

var (
	black = color.RGBA{0, 0, 0, 255}
	white = color.RGBA{255, 255, 255, 255}
)

func TestLerp(t *testing.T) {
	tests := []struct {
		t    float32
		want color.RGBA
	}{
		{-1, black},
		{0, black},
		{0.5, color.RGBA{128, 128, 128, 255}},
		{1, white},
		{2, white},
	}
	for _, tt := range tests {
		if got := Lerp(black, white, tt.t); got != tt.want {
			t.Errorf("Lerp(black, white, %v) = %v, want %v", tt.t, got, tt.want)
		}
	}
}

func TestFadeRunsToTarget(t *testing.T) {
	f := NewFade(black, white, 0.5)
	if f.Done() || f.Color() != black {
		t.Fatalf("new fade should start at the source color, got %v", f.Color())
	}

	f.Update(0.25)
	mid := f.Color()
	if mid == black || mid == white {
		t.Errorf("fade should be between colors halfway, got %v", mid)
	}

	for i := 0; i < 10; i++ {
		f.Update(0.1)
	}
	if !f.Done() || f.Color() != white {
		t.Errorf("fade should finish on the target, done=%v color=%v", f.Done(), f.Color())
	}
}

func TestFadeZeroDuration(t *testing.T) {
	f := NewFade(black, white, 0)
	if !f.Done() || f.Color() != white {
		t.Errorf("zero-length fade should be done on the target, got %v", f.Color())
	}
	f.Update(1)
	if f.Color() != white {
		t.Error("Update after done should not change the color")
	}
}

func TestRetargetStartsFromCurrent(t *testing.T) {
	f := NewFade(black, white, 1)
	f.Update(0.5)
	cur := f.Color()

	g := f.Retarget(black, 1)
	if g.Color() != cur {
		t.Errorf("retargeted fade starts at %v, want %v", g.Color(), cur)
	}
}

func TestWithAlpha(t *testing.T) {
	if got := WithAlpha(white, 1); got != white {
		t.Errorf("WithAlpha(1) = %v", got)
	}
	if got := WithAlpha(white, 0); got != (color.RGBA{}) {
		t.Errorf("WithAlpha(0) = %v", got)
	}
	half := WithAlpha(white, 0.5)
	if half.A != 127 || half.R != half.A {
		t.Errorf("WithAlpha(0.5) = %v, want premultiplied 127", half)
	}
}
