// Package fx holds frame-based visual effects shared by the graphical front end.
package fx

import (
	"image/color"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Fade blends between two colors over a fixed duration.
type Fade struct {
	from, to color.RGBA
	tween    *gween.Tween
	t        float32
	done     bool
}

// NewFade starts a fade from one color to another. A non-positive duration
// finishes immediately.
func NewFade(from, to color.RGBA, seconds float64) *Fade {
	f := &Fade{from: from, to: to}
	if seconds <= 0 {
		f.t, f.done = 1, true
		return f
	}
	f.tween = gween.New(0, 1, float32(seconds), ease.OutQuad)
	return f
}

// Still returns a finished fade resting on c.
func Still(c color.RGBA) *Fade {
	return NewFade(c, c, 0)
}

// Update advances the fade by dt seconds.
func (f *Fade) Update(dt float64) {
	if f.done {
		return
	}
	f.t, f.done = f.tween.Update(float32(dt))
	if f.done {
		f.t = 1
	}
}

// Retarget starts a new fade from the current color.
func (f *Fade) Retarget(to color.RGBA, seconds float64) *Fade {
	return NewFade(f.Color(), to, seconds)
}

// Color returns the current blended color.
func (f *Fade) Color() color.RGBA {
	return Lerp(f.from, f.to, f.t)
}

// Progress returns how far the fade has run, from 0 to 1.
func (f *Fade) Progress() float32 { return f.t }

// Done reports whether the fade reached its target.
func (f *Fade) Done() bool { return f.done }

// Lerp interpolates each channel of a and b. t is clamped to [0, 1].
func Lerp(a, b color.RGBA, t float32) color.RGBA {
	if t <= 0 {
		return a
	}
	if t >= 1 {
		return b
	}
	mix := func(x, y uint8) uint8 {
		return uint8(float32(x) + (float32(y)-float32(x))*t + 0.5)
	}
	return color.RGBA{
		R: mix(a.R, b.R),
		G: mix(a.G, b.G),
		B: mix(a.B, b.B),
		A: mix(a.A, b.A),
	}
}

// WithAlpha returns c with its alpha scaled by a in [0, 1].
// Channels are premultiplied as image/color expects.
func WithAlpha(c color.RGBA, a float32) color.RGBA {
	if a >= 1 {
		return c
	}
	if a <= 0 {
		return color.RGBA{}
	}
	return color.RGBA{
		R: uint8(float32(c.R) * a),
		G: uint8(float32(c.G) * a),
		B: uint8(float32(c.B) * a),
		A: uint8(float32(c.A) * a),
	}
}
