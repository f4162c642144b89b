// Package core provides fundamental types and utilities shared by the engine
// and the front ends. It contains no external dependencies (especially no
// Bubble Tea or Ebitengine) to keep game logic pure and testable.
package core

import "math"

// Collision radii and extents, in grid units.
const (
	// PlayerRadius is the radius of the player circle.
	PlayerRadius = 0.3
	// PickupRadius is the radius of keys and the goal.
	PickupRadius = 0.3
	// BlockHalfSize is half the edge length of a wall or door box.
	BlockHalfSize = 0.5
)

// Vec2 is a point or direction in grid units.
type Vec2 struct {
	X, Y float64
}

// V is a convenience constructor for Vec2.
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v multiplied by s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Len returns the euclidean length of v.
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Normalize returns v scaled to unit length. The zero vector is returned as is.
func (v Vec2) Normalize() Vec2 {
	l := v.Len()
	if l == 0 {
		return v
	}
	return Vec2{X: v.X / l, Y: v.Y / l}
}

// Floor returns the integer cell containing v.
func (v Vec2) Floor() (int, int) {
	return int(math.Floor(v.X)), int(math.Floor(v.Y))
}

// Distance returns the distance between a and b.
func Distance(a, b Vec2) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

// Circle is a circle in grid units.
type Circle struct {
	Center Vec2
	R      float64
}

// Box is an axis-aligned square described by its center and half edge.
type Box struct {
	Center Vec2
	Half   float64
}

// ClosestPoint returns the point of b nearest to p.
func (b Box) ClosestPoint(p Vec2) Vec2 {
	return Vec2{
		X: ClampF(p.X, b.Center.X-b.Half, b.Center.X+b.Half),
		Y: ClampF(p.Y, b.Center.Y-b.Half, b.Center.Y+b.Half),
	}
}

// CirclesOverlap reports whether two circles touch or overlap.
// Touching (distance equal to the radius sum) counts as overlap.
func CirclesOverlap(a, b Circle) bool {
	return Distance(a.Center, b.Center) <= a.R+b.R
}

// CircleBoxOverlap reports whether circle c touches or overlaps box b.
func CircleBoxOverlap(c Circle, b Box) bool {
	closest := b.ClosestPoint(c.Center)
	return Distance(c.Center, closest) <= c.R
}

// Rect represents an integer axis-aligned rectangle used for screen layout.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
