package core

import (
	"math"
	"testing"
)

func TestCircleBoxOverlap(t *testing.T) {
	wall := Box{Center: V(5, 5), Half: BlockHalfSize}

	tests := []struct {
		name     string
		player   Vec2
		expected bool
	}{
		{"exact overlap", V(5, 5), true},
		{"inside box", V(5.4, 4.7), true},
		{"touching from left", V(4.3, 5), true},
		{"beyond right edge", V(5.8+1e-6, 5), false},
		{"beyond left edge", V(4.2-1e-6, 5), false},
		{"beyond top edge", V(5, 4.2-1e-6), false},
		{"beyond bottom edge", V(5, 5.8+1e-6), false},
		{"near corner outside", V(5.75, 5.75), false},
		{"near corner inside", V(5.65, 5.65), true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := Circle{Center: tc.player, R: PlayerRadius}
			if got := CircleBoxOverlap(c, wall); got != tc.expected {
				t.Errorf("CircleBoxOverlap(%v) = %v, expected %v", tc.player, got, tc.expected)
			}
		})
	}
}

func TestCircleBoxUsesPlayerRadiusOnly(t *testing.T) {
	// 0.5 + 0.45 is inside the pickup threshold but outside the wall radius.
	wall := Box{Center: V(0, 0), Half: BlockHalfSize}
	c := Circle{Center: V(0.95, 0), R: PlayerRadius}
	if CircleBoxOverlap(c, wall) {
		t.Error("wall collision must use the 0.3 player radius")
	}
}

func TestCirclesOverlap(t *testing.T) {
	origin := Circle{Center: V(0, 0), R: PickupRadius}

	tests := []struct {
		name     string
		other    Vec2
		expected bool
	}{
		{"same center", V(0, 0), true},
		{"exactly 0.6 on x", V(0.6, 0), true},
		{"exactly 0.6 on y", V(0, 0.6), true},
		{"just beyond on x", V(0.6+1e-9, 0), false},
		{"just beyond on y", V(0, -0.6-1e-9), false},
		{"diagonal inside", V(0.4, 0.4), true},
		{"diagonal outside", V(0.45, 0.45), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			other := Circle{Center: tc.other, R: PlayerRadius}
			if got := CirclesOverlap(origin, other); got != tc.expected {
				t.Errorf("CirclesOverlap(%v) = %v, expected %v", tc.other, got, tc.expected)
			}
			// Also test symmetry
			if got := CirclesOverlap(other, origin); got != tc.expected {
				t.Errorf("CirclesOverlap (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestVec2Normalize(t *testing.T) {
	n := V(3, 4).Normalize()
	if math.Abs(n.X-0.6) > 1e-12 || math.Abs(n.Y-0.8) > 1e-12 {
		t.Errorf("Normalize() = %v, expected (0.6, 0.8)", n)
	}

	zero := V(0, 0).Normalize()
	if zero != (Vec2{}) {
		t.Errorf("Normalize() of zero vector = %v, expected zero", zero)
	}
}

func TestVec2Floor(t *testing.T) {
	tests := []struct {
		v      Vec2
		cx, cy int
	}{
		{V(2.5, 2.5), 2, 2},
		{V(0.99, 3.0), 0, 3},
		{V(-0.2, 1.1), -1, 1},
	}

	for _, tc := range tests {
		cx, cy := tc.v.Floor()
		if cx != tc.cx || cy != tc.cy {
			t.Errorf("Floor(%v) = (%d, %d), expected (%d, %d)", tc.v, cx, cy, tc.cx, tc.cy)
		}
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Contains(tc.x, tc.y); got != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.expected)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, got, tc.expected)
		}
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{15.5, 0.0, 10.0, 10.0},
	}

	for _, tc := range tests {
		if got := ClampF(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, got, tc.expected)
		}
	}
}
