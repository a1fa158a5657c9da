package core

import (
	"math"
	"testing"
)

const eps = 1e-9

func TestVecNormalize(t *testing.T) {
	tests := []struct {
		name     string
		in       Vec2
		expected Vec2
	}{
		{"axis aligned", V(5, 0), V(1, 0)},
		{"diagonal", V(3, 4), V(0.6, 0.8)},
		{"negative", V(0, -2), V(0, -1)},
		{"zero stays zero", V(0, 0), V(0, 0)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.in.Normalize()
			if math.Abs(got.X-tc.expected.X) > eps || math.Abs(got.Y-tc.expected.Y) > eps {
				t.Errorf("Normalize(%v) = %v, expected %v", tc.in, got, tc.expected)
			}
		})
	}
}

func TestDist(t *testing.T) {
	if d := Dist(V(0, 0), V(3, 4)); math.Abs(d-5) > eps {
		t.Errorf("Dist() = %f, expected 5", d)
	}
	if d := Dist(V(10, 10), V(10, 10)); d != 0 {
		t.Errorf("Dist() of same point = %f, expected 0", d)
	}
}

func TestHeading(t *testing.T) {
	h := Heading(V(0, 0), V(0, 10))
	if math.Abs(h.X) > eps || math.Abs(h.Y-1) > eps {
		t.Errorf("Heading() = %v, expected (0, 1)", h)
	}

	// Coincident points fall back to +X like atan2(0, 0)
	h = Heading(V(3, 3), V(3, 3))
	if math.Abs(h.X-1) > eps || math.Abs(h.Y) > eps {
		t.Errorf("Heading() of coincident points = %v, expected (1, 0)", h)
	}
}

func TestVecArithmetic(t *testing.T) {
	v := V(1, 2).Add(V(3, 4)).Sub(V(1, 1)).Scale(2)
	if v != V(6, 10) {
		t.Errorf("arithmetic chain = %v, expected (6, 10)", v)
	}
	if !V(0, 0).IsZero() || V(0, 1).IsZero() {
		t.Error("IsZero() mismatch")
	}
	if a := V(0, 1).Angle(); math.Abs(a-math.Pi/2) > eps {
		t.Errorf("Angle() = %f, expected pi/2", a)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
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
		{3.0, 15.0, 5.0, 10.0}, // inverted bounds collapse to the midpoint
	}

	for _, tc := range tests {
		result := ClampF(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}
}
