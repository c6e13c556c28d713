package mesh

import (
	"math"
	"testing"
)

func TestClamp(t *testing.T) {
	tests := []struct {
		name  string
		in    Vec2
		bound float64
		want  Vec2
	}{
		{"inside", Vec2{0.5, -0.25}, 1, Vec2{0.5, -0.25}},
		{"left of bounds", Vec2{-2, 0}, 1, Vec2{-1, 0}},
		{"above bounds", Vec2{0.5, 2}, 1, Vec2{0.5, 1}},
		{"both axes", Vec2{3, -3}, 0.5, Vec2{0.5, -0.5}},
		{"on edge", Vec2{1, -1}, 1, Vec2{1, -1}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Clamp(tc.in, tc.bound)
			if got != tc.want {
				t.Errorf("Clamp(%v, %v) = %v, want %v", tc.in, tc.bound, got, tc.want)
			}
			if math.Abs(got.X) > tc.bound || math.Abs(got.Y) > tc.bound {
				t.Errorf("Clamp(%v, %v) = %v escapes bounds", tc.in, tc.bound, got)
			}
			if again := Clamp(got, tc.bound); again != got {
				t.Errorf("Clamp not idempotent: %v -> %v", got, again)
			}
		})
	}
}

func TestResolvePairCollision(t *testing.T) {
	tests := []struct {
		name   string
		a, b   Vec2
		radius float64
	}{
		{"horizontal overlap", Vec2{0, 0}, Vec2{0.01, 0}, 0.05},
		{"diagonal overlap", Vec2{0.1, 0.1}, Vec2{0.12, 0.115}, 0.08},
		{"vertical overlap", Vec2{-0.3, 0.2}, Vec2{-0.3, 0.19}, 0.2},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			a, b := ResolvePairCollision(tc.a, tc.b, tc.radius)

			if d := Distance(a, b); math.Abs(d-tc.radius) > 1e-9 {
				t.Errorf("separation = %v, want %v", d, tc.radius)
			}

			midBefore := Vec2{(tc.a.X + tc.b.X) / 2, (tc.a.Y + tc.b.Y) / 2}
			midAfter := Vec2{(a.X + b.X) / 2, (a.Y + b.Y) / 2}
			if Distance(midBefore, midAfter) > 1e-12 {
				t.Errorf("midpoint moved from %v to %v", midBefore, midAfter)
			}
		})
	}
}

func TestResolvePairCollisionSeparated(t *testing.T) {
	a, b := Vec2{0, 0}, Vec2{0.2, 0}

	for _, r := range []float64{0, 0.1, 0.2} {
		gotA, gotB := ResolvePairCollision(a, b, r)
		if gotA != a || gotB != b {
			t.Errorf("radius %v: pair moved to %v, %v", r, gotA, gotB)
		}
	}
}

func TestResolvePairCollisionCoincident(t *testing.T) {
	p := Vec2{0.3, -0.4}
	a, b := ResolvePairCollision(p, p, 0.1)

	if math.IsNaN(a.X) || math.IsNaN(a.Y) || math.IsNaN(b.X) || math.IsNaN(b.Y) {
		t.Fatalf("coincident pair produced NaN: %v, %v", a, b)
	}
	if a != p || b != p {
		t.Errorf("coincident pair moved to %v, %v", a, b)
	}
}
