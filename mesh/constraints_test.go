package mesh

import (
	"math"
	"testing"
)

func TestApplyConstraint(t *testing.T) {
	const spacing = 0.2

	tests := []struct {
		name             string
		aPinned, bPinned bool
		wantA, wantB     float64
	}{
		{"both free split evenly", false, false, 0.1, 0.3},
		{"a pinned", true, false, 0, 0.2},
		{"b pinned", false, true, 0.2, 0.4},
		{"both pinned", true, true, 0, 0.4},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			a := &Point{X: 0}
			b := &Point{X: 0.4}

			applyConstraint(a, b, spacing, 1, tc.aPinned, tc.bPinned)

			if math.Abs(a.X-tc.wantA) > 1e-12 || math.Abs(b.X-tc.wantB) > 1e-12 {
				t.Errorf("got a=%v b=%v, want a=%v b=%v", a.X, b.X, tc.wantA, tc.wantB)
			}
			if a.Y != 0 || b.Y != 0 {
				t.Errorf("correction leaked into y: a=%v b=%v", a.Y, b.Y)
			}
		})
	}
}

func TestApplyConstraintPartialStiffness(t *testing.T) {
	a := &Point{X: 0}
	b := &Point{X: 0.4}

	// Half the error is corrected, split between both ends.
	applyConstraint(a, b, 0.2, 0.5, false, false)

	if d := b.X - a.X; math.Abs(d-0.3) > 1e-12 {
		t.Errorf("distance after relax = %v, want 0.3", d)
	}
}

func TestApplyConstraintCoincident(t *testing.T) {
	a := &Point{X: 0.1, Y: 0.1}
	b := &Point{X: 0.1, Y: 0.1}

	applyConstraint(a, b, 0.2, 1, false, false)

	if math.IsNaN(a.X) || math.IsNaN(b.X) {
		t.Fatal("coincident points produced NaN")
	}
	if *a != *b {
		t.Errorf("coincident points moved apart: %+v %+v", a, b)
	}
}

func TestRelaxClampsToBounds(t *testing.T) {
	g, err := New(Config{
		Cols: 3, Rows: 3, Spacing: 0.5, Bound: 0.4,
		Stiffness: 0.1, Iterations: 3,
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	g.relax()

	for i, p := range g.Points() {
		if math.Abs(p.X) > 0.4 || math.Abs(p.Y) > 0.4 {
			t.Errorf("point %d outside bounds: (%v, %v)", i, p.X, p.Y)
		}
	}
}

func TestRelaxConverges(t *testing.T) {
	g, err := New(Config{
		Cols: 4, Rows: 1, Spacing: 0.2, Bound: 1,
		Stiffness: 1, Iterations: 50,
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	// Stretch the chain to twice its rest length.
	for i := range g.points {
		g.points[i].X *= 2
	}

	g.relax()

	for _, s := range g.EdgeStrains(nil) {
		if math.Abs(s) > 1e-6 {
			t.Errorf("residual strain %v after relax", s)
		}
	}
}

func TestIntegrateVerlet(t *testing.T) {
	g, err := New(Config{Cols: 1, Rows: 1, Spacing: 1, Bound: 1, Stiffness: 1, Iterations: 1})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	g.points[0].PrevX = -0.01

	// sin(0) = 0: the point only coasts.
	g.Step(0)
	p := g.Points()[0]
	if math.Abs(p.X-0.01) > 1e-15 || p.Y != 0 {
		t.Errorf("after coast = (%v, %v), want (0.01, 0)", p.X, p.Y)
	}
	if p.PrevX != 0 || p.PrevY != 0 {
		t.Errorf("previous position = (%v, %v), want origin", p.PrevX, p.PrevY)
	}

	// The forcing peaks here and is applied to both axes alike.
	g.points[0] = Point{}
	g.Step(math.Pi / 2 / forceFrequency)
	p = g.Points()[0]
	if math.Abs(p.X-forceAmplitude) > 1e-12 || math.Abs(p.Y-forceAmplitude) > 1e-12 {
		t.Errorf("forced step = (%v, %v), want (%v, %v)", p.X, p.Y, forceAmplitude, forceAmplitude)
	}
}

func TestIntegrateSkipsPinned(t *testing.T) {
	g, err := New(Config{Cols: 1, Rows: 1, Spacing: 1, Bound: 1, Stiffness: 1, Iterations: 1, Pinned: true})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	g.Step(math.Pi / 2 / forceFrequency)

	if p := g.Points()[0]; p != (Point{X: 0, Y: -1, PrevX: 0, PrevY: -1}) {
		t.Errorf("pinned single point = %+v", p)
	}
}
