package mesh

import (
	"math"
	"testing"
)

func TestEdgeStrainsAtRest(t *testing.T) {
	g, err := New(Config{Cols: 5, Rows: 4, Spacing: 0.1, Bound: 1, Stiffness: 1, Iterations: 1})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	strains := g.EdgeStrains(nil)
	if len(strains) != g.EdgeCount() {
		t.Fatalf("got %d strains, want %d", len(strains), g.EdgeCount())
	}
	if g.EdgeCount() != 4*4+5*3 {
		t.Errorf("EdgeCount = %d", g.EdgeCount())
	}
	for i, s := range strains {
		if math.Abs(s) > 1e-9 {
			t.Errorf("edge %d strain %v at rest", i, s)
		}
	}

	for i, v := range g.Speeds(nil) {
		if v != 0 {
			t.Errorf("point %d speed %v at rest", i, v)
		}
	}
}

func TestMaxPinDriftBeforeFirstTick(t *testing.T) {
	g, err := New(Config{Cols: 3, Rows: 3, Spacing: 0.2, Bound: 1, Stiffness: 1, Iterations: 1, Pinned: true})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	// The lattice starts inside the anchors; the first tick snaps them.
	if g.MaxPinDrift() == 0 {
		t.Error("expected drift before the first tick")
	}
	g.Step(0)
	if d := g.MaxPinDrift(); d != 0 {
		t.Errorf("drift after tick = %v", d)
	}
}

func TestPeakStrainCountsCompression(t *testing.T) {
	tests := []struct {
		name    string
		strains []float64
		want    float64
	}{
		{"empty", nil, 0},
		{"stretched", []float64{0.1, 0.3, -0.05}, 0.3},
		{"compressed", []float64{0.1, -0.4, 0.2}, 0.4},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := PeakStrain(tc.strains); got != tc.want {
				t.Errorf("PeakStrain(%v) = %v, want %v", tc.strains, got, tc.want)
			}
		})
	}
}

func TestPeakStrainOnSquashedGrid(t *testing.T) {
	// Anchors two units apart with a rest length of four compress every edge.
	g, err := New(Config{Cols: 2, Rows: 2, Spacing: 4, Bound: 1, Stiffness: 1, Iterations: 1, Pinned: true})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	g.Step(0)

	strains := g.EdgeStrains(nil)
	var maxSigned float64
	for _, s := range strains {
		maxSigned = math.Max(maxSigned, s)
	}
	if peak := PeakStrain(strains); peak <= maxSigned {
		t.Errorf("PeakStrain = %v, want above largest signed strain %v", peak, maxSigned)
	}
}
