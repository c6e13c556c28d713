package motion

import (
	"math"
	"testing"
)

func TestLerp(t *testing.T) {
	tests := []struct {
		a, b float64
	}{
		{0, 10},
		{-3, 7.5},
		{4, -4},
	}

	for _, tc := range tests {
		if got := Lerp(tc.a, tc.b, 0); got != tc.a {
			t.Errorf("Lerp(%v, %v, 0) = %v", tc.a, tc.b, got)
		}
		if got := Lerp(tc.a, tc.b, 1); got != tc.b {
			t.Errorf("Lerp(%v, %v, 1) = %v", tc.a, tc.b, got)
		}

		increasing := tc.b > tc.a
		prev := tc.a
		for i := 1; i <= 20; i++ {
			v := Lerp(tc.a, tc.b, float64(i)/20)
			if increasing && v < prev || !increasing && v > prev {
				t.Fatalf("Lerp(%v, %v) not monotonic at step %d", tc.a, tc.b, i)
			}
			prev = v
		}
	}

	if got := Lerp(0, 10, 0.1); math.Abs(got-1) > 1e-9 {
		t.Errorf("Lerp(0, 10, 0.1) = %v, want 1", got)
	}
}

func TestSizeFromBand(t *testing.T) {
	tests := []struct {
		band, want float64
	}{
		{0, 0},
		{1, 0},
		{0.5, 1},
		{0.25, 0.75},
		{-2, 0},
		{3, 0},
	}

	for _, tc := range tests {
		if got := SizeFromBand(tc.band); math.Abs(got-tc.want) > 1e-9 {
			t.Errorf("SizeFromBand(%v) = %v, want %v", tc.band, got, tc.want)
		}
	}
}

func TestPulse(t *testing.T) {
	if a, b := Pulse(0, 0), Pulse(0, 10); a == b {
		t.Errorf("Pulse did not vary over time: %v", a)
	}
	if got := Pulse(0.25, 0); math.Abs(got-1) > 1e-9 {
		t.Errorf("Pulse(0.25, 0) = %v, want 1", got)
	}
	for i := 0; i < 50; i++ {
		v := Pulse(float64(i)*0.137, float64(i))
		if v < -1 || v > 1 {
			t.Fatalf("Pulse out of range: %v", v)
		}
	}
}

func TestWaveIntensity(t *testing.T) {
	tests := []struct {
		name               string
		current, direction float64
		want               float64
	}{
		{"step up", 0.2, 1, 0.25},
		{"step down", 0.2, -1, 0.15},
		{"clamped at top", 0.6, 1, 0.6},
		{"clamped at bottom", 0, -1, 0},
		{"no direction", 0.3, 0, 0.3},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := AdjustWaveIntensity(tc.current, tc.direction)
			if math.Abs(got-tc.want) > 1e-9 {
				t.Errorf("AdjustWaveIntensity(%v, %v) = %v, want %v", tc.current, tc.direction, got, tc.want)
			}
		})
	}

	if got := ClampWaveIntensity(5); got != MaxWaveIntensity {
		t.Errorf("ClampWaveIntensity(5) = %v", got)
	}
}

func TestSeedStableAndInRange(t *testing.T) {
	for col := 0; col < 20; col++ {
		for row := 0; row < 20; row++ {
			s := Seed(col, row)
			if s < 0 || s >= 1 {
				t.Fatalf("Seed(%d, %d) = %v, want [0, 1)", col, row, s)
			}
			if again := Seed(col, row); again != s {
				t.Fatalf("Seed(%d, %d) not stable: %v vs %v", col, row, s, again)
			}
		}
	}
	if Seed(0, 0) == Seed(1, 0) {
		t.Error("neighbouring seeds should differ")
	}
}

func TestBand(t *testing.T) {
	tests := []struct {
		row, rows int
		want      float64
	}{
		{0, 1, 0},
		{0, 5, 0},
		{2, 5, 0.5},
		{4, 5, 1},
	}
	for _, tc := range tests {
		if got := Band(tc.row, tc.rows); math.Abs(got-tc.want) > 1e-12 {
			t.Errorf("Band(%d, %d) = %v, want %v", tc.row, tc.rows, got, tc.want)
		}
	}
}

func TestPointAlpha(t *testing.T) {
	tests := []struct {
		name                             string
		opacity, floor, intensity, pulse float64
		want                             float64
	}{
		{"visible no pulse", 1, 0.08, 0, 0.7, 1},
		{"floor applies", 0, 0.08, 0, 0, 0.08},
		{"pulse dims", 0.5, 0, 0.2, -1, 0.4},
		{"clamped high", 1, 0, 0.6, 1, 1},
		{"never negative", 0.5, 0, 2, -1, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := PointAlpha(tc.opacity, tc.floor, tc.intensity, tc.pulse)
			if math.Abs(got-tc.want) > 1e-12 {
				t.Errorf("PointAlpha = %v, want %v", got, tc.want)
			}
		})
	}
}
