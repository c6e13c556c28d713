// Package motion holds small scalar helpers used to animate the point grid:
// interpolation for cursor smoothing, size and pulse modulation, and the
// bounded wave intensity control.
package motion

import "math"

// Wave intensity limits and adjustment step.
const (
	MinWaveIntensity  = 0
	MaxWaveIntensity  = 0.6
	WaveIntensityStep = 0.05
)

// Lerp interpolates linearly from a to b.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// SizeFromBand maps a band position in [0, 1] to a size factor that peaks at
// the middle of the band and falls to zero at both edges.
func SizeFromBand(band float64) float64 {
	x := math.Max(0, math.Min(1, band))
	return 4 * x * (1 - x)
}

// Pulse returns a slow oscillation in [-1, 1] whose phase is set by seed.
func Pulse(seed, t float64) float64 {
	return math.Sin(t*0.4 + seed*2*math.Pi)
}

// ClampWaveIntensity limits v to [MinWaveIntensity, MaxWaveIntensity].
func ClampWaveIntensity(v float64) float64 {
	return math.Max(MinWaveIntensity, math.Min(MaxWaveIntensity, v))
}

// AdjustWaveIntensity moves current one step in the sign of direction.
func AdjustWaveIntensity(current, direction float64) float64 {
	return ClampWaveIntensity(current + WaveIntensityStep*direction)
}

// Seed returns a stable pseudo-random value in [0, 1) for a lattice cell.
func Seed(col, row int) float64 {
	v := math.Sin(float64(col+1)*12.9898+float64(row+1)*78.233) * 43758.5453
	return v - math.Floor(v)
}

// Band returns the normalized position of row among rows, 0 for a single row.
func Band(row, rows int) float64 {
	if rows < 2 {
		return 0
	}
	return float64(row) / float64(rows-1)
}

// PointAlpha combines a visibility opacity with a floor and a pulse of the
// given intensity. The result is in [0, 1].
func PointAlpha(opacity, floor, intensity, pulse float64) float64 {
	a := math.Max(floor, opacity) * (1 + intensity*pulse)
	return math.Max(0, math.Min(1, a))
}
