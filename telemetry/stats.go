// Package telemetry collects windowed grid statistics and timing, and writes
// them as structured logs and CSV.
package telemetry

import (
	"log/slog"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// WindowStats holds aggregated grid statistics for a time window.
type WindowStats struct {
	WindowStartTick int64   `csv:"-"`
	WindowEndTick   int64   `csv:"window_end"`
	SimTimeSec      float64 `csv:"sim_time"`

	Points int `csv:"points"`
	Edges  int `csv:"edges"`

	// Edge strain (length - spacing) / spacing, sampled at window end
	StrainMean float64 `csv:"strain_mean"`
	StrainStd  float64 `csv:"strain_std"`
	StrainP10  float64 `csv:"strain_p10"`
	StrainP50  float64 `csv:"strain_p50"`
	StrainP90  float64 `csv:"strain_p90"`
	StrainMax  float64 `csv:"strain_max"`

	// Per-tick displacement, sampled at window end
	SpeedMean float64 `csv:"speed_mean"`
	SpeedMax  float64 `csv:"speed_max"`

	// Peaks over every tick in the window
	PeakStrain float64 `csv:"peak_strain"`
	PeakSpeed  float64 `csv:"peak_speed"`

	// Mean point opacity and share of points above half opacity
	OpacityMean     float64 `csv:"opacity_mean"`
	VisibleFraction float64 `csv:"visible_fraction"`

	// Largest distance of a pinned point from its anchor; zero when healthy
	PinDrift float64 `csv:"pin_drift"`
}

// Percentile calculates the p-th percentile of a sorted slice.
// p should be in [0, 1]. Returns 0 if slice is empty.
func Percentile(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 0 {
		return 0
	}
	if p <= 0 {
		return sorted[0]
	}
	if p >= 1 {
		return sorted[n-1]
	}

	// Linear interpolation between closest ranks
	idx := p * float64(n-1)
	lo := int(idx)
	if lo+1 >= n {
		return sorted[n-1]
	}
	frac := idx - float64(lo)
	return sorted[lo]*(1-frac) + sorted[lo+1]*frac
}

// Distribution summarises a sample.
type Distribution struct {
	Mean, Std     float64
	P10, P50, P90 float64
	Max           float64
}

// Describe computes mean, population standard deviation, percentiles and max.
// values is not modified.
func Describe(values []float64) Distribution {
	if len(values) == 0 {
		return Distribution{}
	}

	mean, std := stat.PopMeanStdDev(values, nil)
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	return Distribution{
		Mean: mean,
		Std:  std,
		P10:  Percentile(sorted, 0.10),
		P50:  Percentile(sorted, 0.50),
		P90:  Percentile(sorted, 0.90),
		Max:  floats.Max(values),
	}
}

// OpacitySummary returns the mean opacity and the fraction of points whose
// opacity is above one half.
func OpacitySummary(opacities []float32) (mean, visible float64) {
	if len(opacities) == 0 {
		return 0, 0
	}
	vals := make([]float64, len(opacities))
	var n int
	for i, o := range opacities {
		vals[i] = float64(o)
		if o > 0.5 {
			n++
		}
	}
	return stat.Mean(vals, nil), float64(n) / float64(len(opacities))
}

// LogValue implements slog.LogValuer for structured logging.
func (s WindowStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int64("window_start", s.WindowStartTick),
		slog.Int64("window_end", s.WindowEndTick),
		slog.Float64("sim_time", s.SimTimeSec),
		slog.Int("points", s.Points),
		slog.Int("edges", s.Edges),
		slog.Float64("strain_mean", s.StrainMean),
		slog.Float64("strain_std", s.StrainStd),
		slog.Float64("strain_p50", s.StrainP50),
		slog.Float64("strain_max", s.StrainMax),
		slog.Float64("speed_mean", s.SpeedMean),
		slog.Float64("speed_max", s.SpeedMax),
		slog.Float64("peak_strain", s.PeakStrain),
		slog.Float64("peak_speed", s.PeakSpeed),
		slog.Float64("opacity_mean", s.OpacityMean),
		slog.Float64("visible_fraction", s.VisibleFraction),
		slog.Float64("pin_drift", s.PinDrift),
	)
}

// LogStats logs the window stats using slog.
func (s WindowStats) LogStats() {
	slog.Info("stats", "window", s)
}
