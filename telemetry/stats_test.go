package telemetry

import (
	"math"
	"testing"
)

func TestPercentile(t *testing.T) {
	tests := []struct {
		name   string
		sorted []float64
		p      float64
		want   float64
	}{
		{"empty slice", []float64{}, 0.5, 0},
		{"single element", []float64{5.0}, 0.5, 5.0},
		{"p0", []float64{1, 2, 3, 4, 5}, 0.0, 1.0},
		{"p100", []float64{1, 2, 3, 4, 5}, 1.0, 5.0},
		{"p50 odd", []float64{1, 2, 3, 4, 5}, 0.5, 3.0},
		{"p50 even", []float64{1, 2, 3, 4}, 0.5, 2.5},
		{"p10", []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, 0.1, 1.9},
		{"p90", []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, 0.9, 9.1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Percentile(tt.sorted, tt.p)
			if math.Abs(got-tt.want) > 0.001 {
				t.Errorf("Percentile(%v, %v) = %v, want %v", tt.sorted, tt.p, got, tt.want)
			}
		})
	}
}

func TestDescribe(t *testing.T) {
	values := []float64{0.4, 0.1, 0.3, 0.2, 0.5, 0.6, 0.9, 0.8, 0.7, 1.0}
	d := Describe(values)

	if math.Abs(d.Mean-0.55) > 1e-9 {
		t.Errorf("mean = %v, want 0.55", d.Mean)
	}
	// Population std of 0.1..1.0 in steps of 0.1.
	if math.Abs(d.Std-math.Sqrt(0.0825)) > 1e-9 {
		t.Errorf("std = %v, want %v", d.Std, math.Sqrt(0.0825))
	}
	if math.Abs(d.P10-0.19) > 0.001 || math.Abs(d.P50-0.55) > 0.001 || math.Abs(d.P90-0.91) > 0.001 {
		t.Errorf("percentiles = %v %v %v", d.P10, d.P50, d.P90)
	}
	if d.Max != 1.0 {
		t.Errorf("max = %v, want 1", d.Max)
	}
	if values[0] != 0.4 {
		t.Error("Describe reordered its input")
	}
}

func TestDescribeEmpty(t *testing.T) {
	if d := Describe(nil); d != (Distribution{}) {
		t.Errorf("empty sample should describe as zeros, got %+v", d)
	}
}

func TestOpacitySummary(t *testing.T) {
	mean, visible := OpacitySummary([]float32{1, 1, 0.25, 0})
	if math.Abs(mean-0.5625) > 1e-9 {
		t.Errorf("mean = %v, want 0.5625", mean)
	}
	if visible != 0.5 {
		t.Errorf("visible = %v, want 0.5", visible)
	}

	if m, v := OpacitySummary(nil); m != 0 || v != 0 {
		t.Errorf("empty summary = %v, %v", m, v)
	}
}
