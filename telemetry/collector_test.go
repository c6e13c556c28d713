package telemetry

import (
	"testing"

	"github.com/pthm-cable/meshgrid/mesh"
)

func TestCollectorWindow(t *testing.T) {
	c := NewCollector(0.5, 0.1)

	if c.WindowDurationTicks() != 5 {
		t.Fatalf("window = %d ticks, want 5", c.WindowDurationTicks())
	}
	if c.ShouldFlush(4) {
		t.Error("flushed before window elapsed")
	}
	if !c.ShouldFlush(5) {
		t.Error("did not flush when window elapsed")
	}
}

func TestCollectorFlush(t *testing.T) {
	g, err := mesh.New(mesh.DefaultConfig())
	if err != nil {
		t.Fatalf("mesh.New: %v", err)
	}
	c := NewCollector(1, 1.0/60)

	var tick int64
	for ; tick < 60; tick++ {
		g.Step(float64(tick) / 60)
		c.Observe(g)
	}

	opacities := g.Opacities(mesh.Vec2{}, 0.4, 0.8, nil)
	stats := c.Flush(tick, 1.25, g, opacities)

	if stats.WindowStartTick != 0 || stats.WindowEndTick != 60 {
		t.Errorf("window = [%d, %d]", stats.WindowStartTick, stats.WindowEndTick)
	}
	if stats.SimTimeSec != 1.25 {
		t.Errorf("sim time = %v, want the session clock 1.25", stats.SimTimeSec)
	}
	if stats.Points != g.Len() || stats.Edges != g.EdgeCount() {
		t.Errorf("points=%d edges=%d", stats.Points, stats.Edges)
	}
	if stats.PinDrift != 0 {
		t.Errorf("pin drift = %v", stats.PinDrift)
	}
	// The anchors stretch the default lattice vertically.
	if stats.PeakStrain <= 0 {
		t.Error("expected positive peak strain")
	}
	if stats.PeakSpeed < stats.SpeedMax {
		t.Errorf("peak speed %v below final max %v", stats.PeakSpeed, stats.SpeedMax)
	}
	if stats.OpacityMean <= 0 || stats.OpacityMean > 1 {
		t.Errorf("opacity mean = %v", stats.OpacityMean)
	}

	next := c.Flush(tick, 2, g, nil)
	if next.WindowStartTick != 60 {
		t.Errorf("window did not advance: start=%d", next.WindowStartTick)
	}
	if next.PeakStrain != 0 || next.PeakSpeed != 0 {
		t.Error("peaks not reset after flush")
	}
}

func TestCollectorRebase(t *testing.T) {
	g, err := mesh.New(mesh.DefaultConfig())
	if err != nil {
		t.Fatalf("mesh.New: %v", err)
	}
	c := NewCollector(0.5, 0.1)
	g.Step(0)
	c.Observe(g)

	c.Rebase(100)
	if c.ShouldFlush(104) {
		t.Error("flushed before a rebased window elapsed")
	}
	if !c.ShouldFlush(105) {
		t.Error("did not flush after a rebased window elapsed")
	}

	stats := c.Flush(105, 10.5, g, nil)
	if stats.WindowStartTick != 100 {
		t.Errorf("window start = %d, want 100", stats.WindowStartTick)
	}
	if stats.PeakStrain != 0 || stats.PeakSpeed != 0 {
		t.Errorf("peaks survived rebase: strain %v speed %v", stats.PeakStrain, stats.PeakSpeed)
	}
}
