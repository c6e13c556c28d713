package telemetry

import "github.com/pthm-cable/meshgrid/mesh"

// Collector tracks grid health over fixed windows of ticks and produces WindowStats.
type Collector struct {
	windowDurationTicks int64

	windowStartTick int64

	// Peaks seen since the window started
	peakStrain float64
	peakSpeed  float64

	// Scratch buffers reused between ticks
	strains []float64
	speeds  []float64
}

// NewCollector creates a new stats collector.
// windowDurationSec: how long each stats window lasts in simulation seconds
// dt: nominal seconds per tick (used to size the window in ticks)
func NewCollector(windowDurationSec, dt float64) *Collector {
	ticks := int64(windowDurationSec / dt)
	if ticks < 1 {
		ticks = 1
	}
	return &Collector{windowDurationTicks: ticks}
}

// Rebase starts a fresh window at tick, dropping any peaks seen so far.
// Call when the grid or the tick counter is replaced.
func (c *Collector) Rebase(tick int64) {
	c.windowStartTick = tick
	c.peakStrain = 0
	c.peakSpeed = 0
}

// Observe records per-tick peaks. Call once after every grid step.
func (c *Collector) Observe(g *mesh.Grid) {
	c.strains = g.EdgeStrains(c.strains)
	c.speeds = g.Speeds(c.speeds)
	if s := mesh.PeakStrain(c.strains); s > c.peakStrain {
		c.peakStrain = s
	}
	for _, v := range c.speeds {
		if v > c.peakSpeed {
			c.peakSpeed = v
		}
	}
}

// ShouldFlush returns true if enough ticks have passed to flush the window.
func (c *Collector) ShouldFlush(currentTick int64) bool {
	return currentTick-c.windowStartTick >= c.windowDurationTicks
}

// Flush samples the grid, produces WindowStats and resets the window.
// simTime is the session clock at currentTick; frame-driven sessions advance
// it by variable steps. opacities may be nil when no pointer falloff is being
// computed.
func (c *Collector) Flush(currentTick int64, simTime float64, g *mesh.Grid, opacities []float32) WindowStats {
	c.strains = g.EdgeStrains(c.strains)
	c.speeds = g.Speeds(c.speeds)
	strain := Describe(c.strains)
	speed := Describe(c.speeds)
	opMean, visible := OpacitySummary(opacities)

	stats := WindowStats{
		WindowStartTick: c.windowStartTick,
		WindowEndTick:   currentTick,
		SimTimeSec:      simTime,

		Points: g.Len(),
		Edges:  g.EdgeCount(),

		StrainMean: strain.Mean,
		StrainStd:  strain.Std,
		StrainP10:  strain.P10,
		StrainP50:  strain.P50,
		StrainP90:  strain.P90,
		StrainMax:  strain.Max,

		SpeedMean: speed.Mean,
		SpeedMax:  speed.Max,

		PeakStrain: c.peakStrain,
		PeakSpeed:  c.peakSpeed,

		OpacityMean:     opMean,
		VisibleFraction: visible,

		PinDrift: g.MaxPinDrift(),
	}

	c.Rebase(currentTick)
	return stats
}

// WindowDurationTicks returns the number of ticks per window.
func (c *Collector) WindowDurationTicks() int64 {
	return c.windowDurationTicks
}
