package telemetry

import (
	"log/slog"
	"time"

	"github.com/pthm-cable/meshgrid/mesh"
)

// Phases of a session tick. The first five come from mesh.Grid.StepObserved.
const (
	PhasePin        = mesh.PhasePin
	PhaseIntegrate  = mesh.PhaseIntegrate
	PhaseRelax      = mesh.PhaseRelax
	PhaseCollisions = mesh.PhaseCollisions
	PhaseFlatten    = mesh.PhaseFlatten
	PhaseOpacity    = "opacity"
	PhaseTelemetry  = "telemetry"
)

// tickPhases lists phases in tick order for logging.
var tickPhases = []string{
	PhasePin, PhaseIntegrate, PhaseRelax, PhaseCollisions,
	PhaseFlatten, PhaseOpacity, PhaseTelemetry,
}

// TickPhases returns the phase names in tick order.
func TickPhases() []string {
	return append([]string(nil), tickPhases...)
}

// PerfSample holds timing data for a single tick.
type PerfSample struct {
	TickDuration time.Duration
	Phases       map[string]time.Duration
}

// PerfCollector tracks tick timing over a rolling window of samples.
// It satisfies mesh.PhaseObserver.
type PerfCollector struct {
	samples     []PerfSample
	next        int
	filled      int
	phases      map[string]time.Duration
	tickStart   time.Time
	phaseStart  time.Time
	activePhase string

	// Frame timing (for graphics mode)
	lastFrame     time.Time
	frameDuration time.Duration
}

// NewPerfCollector creates a collector averaging over windowSize ticks.
func NewPerfCollector(windowSize int) *PerfCollector {
	if windowSize < 1 {
		windowSize = 60
	}
	return &PerfCollector{
		samples: make([]PerfSample, windowSize),
		phases:  make(map[string]time.Duration),
	}
}

// StartTick begins timing a new tick.
func (p *PerfCollector) StartTick() {
	p.tickStart = time.Now()
	p.phases = make(map[string]time.Duration)
	p.activePhase = ""
}

// StartPhase closes the running phase, if any, and starts timing phase.
// A phase entered twice in one tick accumulates.
func (p *PerfCollector) StartPhase(phase string) {
	now := time.Now()
	p.closePhase(now)
	p.phaseStart = now
	p.activePhase = phase
}

func (p *PerfCollector) closePhase(now time.Time) {
	if p.activePhase != "" {
		p.phases[p.activePhase] += now.Sub(p.phaseStart)
	}
}

// EndTick finishes timing the current tick and records the sample.
func (p *PerfCollector) EndTick() {
	now := time.Now()
	p.closePhase(now)
	p.activePhase = ""

	p.samples[p.next] = PerfSample{
		TickDuration: now.Sub(p.tickStart),
		Phases:       p.phases,
	}
	p.next = (p.next + 1) % len(p.samples)
	if p.filled < len(p.samples) {
		p.filled++
	}
}

// RecordFrame records frame timing for graphics mode.
func (p *PerfCollector) RecordFrame() {
	now := time.Now()
	if !p.lastFrame.IsZero() {
		p.frameDuration = now.Sub(p.lastFrame)
	}
	p.lastFrame = now
}

// PerfStats holds aggregated performance statistics.
type PerfStats struct {
	AvgTickDuration time.Duration
	MinTickDuration time.Duration
	MaxTickDuration time.Duration

	// Average duration and share of tick time per phase
	PhaseAvg map[string]time.Duration
	PhasePct map[string]float64

	TicksPerSecond float64

	// Frame timing (graphics mode)
	FrameDuration time.Duration
	FPS           float64
}

// Stats computes aggregated statistics over the current window.
func (p *PerfCollector) Stats() PerfStats {
	stats := PerfStats{
		PhaseAvg:      make(map[string]time.Duration),
		PhasePct:      make(map[string]float64),
		FrameDuration: p.frameDuration,
	}
	if p.frameDuration > 0 {
		stats.FPS = float64(time.Second) / float64(p.frameDuration)
	}
	if p.filled == 0 {
		return stats
	}

	var total time.Duration
	phaseSum := make(map[string]time.Duration)
	for i := 0; i < p.filled; i++ {
		s := p.samples[i]
		total += s.TickDuration
		if i == 0 || s.TickDuration < stats.MinTickDuration {
			stats.MinTickDuration = s.TickDuration
		}
		if s.TickDuration > stats.MaxTickDuration {
			stats.MaxTickDuration = s.TickDuration
		}
		for phase, d := range s.Phases {
			phaseSum[phase] += d
		}
	}

	stats.AvgTickDuration = total / time.Duration(p.filled)
	for phase, sum := range phaseSum {
		avg := sum / time.Duration(p.filled)
		stats.PhaseAvg[phase] = avg
		if stats.AvgTickDuration > 0 {
			stats.PhasePct[phase] = float64(avg) / float64(stats.AvgTickDuration) * 100
		}
	}
	if stats.AvgTickDuration > 0 {
		stats.TicksPerSecond = float64(time.Second) / float64(stats.AvgTickDuration)
	}
	return stats
}

// LogStats logs performance statistics.
func (s PerfStats) LogStats() {
	attrs := []any{
		"avg_tick_us", s.AvgTickDuration.Microseconds(),
		"min_tick_us", s.MinTickDuration.Microseconds(),
		"max_tick_us", s.MaxTickDuration.Microseconds(),
		"ticks_per_sec", int(s.TicksPerSecond),
	}
	if s.FPS > 0 {
		attrs = append(attrs, "fps", int(s.FPS))
	}
	for _, phase := range tickPhases {
		if pct, ok := s.PhasePct[phase]; ok && pct > 0.1 {
			attrs = append(attrs, phase+"_pct", float64(int(pct*10))/10)
		}
	}
	slog.Info("perf", attrs...)
}

// LogValue implements slog.LogValuer for structured logging.
func (s PerfStats) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.Int64("avg_tick_us", s.AvgTickDuration.Microseconds()),
		slog.Int64("min_tick_us", s.MinTickDuration.Microseconds()),
		slog.Int64("max_tick_us", s.MaxTickDuration.Microseconds()),
		slog.Float64("ticks_per_sec", s.TicksPerSecond),
	}
	if s.FPS > 0 {
		attrs = append(attrs, slog.Float64("fps", s.FPS))
	}
	for _, phase := range tickPhases {
		if pct, ok := s.PhasePct[phase]; ok {
			attrs = append(attrs, slog.Float64(phase+"_pct", pct))
		}
	}
	return slog.GroupValue(attrs...)
}

// PerfStatsCSV is a flat struct for CSV export of performance stats.
type PerfStatsCSV struct {
	WindowEnd     int64   `csv:"window_end"`
	AvgTickUS     int64   `csv:"avg_tick_us"`
	MinTickUS     int64   `csv:"min_tick_us"`
	MaxTickUS     int64   `csv:"max_tick_us"`
	TicksPerSec   float64 `csv:"ticks_per_sec"`
	FPS           float64 `csv:"fps"`
	PinPct        float64 `csv:"pin_pct"`
	IntegratePct  float64 `csv:"integrate_pct"`
	RelaxPct      float64 `csv:"relax_pct"`
	CollisionsPct float64 `csv:"collisions_pct"`
	FlattenPct    float64 `csv:"flatten_pct"`
	OpacityPct    float64 `csv:"opacity_pct"`
	TelemetryPct  float64 `csv:"telemetry_pct"`
}

// ToCSV converts PerfStats to a flat CSV-friendly struct.
func (s PerfStats) ToCSV(windowEnd int64) PerfStatsCSV {
	return PerfStatsCSV{
		WindowEnd:     windowEnd,
		AvgTickUS:     s.AvgTickDuration.Microseconds(),
		MinTickUS:     s.MinTickDuration.Microseconds(),
		MaxTickUS:     s.MaxTickDuration.Microseconds(),
		TicksPerSec:   s.TicksPerSecond,
		FPS:           s.FPS,
		PinPct:        s.PhasePct[PhasePin],
		IntegratePct:  s.PhasePct[PhaseIntegrate],
		RelaxPct:      s.PhasePct[PhaseRelax],
		CollisionsPct: s.PhasePct[PhaseCollisions],
		FlattenPct:    s.PhasePct[PhaseFlatten],
		OpacityPct:    s.PhasePct[PhaseOpacity],
		TelemetryPct:  s.PhasePct[PhaseTelemetry],
	}
}
