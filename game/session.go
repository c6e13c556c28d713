// Package game drives a mesh grid session: ticking, pointer smoothing,
// per-point opacity and telemetry. It has no graphics dependency; the renderer
// package draws a Session and main feeds it input.
package game

import (
	"fmt"
	"log/slog"

	"github.com/pthm-cable/meshgrid/config"
	"github.com/pthm-cable/meshgrid/mesh"
	"github.com/pthm-cable/meshgrid/motion"
	"github.com/pthm-cable/meshgrid/telemetry"
)

// Options configures a session beyond what the config file holds.
type Options struct {
	LogStats       bool    // log window stats via slog
	StatsWindowSec float64 // overrides telemetry.stats_window when > 0
	OutputDir      string  // CSV and config snapshot directory (empty = disabled)
	SnapshotDir    string  // grid snapshots saved on bookmarks (empty = disabled)
	StepsPerUpdate int     // ticks per UpdateHeadless call
	ResumePath     string  // snapshot to continue from (empty = fresh grid)

	// StatsCallback, if set, receives every closed stats window
	StatsCallback func(telemetry.WindowStats)
}

// Session owns one grid and everything derived from it each tick.
type Session struct {
	cfg  *config.Config
	grid *mesh.Grid

	tick    int64
	simTime float64
	paused  bool

	// Smoothed pointer chasing the raw target, both in simulation units
	pointer       mesh.Vec2
	pointerTarget mesh.Vec2
	follow        follower

	inner, outer  float64
	opacities     []float32
	waveIntensity float64

	stepsPerUpdate int

	// Telemetry
	perf      *telemetry.PerfCollector
	collector *telemetry.Collector
	output    *telemetry.OutputManager
	logStats  bool
	onStats   func(telemetry.WindowStats)

	bookmarks   *telemetry.BookmarkDetector
	snapshotDir string
}

// NewSession builds the grid described by cfg and opens telemetry output.
func NewSession(cfg *config.Config, opts Options) (*Session, error) {
	grid, err := mesh.New(cfg.Grid.Mesh())
	if err != nil {
		return nil, fmt.Errorf("creating grid: %w", err)
	}

	window := cfg.Telemetry.StatsWindow
	if opts.StatsWindowSec > 0 {
		window = opts.StatsWindowSec
	}
	steps := opts.StepsPerUpdate
	if steps < 1 {
		steps = 1
	}

	output, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		return nil, err
	}
	if err := output.WriteConfig(cfg); err != nil {
		output.Close()
		return nil, fmt.Errorf("writing config snapshot: %w", err)
	}

	s := &Session{
		cfg:            cfg,
		grid:           grid,
		follow:         newFollower(cfg.Pointer, cfg.Sim.DT),
		inner:          cfg.Visibility.Inner,
		outer:          cfg.Visibility.Outer,
		waveIntensity:  motion.ClampWaveIntensity(cfg.Render.WaveIntensity),
		stepsPerUpdate: steps,
		perf:           telemetry.NewPerfCollector(cfg.Telemetry.PerfWindow),
		collector:      telemetry.NewCollector(window, cfg.Sim.DT),
		output:         output,
		logStats:       opts.LogStats,
		onStats:        opts.StatsCallback,
		bookmarks:      telemetry.NewBookmarkDetector(10),
		snapshotDir:    opts.SnapshotDir,
	}
	s.opacities = grid.Opacities(s.pointer, s.inner, s.outer, nil)

	logGrid("grid created", grid.Config())
	slog.Debug("telemetry window", "ticks", s.collector.WindowDurationTicks())

	if opts.ResumePath != "" {
		if err := s.LoadSnapshot(opts.ResumePath); err != nil {
			output.Close()
			return nil, fmt.Errorf("resuming from %s: %w", opts.ResumePath, err)
		}
	}
	return s, nil
}

// Reset replaces the grid with a fresh one built from c. Time and pointer
// carry on; the telemetry window restarts so peaks from the old grid are
// dropped. On error the current grid is kept.
func (s *Session) Reset(c mesh.Config) error {
	grid, err := mesh.New(c)
	if err != nil {
		return err
	}
	s.grid = grid
	s.opacities = grid.Opacities(s.pointer, s.inner, s.outer, s.opacities)
	s.collector.Rebase(s.tick)
	logGrid("grid reset", c)
	return nil
}

func logGrid(msg string, c mesh.Config) {
	slog.Info(msg,
		"cols", c.Cols,
		"rows", c.Rows,
		"spacing", c.Spacing,
		"stiffness", c.Stiffness,
		"iterations", c.Iterations,
		"collision_radius", c.CollisionRadius,
		"pinned", c.Pinned,
	)
}

// Advance runs one tick at elapsed time t (seconds, monotonically increasing).
func (s *Session) Advance(t float64) {
	s.simTime = t
	s.perf.StartTick()

	s.pointer = s.follow.step(s.pointer, s.pointerTarget)

	s.grid.StepObserved(t, s.perf)

	s.perf.StartPhase(telemetry.PhaseOpacity)
	s.opacities = s.grid.Opacities(s.pointer, s.inner, s.outer, s.opacities)

	s.perf.StartPhase(telemetry.PhaseTelemetry)
	s.tick++
	s.collector.Observe(s.grid)
	s.flushTelemetry()

	s.perf.EndTick()
}

// UpdateHeadless advances StepsPerUpdate ticks of Sim.DT each, unless paused.
func (s *Session) UpdateHeadless() {
	if s.paused {
		return
	}
	for i := 0; i < s.stepsPerUpdate; i++ {
		s.Advance(s.simTime + s.cfg.Sim.DT)
	}
}

// UpdateFrame advances one tick by a wall-clock frame duration, unless paused.
func (s *Session) UpdateFrame(frameSec float64) {
	s.perf.RecordFrame()
	if s.paused || frameSec <= 0 {
		return
	}
	s.Advance(s.simTime + frameSec)
}

// Close flushes and closes telemetry output.
func (s *Session) Close() error {
	return s.output.Close()
}

// Grid returns the simulated grid.
func (s *Session) Grid() *mesh.Grid { return s.grid }

// Tick returns the number of completed ticks.
func (s *Session) Tick() int64 { return s.tick }

// SimTime returns the time passed to the last tick.
func (s *Session) SimTime() float64 { return s.simTime }

// Opacities returns one opacity per point from the last tick.
func (s *Session) Opacities() []float32 { return s.opacities }

// Pointer returns the smoothed pointer position.
func (s *Session) Pointer() mesh.Vec2 { return s.pointer }

// Paused reports whether ticking is suspended.
func (s *Session) Paused() bool { return s.paused }

// TogglePause suspends or resumes ticking.
func (s *Session) TogglePause() bool {
	s.paused = !s.paused
	return s.paused
}

// Perf returns current timing statistics.
func (s *Session) Perf() telemetry.PerfStats { return s.perf.Stats() }
