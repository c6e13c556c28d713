package main

import (
	"flag"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/meshgrid/config"
	"github.com/pthm-cable/meshgrid/game"
	"github.com/pthm-cable/meshgrid/monitor"
	"github.com/pthm-cable/meshgrid/viewer"
)

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	headless := flag.Bool("headless", false, "Run without graphics")
	tui := flag.Bool("tui", false, "Show a terminal dashboard in headless mode")
	logStats := flag.Bool("log-stats", false, "Output window stats via slog")
	statsWindow := flag.Float64("stats-window", 0, "Stats window size in seconds (0 = use config)")
	outputDir := flag.String("output-dir", "", "Output directory for CSV logs and config snapshot")
	snapshotDir := flag.String("snapshot-dir", "", "Directory for grid snapshots")
	resume := flag.String("resume", "", "Resume from a snapshot file")
	maxTicks := flag.Int64("max-ticks", 0, "Stop after N ticks (0 = unlimited)")
	stepsPerUpdate := flag.Int("steps-per-update", 1, "Ticks per update call in headless mode")

	flag.Parse()

	// Initialize config before anything else
	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()

	// Set up slog (JSON to stdout for structured logging). The terminal
	// dashboard owns stdout, so its logs go to run.log in the output dir.
	logOut, closeLog := logDestination(*headless && *tui, *outputDir)
	defer closeLog()
	logger := slog.New(slog.NewJSONHandler(logOut, nil))
	slog.SetDefault(logger)

	opts := game.Options{
		LogStats:       *logStats,
		StatsWindowSec: *statsWindow,
		OutputDir:      *outputDir,
		SnapshotDir:    *snapshotDir,
		StepsPerUpdate: *stepsPerUpdate,
		ResumePath:     *resume,
	}

	if *headless {
		// Headless mode - fixed timestep, no raylib needed
		s, err := game.NewSession(cfg, opts)
		if err != nil {
			slog.Error("failed to start session", "error", err)
			os.Exit(1)
		}
		defer closeSession(s)

		if *tui {
			if err := monitor.Run(s, cfg, *maxTicks); err != nil {
				slog.Error("monitor failed", "error", err)
				closeSession(s)
				os.Exit(1)
			}
			return
		}

		slog.Info("starting headless simulation",
			"dt", cfg.Sim.DT,
			"max_ticks", *maxTicks,
			"steps_per_update", *stepsPerUpdate,
		)

		for {
			s.UpdateHeadless()

			if *maxTicks > 0 && s.Tick() >= *maxTicks {
				slog.Info("max ticks reached", "tick", s.Tick())
				return
			}
		}
	}

	// Graphical mode
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(int32(cfg.Screen.Width), int32(cfg.Screen.Height), "Mesh Grid")
	defer rl.CloseWindow()

	rl.SetTargetFPS(int32(cfg.Screen.TargetFPS))

	s, err := game.NewSession(cfg, opts)
	if err != nil {
		slog.Error("failed to start session", "error", err)
		rl.CloseWindow()
		os.Exit(1)
	}
	defer closeSession(s)

	viewer.New(s, cfg).Run(*maxTicks)
}

func logDestination(toFile bool, outputDir string) (io.Writer, func()) {
	if !toFile {
		return os.Stdout, func() {}
	}
	if outputDir == "" {
		return io.Discard, func() {}
	}
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return io.Discard, func() {}
	}
	f, err := os.Create(filepath.Join(outputDir, "run.log"))
	if err != nil {
		return io.Discard, func() {}
	}
	return f, func() { f.Close() }
}

func closeSession(s *game.Session) {
	if err := s.Close(); err != nil {
		slog.Error("closing telemetry output", "error", err)
	}
}
