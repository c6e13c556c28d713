package game

import "log/slog"

// flushTelemetry closes the stats window when it has elapsed.
func (s *Session) flushTelemetry() {
	if !s.collector.ShouldFlush(s.tick) {
		return
	}

	stats := s.collector.Flush(s.tick, s.simTime, s.grid, s.opacities)
	perfStats := s.perf.Stats()

	if s.logStats {
		stats.LogStats()
		perfStats.LogStats()
	}

	if s.onStats != nil {
		s.onStats(stats)
	}

	if stats.PinDrift != 0 {
		slog.Warn("pinned points drifted", "tick", s.tick, "drift", stats.PinDrift)
	}

	for _, b := range s.bookmarks.Check(stats) {
		b.LogBookmark()
		s.saveBookmarkSnapshot(b)
	}

	if err := s.output.WriteTelemetry(stats); err != nil {
		slog.Error("failed to write telemetry", "error", err)
	}
	if err := s.output.WritePerf(perfStats, stats.WindowEndTick); err != nil {
		slog.Error("failed to write perf", "error", err)
	}
}
