package game

import (
	"fmt"
	"log/slog"

	"github.com/pthm-cable/meshgrid/mesh"
	"github.com/pthm-cable/meshgrid/telemetry"
)

// Snapshot captures the grid, clock and pointer. b may be nil.
func (s *Session) Snapshot(b *telemetry.Bookmark) *telemetry.Snapshot {
	state, points := telemetry.CaptureGrid(s.grid)
	vel := s.follow.velocity()
	return &telemetry.Snapshot{
		Version:        telemetry.SnapshotVersion,
		Grid:           state,
		Tick:           s.tick,
		SimTime:        s.simTime,
		PointerX:       s.pointer.X,
		PointerY:       s.pointer.Y,
		PointerTargetX: s.pointerTarget.X,
		PointerTargetY: s.pointerTarget.Y,
		PointerVelX:    vel.X,
		PointerVelY:    vel.Y,
		Points:         points,
		Bookmark:       b,
	}
}

// Restore resumes from a snapshot. On error the session is unchanged.
func (s *Session) Restore(snap *telemetry.Snapshot) error {
	grid, err := snap.RestoreGrid()
	if err != nil {
		return fmt.Errorf("restoring snapshot: %w", err)
	}
	s.grid = grid
	s.tick = snap.Tick
	s.simTime = snap.SimTime
	s.pointer = mesh.Vec2{X: snap.PointerX, Y: snap.PointerY}
	s.pointerTarget = mesh.Vec2{X: snap.PointerTargetX, Y: snap.PointerTargetY}
	s.follow.setVelocity(mesh.Vec2{X: snap.PointerVelX, Y: snap.PointerVelY})
	s.opacities = grid.Opacities(s.pointer, s.inner, s.outer, s.opacities)
	s.collector.Rebase(s.tick)
	logGrid("grid restored", grid.Config())
	return nil
}

// LoadSnapshot reads a snapshot file and resumes from it.
func (s *Session) LoadSnapshot(path string) error {
	snap, err := telemetry.LoadSnapshot(path)
	if err != nil {
		return err
	}
	if err := s.Restore(snap); err != nil {
		return err
	}
	slog.Info("resumed from snapshot", "path", path, "tick", s.tick)
	return nil
}

// saveBookmarkSnapshot writes a snapshot for b when a snapshot directory is set.
func (s *Session) saveBookmarkSnapshot(b telemetry.Bookmark) {
	if s.snapshotDir == "" {
		return
	}
	path, err := telemetry.SaveSnapshot(s.Snapshot(&b), s.snapshotDir)
	if err != nil {
		slog.Error("failed to save snapshot", "error", err)
		return
	}
	slog.Info("snapshot saved", "path", path, "bookmark", string(b.Type))
}

// SaveSnapshot writes an unbookmarked snapshot into dir, or into the
// session's snapshot directory when dir is empty.
func (s *Session) SaveSnapshot(dir string) (string, error) {
	if dir == "" {
		dir = s.snapshotDir
	}
	if dir == "" {
		return "", fmt.Errorf("no snapshot directory configured")
	}
	return telemetry.SaveSnapshot(s.Snapshot(nil), dir)
}
