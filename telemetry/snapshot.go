package telemetry

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pthm-cable/meshgrid/mesh"
)

// SnapshotVersion is incremented when the format changes.
const SnapshotVersion = 2

// Snapshot holds the complete grid state for resuming a run.
type Snapshot struct {
	Version int `json:"version"`

	Grid GridState `json:"grid"`

	Tick    int64   `json:"tick"`
	SimTime float64 `json:"sim_time"`

	// Smoothed pointer, the target it chases and the follower's velocity
	PointerX       float64 `json:"pointer_x"`
	PointerY       float64 `json:"pointer_y"`
	PointerTargetX float64 `json:"pointer_target_x"`
	PointerTargetY float64 `json:"pointer_target_y"`
	PointerVelX    float64 `json:"pointer_vel_x"`
	PointerVelY    float64 `json:"pointer_vel_y"`

	Points []PointState `json:"points"`

	Bookmark *Bookmark `json:"bookmark,omitempty"`
}

// GridState is the JSON form of mesh.Config.
type GridState struct {
	Cols            int     `json:"cols"`
	Rows            int     `json:"rows"`
	Spacing         float64 `json:"spacing"`
	Bound           float64 `json:"bound"`
	Stiffness       float64 `json:"stiffness"`
	Iterations      int     `json:"iterations"`
	CollisionRadius float64 `json:"collision_radius"`
	Pinned          bool    `json:"pinned"`
}

// PointState holds one point's current and previous position.
type PointState struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	PrevX float64 `json:"prev_x"`
	PrevY float64 `json:"prev_y"`
}

// CaptureGrid fills the grid and point fields of a snapshot from g.
func CaptureGrid(g *mesh.Grid) (GridState, []PointState) {
	c := g.Config()
	state := GridState{
		Cols:            c.Cols,
		Rows:            c.Rows,
		Spacing:         c.Spacing,
		Bound:           c.Bound,
		Stiffness:       c.Stiffness,
		Iterations:      c.Iterations,
		CollisionRadius: c.CollisionRadius,
		Pinned:          c.Pinned,
	}
	points := make([]PointState, g.Len())
	for i, p := range g.Points() {
		points[i] = PointState{X: p.X, Y: p.Y, PrevX: p.PrevX, PrevY: p.PrevY}
	}
	return state, points
}

// MeshConfig converts the saved grid shape back to a mesh.Config.
func (s GridState) MeshConfig() mesh.Config {
	return mesh.Config{
		Cols:            s.Cols,
		Rows:            s.Rows,
		Spacing:         s.Spacing,
		Bound:           s.Bound,
		Stiffness:       s.Stiffness,
		Iterations:      s.Iterations,
		CollisionRadius: s.CollisionRadius,
		Pinned:          s.Pinned,
	}
}

// RestoreGrid rebuilds the grid stored in the snapshot.
func (s *Snapshot) RestoreGrid() (*mesh.Grid, error) {
	if s.Version != SnapshotVersion {
		return nil, fmt.Errorf("snapshot version %d, want %d", s.Version, SnapshotVersion)
	}
	points := make([]mesh.Point, len(s.Points))
	for i, p := range s.Points {
		points[i] = mesh.Point{X: p.X, Y: p.Y, PrevX: p.PrevX, PrevY: p.PrevY}
	}
	return mesh.Restore(s.Grid.MeshConfig(), points)
}

// SaveSnapshot writes a snapshot to disk.
// Returns the filepath where it was saved.
func SaveSnapshot(snapshot *Snapshot, dir string) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create snapshot dir: %w", err)
	}

	name := fmt.Sprintf("snapshot_%d", snapshot.Tick)
	if snapshot.Bookmark != nil {
		// Sanitize bookmark type for filename
		sanitized := strings.ReplaceAll(string(snapshot.Bookmark.Type), " ", "_")
		name = fmt.Sprintf("snapshot_%d_%s", snapshot.Tick, sanitized)
	}
	name += ".json"

	path := filepath.Join(dir, name)

	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal snapshot: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("write snapshot: %w", err)
	}

	return path, nil
}

// LoadSnapshot reads a snapshot from disk.
func LoadSnapshot(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read snapshot: %w", err)
	}

	var snapshot Snapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, fmt.Errorf("unmarshal snapshot: %w", err)
	}

	return &snapshot, nil
}
