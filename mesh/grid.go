// Package mesh simulates a deformable rectangular grid of points.
//
// Points are Verlet particles joined to their right and lower neighbours by
// distance constraints. The top and bottom rows can be pinned to fixed anchors
// spread across the simulation bounds. A tick integrates free points, relaxes
// the constraints, separates points that came too close and writes the result
// into a flat (x, y, 0) buffer for rendering.
//
// A Grid is owned by a single caller and is not safe for concurrent use.
package mesh

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidConfig is wrapped by every error returned from Config.Validate.
var ErrInvalidConfig = errors.New("mesh: invalid grid config")

// Point is a Verlet particle. Velocity is implicit: current minus previous.
type Point struct {
	X, Y         float64
	PrevX, PrevY float64
}

// Pos returns the current position.
func (p Point) Pos() Vec2 {
	return Vec2{X: p.X, Y: p.Y}
}

// Config describes a grid. It is fixed once the grid is built.
type Config struct {
	Cols, Rows      int
	Spacing         float64 // rest length of every edge
	Bound           float64 // points are clamped to [-Bound, Bound] on both axes
	Stiffness       float64 // fraction of each constraint error corrected per visit, (0, 1]
	Iterations      int     // relaxation sweeps per tick
	CollisionRadius float64 // minimum separation between lattice neighbours
	Pinned          bool    // anchor the top and bottom rows
}

// DefaultConfig returns a small pinned grid that fills the unit square.
func DefaultConfig() Config {
	return Config{
		Cols:            32,
		Rows:            20,
		Spacing:         0.065,
		Bound:           1,
		Stiffness:       0.4,
		Iterations:      4,
		CollisionRadius: 0.03,
		Pinned:          true,
	}
}

// Validate checks the invariants New relies on.
func (c Config) Validate() error {
	switch {
	case c.Cols < 1:
		return fmt.Errorf("%w: cols must be >= 1, got %d", ErrInvalidConfig, c.Cols)
	case c.Rows < 1:
		return fmt.Errorf("%w: rows must be >= 1, got %d", ErrInvalidConfig, c.Rows)
	case !(c.Spacing > 0) || math.IsInf(c.Spacing, 0):
		return fmt.Errorf("%w: spacing must be > 0, got %v", ErrInvalidConfig, c.Spacing)
	case !(c.Bound > 0) || math.IsInf(c.Bound, 0):
		return fmt.Errorf("%w: bound must be > 0, got %v", ErrInvalidConfig, c.Bound)
	case !(c.Stiffness > 0 && c.Stiffness <= 1):
		return fmt.Errorf("%w: stiffness must be in (0, 1], got %v", ErrInvalidConfig, c.Stiffness)
	case c.Iterations < 1:
		return fmt.Errorf("%w: iterations must be >= 1, got %d", ErrInvalidConfig, c.Iterations)
	case !(c.CollisionRadius >= 0) || math.IsInf(c.CollisionRadius, 0):
		return fmt.Errorf("%w: collision radius must be >= 0, got %v", ErrInvalidConfig, c.CollisionRadius)
	}
	return nil
}

// Grid owns the simulated points and the flattened output buffer.
type Grid struct {
	cfg       Config
	points    []Point
	positions []float32 // (x, y, 0) per point, row-major
	pinned    []int
}

// New lays out a regular lattice of cfg.Cols x cfg.Rows points, spacing apart
// and centred on the origin, at rest.
func New(cfg Config) (*Grid, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	n := cfg.Cols * cfg.Rows
	g := &Grid{
		cfg:       cfg,
		points:    make([]Point, 0, n),
		positions: make([]float32, n*3),
		pinned:    pinnedIndices(cfg),
	}

	startX := -float64(cfg.Cols-1) * cfg.Spacing / 2
	startY := -float64(cfg.Rows-1) * cfg.Spacing / 2
	for row := 0; row < cfg.Rows; row++ {
		for col := 0; col < cfg.Cols; col++ {
			x := startX + float64(col)*cfg.Spacing
			y := startY + float64(row)*cfg.Spacing
			g.points = append(g.points, Point{X: x, Y: y, PrevX: x, PrevY: y})
		}
	}

	g.flatten()
	return g, nil
}

// Restore builds a grid of shape cfg from saved points, for example from a
// snapshot. Pinned points are snapped back to their anchors.
func Restore(cfg Config, points []Point) (*Grid, error) {
	g, err := New(cfg)
	if err != nil {
		return nil, err
	}
	if len(points) != len(g.points) {
		return nil, fmt.Errorf("%w: %d points for a %dx%d grid", ErrInvalidConfig, len(points), cfg.Cols, cfg.Rows)
	}
	copy(g.points, points)
	g.pinEdges()
	g.flatten()
	return g, nil
}

// Config returns the configuration the grid was built with.
func (g *Grid) Config() Config {
	return g.cfg
}

// Len returns the number of points.
func (g *Grid) Len() int {
	return len(g.points)
}

// Points exposes the point array for inspection. Callers must not keep the
// slice across ticks if they need a stable snapshot.
func (g *Grid) Points() []Point {
	return g.points
}

// Positions returns the (x, y, 0) buffer written at the end of the last tick.
func (g *Grid) Positions() []float32 {
	return g.positions
}

// flatten copies point positions into the output buffer.
func (g *Grid) flatten() {
	for i := range g.points {
		j := i * 3
		g.positions[j] = float32(g.points[i].X)
		g.positions[j+1] = float32(g.points[i].Y)
		g.positions[j+2] = 0
	}
}
