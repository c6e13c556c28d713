// Package renderer draws a mesh session with raylib.
package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/meshgrid/camera"
	"github.com/pthm-cable/meshgrid/config"
	"github.com/pthm-cable/meshgrid/game"
	"github.com/pthm-cable/meshgrid/mesh"
	"github.com/pthm-cable/meshgrid/motion"
)

// GridRenderer draws grid points as discs whose alpha follows the pointer
// falloff and whose size peaks in the middle rows.
type GridRenderer struct {
	pointSize  float64
	minOpacity float64
	pulseSpeed float64

	PointColor rl.Color
	EdgeColor  rl.Color
	ShowEdges  bool

	// Per-point values cached for the current lattice shape
	cols, rows int
	seeds      []float64
	scales     []float32
}

// NewGridRenderer creates a renderer from the render and visibility settings.
func NewGridRenderer(render config.RenderConfig, vis config.VisibilityConfig) *GridRenderer {
	return &GridRenderer{
		pointSize:  render.PointSize,
		minOpacity: vis.MinOpacity,
		pulseSpeed: render.PulseSpeed,
		PointColor: rl.Color{R: 230, G: 235, B: 245, A: 255},
		EdgeColor:  rl.Color{R: 90, G: 110, B: 140, A: 40},
	}
}

// prepare rebuilds the per-point caches when the lattice shape changes.
func (r *GridRenderer) prepare(cfg mesh.Config) {
	if r.cols == cfg.Cols && r.rows == cfg.Rows && len(r.seeds) == cfg.Cols*cfg.Rows {
		return
	}
	r.cols, r.rows = cfg.Cols, cfg.Rows
	n := cfg.Cols * cfg.Rows
	r.seeds = make([]float64, n)
	r.scales = make([]float32, n)
	for i := 0; i < n; i++ {
		col, row := mesh.Coords(i, cfg.Cols)
		r.seeds[i] = motion.Seed(col, row)
		r.scales[i] = float32(0.6 + 0.4*motion.SizeFromBand(motion.Band(row, cfg.Rows)))
	}
}

// Draw renders the session's grid through cam.
func (r *GridRenderer) Draw(s *game.Session, cam *camera.Camera) {
	grid := s.Grid()
	cfg := grid.Config()
	r.prepare(cfg)

	pos := grid.Positions()
	opacities := s.Opacities()
	wave := s.WaveIntensity()
	t := s.SimTime() * r.pulseSpeed
	scale := cam.Scale()

	if r.ShowEdges {
		r.drawEdges(pos, cfg.Cols, cfg.Rows, cam)
	}

	for i := 0; i < len(pos)/3; i++ {
		x, y := pos[3*i], pos[3*i+1]
		radius := float32(r.pointSize) * r.scales[i]
		if !cam.IsVisible(x, y, radius/scale) {
			continue
		}
		var op float64
		if i < len(opacities) {
			op = float64(opacities[i])
		}
		alpha := motion.PointAlpha(op, r.minOpacity, wave, motion.Pulse(r.seeds[i], t))
		sx, sy := cam.WorldToScreen(x, y)
		rl.DrawCircleV(rl.Vector2{X: sx, Y: sy}, radius, rl.Fade(r.PointColor, float32(alpha)))
	}
}

// drawEdges draws the right and down neighbour links.
func (r *GridRenderer) drawEdges(pos []float32, cols, rows int, cam *camera.Camera) {
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			i := mesh.Index(col, row, cols)
			ax, ay := cam.WorldToScreen(pos[3*i], pos[3*i+1])
			if col+1 < cols {
				j := i + 1
				bx, by := cam.WorldToScreen(pos[3*j], pos[3*j+1])
				rl.DrawLineV(rl.Vector2{X: ax, Y: ay}, rl.Vector2{X: bx, Y: by}, r.EdgeColor)
			}
			if row+1 < rows {
				j := i + cols
				bx, by := cam.WorldToScreen(pos[3*j], pos[3*j+1])
				rl.DrawLineV(rl.Vector2{X: ax, Y: ay}, rl.Vector2{X: bx, Y: by}, r.EdgeColor)
			}
		}
	}
}

// DrawPointer marks the smoothed pointer and its falloff radii.
func DrawPointer(s *game.Session, cam *camera.Camera) {
	p := s.Pointer()
	inner, outer := s.Visibility()
	sx, sy := cam.WorldToScreen(float32(p.X), float32(p.Y))
	center := rl.Vector2{X: sx, Y: sy}
	scale := cam.Scale()
	rl.DrawCircleLinesV(center, float32(inner)*scale, rl.Color{R: 255, G: 220, B: 120, A: 60})
	rl.DrawCircleLinesV(center, float32(outer)*scale, rl.Color{R: 255, G: 220, B: 120, A: 30})
	rl.DrawCircleV(center, 3, rl.Color{R: 255, G: 220, B: 120, A: 160})
}

// DrawBounds outlines the simulation square.
func DrawBounds(cam *camera.Camera) {
	b := cam.Bound
	x0, y0 := cam.WorldToScreen(-b, b)
	x1, y1 := cam.WorldToScreen(b, -b)
	rl.DrawRectangleLinesEx(rl.Rectangle{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}, 1, rl.Color{R: 60, G: 70, B: 80, A: 120})
}
