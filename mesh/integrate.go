package mesh

import "math"

// Forcing term applied to every free point each tick.
const (
	forceAmplitude = 0.0025
	forceFrequency = 1.2  // radians per second
	forcePhaseStep = 0.15 // phase offset between consecutive indices
)

// integrate advances every free point by one Verlet step. The oscillating
// forcing term is added to both axes.
func (g *Grid) integrate(time float64) {
	for i := range g.points {
		if g.IsPinned(i) {
			continue
		}
		p := &g.points[i]
		dx := p.X - p.PrevX
		dy := p.Y - p.PrevY

		wave := math.Sin(time*forceFrequency+float64(i)*forcePhaseStep) * forceAmplitude

		p.PrevX = p.X
		p.PrevY = p.Y
		p.X += dx + wave
		p.Y += dy + wave
	}
}

// pinEdges snaps anchored points to their targets with zero velocity.
func (g *Grid) pinEdges() {
	for _, i := range g.pinned {
		g.snap(i)
	}
}

// snap moves point i onto its anchor, previous position included.
func (g *Grid) snap(i int) {
	col, row := Coords(i, g.cfg.Cols)
	t := PinTarget(col, row, g.cfg.Cols, g.cfg.Bound)
	p := &g.points[i]
	p.X, p.Y = t.X, t.Y
	p.PrevX, p.PrevY = t.X, t.Y
}
