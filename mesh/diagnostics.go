package mesh

import "math"

// EdgeStrains appends the relative stretch (length - spacing) / spacing of every
// right and down edge, in sweep order, to dst[:0] and returns it.
func (g *Grid) EdgeStrains(dst []float64) []float64 {
	dst = dst[:0]
	cols, rows := g.cfg.Cols, g.cfg.Rows
	spacing := g.cfg.Spacing

	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			p := g.points[Index(col, row, cols)].Pos()
			if col < cols-1 {
				q := g.points[Index(col+1, row, cols)].Pos()
				dst = append(dst, (Distance(p, q)-spacing)/spacing)
			}
			if row < rows-1 {
				q := g.points[Index(col, row+1, cols)].Pos()
				dst = append(dst, (Distance(p, q)-spacing)/spacing)
			}
		}
	}
	return dst
}

// PeakStrain returns the largest |strain| in strains, so compressed edges
// count as much as stretched ones.
func PeakStrain(strains []float64) float64 {
	var peak float64
	for _, s := range strains {
		if s = math.Abs(s); s > peak {
			peak = s
		}
	}
	return peak
}

// Speeds appends |current - previous| for every point to dst[:0] and returns it.
func (g *Grid) Speeds(dst []float64) []float64 {
	dst = dst[:0]
	for _, p := range g.points {
		dst = append(dst, math.Hypot(p.X-p.PrevX, p.Y-p.PrevY))
	}
	return dst
}

// MaxPinDrift returns the largest distance between a pinned point and its
// anchor. It is zero after every completed tick.
func (g *Grid) MaxPinDrift() float64 {
	var worst float64
	for _, i := range g.pinned {
		t, _ := g.PinnedTarget(i)
		if d := Distance(g.points[i].Pos(), t); d > worst {
			worst = d
		}
	}
	return worst
}

// EdgeCount returns the number of distance constraints in the grid.
func (g *Grid) EdgeCount() int {
	return (g.cfg.Cols-1)*g.cfg.Rows + g.cfg.Cols*(g.cfg.Rows-1)
}
