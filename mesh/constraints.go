package mesh

// relax runs cfg.Iterations Gauss-Seidel sweeps over the right and down edges.
// Points are visited in row-major order and each visited point is clamped to
// the bounds once its two edges have been corrected, so later edges in the
// same sweep see the updated positions.
func (g *Grid) relax() {
	cols, rows := g.cfg.Cols, g.cfg.Rows
	spacing, stiffness, bound := g.cfg.Spacing, g.cfg.Stiffness, g.cfg.Bound

	for iter := 0; iter < g.cfg.Iterations; iter++ {
		for row := 0; row < rows; row++ {
			for col := 0; col < cols; col++ {
				idx := Index(col, row, cols)
				p := &g.points[idx]
				pPinned := g.IsPinned(idx)

				if col < cols-1 {
					right := Index(col+1, row, cols)
					applyConstraint(p, &g.points[right], spacing, stiffness, pPinned, g.IsPinned(right))
				}
				if row < rows-1 {
					down := Index(col, row+1, cols)
					applyConstraint(p, &g.points[down], spacing, stiffness, pPinned, g.IsPinned(down))
				}

				p.X = clampAxis(p.X, bound)
				p.Y = clampAxis(p.Y, bound)
			}
		}
	}
}

// applyConstraint pulls a and b toward rest length spacing. Free pairs split the
// correction evenly; when one end is pinned the other takes all of it.
func applyConstraint(a, b *Point, spacing, stiffness float64, aPinned, bPinned bool) {
	if aPinned && bPinned {
		return
	}

	dx := b.X - a.X
	dy := b.Y - a.Y
	dist := safeDist(dx, dy)
	diff := (dist - spacing) / dist

	if aPinned || bPinned {
		ox := dx * diff * stiffness
		oy := dy * diff * stiffness
		if aPinned {
			b.X -= ox
			b.Y -= oy
		} else {
			a.X += ox
			a.Y += oy
		}
		return
	}

	ox := dx * diff * 0.5 * stiffness
	oy := dy * diff * 0.5 * stiffness
	a.X += ox
	a.Y += oy
	b.X -= ox
	b.Y -= oy
}
