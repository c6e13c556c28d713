package mesh

// Index returns the row-major index of (col, row) in a grid cols wide.
func Index(col, row, cols int) int {
	return row*cols + col
}

// Coords is the inverse of Index.
func Coords(index, cols int) (col, row int) {
	return index % cols, index / cols
}

// PinTarget returns the anchored position of an edge point. Columns are spread
// evenly across [-bound, bound]; row 0 sits at -bound and every other row at
// +bound. A single column is anchored at x = 0.
func PinTarget(col, row, cols int, bound float64) Vec2 {
	x := 0.0
	if cols > 1 {
		t := float64(col) / float64(cols-1)
		x = -bound + 2*bound*t
	}
	y := bound
	if row == 0 {
		y = -bound
	}
	return Vec2{X: x, Y: y}
}

// IsPinned reports whether point i is anchored to the top or bottom edge.
// Grids built with Pinned = false have no anchored points.
func (g *Grid) IsPinned(i int) bool {
	if !g.cfg.Pinned {
		return false
	}
	_, row := Coords(i, g.cfg.Cols)
	return row == 0 || row == g.cfg.Rows-1
}

// PinnedTarget returns the anchor of point i and whether it has one.
func (g *Grid) PinnedTarget(i int) (Vec2, bool) {
	if !g.IsPinned(i) {
		return Vec2{}, false
	}
	col, row := Coords(i, g.cfg.Cols)
	return PinTarget(col, row, g.cfg.Cols, g.cfg.Bound), true
}

// pinnedIndices lists the anchored points: each column on the top row, then
// the same column on the bottom row.
func pinnedIndices(cfg Config) []int {
	if !cfg.Pinned {
		return nil
	}
	last := cfg.Rows - 1
	out := make([]int, 0, 2*cfg.Cols)
	for col := 0; col < cfg.Cols; col++ {
		out = append(out, Index(col, 0, cfg.Cols))
		if last != 0 {
			out = append(out, Index(col, last, cfg.Cols))
		}
	}
	return out
}
