package mesh

// resolveCollisions separates lattice neighbours that are closer than the
// collision radius. Only the 3x3 index window around each point is examined,
// which stands in for a spatial query while the grid is not heavily distorted.
// Each unordered pair is handled once. Pinned points are snapped back to their
// anchors rather than pushed.
func (g *Grid) resolveCollisions() {
	cols, rows := g.cfg.Cols, g.cfg.Rows
	radius := g.cfg.CollisionRadius

	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			idx := Index(col, row, cols)
			pPinned := g.IsPinned(idx)

			for oy := -1; oy <= 1; oy++ {
				for ox := -1; ox <= 1; ox++ {
					if ox == 0 && oy == 0 {
						continue
					}
					nc, nr := col+ox, row+oy
					if nc < 0 || nr < 0 || nc >= cols || nr >= rows {
						continue
					}
					nIdx := Index(nc, nr, cols)
					if nIdx <= idx {
						continue
					}
					oPinned := g.IsPinned(nIdx)
					if pPinned && oPinned {
						continue
					}

					p := &g.points[idx]
					o := &g.points[nIdx]
					aOut, bOut := ResolvePairCollision(p.Pos(), o.Pos(), radius)

					if pPinned {
						g.snapPosition(idx)
					} else {
						p.X, p.Y = aOut.X, aOut.Y
					}
					if oPinned {
						g.snapPosition(nIdx)
					} else {
						o.X, o.Y = bOut.X, bOut.Y
					}
				}
			}
		}
	}
}

// snapPosition moves point i onto its anchor without touching its previous
// position; the closing pinEdges of the tick resets that.
func (g *Grid) snapPosition(i int) {
	col, row := Coords(i, g.cfg.Cols)
	t := PinTarget(col, row, g.cfg.Cols, g.cfg.Bound)
	g.points[i].X, g.points[i].Y = t.X, t.Y
}
