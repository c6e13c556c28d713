package mesh

// Visibility maps a distance to an opacity in [0, 1].
//
// Points within inner are fully visible and points at or beyond outer are
// hidden. Between the radii the falloff follows 1 - smoothstep, so the curve
// has zero slope at both ends. If outer <= inner the falloff collapses to a
// step at inner.
func Visibility(distance, inner, outer float64) float64 {
	if outer <= inner {
		if distance <= inner {
			return 1
		}
		return 0
	}

	if distance <= inner {
		return 1
	}
	if distance >= outer {
		return 0
	}

	t := (distance - inner) / (outer - inner)
	smooth := t * t * (3 - 2*t)
	return 1 - smooth
}

// Opacities writes one visibility value per point, measured from pointer, into
// dst and returns it. dst is reallocated when it is too short.
func (g *Grid) Opacities(pointer Vec2, inner, outer float64, dst []float32) []float32 {
	n := len(g.points)
	if cap(dst) < n {
		dst = make([]float32, n)
	}
	dst = dst[:n]

	for i := range g.points {
		p := &g.points[i]
		d := Distance(pointer, Vec2{X: p.X, Y: p.Y})
		dst[i] = float32(Visibility(d, inner, outer))
	}
	return dst
}
