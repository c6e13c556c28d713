package mesh

import "math"

// Vec2 is a 2D point or displacement.
type Vec2 struct {
	X, Y float64
}

// Clamp limits each axis of p to [-bound, bound].
func Clamp(p Vec2, bound float64) Vec2 {
	return Vec2{
		X: clampAxis(p.X, bound),
		Y: clampAxis(p.Y, bound),
	}
}

func clampAxis(v, bound float64) float64 {
	if v < -bound {
		return -bound
	}
	if v > bound {
		return bound
	}
	return v
}

// Distance returns the Euclidean distance between a and b.
func Distance(a, b Vec2) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

// safeDist returns hypot(dx, dy), or 1 when the points coincide.
// A unit divisor turns the zero-length case into a correction of zero.
func safeDist(dx, dy float64) float64 {
	d := math.Hypot(dx, dy)
	if d == 0 {
		return 1
	}
	return d
}

// ResolvePairCollision pushes a and b apart along their connecting line so that
// they end up radius apart. Each point moves half of the overlap. Pairs already
// at least radius apart are returned unchanged.
func ResolvePairCollision(a, b Vec2, radius float64) (Vec2, Vec2) {
	dx := b.X - a.X
	dy := b.Y - a.Y
	dist := safeDist(dx, dy)
	if dist >= radius {
		return a, b
	}

	push := (radius - dist) / 2
	nx := dx / dist
	ny := dy / dist
	return Vec2{X: a.X - nx*push, Y: a.Y - ny*push},
		Vec2{X: b.X + nx*push, Y: b.Y + ny*push}
}
