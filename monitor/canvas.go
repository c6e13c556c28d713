package monitor

import (
	"math"

	"github.com/pthm-cable/meshgrid/mesh"
)

// ramp maps opacity to glyphs, dimmest first.
const ramp = " .:-=+*#%@"

// renderCanvas rasterizes points from an (x, y, 0) buffer into w x h cells
// covering [-bound, bound] on both axes, y up. Each cell shows the brightest
// point inside it. The pointer cell is drawn as 'o'.
func renderCanvas(pos, opacities []float32, pointer mesh.Vec2, bound float64, w, h int) []string {
	if w < 1 || h < 1 || bound <= 0 {
		return nil
	}
	level := make([]int, w*h)
	for i := range level {
		level[i] = -1
	}

	for i := 0; i+1 < len(pos); i += 3 {
		c, r, ok := cell(float64(pos[i]), float64(pos[i+1]), bound, w, h)
		if !ok {
			continue
		}
		var op float64
		if k := i / 3; k < len(opacities) {
			op = float64(opacities[k])
		}
		// Every point is at least the faintest visible glyph
		g := 1 + int(math.Round(op*float64(len(ramp)-2)))
		if g > level[r*w+c] {
			level[r*w+c] = g
		}
	}

	rows := make([]string, h)
	line := make([]byte, w)
	pc, pr, pok := cell(pointer.X, pointer.Y, bound, w, h)
	for r := 0; r < h; r++ {
		for c := 0; c < w; c++ {
			switch {
			case pok && c == pc && r == pr:
				line[c] = 'o'
			case level[r*w+c] < 0:
				line[c] = ' '
			default:
				line[c] = ramp[level[r*w+c]]
			}
		}
		rows[r] = string(line)
	}
	return rows
}

// cell returns the column and row containing (x, y). Row 0 is the top.
func cell(x, y, bound float64, w, h int) (int, int, bool) {
	if x < -bound || x > bound || y < -bound || y > bound {
		return 0, 0, false
	}
	c := int((x + bound) / (2 * bound) * float64(w))
	r := int((bound - y) / (2 * bound) * float64(h))
	if c == w {
		c = w - 1
	}
	if r == h {
		r = h - 1
	}
	return c, r, true
}
