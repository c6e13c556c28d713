package monitor

import (
	"strings"
	"testing"

	"github.com/pthm-cable/meshgrid/mesh"
)

func TestCell(t *testing.T) {
	tests := []struct {
		name   string
		x, y   float64
		c, r   int
		inside bool
	}{
		{"top left", -1, 1, 0, 0, true},
		{"bottom right", 1, -1, 9, 4, true},
		{"center", 0, 0, 5, 2, true},
		{"outside", 1.5, 0, 0, 0, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c, r, ok := cell(tc.x, tc.y, 1, 10, 5)
			if ok != tc.inside || (ok && (c != tc.c || r != tc.r)) {
				t.Errorf("cell(%v, %v) = (%d, %d, %v), want (%d, %d, %v)", tc.x, tc.y, c, r, ok, tc.c, tc.r, tc.inside)
			}
		})
	}
}

func TestRenderCanvas(t *testing.T) {
	pos := []float32{
		-0.9, 0.9, 0, // faint, top left
		0.9, -0.9, 0, // bright, bottom right
	}
	opacities := []float32{0, 1}
	rows := renderCanvas(pos, opacities, mesh.Vec2{X: 0, Y: 0}, 1, 10, 5)

	if len(rows) != 5 {
		t.Fatalf("got %d rows, want 5", len(rows))
	}
	for i, r := range rows {
		if len(r) != 10 {
			t.Fatalf("row %d has width %d", i, len(r))
		}
	}
	if rows[0][0] != ramp[1] {
		t.Errorf("faint point glyph = %q, want %q", rows[0][0], ramp[1])
	}
	if rows[4][9] != ramp[len(ramp)-1] {
		t.Errorf("bright point glyph = %q, want %q", rows[4][9], ramp[len(ramp)-1])
	}
	if rows[2][5] != 'o' {
		t.Errorf("pointer cell = %q, want 'o'", rows[2][5])
	}
	if got := strings.Count(strings.Join(rows, ""), " "); got != 50-3 {
		t.Errorf("blank cells = %d, want 47", got)
	}
}

func TestRenderCanvasDegenerate(t *testing.T) {
	if rows := renderCanvas(nil, nil, mesh.Vec2{}, 1, 0, 5); rows != nil {
		t.Errorf("zero width should render nothing, got %v", rows)
	}
}
