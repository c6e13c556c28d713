// Mesh preview tool - tune grid and falloff parameters with sliders while the
// grid runs live.
//
// Usage: go run ./cmd/meshpreview [-config path]
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"strings"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
	"gopkg.in/yaml.v3"

	"github.com/pthm-cable/meshgrid/camera"
	"github.com/pthm-cable/meshgrid/config"
	"github.com/pthm-cable/meshgrid/game"
	"github.com/pthm-cable/meshgrid/mesh"
	"github.com/pthm-cable/meshgrid/renderer"
)

const (
	windowWidth  = 1000
	windowHeight = 720
	previewSize  = 600
	previewX     = 10
	previewY     = 10
	panelWidth   = windowWidth - previewSize - 30
)

// tunables is the part of the config the sliders edit.
type tunables struct {
	Grid       config.GridConfig       `yaml:"grid"`
	Visibility config.VisibilityConfig `yaml:"visibility"`
}

// panel lays out labelled sliders top to bottom.
type panel struct {
	x, y    float32
	changed bool
}

func (p *panel) slider(label, format string, value, min, max float32) float32 {
	rl.DrawText(label, int32(p.x), int32(p.y), 14, rl.Gray)
	p.y += 18
	v := gui.SliderBar(
		rl.Rectangle{X: p.x, Y: p.y, Width: float32(panelWidth - 80), Height: 20},
		"", "",
		value, min, max,
	)
	rl.DrawText(fmt.Sprintf(format, v), int32(p.x+float32(panelWidth-70)), int32(p.y+2), 16, rl.DarkGray)
	p.y += 32
	if v != value {
		p.changed = true
	}
	return v
}

func main() {
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	flag.Parse()

	config.MustInit(*configPath)
	cfg := config.Cfg()

	rl.InitWindow(windowWidth, windowHeight, "Mesh Grid Preview")
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)

	s, err := game.NewSession(cfg, game.Options{})
	if err != nil {
		slog.Error("failed to start session", "error", err)
		return
	}
	defer s.Close()

	params := tunables{Grid: cfg.Grid, Visibility: cfg.Visibility}
	defaults := params

	cam := camera.New(previewSize, previewSize, float32(cfg.Grid.Bound))
	grid := renderer.NewGridRenderer(cfg.Render, cfg.Visibility)
	grid.ShowEdges = true
	target := rl.LoadRenderTexture(previewSize, previewSize)
	defer rl.UnloadRenderTexture(target)

	status := ""

	for !rl.WindowShouldClose() {
		// Pointer follows the mouse inside the preview only
		m := rl.GetMousePosition()
		if m.X >= previewX && m.X < previewX+previewSize && m.Y >= previewY && m.Y < previewY+previewSize {
			wx, wy := cam.ScreenToWorld(m.X-previewX, m.Y-previewY)
			s.SetPointerTarget(mesh.Vec2{X: float64(wx), Y: float64(wy)})
		} else {
			s.ReleasePointer()
		}
		s.UpdateFrame(float64(rl.GetFrameTime()))

		rl.BeginTextureMode(target)
		rl.ClearBackground(rl.Color{R: 8, G: 10, B: 14, A: 255})
		renderer.DrawBounds(cam)
		grid.Draw(s, cam)
		renderer.DrawPointer(s, cam)
		rl.EndTextureMode()

		rl.BeginDrawing()
		rl.ClearBackground(rl.RayWhite)

		// Render textures are stored upside down
		rl.DrawTextureRec(
			target.Texture,
			rl.Rectangle{X: 0, Y: 0, Width: previewSize, Height: -previewSize},
			rl.Vector2{X: previewX, Y: previewY},
			rl.White,
		)
		rl.DrawRectangleLines(previewX, previewY, previewSize, previewSize, rl.DarkGray)

		g := s.Grid()
		rl.DrawText(fmt.Sprintf("Tick: %d  Max pin drift: %.2g  %s", s.Tick(), g.MaxPinDrift(), status),
			15, previewY+previewSize+15, 16, rl.DarkGray)

		// Control panel
		p := &panel{x: float32(previewSize + 20), y: 10}
		rl.DrawText("Grid Parameters", int32(p.x), int32(p.y), 20, rl.DarkGray)
		p.y += 35

		gc := &params.Grid
		gc.Cols = int(p.slider("Columns", "%.0f", float32(gc.Cols), 1, 64))
		gc.Rows = int(p.slider("Rows", "%.0f", float32(gc.Rows), 1, 40))
		gc.Spacing = float64(p.slider("Spacing (rest length)", "%.3f", float32(gc.Spacing), 0.01, 0.2))
		gc.Stiffness = float64(p.slider("Stiffness", "%.2f", float32(gc.Stiffness), 0, 1))
		gc.Iterations = int(p.slider("Iterations", "%.0f", float32(gc.Iterations), 0, 12))
		gc.CollisionRadius = float64(p.slider("Collision radius", "%.3f", float32(gc.CollisionRadius), 0, 0.1))
		gridChanged := p.changed

		p.changed = false
		vc := &params.Visibility
		vc.Inner = float64(p.slider("Falloff inner", "%.2f", float32(vc.Inner), 0, 2))
		vc.Outer = float64(p.slider("Falloff outer", "%.2f", float32(vc.Outer), 0, 2))
		if p.changed {
			s.SetVisibility(vc.Inner, vc.Outer)
		}

		if gui.Button(rl.Rectangle{X: p.x, Y: p.y, Width: 120, Height: 30}, toggleText(gc.Pinned, "Unpin", "Pin Rows")) {
			gc.Pinned = !gc.Pinned
			gridChanged = true
		}
		if gui.Button(rl.Rectangle{X: p.x + 130, Y: p.y, Width: 120, Height: 30}, "Reset All") {
			params = defaults
			s.SetVisibility(params.Visibility.Inner, params.Visibility.Outer)
			gridChanged = true
		}
		p.y += 45

		if gridChanged {
			if err := s.Reset(params.Grid.Mesh()); err != nil {
				status = err.Error()
			} else {
				status = ""
			}
		}

		// Output YAML
		out, _ := yaml.Marshal(params)
		rl.DrawText("YAML Config:", int32(p.x), int32(p.y), 16, rl.DarkGray)
		p.y += 25
		for _, line := range strings.Split(strings.TrimRight(string(out), "\n"), "\n") {
			rl.DrawText(line, int32(p.x), int32(p.y), 14, rl.Gray)
			p.y += 16
		}

		rl.DrawText("Press C to copy YAML to clipboard", int32(p.x), int32(windowHeight-30), 12, rl.LightGray)
		if rl.IsKeyPressed(rl.KeyC) {
			rl.SetClipboardText(string(out))
		}

		rl.EndDrawing()
	}
}

func toggleText(cond bool, ifTrue, ifFalse string) string {
	if cond {
		return ifTrue
	}
	return ifFalse
}
