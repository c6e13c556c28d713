// Package viewer runs the interactive raylib window around a game.Session.
package viewer

import (
	"log/slog"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/meshgrid/camera"
	"github.com/pthm-cable/meshgrid/config"
	"github.com/pthm-cable/meshgrid/game"
	"github.com/pthm-cable/meshgrid/mesh"
	"github.com/pthm-cable/meshgrid/motion"
	"github.com/pthm-cable/meshgrid/renderer"
	"github.com/pthm-cable/meshgrid/ui"
)

const controlsText = "Mouse: attract | Space: pause | R: reset | Up/Down: wave | E: edges | P: perf | S: snapshot | Wheel/RMB: camera | Home: recenter"

// Viewer owns the window-side state of an interactive run.
type Viewer struct {
	session *game.Session
	cfg     *config.Config
	camera  *camera.Camera

	grid      *renderer.GridRenderer
	hud       *ui.HUD
	perfPanel *ui.PerfPanel

	showPerf     bool
	screenWidth  float32
	screenHeight float32
	strains      []float64
}

// New wraps s for drawing. Call after rl.InitWindow.
func New(s *game.Session, cfg *config.Config) *Viewer {
	w := float32(cfg.Screen.Width)
	h := float32(cfg.Screen.Height)
	return &Viewer{
		session:      s,
		cfg:          cfg,
		camera:       camera.New(w, h, float32(cfg.Grid.Bound)),
		grid:         renderer.NewGridRenderer(cfg.Render, cfg.Visibility),
		hud:          ui.NewHUD(),
		perfPanel:    ui.NewPerfPanel(int32(w)-230, 10),
		screenWidth:  w,
		screenHeight: h,
	}
}

// Run ticks and draws until the window closes or maxTicks ticks have run
// (0 = unlimited).
func (v *Viewer) Run(maxTicks int64) {
	for !rl.WindowShouldClose() {
		v.handleInput()
		v.session.UpdateFrame(float64(rl.GetFrameTime()))
		v.draw()

		if maxTicks > 0 && v.session.Tick() >= maxTicks {
			slog.Info("max ticks reached", "tick", v.session.Tick())
			return
		}
	}
}

func (v *Viewer) draw() {
	rl.BeginDrawing()
	rl.ClearBackground(rl.Color{R: 8, G: 10, B: 14, A: 255})

	renderer.DrawBounds(v.camera)
	v.grid.Draw(v.session, v.camera)
	renderer.DrawPointer(v.session, v.camera)

	g := v.session.Grid()
	gc := g.Config()
	v.strains = g.EdgeStrains(v.strains)
	inner, outer := v.session.Visibility()
	p := v.session.Pointer()

	v.hud.Draw(ui.HUDData{
		Title:         "Mesh Grid",
		Cols:          gc.Cols,
		Rows:          gc.Rows,
		Pinned:        gc.Pinned,
		Tick:          v.session.Tick(),
		SimTime:       v.session.SimTime(),
		FPS:           rl.GetFPS(),
		Paused:        v.session.Paused(),
		PointerX:      p.X,
		PointerY:      p.Y,
		WaveIntensity: v.session.WaveIntensity(),
		MaxWave:       motion.MaxWaveIntensity,
		Inner:         inner,
		Outer:         outer,
		MaxStrain:     mesh.PeakStrain(v.strains),
		PinDrift:      g.MaxPinDrift(),
		ScreenHeight:  int32(v.screenHeight),
	})
	v.hud.DrawControls(int32(v.screenHeight), controlsText)

	if v.showPerf {
		v.perfPanel.Draw(v.session.Perf())
	}

	rl.EndDrawing()
}
