package viewer

import (
	"log/slog"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/meshgrid/mesh"
)

// handleInput processes keyboard and mouse input.
func (v *Viewer) handleInput() {
	v.handleResize()

	if rl.IsKeyPressed(rl.KeyF11) {
		rl.ToggleFullscreen()
	}

	if rl.IsKeyPressed(rl.KeySpace) {
		v.session.TogglePause()
	}

	if rl.IsKeyPressed(rl.KeyR) {
		if err := v.session.Reset(v.cfg.Grid.Mesh()); err != nil {
			slog.Error("reset failed", "error", err)
		}
	}

	if rl.IsKeyPressed(rl.KeyUp) {
		slog.Debug("wave intensity", "value", v.session.AdjustWaveIntensity(1))
	}
	if rl.IsKeyPressed(rl.KeyDown) {
		slog.Debug("wave intensity", "value", v.session.AdjustWaveIntensity(-1))
	}

	if rl.IsKeyPressed(rl.KeyS) {
		if path, err := v.session.SaveSnapshot(""); err != nil {
			slog.Error("snapshot failed", "error", err)
		} else {
			slog.Info("snapshot saved", "path", path)
		}
	}

	if rl.IsKeyPressed(rl.KeyE) {
		v.grid.ShowEdges = !v.grid.ShowEdges
	}
	if rl.IsKeyPressed(rl.KeyP) {
		v.showPerf = !v.showPerf
	}

	v.handlePointer()
	v.handleCameraInput()
}

// handlePointer steers the attraction point with the mouse. The pointer
// returns to the origin while the cursor is outside the window.
func (v *Viewer) handlePointer() {
	if !rl.IsCursorOnScreen() {
		v.session.ReleasePointer()
		return
	}
	m := rl.GetMousePosition()
	wx, wy := v.camera.ScreenToWorld(m.X, m.Y)
	v.session.SetPointerTarget(mesh.Vec2{X: float64(wx), Y: float64(wy)})
}

// handleResize checks for window resize and propagates new dimensions.
func (v *Viewer) handleResize() {
	if !rl.IsWindowResized() {
		return
	}
	w := float32(rl.GetScreenWidth())
	h := float32(rl.GetScreenHeight())
	if w == v.screenWidth && h == v.screenHeight {
		return
	}
	v.screenWidth = w
	v.screenHeight = h
	v.camera.Resize(w, h)
	v.perfPanel.SetPosition(int32(w)-230, 10)
}

// handleCameraInput processes camera pan/zoom controls.
func (v *Viewer) handleCameraInput() {
	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		v.camera.ZoomBy(1 + wheel*0.1)
	}

	if rl.IsMouseButtonDown(rl.MouseButtonRight) {
		d := rl.GetMouseDelta()
		s := v.camera.Scale()
		v.camera.Pan(-d.X/s, d.Y/s)
	}

	if rl.IsKeyPressed(rl.KeyEqual) || rl.IsKeyPressed(rl.KeyKpAdd) {
		v.camera.ZoomBy(1.25)
	}
	if rl.IsKeyPressed(rl.KeyMinus) || rl.IsKeyPressed(rl.KeyKpSubtract) {
		v.camera.ZoomBy(0.8)
	}

	if rl.IsKeyPressed(rl.KeyHome) {
		v.camera.Reset()
	}
}
