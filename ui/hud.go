package ui

import (
	"fmt"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/pthm-cable/meshgrid/telemetry"
)

// HUDData holds everything the main HUD shows.
type HUDData struct {
	Title         string
	Cols, Rows    int
	Pinned        bool
	Tick          int64
	SimTime       float64
	FPS           int32
	Paused        bool
	PointerX      float64
	PointerY      float64
	WaveIntensity float64
	MaxWave       float64
	Inner, Outer  float64
	MaxStrain     float64
	PinDrift      float64
	ScreenHeight  int32
}

// HUD renders the main heads-up display.
type HUD struct {
	renderer *Renderer
}

// NewHUD creates a new HUD renderer.
func NewHUD() *HUD {
	return &HUD{renderer: NewRenderer()}
}

// Draw renders the HUD panel in the top-left corner.
func (h *HUD) Draw(data HUDData) {
	r := h.renderer
	const width = 260
	x, y := int32(10), int32(10)
	pad := r.Theme.Padding

	r.DrawPanel(x, y, width, 10*r.Theme.LineHeight+2*pad+8)
	x += pad
	y += pad

	rl.DrawText(data.Title, x, y, 16, rl.White)
	y += r.Theme.LineHeight + 4

	pins := "free"
	if data.Pinned {
		pins = "pinned"
	}
	y = r.DrawLabelValue(x, y, "Grid", fmt.Sprintf("%dx%d %s", data.Cols, data.Rows, pins))
	y = r.DrawLabelValue(x, y, "Tick", fmt.Sprintf("%d (%.1fs)", data.Tick, data.SimTime))
	y = r.DrawLabelValue(x, y, "FPS", fmt.Sprintf("%d", data.FPS))
	y = r.DrawLabelValue(x, y, "Pointer", fmt.Sprintf("%+.2f %+.2f", data.PointerX, data.PointerY))
	y = r.DrawLabelValue(x, y, "Falloff", fmt.Sprintf("%.2f .. %.2f", data.Inner, data.Outer))
	y = r.DrawBar(x, y, "Wave", float32(data.WaveIntensity), float32(data.MaxWave), width-2*pad)
	y = r.DrawLabelValue(x, y, "Max strain", fmt.Sprintf("%.4f", data.MaxStrain))
	r.DrawLabelValue(x, y, "Pin drift", fmt.Sprintf("%.2g", data.PinDrift))

	if data.Paused {
		rl.DrawText("PAUSED", 10, data.ScreenHeight-50, 16, rl.Yellow)
	}
}

// DrawControls renders the control legend at the bottom of the screen.
func (h *HUD) DrawControls(screenHeight int32, controls string) {
	rl.DrawText(controls, 10, screenHeight-25, 14, rl.Gray)
}

// PerfPanel renders per-phase tick timings.
type PerfPanel struct {
	renderer *Renderer
	x, y     int32
}

// NewPerfPanel creates a new performance panel.
func NewPerfPanel(x, y int32) *PerfPanel {
	return &PerfPanel{renderer: NewRenderer(), x: x, y: y}
}

// SetPosition updates the panel position.
func (p *PerfPanel) SetPosition(x, y int32) {
	p.x = x
	p.y = y
}

// Draw renders the performance panel.
func (p *PerfPanel) Draw(stats telemetry.PerfStats) {
	x, y := p.x, p.y

	y = p.renderer.DrawSectionHeader(x, y, "Tick Phases") + 4

	rl.DrawText(fmt.Sprintf("Avg: %s", stats.AvgTickDuration.Round(time.Microsecond)), x, y, 14, rl.Yellow)
	y += 16

	for _, phase := range telemetry.TickPhases() {
		pct := stats.PhasePct[phase]
		color := rl.LightGray
		if pct > 50 {
			color = rl.Red
		} else if pct > 25 {
			color = rl.Orange
		}
		rl.DrawText(
			fmt.Sprintf("%-11s %8s %5.1f%%", phase, stats.PhaseAvg[phase].Round(time.Microsecond), pct),
			x, y, 12, color,
		)
		y += 14
	}
}
