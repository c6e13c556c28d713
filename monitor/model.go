// Package monitor is a terminal dashboard for headless runs.
package monitor

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/pthm-cable/meshgrid/config"
	"github.com/pthm-cable/meshgrid/game"
	"github.com/pthm-cable/meshgrid/mesh"
	"github.com/pthm-cable/meshgrid/motion"
)

const (
	canvasWidth  = 48
	canvasHeight = 20
	pointerStep  = 0.1
	frameRate    = 30
)

type tickMsg time.Time

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second/frameRate, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Model is the Bubbletea model for the monitor.
type Model struct {
	session  *game.Session
	cfg      *config.Config
	wave     progress.Model
	width    int
	maxTicks int64
	quitting bool
	status   string

	// Window stats most recently reported by the session
	strainMax float64
	pinDrift  float64
	strains   []float64
}

// New creates a monitor driving s. maxTicks = 0 runs until quit.
func New(s *game.Session, cfg *config.Config, maxTicks int64) Model {
	return Model{
		session:  s,
		cfg:      cfg,
		maxTicks: maxTicks,
		wave: progress.New(
			progress.WithScaledGradient("#5A8DEE", "#E05A5A"),
			progress.WithoutPercentage(),
			progress.WithWidth(30),
		),
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(tickCmd(), tea.SetWindowTitle("meshgrid"))
}

func isQuit(msg tea.KeyMsg) bool {
	switch msg.String() {
	case "q", "esc", "ctrl+c":
		return true
	}
	return false
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if isQuit(msg) {
			m.quitting = true
			return m, tea.Quit
		}
		m.handleKey(msg.String())
		return m, nil

	case tickMsg:
		m.session.UpdateHeadless()
		m.sample()
		if m.maxTicks > 0 && m.session.Tick() >= m.maxTicks {
			m.quitting = true
			return m, tea.Quit
		}
		return m, tickCmd()

	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	}
	return m, nil
}

func (m *Model) handleKey(key string) {
	s := m.session
	target := s.PointerTarget()
	switch key {
	case " ":
		if s.TogglePause() {
			m.status = "paused"
		} else {
			m.status = ""
		}
	case "r":
		if err := s.Reset(m.cfg.Grid.Mesh()); err != nil {
			m.status = fmt.Sprintf("reset failed: %v", err)
		} else {
			m.status = "grid reset"
		}
	case "+", "=":
		s.AdjustWaveIntensity(1)
	case "-":
		s.AdjustWaveIntensity(-1)
	case "left", "h":
		s.SetPointerTarget(mesh.Vec2{X: target.X - pointerStep, Y: target.Y})
	case "right", "l":
		s.SetPointerTarget(mesh.Vec2{X: target.X + pointerStep, Y: target.Y})
	case "up", "k":
		s.SetPointerTarget(mesh.Vec2{X: target.X, Y: target.Y + pointerStep})
	case "down", "j":
		s.SetPointerTarget(mesh.Vec2{X: target.X, Y: target.Y - pointerStep})
	case "c":
		s.ReleasePointer()
	case "x":
		if path, err := s.SaveSnapshot(""); err != nil {
			m.status = fmt.Sprintf("snapshot failed: %v", err)
		} else {
			m.status = "saved " + path
		}
	}
}

// sample refreshes the strain readout from the live grid.
func (m *Model) sample() {
	g := m.session.Grid()
	m.strains = g.EdgeStrains(m.strains)
	m.strainMax = mesh.PeakStrain(m.strains)
	m.pinDrift = g.MaxPinDrift()
}

func row(label, value string) string {
	return "  " + labelStyle.Render(label) + valueStyle.Render(value) + "\n"
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	s := m.session
	g := s.Grid()
	gc := g.Config()

	var b strings.Builder
	b.WriteString("\n  " + headerStyle.Render("meshgrid") + "\n\n")

	canvas := renderCanvas(g.Positions(), s.Opacities(), s.Pointer(), gc.Bound, canvasWidth, canvasHeight)
	for _, line := range strings.Split(canvasStyle.Render(strings.Join(canvas, "\n")), "\n") {
		b.WriteString("  " + line + "\n")
	}
	b.WriteString("\n")

	pins := "free"
	if gc.Pinned {
		pins = "pinned"
	}
	perf := s.Perf()
	p := s.Pointer()
	inner, outer := s.Visibility()

	b.WriteString(row("grid", fmt.Sprintf("%dx%d %s, %d iterations", gc.Cols, gc.Rows, pins, gc.Iterations)))
	b.WriteString(row("tick", fmt.Sprintf("%d (%.1fs)", s.Tick(), s.SimTime())))
	b.WriteString(row("tick time", perf.AvgTickDuration.Round(time.Microsecond).String()))
	b.WriteString(row("pointer", fmt.Sprintf("%+.2f %+.2f", p.X, p.Y)))
	b.WriteString(row("falloff", fmt.Sprintf("%.2f .. %.2f", inner, outer)))
	b.WriteString(row("max strain", fmt.Sprintf("%.4f", m.strainMax)))
	b.WriteString("  " + labelStyle.Render("wave") +
		m.wave.ViewAs(s.WaveIntensity()/motion.MaxWaveIntensity) +
		valueStyle.Render(fmt.Sprintf(" %.2f", s.WaveIntensity())) + "\n")

	if m.pinDrift != 0 {
		b.WriteString("  " + warnStyle.Render(fmt.Sprintf("pinned points drifted by %.2g", m.pinDrift)) + "\n")
	}
	if m.status != "" {
		b.WriteString("  " + statusStyle.Render(m.status) + "\n")
	}

	b.WriteString("\n  " + helpStyle.Render("space pause  arrows pointer  c center  +/- wave  r reset  x snapshot  q quit") + "\n")
	return b.String()
}

// Run blocks running the monitor on the terminal.
func Run(s *game.Session, cfg *config.Config, maxTicks int64) error {
	_, err := tea.NewProgram(New(s, cfg, maxTicks), tea.WithAltScreen()).Run()
	return err
}
