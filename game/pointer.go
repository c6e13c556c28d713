package game

import (
	"github.com/pthm-cable/meshgrid/mesh"
	"github.com/pthm-cable/meshgrid/motion"
)

// SetPointerTarget sets where the smoothed pointer is heading. The target is
// clamped to the simulation bounds.
func (s *Session) SetPointerTarget(p mesh.Vec2) {
	s.pointerTarget = mesh.Clamp(p, s.grid.Config().Bound)
}

// ReleasePointer sends the pointer back to the origin, as when the cursor
// leaves the window.
func (s *Session) ReleasePointer() {
	s.pointerTarget = mesh.Vec2{}
}

// SetVisibility changes the falloff radii used for opacities.
func (s *Session) SetVisibility(inner, outer float64) {
	s.inner, s.outer = inner, outer
}

// Visibility returns the falloff radii.
func (s *Session) Visibility() (inner, outer float64) {
	return s.inner, s.outer
}

// WaveIntensity returns the pulse strength used when drawing.
func (s *Session) WaveIntensity() float64 {
	return s.waveIntensity
}

// AdjustWaveIntensity steps the pulse strength up (direction > 0) or down.
func (s *Session) AdjustWaveIntensity(direction float64) float64 {
	s.waveIntensity = motion.AdjustWaveIntensity(s.waveIntensity, direction)
	return s.waveIntensity
}

// PointerTarget returns where the smoothed pointer is heading.
func (s *Session) PointerTarget() mesh.Vec2 {
	return s.pointerTarget
}
