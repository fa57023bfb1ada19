package sim

import (
	"github.com/san-kum/lorenzbox/internal/config"
)

// TogglePause flips the pause flag and reports the new state.
func (s *Scene) TogglePause() bool {
	s.paused = !s.paused
	return s.paused
}

// ToggleHidden flips the control visibility flag and reports the new state.
func (s *Scene) ToggleHidden() bool {
	s.hidden = !s.hidden
	return s.hidden
}

// Respawn replaces every particle, wipes the frame buffer and unpauses.
func (s *Scene) Respawn() {
	s.pool.Respawn(s.Params)
	s.clear = true
	s.paused = false
}

// SetParticleCount clamps n to the slider range and resizes the pool.
func (s *Scene) SetParticleCount(n int) {
	n = int(config.CountRange.Clamp(float64(n)))
	s.Params.ParticleCount = n
	s.pool.Resize(n, s.Params)
}

// SetView switches the camera and turns tracing off.
func (s *Scene) SetView(v config.View) {
	s.Params.View = v
	s.Params.Trace = false
}

// SetIntegrator switches the stepping scheme.
func (s *Scene) SetIntegrator(name string) error {
	s.Params.Integrator = name
	return s.syncIntegrator()
}
