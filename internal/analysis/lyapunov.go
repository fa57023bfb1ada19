package analysis

import (
	"math"

	"github.com/san-kum/lorenzbox/internal/dynamo"
)

// LyapunovExponent estimates the largest Lyapunov exponent by following a
// companion trajectory d0 away and pulling it back to d0 after every step.
// A positive value indicates chaos.
//
//	λ ≈ Σ ln(|δ_i| / d0) / (n·dt)
//
// The first transient time units are integrated but not counted.
func LyapunovExponent(dyn dynamo.System, integ dynamo.Integrator, x0 dynamo.State, dt, transient, duration, d0 float64) (float64, error) {
	if len(x0) == 0 || dt <= 0 || d0 <= 0 {
		return 0, dynamo.ErrParameterBounds
	}
	ctrl := make(dynamo.Control, dyn.ControlDim())

	x := x0.Clone()
	t := 0.0
	for ; t < transient; t += dt {
		x = integ.Step(dyn, x, ctrl, t, dt)
	}
	if !x.IsValid() {
		return 0, &dynamo.SimulationError{Frame: int(t / dt), Wrapped: dynamo.ErrInvalidState}
	}

	xp := x.Clone()
	xp[0] += d0

	sumLog := 0.0
	steps := 0
	for end := t + duration; t < end; t += dt {
		x = integ.Step(dyn, x, ctrl, t, dt)
		xp = integ.Step(dyn, xp, ctrl, t, dt)
		if !x.IsValid() || !xp.IsValid() {
			return 0, &dynamo.SimulationError{Frame: int(t / dt), Wrapped: dynamo.ErrInvalidState}
		}

		sep := xp.Distance(x)
		if sep == 0 {
			// collapsed onto the reference; restart the offset
			xp = x.Clone()
			xp[0] += d0
			continue
		}
		sumLog += math.Log(sep / d0)
		steps++

		scale := d0 / sep
		for i := range xp {
			xp[i] = x[i] + (xp[i]-x[i])*scale
		}
	}
	if steps == 0 {
		return 0, nil
	}
	return sumLog / (float64(steps) * dt), nil
}
