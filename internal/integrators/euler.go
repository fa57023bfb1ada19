package integrators

import "github.com/san-kum/lorenzbox/internal/dynamo"

// Euler is the explicit fixed-step Euler method. It has no step control, so
// a large dt makes stiff systems diverge.
type Euler struct{}

func NewEuler() *Euler {
	return &Euler{}
}

func (e *Euler) Step(dyn dynamo.System, x dynamo.State, u dynamo.Control, t float64, dt float64) dynamo.State {
	next, _ := e.StepDelta(dyn, x, u, t, dt)
	return next
}

// StepDelta returns x + dt*f(x) together with the increment dt*f(x).
func (e *Euler) StepDelta(dyn dynamo.System, x dynamo.State, u dynamo.Control, t float64, dt float64) (dynamo.State, dynamo.State) {
	dx := dyn.Derive(x, u, t)
	result := make(dynamo.State, len(x))
	delta := make(dynamo.State, len(x))
	for i := range x {
		delta[i] = dx[i] * dt
		result[i] = x[i] + delta[i]
	}
	return result, delta
}
