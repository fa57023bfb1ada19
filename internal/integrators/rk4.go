package integrators

import "github.com/san-kum/lorenzbox/internal/dynamo"

// classic Runge-Kutta tableau: stage offsets and final weights
var (
	rk4Offsets = [4]float64{0, 0.5, 0.5, 1}
	rk4Weights = [4]float64{1.0 / 6, 2.0 / 6, 2.0 / 6, 1.0 / 6}
)

// RK4 keeps its stage buffers between steps, so one value must not be shared
// between goroutines.
type RK4 struct {
	k     [4]dynamo.State
	stage dynamo.State
}

func NewRK4() *RK4 {
	return &RK4{}
}

func (r *RK4) grow(n int) {
	if len(r.stage) == n {
		return
	}
	for i := range r.k {
		r.k[i] = make(dynamo.State, n)
	}
	r.stage = make(dynamo.State, n)
}

func (r *RK4) Step(dyn dynamo.System, x dynamo.State, u dynamo.Control, t, dt float64) dynamo.State {
	next, _ := r.StepDelta(dyn, x, u, t, dt)
	return next
}

// StepDelta returns the next state and the weighted increment that produced
// it; particles driven by RK4 use the increment as their direction.
func (r *RK4) StepDelta(dyn dynamo.System, x dynamo.State, u dynamo.Control, t, dt float64) (dynamo.State, dynamo.State) {
	n := len(x)
	r.grow(n)

	for s := range r.k {
		in := x
		if s > 0 {
			h := dt * rk4Offsets[s]
			for i := 0; i < n; i++ {
				r.stage[i] = x[i] + h*r.k[s-1][i]
			}
			in = r.stage
		}
		copy(r.k[s], dyn.Derive(in, u, t+dt*rk4Offsets[s]))
	}

	next := make(dynamo.State, n)
	delta := make(dynamo.State, n)
	for i := 0; i < n; i++ {
		for s, w := range rk4Weights {
			delta[i] += dt * w * r.k[s][i]
		}
		next[i] = x[i] + delta[i]
	}
	return next, delta
}
