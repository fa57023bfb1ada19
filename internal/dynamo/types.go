package dynamo

import "math"

// State is a point in phase space; for the attractor it is (x, y, z).
type State []float64

func (s State) Clone() State {
	return append(State(nil), s...)
}

// IsValid reports whether every component is finite.
func (s State) IsValid() bool {
	for _, v := range s {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Distance is the Euclidean distance to o over the shared components.
func (s State) Distance(o State) float64 {
	sum := 0.0
	for i := 0; i < min(len(s), len(o)); i++ {
		d := s[i] - o[i]
		sum += d * d
	}
	return math.Sqrt(sum)
}

// Control is an external input. The attractor takes none, but the system
// signature keeps the slot so integrators stay general.
type Control []float64

type System interface {
	Derive(x State, u Control, t float64) State
	StateDim() int
	ControlDim() int
}

type Integrator interface {
	Step(dyn System, x State, u Control, t float64, dt float64) State
}

// DeltaIntegrator reports the increment it applied alongside the new state.
// Particles use the increment as their direction of travel.
type DeltaIntegrator interface {
	Integrator
	StepDelta(dyn System, x State, u Control, t float64, dt float64) (next, delta State)
}

// Configurable exposes named parameters to the control surface and to
// parameter sweeps.
type Configurable interface {
	GetParams() map[string]float64
	SetParam(name string, value float64) error
}
