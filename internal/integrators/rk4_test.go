package integrators

import (
	"math"
	"testing"

	"github.com/san-kum/lorenzbox/internal/dynamo"
)

type simpleDynamics struct{}

func (s *simpleDynamics) Derive(x dynamo.State, u dynamo.Control, t float64) dynamo.State {
	return dynamo.State{x[1], -x[0]}
}

func (s *simpleDynamics) StateDim() int   { return 2 }
func (s *simpleDynamics) ControlDim() int { return 0 }

func TestRK4Accuracy(t *testing.T) {
	dyn := &simpleDynamics{}
	integ := NewRK4()

	x0 := dynamo.State{1.0, 0.0}
	u := dynamo.Control{}
	dt := 0.01
	steps := 100

	x := x0
	for i := 0; i < steps; i++ {
		x = integ.Step(dyn, x, u, float64(i)*dt, dt)
	}

	expectedX := math.Cos(float64(steps) * dt)
	expectedV := -math.Sin(float64(steps) * dt)

	if math.Abs(x[0]-expectedX) > 1e-4 {
		t.Errorf("position error too large: got %.6f, expected %.6f", x[0], expectedX)
	}

	if math.Abs(x[1]-expectedV) > 1e-4 {
		t.Errorf("velocity error too large: got %.6f, expected %.6f", x[1], expectedV)
	}
}

func TestRK4StepDelta(t *testing.T) {
	dyn := &simpleDynamics{}
	x := dynamo.State{1.0, 0.0}
	next, delta := NewRK4().StepDelta(dyn, x, nil, 0, 0.01)
	for i := range x {
		if math.Abs(x[i]+delta[i]-next[i]) > 1e-15 {
			t.Errorf("component %d: x+delta=%v, next=%v", i, x[i]+delta[i], next[i])
		}
	}
}
