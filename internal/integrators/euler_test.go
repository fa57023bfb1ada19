package integrators

import (
	"errors"
	"testing"

	"github.com/san-kum/lorenzbox/internal/dynamo"
	"github.com/san-kum/lorenzbox/internal/physics"
)

func TestEulerLorenzStepExact(t *testing.T) {
	tests := []struct {
		name             string
		sigma, rho, beta float64
		dt               float64
		x, y, z          float64
	}{
		{"classic", 10, 28, 8.0 / 3.0, 0.01, 7, 9, 27},
		{"tiny step", 10, 28, 8.0 / 3.0, 0.0001, -3.5, 2.25, 40},
		{"custom constants", 14, 99.5, 0.5, 0.012, 0.1, -0.2, 0.3},
		{"large step", 10, 28, 8.0 / 3.0, 0.5, 1, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sys := physics.NewLorenzWith(tt.sigma, tt.rho, tt.beta)
			next, delta := NewEuler().StepDelta(sys, dynamo.State{tt.x, tt.y, tt.z}, nil, 0, tt.dt)

			dx := tt.sigma * (tt.y - tt.x)
			dy := tt.x*(tt.rho-tt.z) - tt.y
			dz := tt.x*tt.y - tt.beta*tt.z
			want := dynamo.State{tt.x + dx*tt.dt, tt.y + dy*tt.dt, tt.z + dz*tt.dt}
			wantDelta := dynamo.State{dx * tt.dt, dy * tt.dt, dz * tt.dt}

			for i := range want {
				if next[i] != want[i] {
					t.Errorf("next[%d] = %v, want %v", i, next[i], want[i])
				}
				if delta[i] != wantDelta[i] {
					t.Errorf("delta[%d] = %v, want %v", i, delta[i], wantDelta[i])
				}
			}
		})
	}
}

func TestEulerStepMatchesStepDelta(t *testing.T) {
	sys := physics.NewLorenz()
	x := dynamo.State{1, 2, 3}
	a := NewEuler().Step(sys, x, nil, 0, 0.01)
	b, _ := NewEuler().StepDelta(sys, x, nil, 0, 0.01)
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("component %d differs: %v vs %v", i, a[i], b[i])
		}
	}
	if x[0] != 1 || x[1] != 2 || x[2] != 3 {
		t.Errorf("input state mutated: %v", x)
	}
}

func TestRegistry(t *testing.T) {
	for _, name := range Names() {
		if _, err := Get(name); err != nil {
			t.Errorf("Get(%q): %v", name, err)
		}
	}
	if _, err := Get("leapfrog"); !errors.Is(err, dynamo.ErrUnknownIntegrator) {
		t.Errorf("expected ErrUnknownIntegrator, got %v", err)
	}
}
