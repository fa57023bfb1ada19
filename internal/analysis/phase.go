package analysis

import "github.com/san-kum/lorenzbox/internal/dynamo"

// PhasePoint is a projection of a state onto two of its coordinates.
type PhasePoint struct{ X, Y float64 }

// PhasePortrait integrates from x0 for duration and projects every state
// onto coordinates xIdx and yIdx. It stops early if the state diverges.
func PhasePortrait(dyn dynamo.System, integ dynamo.Integrator, x0 dynamo.State, xIdx, yIdx int, dt, duration float64) ([]PhasePoint, error) {
	if xIdx < 0 || yIdx < 0 || xIdx >= len(x0) || yIdx >= len(x0) || dt <= 0 {
		return nil, dynamo.ErrParameterBounds
	}

	points := make([]PhasePoint, 0, int(duration/dt)+1)
	x := x0.Clone()
	ctrl := make(dynamo.Control, dyn.ControlDim())
	for t := 0.0; t < duration; t += dt {
		x = integ.Step(dyn, x, ctrl, t, dt)
		if !x.IsValid() {
			return points, &dynamo.SimulationError{Frame: len(points), Wrapped: dynamo.ErrInvalidState}
		}
		points = append(points, PhasePoint{X: x[xIdx], Y: x[yIdx]})
	}
	return points, nil
}
