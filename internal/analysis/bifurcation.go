package analysis

import (
	"fmt"

	"github.com/san-kum/lorenzbox/internal/dynamo"
	"github.com/san-kum/lorenzbox/internal/viz"
)

// BifurcationPoint holds the local maxima of one state variable for one
// parameter value.
type BifurcationPoint struct {
	Param  float64
	Maxima []float64
}

// Sweep describes a bifurcation sweep over one parameter.
type Sweep struct {
	Param      string
	Min, Max   float64
	Steps      int
	StateIndex int
	Dt         float64
	// Transient time is integrated and discarded before recording.
	Transient, Record float64
}

// BifurcationDiagram sweeps a parameter and records the local maxima of the
// chosen state variable (the Lorenz map when sweeping rho over z). The
// parameter is restored afterwards.
func BifurcationDiagram(dyn dynamo.System, integ dynamo.Integrator, x0 dynamo.State, sw Sweep) ([]BifurcationPoint, error) {
	tunable, ok := dyn.(dynamo.Configurable)
	if !ok {
		return nil, fmt.Errorf("%T: %w", dyn, dynamo.ErrUnknownParameter)
	}
	orig, ok := tunable.GetParams()[sw.Param]
	if !ok {
		return nil, fmt.Errorf("%s: %w", sw.Param, dynamo.ErrUnknownParameter)
	}
	if sw.StateIndex < 0 || sw.StateIndex >= len(x0) || sw.Dt <= 0 {
		return nil, dynamo.ErrParameterBounds
	}
	defer tunable.SetParam(sw.Param, orig)

	steps := max(sw.Steps, 2)
	stride := (sw.Max - sw.Min) / float64(steps-1)
	ctrl := make(dynamo.Control, dyn.ControlDim())

	results := make([]BifurcationPoint, 0, steps)
	for i := 0; i < steps; i++ {
		param := sw.Min + float64(i)*stride
		if err := tunable.SetParam(sw.Param, param); err != nil {
			return nil, err
		}

		x := x0.Clone()
		t := 0.0
		for ; t < sw.Transient; t += sw.Dt {
			x = integ.Step(dyn, x, ctrl, t, sw.Dt)
		}

		var maxima []float64
		prev2, prev := x[sw.StateIndex], x[sw.StateIndex]
		for end := t + sw.Record; t < end; t += sw.Dt {
			x = integ.Step(dyn, x, ctrl, t, sw.Dt)
			if !x.IsValid() {
				break
			}
			cur := x[sw.StateIndex]
			if prev > prev2 && prev >= cur {
				maxima = append(maxima, prev)
			}
			prev2, prev = prev, cur
		}
		results = append(results, BifurcationPoint{Param: param, Maxima: maxima})
	}
	return results, nil
}

// BifurcationCanvas plots the diagram on a Braille canvas of w x h cells,
// parameter along x and maxima along y.
func BifurcationCanvas(data []BifurcationPoint, w, h int) *viz.Canvas {
	c := viz.NewCanvas(w, h)
	var lo, hi float64
	found := false
	for _, p := range data {
		for _, v := range p.Maxima {
			if !found {
				lo, hi, found = v, v, true
			}
			lo, hi = min(lo, v), max(hi, v)
		}
	}
	if !found {
		return c
	}
	if hi == lo {
		hi = lo + 1
	}

	dotsW, dotsH := c.Width*2, c.Height*4
	for i, p := range data {
		col := i * dotsW / len(data)
		for _, v := range p.Maxima {
			row := dotsH - 1 - int((v-lo)/(hi-lo)*float64(dotsH-1))
			c.Set(col, row)
		}
	}
	return c
}
