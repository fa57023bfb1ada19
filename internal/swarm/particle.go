package swarm

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/san-kum/lorenzbox/internal/dynamo"
)

// Particle is a single point carried by the flow.
type Particle struct {
	X, Y, Z float64
	// Dir is the last step's increment (derivative times timestep).
	Dir   [3]float64
	Color colorful.Color
}

func (p *Particle) State() dynamo.State { return dynamo.State{p.X, p.Y, p.Z} }

// Speed is the length of the last increment.
func (p *Particle) Speed() float64 {
	return math.Sqrt(p.Dir[0]*p.Dir[0] + p.Dir[1]*p.Dir[1] + p.Dir[2]*p.Dir[2])
}

// RGB returns the colour as 8-bit channels.
func (p *Particle) RGB() (uint8, uint8, uint8) { return p.Color.RGB255() }

// Advance moves the particle one step and records its direction.
func (p *Particle) Advance(sys dynamo.System, integ dynamo.DeltaIntegrator, dt float64) {
	next, delta := integ.StepDelta(sys, dynamo.State{p.X, p.Y, p.Z}, nil, 0, dt)
	p.X, p.Y, p.Z = next[0], next[1], next[2]
	p.Dir = [3]float64{delta[0], delta[1], delta[2]}
}
