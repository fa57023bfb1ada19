package swarm

import (
	"math/rand"
	"time"

	"github.com/san-kum/lorenzbox/internal/config"
	"github.com/san-kum/lorenzbox/internal/dynamo"
)

// AttractorHeight lifts spawn points to the middle of the butterfly.
const AttractorHeight = 27.0

// MinSpread keeps the spawn cube from collapsing to a point.
const MinSpread = 1e-9

type Pool struct {
	particles []Particle
	rng       *rand.Rand
}

// NewPool creates an empty pool. A zero seed picks a time-based one.
func NewPool(seed int64) *Pool {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Pool{rng: rand.New(rand.NewSource(seed))}
}

func (p *Pool) Len() int { return len(p.particles) }

// Particles exposes the live slice, oldest first. Callers may mutate
// elements but must not retain the slice across Resize or Respawn.
func (p *Pool) Particles() []Particle { return p.particles }

// SpawnBounds returns the cube new particles are placed in.
func SpawnBounds(params *config.Params) (min, max [3]float64) {
	s := params.Spread
	if s < MinSpread {
		s = MinSpread
	}
	c := [3]float64{params.Offset.X, -params.Offset.Y, params.Offset.Z + AttractorHeight}
	for i := range c {
		min[i], max[i] = c[i]-s, c[i]+s
	}
	return min, max
}

// Spawn appends n particles inside the spawn cube.
func (p *Pool) Spawn(n int, params *config.Params) {
	if n <= 0 {
		return
	}
	s := params.Spread
	if s < MinSpread {
		s = MinSpread
	}
	pal := newPalette(p.rng)
	for i := 0; i < n; i++ {
		p.particles = append(p.particles, Particle{
			X:     p.uniform()*s + params.Offset.X,
			Y:     p.uniform()*s - params.Offset.Y,
			Z:     p.uniform()*s + params.Offset.Z + AttractorHeight,
			Color: pal.next(),
		})
	}
}

// Resize grows the pool by spawning the deficit or shrinks it by dropping
// the oldest particles.
func (p *Pool) Resize(n int, params *config.Params) {
	if n < 0 {
		n = 0
	}
	switch {
	case n > len(p.particles):
		p.Spawn(n-len(p.particles), params)
	case n < len(p.particles):
		drop := len(p.particles) - n
		p.particles = append(p.particles[:0:0], p.particles[drop:]...)
	}
}

// Respawn discards every particle and spawns params.ParticleCount new ones.
func (p *Pool) Respawn(params *config.Params) {
	p.particles = nil
	p.Spawn(params.ParticleCount, params)
}

// Step advances every particle once.
func (p *Pool) Step(sys dynamo.System, integ dynamo.DeltaIntegrator, dt float64) {
	for i := range p.particles {
		p.particles[i].Advance(sys, integ, dt)
	}
}

// uniform draws from [-1, 1).
func (p *Pool) uniform() float64 { return p.rng.Float64()*2 - 1 }
