package metrics

import (
	"math"

	"github.com/san-kum/lorenzbox/internal/sim"
	"github.com/san-kum/lorenzbox/internal/swarm"
)

// Stability is the fraction of frames in which every particle stayed within
// radius of the attractor centre.
type Stability struct {
	name       string
	radius     float64
	violations int
	samples    int
	extent     float64
}

func NewStability(radius float64) *Stability {
	return &Stability{
		name:   "stability",
		radius: radius,
	}
}

func (s *Stability) Name() string {
	return s.name
}

func (s *Stability) Observe(_ sim.Frame, ps []swarm.Particle) {
	s.samples++
	r := Extent(ps)
	s.extent = math.Max(s.extent, r)
	if r > s.radius {
		s.violations++
	}
}

func (s *Stability) Value() float64 {
	if s.samples == 0 {
		return 1.0
	}
	return 1.0 - float64(s.violations)/float64(s.samples)
}

// MaxExtent is the largest Extent seen since the last reset.
func (s *Stability) MaxExtent() float64 { return s.extent }

func (s *Stability) Reset() {
	s.violations = 0
	s.samples = 0
	s.extent = 0
}

// Extent is the largest distance of any particle from the attractor centre.
// A diverged particle makes it infinite.
func Extent(ps []swarm.Particle) float64 {
	r := 0.0
	for i := range ps {
		p := &ps[i]
		if !p.State().IsValid() {
			return math.Inf(1)
		}
		dz := p.Z - swarm.AttractorHeight
		r = math.Max(r, math.Sqrt(p.X*p.X+p.Y*p.Y+dz*dz))
	}
	return r
}
