package metrics

import (
	"math"

	"github.com/san-kum/lorenzbox/internal/sim"
	"github.com/san-kum/lorenzbox/internal/swarm"
)

// MeanSpeed averages the per-frame mean particle speed (length of the last
// step's increment) over every observed frame.
type MeanSpeed struct {
	name    string
	sum     float64
	samples int
	last    float64
}

func NewMeanSpeed() *MeanSpeed {
	return &MeanSpeed{name: "mean_speed"}
}

func (m *MeanSpeed) Name() string { return m.name }

func (m *MeanSpeed) Observe(_ sim.Frame, ps []swarm.Particle) {
	m.last = FrameSpeed(ps)
	m.sum += m.last
	m.samples++
}

func (m *MeanSpeed) Value() float64 {
	if m.samples == 0 {
		return 0
	}
	return m.sum / float64(m.samples)
}

// Last is the mean speed of the most recent frame.
func (m *MeanSpeed) Last() float64 { return m.last }

func (m *MeanSpeed) Reset() {
	m.sum, m.samples, m.last = 0, 0, 0
}

// FrameSpeed is the mean speed of ps, skipping diverged particles. A
// particle can still sit at a finite position while its increment overflows,
// so the speed itself must be finite too.
func FrameSpeed(ps []swarm.Particle) float64 {
	sum, n := 0.0, 0
	for i := range ps {
		if !ps[i].State().IsValid() {
			continue
		}
		v := ps[i].Speed()
		if math.IsNaN(v) || math.IsInf(v, 0) || math.IsInf(sum+v, 0) {
			continue
		}
		sum += v
		n++
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}
