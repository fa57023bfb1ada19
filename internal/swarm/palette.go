package swarm

import (
	"math/rand"

	"github.com/lucasb-eyer/go-colorful"
)

// palette hands out colours with one channel saturated. It is reset per
// spawn batch; the channel that is not touched by a draw keeps whatever the
// previous draw of the batch left in it.
type palette struct {
	rng *rand.Rand
	ch  [3]uint8
}

func newPalette(rng *rand.Rand) *palette {
	return &palette{rng: rng}
}

func (p *palette) next() colorful.Color {
	full := p.rng.Intn(3)
	p.ch[full] = 255
	p.ch[(full+1+p.rng.Intn(2))%3] = uint8(p.rng.Intn(256))
	return colorful.Color{
		R: float64(p.ch[0]) / 255,
		G: float64(p.ch[1]) / 255,
		B: float64(p.ch[2]) / 255,
	}
}
