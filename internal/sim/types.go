package sim

import (
	"github.com/san-kum/lorenzbox/internal/swarm"
	"github.com/san-kum/lorenzbox/internal/viz"
)

// Frame describes one unpaused tick to the renderers.
type Frame struct {
	Index int
	// Clock is the orbit clock the frame is drawn with, before the tick
	// advanced it.
	Clock int
	// Clear asks the renderer to wipe its frame buffer before drawing.
	Clear bool
	// Cube asks for the orbit reference cube.
	Cube   bool
	Camera viz.Placement
}

type Observer interface {
	OnFrame(f Frame, particles []swarm.Particle)
}

type Metric interface {
	Name() string
	Observe(f Frame, particles []swarm.Particle)
	Value() float64
	Reset()
}

type Result struct {
	Frames   int
	Diverged int
	Metrics  map[string]float64
}
