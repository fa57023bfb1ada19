package sim

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/san-kum/lorenzbox/internal/config"
	"github.com/san-kum/lorenzbox/internal/dynamo"
	"github.com/san-kum/lorenzbox/internal/integrators"
	"github.com/san-kum/lorenzbox/internal/physics"
	"github.com/san-kum/lorenzbox/internal/swarm"
	"github.com/san-kum/lorenzbox/internal/viz"
)

// ErrPaused is returned by Run on a paused scene.
var ErrPaused = errors.New("sim: scene is paused")

// Scene is the animation loop state: the parameter record, the particles
// and the flags the control surface flips between frames.
type Scene struct {
	Params *config.Params

	pool       *swarm.Pool
	sys        *physics.Lorenz
	integ      dynamo.DeltaIntegrator
	integName  string
	clock      int
	frame      int
	paused     bool
	hidden     bool
	traceArmed bool
	clear      bool

	metrics   []Metric
	observers []Observer
}

// New spawns params.ParticleCount particles. The scene keeps params and
// mutates it in place.
func New(params *config.Params) (*Scene, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	integ, err := integrators.Get(params.Integrator)
	if err != nil {
		return nil, err
	}
	s := &Scene{
		Params:    params,
		pool:      swarm.NewPool(params.Seed),
		sys:       physics.NewLorenzWith(params.Sigma, params.Rho, params.Beta),
		integ:     integ,
		integName: params.Integrator,
		clock:     viz.ClockStart,
		clear:     true,
	}
	s.pool.Respawn(params)
	return s, nil
}

func (s *Scene) AddMetric(m Metric)     { s.metrics = append(s.metrics, m) }
func (s *Scene) AddObserver(o Observer) { s.observers = append(s.observers, o) }

func (s *Scene) Particles() []swarm.Particle { return s.pool.Particles() }
func (s *Scene) Len() int                    { return s.pool.Len() }
func (s *Scene) Clock() int                  { return s.clock }
func (s *Scene) Frames() int                 { return s.frame }
func (s *Scene) Paused() bool                { return s.paused }
func (s *Scene) Hidden() bool                { return s.hidden }
func (s *Scene) System() *physics.Lorenz     { return s.sys }

// Camera is the placement the next frame will use.
func (s *Scene) Camera() viz.Placement { return viz.CameraFor(s.Params.View, s.clock) }

// Tick advances one frame. A paused scene is left untouched and ok is false.
func (s *Scene) Tick() (f Frame, ok bool) {
	if s.paused {
		return Frame{}, false
	}
	if err := s.syncIntegrator(); err != nil {
		log.Printf("keeping %s: %v", s.integName, err)
	}
	p := s.Params
	s.sys.Set(p.Sigma, p.Rho, p.Beta)
	s.pool.Step(s.sys, s.integ, p.Timestep)

	f = Frame{
		Index:  s.frame,
		Clock:  s.clock,
		Clear:  s.clear || !p.Trace,
		Cube:   viz.ShowsReferenceCube(p.View, p.Trace),
		Camera: viz.CameraFor(p.View, s.clock),
	}
	s.clear = false
	if p.View == config.ViewRotate {
		if !p.Trace {
			s.traceArmed = true
		} else if s.traceArmed {
			f.Clear = true
			s.traceArmed = false
		}
	}

	ps := s.pool.Particles()
	for _, m := range s.metrics {
		m.Observe(f, ps)
	}
	for _, o := range s.observers {
		o.OnFrame(f, ps)
	}
	s.frame++
	s.clock++
	return f, true
}

// syncIntegrator picks up integrator changes made to the record. An
// unknown name is reverted.
func (s *Scene) syncIntegrator() error {
	if s.Params.Integrator == s.integName {
		return nil
	}
	integ, err := integrators.Get(s.Params.Integrator)
	if err != nil {
		s.Params.Integrator = s.integName
		return err
	}
	s.integ, s.integName = integ, s.Params.Integrator
	return nil
}

// Run ticks the scene frames times, stopping early on cancellation or when
// every particle has left the representable range.
func (s *Scene) Run(ctx context.Context, frames int) (*Result, error) {
	if s.paused {
		return nil, ErrPaused
	}
	if frames < 0 {
		return nil, fmt.Errorf("frames must be non-negative, got %d", frames)
	}
	for _, m := range s.metrics {
		m.Reset()
	}
	res := &Result{Metrics: make(map[string]float64)}
	var err error
	for i := 0; i < frames; i++ {
		select {
		case <-ctx.Done():
			err = fmt.Errorf("%w: %w", dynamo.ErrContextCanceled, ctx.Err())
		default:
		}
		if err != nil {
			break
		}
		if _, ok := s.Tick(); !ok {
			break
		}
		res.Frames++
		if s.Len() > 0 && s.Diverged() == s.Len() {
			err = &dynamo.SimulationError{Frame: s.frame, Wrapped: dynamo.ErrInvalidState}
			break
		}
	}
	res.Diverged = s.Diverged()
	for _, m := range s.metrics {
		res.Metrics[m.Name()] = m.Value()
	}
	return res, err
}

// Diverged counts particles whose position is no longer finite.
func (s *Scene) Diverged() int {
	n := 0
	ps := s.pool.Particles()
	for i := range ps {
		if !ps[i].State().IsValid() {
			n++
		}
	}
	return n
}
