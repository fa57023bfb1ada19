package tui

import (
	"github.com/san-kum/lorenzbox/internal/config"
	"github.com/san-kum/lorenzbox/internal/sim"
	"github.com/san-kum/lorenzbox/internal/swarm"
	"github.com/san-kum/lorenzbox/internal/viz"
)

// Painter draws frames as wireframe boxes on a Braille canvas. It is a scene
// observer, so headless runs can paint without the terminal model.
type Painter struct {
	params *config.Params
	canvas *viz.Canvas
	wire   *viz.Wireframe
	cube   *viz.Wireframe
	cam    *viz.Camera
}

func NewPainter(params *config.Params, w, h int) *Painter {
	return &Painter{
		params: params,
		canvas: viz.NewCanvas(w, h),
		wire:   viz.NewWireframe(),
		cube:   viz.CreateCubeWireframe(viz.ReferenceCubeSize),
		cam:    viz.NewCamera(viz.CameraFor(params.View, viz.ClockStart)),
	}
}

func (p *Painter) Canvas() *viz.Canvas { return p.canvas }

func (p *Painter) OnFrame(f sim.Frame, ps []swarm.Particle) {
	if f.Clear {
		p.canvas.Clear()
	}
	p.cam.Place(f.Camera)
	p.wire.Clear()
	for i := range ps {
		if ps[i].State().IsValid() {
			p.wire.AddBox(viz.ParticleBox(&ps[i], p.params.ParticleSize), '█')
		}
	}
	viz.Render3D(p.canvas, p.wire, p.cam)
	if f.Cube {
		viz.Render3D(p.canvas, p.cube, p.cam)
	}
}
