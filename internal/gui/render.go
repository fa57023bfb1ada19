package gui

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/san-kum/lorenzbox/internal/viz"
)

// RenderParticles draws every live particle as a speed-stretched box.
func (a *App) RenderParticles() {
	p := a.Scene.Params
	ps := a.Scene.Particles()
	for i := range ps {
		if !ps[i].State().IsValid() {
			continue
		}
		r, g, b := ps[i].RGB()
		drawBox(viz.ParticleBox(&ps[i], p.ParticleSize), rl.NewColor(r, g, b, 255), p.Outlines)
	}
}

// drawBox applies the box transform on the matrix stack: translate to the
// centre, rotate onto the direction, slide back along local x.
func drawBox(b viz.Box, col rl.Color, outline bool) {
	rl.PushMatrix()
	rl.Translatef(float32(b.Center.X), float32(b.Center.Y), float32(b.Center.Z))
	if b.Angle != 0 {
		rl.Rotatef(float32(b.Angle*180/math.Pi), float32(b.Axis.X), float32(b.Axis.Y), float32(b.Axis.Z))
	}
	rl.Translatef(float32(b.Offset), 0, 0)

	size := rl.NewVector3(float32(b.Length), float32(b.Size), float32(b.Size))
	rl.DrawCubeV(rl.Vector3{}, size, col)
	if outline {
		rl.DrawCubeWiresV(rl.Vector3{}, size, ColOutline)
	}
	rl.PopMatrix()
}

// RenderReferenceCube outlines the orbit helper cube around the origin.
func (a *App) RenderReferenceCube() {
	s := float32(viz.ReferenceCubeSize)
	rl.DrawCubeWiresV(rl.Vector3{}, rl.NewVector3(s, s, s), ColCube)
}
