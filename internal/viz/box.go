package viz

import (
	"math"

	"github.com/san-kum/lorenzbox/internal/swarm"
)

const (
	// Scale maps attractor units to world units.
	Scale = 4.0
	// TailScale stretches boxes along their direction of travel.
	TailScale = Scale * 1
	// AttractorCenterZ is the height the world is shifted down by so the
	// butterfly sits around the origin.
	AttractorCenterZ = 27.0
)

// WorldShift centres the attractor in view.
var WorldShift = Vec3{0, 0, -AttractorCenterZ * Scale}

// XAxis is the box's reference direction of travel.
var XAxis = Vec3{1, 0, 0}

// Box is a speed-stretched particle ready to draw: translate to Center,
// rotate by Angle around Axis, shift by Offset along the local x axis and
// draw a Length x Size x Size cuboid.
type Box struct {
	Center Vec3
	Axis   Vec3
	Angle  float64
	Offset float64
	Length float64
	Size   float64
}

// BoxFor builds the box for a particle at pos moving by dir per step.
func BoxFor(pos, dir Vec3, size float64) Box {
	speed := dir.Length()
	angle := math.Abs(XAxis.AngleBetween(dir))
	axis := XAxis.Cross(dir).Normalize()
	if axis == (Vec3{}) {
		if angle > math.Pi/2 {
			axis = Vec3{0, 1, 0}
		} else {
			axis, angle = Vec3{0, 0, 1}, 0
		}
	}
	return Box{
		Center: pos.Scale(Scale).Add(WorldShift),
		Axis:   axis,
		Angle:  angle,
		Offset: -speed * TailScale / 2,
		Length: BoxLength(speed, size),
		Size:   size,
	}
}

// BoxLength is max(speed*TailScale, size).
func BoxLength(speed, size float64) float64 {
	return math.Max(speed*TailScale, size)
}

// Local maps a point in box space to world space.
func (b Box) Local(p Vec3) Vec3 {
	return p.Add(Vec3{b.Offset, 0, 0}).Rotate(b.Axis, b.Angle).Add(b.Center)
}

// Corners returns the eight world-space vertices, bottom face first.
func (b Box) Corners() [8]Vec3 {
	l, s := b.Length/2, b.Size/2
	local := [8]Vec3{
		{-l, -s, -s}, {l, -s, -s}, {l, s, -s}, {-l, s, -s},
		{-l, -s, s}, {l, -s, s}, {l, s, s}, {-l, s, s},
	}
	var out [8]Vec3
	for i, p := range local {
		out[i] = b.Local(p)
	}
	return out
}

// boxEdges indexes Corners into the twelve cuboid edges.
var boxEdges = [12][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}, {4, 5}, {5, 6}, {6, 7}, {7, 4}, {0, 4}, {1, 5}, {2, 6}, {3, 7}}

// ParticleBox is BoxFor applied to a live particle.
func ParticleBox(p *swarm.Particle, size float64) Box {
	return BoxFor(Vec3{p.X, p.Y, p.Z}, Vec3{p.Dir[0], p.Dir[1], p.Dir[2]}, size)
}
