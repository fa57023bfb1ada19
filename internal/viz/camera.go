package viz

import (
	"math"

	"github.com/san-kum/lorenzbox/internal/config"
)

// ClockStart is where the orbit clock begins; the butterfly faces the
// viewer at this angle with default settings.
const ClockStart = -600

// OrbitPeriod is the number of frames per radian of orbit.
const OrbitPeriod = 360.0

// Placement positions a look-at camera.
type Placement struct {
	Eye, Target, Up Vec3
	FOV             float64
}

// CameraFor places the camera for a view mode at the given clock tick.
// Unknown modes fall back to the orbit.
func CameraFor(view config.View, clock int) Placement {
	switch view {
	case config.ViewTop:
		return Placement{Eye: Vec3{0, 0, 212 * Scale}, Up: Vec3{0, 1, 0}, FOV: 0.3}
	case config.ViewBottom:
		return Placement{Eye: Vec3{0, 0, -212 * Scale}, Up: Vec3{0, 1, 0}, FOV: 0.3}
	case config.ViewSide:
		return Placement{Eye: Vec3{150 * Scale, -150 * Scale, 0}, Up: Vec3{0, 0, -1}, FOV: 0.3}
	default:
		a := float64(clock) / OrbitPeriod
		return Placement{
			Eye: Vec3{math.Sin(a) * 100 * Scale, math.Cos(a) * 100 * Scale, 0},
			Up:  Vec3{0, 0, -1},
			FOV: math.Pi / 3,
		}
	}
}

// ReferenceCubeSize is the edge of the cube drawn in the orbit view.
const ReferenceCubeSize = 60 * Scale

// ShowsReferenceCube reports whether the orbit helper cube is drawn.
func ShowsReferenceCube(view config.View, trace bool) bool {
	switch view {
	case config.ViewTop, config.ViewBottom, config.ViewSide:
		return false
	}
	return !trace
}
