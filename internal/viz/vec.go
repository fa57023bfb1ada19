package viz

import "math"

type Vec3 struct {
	X, Y, Z float64
}

// Vec3 methods.
func (v Vec3) Add(o Vec3) Vec3      { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }
func (v Vec3) Sub(o Vec3) Vec3      { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }
func (v Vec3) Scale(s float64) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }
func (v Vec3) Length() float64      { return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z) }
func (v Vec3) Normalize() Vec3 {
	if l := v.Length(); l != 0 {
		return v.Scale(1 / l)
	}
	return Vec3{}
}
func (v Vec3) Dot(o Vec3) float64 { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }
func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{v.Y*o.Z - v.Z*o.Y, v.Z*o.X - v.X*o.Z, v.X*o.Y - v.Y*o.X}
}

// AngleBetween returns the unsigned angle in [0, π]. Zero vectors yield 0.
func (v Vec3) AngleBetween(o Vec3) float64 {
	d := v.Length() * o.Length()
	if d == 0 {
		return 0
	}
	c := v.Dot(o) / d
	return math.Acos(math.Max(-1, math.Min(1, c)))
}

// Rotate turns v by angle radians around axis (right-hand rule).
func (v Vec3) Rotate(axis Vec3, angle float64) Vec3 {
	k := axis.Normalize()
	if k == (Vec3{}) || angle == 0 {
		return v
	}
	c, s := math.Cos(angle), math.Sin(angle)
	return v.Scale(c).Add(k.Cross(v).Scale(s)).Add(k.Scale(k.Dot(v) * (1 - c)))
}
