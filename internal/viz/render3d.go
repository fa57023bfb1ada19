package viz

import (
	"math"
	"sort"
)

// Camera projects world points through a Placement onto a 2D plane.
type Camera struct {
	eye                Vec3
	forward, right, up Vec3
	focal              float64
	Near               float64
}

func NewCamera(p Placement) *Camera {
	c := &Camera{Near: 0.1}
	c.Place(p)
	return c
}

// Place re-aims the camera.
func (c *Camera) Place(p Placement) {
	c.eye = p.Eye
	c.forward = p.Target.Sub(p.Eye).Normalize()
	c.right = c.forward.Cross(p.Up).Normalize()
	c.up = c.right.Cross(c.forward)
	c.focal = 1 / math.Tan(p.FOV/2)
}

// Project converts 3D world coordinates to 2D screen coordinates.
// Returns x, y, depth, and visibility.
func (c *Camera) Project(p Vec3, sw, sh int) (int, int, float64, bool) {
	d := p.Sub(c.eye)
	depth := d.Dot(c.forward)
	if depth <= c.Near {
		return 0, 0, 0, false
	}
	half := float64(sh) / 2
	x := d.Dot(c.right) / depth * c.focal
	y := d.Dot(c.up) / depth * c.focal
	sx := int(x*half) + sw/2
	sy := int(-y*half) + sh/2
	return sx, sy, depth, sx >= 0 && sx < sw && sy >= 0 && sy < sh
}

type Edge struct {
	Start, End Vec3
	Color      rune
}

type Wireframe struct{ Edges []Edge }

func NewWireframe() *Wireframe                 { return &Wireframe{Edges: make([]Edge, 0)} }
func (w *Wireframe) AddEdge(s, e Vec3, c rune) { w.Edges = append(w.Edges, Edge{s, e, c}) }
func (w *Wireframe) Clear()                    { w.Edges = w.Edges[:0] }

// AddBox adds the twelve edges of a particle box.
func (w *Wireframe) AddBox(b Box, c rune) {
	v := b.Corners()
	for _, e := range boxEdges {
		w.AddEdge(v[e[0]], v[e[1]], c)
	}
}

type ProjectedEdge struct {
	X1, Y1, X2, Y2 int
	Depth          float64
	Color          rune
	Visible        bool
}

// Render3D draws the wireframe to the canvas using a simple painter's algorithm.
func Render3D(c *Canvas, w *Wireframe, cam *Camera) {
	if c == nil || w == nil || cam == nil {
		return
	}
	cw, ch := c.Width*2, c.Height*4
	proj := make([]ProjectedEdge, 0, len(w.Edges))
	for _, e := range w.Edges {
		x1, y1, d1, v1 := cam.Project(e.Start, cw, ch)
		x2, y2, d2, v2 := cam.Project(e.End, cw, ch)
		if (v1 || v2) && d1 > 0 && d2 > 0 {
			proj = append(proj, ProjectedEdge{x1, y1, x2, y2, (d1 + d2) / 2, e.Color, true})
		}
	}
	sort.Slice(proj, func(i, j int) bool { return proj[i].Depth > proj[j].Depth })
	for _, e := range proj {
		if e.X1 == e.X2 && e.Y1 == e.Y2 {
			c.Set(e.X1, e.Y1)
		} else {
			c.DrawLine(e.X1, e.Y1, e.X2, e.Y2)
		}
	}
}

// CreateCubeWireframe builds an axis-aligned cube centred on the origin.
func CreateCubeWireframe(size float64) *Wireframe {
	w := NewWireframe()
	w.AddBox(Box{Axis: Vec3{0, 0, 1}, Length: size, Size: size}, '█')
	return w
}
