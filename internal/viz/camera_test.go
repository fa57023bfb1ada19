package viz

import (
	"math"
	"testing"

	"github.com/san-kum/lorenzbox/internal/config"
)

func TestCameraForFixedViews(t *testing.T) {
	tests := []struct {
		view config.View
		eye  Vec3
		up   Vec3
	}{
		{config.ViewTop, Vec3{0, 0, 848}, Vec3{0, 1, 0}},
		{config.ViewBottom, Vec3{0, 0, -848}, Vec3{0, 1, 0}},
		{config.ViewSide, Vec3{600, -600, 0}, Vec3{0, 0, -1}},
	}
	for _, tt := range tests {
		t.Run(string(tt.view), func(t *testing.T) {
			for _, clock := range []int{ClockStart, 0, 1234} {
				p := CameraFor(tt.view, clock)
				if !near(p.Eye, tt.eye) || !near(p.Up, tt.up) {
					t.Errorf("clock %d: eye %v up %v", clock, p.Eye, p.Up)
				}
				if p.FOV != 0.3 {
					t.Errorf("fov = %v", p.FOV)
				}
				if p.Target != (Vec3{}) {
					t.Errorf("target = %v", p.Target)
				}
			}
		})
	}
}

func TestCameraForOrbit(t *testing.T) {
	for _, clock := range []int{ClockStart, -1, 0, 360, 9000} {
		p := CameraFor(config.ViewRotate, clock)
		a := float64(clock) / 360
		want := Vec3{math.Sin(a) * 400, math.Cos(a) * 400, 0}
		if !near(p.Eye, want) {
			t.Errorf("clock %d: eye %v, want %v", clock, p.Eye, want)
		}
		if math.Abs(p.FOV-math.Pi/3) > eps {
			t.Errorf("fov = %v", p.FOV)
		}
		if math.Abs(p.Eye.Length()-400) > 1e-6 {
			t.Errorf("orbit radius = %v", p.Eye.Length())
		}
	}
}

func TestCameraForUnknownFallsBackToOrbit(t *testing.T) {
	got := CameraFor(config.View("sideways"), 42)
	want := CameraFor(config.ViewRotate, 42)
	if got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestShowsReferenceCube(t *testing.T) {
	tests := []struct {
		view  config.View
		trace bool
		want  bool
	}{
		{config.ViewRotate, false, true},
		{config.ViewRotate, true, false},
		{config.ViewTop, false, false},
		{config.ViewBottom, false, false},
		{config.ViewSide, true, false},
	}
	for _, tt := range tests {
		if got := ShowsReferenceCube(tt.view, tt.trace); got != tt.want {
			t.Errorf("ShowsReferenceCube(%s, %v) = %v", tt.view, tt.trace, got)
		}
	}
}

func TestProjectCentresTarget(t *testing.T) {
	for _, v := range config.Views {
		cam := NewCamera(CameraFor(v, ClockStart))
		x, y, depth, ok := cam.Project(Vec3{}, 200, 100)
		if !ok || x != 100 || y != 50 || depth <= 0 {
			t.Errorf("%s: origin projects to (%d, %d, %v, %v)", v, x, y, depth, ok)
		}
	}
}

func TestProjectBehindCamera(t *testing.T) {
	cam := NewCamera(CameraFor(config.ViewTop, 0))
	if _, _, _, ok := cam.Project(Vec3{0, 0, 2000}, 100, 100); ok {
		t.Error("point behind the eye reported visible")
	}
}

func TestRender3DDrawsBox(t *testing.T) {
	c := NewCanvas(40, 20)
	w := CreateCubeWireframe(ReferenceCubeSize)
	Render3D(c, w, NewCamera(CameraFor(config.ViewRotate, ClockStart)))
	if c.Count() == 0 {
		t.Fatal("nothing drawn")
	}
	c.Clear()
	if c.Count() != 0 {
		t.Error("clear left dots behind")
	}
}
