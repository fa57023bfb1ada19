package control

import (
	"errors"
	"math"
	"testing"

	"github.com/san-kum/lorenzbox/internal/config"
	"github.com/san-kum/lorenzbox/internal/sim"
)

func newSurface(t *testing.T) *Surface {
	t.Helper()
	p := config.DefaultConfig()
	p.Seed = 3
	p.ParticleCount = 10
	scene, err := sim.New(p)
	if err != nil {
		t.Fatal(err)
	}
	return NewSurface(scene)
}

func TestSliderClampsAndSnaps(t *testing.T) {
	s := newSurface(t)
	f := s.MustField(KeyTimestep)
	tests := []struct {
		in, want float64
	}{
		{0.005, 0.005},
		{0.00504, 0.005},
		{1, 0.012},
		{-3, 0.0001},
		{math.NaN(), 0.0001},
	}
	for _, tt := range tests {
		if err := f.SetValue(tt.in); err != nil {
			t.Fatalf("SetValue(%v): %v", tt.in, err)
		}
		if math.Abs(s.Scene().Params.Timestep-tt.want) > 1e-12 {
			t.Errorf("SetValue(%v) stored %v, want %v", tt.in, s.Scene().Params.Timestep, tt.want)
		}
	}
}

func TestSliderTextGoesThroughSlider(t *testing.T) {
	s := newSurface(t)
	f := s.MustField(KeySize)
	if err := f.SetText(" 45 "); err != nil {
		t.Fatal(err)
	}
	if f.Value() != 30 {
		t.Errorf("size = %v, want 30", f.Value())
	}
	if err := f.SetText("7.6"); err != nil {
		t.Fatal(err)
	}
	if f.Text() != "8" {
		t.Errorf("text = %q", f.Text())
	}
}

func TestNumberInput(t *testing.T) {
	s := newSurface(t)
	f := s.MustField(KeyY)
	if err := f.SetText("-1234.5"); err != nil {
		t.Fatal(err)
	}
	if s.Scene().Params.Offset.Y != -1234.5 {
		t.Errorf("offset.y = %v", s.Scene().Params.Offset.Y)
	}
	for _, bad := range []string{"", "-", "abc", "NaN", "Inf"} {
		if err := f.SetText(bad); !errors.Is(err, ErrBadInput) {
			t.Errorf("SetText(%q) err = %v", bad, err)
		}
	}
	if s.Scene().Params.Offset.Y != -1234.5 {
		t.Errorf("bad input changed the record: %v", s.Scene().Params.Offset.Y)
	}
}

func TestParticleSliderResizes(t *testing.T) {
	s := newSurface(t)
	f := s.MustField(KeyParticles)
	if err := f.SetText("25"); err != nil {
		t.Fatal(err)
	}
	if s.Scene().Len() != 25 {
		t.Errorf("len = %d", s.Scene().Len())
	}
	if err := f.SetValue(0); err != nil {
		t.Fatal(err)
	}
	if s.Scene().Len() != 1 {
		t.Errorf("len = %d, want 1", s.Scene().Len())
	}
}

func TestWrongKindAccessors(t *testing.T) {
	s := newSurface(t)
	if err := s.MustField(KeyPause).SetValue(1); !errors.Is(err, ErrBadInput) {
		t.Errorf("button SetValue err = %v", err)
	}
	if err := s.MustField(KeyTrace).Select("x"); !errors.Is(err, ErrBadInput) {
		t.Errorf("checkbox Select err = %v", err)
	}
	if s.MustField(KeyRespawn).Checked() {
		t.Error("button reports checked")
	}
}

func TestSelectors(t *testing.T) {
	s := newSurface(t)
	view := s.MustField(KeyView)
	if view.SelectedIndex() != 0 {
		t.Errorf("index = %d", view.SelectedIndex())
	}
	if err := view.Select("bottom"); err != nil {
		t.Fatal(err)
	}
	if view.SelectedIndex() != 2 {
		t.Errorf("index = %d", view.SelectedIndex())
	}
	if err := view.Select("fisheye"); err == nil {
		t.Error("unknown view accepted")
	}
	integ := s.MustField(KeyIntegrator)
	if err := integ.Select("rk4"); err != nil || integ.Selected() != "rk4" {
		t.Errorf("rk4: %v, selected %q", err, integ.Selected())
	}
}

func TestKindString(t *testing.T) {
	if KindCheckbox.String() != "checkbox" || Kind(42).String() != "Kind(42)" {
		t.Error("unexpected Kind strings")
	}
}
