package control

import (
	"fmt"

	"github.com/san-kum/lorenzbox/internal/config"
	"github.com/san-kum/lorenzbox/internal/integrators"
	"github.com/san-kum/lorenzbox/internal/sim"
)

// Field keys.
const (
	KeyPause      = "pause"
	KeyHide       = "hide"
	KeyTimestep   = "timestep"
	KeyParticles  = "particles"
	KeySize       = "size"
	KeySigma      = "sigma"
	KeyRho        = "rho"
	KeyBeta       = "beta"
	KeyOutlines   = "outlines"
	KeyView       = "view"
	KeyTrace      = "trace"
	KeyIntegrator = "integrator"
	KeyRespawn    = "respawn"
	KeySpread     = "spread"
	KeyX          = "x"
	KeyY          = "y"
	KeyZ          = "z"
)

// Surface exposes a scene's parameter record and handlers to widgets.
type Surface struct {
	scene  *sim.Scene
	fields []*Field
	byKey  map[string]*Field
	onHide []func(hidden bool)
}

func NewSurface(scene *sim.Scene) *Surface {
	s := &Surface{scene: scene, byKey: make(map[string]*Field)}
	p := scene.Params

	s.add(&Field{Key: KeyPause, Kind: KindButton, Fixed: true, press: s.TogglePause,
		label: func() string { return pick(scene.Paused(), "resume", "pause") }})
	s.add(&Field{Key: KeyHide, Kind: KindButton, Fixed: true, press: s.ToggleHidden,
		label: func() string { return pick(scene.Hidden(), "show controls", "hide controls") }})

	s.add(slider(KeyTimestep, "timestep", config.TimestepRange, 5, &p.Timestep))
	s.add(&Field{Key: KeyParticles, Kind: KindSlider, Range: config.CountRange, Digits: 4,
		label: static("number of particles"),
		get:   func() float64 { return float64(p.ParticleCount) },
		set:   func(v float64) { s.SetParticleCount(int(v)) }})
	s.add(slider(KeySize, "particle size", config.SizeRange, 2, &p.ParticleSize))
	s.add(slider(KeySigma, "sigma", config.SigmaRange, 4, &p.Sigma))
	s.add(slider(KeyRho, "rho", config.RhoRange, 4, &p.Rho))
	s.add(slider(KeyBeta, "beta", config.BetaRange, 4, &p.Beta))

	s.add(checkbox(KeyOutlines, "particle outlines", &p.Outlines))
	views := make([]string, len(config.Views))
	for i, v := range config.Views {
		views[i] = string(v)
	}
	s.add(&Field{Key: KeyView, Kind: KindSelect, Options: views,
		label: static("view"),
		pick:  func() string { return string(p.View) },
		choose: func(o string) error {
			v, err := config.ParseView(o)
			if err != nil {
				return err
			}
			s.SetView(v)
			return nil
		}})
	s.add(checkbox(KeyTrace, "trace", &p.Trace))
	s.add(&Field{Key: KeyIntegrator, Kind: KindSelect, Options: integrators.Names(),
		label:  static("integrator"),
		pick:   func() string { return p.Integrator },
		choose: scene.SetIntegrator})
	s.add(&Field{Key: KeyRespawn, Kind: KindButton, press: s.Respawn, label: static("respawn")})

	s.add(number(KeySpread, "spread", 4, &p.Spread))
	s.add(number(KeyX, "X", 3, &p.Offset.X))
	s.add(number(KeyY, "Y", 3, &p.Offset.Y))
	s.add(number(KeyZ, "Z", 3, &p.Offset.Z))
	return s
}

func (s *Surface) add(f *Field) {
	s.fields = append(s.fields, f)
	s.byKey[f.Key] = f
}

// Fields lists every field in panel order.
func (s *Surface) Fields() []*Field { return s.fields }

// Field returns the field for key, or nil.
func (s *Surface) Field(key string) *Field { return s.byKey[key] }

// MustField panics on unknown keys; layouts use it with the Key constants.
func (s *Surface) MustField(key string) *Field {
	f := s.byKey[key]
	if f == nil {
		panic(fmt.Sprintf("control: no field %q", key))
	}
	return f
}

func (s *Surface) Scene() *sim.Scene { return s.scene }

// OnHide registers fn to run after the hidden flag flips.
func (s *Surface) OnHide(fn func(hidden bool)) { s.onHide = append(s.onHide, fn) }

func (s *Surface) TogglePause() { s.scene.TogglePause() }

func (s *Surface) ToggleHidden() {
	h := s.scene.ToggleHidden()
	for _, fn := range s.onHide {
		fn(h)
	}
}

func (s *Surface) Respawn()               { s.scene.Respawn() }
func (s *Surface) SetParticleCount(n int) { s.scene.SetParticleCount(n) }
func (s *Surface) SetView(v config.View)  { s.scene.SetView(v) }

// Keys lists the keys of every field of kind k.
func (s *Surface) Keys(k Kind) []string {
	var out []string
	for _, f := range s.fields {
		if f.Kind == k {
			out = append(out, f.Key)
		}
	}
	return out
}

func slider(key, label string, r config.Range, digits int, v *float64) *Field {
	return &Field{Key: key, Kind: KindSlider, Range: r, Digits: digits,
		label: static(label),
		get:   func() float64 { return *v },
		set:   func(x float64) { *v = x }}
}

func number(key, label string, digits int, v *float64) *Field {
	return &Field{Key: key, Kind: KindNumber, Digits: digits,
		label: static(label),
		get:   func() float64 { return *v },
		set:   func(x float64) { *v = x }}
}

func checkbox(key, label string, b *bool) *Field {
	return &Field{Key: key, Kind: KindCheckbox,
		label:  static(label),
		on:     func() bool { return *b },
		toggle: func(x bool) { *b = x }}
}

func static(s string) func() string { return func() string { return s } }

func pick(cond bool, a, b string) string {
	if cond {
		return a
	}
	return b
}
