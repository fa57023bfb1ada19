package config

import (
	"fmt"
	"math"
	"os"

	"github.com/san-kum/lorenzbox/internal/dynamo"
	"gopkg.in/yaml.v3"
)

const (
	DefaultSigma         = 10.0
	DefaultRho           = 28.0
	DefaultBeta          = 8.0 / 3.0
	DefaultTimestep      = 0.01
	DefaultParticleCount = 400
	DefaultParticleSize  = 1.0
	DefaultSpread        = 5.0
	DefaultOffsetX       = 7.0
	DefaultOffsetY       = -9.0
	DefaultOffsetZ       = 0.0
	DefaultIntegrator    = "euler"
)

// View selects the camera placement.
type View string

const (
	ViewRotate View = "rotate"
	ViewTop    View = "top"
	ViewBottom View = "bottom"
	ViewSide   View = "side"
)

// Views lists the selectable views in menu order.
var Views = []View{ViewRotate, ViewTop, ViewBottom, ViewSide}

func ParseView(s string) (View, error) {
	for _, v := range Views {
		if string(v) == s {
			return v, nil
		}
	}
	return "", fmt.Errorf("%q: %w", s, dynamo.ErrUnknownView)
}

// Range bounds a slider. A zero Step means continuous.
type Range struct {
	Min, Max, Step float64
}

var (
	SigmaRange    = Range{0, 50, 0.1}
	RhoRange      = Range{0, 100, 0.1}
	BetaRange     = Range{0, 10, 0.01}
	TimestepRange = Range{0.0001, 0.012, 0.0001}
	CountRange    = Range{1, 1000, 1}
	SizeRange     = Range{1, 30, 1}
)

// Clamp limits v to the range and snaps it to the nearest step above Min.
func (r Range) Clamp(v float64) float64 {
	if math.IsNaN(v) {
		return r.Min
	}
	if v < r.Min {
		v = r.Min
	}
	if v > r.Max {
		v = r.Max
	}
	if r.Step > 0 {
		v = r.Min + math.Round((v-r.Min)/r.Step)*r.Step
		if v > r.Max {
			v = r.Max
		}
	}
	return v
}

func (r Range) Contains(v float64) bool { return v >= r.Min && v <= r.Max }

type Offset struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

// Params is the single mutable record read by the integrator and renderer
// every frame and written by the control surface.
type Params struct {
	Sigma         float64 `yaml:"sigma"`
	Rho           float64 `yaml:"rho"`
	Beta          float64 `yaml:"beta"`
	Timestep      float64 `yaml:"timestep"`
	ParticleCount int     `yaml:"particles"`
	ParticleSize  float64 `yaml:"size"`
	Spread        float64 `yaml:"spread"`
	Offset        Offset  `yaml:"offset"`
	View          View    `yaml:"view"`
	Trace         bool    `yaml:"trace"`
	Outlines      bool    `yaml:"outlines"`
	Seed          int64   `yaml:"seed"`
	Integrator    string  `yaml:"integrator"`
}

func DefaultConfig() *Params {
	return &Params{
		Sigma:         DefaultSigma,
		Rho:           DefaultRho,
		Beta:          DefaultBeta,
		Timestep:      DefaultTimestep,
		ParticleCount: DefaultParticleCount,
		ParticleSize:  DefaultParticleSize,
		Spread:        DefaultSpread,
		Offset:        Offset{X: DefaultOffsetX, Y: DefaultOffsetY, Z: DefaultOffsetZ},
		View:          ViewRotate,
		Integrator:    DefaultIntegrator,
	}
}

// Clone returns an independent copy.
func (p *Params) Clone() *Params {
	c := *p
	return &c
}

// Validate reports the first field outside the range its widget enforces.
func (p *Params) Validate() error {
	checks := []struct {
		name string
		val  float64
		r    Range
	}{
		{"sigma", p.Sigma, SigmaRange},
		{"rho", p.Rho, RhoRange},
		{"beta", p.Beta, BetaRange},
		{"timestep", p.Timestep, TimestepRange},
		{"particles", float64(p.ParticleCount), CountRange},
		{"size", p.ParticleSize, SizeRange},
	}
	for _, c := range checks {
		if !c.r.Contains(c.val) {
			return fmt.Errorf("%s=%v outside [%v, %v]: %w", c.name, c.val, c.r.Min, c.r.Max, dynamo.ErrParameterBounds)
		}
	}
	for name, v := range map[string]float64{"spread": p.Spread, "offset.x": p.Offset.X, "offset.y": p.Offset.Y, "offset.z": p.Offset.Z} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%s=%v: %w", name, v, dynamo.ErrParameterBounds)
		}
	}
	if _, err := ParseView(string(p.View)); err != nil {
		return err
	}
	return nil
}

func Load(path string) (*Params, error) {
	cfg := DefaultConfig()
	if err := LoadInto(path, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadInto overlays the keys present in the file onto cfg, so a file can
// refine a preset.
func LoadInto(path string, cfg *Params) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

func Save(path string, cfg *Params) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
