package main

import (
	"fmt"

	"github.com/san-kum/lorenzbox/internal/config"
	"github.com/spf13/cobra"
)

var (
	configFile string
	preset     string
	sigma      float64
	rho        float64
	beta       float64
	timestep   float64
	particles  int
	size       float64
	spread     float64
	offsetX    float64
	offsetY    float64
	offsetZ    float64
	view       string
	trace      bool
	outlines   bool
	seed       int64
	integrator string
)

func addParamFlags(cmd *cobra.Command) {
	f := cmd.PersistentFlags()
	f.StringVar(&configFile, "config", "", "config file path (yaml)")
	f.StringVar(&preset, "preset", "", "start from a preset (see presets)")
	f.Float64Var(&sigma, "sigma", config.DefaultSigma, "lorenz sigma")
	f.Float64Var(&rho, "rho", config.DefaultRho, "lorenz rho")
	f.Float64Var(&beta, "beta", config.DefaultBeta, "lorenz beta")
	f.Float64Var(&timestep, "dt", config.DefaultTimestep, "timestep")
	f.IntVar(&particles, "particles", config.DefaultParticleCount, "number of particles")
	f.Float64Var(&size, "size", config.DefaultParticleSize, "particle size")
	f.Float64Var(&spread, "spread", config.DefaultSpread, "spawn spread")
	f.Float64Var(&offsetX, "x", config.DefaultOffsetX, "spawn offset x")
	f.Float64Var(&offsetY, "y", config.DefaultOffsetY, "spawn offset y")
	f.Float64Var(&offsetZ, "z", config.DefaultOffsetZ, "spawn offset z")
	f.StringVar(&view, "view", string(config.ViewRotate), "camera view (rotate, top, bottom, side)")
	f.BoolVar(&trace, "trace", false, "keep previous frames")
	f.BoolVar(&outlines, "outlines", false, "outline particles")
	f.Int64Var(&seed, "seed", 0, "random seed (0 = time based)")
	f.StringVar(&integrator, "integrator", config.DefaultIntegrator, "integrator (euler, rk4)")
}

// resolveParams layers the preset, then the config file, then any flag the
// user set explicitly.
func resolveParams(cmd *cobra.Command) (*config.Params, error) {
	p := config.DefaultConfig()
	if preset != "" {
		p = config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
	}
	if configFile != "" {
		if err := config.LoadInto(configFile, p); err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
	}

	flags := cmd.Flags()
	if flags.Changed("sigma") {
		p.Sigma = sigma
	}
	if flags.Changed("rho") {
		p.Rho = rho
	}
	if flags.Changed("beta") {
		p.Beta = beta
	}
	if flags.Changed("dt") {
		p.Timestep = timestep
	}
	if flags.Changed("particles") {
		p.ParticleCount = particles
	}
	if flags.Changed("size") {
		p.ParticleSize = size
	}
	if flags.Changed("spread") {
		p.Spread = spread
	}
	if flags.Changed("x") {
		p.Offset.X = offsetX
	}
	if flags.Changed("y") {
		p.Offset.Y = offsetY
	}
	if flags.Changed("z") {
		p.Offset.Z = offsetZ
	}
	if flags.Changed("view") {
		v, err := config.ParseView(view)
		if err != nil {
			return nil, err
		}
		p.View = v
	}
	if flags.Changed("trace") {
		p.Trace = trace
	}
	if flags.Changed("outlines") {
		p.Outlines = outlines
	}
	if flags.Changed("seed") {
		p.Seed = seed
	}
	if flags.Changed("integrator") {
		p.Integrator = integrator
	}

	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}
