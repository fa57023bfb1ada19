package config

import "sort"

var Presets = map[string]*Params{
	"classic": DefaultConfig(),
	"dense": {
		Sigma: DefaultSigma, Rho: DefaultRho, Beta: DefaultBeta, Timestep: DefaultTimestep,
		ParticleCount: 1000, ParticleSize: 1, Spread: 10,
		Offset: Offset{X: DefaultOffsetX, Y: DefaultOffsetY}, View: ViewRotate, Integrator: DefaultIntegrator,
	},
	"slowmo": {
		Sigma: DefaultSigma, Rho: DefaultRho, Beta: DefaultBeta, Timestep: 0.002,
		ParticleCount: 400, ParticleSize: 2, Spread: 5,
		Offset: Offset{X: DefaultOffsetX, Y: DefaultOffsetY}, View: ViewSide, Integrator: DefaultIntegrator,
	},
	"blocks": {
		Sigma: DefaultSigma, Rho: DefaultRho, Beta: DefaultBeta, Timestep: 0.006,
		ParticleCount: 120, ParticleSize: 8, Spread: 3, Outlines: true,
		Offset: Offset{X: DefaultOffsetX, Y: DefaultOffsetY}, View: ViewRotate, Integrator: DefaultIntegrator,
	},
	"ribbon": {
		Sigma: DefaultSigma, Rho: DefaultRho, Beta: DefaultBeta, Timestep: 0.004,
		ParticleCount: 60, ParticleSize: 1, Spread: 0.001, Trace: true,
		Offset: Offset{X: DefaultOffsetX, Y: DefaultOffsetY}, View: ViewTop, Integrator: DefaultIntegrator,
	},
	"periodic": {
		Sigma: DefaultSigma, Rho: 99.96, Beta: DefaultBeta, Timestep: 0.002,
		ParticleCount: 200, ParticleSize: 1, Spread: 5,
		Offset: Offset{X: DefaultOffsetX, Y: DefaultOffsetY, Z: 60}, View: ViewSide, Integrator: "rk4",
	},
}

// GetPreset returns a copy so callers can mutate it freely.
func GetPreset(name string) *Params {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	return cfg.Clone()
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
