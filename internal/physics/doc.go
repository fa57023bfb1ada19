// Package physics provides the Lorenz system driven by the particle swarm.
//
// [Lorenz] implements [dynamo.System]:
//
//	dx/dt = σ(y − x)
//	dy/dt = x(ρ − z) − y
//	dz/dt = xy − βz
//
// It also implements [dynamo.Configurable] so frontends can read and write
// σ, ρ and β by name.
package physics
