// Package dynamo provides core simulation primitives for the attractor.
//
// The package defines the fundamental interfaces and types shared by the
// integrator, the particle pool and the frontends:
//
//   - [State]: vector representing system state
//   - [System]: interface for ODE systems (dX/dt = f(X, u, t))
//   - [Integrator]: fixed-step numerical integrator interface
//   - [Configurable]: runtime parameter access for UI bindings
//
// # Example
//
//	sys := physics.NewLorenz()
//	integ := integrators.NewEuler()
//	next := integ.Step(sys, dynamo.State{1, 1, 1}, nil, 0, 0.01)
//
// # Thread Safety
//
// Nothing in this package is safe for concurrent mutation. The animation
// loop owns every value built from these types.
package dynamo
