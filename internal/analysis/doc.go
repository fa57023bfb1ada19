// Package analysis characterises Lorenz trajectories offline.
//
//   - [LyapunovExponent]: largest exponent from a renormalised companion orbit
//   - [Spectrum]: power spectrum of a recorded coordinate
//   - [BifurcationDiagram]: local maxima of one coordinate across a parameter sweep
//   - [PhasePortrait]: two-coordinate projection of a trajectory
//
// A positive largest exponent indicates chaos:
//
//	lambda, err := analysis.LyapunovExponent(lorenz, integrators.NewRK4(), x0, 0.01, 10, 100, 1e-8)
package analysis
