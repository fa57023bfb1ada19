// Package swarm manages the particle pool advected through the attractor.
//
// Particles are spawned in batches inside a cube around a configured offset,
// stepped in place every frame and trimmed from the oldest end when the
// target count shrinks. There is no reuse of freed slots and no particle
// identity survives a resize.
package swarm
