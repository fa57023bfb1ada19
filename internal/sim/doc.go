// Package sim runs the animation loop.
//
// A Scene owns the parameter record and the particle pool. Each call to
// Tick integrates every particle once, notifies observers and advances the
// orbit clock; a paused scene is not touched at all. The handlers in
// handlers.go are what control panels call between frames.
package sim
