// Package gui is the raylib frontend.
//
// Frames are rendered into an off-screen texture that is only cleared when
// the scene asks for it, so tracing simply skips the clear. Two control
// panels can drive the scene: Widgets, drawn by hand from the control
// package layout, and RayPane, built from raygui controls.
package gui
