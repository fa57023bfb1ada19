// Package tui is the bubbletea frontend. Particles are drawn as projected
// wireframe boxes on a Braille canvas that is only cleared when the scene
// asks, so tracing works as in the window. A ParamList binds the control
// surface to the keyboard.
package tui
