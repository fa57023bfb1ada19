// Package viz holds the renderer-independent geometry of the scene.
//
//   - [BoxFor]: aligns a speed-stretched box with a particle's direction
//   - [CameraFor]: camera placement as a pure function of view and clock
//   - [Camera], [Wireframe], [Render3D]: perspective wireframe projection
//   - [Canvas]: Braille-based pixel canvas for terminal rendering
//
// The raylib window and the terminal frontend both draw from these values,
// so a box looks the same wherever it is rendered.
package viz
