package gui

import (
	"fmt"
	"log"
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/san-kum/lorenzbox/internal/audio"
	"github.com/san-kum/lorenzbox/internal/control"
	"github.com/san-kum/lorenzbox/internal/metrics"
	"github.com/san-kum/lorenzbox/internal/sim"
	"github.com/san-kum/lorenzbox/internal/viz"
)

// Theme colors
var (
	ColBg      = rl.NewColor(0, 0, 0, 255)
	ColAccent  = rl.NewColor(180, 180, 180, 255)
	ColSelect  = rl.NewColor(255, 255, 255, 255)
	ColText    = rl.NewColor(140, 140, 140, 255)
	ColTextDim = rl.NewColor(60, 60, 60, 255)
	ColOutline = rl.NewColor(64, 64, 64, 255)
	ColCube    = rl.NewColor(255, 255, 255, 64)
)

const (
	PaneWidgets = "widgets"
	PaneRaygui  = "raygui"
)

type Options struct {
	Pane          string
	Audio         bool
	Width, Height int32
}

// pane is a control.Binder that draws itself every screen frame.
type pane interface {
	control.Binder
	Draw()
	// Editing reports a focused text box; keyboard shortcuts are off
	// while it is set.
	Editing() bool
}

type App struct {
	Scene   *sim.Scene
	Surface *control.Surface
	Pane    pane
	Camera  rl.Camera3D
	Font    rl.Font

	// TargetTex accumulates frames; it is only cleared when a frame asks
	// for it, which is what makes tracing work.
	TargetTex rl.RenderTexture2D

	FPS   *metrics.Series
	Speed *metrics.Series
	Audio *audio.Processor
}

func initWindow(w, h int32) {
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(w, h, "lorenzbox")
	rl.SetTargetFPS(60)
	rl.SetExitKey(0)
}

// loadFont loads Liberation Mono from the system path, falling back to
// raylib's built-in font.
func loadFont() rl.Font {
	font := rl.LoadFontEx("/usr/share/fonts/liberation/LiberationMono-Regular.ttf", 32, nil, 0)
	if font.Texture.ID == 0 {
		return rl.GetFontDefault()
	}
	rl.SetTextureFilter(font.Texture, rl.FilterBilinear)
	return font
}

// CheckPane validates a pane name before a window is opened.
func CheckPane(name string) error {
	switch name {
	case PaneWidgets, PaneRaygui:
		return nil
	}
	return fmt.Errorf("unknown pane %q (want %s or %s)", name, PaneWidgets, PaneRaygui)
}

// Run opens the window and blocks until it is closed.
func Run(scene *sim.Scene, opts Options) error {
	if err := CheckPane(opts.Pane); err != nil {
		return err
	}
	if opts.Width == 0 || opts.Height == 0 {
		opts.Width, opts.Height = 1280, 720
	}
	initWindow(opts.Width, opts.Height)
	defer rl.CloseWindow()

	app := NewApp(scene, opts)
	defer app.Close()
	app.RunLoop()
	return nil
}

func NewApp(scene *sim.Scene, opts Options) *App {
	a := &App{
		Scene:     scene,
		Surface:   control.NewSurface(scene),
		Font:      loadFont(),
		TargetTex: rl.LoadRenderTexture(int32(rl.GetScreenWidth()), int32(rl.GetScreenHeight())),
		FPS:       metrics.NewSeries(200),
		Speed:     metrics.NewSeries(200),
	}
	if opts.Pane == PaneRaygui {
		a.Pane = NewRayPane(a.Font)
	} else {
		a.Pane = NewWidgets(a.Font)
	}
	a.Pane.Bind(a.Surface)

	if opts.Audio {
		proc := audio.NewProcessor()
		if err := proc.Start(); err != nil {
			log.Printf("audio disabled: %v", err)
		} else {
			a.Audio = proc
			scene.AddObserver(proc)
		}
	}
	a.clearTarget()
	return a
}

func (a *App) Close() {
	if a.Audio != nil {
		a.Audio.Stop()
	}
	rl.UnloadRenderTexture(a.TargetTex)
}

func (a *App) RunLoop() {
	for !rl.WindowShouldClose() {
		a.Update()
		a.Draw()
	}
}

func (a *App) clearTarget() {
	rl.BeginTextureMode(a.TargetTex)
	rl.ClearBackground(ColBg)
	rl.EndTextureMode()
}

func (a *App) Update() {
	if rl.IsWindowResized() {
		rl.UnloadRenderTexture(a.TargetTex)
		a.TargetTex = rl.LoadRenderTexture(int32(rl.GetScreenWidth()), int32(rl.GetScreenHeight()))
		a.clearTarget()
	}

	if !a.Pane.Editing() {
		switch {
		case rl.IsKeyPressed(rl.KeySpace):
			a.Surface.TogglePause()
		case rl.IsKeyPressed(rl.KeyH):
			a.Surface.ToggleHidden()
		case rl.IsKeyPressed(rl.KeyR):
			a.Surface.Respawn()
		}
	}
	a.Pane.Sync()

	a.FPS.Push(float64(rl.GetFPS()))
	if f, ok := a.Scene.Tick(); ok {
		a.renderFrame(f)
		a.Speed.Push(metrics.FrameSpeed(a.Scene.Particles()))
	}
}

// renderFrame draws one simulation frame into the accumulation texture.
func (a *App) renderFrame(f sim.Frame) {
	a.Camera = toCamera(f.Camera)
	rl.BeginTextureMode(a.TargetTex)
	if f.Clear {
		rl.ClearBackground(ColBg)
	}
	rl.BeginMode3D(a.Camera)
	a.RenderParticles()
	if f.Cube {
		a.RenderReferenceCube()
	}
	rl.EndMode3D()
	rl.EndTextureMode()
}

func (a *App) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(ColBg)

	w, h := float32(a.TargetTex.Texture.Width), float32(a.TargetTex.Texture.Height)
	// render textures are stored upside down
	rl.DrawTextureRec(a.TargetTex.Texture, rl.NewRectangle(0, 0, w, -h), rl.NewVector2(0, 0), rl.White)

	a.Pane.Draw()
	a.DrawHUD()
	rl.EndDrawing()
}

func (a *App) DrawHUD() {
	sw, sh := rl.GetScreenWidth(), rl.GetScreenHeight()
	status := "RUNNING"
	col := ColSelect
	if a.Scene.Paused() {
		status = "PAUSED"
		col = ColTextDim
	}
	a.drawText(status, sw-110, 20, 16, col)
	a.drawText(fmt.Sprintf("%d particles  clock %d", a.Scene.Len(), a.Scene.Clock()), sw-330, sh-50, 14, ColTextDim)
	a.drawText("[SPACE] PAUSE  [H] HIDE  [R] RESPAWN", sw-330, sh-30, 14, ColTextDim)

	a.DrawTelemetry(a.FPS, "FPS", sw-430, 50)
	if a.Audio != nil && a.Audio.Active {
		a.drawText(fmt.Sprintf("cutoff %4.0f Hz", audio.Cutoff(a.Speed.Last())), sw-430, 150, 14, ColAccent)
	}
}

func (a *App) drawText(text string, x, y int, size int, color rl.Color) {
	rl.DrawTextEx(a.Font, text, rl.NewVector2(float32(x), float32(y)), float32(size), 1, color)
}

// DrawTelemetry plots a series as a line strip in a 300x60 box.
func (a *App) DrawTelemetry(s *metrics.Series, label string, rectX, rectY int) {
	vals := s.Values()
	if len(vals) < 2 {
		return
	}
	width, height := 300, 60
	minVal, maxVal := s.Bounds()

	points := make([]rl.Vector2, len(vals))
	for i, val := range vals {
		px := float32(rectX) + (float32(i)/float32(len(vals)))*float32(width)
		norm := (val - minVal) / (maxVal - minVal)
		py := float32(rectY+height) - float32(norm)*float32(height)
		points[i] = rl.NewVector2(px, py)
	}

	rl.DrawLineStrip(points, ColAccent)
	a.drawText(fmt.Sprintf("%s %.0f", label, s.Last()), rectX+width+10, rectY+height-10, 14, ColText)
}

func toVec(v viz.Vec3) rl.Vector3 {
	return rl.NewVector3(float32(v.X), float32(v.Y), float32(v.Z))
}

// toCamera converts a placement; raylib wants the vertical fov in degrees.
func toCamera(p viz.Placement) rl.Camera3D {
	return rl.Camera3D{
		Position:   toVec(p.Eye),
		Target:     toVec(p.Target),
		Up:         toVec(p.Up),
		Fovy:       float32(p.FOV * 180 / math.Pi),
		Projection: rl.CameraPerspective,
	}
}
