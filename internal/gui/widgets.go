package gui

import (
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/san-kum/lorenzbox/internal/control"
)

const (
	fontSize    = 16
	trackWidth  = 150
	trackOffset = 41
)

// Widgets is the hand-built control panel: immediate-mode buttons,
// sliders with number boxes, a view selector, checkboxes and number
// inputs, laid out by control.DefaultLayout.
type Widgets struct {
	surf  *control.Surface
	panel *control.Panel
	font  rl.Font

	dragging *control.Widget
	editing  *control.Widget
	buf      string
}

func NewWidgets(font rl.Font) *Widgets {
	return &Widgets{font: font}
}

func (w *Widgets) Bind(s *control.Surface) {
	w.surf = s
	w.panel = control.DefaultLayout(s)
	w.panel.Position(10, 10)
	if s.Scene().Hidden() {
		w.panel.ToggleVisible()
	}
	s.OnHide(func(bool) { w.panel.ToggleVisible() })
}

// Sync drops focus from widgets that were hidden.
func (w *Widgets) Sync() {
	if w.editing != nil && !w.editing.Visible {
		w.editing = nil
	}
	if w.dragging != nil && !w.dragging.Visible {
		w.dragging = nil
	}
}

func (w *Widgets) Editing() bool { return w.editing != nil }

func (w *Widgets) Draw() {
	mouse := rl.GetMousePosition()
	clicked := rl.IsMouseButtonPressed(rl.MouseLeftButton)
	if !rl.IsMouseButtonDown(rl.MouseLeftButton) {
		w.dragging = nil
	}
	if clicked && w.editing != nil && !rl.CheckCollisionPointRec(mouse, w.numberBox(w.editing)) {
		w.editing = nil
	}
	if w.editing != nil {
		w.typeInto(w.editing)
	}

	for _, wd := range w.panel.Widgets() {
		if !wd.Visible {
			continue
		}
		switch wd.Field.Kind {
		case control.KindButton:
			w.drawButton(wd, mouse, clicked)
		case control.KindSlider:
			w.drawSlider(wd, mouse, clicked)
		case control.KindNumber:
			w.drawNumber(wd, mouse, clicked)
		case control.KindSelect:
			w.drawSelect(wd, mouse, clicked)
		case control.KindCheckbox:
			w.drawCheckbox(wd, mouse, clicked)
		}
	}
}

func (w *Widgets) text(s string, x, y float32, col rl.Color) {
	rl.DrawTextEx(w.font, s, rl.NewVector2(x, y), fontSize, 1, col)
}

func (w *Widgets) textWidth(s string) float32 {
	return rl.MeasureTextEx(w.font, s, fontSize, 1).X
}

func (w *Widgets) drawButton(wd *control.Widget, mouse rl.Vector2, clicked bool) {
	x, y, _, _ := wd.Bounds()
	label := wd.Field.Label()
	r := rl.NewRectangle(float32(x), float32(y), w.textWidth(label)+16, 24)
	hover := rl.CheckCollisionPointRec(mouse, r)
	rl.DrawRectangleRec(r, pick(hover, ColTextDim, rl.NewColor(30, 30, 30, 255)))
	rl.DrawRectangleLinesEx(r, 1, ColAccent)
	w.text(label, r.X+8, r.Y+4, ColSelect)
	if hover && clicked {
		wd.Field.Press()
	}
}

func (w *Widgets) drawSlider(wd *control.Widget, mouse rl.Vector2, clicked bool) {
	x, y, _, _ := wd.Bounds()
	f := wd.Field
	w.text(heading(f.Label()), float32(x)+1, float32(y)+14, ColSelect)

	track := rl.NewRectangle(float32(x), float32(y)+trackOffset+4, trackWidth, 6)
	hit := rl.NewRectangle(track.X, track.Y-6, track.Width, track.Height+12)
	if clicked && rl.CheckCollisionPointRec(mouse, hit) {
		w.dragging = wd
	}
	if w.dragging == wd {
		frac := clamp01((float64(mouse.X) - float64(track.X)) / trackWidth)
		f.SetValue(f.Range.Min + frac*(f.Range.Max-f.Range.Min))
	}

	rl.DrawRectangleRec(track, ColTextDim)
	frac := float32(clamp01((f.Value() - f.Range.Min) / (f.Range.Max - f.Range.Min)))
	rl.DrawRectangleRec(rl.NewRectangle(track.X, track.Y, track.Width*frac, track.Height), ColAccent)
	rl.DrawCircleV(rl.NewVector2(track.X+track.Width*frac, track.Y+track.Height/2), 7, ColSelect)

	w.drawBox(wd, mouse, clicked)
}

func (w *Widgets) drawNumber(wd *control.Widget, mouse rl.Vector2, clicked bool) {
	x, y, _, _ := wd.Bounds()
	w.text(wd.Field.Label(), float32(x)+1, float32(y)+4, ColSelect)
	w.drawBox(wd, mouse, clicked)
}

// numberBox is where a slider's or number input's text field sits.
func (w *Widgets) numberBox(wd *control.Widget) rl.Rectangle {
	x, y, _, _ := wd.Bounds()
	width := float32(wd.Field.Digits*9 + 15)
	if wd.Field.Kind == control.KindSlider {
		return rl.NewRectangle(float32(x)+trackWidth+10, float32(y)+trackOffset-1, width, 22)
	}
	return rl.NewRectangle(float32(x+wd.LabelWidth), float32(y), width, 22)
}

func (w *Widgets) drawBox(wd *control.Widget, mouse rl.Vector2, clicked bool) {
	r := w.numberBox(wd)
	if clicked && rl.CheckCollisionPointRec(mouse, r) && w.editing != wd {
		w.editing = wd
		w.buf = wd.Field.Text()
	}
	text := wd.Field.Text()
	border := ColAccent
	if w.editing == wd {
		text = w.buf + "_"
		border = ColSelect
	}
	rl.DrawRectangleRec(r, rl.NewColor(20, 20, 20, 255))
	rl.DrawRectangleLinesEx(r, 1, border)
	w.text(text, r.X+4, r.Y+3, ColSelect)
}

// typeInto edits the focused box. Every keystroke is written through the
// field; text the field rejects is left in the box and ignored.
func (w *Widgets) typeInto(wd *control.Widget) {
	changed := false
	for c := rl.GetCharPressed(); c > 0; c = rl.GetCharPressed() {
		if strings.ContainsRune("0123456789.-+eE", rune(c)) {
			w.buf += string(rune(c))
			changed = true
		}
	}
	if rl.IsKeyPressed(rl.KeyBackspace) && len(w.buf) > 0 {
		w.buf = w.buf[:len(w.buf)-1]
		changed = true
	}
	if changed {
		_ = wd.Field.SetText(w.buf)
	}
	if rl.IsKeyPressed(rl.KeyEnter) || rl.IsKeyPressed(rl.KeyEscape) {
		w.editing = nil
	}
}

func (w *Widgets) drawSelect(wd *control.Widget, mouse rl.Vector2, clicked bool) {
	x, y, _, _ := wd.Bounds()
	f := wd.Field
	w.text(heading(f.Label()), float32(x)+1, float32(y)+14, ColSelect)
	r := rl.NewRectangle(float32(x), float32(y)+trackOffset, 100, 24)
	hover := rl.CheckCollisionPointRec(mouse, r)
	rl.DrawRectangleRec(r, pick(hover, ColTextDim, rl.NewColor(30, 30, 30, 255)))
	rl.DrawRectangleLinesEx(r, 1, ColAccent)
	w.text(f.Selected()+" v", r.X+6, r.Y+4, ColSelect)
	if hover && clicked && len(f.Options) > 0 {
		next := (f.SelectedIndex() + 1) % len(f.Options)
		_ = f.Select(f.Options[next])
	}
}

func (w *Widgets) drawCheckbox(wd *control.Widget, mouse rl.Vector2, clicked bool) {
	x, y, _, _ := wd.Bounds()
	f := wd.Field
	box := rl.NewRectangle(float32(x), float32(y)+15, 16, 16)
	hit := rl.NewRectangle(box.X, box.Y, 24+w.textWidth(f.Label()), 16)
	rl.DrawRectangleLinesEx(box, 1, ColAccent)
	if f.Checked() {
		rl.DrawRectangleRec(rl.NewRectangle(box.X+4, box.Y+4, 8, 8), ColSelect)
	}
	w.text(f.Label(), box.X+24, box.Y, ColSelect)
	if clicked && rl.CheckCollisionPointRec(mouse, hit) {
		f.SetChecked(!f.Checked())
	}
}

// heading pads a label into the "- label -----" style used above sliders.
func heading(label string) string {
	const width = 24
	s := "- " + label + " "
	if n := width - len(s); n > 0 {
		s += strings.Repeat("-", n)
	}
	return s
}

func clamp01(v float64) float64 {
	return max(0, min(1, v))
}

func pick[T any](cond bool, a, b T) T {
	if cond {
		return a
	}
	return b
}
