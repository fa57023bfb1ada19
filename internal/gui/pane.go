package gui

import (
	"strings"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/san-kum/lorenzbox/internal/control"
)

// rayPaneWidth is the width of the control column, panel border included.
const rayPaneWidth = 280

// RayPane presents the surface with raygui controls in a column on the
// right of the window.
type RayPane struct {
	surf *control.Surface
	font rl.Font

	text map[string]string
	edit map[string]bool
}

func NewRayPane(font rl.Font) *RayPane {
	return &RayPane{font: font, text: map[string]string{}, edit: map[string]bool{}}
}

func (p *RayPane) Bind(s *control.Surface) {
	p.surf = s
	gui.SetFont(p.font)
	p.Sync()
}

// Sync refreshes every text box that is not being typed into.
func (p *RayPane) Sync() {
	for _, key := range p.surf.Keys(control.KindNumber) {
		if !p.edit[key] {
			p.text[key] = p.surf.Field(key).Text()
		}
	}
	if p.surf.Scene().Hidden() {
		clear(p.edit)
	}
}

func (p *RayPane) Editing() bool {
	for _, on := range p.edit {
		if on {
			return true
		}
	}
	return false
}

// Draw lays the column out against the current window width so it follows
// resizes.
func (p *RayPane) Draw() {
	x, y := float32(rl.GetScreenWidth())-rayPaneWidth, float32(10)
	pause, hide := p.surf.MustField(control.KeyPause), p.surf.MustField(control.KeyHide)
	if gui.Button(rl.NewRectangle(x, y, 110, 26), pause.Label()) {
		pause.Press()
	}
	if gui.Button(rl.NewRectangle(x+120, y, 140, 26), hide.Label()) {
		hide.Press()
	}
	if p.surf.Scene().Hidden() {
		return
	}
	y += 40
	gui.Panel(rl.NewRectangle(x-10, y-8, rayPaneWidth, 620), "")

	for _, f := range p.surf.Fields() {
		if f.Fixed {
			continue
		}
		switch f.Kind {
		case control.KindSlider:
			gui.Label(rl.NewRectangle(x, y, 260, 18), f.Label())
			y += 20
			cur := float32(f.Value())
			v := gui.SliderBar(rl.NewRectangle(x, y, 180, 16), "", f.Text(), cur, float32(f.Range.Min), float32(f.Range.Max))
			if v != cur {
				_ = f.SetValue(float64(v))
			}
			y += 28
		case control.KindNumber:
			gui.Label(rl.NewRectangle(x, y, 70, 24), f.Label())
			txt := p.text[f.Key]
			if gui.TextBox(rl.NewRectangle(x+70, y, 120, 24), &txt, 24, p.edit[f.Key]) {
				p.edit[f.Key] = !p.edit[f.Key]
				if !p.edit[f.Key] {
					_ = f.SetText(txt)
					txt = f.Text()
				}
			}
			p.text[f.Key] = txt
			y += 32
		case control.KindCheckbox:
			on := f.Checked()
			if gui.CheckBox(rl.NewRectangle(x, y, 18, 18), f.Label(), on) != on {
				f.SetChecked(!on)
			}
			y += 28
		case control.KindSelect:
			gui.Label(rl.NewRectangle(x, y, 260, 18), f.Label())
			y += 20
			cur := int32(f.SelectedIndex())
			if next := gui.ComboBox(rl.NewRectangle(x, y, 180, 24), strings.Join(f.Options, ";"), cur); next != cur && int(next) < len(f.Options) {
				_ = f.Select(f.Options[next])
			}
			y += 34
		case control.KindButton:
			if gui.Button(rl.NewRectangle(x, y, 180, 26), f.Label()) {
				f.Press()
			}
			y += 36
		}
	}
}
