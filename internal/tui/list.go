package tui

import (
	"fmt"
	"strings"

	"github.com/san-kum/lorenzbox/internal/control"
)

// ParamList is the keyboard-driven control panel of the terminal frontend.
// Pause and hide live on global keys, so the list holds every other field.
type ParamList struct {
	surf    *control.Surface
	fields  []*control.Field
	cursor  int
	editing bool
	buf     string
}

func NewParamList() *ParamList { return &ParamList{} }

func (l *ParamList) Bind(s *control.Surface) {
	l.surf = s
	l.fields = l.fields[:0]
	for _, f := range s.Fields() {
		if !f.Fixed {
			l.fields = append(l.fields, f)
		}
	}
}

func (l *ParamList) Sync() {
	if l.surf.Scene().Hidden() {
		l.editing = false
	}
	l.cursor = max(0, min(l.cursor, len(l.fields)-1))
}

func (l *ParamList) Editing() bool { return l.editing }

// Current is the field under the cursor.
func (l *ParamList) Current() *control.Field {
	if len(l.fields) == 0 {
		return nil
	}
	return l.fields[l.cursor]
}

// HandleKey applies a key press and reports whether the list used it.
func (l *ParamList) HandleKey(key string) bool {
	if l.editing {
		l.editKey(key)
		return true
	}
	f := l.Current()
	if f == nil {
		return false
	}
	switch key {
	case "up", "k":
		l.cursor = (l.cursor - 1 + len(l.fields)) % len(l.fields)
	case "down", "j":
		l.cursor = (l.cursor + 1) % len(l.fields)
	case "left", "h":
		l.nudge(f, -1)
	case "right", "l":
		l.nudge(f, 1)
	case "H":
		l.nudge(f, -10)
	case "L":
		l.nudge(f, 10)
	case "enter":
		switch f.Kind {
		case control.KindButton:
			f.Press()
		case control.KindCheckbox:
			f.SetChecked(!f.Checked())
		case control.KindSelect:
			l.nudge(f, 1)
		case control.KindSlider, control.KindNumber:
			l.editing = true
			l.buf = f.Text()
		}
	default:
		return false
	}
	return true
}

// nudge moves a slider by n steps, a number by n units, a selector by n
// options and toggles a checkbox.
func (l *ParamList) nudge(f *control.Field, n int) {
	switch f.Kind {
	case control.KindSlider:
		step := f.Range.Step
		if step == 0 {
			step = (f.Range.Max - f.Range.Min) / 100
		}
		_ = f.SetValue(f.Value() + float64(n)*step)
	case control.KindNumber:
		_ = f.SetValue(f.Value() + float64(n))
	case control.KindSelect:
		if len(f.Options) == 0 {
			return
		}
		i := (f.SelectedIndex() + n%len(f.Options) + len(f.Options)) % len(f.Options)
		_ = f.Select(f.Options[i])
	case control.KindCheckbox:
		f.SetChecked(!f.Checked())
	}
}

func (l *ParamList) editKey(key string) {
	switch key {
	case "enter":
		// unusable text leaves the record as it was
		_ = l.Current().SetText(l.buf)
		l.editing = false
	case "esc":
		l.editing = false
	case "backspace":
		if len(l.buf) > 0 {
			l.buf = l.buf[:len(l.buf)-1]
		}
	default:
		if len(key) == 1 && strings.ContainsAny(key, "0123456789.-+eE") {
			l.buf += key
		}
	}
}

func (l *ParamList) View() string {
	var b strings.Builder
	for i, f := range l.fields {
		val := valueText(f)
		if l.editing && i == l.cursor {
			val = l.buf + "▋"
		}
		if i == l.cursor {
			b.WriteString(cyan.Render("▸ ") + white.Render(fmt.Sprintf("%-20s", f.Label())) + magenta.Render(val))
		} else {
			b.WriteString("  " + dim.Render(fmt.Sprintf("%-20s", f.Label())) + dim.Render(val))
		}
		if i < len(l.fields)-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func valueText(f *control.Field) string {
	switch f.Kind {
	case control.KindSlider, control.KindNumber:
		return f.Text()
	case control.KindCheckbox:
		if f.Checked() {
			return "[x]"
		}
		return "[ ]"
	case control.KindSelect:
		return "< " + f.Selected() + " >"
	}
	return "⏎"
}
