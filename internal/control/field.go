package control

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/san-kum/lorenzbox/internal/config"
)

// ErrBadInput is returned for text a number box cannot use.
var ErrBadInput = errors.New("control: invalid input")

type Kind int

const (
	KindButton Kind = iota
	KindSlider
	KindNumber
	KindSelect
	KindCheckbox
)

func (k Kind) String() string {
	switch k {
	case KindButton:
		return "button"
	case KindSlider:
		return "slider"
	case KindNumber:
		return "number"
	case KindSelect:
		return "select"
	case KindCheckbox:
		return "checkbox"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Field is one adjustable item on the surface. Only the accessors that
// match Kind do anything.
type Field struct {
	Key     string
	Kind    Kind
	Range   config.Range
	Options []string
	// Digits sizes the number box.
	Digits int
	// Fixed widgets stay visible when the panel is hidden.
	Fixed bool

	label  func() string
	get    func() float64
	set    func(float64)
	on     func() bool
	toggle func(bool)
	pick   func() string
	choose func(string) error
	press  func()
}

func (f *Field) Label() string { return f.label() }

// Value reads the current number for sliders and number inputs.
func (f *Field) Value() float64 {
	if f.get == nil {
		return 0
	}
	return f.get()
}

// SetValue writes v. Sliders clamp and snap; number inputs refuse NaN and
// infinities.
func (f *Field) SetValue(v float64) error {
	switch f.Kind {
	case KindSlider:
		f.set(f.Range.Clamp(v))
	case KindNumber:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%s=%v: %w", f.Key, v, ErrBadInput)
		}
		f.set(v)
	default:
		return fmt.Errorf("%s is a %s: %w", f.Key, f.Kind, ErrBadInput)
	}
	return nil
}

// Text formats the value for a number box.
func (f *Field) Text() string {
	return strconv.FormatFloat(f.Value(), 'f', -1, 64)
}

// SetText parses s and writes it through SetValue.
func (f *Field) SetText(s string) error {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return fmt.Errorf("%s=%q: %w", f.Key, s, ErrBadInput)
	}
	return f.SetValue(v)
}

func (f *Field) Checked() bool {
	if f.on == nil {
		return false
	}
	return f.on()
}

func (f *Field) SetChecked(b bool) {
	if f.toggle != nil {
		f.toggle(b)
	}
}

func (f *Field) Selected() string {
	if f.pick == nil {
		return ""
	}
	return f.pick()
}

// SelectedIndex is the position of Selected in Options, or -1.
func (f *Field) SelectedIndex() int {
	cur := f.Selected()
	for i, o := range f.Options {
		if o == cur {
			return i
		}
	}
	return -1
}

func (f *Field) Select(opt string) error {
	if f.choose == nil {
		return fmt.Errorf("%s is a %s: %w", f.Key, f.Kind, ErrBadInput)
	}
	return f.choose(opt)
}

func (f *Field) Press() {
	if f.press != nil {
		f.press()
	}
}
