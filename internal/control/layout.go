package control

// Reserved sizes per widget kind.
const (
	ButtonWidth, ButtonHeight = 90.0, 30.0
	SliderWidth, SliderHeight = 250.0, 70.0
	NumberWidth, NumberHeight = 80.0, 50.0
	SelectWidth, SelectHeight = 250.0, 70.0
)

func button(f *Field, w, h float64) *Widget {
	return &Widget{Field: f, Width: w, Height: h}
}

// DefaultLayout arranges the surface the way the control panel appears on
// screen: pause and hide on top, the sliders, display toggles, respawn and
// the spawn inputs last.
func DefaultLayout(s *Surface) *Panel {
	p := NewPanel()
	p.AddVertical(button(s.MustField(KeyPause), ButtonWidth, ButtonHeight))
	p.AddHorizontal(button(s.MustField(KeyHide), 150, ButtonHeight))

	for _, key := range []string{KeyTimestep, KeyParticles, KeySize, KeySigma, KeyRho, KeyBeta} {
		p.AddVertical(&Widget{Field: s.MustField(key), Width: SliderWidth, Height: SliderHeight})
	}

	p.AddVertical(&Widget{Field: s.MustField(KeyOutlines), Width: 100, Height: 100})
	p.AddVertical(&Widget{Field: s.MustField(KeyView), Width: 130, Height: 160})
	p.AddHorizontal(&Widget{Field: s.MustField(KeyTrace), Width: 100, Height: 50, OffsetY: 27})
	p.AddVertical(&Widget{Field: s.MustField(KeyIntegrator), Width: SelectWidth, Height: SelectHeight})
	p.AddVertical(button(s.MustField(KeyRespawn), 100, 35))

	p.AddVertical(&Widget{Field: s.MustField(KeySpread), Width: 100, Height: 33, LabelWidth: 67})
	p.AddVertical(&Widget{Field: s.MustField(KeyX), Width: NumberWidth, Height: NumberHeight, LabelWidth: 15})
	p.AddHorizontal(&Widget{Field: s.MustField(KeyY), Width: NumberWidth, Height: NumberHeight, LabelWidth: 15})
	p.AddHorizontal(&Widget{Field: s.MustField(KeyZ), Width: NumberWidth, Height: NumberHeight, LabelWidth: 15})
	return p
}
