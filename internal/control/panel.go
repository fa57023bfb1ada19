package control

// Widget is a field placed on a panel. Width and Height are the space the
// widget reserves; Offset nudges it inside that space.
type Widget struct {
	Field            *Field
	Width, Height    float64
	OffsetX, OffsetY float64
	// LabelWidth is the gap before the box of an inline number input.
	LabelWidth float64

	X, Y    float64
	Visible bool
}

// Bounds is the widget's drawn origin after offsets.
func (w *Widget) Bounds() (x, y, width, height float64) {
	return w.X + w.OffsetX, w.Y + w.OffsetY, w.Width, w.Height
}

func (w *Widget) Fixed() bool { return w.Field != nil && w.Field.Fixed }

// Panel stacks rows of widgets top to bottom; widgets in a row sit side by
// side and the next row starts below the tallest of them.
type Panel struct {
	rows    [][]*Widget
	visible bool
}

func NewPanel() *Panel { return &Panel{visible: true} }

// AddVertical starts a new row with w.
func (p *Panel) AddVertical(w *Widget) {
	w.Visible = p.visible || w.Fixed()
	p.rows = append(p.rows, []*Widget{w})
}

// AddHorizontal appends w to the last row, or starts the first one.
func (p *Panel) AddHorizontal(w *Widget) {
	if len(p.rows) == 0 {
		p.AddVertical(w)
		return
	}
	w.Visible = p.visible || w.Fixed()
	last := len(p.rows) - 1
	p.rows[last] = append(p.rows[last], w)
}

// Position lays every widget out from (x, y).
func (p *Panel) Position(x, y float64) {
	dy := 0.0
	for _, row := range p.rows {
		dx, tallest := 0.0, 0.0
		for _, w := range row {
			w.X, w.Y = x+dx, y+dy
			dx += w.Width
			tallest = max(tallest, w.Height)
		}
		dy += tallest
	}
}

// ToggleVisible hides every non-fixed widget, or shows them all again.
func (p *Panel) ToggleVisible() {
	p.visible = !p.visible
	for _, row := range p.rows {
		for _, w := range row {
			w.Visible = p.visible || w.Fixed()
		}
	}
}

func (p *Panel) Visible() bool { return p.visible }

func (p *Panel) Rows() [][]*Widget { return p.rows }

// Widgets flattens the rows in layout order.
func (p *Panel) Widgets() []*Widget {
	var out []*Widget
	for _, row := range p.rows {
		out = append(out, row...)
	}
	return out
}

// Widget finds the widget bound to key.
func (p *Panel) Widget(key string) *Widget {
	for _, row := range p.rows {
		for _, w := range row {
			if w.Field != nil && w.Field.Key == key {
				return w
			}
		}
	}
	return nil
}

// Size is the extent of the laid out panel.
func (p *Panel) Size() (width, height float64) {
	for _, row := range p.rows {
		rw, rh := 0.0, 0.0
		for _, w := range row {
			rw += w.Width
			rh = max(rh, w.Height)
		}
		width = max(width, rw)
		height += rh
	}
	return width, height
}
