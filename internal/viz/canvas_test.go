package viz

import (
	"strings"
	"testing"
)

func TestCanvasSetUnset(t *testing.T) {
	c := NewCanvas(2, 1)
	c.Set(0, 0)
	c.Set(3, 3)
	c.Set(-1, 0)
	c.Set(4, 0)
	if !c.Lit(0, 0) || !c.Lit(3, 3) || c.Lit(1, 0) {
		t.Fatalf("unexpected dots: %q", c.String())
	}
	if c.Count() != 2 {
		t.Errorf("count = %d", c.Count())
	}
	c.Unset(0, 0)
	if c.Lit(0, 0) || c.Count() != 1 {
		t.Errorf("unset failed: %q", c.String())
	}
	if got := c.String(); got != string([]rune{brailleBlank, brailleBlank | 0x80}) {
		t.Errorf("string = %q", got)
	}
}

func TestCanvasDrawLine(t *testing.T) {
	c := NewCanvas(5, 1)
	c.DrawLine(0, 0, 9, 0)
	var xs []int
	c.Dots(func(x, y int) {
		if y != 0 {
			t.Errorf("dot off the line at y=%d", y)
		}
		xs = append(xs, x)
	})
	if len(xs) != 10 {
		t.Errorf("line has %d dots", len(xs))
	}
}

func TestCanvasResize(t *testing.T) {
	c := NewCanvas(3, 2)
	c.Set(1, 1)
	c.Resize(4, 0)
	if c.Width != 4 || c.Height != 1 || c.Count() != 0 {
		t.Errorf("resize: %dx%d count %d", c.Width, c.Height, c.Count())
	}
	if strings.Count(c.String(), "\n") != 0 {
		t.Error("single row canvas has line breaks")
	}
}
