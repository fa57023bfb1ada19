package tui

import (
	"image"
	"image/color"
	"image/gif"
	"os"

	"github.com/san-kum/lorenzbox/internal/viz"
)

// maxCaptureFrames bounds a recording to about ten seconds at 30 fps.
const maxCaptureFrames = 300

// captureFrame rasterises the canvas dots, one pixel per dot.
func captureFrame(c *viz.Canvas) *image.Paletted {
	img := image.NewPaletted(image.Rect(0, 0, c.Width*2, c.Height*4), color.Palette{color.Black, color.White})
	c.Dots(func(x, y int) { img.SetColorIndex(x, y, 1) })
	return img
}

// saveGIF writes the frames as a looping animation with delay hundredths of
// a second between frames.
func saveGIF(path string, frames []*image.Paletted, delay int) error {
	anim := gif.GIF{LoopCount: 0}
	for _, f := range frames {
		anim.Image = append(anim.Image, f)
		anim.Delay = append(anim.Delay, delay)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := gif.EncodeAll(f, &anim); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
