package canvas

import (
	"image/color"

	"tinygo.org/x/tinyfont"
)

// Displayer adapts a *Canvas to tinygo.org/x/tinyfont's Displayer interface
// (Size, SetPixel, Display), so callers who want proportional/TrueType-style
// glyphs instead of the built-in monospace stencil fonts in package
// canvas/font can render through tinyfont.Draw directly onto a canvas, ahead
// of handing that canvas to the scheduler. Neither the matrix driver nor the
// scheduler knows this type exists; it is purely additive.
type Displayer struct {
	Canvas *Canvas
}

var _ tinyfont.Displayer = (*Displayer)(nil)

// Size implements tinyfont.Displayer.
func (d *Displayer) Size() (x, y int16) {
	return int16(d.Canvas.Width()), int16(d.Canvas.Height())
}

// SetPixel implements tinyfont.Displayer. Out-of-range coordinates are
// silently dropped, matching every other drawing primitive in this package.
func (d *Displayer) SetPixel(x, y int16, c color.RGBA) {
	d.Canvas.DrawPixel(int(x), int(y), Color{R: c.R, G: c.G, B: c.B})
}

// Display implements tinyfont.Displayer. The canvas has no device to flush
// to on its own -- handing it to the scheduler (SwapCanvas/CopyCanvas) is
// what actually puts pixels on the panel -- so Display is a no-op that
// exists only to satisfy the interface.
func (d *Displayer) Display() error {
	return nil
}
