// Package canvas implements the in-RAM RGB framebuffer ("canvas") drawn to by
// foreground code and handed to the scheduler for display on a HUB75 panel.
//
// Grounded on original_source/src/canvas.rs (Color constants, rectangle
// clipping via a saturating min) and on the bounds-check-and-drop idiom
// already used by the teacher's rgb75.Device.SetPixel.
package canvas

// Color is an immutable (R, G, B) triple of 8-bit channels. There is no
// alpha channel: the panel has no notion of transparency, only of which of
// the color bits to shift out for a given bit-plane.
type Color struct {
	R, G, B uint8
}

// Named corners of the RGB cube, mirroring the constants in canvas.rs.
var (
	Black   = Color{0, 0, 0}
	White   = Color{255, 255, 255}
	Red     = Color{255, 0, 0}
	Green   = Color{0, 255, 0}
	Blue    = Color{0, 0, 255}
	Yellow  = Color{255, 255, 0}
	Cyan    = Color{0, 255, 255}
	Magenta = Color{255, 0, 255}
)

// bit reports whether bit n (0 = LSB, 7 = MSB) is set in channel c.
func bit(c uint8, n int) bool {
	return c&(1<<uint(n)) != 0
}
